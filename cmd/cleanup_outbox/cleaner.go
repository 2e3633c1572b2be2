package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/discount-impact-service/internal/models/m_outbox"
	"github.com/light-bringer/discount-impact-service/internal/pkg/committer"
	"github.com/light-bringer/discount-impact-service/internal/pkg/query"
)

// retention selects terminal events of one status processed before cutoff.
type retention struct {
	status string
	cutoff time.Time
}

func retentionPolicies(config Config, now time.Time) []retention {
	return []retention{
		{status: m_outbox.StatusCompleted, cutoff: now.AddDate(0, 0, -config.CompletedRetentionDays)},
		{status: m_outbox.StatusFailed, cutoff: now.AddDate(0, 0, -config.FailedRetentionDays)},
	}
}

// expiredStatement selects up to limit expired event ids; limit 0 means all.
func expiredStatement(p retention, limit int64) spanner.Statement {
	q := query.From(m_outbox.TableName).
		Select(m_outbox.EventID).
		Where(query.Eq(m_outbox.Status, p.status)).
		Where(query.Lt(m_outbox.ProcessedAt, p.cutoff)).
		OrderBy(m_outbox.ProcessedAt, query.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.Build()
}

type cleaner struct {
	client    *spanner.Client
	committer *committer.Committer
	batchSize int
	log       *zap.Logger
}

func (c *cleaner) count(ctx context.Context, p retention) (int64, error) {
	ids, err := collectIDs(c.client.Single().Query(ctx, expiredStatement(p, 0)))
	if err != nil {
		return 0, err
	}
	c.log.Info("would delete events", zap.String("status", p.status), zap.Int("count", len(ids)))
	return int64(len(ids)), nil
}

// purge deletes expired events one batch per transaction until none remain.
func (c *cleaner) purge(ctx context.Context, p retention) (int64, error) {
	model := m_outbox.NewModel()
	var total int64

	for {
		var deleted int
		err := c.committer.RunInTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
			ids, err := collectIDs(txn.Query(ctx, expiredStatement(p, int64(c.batchSize))))
			if err != nil {
				return err
			}

			plan := committer.NewPlan()
			for _, id := range ids {
				plan.Add(model.DeleteMut(id))
			}
			if plan.IsEmpty() {
				deleted = 0
				return nil
			}
			if err := txn.BufferWrite(plan.Mutations()); err != nil {
				return fmt.Errorf("failed to buffer deletes: %w", err)
			}
			deleted = plan.Count()
			return nil
		})
		if err != nil {
			return total, err
		}

		total += int64(deleted)
		if deleted > 0 {
			c.log.Info("deleted batch", zap.String("status", p.status), zap.Int("count", deleted))
		}
		if deleted < c.batchSize {
			return total, nil
		}
	}
}

func collectIDs(iter *spanner.RowIterator) ([]string, error) {
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query events: %w", err)
		}

		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse row: %w", err)
		}
		ids = append(ids, id)
	}
}
