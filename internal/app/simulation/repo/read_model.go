package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/models/m_simulation"
	"github.com/light-bringer/discount-impact-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetSimulation retrieves a simulation record by ID.
func (rm *ReadModelImpl) GetSimulation(ctx context.Context, simulationID string) (*contracts.SimulationRecord, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_simulation.TableName, spanner.Key{simulationID}, m_simulation.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSimulationNotFound
		}
		return nil, fmt.Errorf("failed to read simulation: %w", err)
	}

	var data m_simulation.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse simulation: %w", err)
	}

	return dataToRecord(&data)
}

// ListSimulations returns one page of simulations, newest first.
// It fetches one extra row to decide whether a next page exists.
func (rm *ReadModelImpl) ListSimulations(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	stmt, err := listStatement(filter)
	if err != nil {
		return nil, err
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	records := make([]*contracts.SimulationRecord, 0, filter.PageSize+1)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate simulations: %w", err)
		}

		var data m_simulation.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse simulation: %w", err)
		}

		record, err := dataToRecord(&data)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return paginate(records, filter.PageSize), nil
}

// listStatement builds the page query for filter. PageSize must already be
// normalised by the caller.
func listStatement(filter *contracts.ListFilter) (spanner.Statement, error) {
	if filter.PageSize <= 0 {
		return spanner.Statement{}, fmt.Errorf("page size must be positive, got %d", filter.PageSize)
	}

	b := query.From(m_simulation.TableName).Select(m_simulation.Columns()...)

	if filter.ProductName != "" {
		b = b.Where(query.Eq(m_simulation.ProductName, filter.ProductName))
	}
	if filter.RiskLevel != "" {
		b = b.Where(query.Eq(m_simulation.RiskLevel, filter.RiskLevel))
	}
	if filter.PageToken != "" {
		cursor, err := decodePageToken(filter.PageToken)
		if err != nil {
			return spanner.Statement{}, err
		}
		b = b.Where(query.Before(m_simulation.CreatedAt, cursor.CreatedAt, m_simulation.SimulationID, cursor.SimulationID))
	}

	return b.
		OrderBy(m_simulation.CreatedAt, query.Desc).
		OrderBy(m_simulation.SimulationID, query.Desc).
		Limit(int64(filter.PageSize) + 1).
		Build(), nil
}

// paginate trims the look-ahead row and derives the next token from the last
// row kept.
func paginate(records []*contracts.SimulationRecord, pageSize int) *contracts.ListResult {
	result := &contracts.ListResult{Simulations: records}
	if len(records) <= pageSize {
		return result
	}

	result.Simulations = records[:pageSize]
	last := result.Simulations[pageSize-1]
	result.NextPageToken = encodePageToken(pageCursor{
		CreatedAt:    last.CreatedAt,
		SimulationID: last.SimulationID,
	})
	return result
}
