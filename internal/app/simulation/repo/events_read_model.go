package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/models/m_outbox"
	"github.com/light-bringer/discount-impact-service/internal/pkg/query"
)

// EventsReadModel implements EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) contracts.EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves outbox events, newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter *contracts.EventFilter) ([]*contracts.EventDTO, error) {
	iter := r.client.Single().Query(ctx, eventsStatement(filter))
	defer iter.Stop()

	events := make([]*contracts.EventDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		event, err := eventToDTO(&data)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func eventsStatement(filter *contracts.EventFilter) spanner.Statement {
	b := query.From(m_outbox.TableName).Select(m_outbox.Columns()...)

	if filter.EventType != "" {
		b = b.Where(query.Eq(m_outbox.EventType, filter.EventType))
	}
	if filter.AggregateID != "" {
		b = b.Where(query.Eq(m_outbox.AggregateID, filter.AggregateID))
	}
	if filter.Status != "" {
		b = b.Where(query.Eq(m_outbox.Status, filter.Status))
	}

	return b.
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(filter.Limit)).
		Build()
}

func eventToDTO(data *m_outbox.Data) (*contracts.EventDTO, error) {
	dto := &contracts.EventDTO{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		RetryCount:  data.RetryCount,
	}

	if data.Payload.Valid {
		raw, err := json.Marshal(data.Payload.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode event payload: %w", err)
		}
		dto.Payload = string(raw)
	}
	if data.ProcessedAt.Valid {
		processedAt := data.ProcessedAt.Time
		dto.ProcessedAt = &processedAt
	}

	return dto, nil
}
