package list_events

import (
	"context"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/models/m_outbox"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000

	FieldStatus = "status"
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   string // e.g. "simulation.completed"
	AggregateID string // simulation id
	Status      string // pending, processing, completed, failed
	Limit       int
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a list of events with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.EventDTO, error) {
	if req.Status != "" && !m_outbox.IsValidStatus(req.Status) {
		return nil, domain.NewValidationError(FieldStatus, "must be one of pending, processing, completed, failed")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return q.readModel.ListEvents(ctx, &contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       limit,
	})
}
