package contracts

import (
	"context"
	"time"
)

//go:generate mockgen -source=read_model.go -destination=mocks/mock_read_model.go -package=mocks

// ListFilter defines filtering options for listing simulations.
type ListFilter struct {
	ProductName string
	RiskLevel   string
	PageSize    int
	PageToken   string
}

// ListResult is one page of simulations, newest first.
type ListResult struct {
	Simulations   []*SimulationRecord
	NextPageToken string
}

// ReadModel serves simulation history queries.
type ReadModel interface {
	// GetSimulation returns domain.ErrSimulationNotFound for unknown ids
	GetSimulation(ctx context.Context, simulationID string) (*SimulationRecord, error)

	ListSimulations(ctx context.Context, filter *ListFilter) (*ListResult, error)
}

// EventFilter defines filtering options for listing outbox events.
type EventFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int
}

// EventDTO is an outbox event as exposed to readers.
type EventDTO struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	RetryCount  int64
}

// EventsReadModel serves outbox event queries.
type EventsReadModel interface {
	ListEvents(ctx context.Context, filter *EventFilter) ([]*EventDTO, error)
}
