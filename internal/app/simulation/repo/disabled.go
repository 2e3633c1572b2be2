package repo

import (
	"context"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// DisabledReadModel answers every history query with ErrHistoryDisabled.
// It stands in for the Spanner read models when history is turned off.
type DisabledReadModel struct{}

var (
	_ contracts.ReadModel       = DisabledReadModel{}
	_ contracts.EventsReadModel = DisabledReadModel{}
)

func (DisabledReadModel) GetSimulation(context.Context, string) (*contracts.SimulationRecord, error) {
	return nil, domain.ErrHistoryDisabled
}

func (DisabledReadModel) ListSimulations(context.Context, *contracts.ListFilter) (*contracts.ListResult, error) {
	return nil, domain.ErrHistoryDisabled
}

func (DisabledReadModel) ListEvents(context.Context, *contracts.EventFilter) ([]*contracts.EventDTO, error) {
	return nil, domain.ErrHistoryDisabled
}
