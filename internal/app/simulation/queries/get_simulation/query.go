package get_simulation

import (
	"context"
	"strings"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// FieldSimulationID is the wire name of the id parameter.
const FieldSimulationID = "simulationId"

// Query handles the get simulation query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get simulation query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a recorded simulation by ID.
func (q *Query) Execute(ctx context.Context, simulationID string) (*contracts.SimulationRecord, error) {
	simulationID = strings.TrimSpace(simulationID)
	if simulationID == "" {
		return nil, domain.NewValidationError(FieldSimulationID, "must not be empty")
	}

	return q.readModel.GetSimulation(ctx, simulationID)
}
