package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// SimulationRecord is a completed simulation as kept in history.
type SimulationRecord struct {
	SimulationID string
	Request      domain.DiscountRequest
	Report       *domain.DiscountReport
	Narrative    string
	CreatedAt    time.Time
}

// SimulationRepository builds mutations for simulation history.
// Repositories return mutations, they don't apply them.
type SimulationRepository interface {
	// InsertMut creates a mutation for inserting a simulation record
	InsertMut(record *SimulationRecord) *spanner.Mutation
}
