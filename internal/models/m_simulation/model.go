package m_simulation

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the simulations table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a simulation.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{
			data.SimulationID,
			data.ProductName,
			data.CurrentPrice,
			data.CurrentMargin,
			data.DiscountPercent,
			data.ExpectedSalesIncrease,
			data.CurrentMonthlySales,
			data.RiskLevel,
			data.NewMargin,
			data.Recoverable,
			data.Report,
			data.Narrative,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a simulation.
func (m *Model) DeleteMut(simulationID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{simulationID})
}
