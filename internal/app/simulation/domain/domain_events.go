package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// SimulationCompletedEvent is emitted when a simulation is recorded in history.
type SimulationCompletedEvent struct {
	SimulationID    string    `json:"simulation_id"`
	ProductName     string    `json:"product_name"`
	DiscountPercent float64   `json:"discount_percent"`
	NewMargin       float64   `json:"new_margin"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recoverable     bool      `json:"recoverable"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewSimulationCompletedEvent builds the event for a recorded simulation.
func NewSimulationCompletedEvent(simulationID string, req *DiscountRequest, report *DiscountReport, at time.Time) *SimulationCompletedEvent {
	return &SimulationCompletedEvent{
		SimulationID:    simulationID,
		ProductName:     report.ProductName,
		DiscountPercent: req.DiscountPercent,
		NewMargin:       report.NewMargin,
		RiskLevel:       report.RiskLevel,
		Recoverable:     report.MinimumSalesIncrease.Recoverable,
		OccurredAt:      at,
	}
}

func (e *SimulationCompletedEvent) EventType() string {
	return "simulation.completed"
}

func (e *SimulationCompletedEvent) AggregateID() string {
	return e.SimulationID
}
