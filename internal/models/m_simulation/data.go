package m_simulation

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the simulations table.
type Data struct {
	SimulationID          string             `spanner:"simulation_id"`
	ProductName           string             `spanner:"product_name"`
	CurrentPrice          float64            `spanner:"current_price"`
	CurrentMargin         float64            `spanner:"current_margin"`
	DiscountPercent       float64            `spanner:"discount_percent"`
	ExpectedSalesIncrease float64            `spanner:"expected_sales_increase"`
	CurrentMonthlySales   int64              `spanner:"current_monthly_sales"`
	RiskLevel             string             `spanner:"risk_level"`
	NewMargin             float64            `spanner:"new_margin"`
	Recoverable           bool               `spanner:"recoverable"`
	Report                spanner.NullJSON   `spanner:"report"` // ReportRecord
	Narrative             spanner.NullString `spanner:"narrative"`
	CreatedAt             time.Time          `spanner:"created_at"`
}

// ReportRecord is the JSON document stored in the report column.
// It mirrors domain.DiscountReport at full precision.
type ReportRecord struct {
	DiscountedPrice       float64                `json:"discounted_price"`
	DiscountAmount        float64                `json:"discount_amount"`
	UnitCost              float64                `json:"unit_cost"`
	CurrentMargin         float64                `json:"current_margin"`
	NewMargin             float64                `json:"new_margin"`
	CurrentUnitProfit     float64                `json:"current_unit_profit"`
	NewUnitProfit         float64                `json:"new_unit_profit"`
	ProfitLoss            float64                `json:"profit_loss"`
	ProfitLossPercent     float64                `json:"profit_loss_percent"`
	MinimumSalesIncrease  float64                `json:"minimum_sales_increase"`
	Recoverable           bool                   `json:"recoverable"`
	AdditionalSalesNeeded int64                  `json:"additional_sales_needed"`
	ScenarioNoIncrease    ScenarioRecord         `json:"scenario_no_increase"`
	ScenarioWithIncrease  ScenarioRecord         `json:"scenario_with_increase"`
	RiskLevel             string                 `json:"risk_level"`
	RiskMessage           string                 `json:"risk_message"`
	Recommendations       []RecommendationRecord `json:"recommendations"`
}

// ScenarioRecord is a stored scenario comparison.
type ScenarioRecord struct {
	SalesVolume float64 `json:"sales_volume"`
	TotalProfit float64 `json:"total_profit"`
	ProfitDiff  float64 `json:"profit_diff"`
}

// RecommendationRecord is a stored advisory item.
type RecommendationRecord struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
