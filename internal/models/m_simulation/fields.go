package m_simulation

// Field name constants for the simulations table.
const (
	TableName = "simulations"

	SimulationID          = "simulation_id"
	ProductName           = "product_name"
	CurrentPrice          = "current_price"
	CurrentMargin         = "current_margin"
	DiscountPercent       = "discount_percent"
	ExpectedSalesIncrease = "expected_sales_increase"
	CurrentMonthlySales   = "current_monthly_sales"
	RiskLevel             = "risk_level"
	NewMargin             = "new_margin"
	Recoverable           = "recoverable"
	Report                = "report"
	Narrative             = "narrative"
	CreatedAt             = "created_at"
)

// Columns lists every column in read order.
func Columns() []string {
	return []string{
		SimulationID,
		ProductName,
		CurrentPrice,
		CurrentMargin,
		DiscountPercent,
		ExpectedSalesIncrease,
		CurrentMonthlySales,
		RiskLevel,
		NewMargin,
		Recoverable,
		Report,
		Narrative,
		CreatedAt,
	}
}
