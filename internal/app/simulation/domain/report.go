package domain

// RiskLevel is the coarse profitability risk tier of a discount.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank orders risk levels: low < medium < high. Unknown levels rank 0.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// IsValid reports whether l is one of the known levels.
func (l RiskLevel) IsValid() bool {
	return l.Rank() > 0
}

// RecommendationType tags an advisory item.
type RecommendationType string

const (
	RecommendationSuccess RecommendationType = "success"
	RecommendationWarning RecommendationType = "warning"
	RecommendationDanger  RecommendationType = "danger"
)

// Recommendation is one advisory item of a report.
type Recommendation struct {
	Type        RecommendationType
	Title       string
	Description string
}

// BreakEven is the sales increase required to keep total profit unchanged.
// When Recoverable is false no sales increase can recover the lost profit and
// Percent carries no meaning (it is always 0).
type BreakEven struct {
	Percent     float64
	Recoverable bool
}

// Scenario compares total monthly profit at a given sales volume against the
// profit before the discount.
type Scenario struct {
	SalesVolume float64
	TotalProfit float64
	ProfitDiff  float64
}

// DiscountReport is the full result of evaluating a DiscountRequest.
// All values are full precision; rounding is a presentation concern.
type DiscountReport struct {
	ProductName string

	DiscountedPrice float64
	DiscountAmount  float64
	UnitCost        float64

	CurrentMargin float64
	// NewMargin is the post-discount margin, clamped at MarginFloor. A 10%
	// margin under a 60% discount reports -100, not -125.
	NewMargin float64

	CurrentUnitProfit float64
	NewUnitProfit     float64

	ProfitLoss        float64
	ProfitLossPercent float64

	MinimumSalesIncrease  BreakEven
	AdditionalSalesNeeded int64

	ScenarioNoIncrease   Scenario
	ScenarioWithIncrease Scenario

	RiskLevel       RiskLevel
	RiskMessage     string
	Recommendations []Recommendation
}
