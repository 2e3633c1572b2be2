package domain

import (
	"fmt"
	"math"
)

// MarginFloor is the lowest margin a report carries. Selling at a zero price
// reports exactly this value, and deeper losses relative to a tiny discounted
// price are clamped to it so the margin never rises as the discount grows.
const MarginFloor = -100.0

// DiscountImpactEngine turns a DiscountRequest into a DiscountReport.
//
// The engine is a pure calculation: it holds only an immutable RiskPolicy, does
// no I/O and reads no clock, so a single instance is safe for concurrent use and
// identical requests always yield identical reports.
type DiscountImpactEngine struct {
	policy RiskPolicy
}

// NewDiscountImpactEngine creates an engine with the given policy.
func NewDiscountImpactEngine(policy RiskPolicy) (*DiscountImpactEngine, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &DiscountImpactEngine{policy: policy}, nil
}

// NewDefaultDiscountImpactEngine creates an engine with DefaultRiskPolicy.
func NewDefaultDiscountImpactEngine() *DiscountImpactEngine {
	return &DiscountImpactEngine{policy: DefaultRiskPolicy()}
}

// Policy returns the engine's risk policy.
func (e *DiscountImpactEngine) Policy() RiskPolicy {
	return e.policy
}

// Evaluate validates req and computes its report.
// The only error is a *ValidationError wrapping ErrInvalidInput; arithmetic edge
// cases (zero price after discount, unrecoverable loss) are encoded in the report.
func (e *DiscountImpactEngine) Evaluate(req *DiscountRequest) (*DiscountReport, error) {
	s, err := req.resolve()
	if err != nil {
		return nil, err
	}
	return e.evaluate(s), nil
}

func (e *DiscountImpactEngine) evaluate(s *scenario) *DiscountReport {
	// 1. Unit economics. Cost is invariant under the discount.
	margin := s.margin / 100
	unitProfit := s.price * margin
	unitCost := s.price * (1 - margin)

	// 2-3. Discounted price and margin.
	discountedPrice := s.price
	newUnitProfit := unitProfit
	newMargin := s.margin
	if s.discountPercent > 0 {
		discountedPrice = s.price * (1 - s.discountPercent/100)
		newUnitProfit = discountedPrice - unitCost
		newMargin = marginOf(newUnitProfit, discountedPrice)
	}

	// 4. Per-unit impact.
	profitLoss := newUnitProfit - unitProfit
	profitLossPercent := 0.0
	if unitProfit != 0 {
		profitLossPercent = profitLoss / unitProfit * 100
	}

	// 5. Break-even volume.
	breakEven := breakEvenIncrease(unitProfit, newUnitProfit)
	volume := float64(s.monthlySales)
	additionalSales := int64(0)
	if breakEven.Recoverable {
		additionalSales = wholeUnits(volume * breakEven.Percent / 100)
	}

	// 6. Scenarios against today's total profit.
	baseline := volume * unitProfit
	grownVolume := volume * (1 + s.expectedSalesIncrease/100)

	report := &DiscountReport{
		ProductName:           s.productName,
		DiscountedPrice:       discountedPrice,
		DiscountAmount:        s.price - discountedPrice,
		UnitCost:              unitCost,
		CurrentMargin:         s.margin,
		NewMargin:             newMargin,
		CurrentUnitProfit:     unitProfit,
		NewUnitProfit:         newUnitProfit,
		ProfitLoss:            profitLoss,
		ProfitLossPercent:     profitLossPercent,
		MinimumSalesIncrease:  breakEven,
		AdditionalSalesNeeded: additionalSales,
		ScenarioNoIncrease:    scenarioAt(volume, newUnitProfit, baseline),
		ScenarioWithIncrease:  scenarioAt(grownVolume, newUnitProfit, baseline),
	}

	// 7. Risk.
	report.RiskLevel = e.policy.ClassifyRisk(newUnitProfit, newMargin, breakEven)
	report.RiskMessage = RiskMessage(report.RiskLevel, newMargin, additionalSales, breakEven.Recoverable)

	// 8. Recommendations.
	report.Recommendations = e.policy.recommend(s, report)

	return report
}

// marginOf returns profit as a percentage of price, floored at MarginFloor.
func marginOf(profit, price float64) float64 {
	if price <= 0 {
		return MarginFloor
	}
	return math.Max(MarginFloor, profit/price*100)
}

// breakEvenIncrease returns the volume growth needed so that
// newVolume * newUnitProfit == volume * unitProfit.
func breakEvenIncrease(unitProfit, newUnitProfit float64) BreakEven {
	if newUnitProfit >= unitProfit {
		return BreakEven{Percent: 0, Recoverable: true}
	}
	if newUnitProfit <= 0 {
		return BreakEven{Recoverable: false}
	}
	return BreakEven{
		Percent:     (unitProfit/newUnitProfit - 1) * 100,
		Recoverable: true,
	}
}

// wholeUnits rounds a unit count, saturating at math.MaxInt64 for break-even
// increases too large to represent.
func wholeUnits(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Max(0, math.Round(v)))
}

func scenarioAt(volume, unitProfit, baseline float64) Scenario {
	total := volume * unitProfit
	return Scenario{
		SalesVolume: volume,
		TotalProfit: total,
		ProfitDiff:  total - baseline,
	}
}

// String is a compact summary used in logs.
func (r *DiscountReport) String() string {
	return fmt.Sprintf("%s: price %.2f -> %.2f, margin %.1f%% -> %.1f%%, risk %s",
		r.ProductName, r.DiscountedPrice+r.DiscountAmount, r.DiscountedPrice,
		r.CurrentMargin, r.NewMargin, r.RiskLevel)
}
