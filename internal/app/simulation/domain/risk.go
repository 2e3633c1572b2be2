package domain

import "fmt"

// ClassifyRisk applies the risk rules in order; the first match wins.
// It depends only on the post-discount unit economics, never on the
// caller's expected sales increase.
func (p RiskPolicy) ClassifyRisk(newUnitProfit, newMargin float64, breakEven BreakEven) RiskLevel {
	switch {
	case newUnitProfit <= 0,
		newMargin < p.HighMarginFloor,
		!breakEven.Recoverable,
		breakEven.Percent > p.HighSalesIncrease:
		return RiskHigh
	case newMargin < p.MediumMarginFloor,
		breakEven.Percent > p.MediumSalesIncrease:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Risk messages keyed by level. Each takes the new margin and the additional
// monthly units needed to break even.
const (
	riskMessageLow = "Low risk: the discount keeps a %.1f%% margin and needs " +
		"%d additional units per month to keep profit unchanged."
	riskMessageMedium = "Moderate risk: the margin drops to %.1f%% and you need " +
		"%d additional units per month to keep profit unchanged."
	riskMessageHigh = "High risk: the margin drops to %.1f%% and you need " +
		"%d additional units per month to keep profit unchanged."
	riskMessageUnrecoverable = "High risk: at a %.1f%% margin each sale no longer " +
		"earns a profit, so no sales increase can recover the loss."
)

// RiskMessage renders the fixed explanation for a risk level.
func RiskMessage(level RiskLevel, newMargin float64, additionalSales int64, recoverable bool) string {
	switch level {
	case RiskLow:
		return fmt.Sprintf(riskMessageLow, newMargin, additionalSales)
	case RiskMedium:
		return fmt.Sprintf(riskMessageMedium, newMargin, additionalSales)
	default:
		if !recoverable {
			return fmt.Sprintf(riskMessageUnrecoverable, newMargin)
		}
		return fmt.Sprintf(riskMessageHigh, newMargin, additionalSales)
	}
}
