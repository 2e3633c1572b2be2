package domain

import "fmt"

// recommendationRule inspects a finished report and returns at most one item.
type recommendationRule func(p RiskPolicy, s *scenario, r *DiscountReport) (Recommendation, bool)

// recommendationRules are evaluated independently and in order.
var recommendationRules = []recommendationRule{
	lossRiskRule,
	salesOffsetRule,
	deepDiscountRule,
	thinMarginRule,
	noCurrentProfitRule,
}

// recommend runs the rule table. When no rule fires the report gets a
// single "safe margin" confirmation.
func (p RiskPolicy) recommend(s *scenario, r *DiscountReport) []Recommendation {
	items := make([]Recommendation, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if item, ok := rule(p, s, r); ok {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		items = append(items, Recommendation{
			Type:  RecommendationSuccess,
			Title: "Discount within a safe margin band",
			Description: fmt.Sprintf(
				"A %.1f%% discount keeps the margin at %.1f%%, comfortably above the %.1f%% caution threshold.",
				s.discountPercent, r.NewMargin, p.MediumMarginFloor),
		})
	}

	return items
}

// lossRiskRule explains a high risk level through break-even feasibility. It
// never refers to the caller's expected sales increase.
func lossRiskRule(p RiskPolicy, _ *scenario, r *DiscountReport) (Recommendation, bool) {
	if r.RiskLevel != RiskHigh {
		return Recommendation{}, false
	}

	var description string
	switch {
	case !r.MinimumSalesIncrease.Recoverable:
		description = "Each discounted sale earns no profit, so no sales increase can restore today's total profit."
	case r.MinimumSalesIncrease.Percent > p.HighSalesIncrease:
		description = fmt.Sprintf(
			"Keeping total profit unchanged requires %.1f%% more sales, a jump that is hard to sustain.",
			r.MinimumSalesIncrease.Percent)
	default:
		description = fmt.Sprintf(
			"A %.1f%% margin leaves almost no profit per sale, so a small rise in costs or a dip in demand turns the promotion into a loss.",
			r.NewMargin)
	}

	return Recommendation{
		Type:        RecommendationDanger,
		Title:       "Break-even is hard to reach",
		Description: description + " Reconsider the discount depth or pair it with a cost reduction.",
	}, true
}

func salesOffsetRule(_ RiskPolicy, _ *scenario, r *DiscountReport) (Recommendation, bool) {
	with := r.ScenarioWithIncrease.ProfitDiff
	if with <= r.ScenarioNoIncrease.ProfitDiff || with <= 0 {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:  RecommendationSuccess,
		Title: "Expected sales increase offsets the discount",
		Description: fmt.Sprintf(
			"If sales grow as expected, monthly profit rises by %.2f compared with today.", with),
	}, true
}

func deepDiscountRule(p RiskPolicy, s *scenario, _ *DiscountReport) (Recommendation, bool) {
	if s.discountPercent <= p.DeepDiscountPercent {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:  RecommendationWarning,
		Title: "Consider a smaller discount or a bundle",
		Description: fmt.Sprintf(
			"Discounts above %.0f%% erode margin quickly. A smaller discount, a bundle offer "+
				"or a time-limited promotion may reach the same customers at a lower cost.",
			p.DeepDiscountPercent),
	}, true
}

func thinMarginRule(p RiskPolicy, _ *scenario, r *DiscountReport) (Recommendation, bool) {
	if r.NewMargin <= p.HighMarginFloor || r.NewMargin >= p.MediumMarginFloor {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:  RecommendationWarning,
		Title: "Monitor results closely after launch",
		Description: fmt.Sprintf(
			"The new margin of %.1f%% leaves little room for error. Track sales volume and "+
				"profit weekly and be ready to end the promotion early.", r.NewMargin),
	}, true
}

func noCurrentProfitRule(_ RiskPolicy, _ *scenario, r *DiscountReport) (Recommendation, bool) {
	if r.CurrentUnitProfit != 0 {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:  RecommendationWarning,
		Title: "No profit at the current price",
		Description: "The product currently sells at cost, so the profit change cannot be " +
			"expressed as a percentage. Any discount turns each sale into a loss.",
	}, true
}
