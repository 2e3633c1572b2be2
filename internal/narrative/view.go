// Package narrative explains discount reports in plain text, either through a
// hosted language model or a deterministic template.
package narrative

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/pkg/precision"
)

// reportView is the rounded, display-ready data shared by the prompt and the
// template narrator.
type reportView struct {
	ProductName        string
	CurrentPrice       string
	DiscountPercent    string
	DiscountedPrice    string
	CurrentMargin      string
	NewMargin          string
	ProfitLoss         string
	ProfitLossPercent  string
	Recoverable        bool
	BreakEvenPercent   string
	AdditionalSales    int64
	MonthlySales       int64
	ExpectedIncrease   string
	ProfitNoIncrease   string
	DiffNoIncrease     string
	ProfitWithIncrease string
	DiffWithIncrease   string
	RiskLevel          string
	RiskMessage        string
	Recommendations    []domain.Recommendation
}

func newReportView(req *domain.DiscountRequest, r *domain.DiscountReport) reportView {
	return reportView{
		ProductName:        r.ProductName,
		CurrentPrice:       money(req.CurrentPrice),
		DiscountPercent:    percent(req.DiscountPercent),
		DiscountedPrice:    money(r.DiscountedPrice),
		CurrentMargin:      percent(r.CurrentMargin),
		NewMargin:          percent(r.NewMargin),
		ProfitLoss:         signedMoney(r.ProfitLoss),
		ProfitLossPercent:  percent(r.ProfitLossPercent),
		Recoverable:        r.MinimumSalesIncrease.Recoverable,
		BreakEvenPercent:   percent(r.MinimumSalesIncrease.Percent),
		AdditionalSales:    r.AdditionalSalesNeeded,
		MonthlySales:       req.MonthlySalesOrDefault(),
		ExpectedIncrease:   percent(req.SalesIncreaseOrDefault()),
		ProfitNoIncrease:   money(r.ScenarioNoIncrease.TotalProfit),
		DiffNoIncrease:     signedMoney(r.ScenarioNoIncrease.ProfitDiff),
		ProfitWithIncrease: money(r.ScenarioWithIncrease.TotalProfit),
		DiffWithIncrease:   signedMoney(r.ScenarioWithIncrease.ProfitDiff),
		RiskLevel:          string(r.RiskLevel),
		RiskMessage:        r.RiskMessage,
		Recommendations:    r.Recommendations,
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", precision.Money(v))
}

func signedMoney(v float64) string {
	return fmt.Sprintf("%+.2f", precision.Money(v))
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f", precision.Percent(v))
}

// execute renders tmpl and normalises surrounding whitespace.
func execute(tmpl *template.Template, view reportView) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(b.String()), nil
}
