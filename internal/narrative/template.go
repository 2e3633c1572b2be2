package narrative

import (
	"context"
	"text/template"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

var explanationTmpl = template.Must(template.New("explanation").Parse(
	`{{.ProductName}} at a {{.DiscountPercent}}% discount sells for {{.DiscountedPrice}} instead of {{.CurrentPrice}}. ` +
		`The margin moves from {{.CurrentMargin}}% to {{.NewMargin}}% and profit per unit changes by {{.ProfitLoss}} ({{.ProfitLossPercent}}%).

{{if not .Recoverable}}Each unit now sells at or below cost, so no increase in sales volume can recover the lost profit.` +
		`{{else if gt .AdditionalSales 0}}To keep monthly profit unchanged you need {{.BreakEvenPercent}}% more sales, about {{.AdditionalSales}} additional units on top of {{.MonthlySales}} per month.` +
		`{{else}}The discount does not reduce profit per unit, so no extra sales are needed.{{end}}

Without extra sales monthly profit would be {{.ProfitNoIncrease}} ({{.DiffNoIncrease}} versus today). ` +
		`With the expected {{.ExpectedIncrease}}% sales increase it would be {{.ProfitWithIncrease}} ({{.DiffWithIncrease}} versus today).

{{.RiskMessage}}
{{range .Recommendations}}
- {{.Title}}: {{.Description}}{{end}}
`))

// TemplateNarrator renders a fixed explanation of the report. It never fails
// on a valid report and makes no network calls.
type TemplateNarrator struct{}

// NewTemplateNarrator creates a TemplateNarrator.
func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

// Narrate renders the explanation for report.
func (n *TemplateNarrator) Narrate(_ context.Context, req *domain.DiscountRequest, report *domain.DiscountReport) (string, error) {
	return execute(explanationTmpl, newReportView(req, report))
}
