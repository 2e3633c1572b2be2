package narrative

import "text/template"

const systemInstruction = `You are a pricing analyst for small online retailers.
Explain the financial impact of a proposed discount in plain language.
Use only the numbers you are given; never invent figures.
Answer in at most three short paragraphs of plain text without headings, lists or formatting.`

var promptTmpl = template.Must(template.New("prompt").Parse(`Product: {{.ProductName}}
Current price: {{.CurrentPrice}}
Discount: {{.DiscountPercent}}%
Discounted price: {{.DiscountedPrice}}
Margin: {{.CurrentMargin}}% -> {{.NewMargin}}%
Profit change per unit: {{.ProfitLoss}} ({{.ProfitLossPercent}}%)
{{if .Recoverable}}Sales increase needed to keep profit unchanged: {{.BreakEvenPercent}}% ({{.AdditionalSales}} extra units per month on {{.MonthlySales}})
{{else}}Sales increase needed to keep profit unchanged: not achievable, every unit sells at or below cost
{{end}}Monthly profit without extra sales: {{.ProfitNoIncrease}} ({{.DiffNoIncrease}})
Monthly profit with the expected {{.ExpectedIncrease}}% increase: {{.ProfitWithIncrease}} ({{.DiffWithIncrease}})
Risk level: {{.RiskLevel}}
Risk summary: {{.RiskMessage}}
Recommendations:
{{range .Recommendations}}- [{{.Type}}] {{.Title}}: {{.Description}}
{{end}}
Explain what this discount means for the business and whether it is worth running.`))
