package list_simulations

import (
	"context"
	"strings"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	FieldRiskLevel = "riskLevel"
	FieldPageSize  = "pageSize"
)

// Request contains filtering and pagination parameters.
type Request struct {
	ProductName string
	RiskLevel   string
	PageSize    int
	PageToken   string
}

// Query handles the list simulations query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list simulations query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of simulations, newest first.
// A zero page size means DefaultPageSize; sizes above MaxPageSize are capped.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	riskLevel := strings.ToLower(strings.TrimSpace(req.RiskLevel))
	if riskLevel != "" && !domain.RiskLevel(riskLevel).IsValid() {
		return nil, domain.NewValidationError(FieldRiskLevel, "must be one of low, medium, high")
	}

	pageSize := req.PageSize
	switch {
	case pageSize < 0:
		return nil, domain.NewValidationError(FieldPageSize, "must not be negative")
	case pageSize == 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	return q.readModel.ListSimulations(ctx, &contracts.ListFilter{
		ProductName: strings.TrimSpace(req.ProductName),
		RiskLevel:   riskLevel,
		PageSize:    pageSize,
		PageToken:   req.PageToken,
	})
}
