package compare_discounts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// MaxDiscountLevels bounds one comparison.
const MaxDiscountLevels = 20

// FieldDiscountLevels is the wire name of the level list.
const FieldDiscountLevels = "discountLevels"

// Request evaluates Base once per discount level. Base.DiscountPercent is
// ignored.
type Request struct {
	Base           domain.DiscountRequest
	DiscountLevels []float64
}

// Response holds one report per level, in request order.
type Response struct {
	Reports []*domain.DiscountReport
}

// Interactor handles the compare discounts use case. It never narrates or
// records.
type Interactor struct {
	engine *domain.DiscountImpactEngine
	logger *zap.Logger
}

// NewInteractor creates a new compare discounts interactor.
func NewInteractor(engine *domain.DiscountImpactEngine, logger *zap.Logger) *Interactor {
	return &Interactor{
		engine: engine,
		logger: logger,
	}
}

// Execute evaluates every level. Any invalid level fails the whole call.
func (i *Interactor) Execute(_ context.Context, req *Request) (*Response, error) {
	switch n := len(req.DiscountLevels); {
	case n == 0:
		return nil, domain.NewValidationError(FieldDiscountLevels, "must not be empty")
	case n > MaxDiscountLevels:
		return nil, domain.NewValidationError(FieldDiscountLevels, fmt.Sprintf("must have at most %d entries", MaxDiscountLevels))
	}

	resp := &Response{Reports: make([]*domain.DiscountReport, 0, len(req.DiscountLevels))}
	for _, level := range req.DiscountLevels {
		levelReq := req.Base.WithDiscount(level)
		report, err := i.engine.Evaluate(&levelReq)
		if err != nil {
			return nil, err
		}
		resp.Reports = append(resp.Reports, report)
	}

	i.logger.Debug("discount levels compared",
		zap.String("product_name", req.Base.ProductName),
		zap.Int("levels", len(req.DiscountLevels)),
	)

	return resp, nil
}
