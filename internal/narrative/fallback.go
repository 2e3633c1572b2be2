package narrative

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// FallbackNarrator uses primary and switches to fallback when primary fails.
type FallbackNarrator struct {
	primary  contracts.Narrator
	fallback contracts.Narrator
	logger   *zap.Logger
}

// NewFallbackNarrator creates a FallbackNarrator.
func NewFallbackNarrator(primary, fallback contracts.Narrator, logger *zap.Logger) *FallbackNarrator {
	return &FallbackNarrator{primary: primary, fallback: fallback, logger: logger}
}

// Narrate returns the primary narrative, or the fallback's when the primary
// errors or returns nothing.
func (n *FallbackNarrator) Narrate(ctx context.Context, req *domain.DiscountRequest, report *domain.DiscountReport) (string, error) {
	text, err := n.primary.Narrate(ctx, req, report)
	if err == nil && text != "" {
		return text, nil
	}

	n.logger.Warn("primary narrator failed, using fallback",
		zap.String("product_name", report.ProductName),
		zap.Error(err),
	)
	return n.fallback.Narrate(ctx, req, report)
}
