package contracts

import (
	"context"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

//go:generate mockgen -source=narrator.go -destination=mocks/mock_narrator.go -package=mocks

// Narrator explains a computed report in plain text.
type Narrator interface {
	Narrate(ctx context.Context, req *domain.DiscountRequest, report *domain.DiscountReport) (string, error)
}
