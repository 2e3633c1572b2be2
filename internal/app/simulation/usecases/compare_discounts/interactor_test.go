package compare_discounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

func newInteractor() *Interactor {
	return NewInteractor(domain.NewDefaultDiscountImpactEngine(), zap.NewNop())
}

func baseRequest(increase float64) domain.DiscountRequest {
	return domain.DiscountRequest{
		ProductName:           "Espresso Machine",
		CurrentPrice:          100,
		CurrentMargin:         40,
		ExpectedSalesIncrease: &increase,
	}
}

func TestInteractor_Execute(t *testing.T) {
	t.Run("reports follow request order", func(t *testing.T) {
		resp, err := newInteractor().Execute(context.Background(), &Request{
			Base:           baseRequest(0),
			DiscountLevels: []float64{20, 5, 10},
		})
		require.NoError(t, err)

		require.Len(t, resp.Reports, 3)
		assert.InDelta(t, 80.0, resp.Reports[0].DiscountedPrice, 1e-9)
		assert.InDelta(t, 95.0, resp.Reports[1].DiscountedPrice, 1e-9)
		assert.InDelta(t, 90.0, resp.Reports[2].DiscountedPrice, 1e-9)
	})

	t.Run("risk is reported per level", func(t *testing.T) {
		resp, err := newInteractor().Execute(context.Background(), &Request{
			Base:           baseRequest(0),
			DiscountLevels: []float64{2, 20, 60},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RiskLow, resp.Reports[0].RiskLevel)
		assert.Equal(t, domain.RiskHigh, resp.Reports[1].RiskLevel)
		assert.False(t, resp.Reports[2].MinimumSalesIncrease.Recoverable)
	})

	t.Run("base discount is ignored", func(t *testing.T) {
		base := baseRequest(0)
		base.DiscountPercent = 99
		resp, err := newInteractor().Execute(context.Background(), &Request{
			Base:           base,
			DiscountLevels: []float64{10},
		})
		require.NoError(t, err)
		assert.InDelta(t, 90.0, resp.Reports[0].DiscountedPrice, 1e-9)
	})
}

func TestInteractor_Execute_Validation(t *testing.T) {
	tooMany := make([]float64, MaxDiscountLevels+1)

	tests := []struct {
		name      string
		levels    []float64
		wantField string
	}{
		{"no levels", nil, FieldDiscountLevels},
		{"too many levels", tooMany, FieldDiscountLevels},
		{"level out of range", []float64{10, 120}, domain.FieldDiscountPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newInteractor().Execute(context.Background(), &Request{
				Base:           baseRequest(0),
				DiscountLevels: tt.levels,
			})
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			field, _ := domain.InvalidField(err)
			assert.Equal(t, tt.wantField, field)
		})
	}
}
