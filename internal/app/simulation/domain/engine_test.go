package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }

func newRequest(price, margin, discount float64) *DiscountRequest {
	return &DiscountRequest{
		ProductName:     "Espresso Machine",
		CurrentPrice:    price,
		CurrentMargin:   margin,
		DiscountPercent: discount,
	}
}

func TestDiscountImpactEngine_ConcreteScenarios(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	t.Run("price 100 margin 40 discount 20 is high risk", func(t *testing.T) {
		report, err := engine.Evaluate(newRequest(100, 40, 20))
		require.NoError(t, err)

		assert.InDelta(t, 60.0, report.UnitCost, 1e-9)
		assert.InDelta(t, 80.0, report.DiscountedPrice, 1e-9)
		assert.InDelta(t, 20.0, report.DiscountAmount, 1e-9)
		assert.InDelta(t, 20.0, report.NewUnitProfit, 1e-9)
		assert.InDelta(t, 25.0, report.NewMargin, 1e-9)
		assert.InDelta(t, -20.0, report.ProfitLoss, 1e-9)
		assert.InDelta(t, -50.0, report.ProfitLossPercent, 1e-9)
		assert.True(t, report.MinimumSalesIncrease.Recoverable)
		assert.InDelta(t, 100.0, report.MinimumSalesIncrease.Percent, 1e-9)
		assert.Equal(t, int64(100), report.AdditionalSalesNeeded)
		assert.Equal(t, RiskHigh, report.RiskLevel)
	})

	t.Run("price 50 margin 50 discount 10 is medium risk", func(t *testing.T) {
		report, err := engine.Evaluate(newRequest(50, 50, 10))
		require.NoError(t, err)

		assert.InDelta(t, 25.0, report.UnitCost, 1e-9)
		assert.InDelta(t, 45.0, report.DiscountedPrice, 1e-9)
		assert.InDelta(t, 25.0, report.CurrentUnitProfit, 1e-9)
		assert.InDelta(t, 20.0, report.NewUnitProfit, 1e-9)
		assert.InDelta(t, 44.444, report.NewMargin, 1e-3)
		assert.InDelta(t, -5.0, report.ProfitLoss, 1e-9)
		assert.InDelta(t, 25.0, report.MinimumSalesIncrease.Percent, 1e-9)
		assert.Equal(t, int64(25), report.AdditionalSalesNeeded)
		assert.Equal(t, RiskMedium, report.RiskLevel)
	})

	t.Run("small discount on a healthy margin is low risk", func(t *testing.T) {
		report, err := engine.Evaluate(newRequest(200, 60, 5))
		require.NoError(t, err)

		// cost 80, price 190, profit 110 vs 120
		assert.InDelta(t, 57.894, report.NewMargin, 1e-3)
		assert.InDelta(t, 9.0909, report.MinimumSalesIncrease.Percent, 1e-3)
		assert.Equal(t, int64(9), report.AdditionalSalesNeeded)
		assert.Equal(t, RiskLow, report.RiskLevel)
		require.Len(t, report.Recommendations, 1)
		assert.Equal(t, RecommendationSuccess, report.Recommendations[0].Type)
		assert.Equal(t, "Discount within a safe margin band", report.Recommendations[0].Title)
	})
}

func TestDiscountImpactEngine_ZeroDiscount(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	for _, margin := range []float64{20, 33.3, 40, 75, 100} {
		report, err := engine.Evaluate(newRequest(79.99, margin, 0))
		require.NoError(t, err)

		assert.Equal(t, 79.99, report.DiscountedPrice)
		assert.Equal(t, 0.0, report.DiscountAmount)
		assert.Equal(t, margin, report.NewMargin)
		assert.Equal(t, 0.0, report.ProfitLoss)
		assert.Equal(t, 0.0, report.ProfitLossPercent)
		assert.True(t, report.MinimumSalesIncrease.Recoverable)
		assert.Equal(t, 0.0, report.MinimumSalesIncrease.Percent)
		assert.Equal(t, int64(0), report.AdditionalSalesNeeded)
		assert.Equal(t, RiskLow, report.RiskLevel, "margin %v", margin)
	}
}

func TestDiscountImpactEngine_ZeroDiscountOnThinMargins(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	tests := []struct {
		margin float64
		want   RiskLevel
	}{
		{0, RiskHigh},
		{3, RiskHigh},
		{10, RiskMedium},
		{15, RiskLow},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("margin %v", tt.margin), func(t *testing.T) {
			report, err := engine.Evaluate(newRequest(100, tt.margin, 0))
			require.NoError(t, err)

			assert.Equal(t, 0.0, report.ProfitLoss)
			assert.Equal(t, tt.want, report.RiskLevel)
		})
	}
}

func TestDiscountImpactEngine_NewMarginIsClamped(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	// cost 90, discounted price 40: raw margin -125
	report, err := engine.Evaluate(newRequest(100, 10, 60))
	require.NoError(t, err)

	assert.Equal(t, MarginFloor, report.NewMargin)
	assert.InDelta(t, -50.0, report.NewUnitProfit, 1e-9)
}

func TestDiscountImpactEngine_FullDiscount(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	for _, margin := range []float64{0, 40, 100} {
		report, err := engine.Evaluate(newRequest(100, margin, 100))
		require.NoError(t, err)

		assert.Equal(t, 0.0, report.DiscountedPrice)
		assert.Equal(t, 100.0, report.DiscountAmount)
		assert.Equal(t, -100.0, report.NewMargin)
		assert.Equal(t, RiskHigh, report.RiskLevel)
		assert.Equal(t, int64(0), report.AdditionalSalesNeeded)
	}
}

func TestDiscountImpactEngine_UnrecoverableLoss(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	// cost 70, discounted price 60: every sale loses 10
	report, err := engine.Evaluate(newRequest(100, 30, 40))
	require.NoError(t, err)

	assert.False(t, report.MinimumSalesIncrease.Recoverable)
	assert.Equal(t, 0.0, report.MinimumSalesIncrease.Percent)
	assert.Equal(t, int64(0), report.AdditionalSalesNeeded)
	assert.InDelta(t, -16.667, report.NewMargin, 1e-3)
	assert.Equal(t, RiskHigh, report.RiskLevel)
	assert.Contains(t, report.RiskMessage, "no sales increase can recover")
}

func TestDiscountImpactEngine_DiscountedPriceIsExact(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	prices := []float64{0.01, 9.99, 100, 1234.56, 99999.95}
	discounts := []float64{0.5, 1, 12.5, 33.33, 50, 99.9}

	for _, price := range prices {
		for _, discount := range discounts {
			report, err := engine.Evaluate(newRequest(price, 35, discount))
			require.NoError(t, err)

			expected := price * (1 - discount/100)
			assert.InDelta(t, expected, report.DiscountedPrice, 1e-9)
			assert.GreaterOrEqual(t, report.DiscountedPrice, 0.0)
			assert.InDelta(t, price-expected, report.DiscountAmount, 1e-9)
		}
	}
}

func TestDiscountImpactEngine_Idempotent(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()
	req := &DiscountRequest{
		ProductName:           "Running Shoes",
		CurrentPrice:          129.99,
		CurrentMargin:         37.5,
		DiscountPercent:       17.5,
		ExpectedSalesIncrease: float64Ptr(22),
		CurrentMonthlySales:   int64Ptr(340),
	}

	first, err := engine.Evaluate(req)
	require.NoError(t, err)
	second, err := engine.Evaluate(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.NewMargin), math.Float64bits(second.NewMargin))
	assert.Equal(t, math.Float64bits(first.ScenarioWithIncrease.ProfitDiff), math.Float64bits(second.ScenarioWithIncrease.ProfitDiff))
}

func TestDiscountImpactEngine_Monotonicity(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	for _, margin := range []float64{0, 10, 25, 40, 60, 90, 100} {
		prevMargin := math.Inf(1)
		prevRank := 0

		for discount := 0.0; discount <= 100; discount += 0.5 {
			report, err := engine.Evaluate(newRequest(250, margin, discount))
			require.NoError(t, err)

			assert.LessOrEqual(t, report.NewMargin, prevMargin+1e-9,
				"margin %v discount %v: new margin increased", margin, discount)
			assert.GreaterOrEqual(t, report.RiskLevel.Rank(), prevRank,
				"margin %v discount %v: risk decreased", margin, discount)

			prevMargin = report.NewMargin
			prevRank = report.RiskLevel.Rank()
		}
	}
}

func TestDiscountImpactEngine_ScenarioConsistency(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	for _, increase := range []float64{0, 5, 25, 100, 300} {
		for _, discount := range []float64{0, 10, 20, 30, 40} {
			req := newRequest(100, 45, discount)
			req.ExpectedSalesIncrease = float64Ptr(increase)

			report, err := engine.Evaluate(req)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, report.ScenarioWithIncrease.ProfitDiff, report.ScenarioNoIncrease.ProfitDiff)
			assert.InDelta(t, 100*report.ProfitLoss, report.ScenarioNoIncrease.ProfitDiff, 1e-9)
			assert.InDelta(t, 100*(1+increase/100), report.ScenarioWithIncrease.SalesVolume, 1e-9)
		}
	}
}

func TestDiscountImpactEngine_ScenarioOrderWithLossPerUnit(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	// cost 90, discounted price 50: every sale loses 40, so more sales lose more
	req := newRequest(100, 10, 50)
	req.ExpectedSalesIncrease = float64Ptr(50)

	report, err := engine.Evaluate(req)
	require.NoError(t, err)

	assert.InDelta(t, -40.0, report.NewUnitProfit, 1e-9)
	assert.InDelta(t, -5000.0, report.ScenarioNoIncrease.ProfitDiff, 1e-9)
	assert.InDelta(t, -7000.0, report.ScenarioWithIncrease.ProfitDiff, 1e-9)
	assert.Less(t, report.ScenarioWithIncrease.ProfitDiff, report.ScenarioNoIncrease.ProfitDiff)
}

func TestDiscountImpactEngine_RiskIgnoresExpectedIncrease(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	base, err := engine.Evaluate(newRequest(100, 40, 20))
	require.NoError(t, err)

	optimistic := newRequest(100, 40, 20)
	optimistic.ExpectedSalesIncrease = float64Ptr(500)
	report, err := engine.Evaluate(optimistic)
	require.NoError(t, err)

	assert.Equal(t, base.RiskLevel, report.RiskLevel)
	assert.Equal(t, base.RiskMessage, report.RiskMessage)
}

func TestDiscountImpactEngine_Defaults(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	report, err := engine.Evaluate(newRequest(100, 40, 20))
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.ScenarioNoIncrease.SalesVolume)
	assert.Equal(t, 100.0, report.ScenarioWithIncrease.SalesVolume)
	assert.Equal(t, report.ScenarioNoIncrease, report.ScenarioWithIncrease)
}

func TestDiscountImpactEngine_InvalidInput(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	tests := []struct {
		name  string
		req   *DiscountRequest
		field string
	}{
		{"discount above 100", newRequest(100, 40, 150), FieldDiscountPercent},
		{"negative discount", newRequest(100, 40, -1), FieldDiscountPercent},
		{"empty product name", &DiscountRequest{ProductName: "  ", CurrentPrice: 10, CurrentMargin: 10}, FieldProductName},
		{"zero price", newRequest(0, 40, 10), FieldCurrentPrice},
		{"negative price", newRequest(-5, 40, 10), FieldCurrentPrice},
		{"infinite price", newRequest(math.Inf(1), 40, 10), FieldCurrentPrice},
		{"margin above 100", newRequest(100, 101, 10), FieldCurrentMargin},
		{"margin NaN", newRequest(100, math.NaN(), 10), FieldCurrentMargin},
		{"nil request", nil, FieldProductName},
		{"price above bound", newRequest(MaxCurrentPrice*2, 40, 10), FieldCurrentPrice},
		{"huge price and volume", &DiscountRequest{
			ProductName:         "Espresso Machine",
			CurrentPrice:        1e300,
			CurrentMargin:       50,
			DiscountPercent:     10,
			CurrentMonthlySales: int64Ptr(math.MaxInt64),
		}, FieldCurrentPrice},
		{"monthly sales above bound", &DiscountRequest{
			ProductName:         "Espresso Machine",
			CurrentPrice:        100,
			CurrentMargin:       50,
			DiscountPercent:     10,
			CurrentMonthlySales: int64Ptr(math.MaxInt64),
		}, FieldCurrentMonthlySales},
		{"sales increase above bound", &DiscountRequest{
			ProductName:           "Espresso Machine",
			CurrentPrice:          100,
			CurrentMargin:         50,
			DiscountPercent:       10,
			ExpectedSalesIncrease: float64Ptr(MaxExpectedSalesIncrease * 10),
		}, FieldExpectedSalesIncrease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := engine.Evaluate(tt.req)
			require.Error(t, err)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, ErrInvalidInput)

			field, ok := InvalidField(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}

	t.Run("negative optional values", func(t *testing.T) {
		req := newRequest(100, 40, 10)
		req.ExpectedSalesIncrease = float64Ptr(-10)
		_, err := engine.Evaluate(req)
		field, _ := InvalidField(err)
		assert.Equal(t, FieldExpectedSalesIncrease, field)

		req = newRequest(100, 40, 10)
		req.CurrentMonthlySales = int64Ptr(-1)
		_, err = engine.Evaluate(req)
		field, _ = InvalidField(err)
		assert.Equal(t, FieldCurrentMonthlySales, field)
	})

	t.Run("error message names the field", func(t *testing.T) {
		_, err := engine.Evaluate(newRequest(100, 40, 150))
		assert.EqualError(t, err, "invalid input: discountPercent must be between 0 and 100")
		assert.False(t, errors.Is(err, ErrSimulationNotFound))
	})
}

func TestDiscountImpactEngine_LargestInputsStayFinite(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	req := newRequest(MaxCurrentPrice, 50, 10)
	req.CurrentMonthlySales = int64Ptr(MaxCurrentMonthlySales)
	req.ExpectedSalesIncrease = float64Ptr(MaxExpectedSalesIncrease)

	report, err := engine.Evaluate(req)
	require.NoError(t, err)

	for _, v := range []float64{
		report.DiscountedPrice,
		report.ProfitLoss,
		report.MinimumSalesIncrease.Percent,
		report.ScenarioNoIncrease.TotalProfit,
		report.ScenarioNoIncrease.ProfitDiff,
		report.ScenarioWithIncrease.SalesVolume,
		report.ScenarioWithIncrease.TotalProfit,
		report.ScenarioWithIncrease.ProfitDiff,
	} {
		assert.True(t, isFinite(v), "got %v", v)
	}
	assert.Positive(t, report.AdditionalSalesNeeded)
}

func TestDiscountImpactEngine_AdditionalSalesSaturate(t *testing.T) {
	engine := NewDefaultDiscountImpactEngine()

	// new unit profit of roughly 1e-9 needs a break-even increase near 5e12%
	req := newRequest(100, 50, 49.999999999)
	req.CurrentMonthlySales = int64Ptr(MaxCurrentMonthlySales)

	report, err := engine.Evaluate(req)
	require.NoError(t, err)

	require.True(t, report.MinimumSalesIncrease.Recoverable)
	assert.Equal(t, int64(math.MaxInt64), report.AdditionalSalesNeeded)
	assert.Equal(t, RiskHigh, report.RiskLevel)
}

func TestWholeUnits(t *testing.T) {
	assert.Equal(t, int64(3), wholeUnits(2.5))
	assert.Equal(t, int64(0), wholeUnits(-3))
	assert.Equal(t, int64(math.MaxInt64), wholeUnits(1e19))
	assert.Equal(t, int64(math.MaxInt64), wholeUnits(math.Inf(1)))
}
