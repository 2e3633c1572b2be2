package domain

import (
	"fmt"
	"math"
	"strings"
)

// Wire names of DiscountRequest fields, used in validation errors.
const (
	FieldProductName           = "productName"
	FieldCurrentPrice          = "currentPrice"
	FieldCurrentMargin         = "currentMargin"
	FieldDiscountPercent       = "discountPercent"
	FieldExpectedSalesIncrease = "expectedSalesIncrease"
	FieldCurrentMonthlySales   = "currentMonthlySales"
)

// Defaults applied to optional request fields.
const (
	DefaultExpectedSalesIncrease       = 0.0
	DefaultCurrentMonthlySales   int64 = 100
)

// Upper bounds on request values. Within them every total a report derives
// from a request stays finite.
const (
	MaxCurrentPrice                = 1e9
	MaxExpectedSalesIncrease       = 1e6
	MaxCurrentMonthlySales   int64 = 1e9
)

// DiscountRequest is a single pricing scenario submitted for simulation.
// ExpectedSalesIncrease and CurrentMonthlySales are optional: nil selects the default.
type DiscountRequest struct {
	ProductName           string
	CurrentPrice          float64
	CurrentMargin         float64 // percent of CurrentPrice, 0-100
	DiscountPercent       float64 // 0-100
	ExpectedSalesIncrease *float64
	CurrentMonthlySales   *int64
}

// scenario is a validated DiscountRequest with defaults resolved.
type scenario struct {
	productName           string
	price                 float64
	margin                float64
	discountPercent       float64
	expectedSalesIncrease float64
	monthlySales          int64
}

// Validate checks the request without evaluating it.
func (r *DiscountRequest) Validate() error {
	_, err := r.resolve()
	return err
}

// SalesIncreaseOrDefault returns ExpectedSalesIncrease or its default.
func (r *DiscountRequest) SalesIncreaseOrDefault() float64 {
	if r.ExpectedSalesIncrease == nil {
		return DefaultExpectedSalesIncrease
	}
	return *r.ExpectedSalesIncrease
}

// MonthlySalesOrDefault returns CurrentMonthlySales or its default.
func (r *DiscountRequest) MonthlySalesOrDefault() int64 {
	if r.CurrentMonthlySales == nil {
		return DefaultCurrentMonthlySales
	}
	return *r.CurrentMonthlySales
}

// WithDiscount returns a copy of the request with a different discount.
func (r DiscountRequest) WithDiscount(discountPercent float64) DiscountRequest {
	r.DiscountPercent = discountPercent
	return r
}

func (r *DiscountRequest) resolve() (*scenario, error) {
	if r == nil {
		return nil, NewValidationError(FieldProductName, "is required")
	}

	name := strings.TrimSpace(r.ProductName)
	if name == "" {
		return nil, NewValidationError(FieldProductName, "cannot be empty")
	}

	if !isFinite(r.CurrentPrice) || r.CurrentPrice <= 0 {
		return nil, NewValidationError(FieldCurrentPrice, "must be a positive number")
	}
	if r.CurrentPrice > MaxCurrentPrice {
		return nil, NewValidationError(FieldCurrentPrice, fmt.Sprintf("must be at most %.0f", MaxCurrentPrice))
	}

	if !inPercentRange(r.CurrentMargin) {
		return nil, NewValidationError(FieldCurrentMargin, "must be between 0 and 100")
	}

	if !inPercentRange(r.DiscountPercent) {
		return nil, NewValidationError(FieldDiscountPercent, "must be between 0 and 100")
	}

	salesIncrease := r.SalesIncreaseOrDefault()
	if !isFinite(salesIncrease) || salesIncrease < 0 {
		return nil, NewValidationError(FieldExpectedSalesIncrease, "must be zero or greater")
	}
	if salesIncrease > MaxExpectedSalesIncrease {
		return nil, NewValidationError(FieldExpectedSalesIncrease, fmt.Sprintf("must be at most %.0f", MaxExpectedSalesIncrease))
	}

	monthlySales := r.MonthlySalesOrDefault()
	if monthlySales < 0 {
		return nil, NewValidationError(FieldCurrentMonthlySales, "must be zero or greater")
	}
	if monthlySales > MaxCurrentMonthlySales {
		return nil, NewValidationError(FieldCurrentMonthlySales, fmt.Sprintf("must be at most %d", MaxCurrentMonthlySales))
	}

	return &scenario{
		productName:           name,
		price:                 r.CurrentPrice,
		margin:                r.CurrentMargin,
		discountPercent:       r.DiscountPercent,
		expectedSalesIncrease: salesIncrease,
		monthlySales:          monthlySales,
	}, nil
}

func inPercentRange(v float64) bool {
	return isFinite(v) && v >= 0 && v <= 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
