package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// RiskPolicy holds the thresholds that drive risk classification and the
// recommendation rules. Margins and sales increases are percentages.
type RiskPolicy struct {
	// HighMarginFloor: a new margin below this is high risk.
	HighMarginFloor float64 `yaml:"high_margin_floor"`
	// MediumMarginFloor: a new margin below this is at least medium risk.
	MediumMarginFloor float64 `yaml:"medium_margin_floor"`
	// HighSalesIncrease: a break-even sales increase above this is high risk.
	HighSalesIncrease float64 `yaml:"high_sales_increase"`
	// MediumSalesIncrease: a break-even sales increase above this is at least medium risk.
	MediumSalesIncrease float64 `yaml:"medium_sales_increase"`
	// DeepDiscountPercent: discounts above this get the "smaller discount" warning.
	DeepDiscountPercent float64 `yaml:"deep_discount_percent"`
}

// DefaultRiskPolicy returns the stock thresholds (5%, 15%, 50%, 20%, 30%).
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		HighMarginFloor:     5,
		MediumMarginFloor:   15,
		HighSalesIncrease:   50,
		MediumSalesIncrease: 20,
		DeepDiscountPercent: 30,
	}
}

// Validate checks that the thresholds are ordered and within range.
func (p RiskPolicy) Validate() error {
	values := []float64{
		p.HighMarginFloor, p.MediumMarginFloor,
		p.HighSalesIncrease, p.MediumSalesIncrease,
		p.DeepDiscountPercent,
	}
	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: thresholds must be finite numbers", ErrInvalidPolicy)
		}
	}

	if p.HighMarginFloor < 0 || p.MediumMarginFloor > 100 || p.HighMarginFloor > p.MediumMarginFloor {
		return fmt.Errorf("%w: margin floors must satisfy 0 <= high (%v) <= medium (%v) <= 100",
			ErrInvalidPolicy, p.HighMarginFloor, p.MediumMarginFloor)
	}

	if p.MediumSalesIncrease < 0 || p.MediumSalesIncrease > p.HighSalesIncrease {
		return fmt.Errorf("%w: sales increase thresholds must satisfy 0 <= medium (%v) <= high (%v)",
			ErrInvalidPolicy, p.MediumSalesIncrease, p.HighSalesIncrease)
	}

	if !inPercentRange(p.DeepDiscountPercent) {
		return fmt.Errorf("%w: deep discount percent must be between 0 and 100, got %v",
			ErrInvalidPolicy, p.DeepDiscountPercent)
	}

	return nil
}

// ParseRiskPolicy decodes a YAML policy on top of the defaults.
// Keys missing from data keep their default value; unknown keys are rejected.
func ParseRiskPolicy(data []byte) (RiskPolicy, error) {
	policy := DefaultRiskPolicy()
	if err := yaml.UnmarshalStrict(data, &policy); err != nil {
		return RiskPolicy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if err := policy.Validate(); err != nil {
		return RiskPolicy{}, err
	}

	return policy, nil
}

// LoadRiskPolicy reads a YAML policy file. An empty path yields the defaults.
func LoadRiskPolicy(path string) (RiskPolicy, error) {
	if path == "" {
		return DefaultRiskPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RiskPolicy{}, fmt.Errorf("failed to read risk policy %s: %w", path, err)
	}

	return ParseRiskPolicy(data)
}
