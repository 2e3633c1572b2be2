// Package precision rounds engine values for presentation.
// Calculations always run at full float64 precision; only transports call into
// this package, right before a value leaves the service.
package precision

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	percentPlaces = 1
	unitPlaces    = 2
)

// ErrNotFinite is returned for NaN or infinite values. Rounding never hides
// them behind a zero.
var ErrNotFinite = errors.New("precision: value is not finite")

// Money rounds a monetary amount to cents. Non-finite values are returned
// unchanged; use a Rounder where they must be rejected.
func Money(v float64) float64 {
	return passThrough(v, moneyPlaces)
}

// Percent rounds a percentage to one decimal place.
func Percent(v float64) float64 {
	return passThrough(v, percentPlaces)
}

// Units rounds a (possibly fractional) unit volume to two decimals.
func Units(v float64) float64 {
	return passThrough(v, unitPlaces)
}

// Rounder rounds a batch of values and keeps the first error. Check Err once
// the batch is done.
type Rounder struct {
	err error
}

func (r *Rounder) Money(v float64) float64   { return r.round(v, moneyPlaces) }
func (r *Rounder) Percent(v float64) float64 { return r.round(v, percentPlaces) }
func (r *Rounder) Units(v float64) float64   { return r.round(v, unitPlaces) }

// Err returns the first non-finite value seen, wrapped in ErrNotFinite.
func (r *Rounder) Err() error {
	return r.err
}

func (r *Rounder) round(v float64, places int32) float64 {
	rounded, err := Round(v, places)
	if err != nil && r.err == nil {
		r.err = err
	}
	return rounded
}

func passThrough(v float64, places int32) float64 {
	rounded, err := Round(v, places)
	if err != nil {
		return v
	}
	return rounded
}

// Round converts through decimal so that values such as 44.45 round half away
// from zero on their decimal representation rather than their binary one.
func Round(v float64, places int32) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	rounded := decimal.NewFromFloat(v).Round(places).InexactFloat64()
	if rounded == 0 {
		// avoid emitting -0 on the wire
		return 0, nil
	}
	return rounded, nil
}
