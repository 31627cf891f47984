// Package validate holds the input checks shared by the stat, damage, and
// projection packages.
package validate

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every rejection produced in this module's
// calculation packages. Callers test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Bounds of the hidden and visible inputs accepted by the calculators.
const (
	MinLevel      = 1
	MaxLevel      = 100
	MinVariation  = 0
	MaxVariation  = 31
	MinInvestment = 0
	MaxInvestment = 252
)

// Upper bounds that keep the damage arithmetic inside int range.
const (
	MaxBase   = 255
	MaxPower  = 999
	MaxStat   = 9999
	MaxFactor = 64
)

// Invalid returns an error wrapping ErrInvalidInput with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Level checks 1 <= level <= 100.
func Level(level int) error {
	if level < MinLevel || level > MaxLevel {
		return Invalid("level must be %d-%d, got %d", MinLevel, MaxLevel, level)
	}
	return nil
}

// Investment checks 0 <= points <= 252.
func Investment(points int) error {
	if points < MinInvestment || points > MaxInvestment {
		return Invalid("investment must be %d-%d, got %d", MinInvestment, MaxInvestment, points)
	}
	return nil
}

// Variation checks that [lo, hi] lies inside [0, 31] with lo <= hi.
func Variation(lo, hi int) error {
	if lo < MinVariation || hi > MaxVariation {
		return Invalid("variation [%d,%d] outside [%d,%d]", lo, hi, MinVariation, MaxVariation)
	}
	if lo > hi {
		return Invalid("variation lower bound %d exceeds upper bound %d", lo, hi)
	}
	return nil
}

// Positive checks v >= 1 for the named field.
func Positive(field string, v int) error {
	if v < 1 {
		return Invalid("%s must be >= 1, got %d", field, v)
	}
	return nil
}

// Between checks lo <= v <= hi for the named field.
func Between(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return Invalid("%s must be %d-%d, got %d", field, lo, hi, v)
	}
	return nil
}

// Factor checks that a multiplier is finite and within [0, MaxFactor].
func Factor(field string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Invalid("%s must be a finite number, got %v", field, f)
	}
	if f < 0 || f > MaxFactor {
		return Invalid("%s must be 0-%d, got %v", field, MaxFactor, f)
	}
	return nil
}
