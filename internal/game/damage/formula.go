// Package damage computes damage ranges and hits-to-knockout labels from
// resolved statistics and a chain of multiplicative corrections.
//
// Every step floors. The order of the steps is fixed because each one
// truncates the running value.
package damage

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Variant scaling constant applied after all other corrections.
const (
	VariantNumerator   = 2868
	VariantDenominator = 4096
)

// MinRollFactor is the low end of the execution variance.
const MinRollFactor = 0.85

// Formula names accepted by FormulaByName.
const (
	FormulaVariant  = "variant"
	FormulaStandard = "standard"
)

// BaseDamage computes the uncorrected damage.
//
//	lvl    = floor(2*level/5) + 2
//	scaled = floor(lvl*power*attack/defense)
//	raw    = floor(scaled/50) + 2
//
// Precondition: level, power and attack are non-negative and within the
// validate package bounds; larger products overflow int.
// Postcondition: Returns raw damage, or an error wrapping
// validate.ErrInvalidInput when defense <= 0.
func BaseDamage(level, power, attack, defense int) (int, error) {
	if defense <= 0 {
		return 0, validate.Invalid("defense must be >= 1, got %d", defense)
	}
	lvl := level*2/5 + 2
	scaled := lvl * power * attack / defense
	return scaled/50 + 2, nil
}

// Formula turns raw damage into the maximum-roll damage.
type Formula interface {
	// Name identifies the formula in configuration and output.
	Name() string
	// Apply corrects raw damage with the combined ratio (amplifier excluded)
	// and the move amplifier.
	Apply(raw int, ratio, amplifier float64) int
}

// VariantFormula is the active formula. The amplifier is its own truncation
// step after the combined ratio, followed by the 2868/4096 variant constant.
type VariantFormula struct{}

// Name implements Formula.
func (VariantFormula) Name() string { return FormulaVariant }

// Apply implements Formula.
func (VariantFormula) Apply(raw int, ratio, amplifier float64) int {
	afterRatio := math.Floor(float64(raw) * ratio)
	afterAmp := int(math.Floor(afterRatio * amplifier))
	return afterAmp * VariantNumerator / VariantDenominator
}

// StandardFormula is the older formula: the amplifier is folded into the
// ratio, there is a single truncation, and no variant constant.
type StandardFormula struct{}

// Name implements Formula.
func (StandardFormula) Name() string { return FormulaStandard }

// Apply implements Formula.
func (StandardFormula) Apply(raw int, ratio, amplifier float64) int {
	return int(math.Floor(float64(raw) * (ratio * amplifier)))
}

// FormulaByName returns the formula registered under name.
//
// Postcondition: Returns a non-nil Formula or a non-nil error.
func FormulaByName(name string) (Formula, error) {
	switch name {
	case FormulaVariant, "":
		return VariantFormula{}, nil
	case FormulaStandard:
		return StandardFormula{}, nil
	default:
		return nil, fmt.Errorf("unknown damage formula %q", name)
	}
}

// MinRoll returns the minimum-roll damage for a maximum-roll value.
func MinRoll(maxDamage int) int {
	return int(math.Floor(float64(maxDamage) * MinRollFactor))
}
