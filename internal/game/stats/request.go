package stats

import (
	"fmt"

	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Range is a closed variation interval [Lo, Hi] within [0, 31].
type Range struct {
	Lo int
	Hi int
}

// Point returns the single-value range [v, v].
func Point(v int) Range {
	return Range{Lo: v, Hi: v}
}

// Validate checks 0 <= Lo <= Hi <= 31.
func (r Range) Validate() error {
	return validate.Variation(r.Lo, r.Hi)
}

// String formats the range as "lo" or "lo-hi".
func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%d", r.Lo)
	}
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// Band is the spread of a resolved statistic across a variation range.
type Band struct {
	Min int
	Max int
}

// String formats the band as "min~max".
func (b Band) String() string {
	return fmt.Sprintf("%d~%d", b.Min, b.Max)
}

// Request describes one statistic to resolve over a variation range.
type Request struct {
	Kind       Kind
	Base       int
	Variation  Range
	Investment int
	Level      int
	// Growth is ignored for vitality and speed.
	Growth float64
	// Stance is ignored for vitality.
	Stance float64
}

// Validate checks the request against the legal input ranges.
//
// Postcondition: Returns nil or an error wrapping validate.ErrInvalidInput.
func (r Request) Validate() error {
	if r.Kind < 0 || int(r.Kind) >= KindCount {
		return validate.Invalid("unknown statistic %d", int(r.Kind))
	}
	if err := validate.Between(r.Kind.String()+" base", r.Base, 1, validate.MaxBase); err != nil {
		return err
	}
	if err := validate.Level(r.Level); err != nil {
		return err
	}
	if err := validate.Investment(r.Investment); err != nil {
		return err
	}
	if err := r.Variation.Validate(); err != nil {
		return err
	}
	if r.Kind != Vitality {
		if err := validate.Factor("growth", r.Growth); err != nil {
			return err
		}
		if err := validate.Factor("stance", r.Stance); err != nil {
			return err
		}
	}
	return nil
}

// At resolves the statistic at a single variation value without validation.
func (r Request) At(variation int) int {
	if r.Kind == Vitality {
		return ResolveVitality(r.Base, variation, r.Investment, r.Level)
	}
	growth := r.Growth
	if !r.Kind.TakesGrowth() {
		growth = 1.0
	}
	return ResolveStat(r.Base, variation, r.Investment, r.Level, growth, r.Stance)
}

// Resolve validates the request and resolves the statistic at both ends of
// its variation range.
//
// Postcondition: Returns a Band with Min <= Max, or an error wrapping
// validate.ErrInvalidInput.
func Resolve(r Request) (Band, error) {
	if err := r.Validate(); err != nil {
		return Band{}, fmt.Errorf("resolving %s: %w", r.Kind, err)
	}
	return Band{Min: r.At(r.Variation.Lo), Max: r.At(r.Variation.Hi)}, nil
}
