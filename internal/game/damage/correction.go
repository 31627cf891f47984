package damage

import (
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Correction holds the multiplicative modifiers of one attack.
type Correction struct {
	// STAB is the same-type bonus, 1.5 or 1.0.
	STAB float64
	// Type is the type-effectiveness multiplier.
	Type float64
	// Item is the held-item or field multiplier, possibly a free-form value.
	Item float64
	// Wall is 0.5 when a team-support wall is up, otherwise 1.0.
	Wall float64
	// Amplifier is the move amplifier, truncated separately from the ratio.
	Amplifier float64
}

// NeutralCorrection returns a Correction with every factor at 1.0.
func NeutralCorrection() Correction {
	return Correction{STAB: 1, Type: 1, Item: 1, Wall: 1, Amplifier: 1}
}

// Ratio returns STAB*Type*Item*Wall multiplied left to right. The amplifier is
// not included.
func (c Correction) Ratio() float64 {
	return c.STAB * c.Type * c.Item * c.Wall
}

// Combined returns the ratio including the amplifier, for display.
func (c Correction) Combined() float64 {
	return c.Ratio() * c.Amplifier
}

// Validate checks that every factor is finite and non-negative.
//
// Postcondition: Returns nil or an error wrapping validate.ErrInvalidInput.
func (c Correction) Validate() error {
	factors := []struct {
		name string
		v    float64
	}{
		{"stab", c.STAB},
		{"type", c.Type},
		{"item", c.Item},
		{"wall", c.Wall},
		{"amplifier", c.Amplifier},
	}
	for _, f := range factors {
		if err := validate.Factor(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}
