package projector

import (
	"fmt"

	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// MaxOpponents is the most opponents a single matchup compares.
const MaxOpponents = 3

// Target is an opponent on the receiving end of the profile's attack.
type Target struct {
	Name     string
	Defense  int
	Vitality int
	Type     float64
}

// OffenseRow holds the outcomes against one Target.
type OffenseRow struct {
	Target Target
	// AtMax uses the profile's attack at its variation maximum.
	AtMax damage.Outcome
	// AtMin uses the profile's attack at its variation minimum.
	AtMin damage.Outcome
}

// Offense computes the profile's attack against each target. The correction's
// Type factor is replaced by each target's own.
//
// Precondition: len(targets) <= MaxOpponents.
// Postcondition: Returns one row per target in input order, or an error
// wrapping validate.ErrInvalidInput.
func (p *Projector) Offense(level, power int, attack stats.Band, c damage.Correction, targets []Target) ([]OffenseRow, error) {
	if err := checkOpponents(len(targets)); err != nil {
		return nil, err
	}
	rows := make([]OffenseRow, 0, len(targets))
	for _, t := range targets {
		tc := c
		tc.Type = t.Type
		hi, err := p.engine.Calculate(damage.Request{
			Level: level, Power: power, Attack: attack.Max, Defense: t.Defense,
			Vitality: t.Vitality, Correction: tc,
		})
		if err != nil {
			return nil, fmt.Errorf("against %s: %w", t.Name, err)
		}
		lo, err := p.engine.Calculate(damage.Request{
			Level: level, Power: power, Attack: attack.Min, Defense: t.Defense,
			Vitality: t.Vitality, Correction: tc,
		})
		if err != nil {
			return nil, fmt.Errorf("against %s: %w", t.Name, err)
		}
		rows = append(rows, OffenseRow{Target: t, AtMax: hi, AtMin: lo})
	}
	return rows, nil
}

// Threat is an opponent attacking the profile.
type Threat struct {
	Name      string
	Attack    int
	Power     int
	STAB      float64
	Item      float64
	Amplifier float64
	Type      float64
}

// DefenseRow holds the outcomes of one Threat against the profile.
type DefenseRow struct {
	Threat Threat
	// Frail pairs the profile's defense minimum with its vitality maximum.
	Frail damage.Outcome
	// Sturdy pairs the profile's defense maximum with its vitality minimum.
	Sturdy damage.Outcome
}

// Defense computes each threat against the profile's defense and vitality
// bands. wall applies to every threat.
//
// Precondition: len(threats) <= MaxOpponents.
// Postcondition: Returns one row per threat in input order, or an error
// wrapping validate.ErrInvalidInput.
func (p *Projector) Defense(level int, defense, vitality stats.Band, wall float64, threats []Threat) ([]DefenseRow, error) {
	if err := checkOpponents(len(threats)); err != nil {
		return nil, err
	}
	rows := make([]DefenseRow, 0, len(threats))
	for _, t := range threats {
		c := damage.Correction{STAB: t.STAB, Type: t.Type, Item: t.Item, Wall: wall, Amplifier: t.Amplifier}
		frail, err := p.engine.Calculate(damage.Request{
			Level: level, Power: t.Power, Attack: t.Attack, Defense: defense.Min,
			Vitality: vitality.Max, Correction: c,
		})
		if err != nil {
			return nil, fmt.Errorf("from %s: %w", t.Name, err)
		}
		sturdy, err := p.engine.Calculate(damage.Request{
			Level: level, Power: t.Power, Attack: t.Attack, Defense: defense.Max,
			Vitality: vitality.Min, Correction: c,
		})
		if err != nil {
			return nil, fmt.Errorf("from %s: %w", t.Name, err)
		}
		rows = append(rows, DefenseRow{Threat: t, Frail: frail, Sturdy: sturdy})
	}
	return rows, nil
}

func checkOpponents(n int) error {
	if n == 0 {
		return validate.Invalid("at least one opponent is required")
	}
	if n > MaxOpponents {
		return validate.Invalid("at most %d opponents, got %d", MaxOpponents, n)
	}
	return nil
}
