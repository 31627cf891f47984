package damage

import (
	"fmt"

	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Labels produced by ClassifyHits.
const (
	LabelNotApplicable = "not applicable"
)

// Outcome is a computed damage range and its hits-to-knockout label.
type Outcome struct {
	Min   int
	Max   int
	Label string
}

// String formats the outcome as "min~max (label)".
func (o Outcome) String() string {
	return fmt.Sprintf("%d~%d (%s)", o.Min, o.Max, o.Label)
}

// Request carries concrete statistics for a single damage calculation.
type Request struct {
	Level      int
	Power      int
	Attack     int
	Defense    int
	Vitality   int
	Correction Correction
}

// Validate checks the request against the legal input ranges. Vitality only
// has an upper bound: a non-positive vitality classifies as not applicable.
//
// Postcondition: Returns nil or an error wrapping validate.ErrInvalidInput.
func (r Request) Validate() error {
	if err := validate.Level(r.Level); err != nil {
		return err
	}
	if err := validate.Between("power", r.Power, 1, validate.MaxPower); err != nil {
		return err
	}
	if err := validate.Between("attack", r.Attack, 1, validate.MaxStat); err != nil {
		return err
	}
	if err := validate.Between("defense", r.Defense, 1, validate.MaxStat); err != nil {
		return err
	}
	if r.Vitality > validate.MaxStat {
		return validate.Invalid("vitality must be <= %d, got %d", validate.MaxStat, r.Vitality)
	}
	return r.Correction.Validate()
}

// Engine runs the damage pipeline with a fixed Formula. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	formula Formula
}

// NewEngine creates an Engine. A nil formula selects VariantFormula.
//
// Postcondition: Returns a non-nil Engine.
func NewEngine(f Formula) *Engine {
	if f == nil {
		f = VariantFormula{}
	}
	return &Engine{formula: f}
}

// Formula returns the engine's formula.
func (e *Engine) Formula() Formula {
	return e.formula
}

// MaxDamage computes the maximum-roll damage for concrete statistics.
//
// Precondition: inputs lie within the bounds checked by Request.Validate.
// Postcondition: Returns damage >= 0, or an error wrapping
// validate.ErrInvalidInput when defense <= 0.
func (e *Engine) MaxDamage(level, power, attack, defense int, c Correction) (int, error) {
	raw, err := BaseDamage(level, power, attack, defense)
	if err != nil {
		return 0, err
	}
	return e.formula.Apply(raw, c.Ratio(), c.Amplifier), nil
}

// Calculate validates the request and returns the damage range and label.
//
// Postcondition: Returns an Outcome with Min <= Max, or an error wrapping
// validate.ErrInvalidInput.
func (e *Engine) Calculate(r Request) (Outcome, error) {
	if err := r.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("calculating damage: %w", err)
	}
	maxDmg, err := e.MaxDamage(r.Level, r.Power, r.Attack, r.Defense, r.Correction)
	if err != nil {
		return Outcome{}, fmt.Errorf("calculating damage: %w", err)
	}
	minDmg := MinRoll(maxDmg)
	return Outcome{
		Min:   minDmg,
		Max:   maxDmg,
		Label: ClassifyHits(minDmg, maxDmg, r.Vitality),
	}, nil
}

// ClassifyHits labels how many hits reduce vitality to zero.
//
//   - vitality <= 0 or minDamage <= 0: "not applicable"
//   - minDamage >= vitality: "certain 1-hit"
//   - ceil(vitality/max) == ceil(vitality/min) == N: "certain N-hit"
//   - otherwise "variable M–N hit" with M from max damage and N from min damage
func ClassifyHits(minDamage, maxDamage, vitality int) string {
	if vitality <= 0 || minDamage <= 0 {
		return LabelNotApplicable
	}
	if maxDamage < minDamage {
		maxDamage = minDamage
	}
	hitsAtMin := ceilDiv(vitality, maxDamage)
	hitsAtMax := ceilDiv(vitality, minDamage)
	switch {
	case minDamage >= vitality:
		return "certain 1-hit"
	case hitsAtMin == hitsAtMax:
		return fmt.Sprintf("certain %d-hit", hitsAtMin)
	default:
		return fmt.Sprintf("variable %d–%d hit", hitsAtMin, hitsAtMax)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
