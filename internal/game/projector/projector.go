// Package projector bounds damage when the hidden variation of attacker and
// defender is only known as a range. It resolves both ends of every statistic
// and pairs the extremes so the reported range always contains every
// attainable outcome.
package projector

import (
	"fmt"

	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Side describes one combatant's offensive or defensive statistic.
type Side struct {
	Base       int
	Variation  stats.Range
	Investment int
	Growth     float64
	Stance     float64
}

// VitalitySide describes the defender's vitality.
type VitalitySide struct {
	Base       int
	Variation  stats.Range
	Investment int
}

// Request is a banded damage calculation.
type Request struct {
	Level int
	Power int
	// Special selects special-attack against special-defense.
	Special    bool
	Attacker   Side
	Defender   Side
	Vitality   VitalitySide
	Correction damage.Correction
}

func (r Request) kinds() (stats.Kind, stats.Kind) {
	if r.Special {
		return stats.SpecialAttack, stats.SpecialDefense
	}
	return stats.Attack, stats.Defense
}

// Projection is the result of a banded calculation.
type Projection struct {
	Attack  stats.Band
	Defense stats.Band
	// Vitality is the defender vitality at its variation maximum.
	Vitality int
	Outcome  damage.Outcome
}

// Projector combines stat bands into damage bounds. It holds no mutable state
// and is safe for concurrent use.
type Projector struct {
	engine *damage.Engine
}

// New creates a Projector over engine.
//
// Precondition: engine must not be nil.
func New(engine *damage.Engine) *Projector {
	if engine == nil {
		panic("projector.New: engine must not be nil")
	}
	return &Projector{engine: engine}
}

// Engine returns the underlying damage engine.
func (p *Projector) Engine() *damage.Engine {
	return p.engine
}

// Project resolves attacker, defender and vitality bands and computes the
// bounded damage range.
//
// The maximum pairs attack max with defense min. The minimum is the low roll
// of attack min against defense max. The label always uses vitality at its
// variation maximum.
//
// Postcondition: Returns a Projection with Outcome.Min <= Outcome.Max, or an
// error wrapping validate.ErrInvalidInput.
func (p *Projector) Project(r Request) (Projection, error) {
	if err := validate.Between("power", r.Power, 1, validate.MaxPower); err != nil {
		return Projection{}, fmt.Errorf("projecting: %w", err)
	}
	if err := r.Correction.Validate(); err != nil {
		return Projection{}, fmt.Errorf("projecting: %w", err)
	}
	atkKind, defKind := r.kinds()
	atk, err := stats.Resolve(r.Attacker.request(atkKind, r.Level))
	if err != nil {
		return Projection{}, fmt.Errorf("projecting attacker: %w", err)
	}
	def, err := stats.Resolve(r.Defender.request(defKind, r.Level))
	if err != nil {
		return Projection{}, fmt.Errorf("projecting defender: %w", err)
	}
	vit, err := stats.Resolve(stats.Request{
		Kind:       stats.Vitality,
		Base:       r.Vitality.Base,
		Variation:  r.Vitality.Variation,
		Investment: r.Vitality.Investment,
		Level:      r.Level,
	})
	if err != nil {
		return Projection{}, fmt.Errorf("projecting vitality: %w", err)
	}
	if atk.Min <= 0 {
		return Projection{}, fmt.Errorf("projecting: %w", validate.Invalid("%s resolves to %d", atkKind, atk.Min))
	}
	if def.Min <= 0 {
		return Projection{}, fmt.Errorf("projecting: %w", validate.Invalid("%s resolves to %d", defKind, def.Min))
	}

	maxDmg, err := p.engine.MaxDamage(r.Level, r.Power, atk.Max, def.Min, r.Correction)
	if err != nil {
		return Projection{}, fmt.Errorf("projecting: %w", err)
	}
	lowRaw, err := p.engine.MaxDamage(r.Level, r.Power, atk.Min, def.Max, r.Correction)
	if err != nil {
		return Projection{}, fmt.Errorf("projecting: %w", err)
	}
	minDmg := damage.MinRoll(lowRaw)
	return Projection{
		Attack:   atk,
		Defense:  def,
		Vitality: vit.Max,
		Outcome: damage.Outcome{
			Min:   minDmg,
			Max:   maxDmg,
			Label: damage.ClassifyHits(minDmg, maxDmg, vit.Max),
		},
	}, nil
}

func (s Side) request(kind stats.Kind, level int) stats.Request {
	return stats.Request{
		Kind:       kind,
		Base:       s.Base,
		Variation:  s.Variation,
		Investment: s.Investment,
		Level:      level,
		Growth:     s.Growth,
		Stance:     s.Stance,
	}
}
