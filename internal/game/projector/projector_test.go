package projector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

func neutralSide(base int, r stats.Range, ev int) Side {
	return Side{Base: base, Variation: r, Investment: ev, Growth: 1, Stance: 1}
}

func TestProject_FixedVariation(t *testing.T) {
	p := New(damage.NewEngine(nil))
	got, err := p.Project(Request{
		Level:      50,
		Power:      100,
		Attacker:   neutralSide(120, stats.Point(31), 252),
		Defender:   neutralSide(100, stats.Point(31), 252),
		Vitality:   VitalitySide{Base: 90, Variation: stats.Point(31), Investment: 252},
		Correction: damage.NeutralCorrection(),
	})
	require.NoError(t, err)
	assert.Equal(t, stats.Band{Min: 172, Max: 172}, got.Attack)
	assert.Equal(t, stats.Band{Min: 152, Max: 152}, got.Defense)
	assert.Equal(t, 197, got.Vitality)
	assert.Equal(t, 35, got.Outcome.Max)
	assert.Equal(t, 29, got.Outcome.Min)
	assert.Equal(t, "variable 6–7 hit", got.Outcome.Label)
}

func TestProject_PairsExtremes(t *testing.T) {
	decent := stats.Range{Lo: 1, Hi: 15}
	p := New(damage.NewEngine(nil))
	got, err := p.Project(Request{
		Level:      50,
		Power:      100,
		Attacker:   neutralSide(100, decent, 0),
		Defender:   neutralSide(100, decent, 0),
		Vitality:   VitalitySide{Base: 100, Variation: decent},
		Correction: damage.NeutralCorrection(),
	})
	require.NoError(t, err)
	assert.Equal(t, stats.Band{Min: 105, Max: 112}, got.Attack)
	assert.Equal(t, stats.Band{Min: 105, Max: 112}, got.Defense)
	// attack 112 vs defense 105
	assert.Equal(t, 33, got.Outcome.Max)
	// low roll of attack 105 vs defense 112 (30)
	assert.Equal(t, 25, got.Outcome.Min)
	assert.Equal(t, 167, got.Vitality)
	assert.Equal(t, "variable 6–7 hit", got.Outcome.Label)
}

func TestProject_SpecialUsesSameArithmetic(t *testing.T) {
	r := Request{
		Level:      50,
		Power:      90,
		Attacker:   neutralSide(130, stats.Point(31), 252),
		Defender:   neutralSide(80, stats.Point(31), 0),
		Vitality:   VitalitySide{Base: 80, Variation: stats.Point(31)},
		Correction: damage.NeutralCorrection(),
	}
	p := New(damage.NewEngine(nil))
	physical, err := p.Project(r)
	require.NoError(t, err)
	r.Special = true
	special, err := p.Project(r)
	require.NoError(t, err)
	assert.Equal(t, physical.Outcome, special.Outcome)
}

func TestProject_AbsentDefenseRejected(t *testing.T) {
	p := New(damage.NewEngine(nil))
	_, err := p.Project(Request{
		Level:      50,
		Power:      100,
		Attacker:   neutralSide(100, stats.Point(31), 0),
		Defender:   neutralSide(0, stats.Point(31), 0),
		Vitality:   VitalitySide{Base: 100, Variation: stats.Point(31)},
		Correction: damage.NeutralCorrection(),
	})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestProject_RejectsInvalidInput(t *testing.T) {
	valid := Request{
		Level:      50,
		Power:      100,
		Attacker:   neutralSide(100, stats.Point(31), 0),
		Defender:   neutralSide(100, stats.Point(31), 0),
		Vitality:   VitalitySide{Base: 100, Variation: stats.Point(31)},
		Correction: damage.NeutralCorrection(),
	}
	mutations := map[string]func(r *Request){
		"power zero":           func(r *Request) { r.Power = 0 },
		"level zero":           func(r *Request) { r.Level = 0 },
		"investment too high":  func(r *Request) { r.Attacker.Investment = 256 },
		"inverted variation":   func(r *Request) { r.Defender.Variation = stats.Range{Lo: 20, Hi: 10} },
		"variation too high":   func(r *Request) { r.Vitality.Variation = stats.Point(32) },
		"negative type":        func(r *Request) { r.Correction.Type = -1 },
		"attacker base zero":   func(r *Request) { r.Attacker.Base = 0 },
		"vitality base zero":   func(r *Request) { r.Vitality.Base = 0 },
		"base too high":        func(r *Request) { r.Defender.Base = validate.MaxBase + 1 },
		"attacker stance zero": func(r *Request) { r.Attacker.Stance = 0 },
		"huge power":           func(r *Request) { r.Power = math.MaxInt / 100 },
	}
	p := New(damage.NewEngine(nil))
	for name, mutate := range mutations {
		r := valid
		mutate(&r)
		_, err := p.Project(r)
		assert.ErrorIs(t, err, validate.ErrInvalidInput, name)
	}
}

func TestNew_PanicsOnNilEngine(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestPropertyProject_RangeContainsEveryPointCalculation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 100).Draw(t, "level")
		power := rapid.IntRange(1, 200).Draw(t, "power")
		atkLo := rapid.IntRange(0, 31).Draw(t, "atkLo")
		atkHi := rapid.IntRange(atkLo, 31).Draw(t, "atkHi")
		defLo := rapid.IntRange(0, 31).Draw(t, "defLo")
		defHi := rapid.IntRange(defLo, 31).Draw(t, "defHi")
		atk := neutralSide(rapid.IntRange(1, 200).Draw(t, "atkBase"), stats.Range{Lo: atkLo, Hi: atkHi}, 0)
		def := neutralSide(rapid.IntRange(1, 200).Draw(t, "defBase"), stats.Range{Lo: defLo, Hi: defHi}, 0)
		c := damage.Correction{
			STAB:      rapid.SampledFrom([]float64{1.0, 1.5}).Draw(t, "stab"),
			Type:      rapid.SampledFrom([]float64{4, 2, 1, 0.5, 0.25}).Draw(t, "type"),
			Item:      1,
			Wall:      rapid.SampledFrom([]float64{1.0, 0.5}).Draw(t, "wall"),
			Amplifier: rapid.SampledFrom([]float64{1.0, 1.2, 1.3}).Draw(t, "amp"),
		}
		p := New(damage.NewEngine(nil))
		got, err := p.Project(Request{
			Level: level, Power: power, Attacker: atk, Defender: def,
			Vitality:   VitalitySide{Base: 100, Variation: stats.Point(31)},
			Correction: c,
		})
		if err != nil {
			t.Fatalf("Project: %v", err)
		}
		if got.Outcome.Min > got.Outcome.Max {
			t.Fatalf("min %d > max %d", got.Outcome.Min, got.Outcome.Max)
		}
		av := rapid.IntRange(atkLo, atkHi).Draw(t, "atkPoint")
		dv := rapid.IntRange(defLo, defHi).Draw(t, "defPoint")
		a := stats.ResolveStat(atk.Base, av, 0, level, 1, 1)
		d := stats.ResolveStat(def.Base, dv, 0, level, 1, 1)
		point, err := p.Engine().MaxDamage(level, power, a, d, c)
		if err != nil {
			t.Fatalf("MaxDamage: %v", err)
		}
		if point > got.Outcome.Max || damage.MinRoll(point) < got.Outcome.Min {
			t.Fatalf("point %d outside projected %v", point, got.Outcome)
		}
	})
}
