package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

func TestOffense_TargetTypeOverridesCorrection(t *testing.T) {
	p := New(damage.NewEngine(nil))
	c := damage.NeutralCorrection()
	c.Type = 0
	rows, err := p.Offense(50, 100, stats.Band{Min: 105, Max: 112}, c, []Target{
		{Name: "weak", Defense: 100, Vitality: 150, Type: 2},
		{Name: "ghost", Defense: 100, Vitality: 150, Type: 0},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// raw 51, doubled 102, scaled 71
	assert.Equal(t, "weak", rows[0].Target.Name)
	assert.Equal(t, 71, rows[0].AtMax.Max)
	assert.Equal(t, 60, rows[0].AtMax.Min)
	assert.Equal(t, "certain 3-hit", rows[0].AtMax.Label)
	assert.LessOrEqual(t, rows[0].AtMin.Max, rows[0].AtMax.Max)

	assert.Equal(t, 0, rows[1].AtMax.Max)
	assert.Equal(t, damage.LabelNotApplicable, rows[1].AtMax.Label)
}

func TestDefense_SturdyNeverWorseThanFrail(t *testing.T) {
	p := New(damage.NewEngine(nil))
	rows, err := p.Defense(50, stats.Band{Min: 105, Max: 112}, stats.Band{Min: 161, Max: 167}, 1, []Threat{
		{Name: "a", Attack: 150, Power: 100, STAB: 1.5, Item: 1, Amplifier: 1, Type: 1},
		{Name: "b", Attack: 120, Power: 80, STAB: 1, Item: 1.3, Amplifier: 1.2, Type: 2},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.LessOrEqual(t, r.Sturdy.Max, r.Frail.Max, r.Threat.Name)
		assert.LessOrEqual(t, r.Sturdy.Min, r.Frail.Min, r.Threat.Name)
	}
}

func TestDefense_WallHalvesDamage(t *testing.T) {
	p := New(damage.NewEngine(nil))
	threat := []Threat{{Name: "a", Attack: 150, Power: 100, STAB: 1, Item: 1, Amplifier: 1, Type: 1}}
	open, err := p.Defense(50, stats.Band{Min: 100, Max: 100}, stats.Band{Min: 160, Max: 160}, 1, threat)
	require.NoError(t, err)
	walled, err := p.Defense(50, stats.Band{Min: 100, Max: 100}, stats.Band{Min: 160, Max: 160}, 0.5, threat)
	require.NoError(t, err)
	assert.Less(t, walled[0].Frail.Max, open[0].Frail.Max)
}

func TestMatchup_OpponentCount(t *testing.T) {
	p := New(damage.NewEngine(nil))
	band := stats.Band{Min: 100, Max: 110}

	_, err := p.Offense(50, 100, band, damage.NeutralCorrection(), nil)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	four := make([]Target, MaxOpponents+1)
	for i := range four {
		four[i] = Target{Name: "t", Defense: 100, Vitality: 100, Type: 1}
	}
	_, err = p.Offense(50, 100, band, damage.NeutralCorrection(), four)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	_, err = p.Defense(50, band, band, 1, make([]Threat, MaxOpponents+1))
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestOffense_RejectsZeroDefenseTarget(t *testing.T) {
	p := New(damage.NewEngine(nil))
	_, err := p.Offense(50, 100, stats.Band{Min: 100, Max: 110}, damage.NeutralCorrection(), []Target{
		{Name: "bad", Defense: 0, Vitality: 100, Type: 1},
	})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}
