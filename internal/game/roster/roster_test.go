package roster_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

func sample(name string) roster.Profile {
	p := roster.DefaultProfiles()[0]
	p.Name = name
	return p
}

func TestNewMemoryStore_SeedsDefaults(t *testing.T) {
	s, err := roster.NewMemoryStore(roster.DefaultProfiles()...)
	require.NoError(t, err)
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Attacker A", list[0].Name)
	assert.Equal(t, "Wall B", list[1].Name)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestMemoryStore_AddDeleteKeepsOrder(t *testing.T) {
	s, err := roster.NewMemoryStore()
	require.NoError(t, err)
	a, err := s.Add(sample("a"))
	require.NoError(t, err)
	b, err := s.Add(sample("b"))
	require.NoError(t, err)
	c, err := s.Add(sample("c"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(b))
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, c, list[1].ID)

	_, ok := s.Get(b)
	assert.False(t, ok)
	assert.ErrorIs(t, s.Delete(b), roster.ErrNotFound)
}

func TestMemoryStore_AddRejectsInvalidProfile(t *testing.T) {
	s, err := roster.NewMemoryStore()
	require.NoError(t, err)

	p := sample("bad")
	p.Defense.Base = 0
	_, err = s.Add(p)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	p = sample("bad")
	p.Speed.Variation = "legendary"
	_, err = s.Add(p)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	p = sample("")
	_, err = s.Add(p)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	assert.Empty(t, s.List())
}

func TestMemoryStore_FindByNameIgnoresCase(t *testing.T) {
	s, err := roster.NewMemoryStore(roster.DefaultProfiles()...)
	require.NoError(t, err)
	p, ok := s.FindByName("wall b")
	require.True(t, ok)
	assert.Equal(t, 120, p.SpecialDefense.Base)
	_, ok = s.FindByName("nobody")
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	s, err := roster.NewMemoryStore()
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(sample("x"))
		}()
	}
	wg.Wait()
	assert.Len(t, s.List(), 20)
}

func TestProfile_BandsNeutral(t *testing.T) {
	sheet, err := roster.DefaultProfiles()[0].Bands(roster.NeutralTuning())
	require.NoError(t, err)
	assert.Equal(t, stats.Band{Min: 175, Max: 175}, sheet[stats.Vitality])
	assert.Equal(t, stats.Band{Min: 150, Max: 150}, sheet[stats.Attack])

	sheet, err = roster.DefaultProfiles()[1].Bands(roster.NeutralTuning())
	require.NoError(t, err)
	assert.Equal(t, stats.Band{Min: 170, Max: 170}, sheet[stats.Vitality])
	assert.Equal(t, stats.Band{Min: 140, Max: 140}, sheet[stats.SpecialDefense])
}

func TestProfile_BandsSpreadAcrossBucket(t *testing.T) {
	p := sample("spread")
	p.Attack = roster.StatSpec{Base: 100, Variation: "decent"}
	sheet, err := p.Bands(roster.NeutralTuning())
	require.NoError(t, err)
	assert.Equal(t, stats.Band{Min: 105, Max: 112}, sheet[stats.Attack])
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	doc := `name: Sweeper
level: 50
vitality: {base: 80}
attack: {base: 120, variation: very-good}
defense: {base: 70}
special_attack: {base: 60}
special_defense: {base: 70}
speed: {base: 130, variation: best}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sweeper.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	profiles, err := roster.LoadProfiles(dir)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Sweeper", profiles[0].Name)
	assert.Equal(t, "very-good", profiles[0].Attack.Variation)
	assert.Equal(t, "best", profiles[0].Vitality.Variation)
}

func TestLoadProfiles_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: Bad\nlevel: 0\n"), 0o644))
	_, err := roster.LoadProfiles(dir)
	assert.Error(t, err)
}

func TestLoadProfiles_MissingDir(t *testing.T) {
	_, err := roster.LoadProfiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestPropertyStore_ListMatchesLiveIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := roster.NewMemoryStore()
		if err != nil {
			t.Fatal(err)
		}
		var live []string
		ops := rapid.SliceOfN(rapid.Bool(), 1, 30).Draw(t, "ops")
		for _, add := range ops {
			if add || len(live) == 0 {
				id, err := s.Add(sample("p"))
				if err != nil {
					t.Fatal(err)
				}
				live = append(live, id)
				continue
			}
			i := rapid.IntRange(0, len(live)-1).Draw(t, "victim")
			if err := s.Delete(live[i]); err != nil {
				t.Fatal(err)
			}
			live = append(live[:i], live[i+1:]...)
		}
		list := s.List()
		if len(list) != len(live) {
			t.Fatalf("list has %d profiles, want %d", len(list), len(live))
		}
		for i, p := range list {
			if p.ID != live[i] {
				t.Fatalf("position %d: got %s want %s", i, p.ID, live[i])
			}
		}
	})
}
