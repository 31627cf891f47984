// Package roster stores saved creature profiles for the duration of a session.
package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// StatSpec is one statistic of a profile: its base value and the label of its
// variation bucket.
type StatSpec struct {
	Base      int    `yaml:"base"`
	Variation string `yaml:"variation"`
}

// Profile is a saved creature. Profiles are never mutated after they are
// added; Store.Add assigns the ID.
type Profile struct {
	ID             string   `yaml:"-"`
	Name           string   `yaml:"name"`
	Level          int      `yaml:"level"`
	Vitality       StatSpec `yaml:"vitality"`
	Attack         StatSpec `yaml:"attack"`
	Defense        StatSpec `yaml:"defense"`
	SpecialAttack  StatSpec `yaml:"special_attack"`
	SpecialDefense StatSpec `yaml:"special_defense"`
	Speed          StatSpec `yaml:"speed"`
}

// Stat returns the spec of the given statistic.
func (p Profile) Stat(k stats.Kind) StatSpec {
	switch k {
	case stats.Vitality:
		return p.Vitality
	case stats.Attack:
		return p.Attack
	case stats.Defense:
		return p.Defense
	case stats.SpecialAttack:
		return p.SpecialAttack
	case stats.SpecialDefense:
		return p.SpecialDefense
	case stats.Speed:
		return p.Speed
	default:
		return StatSpec{}
	}
}

// Validate checks the name, level, and every statistic.
//
// Postcondition: Returns nil or an error wrapping validate.ErrInvalidInput.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validate.Invalid("profile name must not be empty")
	}
	if err := validate.Level(p.Level); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	for _, k := range stats.Kinds() {
		s := p.Stat(k)
		if err := validate.Between(k.String()+" base", s.Base, 1, validate.MaxBase); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		if _, err := catalog.LookupVariation(s.Variation); err != nil {
			return fmt.Errorf("profile %q %s: %w", p.Name, k, validate.Invalid("%v", err))
		}
	}
	return nil
}

// Tuning holds per-statistic investment, growth and stance used to build a
// stat sheet. Growth and stance are ignored where they do not apply.
type Tuning struct {
	Investment [stats.KindCount]int
	Growth     [stats.KindCount]float64
	Stance     [stats.KindCount]float64
}

// NeutralTuning returns zero investment with neutral growth and stance.
func NeutralTuning() Tuning {
	var t Tuning
	for i := 0; i < stats.KindCount; i++ {
		t.Growth[i] = 1
		t.Stance[i] = 1
	}
	return t
}

// Sheet holds the resolved band of every statistic, indexed by stats.Kind.
type Sheet [stats.KindCount]stats.Band

// Bands resolves every statistic of the profile across its variation bucket.
//
// Postcondition: Returns the sheet or an error wrapping validate.ErrInvalidInput.
func (p Profile) Bands(t Tuning) (Sheet, error) {
	var sheet Sheet
	for _, k := range stats.Kinds() {
		s := p.Stat(k)
		r, err := catalog.LookupVariation(s.Variation)
		if err != nil {
			return Sheet{}, fmt.Errorf("profile %q %s: %w", p.Name, k, validate.Invalid("%v", err))
		}
		band, err := stats.Resolve(stats.Request{
			Kind:       k,
			Base:       s.Base,
			Variation:  r,
			Investment: t.Investment[k],
			Level:      p.Level,
			Growth:     t.Growth[k],
			Stance:     t.Stance[k],
		})
		if err != nil {
			return Sheet{}, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		sheet[k] = band
	}
	return sheet, nil
}

// DefaultProfiles returns the two example profiles a fresh roster starts with.
func DefaultProfiles() []Profile {
	best := catalog.DefaultVariation
	return []Profile{
		{
			Name: "Attacker A", Level: 50,
			Vitality:       StatSpec{Base: 100, Variation: best},
			Attack:         StatSpec{Base: 130, Variation: best},
			Defense:        StatSpec{Base: 80, Variation: best},
			SpecialAttack:  StatSpec{Base: 80, Variation: best},
			SpecialDefense: StatSpec{Base: 80, Variation: best},
			Speed:          StatSpec{Base: 100, Variation: best},
		},
		{
			Name: "Wall B", Level: 50,
			Vitality:       StatSpec{Base: 95, Variation: best},
			Attack:         StatSpec{Base: 100, Variation: best},
			Defense:        StatSpec{Base: 100, Variation: best},
			SpecialAttack:  StatSpec{Base: 100, Variation: best},
			SpecialDefense: StatSpec{Base: 120, Variation: best},
			Speed:          StatSpec{Base: 60, Variation: best},
		},
	}
}

// LoadProfiles reads every .yaml file in dir as a Profile. A missing
// variation label defaults to the best bucket.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns the valid profiles in file-name order, or a non-nil error.
func LoadProfiles(dir string) ([]Profile, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
		}
		p.fillDefaults()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile file %s: %w", path, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (p *Profile) fillDefaults() {
	for _, s := range []*StatSpec{&p.Vitality, &p.Attack, &p.Defense, &p.SpecialAttack, &p.SpecialDefense, &p.Speed} {
		if s.Variation == "" {
			s.Variation = catalog.DefaultVariation
		}
	}
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
