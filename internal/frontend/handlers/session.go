package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Settings are the per-session defaults applied when a command omits
// level= or power=.
type Settings struct {
	Level int
	Power int
}

// Validate checks the level and power ranges.
func (s Settings) Validate() error {
	if err := validate.Level(s.Level); err != nil {
		return err
	}
	return validate.Between("power", s.Power, 1, validate.MaxPower)
}

// Opponent is one entry of the matchup list. When Ref names a roster profile
// the opponent's statistics are derived from it at matchup time; otherwise
// the fixed values are used.
type Opponent struct {
	Name string
	Ref  string

	// Used when the profile attacks.
	Defense  int
	Vitality int

	// Used when the profile defends.
	Attack    int
	Power     int
	STAB      float64
	Item      float64
	Amplifier float64

	Type float64
}

// Session is the state owned by one connected client.
type Session struct {
	ID        string
	Roster    roster.Store
	Settings  Settings
	Opponents []Opponent
}

func newSession(seed []roster.Profile, defaults Settings) (*Session, error) {
	store, err := roster.NewMemoryStore(seed...)
	if err != nil {
		return nil, fmt.Errorf("seeding roster: %w", err)
	}
	return &Session{
		ID:       uuid.New().String(),
		Roster:   store,
		Settings: defaults,
	}, nil
}

// findProfile resolves a profile by name, then by ID. Underscores in key
// match spaces, so option values can name "Wall B" as Wall_B.
func (s *Session) findProfile(key string) (roster.Profile, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return roster.Profile{}, validate.Invalid("a profile name is required")
	}
	if p, ok := s.Roster.FindByName(key); ok {
		return p, nil
	}
	if p, ok := s.Roster.FindByName(strings.ReplaceAll(key, "_", " ")); ok {
		return p, nil
	}
	if p, ok := s.Roster.Get(key); ok {
		return p, nil
	}
	return roster.Profile{}, fmt.Errorf("%q: %w", key, roster.ErrNotFound)
}
