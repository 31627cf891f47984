package handlers

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Defaults of an opponent entered without values.
const (
	defaultOpponentStat     = 150
	defaultOpponentVitality = 200
)

func (h *CalcHandler) listRoster(s *Session, args []string, r *response) error {
	if err := noArgs(args); err != nil {
		return err
	}
	profiles := s.Roster.List()
	if len(profiles) == 0 {
		r.line("Roster is empty. Add a profile with: register")
		return nil
	}
	for i, p := range profiles {
		r.line("%d. %s  level %d  %s  %s", i+1, h.style.Paint(telnet.Bold, p.Name), p.Level,
			summarizeProfile(p), h.style.Paint(telnet.Dim, p.ID))
	}
	return nil
}

func (h *CalcHandler) register(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(o.str("name", strings.Join(pos, " ")))
	defVar := o.str("var", catalog.DefaultVariation)
	var given [stats.KindCount]roster.StatSpec
	for _, k := range stats.Kinds() {
		given[k] = roster.StatSpec{
			Base:      o.required(k.Abbrev()),
			Variation: o.str(k.Abbrev()+"-var", defVar),
		}
	}
	p := roster.Profile{
		Name:           name,
		Level:          o.integer("level", s.Settings.Level),
		Vitality:       given[stats.Vitality],
		Attack:         given[stats.Attack],
		Defense:        given[stats.Defense],
		SpecialAttack:  given[stats.SpecialAttack],
		SpecialDefense: given[stats.SpecialDefense],
		Speed:          given[stats.Speed],
	}
	if err := o.finish(); err != nil {
		return err
	}
	if _, exists := s.Roster.FindByName(name); exists {
		return validate.Invalid("a profile named %q already exists", name)
	}
	id, err := s.Roster.Add(p)
	if err != nil {
		return err
	}
	r.line("Registered %s (%s).", h.style.Paint(telnet.Bold, name), id)
	return nil
}

func (h *CalcHandler) deleteProfile(s *Session, args []string, r *response) error {
	p, err := s.findProfile(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := s.Roster.Delete(p.ID); err != nil {
		return err
	}
	r.line("Deleted %s.", p.Name)
	return nil
}

// sheet prints every statistic band of a profile.
func (h *CalcHandler) sheet(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	p, err := s.findProfile(strings.Join(pos, " "))
	if err != nil {
		return err
	}
	t := tuning(o)
	if err := o.finish(); err != nil {
		return err
	}
	bands, err := p.Bands(t)
	if err != nil {
		return err
	}
	r.line("%s  level %d", h.style.Paint(telnet.Bold, p.Name), p.Level)
	for _, k := range stats.Kinds() {
		st := p.Stat(k)
		r.line("  %-16s base %3d  %-12s %s", k, st.Base, st.Variation, formatBand(bands[k]))
	}
	return nil
}

// matchup compares a profile with every opponent, attacking or defending.
func (h *CalcHandler) matchup(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	p, err := s.findProfile(strings.Join(pos, " "))
	if err != nil {
		return err
	}
	if len(s.Opponents) == 0 {
		return validate.Invalid("no opponents, add one with: opponent add")
	}
	role := strings.ToLower(o.str("role", "attack"))
	category := strings.ToLower(o.str("category", "physical"))
	atkKind, defKind := stats.Attack, stats.Defense
	switch category {
	case "physical":
	case "special":
		atkKind, defKind = stats.SpecialAttack, stats.SpecialDefense
	default:
		return validate.Invalid("category must be physical or special, got %q", category)
	}
	t := tuning(o)

	switch role {
	case "attack":
		power := o.integer("power", s.Settings.Power)
		c := h.correction(o, r)
		if err := o.finish(); err != nil {
			return err
		}
		bands, err := p.Bands(t)
		if err != nil {
			return err
		}
		targets, err := s.targets(defKind)
		if err != nil {
			return err
		}
		rows, err := h.projector.Offense(p.Level, power, bands[atkKind], c, targets)
		if err != nil {
			return err
		}
		r.line("%s %s %s, power %d", h.style.Paint(telnet.Bold, p.Name), atkKind, formatBand(bands[atkKind]), power)
		for _, row := range rows {
			r.line("  vs %s  %s %d  vitality %d", h.style.Paint(telnet.Bold, row.Target.Name), defKind, row.Target.Defense, row.Target.Vitality)
			r.line("    variation max: %s", h.renderOutcome(row.AtMax, row.Target.Vitality))
			r.line("    variation min: %s", h.renderOutcome(row.AtMin, row.Target.Vitality))
		}
		r.text(h.renderCorrection(c))
	case "defend":
		wall := o.table("wall", catalog.Wall)
		if err := o.finish(); err != nil {
			return err
		}
		bands, err := p.Bands(t)
		if err != nil {
			return err
		}
		threats, err := s.threats(atkKind)
		if err != nil {
			return err
		}
		rows, err := h.projector.Defense(p.Level, bands[defKind], bands[stats.Vitality], wall, threats)
		if err != nil {
			return err
		}
		r.line("%s %s %s, vitality %s", h.style.Paint(telnet.Bold, p.Name), defKind,
			formatBand(bands[defKind]), formatBand(bands[stats.Vitality]))
		for _, row := range rows {
			r.line("  from %s  %s %d  power %d", h.style.Paint(telnet.Bold, row.Threat.Name), atkKind, row.Threat.Attack, row.Threat.Power)
			r.line("    frail (%s min, vitality %d): %s", defKind, bands[stats.Vitality].Max,
				h.renderOutcome(row.Frail, bands[stats.Vitality].Max))
			r.line("    sturdy (%s max, vitality %d): %s", defKind, bands[stats.Vitality].Min,
				h.renderOutcome(row.Sturdy, bands[stats.Vitality].Min))
		}
	default:
		return validate.Invalid("role must be attack or defend, got %q", role)
	}
	return nil
}

// opponent manages the session's opponent list: add, list, clear.
func (h *CalcHandler) opponent(s *Session, args []string, r *response) error {
	sub := "list"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
		args = args[1:]
	}
	switch sub {
	case "list":
		if len(s.Opponents) == 0 {
			r.line("No opponents. Add one with: opponent add")
			return nil
		}
		for i, opp := range s.Opponents {
			r.text(h.renderOpponent(s, i, opp))
		}
	case "clear":
		s.Opponents = nil
		r.line("Opponents cleared.")
	case "add":
		if len(s.Opponents) >= projector.MaxOpponents {
			return validate.Invalid("at most %d opponents, use opponent clear to start over", projector.MaxOpponents)
		}
		opp, err := h.parseOpponent(s, args, r)
		if err != nil {
			return err
		}
		s.Opponents = append(s.Opponents, opp)
		r.text(h.renderOpponent(s, len(s.Opponents)-1, opp))
	default:
		return validate.Invalid("unknown opponent action %q, use add, list or clear", sub)
	}
	return nil
}

func (h *CalcHandler) parseOpponent(s *Session, args []string, r *response) (Opponent, error) {
	o, pos, err := parseOptions(args)
	if err != nil {
		return Opponent{}, err
	}
	opp := Opponent{
		Name:      strings.TrimSpace(o.str("name", strings.Join(pos, " "))),
		Ref:       o.str("ref", ""),
		Defense:   o.integer("def", defaultOpponentStat),
		Vitality:  o.integer("hp", defaultOpponentVitality),
		Attack:    o.integer("atk", defaultOpponentStat),
		Power:     o.integer("power", s.Settings.Power),
		STAB:      o.table("stab", catalog.STAB),
		Item:      h.itemFactor(o, r),
		Amplifier: o.table("amp", catalog.Amplifier),
		Type:      o.table("type", catalog.TypeEffect),
	}
	if err := o.finish(); err != nil {
		return Opponent{}, err
	}
	if opp.Ref != "" {
		ref, err := s.findProfile(opp.Ref)
		if err != nil {
			return Opponent{}, err
		}
		opp.Ref = ref.ID
		if opp.Name == "" {
			opp.Name = ref.Name
		}
	}
	if opp.Name == "" {
		opp.Name = fmt.Sprintf("opponent %d", len(s.Opponents)+1)
	}
	for _, f := range []struct {
		name string
		v    int
		max  int
	}{
		{"def", opp.Defense, validate.MaxStat},
		{"hp", opp.Vitality, validate.MaxStat},
		{"atk", opp.Attack, validate.MaxStat},
		{"power", opp.Power, validate.MaxPower},
	} {
		if err := validate.Between(f.name, f.v, 1, f.max); err != nil {
			return Opponent{}, err
		}
	}
	return opp, nil
}

// referenceStats derives an opponent's statistic and vitality from a roster
// profile: no investment, neutral growth and stance, variation maximum.
func referenceStats(p roster.Profile, kind stats.Kind) (stat, vitality int, err error) {
	bands, err := p.Bands(roster.NeutralTuning())
	if err != nil {
		return 0, 0, err
	}
	return bands[kind].Max, bands[stats.Vitality].Max, nil
}

func (s *Session) targets(defKind stats.Kind) ([]projector.Target, error) {
	out := make([]projector.Target, 0, len(s.Opponents))
	for _, opp := range s.Opponents {
		t := projector.Target{Name: opp.Name, Defense: opp.Defense, Vitality: opp.Vitality, Type: opp.Type}
		if opp.Ref != "" {
			ref, err := s.findProfile(opp.Ref)
			if err != nil {
				return nil, fmt.Errorf("opponent %s: %w", opp.Name, err)
			}
			if t.Defense, t.Vitality, err = referenceStats(ref, defKind); err != nil {
				return nil, fmt.Errorf("opponent %s: %w", opp.Name, err)
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Session) threats(atkKind stats.Kind) ([]projector.Threat, error) {
	out := make([]projector.Threat, 0, len(s.Opponents))
	for _, opp := range s.Opponents {
		t := projector.Threat{
			Name: opp.Name, Attack: opp.Attack, Power: opp.Power,
			STAB: opp.STAB, Item: opp.Item, Amplifier: opp.Amplifier, Type: opp.Type,
		}
		if opp.Ref != "" {
			ref, err := s.findProfile(opp.Ref)
			if err != nil {
				return nil, fmt.Errorf("opponent %s: %w", opp.Name, err)
			}
			if t.Attack, _, err = referenceStats(ref, atkKind); err != nil {
				return nil, fmt.Errorf("opponent %s: %w", opp.Name, err)
			}
		}
		out = append(out, t)
	}
	return out, nil
}
