package handlers

import (
	"fmt"

	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// Defaults of the direct and banded calculations.
const (
	defaultAttack       = 150
	defaultDefense      = 130
	defaultVitality     = 200
	defaultAttackBase   = 120
	defaultDefenseBase  = 100
	defaultVitalityBase = 90
	defaultInvestment   = 252
)

func (h *CalcHandler) stat(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := noArgs(pos); err != nil {
		return err
	}
	kind, kerr := stats.ParseKind(o.str("kind", stats.Attack.String()))
	if kerr != nil {
		o.fail(validate.Invalid("kind: %v", kerr))
	}
	req := stats.Request{
		Kind:       kind,
		Base:       o.required("base"),
		Variation:  o.variation("var", catalog.DefaultVariation),
		Investment: o.integer("ev", 0),
		Level:      o.integer("level", s.Settings.Level),
		Growth:     o.table("growth", catalog.Growth),
		Stance:     o.table("stance", catalog.Stance),
	}
	if err := o.finish(); err != nil {
		return err
	}
	band, err := stats.Resolve(req)
	if err != nil {
		return err
	}
	r.line("%s: %s", h.style.Paint(telnet.Bold, kind.String()), formatBand(band))
	r.text(h.style.Paint(telnet.Dim, fmt.Sprintf("base %d  variation %s  ev %d  level %d",
		req.Base, req.Variation, req.Investment, req.Level)))
	return nil
}

func (h *CalcHandler) vitality(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := noArgs(pos); err != nil {
		return err
	}
	req := stats.Request{
		Kind:       stats.Vitality,
		Base:       o.required("base"),
		Variation:  o.variation("var", catalog.DefaultVariation),
		Investment: o.integer("ev", 0),
		Level:      o.integer("level", s.Settings.Level),
	}
	if err := o.finish(); err != nil {
		return err
	}
	band, err := stats.Resolve(req)
	if err != nil {
		return err
	}
	r.line("%s: %s", h.style.Paint(telnet.Bold, stats.Vitality.String()), formatBand(band))
	return nil
}

// directDamage is the direct mode: concrete statistics with stance applied on top.
func (h *CalcHandler) directDamage(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := noArgs(pos); err != nil {
		return err
	}
	atk := o.integer("atk", defaultAttack)
	def := o.integer("def", defaultDefense)
	atkStance := o.table("atk-stance", catalog.Stance)
	defStance := o.table("def-stance", catalog.Stance)
	req := damage.Request{
		Level:      o.integer("level", s.Settings.Level),
		Power:      o.integer("power", s.Settings.Power),
		Vitality:   o.integer("hp", defaultVitality),
		Correction: h.correction(o, r),
	}
	if err := o.finish(); err != nil {
		return err
	}
	if err := validate.Between("atk", atk, 1, validate.MaxStat); err != nil {
		return err
	}
	if err := validate.Between("def", def, 1, validate.MaxStat); err != nil {
		return err
	}
	req.Attack = stats.ApplyStance(atk, atkStance)
	req.Defense = stats.ApplyStance(def, defStance)

	out, err := h.projector.Engine().Calculate(req)
	if err != nil {
		return err
	}
	r.line("attack %d vs defense %d, vitality %d", req.Attack, req.Defense, req.Vitality)
	r.line("damage %s", h.renderOutcome(out, req.Vitality))
	r.text(h.renderCorrection(req.Correction))
	return nil
}

// project is the detailed mode: both sides as base values over variation
// ranges.
func (h *CalcHandler) project(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := noArgs(pos); err != nil {
		return err
	}
	req := projector.Request{
		Level:    o.integer("level", s.Settings.Level),
		Power:    o.integer("power", s.Settings.Power),
		Special:  o.boolean("special", false),
		Attacker: side(o, "atk", defaultAttackBase, defaultInvestment),
		Defender: side(o, "def", defaultDefenseBase, defaultInvestment),
		Vitality: projector.VitalitySide{
			Base:       o.integer("hp-base", defaultVitalityBase),
			Variation:  o.variation("hp-var", catalog.DefaultVariation),
			Investment: o.integer("hp-ev", defaultInvestment),
		},
		Correction: h.correction(o, r),
	}
	if err := o.finish(); err != nil {
		return err
	}
	proj, err := h.projector.Project(req)
	if err != nil {
		return err
	}
	atkKind, defKind := stats.Attack, stats.Defense
	if req.Special {
		atkKind, defKind = stats.SpecialAttack, stats.SpecialDefense
	}
	r.line("%s %s vs %s %s", atkKind, formatBand(proj.Attack), defKind, formatBand(proj.Defense))
	r.line("damage %s", h.renderOutcome(proj.Outcome, proj.Vitality))
	r.line("vitality %d (variation max)", proj.Vitality)
	r.text(h.renderCorrection(req.Correction))
	return nil
}
