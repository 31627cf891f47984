package handlers

import (
	"sort"
	"strings"

	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

func (h *CalcHandler) listCatalog(_ *Session, args []string, r *response) error {
	if err := noArgs(args); err != nil {
		return err
	}
	for _, t := range catalog.Tables() {
		r.line("%s (default %s)", h.style.Paint(telnet.Bold, t.Name), t.Default)
		for _, e := range t.Entries {
			r.line("  %-12s %-6s %s", e.Label, formatFactor(e.Value), e.Description)
		}
	}
	r.line("%s (default %s)", h.style.Paint(telnet.Bold, "variation"), catalog.DefaultVariation)
	for _, v := range catalog.Variation {
		r.line("  %-12s %-6s %s", v.Label, v.Range, v.Description)
	}
	r.text(h.style.Paint(telnet.Dim, "Any interval lo-hi within 0-31 is also accepted."))

	names := make([]string, 0)
	for name := range h.evaluator.Constants() {
		names = append(names, name)
	}
	if len(names) > 0 {
		sort.Strings(names)
		r.text(h.style.Paint(telnet.Dim, "custom= expressions may use: "+strings.Join(names, ", ")))
	}
	return nil
}

func (h *CalcHandler) set(s *Session, args []string, r *response) error {
	o, pos, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := noArgs(pos); err != nil {
		return err
	}
	if len(o.values) == 0 {
		return validate.Invalid("usage: set level=<1-100> power=<n>")
	}
	next := Settings{
		Level: o.integer("level", s.Settings.Level),
		Power: o.integer("power", s.Settings.Power),
	}
	if err := o.finish(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.Settings = next
	return h.show(s, nil, r)
}

func (h *CalcHandler) show(s *Session, args []string, r *response) error {
	if err := noArgs(args); err != nil {
		return err
	}
	r.line("level %d  power %d  formula %s  opponents %d/%d  profiles %d",
		s.Settings.Level, s.Settings.Power, h.projector.Engine().Formula().Name(),
		len(s.Opponents), projector.MaxOpponents, len(s.Roster.List()))
	return nil
}

func (h *CalcHandler) reset(s *Session, args []string, r *response) error {
	if err := noArgs(args); err != nil {
		return err
	}
	s.Settings = h.defaults
	s.Opponents = nil
	r.line("Session defaults restored, opponents cleared.")
	return nil
}

func (h *CalcHandler) help(_ *Session, args []string, r *response) error {
	if len(args) > 0 {
		cmd, ok := h.registry.Resolve(args[0])
		if !ok {
			return validate.Invalid("unknown command %q", args[0])
		}
		r.line("%s: %s", h.style.Paint(telnet.Bold, cmd.Name), cmd.Help)
		r.line("usage: %s", cmd.Usage)
		if len(cmd.Aliases) > 0 {
			r.line("aliases: %s", strings.Join(cmd.Aliases, ", "))
		}
		return nil
	}
	for _, g := range h.registry.Groups() {
		r.line("%s", h.style.Paint(telnet.Bold, g.Category))
		for _, cmd := range g.Commands {
			r.line("  %-10s %s", cmd.Name, cmd.Help)
		}
	}
	r.line("Type help <command> for usage.")
	return nil
}

func (h *CalcHandler) quit(_ *Session, _ []string, r *response) error {
	r.line("Goodbye!")
	return ErrQuit
}
