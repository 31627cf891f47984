package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
)

// formatBand prints a band as a single number when it has no spread.
func formatBand(b stats.Band) string {
	if b.Min == b.Max {
		return strconv.Itoa(b.Max)
	}
	return b.String()
}

func formatFactor(f float64) string {
	return "x" + strconv.FormatFloat(f, 'g', 4, 64)
}

// labelStyle colors a hits-to-knockout label by how decisive it is.
func labelStyle(label string) string {
	switch {
	case label == damage.LabelNotApplicable:
		return telnet.Dim
	case label == "certain 1-hit":
		return telnet.Bold + telnet.Red
	case strings.HasPrefix(label, "certain"):
		return telnet.Yellow
	default:
		return telnet.Cyan
	}
}

// renderOutcome prints "min~max (pct~pct) label".
func (h *CalcHandler) renderOutcome(o damage.Outcome, vitality int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d~%d", o.Min, o.Max)
	if vitality > 0 {
		fmt.Fprintf(&b, " (%.1f%%~%.1f%%)",
			100*float64(o.Min)/float64(vitality), 100*float64(o.Max)/float64(vitality))
	}
	b.WriteString("  ")
	b.WriteString(h.style.Paint(labelStyle(o.Label), o.Label))
	return b.String()
}

// renderCorrection summarizes the factors of an attack.
func (h *CalcHandler) renderCorrection(c damage.Correction) string {
	return h.style.Paint(telnet.Dim, fmt.Sprintf(
		"stab %s  type %s  item %s  wall %s  amp %s  formula %s",
		formatFactor(c.STAB), formatFactor(c.Type), formatFactor(c.Item),
		formatFactor(c.Wall), formatFactor(c.Amplifier), h.projector.Engine().Formula().Name()))
}

// summarizeProfile prints base values as "H100 A130 ...", tagging any
// statistic whose variation bucket is not the default.
func summarizeProfile(p roster.Profile) string {
	parts := make([]string, 0, stats.KindCount)
	for _, k := range stats.Kinds() {
		s := p.Stat(k)
		part := strings.ToUpper(k.Abbrev()) + strconv.Itoa(s.Base)
		if s.Variation != catalog.DefaultVariation {
			part += "(" + s.Variation + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

func (h *CalcHandler) renderOpponent(s *Session, i int, opp Opponent) string {
	src := fmt.Sprintf("def %d  hp %d  atk %d  power %d", opp.Defense, opp.Vitality, opp.Attack, opp.Power)
	if opp.Ref != "" {
		name := "deleted profile"
		if p, ok := s.Roster.Get(opp.Ref); ok {
			name = p.Name
		}
		src = "stats from " + name + fmt.Sprintf("  power %d", opp.Power)
	}
	return fmt.Sprintf("%d. %s  %s  type %s  stab %s  item %s  amp %s",
		i+1, h.style.Paint(telnet.Bold, opp.Name), src,
		formatFactor(opp.Type), formatFactor(opp.STAB), formatFactor(opp.Item), formatFactor(opp.Amplifier))
}
