package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/command"
	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
	"github.com/cory-johannsen/ttkcalc/internal/game/validate"
)

// optionSet reads key=value options. Readers record the first failure and
// return a fallback value; finish reports it along with any option no reader
// consumed.
type optionSet struct {
	values map[string]string
	used   map[string]bool
	err    error
}

func parseOptions(args []string) (*optionSet, []string, error) {
	values, positional, err := command.Options(args)
	if err != nil {
		return nil, nil, validate.Invalid("%v", err)
	}
	return &optionSet{values: values, used: make(map[string]bool)}, positional, nil
}

func (o *optionSet) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func (o *optionSet) has(key string) bool {
	v, ok := o.values[key]
	return ok && v != ""
}

func (o *optionSet) str(key, def string) string {
	o.used[key] = true
	if v, ok := o.values[key]; ok && v != "" {
		return v
	}
	return def
}

func (o *optionSet) integer(key string, def int) int {
	raw := o.str(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		o.fail(validate.Invalid("%s must be an integer, got %q", key, raw))
		return def
	}
	return n
}

func (o *optionSet) required(key string) int {
	if !o.has(key) {
		o.used[key] = true
		o.fail(validate.Invalid("%s= is required", key))
		return 0
	}
	return o.integer(key, 0)
}

func (o *optionSet) boolean(key string, def bool) bool {
	raw := o.str(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		o.fail(validate.Invalid("%s must be true or false, got %q", key, raw))
		return def
	}
	return b
}

// table resolves a catalog label, falling back to the table default.
func (o *optionSet) table(key string, t catalog.Table) float64 {
	v, err := t.Lookup(o.str(key, t.Default))
	if err != nil {
		o.fail(validate.Invalid("%s: %v", key, err))
		return t.DefaultValue()
	}
	return v
}

func (o *optionSet) variation(key, def string) stats.Range {
	r, err := catalog.LookupVariation(o.str(key, def))
	if err != nil {
		o.fail(validate.Invalid("%s: %v", key, err))
		return stats.Point(validate.MaxVariation)
	}
	return r
}

// finish returns the first read failure, or an error naming every option
// that was given but never read.
func (o *optionSet) finish() error {
	if o.err != nil {
		return o.err
	}
	var extra []string
	for k := range o.values {
		if !o.used[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return validate.Invalid("unknown option(s): %s", strings.Join(extra, ", "))
}

// itemFactor resolves item= and custom=. A custom expression forces the
// custom item; selecting custom without an expression keeps 1.0 and warns.
func (h *CalcHandler) itemFactor(o *optionSet, r *response) float64 {
	label := strings.ToLower(o.str("item", catalog.Item.Default))
	expr := o.str("custom", "")
	if expr != "" {
		if label != catalog.CustomItem && label != catalog.Item.Default {
			r.warn(fmt.Sprintf("custom=%s overrides item=%s", expr, label))
		}
		v, err := h.evaluator.Multiplier(expr)
		if err != nil {
			o.fail(validate.Invalid("custom: %v", err))
			return 1
		}
		return v
	}
	v, err := catalog.Item.Lookup(label)
	if err != nil {
		o.fail(validate.Invalid("item: %v", err))
		return 1
	}
	if label == catalog.CustomItem {
		r.warn("item=custom without custom=<value>; using 1.0")
	}
	return v
}

// correction reads stab, type, item, custom, wall and amp.
func (h *CalcHandler) correction(o *optionSet, r *response) damage.Correction {
	return damage.Correction{
		STAB:      o.table("stab", catalog.STAB),
		Type:      o.table("type", catalog.TypeEffect),
		Item:      h.itemFactor(o, r),
		Wall:      o.table("wall", catalog.Wall),
		Amplifier: o.table("amp", catalog.Amplifier),
	}
}

// tuning reads ev-<x>, growth-<x> and stance-<x> for every statistic.
// Omitted options stay at zero investment and neutral factors.
func tuning(o *optionSet) roster.Tuning {
	var t roster.Tuning
	for _, k := range stats.Kinds() {
		ab := k.Abbrev()
		t.Investment[k] = o.integer("ev-"+ab, 0)
		t.Growth[k] = o.table("growth-"+ab, catalog.Growth)
		t.Stance[k] = o.table("stance-"+ab, catalog.Stance)
	}
	return t
}

// side reads the prefixed options of one projected combatant, e.g. atk-base,
// atk-var, atk-ev, atk-growth and atk-stance.
func side(o *optionSet, prefix string, defBase, defEV int) projector.Side {
	return projector.Side{
		Base:       o.integer(prefix+"-base", defBase),
		Variation:  o.variation(prefix+"-var", catalog.DefaultVariation),
		Investment: o.integer(prefix+"-ev", defEV),
		Growth:     o.table(prefix+"-growth", catalog.Growth),
		Stance:     o.table(prefix+"-stance", catalog.Stance),
	}
}

func noArgs(positional []string) error {
	if len(positional) > 0 {
		return validate.Invalid("unexpected argument %q, options take the form key=value", positional[0])
	}
	return nil
}
