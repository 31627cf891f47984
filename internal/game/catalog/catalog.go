// Package catalog holds the fixed label-to-value tables the front ends select
// from. The calculation packages only ever see the resolved numbers.
package catalog

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
)

// CustomItem is the item label whose value the caller supplies.
const CustomItem = "custom"

// Entry is one labelled multiplier.
type Entry struct {
	Label       string
	Value       float64
	Description string
}

// Table is an ordered set of entries with a default label.
type Table struct {
	Name    string
	Default string
	Entries []Entry
}

// Lookup returns the value for label, case-insensitively.
//
// Postcondition: Returns the value, or an error naming the valid labels.
func (t Table) Lookup(label string) (float64, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, e := range t.Entries {
		if e.Label == label {
			return e.Value, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (valid: %s)", t.Name, label, strings.Join(t.Labels(), ", "))
}

// DefaultValue returns the value of the default entry.
func (t Table) DefaultValue() float64 {
	v, err := t.Lookup(t.Default)
	if err != nil {
		panic(fmt.Sprintf("catalog %s: default %q missing", t.Name, t.Default))
	}
	return v
}

// Labels returns the entry labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		labels = append(labels, e.Label)
	}
	return labels
}

// Growth is the personality growth modifier.
var Growth = Table{
	Name:    "growth",
	Default: "neutral",
	Entries: []Entry{
		{Label: "neutral", Value: 1.0, Description: "no growth modifier"},
		{Label: "up", Value: 1.1, Description: "favored statistic"},
		{Label: "down", Value: 0.9, Description: "disfavored statistic"},
	},
}

// Stance is the in-battle stage multiplier.
var Stance = Table{
	Name:    "stance",
	Default: "none",
	Entries: []Entry{
		{Label: "none", Value: 1.0, Description: "no stage change"},
		{Label: "boosted", Value: 1.5, Description: "one stage up"},
	},
}

// Amplifier is the move amplifier of the supported variant.
var Amplifier = Table{
	Name:    "amplifier",
	Default: "normal",
	Entries: []Entry{
		{Label: "normal", Value: 1.0, Description: "plain move"},
		{Label: "plus", Value: 1.2, Description: "plus move"},
		{Label: "mega", Value: 1.3, Description: "mega-evolved user"},
	},
}

// STAB is the same-type attack bonus.
var STAB = Table{
	Name:    "stab",
	Default: "off-type",
	Entries: []Entry{
		{Label: "same-type", Value: 1.5, Description: "move type matches user"},
		{Label: "off-type", Value: 1.0, Description: "move type differs from user"},
	},
}

// TypeEffect is the type-effectiveness multiplier.
var TypeEffect = Table{
	Name:    "type",
	Default: "neutral",
	Entries: []Entry{
		{Label: "quad", Value: 4.0, Description: "4x weakness"},
		{Label: "double", Value: 2.0, Description: "2x weakness"},
		{Label: "neutral", Value: 1.0, Description: "neutral"},
		{Label: "half", Value: 0.5, Description: "resisted"},
		{Label: "quarter", Value: 0.25, Description: "double resisted"},
		{Label: "immune", Value: 0.0, Description: "no effect"},
	},
}

// Item is the held-item or field multiplier. The custom entry is a
// placeholder for a caller-supplied value.
var Item = Table{
	Name:    "item",
	Default: "none",
	Entries: []Entry{
		{Label: "none", Value: 1.0, Description: "no item or field effect"},
		{Label: "critical", Value: 1.5, Description: "critical hit"},
		{Label: "choice", Value: 1.5, Description: "choice band or specs"},
		{Label: "life-orb", Value: 1.3, Description: "life orb"},
		{Label: "expert-belt", Value: 1.2, Description: "expert belt"},
		{Label: CustomItem, Value: 1.0, Description: "free-form value"},
	},
}

// Wall is the team-support wall multiplier.
var Wall = Table{
	Name:    "wall",
	Default: "none",
	Entries: []Entry{
		{Label: "none", Value: 1.0, Description: "no wall"},
		{Label: "wall", Value: 0.5, Description: "reflect or light screen up"},
	},
}

// Tables returns every multiplier table in display order.
func Tables() []Table {
	return []Table{Growth, Stance, Amplifier, STAB, TypeEffect, Item, Wall}
}

// VariationEntry is one named variation bucket.
type VariationEntry struct {
	Label       string
	Range       stats.Range
	Description string
}

// DefaultVariation is the bucket used when none is given.
const DefaultVariation = "best"

// Variation lists the six variation buckets, from best to worst.
var Variation = []VariationEntry{
	{Label: "best", Range: stats.Point(31), Description: "best or hyper-trained"},
	{Label: "fantastic", Range: stats.Point(30), Description: "fantastic"},
	{Label: "very-good", Range: stats.Range{Lo: 26, Hi: 29}, Description: "very good"},
	{Label: "pretty-good", Range: stats.Range{Lo: 16, Hi: 25}, Description: "pretty good"},
	{Label: "decent", Range: stats.Range{Lo: 1, Hi: 15}, Description: "decent"},
	{Label: "no-good", Range: stats.Point(0), Description: "no good"},
}

// LookupVariation resolves a bucket label, or an explicit "lo-hi" / "n"
// interval, to a Range.
//
// Postcondition: Returns a Range inside [0, 31] with Lo <= Hi, or an error.
func LookupVariation(label string) (stats.Range, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, v := range Variation {
		if v.Label == label {
			return v.Range, nil
		}
	}
	r, err := parseInterval(label)
	if err != nil {
		return stats.Range{}, fmt.Errorf("unknown variation %q (valid: %s, or lo-hi)", label, strings.Join(VariationLabels(), ", "))
	}
	if err := r.Validate(); err != nil {
		return stats.Range{}, err
	}
	return r, nil
}

// VariationLabels returns the bucket labels in table order.
func VariationLabels() []string {
	labels := make([]string, 0, len(Variation))
	for _, v := range Variation {
		labels = append(labels, v.Label)
	}
	return labels
}

func parseInterval(s string) (stats.Range, error) {
	var lo, hi int
	if loStr, hiStr, ok := strings.Cut(s, "-"); ok {
		if _, err := fmt.Sscan(loStr, &lo); err != nil {
			return stats.Range{}, err
		}
		if _, err := fmt.Sscan(hiStr, &hi); err != nil {
			return stats.Range{}, err
		}
		return stats.Range{Lo: lo, Hi: hi}, nil
	}
	if _, err := fmt.Sscan(s, &lo); err != nil {
		return stats.Range{}, err
	}
	return stats.Point(lo), nil
}

// ItemConstants maps every fixed item label to its value, with '-' replaced
// by '_' so custom expressions can write life_orb*critical.
func ItemConstants() map[string]float64 {
	out := make(map[string]float64, len(Item.Entries))
	for _, e := range Item.Entries {
		if e.Label == CustomItem {
			continue
		}
		out[strings.ReplaceAll(e.Label, "-", "_")] = e.Value
	}
	return out
}
