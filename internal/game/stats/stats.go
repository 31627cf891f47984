// Package stats derives visible battle statistics from species base values,
// hidden variation, investment points, level, growth, and stance.
//
// Every step truncates with floor exactly as the game does. The functions are
// pure and safe for concurrent use.
package stats

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies one of the six battle statistics.
type Kind int

// The six statistics, in sheet order.
const (
	Vitality Kind = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

// KindCount is the number of statistics on a sheet.
const KindCount = 6

var kindNames = [KindCount]string{"vitality", "attack", "defense", "special-attack", "special-defense", "speed"}

var kindAbbrevs = [KindCount]string{"h", "a", "b", "c", "d", "s"}

// Kinds returns all statistics in sheet order.
func Kinds() []Kind {
	return []Kind{Vitality, Attack, Defense, SpecialAttack, SpecialDefense, Speed}
}

// String returns the long name of the statistic.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Abbrev returns the single-letter sheet abbreviation (h a b c d s).
func (k Kind) Abbrev() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindAbbrevs[k]
}

// TakesGrowth reports whether the growth modifier applies to the statistic.
// Vitality and speed never take growth.
func (k Kind) TakesGrowth() bool {
	switch k {
	case Attack, Defense, SpecialAttack, SpecialDefense:
		return true
	default:
		return false
	}
}

// ParseKind resolves a long name or abbreviation, case-insensitively.
//
// Postcondition: Returns the matching Kind or a non-nil error.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < KindCount; i++ {
		if s == kindNames[i] || s == kindAbbrevs[i] {
			return Kind(i), nil
		}
	}
	switch s {
	case "hp":
		return Vitality, nil
	case "spa":
		return SpecialAttack, nil
	case "spd":
		return SpecialDefense, nil
	}
	return 0, fmt.Errorf("unknown statistic %q", s)
}

// ResolveStat computes a non-vitality statistic.
//
//	core        = floor((2*base + variation + investment/4) * level / 100) + 5
//	afterGrowth = floor(core * growth)
//	result      = floor(afterGrowth * stance)
//
// A base of 0 means the statistic is absent and yields 0. Inputs are not
// clamped; callers validate ranges first.
func ResolveStat(base, variation, investment, level int, growth, stance float64) int {
	if base == 0 {
		return 0
	}
	core := floorDiv((base*2+variation+investment/4)*level, 100) + 5
	afterGrowth := int(math.Floor(float64(core) * growth))
	return ApplyStance(afterGrowth, stance)
}

// ApplyStance applies an in-battle stage multiplier to an already resolved
// statistic: floor(stat * stance).
func ApplyStance(stat int, stance float64) int {
	return int(math.Floor(float64(stat) * stance))
}

// ResolveVitality computes the hit-point statistic.
//
//	result = floor((2*base + variation + investment/4) * level / 100) + level + 10
//
// A base of exactly 1 always yields 1 regardless of the other inputs.
func ResolveVitality(base, variation, investment, level int) int {
	if base == 1 {
		return 1
	}
	return floorDiv((base*2+variation+investment/4)*level, 100) + level + 10
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
