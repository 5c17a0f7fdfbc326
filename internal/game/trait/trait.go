// Package trait defines the six prime traits and the roller that produces them.
package trait

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/herogen/internal/game/dice"
)

// Trait indexes one of the six prime traits.
type Trait int

// Prime traits in their fixed order.
const (
	STR Trait = iota
	INT
	WIS
	DEX
	CON
	CHR
)

// Count is the number of prime traits.
const Count = 6

var traitNames = [Count]string{"STR", "INT", "WIS", "DEX", "CON", "CHR"}

// All returns every Trait in fixed order.
func All() []Trait {
	return []Trait{STR, INT, WIS, DEX, CON, CHR}
}

// String returns the three-letter abbreviation, e.g. "STR".
func (t Trait) String() string {
	if t < 0 || int(t) >= Count {
		return fmt.Sprintf("Trait(%d)", int(t))
	}
	return traitNames[t]
}

// ParseTrait resolves a case-insensitive abbreviation such as "dex".
func ParseTrait(s string) (Trait, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range traitNames {
		if n == up {
			return Trait(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trait %q", s)
}

// Traits holds one value per prime trait. It is a value type; every operation
// returns a new Traits.
type Traits [Count]int

// Get returns the value for t.
func (ts Traits) Get(t Trait) int {
	return ts[t]
}

// With returns a copy of ts with t set to v.
func (ts Traits) With(t Trait, v int) Traits {
	ts[t] = v
	return ts
}

// Adjust returns ts with deltas added element-wise.
func (ts Traits) Adjust(deltas Traits) Traits {
	for i := range ts {
		ts[i] += deltas[i]
	}
	return ts
}

// Clamp returns ts with every element clamped into [lo[i], hi[i]].
//
// Precondition: lo[i] <= hi[i] for all i.
func (ts Traits) Clamp(lo, hi Traits) Traits {
	for i := range ts {
		ts[i] = min(max(ts[i], lo[i]), hi[i])
	}
	return ts
}

// Within reports whether every element lies inside [lo[i], hi[i]].
func (ts Traits) Within(lo, hi Traits) bool {
	for i := range ts {
		if ts[i] < lo[i] || ts[i] > hi[i] {
			return false
		}
	}
	return true
}

// Largest returns the trait holding the maximum value; ties resolve to the first
// in fixed order.
func (ts Traits) Largest() Trait {
	best := STR
	for i := 1; i < Count; i++ {
		if ts[i] > ts[best] {
			best = Trait(i)
		}
	}
	return best
}

// Swap returns ts with the values of a and b exchanged.
func (ts Traits) Swap(a, b Trait) Traits {
	ts[a], ts[b] = ts[b], ts[a]
	return ts
}

// String renders "STR=12 INT=9 ...".
func (ts Traits) String() string {
	parts := make([]string, Count)
	for i, v := range ts {
		parts[i] = fmt.Sprintf("%s=%d", traitNames[i], v)
	}
	return strings.Join(parts, " ")
}

// Uniform returns a Traits with every element set to v.
func Uniform(v int) Traits {
	return Traits{v, v, v, v, v, v}
}

// Thresholds of the banded modifier shared by WIS, CON, and DEX.
const (
	LowGate  = 9
	HighGate = 14
)

// BandedMod maps a trait value onto its banded linear modifier: zero inside
// [LowGate, HighGate], value-HighGate above it, value-LowGate below it.
func BandedMod(v int) int {
	switch {
	case v > HighGate:
		return v - HighGate
	case v < LowGate:
		return v - LowGate
	default:
		return 0
	}
}

// rollExpr rolls 4d6 and keeps the highest three.
var rollExpr = dice.MustParse("4d6kh3")

// Min and Max bound a single raw trait roll.
const (
	RollMin = 3
	RollMax = 18
)

// RollTrait rolls one raw trait: 4d6, drop the lowest.
//
// Precondition: src must be non-nil.
// Postcondition: RollMin <= result <= RollMax.
func RollTrait(src dice.Source) int {
	return dice.MustRoll(rollExpr, src)
}

// RollAll rolls six independent traits in fixed order.
//
// Precondition: src must be non-nil.
// Postcondition: every element is in [RollMin, RollMax].
func RollAll(src dice.Source) Traits {
	var ts Traits
	for i := range ts {
		ts[i] = RollTrait(src)
	}
	return ts
}
