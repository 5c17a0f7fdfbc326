// Package klass defines the closed set of character classes and their constant
// profiles.
package klass

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// ErrUnknownKlass is returned by Parse and Lookup for names outside the closed set.
var ErrUnknownKlass = errors.New("unknown klass")

// Name identifies one class variant.
type Name int

// Class variants.
const (
	Fighter Name = iota
	Cleric
	Wizard
	Thief
)

var displayNames = [...]string{"Fighter", "Cleric", "Wizard", "Thief"}

// Names returns every class in declaration order.
func Names() []Name {
	return []Name{Fighter, Cleric, Wizard, Thief}
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(displayNames) {
		return fmt.Sprintf("Klass(%d)", int(n))
	}
	return displayNames[n]
}

// Parse resolves a class name case-insensitively.
func Parse(s string) (Name, error) {
	key := strings.TrimSpace(s)
	for i, dn := range displayNames {
		if strings.EqualFold(dn, key) {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKlass, s)
}

// Profile is the immutable constant data for one class.
type Profile struct {
	name   Name
	prime  trait.Trait
	hitDie dice.Expression
	freeHP int
	gold   dice.Expression
	skills []string
	spells []string
	items  []inventory.Item
	kit    string
}

// Lookup returns the profile for n.
func Lookup(n Name) (Profile, error) {
	if n < 0 || int(n) >= len(profiles) {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownKlass, n)
	}
	return profiles[n], nil
}

// Name returns the class variant.
func (p Profile) Name() Name { return p.name }

// Prime returns the class's prime trait.
func (p Profile) Prime() trait.Trait { return p.prime }

// HitDie returns the hit-die expression.
func (p Profile) HitDie() dice.Expression { return p.hitDie }

// FreeHP returns the fixed starting HP added to the hit die.
func (p Profile) FreeHP() int { return p.freeHP }

// GoldDice returns the starting-gold expression.
func (p Profile) GoldDice() dice.Expression { return p.gold }

// IsCaster reports whether the class always reads and writes.
func (p Profile) IsCaster() bool { return p.name == Cleric || p.name == Wizard }

// Spells returns a copy of the class's starting spells.
func (p Profile) Spells() []string { return append([]string(nil), p.spells...) }

// AdjustTraits swaps the largest rolled trait into the prime slot. Ties resolve
// to the first maximum in trait order.
//
// Postcondition: result.Get(p.Prime()) >= ts.Get(p.Prime()); the multiset of
// values is unchanged.
func (p Profile) AdjustTraits(ts trait.Traits) trait.Traits {
	return ts.Swap(ts.Largest(), p.prime)
}

// RollHP rolls the hit die and adds free HP and hpMod.
//
// Postcondition: result >= 1.
func (p Profile) RollHP(src dice.Source, hpMod int) int {
	return max(dice.MustRoll(p.hitDie, src)+p.freeHP+hpMod, 1)
}

// RollGold evaluates the starting-gold expression.
func (p Profile) RollGold(src dice.Source) int {
	return dice.MustRoll(p.gold, src)
}

// AssignSkills returns skills with the class-granted skills appended.
func (p Profile) AssignSkills(skills []string) []string {
	out := make([]string, 0, len(skills)+len(p.skills))
	out = append(out, skills...)
	return append(out, p.skills...)
}

// KitID returns the kit the class starts with, or "" for none.
func (p Profile) KitID() string { return p.kit }

// AddKlassItems returns inv with class items appended. The class kit is not
// included; it is resolved against a KitRegistry by the caller.
func (p Profile) AddKlassItems(inv inventory.Inventory) inventory.Inventory {
	return inv.Add(p.items...)
}
