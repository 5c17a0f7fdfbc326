// Package race defines the closed set of playable races and their constant
// profiles: trait deltas, trait limits, physique, descriptors, racial skills,
// languages, and thief-skill modifiers.
package race

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// ErrUnknownRace is returned by Parse and Lookup for names outside the closed set.
var ErrUnknownRace = errors.New("unknown race")

// Name identifies one race variant.
type Name int

// Race variants.
const (
	Human Name = iota
	Dwarf
	Elf
	Gnome
	HalfElf
	HalfOrc
	Hobbit
)

var displayNames = [...]string{"Human", "Dwarf", "Elf", "Gnome", "Half-Elf", "Half-Orc", "Hobbit"}

// Names returns every race in declaration order.
func Names() []Name {
	return []Name{Human, Dwarf, Elf, Gnome, HalfElf, HalfOrc, Hobbit}
}

// String returns the display name, e.g. "Half-Elf".
func (n Name) String() string {
	if n < 0 || int(n) >= len(displayNames) {
		return fmt.Sprintf("Race(%d)", int(n))
	}
	return displayNames[n]
}

// Parse resolves a race name case-insensitively; hyphens and spaces are ignored
// so "Half-Elf", "half elf" and "halfelf" are equivalent.
func Parse(s string) (Name, error) {
	key := normalize(s)
	for i, dn := range displayNames {
		if normalize(dn) == key {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRace, s)
}

func normalize(s string) string {
	return strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Gender selects the physique tables.
type Gender int

// Genders.
const (
	Male Gender = iota
	Female
)

// String returns "Male" or "Female".
func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// ParseGender resolves "male" or "female" case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

// physique is the median and the low/high spread dice for one gender.
type physique struct {
	median int
	low    dice.Expression
	high   dice.Expression
}

// languageRule decides the racial language.
type languageRule struct {
	language string
	chance   int // percent; 100 means always
}

// Profile is the immutable constant data for one race. It is returned by value.
type Profile struct {
	name       Name
	deltas     trait.Traits
	min        trait.Traits
	max        trait.Traits
	weight     [2]physique
	height     [2]physique
	descriptor string
	skills     []string
	language   languageRule
	thiefMods  [9]int
	poisonSave bool
}

// Lookup returns the profile for n.
func Lookup(n Name) (Profile, error) {
	if n < 0 || int(n) >= len(profiles) {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownRace, n)
	}
	return profiles[n], nil
}

// Name returns the race variant.
func (p Profile) Name() Name { return p.name }

// Descriptor returns the race's distinguishing physical feature, e.g. "pointed ears".
func (p Profile) Descriptor() string { return p.descriptor }

// Limits returns the inclusive per-trait window.
func (p Profile) Limits() (lo, hi trait.Traits) { return p.min, p.max }

// Deltas returns the additive trait adjustment.
func (p Profile) Deltas() trait.Traits { return p.deltas }

// ThiefMods returns the 9-slot thief-skill percentage modifiers.
func (p Profile) ThiefMods() [9]int { return p.thiefMods }

// HasPoisonResistance reports whether the race gains the CON-based poison save.
func (p Profile) HasPoisonResistance() bool { return p.poisonSave }

// AdjustTraits applies the race's additive trait delta.
func (p Profile) AdjustTraits(ts trait.Traits) trait.Traits {
	return ts.Adjust(p.deltas)
}

// VerifyLimits clamps every trait into the race window.
//
// Postcondition: result.Within(p.Limits()).
func (p Profile) VerifyLimits(ts trait.Traits) trait.Traits {
	return ts.Clamp(p.min, p.max)
}

// RacialLanguage returns the language known in addition to Common. ok is false
// when the race has none; the HalfElf chance is drawn from src.
func (p Profile) RacialLanguage(src dice.Source) (lang string, ok bool) {
	if p.language.language == "" {
		return "", false
	}
	if p.language.chance < 100 && dice.Percent(src) > p.language.chance {
		return "", false
	}
	return p.language.language, true
}

// AddRaceSkills returns skills with the racial skills appended.
func (p Profile) AddRaceSkills(skills []string) []string {
	out := make([]string, 0, len(skills)+len(p.skills))
	out = append(out, skills...)
	return append(out, p.skills...)
}

// AdjThiefSkills adds the racial modifier vector to a thief table.
func (p Profile) AdjThiefSkills(table [9]int) [9]int {
	for i := range table {
		table[i] += p.thiefMods[i]
	}
	return table
}
