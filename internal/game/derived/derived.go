// Package derived computes the secondary attributes of a hero from its final
// traits, race, and class. Every function is pure.
package derived

import (
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// STR table domain.
const (
	StrMin = 3
	StrMax = 21
)

// Indexed by STR-3.
var (
	toHitTable  = [...]int{-3, -2, -2, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 2, 2, 3}
	damageTable = [...]int{-3, -3, -2, -2, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5}
	wtTable     = [...]int{80, 120, 160, 200, 280, 360, 440, 520, 600, 700, 800, 900, 1000,
		1200, 1500, 1800, 2100, 2300, 2600}
)

// StrengthMods are the STR-derived combat modifiers.
type StrengthMods struct {
	ToHitMelee      int
	Damage          int
	WeightAllowance int // gpw
}

// StrengthModsFor looks up the STR table.
//
// Precondition: StrMin <= str <= StrMax, else a *RangeError is returned.
func StrengthModsFor(str int) (StrengthMods, error) {
	if str < StrMin || str > StrMax {
		return StrengthMods{}, &RangeError{Name: "STR", Value: str, Min: StrMin, Max: StrMax}
	}
	i := str - StrMin
	return StrengthMods{ToHitMelee: toHitTable[i], Damage: damageTable[i], WeightAllowance: wtTable[i]}, nil
}

// Literacy descriptions.
const (
	Illiterate = "Illiterate: Cannot read nor write"
	ReadOnly   = "Can read but cannot write"
	Literate   = "Literate: Can read and write"
)

// Literacy returns the reading ability for intelligence; casters always read and write.
func Literacy(intel int, k klass.Name) string {
	switch {
	case k == klass.Cleric || k == klass.Wizard:
		return Literate
	case intel <= 10:
		return Illiterate
	case intel == 11:
		return ReadOnly
	default:
		return Literate
	}
}

// MaxLanguages is the number of further languages the hero can learn.
func MaxLanguages(intel int) int {
	return max(intel/2-3, 1)
}

// RacialPoisonResist returns floor(con/3.5) for races that carry it, else 0.
func RacialPoisonResist(con int, r race.Profile) int {
	if !r.HasPoisonResistance() {
		return 0
	}
	return con * 2 / 7
}

// Speed buckets action points then adjusts for very short or very tall heroes.
func Speed(ap, height int) int {
	var s int
	switch {
	case ap <= 15:
		s = 2
	case ap <= 23:
		s = 3
	case ap <= 32:
		s = 4
	default:
		s = 5
	}
	switch {
	case height <= 48:
		s--
	case height >= 74:
		s++
	}
	return s
}

// NonLethal holds the unarmed combat values.
type NonLethal struct {
	Overbearing int
	Grappling   int
	Pummeling   int
	ShieldBash  int
}

// NonLethalFor computes the unarmed combat values. No hero starts with a shield.
func NonLethalFor(ap, weight, damage, toHitMissile int) NonLethal {
	return NonLethal{
		Overbearing: ap + weight/25,
		Grappling:   ap + damage,
		Pummeling:   ap + damage + toHitMissile,
	}
}

// BaseArmorClass is the unarmored, unmodified armor class.
const BaseArmorClass = 10

// ArmorClass returns BaseArmorClass + acMod.
func ArmorClass(acMod int) int {
	return BaseArmorClass + acMod
}

// WizardMods are the INT-derived spellcasting values.
type WizardMods struct {
	MSPsPerLevel  int
	PercentToKnow int
	Spellbook     []string
}

// WizardModsFor returns the Wizard values for intelligence.
func WizardModsFor(intel int) WizardMods {
	return WizardMods{
		MSPsPerLevel:  intel/2 - 3,
		PercentToKnow: intel * 5,
		Spellbook:     []string{klass.ReadMagic},
	}
}

// ClericMods are the WIS-derived spellcasting values.
type ClericMods struct {
	CSPsPerLevel int
	TurnUndead   int
}

// ClericModsFor returns the Cleric values for wisdom.
func ClericModsFor(wis int) ClericMods {
	return ClericMods{CSPsPerLevel: wis / 2, TurnUndead: wis}
}

// Input is everything Calculate reads.
type Input struct {
	Traits trait.Traits
	Race   race.Profile
	Klass  klass.Profile
	Height int // inches
	Weight int // pounds
}

// Stats is the full set of derived attributes.
type Stats struct {
	Strength       StrengthMods
	Literacy       string
	MaxLanguages   int
	MagicAttackMod int // includes PoisonResist
	PoisonResist   int
	HPMod          int
	ToHitMissile   int
	ACMod          int
	ArmorClass     int
	ActionPoints   int
	Speed          int
	NonLethal      NonLethal
	Wizard         *WizardMods
	Cleric         *ClericMods
}

// Calculate derives every secondary attribute from final traits.
//
// Precondition: in.Traits already lie inside the race limits.
// Postcondition: ArmorClass == BaseArmorClass + ACMod; Wizard is non-nil iff the
// class is Wizard; Cleric is non-nil iff the class is Cleric.
func Calculate(in Input) (Stats, error) {
	ts := in.Traits
	str, err := StrengthModsFor(ts.Get(trait.STR))
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		Strength:     str,
		Literacy:     Literacy(ts.Get(trait.INT), in.Klass.Name()),
		MaxLanguages: MaxLanguages(ts.Get(trait.INT)),
		HPMod:        trait.BandedMod(ts.Get(trait.CON)),
		ToHitMissile: trait.BandedMod(ts.Get(trait.DEX)),
		ACMod:        trait.BandedMod(ts.Get(trait.DEX)),
		ActionPoints: ts.Get(trait.STR) + ts.Get(trait.DEX),
	}
	s.PoisonResist = RacialPoisonResist(ts.Get(trait.CON), in.Race)
	s.MagicAttackMod = trait.BandedMod(ts.Get(trait.WIS)) + s.PoisonResist
	s.ArmorClass = ArmorClass(s.ACMod)
	s.Speed = Speed(s.ActionPoints, in.Height)
	s.NonLethal = NonLethalFor(s.ActionPoints, in.Weight, str.Damage, s.ToHitMissile)

	switch in.Klass.Name() {
	case klass.Wizard:
		w := WizardModsFor(ts.Get(trait.INT))
		s.Wizard = &w
	case klass.Cleric:
		c := ClericModsFor(ts.Get(trait.WIS))
		s.Cleric = &c
	}
	return s, nil
}
