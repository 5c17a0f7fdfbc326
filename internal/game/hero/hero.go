// Package hero assembles complete, immutable heroes from a creation request and
// an injected random source.
package hero

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// Hunger states.
const HungerFull = "Full"

// Hero is a generated character. The zero value is not a valid Hero. Every
// "edit" returns a new Hero; slices are never shared with callers.
type Hero struct {
	id      uuid.UUID
	request Request
	traits  trait.Traits

	level, xp      int
	hp, hpMax      int
	ac, acMagic    int
	speed          int
	gold, silver   int
	goldBanked     float64
	occupation     string
	occDescriptor  string
	description    string
	toHitMelee     int
	damage         int
	wtAllow        int
	load           int
	literacy       string
	toKnow         int
	currentMSP     int
	maxMSP         int
	mspPerLevel    int
	spellsKnown    int
	maxLangs       int
	mam            int
	currentCSP     int
	maxCSP         int
	cspPerLevel    int
	turnUndead     int
	hpMod          int
	rmr            int
	toHitMissile   int
	acMod          int
	weight, height int
	hunger         string
	ap             int
	overbearing    int
	pummeling      int
	grappling      int
	shieldBash     int
	languages      []string
	occSkills      []string
	raceSkills     []string
	klassSkills    []string
	spells         []string
	thiefSkills    *klass.ThiefSkills
	inventory      inventory.Inventory
}

// ID returns the hero's unique identifier.
func (h Hero) ID() uuid.UUID { return h.id }

// Request returns the choices the hero was generated from.
func (h Hero) Request() Request { return h.request }

// Name returns the hero's name.
func (h Hero) Name() string { return h.request.Name }

// Race returns the hero's race.
func (h Hero) Race() race.Name { return h.request.Race }

// Klass returns the hero's class.
func (h Hero) Klass() klass.Name { return h.request.Klass }

// Gender returns the hero's gender.
func (h Hero) Gender() Gender { return h.request.Gender }

// Traits returns the final prime traits.
func (h Hero) Traits() trait.Traits { return h.traits }

// HP returns current hit points.
func (h Hero) HP() int { return h.hp }

// ArmorClass returns the unarmored armor class.
func (h Hero) ArmorClass() int { return h.ac }

// ACMod returns the DEX armor-class modifier.
func (h Hero) ACMod() int { return h.acMod }

// HPMod returns the CON hit-point modifier.
func (h Hero) HPMod() int { return h.hpMod }

// MagicAttackMod returns the WIS magic-attack modifier including racial poison resistance.
func (h Hero) MagicAttackMod() int { return h.mam }

// PoisonResist returns the racial poison resistance.
func (h Hero) PoisonResist() int { return h.rmr }

// MaxLanguages returns how many further languages the hero can learn.
func (h Hero) MaxLanguages() int { return h.maxLangs }

// Literacy returns the reading ability description.
func (h Hero) Literacy() string { return h.literacy }

// Gold returns gold pieces on hand.
func (h Hero) Gold() int { return h.gold }

// Occupation returns the pre-adventuring occupation.
func (h Hero) Occupation() string { return h.occupation }

// Description returns the physical description paragraph.
func (h Hero) Description() string { return h.description }

// Height returns height in inches.
func (h Hero) Height() int { return h.height }

// Weight returns weight in pounds.
func (h Hero) Weight() int { return h.weight }

// Load returns carried weight in gold-piece weight.
func (h Hero) Load() int { return h.load }

// WeightAllowance returns the STR weight allowance in gold-piece weight.
func (h Hero) WeightAllowance() int { return h.wtAllow }

// ToHitMelee returns the STR to-hit modifier.
func (h Hero) ToHitMelee() int { return h.toHitMelee }

// Languages returns the known languages.
func (h Hero) Languages() []string { return clone(h.languages) }

// OccupationSkills returns granted occupation skill names, or the fallback line.
func (h Hero) OccupationSkills() []string { return clone(h.occSkills) }

// RaceSkills returns the racial skills.
func (h Hero) RaceSkills() []string { return clone(h.raceSkills) }

// KlassSkills returns the class skills.
func (h Hero) KlassSkills() []string { return clone(h.klassSkills) }

// Spells returns the starting spells.
func (h Hero) Spells() []string { return clone(h.spells) }

// ThiefSkills returns the thief skill table; ok is false for non-thieves.
func (h Hero) ThiefSkills() (table klass.ThiefSkills, ok bool) {
	if h.thiefSkills == nil {
		return klass.ThiefSkills{}, false
	}
	return *h.thiefSkills, true
}

// Inventory returns the starting inventory.
func (h Hero) Inventory() inventory.Inventory { return h.inventory }

// WithName returns a copy of h renamed to name.
func (h Hero) WithName(name string) (Hero, error) {
	if err := validateName(name); err != nil {
		return Hero{}, err
	}
	h.request.Name = name
	h.cloneSlices()
	return h, nil
}

func (h *Hero) cloneSlices() {
	h.languages = clone(h.languages)
	h.occSkills = clone(h.occSkills)
	h.raceSkills = clone(h.raceSkills)
	h.klassSkills = clone(h.klassSkills)
	h.spells = clone(h.spells)
	if h.thiefSkills != nil {
		t := *h.thiefSkills
		h.thiefSkills = &t
	}
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
