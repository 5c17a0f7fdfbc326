package klass

import (
	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// ClericSpells are the first-level clerical spells every Cleric starts with.
var ClericSpells = []string{
	"Bless",
	"Command",
	"Create Water",
	"Cure Light Wounds",
	"Detect Evil",
	"Detect Magic",
	"Light",
	"Protection from Evil",
	"Purify Food and Drink",
	"Remove Fear",
	"Resist Cold",
	"Sanctuary",
}

// ThievesKit is the kit ID every Thief starts with.
const ThievesKit = "thieves"

// ReadMagic is the one spell in a new Wizard's spellbook.
const ReadMagic = "Read Magic"

var profiles = [...]Profile{
	Fighter: {
		name:   Fighter,
		prime:  trait.STR,
		hitDie: dice.MustParse("d10"),
		freeHP: 10,
		gold:   dice.MustParse("5d4"),
		items: []inventory.Item{
			{Category: inventory.CategoryArms, Name: "Sword, short, w/scabbard", Quantity: 1, Weight: 7.0},
			{Category: inventory.CategoryArmor, Name: "Leather (AC=12)", Quantity: 1, Weight: 10.0},
		},
	},
	Cleric: {
		name:   Cleric,
		prime:  trait.WIS,
		hitDie: dice.MustParse("d8"),
		freeHP: 8,
		gold:   dice.MustParse("3d6"),
		skills: ClericSpells,
		spells: ClericSpells,
		items: []inventory.Item{
			{Category: inventory.CategoryMagic, Name: "Holy symbol, wooden", Quantity: 1, Weight: 0.5},
			{Category: inventory.CategoryMagic, Name: "Sacred satchel", Quantity: 1, Weight: 0.25},
			{Category: inventory.CategoryArms, Name: "Quarterstaff", Quantity: 1, Weight: 3.0},
			{Category: inventory.CategorySpellMaterial, Name: "Rosemary sprig", Quantity: 1, Weight: 0.125},
			{Category: inventory.CategorySpellMaterial, Name: "Wolfsbane", Quantity: 2, Weight: 0.25},
		},
	},
	Wizard: {
		name:   Wizard,
		prime:  trait.INT,
		hitDie: dice.MustParse("d4"),
		freeHP: 4,
		gold:   dice.MustParse("2d4"),
		skills: []string{ReadMagic},
		spells: []string{ReadMagic},
		items: []inventory.Item{
			{Category: inventory.CategoryMagic, Name: "Magic spell book", Quantity: 1, Weight: 4.0},
			{Category: inventory.CategoryMagic, Name: "Magic bag", Quantity: 1, Weight: 0.25},
			{Category: inventory.CategoryArms, Name: "Walking stick", Quantity: 1, Weight: 3.0},
			{Category: inventory.CategorySpellMaterial, Name: "Live spider", Quantity: 1, Weight: 0.125},
		},
	},
	Thief: {
		name:   Thief,
		prime:  trait.DEX,
		hitDie: dice.MustParse("d6"),
		freeHP: 6,
		gold:   dice.MustParse("2d6"),
		items: []inventory.Item{
			{Category: inventory.CategoryArms, Name: "Dagger", Quantity: 1, Weight: 3.0},
		},
		kit: ThievesKit,
	},
}
