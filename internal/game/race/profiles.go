package race

import (
	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

func phys(median int, low, high string) physique {
	return physique{median: median, low: dice.MustParse(low), high: dice.MustParse(high)}
}

var profiles = [...]Profile{
	Human: {
		name:       Human,
		min:        trait.Uniform(8),
		max:        trait.Uniform(18),
		weight:     [2]physique{phys(175, "3d12", "5d12"), phys(130, "3d12", "5d12")},
		height:     [2]physique{phys(68, "d12", "d12"), phys(64, "d12", "d12")},
		descriptor: "a naive look in the eyes",
	},
	Dwarf: {
		name:       Dwarf,
		deltas:     trait.Traits{0, 0, 0, 0, 1, -1},
		min:        trait.Traits{8, 8, 8, 8, 9, 7},
		max:        trait.Traits{18, 18, 18, 18, 19, 17},
		weight:     [2]physique{phys(150, "2d8", "2d12"), phys(120, "2d8", "2d12")},
		height:     [2]physique{phys(48, "d4", "d6"), phys(46, "d4", "d6")},
		descriptor: "a scraggly beard",
		skills: []string{
			"Infravision (60')",
			"Detect slopes in underground passages (75%)",
			"Detect new construction in tunnel (75%)",
			"Detecting sliding or shifting walls or rooms (66%)",
			"Detect stonework traps (50%)",
			"Determine approximate underground depth (50%)",
		},
		language:   languageRule{language: "Groken", chance: 100},
		thiefMods:  [9]int{15, 0, 10, 15, 0, 0, 0, -10, 0},
		poisonSave: true,
	},
	Elf: {
		name:       Elf,
		deltas:     trait.Traits{0, 0, 0, 1, -1, 0},
		min:        trait.Traits{7, 8, 7, 7, 7, 8},
		max:        trait.Traits{18, 18, 18, 19, 18, 18},
		weight:     [2]physique{phys(100, "d10", "d20"), phys(80, "d10", "d20")},
		height:     [2]physique{phys(60, "d4", "d6"), phys(54, "d4", "d6")},
		descriptor: "pointed ears",
		skills: []string{
			"Infravision (60')",
			"Resistance to Sleep and Charm spells (90%) (second std Save allowed if first fails)",
			"Archery: +1 To Hit with bow (not crossbow)",
			"Tingling: Detect hidden or secret doors if within 10' (67% active; 33% passive)",
			"Move Silently (26%)",
		},
		language:  languageRule{language: "Elvish", chance: 100},
		thiefMods: [9]int{0, 5, -5, 0, 5, 10, 5, 0, 5},
	},
	Gnome: {
		name:       Gnome,
		min:        trait.Traits{7, 7, 7, 7, 8, 7},
		max:        trait.Uniform(18),
		weight:     [2]physique{phys(80, "2d4", "2d6"), phys(75, "2d4", "2d6")},
		height:     [2]physique{phys(42, "d3", "d3"), phys(39, "d3", "d3")},
		descriptor: "piercing blue eyes",
		skills: []string{
			"Infravision (60')",
			"Detect slopes in underground passages (80%)",
			"Detect unsafe walls, ceilings, floors (70%)",
			"Detect direction of underground travel (50%)",
			"Determine approximate underground depth (60%)",
		},
		thiefMods:  [9]int{10, 0, 5, 10, 5, 5, 10, -15, 5},
		poisonSave: true,
	},
	HalfElf: {
		name:       HalfElf,
		min:        trait.Uniform(8),
		max:        trait.Uniform(18),
		weight:     [2]physique{phys(100, "d20", "d20"), phys(90, "d20", "d20")},
		height:     [2]physique{phys(62, "d6", "d6"), phys(58, "d6", "d6")},
		descriptor: "somewhat pointed ears",
		skills: []string{
			"Infravision (60')",
			"Resistance to Sleep and Charm spells (30%) (second Save allowed on first fail)",
			"Tingling: Detect hidden or secret doors if within 10' (33% active; 16% passive)",
		},
		language:  languageRule{language: "Elvish", chance: 50},
		thiefMods: [9]int{0, 10, 0, 0, 0, 5, 0, 0, 0},
	},
	HalfOrc: {
		name:       HalfOrc,
		deltas:     trait.Traits{1, 0, 0, 0, 1, -2},
		min:        trait.Traits{9, 7, 7, 7, 13, 7},
		max:        trait.Traits{19, 17, 14, 17, 19, 12},
		weight:     [2]physique{phys(180, "3d8", "4d10"), phys(150, "3d8", "4d10")},
		height:     [2]physique{phys(70, "2d4", "2d4"), phys(65, "2d4", "2d4")},
		descriptor: "a squat snoutish face",
		skills:     []string{"Infravision (60')"},
		language:   languageRule{language: "Orcish", chance: 100},
		thiefMods:  [9]int{5, -5, 5, 5, 0, 0, 5, -5, 0},
	},
	Hobbit: {
		name:       Hobbit,
		deltas:     trait.Traits{-1, 0, 0, 1, 0, 0},
		min:        trait.Traits{7, 7, 7, 8, 10, 7},
		max:        trait.Traits{17, 18, 17, 18, 19, 18},
		weight:     [2]physique{phys(60, "2d4", "2d6"), phys(50, "2d4", "2d6")},
		height:     [2]physique{phys(36, "d3", "d6"), phys(33, "d3", "d6")},
		descriptor: "hairy bare feet",
		skills: []string{
			"Infravision (30')",
			"Resistance to Poison: Special Save includes HPMod and Magic Attack Mod",
			"Detect slopes in underground passages (75%)",
			"Determine direction of underground travel (50%)",
		},
		language:   languageRule{language: "Tolkeen", chance: 100},
		thiefMods:  [9]int{5, 5, 5, 5, 10, 15, 5, -15, 10},
		poisonSave: true,
	},
}
