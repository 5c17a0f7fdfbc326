package klass

import (
	"fmt"

	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// ThiefSkillCount is the number of slots in a thief skill table.
const ThiefSkillCount = 9

// ThiefSkills holds percentage chances in ThiefSkillNames order.
type ThiefSkills = [ThiefSkillCount]int

// Slot indexes into ThiefSkills.
const (
	FindSecretDoors = iota
	PickPockets
	OpenLocks
	FindTraps
	MoveSilently
	HideInShadows
	Listening
	ClimbWalls
	BackAttack
)

// ThiefSkillNames labels every slot.
var ThiefSkillNames = [ThiefSkillCount]string{
	"Find/Open Secret Doors",
	"Pick Pockets",
	"Open Locks",
	"Find/Remove/Make Traps",
	"Move Silently",
	"Hide in Shadows",
	"Listening",
	"Climb Walls",
	"Back Attack",
}

var thiefBase = ThiefSkills{30, 30, 25, 20, 21, 11, 15, 82, 21}

// DEX adjustment rows; DEX 13 through 15 carry no adjustment.
const (
	thiefDexMin = 9
	thiefDexMax = 18
)

var thiefDexAdj = map[int]ThiefSkills{
	9:  {0, -15, -10, -10, -20, -10, 0, 0, -20},
	10: {0, -10, -5, -10, -15, -5, 0, 0, -5},
	11: {0, -5, 0, -5, -10, 0, 0, 0, -10},
	12: {0, 0, 0, 0, -5, 0, 0, 0, -5},
	16: {0, 0, 5, 0, 0, 0, 0, 0, 0},
	17: {0, 5, 10, 0, 5, 5, 0, 0, 5},
	18: {0, 10, 15, 5, 10, 10, 0, 0, 10},
}

// BaseThiefSkills returns the level-1 thief table adjusted for dex. Back Attack
// tracks Move Silently after the DEX adjustment. Racial modifiers are applied
// separately.
func BaseThiefSkills(dex int) ThiefSkills {
	dex = min(max(dex, thiefDexMin), thiefDexMax)
	table := thiefBase
	adj := thiefDexAdj[dex]
	for i := range table {
		table[i] += adj[i]
	}
	table[BackAttack] = table[MoveSilently]
	return table
}

// ThiefSkillsFor is BaseThiefSkills read from the traits' DEX.
func ThiefSkillsFor(ts trait.Traits) ThiefSkills {
	return BaseThiefSkills(ts.Get(trait.DEX))
}

// FormatThiefSkills renders each slot as "Name (NN%)".
func FormatThiefSkills(table ThiefSkills) []string {
	out := make([]string, ThiefSkillCount)
	for i, pct := range table {
		out[i] = fmt.Sprintf("%s (%d%%)", ThiefSkillNames[i], pct)
	}
	return out
}
