package klass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

func TestBaseThiefSkills_NeutralDex(t *testing.T) {
	want := klass.ThiefSkills{30, 30, 25, 20, 21, 11, 15, 82, 21}
	for _, dex := range []int{13, 14, 15} {
		assert.Equal(t, want, klass.BaseThiefSkills(dex), "dex %d", dex)
	}
}

func TestBaseThiefSkills_DexRows(t *testing.T) {
	assert.Equal(t, klass.ThiefSkills{30, 40, 40, 25, 31, 21, 15, 82, 31}, klass.BaseThiefSkills(18))
	assert.Equal(t, klass.ThiefSkills{30, 15, 15, 10, 1, 1, 15, 82, 1}, klass.BaseThiefSkills(9))
	assert.Equal(t, klass.ThiefSkills{30, 30, 25, 20, 16, 11, 15, 82, 16}, klass.BaseThiefSkills(12))
}

func TestBaseThiefSkills_ClampsDex(t *testing.T) {
	assert.Equal(t, klass.BaseThiefSkills(18), klass.BaseThiefSkills(21))
	assert.Equal(t, klass.BaseThiefSkills(9), klass.BaseThiefSkills(3))
}

func TestBaseThiefSkills_BackAttackTracksMoveSilently(t *testing.T) {
	for dex := 3; dex <= 21; dex++ {
		tbl := klass.BaseThiefSkills(dex)
		assert.Equal(t, tbl[klass.MoveSilently], tbl[klass.BackAttack], "dex %d", dex)
	}
}

func TestThiefSkills_HalfOrcScenario(t *testing.T) {
	p, err := race.Lookup(race.HalfOrc)
	require.NoError(t, err)
	base := klass.ThiefSkillsFor(trait.Traits{13, 10, 10, 14, 15, 8})
	got := p.AdjThiefSkills(base)
	mods := p.ThiefMods()
	for i := range got {
		assert.Equal(t, base[i]+mods[i], got[i], klass.ThiefSkillNames[i])
	}
	assert.Equal(t, klass.ThiefSkills{35, 25, 30, 25, 21, 11, 20, 77, 21}, got)
}

func TestFormatThiefSkills(t *testing.T) {
	out := klass.FormatThiefSkills(klass.BaseThiefSkills(14))
	require.Len(t, out, klass.ThiefSkillCount)
	assert.Equal(t, "Find/Open Secret Doors (30%)", out[0])
	assert.Equal(t, "Climb Walls (82%)", out[7])
	assert.Equal(t, "Back Attack (21%)", out[8])
}
