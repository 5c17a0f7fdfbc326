package klass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

func mustLookup(t testing.TB, n klass.Name) klass.Profile {
	t.Helper()
	p, err := klass.Lookup(n)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	for _, n := range klass.Names() {
		got, err := klass.Parse(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	got, err := klass.Parse(" wizard ")
	require.NoError(t, err)
	assert.Equal(t, klass.Wizard, got)

	_, err = klass.Parse("Bard")
	assert.ErrorIs(t, err, klass.ErrUnknownKlass)
	_, err = klass.Lookup(klass.Name(-1))
	assert.ErrorIs(t, err, klass.ErrUnknownKlass)
}

func TestProfiles_Table(t *testing.T) {
	cases := []struct {
		name   klass.Name
		prime  trait.Trait
		hitDie string
		freeHP int
		gold   string
	}{
		{klass.Fighter, trait.STR, "d10", 10, "5d4"},
		{klass.Cleric, trait.WIS, "d8", 8, "3d6"},
		{klass.Wizard, trait.INT, "d4", 4, "2d4"},
		{klass.Thief, trait.DEX, "d6", 6, "2d6"},
	}
	for _, tc := range cases {
		p := mustLookup(t, tc.name)
		assert.Equal(t, tc.prime, p.Prime(), tc.name.String())
		assert.Equal(t, tc.hitDie, p.HitDie().Raw, tc.name.String())
		assert.Equal(t, tc.freeHP, p.FreeHP(), tc.name.String())
		assert.Equal(t, tc.gold, p.GoldDice().Raw, tc.name.String())
	}
}

func TestAdjustTraits_SwapsLargestIntoPrime(t *testing.T) {
	ts := trait.Traits{10, 17, 12, 9, 17, 8}
	got := mustLookup(t, klass.Fighter).AdjustTraits(ts)
	assert.Equal(t, trait.Traits{17, 10, 12, 9, 17, 8}, got)

	got = mustLookup(t, klass.Thief).AdjustTraits(ts)
	assert.Equal(t, trait.Traits{10, 9, 12, 17, 17, 8}, got)
}

func TestAdjustTraits_PrimeAlreadyLargest(t *testing.T) {
	ts := trait.Traits{10, 11, 18, 9, 12, 8}
	assert.Equal(t, ts, mustLookup(t, klass.Cleric).AdjustTraits(ts))
}

func TestAdjustTraits_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.SampledFrom(klass.Names()).Draw(rt, "klass")
		p, err := klass.Lookup(n)
		require.NoError(rt, err)
		ts := trait.RollAll(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")))
		out := p.AdjustTraits(ts)

		assert.GreaterOrEqual(rt, out.Get(p.Prime()), ts.Get(p.Prime()))
		for _, v := range out {
			assert.LessOrEqual(rt, v, out.Get(p.Prime()))
		}
		sum := func(x trait.Traits) (s int) {
			for _, v := range x {
				s += v
			}
			return s
		}
		assert.Equal(rt, sum(ts), sum(out))
	})
}

func TestRollHP_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.SampledFrom(klass.Names()).Draw(rt, "klass")
		p, err := klass.Lookup(n)
		require.NoError(rt, err)
		face := rapid.IntRange(0, 9).Draw(rt, "face")
		hpMod := rapid.IntRange(-6, 7).Draw(rt, "hpMod")

		hp := p.RollHP(dice.NewFixedSource(face), hpMod)
		roll := face%p.HitDie().Sides + 1
		assert.Equal(rt, max(roll+p.FreeHP()+hpMod, 1), hp)
		assert.GreaterOrEqual(rt, hp, 1)
	})
}

func TestRollHP_FloorAtOne(t *testing.T) {
	assert.Equal(t, 1, mustLookup(t, klass.Wizard).RollHP(dice.NewFixedSource(0), -20))
}

func TestRollGold_Range(t *testing.T) {
	src := dice.NewSeededSource(3)
	for _, n := range klass.Names() {
		p := mustLookup(t, n)
		for i := 0; i < 100; i++ {
			g := p.RollGold(src)
			require.GreaterOrEqual(t, g, p.GoldDice().Min())
			require.LessOrEqual(t, g, p.GoldDice().Max())
		}
	}
}

func TestAssignSkills(t *testing.T) {
	cleric := mustLookup(t, klass.Cleric).AssignSkills(nil)
	assert.Equal(t, klass.ClericSpells, cleric)

	wizard := mustLookup(t, klass.Wizard).AssignSkills([]string{"Luck"})
	assert.Equal(t, []string{"Luck", klass.ReadMagic}, wizard)

	assert.Empty(t, mustLookup(t, klass.Fighter).AssignSkills(nil))
	assert.Empty(t, mustLookup(t, klass.Thief).AssignSkills(nil))
}

func TestSpells_ReturnsCopy(t *testing.T) {
	p := mustLookup(t, klass.Cleric)
	s := p.Spells()
	s[0] = "Mutated"
	assert.Equal(t, "Bless", p.Spells()[0])
	assert.True(t, p.IsCaster())
	assert.False(t, mustLookup(t, klass.Thief).IsCaster())
}

func TestAddKlassItems(t *testing.T) {
	base := inventory.BasicLoadout()
	inv := mustLookup(t, klass.Fighter).AddKlassItems(base)
	assert.Equal(t, base.Len()+2, inv.Len())
	assert.True(t, inv.Contains("Sword, short, w/scabbard"))
	assert.True(t, inv.Contains("Leather (AC=12)"))
	assert.False(t, base.Contains("Dagger"))

	thief := mustLookup(t, klass.Thief)
	assert.Equal(t, []string{"ARMS|Dagger|1|3"}, thief.AddKlassItems(inventory.New()).Strings())
	assert.Equal(t, klass.ThievesKit, thief.KitID())
	assert.Empty(t, mustLookup(t, klass.Fighter).KitID())

	cleric := mustLookup(t, klass.Cleric).AddKlassItems(inventory.New())
	assert.Equal(t, []string{
		"MAGIC|Holy symbol, wooden|1|0.5",
		"MAGIC|Sacred satchel|1|0.25",
		"ARMS|Quarterstaff|1|3",
		"SPELL_MATERIAL|Rosemary sprig|1|0.125",
		"SPELL_MATERIAL|Wolfsbane|2|0.25",
	}, cleric.Strings())
	// 4.375 lb
	assert.Equal(t, 35, cleric.Load())

	wizard := mustLookup(t, klass.Wizard).AddKlassItems(inventory.New())
	assert.Equal(t, []string{
		"MAGIC|Magic spell book|1|4",
		"MAGIC|Magic bag|1|0.25",
		"ARMS|Walking stick|1|3",
		"SPELL_MATERIAL|Live spider|1|0.125",
	}, wizard.Strings())
	assert.Equal(t, 59, wizard.Load())
}
