package race_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

func mustLookup(t testing.TB, n race.Name) race.Profile {
	t.Helper()
	p, err := race.Lookup(n)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	cases := map[string]race.Name{
		"Human":    race.Human,
		"dwarf":    race.Dwarf,
		"ELF":      race.Elf,
		"Gnome":    race.Gnome,
		"Half-Elf": race.HalfElf,
		"half elf": race.HalfElf,
		"HalfOrc":  race.HalfOrc,
		"hobbit":   race.Hobbit,
	}
	for in, want := range cases {
		got, err := race.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := race.Parse("Troll")
	assert.True(t, errors.Is(err, race.ErrUnknownRace))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := race.Lookup(race.Name(99))
	assert.ErrorIs(t, err, race.ErrUnknownRace)
}

func TestNames_RoundTripThroughString(t *testing.T) {
	for _, n := range race.Names() {
		got, err := race.Parse(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
		assert.Equal(t, n, mustLookup(t, n).Name())
	}
}

func TestParseGender(t *testing.T) {
	g, err := race.ParseGender("FEMALE")
	require.NoError(t, err)
	assert.Equal(t, race.Female, g)
	assert.Equal(t, "Male", race.Male.String())
	_, err = race.ParseGender("other")
	assert.Error(t, err)
}

func TestAdjustTraits_Deltas(t *testing.T) {
	base := trait.Uniform(12)
	cases := []struct {
		name race.Name
		want trait.Traits
	}{
		{race.Human, trait.Traits{12, 12, 12, 12, 12, 12}},
		{race.Dwarf, trait.Traits{12, 12, 12, 12, 13, 11}},
		{race.Elf, trait.Traits{12, 12, 12, 13, 11, 12}},
		{race.Gnome, trait.Traits{12, 12, 12, 12, 12, 12}},
		{race.HalfElf, trait.Traits{12, 12, 12, 12, 12, 12}},
		{race.HalfOrc, trait.Traits{13, 12, 12, 12, 13, 10}},
		{race.Hobbit, trait.Traits{11, 12, 12, 13, 12, 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, mustLookup(t, tc.name).AdjustTraits(base))
		})
	}
}

func TestDwarfScenario(t *testing.T) {
	p := mustLookup(t, race.Dwarf)
	ts := trait.Traits{12, 12, 12, 12, 16, 10}
	adj := p.AdjustTraits(ts)
	assert.Equal(t, 17, adj.Get(trait.CON))
	assert.Equal(t, 9, adj.Get(trait.CHR))
	assert.True(t, p.HasPoisonResistance())
}

func TestHobbitScenario(t *testing.T) {
	adj := mustLookup(t, race.Hobbit).AdjustTraits(trait.Traits{10, 12, 12, 10, 12, 12})
	assert.Equal(t, 9, adj.Get(trait.STR))
	assert.Equal(t, 11, adj.Get(trait.DEX))
}

func TestVerifyLimits_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.SampledFrom(race.Names()).Draw(rt, "race")
		p, err := race.Lookup(n)
		require.NoError(rt, err)
		var ts trait.Traits
		for i := range ts {
			ts[i] = rapid.IntRange(0, 25).Draw(rt, "trait")
		}
		lo, hi := p.Limits()
		out := p.VerifyLimits(ts)
		assert.True(rt, out.Within(lo, hi), "%s outside limits", out)
		for i := range ts {
			if ts[i] >= lo[i] && ts[i] <= hi[i] {
				assert.Equal(rt, ts[i], out[i], "in-range value must be unchanged")
			}
		}
	})
}

func TestHalfOrcLimits(t *testing.T) {
	out := mustLookup(t, race.HalfOrc).VerifyLimits(trait.Traits{20, 20, 20, 20, 8, 20})
	assert.Equal(t, trait.Traits{19, 17, 14, 17, 13, 12}, out)
}

func TestRacialLanguage(t *testing.T) {
	src := dice.NewFixedSource(0)
	cases := []struct {
		name race.Name
		lang string
		ok   bool
	}{
		{race.Human, "", false},
		{race.Gnome, "", false},
		{race.Dwarf, "Groken", true},
		{race.Elf, "Elvish", true},
		{race.HalfOrc, "Orcish", true},
		{race.Hobbit, "Tolkeen", true},
	}
	for _, tc := range cases {
		lang, ok := mustLookup(t, tc.name).RacialLanguage(src)
		assert.Equal(t, tc.lang, lang, tc.name.String())
		assert.Equal(t, tc.ok, ok, tc.name.String())
	}
}

func TestRacialLanguage_HalfElfUsesInjectedSource(t *testing.T) {
	p := mustLookup(t, race.HalfElf)

	lang, ok := p.RacialLanguage(dice.NewFixedSource(49)) // percentile 50
	assert.True(t, ok)
	assert.Equal(t, "Elvish", lang)

	_, ok = p.RacialLanguage(dice.NewFixedSource(50)) // percentile 51
	assert.False(t, ok)
}

func TestRacialLanguage_HalfElfDeterministic(t *testing.T) {
	p := mustLookup(t, race.HalfElf)
	a, b := dice.NewSeededSource(7), dice.NewSeededSource(7)
	for i := 0; i < 50; i++ {
		la, oka := p.RacialLanguage(a)
		lb, okb := p.RacialLanguage(b)
		require.Equal(t, oka, okb)
		require.Equal(t, la, lb)
	}
}

func TestAddRaceSkills_DoesNotAlias(t *testing.T) {
	p := mustLookup(t, race.Dwarf)
	in := []string{"Existing"}
	out := p.AddRaceSkills(in)
	assert.Len(t, in, 1)
	assert.Equal(t, "Existing", out[0])
	assert.Equal(t, "Infravision (60')", out[1])
	assert.Len(t, out, 7)

	assert.Empty(t, mustLookup(t, race.Human).AddRaceSkills(nil))
}

func TestAdjThiefSkills_HalfOrc(t *testing.T) {
	base := [9]int{30, 30, 25, 20, 21, 11, 15, 82, 21}
	got := mustLookup(t, race.HalfOrc).AdjThiefSkills(base)
	assert.Equal(t, [9]int{35, 25, 30, 25, 21, 11, 20, 77, 21}, got)
	assert.Equal(t, [9]int{30, 30, 25, 20, 21, 11, 15, 82, 21}, base)
}

func TestAdjThiefSkills_HumanUnchanged(t *testing.T) {
	base := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, base, mustLookup(t, race.Human).AdjThiefSkills(base))
}

func TestAddRaceSkills_ElvenTexts(t *testing.T) {
	elf, err := race.Lookup(race.Elf)
	require.NoError(t, err)
	skills := elf.AddRaceSkills(nil)
	assert.Contains(t, skills, "Resistance to Sleep and Charm spells (90%) (second std Save allowed if first fails)")
	assert.Contains(t, skills, "Tingling: Detect hidden or secret doors if within 10' (67% active; 33% passive)")

	half, err := race.Lookup(race.HalfElf)
	require.NoError(t, err)
	assert.Contains(t, half.AddRaceSkills(nil), "Resistance to Sleep and Charm spells (30%) (second Save allowed on first fail)")
}
