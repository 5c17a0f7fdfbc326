package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/herogen/internal/game/catalog"
	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/hero"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/scripting"
	"github.com/cory-johannsen/herogen/internal/storage/postgres"
	"github.com/cory-johannsen/herogen/internal/testutil"
)

func setupHeroRepo(t *testing.T) *postgres.HeroRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	return postgres.NewHeroRepository(testutil.NewPool(t))
}

func generate(t *testing.T, name string, k klass.Name, seed uint64) hero.Hero {
	t.Helper()
	eval := scripting.NewEvaluator(scripting.DefaultInstructionLimit, zap.NewNop())
	cat, err := catalog.Load("../../../content", eval)
	require.NoError(t, err)
	a := hero.NewAssembler(cat.Occupations, cat.Occupations, cat.Kits, eval, zap.NewNop())
	h, err := a.Generate(hero.Request{Name: name, Gender: hero.Female, HairColor: "black", Race: race.Gnome, Klass: k}, dice.NewSeededSource(seed))
	require.NoError(t, err)
	return h
}

func TestHeroRepository_CreateAndGet(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()
	h := generate(t, "Nessa", klass.Wizard, 1)

	created, err := repo.Create(ctx, h)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, h.Attributes(), got.Hero.Attributes())
}

func TestHeroRepository_DuplicateID(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()
	h := generate(t, "Twice", klass.Fighter, 2)

	_, err := repo.Create(ctx, h)
	require.NoError(t, err)
	_, err = repo.Create(ctx, h)
	assert.ErrorIs(t, err, postgres.ErrHeroExists)
}

func TestHeroRepository_GetMissing(t *testing.T) {
	repo := setupHeroRepo(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroRepository_ListByKlass(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	var thieves []hero.Hero
	for i, name := range []string{"Ana", "Bo", "Cy"} {
		h := generate(t, name, klass.Thief, uint64(10+i))
		_, err := repo.Create(ctx, h)
		require.NoError(t, err)
		thieves = append(thieves, h)
	}
	_, err := repo.Create(ctx, generate(t, "Dee", klass.Cleric, 20))
	require.NoError(t, err)

	got, err := repo.ListByKlass(ctx, klass.Thief)
	require.NoError(t, err)
	require.Len(t, got, len(thieves))
	names := make([]string, len(got))
	for i, rec := range got {
		names[i] = rec.Hero.Name()
		assert.Equal(t, klass.Thief, rec.Hero.Klass())
	}
	assert.ElementsMatch(t, []string{"Ana", "Bo", "Cy"}, names)

	none, err := repo.ListByKlass(ctx, klass.Wizard)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHeroRepository_Delete(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()
	h := generate(t, "Gone", klass.Cleric, 3)

	_, err := repo.Create(ctx, h)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, h.ID()))

	_, err = repo.GetByID(ctx, h.ID())
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, h.ID()), postgres.ErrHeroNotFound)
}

func TestHeroRepository_CreateAllIsAtomic(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()
	a := generate(t, "Ari", klass.Wizard, 50)
	b := generate(t, "Bex", klass.Wizard, 51)

	require.NoError(t, repo.CreateAll(ctx, []hero.Hero{a}))
	err := repo.CreateAll(ctx, []hero.Hero{b, a})
	assert.ErrorIs(t, err, postgres.ErrHeroExists)

	_, err = repo.GetByID(ctx, b.ID())
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}
