package hero

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/herogen/internal/game/derived"
	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/occupation"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
	"github.com/cory-johannsen/herogen/internal/scripting"
)

// CommonLanguage is known by every hero.
const CommonLanguage = "Common"

// Assembler runs the generation pipeline. It holds only read-only catalogs and
// is safe for concurrent use.
type Assembler struct {
	assigner *occupation.Assigner
	skills   occupation.SkillCatalog
	kits     *inventory.KitRegistry
	logger   *zap.Logger
}

// NewAssembler creates an Assembler.
//
// Precondition: every argument must be non-nil.
func NewAssembler(occs occupation.OccupationCatalog, skills occupation.SkillCatalog, kits *inventory.KitRegistry, eval *scripting.Evaluator, logger *zap.Logger) *Assembler {
	return &Assembler{
		assigner: occupation.NewAssigner(occs, eval),
		skills:   skills,
		kits:     kits,
		logger:   logger,
	}
}

// Generate runs the full pipeline for req, drawing all randomness from src.
//
// Precondition: src must be non-nil.
// Postcondition: on error the zero Hero is returned; on success every trait lies
// inside the race limits and the same (req, src sequence) yields the same Hero.
func (a *Assembler) Generate(req Request, src dice.Source) (Hero, error) {
	if err := req.Validate(); err != nil {
		return Hero{}, err
	}
	rp, err := race.Lookup(req.Race)
	if err != nil {
		return Hero{}, invalid("race", "%s", err)
	}
	kp, err := klass.Lookup(req.Klass)
	if err != nil {
		return Hero{}, invalid("klass", "%s", err)
	}

	ts := FinalTraits(trait.RollAll(src), rp, kp, req.Gender)

	languages := []string{CommonLanguage}
	if lang, ok := rp.RacialLanguage(src); ok {
		languages = append(languages, lang)
	}
	weight := rp.CalcWeight(src, req.Gender)
	height := rp.CalcHeight(src, req.Gender)

	stats, err := derived.Calculate(derived.Input{Traits: ts, Race: rp, Klass: kp, Height: height, Weight: weight})
	if err != nil {
		return Hero{}, fmt.Errorf("hero: deriving stats: %w", err)
	}
	hp := kp.RollHP(src, stats.HPMod)
	gold := kp.RollGold(src)

	occ, err := a.assigner.Assign(src, ts)
	if err != nil {
		return Hero{}, fmt.Errorf("hero: assigning occupation: %w", err)
	}
	if !occ.Fallback {
		for _, s := range occ.Skills {
			if _, err := a.skills.Skill(s); err != nil {
				return Hero{}, fmt.Errorf("hero: occupation %s: %w", occ.Occupation, err)
			}
		}
	}

	inv := kp.AddKlassItems(inventory.BasicLoadout())
	if id := kp.KitID(); id != "" {
		kit := a.kits.Kit(id)
		if kit == nil {
			return Hero{}, fmt.Errorf("hero: klass %s: unknown kit %q", kp.Name(), id)
		}
		inv = inv.Add(kit.Item())
	}
	if occ.Kit != "" {
		kit := a.kits.Kit(occ.Kit)
		if kit == nil {
			return Hero{}, fmt.Errorf("hero: occupation %s: unknown kit %q", occ.Occupation, occ.Kit)
		}
		inv = inv.Add(kit.Item())
	}

	id, err := uuid.NewRandomFromReader(sourceReader{src})
	if err != nil {
		return Hero{}, fmt.Errorf("hero: generating id: %w", err)
	}

	h := Hero{
		id:            id,
		request:       req,
		traits:        ts,
		level:         1,
		hp:            hp,
		hpMax:         hp,
		ac:            stats.ArmorClass,
		speed:         stats.Speed,
		gold:          gold,
		occupation:    occ.Occupation,
		occDescriptor: occ.Description,
		description:   rp.Description(req.Gender, req.HairColor, ts.Get(trait.CHR), height, weight),
		toHitMelee:    stats.Strength.ToHitMelee,
		damage:        stats.Strength.Damage,
		wtAllow:       stats.Strength.WeightAllowance,
		load:          inv.Load(),
		literacy:      stats.Literacy,
		maxLangs:      stats.MaxLanguages,
		mam:           stats.MagicAttackMod,
		hpMod:         stats.HPMod,
		rmr:           stats.PoisonResist,
		toHitMissile:  stats.ToHitMissile,
		acMod:         stats.ACMod,
		weight:        weight,
		height:        height,
		hunger:        HungerFull,
		ap:            stats.ActionPoints,
		overbearing:   stats.NonLethal.Overbearing,
		pummeling:     stats.NonLethal.Pummeling,
		grappling:     stats.NonLethal.Grappling,
		shieldBash:    stats.NonLethal.ShieldBash,
		languages:     languages,
		occSkills:     clone(occ.Skills),
		raceSkills:    rp.AddRaceSkills(nil),
		klassSkills:   kp.AssignSkills(nil),
		inventory:     inv,
	}
	if w := stats.Wizard; w != nil {
		h.toKnow = w.PercentToKnow
		h.mspPerLevel = w.MSPsPerLevel
		h.currentMSP = w.MSPsPerLevel
		h.maxMSP = w.MSPsPerLevel
		h.spells = clone(w.Spellbook)
		h.spellsKnown = len(w.Spellbook)
	}
	if c := stats.Cleric; c != nil {
		h.cspPerLevel = c.CSPsPerLevel
		h.currentCSP = c.CSPsPerLevel
		h.maxCSP = c.CSPsPerLevel
		h.turnUndead = c.TurnUndead
		h.spells = kp.Spells()
		h.spellsKnown = len(h.spells)
	}
	if req.Klass == klass.Thief {
		table := rp.AdjThiefSkills(klass.ThiefSkillsFor(ts))
		h.thiefSkills = &table
	}

	a.logger.Info("hero generated",
		zap.String("id", id.String()),
		zap.String("name", req.Name),
		zap.String("race", req.Race.String()),
		zap.String("klass", req.Klass.String()),
		zap.String("occupation", occ.Occupation),
	)
	return h, nil
}

// FinalTraits runs the trait stages in order: class adjust, race adjust, gender
// adjust, then clamp to race limits.
func FinalTraits(rolled trait.Traits, rp race.Profile, kp klass.Profile, g Gender) trait.Traits {
	ts := kp.AdjustTraits(rolled)
	ts = rp.AdjustTraits(ts)
	ts = AdjustForGender(ts, g)
	return rp.VerifyLimits(ts)
}

// Reroll generates a fresh Hero from the same request as h.
func (a *Assembler) Reroll(h Hero, src dice.Source) (Hero, error) {
	return a.Generate(h.Request(), src)
}

// SkillDetails resolves h's occupation skills against the skill catalog. A
// fallback line yields no skills.
func (a *Assembler) SkillDetails(h Hero) []occupation.Skill {
	var out []occupation.Skill
	for _, name := range h.occSkills {
		if s, err := a.skills.Skill(name); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// GenerateBatch generates one Hero per request concurrently. Request i draws from
// dice.NewStreamSource(seed, i) so results do not depend on scheduling.
//
// Precondition: workers <= 0 means one worker per request.
// Postcondition: on success len(result) == len(reqs) and result[i] is reqs[i]'s
// Hero; on any failure the first error is returned and no Heroes.
func (a *Assembler) GenerateBatch(ctx context.Context, reqs []Request, seed uint64, workers int) ([]Hero, error) {
	out := make([]Hero, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := a.Generate(req, dice.NewStreamSource(seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("hero: batch entry %d: %w", i, err)
			}
			out[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sourceReader adapts a dice.Source to io.Reader so IDs are reproducible.
type sourceReader struct {
	src dice.Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Intn(256))
	}
	return len(p), nil
}
