package occupation

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/trait"
	"github.com/cory-johannsen/herogen/internal/scripting"
)

// ErrEmptyCatalog is returned by Assign when the catalog holds no occupations.
var ErrEmptyCatalog = errors.New("occupation catalog is empty")

// Assignment is the outcome of drawing an occupation.
type Assignment struct {
	Occupation  string
	Description string
	// Skills holds granted skill names, or the fallback line alone when no
	// grant applied.
	Skills   []string
	Fallback bool
	Kit      string
}

// Assigner draws occupations and resolves their gated grants.
type Assigner struct {
	catalog OccupationCatalog
	eval    *scripting.Evaluator
}

// NewAssigner creates an Assigner.
//
// Precondition: catalog and eval must be non-nil.
func NewAssigner(catalog OccupationCatalog, eval *scripting.Evaluator) *Assigner {
	return &Assigner{catalog: catalog, eval: eval}
}

// Assign picks an occupation uniformly in catalog order and resolves its skills
// against ts.
//
// Postcondition: on success Assignment.Occupation is one of catalog.Names().
func (a *Assigner) Assign(src dice.Source, ts trait.Traits) (Assignment, error) {
	names := a.catalog.Names()
	if len(names) == 0 {
		return Assignment{}, ErrEmptyCatalog
	}
	occ, err := a.catalog.Occupation(names[src.Intn(len(names))])
	if err != nil {
		return Assignment{}, err
	}
	return a.Resolve(occ, ts)
}

// Resolve computes the skills occ grants for ts without drawing.
func (a *Assigner) Resolve(occ *Occupation, ts trait.Traits) (Assignment, error) {
	var skills []string
	for _, g := range occ.Grants {
		ok, err := a.passes(g.Gate, ts)
		if err != nil {
			return Assignment{}, fmt.Errorf("occupation %s: grant %q: %w", occ.Name, g.Skill, err)
		}
		if ok {
			skills = append(skills, g.Skill)
		}
	}
	fallback := len(skills) == 0 && occ.Fallback != ""
	if fallback {
		skills = []string{occ.Fallback}
	}
	return Assignment{
		Occupation:  occ.Name,
		Description: occ.Description,
		Skills:      skills,
		Fallback:    fallback,
		Kit:         occ.Kit,
	}, nil
}

func (a *Assigner) passes(g *Gate, ts trait.Traits) (bool, error) {
	if g == nil {
		return true, nil
	}
	for _, c := range g.All {
		t, err := trait.ParseTrait(c.Trait)
		if err != nil {
			return false, err
		}
		if ts.Get(t) <= c.Above {
			return false, nil
		}
	}
	if g.When == "" {
		return true, nil
	}
	return a.eval.Eval(g.When, traitVars(ts))
}

func traitVars(ts trait.Traits) map[string]int {
	vars := make(map[string]int, trait.Count)
	for _, t := range trait.All() {
		vars[t.String()] = ts.Get(t)
	}
	return vars
}
