// Package occupation holds the pre-adventuring occupations, the skill catalog
// they draw from, and the assigner that picks an occupation for a new hero.
package occupation

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// Sentinel errors for catalog lookups.
var (
	ErrUnknownOccupation = errors.New("unknown occupation")
	ErrUnknownSkill      = errors.New("unknown skill")
)

// Skill is one occupational skill.
type Skill struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

// Validate checks that the Skill satisfies its invariants.
func (s Skill) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Description == "" {
		errs = append(errs, errors.New("description must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}

// Condition requires a trait to be strictly above a threshold.
type Condition struct {
	Trait string `yaml:"trait"`
	Above int    `yaml:"above"`
}

// Gate is a conjunction of conditions plus an optional Lua expression over the
// trait globals STR, INT, WIS, DEX, CON and CHR.
type Gate struct {
	All  []Condition `yaml:"all"`
	When string      `yaml:"when"`
}

// Grant awards Skill when Gate is nil or satisfied.
type Grant struct {
	Skill string `yaml:"skill"`
	Gate  *Gate  `yaml:"gate"`
}

// Occupation is one pre-adventuring background.
type Occupation struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Grants      []Grant `yaml:"grants"`
	Fallback    string  `yaml:"fallback"`
	Kit         string  `yaml:"kit"`
}

// Validate checks structural invariants. Skill and kit references are checked by
// NewRegistry.
func (o *Occupation) Validate() error {
	var errs []error
	if o.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if o.Description == "" {
		errs = append(errs, errors.New("description must not be empty"))
	}
	if len(o.Grants) == 0 && o.Fallback == "" {
		errs = append(errs, errors.New("an occupation without grants needs a fallback"))
	}
	for i, g := range o.Grants {
		if g.Skill == "" {
			errs = append(errs, fmt.Errorf("grant %d: skill must not be empty", i))
		}
		if g.Gate == nil {
			continue
		}
		if len(g.Gate.All) == 0 && g.Gate.When == "" {
			errs = append(errs, fmt.Errorf("grant %d (%s): gate has no conditions", i, g.Skill))
		}
		for _, c := range g.Gate.All {
			if _, err := trait.ParseTrait(c.Trait); err != nil {
				errs = append(errs, fmt.Errorf("grant %d (%s): %w", i, g.Skill, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("occupation %q: %w", o.Name, errors.Join(errs...))
	}
	return nil
}

// OccupationCatalog resolves occupations by name. Names returns the draw order.
type OccupationCatalog interface {
	Occupation(name string) (*Occupation, error)
	Names() []string
}

// SkillCatalog resolves skills by name.
type SkillCatalog interface {
	Skill(name string) (Skill, error)
}
