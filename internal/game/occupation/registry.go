package occupation

import (
	"fmt"

	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/scripting"
)

// Registry is the loaded occupation and skill catalog. It is read-only after
// construction and safe for concurrent lookups.
type Registry struct {
	order  []string
	occs   map[string]*Occupation
	skills map[string]Skill
}

// NewRegistry indexes occs and skills and cross-checks every reference.
//
// Precondition: kits and eval must be non-nil.
// Postcondition: returns an error on duplicate names, a grant naming a skill not
// in skills, a kit ID not in kits, or a Lua gate that fails to compile.
func NewRegistry(occs []*Occupation, skills []Skill, kits *inventory.KitRegistry, eval *scripting.Evaluator) (*Registry, error) {
	r := &Registry{
		occs:   make(map[string]*Occupation, len(occs)),
		skills: make(map[string]Skill, len(skills)),
	}
	for _, s := range skills {
		if _, dup := r.skills[s.Name]; dup {
			return nil, fmt.Errorf("occupation: NewRegistry: skill %q already registered", s.Name)
		}
		r.skills[s.Name] = s
	}
	for _, o := range occs {
		if o == nil {
			return nil, fmt.Errorf("occupation: NewRegistry: nil occupation")
		}
		if _, dup := r.occs[o.Name]; dup {
			return nil, fmt.Errorf("occupation: NewRegistry: occupation %q already registered", o.Name)
		}
		for _, g := range o.Grants {
			if _, ok := r.skills[g.Skill]; !ok {
				return nil, fmt.Errorf("occupation: NewRegistry: %s grants %q: %w", o.Name, g.Skill, ErrUnknownSkill)
			}
			if g.Gate != nil && g.Gate.When != "" {
				if err := eval.Compile(g.Gate.When); err != nil {
					return nil, fmt.Errorf("occupation: NewRegistry: %s gate for %q: %w", o.Name, g.Skill, err)
				}
			}
		}
		if o.Kit != "" && kits.Kit(o.Kit) == nil {
			return nil, fmt.Errorf("occupation: NewRegistry: %s references unknown kit %q", o.Name, o.Kit)
		}
		r.occs[o.Name] = o
		r.order = append(r.order, o.Name)
	}
	return r, nil
}

// Occupation returns the named occupation.
func (r *Registry) Occupation(name string) (*Occupation, error) {
	o, ok := r.occs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOccupation, name)
	}
	return o, nil
}

// Names returns occupation names in load order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Skill returns the named skill.
func (r *Registry) Skill(name string) (Skill, error) {
	s, ok := r.skills[name]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
	}
	return s, nil
}

// Len returns the number of occupations.
func (r *Registry) Len() int { return len(r.order) }
