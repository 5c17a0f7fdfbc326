// Package catalog loads the read-only content a hero.Assembler is built from.
package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/occupation"
	"github.com/cory-johannsen/herogen/internal/scripting"
)

// Subdirectories of the content root.
const (
	KitsDir        = "kits"
	SkillsDir      = "skills"
	OccupationsDir = "occupations"
)

// Catalog bundles the validated content registries.
type Catalog struct {
	Occupations *occupation.Registry
	Kits        *inventory.KitRegistry
}

// Load reads kits, skills, and occupations under root and cross-validates them.
//
// Precondition: eval must be non-nil; it compiles every scripted gate.
// Postcondition: every occupation skill and every occupation or klass kit resolves.
func Load(root string, eval *scripting.Evaluator) (*Catalog, error) {
	kitDefs, err := inventory.LoadKits(filepath.Join(root, KitsDir))
	if err != nil {
		return nil, fmt.Errorf("loading kits: %w", err)
	}
	kits, err := inventory.NewKitRegistry(kitDefs)
	if err != nil {
		return nil, fmt.Errorf("registering kits: %w", err)
	}
	skills, err := occupation.LoadSkills(filepath.Join(root, SkillsDir))
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}
	occs, err := occupation.LoadOccupations(filepath.Join(root, OccupationsDir))
	if err != nil {
		return nil, fmt.Errorf("loading occupations: %w", err)
	}
	reg, err := occupation.NewRegistry(occs, skills, kits, eval)
	if err != nil {
		return nil, fmt.Errorf("registering occupations: %w", err)
	}
	for _, k := range klass.Names() {
		kp, err := klass.Lookup(k)
		if err != nil {
			return nil, err
		}
		if id := kp.KitID(); id != "" && kits.Kit(id) == nil {
			return nil, fmt.Errorf("klass %s: unknown kit %q", k, id)
		}
	}
	return &Catalog{Occupations: reg, Kits: kits}, nil
}
