package inventory

import (
	"fmt"
	"sort"
)

// KitRegistry holds occupation kits indexed by ID. It is read-only after loading
// and safe for concurrent lookups.
type KitRegistry struct {
	kits map[string]*KitDef
}

// NewKitRegistry returns a registry holding kits.
//
// Postcondition: returns an error if any kit fails validation or two kits share an ID.
func NewKitRegistry(kits []*KitDef) (*KitRegistry, error) {
	r := &KitRegistry{kits: make(map[string]*KitDef, len(kits))}
	for _, k := range kits {
		if k == nil {
			return nil, fmt.Errorf("inventory: NewKitRegistry: nil kit")
		}
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("inventory: NewKitRegistry: kit %q: %w", k.ID, err)
		}
		if _, exists := r.kits[k.ID]; exists {
			return nil, fmt.Errorf("inventory: NewKitRegistry: kit ID %q already registered", k.ID)
		}
		r.kits[k.ID] = k
	}
	return r, nil
}

// Kit returns the KitDef for id, or nil if not found.
func (r *KitRegistry) Kit(id string) *KitDef {
	return r.kits[id]
}

// IDs returns every registered kit ID in sorted order.
func (r *KitRegistry) IDs() []string {
	ids := make([]string, 0, len(r.kits))
	for id := range r.kits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
