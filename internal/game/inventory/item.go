// Package inventory models starting equipment: items, ordered inventories,
// occupation kits, and coinage.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category groups items on the character sheet.
type Category string

// Category constants for Item.Category.
const (
	CategoryEquipment Category = "EQUIPMENT"
	CategoryProvision Category = "PROVISION"
	CategoryClothing  Category = "CLOTHING"
	CategoryArms      Category = "ARMS"
	CategoryArmor     Category = "ARMOR"
	CategoryMagic     Category = "MAGIC"
	CategoryTool      Category = "TOOL"

	CategorySpellMaterial Category = "SPELL_MATERIAL"
)

// validCategories is the set of valid item categories.
var validCategories = map[Category]bool{
	CategoryEquipment: true,
	CategoryProvision: true,
	CategoryClothing:  true,
	CategoryArms:      true,
	CategoryArmor:     true,
	CategoryMagic:     true,
	CategoryTool:      true,

	CategorySpellMaterial: true,
}

// GPWPerPound is the number of gold-piece-weight units in one pound.
const GPWPerPound = 8

// Item is a stack of identical starting items. Weight is per unit, in pounds.
type Item struct {
	Category Category `yaml:"category"`
	Name     string   `yaml:"name"`
	Quantity int      `yaml:"quantity"`
	Weight   float64  `yaml:"weight"`
}

// Validate checks that the Item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (i Item) Validate() error {
	var errs []error
	if !validCategories[i.Category] {
		errs = append(errs, fmt.Errorf("category %q is not valid", i.Category))
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if strings.Contains(i.Name, "|") {
		errs = append(errs, errors.New("name must not contain '|'"))
	}
	if i.Quantity < 1 {
		errs = append(errs, errors.New("quantity must be >= 1"))
	}
	if i.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// TotalWeight returns Quantity * Weight in pounds.
func (i Item) TotalWeight() float64 {
	return float64(i.Quantity) * i.Weight
}

// String encodes the item as "CATEGORY|name|qty|weight".
func (i Item) String() string {
	return fmt.Sprintf("%s|%s|%d|%s", i.Category, i.Name, i.Quantity,
		strconv.FormatFloat(i.Weight, 'f', -1, 64))
}

// ParseItem decodes the String form of an Item.
//
// Postcondition: ParseItem(i.String()) == i for every valid i.
func ParseItem(s string) (Item, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return Item{}, fmt.Errorf("parsing item %q: want 4 fields, got %d", s, len(parts))
	}
	qty, err := strconv.Atoi(parts[2])
	if err != nil {
		return Item{}, fmt.Errorf("parsing item %q quantity: %w", s, err)
	}
	wt, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return Item{}, fmt.Errorf("parsing item %q weight: %w", s, err)
	}
	it := Item{Category: Category(parts[0]), Name: parts[1], Quantity: qty, Weight: wt}
	if err := it.Validate(); err != nil {
		return Item{}, fmt.Errorf("parsing item %q: %w", s, err)
	}
	return it, nil
}

// KitDef is an occupation tool kit loaded from YAML.
type KitDef struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Value  int     `yaml:"value"`
}

// Validate checks that the KitDef satisfies its invariants.
func (k *KitDef) Validate() error {
	var errs []error
	if k.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if k.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if strings.Contains(k.Name, "|") {
		errs = append(errs, errors.New("name must not contain '|'"))
	}
	if k.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if k.Value < 0 {
		errs = append(errs, errors.New("value must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("kit validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// Item returns the kit as a single TOOL item.
func (k *KitDef) Item() Item {
	return Item{Category: CategoryTool, Name: k.Name, Quantity: 1, Weight: k.Weight}
}

// LoadKits reads all *.yaml and *.yml files from dir, parses each as a KitDef,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid KitDefs or the first encountered error.
func LoadKits(dir string) ([]*KitDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadKits: cannot read directory %q: %w", dir, err)
	}

	var kits []*KitDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadKits: cannot read file %q: %w", path, err)
		}
		var k KitDef
		if err := yaml.Unmarshal(data, &k); err != nil {
			return nil, fmt.Errorf("LoadKits: cannot parse file %q: %w", path, err)
		}
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("LoadKits: invalid kit in %q: %w", path, err)
		}
		kits = append(kits, &k)
	}
	return kits, nil
}
