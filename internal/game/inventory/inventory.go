package inventory

import "math"

// Inventory is an ordered list of items. It is a value type: Add returns a new
// Inventory and never modifies the receiver's backing array.
type Inventory struct {
	items []Item
}

// New returns an Inventory holding items in order.
func New(items ...Item) Inventory {
	return Inventory{items: append([]Item(nil), items...)}
}

// Add returns a new Inventory with items appended. Identical items are not merged.
func (inv Inventory) Add(items ...Item) Inventory {
	out := make([]Item, 0, len(inv.items)+len(items))
	out = append(out, inv.items...)
	out = append(out, items...)
	return Inventory{items: out}
}

// Items returns a copy of the items in order.
func (inv Inventory) Items() []Item {
	return append([]Item(nil), inv.items...)
}

// Len returns the number of item stacks.
func (inv Inventory) Len() int {
	return len(inv.items)
}

// Contains reports whether an item with the given name is present.
func (inv Inventory) Contains(name string) bool {
	for _, it := range inv.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Weight returns the total carried weight in pounds.
func (inv Inventory) Weight() float64 {
	var total float64
	for _, it := range inv.items {
		total += it.TotalWeight()
	}
	return total
}

// Load returns the total carried weight in gold-piece weight, rounded to the
// nearest unit.
func (inv Inventory) Load() int {
	return int(math.Round(inv.Weight() * GPWPerPound))
}

// Strings encodes every item with Item.String.
func (inv Inventory) Strings() []string {
	out := make([]string, len(inv.items))
	for i, it := range inv.items {
		out[i] = it.String()
	}
	return out
}

// ParseInventory decodes a slice produced by Strings.
func ParseInventory(encoded []string) (Inventory, error) {
	items := make([]Item, 0, len(encoded))
	for _, s := range encoded {
		it, err := ParseItem(s)
		if err != nil {
			return Inventory{}, err
		}
		items = append(items, it)
	}
	return Inventory{items: items}, nil
}
