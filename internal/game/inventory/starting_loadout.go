package inventory

// basicKit is the common starting gear every hero receives before class items.
var basicKit = []Item{
	{Category: CategoryEquipment, Name: "Backpack", Quantity: 1, Weight: 7.0},
	{Category: CategoryEquipment, Name: "Tinderbox", Quantity: 1, Weight: 0.5},
	{Category: CategoryEquipment, Name: "Torch", Quantity: 1, Weight: 1.0},
	{Category: CategoryProvision, Name: "Rations", Quantity: 2, Weight: 0.5},
	{Category: CategoryProvision, Name: "Water skein (full)", Quantity: 1, Weight: 1.5},
	{Category: CategoryClothing, Name: "Belt pouch, small", Quantity: 1, Weight: 0.25},
	{Category: CategoryClothing, Name: "Leather boots", Quantity: 1, Weight: 6.0},
	{Category: CategoryClothing, Name: "Belt", Quantity: 1, Weight: 0.25},
	{Category: CategoryClothing, Name: "Breeches", Quantity: 1, Weight: 0.5},
	{Category: CategoryClothing, Name: "Shirt", Quantity: 1, Weight: 0.5},
	{Category: CategoryClothing, Name: "Cloak", Quantity: 1, Weight: 2.0},
}

// BasicLoadout returns a fresh Inventory holding the common starting gear.
//
// Postcondition: returned Inventory is independent of every other call's result.
func BasicLoadout() Inventory {
	return New(basicKit...)
}
