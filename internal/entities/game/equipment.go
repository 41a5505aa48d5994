package game

// Slot names an equipment slot
type Slot string

// Slot constants
const (
	SlotMainWeapon  Slot = "mainWeapon"
	SlotSideWeapon  Slot = "sideWeapon"
	SlotHead        Slot = "head"
	SlotBody        Slot = "body"
	SlotLegs        Slot = "legs"
	SlotShoes       Slot = "shoes"
	SlotRing1       Slot = "ring1"
	SlotRing2       Slot = "ring2"
	SlotNecklace    Slot = "necklace"
	SlotQuickPotion Slot = "quickPotion"
)

// AllSlots lists the slots in display order
var AllSlots = []Slot{
	SlotMainWeapon,
	SlotSideWeapon,
	SlotHead,
	SlotBody,
	SlotLegs,
	SlotShoes,
	SlotRing1,
	SlotRing2,
	SlotNecklace,
	SlotQuickPotion,
}

// SlotFor maps a non-ring subtype to its slot. Rings fit either ring slot and
// are resolved by the equip rule, so they report false here.
func SlotFor(subType SubType) (Slot, bool) {
	switch subType {
	case SubTypeMainWeapon:
		return SlotMainWeapon, true
	case SubTypeSideWeapon:
		return SlotSideWeapon, true
	case SubTypeHead:
		return SlotHead, true
	case SubTypeBody:
		return SlotBody, true
	case SubTypeLegs:
		return SlotLegs, true
	case SubTypeShoes:
		return SlotShoes, true
	case SubTypeNecklace:
		return SlotNecklace, true
	case SubTypePotion:
		return SlotQuickPotion, true
	}
	return "", false
}

// Equipment maps occupied slots to the item in them. Empty slots have no key.
type Equipment map[Slot]Item

// Get returns the item in a slot, if any
func (e Equipment) Get(slot Slot) (Item, bool) {
	item, ok := e[slot]
	return item, ok
}

// Clone returns a deep copy of the equipment
func (e Equipment) Clone() Equipment {
	out := make(Equipment, len(e))
	for slot, item := range e {
		out[slot] = item.Clone()
	}
	return out
}
