package game

// ItemType classifies an item template
type ItemType string

// ItemType constants
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeQuest      ItemType = "quest"
)

// AllItemTypes lists item types in display order
var AllItemTypes = []ItemType{
	ItemTypeWeapon,
	ItemTypeArmor,
	ItemTypeAccessory,
	ItemTypeConsumable,
	ItemTypeQuest,
}

// SubType declares which equipment slot an item fits
type SubType string

// SubType constants
const (
	SubTypeMainWeapon SubType = "main_weapon"
	SubTypeSideWeapon SubType = "side_weapon"
	SubTypeHead       SubType = "head"
	SubTypeBody       SubType = "body"
	SubTypeLegs       SubType = "legs"
	SubTypeShoes      SubType = "shoes"
	SubTypeRing       SubType = "ring"
	SubTypeNecklace   SubType = "necklace"
	SubTypePotion     SubType = "potion"
)

// Rarity grades an item
type Rarity string

// Rarity constants
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is a content-defined template. A held item is a copy of its template so
// stackable quantities can diverge per instance.
type Item struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Type         ItemType `json:"type" yaml:"type"`
	SubType      SubType  `json:"subType,omitempty" yaml:"subType,omitempty"`
	Description  string   `json:"description" yaml:"description"`
	Effects      Effects  `json:"effects,omitempty" yaml:"effects,omitempty"`
	Requirements StatMap  `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Value        int      `json:"value" yaml:"value"`
	SellValue    *int     `json:"sellValue,omitempty" yaml:"sellValue,omitempty"`
	Stackable    bool     `json:"stackable,omitempty" yaml:"stackable,omitempty"`
	Quantity     int      `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Rarity       Rarity   `json:"rarity,omitempty" yaml:"rarity,omitempty"`
}

// Count returns the quantity an entry represents; an unset quantity counts as one
func (i Item) Count() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// Clone returns a deep copy of the item
func (i Item) Clone() Item {
	out := i
	out.Effects = i.Effects.Clone()
	out.Requirements = i.Requirements.Clone()
	if i.SellValue != nil {
		v := *i.SellValue
		out.SellValue = &v
	}
	return out
}
