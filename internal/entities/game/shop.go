package game

// DefaultShopID is the shop opened when neither the choice nor its node names one
const DefaultShopID = "town_general"

// ShopItem is an item offered by a shop. A nil Stock means unlimited supply.
type ShopItem struct {
	Item        `yaml:",inline"`
	Stock       *int `json:"stock,omitempty" yaml:"stock,omitempty"`
	RestockTime *int `json:"restockTime,omitempty" yaml:"restockTime,omitempty"`
}

// InStock reports whether the entry can currently be bought
func (s ShopItem) InStock() bool {
	return s.Stock == nil || *s.Stock > 0
}

// Clone returns a deep copy of the entry
func (s ShopItem) Clone() ShopItem {
	out := ShopItem{Item: s.Item.Clone()}
	if s.Stock != nil {
		v := *s.Stock
		out.Stock = &v
	}
	if s.RestockTime != nil {
		v := *s.RestockTime
		out.RestockTime = &v
	}
	return out
}

// Shop is a content entity selling and buying items at scaled prices
type Shop struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Items          []ShopItem `json:"items" yaml:"items"`
	BuyMultiplier  float64    `json:"buyMultiplier" yaml:"buyMultiplier"`
	SellMultiplier float64    `json:"sellMultiplier" yaml:"sellMultiplier"`
}

// Find returns the index of the entry with the given item id, or -1
func (s Shop) Find(itemID string) int {
	for i, entry := range s.Items {
		if entry.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the shop
func (s Shop) Clone() Shop {
	out := s
	out.Items = make([]ShopItem, len(s.Items))
	for i, entry := range s.Items {
		out.Items[i] = entry.Clone()
	}
	return out
}
