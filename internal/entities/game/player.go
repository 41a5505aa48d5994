package game

// Gender selects the pronoun set used in story text
type Gender string

// Gender constants
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is a known gender
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// PlayerClass is a class held by the player
type PlayerClass struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	UnlockedAt int    `json:"unlockedAt"`
}

// Player is the mutable root of a run
type Player struct {
	Name        string        `json:"name"`
	Gender      Gender        `json:"gender"`
	Race        string        `json:"race"`
	Classes     []PlayerClass `json:"classes"`
	ActiveClass string        `json:"activeClass"`
	Stats       Stats         `json:"stats"`
	Level       int           `json:"level"`
	XP          int           `json:"xp"`
	Hearts      int           `json:"hearts"`
	MaxHearts   int           `json:"maxHearts"`
	Inventory   []Item        `json:"inventory"`
	Equipment   Equipment     `json:"equipment"`
	CurrentNode string        `json:"currentNode"`
}

// HasClass reports whether the player holds a class with the given name
func (p *Player) HasClass(name string) bool {
	for _, c := range p.Classes {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasItem reports whether any inventory entry has the given id
func (p *Player) HasItem(itemID string) bool {
	for _, item := range p.Inventory {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// IsDead reports whether the player has run out of hearts
func (p *Player) IsDead() bool {
	return p.Hearts <= 0
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Classes = append([]PlayerClass(nil), p.Classes...)
	out.Inventory = make([]Item, len(p.Inventory))
	for i, item := range p.Inventory {
		out.Inventory[i] = item.Clone()
	}
	out.Equipment = p.Equipment.Clone()
	return &out
}
