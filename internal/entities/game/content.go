package game

import "sort"

// GameData is the content bundle the engine reads
type GameData struct {
	Classes           map[string]StatMap          `json:"classes" yaml:"classes"`
	Races             map[string]StatMap          `json:"races" yaml:"races"`
	ClassRequirements map[string]ClassRequirement `json:"classRequirements" yaml:"classRequirements"`
	Items             map[string]Item             `json:"items" yaml:"items"`
	Shops             map[string]Shop             `json:"shops" yaml:"shops"`
	Stories           map[string]Story            `json:"stories" yaml:"stories"`
}

// Clone returns a copy that is safe to mutate. Only shops carry session state, so
// they are deep copied; the rest of the bundle is shared read-only.
func (d *GameData) Clone() *GameData {
	if d == nil {
		return nil
	}
	out := *d
	out.Shops = make(map[string]Shop, len(d.Shops))
	for id, shop := range d.Shops {
		out.Shops[id] = shop.Clone()
	}
	return &out
}

// StoryNames returns the story titles sorted
func (d *GameData) StoryNames() []string {
	names := make([]string, 0, len(d.Stories))
	for name := range d.Stories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
