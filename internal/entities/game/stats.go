package game

// Stat names one of the six player attributes
type Stat string

// Stat constants
const (
	StatStrength   Stat = "strength"
	StatMagic      Stat = "magic"
	StatVitality   Stat = "vitality"
	StatLuck       Stat = "luck"
	StatReputation Stat = "reputation"
	StatMoney      Stat = "money"
)

// AllStats lists the stats in their canonical order
var AllStats = []Stat{
	StatStrength,
	StatMagic,
	StatVitality,
	StatLuck,
	StatReputation,
	StatMoney,
}

// IsValid reports whether s names one of the six stats
func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatMagic, StatVitality, StatLuck, StatReputation, StatMoney:
		return true
	}
	return false
}

// Stats holds the player's current attribute values
type Stats struct {
	Strength   int `json:"strength" yaml:"strength"`
	Magic      int `json:"magic" yaml:"magic"`
	Vitality   int `json:"vitality" yaml:"vitality"`
	Luck       int `json:"luck" yaml:"luck"`
	Reputation int `json:"reputation" yaml:"reputation"`
	Money      int `json:"money" yaml:"money"`
}

// Get returns the value of the named stat; ok is false for unknown names
func (s Stats) Get(stat Stat) (value int, ok bool) {
	switch stat {
	case StatStrength:
		return s.Strength, true
	case StatMagic:
		return s.Magic, true
	case StatVitality:
		return s.Vitality, true
	case StatLuck:
		return s.Luck, true
	case StatReputation:
		return s.Reputation, true
	case StatMoney:
		return s.Money, true
	}
	return 0, false
}

// Add adds delta to the named stat and reports whether the name was known
func (s *Stats) Add(stat Stat, delta int) bool {
	switch stat {
	case StatStrength:
		s.Strength += delta
	case StatMagic:
		s.Magic += delta
	case StatVitality:
		s.Vitality += delta
	case StatLuck:
		s.Luck += delta
	case StatReputation:
		s.Reputation += delta
	case StatMoney:
		s.Money += delta
	default:
		return false
	}
	return true
}

// Meets reports whether every stat named in required is at least the given minimum.
// Unknown stat names are ignored.
func (s Stats) Meets(required StatMap) bool {
	for _, stat := range AllStats {
		minimum, ok := required[stat]
		if !ok {
			continue
		}
		if value, _ := s.Get(stat); value < minimum {
			return false
		}
	}
	return true
}

// StatMap is a sparse set of stat values, used for modifiers and minimums.
// A missing key contributes nothing; keys that are not stats are ignored.
type StatMap map[Stat]int

// Clone returns a copy of the map
func (m StatMap) Clone() StatMap {
	if m == nil {
		return nil
	}
	out := make(StatMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Effect keys that are not stats
const (
	EffectXP        = "xp"
	EffectHearts    = "hearts"
	EffectMaxHearts = "maxHearts"
)

// Effects is a sparse set of deltas keyed by stat name or by one of the
// pseudo-stats xp, hearts and maxHearts
type Effects map[string]int

// Clone returns a copy of the effects
func (e Effects) Clone() Effects {
	if e == nil {
		return nil
	}
	out := make(Effects, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Stat returns the delta for a stat and whether it was present
func (e Effects) Stat(stat Stat) (int, bool) {
	v, ok := e[string(stat)]
	return v, ok
}
