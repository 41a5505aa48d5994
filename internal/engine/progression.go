package engine

import (
	"sort"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// Progression policy
const (
	// XPPerLevel scales the XP threshold of each level
	XPPerLevel = 100

	// StatPointsPerLevel is the discretionary budget granted by each level up
	StatPointsPerLevel = 2

	// HeartsPerLevel is healed on level up, capped at max hearts
	HeartsPerLevel = 1
)

// ClassMilestones are the levels at which an additional class may be offered
var ClassMilestones = []int{5, 10}

// CalculateXPThreshold returns the XP needed to leave the given level
func CalculateXPThreshold(level int) int {
	return level * XPPerLevel
}

// CanLevelUp reports whether the player's XP meets the threshold of their level
func CanLevelUp(p *game.Player) bool {
	return p.XP >= CalculateXPThreshold(p.Level)
}

// LevelUpPlayer raises the level by exactly one, recomputes max hearts from
// vitality and heals one heart. XP is not consumed.
func LevelUpPlayer(p *game.Player) *game.Player {
	next := p.Clone()
	next.Level++
	next.MaxHearts = maxHeartsFor(next.Stats.Vitality)
	next.Hearts = min(next.Hearts+HeartsPerLevel, next.MaxHearts)
	return next
}

// ApplyStatIncrease adds amount to one stat. Raising vitality recomputes max
// hearts and clamps current hearts; it never heals. Unknown stats are a no-op.
func ApplyStatIncrease(p *game.Player, stat game.Stat, amount int) *game.Player {
	if !stat.IsValid() {
		return p
	}

	next := p.Clone()
	next.Stats.Add(stat, amount)
	if stat == game.StatVitality {
		next.MaxHearts = maxHeartsFor(next.Stats.Vitality)
		next.Hearts = min(next.Hearts, next.MaxHearts)
	}
	return next
}

// MaxClassesForLevel returns how many classes a player of the given level may hold
func MaxClassesForLevel(level int) int {
	switch {
	case level >= 10:
		return 3
	case level >= 5:
		return 2
	default:
		return 1
	}
}

// IsClassMilestone reports whether reaching level may offer a new class
func IsClassMilestone(level int) bool {
	for _, milestone := range ClassMilestones {
		if level == milestone {
			return true
		}
	}
	return false
}

// CanUnlockClass reports whether the player may add className as a new class
func CanUnlockClass(p *game.Player, className string, requirements map[string]game.ClassRequirement) bool {
	requirement, ok := requirements[className]
	if !ok {
		return false
	}
	if p.HasClass(className) {
		return false
	}
	if p.Level < requirement.RequiredLevel {
		return false
	}
	if len(p.Classes) >= MaxClassesForLevel(p.Level) {
		return false
	}
	return p.Stats.Meets(requirement.RequiredStats)
}

// UnlockableClasses returns, sorted by name, every class the player may add now
func UnlockableClasses(p *game.Player, requirements map[string]game.ClassRequirement) []string {
	var names []string
	for name := range requirements {
		if CanUnlockClass(p, name, requirements) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ShouldOfferClass reports whether a class choice is offered right after the
// player reached their current level
func ShouldOfferClass(p *game.Player, requirements map[string]game.ClassRequirement) bool {
	return IsClassMilestone(p.Level) && len(UnlockableClasses(p, requirements)) > 0
}

// AddClassToPlayer appends a class unlocked at the current level and applies the
// class stat modifiers. Max hearts follows the new vitality; hearts are clamped.
func AddClassToPlayer(p *game.Player, className string, classStats game.StatMap) *game.Player {
	next := p.Clone()
	next.Classes = append(next.Classes, game.PlayerClass{
		Name:       className,
		Level:      1,
		UnlockedAt: p.Level,
	})
	addStats(&next.Stats, classStats)
	next.MaxHearts = maxHeartsFor(next.Stats.Vitality)
	next.Hearts = min(next.Hearts, next.MaxHearts)
	return next
}
