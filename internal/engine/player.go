package engine

import "github.com/KirkDiggler/rpg-story/internal/entities/game"

// BaselineStats are the stats every character starts from before race and class
// modifiers are applied
var BaselineStats = game.Stats{
	Strength:   1,
	Magic:      1,
	Vitality:   1,
	Luck:       1,
	Reputation: 1,
	Money:      20,
}

// CreatePlayer builds a new level 1 character from a race and class selection.
// Unknown stat names in either modifier map are ignored.
func CreatePlayer(
	name string, gender game.Gender, race, class string,
	raceStats, classStats game.StatMap,
) *game.Player {
	stats := BaselineStats
	addStats(&stats, raceStats)
	addStats(&stats, classStats)

	maxHearts := maxHeartsFor(stats.Vitality)

	return &game.Player{
		Name:        name,
		Gender:      gender,
		Race:        race,
		Classes:     []game.PlayerClass{{Name: class, Level: 1, UnlockedAt: 1}},
		ActiveClass: class,
		Stats:       stats,
		Level:       1,
		XP:          0,
		Hearts:      maxHearts,
		MaxHearts:   maxHearts,
		Inventory:   []game.Item{},
		Equipment:   game.Equipment{},
		CurrentNode: game.EntryNode,
	}
}

func addStats(stats *game.Stats, mods game.StatMap) {
	for _, stat := range game.AllStats {
		if delta, ok := mods[stat]; ok {
			stats.Add(stat, delta)
		}
	}
}

// maxHeartsFor derives max hearts from vitality; never below one
func maxHeartsFor(vitality int) int {
	return max(1, vitality*2)
}

func clampHearts(hearts, maxHearts int) int {
	return max(0, min(maxHearts, hearts))
}
