package game

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Phase is the screen-level state of a run
type Phase string

// Phase constants
const (
	PhaseStorySelection Phase = "story_selection"
	PhaseExploring      Phase = "exploring"
	PhaseLevelUp        Phase = "level_up"
	PhaseClassSelection Phase = "class_selection"
	PhaseShopping       Phase = "shopping"
)

// SaveGame is the persisted state of a single run
type SaveGame struct {
	ID                string    `json:"id"`
	Player            *Player   `json:"player"`
	Story             string    `json:"story,omitempty"`
	Phase             Phase     `json:"phase"`
	PendingStatPoints int       `json:"pendingStatPoints,omitempty"`
	ShopID            string    `json:"shopId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// GetID returns the save id
func (s *SaveGame) GetID() string {
	return s.ID
}

// GetType returns the entity type used when the save is an event source
func (s *SaveGame) GetType() string {
	return EntityTypeSaveGame
}

// EntityTypeSaveGame is the core entity type of a save
const EntityTypeSaveGame = "save_game"

var _ core.Entity = (*SaveGame)(nil)
