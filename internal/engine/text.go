package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

type pronouns struct {
	subject    string
	possessive string
	object     string
}

var pronounsByGender = map[game.Gender]pronouns{
	game.GenderMale:   {subject: "he", possessive: "his", object: "him"},
	game.GenderFemale: {subject: "she", possessive: "her", object: "her"},
	game.GenderOther:  {subject: "they", possessive: "their", object: "them"},
}

// ReplaceVariables substitutes the player placeholders in story text. An unknown
// gender falls back to they/their/them.
func ReplaceVariables(text string, p *game.Player) string {
	pr, ok := pronounsByGender[p.Gender]
	if !ok {
		pr = pronounsByGender[game.GenderOther]
	}

	return strings.NewReplacer(
		"{player_name}", p.Name,
		"{player_race}", p.Race,
		"{player_class}", p.ActiveClass,
		"{he_she}", pr.subject,
		"{his_her}", pr.possessive,
		"{him_her}", pr.object,
	).Replace(text)
}
