package engine

import "github.com/KirkDiggler/rpg-story/internal/entities/game"

// CanMakeChoice reports whether a choice is visible and selectable for the
// player given the dice outcome of the current node visit.
//
// A dice gated choice is never shown before the node's dice phase resolves, and
// a skipped roll fails every dice gate.
func CanMakeChoice(choice game.Choice, p *game.Player, outcome game.DiceOutcome) bool {
	if !p.Stats.Meets(choice.Require) {
		return false
	}

	for _, itemID := range choice.ItemRequirements {
		if !p.HasItem(itemID) {
			return false
		}
	}

	if choice.HiddenUnlessLuck > 0 && p.Stats.Luck < choice.HiddenUnlessLuck {
		return false
	}

	if choice.DiceRequirement > 0 {
		switch outcome.Kind {
		case game.DiceRolled:
			return outcome.Value >= choice.DiceRequirement
		default:
			return false
		}
	}

	return true
}

// VisibleChoice is a choice that passed CanMakeChoice together with its index in
// the node's declared choice list
type VisibleChoice struct {
	Index  int
	Choice game.Choice
}

// VisibleChoices filters a node's choices in declared order
func VisibleChoices(node game.StoryNode, p *game.Player, outcome game.DiceOutcome) []VisibleChoice {
	var visible []VisibleChoice
	for i, choice := range node.Choices {
		if CanMakeChoice(choice, p, outcome) {
			visible = append(visible, VisibleChoice{Index: i, Choice: choice})
		}
	}
	return visible
}

// NeedsDice reports whether any choice on the node is gated on a roll
func NeedsDice(node game.StoryNode) bool {
	if node.DiceRequirement > 0 {
		return true
	}
	for _, choice := range node.Choices {
		if choice.DiceRequirement > 0 {
			return true
		}
	}
	return false
}

// ApplyChoiceEffects applies a choice's xp, hearts and stat deltas and grants its
// item rewards. Unknown effect keys and unknown reward ids are skipped. Moving
// the player to the next node is left to the caller.
func ApplyChoiceEffects(p *game.Player, choice game.Choice, items map[string]game.Item) *game.Player {
	next := p.Clone()

	if len(choice.Effects) > 0 {
		next.XP += choice.Effects[game.EffectXP]

		if delta, ok := choice.Effects[game.EffectHearts]; ok {
			next.Hearts = clampHearts(next.Hearts+delta, next.MaxHearts)
		}

		for _, stat := range game.AllStats {
			if delta, ok := choice.Effects.Stat(stat); ok {
				next.Stats.Add(stat, delta)
			}
		}

		if delta, ok := choice.Effects.Stat(game.StatVitality); ok && delta != 0 {
			next.MaxHearts = maxHeartsFor(next.Stats.Vitality)
			next.Hearts = min(next.Hearts, next.MaxHearts)
		}
	}

	for _, itemID := range choice.ItemRewards {
		item, ok := items[itemID]
		if !ok {
			continue
		}
		next = AddItemToInventory(next, item)
	}

	return next
}

// ResolveTransition turns a choice's next node into an explicit transition. The
// shop interface token opens the choice's shop, else the node's, else
// defaultShop.
func ResolveTransition(choice game.Choice, node game.StoryNode, defaultShop string) game.Transition {
	if choice.NextNode != game.ShopInterface {
		return game.Transition{Kind: game.TransitionGoToNode, Node: choice.NextNode}
	}

	shopID := defaultShop
	switch {
	case choice.Shop != "":
		shopID = choice.Shop
	case node.Shop != "":
		shopID = node.Shop
	case shopID == "":
		shopID = game.DefaultShopID
	}
	return game.Transition{Kind: game.TransitionOpenShop, ShopID: shopID}
}
