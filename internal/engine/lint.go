package engine

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// IssueKind classifies a content defect
type IssueKind string

// Content defects found by LintContent
const (
	IssueMissingEntry        IssueKind = "missing_entry"
	IssueDanglingNextNode    IssueKind = "dangling_next_node"
	IssueOrphanNode          IssueKind = "orphan_node"
	IssueUnknownItemReward   IssueKind = "unknown_item_reward"
	IssueUnknownItemRequired IssueKind = "unknown_item_requirement"
	IssueUnknownShop         IssueKind = "unknown_shop"
	IssueUnknownStat         IssueKind = "unknown_stat"
	IssueUnknownClass        IssueKind = "unknown_class"
)

// Issue is one content defect. Choice is -1 when the issue is about the node.
type Issue struct {
	Kind   IssueKind
	Story  string
	Node   string
	Choice int
	Detail string
}

func (i Issue) String() string {
	switch {
	case i.Story == "":
		return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
	case i.Choice < 0:
		return fmt.Sprintf("%s: %s/%s: %s", i.Kind, i.Story, i.Node, i.Detail)
	default:
		return fmt.Sprintf("%s: %s/%s[%d]: %s", i.Kind, i.Story, i.Node, i.Choice, i.Detail)
	}
}

// LintContent reports authoring defects in a content bundle. The engine
// tolerates all of them at runtime; they surface as dead ends or skipped
// rewards. Issues are sorted by story, node and choice.
func LintContent(data *game.GameData) []Issue {
	var issues []Issue

	storyNames := make([]string, 0, len(data.Stories))
	for name := range data.Stories {
		storyNames = append(storyNames, name)
	}
	sort.Strings(storyNames)

	for _, name := range storyNames {
		issues = append(issues, LintStory(name, data.Stories[name], data)...)
	}

	classNames := make([]string, 0, len(data.ClassRequirements))
	for name := range data.ClassRequirements {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)
	for _, name := range classNames {
		if _, ok := data.Classes[name]; !ok {
			issues = append(issues, Issue{
				Kind:   IssueUnknownClass,
				Choice: -1,
				Detail: fmt.Sprintf("class requirement %q has no class stats", name),
			})
		}
		for _, stat := range sortedStats(data.ClassRequirements[name].RequiredStats) {
			if !stat.IsValid() {
				issues = append(issues, Issue{
					Kind:   IssueUnknownStat,
					Choice: -1,
					Detail: fmt.Sprintf("class requirement %q names unknown stat %q", name, stat),
				})
			}
		}
	}

	return issues
}

// LintStory reports defects of a single story graph
func LintStory(name string, story game.Story, data *game.GameData) []Issue {
	var issues []Issue

	if _, ok := story[game.EntryNode]; !ok {
		issues = append(issues, Issue{
			Kind:   IssueMissingEntry,
			Story:  name,
			Node:   game.EntryNode,
			Choice: -1,
			Detail: "story has no entry node",
		})
	}

	keys := make([]string, 0, len(story))
	for key := range story {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	referenced := map[string]bool{game.EntryNode: true}
	for _, key := range keys {
		node := story[key]
		if node.Shop != "" && !hasShop(data, node.Shop) {
			issues = append(issues, Issue{
				Kind:   IssueUnknownShop,
				Story:  name,
				Node:   key,
				Choice: -1,
				Detail: fmt.Sprintf("node shop %q does not exist", node.Shop),
			})
		}

		for i, choice := range node.Choices {
			issues = append(issues, lintChoice(name, key, i, choice, story, data)...)
			if choice.NextNode != game.ShopInterface {
				referenced[choice.NextNode] = true
			}
		}
	}

	for _, key := range keys {
		if !referenced[key] && !story[key].IsEnding {
			issues = append(issues, Issue{
				Kind:   IssueOrphanNode,
				Story:  name,
				Node:   key,
				Choice: -1,
				Detail: "node is not referenced by any choice",
			})
		}
	}

	sort.SliceStable(issues, func(a, b int) bool {
		if issues[a].Node != issues[b].Node {
			return issues[a].Node < issues[b].Node
		}
		return issues[a].Choice < issues[b].Choice
	})
	return issues
}

func lintChoice(
	story, node string, idx int, choice game.Choice,
	graph game.Story, data *game.GameData,
) []Issue {
	var issues []Issue
	add := func(kind IssueKind, format string, args ...any) {
		issues = append(issues, Issue{
			Kind:   kind,
			Story:  story,
			Node:   node,
			Choice: idx,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	if choice.NextNode == game.ShopInterface {
		if choice.Shop != "" && !hasShop(data, choice.Shop) {
			add(IssueUnknownShop, "choice shop %q does not exist", choice.Shop)
		}
	} else if _, ok := graph[choice.NextNode]; !ok {
		add(IssueDanglingNextNode, "next node %q does not exist", choice.NextNode)
	}

	for _, itemID := range choice.ItemRewards {
		if _, ok := data.Items[itemID]; !ok {
			add(IssueUnknownItemReward, "reward item %q does not exist", itemID)
		}
	}
	for _, itemID := range choice.ItemRequirements {
		if _, ok := data.Items[itemID]; !ok {
			add(IssueUnknownItemRequired, "required item %q does not exist", itemID)
		}
	}
	for _, stat := range sortedStats(choice.Require) {
		if !stat.IsValid() {
			add(IssueUnknownStat, "requirement names unknown stat %q", stat)
		}
	}

	return issues
}

func hasShop(data *game.GameData, shopID string) bool {
	_, ok := data.Shops[shopID]
	return ok
}

func sortedStats(m game.StatMap) []game.Stat {
	stats := make([]game.Stat, 0, len(m))
	for stat := range m {
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(a, b int) bool { return stats[a] < stats[b] })
	return stats
}
