package game

// Reserved node keys
const (
	// EntryNode is the node every story starts from
	EntryNode = "intro"
	// ShopInterface is the next_node value that opens a shop instead of moving the story
	ShopInterface = "shop_interface"
)

// Choice is a conditionally visible transition out of a node
type Choice struct {
	Text             string   `json:"text" yaml:"text"`
	NextNode         string   `json:"next_node" yaml:"next_node"`
	Effects          Effects  `json:"effects,omitempty" yaml:"effects,omitempty"`
	ItemRewards      []string `json:"itemRewards,omitempty" yaml:"itemRewards,omitempty"`
	ItemRequirements []string `json:"itemRequirements,omitempty" yaml:"itemRequirements,omitempty"`
	Require          StatMap  `json:"require,omitempty" yaml:"require,omitempty"`
	DiceRequirement  int      `json:"dice_requirement,omitempty" yaml:"dice_requirement,omitempty"`
	// LuckRequirement is carried for content compatibility and is not evaluated
	LuckRequirement  int    `json:"luck_requirement,omitempty" yaml:"luck_requirement,omitempty"`
	HiddenUnlessLuck int    `json:"hidden_unless_luck,omitempty" yaml:"hidden_unless_luck,omitempty"`
	Shop             string `json:"shop,omitempty" yaml:"shop,omitempty"`
}

// StoryNode is a single narrative beat
type StoryNode struct {
	Text            string   `json:"text" yaml:"text"`
	Battle          bool     `json:"battle" yaml:"battle"`
	Choices         []Choice `json:"choices" yaml:"choices"`
	DiceRequirement int      `json:"dice_requirement,omitempty" yaml:"dice_requirement,omitempty"`
	IsEnding        bool     `json:"is_ending,omitempty" yaml:"is_ending,omitempty"`
	Shop            string   `json:"shop,omitempty" yaml:"shop,omitempty"`
}

// Story maps node keys to nodes
type Story map[string]StoryNode

// TransitionKind tags what taking a choice does
type TransitionKind int

// TransitionKind constants
const (
	TransitionGoToNode TransitionKind = iota
	TransitionOpenShop
)

// Transition is the resolved target of a choice
type Transition struct {
	Kind   TransitionKind
	Node   string
	ShopID string
}

// ClassRequirement gates unlocking a class as an additional class
type ClassRequirement struct {
	RequiredStats StatMap `json:"requiredStats" yaml:"requiredStats"`
	RequiredLevel int     `json:"requiredLevel" yaml:"requiredLevel"`
	Description   string  `json:"description" yaml:"description"`
}
