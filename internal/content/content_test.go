package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-story/internal/content"
	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

type ContentTestSuite struct {
	suite.Suite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestDefaultBundle() {
	data, err := content.Default()
	s.Require().NoError(err)

	s.Len(data.Classes, 9)
	s.Len(data.Races, 5)
	s.Len(data.ClassRequirements, 4)
	s.Len(data.Items, 9)
	s.Equal([]string{"The Cursed Forest", "The Dragon's Lair"}, data.StoryNames())

	s.Equal(game.StatMap{
		game.StatMagic:      2,
		game.StatLuck:       2,
		game.StatReputation: 1,
		game.StatMoney:      50,
	}, data.Races["Elf"])

	knight := data.ClassRequirements["Knight"]
	s.Equal(5, knight.RequiredLevel)
	s.Equal(3, knight.RequiredStats[game.StatStrength])

	shop, ok := data.Shops[game.DefaultShopID]
	s.Require().True(ok)
	s.Equal(1.0, shop.BuyMultiplier)
	s.Equal(0.5, shop.SellMultiplier)
	s.Require().Len(shop.Items, 6)
	s.Equal("health_potion", shop.Items[0].ID)
	s.Require().NotNil(shop.Items[0].Stock)
	s.Equal(10, *shop.Items[0].Stock)

	potion := data.Items["health_potion"]
	s.True(potion.Stackable)
	s.Equal(2, potion.Effects[game.EffectHearts])
	s.Require().NotNil(potion.SellValue)
	s.Equal(25, *potion.SellValue)

	intro := data.Stories["The Cursed Forest"][game.EntryNode]
	s.Require().Len(intro.Choices, 5)
	s.Equal(2, intro.Choices[4].HiddenUnlessLuck)

	wolf := data.Stories["The Cursed Forest"]["forest_entrance_bold"]
	s.True(wolf.Battle)
	s.Equal(3, wolf.DiceRequirement)
	s.Equal(5, wolf.Choices[0].DiceRequirement)
}

func (s *ContentTestSuite) TestDefaultReturnsFreshCopies() {
	first, err := content.Default()
	s.Require().NoError(err)
	*first.Shops[game.DefaultShopID].Items[0].Stock = 0

	second, err := content.Default()
	s.Require().NoError(err)
	s.Equal(10, *second.Shops[game.DefaultShopID].Items[0].Stock)
}

func (s *ContentTestSuite) TestDefaultBundleLintsDanglingReferences() {
	data, err := content.Default()
	s.Require().NoError(err)

	issues := engine.LintContent(data)

	var dangling []string
	for _, issue := range issues {
		s.NotEqual(engine.IssueUnknownItemReward, issue.Kind, issue.String())
		if issue.Kind == engine.IssueDanglingNextNode {
			dangling = append(dangling, issue.Story+"/"+issue.Node)
		}
	}
	s.Contains(dangling, "The Cursed Forest/intro")
	s.Contains(dangling, "The Dragon's Lair/mountain_climb")
}

func (s *ContentTestSuite) TestEncodeThenParse() {
	data, err := content.Default()
	s.Require().NoError(err)

	for _, format := range []content.Format{content.FormatYAML, content.FormatJSON} {
		s.Run(string(format), func() {
			raw, err := content.Encode(data, format)
			s.Require().NoError(err)

			decoded, err := content.Parse(raw, format)
			s.Require().NoError(err)
			s.Equal(data, decoded)
		})
	}
}

func (s *ContentTestSuite) TestParseFillsMissingSections() {
	data, err := content.Parse([]byte(`{"items": {"rope": {"name": "Rope", "type": "quest", "value": 1}}}`), content.FormatJSON)
	s.Require().NoError(err)

	s.NotNil(data.Classes)
	s.NotNil(data.Stories)
	s.Equal("rope", data.Items["rope"].ID)
}

func (s *ContentTestSuite) TestParseErrors() {
	_, err := content.Parse([]byte("classes: [unclosed"), content.FormatYAML)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = content.Parse([]byte("{}"), content.Format("toml"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ContentTestSuite) TestLoad() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "bundle.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"races": {"Gnome": {"magic": 2}}}`), 0o600))

	data, err := content.Load(path)
	s.Require().NoError(err)
	s.Equal(game.StatMap{game.StatMagic: 2}, data.Races["Gnome"])

	_, err = content.Load(filepath.Join(dir, "missing.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *ContentTestSuite) TestFormats() {
	s.Equal(content.FormatJSON, content.FormatFromPath("export.JSON"))
	s.Equal(content.FormatYAML, content.FormatFromPath("export.yml"))
	s.Equal(content.FormatYAML, content.FormatFromPath("bundle"))

	f, err := content.ParseFormat("yml")
	s.Require().NoError(err)
	s.Equal(content.FormatYAML, f)

	_, err = content.ParseFormat("xml")
	s.True(errors.IsInvalidArgument(err))
}
