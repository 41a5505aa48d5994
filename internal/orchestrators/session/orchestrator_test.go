package session_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-story/internal/pkg/idgen"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
	dicesession "github.com/KirkDiggler/rpg-story/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-story/internal/repositories/savegame"
	sessionsvc "github.com/KirkDiggler/rpg-story/internal/services/session"
	"github.com/KirkDiggler/rpg-story/internal/testutils"
)

const testBundle = "test"

// Choice indexes on the intro node of the test story
const (
	choiceWolf = iota
	choiceShop
	choicePit
	choiceChest
)

// stubRoller returns faces in order, then ones
type stubRoller struct {
	faces []int
	calls int
}

func (r *stubRoller) Roll(_ int) (int, error) {
	r.calls++
	if len(r.faces) == 0 {
		return 1, nil
	}
	v := r.faces[0]
	r.faces = r.faces[1:]
	return v, nil
}

func (r *stubRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	saves     *savegame.InMemoryRepository
	contents  *contentrepo.InMemoryRepository
	roller    *stubRoller
	published []string
	orch      *session.Orchestrator
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.saves = savegame.NewInMemory()
	s.contents = contentrepo.NewInMemory()
	s.roller = &stubRoller{}
	s.published = nil

	_, err := s.contents.Save(s.ctx, contentrepo.SaveInput{
		BundleID: testBundle,
		Data:     testutils.CreateTestGameData(),
	})
	s.Require().NoError(err)

	fixed := clock.NewFixed(testutils.TestTime)
	diceSvc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: dicesession.NewInMemory(fixed),
		Roller:          s.roller,
	})
	s.Require().NoError(err)

	bus := events.NewBus()
	for _, eventType := range []string{
		session.EventPlayerDied,
		session.EventPlayerLeveledUp,
		session.EventPlayerClassUnlocked,
		session.EventShopItemPurchased,
		session.EventShopItemSold,
		session.EventStoryEndingReached,
	} {
		bus.SubscribeFunc(eventType, 0, s.recorder(eventType))
	}

	s.orch, err = session.New(&session.Config{
		SaveRepo:    s.saves,
		ContentRepo: s.contents,
		DiceService: diceSvc,
		EventBus:    bus,
		IDGenerator: idgen.NewSequential("save"),
		Clock:       fixed,
		BundleID:    testBundle,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) recorder(eventType string) events.HandlerFunc {
	return func(_ context.Context, _ events.Event) error {
		s.published = append(s.published, eventType)
		return nil
	}
}

// startRun creates a Human Warrior and enters the test story
func (s *OrchestratorTestSuite) startRun() *game.SaveGame {
	created, err := s.orch.NewGame(s.ctx, &sessionsvc.NewGameInput{
		Name:   testutils.TestPlayerName,
		Gender: game.GenderMale,
		Race:   "Human",
		Class:  "Warrior",
	})
	s.Require().NoError(err)

	selected, err := s.orch.SelectStory(s.ctx, &sessionsvc.SelectStoryInput{
		SaveID: created.SaveGame.ID,
		Story:  testutils.TestStory,
	})
	s.Require().NoError(err)
	return selected.SaveGame
}

// putSave stores a hand-built save
func (s *OrchestratorTestSuite) putSave(save *game.SaveGame) {
	_, err := s.saves.Create(s.ctx, savegame.CreateInput{SaveGame: save})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) choose(saveID string, index int) *sessionsvc.MakeChoiceOutput {
	out, err := s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: saveID, ChoiceIndex: index})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) reload(saveID string) *game.SaveGame {
	out, err := s.orch.GetGame(s.ctx, &sessionsvc.GetGameInput{SaveID: saveID})
	s.Require().NoError(err)
	return out.SaveGame
}

func (s *OrchestratorTestSuite) TestNewConfigValidation() {
	_, err := session.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = session.New(&session.Config{BundleID: testBundle})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetCatalog() {
	out, err := s.orch.GetCatalog(s.ctx, &sessionsvc.GetCatalogInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Elf", "Human"}, out.Races)
	s.Equal([]string{"Knight", "Mage", "Warrior"}, out.Classes)
	s.Equal([]string{testutils.TestStory}, out.Stories)
}

func (s *OrchestratorTestSuite) TestNewGameCreatesPlayer() {
	out, err := s.orch.NewGame(s.ctx, &sessionsvc.NewGameInput{
		Name:   testutils.TestPlayerName,
		Gender: game.GenderMale,
		Race:   "Human",
		Class:  "Warrior",
	})
	s.Require().NoError(err)

	save := out.SaveGame
	s.Equal("save_1", save.ID)
	s.Equal(game.PhaseStorySelection, save.Phase)
	s.Equal(testutils.CreateTestPlayer().Stats, save.Player.Stats)
	s.Equal(8, save.Player.MaxHearts)
	s.Equal(8, save.Player.Hearts)
	s.Equal(1, save.Player.Level)

	stored := s.reload(save.ID)
	s.Equal(save.Player, stored.Player)
}

func (s *OrchestratorTestSuite) TestNewGameValidation() {
	testCases := []struct {
		name  string
		input *sessionsvc.NewGameInput
		check func(error) bool
	}{
		{
			name:  "missing name",
			input: &sessionsvc.NewGameInput{Gender: game.GenderMale, Race: "Human", Class: "Warrior"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad gender",
			input: &sessionsvc.NewGameInput{Name: "Ana", Gender: "robot", Race: "Human", Class: "Warrior"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown race",
			input: &sessionsvc.NewGameInput{Name: "Ana", Gender: game.GenderFemale, Race: "Orc", Class: "Warrior"},
			check: errors.IsNotFound,
		},
		{
			name:  "unknown class",
			input: &sessionsvc.NewGameInput{Name: "Ana", Gender: game.GenderFemale, Race: "Elf", Class: "Bard"},
			check: errors.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.NewGame(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestNewGameDiscardsPreviousSave() {
	first := s.startRun()

	out, err := s.orch.NewGame(s.ctx, &sessionsvc.NewGameInput{
		Name:           "Lyra",
		Gender:         game.GenderFemale,
		Race:           "Elf",
		Class:          "Mage",
		PreviousSaveID: first.ID,
	})
	s.Require().NoError(err)

	_, err = s.orch.GetGame(s.ctx, &sessionsvc.GetGameInput{SaveID: first.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.orch.ListGames(s.ctx, &sessionsvc.ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.SaveGames, 1)
	s.Equal(out.SaveGame.ID, list.SaveGames[0].ID)
}

func (s *OrchestratorTestSuite) TestSelectStory() {
	save := s.startRun()
	s.Equal(game.PhaseExploring, save.Phase)
	s.Equal(game.EntryNode, save.Player.CurrentNode)
	s.Equal(testutils.TestStory, save.Story)

	_, err := s.orch.SelectStory(s.ctx, &sessionsvc.SelectStoryInput{SaveID: save.ID, Story: "Missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.SelectStory(s.ctx, &sessionsvc.SelectStoryInput{SaveID: "save_404", Story: testutils.TestStory})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetSceneFiltersChoices() {
	save := s.startRun()

	out, err := s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal("Thorin the Human stands at a fork.", out.Text)
	s.False(out.DiceOffered)
	s.False(out.DeadEnd)

	indexes := make([]int, 0, len(out.Choices))
	for _, choice := range out.Choices {
		indexes = append(indexes, choice.Index)
	}
	// the lucky path needs luck 9
	s.Equal([]int{choiceWolf, choiceShop, choicePit, choiceChest}, indexes)
}

func (s *OrchestratorTestSuite) TestBattleDiceFlow() {
	save := s.startRun()

	out := s.choose(save.ID, choiceWolf)
	s.False(out.LeveledUp)
	s.Equal(50, out.SaveGame.Player.XP)
	s.Equal("wolf", out.SaveGame.Player.CurrentNode)

	scene, err := s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.True(scene.DiceOffered)
	s.True(scene.Battle)
	s.False(scene.Advantage)
	s.Equal(game.NotRolled(), scene.Outcome)
	s.Require().Len(scene.Choices, 1)
	s.Equal("Flee", scene.Choices[0].Choice.Text)

	// dice gated choice before rolling
	_, err = s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 0})
	s.True(errors.IsFailedPrecondition(err))

	s.roller.faces = []int{4}
	rolled, err := s.orch.RollDice(s.ctx, &sessionsvc.RollDiceInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.Rolled(4), rolled.Outcome)

	// a second roll on the same visit reuses the first
	again, err := s.orch.RollDice(s.ctx, &sessionsvc.RollDiceInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.Rolled(4), again.Outcome)
	s.Equal(1, s.roller.calls)

	scene, err = s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Len(scene.Choices, 2)

	out = s.choose(save.ID, 0)
	s.True(out.EndingReached)
	s.Equal("clearing", out.SaveGame.Player.CurrentNode)
	s.Equal(70, out.SaveGame.Player.XP)
	s.Equal([]string{session.EventStoryEndingReached}, s.published)
}

func (s *OrchestratorTestSuite) TestSkippedRollFailsDiceGates() {
	save := s.startRun()
	s.choose(save.ID, choiceWolf)

	skipped, err := s.orch.SkipDice(s.ctx, &sessionsvc.SkipDiceInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.DiceSkipped, skipped.Outcome.Kind)

	_, err = s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 0})
	s.True(errors.IsFailedPrecondition(err))

	// fleeing ends the visit; the next visit rolls afresh
	s.choose(save.ID, 1)
	s.choose(save.ID, choiceWolf)

	scene, err := s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.NotRolled(), scene.Outcome)
}

func (s *OrchestratorTestSuite) TestRollDiceWithoutDicePhase() {
	save := s.startRun()

	_, err := s.orch.RollDice(s.ctx, &sessionsvc.RollDiceInput{SaveID: save.ID})
	s.True(errors.IsFailedPrecondition(err))
	s.Zero(s.roller.calls)
}

func (s *OrchestratorTestSuite) TestChoiceIndexOutOfRange() {
	save := s.startRun()

	_, err := s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 9})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestHiddenChoiceCannotBeTaken() {
	save := s.startRun()

	_, err := s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 4})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeathDeletesSave() {
	save := s.startRun()

	out := s.choose(save.ID, choicePit)
	s.True(out.Died)
	s.Nil(out.SaveGame)
	s.Equal([]string{session.EventPlayerDied}, s.published)

	_, err := s.orch.GetGame(s.ctx, &sessionsvc.GetGameInput{SaveID: save.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRewardsAndLevelUp() {
	save := s.startRun()

	out := s.choose(save.ID, choiceChest)
	s.True(out.LeveledUp)
	s.Equal(game.PhaseLevelUp, out.SaveGame.Phase)
	s.Equal(2, out.SaveGame.Player.Level)
	s.Equal(2, out.SaveGame.PendingStatPoints)
	s.Equal("vault", out.SaveGame.Player.CurrentNode)
	s.True(out.SaveGame.Player.HasItem("health_potion"))
	s.True(out.SaveGame.Player.HasItem("silver_coin"))
	s.Equal([]string{session.EventPlayerLeveledUp}, s.published)

	_, err := s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 1})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatStrength: 2, game.StatLuck: 1},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{"charisma": 2},
	})
	s.True(errors.IsInvalidArgument(err))

	applied, err := s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatStrength: 1, game.StatVitality: 1},
	})
	s.Require().NoError(err)
	s.False(applied.LeveledUp)
	s.Empty(applied.OfferedClasses)
	s.Equal(game.PhaseExploring, applied.SaveGame.Phase)
	s.Zero(applied.SaveGame.PendingStatPoints)
	s.Equal(6, applied.SaveGame.Player.Stats.Strength)
	s.Equal(5, applied.SaveGame.Player.Stats.Vitality)
	s.Equal(10, applied.SaveGame.Player.MaxHearts)

	_, err = s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatStrength: 2},
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRemainingXPGrantsAnotherLevel() {
	save := testutils.CreateTestSaveGame("save_xp")
	save.Player.XP = 150
	s.putSave(save)

	out := s.choose(save.ID, choiceChest)
	s.True(out.LeveledUp)
	s.Equal(2, out.SaveGame.Player.Level)

	applied, err := s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatLuck: 2},
	})
	s.Require().NoError(err)
	s.True(applied.LeveledUp)
	s.Equal(3, applied.SaveGame.Player.Level)
	s.Equal(game.PhaseLevelUp, applied.SaveGame.Phase)
	s.Equal(2, applied.SaveGame.PendingStatPoints)

	applied, err = s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatLuck: 2},
	})
	s.Require().NoError(err)
	s.False(applied.LeveledUp)
	s.Equal(game.PhaseExploring, applied.SaveGame.Phase)
	s.Equal(6, applied.SaveGame.Player.Stats.Luck)
}

func (s *OrchestratorTestSuite) TestClassOfferAtMilestone() {
	save := testutils.CreateTestSaveGame("save_knight")
	save.Player.Level = 4
	save.Player.XP = 400
	s.putSave(save)

	out := s.choose(save.ID, choiceWolf)
	s.True(out.LeveledUp)
	s.Equal(5, out.SaveGame.Player.Level)

	applied, err := s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatStrength: 2},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Knight"}, applied.OfferedClasses)
	s.Equal(game.PhaseClassSelection, applied.SaveGame.Phase)

	_, err = s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 1})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.SelectClass(s.ctx, &sessionsvc.SelectClassInput{SaveID: save.ID, Class: "Mage"})
	s.True(errors.IsFailedPrecondition(err))

	selected, err := s.orch.SelectClass(s.ctx, &sessionsvc.SelectClassInput{SaveID: save.ID, Class: "Knight"})
	s.Require().NoError(err)
	s.False(selected.LeveledUp)

	player := selected.SaveGame.Player
	s.Equal(game.PhaseExploring, selected.SaveGame.Phase)
	s.True(player.HasClass("Knight"))
	s.Equal(5, player.Classes[1].UnlockedAt)
	s.Equal(11, player.Stats.Strength)
	s.Equal(7, player.Stats.Vitality)
	s.Equal(14, player.MaxHearts)
	s.Equal(135, player.Stats.Money)
	s.Equal([]string{session.EventPlayerLeveledUp, session.EventPlayerClassUnlocked}, s.published)
}

func (s *OrchestratorTestSuite) TestDeclineClassOffer() {
	save := testutils.CreateTestSaveGame("save_decline")
	save.Player.Level = 5
	save.Phase = game.PhaseClassSelection
	s.putSave(save)

	out, err := s.orch.SelectClass(s.ctx, &sessionsvc.SelectClassInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.PhaseExploring, out.SaveGame.Phase)
	s.Len(out.SaveGame.Player.Classes, 1)
}

func (s *OrchestratorTestSuite) TestShopInterception() {
	save := s.startRun()

	out := s.choose(save.ID, choiceShop)
	s.Equal(game.TransitionOpenShop, out.Transition.Kind)
	s.Equal(game.DefaultShopID, out.Transition.ShopID)
	s.Equal(game.PhaseShopping, out.SaveGame.Phase)
	s.Equal(game.EntryNode, out.SaveGame.Player.CurrentNode)
	s.Zero(out.SaveGame.Player.XP)

	_, err := s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: choiceWolf})
	s.True(errors.IsFailedPrecondition(err))

	closed, err := s.orch.CloseShop(s.ctx, &sessionsvc.CloseShopInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.PhaseExploring, closed.SaveGame.Phase)
	s.Empty(closed.SaveGame.ShopID)

	_, err = s.orch.CloseShop(s.ctx, &sessionsvc.CloseShopInput{SaveID: save.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestBuyAndSell() {
	save := s.startRun()
	s.choose(save.ID, choiceShop)

	shop, err := s.orch.GetShop(s.ctx, &sessionsvc.GetShopInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(95, shop.Money)
	s.Require().Len(shop.BuyOffers, 2)
	s.Equal(50, shop.BuyOffers[0].Price)
	s.True(shop.BuyOffers[0].Affordable)
	s.Empty(shop.SellOffers)

	bought, err := s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "health_potion"})
	s.Require().NoError(err)
	s.Equal(50, bought.Price)
	s.Equal(45, bought.SaveGame.Player.Stats.Money)
	s.True(bought.SaveGame.Player.HasItem("health_potion"))

	// stock is written back to the bundle
	stored, err := s.contents.Get(s.ctx, contentrepo.GetInput{BundleID: testBundle})
	s.Require().NoError(err)
	s.Equal(1, *stored.Data.Shops[game.DefaultShopID].Items[0].Stock)

	_, err = s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "iron_sword"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "dragon_egg"})
	s.True(errors.IsNotFound(err))

	sold, err := s.orch.Sell(s.ctx, &sessionsvc.SellInput{SaveID: save.ID, ItemID: "health_potion"})
	s.Require().NoError(err)
	s.Equal(12, sold.Price)
	s.Equal(57, sold.SaveGame.Player.Stats.Money)
	s.False(sold.SaveGame.Player.HasItem("health_potion"))

	_, err = s.orch.Sell(s.ctx, &sessionsvc.SellInput{SaveID: save.ID, ItemID: "health_potion"})
	s.True(errors.IsNotFound(err))

	s.Equal([]string{session.EventShopItemPurchased, session.EventShopItemSold}, s.published)
}

func (s *OrchestratorTestSuite) TestBuyOutOfStock() {
	save := testutils.CreateTestSaveGame("save_rich")
	save.Player.Stats.Money = 1000
	save.Phase = game.PhaseShopping
	save.ShopID = game.DefaultShopID
	s.putSave(save)

	_, err := s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "iron_sword"})
	s.Require().NoError(err)

	_, err = s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "iron_sword"})
	s.True(errors.IsFailedPrecondition(err))

	reloaded := s.reload(save.ID)
	s.Equal(900, reloaded.Player.Stats.Money)
}

func (s *OrchestratorTestSuite) TestQuestItemsCannotBeSold() {
	save := testutils.CreateTestSaveGame("save_quest")
	save.Player.Inventory = []game.Item{testutils.CreateTestItems()["silver_coin"]}
	save.Phase = game.PhaseShopping
	save.ShopID = game.DefaultShopID
	s.putSave(save)

	shop, err := s.orch.GetShop(s.ctx, &sessionsvc.GetShopInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Empty(shop.SellOffers)

	_, err = s.orch.Sell(s.ctx, &sessionsvc.SellInput{SaveID: save.ID, ItemID: "silver_coin"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestUseItem() {
	items := testutils.CreateTestItems()
	save := testutils.CreateTestSaveGame("save_potion")
	save.Player.Hearts = 3
	save.Player.Inventory = []game.Item{items["health_potion"], items["iron_sword"]}
	s.putSave(save)

	out, err := s.orch.UseItem(s.ctx, &sessionsvc.UseItemInput{SaveID: save.ID, ItemID: "health_potion"})
	s.Require().NoError(err)
	s.False(out.Died)
	s.Equal(5, out.SaveGame.Player.Hearts)
	s.False(out.SaveGame.Player.HasItem("health_potion"))

	_, err = s.orch.UseItem(s.ctx, &sessionsvc.UseItemInput{SaveID: save.ID, ItemID: "iron_sword"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.UseItem(s.ctx, &sessionsvc.UseItemInput{SaveID: save.ID, ItemID: "health_potion"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUseItemCanKill() {
	save := testutils.CreateTestSaveGame("save_poison")
	save.Player.Hearts = 2
	save.Player.Inventory = []game.Item{{
		ID:      "cursed_draught",
		Name:    "Cursed Draught",
		Type:    game.ItemTypeConsumable,
		SubType: game.SubTypePotion,
		Effects: game.Effects{game.EffectHearts: -5},
		Value:   1,
	}}
	s.putSave(save)

	out, err := s.orch.UseItem(s.ctx, &sessionsvc.UseItemInput{SaveID: save.ID, ItemID: "cursed_draught"})
	s.Require().NoError(err)
	s.True(out.Died)
	s.Nil(out.SaveGame)
	s.Equal([]string{session.EventPlayerDied}, s.published)

	_, err = s.orch.GetGame(s.ctx, &sessionsvc.GetGameInput{SaveID: save.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEquipAndUnequip() {
	items := testutils.CreateTestItems()
	save := testutils.CreateTestSaveGame("save_gear")
	save.Player.Inventory = []game.Item{items["iron_sword"], items["silver_coin"]}
	s.putSave(save)

	_, err := s.orch.EquipItem(s.ctx, &sessionsvc.EquipItemInput{SaveID: save.ID, ItemID: "silver_coin"})
	s.True(errors.IsFailedPrecondition(err))

	equipped, err := s.orch.EquipItem(s.ctx, &sessionsvc.EquipItemInput{SaveID: save.ID, ItemID: "iron_sword"})
	s.Require().NoError(err)
	s.False(equipped.SaveGame.Player.HasItem("iron_sword"))

	inventory, err := s.orch.GetInventory(s.ctx, &sessionsvc.GetInventoryInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Contains(inventory.Equipment, game.SlotMainWeapon)
	s.Equal(7, inventory.Totals.Strength)
	s.Empty(inventory.Equippable)
	s.Require().Len(inventory.Groups, 1)
	s.Equal(game.ItemTypeQuest, inventory.Groups[0].Type)

	unequipped, err := s.orch.UnequipItem(s.ctx, &sessionsvc.UnequipItemInput{SaveID: save.ID, Slot: game.SlotMainWeapon})
	s.Require().NoError(err)
	s.True(unequipped.SaveGame.Player.HasItem("iron_sword"))
	s.Empty(unequipped.SaveGame.Player.Equipment)

	_, err = s.orch.UnequipItem(s.ctx, &sessionsvc.UnequipItemInput{SaveID: save.ID, Slot: game.SlotMainWeapon})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.UnequipItem(s.ctx, &sessionsvc.UnequipItemInput{SaveID: save.ID, Slot: "tail"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDanglingNodeIsDeadEnd() {
	save := s.startRun()
	s.choose(save.ID, choiceChest)
	_, err := s.orch.ApplyLevelUp(s.ctx, &sessionsvc.ApplyLevelUpInput{
		SaveID:     save.ID,
		Allocation: game.StatMap{game.StatMagic: 2},
	})
	s.Require().NoError(err)

	out := s.choose(save.ID, 0)
	s.Equal("nowhere", out.SaveGame.Player.CurrentNode)

	scene, err := s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.True(scene.DeadEnd)
	s.Empty(scene.Choices)

	_, err = s.orch.MakeChoice(s.ctx, &sessionsvc.MakeChoiceInput{SaveID: save.ID, ChoiceIndex: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetSceneWithoutStory() {
	created, err := s.orch.NewGame(s.ctx, &sessionsvc.NewGameInput{
		Name:   "Ana",
		Gender: game.GenderFemale,
		Race:   "Elf",
		Class:  "Mage",
	})
	s.Require().NoError(err)

	_, err = s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: created.SaveGame.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteGame() {
	save := s.startRun()

	_, err := s.orch.DeleteGame(s.ctx, &sessionsvc.DeleteGameInput{SaveID: save.ID})
	s.Require().NoError(err)

	_, err = s.orch.DeleteGame(s.ctx, &sessionsvc.DeleteGameInput{SaveID: save.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.orch.ListGames(s.ctx, &sessionsvc.ListGamesInput{})
	s.Require().NoError(err)
	s.Empty(list.SaveGames)
}
