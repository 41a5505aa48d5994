package session_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-story/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-story/internal/pkg/idgen"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
	contentmock "github.com/KirkDiggler/rpg-story/internal/repositories/content/mock"
	"github.com/KirkDiggler/rpg-story/internal/repositories/savegame"
	sessionsvc "github.com/KirkDiggler/rpg-story/internal/services/session"
	"github.com/KirkDiggler/rpg-story/internal/testutils"
)

type MockedDependenciesTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockDice    *dicemock.MockService
	mockContent *contentmock.MockRepository
	saves       *savegame.InMemoryRepository
	orch        *session.Orchestrator
}

func TestMockedDependenciesSuite(t *testing.T) {
	suite.Run(t, new(MockedDependenciesTestSuite))
}

func (s *MockedDependenciesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockContent = contentmock.NewMockRepository(s.ctrl)
	s.saves = savegame.NewInMemory()

	var err error
	s.orch, err = session.New(&session.Config{
		SaveRepo:    s.saves,
		ContentRepo: s.mockContent,
		DiceService: s.mockDice,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewSequential("save"),
		BundleID:    testBundle,
	})
	s.Require().NoError(err)
}

func (s *MockedDependenciesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MockedDependenciesTestSuite) expectContent() {
	s.mockContent.EXPECT().
		Get(gomock.Any(), contentrepo.GetInput{BundleID: testBundle}).
		Return(&contentrepo.GetOutput{Data: testutils.CreateTestGameData()}, nil)
}

func (s *MockedDependenciesTestSuite) TestRollDiceUsesLuckAdvantage() {
	save := testutils.CreateTestSaveGame("save_lucky")
	save.Player.CurrentNode = "wolf"
	save.Player.Stats.Luck = 3
	_, err := s.saves.Create(s.ctx, savegame.CreateInput{SaveGame: save})
	s.Require().NoError(err)

	s.expectContent()
	s.mockDice.EXPECT().
		RollForNode(gomock.Any(), &dice.RollForNodeInput{
			SaveID:    "save_lucky",
			Story:     testutils.TestStory,
			Node:      "wolf",
			Advantage: true,
		}).
		Return(&dice.RollForNodeOutput{Outcome: game.Rolled(5), Advantage: true}, nil)

	out, err := s.orch.RollDice(s.ctx, &sessionsvc.RollDiceInput{SaveID: save.ID})
	s.Require().NoError(err)
	s.Equal(game.Rolled(5), out.Outcome)
	s.True(out.Advantage)
}

func (s *MockedDependenciesTestSuite) TestDiceFailurePropagates() {
	save := testutils.CreateTestSaveGame("save_dice")
	save.Player.CurrentNode = "wolf"
	_, err := s.saves.Create(s.ctx, savegame.CreateInput{SaveGame: save})
	s.Require().NoError(err)

	s.expectContent()
	s.mockDice.EXPECT().
		GetNodeOutcome(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("dice store unavailable"))

	_, err = s.orch.GetScene(s.ctx, &sessionsvc.GetSceneInput{SaveID: save.ID})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *MockedDependenciesTestSuite) TestContentFailurePropagates() {
	s.mockContent.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("content bundle test not found"))

	_, err := s.orch.GetCatalog(s.ctx, &sessionsvc.GetCatalogInput{})
	s.True(errors.IsNotFound(err))
}

func (s *MockedDependenciesTestSuite) TestUnlimitedStockSkipsBundleWrite() {
	data := testutils.CreateTestGameData()
	shop := data.Shops[game.DefaultShopID]
	shop.Items[0].Stock = nil
	data.Shops[game.DefaultShopID] = shop

	save := testutils.CreateTestSaveGame("save_shop")
	save.Phase = game.PhaseShopping
	save.ShopID = game.DefaultShopID
	_, err := s.saves.Create(s.ctx, savegame.CreateInput{SaveGame: save})
	s.Require().NoError(err)

	s.mockContent.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&contentrepo.GetOutput{Data: data}, nil)
	// no Save expected

	out, err := s.orch.Buy(s.ctx, &sessionsvc.BuyInput{SaveID: save.ID, ItemID: "health_potion"})
	s.Require().NoError(err)
	s.Equal(45, out.SaveGame.Player.Stats.Money)
}
