package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/rpg-story/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-story/internal/testutils"
)

const (
	testSaveID  = "save_1"
	testNodeKey = "Test Trail/wolf"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() dicesession.Repository
	repo    dicesession.Repository
	clock   *clock.Fixed
	mr      *miniredis.Miniredis
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.clock = clock.NewFixed(testutils.TestTime)
	s.mr = nil
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

// advance moves the injected clock and, for redis, the server clock
func (s *RepositoryTestSuite) advance(d time.Duration) {
	s.clock.Advance(d)
	if s.mr != nil {
		s.mr.FastForward(d)
	}
}

func TestInMemoryRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() dicesession.Repository { return dicesession.NewInMemory(s.clock) }
	suite.Run(t, s)
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() dicesession.Repository {
		client, mr := testutils.CreateTestRedisClient(s.T())
		s.mr = mr
		repo, err := dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: s.clock})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) create(nodeKey string, outcome game.DiceOutcome) *dicesession.NodeRoll {
	out, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		SaveID:  testSaveID,
		NodeKey: nodeKey,
		Outcome: outcome,
	})
	s.Require().NoError(err)
	return out.Roll
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		SaveID:    testSaveID,
		NodeKey:   testNodeKey,
		Outcome:   game.Rolled(5),
		Advantage: true,
	})
	s.Require().NoError(err)
	s.True(out.Roll.CreatedAt.Equal(testutils.TestTime))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.Equal(game.Rolled(5), got.Roll.Outcome)
	s.True(got.Roll.Advantage)
	s.Equal(testSaveID, got.Roll.SaveID)
	s.Equal(testNodeKey, got.Roll.NodeKey)
}

func (s *RepositoryTestSuite) TestCreateOncePerVisit() {
	s.create(testNodeKey, game.Rolled(2))

	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		SaveID:  testSaveID,
		NodeKey: testNodeKey,
		Outcome: game.Rolled(6),
	})
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.Equal(game.Rolled(2), got.Roll.Outcome)
}

func (s *RepositoryTestSuite) TestSkippedOutcome() {
	s.create(testNodeKey, game.Skipped())

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.Equal(game.DiceSkipped, got.Roll.Outcome.Kind)
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		input dicesession.CreateInput
	}{
		{name: "empty save", input: dicesession.CreateInput{NodeKey: testNodeKey, Outcome: game.Rolled(1)}},
		{name: "empty node", input: dicesession.CreateInput{SaveID: testSaveID, Outcome: game.Rolled(1)}},
		{name: "unresolved", input: dicesession.CreateInput{SaveID: testSaveID, NodeKey: testNodeKey, Outcome: game.NotRolled()}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestRollKeptUntilDeleted() {
	s.create(testNodeKey, game.Rolled(3))

	s.advance(48 * time.Hour)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.Equal(game.Rolled(3), got.Roll.Outcome)

	_, err = s.repo.Create(s.ctx, dicesession.CreateInput{
		SaveID:  testSaveID,
		NodeKey: testNodeKey,
		Outcome: game.Rolled(6),
	})
	s.True(errors.IsAlreadyExists(err))

	if s.mr != nil {
		s.Zero(s.mr.TTL("dice_session:" + testSaveID + ":" + testNodeKey))
	}
}

func (s *RepositoryTestSuite) TestDelete() {
	s.create(testNodeKey, game.Rolled(3))

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{SaveID: testSaveID, NodeKey: testNodeKey})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDeleteBySave() {
	s.create("Test Trail/wolf", game.Rolled(3))
	s.create("Test Trail/intro", game.Skipped())

	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		SaveID:  "save_2",
		NodeKey: testNodeKey,
		Outcome: game.Rolled(1),
	})
	s.Require().NoError(err)

	out, err := s.repo.DeleteBySave(s.ctx, dicesession.DeleteBySaveInput{SaveID: testSaveID})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{SaveID: "save_2", NodeKey: testNodeKey})
	s.NoError(err)

	out, err = s.repo.DeleteBySave(s.ctx, dicesession.DeleteBySaveInput{SaveID: testSaveID})
	s.Require().NoError(err)
	s.Zero(out.RollsDeleted)

	_, err = s.repo.DeleteBySave(s.ctx, dicesession.DeleteBySaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisRepositoryValidation(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	testCases := []struct {
		name string
		cfg  *dicesession.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client", cfg: &dicesession.Config{Clock: clock.New()}},
		{name: "missing clock", cfg: &dicesession.Config{Client: client}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := dicesession.NewRedisRepository(tc.cfg)
			if err == nil || repo != nil {
				t.Fatalf("expected validation error, got repo=%v err=%v", repo, err)
			}
			if !errors.IsInvalidArgument(err) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}
