package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/repositories/content"
	"github.com/KirkDiggler/rpg-story/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() content.Repository
	repo    content.Repository
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() content.Repository { return content.NewInMemory() },
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() content.Repository {
		client, _ := testutils.CreateTestRedisClient(s.T())
		repo, err := content.NewRedis(&content.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	data := testutils.CreateTestGameData()

	_, err := s.repo.Save(s.ctx, content.SaveInput{BundleID: "default", Data: data})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, content.GetInput{BundleID: "default"})
	s.Require().NoError(err)
	s.Equal(data, out.Data)
}

func (s *RepositoryTestSuite) TestSaveReplacesStock() {
	data := testutils.CreateTestGameData()
	_, err := s.repo.Save(s.ctx, content.SaveInput{BundleID: "default", Data: data})
	s.Require().NoError(err)

	shop := data.Shops[game.DefaultShopID]
	*shop.Items[0].Stock = 0
	_, err = s.repo.Save(s.ctx, content.SaveInput{BundleID: "default", Data: data})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, content.GetInput{BundleID: "default"})
	s.Require().NoError(err)
	s.Equal(0, *out.Data.Shops[game.DefaultShopID].Items[0].Stock)
}

func (s *RepositoryTestSuite) TestValidationAndMissing() {
	_, err := s.repo.Get(s.ctx, content.GetInput{BundleID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, content.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, content.SaveInput{BundleID: "default"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, content.DeleteInput{BundleID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, content.SaveInput{BundleID: "default", Data: testutils.CreateTestGameData()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, content.DeleteInput{BundleID: "default"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, content.GetInput{BundleID: "default"})
	s.True(errors.IsNotFound(err))
}
