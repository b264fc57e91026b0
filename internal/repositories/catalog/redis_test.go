package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-character-wizard/internal/testutils"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo catalog.Repository
	ctx  context.Context
}

func TestRedisCatalogSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}

func (s *RedisCatalogTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCatalogTestSuite) TestNewRedis() {
	_, err := catalog.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewRedis(&catalog.RedisConfig{})
	s.Error(err)
	s.Contains(err.Error(), "client cannot be nil")
}

func (s *RedisCatalogTestSuite) TestRoundTrip() {
	catalogs := testutils.TestCatalogs()

	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: catalogs})
	s.Require().NoError(err)
	s.True(s.mr.Exists("catalog:srd"))
	s.Equal(time.Hour, s.mr.TTL("catalog:srd"))

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.Require().NoError(err)
	s.Equal(catalogs.Races, got.Catalogs.Races)
	s.Equal(catalogs.Classes, got.Catalogs.Classes)
	s.Len(got.Catalogs.Backgrounds, len(catalogs.Backgrounds))
	s.Equal(time.Hour, got.ExpiresAt.Sub(got.StoredAt))
}

func (s *RedisCatalogTestSuite) TestExpiry() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: &dnd5e.Catalogs{}})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisCatalogTestSuite) TestMiss() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisCatalogTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.mr.Set("catalog:srd", "{not json"))

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.True(errors.IsInternal(err))
}

func (s *RedisCatalogTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: &dnd5e.Catalogs{}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Key: "srd"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("catalog:srd"))
}
