package catalog_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog"
)

// RedisErrorsTestSuite covers the failure paths miniredis can't produce
type RedisErrorsTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo catalog.Repository
	ctx  context.Context
}

func TestRedisErrorsSuite(t *testing.T) {
	suite.Run(t, new(RedisErrorsTestSuite))
}

func (s *RedisErrorsTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisErrorsTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisErrorsTestSuite) TestGetConnectionFailure() {
	s.mock.ExpectGet("catalog:dnd5e").SetErr(stderrors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "dnd5e"})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err), "a broken cache is not a miss")
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisErrorsTestSuite) TestGetCorruptEntry() {
	s.mock.ExpectGet("catalog:dnd5e").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "dnd5e"})
	s.True(errors.IsInternal(err))
}

func (s *RedisErrorsTestSuite) TestGetEmptyEntryIsMiss() {
	s.mock.ExpectGet("catalog:dnd5e").SetVal(`{"catalogs":null}`)

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "dnd5e"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisErrorsTestSuite) TestDeleteFailure() {
	s.mock.ExpectDel("catalog:dnd5e").SetErr(stderrors.New("READONLY"))

	_, err := s.repo.Delete(s.ctx, catalog.DeleteInput{Key: "dnd5e"})
	s.True(errors.IsInternal(err))
}
