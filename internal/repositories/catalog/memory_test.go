package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	clockmock "github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-character-wizard/internal/testutils"
)

type MemoryCatalogTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *clockmock.MockClock
	now       time.Time
	repo      catalog.Repository
	ctx       context.Context
}

func TestMemoryCatalogSuite(t *testing.T) {
	suite.Run(t, new(MemoryCatalogTestSuite))
}

func (s *MemoryCatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.ctx = context.Background()

	repo, err := catalog.NewMemory(&catalog.MemoryConfig{TTL: time.Hour, Clock: s.mockClock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *MemoryCatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MemoryCatalogTestSuite) TestNewMemory() {
	testCases := []struct {
		name    string
		config  *catalog.MemoryConfig
		wantErr bool
	}{
		{name: "defaults", config: &catalog.MemoryConfig{}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "negative ttl", config: &catalog.MemoryConfig{TTL: -time.Second}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewMemory(tc.config)
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.Equal(catalog.DefaultTTL, tc.config.TTL)
		})
	}
}

func (s *MemoryCatalogTestSuite) TestPutThenGet() {
	catalogs := testutils.TestCatalogs()

	put, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: catalogs})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), put.ExpiresAt)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.Require().NoError(err)
	s.Same(catalogs, got.Catalogs)
	s.Equal(s.now, got.StoredAt)
}

func (s *MemoryCatalogTestSuite) TestExpiry() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: testutils.TestCatalogs()})
	s.Require().NoError(err)

	s.now = s.now.Add(59 * time.Minute)
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.NoError(err)

	s.now = s.now.Add(time.Minute)
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.True(errors.IsNotFound(err))
}

func (s *MemoryCatalogTestSuite) TestPutRestartsTTL() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: testutils.TestCatalogs()})
	s.Require().NoError(err)

	s.now = s.now.Add(50 * time.Minute)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: testutils.TestCatalogs()})
	s.Require().NoError(err)

	s.now = s.now.Add(50 * time.Minute)
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.NoError(err)
}

func (s *MemoryCatalogTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, catalog.PutInput{Key: "srd"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MemoryCatalogTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Key: "srd", Catalogs: testutils.TestCatalogs()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Key: "srd"})
	s.Require().NoError(err)
	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Key: "srd"})
	s.NoError(err)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Key: "srd"})
	s.True(errors.IsNotFound(err))
}
