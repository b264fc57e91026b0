package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	clockmock "github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session"
)

type MemorySessionTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *clockmock.MockClock
	now       time.Time
	repo      session.Repository
	ctx       context.Context
}

func TestMemorySessionSuite(t *testing.T) {
	suite.Run(t, new(MemorySessionTestSuite))
}

func (s *MemorySessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.ctx = context.Background()

	repo, err := session.NewMemory(&session.Config{TTL: time.Hour, Clock: s.mockClock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *MemorySessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MemorySessionTestSuite) TestNewMemory() {
	testCases := []struct {
		name    string
		config  *session.Config
		wantErr bool
	}{
		{name: "defaults", config: &session.Config{}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "negative ttl", config: &session.Config{TTL: -time.Minute}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := session.NewMemory(tc.config)
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.Equal(session.DefaultTTL, tc.config.TTL)
		})
	}
}

func (s *MemorySessionTestSuite) TestCreateAndGet() {
	sess := newSession("session_1")

	created, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), created.ExpiresAt)

	got, err := s.repo.Get(s.ctx, session.GetInput{ID: "session_1"})
	s.Require().NoError(err)
	s.Same(sess, got.Session)
}

func (s *MemorySessionTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		input session.CreateInput
	}{
		{name: "nil session", input: session.CreateInput{}},
		{name: "empty id", input: session.CreateInput{Session: newSession("")}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *MemorySessionTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_1")})
	s.True(errors.IsAlreadyExists(err))

	// An expired session's ID can be reused
	s.now = s.now.Add(time.Hour)
	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_1")})
	s.NoError(err)
}

func (s *MemorySessionTestSuite) TestGetExtendsExpiry() {
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_1")})
	s.Require().NoError(err)

	s.now = s.now.Add(50 * time.Minute)
	got, err := s.repo.Get(s.ctx, session.GetInput{ID: "session_1"})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), got.ExpiresAt)

	s.now = s.now.Add(50 * time.Minute)
	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "session_1"})
	s.NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))
}

func (s *MemorySessionTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, session.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *MemorySessionTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{ID: "session_1"})
	s.NoError(err)

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MemorySessionTestSuite) TestDeleteExpired() {
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_b")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_a")})
	s.Require().NoError(err)

	s.now = s.now.Add(30 * time.Minute)
	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: newSession("session_c")})
	s.Require().NoError(err)

	s.now = s.now.Add(30 * time.Minute)
	out, err := s.repo.DeleteExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"session_a", "session_b"}, out.Deleted)

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "session_c"})
	s.NoError(err)

	out, err = s.repo.DeleteExpired(s.ctx)
	s.Require().NoError(err)
	s.Empty(out.Deleted)
}
