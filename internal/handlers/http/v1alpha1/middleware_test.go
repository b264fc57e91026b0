package v1alpha1_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/handlers/http/v1alpha1"
)

type MiddlewareTestSuite struct {
	suite.Suite
	logs     *bytes.Buffer
	previous *slog.Logger
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.previous = slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func (s *MiddlewareTestSuite) TearDownTest() {
	slog.SetDefault(s.previous)
}

func (s *MiddlewareTestSuite) TestAccessLogLevels() {
	testCases := []struct {
		name   string
		status int
		want   string
	}{
		{name: "success", status: http.StatusOK, want: "level=INFO msg=\"Request served\""},
		{name: "client error", status: http.StatusNotFound, want: "level=WARN msg=\"Request rejected\""},
		{name: "server error", status: http.StatusServiceUnavailable, want: "level=ERROR msg=\"Request failed\""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.logs.Reset()
			h := v1alpha1.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("{}"))
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1alpha1/sessions/session_1", nil))

			s.Equal(tc.status, rec.Code)
			s.Contains(s.logs.String(), tc.want)
			s.Contains(s.logs.String(), "path=/v1alpha1/sessions/session_1")
			s.Contains(s.logs.String(), "bytes=2")
		})
	}
}

func (s *MiddlewareTestSuite) TestAccessLogDefaultsToOK() {
	h := v1alpha1.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Contains(s.logs.String(), "status=200")
}

func (s *MiddlewareTestSuite) TestRecoveryLogsStack() {
	h := v1alpha1.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(s.logs.String(), "Recovered from panic")
	s.Contains(s.logs.String(), "panic=boom")
}
