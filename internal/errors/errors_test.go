package errors_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown filter",
			expected: "INVALID_ARGUMENT: unknown filter",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	original := errors.NotFound("race not found").WithMeta("race_id", "elf")

	wrapped := errors.Wrap(original, "failed to select race")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("elf", wrapped.Meta["race_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, original)

	// Mutating the wrapper's meta must not leak into the original
	wrapped.WithMeta("extra", 1)
	s.NotContains(original.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrapf(fmt.Errorf("boom"), "loading %s", "races")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("INTERNAL: loading races: boom", wrapped.Error())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := errors.Internal("redis down").WithMeta("backend", "redis")

	err := errors.WrapWithCode(cause, errors.CodeUnavailable, "catalog cache unavailable")

	s.True(errors.IsUnavailable(err))
	s.Equal("redis", err.Meta["backend"])
}

func (s *ErrorsTestSuite) TestGetCodeContextErrors() {
	s.Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("fetch: %w", context.DeadlineExceeded)))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestRetryable() {
	err := errors.Unavailable("reference data unavailable").AsRetryable()
	s.True(errors.IsRetryable(err))
	s.True(errors.IsRetryable(errors.Wrap(err, "start session")))
	s.False(errors.IsRetryable(errors.NotFound("nope")))
	s.False(errors.IsRetryable(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeFailedPrecondition, http.StatusConflict},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestWriteHTTPError() {
	s.Run("retryable unavailable", func() {
		rec := httptest.NewRecorder()
		errors.WriteHTTPError(rec, errors.Unavailable("reference data unavailable").AsRetryable())

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("application/json", rec.Header().Get("Content-Type"))

		var body errors.HTTPBody
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
		s.Equal(errors.CodeUnavailable, body.Code)
		s.Equal("reference data unavailable", body.Message)
		s.True(body.Retryable)
	})

	s.Run("internal errors are masked", func() {
		rec := httptest.NewRecorder()
		errors.WriteHTTPError(rec, fmt.Errorf("dial tcp 10.0.0.1: refused"))

		var body errors.HTTPBody
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Equal("internal error", body.Message)
	})
}
