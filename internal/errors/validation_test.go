package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsStable() {
	ve := errors.NewValidationError()
	ve.AddFieldError("race", "is required")
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("name", "must be no more than 64 characters")

	s.True(ve.HasErrors())
	s.Equal("validation failed: name: is required, must be no more than 64 characters; race: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("class").
		InvalidField("alignment", "not a valid alignment")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "alignment: is invalid: not a valid alignment")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name    string
		check   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name:    "blank required",
			check:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "   ", vb) },
			wantErr: true,
		},
		{
			name:  "present required",
			check: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Aria", vb) },
		},
		{
			name:    "level above range",
			check:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 21, 1, 20, vb) },
			wantErr: true,
		},
		{
			name:  "level at bound",
			check: func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 20, 1, 20, vb) },
		},
		{
			name: "max length counts runes",
			check: func(vb *errors.ValidationBuilder) {
				errors.ValidateMaxLength("name", "Éowyn", 5, vb)
			},
		},
		{
			name: "enum miss",
			check: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("method", "5d6", []string{"4d6_drop_lowest", "3d6"}, vb)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.check(vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
