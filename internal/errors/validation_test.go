package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("morality", "must be at most %d", 10)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "morality: must be at most 10")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("strength", "must be between %d and %d", 1, 5).
		RequiredField("species").
		InvalidField("breed", "not a breed of the species")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().True(errors.IsKind(err, errors.KindUserEntry))
	s.Assert().False(errors.IsKind(err, errors.KindMissingUserEntry))

	msg, desc := errors.Present(err)
	s.Assert().Equal("validation failed", msg)
	s.Assert().Equal("breed: is invalid: not a breed of the species; name: is required; "+
		"species: is required; strength: must be between 1 and 5", desc)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"at lower bound", 1, false},
		{"at upper bound", 5, false},
		{"below", 0, true},
		{"above", 6, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("dots", tc.value, 1, 5, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateOrdered() {
	vb := errors.NewValidationBuilder()
	errors.ValidateOrdered("range", 3, 3, vb)
	s.Assert().NoError(vb.Build())

	errors.ValidateOrdered("range", 4, 3, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "lower bound 4 exceeds upper bound 3")
}
