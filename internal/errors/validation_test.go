package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-story/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsInOrder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Name").
		InvalidField("Gender", "unknown gender").
		Fieldf("Name", "must be at most %d characters", 40)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: Name is required, must be at most 40 characters; Gender is invalid: unknown gender",
		err.Error(),
	)

	var coded *errors.Error
	s.Require().True(errors.As(err, &coded))
	fields, ok := coded.Meta["fields"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is invalid: unknown gender"}, fields["Gender"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Thorin", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("Name", tc.value, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}
