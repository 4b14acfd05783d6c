package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("port", "must be between %d and %d", 1, 65535).
		RequiredField("store")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("validation failed: name: is required; port: must be between 1 and 65535; store: is required",
		errors.GetMessage(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "x", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "  ", vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("f", 3, 0, 4, vb) }, false},
		{"range high", func(vb *errors.ValidationBuilder) { errors.ValidateRange("f", 5, 0, 4, vb) }, true},
		{"enum ok", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "redis", []string{"redis", "sqlite"}, vb) }, false},
		{"enum bad", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "mongo", []string{"redis", "sqlite"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
