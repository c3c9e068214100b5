package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestFieldsAreListedInNameOrder() {
	err := errors.NewValidationBuilder().
		Field("width", "must be positive").
		Field("cell_size", "must be positive").
		Field("width", "must be at most 64").
		Build()
	s.Require().Error(err)

	s.Equal("INVALID_ARGUMENT: validation failed: cell_size: must be positive; width: must be positive, must be at most 64", err.Error())

	var coded *errors.Error
	s.Require().ErrorAs(err, &coded)
	s.Equal(map[string][]string{
		"cell_size": {"must be positive"},
		"width":     {"must be positive", "must be at most 64"},
	}, coded.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Catalog").
		InvalidField("category", "unknown category \"door\"").
		Fieldf("width", "must be at most %d", 64)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Catalog: is required")
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		run       func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "sofa", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "  ", vb) }, true},
		{"positive ok", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("width", 3, vb) }, false},
		{"positive zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("width", 0, vb) }, true},
		{"float ok", func(vb *errors.ValidationBuilder) { errors.ValidatePositiveFloat("cell", 0.5, vb) }, false},
		{"float negative", func(vb *errors.ValidationBuilder) { errors.ValidatePositiveFloat("cell", -1, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.run(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
