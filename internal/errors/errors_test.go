package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestConstructorsFormatCodeAndMessage() {
	testCases := []struct {
		name     string
		err      *errors.Error
		code     errors.Code
		expected string
	}{
		{
			name:     "not found",
			err:      errors.NotFoundf("template %q not found", "sofa"),
			code:     errors.CodeNotFound,
			expected: `NOT_FOUND: template "sofa" not found`,
		},
		{
			name:     "invalid argument",
			err:      errors.InvalidArgument("page width must be positive"),
			code:     errors.CodeInvalidArgument,
			expected: "INVALID_ARGUMENT: page width must be positive",
		},
		{
			name:     "out of range",
			err:      errors.OutOfRangef("layer %d outside [0,%d)", 4, 2),
			code:     errors.CodeOutOfRange,
			expected: "OUT_OF_RANGE: layer 4 outside [0,2)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, tc.err.Code)
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save snapshot")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save snapshot", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to save snapshot: redis connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("session not found").WithMeta("session_id", "s-1")
	wrapped := errors.Wrap(baseErr, "failed to place")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("s-1", wrapped.Meta["session_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("layer", 2)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(2, wrapped.Meta["layer"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestCodeCheckers() {
	s.True(errors.IsNotFound(errors.NotFound("session gone")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %d", 1)))
	s.True(errors.IsAlreadyExists(errors.AlreadyExistsf("template %s", "a")))
	s.True(errors.IsFailedPrecondition(errors.FailedPreconditionf("no floor template %s", "x")))
	s.True(errors.IsOutOfRange(errors.OutOfRangef("layer %d", 9)))
	s.True(errors.IsInternal(errors.Internal("x")))
	s.True(errors.IsInternal(fmt.Errorf("uncoded")))
	s.False(errors.IsNotFound(errors.Internal("x")))
}

func (s *ErrorsTestSuite) TestErrorsMatchByCode() {
	s.ErrorIs(errors.NotFound("a"), errors.NotFound("b"))
	s.NotErrorIs(errors.NotFound("a"), errors.InvalidArgument("a"))
	s.ErrorIs(errors.Wrap(errors.NotFound("a"), "lookup"), errors.NotFound("b"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.Wrap(errors.NotFound("x"), "outer")))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.NotFound("session not found"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("session not found", st.Message())

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "bad floorplan"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("INVALID_ARGUMENT: bad floorplan", back.Error())

	plain := errors.ToGRPCError(fmt.Errorf("plain"))
	st, _ = status.FromError(plain)
	s.Equal(codes.Internal, st.Code())

	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
