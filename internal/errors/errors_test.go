package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
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
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "123")

	s.Assert().Equal("123", err.Meta["character_id"])
	s.Assert().Equal("123", errors.GetMeta(err)["character_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapPreservesKind() {
	inner := errors.TraitNotFound("Strength")
	wrapped := errors.Wrapf(inner, "set %s", "Strength")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(errors.KindTraitNotFound, wrapped.Kind)
	s.Assert().True(errors.IsKind(wrapped, errors.KindTrait))
	s.Assert().Equal("Trait Strength is missing.", errors.GetDescription(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	inner := errors.NotFound("gone").WithMeta("id", "c1")
	wrapped := errors.WrapWithCode(inner, errors.CodeFailedPrecondition, "cannot continue")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().Equal("c1", wrapped.Meta["id"])

	wrapped.WithMeta("step", "save")
	s.Assert().NotContains(inner.Meta, "step")
}

func (s *ErrorsTestSuite) TestIsMatchesCodeAndKind() {
	err := errors.FileNotOpened("/tmp/x.xml", fs.ErrNotExist)

	s.Assert().True(errors.Is(err, &errors.Error{Code: errors.CodeUnavailable}))
	s.Assert().True(errors.Is(err, &errors.Error{Code: errors.CodeUnavailable, Kind: errors.KindFile}))
	s.Assert().False(errors.Is(err, &errors.Error{Code: errors.CodeUnavailable, Kind: errors.KindXML}))
	s.Assert().False(errors.Is(err, &errors.Error{Code: errors.CodeNotFound}))
	s.Assert().True(errors.Is(err, fs.ErrNotExist))
}

func (s *ErrorsTestSuite) TestGetCodeForeignError() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.KindGeneric, errors.GetKind(fmt.Errorf("plain")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestPresent() {
	msg, desc := errors.Present(errors.XMLVersionMismatch("1.2.0", "2.0.0"))
	s.Assert().Equal("Wrong XML-Version.", msg)
	s.Assert().Equal("Got 2.0.0 but expected was 1.2.0", desc)

	msg, desc = errors.Present(errors.Wrap(fmt.Errorf("disk full"), "save failed"))
	s.Assert().Equal("save failed", msg)
	s.Assert().Equal("disk full", desc)

	msg, desc = errors.Present(nil)
	s.Assert().Empty(msg)
	s.Assert().Empty(desc)
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	testCases := []struct {
		name     string
		err      error
		grpcCode codes.Code
	}{
		{"trait not found", errors.TraitNotFound("Wits"), codes.NotFound},
		{"not a number", errors.NotANumber("abc"), codes.InvalidArgument},
		{"version mismatch", errors.XMLVersionMismatch("1.0.0", "2.0.0"), codes.FailedPrecondition},
		{"file not opened", errors.FileNotOpened("a.xml", fs.ErrPermission), codes.Unavailable},
		{"parse error", errors.XMLParseError("a.xml", fmt.Errorf("EOF")), codes.DataLoss},
		{"form out of range", errors.FormNotFound("Werewolf", 7), codes.OutOfRange},
		{"foreign", fmt.Errorf("boom"), codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			grpcErr := errors.ToGRPCError(tc.err)
			st, ok := status.FromError(grpcErr)
			s.Require().True(ok)
			s.Assert().Equal(tc.grpcCode, st.Code())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTripCode() {
	grpcErr := errors.ToGRPCError(errors.TraitNotFound("Wits"))
	back := errors.FromGRPCError(grpcErr)

	s.Assert().True(errors.IsNotFound(back))
	s.Assert().True(errors.IsKind(back, errors.KindTraitNotFound))
	s.Assert().Equal("Character Trait Problem", errors.GetMessage(back))
	s.Assert().Equal("Trait Wits is missing.", errors.GetDescription(back))
	s.Assert().Equal("Wits", errors.GetMeta(back)["trait"])

	plain := errors.FromGRPCError(errors.ToGRPCError(errors.NotFound("character not found")))
	s.Assert().True(errors.IsNotFound(plain))
	s.Assert().Equal(errors.KindGeneric, errors.GetKind(plain))

	foreign := errors.FromGRPCError(status.Error(codes.Unavailable, "down"))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(foreign))
	s.Assert().Nil(errors.ToGRPCError(nil))
	s.Assert().Equal(codes.OK, errors.GRPCStatus(nil).Code())
}
