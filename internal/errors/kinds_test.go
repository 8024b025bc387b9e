package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type KindsTestSuite struct {
	suite.Suite
}

func TestKindsSuite(t *testing.T) {
	suite.Run(t, new(KindsTestSuite))
}

func (s *KindsTestSuite) TestHierarchy() {
	testCases := []struct {
		kind   errors.Kind
		parent errors.Kind
	}{
		{errors.KindNotNumber, errors.KindNumber},
		{errors.KindDirectoryNotCreated, errors.KindDirectory},
		{errors.KindFileNotOpened, errors.KindFile},
		{errors.KindFileNotDeleted, errors.KindFile},
		{errors.KindXMLParse, errors.KindXML},
		{errors.KindXMLVersionMismatch, errors.KindXML},
		{errors.KindSpeciesNotFound, errors.KindSpecies},
		{errors.KindFormNotFound, errors.KindSpecies},
		{errors.KindTraitNotFound, errors.KindTrait},
		{errors.KindInvalidTraitCategory, errors.KindTrait},
		{errors.KindInvalidTraitType, errors.KindTrait},
		{errors.KindInvalidTraitEra, errors.KindTrait},
		{errors.KindInvalidTraitAge, errors.KindTrait},
		{errors.KindUserEntry, errors.KindEntry},
		{errors.KindMissingUserEntry, errors.KindUserEntry},
		{errors.KindNumber, errors.KindGeneric},
		{errors.KindFile, errors.KindGeneric},
	}

	for _, tc := range testCases {
		s.Run(string(tc.kind), func() {
			s.Assert().Equal(tc.parent, tc.kind.Parent())
			s.Assert().True(tc.kind.IsA(tc.parent))
			s.Assert().True(tc.kind.IsA(errors.KindGeneric))
			s.Assert().False(tc.parent.IsA(tc.kind))
		})
	}

	s.Assert().Equal(errors.Kind(""), errors.KindGeneric.Parent())
}

func (s *KindsTestSuite) TestMissingUserEntryIsAnEntryProblem() {
	err := errors.MissingUserEntry("name")

	s.Assert().True(errors.IsKind(err, errors.KindMissingUserEntry))
	s.Assert().True(errors.IsKind(err, errors.KindUserEntry))
	s.Assert().True(errors.IsKind(err, errors.KindEntry))
	s.Assert().True(errors.IsKind(err, errors.KindGeneric))
	s.Assert().False(errors.IsKind(err, errors.KindTrait))
	s.Assert().False(errors.IsKind(nil, errors.KindGeneric))
}

func (s *KindsTestSuite) TestFileNotOpenedDescription() {
	err := errors.FileNotOpened("/data/template.xml", fs.ErrNotExist)

	s.Assert().Equal("Cannot open File.", err.Message)
	s.Assert().Contains(err.Description, "/data/template.xml")
	s.Assert().Contains(err.Description, fs.ErrNotExist.Error())
	s.Assert().Equal("/data/template.xml", err.Meta["path"])
}

func (s *KindsTestSuite) TestDescriptions() {
	testCases := []struct {
		name        string
		err         *errors.Error
		kind        errors.Kind
		message     string
		description string
	}{
		{
			name:        "not a number",
			err:         errors.NotANumber("x"),
			kind:        errors.KindNotNumber,
			message:     "Not a Number.",
			description: `While expecting a number, "x" was given.`,
		},
		{
			name:        "directory not created",
			err:         errors.DirectoryNotCreated("/tmp/out", fmt.Errorf("denied")),
			kind:        errors.KindDirectoryNotCreated,
			message:     "Cannot create Directory.",
			description: "Directory /tmp/out could not be created",
		},
		{
			name:        "file not deleted",
			err:         errors.FileNotDeleted("a.xml", nil),
			kind:        errors.KindFileNotDeleted,
			message:     "Deletion not successful.",
			description: "File a.xml could not be deleted.",
		},
		{
			name:        "version mismatch",
			err:         errors.XMLVersionMismatch("1.0.0", "0.9.0"),
			kind:        errors.KindXMLVersionMismatch,
			message:     "Wrong XML-Version.",
			description: "Got 0.9.0 but expected was 1.0.0",
		},
		{
			name:        "species unnamed",
			err:         errors.SpeciesNotFound(""),
			kind:        errors.KindSpeciesNotFound,
			message:     "Character Species Problem",
			description: "Species is missing.",
		},
		{
			name:        "species named",
			err:         errors.SpeciesNotFound("Ghoul"),
			kind:        errors.KindSpeciesNotFound,
			message:     "Character Species Problem",
			description: "Species Ghoul is missing.",
		},
		{
			name:        "invalid category",
			err:         errors.InvalidTraitCategory(42),
			kind:        errors.KindInvalidTraitCategory,
			message:     "Category of a Trait not valid",
			description: "The Category 42 is not valid at this point.",
		},
		{
			name:        "invalid type",
			err:         errors.InvalidTraitType(3),
			kind:        errors.KindInvalidTraitType,
			message:     "Type of a Trait not valid",
			description: "The Type 3 is not valid at this point.",
		},
		{
			name:        "missing user entry",
			err:         errors.MissingUserEntry(""),
			kind:        errors.KindMissingUserEntry,
			message:     "Missing User Entry",
			description: "An expected User Input is missing.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.kind, tc.err.Kind)
			s.Assert().Equal(tc.message, tc.err.Message)
			s.Assert().Equal(tc.description, tc.err.Description)
		})
	}
}

func (s *KindsTestSuite) TestParseErrorCarriesCause() {
	cause := fmt.Errorf("unexpected EOF")
	err := errors.XMLParseError("human.xml", cause)

	s.Assert().Equal(cause, err.Unwrap())
	s.Assert().Contains(err.Description, "unexpected EOF")
	s.Assert().Contains(err.Description, "human.xml")
	s.Assert().True(errors.IsKind(err, errors.KindXML))
}
