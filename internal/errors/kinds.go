package errors

import "fmt"

// Kind names a node in the failure hierarchy. Every kind except KindGeneric
// has exactly one parent.
type Kind string

// Failure kinds
const (
	KindGeneric Kind = "generic"

	KindNumber    Kind = "number"
	KindNotNumber Kind = "not_a_number"

	KindDirectory           Kind = "directory"
	KindDirectoryNotCreated Kind = "directory_not_created"

	KindFile           Kind = "file"
	KindFileNotOpened  Kind = "file_not_opened"
	KindFileNotDeleted Kind = "file_not_deleted"

	KindXML                Kind = "xml"
	KindXMLParse           Kind = "xml_parse"
	KindXMLVersionMismatch Kind = "xml_version_mismatch"

	KindSpecies         Kind = "species"
	KindSpeciesNotFound Kind = "species_not_found"
	KindFormNotFound    Kind = "form_not_found"

	KindTrait                Kind = "trait"
	KindTraitNotFound        Kind = "trait_not_found"
	KindInvalidTraitCategory Kind = "invalid_trait_category"
	KindInvalidTraitType     Kind = "invalid_trait_type"
	KindInvalidTraitEra      Kind = "invalid_trait_era"
	KindInvalidTraitAge      Kind = "invalid_trait_age"

	KindEntry            Kind = "entry"
	KindUserEntry        Kind = "user_entry"
	KindMissingUserEntry Kind = "missing_user_entry"
)

var kindParents = map[Kind]Kind{
	KindNumber:    KindGeneric,
	KindNotNumber: KindNumber,

	KindDirectory:           KindGeneric,
	KindDirectoryNotCreated: KindDirectory,

	KindFile:           KindGeneric,
	KindFileNotOpened:  KindFile,
	KindFileNotDeleted: KindFile,

	KindXML:                KindGeneric,
	KindXMLParse:           KindXML,
	KindXMLVersionMismatch: KindXML,

	KindSpecies:         KindGeneric,
	KindSpeciesNotFound: KindSpecies,
	KindFormNotFound:    KindSpecies,

	KindTrait:                KindGeneric,
	KindTraitNotFound:        KindTrait,
	KindInvalidTraitCategory: KindTrait,
	KindInvalidTraitType:     KindTrait,
	KindInvalidTraitEra:      KindTrait,
	KindInvalidTraitAge:      KindTrait,

	KindEntry:            KindGeneric,
	KindUserEntry:        KindEntry,
	KindMissingUserEntry: KindUserEntry,
}

// Parent returns the direct ancestor, or "" for the root and unknown kinds.
func (k Kind) Parent() Kind {
	return kindParents[k]
}

// IsA reports whether k is ancestor or descends from it.
func (k Kind) IsA(ancestor Kind) bool {
	for cur := k; cur != ""; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func newKind(code Code, kind Kind, message, description string) *Error {
	return &Error{
		Code:        code,
		Kind:        kind,
		Message:     message,
		Description: description,
	}
}

// Generic creates the root failure with a free-form message and description.
func Generic(message, description string) *Error {
	return newKind(CodeInternal, KindGeneric, message, description)
}

// NumberProblem reports an unspecified failure while handling a number.
func NumberProblem() *Error {
	return newKind(CodeInvalidArgument, KindNumber,
		"Unspecified Problem with a number.",
		"An unspecified error occurred while handling a number or what should at least be a number.")
}

// NotANumber reports that value was expected to be a number.
func NotANumber(value string) *Error {
	return newKind(CodeInvalidArgument, KindNotNumber,
		"Not a Number.",
		fmt.Sprintf("While expecting a number, %q was given.", value)).
		WithMeta("value", value)
}

// DirectoryProblem reports an unspecified failure while handling dir.
func DirectoryProblem(dir string) *Error {
	return newKind(CodeInternal, KindDirectory,
		"Unspecified Problem with a directory.",
		fmt.Sprintf("An unspecified error occurred while handling directory %s", dir)).
		WithMeta("directory", dir)
}

// DirectoryNotCreated reports that dir could not be created.
func DirectoryNotCreated(dir string, cause error) *Error {
	return newKind(CodeInternal, KindDirectoryNotCreated,
		"Cannot create Directory.",
		fmt.Sprintf("Directory %s could not be created", dir)).
		WithMeta("directory", dir).
		WithCause(cause)
}

// FileProblem reports an unspecified failure while handling path.
func FileProblem(path string) *Error {
	return newKind(CodeInternal, KindFile,
		"Unspecified Problem with a file.",
		fmt.Sprintf("An unspecified error occurred while handling file %s", path)).
		WithMeta("path", path)
}

// FileNotOpened reports that path could not be opened because of ioErr.
func FileNotOpened(path string, ioErr error) *Error {
	reason := "unknown error"
	if ioErr != nil {
		reason = ioErr.Error()
	}
	return newKind(CodeUnavailable, KindFileNotOpened,
		"Cannot open File.",
		fmt.Sprintf("File %s could not be opened: %s", path, reason)).
		WithMeta("path", path).
		WithCause(ioErr)
}

// FileNotDeleted reports that path could not be removed.
func FileNotDeleted(path string, cause error) *Error {
	return newKind(CodeInternal, KindFileNotDeleted,
		"Deletion not successful.",
		fmt.Sprintf("File %s could not be deleted.", path)).
		WithMeta("path", path).
		WithCause(cause)
}

// XMLProblem reports an unspecified XML failure.
func XMLProblem(detail string) *Error {
	return newKind(CodeInvalidArgument, KindXML, "XML-Problem", detail)
}

// XMLParseError reports that file could not be decoded.
func XMLParseError(file string, cause error) *Error {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return newKind(CodeDataLoss, KindXMLParse,
		"XML-Parsing raised error.",
		fmt.Sprintf("While trying to parse the XML-File, the following error was raised: %q in file %q", reason, file)).
		WithMeta("path", file).
		WithCause(cause)
}

// XMLVersionMismatch reports a document version the program cannot read.
func XMLVersionMismatch(expected, got string) *Error {
	return newKind(CodeFailedPrecondition, KindXMLVersionMismatch,
		"Wrong XML-Version.",
		fmt.Sprintf("Got %s but expected was %s", got, expected)).
		WithMeta("expected", expected).
		WithMeta("got", got)
}

// SpeciesProblem reports an unspecified species failure.
func SpeciesProblem() *Error {
	return newKind(CodeInternal, KindSpecies,
		"Character Species Problem",
		"There is a problem with a character species.")
}

// SpeciesNotFound reports a species outside the known set. An empty name
// renders the generic "missing" description.
func SpeciesNotFound(species string) *Error {
	desc := "Species is missing."
	if species != "" {
		desc = fmt.Sprintf("Species %s is missing.", species)
	}
	return newKind(CodeNotFound, KindSpeciesNotFound, "Character Species Problem", desc).
		WithMeta("species", species)
}

// FormNotFound reports a form index outside the species' form list.
func FormNotFound(species string, index int) *Error {
	return newKind(CodeOutOfRange, KindFormNotFound,
		"Character Form Problem",
		fmt.Sprintf("Species %s has no form with index %d.", species, index)).
		WithMeta("species", species).
		WithMeta("form_index", index)
}

// TraitProblem reports an unspecified trait failure.
func TraitProblem() *Error {
	return newKind(CodeInternal, KindTrait,
		"Character Trait Problem",
		"There is a problem with a character trait.")
}

// TraitNotFound reports a missing trait.
func TraitNotFound(name string) *Error {
	desc := "Trait is missing."
	if name != "" {
		desc = fmt.Sprintf("Trait %s is missing.", name)
	}
	return newKind(CodeNotFound, KindTraitNotFound, "Character Trait Problem", desc).
		WithMeta("trait", name)
}

// InvalidTraitCategory reports a category value that is not valid here.
func InvalidTraitCategory(category int) *Error {
	return newKind(CodeInternal, KindInvalidTraitCategory,
		"Category of a Trait not valid",
		fmt.Sprintf("The Category %d is not valid at this point.", category)).
		WithMeta("category", category)
}

// InvalidTraitType reports a type value that is not valid here.
func InvalidTraitType(typ int) *Error {
	return newKind(CodeInternal, KindInvalidTraitType,
		"Type of a Trait not valid",
		fmt.Sprintf("The Type %d is not valid at this point.", typ)).
		WithMeta("type", typ)
}

// InvalidTraitEra reports an era value outside the closed set.
func InvalidTraitEra(era int) *Error {
	return newKind(CodeInternal, KindInvalidTraitEra,
		"Era of a Trait not valid",
		fmt.Sprintf("The Era %d is not valid at this point.", era)).
		WithMeta("era", era)
}

// InvalidTraitAge reports an age value outside the closed set.
func InvalidTraitAge(age int) *Error {
	return newKind(CodeInternal, KindInvalidTraitAge,
		"Age of a Trait not valid",
		fmt.Sprintf("The Age %d is not valid at this point.", age)).
		WithMeta("age", age)
}

// EntryProblem reports a problem with an expected input.
func EntryProblem() *Error {
	return newKind(CodeInvalidArgument, KindEntry,
		"Entry Problem",
		"There is a problem with an expected Input.")
}

// UserEntryProblem reports a problem with an expected user input.
func UserEntryProblem() *Error {
	return newKind(CodeInvalidArgument, KindUserEntry,
		"User Entry Problem",
		"There is a problem with an expected User Input.")
}

// MissingUserEntry reports that field was left empty by the user.
func MissingUserEntry(field string) *Error {
	desc := "An expected User Input is missing."
	if field != "" {
		desc = fmt.Sprintf("An expected User Input is missing: %s.", field)
	}
	return newKind(CodeInvalidArgument, KindMissingUserEntry, "Missing User Entry", desc).
		WithMeta("field", field)
}
