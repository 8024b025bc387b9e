package taxonomy

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Era restricts a trait to a historical setting.
type Era int

// Eras
const (
	EraAll Era = iota
	EraModern
	EraReason
	EraAntique
)

// AllEras returns every era, sentinel first.
func AllEras() []Era {
	return []Era{EraAll, EraModern, EraReason, EraAntique}
}

// XMLToken returns the canonical token for e.
func (e Era) XMLToken() (string, error) {
	switch e {
	case EraAll:
		return "EraAll", nil
	case EraModern:
		return "Modern", nil
	case EraReason:
		return "Reason", nil
	case EraAntique:
		return "Antique", nil
	default:
		return "", errors.InvalidTraitEra(int(e))
	}
}

// ParseEra maps a token to an Era. Unknown tokens yield EraAll.
func ParseEra(token string) Era {
	switch token {
	case "Modern":
		return EraModern
	case "Reason":
		return EraReason
	case "Antique":
		return EraAntique
	default:
		return EraAll
	}
}

// DisplayName returns the English display name. Eras have no plural form.
func (e Era) DisplayName(_ bool) string {
	switch e {
	case EraModern:
		return "Modern"
	case EraReason:
		return "Age of Reason"
	case EraAntique:
		return "Antiquity"
	default:
		return "All Eras"
	}
}

// String implements fmt.Stringer
func (e Era) String() string {
	return e.DisplayName(false)
}

// Admits reports whether a trait restricted to e applies in era other.
func (e Era) Admits(other Era) bool {
	return e == EraAll || other == EraAll || e == other
}

// MarshalText emits the strict token.
func (e Era) MarshalText() ([]byte, error) {
	token, err := e.XMLToken()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// UnmarshalText parses permissively.
func (e *Era) UnmarshalText(text []byte) error {
	*e = ParseEra(string(text))
	return nil
}

// Age restricts a trait to adult or child characters.
type Age int

// Ages
const (
	AgeAll Age = iota
	AgeAdult
	AgeKid
)

// AllAges returns every age, sentinel first.
func AllAges() []Age {
	return []Age{AgeAll, AgeAdult, AgeKid}
}

// XMLToken returns the canonical token for a.
func (a Age) XMLToken() (string, error) {
	switch a {
	case AgeAll:
		return "AgeAll", nil
	case AgeAdult:
		return "Adult", nil
	case AgeKid:
		return "Kid", nil
	default:
		return "", errors.InvalidTraitAge(int(a))
	}
}

// ParseAge maps a token to an Age. Unknown tokens yield AgeAll.
func ParseAge(token string) Age {
	switch token {
	case "Adult":
		return AgeAdult
	case "Kid":
		return AgeKid
	default:
		return AgeAll
	}
}

// DisplayName returns the English display name.
func (a Age) DisplayName(plural bool) string {
	switch a {
	case AgeAdult:
		if plural {
			return "Adults"
		}
		return "Adult"
	case AgeKid:
		if plural {
			return "Kids"
		}
		return "Kid"
	default:
		return "All Ages"
	}
}

// String implements fmt.Stringer
func (a Age) String() string {
	return a.DisplayName(false)
}

// Admits reports whether a trait restricted to a applies at age other.
func (a Age) Admits(other Age) bool {
	return a == AgeAll || other == AgeAll || a == other
}

// AgeFor returns the age bracket for a character aged years.
func AgeFor(years int) Age {
	if years < AdultAgeYears {
		return AgeKid
	}
	return AgeAdult
}

// AdultAgeYears is the first age counted as adult.
const AdultAgeYears = 13

// MarshalText emits the strict token.
func (a Age) MarshalText() ([]byte, error) {
	token, err := a.XMLToken()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// UnmarshalText parses permissively.
func (a *Age) UnmarshalText(text []byte) error {
	*a = ParseAge(string(text))
	return nil
}
