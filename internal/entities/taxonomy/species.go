package taxonomy

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Species is a set of species flags. A trait may apply to several species at
// once; membership is tested by intersection.
type Species uint8

// Species flags
const (
	SpeciesHuman Species = 1 << iota
	SpeciesChangeling
	SpeciesMage
	SpeciesVampire
	SpeciesWerewolf
)

// Species sets
const (
	SpeciesNone Species = 0
	SpeciesAll          = SpeciesHuman | SpeciesChangeling | SpeciesMage | SpeciesVampire | SpeciesWerewolf
)

var speciesNames = []struct {
	flag Species
	name string
}{
	{SpeciesHuman, "Human"},
	{SpeciesChangeling, "Changeling"},
	{SpeciesMage, "Mage"},
	{SpeciesVampire, "Vampire"},
	{SpeciesWerewolf, "Werewolf"},
}

// AllSpecies returns each single-species flag in canonical order.
func AllSpecies() []Species {
	out := make([]Species, len(speciesNames))
	for i, sn := range speciesNames {
		out[i] = sn.flag
	}
	return out
}

// Has reports whether s and other share at least one species.
func (s Species) Has(other Species) bool {
	return s&other != 0
}

// Contains reports whether every species in other is in s.
func (s Species) Contains(other Species) bool {
	return s&other == other
}

// Union returns the species in either set.
func (s Species) Union(other Species) Species {
	return s | other
}

// Intersect returns the species in both sets.
func (s Species) Intersect(other Species) Species {
	return s & other
}

// Without returns s minus the species in other.
func (s Species) Without(other Species) Species {
	return s &^ other
}

// IsSingle reports whether exactly one species is set.
func (s Species) IsSingle() bool {
	return bits.OnesCount8(uint8(s)) == 1
}

// Valid reports whether s only contains known species.
func (s Species) Valid() bool {
	return s&^SpeciesAll == 0
}

// Flags splits s into its single-species flags in canonical order.
func (s Species) Flags() []Species {
	var out []Species
	for _, sn := range speciesNames {
		if s&sn.flag != 0 {
			out = append(out, sn.flag)
		}
	}
	return out
}

// Name returns the canonical name of a single species, or "" for sets.
func (s Species) Name() string {
	for _, sn := range speciesNames {
		if s == sn.flag {
			return sn.name
		}
	}
	return ""
}

// XMLToken returns the comma separated names of the species in s. Empty sets
// and unknown bits fail.
func (s Species) XMLToken() (string, error) {
	if s == SpeciesNone {
		return "", errors.SpeciesNotFound("")
	}
	if !s.Valid() {
		return "", errors.SpeciesNotFound(fmt.Sprintf("%#x", uint8(s)))
	}
	names := make([]string, 0, len(speciesNames))
	for _, flag := range s.Flags() {
		names = append(names, flag.Name())
	}
	return strings.Join(names, ","), nil
}

// ParseSpecies reads a comma separated species list. Unknown names are
// ignored; a list with no recognizable species yields SpeciesAll.
func ParseSpecies(token string) Species {
	var out Species
	for _, part := range strings.Split(token, ",") {
		out |= parseSingleSpecies(strings.TrimSpace(part))
	}
	if out == SpeciesNone {
		return SpeciesAll
	}
	return out
}

// LookupSpecies resolves one species name strictly.
func LookupSpecies(name string) (Species, error) {
	s := parseSingleSpecies(strings.TrimSpace(name))
	if s == SpeciesNone {
		return SpeciesNone, errors.SpeciesNotFound(name)
	}
	return s, nil
}

func parseSingleSpecies(name string) Species {
	for _, sn := range speciesNames {
		if name == sn.name {
			return sn.flag
		}
	}
	return SpeciesNone
}

// DisplayName returns the English display name of a single species, the
// slash joined names of a set, or a sentinel text.
func (s Species) DisplayName(plural bool) string {
	switch {
	case s == SpeciesNone:
		return "No Species"
	case s == SpeciesAll:
		return "All Species"
	case s.IsSingle():
		name := s.Name()
		if name == "" {
			return "Unknown Species"
		}
		if plural {
			return speciesPlural(s)
		}
		return name
	default:
		flags := s.Flags()
		if len(flags) == 0 {
			return "Unknown Species"
		}
		names := make([]string, len(flags))
		for i, f := range flags {
			names[i] = f.DisplayName(plural)
		}
		return strings.Join(names, "/")
	}
}

func speciesPlural(s Species) string {
	switch s {
	case SpeciesHuman:
		return "Humans"
	case SpeciesChangeling:
		return "Changelings"
	case SpeciesMage:
		return "Mages"
	case SpeciesVampire:
		return "Vampires"
	case SpeciesWerewolf:
		return "Werewolves"
	default:
		return s.Name()
	}
}

// String implements fmt.Stringer
func (s Species) String() string {
	return s.DisplayName(false)
}

// MarshalText emits the strict token.
func (s Species) MarshalText() ([]byte, error) {
	token, err := s.XMLToken()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// UnmarshalText parses permissively.
func (s *Species) UnmarshalText(text []byte) error {
	*s = ParseSpecies(string(text))
	return nil
}
