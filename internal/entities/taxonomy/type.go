// Package taxonomy defines the closed classification sets every trait is
// tagged with: Type, Category, Era, Age and the Species flag set.
//
// Conversion to canonical tokens is strict and fails for values outside the
// closed set. Conversion from tokens is permissive and resolves anything
// unrecognized to the set's sentinel.
package taxonomy

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Type classifies what kind of trait something is.
type Type int

// Trait types
const (
	TypeNone Type = iota
	TypeVirtue
	TypeVice
	TypeAttribute
	TypeSkill
	TypeMerit
	TypeMorale
	TypeSuper
	TypePower
)

// AllTypes returns every type in declaration order, sentinel first.
func AllTypes() []Type {
	return []Type{
		TypeNone, TypeVirtue, TypeVice, TypeAttribute, TypeSkill,
		TypeMerit, TypeMorale, TypeSuper, TypePower,
	}
}

// XMLToken returns the canonical token for t.
func (t Type) XMLToken() (string, error) {
	switch t {
	case TypeNone:
		return "TypeNo", nil
	case TypeVirtue:
		return "Virtue", nil
	case TypeVice:
		return "Vice", nil
	case TypeAttribute:
		return "Attribute", nil
	case TypeSkill:
		return "Skill", nil
	case TypeMerit:
		return "Merit", nil
	case TypeMorale:
		return "Morale", nil
	case TypeSuper:
		return "Super", nil
	case TypePower:
		return "Power", nil
	default:
		return "", errors.InvalidTraitType(int(t))
	}
}

// ParseType maps a token to a Type. Unknown tokens yield TypeNone.
func ParseType(token string) Type {
	switch token {
	case "Virtue":
		return TypeVirtue
	case "Vice":
		return TypeVice
	case "Attribute":
		return TypeAttribute
	case "Skill":
		return TypeSkill
	case "Merit":
		return TypeMerit
	case "Morale":
		return TypeMorale
	case "Super":
		return TypeSuper
	case "Power":
		return TypePower
	default:
		return TypeNone
	}
}

// DisplayName returns the English display name, used as a localization key.
func (t Type) DisplayName(plural bool) string {
	if plural {
		switch t {
		case TypeVirtue:
			return "Virtues"
		case TypeVice:
			return "Vices"
		case TypeAttribute:
			return "Attributes"
		case TypeSkill:
			return "Skills"
		case TypeMerit:
			return "Merits"
		case TypeMorale:
			return "Morality"
		case TypeSuper:
			return "Super Traits"
		case TypePower:
			return "Powers"
		default:
			return "Without Type"
		}
	}
	switch t {
	case TypeVirtue:
		return "Virtue"
	case TypeVice:
		return "Vice"
	case TypeAttribute:
		return "Attribute"
	case TypeSkill:
		return "Skill"
	case TypeMerit:
		return "Merit"
	case TypeMorale:
		return "Morality"
	case TypeSuper:
		return "Super Trait"
	case TypePower:
		return "Power"
	default:
		return "Without Type"
	}
}

// String implements fmt.Stringer
func (t Type) String() string {
	return t.DisplayName(false)
}

// MarshalText emits the strict token.
func (t Type) MarshalText() ([]byte, error) {
	token, err := t.XMLToken()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// UnmarshalText parses permissively.
func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}

// CategoriesFor returns the categories traits of t are grouped under, in
// display order.
func CategoriesFor(t Type) []Category {
	switch t {
	case TypeAttribute, TypeSkill:
		return []Category{CategoryMental, CategoryPhysical, CategorySocial}
	case TypeMerit:
		return []Category{
			CategoryMental, CategoryPhysical, CategorySocial,
			CategoryItem, CategoryFightingStyle, CategoryDebateStyle,
			CategoryShadowRealm, CategoryPsychicPhenomena, CategorySpecies,
		}
	default:
		return []Category{CategoryNone}
	}
}
