package taxonomy

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Category groups traits of one Type.
type Category int

// Trait categories
const (
	CategoryNone Category = iota
	CategoryMental
	CategoryPhysical
	CategorySocial
	CategoryItem
	CategoryFightingStyle
	CategoryDebateStyle
	CategoryShadowRealm
	CategoryPsychicPhenomena
	CategorySpecies
)

// AllCategories returns every category in declaration order, sentinel first.
func AllCategories() []Category {
	return []Category{
		CategoryNone, CategoryMental, CategoryPhysical, CategorySocial,
		CategoryItem, CategoryFightingStyle, CategoryDebateStyle,
		CategoryShadowRealm, CategoryPsychicPhenomena, CategorySpecies,
	}
}

// XMLToken returns the canonical token for c.
func (c Category) XMLToken() (string, error) {
	switch c {
	case CategoryNone:
		return "CategoryNo", nil
	case CategoryMental:
		return "Mental", nil
	case CategoryPhysical:
		return "Physical", nil
	case CategorySocial:
		return "Social", nil
	case CategoryItem:
		return "Item", nil
	case CategoryFightingStyle:
		return "FightingStyle", nil
	case CategoryDebateStyle:
		return "DebateStyle", nil
	case CategoryShadowRealm:
		return "ShadowRealm", nil
	case CategoryPsychicPhenomena:
		return "PsychicPhenomena", nil
	case CategorySpecies:
		return "Species", nil
	default:
		return "", errors.InvalidTraitCategory(int(c))
	}
}

// ParseCategory maps a token to a Category. Unknown tokens yield CategoryNone.
func ParseCategory(token string) Category {
	switch token {
	case "Mental":
		return CategoryMental
	case "Physical":
		return CategoryPhysical
	case "Social":
		return CategorySocial
	case "Item":
		return CategoryItem
	case "FightingStyle":
		return CategoryFightingStyle
	case "DebateStyle":
		return CategoryDebateStyle
	case "ShadowRealm":
		return CategoryShadowRealm
	case "PsychicPhenomena":
		return CategoryPsychicPhenomena
	case "Species":
		return CategorySpecies
	default:
		return CategoryNone
	}
}

// DisplayName returns the English display name, used as a localization key.
func (c Category) DisplayName(plural bool) string {
	switch c {
	case CategoryMental:
		return "Mental"
	case CategoryPhysical:
		return "Physical"
	case CategorySocial:
		return "Social"
	case CategoryItem:
		if plural {
			return "Items"
		}
		return "Item"
	case CategoryFightingStyle:
		if plural {
			return "Fighting Styles"
		}
		return "Fighting Style"
	case CategoryDebateStyle:
		if plural {
			return "Debate Styles"
		}
		return "Debate Style"
	case CategoryShadowRealm:
		return "Shadow Realm"
	case CategoryPsychicPhenomena:
		return "Psychic Phenomena"
	case CategorySpecies:
		return "Species"
	default:
		return "Without Category"
	}
}

// String implements fmt.Stringer
func (c Category) String() string {
	return c.DisplayName(false)
}

// MarshalText emits the strict token.
func (c Category) MarshalText() ([]byte, error) {
	token, err := c.XMLToken()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// UnmarshalText parses permissively.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
