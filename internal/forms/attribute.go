package forms

import (
	"strings"
)

// Attribute is a trait that changes with the character's form.
type Attribute string

// Form-dependent attributes
const (
	Strength     Attribute = "strength"
	Dexterity    Attribute = "dexterity"
	Stamina      Attribute = "stamina"
	Manipulation Attribute = "manipulation"
)

// Attributes returns the form-dependent attributes in sheet order.
func Attributes() []Attribute {
	return []Attribute{Strength, Dexterity, Stamina, Manipulation}
}

// TraitName returns the name of the attribute trait on a sheet.
func (a Attribute) TraitName() string {
	switch a {
	case Strength:
		return "Strength"
	case Dexterity:
		return "Dexterity"
	case Stamina:
		return "Stamina"
	case Manipulation:
		return "Manipulation"
	default:
		return ""
	}
}

// Valid reports whether a is one of the form-dependent attributes.
func (a Attribute) Valid() bool {
	return a.TraitName() != ""
}

// AttributeForTrait maps a trait name to its attribute.
func AttributeForTrait(name string) (Attribute, bool) {
	a := Attribute(strings.ToLower(strings.TrimSpace(name)))
	return a, a.Valid()
}
