// Package entities provides the core data structures for rpg-sheet.
package entities

import (
	"cmp"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Trait is a named, classified, valued character attribute.
type Trait struct {
	Name          string            `json:"name"`
	Value         int               `json:"value"`
	Type          taxonomy.Type     `json:"type"`
	Category      taxonomy.Category `json:"category"`
	Species       taxonomy.Species  `json:"species"`
	Era           taxonomy.Era      `json:"era"`
	Age           taxonomy.Age      `json:"age"`
	Details       []string          `json:"details,omitempty"`
	Prerequisites []string          `json:"prerequisites,omitempty"`
	Custom        bool              `json:"custom,omitempty"`
	CustomText    string            `json:"custom_text,omitempty"`
	Bonus         bool              `json:"bonus,omitempty"`
	// Values lists the only dot ratings a trait may take. Empty means any
	// rating within the trait's range.
	Values []int `json:"values,omitempty"`
}

// Clone returns a deep copy of t.
func (t *Trait) Clone() *Trait {
	if t == nil {
		return nil
	}
	out := *t
	out.Details = slices.Clone(t.Details)
	out.Prerequisites = slices.Clone(t.Prerequisites)
	out.Values = slices.Clone(t.Values)
	return &out
}

// Equal reports structural equality over every field.
func (t *Trait) Equal(other *Trait) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.Name == other.Name &&
		t.Value == other.Value &&
		t.Type == other.Type &&
		t.Category == other.Category &&
		t.Species == other.Species &&
		t.Era == other.Era &&
		t.Age == other.Age &&
		slices.Equal(t.Details, other.Details) &&
		slices.Equal(t.Prerequisites, other.Prerequisites) &&
		t.Custom == other.Custom &&
		t.CustomText == other.CustomText &&
		t.Bonus == other.Bonus &&
		slices.Equal(t.Values, other.Values)
}

// CompareTraits orders traits by name, then category, then type.
func CompareTraits(a, b *Trait) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// SortTraits sorts traits in place with CompareTraits.
func SortTraits(traits []*Trait) {
	slices.SortStableFunc(traits, CompareTraits)
}

// Reclassify assigns a type and category to an unclassified trait. Once a
// trait has a type it keeps it.
func (t *Trait) Reclassify(typ taxonomy.Type, category taxonomy.Category) error {
	if _, err := typ.XMLToken(); err != nil {
		return err
	}
	if _, err := category.XMLToken(); err != nil {
		return err
	}
	if t.Type != taxonomy.TypeNone || typ == taxonomy.TypeNone {
		return errors.InvalidTraitType(int(typ)).
			WithMeta("trait", t.Name).
			WithMeta("current_type", int(t.Type))
	}
	t.Type = typ
	t.Category = category
	return nil
}

// SetCategory only accepts the category the trait already has; categories
// change through Reclassify.
func (t *Trait) SetCategory(category taxonomy.Category) error {
	if category != t.Category {
		return errors.InvalidTraitCategory(int(category)).
			WithMeta("trait", t.Name).
			WithMeta("current_category", int(t.Category))
	}
	return nil
}

// AvailableFor reports whether the trait applies to a character of the
// given species, era and age.
func (t *Trait) AvailableFor(species taxonomy.Species, era taxonomy.Era, age taxonomy.Age) bool {
	return t.Species.Has(species) && t.Era.Admits(era) && t.Age.Admits(age)
}

// HasPrerequisites reports whether the trait lists any prerequisite.
func (t *Trait) HasPrerequisites() bool {
	for _, p := range t.Prerequisites {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
