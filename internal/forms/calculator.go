// Package forms derives the attribute values a character has in each of its
// alternate body forms.
//
// Every species with forms has an ordered form list. Index 0 is the home
// form the sheet is edited in; the remaining forms derive their values from
// it through a modifier table.
package forms

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Calculator derives per-form values for one species.
type Calculator struct {
	species taxonomy.Species
	forms   []string
	// modifiers[i] holds form i's modifiers; index 0 is always empty.
	modifiers []map[Attribute]Modifier
}

// NewCalculator validates t and builds a calculator from it.
func NewCalculator(t *Table) (*Calculator, error) {
	if t == nil {
		return nil, errors.InvalidArgument("form table is required")
	}

	species, err := taxonomy.LookupSpecies(t.Species)
	if err != nil {
		return nil, errors.Wrap(err, "invalid form table")
	}

	vb := errors.NewValidationBuilder()
	if len(t.Forms) < 2 {
		vb.Fieldf("forms", "%s needs a home form and at least one alternate form", t.Species)
	}

	c := &Calculator{
		species:   species,
		forms:     make([]string, 0, len(t.Forms)),
		modifiers: make([]map[Attribute]Modifier, 0, len(t.Forms)),
	}
	seen := make(map[string]bool, len(t.Forms))
	for i, f := range t.Forms {
		field := "forms[" + strconv.Itoa(i) + "]"
		name := strings.TrimSpace(f.Name)
		switch {
		case name == "":
			vb.RequiredField(field + ".name")
		case seen[name]:
			vb.Fieldf(field+".name", "duplicate form %q", name)
		}
		seen[name] = true
		if i == 0 && len(f.Modifiers) > 0 {
			vb.Fieldf(field+".modifiers", "home form %q cannot carry modifiers", name)
		}
		mods := make(map[Attribute]Modifier, len(f.Modifiers))
		for attr, mod := range f.Modifiers {
			if !attr.Valid() {
				vb.Fieldf(field+".modifiers", "unknown attribute %q", attr)
				continue
			}
			mods[attr] = mod
		}
		c.forms = append(c.forms, name)
		c.modifiers = append(c.modifiers, mods)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid form table for %s", t.Species)
	}
	return c, nil
}

// Species returns the species the calculator applies to.
func (c *Calculator) Species() taxonomy.Species {
	return c.species
}

// Forms returns every form name, home form first.
func (c *Calculator) Forms() []string {
	out := make([]string, len(c.forms))
	copy(out, c.forms)
	return out
}

// HomeForm returns the name of the form the sheet is edited in.
func (c *Calculator) HomeForm() string {
	return c.forms[0]
}

// Modifier returns the modifier of attr in form index.
func (c *Calculator) Modifier(attr Attribute, index int) (Modifier, error) {
	if index < 0 || index >= len(c.forms) {
		return Modifier{}, errors.FormNotFound(c.species.Name(), index)
	}
	return c.modifiers[index][attr], nil
}

// Value returns attr in form index for a home-form base value. Index 0
// returns base unchanged.
func (c *Calculator) Value(attr Attribute, base, index int) (int, error) {
	mod, err := c.Modifier(attr, index)
	if err != nil {
		return 0, err
	}
	if index == 0 {
		return base, nil
	}
	return mod.Apply(base), nil
}

// Derived returns attr in every alternate form, in form order.
func (c *Calculator) Derived(attr Attribute, base int) []int {
	out := make([]int, 0, len(c.forms)-1)
	for i := 1; i < len(c.forms); i++ {
		out = append(out, c.modifiers[i][attr].Apply(base))
	}
	return out
}

// Display joins Derived with "/".
func (c *Calculator) Display(attr Attribute, base int) string {
	derived := c.Derived(attr, base)
	parts := make([]string, len(derived))
	for i, v := range derived {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

// Set holds the calculators of every species that has forms.
type Set struct {
	bySpecies map[taxonomy.Species]*Calculator
}

// NewSet builds a calculator for each table. Two tables for one species fail.
func NewSet(tables ...*Table) (*Set, error) {
	s := &Set{bySpecies: make(map[taxonomy.Species]*Calculator, len(tables))}
	for _, t := range tables {
		c, err := NewCalculator(t)
		if err != nil {
			return nil, err
		}
		if _, dup := s.bySpecies[c.species]; dup {
			return nil, errors.AlreadyExistsf("form table for %s defined twice", t.Species)
		}
		s.bySpecies[c.species] = c
	}
	return s, nil
}

// DefaultSet builds a set from the embedded tables.
func DefaultSet() (*Set, error) {
	tables, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	return NewSet(tables...)
}

// Lookup returns the calculator of a single species.
func (s *Set) Lookup(species taxonomy.Species) (*Calculator, bool) {
	c, ok := s.bySpecies[species]
	return c, ok
}

// Species returns every species with a form table.
func (s *Set) Species() taxonomy.Species {
	var out taxonomy.Species
	for sp := range s.bySpecies {
		out = out.Union(sp)
	}
	return out
}
