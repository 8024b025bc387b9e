package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// Character is the aggregate a sheet edits.
type Character struct {
	ID           string           `json:"id"`
	Identities   IdentityList     `json:"identities,omitempty"`
	Species      taxonomy.Species `json:"species"`
	Breed        string           `json:"breed,omitempty"`
	Faction      string           `json:"faction,omitempty"`
	Era          taxonomy.Era     `json:"era"`
	AgeYears     int              `json:"age_years"`
	Virtue       string           `json:"virtue,omitempty"`
	Vice         string           `json:"vice,omitempty"`
	Morality     int              `json:"morality"`
	Powerstat    int              `json:"powerstat"`
	Traits       []*Trait         `json:"traits,omitempty"`
	Derangements []*Derangement   `json:"derangements,omitempty"`
	Modified     bool             `json:"-"`
	CreatedAt    int64            `json:"created_at"`
	UpdatedAt    int64            `json:"updated_at"`
}

// Age returns the age bracket of the character.
func (c *Character) Age() taxonomy.Age {
	return taxonomy.AgeFor(c.AgeYears)
}

// Trait looks a trait up by type and name.
func (c *Character) Trait(typ taxonomy.Type, name string) (*Trait, bool) {
	for _, t := range c.Traits {
		if t.Type == typ && t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// TraitsOf returns the traits of typ, restricted to categories when any are
// given, in stored order.
func (c *Character) TraitsOf(typ taxonomy.Type, categories ...taxonomy.Category) []*Trait {
	var out []*Trait
	for _, t := range c.Traits {
		if t.Type != typ {
			continue
		}
		if len(categories) > 0 && !slices.Contains(categories, t.Category) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Reset returns the character to a blank sheet: no identities, attributes
// at 1, every other trait at 0, default morality and powerstat. Species is
// left to the caller.
func (c *Character) Reset() {
	c.Identities.Reset()
	c.Era = taxonomy.EraModern
	c.AgeYears = DefaultAgeYears
	c.Breed = ""
	c.Faction = ""
	for _, t := range c.Traits {
		t.Value = ResetValue(t.Type)
		t.CustomText = ""
		t.Details = nil
	}
	c.Derangements = nil
	c.Morality = MoralityDefault
	c.Powerstat = SuperTraitDefault
	c.Modified = true
}

// Clone returns a deep copy of c.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Identities = slices.Clone(c.Identities)
	if c.Traits != nil {
		out.Traits = make([]*Trait, len(c.Traits))
		for i, t := range c.Traits {
			out.Traits[i] = t.Clone()
		}
	}
	if c.Derangements != nil {
		out.Derangements = make([]*Derangement, len(c.Derangements))
		for i, d := range c.Derangements {
			out.Derangements[i] = d.Clone()
		}
	}
	return &out
}
