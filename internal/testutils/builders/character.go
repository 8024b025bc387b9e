// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// AttributeNames lists the nine attributes by category.
var AttributeNames = map[taxonomy.Category][]string{
	taxonomy.CategoryMental:   {"Intelligence", "Wits", "Resolve"},
	taxonomy.CategoryPhysical: {"Strength", "Dexterity", "Stamina"},
	taxonomy.CategorySocial:   {"Presence", "Manipulation", "Composure"},
}

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	char *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Unix()
	return &CharacterBuilder{
		char: &entities.Character{
			ID:        "char-test-123",
			Species:   taxonomy.SpeciesHuman,
			Era:       taxonomy.EraModern,
			AgeYears:  entities.DefaultAgeYears,
			Morality:  entities.MoralityDefault,
			Powerstat: entities.SuperTraitDefault,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.char.ID = id
	return b
}

// WithSpecies sets the species
func (b *CharacterBuilder) WithSpecies(species taxonomy.Species) *CharacterBuilder {
	b.char.Species = species
	return b
}

// WithName sets the true name
func (b *CharacterBuilder) WithName(surname, firstName string) *CharacterBuilder {
	b.char.Identities.SetReal(entities.NewIdentity(surname, firstName))
	return b
}

// WithMorality sets the morality rating
func (b *CharacterBuilder) WithMorality(morality int) *CharacterBuilder {
	b.char.Morality = morality
	return b
}

// WithAgeYears sets the age
func (b *CharacterBuilder) WithAgeYears(years int) *CharacterBuilder {
	b.char.AgeYears = years
	return b
}

// WithAttributes adds all nine attributes at value
func (b *CharacterBuilder) WithAttributes(value int) *CharacterBuilder {
	for _, cat := range []taxonomy.Category{taxonomy.CategoryMental, taxonomy.CategoryPhysical, taxonomy.CategorySocial} {
		for _, name := range AttributeNames[cat] {
			b.WithTrait(taxonomy.TypeAttribute, cat, name, value)
		}
	}
	return b
}

// WithTrait adds a trait available to every species, or sets its value when
// already present
func (b *CharacterBuilder) WithTrait(typ taxonomy.Type, cat taxonomy.Category, name string, value int) *CharacterBuilder {
	if t, ok := b.char.Trait(typ, name); ok {
		t.Value = value
		return b
	}
	b.char.Traits = append(b.char.Traits, &entities.Trait{
		Name:     name,
		Value:    value,
		Type:     typ,
		Category: cat,
		Species:  taxonomy.SpeciesAll,
	})
	return b
}

// Build returns a copy of the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.char.Clone()
}
