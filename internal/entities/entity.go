package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// Entity type names used on the event bus
const (
	EntityTypeCharacter = "character"
	EntityTypeTrait     = "trait"
)

// TraitEntity wraps a trait snapshot to implement core.Entity. It is the
// source of trait events.
type TraitEntity struct {
	*Trait
	CharacterID string
	// CharacterSpecies is the species of the owning character.
	CharacterSpecies taxonomy.Species
	// Previous is the value before the change that produced the event.
	Previous int
}

// GetID returns a character scoped trait id
func (t *TraitEntity) GetID() string {
	return t.CharacterID + "/" + t.Name
}

// GetType returns the entity type for rpg-toolkit
func (t *TraitEntity) GetType() string {
	return EntityTypeTrait
}

// CharacterEntity wraps a character snapshot to implement core.Entity.
type CharacterEntity struct {
	*Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

var (
	_ core.Entity = (*TraitEntity)(nil)
	_ core.Entity = (*CharacterEntity)(nil)
)
