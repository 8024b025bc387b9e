package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// TestCharacterID is the ID of the default test character
const TestCharacterID = "char_test_001"

// CreateTestCharacter creates a character of species with every attribute
// at 2 and a few skills.
func CreateTestCharacter(species taxonomy.Species) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(TestCharacterID).
		WithSpecies(species).
		WithName("Smith", "Ann").
		WithAttributes(2).
		WithTrait(taxonomy.TypeSkill, taxonomy.CategoryPhysical, "Brawl", 1).
		WithTrait(taxonomy.TypeSkill, taxonomy.CategoryPhysical, "Athletics", 2).
		WithTrait(taxonomy.TypeSkill, taxonomy.CategoryMental, "Occult", 0).
		Build()
}
