package entities

// Event types published on a sheet's event bus. Trait events carry a
// *TraitEntity source; character events carry a *CharacterEntity source.
const (
	EventTraitValueChanged        = "trait.value_changed"
	EventCharacterSpeciesChanged  = "character.species_changed"
	EventCharacterBreedChanged    = "character.breed_changed"
	EventCharacterMoralityChanged = "character.morality_changed"
)
