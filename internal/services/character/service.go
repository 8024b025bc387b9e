// Package character defines the interface for character sheet operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/advantages"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/forms"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ResetCharacter(ctx context.Context, input *ResetCharacterInput) (*ResetCharacterOutput, error)

	// Sheet edits
	SetTraitValue(ctx context.Context, input *SetTraitValueInput) (*SetTraitValueOutput, error)
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error)
	SetMorality(ctx context.Context, input *SetMoralityInput) (*SetMoralityOutput, error)
	AddDerangement(ctx context.Context, input *AddDerangementInput) (*AddDerangementOutput, error)
	RemoveDerangement(ctx context.Context, input *RemoveDerangementInput) (*RemoveDerangementOutput, error)

	// Lookups
	ListAvailableTraits(ctx context.Context, input *ListAvailableTraitsInput) (*ListAvailableTraitsOutput, error)

	// Dice
	RollTraits(ctx context.Context, input *RollTraitsInput) (*RollTraitsOutput, error)
}

// CharacterView is a stored character with the values derived from it.
type CharacterView struct {
	Character  *entities.Character
	Advantages advantages.Advantages
	// Forms holds the per-form values of form-dependent attributes. It is
	// empty for species without forms.
	Forms []forms.Update
}

// TraitRef names one trait of a character.
type TraitRef struct {
	Type taxonomy.Type
	Name string
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Species   taxonomy.Species
	FirstName string
	Surname   string
	// Era defaults to EraModern.
	Era taxonomy.Era
	// AgeYears defaults to entities.DefaultAgeYears.
	AgeYears int
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Sheet *CharacterView
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Sheet *CharacterView
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	// Species restricts the listing when set.
	Species taxonomy.Species
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}

// ResetCharacterInput defines the request for blanking a character
type ResetCharacterInput struct {
	CharacterID string
}

// ResetCharacterOutput defines the response for blanking a character
type ResetCharacterOutput struct {
	Sheet *CharacterView
}

// SetTraitValueInput defines the request for rating a trait
type SetTraitValueInput struct {
	CharacterID string
	Trait       TraitRef
	Value       int
}

// SetTraitValueOutput defines the response for rating a trait
type SetTraitValueOutput struct {
	// Value is the stored rating after normalization.
	Value   int
	Changed bool
	Sheet   *CharacterView
}

// UpdateDetailsInput defines the request for changing character details.
// Nil fields are left alone.
type UpdateDetailsInput struct {
	CharacterID string
	Species     *taxonomy.Species
	Breed       *string
	Faction     *string
	Virtue      *string
	Vice        *string
	Era         *taxonomy.Era
	AgeYears    *int
	Powerstat   *int
	FirstName   *string
	Surname     *string
}

// UpdateDetailsOutput defines the response for changing character details
type UpdateDetailsOutput struct {
	Sheet *CharacterView
}

// SetMoralityInput defines the request for changing morality
type SetMoralityInput struct {
	CharacterID string
	Value       int
}

// SetMoralityOutput defines the response for changing morality
type SetMoralityOutput struct {
	Value int
	// Dropped names the derangements lost because the new morality is
	// above their threshold.
	Dropped []string
	Sheet   *CharacterView
}

// AddDerangementInput defines the request for adding a derangement
type AddDerangementInput struct {
	CharacterID string
	Name        string
}

// AddDerangementOutput defines the response for adding a derangement
type AddDerangementOutput struct {
	Sheet *CharacterView
}

// RemoveDerangementInput defines the request for removing a derangement
type RemoveDerangementInput struct {
	CharacterID string
	Name        string
}

// RemoveDerangementOutput defines the response for removing a derangement
type RemoveDerangementOutput struct {
	Sheet *CharacterView
}

// ListAvailableTraitsInput defines the request for the traits a character
// can take
type ListAvailableTraitsInput struct {
	CharacterID string
	Type        taxonomy.Type
	Categories  []taxonomy.Category
}

// ListAvailableTraitsOutput defines the response for the traits a character
// can take
type ListAvailableTraitsOutput struct {
	Traits []*entities.Trait
}

// RollTraitsInput defines the request for rolling a pool built from traits
type RollTraitsInput struct {
	CharacterID string
	Traits      []TraitRef
	// Modifier is added to the pool after the trait ratings.
	Modifier int
	// Again is the lowest face that earns another die. Zero means 10.
	Again int
}

// RollTraitsOutput defines the response for rolling a pool built from
// traits
type RollTraitsOutput struct {
	Roll *entities.Roll
}
