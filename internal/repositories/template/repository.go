// Package template provides read access to the canonical trait definitions
// every character sheet is built from.
package template

//go:generate mockgen -destination=mock/mock_repository.go -package=templatemock github.com/KirkDiggler/rpg-sheet/internal/repositories/template Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// Repository defines read access to trait templates
type Repository interface {
	// ListTraits returns templates of one type in document order
	// Returns errors.InvalidTraitType for an unknown type
	ListTraits(ctx context.Context, input ListTraitsInput) (*ListTraitsOutput, error)

	// GetTrait returns one template
	// Returns errors.TraitNotFound if no template has that name
	GetTrait(ctx context.Context, input GetTraitInput) (*GetTraitOutput, error)

	// ListDerangements returns the derangements a species can take
	ListDerangements(ctx context.Context, input ListDerangementsInput) (*ListDerangementsOutput, error)

	// GetSpecies returns the species-specific names and groups
	// Returns errors.SpeciesNotFound for anything but a single species
	GetSpecies(ctx context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error)
}

// ListTraitsInput defines the input for listing templates
type ListTraitsInput struct {
	Type taxonomy.Type
	// Categories restricts the listing when set.
	Categories []taxonomy.Category
	// Species restricts the listing to templates available to it when set.
	Species taxonomy.Species
}

// ListTraitsOutput defines the output for listing templates
type ListTraitsOutput struct {
	Traits []*entities.Trait
}

// GetTraitInput defines the input for getting a template
type GetTraitInput struct {
	Type taxonomy.Type
	Name string
}

// GetTraitOutput defines the output for getting a template
type GetTraitOutput struct {
	Trait *entities.Trait
}

// ListDerangementsInput defines the input for listing derangements
type ListDerangementsInput struct {
	Species taxonomy.Species
}

// ListDerangementsOutput defines the output for listing derangements
type ListDerangementsOutput struct {
	Derangements []*entities.Derangement
}

// GetSpeciesInput defines the input for getting species details
type GetSpeciesInput struct {
	Species taxonomy.Species
}

// GetSpeciesOutput defines the output for getting species details
type GetSpeciesOutput struct {
	Species *SpeciesInfo
}

// SpeciesInfo holds the names a species gives to shared concepts and its
// breed and faction choices.
type SpeciesInfo struct {
	Species taxonomy.Species
	// Morale names the morality trait, e.g. "Harmony".
	Morale string
	// Powerstat names the super trait; empty for species without one.
	Powerstat string
	Fuel      string
	// PowerName names the species' powers, e.g. "Disciplines".
	PowerName    string
	BreedTitle   string
	Breeds       []string
	FactionTitle string
	Factions     []string
}
