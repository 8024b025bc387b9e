// Package rolls stores the recent dice pool history of each character.
package rolls

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsmock github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Repository defines the interface for roll history storage
type Repository interface {
	// Append records a roll at the end of its character's history. The
	// oldest rolls fall off once the history is full.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a character's rolls, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear drops a character's history
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// AppendInput contains the roll to record
type AppendInput struct {
	Roll *entities.Roll
}

// AppendOutput contains the recorded roll
type AppendOutput struct {
	Roll *entities.Roll
}

// ListInput contains parameters for listing rolls
type ListInput struct {
	CharacterID string
	// Limit caps the number of rolls returned. Zero returns the whole
	// history.
	Limit int
}

// ListOutput contains the rolls, newest first
type ListOutput struct {
	Rolls []*entities.Roll
}

// ClearInput contains parameters for clearing a history
type ClearInput struct {
	CharacterID string
}

// ClearOutput reports how many rolls were dropped
type ClearOutput struct {
	RollsDeleted int
}
