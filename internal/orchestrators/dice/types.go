package dice

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// RollPoolInput defines the request for rolling a dice pool
type RollPoolInput struct {
	CharacterID string
	Description string
	// Pool is the number of d10 to roll. Zero or less rolls a chance die.
	Pool int
	// Again is the lowest face that earns another die: 8, 9 or 10.
	// Zero means 10.
	Again int
}

// RollPoolOutput defines the response for rolling a dice pool
type RollPoolOutput struct {
	Roll *entities.Roll
}

// GetRollHistoryInput defines the request for a character's recent rolls
type GetRollHistoryInput struct {
	CharacterID string
	Limit       int
}

// GetRollHistoryOutput holds the rolls, newest first
type GetRollHistoryOutput struct {
	Rolls []*entities.Roll
}

// ClearRollHistoryInput defines the request for clearing a roll history
type ClearRollHistoryInput struct {
	CharacterID string
}

// ClearRollHistoryOutput defines the response for clearing a roll history
type ClearRollHistoryOutput struct {
	RollsDeleted int
}
