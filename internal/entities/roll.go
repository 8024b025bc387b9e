package entities

import (
	"time"
)

// Dice pool rules
const (
	// PoolDie is the number of sides of every die in a pool.
	PoolDie = 10
	// SuccessThreshold is the lowest face that counts as a success.
	SuccessThreshold = 8
	// AgainThreshold is the lowest face that earns another die.
	AgainThreshold = 10
	// ExceptionalSuccesses is the success count of an exceptional roll.
	ExceptionalSuccesses = 5
)

// Roll is one resolved dice pool.
type Roll struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	// Description names what was rolled, e.g. "Strength + Brawl".
	Description string `json:"description,omitempty"`
	// Pool is the number of dice asked for before rerolls. A pool of zero
	// or less is rolled as a single chance die.
	Pool   int   `json:"pool"`
	Chance bool  `json:"chance,omitempty"`
	Dice   []int `json:"dice"`
	// Successes counts the dice that met the threshold.
	Successes   int       `json:"successes"`
	Exceptional bool      `json:"exceptional,omitempty"`
	Dramatic    bool      `json:"dramatic,omitempty"`
	RolledAt    time.Time `json:"rolled_at"`
}
