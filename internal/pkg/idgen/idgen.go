// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// ID prefixes
const (
	CharacterPrefix = "char"
	RollPrefix      = "roll"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// TimeOrderedGenerator generates prefix_<millis base 36>_<random hex> ids.
// Ids of one generator sort by creation time to the millisecond.
type TimeOrderedGenerator struct {
	prefix string
	clock  clock.Clock
}

// NewTimeOrdered creates a generator stamping ids from clk
func NewTimeOrdered(prefix string, clk clock.Clock) *TimeOrderedGenerator {
	if clk == nil {
		clk = clock.New()
	}
	return &TimeOrderedGenerator{prefix: prefix, clock: clk}
}

// Generate creates a new time ordered id
func (g *TimeOrderedGenerator) Generate() string {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		// crypto/rand.Read only fails when the system entropy source is broken
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	stamp := strconv.FormatInt(g.clock.Now().UnixMilli(), 36)
	return fmt.Sprintf("%s_%s_%s", g.prefix, stamp, hex.EncodeToString(randomBytes))
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return strconv.FormatUint(n, 10)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return g.prefix + "_" + id
	}
	return id
}

// NewCharacterIDs returns the generator used for character ids.
func NewCharacterIDs() Generator {
	return NewUUID(CharacterPrefix)
}

// NewRollIDs returns the generator used for dice roll ids.
func NewRollIDs(clk clock.Clock) Generator {
	return NewTimeOrdered(RollPrefix, clk)
}
