// Package dice rolls Storytelling dice pools and keeps their history
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls"
)

const (
	// MaxPool is the largest pool a single roll accepts.
	MaxPool = 50
	// MaxRerolls caps the extra dice one roll can earn.
	MaxRerolls = 100
)

// Service defines the interface for dice operations
type Service interface {
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)
	GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error)
	ClearRollHistory(ctx context.Context, input *ClearRollHistoryInput) (*ClearRollHistoryOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	RollsRepo   rolls.Repository
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.RollsRepo == nil {
		vb.RequiredField("RollsRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	rollsRepo rolls.Repository
	roller    dice.Roller
	idGen     idgen.Generator
	clock     clock.Clock
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rollsRepo: cfg.RollsRepo,
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
	}, nil
}

// RollPool rolls the pool, records it in the character's history and
// returns the result.
func (o *orchestrator) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Pool > MaxPool {
		return nil, errors.InvalidArgumentf("pool of %d dice exceeds the maximum of %d", input.Pool, MaxPool)
	}
	again := input.Again
	if again == 0 {
		again = entities.AgainThreshold
	}
	if again < entities.SuccessThreshold || again > entities.PoolDie {
		return nil, errors.InvalidArgumentf("again threshold must be between %d and %d", entities.SuccessThreshold, entities.PoolDie)
	}

	roll := &entities.Roll{
		ID:          o.idGen.Generate(),
		CharacterID: input.CharacterID,
		Description: input.Description,
		Pool:        input.Pool,
		RolledAt:    o.clock.Now(),
	}

	var err error
	if input.Pool <= 0 {
		err = o.rollChance(roll)
	} else {
		err = o.rollPool(roll, again)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	out, err := o.rollsRepo.Append(ctx, rolls.AppendInput{Roll: roll})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}

	slog.InfoContext(ctx, "Dice pool rolled",
		"character_id", roll.CharacterID,
		"pool", roll.Pool,
		"successes", roll.Successes,
		"roll_id", roll.ID)

	return &RollPoolOutput{Roll: out.Roll}, nil
}

// rollChance rolls one die that only succeeds on a 10. A 1 is a dramatic
// failure.
func (o *orchestrator) rollChance(roll *entities.Roll) error {
	face, err := o.roller.Roll(entities.PoolDie)
	if err != nil {
		return err
	}
	roll.Chance = true
	roll.Dice = []int{face}
	switch face {
	case entities.PoolDie:
		roll.Successes = 1
	case 1:
		roll.Dramatic = true
	}
	return nil
}

// rollPool rolls the pool and one more die for every face at or above
// again, until no new die earns another.
func (o *orchestrator) rollPool(roll *entities.Roll, again int) error {
	pending := roll.Pool
	rerolls := 0
	for pending > 0 {
		faces, err := o.roller.RollN(pending, entities.PoolDie)
		if err != nil {
			return err
		}
		pending = 0
		for _, face := range faces {
			roll.Dice = append(roll.Dice, face)
			if face >= entities.SuccessThreshold {
				roll.Successes++
			}
			if face >= again && rerolls < MaxRerolls {
				pending++
				rerolls++
			}
		}
	}
	roll.Exceptional = roll.Successes >= entities.ExceptionalSuccesses
	return nil
}

// GetRollHistory returns a character's recent rolls, newest first
func (o *orchestrator) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.rollsRepo.List(ctx, rolls.ListInput{
		CharacterID: input.CharacterID,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll history")
	}

	return &GetRollHistoryOutput{Rolls: out.Rolls}, nil
}

// ClearRollHistory drops a character's roll history
func (o *orchestrator) ClearRollHistory(ctx context.Context, input *ClearRollHistoryInput) (*ClearRollHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.rollsRepo.Clear(ctx, rolls.ClearInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll history")
	}

	slog.InfoContext(ctx, "Roll history cleared",
		"character_id", input.CharacterID,
		"rolls_deleted", out.RollsDeleted)

	return &ClearRollHistoryOutput{RollsDeleted: out.RollsDeleted}, nil
}
