package rolls

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: rolls:{character_id}
	rollsKeyPrefix = "rolls:"

	// DefaultHistorySize is the number of rolls kept per character.
	DefaultHistorySize = 50
	// DefaultTTL is how long an untouched history lives.
	DefaultTTL = 24 * time.Hour

	// Error messages
	errRollNil           = "roll cannot be nil"
	errCharacterIDEmpty  = "character ID cannot be empty"
	errNegativeLimit     = "limit cannot be negative"
	errHistorySizeTooLow = "history size must be positive"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// HistorySize defaults to DefaultHistorySize.
	HistorySize int
	// TTL defaults to DefaultTTL.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.HistorySize < 0 {
		vb.InvalidField("HistorySize", errHistorySizeTooLow)
	}
	return vb.Build()
}

type redisRepository struct {
	client      redisclient.Client
	clock       clock.Clock
	historySize int
	ttl         time.Duration
}

// NewRedisRepository creates a new Redis repository for roll histories
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &redisRepository{
		client:      cfg.Client,
		clock:       cfg.Clock,
		historySize: cfg.HistorySize,
		ttl:         cfg.TTL,
	}
	if r.historySize == 0 {
		r.historySize = DefaultHistorySize
	}
	if r.ttl == 0 {
		r.ttl = DefaultTTL
	}
	return r, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Roll == nil {
		return nil, errors.InvalidArgument(errRollNil)
	}
	if input.Roll.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	roll := *input.Roll
	roll.Dice = slices.Clone(input.Roll.Dice)
	if roll.RolledAt.IsZero() {
		roll.RolledAt = r.clock.Now()
	}

	data, err := json.Marshal(&roll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := rollsKeyPrefix + roll.CharacterID
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-r.historySize), -1)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store roll in Redis")
	}

	slog.DebugContext(ctx, "Recorded roll",
		"character_id", roll.CharacterID,
		"roll_id", roll.ID,
		"successes", roll.Successes)

	return &AppendOutput{Roll: &roll}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errNegativeLimit)
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}
	raw, err := r.client.LRange(ctx, rollsKeyPrefix+input.CharacterID, start, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get rolls from Redis")
	}

	rolls := make([]*entities.Roll, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var roll entities.Roll
		if err := json.Unmarshal([]byte(raw[i]), &roll); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable roll",
				"character_id", input.CharacterID,
				"error", err.Error())
			continue
		}
		rolls = append(rolls, &roll)
	}

	return &ListOutput{Rolls: rolls}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := rollsKeyPrefix + input.CharacterID
	pipe := r.client.TxPipeline()
	length := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete rolls from Redis")
	}

	return &ClearOutput{RollsDeleted: int(length.Val())}, nil
}
