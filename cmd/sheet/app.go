package main

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/forms"
	"github.com/KirkDiggler/rpg-sheet/internal/i18n"
	characterorch "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	diceorch "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/prerequisites"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls"
	templaterepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/template"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// app holds the services the character commands share.
type app struct {
	client     redisclient.Client
	characters character.Service
	dice       diceorch.Service
}

func newApp(ctx context.Context, c *Config) (*app, error) {
	client, err := redisclient.Connect(c.RedisAddr, &redisclient.Options{UseTLS: c.RedisTLS})
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to reach redis at %s", c.RedisAddr)
	}

	a, err := wire(ctx, client, c)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return a, nil
}

func wire(ctx context.Context, client redisclient.Client, c *Config) (*app, error) {
	clk := clock.New()

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}
	rollsRepo, err := rolls.NewRedisRepository(&rolls.Config{
		Client:      client,
		Clock:       clk,
		HistorySize: c.RollHistory,
		TTL:         c.RollTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll repository")
	}
	templates, err := templaterepo.Default(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load templates")
	}
	calculators, err := forms.DefaultSet()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load form tables")
	}
	evaluator, err := prerequisites.NewEvaluator()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create prerequisite evaluator")
	}

	diceService, err := diceorch.NewOrchestrator(&diceorch.Config{
		RollsRepo:   rollsRepo,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewRollIDs(clk),
		Clock:       clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice orchestrator")
	}

	characters, err := characterorch.New(&characterorch.Config{
		CharacterRepo: charRepo,
		TemplateRepo:  templates,
		DiceService:   diceService,
		Calculators:   calculators,
		Prerequisites: evaluator,
		IDGenerator:   idgen.NewCharacterIDs(),
		Clock:         clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	return &app{client: client, characters: characters, dice: diceService}, nil
}

func (a *app) Close() error {
	return a.client.Close()
}

func printer() (*message.Printer, error) {
	return i18n.Printer(cfg.Lang)
}
