// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice/mock"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/repositories/character/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls"
	rollsmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character.
// The repository hands out a copy, as the Redis store does.
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	char *entities.Character, err error,
) *gomock.Call {
	var out *characterrepo.GetOutput
	if err == nil {
		out = &characterrepo.GetOutput{Character: char.Clone()}
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: char.ID}).
		Return(out, err)
}

// ExpectCharacterUpdate sets up a mock expectation for saving a character
func ExpectCharacterUpdate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			// Simulate repository behavior - it would update timestamp
			input.Character.UpdatedAt = clock.Now().Unix()
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterDelete sets up a mock expectation for deleting a character
func ExpectCharacterDelete(ctx context.Context, mockRepo *charactermock.MockRepository, id string, err error) {
	mockRepo.EXPECT().
		Delete(ctx, characterrepo.DeleteInput{ID: id}).
		Return(&characterrepo.DeleteOutput{}, err)
}

// ExpectRollAppend sets up a mock expectation for recording a roll. Each
// recorded roll is passed to record when it is not nil.
func ExpectRollAppend(ctx context.Context, mockRepo *rollsmock.MockRepository, record func(*entities.Roll)) *gomock.Call {
	return mockRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolls.AppendInput) (*rolls.AppendOutput, error) {
			if input.Roll.RolledAt.IsZero() {
				input.Roll.RolledAt = clock.Now()
			}
			if record != nil {
				record(input.Roll)
			}
			return &rolls.AppendOutput{Roll: input.Roll}, nil
		})
}

// ExpectClearRollHistory sets up a mock expectation for clearing a
// character's rolls through the dice service
func ExpectClearRollHistory(ctx context.Context, mockService *dicemock.MockService, id string, deleted int, err error) {
	var out *dice.ClearRollHistoryOutput
	if err == nil {
		out = &dice.ClearRollHistoryOutput{RollsDeleted: deleted}
	}
	mockService.EXPECT().
		ClearRollHistory(ctx, &dice.ClearRollHistoryInput{CharacterID: id}).
		Return(out, err)
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
