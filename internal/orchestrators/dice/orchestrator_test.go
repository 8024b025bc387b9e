package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls"
	rollsmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/rolls/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/mocks"
)

// scriptedRoller hands out faces in order.
type scriptedRoller struct {
	faces []int
	calls [][2]int
}

func (r *scriptedRoller) next() int {
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.calls = append(r.calls, [2]int{1, size})
	return r.next(), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	r.calls = append(r.calls, [2]int{count, size})
	out := make([]int, count)
	for i := range out {
		out[i] = r.next()
	}
	return out, nil
}

type failingRoller struct{}

func (failingRoller) Roll(int) (int, error)         { return 0, errors.Internal("no entropy") }
func (failingRoller) RollN(int, int) ([]int, error) { return nil, errors.Internal("no entropy") }

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	repo     *rollsmock.MockRepository
	roller   *scriptedRoller
	clock    *clock.Fixed
	orch     dice.Service
	recorded *entities.Roll
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = rollsmock.NewMockRepository(s.ctrl)
	s.roller = &scriptedRoller{}
	s.clock = clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.recorded = nil

	orch, err := dice.NewOrchestrator(&dice.Config{
		RollsRepo:   s.repo,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectAppend() {
	mocks.ExpectRollAppend(s.ctx, s.repo, func(r *entities.Roll) {
		s.recorded = r
	})
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := dice.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(&dice.Config{RollsRepo: s.repo})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestRollPool() {
	testCases := []struct {
		name        string
		pool        int
		again       int
		faces       []int
		dice        []int
		successes   int
		exceptional bool
	}{
		{
			name:      "counts eights and up",
			pool:      4,
			faces:     []int{8, 7, 9, 1},
			dice:      []int{8, 7, 9, 1},
			successes: 2,
		},
		{
			name:      "ten again",
			pool:      2,
			faces:     []int{10, 3, 10, 2},
			dice:      []int{10, 3, 10, 2},
			successes: 2,
		},
		{
			name:      "nine again",
			pool:      2,
			again:     9,
			faces:     []int{9, 4, 2},
			dice:      []int{9, 4, 2},
			successes: 1,
		},
		{
			name:        "exceptional success",
			pool:        5,
			faces:       []int{8, 8, 9, 9, 8},
			dice:        []int{8, 8, 9, 9, 8},
			successes:   5,
			exceptional: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.faces = tc.faces
			s.expectAppend()

			out, err := s.orch.RollPool(s.ctx, &dice.RollPoolInput{
				CharacterID: "char_1",
				Description: "Strength + Brawl",
				Pool:        tc.pool,
				Again:       tc.again,
			})
			s.Require().NoError(err)
			s.Assert().Equal(tc.dice, out.Roll.Dice)
			s.Assert().Equal(tc.successes, out.Roll.Successes)
			s.Assert().Equal(tc.exceptional, out.Roll.Exceptional)
			s.Assert().False(out.Roll.Chance)
			s.Assert().Equal(s.clock.Now(), out.Roll.RolledAt)
			s.Assert().Equal("Strength + Brawl", s.recorded.Description)
			s.Assert().Empty(s.roller.faces)
		})
	}
}

func (s *OrchestratorTestSuite) TestChanceDie() {
	testCases := []struct {
		name      string
		face      int
		successes int
		dramatic  bool
	}{
		{name: "ten succeeds", face: 10, successes: 1},
		{name: "eight fails", face: 8},
		{name: "one is dramatic", face: 1, dramatic: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.faces = []int{tc.face}
			s.expectAppend()

			out, err := s.orch.RollPool(s.ctx, &dice.RollPoolInput{CharacterID: "char_1", Pool: -2})
			s.Require().NoError(err)
			s.Assert().True(out.Roll.Chance)
			s.Assert().Equal(tc.successes, out.Roll.Successes)
			s.Assert().Equal(tc.dramatic, out.Roll.Dramatic)
		})
	}
}

func (s *OrchestratorTestSuite) TestRerollsAreCapped() {
	faces := make([]int, 1+dice.MaxRerolls)
	for i := range faces {
		faces[i] = 10
	}
	s.roller.faces = faces
	s.expectAppend()

	out, err := s.orch.RollPool(s.ctx, &dice.RollPoolInput{CharacterID: "char_1", Pool: 1})
	s.Require().NoError(err)
	s.Assert().Len(out.Roll.Dice, 1+dice.MaxRerolls)
}

func (s *OrchestratorTestSuite) TestRollPoolValidation() {
	testCases := []struct {
		name  string
		input *dice.RollPoolInput
	}{
		{name: "nil input"},
		{name: "no character", input: &dice.RollPoolInput{Pool: 3}},
		{name: "pool too large", input: &dice.RollPoolInput{CharacterID: "char_1", Pool: dice.MaxPool + 1}},
		{name: "again too low", input: &dice.RollPoolInput{CharacterID: "char_1", Pool: 3, Again: 7}},
		{name: "again too high", input: &dice.RollPoolInput{CharacterID: "char_1", Pool: 3, Again: 11}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.RollPool(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollerFailure() {
	orch, err := dice.NewOrchestrator(&dice.Config{
		RollsRepo:   s.repo,
		Roller:      failingRoller{},
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	_, err = orch.RollPool(s.ctx, &dice.RollPoolInput{CharacterID: "char_1", Pool: 2})
	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestHistory() {
	history := []*entities.Roll{{ID: "roll_2"}, {ID: "roll_1"}}
	s.repo.EXPECT().
		List(s.ctx, rolls.ListInput{CharacterID: "char_1", Limit: 2}).
		Return(&rolls.ListOutput{Rolls: history}, nil)

	out, err := s.orch.GetRollHistory(s.ctx, &dice.GetRollHistoryInput{CharacterID: "char_1", Limit: 2})
	s.Require().NoError(err)
	s.Assert().Equal(history, out.Rolls)

	s.repo.EXPECT().
		Clear(s.ctx, rolls.ClearInput{CharacterID: "char_1"}).
		Return(&rolls.ClearOutput{RollsDeleted: 2}, nil)

	cleared, err := s.orch.ClearRollHistory(s.ctx, &dice.ClearRollHistoryInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Assert().Equal(2, cleared.RollsDeleted)

	_, err = s.orch.GetRollHistory(s.ctx, &dice.GetRollHistoryInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
