package prerequisites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/prerequisites"
)

type EvaluatorTestSuite struct {
	suite.Suite
	eval *prerequisites.Evaluator
	char *entities.Character
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) SetupTest() {
	var err error
	s.eval, err = prerequisites.NewEvaluator()
	s.Require().NoError(err)

	s.char = &entities.Character{
		Powerstat: 2,
		Traits: []*entities.Trait{
			{Name: "Strength", Type: taxonomy.TypeAttribute, Value: 3},
			{Name: "Dexterity", Type: taxonomy.TypeAttribute, Value: 2},
			{Name: "Brawl", Type: taxonomy.TypeSkill, Value: 2},
			{Name: "Athletics", Type: taxonomy.TypeSkill, Value: 1, Details: []string{"Running"}},
			{Name: "Fleet of Foot", Type: taxonomy.TypeMerit, Value: 0},
			{Name: "Foot", Type: taxonomy.TypeMerit, Value: 4},
		},
	}
}

func (s *EvaluatorTestSuite) TestTranslate() {
	testCases := []struct {
		expr     string
		expected string
	}{
		{"Strength > 2 and Brawl > 1", "3 > 2 && 2 > 1"},
		{"Strength > 3 or (Dexterity > 1)", "3 > 3 || (2 > 1)"},
		{"Fleet of Foot > 0", "0 > 0"},
		{"Athletics.Running > 0", "1 > 0"},
		{"Athletics.Swimming > 0", "0 > 0"},
		{"Powerstat > 1", "2 > 1"},
	}

	for _, tc := range testCases {
		s.Run(tc.expr, func() {
			s.Assert().Equal(tc.expected, prerequisites.Translate(tc.expr, s.char))
		})
	}
}

func (s *EvaluatorTestSuite) TestEval() {
	testCases := []struct {
		expr     string
		expected bool
	}{
		{"Strength > 2 and Brawl > 1", true},
		{"Strength > 3 or Dexterity > 2", false},
		{"Strength > 3 or (Dexterity > 1 and Brawl > 1)", true},
		{"Athletics.Running > 0", true},
		{"Athletics.Swimming > 0", false},
		{"Powerstat >= 2", true},
	}

	for _, tc := range testCases {
		s.Run(tc.expr, func() {
			got, err := s.eval.Eval(tc.expr, s.char)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, got)
		})
	}
}

func (s *EvaluatorTestSuite) TestUnknownNameFails() {
	_, err := s.eval.Eval("Occult > 2", s.char)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.eval.Eval("Strength + 1", s.char)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EvaluatorTestSuite) TestMet() {
	merit := &entities.Trait{
		Name:          "Iron Stamina",
		Prerequisites: []string{"Strength > 2", "Brawl > 1"},
	}
	s.Assert().True(s.eval.Met(context.Background(), merit, s.char))

	merit.Prerequisites = append(merit.Prerequisites, "Dexterity > 4")
	s.Assert().False(s.eval.Met(context.Background(), merit, s.char))

	s.Assert().True(s.eval.Met(context.Background(), &entities.Trait{Name: "Free"}, s.char))
}

func (s *EvaluatorTestSuite) TestMetTreatsUnknownTraitAsUnmet() {
	merit := &entities.Trait{
		Name:          "Giant",
		Prerequisites: []string{"Strength > 2 and Vigor > 1"},
	}
	s.Assert().False(s.eval.Met(context.Background(), merit, s.char))

	merit.Prerequisites = []string{"Strength > 2 and ("}
	s.Assert().False(s.eval.Met(context.Background(), merit, s.char))
}

func (s *EvaluatorTestSuite) TestCachesPrograms() {
	for range 3 {
		ok, err := s.eval.Eval("Strength > 2", s.char)
		s.Require().NoError(err)
		s.Assert().True(ok)
	}
	s.char.Traits[0].Value = 1
	ok, err := s.eval.Eval("Strength > 2", s.char)
	s.Require().NoError(err)
	s.Assert().False(ok)
}
