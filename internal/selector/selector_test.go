package selector_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/selector"
)

type SelectorTestSuite struct {
	suite.Suite
	sel *selector.Selector
}

func TestSelectorSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) SetupTest() {
	sel, err := selector.New(0, 5)
	s.Require().NoError(err)
	s.sel = sel
}

func (s *SelectorTestSuite) TestNewRejectsInvertedRange() {
	_, err := selector.New(3, 2)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SelectorTestSuite) TestNewStartsAtMinimum() {
	sel, err := selector.New(1, 5)
	s.Require().NoError(err)
	s.Assert().Equal(1, sel.Value())
}

func (s *SelectorTestSuite) TestSetValue() {
	s.sel.AddForbiddenValue(3)

	testCases := []struct {
		name     string
		input    int
		expected int
	}{
		{"forbidden steps down", 3, 2},
		{"above maximum clamps", 7, 5},
		{"below minimum clamps", -2, 0},
		{"allowed value kept", 4, 4},
		{"minimum kept", 0, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.sel.SetValue(tc.input))
			s.Assert().Equal(tc.expected, s.sel.Value())
		})
	}
}

func (s *SelectorTestSuite) TestForbidAllFallsToMinimum() {
	s.sel.ForbidAll()
	s.Assert().Equal(0, s.sel.SetValue(4))
	s.Assert().Equal([]int{0, 1, 2, 3, 4, 5}, s.sel.Forbidden())
	s.Assert().Empty(s.sel.Allowed())

	s.sel.ForbidNone()
	s.Assert().Equal(4, s.sel.SetValue(4))
	s.Assert().Empty(s.sel.Forbidden())
}

func (s *SelectorTestSuite) TestForbiddenMinimumStillWins() {
	s.sel.SetForbiddenValues([]int{0, 1})
	s.Assert().Equal(0, s.sel.SetValue(1))
}

func (s *SelectorTestSuite) TestForbiddenOutsideRangeIsHarmless() {
	s.sel.SetForbiddenValues([]int{-3, 9})
	s.Assert().Equal(5, s.sel.SetValue(9))
	s.Assert().Equal(0, s.sel.SetValue(-3))
}

func (s *SelectorTestSuite) TestSetAllowedValues() {
	s.sel.SetAllowedValues([]int{1, 3, 5})

	s.Assert().Equal([]int{1, 3, 5}, s.sel.Allowed())
	s.Assert().Equal(3, s.sel.SetValue(4))
	s.Assert().Equal(1, s.sel.SetValue(2))
	s.Assert().Equal(0, s.sel.SetValue(0))
}

func (s *SelectorTestSuite) TestNotifications() {
	var activated, changed, clicked []int
	s.sel.OnActivated(func(v int) { activated = append(activated, v) })
	s.sel.OnValueChanged(func(v int) { changed = append(changed, v) })
	s.sel.OnValueClicked(func(v int) { clicked = append(clicked, v) })

	s.sel.SetValue(2)
	s.sel.SetValue(2)
	_, ok := s.sel.Click(4)
	s.Require().True(ok)
	s.sel.Click(4)

	s.Assert().Equal([]int{2, 2, 4, 4}, activated)
	s.Assert().Equal([]int{2, 4}, changed)
	s.Assert().Equal([]int{4}, clicked)
}

func (s *SelectorTestSuite) TestChangeObservesStoredValue() {
	var seen int
	s.sel.OnValueChanged(func(int) { seen = s.sel.Value() })

	s.sel.SetValue(3)
	s.Assert().Equal(3, seen)
}

func (s *SelectorTestSuite) TestReadOnlyIgnoresClicks() {
	s.sel.SetReadOnly(true)
	activated := 0
	s.sel.OnActivated(func(int) { activated++ })

	v, ok := s.sel.Click(4)
	s.Assert().False(ok)
	s.Assert().Equal(0, v)
	s.Assert().Zero(activated)

	s.Assert().Equal(4, s.sel.SetValue(4))
	s.Assert().True(s.sel.ReadOnly())
}

func (s *SelectorTestSuite) TestRangeChangeRenormalizes() {
	s.sel.SetValue(5)
	var changed []int
	var ranges [][2]int
	s.sel.OnValueChanged(func(v int) { changed = append(changed, v) })
	s.sel.OnRangeChanged(func(lo, hi int) { ranges = append(ranges, [2]int{lo, hi}) })

	s.Require().NoError(s.sel.SetMaximum(3))
	s.Assert().Equal(3, s.sel.Value())
	s.Assert().Equal([]int{3}, changed)
	s.Assert().Equal([][2]int{{0, 3}}, ranges)

	s.Require().NoError(s.sel.SetMinimum(2))
	s.Assert().Equal(3, s.sel.Value())

	err := s.sel.SetMinimum(4)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(2, s.sel.Minimum())
}

func (s *SelectorTestSuite) TestAdjustPolicyTracksRange() {
	s.sel.AddForbiddenValue(5)
	s.Require().NoError(s.sel.SetMaximum(4))
	s.Assert().Empty(s.sel.Forbidden())

	s.sel.ForbidAll()
	s.Require().NoError(s.sel.SetMaximum(6))
	s.Assert().Equal([]int{0, 1, 2, 3, 4, 5, 6}, s.sel.Forbidden())
	s.Assert().Equal(0, s.sel.SetValue(6))
}

func (s *SelectorTestSuite) TestLegacyPolicyKeepsSnapshot() {
	sel, err := selector.New(0, 5, selector.WithPolicy(selector.RangePolicyLegacy))
	s.Require().NoError(err)

	sel.ForbidAll()
	s.Require().NoError(sel.SetMaximum(7))
	s.Assert().Equal([]int{0, 1, 2, 3, 4, 5}, sel.Forbidden())
	s.Assert().Equal(7, sel.SetValue(7))
	s.Assert().Equal(0, sel.SetValue(5))

	s.Require().NoError(sel.SetMaximum(3))
	s.Assert().Equal([]int{0, 1, 2, 3, 4, 5}, sel.Forbidden())
	s.Assert().Equal(selector.RangePolicyLegacy, sel.Policy())
}

func (s *SelectorTestSuite) TestOptions() {
	sel, err := selector.New(1, 5, selector.WithForbidden(1, 4), selector.WithReadOnly(true))
	s.Require().NoError(err)

	s.Assert().Equal(1, sel.Value())
	s.Assert().Equal(3, sel.SetValue(4))
	s.Assert().True(sel.ReadOnly())
	s.Assert().Equal(3, sel.Normalize(4))
}

func TestSelectorInvariantsProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("stored value is in range and never forbidden above minimum", prop.ForAll(
		func(lo, span, input int, forbidden []int) bool {
			sel, err := selector.New(lo, lo+span)
			if err != nil {
				return false
			}
			sel.SetForbiddenValues(forbidden)
			v := sel.SetValue(input)
			if v < sel.Minimum() || v > sel.Maximum() {
				return false
			}
			return v == sel.Minimum() || !sel.IsForbidden(v)
		},
		gen.IntRange(-5, 5),
		gen.IntRange(0, 10),
		gen.IntRange(-20, 20),
		gen.SliceOf(gen.IntRange(-10, 20)),
	))

	properties.Property("normalizing is idempotent", prop.ForAll(
		func(input int, forbidden []int) bool {
			sel, err := selector.New(0, 5)
			if err != nil {
				return false
			}
			sel.SetForbiddenValues(forbidden)
			once := sel.SetValue(input)
			return sel.SetValue(once) == once
		},
		gen.IntRange(-10, 10),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("stored value is the largest allowed value not above the clamped input", prop.ForAll(
		func(input int, forbidden []int) bool {
			sel, err := selector.New(0, 5)
			if err != nil {
				return false
			}
			sel.SetForbiddenValues(forbidden)
			v := sel.SetValue(input)
			clamped := min(max(input, 0), 5)
			for x := v + 1; x <= clamped; x++ {
				if !sel.IsForbidden(x) {
					return false
				}
			}
			return v <= clamped
		},
		gen.IntRange(-10, 10),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}
