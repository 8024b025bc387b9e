package idgen_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("char")
	s.Assert().Equal("char_1", gen.Generate())
	s.Assert().Equal("char_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestCharacterIDs() {
	id := idgen.NewCharacterIDs().Generate()
	s.Require().True(strings.HasPrefix(id, idgen.CharacterPrefix+"_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, idgen.CharacterPrefix+"_"))
	s.Assert().NoError(err)
}

func (s *IDGenTestSuite) TestRollIDsAreStampedAndUnique() {
	clk := clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	gen := idgen.NewRollIDs(clk)

	a, b := gen.Generate(), gen.Generate()
	s.Assert().NotEqual(a, b)

	parts := strings.Split(a, "_")
	s.Require().Len(parts, 3)
	s.Assert().Equal(idgen.RollPrefix, parts[0])
	millis, err := strconv.ParseInt(parts[1], 36, 64)
	s.Require().NoError(err)
	s.Assert().Equal(clk.Now().UnixMilli(), millis)
	s.Assert().Len(parts[2], 8)
}

func (s *IDGenTestSuite) TestTimeOrderedSorts() {
	clk := clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	gen := idgen.NewTimeOrdered("roll", clk)

	first := gen.Generate()
	clk.Advance(time.Second)
	second := gen.Generate()
	s.Assert().Less(first, second)
}
