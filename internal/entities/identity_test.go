package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

type IdentityTestSuite struct {
	suite.Suite
}

func TestIdentitySuite(t *testing.T) {
	suite.Run(t, new(IdentityTestSuite))
}

func (s *IdentityTestSuite) TestNameComposition() {
	id := entities.Identity{
		Forenames: []string{"Anna", "Maria"},
		Surname:   "Schmidt",
		HonorName: "the Bold",
		Nickname:  "Annie",
	}

	s.Assert().Equal("Anna Schmidt", id.RealName())
	s.Assert().Equal("Anna Maria Schmidt", id.FullName())
	s.Assert().Equal(`Anna "Annie" Schmidt`, id.DisplayName())
	s.Assert().Equal("Anna the Bold", id.HonorDisplayName())
}

func (s *IdentityTestSuite) TestNameCompositionWithGaps() {
	s.Assert().Equal("Schmidt", entities.NewIdentity("Schmidt", "").RealName())
	s.Assert().Equal("Anna", entities.NewIdentity("", "Anna").RealName())
	s.Assert().Equal(`"Ace"`, entities.Identity{Nickname: "Ace"}.DisplayName())
	s.Assert().True(entities.Identity{}.IsEmpty())
	s.Assert().False(entities.NewIdentity("", "Anna").IsEmpty())
}

func (s *IdentityTestSuite) TestResetEmpties() {
	list := entities.IdentityList{entities.NewIdentity("A", "B")}
	list.Reset()
	s.Assert().Empty(list)
	s.Assert().Equal("", list.RealName())
}

func (s *IdentityTestSuite) TestRealNameAlwaysReadsFirst() {
	var list entities.IdentityList
	list.Add(entities.NewIdentity("Doe", "Jane"))
	list.Add(entities.NewIdentity("Roe", "Richard"))

	s.Assert().Equal("Jane Doe", list.RealName())

	list.Insert(0, entities.NewIdentity("Alias", "Front"))
	s.Assert().Equal("Jane Doe", list.RealName())
	s.Assert().Equal("Front Alias", list[1].RealName())

	list.Insert(99, entities.NewIdentity("Last", "Very"))
	s.Assert().Equal("Very Last", list[len(list)-1].RealName())
	s.Assert().Len(list, 4)
}

func (s *IdentityTestSuite) TestInsertIntoEmptyBecomesReal() {
	var list entities.IdentityList
	list.Insert(3, entities.NewIdentity("Doe", "Jane"))
	s.Assert().Equal("Jane Doe", list.RealName())
}

func (s *IdentityTestSuite) TestSetReal() {
	var list entities.IdentityList
	list.SetReal(entities.NewIdentity("Doe", "Jane"))
	list.Add(entities.NewIdentity("Roe", "Rick"))
	list.SetReal(entities.NewIdentity("Doe", "Janet"))

	s.Assert().Equal("Janet Doe", list.RealName())
	s.Assert().Len(list, 2)
}
