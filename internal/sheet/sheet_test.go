package sheet_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/forms"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/prerequisites"
	"github.com/KirkDiggler/rpg-sheet/internal/sheet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type SheetTestSuite struct {
	suite.Suite
	ctx    context.Context
	bus    events.EventBus
	clock  *clock.Fixed
	sheet  *sheet.Sheet
	traits []*entities.TraitEntity
	chars  []string
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func (s *SheetTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.clock = clock.NewFixed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.traits = nil
	s.chars = nil

	s.bus.SubscribeFunc(entities.EventTraitValueChanged, 0, func(_ context.Context, e events.Event) error {
		s.traits = append(s.traits, e.Source().(*entities.TraitEntity))
		return nil
	})
	for _, typ := range []string{
		entities.EventCharacterSpeciesChanged,
		entities.EventCharacterBreedChanged,
		entities.EventCharacterMoralityChanged,
	} {
		s.bus.SubscribeFunc(typ, 0, func(_ context.Context, e events.Event) error {
			s.chars = append(s.chars, e.Type())
			return nil
		})
	}

	s.sheet = s.newSheet(&entities.Character{
		ID:        "char_1",
		Species:   taxonomy.SpeciesWerewolf,
		Era:       taxonomy.EraModern,
		AgeYears:  30,
		Morality:  7,
		Powerstat: 1,
		Traits: []*entities.Trait{
			{Name: "Strength", Type: taxonomy.TypeAttribute, Category: taxonomy.CategoryPhysical, Species: taxonomy.SpeciesAll, Value: 2},
			{Name: "Brawl", Type: taxonomy.TypeSkill, Category: taxonomy.CategoryPhysical, Species: taxonomy.SpeciesAll, Value: 1},
		},
	})
}

func (s *SheetTestSuite) newSheet(char *entities.Character) *sheet.Sheet {
	sh, err := sheet.New(&sheet.Config{
		Character: char,
		EventBus:  s.bus,
		Clock:     s.clock,
	})
	s.Require().NoError(err)
	return sh
}

func (s *SheetTestSuite) TestConfigValidation() {
	_, err := sheet.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = sheet.New(&sheet.Config{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Character")
	s.Assert().Contains(err.Error(), "EventBus")
}

func (s *SheetTestSuite) TestOpenNormalizesStoredValues() {
	sh := s.newSheet(&entities.Character{
		ID:        "char_2",
		Species:   taxonomy.SpeciesHuman,
		Morality:  14,
		Powerstat: 0,
		Traits: []*entities.Trait{
			{Name: "Wits", Type: taxonomy.TypeAttribute, Value: 0},
			{Name: "Occult", Type: taxonomy.TypeSkill, Value: 9},
		},
	})

	snap := sh.Snapshot()
	s.Assert().Equal(10, snap.Morality)
	s.Assert().Equal(1, snap.Powerstat)
	s.Assert().Equal(1, snap.Traits[0].Value)
	s.Assert().Equal(5, snap.Traits[1].Value)
	s.Assert().False(sh.Modified())
}

func (s *SheetTestSuite) TestOpenRejectsDuplicateTraits() {
	_, err := sheet.New(&sheet.Config{
		Character: &entities.Character{Traits: []*entities.Trait{
			{Name: "Wits", Type: taxonomy.TypeAttribute},
			{Name: "Wits", Type: taxonomy.TypeAttribute},
		}},
		EventBus: s.bus,
	})
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *SheetTestSuite) TestSetValueClampsAndPublishes() {
	h, err := s.sheet.Trait(taxonomy.TypeAttribute, "Strength")
	s.Require().NoError(err)

	got, err := h.SetValue(s.ctx, 7)
	s.Require().NoError(err)
	s.Assert().Equal(5, got)

	got, err = h.SetValue(s.ctx, 0)
	s.Require().NoError(err)
	s.Assert().Equal(1, got)

	s.Require().Len(s.traits, 2)
	s.Assert().Equal(2, s.traits[0].Previous)
	s.Assert().Equal(5, s.traits[0].Value)
	s.Assert().Equal("char_1", s.traits[0].CharacterID)
	s.Assert().Equal(taxonomy.SpeciesWerewolf, s.traits[0].CharacterSpecies)
	s.Assert().Equal(1, s.traits[1].Value)

	s.Assert().True(s.sheet.Modified())
	s.Assert().Equal(s.clock.Now().Unix(), s.sheet.Snapshot().UpdatedAt)
}

func (s *SheetTestSuite) TestUnchangedValueIsSilent() {
	h, err := s.sheet.Trait(taxonomy.TypeSkill, "Brawl")
	s.Require().NoError(err)

	_, err = h.SetValue(s.ctx, 1)
	s.Require().NoError(err)
	s.Assert().Empty(s.traits)
	s.Assert().False(s.sheet.Modified())
}

func (s *SheetTestSuite) TestAllowedValues() {
	h, err := s.sheet.AddTrait(&entities.Trait{
		Name:   "Resources",
		Type:   taxonomy.TypeMerit,
		Values: []int{1, 3},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]int{0, 1, 3}, h.Allowed())

	got, err := h.SetValue(s.ctx, 2)
	s.Require().NoError(err)
	s.Assert().Equal(1, got)

	got, err = h.SetValue(s.ctx, 5)
	s.Require().NoError(err)
	s.Assert().Equal(3, got)

	s.Assert().Equal(taxonomy.SpeciesAll, h.Trait().Species)
}

func (s *SheetTestSuite) TestAddTraitValidation() {
	_, err := s.sheet.AddTrait(&entities.Trait{Name: "Brawl", Type: taxonomy.TypeSkill})
	s.Assert().True(errors.IsAlreadyExists(err))

	_, err = s.sheet.AddTrait(&entities.Trait{Name: "Odd", Type: taxonomy.Type(99)})
	s.Assert().True(errors.IsKind(err, errors.KindInvalidTraitType))

	_, err = s.sheet.AddTrait(&entities.Trait{Type: taxonomy.TypeSkill})
	s.Assert().True(errors.IsKind(err, errors.KindMissingUserEntry))

	_, err = s.sheet.Trait(taxonomy.TypeSkill, "Occult")
	s.Assert().True(errors.IsKind(err, errors.KindTraitNotFound))
}

func (s *SheetTestSuite) TestTraitsInOrder() {
	_, err := s.sheet.AddTrait(&entities.Trait{Name: "Academics", Type: taxonomy.TypeSkill, Category: taxonomy.CategoryMental})
	s.Require().NoError(err)

	all := s.sheet.Traits(taxonomy.TypeSkill)
	s.Require().Len(all, 2)
	s.Assert().Equal("Brawl", all[0].Name())
	s.Assert().Equal("Academics", all[1].Name())

	mental := s.sheet.Traits(taxonomy.TypeSkill, taxonomy.CategoryMental)
	s.Require().Len(mental, 1)
	s.Assert().Equal("Academics", mental[0].Name())
}

func (s *SheetTestSuite) TestReadOnlyIgnoresClicks() {
	h, err := s.sheet.Trait(taxonomy.TypeSkill, "Brawl")
	s.Require().NoError(err)

	s.sheet.SetReadOnly(true)
	got, ok, err := h.Click(s.ctx, 4)
	s.Require().NoError(err)
	s.Assert().False(ok)
	s.Assert().Equal(1, got)

	s.sheet.SetReadOnly(false)
	got, ok, err = h.Click(s.ctx, 4)
	s.Require().NoError(err)
	s.Assert().True(ok)
	s.Assert().Equal(4, got)
}

func (s *SheetTestSuite) TestHandlersMayReadTheSheet() {
	var seen int
	s.bus.SubscribeFunc(entities.EventTraitValueChanged, 10, func(_ context.Context, _ events.Event) error {
		t, _ := s.sheet.Snapshot().Trait(taxonomy.TypeSkill, "Brawl")
		seen = t.Value
		return nil
	})

	h, err := s.sheet.Trait(taxonomy.TypeSkill, "Brawl")
	s.Require().NoError(err)
	_, err = h.SetValue(s.ctx, 3)
	s.Require().NoError(err)
	s.Assert().Equal(3, seen)
}

func (s *SheetTestSuite) TestSetSpecies() {
	s.Require().NoError(s.sheet.SetBreed(s.ctx, "Rahu"))

	err := s.sheet.SetSpecies(s.ctx, taxonomy.SpeciesAll)
	s.Assert().True(errors.IsKind(err, errors.KindSpeciesNotFound))

	s.Require().NoError(s.sheet.SetSpecies(s.ctx, taxonomy.SpeciesMage))
	s.Assert().Equal(taxonomy.SpeciesMage, s.sheet.Species())
	s.Assert().Empty(s.sheet.Snapshot().Breed)
	s.Assert().Equal([]string{
		entities.EventCharacterBreedChanged,
		entities.EventCharacterSpeciesChanged,
	}, s.chars)
}

func (s *SheetTestSuite) TestMoralityAndDerangements() {
	mild := &entities.Derangement{
		Trait:    entities.Trait{Name: "Depression", Species: taxonomy.SpeciesAll},
		Morality: 7,
	}
	deep := &entities.Derangement{
		Trait:    entities.Trait{Name: "Paranoia", Species: taxonomy.SpeciesAll},
		Morality: 5,
	}
	templates := []*entities.Derangement{mild, deep}

	s.Assert().Equal([]*entities.Derangement{mild}, s.sheet.AvailableDerangements(templates))

	err := s.sheet.AddDerangement(deep)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.sheet.AddDerangement(mild))
	s.Assert().True(errors.IsAlreadyExists(s.sheet.AddDerangement(mild)))

	got, err := s.sheet.SetMorality(s.ctx, 12)
	s.Require().NoError(err)
	s.Assert().Equal(10, got)
	s.Assert().Empty(s.sheet.Derangements())
	s.Assert().Equal([]string{entities.EventCharacterMoralityChanged}, s.chars)

	_, err = s.sheet.SetMorality(s.ctx, 4)
	s.Require().NoError(err)
	s.Assert().Len(s.sheet.AvailableDerangements(templates), 2)
	s.Require().NoError(s.sheet.AddDerangement(deep))
	s.Require().NoError(s.sheet.RemoveDerangement("Paranoia"))
	s.Assert().True(errors.IsNotFound(s.sheet.RemoveDerangement("Paranoia")))

	tooHigh := &entities.Derangement{Trait: entities.Trait{Name: "Fixation"}, Morality: 8}
	s.Assert().True(errors.IsInvalidArgument(s.sheet.AddDerangement(tooHigh)))
}

func (s *SheetTestSuite) TestReset() {
	h, err := s.sheet.Trait(taxonomy.TypeSkill, "Brawl")
	s.Require().NoError(err)
	_, err = h.SetValue(s.ctx, 4)
	s.Require().NoError(err)
	_, err = s.sheet.SetMorality(s.ctx, 3)
	s.Require().NoError(err)
	s.sheet.AddIdentity(entities.NewIdentity("Smith", "Ann"))
	s.traits = nil
	s.chars = nil

	s.Require().NoError(s.sheet.Reset(s.ctx))

	snap := s.sheet.Snapshot()
	s.Assert().Empty(snap.Identities)
	s.Assert().Equal(taxonomy.SpeciesWerewolf, snap.Species)
	s.Assert().Equal(entities.MoralityDefault, s.sheet.Morality())
	s.Assert().Equal(1, snap.Traits[0].Value)
	s.Assert().Equal(0, snap.Traits[1].Value)

	s.Require().Len(s.traits, 2)
	s.Assert().Equal("Strength", s.traits[0].Name)
	s.Assert().Equal(2, s.traits[0].Previous)
	s.Assert().Equal("Brawl", s.traits[1].Name)
	s.Assert().Equal(4, s.traits[1].Previous)
	s.Assert().Equal([]string{entities.EventCharacterMoralityChanged}, s.chars)
}

func (s *SheetTestSuite) TestReclassify() {
	h, err := s.sheet.AddTrait(&entities.Trait{Name: "Stubborn", Type: taxonomy.TypeNone, Value: 3})
	s.Require().NoError(err)

	s.Require().NoError(h.Reclassify(s.ctx, taxonomy.TypeAttribute, taxonomy.CategoryMental))
	_, err = s.sheet.Trait(taxonomy.TypeAttribute, "Stubborn")
	s.Require().NoError(err)
	_, err = s.sheet.Trait(taxonomy.TypeNone, "Stubborn")
	s.Assert().Error(err)

	minimum, maximum := h.Range()
	s.Assert().Equal(1, minimum)
	s.Assert().Equal(5, maximum)

	err = h.Reclassify(s.ctx, taxonomy.TypeSkill, taxonomy.CategoryMental)
	s.Assert().True(errors.IsKind(err, errors.KindInvalidTraitType))

	s.Assert().NoError(h.SetCategory(taxonomy.CategoryMental))
	err = h.SetCategory(taxonomy.CategorySocial)
	s.Assert().True(errors.IsKind(err, errors.KindInvalidTraitCategory))
}

func (s *SheetTestSuite) TestIdentities() {
	s.sheet.InsertIdentity(3, entities.NewIdentity("Smith", "Ann"))
	s.sheet.AddIdentity(entities.Identity{Nickname: "Red"})
	s.sheet.InsertIdentity(0, entities.Identity{Nickname: "Fox"})

	ids := s.sheet.Identities()
	s.Require().Len(ids, 3)
	s.Assert().Equal("Ann Smith", ids.RealName())
	s.Assert().Equal("Fox", ids[1].Nickname)

	s.sheet.SetRealIdentity(entities.NewIdentity("Jones", "Bea"))
	s.Assert().Equal("Bea Jones", s.sheet.Identities().RealName())
}

func (s *SheetTestSuite) TestAvailable() {
	eval, err := prerequisites.NewEvaluator()
	s.Require().NoError(err)
	sh, err := sheet.New(&sheet.Config{
		Character:     s.sheet.Snapshot(),
		EventBus:      s.bus,
		Prerequisites: eval,
	})
	s.Require().NoError(err)

	merit, err := sh.AddTrait(&entities.Trait{
		Name:          "Iron Stamina",
		Type:          taxonomy.TypeMerit,
		Species:       taxonomy.SpeciesAll,
		Prerequisites: []string{"Strength > 2 or Brawl > 2"},
	})
	s.Require().NoError(err)
	s.Assert().False(sh.Available(s.ctx, merit))

	brawl, err := sh.Trait(taxonomy.TypeSkill, "Brawl")
	s.Require().NoError(err)
	_, err = brawl.SetValue(s.ctx, 3)
	s.Require().NoError(err)
	s.Assert().True(sh.Available(s.ctx, merit))

	mageOnly, err := sh.AddTrait(&entities.Trait{Name: "Gnosis", Type: taxonomy.TypePower, Species: taxonomy.SpeciesMage})
	s.Require().NoError(err)
	s.Assert().False(sh.Available(s.ctx, mageOnly))

	unknown, err := sh.AddTrait(&entities.Trait{
		Name:          "Titan Grip",
		Type:          taxonomy.TypeMerit,
		Species:       taxonomy.SpeciesAll,
		Prerequisites: []string{"Strength > 2 and Vigor > 1"},
	})
	s.Require().NoError(err)
	s.Assert().False(sh.Available(s.ctx, unknown))
}

func (s *SheetTestSuite) TestDrivesFormWatcher() {
	set, err := forms.DefaultSet()
	s.Require().NoError(err)
	watcher, err := forms.NewWatcher(&forms.WatcherConfig{EventBus: s.bus, Calculators: set})
	s.Require().NoError(err)
	watcher.Start()
	defer func() { s.Require().NoError(watcher.Stop()) }()

	h, err := s.sheet.Trait(taxonomy.TypeAttribute, "Strength")
	s.Require().NoError(err)
	_, err = h.SetValue(s.ctx, 3)
	s.Require().NoError(err)

	u, ok := watcher.Display("char_1", forms.Strength)
	s.Require().True(ok)
	s.Assert().Equal("4/6/5/3", u.Display)
}
