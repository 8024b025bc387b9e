package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/i18n"
)

type I18nTestSuite struct {
	suite.Suite
	catalog *i18n.Catalog
}

func TestI18nSuite(t *testing.T) {
	suite.Run(t, new(I18nTestSuite))
}

func (s *I18nTestSuite) SetupTest() {
	c, err := i18n.Default()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *I18nTestSuite) TestGermanCoversEveryDisplayName() {
	german := s.catalog.Messages(language.German)

	var names []string
	for _, plural := range []bool{false, true} {
		for _, t := range taxonomy.AllTypes() {
			names = append(names, t.DisplayName(plural))
		}
		for _, c := range taxonomy.AllCategories() {
			names = append(names, c.DisplayName(plural))
		}
		for _, e := range taxonomy.AllEras() {
			names = append(names, e.DisplayName(plural))
		}
		for _, a := range taxonomy.AllAges() {
			names = append(names, a.DisplayName(plural))
		}
		for _, sp := range taxonomy.AllSpecies() {
			names = append(names, sp.DisplayName(plural))
		}
		names = append(names,
			taxonomy.SpeciesNone.DisplayName(plural),
			taxonomy.SpeciesAll.DisplayName(plural),
		)
	}

	for _, name := range names {
		s.Assert().Contains(german, name)
	}
}

func (s *I18nTestSuite) TestPrinter() {
	de, err := i18n.Printer("de-AT")
	s.Require().NoError(err)
	s.Assert().Equal("Fertigkeiten", i18n.Name(de, taxonomy.TypeSkill, true))
	s.Assert().Equal("Körperlich", i18n.Name(de, taxonomy.CategoryPhysical, false))
	s.Assert().Equal("Zeitalter der Vernunft", i18n.Name(de, taxonomy.EraReason, false))
	s.Assert().Equal("Werwölfe", i18n.SpeciesName(de, taxonomy.SpeciesWerewolf, true))
	s.Assert().Equal("Magier/Werwolf", i18n.SpeciesName(de, taxonomy.SpeciesMage|taxonomy.SpeciesWerewolf, false))
	s.Assert().Equal("Alle Spezies", i18n.SpeciesName(de, taxonomy.SpeciesAll, false))

	fr, err := i18n.Printer("fr")
	s.Require().NoError(err)
	s.Assert().Equal("Skills", i18n.Name(fr, taxonomy.TypeSkill, true))

	en, err := i18n.Printer("")
	s.Require().NoError(err)
	s.Assert().Equal("Werewolves", i18n.SpeciesName(en, taxonomy.SpeciesWerewolf, true))

	_, err = i18n.Printer("not a language!")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *I18nTestSuite) TestLoadFailures() {
	_, err := i18n.Load(fstest.MapFS{}, "locales")
	s.Assert().True(errors.IsKind(err, errors.KindFileNotOpened))

	_, err = i18n.Load(fstest.MapFS{
		"locales/de.yaml": &fstest.MapFile{Data: []byte("locale: fr\nmessages:\n  Skill: Compétence\n")},
	}, "locales")
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = i18n.Load(fstest.MapFS{
		"locales/de.yaml": &fstest.MapFile{Data: []byte("locale: de\n")},
	}, "locales")
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = i18n.Load(fstest.MapFS{
		"locales/de.yaml": &fstest.MapFile{Data: []byte("locale: [de\n")},
	}, "locales")
	s.Assert().Error(err)
}
