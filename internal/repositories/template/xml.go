package template

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Template file identity
const (
	// RootElement is the root tag every template file carries.
	RootElement = "SoulCreator"
	// FormatVersion is the template format this build writes and reads.
	FormatVersion = "0.16.0"
	// MinimumMinor is the oldest minor version of the current major that
	// still loads.
	MinimumMinor = 7
)

type xmlDocument struct {
	XMLName  xml.Name
	Version  string      `xml:"version,attr"`
	Template xmlTemplate `xml:"Template"`
}

type xmlTemplate struct {
	Species string    `xml:"species,attr"`
	Traits  xmlTraits `xml:"Traits"`
	Group   xmlGroups `xml:"Group"`
}

type xmlTraits struct {
	Morale      string             `xml:"morale,attr"`
	Powerstat   string             `xml:"powerstat,attr"`
	Fuel        string             `xml:"fuel,attr"`
	Virtue      xmlTraitList       `xml:"Virtue"`
	Vice        xmlTraitList       `xml:"Vice"`
	Attribute   xmlSection         `xml:"Attribute"`
	Skill       xmlSection         `xml:"Skill"`
	Merit       xmlSection         `xml:"Merit"`
	Power       xmlSection         `xml:"Power"`
	Derangement xmlDerangementList `xml:"Derangement"`
}

type xmlTraitList struct {
	Traits []xmlTrait `xml:"trait"`
}

type xmlSection struct {
	Name       string        `xml:"name,attr"`
	Categories []xmlCategory `xml:"Category"`
}

type xmlCategory struct {
	Name   string     `xml:"name,attr"`
	Traits []xmlTrait `xml:"trait"`
}

type xmlTrait struct {
	Name          string   `xml:"name,attr"`
	Era           string   `xml:"era,attr"`
	Age           string   `xml:"age,attr"`
	Custom        bool     `xml:"custom,attr"`
	Specialties   []string `xml:"specialty"`
	Prerequisites []string `xml:"prerequisites"`
	Values        []int    `xml:"value"`
}

type xmlDerangementList struct {
	Mild []xmlMild `xml:"mild"`
}

type xmlMild struct {
	Name     string      `xml:"name,attr"`
	Morality int         `xml:"morality,attr"`
	Severe   []xmlSevere `xml:"severe"`
}

type xmlSevere struct {
	Name     string `xml:"name,attr"`
	Morality int    `xml:"morality,attr"`
}

type xmlGroups struct {
	Breed   xmlGroup `xml:"Breed"`
	Faction xmlGroup `xml:"Faction"`
}

type xmlGroup struct {
	Name  string `xml:"name,attr"`
	Items []struct {
		Name string `xml:"name,attr"`
	} `xml:"item"`
}

// document is one decoded template file.
type document struct {
	name         string
	species      taxonomy.Species
	general      bool
	info         SpeciesInfo
	traits       []*entities.Trait
	derangements []*entities.Derangement
}

// decodeDocument reads one template file. name is used in errors only.
func decodeDocument(ctx context.Context, r io.Reader, name string) (*document, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.XMLParseError(name, err)
	}
	if err := checkVersion(ctx, name, doc.XMLName.Local, doc.Version); err != nil {
		return nil, err
	}

	out := &document{name: name, species: taxonomy.SpeciesAll, general: true}
	if token := strings.TrimSpace(doc.Template.Species); token != "" {
		species, err := taxonomy.LookupSpecies(token)
		if err != nil {
			return nil, errors.Wrapf(err, "template %s", name)
		}
		out.species = species
		out.general = false
	}

	traits := doc.Template.Traits
	out.info = SpeciesInfo{
		Species:      out.species,
		Morale:       traits.Morale,
		Powerstat:    traits.Powerstat,
		Fuel:         traits.Fuel,
		PowerName:    traits.Power.Name,
		BreedTitle:   doc.Template.Group.Breed.Name,
		FactionTitle: doc.Template.Group.Faction.Name,
	}
	for _, item := range doc.Template.Group.Breed.Items {
		out.info.Breeds = append(out.info.Breeds, item.Name)
	}
	for _, item := range doc.Template.Group.Faction.Items {
		out.info.Factions = append(out.info.Factions, item.Name)
	}

	vb := errors.NewValidationBuilder()
	add := func(typ taxonomy.Type, category taxonomy.Category, list []xmlTrait) {
		for i, t := range list {
			if strings.TrimSpace(t.Name) == "" {
				vb.Fieldf(fmt.Sprintf("%s[%d]", typ, i), "trait without name")
				continue
			}
			out.traits = append(out.traits, &entities.Trait{
				Name:          t.Name,
				Type:          typ,
				Category:      category,
				Species:       out.species,
				Era:           taxonomy.ParseEra(t.Era),
				Age:           taxonomy.ParseAge(t.Age),
				Custom:        t.Custom,
				Details:       t.Specialties,
				Prerequisites: t.Prerequisites,
				Values:        t.Values,
			})
		}
	}
	add(taxonomy.TypeVirtue, taxonomy.CategoryNone, traits.Virtue.Traits)
	add(taxonomy.TypeVice, taxonomy.CategoryNone, traits.Vice.Traits)
	for _, section := range []struct {
		typ taxonomy.Type
		xml xmlSection
	}{
		{taxonomy.TypeAttribute, traits.Attribute},
		{taxonomy.TypeSkill, traits.Skill},
		{taxonomy.TypeMerit, traits.Merit},
		{taxonomy.TypePower, traits.Power},
	} {
		for _, cat := range section.xml.Categories {
			add(section.typ, taxonomy.ParseCategory(cat.Name), cat.Traits)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "template %s", name)
	}

	for _, mild := range traits.Derangement.Mild {
		severeNames := make([]string, 0, len(mild.Severe))
		for _, severe := range mild.Severe {
			out.derangements = append(out.derangements, newDerangement(severe.Name, severe.Morality, true, nil, out.species))
			severeNames = append(severeNames, severe.Name)
		}
		out.derangements = append(out.derangements, newDerangement(mild.Name, mild.Morality, false, severeNames, out.species))
	}
	return out, nil
}

func newDerangement(name string, morality int, severe bool, forms []string, species taxonomy.Species) *entities.Derangement {
	if morality == 0 {
		morality = entities.DerangementMoralityMax
	}
	return &entities.Derangement{
		Trait:       entities.Trait{Name: name, Species: species},
		Morality:    morality,
		Severe:      severe,
		SevereForms: forms,
	}
}

// checkVersion accepts files of the current major version whose minor is
// at least MinimumMinor and which are not newer than FormatVersion. Files
// older than FormatVersion load with a warning.
func checkVersion(ctx context.Context, name, root, version string) error {
	expected := RootElement + " " + FormatVersion
	if root != RootElement {
		return errors.XMLVersionMismatch(expected, strings.TrimSpace(root+" "+version))
	}

	current := semver.MustParse(FormatVersion)
	got, err := semver.NewVersion(version)
	if err != nil {
		return errors.XMLVersionMismatch(expected, root+" "+version).WithCause(err)
	}
	if got.Equal(current) {
		return nil
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d.0, <= %s",
		current.Major(), MinimumMinor, FormatVersion))
	if err != nil {
		return errors.Wrap(err, "invalid version constraint")
	}
	if !constraint.Check(got) {
		return errors.XMLVersionMismatch(expected, root+" "+version)
	}

	slog.WarnContext(ctx, "Template file has an older version, loading anyway",
		"file", name,
		"version", version,
		"expected", FormatVersion)
	return nil
}
