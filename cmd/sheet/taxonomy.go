package main

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/i18n"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy [types|categories|eras|ages|species]",
	Short: "List the classification tokens and their display names",
	Long: `List every value of a closed classification set with its XML token and
its singular and plural display names in the configured language.

  sheet taxonomy types
  sheet taxonomy species --lang de`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"types", "categories", "eras", "ages", "species"},
	RunE:      runTaxonomy,
}

type classified interface {
	XMLToken() (string, error)
	DisplayName(plural bool) string
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	p, err := printer()
	if err != nil {
		return err
	}

	var values []classified
	switch strings.ToLower(args[0]) {
	case "types":
		for _, t := range taxonomy.AllTypes() {
			values = append(values, t)
		}
	case "categories":
		for _, c := range taxonomy.AllCategories() {
			values = append(values, c)
		}
	case "eras":
		for _, e := range taxonomy.AllEras() {
			values = append(values, e)
		}
	case "ages":
		for _, a := range taxonomy.AllAges() {
			values = append(values, a)
		}
	case "species":
		for _, s := range taxonomy.AllSpecies() {
			values = append(values, s)
		}
		values = append(values, taxonomy.SpeciesAll)
	default:
		return errors.InvalidArgumentf("unknown set %q", args[0])
	}

	rows, err := taxonomyRows(p, values)
	if err != nil {
		return err
	}
	printTable([]string{"TOKEN", "NAME", "PLURAL", "CATEGORIES"}, rows)
	return nil
}

func taxonomyRows(p *message.Printer, values []classified) ([][]string, error) {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		token, err := v.XMLToken()
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{token, i18n.Name(p, v, false), i18n.Name(p, v, true), categoriesOf(p, v)})
	}
	return rows, nil
}

func categoriesOf(p *message.Printer, v classified) string {
	t, ok := v.(taxonomy.Type)
	if !ok {
		return ""
	}
	var names []string
	for _, c := range taxonomy.CategoriesFor(t) {
		names = append(names, i18n.Name(p, c, false))
	}
	return strings.Join(names, ", ")
}
