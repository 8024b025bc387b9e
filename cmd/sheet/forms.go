package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/forms"
)

var (
	formsSpecies string
	formsTable   string
)

var formsCmd = &cobra.Command{
	Use:   "forms <base>",
	Short: "Show the per-form values of the form-dependent attributes",
	Long: `Derive strength, dexterity, stamina and manipulation for every alternate
form from one base rating. The home form is the base itself and is not listed.

  sheet forms 3
  sheet forms 3 --table ./my-werewolf.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runForms,
}

func init() {
	formsCmd.Flags().StringVar(&formsSpecies, "species", "Werewolf", "species whose form table to use")
	formsCmd.Flags().StringVar(&formsTable, "table", "", "YAML modifier table to use instead of the built-in ones")
}

func runForms(cmd *cobra.Command, args []string) error {
	base, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	calc, err := loadCalculator()
	if err != nil {
		return err
	}

	headers, rows := formRows(calc, base)
	printTable(headers, rows)
	return nil
}

// formRows has one row per form-dependent attribute with a column per
// alternate form.
func formRows(calc *forms.Calculator, base int) ([]string, [][]string) {
	headers := append([]string{"ATTRIBUTE"}, calc.Forms()[1:]...)
	headers = append(headers, "DISPLAY")

	rows := make([][]string, 0, len(forms.Attributes()))
	for _, attr := range forms.Attributes() {
		cells := []string{attr.TraitName()}
		for _, v := range calc.Derived(attr, base) {
			cells = append(cells, strconv.Itoa(v))
		}
		cells = append(cells, calc.Display(attr, base))
		rows = append(rows, cells)
	}
	return headers, rows
}

func loadCalculator() (*forms.Calculator, error) {
	if formsTable != "" {
		f, err := os.Open(formsTable)
		if err != nil {
			return nil, errors.FileNotOpened(formsTable, err)
		}
		defer f.Close()

		table, err := forms.DecodeTable(f)
		if err != nil {
			return nil, err
		}
		return forms.NewCalculator(table)
	}

	species, err := taxonomy.LookupSpecies(formsSpecies)
	if err != nil {
		return nil, err
	}
	set, err := forms.DefaultSet()
	if err != nil {
		return nil, err
	}
	calc, ok := set.Lookup(species)
	if !ok {
		return nil, errors.FormNotFound(formsSpecies, 1)
	}
	return calc, nil
}
