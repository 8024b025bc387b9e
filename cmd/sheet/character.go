package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/i18n"
	diceorch "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

var (
	createSpecies string
	createFirst   string
	createSurname string
	createEra     string
	createAge     int

	listSpecies string

	rollModifier int
	rollAgain    int

	historyLimit int
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Create, inspect and edit stored characters",
}

var createCharacterCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character from the species templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			species, err := taxonomy.LookupSpecies(createSpecies)
			if err != nil {
				return err
			}
			out, err := a.characters.CreateCharacter(ctx, &character.CreateCharacterInput{
				Species:   species,
				FirstName: createFirst,
				Surname:   createSurname,
				Era:       taxonomy.ParseEra(createEra),
				AgeYears:  createAge,
			})
			if err != nil {
				return err
			}
			return printSheet(out.Sheet)
		})
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			input := &character.ListCharactersInput{}
			if listSpecies != "" {
				species, err := taxonomy.LookupSpecies(listSpecies)
				if err != nil {
					return err
				}
				input.Species = species
			}
			out, err := a.characters.ListCharacters(ctx, input)
			if err != nil {
				return err
			}

			p, err := printer()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Characters))
			for _, c := range out.Characters {
				rows = append(rows, []string{c.ID, c.Identities.RealName(), i18n.SpeciesName(p, c.Species, false)})
			}
			printTable([]string{"ID", "NAME", "SPECIES"}, rows)
			return nil
		})
	},
}

var showCharacterCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.characters.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: args[0]})
			if err != nil {
				return err
			}
			return printSheet(out.Sheet)
		})
	},
}

var setTraitCmd = &cobra.Command{
	Use:   "set <id> <trait> <value>",
	Short: "Rate a trait",
	Long: `Rate a trait by name. The stored rating is normalized to what the trait
allows and the per-form values are printed for form-dependent attributes.

  sheet character set char_1234 Strength 4`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseNumber(args[2])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			refs, err := resolveTraits(ctx, a, args[0], args[1:2])
			if err != nil {
				return err
			}
			out, err := a.characters.SetTraitValue(ctx, &character.SetTraitValueInput{
				CharacterID: args[0],
				Trait:       refs[0],
				Value:       value,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d\n", args[1], out.Value)
			for _, u := range out.Sheet.Forms {
				if strings.EqualFold(u.Attribute.TraitName(), args[1]) {
					fmt.Printf("forms: %s\n", u.Display)
				}
			}
			return nil
		})
	},
}

var moralityCmd = &cobra.Command{
	Use:   "morality <id> <value>",
	Short: "Set morality, dropping derangements it no longer allows",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseNumber(args[1])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.characters.SetMorality(ctx, &character.SetMoralityInput{CharacterID: args[0], Value: value})
			if err != nil {
				return err
			}
			fmt.Printf("morality: %d\n", out.Value)
			if len(out.Dropped) > 0 {
				fmt.Printf("dropped: %s\n", strings.Join(out.Dropped, ", "))
			}
			return nil
		})
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll <id> <trait>...",
	Short: "Roll a dice pool built from traits",
	Long: `Roll one d10 per dot of the named traits plus the modifier. Eights and up
succeed, tens roll again. A pool of zero or less rolls a chance die.

  sheet character roll char_1234 Strength Brawl --modifier 2`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			refs, err := resolveTraits(ctx, a, args[0], args[1:])
			if err != nil {
				return err
			}
			out, err := a.characters.RollTraits(ctx, &character.RollTraitsInput{
				CharacterID: args[0],
				Traits:      refs,
				Modifier:    rollModifier,
				Again:       rollAgain,
			})
			if err != nil {
				return err
			}
			printRolls([]*entities.Roll{out.Roll})
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show recent rolls, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.dice.GetRollHistory(ctx, &diceorch.GetRollHistoryInput{
				CharacterID: args[0],
				Limit:       historyLimit,
			})
			if err != nil {
				return err
			}
			printRolls(out.Rolls)
			return nil
		})
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a character and its roll history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.characters.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: args[0]})
			if err != nil {
				return err
			}
			fmt.Println(out.Message)
			return nil
		})
	},
}

func init() {
	createCharacterCmd.Flags().StringVar(&createSpecies, "species", "Human", "species of the character")
	createCharacterCmd.Flags().StringVar(&createFirst, "first", "", "first name")
	createCharacterCmd.Flags().StringVar(&createSurname, "surname", "", "surname")
	createCharacterCmd.Flags().StringVar(&createEra, "era", "Modern", "era the character lives in")
	createCharacterCmd.Flags().IntVar(&createAge, "age", 0, "age in years")

	listCharactersCmd.Flags().StringVar(&listSpecies, "species", "", "only list this species")

	rollCmd.Flags().IntVar(&rollModifier, "modifier", 0, "dice added to or taken from the pool")
	rollCmd.Flags().IntVar(&rollAgain, "again", 10, "lowest face that rolls again (8, 9 or 10)")

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of rolls to show")

	characterCmd.AddCommand(createCharacterCmd)
	characterCmd.AddCommand(listCharactersCmd)
	characterCmd.AddCommand(showCharacterCmd)
	characterCmd.AddCommand(setTraitCmd)
	characterCmd.AddCommand(moralityCmd)
	characterCmd.AddCommand(rollCmd)
	characterCmd.AddCommand(historyCmd)
	characterCmd.AddCommand(deleteCharacterCmd)
}

// withApp connects to Redis for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// resolveTraits finds the named traits on the character sheet.
func resolveTraits(ctx context.Context, a *app, id string, names []string) ([]character.TraitRef, error) {
	out, err := a.characters.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		return nil, err
	}

	refs := make([]character.TraitRef, 0, len(names))
	for _, name := range names {
		found := false
		for _, t := range out.Sheet.Character.Traits {
			if strings.EqualFold(t.Name, name) {
				refs = append(refs, character.TraitRef{Type: t.Type, Name: t.Name})
				found = true
				break
			}
		}
		if !found {
			return nil, errors.TraitNotFound(name)
		}
	}
	return refs, nil
}

func printSheet(view *character.CharacterView) error {
	p, err := printer()
	if err != nil {
		return err
	}
	c := view.Character

	fmt.Printf("%s  %s\n", c.ID, c.Identities.RealName())
	fmt.Printf("%s", i18n.SpeciesName(p, c.Species, false))
	if c.Breed != "" || c.Faction != "" {
		fmt.Printf(" (%s)", strings.Trim(c.Breed+" / "+c.Faction, " /"))
	}
	fmt.Printf(", %s, %d\n", i18n.Name(p, c.Era, false), c.AgeYears)
	fmt.Printf("%s: %d  powerstat: %d\n\n", i18n.Name(p, taxonomy.TypeMorale, false), c.Morality, c.Powerstat)

	for _, typ := range []taxonomy.Type{taxonomy.TypeAttribute, taxonomy.TypeSkill, taxonomy.TypeMerit, taxonomy.TypePower} {
		rows := traitRows(p, c, typ)
		if len(rows) == 0 {
			continue
		}
		printTable([]string{strings.ToUpper(i18n.Name(p, typ, true)), "CATEGORY", "RATING"}, rows)
	}

	adv := view.Advantages
	fmt.Printf("\nsize %d  speed %d  defense %d  initiative %d  health %d  willpower %d\n",
		adv.Size, adv.Speed, adv.Defense, adv.Initiative, adv.Health, adv.Willpower)
	for _, u := range view.Forms {
		fmt.Printf("%s: %s\n", u.Attribute.TraitName(), u.Display)
	}
	for _, d := range c.Derangements {
		fmt.Printf("derangement: %s\n", d.Name)
	}
	return nil
}

// traitRows lists the traits of typ. Merits and powers without dots are
// left out.
func traitRows(p *message.Printer, c *entities.Character, typ taxonomy.Type) [][]string {
	var rows [][]string
	for _, t := range c.TraitsOf(typ) {
		if typ != taxonomy.TypeAttribute && typ != taxonomy.TypeSkill && t.Value == 0 {
			continue
		}
		rows = append(rows, []string{t.Name, i18n.Name(p, t.Category, false), dots(t.Value)})
	}
	return rows
}

func dots(value int) string {
	if value < 0 {
		value = 0
	}
	if value > entities.TraitMax {
		return strings.Repeat("●", value)
	}
	return strings.Repeat("●", value) + strings.Repeat("○", entities.TraitMax-value)
}

func printRolls(rolls []*entities.Roll) {
	printTable([]string{"ID", "ROLL", "DICE", "SUCCESSES", "RESULT"}, rollRows(rolls))
}

func rollRows(rolls []*entities.Roll) [][]string {
	rows := make([][]string, 0, len(rolls))
	for _, r := range rolls {
		label := r.Description
		if r.Chance {
			label += " (chance die)"
		}
		result := ""
		switch {
		case r.Exceptional:
			result = "exceptional"
		case r.Dramatic:
			result = "dramatic failure"
		case r.Successes == 0:
			result = "failure"
		}
		rows = append(rows, []string{r.ID, label, joinInts(r.Dice), strconv.Itoa(r.Successes), result})
	}
	return rows
}
