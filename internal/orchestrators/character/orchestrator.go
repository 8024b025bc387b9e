// Package character implements the character orchestrator
package character

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/advantages"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/forms"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/prerequisites"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	templaterepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/template"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/sheet"
)

// Unskilled penalties by skill category
const (
	UnskilledMental   = -3
	UnskilledPhysical = -1
	UnskilledSocial   = -1
)

// sheetTypes are the trait types a new character starts with.
var sheetTypes = []taxonomy.Type{
	taxonomy.TypeAttribute,
	taxonomy.TypeSkill,
	taxonomy.TypeMerit,
	taxonomy.TypePower,
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	TemplateRepo  templaterepo.Repository
	DiceService   dice.Service
	Calculators   *forms.Set
	Prerequisites *prerequisites.Evaluator
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.TemplateRepo == nil {
		vb.RequiredField("TemplateRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.Calculators == nil {
		vb.RequiredField("Calculators")
	}
	if c.Prerequisites == nil {
		vb.RequiredField("Prerequisites")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	templateRepo  templaterepo.Repository
	diceService   dice.Service
	calculators   *forms.Set
	prereq        *prerequisites.Evaluator
	idGen         idgen.Generator
	clock         clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		templateRepo:  cfg.TemplateRepo,
		diceService:   cfg.DiceService,
		calculators:   cfg.Calculators,
		prereq:        cfg.Prerequisites,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// session is one open sheet with its form watcher.
type session struct {
	sheet   *sheet.Sheet
	watcher *forms.Watcher
}

func (o *Orchestrator) open(ctx context.Context, characterID string) (*session, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	return o.openCharacter(ctx, out.Character)
}

func (o *Orchestrator) openCharacter(ctx context.Context, char *entities.Character) (*session, error) {
	bus := events.NewBus()
	watcher, err := forms.NewWatcher(&forms.WatcherConfig{
		EventBus:    bus,
		Calculators: o.calculators,
	})
	if err != nil {
		return nil, err
	}
	watcher.Start()

	sh, err := sheet.New(&sheet.Config{
		Character:     char,
		EventBus:      bus,
		Clock:         o.clock,
		Prerequisites: o.prereq,
	})
	if err != nil {
		_ = watcher.Stop()
		return nil, errors.Wrapf(err, "failed to open sheet")
	}
	watcher.Recompute(ctx, sh.Snapshot())

	return &session{sheet: sh, watcher: watcher}, nil
}

func (s *session) close(ctx context.Context) {
	if err := s.watcher.Stop(); err != nil {
		slog.WarnContext(ctx, "Failed to stop form watcher",
			"character_id", s.sheet.CharacterID(),
			"error", err.Error())
	}
}

func (s *session) view() *character.CharacterView {
	char := s.sheet.Snapshot()
	v := &character.CharacterView{
		Character:  char,
		Advantages: advantages.Compute(char),
	}
	for _, attr := range forms.Attributes() {
		if u, ok := s.watcher.Display(char.ID, attr); ok {
			v.Forms = append(v.Forms, u)
		}
	}
	return v
}

// save stores the sheet when it changed.
func (o *Orchestrator) save(ctx context.Context, s *session) error {
	if !s.sheet.Modified() {
		return nil
	}
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: s.sheet.Snapshot()}); err != nil {
		return errors.Wrapf(err, "failed to save character")
	}
	s.sheet.MarkSaved()
	return nil
}

// addTemplates puts every template of the sheet types available to species
// on the sheet, skipping traits it already has.
func (o *Orchestrator) addTemplates(ctx context.Context, sh *sheet.Sheet, species taxonomy.Species) error {
	for _, typ := range sheetTypes {
		out, err := o.templateRepo.ListTraits(ctx, templaterepo.ListTraitsInput{
			Type:    typ,
			Species: species,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to list %s templates", typ)
		}
		for _, t := range out.Traits {
			if _, err := sh.Trait(t.Type, t.Name); err == nil {
				continue
			}
			t.Value = entities.ResetValue(t.Type)
			if _, err := sh.AddTrait(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateCharacter creates a character with every template of its species
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, errors.MissingUserEntry("first name")
	}
	if !input.Species.Valid() || !input.Species.IsSingle() {
		return nil, errors.SpeciesNotFound(input.Species.String())
	}

	era := input.Era
	if era == taxonomy.EraAll {
		era = taxonomy.EraModern
	}
	ageYears := input.AgeYears
	if ageYears == 0 {
		ageYears = entities.DefaultAgeYears
	}

	char := &entities.Character{
		ID:        o.idGen.Generate(),
		Species:   input.Species,
		Era:       era,
		AgeYears:  ageYears,
		Morality:  entities.MoralityDefault,
		Powerstat: entities.SuperTraitDefault,
	}
	char.Identities.SetReal(entities.NewIdentity(input.Surname, input.FirstName))

	s, err := o.openCharacter(ctx, char)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	if err := s.sheet.SetEra(era); err != nil {
		return nil, err
	}
	if err := s.sheet.SetAgeYears(ageYears); err != nil {
		return nil, err
	}
	if err := o.addTemplates(ctx, s.sheet, input.Species); err != nil {
		return nil, err
	}
	s.watcher.Recompute(ctx, s.sheet.Snapshot())

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: s.sheet.Snapshot()}); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	s.sheet.MarkSaved()

	slog.InfoContext(ctx, "Character created",
		"character_id", char.ID,
		"species", input.Species.String())

	return &character.CreateCharacterOutput{Sheet: s.view()}, nil
}

// GetCharacter retrieves a character with its derived values
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	return &character.GetCharacterOutput{Sheet: s.view()}, nil
}

// ListCharacters lists stored characters
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{Species: input.Species})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a character and its roll history
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	if _, err := o.diceService.ClearRollHistory(ctx, &dice.ClearRollHistoryInput{
		CharacterID: input.CharacterID,
	}); err != nil {
		slog.WarnContext(ctx, "Failed to clear roll history",
			"character_id", input.CharacterID,
			"error", err.Error())
	}

	return &character.DeleteCharacterOutput{
		Message: fmt.Sprintf("character %s deleted", input.CharacterID),
	}, nil
}

// ResetCharacter blanks a character
func (o *Orchestrator) ResetCharacter(ctx context.Context, input *character.ResetCharacterInput) (*character.ResetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	if err := s.sheet.Reset(ctx); err != nil {
		return nil, err
	}
	if err := o.save(ctx, s); err != nil {
		return nil, err
	}

	return &character.ResetCharacterOutput{Sheet: s.view()}, nil
}

// SetTraitValue rates one trait
func (o *Orchestrator) SetTraitValue(ctx context.Context, input *character.SetTraitValueInput) (*character.SetTraitValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	h, err := s.sheet.Trait(input.Trait.Type, input.Trait.Name)
	if err != nil {
		return nil, err
	}
	next, err := h.SetValue(ctx, input.Value)
	if err != nil {
		return nil, err
	}
	changed := s.sheet.Modified()
	if err := o.save(ctx, s); err != nil {
		return nil, err
	}

	return &character.SetTraitValueOutput{
		Value:   next,
		Changed: changed,
		Sheet:   s.view(),
	}, nil
}

// UpdateDetails changes species, breed, faction, virtue, vice, era, age,
// powerstat or name.
func (o *Orchestrator) UpdateDetails(ctx context.Context, input *character.UpdateDetailsInput) (*character.UpdateDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.FirstName != nil && strings.TrimSpace(*input.FirstName) == "" {
		return nil, errors.MissingUserEntry("first name")
	}
	vb := errors.NewValidationBuilder()
	if input.Powerstat != nil {
		errors.ValidateRange("powerstat", *input.Powerstat, entities.SuperTraitMin, entities.SuperTraitMax, vb)
	}
	if input.AgeYears != nil && *input.AgeYears < 0 {
		vb.InvalidField("age", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)
	sh := s.sheet

	if input.Species != nil && *input.Species != sh.Species() {
		if err := sh.SetSpecies(ctx, *input.Species); err != nil {
			return nil, err
		}
		if err := o.addTemplates(ctx, sh, *input.Species); err != nil {
			return nil, err
		}
		s.watcher.Recompute(ctx, sh.Snapshot())
	}

	if input.Breed != nil || input.Faction != nil {
		info, err := o.templateRepo.GetSpecies(ctx, templaterepo.GetSpeciesInput{Species: sh.Species()})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get species")
		}
		choices := errors.NewValidationBuilder()
		if input.Breed != nil {
			checkChoice(choices, "breed", *input.Breed, info.Species.Breeds)
		}
		if input.Faction != nil {
			checkChoice(choices, "faction", *input.Faction, info.Species.Factions)
		}
		if err := choices.Build(); err != nil {
			return nil, err
		}

		if input.Breed != nil {
			if err := sh.SetBreed(ctx, *input.Breed); err != nil {
				return nil, err
			}
		}
		if input.Faction != nil {
			sh.SetFaction(*input.Faction)
		}
	}

	if input.Virtue != nil {
		if err := o.checkTemplate(ctx, taxonomy.TypeVirtue, *input.Virtue); err != nil {
			return nil, err
		}
		sh.SetVirtue(*input.Virtue)
	}
	if input.Vice != nil {
		if err := o.checkTemplate(ctx, taxonomy.TypeVice, *input.Vice); err != nil {
			return nil, err
		}
		sh.SetVice(*input.Vice)
	}
	if input.Era != nil {
		if err := sh.SetEra(*input.Era); err != nil {
			return nil, err
		}
	}
	if input.AgeYears != nil {
		if err := sh.SetAgeYears(*input.AgeYears); err != nil {
			return nil, err
		}
	}
	if input.Powerstat != nil {
		sh.SetPowerstat(*input.Powerstat)
	}
	if input.FirstName != nil || input.Surname != nil {
		id, _ := sh.Identities().Real()
		if input.Surname != nil {
			id.Surname = *input.Surname
		}
		if input.FirstName != nil {
			var rest []string
			if len(id.Forenames) > 1 {
				rest = id.Forenames[1:]
			}
			id.Forenames = append([]string{*input.FirstName}, rest...)
		}
		sh.SetRealIdentity(id)
	}

	if err := o.save(ctx, s); err != nil {
		return nil, err
	}
	return &character.UpdateDetailsOutput{Sheet: s.view()}, nil
}

// checkChoice accepts the empty string or one of choices.
func checkChoice(vb *errors.ValidationBuilder, field, value string, choices []string) {
	if value == "" || slices.Contains(choices, value) {
		return
	}
	vb.Fieldf(field, "%q is not one of %s", value, strings.Join(choices, ", "))
}

func (o *Orchestrator) checkTemplate(ctx context.Context, typ taxonomy.Type, name string) error {
	if name == "" {
		return nil
	}
	_, err := o.templateRepo.GetTrait(ctx, templaterepo.GetTraitInput{Type: typ, Name: name})
	return err
}

// SetMorality changes morality and reports the derangements it removed
func (o *Orchestrator) SetMorality(ctx context.Context, input *character.SetMoralityInput) (*character.SetMoralityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	before := s.sheet.Derangements()
	next, err := s.sheet.SetMorality(ctx, input.Value)
	if err != nil {
		return nil, err
	}
	after := s.sheet.Derangements()

	var dropped []string
	for _, d := range before {
		if !slices.ContainsFunc(after, func(a *entities.Derangement) bool { return a.Name == d.Name }) {
			dropped = append(dropped, d.Name)
		}
	}

	if err := o.save(ctx, s); err != nil {
		return nil, err
	}
	return &character.SetMoralityOutput{
		Value:   next,
		Dropped: dropped,
		Sheet:   s.view(),
	}, nil
}

// AddDerangement gives the character a derangement from the templates
func (o *Orchestrator) AddDerangement(ctx context.Context, input *character.AddDerangementInput) (*character.AddDerangementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.MissingUserEntry("derangement")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	out, err := o.templateRepo.ListDerangements(ctx, templaterepo.ListDerangementsInput{Species: s.sheet.Species()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list derangements")
	}
	i := slices.IndexFunc(out.Derangements, func(d *entities.Derangement) bool { return d.Name == input.Name })
	if i < 0 {
		return nil, errors.NotFoundf("derangement %s not found", input.Name)
	}
	if err := s.sheet.AddDerangement(out.Derangements[i]); err != nil {
		return nil, err
	}

	if err := o.save(ctx, s); err != nil {
		return nil, err
	}
	return &character.AddDerangementOutput{Sheet: s.view()}, nil
}

// RemoveDerangement takes a derangement away
func (o *Orchestrator) RemoveDerangement(ctx context.Context, input *character.RemoveDerangementInput) (*character.RemoveDerangementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	if err := s.sheet.RemoveDerangement(input.Name); err != nil {
		return nil, err
	}
	if err := o.save(ctx, s); err != nil {
		return nil, err
	}
	return &character.RemoveDerangementOutput{Sheet: s.view()}, nil
}

// ListAvailableTraits lists the traits of a type the character may take
// given its species, era, age and the trait prerequisites.
func (o *Orchestrator) ListAvailableTraits(ctx context.Context, input *character.ListAvailableTraitsInput) (*character.ListAvailableTraitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.open(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	traits := make([]*entities.Trait, 0)
	for _, h := range s.sheet.Traits(input.Type, input.Categories...) {
		if s.sheet.Available(ctx, h) {
			traits = append(traits, h.Trait())
		}
	}

	return &character.ListAvailableTraitsOutput{Traits: traits}, nil
}

// RollTraits rolls the sum of the named traits plus a modifier. A skill
// without dots adds its unskilled penalty instead.
func (o *Orchestrator) RollTraits(ctx context.Context, input *character.RollTraitsInput) (*character.RollTraitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if len(input.Traits) == 0 {
		return nil, errors.InvalidArgument("at least one trait is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	char := out.Character

	pool := input.Modifier
	names := make([]string, 0, len(input.Traits)+1)
	for _, ref := range input.Traits {
		t, ok := char.Trait(ref.Type, ref.Name)
		if !ok {
			return nil, errors.TraitNotFound(ref.Name).WithMeta("character_id", char.ID)
		}
		pool += poolValue(t)
		names = append(names, t.Name)
	}
	description := strings.Join(names, " + ")
	switch {
	case input.Modifier > 0:
		description += fmt.Sprintf(" + %d", input.Modifier)
	case input.Modifier < 0:
		description += fmt.Sprintf(" - %d", -input.Modifier)
	}

	rolled, err := o.diceService.RollPool(ctx, &dice.RollPoolInput{
		CharacterID: char.ID,
		Description: description,
		Pool:        pool,
		Again:       input.Again,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", description)
	}

	return &character.RollTraitsOutput{Roll: rolled.Roll}, nil
}

func poolValue(t *entities.Trait) int {
	if t.Type != taxonomy.TypeSkill || t.Value > 0 {
		return t.Value
	}
	switch t.Category {
	case taxonomy.CategoryMental:
		return UnskilledMental
	case taxonomy.CategoryPhysical:
		return UnskilledPhysical
	default:
		return UnskilledSocial
	}
}
