// Package sheet holds one character open for editing.
//
// A Sheet is the single writer of its character. Every trait is guarded by a
// selector that keeps its value inside the trait's dot range and allowed
// ratings. Changes are published on the sheet's event bus after the sheet
// lock is released, so handlers may read the sheet again.
package sheet

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/prerequisites"
	"github.com/KirkDiggler/rpg-sheet/internal/selector"
)

// Config contains the dependencies of a Sheet
type Config struct {
	Character *entities.Character
	EventBus  events.EventBus
	Clock     clock.Clock
	// Prerequisites is optional; without it prerequisites are not checked.
	Prerequisites *prerequisites.Evaluator
	ReadOnly      bool
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

type traitKey struct {
	typ  taxonomy.Type
	name string
}

// Sheet is an open character.
type Sheet struct {
	bus    events.EventBus
	clock  clock.Clock
	prereq *prerequisites.Evaluator

	mu        sync.Mutex
	char      *entities.Character
	handles   map[traitKey]*TraitHandle
	morality  *selector.Selector
	powerstat *selector.Selector
	readOnly  bool
	pending   []events.Event
}

// New opens a sheet on a copy of cfg.Character. Stored values outside a
// trait's range are normalized on load.
func New(cfg *Config) (*Sheet, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	s := &Sheet{
		bus:      cfg.EventBus,
		clock:    clk,
		prereq:   cfg.Prerequisites,
		char:     cfg.Character.Clone(),
		handles:  make(map[traitKey]*TraitHandle),
		readOnly: cfg.ReadOnly,
	}

	var err error
	s.morality, err = s.characterSelector(0, entities.MoralityMax, s.char.Morality, func(v int) {
		s.char.Morality = v
	})
	if err != nil {
		return nil, err
	}
	s.powerstat, err = s.characterSelector(entities.SuperTraitMin, entities.SuperTraitMax, s.char.Powerstat, func(v int) {
		s.char.Powerstat = v
	})
	if err != nil {
		return nil, err
	}

	for _, t := range s.char.Traits {
		key := traitKey{typ: t.Type, name: t.Name}
		if _, dup := s.handles[key]; dup {
			return nil, errors.AlreadyExistsf("trait %s defined twice", t.Name).
				WithMeta("character_id", s.char.ID)
		}
		h, err := s.newHandle(t)
		if err != nil {
			return nil, err
		}
		s.handles[key] = h
	}
	s.char.Modified = false
	return s, nil
}

func (s *Sheet) characterSelector(minimum, maximum, value int, store func(int)) (*selector.Selector, error) {
	sel, err := selector.New(minimum, maximum, selector.WithReadOnly(s.readOnly))
	if err != nil {
		return nil, err
	}
	sel.SetValue(value)
	store(sel.Value())
	sel.OnValueChanged(func(v int) {
		store(v)
		s.touch()
	})
	return sel, nil
}

// CharacterID returns the id of the open character.
func (s *Sheet) CharacterID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.char.ID
}

// Bus returns the sheet's event bus.
func (s *Sheet) Bus() events.EventBus {
	return s.bus
}

// Snapshot returns a deep copy of the character.
func (s *Sheet) Snapshot() *entities.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.char.Clone()
}

// Modified reports whether the character changed since it was opened or
// last saved.
func (s *Sheet) Modified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.char.Modified
}

// MarkSaved clears the modified flag.
func (s *Sheet) MarkSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.char.Modified = false
}

// ReadOnly reports whether clicks are ignored.
func (s *Sheet) ReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOnly
}

// SetReadOnly switches every selector of the sheet between read-only and
// editable.
func (s *Sheet) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = readOnly
	s.morality.SetReadOnly(readOnly)
	s.powerstat.SetReadOnly(readOnly)
	for _, h := range s.handles {
		h.sel.SetReadOnly(readOnly)
	}
}

// AddTrait adds a copy of template to the character.
func (s *Sheet) AddTrait(template *entities.Trait) (*TraitHandle, error) {
	if template == nil {
		return nil, errors.InvalidArgument("trait is required")
	}
	if template.Name == "" {
		return nil, errors.MissingUserEntry("name")
	}
	if err := validateClassification(template); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := traitKey{typ: template.Type, name: template.Name}
	if _, dup := s.handles[key]; dup {
		return nil, alreadyOnSheet(template.Name, template.Type)
	}

	t := template.Clone()
	if t.Species == taxonomy.SpeciesNone {
		t.Species = taxonomy.SpeciesAll
	}
	h, err := s.newHandle(t)
	if err != nil {
		return nil, err
	}
	s.char.Traits = append(s.char.Traits, t)
	s.handles[key] = h
	s.touch()
	return h, nil
}

func alreadyOnSheet(name string, typ taxonomy.Type) error {
	return errors.AlreadyExistsf("trait %s already on sheet", name).
		WithMeta("type", typ.String())
}

func validateClassification(t *entities.Trait) error {
	if _, err := t.Type.XMLToken(); err != nil {
		return err
	}
	if _, err := t.Category.XMLToken(); err != nil {
		return err
	}
	if _, err := t.Era.XMLToken(); err != nil {
		return err
	}
	if _, err := t.Age.XMLToken(); err != nil {
		return err
	}
	return nil
}

// Trait returns the handle of a trait.
func (s *Sheet) Trait(typ taxonomy.Type, name string) (*TraitHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[traitKey{typ: typ, name: name}]
	if !ok {
		return nil, errors.TraitNotFound(name).
			WithMeta("type", typ.String())
	}
	return h, nil
}

// Traits returns the handles of typ, restricted to categories when given,
// in the order traits were added.
func (s *Sheet) Traits(typ taxonomy.Type, categories ...taxonomy.Category) []*TraitHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	traits := s.char.TraitsOf(typ, categories...)
	out := make([]*TraitHandle, 0, len(traits))
	for _, t := range traits {
		out = append(out, s.handles[traitKey{typ: t.Type, name: t.Name}])
	}
	return out
}

// Available reports whether h applies to the character: species, era and
// age filters, then prerequisites when an evaluator is configured.
func (s *Sheet) Available(ctx context.Context, h *TraitHandle) bool {
	s.mu.Lock()
	t := h.trait
	if !t.AvailableFor(s.char.Species, s.char.Era, s.char.Age()) {
		s.mu.Unlock()
		return false
	}
	if s.prereq == nil || !t.HasPrerequisites() {
		s.mu.Unlock()
		return true
	}
	char := s.char.Clone()
	trait := t.Clone()
	s.mu.Unlock()

	return s.prereq.Met(ctx, trait, char)
}

// Species returns the character's species.
func (s *Sheet) Species() taxonomy.Species {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.char.Species
}

// SetSpecies changes the character's species. Breed and faction belong to
// a species and are cleared.
func (s *Sheet) SetSpecies(ctx context.Context, species taxonomy.Species) error {
	if !species.Valid() || !species.IsSingle() {
		return errors.SpeciesNotFound(species.String())
	}

	s.mu.Lock()
	if s.char.Species == species {
		s.mu.Unlock()
		return nil
	}
	s.char.Species = species
	s.char.Breed = ""
	s.char.Faction = ""
	s.touch()
	s.queueCharacterEvent(entities.EventCharacterSpeciesChanged)
	s.mu.Unlock()

	slog.DebugContext(ctx, "Species changed",
		"character_id", s.CharacterID(),
		"species", species.String())
	return s.flush(ctx)
}

// SetBreed sets the species-specific breed.
func (s *Sheet) SetBreed(ctx context.Context, breed string) error {
	s.mu.Lock()
	if s.char.Breed == breed {
		s.mu.Unlock()
		return nil
	}
	s.char.Breed = breed
	s.touch()
	s.queueCharacterEvent(entities.EventCharacterBreedChanged)
	s.mu.Unlock()
	return s.flush(ctx)
}

// SetFaction sets the species-specific faction.
func (s *Sheet) SetFaction(faction string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.char.Faction != faction {
		s.char.Faction = faction
		s.touch()
	}
}

// SetVirtue sets the character's virtue.
func (s *Sheet) SetVirtue(virtue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.char.Virtue != virtue {
		s.char.Virtue = virtue
		s.touch()
	}
}

// SetVice sets the character's vice.
func (s *Sheet) SetVice(vice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.char.Vice != vice {
		s.char.Vice = vice
		s.touch()
	}
}

// SetEra sets the era the character lives in.
func (s *Sheet) SetEra(era taxonomy.Era) error {
	if _, err := era.XMLToken(); err != nil {
		return err
	}
	if era == taxonomy.EraAll {
		return errors.InvalidTraitEra(int(era))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.char.Era != era {
		s.char.Era = era
		s.touch()
	}
	return nil
}

// SetAgeYears sets the character's age.
func (s *Sheet) SetAgeYears(years int) error {
	if years < 0 {
		return errors.InvalidArgumentf("age %d is negative", years)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.char.AgeYears != years {
		s.char.AgeYears = years
		s.touch()
	}
	return nil
}

// Morality returns the morality rating.
func (s *Sheet) Morality() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.morality.Value()
}

// SetMorality sets the morality rating and returns the stored value.
// Derangements whose threshold lies below the new rating are dropped.
func (s *Sheet) SetMorality(ctx context.Context, v int) (int, error) {
	s.mu.Lock()
	prev := s.morality.Value()
	next := s.morality.SetValue(v)
	if next != prev {
		s.dropUnavailableDerangements()
		s.queueCharacterEvent(entities.EventCharacterMoralityChanged)
	}
	s.mu.Unlock()
	return next, s.flush(ctx)
}

// Powerstat returns the super trait rating.
func (s *Sheet) Powerstat() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.powerstat.Value()
}

// SetPowerstat sets the super trait rating and returns the stored value.
func (s *Sheet) SetPowerstat(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.powerstat.SetValue(v)
}

// Derangements returns copies of the character's derangements.
func (s *Sheet) Derangements() []*entities.Derangement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.Derangement, len(s.char.Derangements))
	for i, d := range s.char.Derangements {
		out[i] = d.Clone()
	}
	return out
}

// AvailableDerangements filters templates down to those the character can
// take at the current morality.
func (s *Sheet) AvailableDerangements(templates []*entities.Derangement) []*entities.Derangement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entities.Derangement
	for _, d := range templates {
		if s.derangementAvailable(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s *Sheet) derangementAvailable(d *entities.Derangement) bool {
	return d.AvailableFor(s.char.Species, s.char.Era, s.char.Age()) &&
		d.AvailableAt(s.char.Morality)
}

// AddDerangement gives the character a copy of d.
func (s *Sheet) AddDerangement(d *entities.Derangement) error {
	if d == nil {
		return errors.InvalidArgument("derangement is required")
	}
	if d.Morality > entities.DerangementMoralityMax {
		return errors.InvalidArgumentf("derangement %s threshold %d exceeds %d",
			d.Name, d.Morality, entities.DerangementMoralityMax)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.derangementAvailable(d) {
		return errors.FailedPreconditionf("derangement %s is not available at morality %d",
			d.Name, s.char.Morality).
			WithMeta("character_id", s.char.ID)
	}
	for _, have := range s.char.Derangements {
		if have.Name == d.Name {
			return errors.AlreadyExistsf("derangement %s already taken", d.Name)
		}
	}
	s.char.Derangements = append(s.char.Derangements, d.Clone())
	s.touch()
	return nil
}

// RemoveDerangement removes a derangement by name.
func (s *Sheet) RemoveDerangement(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.char.Derangements, func(d *entities.Derangement) bool {
		return d.Name == name
	})
	if idx < 0 {
		return errors.NotFoundf("derangement %s not found", name)
	}
	s.char.Derangements = slices.Delete(s.char.Derangements, idx, idx+1)
	s.touch()
	return nil
}

func (s *Sheet) dropUnavailableDerangements() {
	kept := s.char.Derangements[:0]
	for _, d := range s.char.Derangements {
		if d.AvailableAt(s.char.Morality) {
			kept = append(kept, d)
		}
	}
	clear(s.char.Derangements[len(kept):])
	s.char.Derangements = kept
}

// Identities returns a copy of the character's identities, true name first.
func (s *Sheet) Identities() entities.IdentityList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.char.Identities)
}

// SetRealIdentity replaces the true name.
func (s *Sheet) SetRealIdentity(id entities.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.char.Identities.SetReal(id)
	s.touch()
}

// AddIdentity appends an alias, or the true name on an empty list.
func (s *Sheet) AddIdentity(id entities.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.char.Identities.Add(id)
	s.touch()
}

// InsertIdentity places an alias at index, never before the true name.
func (s *Sheet) InsertIdentity(index int, id entities.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.char.Identities.Insert(index, id)
	s.touch()
}

// Reset returns the sheet to a blank character of the same species and
// publishes a change event for every trait whose value moved.
func (s *Sheet) Reset(ctx context.Context) error {
	s.mu.Lock()
	prevMorality := s.char.Morality

	s.char.Reset()

	// Reset wrote values directly; route them back through the selectors so
	// each change is normalized and published.
	for _, t := range s.char.Traits {
		h := s.handles[traitKey{typ: t.Type, name: t.Name}]
		want := t.Value
		t.Value = h.sel.Value()
		h.set(want, false)
	}
	s.morality.SetValue(s.char.Morality)
	s.powerstat.SetValue(s.char.Powerstat)
	if s.char.Morality != prevMorality {
		s.queueCharacterEvent(entities.EventCharacterMoralityChanged)
	}
	s.touch()
	s.mu.Unlock()

	slog.DebugContext(ctx, "Sheet reset", "character_id", s.CharacterID())
	return s.flush(ctx)
}

// touch marks the character modified. Callers hold s.mu.
func (s *Sheet) touch() {
	s.char.Modified = true
	s.char.UpdatedAt = s.clock.Now().Unix()
}

func (s *Sheet) queueCharacterEvent(eventType string) {
	source := &entities.CharacterEntity{Character: s.char.Clone()}
	s.pending = append(s.pending, events.NewGameEvent(eventType, source, nil))
}

func (s *Sheet) queueTraitEvent(t *entities.Trait, previous int) {
	source := &entities.TraitEntity{
		Trait:            t.Clone(),
		CharacterID:      s.char.ID,
		CharacterSpecies: s.char.Species,
		Previous:         previous,
	}
	s.pending = append(s.pending, events.NewGameEvent(entities.EventTraitValueChanged, source, nil))
}

// flush publishes queued events without holding the lock. Every event is
// attempted; the first failure is returned.
func (s *Sheet) flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	var first error
	for _, e := range pending {
		if err := s.bus.Publish(ctx, e); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sheet event",
				"event_type", e.Type(),
				"error", err)
			if first == nil {
				first = errors.Wrapf(err, "failed to publish %s", e.Type())
			}
		}
	}
	return first
}
