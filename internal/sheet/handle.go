package sheet

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/selector"
)

// TraitHandle edits one trait of a sheet.
type TraitHandle struct {
	sheet *Sheet
	trait *entities.Trait
	sel   *selector.Selector
}

// newHandle wraps t in a selector. Callers hold s.mu.
func (s *Sheet) newHandle(t *entities.Trait) (*TraitHandle, error) {
	minimum, maximum := entities.ValueRange(t.Type)
	sel, err := selector.New(minimum, maximum, selector.WithReadOnly(s.readOnly))
	if err != nil {
		return nil, err
	}
	if len(t.Values) > 0 {
		// The minimum stays reachable so a rated trait can be untaken.
		sel.SetAllowedValues(append(slices.Clone(t.Values), minimum))
	}
	t.Value = sel.SetValue(t.Value)

	h := &TraitHandle{sheet: s, trait: t, sel: sel}
	sel.OnValueChanged(func(v int) {
		h.trait.Value = v
		s.touch()
	})
	return h, nil
}

// Name returns the trait's name.
func (h *TraitHandle) Name() string {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.trait.Name
}

// Trait returns a snapshot of the trait.
func (h *TraitHandle) Trait() *entities.Trait {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.trait.Clone()
}

// Value returns the stored dot rating.
func (h *TraitHandle) Value() int {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.sel.Value()
}

// Range returns the inclusive dot range of the trait.
func (h *TraitHandle) Range() (minimum, maximum int) {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.sel.Minimum(), h.sel.Maximum()
}

// Allowed returns the ratings the trait can take.
func (h *TraitHandle) Allowed() []int {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.sel.Allowed()
}

// SetValue stores the normalized form of v and returns it. A change is
// published as a trait value event.
func (h *TraitHandle) SetValue(ctx context.Context, v int) (int, error) {
	h.sheet.mu.Lock()
	next, _ := h.set(v, false)
	h.sheet.mu.Unlock()
	return next, h.sheet.flush(ctx)
}

// Click is a user-driven SetValue. It reports false when the sheet is
// read-only and the value was left alone.
func (h *TraitHandle) Click(ctx context.Context, v int) (int, bool, error) {
	h.sheet.mu.Lock()
	next, ok := h.set(v, true)
	h.sheet.mu.Unlock()
	return next, ok, h.sheet.flush(ctx)
}

// set routes v through the selector and queues an event on change.
// Callers hold the sheet lock.
func (h *TraitHandle) set(v int, clicked bool) (int, bool) {
	prev := h.sel.Value()
	next, ok := prev, true
	if clicked {
		next, ok = h.sel.Click(v)
	} else {
		next = h.sel.SetValue(v)
	}
	if next != prev {
		h.sheet.queueTraitEvent(h.trait, prev)
	}
	return next, ok
}

// SetCustomText sets the free text of a custom trait.
func (h *TraitHandle) SetCustomText(text string) {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	if h.trait.CustomText != text {
		h.trait.CustomText = text
		h.sheet.touch()
	}
}

// SetDetails replaces the trait's specialties.
func (h *TraitHandle) SetDetails(details []string) {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	if !slices.Equal(h.trait.Details, details) {
		h.trait.Details = slices.Clone(details)
		h.sheet.touch()
	}
}

// SetBonus marks the trait as granted by a bonus.
func (h *TraitHandle) SetBonus(bonus bool) {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	if h.trait.Bonus != bonus {
		h.trait.Bonus = bonus
		h.sheet.touch()
	}
}

// Reclassify gives an unclassified trait its type and category. The dot
// range follows the new type.
func (h *TraitHandle) Reclassify(ctx context.Context, typ taxonomy.Type, category taxonomy.Category) error {
	s := h.sheet
	s.mu.Lock()

	oldKey := traitKey{typ: h.trait.Type, name: h.trait.Name}
	newKey := traitKey{typ: typ, name: h.trait.Name}
	if _, taken := s.handles[newKey]; taken && newKey != oldKey {
		s.mu.Unlock()
		return alreadyOnSheet(h.trait.Name, typ)
	}
	if err := h.trait.Reclassify(typ, category); err != nil {
		s.mu.Unlock()
		return err
	}
	delete(s.handles, oldKey)
	s.handles[newKey] = h

	prev := h.sel.Value()
	minimum, maximum := entities.ValueRange(typ)
	if err := h.sel.SetRange(minimum, maximum); err != nil {
		s.mu.Unlock()
		return err
	}
	if h.sel.Value() != prev {
		s.queueTraitEvent(h.trait, prev)
	}
	s.touch()
	s.mu.Unlock()
	return s.flush(ctx)
}

// SetCategory only accepts the trait's current category.
func (h *TraitHandle) SetCategory(category taxonomy.Category) error {
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	return h.trait.SetCategory(category)
}

// SetSpecies restricts the trait to species.
func (h *TraitHandle) SetSpecies(species taxonomy.Species) error {
	if _, err := species.XMLToken(); err != nil {
		return err
	}
	h.sheet.mu.Lock()
	defer h.sheet.mu.Unlock()
	if h.trait.Species != species {
		h.trait.Species = species
		h.sheet.touch()
	}
	return nil
}
