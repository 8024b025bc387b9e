// Package selector implements the constrained discrete value selector behind
// every dot rating on a sheet.
//
// A selector holds a value in [minimum, maximum]. Values written to it are
// clamped into the range and then stepped down past forbidden values. The
// minimum is kept even when it is itself forbidden.
package selector

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// RangePolicy controls what happens to the forbidden set when the range moves.
type RangePolicy int

const (
	// RangePolicyAdjust drops forbidden values that leave the range and,
	// after ForbidAll or SetAllowedValues, forbids values that enter it.
	RangePolicyAdjust RangePolicy = iota
	// RangePolicyLegacy leaves the forbidden set untouched on range changes.
	// Callers are responsible for keeping it consistent.
	RangePolicyLegacy
)

// Option configures a Selector.
type Option func(*Selector)

// WithPolicy sets the range policy.
func WithPolicy(p RangePolicy) Option {
	return func(s *Selector) {
		s.policy = p
	}
}

// WithReadOnly makes the selector ignore clicks.
func WithReadOnly(readOnly bool) Option {
	return func(s *Selector) {
		s.readOnly = readOnly
	}
}

// WithForbidden forbids values from the start.
func WithForbidden(values ...int) Option {
	return func(s *Selector) {
		for _, v := range values {
			s.forbidden[v] = struct{}{}
		}
	}
}

// Selector is not safe for concurrent use; the owner serializes access.
type Selector struct {
	minimum  int
	maximum  int
	value    int
	readOnly bool
	policy   RangePolicy

	forbidden map[int]struct{}
	// bulk is set while every value entering the range should start out
	// forbidden.
	bulk bool

	onActivated    []func(int)
	onValueChanged []func(int)
	onValueClicked []func(int)
	onRangeChanged []func(minimum, maximum int)
}

// New creates a selector on [minimum, maximum] holding minimum.
func New(minimum, maximum int, opts ...Option) (*Selector, error) {
	if minimum > maximum {
		return nil, errors.InvalidArgumentf("minimum %d exceeds maximum %d", minimum, maximum).
			WithMeta("minimum", minimum).
			WithMeta("maximum", maximum)
	}

	s := &Selector{
		minimum:   minimum,
		maximum:   maximum,
		forbidden: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.value = s.normalize(minimum)
	return s, nil
}

// Value returns the stored value.
func (s *Selector) Value() int { return s.value }

// Minimum returns the lower bound.
func (s *Selector) Minimum() int { return s.minimum }

// Maximum returns the upper bound.
func (s *Selector) Maximum() int { return s.maximum }

// Policy returns the range policy.
func (s *Selector) Policy() RangePolicy { return s.policy }

// ReadOnly reports whether clicks are ignored.
func (s *Selector) ReadOnly() bool { return s.readOnly }

// SetReadOnly toggles read-only mode.
func (s *Selector) SetReadOnly(readOnly bool) { s.readOnly = readOnly }

// OnActivated registers fn to run on every SetValue or accepted Click.
func (s *Selector) OnActivated(fn func(int)) {
	s.onActivated = append(s.onActivated, fn)
}

// OnValueChanged registers fn to run whenever the stored value changes.
func (s *Selector) OnValueChanged(fn func(int)) {
	s.onValueChanged = append(s.onValueChanged, fn)
}

// OnValueClicked registers fn to run when a Click changes the value.
func (s *Selector) OnValueClicked(fn func(int)) {
	s.onValueClicked = append(s.onValueClicked, fn)
}

// OnRangeChanged registers fn to run after minimum or maximum moves.
func (s *Selector) OnRangeChanged(fn func(minimum, maximum int)) {
	s.onRangeChanged = append(s.onRangeChanged, fn)
}

// SetValue stores the normalized form of v and returns it.
func (s *Selector) SetValue(v int) int {
	return s.apply(v, false)
}

// Click is a user-driven SetValue. It is ignored in read-only mode and then
// reports false.
func (s *Selector) Click(v int) (int, bool) {
	if s.readOnly {
		return s.value, false
	}
	return s.apply(v, true), true
}

// Normalize returns what SetValue(v) would store without storing it.
func (s *Selector) Normalize(v int) int {
	return s.normalize(v)
}

func (s *Selector) apply(v int, clicked bool) int {
	next := s.normalize(v)
	changed := next != s.value
	s.value = next

	if changed {
		for _, fn := range s.onValueChanged {
			fn(next)
		}
		if clicked {
			for _, fn := range s.onValueClicked {
				fn(next)
			}
		}
	}
	for _, fn := range s.onActivated {
		fn(next)
	}
	return next
}

func (s *Selector) normalize(v int) int {
	v = min(max(v, s.minimum), s.maximum)
	for v > s.minimum && s.IsForbidden(v) {
		v--
	}
	return v
}

// IsForbidden reports whether v is in the forbidden set.
func (s *Selector) IsForbidden(v int) bool {
	_, ok := s.forbidden[v]
	return ok
}

// Forbidden returns the forbidden values in ascending order.
func (s *Selector) Forbidden() []int {
	return slices.Sorted(maps.Keys(s.forbidden))
}

// Allowed returns the values in range that are not forbidden.
func (s *Selector) Allowed() []int {
	var out []int
	for v := s.minimum; v <= s.maximum; v++ {
		if !s.IsForbidden(v) {
			out = append(out, v)
		}
	}
	return out
}

// AddForbiddenValue forbids v. The stored value is not re-normalized.
func (s *Selector) AddForbiddenValue(v int) {
	s.forbidden[v] = struct{}{}
}

// AddAllowedValue removes v from the forbidden set.
func (s *Selector) AddAllowedValue(v int) {
	delete(s.forbidden, v)
}

// SetForbiddenValues replaces the forbidden set.
func (s *Selector) SetForbiddenValues(values []int) {
	s.forbidden = make(map[int]struct{}, len(values))
	s.bulk = false
	for _, v := range values {
		s.forbidden[v] = struct{}{}
	}
}

// SetAllowedValues forbids everything in range except values.
func (s *Selector) SetAllowedValues(values []int) {
	s.ForbidAll()
	for _, v := range values {
		s.AddAllowedValue(v)
	}
}

// ForbidAll forbids every value in [minimum, maximum].
func (s *Selector) ForbidAll() {
	for v := s.minimum; v <= s.maximum; v++ {
		s.forbidden[v] = struct{}{}
	}
	s.bulk = true
}

// ForbidNone allows every value in [minimum, maximum].
func (s *Selector) ForbidNone() {
	for v := s.minimum; v <= s.maximum; v++ {
		delete(s.forbidden, v)
	}
	s.bulk = false
}

// SetMinimum moves the lower bound and re-normalizes the stored value.
func (s *Selector) SetMinimum(minimum int) error {
	return s.SetRange(minimum, s.maximum)
}

// SetMaximum moves the upper bound and re-normalizes the stored value.
func (s *Selector) SetMaximum(maximum int) error {
	return s.SetRange(s.minimum, maximum)
}

// SetRange moves both bounds at once.
func (s *Selector) SetRange(minimum, maximum int) error {
	if minimum > maximum {
		return errors.InvalidArgumentf("minimum %d exceeds maximum %d", minimum, maximum).
			WithMeta("minimum", minimum).
			WithMeta("maximum", maximum)
	}
	if minimum == s.minimum && maximum == s.maximum {
		return nil
	}

	oldMin, oldMax := s.minimum, s.maximum
	s.minimum, s.maximum = minimum, maximum

	if s.policy == RangePolicyAdjust {
		for v := range s.forbidden {
			if v < minimum || v > maximum {
				delete(s.forbidden, v)
			}
		}
		if s.bulk {
			for v := minimum; v <= maximum; v++ {
				if v < oldMin || v > oldMax {
					s.forbidden[v] = struct{}{}
				}
			}
		}
	}

	for _, fn := range s.onRangeChanged {
		fn(minimum, maximum)
	}

	if next := s.normalize(s.value); next != s.value {
		s.value = next
		for _, fn := range s.onValueChanged {
			fn(next)
		}
	}
	return nil
}
