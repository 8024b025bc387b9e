package entities

import (
	"slices"
)

// Derangement is a trait that only becomes available once a character's
// morality drops to or below its threshold.
type Derangement struct {
	Trait
	// Morality is the threshold at or below which the derangement applies.
	Morality int  `json:"morality"`
	Severe   bool `json:"severe,omitempty"`
	// SevereForms names the severe derangements a mild one can grow into.
	SevereForms []string `json:"severe_forms,omitempty"`
}

// AvailableAt reports whether the derangement can be taken at morality.
func (d *Derangement) AvailableAt(morality int) bool {
	return morality <= d.Morality
}

// Clone returns a deep copy of d.
func (d *Derangement) Clone() *Derangement {
	if d == nil {
		return nil
	}
	out := *d
	out.Trait = *d.Trait.Clone()
	out.SevereForms = slices.Clone(d.SevereForms)
	return &out
}
