package entities

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// Rule limits
const (
	TraitMax               = 5
	MoralityMax            = 10
	MoralityDefault        = 7
	DerangementMoralityMax = 7
	WillpowerMax           = 10
	SuperTraitMin          = 1
	SuperTraitMax          = 10
	SuperTraitDefault      = 1
	DefaultAgeYears        = 30
)

// ValueRange returns the inclusive dot range for traits of typ.
func ValueRange(typ taxonomy.Type) (minimum, maximum int) {
	switch typ {
	case taxonomy.TypeAttribute:
		return 1, TraitMax
	case taxonomy.TypeMorale:
		return 0, MoralityMax
	case taxonomy.TypeSuper:
		return SuperTraitMin, SuperTraitMax
	default:
		return 0, TraitMax
	}
}

// ResetValue is the value a trait of typ takes on a blank sheet.
func ResetValue(typ taxonomy.Type) int {
	if typ == taxonomy.TypeAttribute {
		return 1
	}
	return 0
}
