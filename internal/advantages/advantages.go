// Package advantages computes the derived values printed beside the
// attributes: size, initiative, speed, defense, health and willpower.
package advantages

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
)

// Base values
const (
	BaseSize  = 5
	BaseSpeed = 5
)

// Merits that alter advantages
const (
	MeritGiant        = "Giant"
	MeritFastReflexes = "Fast Reflexes"
	MeritFleetOfFoot  = "Fleet of Foot"
)

// Advantages are the values derived from a character's attributes and
// merits.
type Advantages struct {
	Size       int `json:"size"`
	Initiative int `json:"initiative"`
	Speed      int `json:"speed"`
	Defense    int `json:"defense"`
	Health     int `json:"health"`
	Willpower  int `json:"willpower"`
}

// Compute derives the advantages of char. Missing traits count as 0.
func Compute(char *entities.Character) Advantages {
	attr := func(name string) int { return value(char, taxonomy.TypeAttribute, name) }
	merit := func(name string) int { return value(char, taxonomy.TypeMerit, name) }

	size := BaseSize
	if char.Age() == taxonomy.AgeKid {
		size--
	}
	if merit(MeritGiant) > 0 {
		size++
	}

	return Advantages{
		Size:       size,
		Initiative: attr("Dexterity") + attr("Composure") + merit(MeritFastReflexes),
		Speed:      attr("Strength") + attr("Dexterity") + BaseSpeed + merit(MeritFleetOfFoot),
		Defense:    min(attr("Wits"), attr("Dexterity")),
		Health:     attr("Stamina") + size,
		Willpower:  min(attr("Resolve")+attr("Composure"), entities.WillpowerMax),
	}
}

func value(char *entities.Character, typ taxonomy.Type, name string) int {
	t, ok := char.Trait(typ, name)
	if !ok {
		return 0
	}
	return t.Value
}
