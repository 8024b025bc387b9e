package forms

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Op is how a modifier combines with the base value.
type Op int

// Modifier operations
const (
	OpAdd Op = iota
	OpMultiply
)

// Modifier changes a base attribute value for one form.
type Modifier struct {
	Op     Op
	Amount int
}

// Apply returns the modified value. Results never drop below zero.
func (m Modifier) Apply(base int) int {
	var out int
	switch m.Op {
	case OpMultiply:
		out = base * m.Amount
	default:
		out = base + m.Amount
	}
	return max(out, 0)
}

// String renders the modifier in table notation.
func (m Modifier) String() string {
	if m.Op == OpMultiply {
		return fmt.Sprintf("x%d", m.Amount)
	}
	return fmt.Sprintf("%+d", m.Amount)
}

// ParseModifier reads "+2", "-1", "3" (additive) or "x2", "*2" (multiplicative).
func ParseModifier(text string) (Modifier, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Modifier{}, errors.NotANumber(text)
	}

	op := OpAdd
	digits := text
	switch text[0] {
	case 'x', 'X', '*':
		op = OpMultiply
		digits = strings.TrimSpace(text[1:])
	case '+':
		digits = text[1:]
	}

	amount, err := strconv.Atoi(digits)
	if err != nil {
		return Modifier{}, errors.NotANumber(text)
	}
	if op == OpMultiply && amount < 0 {
		return Modifier{}, errors.InvalidArgumentf("negative multiplier %q", text)
	}
	return Modifier{Op: op, Amount: amount}, nil
}

// UnmarshalYAML accepts a modifier scalar.
func (m *Modifier) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.InvalidArgumentf("modifier at line %d must be a scalar", node.Line)
	}
	parsed, err := ParseModifier(node.Value)
	if err != nil {
		return errors.Wrapf(err, "modifier at line %d", node.Line)
	}
	*m = parsed
	return nil
}

// MarshalYAML renders the modifier in table notation.
func (m Modifier) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
