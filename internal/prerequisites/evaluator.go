// Package prerequisites decides whether a character meets a trait's
// prerequisites.
//
// Prerequisites are written the way the rule books print them, for example
// "Strength > 2 and (Brawl > 1 or Weaponry > 1)" or "Athletics.Running > 0".
// Trait names are replaced with the character's values, "and"/"or" become
// boolean operators, and the remaining arithmetic expression is evaluated
// with CEL.
package prerequisites

import (
	"cmp"
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// PowerstatIdentifier stands for the character's super trait.
const PowerstatIdentifier = "Powerstat"

var (
	andPattern = regexp.MustCompile(`\band\b`)
	orPattern  = regexp.MustCompile(`\bor\b`)
)

// Evaluator compiles and caches prerequisite programs.
type Evaluator struct {
	env *cel.Env

	mu    sync.RWMutex
	cache map[string]cel.Program
}

// NewEvaluator creates an evaluator with an empty CEL environment.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create CEL environment")
	}
	return &Evaluator{
		env:   env,
		cache: make(map[string]cel.Program),
	}, nil
}

// Met reports whether char satisfies every prerequisite of trait. A trait
// without prerequisites is always available. A prerequisite that cannot be
// evaluated, such as one naming a trait the character does not have, is
// not met.
func (e *Evaluator) Met(ctx context.Context, trait *entities.Trait, char *entities.Character) bool {
	for _, expr := range trait.Prerequisites {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		ok, err := e.Eval(expr, char)
		if err != nil {
			slog.WarnContext(ctx, "Prerequisite cannot be evaluated, treating as not met",
				"trait", trait.Name,
				"prerequisite", expr,
				"error", err.Error())
			return false
		}
		if !ok {
			return false
		}
	}
	return true
}

// Eval evaluates one prerequisite expression against char.
func (e *Evaluator) Eval(expr string, char *entities.Character) (bool, error) {
	translated := Translate(expr, char)

	prg, err := e.program(translated)
	if err != nil {
		return false, errors.InvalidArgumentf("cannot evaluate prerequisite %q", expr).
			WithMeta("translated", translated).
			WithCause(err)
	}

	out, _, err := prg.Eval(map[string]any{})
	if err != nil {
		return false, errors.InvalidArgumentf("cannot evaluate prerequisite %q", expr).
			WithCause(err)
	}
	val, ok := out.Value().(bool)
	if !ok {
		return false, errors.InvalidArgumentf("prerequisite %q is not a condition", expr)
	}
	return val, nil
}

func (e *Evaluator) program(expr string) (cel.Program, error) {
	e.mu.RLock()
	prg, hit := e.cache[expr]
	e.mu.RUnlock()
	if hit {
		return prg, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrap(issues.Err(), "compile")
	}
	prg, err := e.env.Program(ast, cel.CostLimit(1000))
	if err != nil {
		return nil, errors.Wrap(err, "program")
	}

	e.mu.Lock()
	e.cache[expr] = prg
	e.mu.Unlock()
	return prg, nil
}

// Translate substitutes trait values into expr and rewrites the word
// operators. Longer names are replaced first so that a name contained in
// another does not match inside it.
func Translate(expr string, char *entities.Character) string {
	traits := slices.Clone(char.Traits)
	slices.SortFunc(traits, func(a, b *entities.Trait) int {
		return cmp.Compare(len(b.Name), len(a.Name))
	})

	out := expr
	for _, t := range traits {
		if t.Name == "" || !strings.Contains(out, t.Name) {
			continue
		}
		out = replaceSpecialties(out, t)
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(t.Name) + `\b`)
		out = pattern.ReplaceAllLiteralString(out, strconv.Itoa(t.Value))
	}
	out = strings.ReplaceAll(out, PowerstatIdentifier, strconv.Itoa(char.Powerstat))

	out = andPattern.ReplaceAllLiteralString(out, "&&")
	out = orPattern.ReplaceAllLiteralString(out, "||")
	return out
}

// replaceSpecialties rewrites "Name.Specialty" to "Name" when the trait has
// the specialty and to "0" otherwise.
func replaceSpecialties(expr string, t *entities.Trait) string {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(t.Name) + `\.(\w+)`)
	return pattern.ReplaceAllStringFunc(expr, func(match string) string {
		specialty := strings.TrimPrefix(match, t.Name+".")
		if slices.Contains(t.Details, specialty) {
			return t.Name
		}
		return "0"
	})
}
