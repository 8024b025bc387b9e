package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/selector"
)

var (
	dotsMin       int
	dotsMax       int
	dotsForbid    []int
	dotsForbidAll bool
	dotsLegacy    bool
	dotsSetMin    int
	dotsSetMax    int
)

var dotsCmd = &cobra.Command{
	Use:   "dots <value>...",
	Short: "Normalize ratings the way a dot selector does",
	Long: `Feed values through a dot selector and print what it stores. Values are
clamped into [min, max] and forbidden values step down to the next allowed
rating, ending at min. --set-min and --set-max move the range after the
forbidden set is built; --legacy keeps that set as it was instead of
trimming it to the new range.

  sheet dots --max 5 --forbid 3 3 7 -2
  sheet dots --max 3 --forbid-all --set-max 5 --legacy 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDots,
}

func init() {
	dotsCmd.Flags().IntVar(&dotsMin, "min", 0, "lowest rating")
	dotsCmd.Flags().IntVar(&dotsMax, "max", 5, "highest rating")
	dotsCmd.Flags().IntSliceVar(&dotsForbid, "forbid", nil, "forbidden ratings")
	dotsCmd.Flags().BoolVar(&dotsForbidAll, "forbid-all", false, "forbid every rating in range")
	dotsCmd.Flags().BoolVar(&dotsLegacy, "legacy", false, "keep the forbidden set unchanged when the range moves")
	dotsCmd.Flags().IntVar(&dotsSetMin, "set-min", 0, "move the lowest rating after building the selector")
	dotsCmd.Flags().IntVar(&dotsSetMax, "set-max", 0, "move the highest rating after building the selector")
}

type dotsOptions struct {
	min       int
	max       int
	forbid    []int
	forbidAll bool
	legacy    bool
	// setMin and setMax are applied with SetRange once the selector is built.
	setMin *int
	setMax *int
}

func (o dotsOptions) validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateOrdered("--min/--max", o.min, o.max, vb)
	for _, f := range o.forbid {
		errors.ValidateRange("--forbid", f, o.min, o.max, vb)
	}
	if o.setMin != nil || o.setMax != nil {
		lo, hi := o.finalRange()
		errors.ValidateOrdered("--set-min/--set-max", lo, hi, vb)
	}
	return vb.Build()
}

func (o dotsOptions) finalRange() (int, int) {
	lo, hi := o.min, o.max
	if o.setMin != nil {
		lo = *o.setMin
	}
	if o.setMax != nil {
		hi = *o.setMax
	}
	return lo, hi
}

// newDotsSelector builds the selector the flags describe and, when asked,
// moves its range under the chosen policy.
func newDotsSelector(o dotsOptions) (*selector.Selector, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	policy := selector.RangePolicyAdjust
	if o.legacy {
		policy = selector.RangePolicyLegacy
	}
	sel, err := selector.New(o.min, o.max, selector.WithPolicy(policy), selector.WithForbidden(o.forbid...))
	if err != nil {
		return nil, err
	}
	if o.forbidAll {
		sel.ForbidAll()
	}
	if o.setMin != nil || o.setMax != nil {
		if err := sel.SetRange(o.finalRange()); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

func runDots(cmd *cobra.Command, args []string) error {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := parseNumber(arg)
		if err != nil {
			return err
		}
		values[i] = v
	}

	opts := dotsOptions{
		min:       dotsMin,
		max:       dotsMax,
		forbid:    dotsForbid,
		forbidAll: dotsForbidAll,
		legacy:    dotsLegacy,
	}
	if cmd.Flags().Changed("set-min") {
		opts.setMin = &dotsSetMin
	}
	if cmd.Flags().Changed("set-max") {
		opts.setMax = &dotsSetMax
	}
	sel, err := newDotsSelector(opts)
	if err != nil {
		return err
	}

	changed := false
	sel.OnValueChanged(func(int) { changed = true })

	fmt.Printf("range: %d..%d\n", sel.Minimum(), sel.Maximum())
	fmt.Printf("allowed: %s\n", joinInts(sel.Allowed()))
	for _, v := range values {
		changed = false
		stored := sel.SetValue(v)
		marker := ""
		if changed {
			marker = " (changed)"
		}
		fmt.Printf("%d -> %d%s\n", v, stored, marker)
	}
	return nil
}

func parseNumber(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.NotANumber(text)
	}
	return v, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
