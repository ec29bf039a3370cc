package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodrate/rational"
)

// ErrBadTarget is returned for a --target value that is not item=rate.
var ErrBadTarget = errors.New("target must be item=rate")

// request is the part of a resolution that comes from flags.
type request struct {
	targets []string
	ignore  []string
	disable []string
	digits  int
}

func (r *request) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&r.targets, "target", "t", nil,
		"Target as item=rate in items per second, e.g. gear=5/2 (repeatable)")
	cmd.Flags().StringSliceVar(&r.ignore, "ignore", nil,
		"Recipes whose ingredients are not expanded")
	cmd.Flags().StringSliceVar(&r.disable, "disable", nil,
		"Recipes excluded from solve groups")
	cmd.Flags().IntVar(&r.digits, "digits", -1,
		"Digits after the decimal point (default: solver.digits)")
	_ = cmd.MarkFlagRequired("target")
}

func (r *request) precision(a *app) int {
	if r.digits >= 0 {
		return r.digits
	}

	return a.cfg.Solver.Digits
}

// parseTargets parses item=rate pairs. Rates accept anything rational.Parse
// does; a repeated item adds up.
func parseTargets(specs []string) (map[string]rational.Rational, error) {
	targets := make(map[string]rational.Rational, len(specs))
	for _, s := range specs {
		item, rate, ok := strings.Cut(s, "=")
		item = strings.TrimSpace(item)
		if !ok || item == "" {
			return nil, fmt.Errorf("%q: %w", s, ErrBadTarget)
		}
		r, err := rational.Parse(rate)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		targets[item] = targets[item].Add(r)
	}

	return targets, nil
}

// resolve runs one resolution on s and prints it.
func (r *request) resolve(cmd *cobra.Command, a *app, s *session) error {
	targets, err := parseTargets(r.targets)
	if err != nil {
		return err
	}
	s.solver.AddDisabledRecipes(toSet(r.disable))
	totals, err := s.solver.Solve(targets, toSet(r.ignore), s.spec)
	if err != nil {
		return err
	}
	if o, ok := s.rec.(totalsObserver); ok {
		o.ObserveTotals(totals)
	}

	return printTotals(cmd.OutOrStdout(), s, totals, r.precision(a))
}

func newSolveCommand(a *app) *cobra.Command {
	req := &request{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Resolve target rates into recipe rates",
		Long: `Resolve target item rates into the recipe rates, machine counts and
power needed to sustain them. Rates are exact; printed decimals are
rounded to --digits places.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(a.cfg, a.log, nil)
			if err != nil {
				return err
			}
			return req.resolve(cmd, a, s)
		},
	}
	req.bind(cmd)

	return cmd
}
