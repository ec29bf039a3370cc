package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/solve"
)

// printTotals writes one row per recipe with its machine count and power,
// then waste, unfinished items and group failures.
func printTotals(w io.Writer, s *session, t *solve.Totals, digits int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECIPE\tRATE\tMACHINE\tCOUNT\tPOWER")
	for _, name := range t.Recipes() {
		rate, _ := t.Get(name)
		machine, count, power := "-", "-", "-"
		if r, err := s.data.Graph.Recipe(name); err == nil {
			if d, err := s.spec.Machine(r); err == nil {
				machine = d.Name
				if n, err := s.spec.FactoryCount(r, rate); err == nil {
					count = n.UpDecimal(digits)
					if source, p, err := s.spec.PowerUsage(r, n); err == nil {
						power = fmt.Sprintf("%s W %s", p.Decimal(0), source)
					}
				}
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, rate.Decimal(digits), machine, count, power)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printRates(w, "waste", t.Waste, digits)
	printRates(w, "unfinished", t.Unfinished, digits)

	ids := make([]int, 0, len(t.Errors))
	for id := range t.Errors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "error: %v\n", t.Errors[id])
	}

	return nil
}

func printRates(w io.Writer, label string, rates map[string]rational.Rational, digits int) {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s %s\n", label, name, rates[name].Decimal(digits))
	}
}
