package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGroupsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Print the solve groups of the data file",
		Long: `Print the solve groups in solve order with their input recipes, then
the display group of every recipe that belongs to one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(a.cfg, a.log, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			for i, es := range s.solver.Groups() {
				var members, inputs []string
				for _, r := range es.Recipes() {
					if es.IsInputRecipe(r.Name) {
						inputs = append(inputs, r.Name)
					} else {
						members = append(members, r.Name)
					}
				}
				fmt.Fprintf(out, "solve group %d: %s", i, strings.Join(members, ", "))
				if len(inputs) > 0 {
					fmt.Fprintf(out, " (inputs: %s)", strings.Join(inputs, ", "))
				}
				fmt.Fprintln(out)
			}

			for _, r := range s.data.Graph.Recipes() {
				if id, ok := s.solver.DisplayGroupOf(r.Name); ok {
					fmt.Fprintf(out, "display group %d: %s\n", id, r.Name)
				}
			}

			return nil
		},
	}
}
