package solve_test

import (
	"fmt"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/solve"
)

// ExampleSolver resolves a reactor loop: spent fuel cells are reassembled
// with fresh ore, so the two recipes form one solve group.
func ExampleSolver() {
	g := recipe.NewGraph()
	one := rational.One
	_, _ = g.AddRecipe("reactor", "", one,
		[]recipe.Quantity{recipe.Q("fuel-cell", one)},
		[]recipe.Quantity{recipe.Q("heat", rational.FromInt(40)), recipe.Q("spent-cell", one)})
	_, _ = g.AddRecipe("cell-assembly", "", one,
		[]recipe.Quantity{recipe.Q("spent-cell", one), recipe.Q("ore", rational.FromInt(2))},
		[]recipe.Quantity{recipe.Q("fuel-cell", one)})
	_, _ = g.AddResourceRecipes() // "ore"

	s := solve.NewSolver(g)
	if err := s.FindSubgraphs(nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	totals, err := s.Solve(map[string]rational.Rational{"heat": rational.FromInt(100)}, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range totals.Recipes() {
		rate, _ := totals.Get(name)
		fmt.Printf("%s: %s (%s/s)\n", name, rate, rate.Decimal(3))
	}

	// Output:
	// cell-assembly: 5/2 (2.5/s)
	// ore: 5 (5/s)
	// reactor: 5/2 (2.5/s)
}
