package solve

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prodrate/matrix"
	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/simplex"
)

// Solution is the outcome of one EquationSolver.SolveFor call.
type Solution struct {
	Rates  map[string]rational.Rational // recipe name -> crafts per second, positive only
	Waste  map[string]rational.Rational // output item name -> surplus, positive only
	Pivots int
}

// EquationSolver solves one solve group as a linear program.
//
// Tableau layout, for I items, R group recipes and N input recipes:
//
//	columns: I item columns (group outputs, then group inputs) | tax |
//	         R+N slack columns | objective | RHS
//	rows:    R group recipe rows | N input recipe rows | tax row | cost row
//
// A group recipe row holds -amount for every ingredient (fuel included),
// +amount for every product and -1 in the tax column. An input recipe row,
// one per producer of an external input, holds its products only. The tax
// row makes every craft cost one unit, so surplus is discarded as waste
// rather than spent on extra crafts.
type EquationSolver struct {
	opts Options

	items        []*recipe.Item // column order
	outputs      []*recipe.Item
	recipes      []*recipe.Recipe // row order: group recipes, then input recipes
	inputRecipes []*recipe.Recipe
	itemIndex    map[string]int
	recipeIndex  map[string]int
	isOutput     map[string]bool
	isInput      map[string]bool
	tableau      *matrix.Dense
	noRoute      error // set when an external input has no producer

	lastProblem  *matrix.Dense
	lastSolution *matrix.Dense
}

// NewEquationSolver builds the tableau for the recipes of one group. spec
// supplies fuel ingredients; productivity is applied per call in SolveFor.
//
// Errors:
//   - ErrEmptyGroup if recipes is empty.
//   - ErrNoRoute if an external input has no producer.
func NewEquationSolver(spec recipe.FactorySpec, recipes []*recipe.Recipe, opts ...Option) (*EquationSolver, error) {
	e, err := buildEquationSolver(spec, recipes, opts)
	if err != nil {
		return nil, err
	}
	if e.noRoute != nil {
		return nil, e.noRoute
	}

	return e, nil
}

// buildEquationSolver lays out the tableau. An input without a producer gets
// a column but no input row; the group is kept and Err reports the failure.
func buildEquationSolver(spec recipe.FactorySpec, recipes []*recipe.Recipe, opts []Option) (*EquationSolver, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyGroup
	}
	if spec == nil {
		spec = recipe.Identity{}
	}
	e := &EquationSolver{
		opts:        buildOptions(opts),
		itemIndex:   make(map[string]int),
		recipeIndex: make(map[string]int),
		isOutput:    make(map[string]bool),
		isInput:     make(map[string]bool),
	}

	// 1. Item columns: outputs first, then external inputs.
	for _, r := range recipes {
		for _, p := range r.Products {
			if !e.isOutput[p.Item.Name] {
				e.isOutput[p.Item.Name] = true
				e.outputs = append(e.outputs, p.Item)
				e.addItem(p.Item)
			}
		}
	}
	for _, r := range recipes {
		for _, ing := range r.AllIngredients(spec) {
			name := ing.Item.Name
			if e.isOutput[name] {
				continue
			}
			if _, seen := e.itemIndex[name]; seen {
				continue
			}
			e.addItem(ing.Item)
			if len(ing.Item.Recipes) == 0 {
				if e.noRoute == nil {
					e.noRoute = fmt.Errorf("NewEquationSolver: input %q: %w", name, ErrNoRoute)
				}
				continue
			}
			if in := ing.Item.Recipes[0]; !e.isInput[in.Name] {
				e.isInput[in.Name] = true
				e.inputRecipes = append(e.inputRecipes, in)
			}
		}
	}

	// 2. Rows.
	e.recipes = append(append([]*recipe.Recipe(nil), recipes...), e.inputRecipes...)
	for i, r := range e.recipes {
		e.recipeIndex[r.Name] = i
	}
	nItems, nRecipes := len(e.items), len(e.recipes)
	A, err := matrix.NewDense(nRecipes+2, nItems+nRecipes+3)
	if err != nil {
		return nil, fmt.Errorf("NewEquationSolver: %w", err)
	}
	tax := nItems
	for i, r := range recipes {
		for _, ing := range r.AllIngredients(spec) {
			_ = A.AddAt(i, e.itemIndex[ing.Item.Name], ing.Amount.Neg())
		}
		for _, p := range r.Products {
			_ = A.AddAt(i, e.itemIndex[p.Item.Name], p.Amount)
		}
		_ = A.Set(i, tax, rational.MinusOne)
	}
	for i, r := range e.inputRecipes {
		for _, p := range r.Products {
			if k, ok := e.itemIndex[p.Item.Name]; ok {
				_ = A.AddAt(len(recipes)+i, k, p.Amount)
			}
		}
	}
	_ = A.Set(nRecipes, tax, rational.One)
	for i := 0; i < nRecipes; i++ {
		_ = A.Set(i, e.slack(i), rational.One)
	}
	_ = A.Set(nRecipes+1, nItems+nRecipes+1, rational.One)
	e.tableau = A

	return e, nil
}

func (e *EquationSolver) addItem(it *recipe.Item) {
	e.itemIndex[it.Name] = len(e.items)
	e.items = append(e.items, it)
}

// slack returns the slack column of recipe row i.
func (e *EquationSolver) slack(i int) int { return len(e.items) + i + 1 }

// Match returns the entries of unfinished that this group produces.
func (e *EquationSolver) Match(unfinished map[string]rational.Rational) map[string]rational.Rational {
	out := make(map[string]rational.Rational)
	for name, rate := range unfinished {
		if e.isOutput[name] {
			out[name] = rate
		}
	}

	return out
}

// Outputs returns the items the group produces, in column order.
func (e *EquationSolver) Outputs() []*recipe.Item {
	return append([]*recipe.Item(nil), e.outputs...)
}

// InputRecipes returns the producers of the group's external inputs.
func (e *EquationSolver) InputRecipes() []*recipe.Recipe {
	return append([]*recipe.Recipe(nil), e.inputRecipes...)
}

// Recipes returns the group recipes followed by the input recipes, in row order.
func (e *EquationSolver) Recipes() []*recipe.Recipe {
	return append([]*recipe.Recipe(nil), e.recipes...)
}

// Err returns the ErrNoRoute failure of a group with an unproducible input,
// or nil. SolveFor on such a group always returns it.
func (e *EquationSolver) Err() error { return e.noRoute }

// IsInputRecipe reports whether name is one of the input recipes.
func (e *EquationSolver) IsInputRecipe(name string) bool { return e.isInput[name] }

// LastProblem returns a copy of the tableau handed to the simplex method by
// the last SolveFor call, or nil.
func (e *EquationSolver) LastProblem() *matrix.Dense { return cloneOrNil(e.lastProblem) }

// LastSolution returns a copy of the final tableau of the last successful
// SolveFor call, or nil.
func (e *EquationSolver) LastSolution() *matrix.Dense { return cloneOrNil(e.lastSolution) }

func cloneOrNil(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// SolveFor computes the recipe rates that meet demand (item name -> rate)
// at minimal cost. Recipes in disabled are not used.
//
// Steps:
//  1. Copy the tableau and write -demand into the cost row.
//  2. Zero the rows of disabled recipes.
//  3. Apply productivity to the remaining rows.
//  4. Set costs: the tax row costs 1 and each priority recipe costs the next
//     power of the ratio between the largest and smallest nonzero magnitude,
//     the first priority entry getting the largest power.
//  5. Run the simplex method and read rates from the slack columns and waste
//     from the output item columns of the cost row.
//
// A simplex failure is returned wrapped in ErrUnsolvable; a group with an
// unproducible input returns its ErrNoRoute.
func (e *EquationSolver) SolveFor(demand map[string]rational.Rational, spec recipe.FactorySpec, disabled map[string]bool) (*Solution, error) {
	if e.noRoute != nil {
		return nil, fmt.Errorf("SolveFor: %w", e.noRoute)
	}
	if spec == nil {
		spec = recipe.Identity{}
	}
	A := e.tableau.Clone()
	costRow := A.Rows() - 1

	// 1. Demand.
	for name, rate := range demand {
		if k, ok := e.itemIndex[name]; ok {
			_ = A.Set(costRow, k, rate.Neg())
		}
	}

	// 2. Disabled recipes.
	for name := range disabled {
		if i, ok := e.recipeIndex[name]; ok {
			_ = A.ZeroRow(i)
		}
	}

	// 3. Productivity.
	for i, r := range e.recipes {
		if disabled[r.Name] {
			continue
		}
		prod := spec.ProdEffect(r)
		if prod.Equal(rational.One) {
			continue
		}
		if spec.Legacy() {
			e.legacyRow(A, i, r, spec, prod)
			continue
		}
		for j := range e.items {
			if x, _ := A.At(i, j); x.Sign() > 0 {
				_ = A.Set(i, j, x.Mul(prod))
			}
		}
	}

	// 4. Costs.
	e.setCosts(A)
	e.lastProblem = A.Clone()

	// 5. Simplex.
	sopts := []simplex.Option{
		simplex.WithContext(e.opts.Ctx),
		simplex.WithMaxPivots(e.opts.MaxPivots),
	}
	if tl, ok := e.opts.Logger.(logrus.Ext1FieldLogger); ok && traceEnabled(e.opts.Logger) {
		group := e.recipes[0].Name
		sopts = append(sopts, simplex.WithOnPivot(func(row, col int) {
			tl.WithFields(logrus.Fields{"group": group, "row": row, "col": col}).Trace("simplex pivot")
		}))
	}
	res, err := simplex.Solve(A, sopts...)
	if err != nil {
		return nil, fmt.Errorf("SolveFor: %w: %w", ErrUnsolvable, err)
	}
	e.lastSolution = A.Clone()

	sol := &Solution{
		Rates:  make(map[string]rational.Rational),
		Waste:  make(map[string]rational.Rational),
		Pivots: res.Pivots,
	}
	for i, r := range e.recipes {
		if rate, _ := A.At(costRow, e.slack(i)); rate.Sign() > 0 {
			sol.Rates[r.Name] = rate
		}
	}
	for i, it := range e.outputs {
		if rate, _ := A.At(costRow, i); rate.Sign() > 0 {
			sol.Waste[it.Name] = rate
		}
	}

	return sol, nil
}

// traceEnabled reports whether l emits trace entries. Loggers that do not
// expose their level are assumed to.
func traceEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.TraceLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.TraceLevel)
	}

	return true
}

// legacyRow rebuilds row i from the recipe definition with the bonus applied
// to products only. Input recipe rows keep carrying products only.
func (e *EquationSolver) legacyRow(A *matrix.Dense, i int, r *recipe.Recipe, spec recipe.FactorySpec, prod rational.Rational) {
	for _, p := range r.Products {
		if k, ok := e.itemIndex[p.Item.Name]; ok {
			_ = A.Set(i, k, rational.Zero)
		}
	}
	if !e.isInput[r.Name] {
		for _, ing := range r.AllIngredients(spec) {
			if k, ok := e.itemIndex[ing.Item.Name]; ok {
				_ = A.Set(i, k, ing.Amount.Neg())
			}
		}
	}
	for _, p := range r.Products {
		if k, ok := e.itemIndex[p.Item.Name]; ok {
			_ = A.AddAt(i, k, p.Amount.Mul(prod))
		}
	}
}

// setCosts writes the RHS of the tax row and of the priority recipe rows.
func (e *EquationSolver) setCosts(A *matrix.Dense) {
	rhs := A.Cols() - 1
	_ = A.Set(len(e.recipes), rhs, rational.One)

	ratio := priorityRatio(A)
	cost := ratio
	for i := len(e.opts.Priority) - 1; i >= 0; i-- {
		row, ok := e.recipeIndex[e.opts.Priority[i]]
		if !ok {
			continue
		}
		_ = A.Set(row, rhs, cost)
		cost = cost.Mul(ratio)
	}
}

// priorityRatio returns max/min over the nonzero magnitudes of A, or 2 when
// that is not above 1, so successive priority costs always grow.
func priorityRatio(A *matrix.Dense) rational.Rational {
	var lo, hi rational.Rational
	found := false
	for i := 0; i < A.Rows(); i++ {
		row, _ := A.Row(i)
		for _, x := range row {
			if x.IsZero() {
				continue
			}
			x = x.Abs()
			if !found || x.Less(lo) {
				lo = x
			}
			if !found || hi.Less(x) {
				hi = x
			}
			found = true
		}
	}
	if !found {
		return rational.FromInt(2)
	}
	ratio, _ := hi.Div(lo) // lo > 0
	if !rational.One.Less(ratio) {
		return rational.FromInt(2)
	}

	return ratio
}
