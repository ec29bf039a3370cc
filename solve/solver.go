package solve

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/subgraph"
)

// Solver resolves targets over one recipe graph. It is not safe for
// concurrent use.
type Solver struct {
	graph    *recipe.Graph
	opts     Options
	disabled map[string]bool

	solvers      []*EquationSolver // solve order
	solveGroup   map[string]int    // recipe name -> index into solvers
	displayGroup map[string]int    // recipe name -> index into Decomposition.Simple
	prepared     bool
}

// NewSolver returns a Solver for g. Call FindSubgraphs before Solve.
func NewSolver(g *recipe.Graph, opts ...Option) *Solver {
	return &Solver{
		graph:        g,
		opts:         buildOptions(opts),
		disabled:     make(map[string]bool),
		solveGroup:   make(map[string]int),
		displayGroup: make(map[string]int),
	}
}

// FindSubgraphs decomposes the graph and builds one EquationSolver per solve
// group, ordered so that every group precedes the groups it draws inputs
// from. It must be called again whenever the graph or the fuel choice of
// spec changes.
//
// A group with an unproducible input is kept: Solve records its ErrNoRoute
// in Totals.Errors only when a target reaches it.
func (s *Solver) FindSubgraphs(spec recipe.FactorySpec) error {
	if spec == nil {
		spec = recipe.Identity{}
	}
	s.prepared = false
	d, err := subgraph.DecomposeContext(s.opts.Ctx, spec, s.graph)
	if err != nil {
		return fmt.Errorf("FindSubgraphs: %w", err)
	}

	solvers := make([]*EquationSolver, 0, len(d.Groups))
	for _, grp := range d.Groups {
		es, err := buildEquationSolver(spec, grp, s.optionList())
		if err != nil {
			return fmt.Errorf("FindSubgraphs: group of %q: %w", grp[0].Name, err)
		}
		if es.Err() != nil {
			s.opts.Logger.WithError(es.Err()).WithField("recipe", grp[0].Name).Warn("solve group has no route")
		}
		solvers = append(solvers, es)
	}
	ordered, err := orderSolvers(s.opts.Ctx, solvers, spec)
	if err != nil {
		return fmt.Errorf("FindSubgraphs: %w", err)
	}

	s.solvers = ordered
	s.solveGroup = make(map[string]int)
	for i, es := range ordered {
		for _, r := range es.recipes[:len(es.recipes)-len(es.inputRecipes)] {
			s.solveGroup[r.Name] = i
		}
	}
	s.displayGroup = make(map[string]int)
	for i, grp := range d.Simple {
		for _, r := range grp {
			s.displayGroup[r.Name] = i
		}
	}
	s.prepared = true

	s.opts.Recorder.Decomposed(len(ordered))
	s.opts.Logger.WithFields(logrus.Fields{
		"solve_groups":   len(ordered),
		"display_groups": len(d.Simple),
	}).Debug("recipe graph decomposed")

	return nil
}

// optionList replays the Solver's options for its EquationSolvers.
func (s *Solver) optionList() []Option {
	o := s.opts

	return []Option{func(dst *Options) { *dst = o }}
}

// Groups returns the equation solvers in solve order.
func (s *Solver) Groups() []*EquationSolver {
	return append([]*EquationSolver(nil), s.solvers...)
}

// GroupOf returns the solve group id of recipe name.
func (s *Solver) GroupOf(name string) (int, bool) {
	id, ok := s.solveGroup[name]

	return id, ok
}

// DisplayGroupOf returns the display group id of recipe name.
func (s *Solver) DisplayGroupOf(name string) (int, bool) {
	id, ok := s.displayGroup[name]

	return id, ok
}

// AddDisabledRecipes excludes the named recipes from every group solve.
func (s *Solver) AddDisabledRecipes(names map[string]bool) {
	for name, on := range names {
		if on {
			s.disabled[name] = true
		}
	}
}

// RemoveDisabledRecipes allows the named recipes again.
func (s *Solver) RemoveDisabledRecipes(names map[string]bool) {
	for name := range names {
		delete(s.disabled, name)
	}
}

// Disabled returns the disabled recipe names, sorted.
func (s *Solver) Disabled() []string {
	out := make([]string, 0, len(s.disabled))
	for name := range s.disabled {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Solve resolves targets (item name -> items per second). Recipes in ignore
// are counted but their ingredients are not expanded.
//
// Errors:
//   - ErrNotPrepared before a successful FindSubgraphs.
//   - ErrUnknownItem, ErrNegativeRate for a bad target.
//   - ErrNoRoute, ErrCycle from recursive expansion.
//
// A group that cannot be solved, including one with an unproducible input,
// is recorded in Totals.Errors instead; its items stay in Totals.Unfinished.
func (s *Solver) Solve(targets map[string]rational.Rational, ignore map[string]bool, spec recipe.FactorySpec) (*Totals, error) {
	start := time.Now()
	t, err := s.solve(targets, ignore, spec)
	s.opts.Recorder.Resolved(time.Since(start), err)

	return t, err
}

func (s *Solver) solve(targets map[string]rational.Rational, ignore map[string]bool, spec recipe.FactorySpec) (*Totals, error) {
	if !s.prepared {
		return nil, ErrNotPrepared
	}
	if spec == nil {
		spec = recipe.Identity{}
	}
	res := &resolution{solver: s, ignore: ignore, spec: spec, active: make(map[*recipe.Item]bool)}

	// 1. Validate and expand every target.
	names := sortedKeys(targets)
	items := make([]*recipe.Item, len(names))
	for i, name := range names {
		it, err := s.graph.Item(name)
		if err != nil {
			return nil, fmt.Errorf("Solve: %q: %w", name, ErrUnknownItem)
		}
		if targets[name].Sign() < 0 {
			return nil, fmt.Errorf("Solve: %q rate %s: %w", name, targets[name], ErrNegativeRate)
		}
		items[i] = it
	}
	totals := NewTotals(rational.Zero, nil)
	for i, it := range items {
		sub, err := res.produce(it, targets[names[i]])
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		totals.Combine(sub, false)
	}

	// 2. Hand unfinished items to the groups in solve order.
	for id, es := range s.solvers {
		if len(totals.Unfinished) == 0 {
			break
		}
		match := es.Match(totals.Unfinished)
		if len(match) == 0 {
			continue
		}
		log := s.opts.Logger.WithField("group", id)
		sol, err := es.SolveFor(match, spec, s.disabled)
		if err != nil {
			totals.Errors[id] = fmt.Errorf("group %d: %w", id, err)
			s.opts.Recorder.GroupFailed()
			log.WithError(err).Warn("solve group failed")
			continue
		}
		s.opts.Recorder.GroupSolved(sol.Pivots)
		log.WithFields(logrus.Fields{"pivots": sol.Pivots, "recipes": len(sol.Rates), "waste": len(sol.Waste)}).
			Debug("solve group solved")

		for name := range match {
			delete(totals.Unfinished, name)
		}
		for _, r := range es.recipes {
			rate, ok := sol.Rates[r.Name]
			if !ok {
				continue
			}
			if !es.IsInputRecipe(r.Name) {
				totals.Add(r.Name, rate)
				continue
			}
			product := r.Products[0].Item
			sub, err := res.produce(product, r.Gives(product, spec).Mul(rate))
			if err != nil {
				return nil, fmt.Errorf("Solve: %w", err)
			}
			totals.Combine(sub, true)
		}
		for _, it := range es.outputs {
			if w, ok := sol.Waste[it.Name]; ok {
				totals.AddWaste(it.Name, w)
			}
		}
	}

	return totals, nil
}

// resolution carries the per-call state of recursive expansion.
type resolution struct {
	solver *Solver
	ignore map[string]bool
	spec   recipe.FactorySpec
	active map[*recipe.Item]bool // items on the current expansion path
}

// ambiguous reports whether item needs the equation solver: it has several
// producers or its producer belongs to a solve group.
func (res *resolution) ambiguous(item *recipe.Item) bool {
	if len(item.Recipes) > 1 {
		return true
	}
	_, grouped := res.solver.solveGroup[item.Recipes[0].Name]

	return grouped
}

// produce expands item at rate into recipe rates.
func (res *resolution) produce(item *recipe.Item, rate rational.Rational) (*Totals, error) {
	t := NewTotals(rate, item)
	if len(item.Recipes) == 0 {
		return nil, fmt.Errorf("produce(%q): %w", item.Name, ErrNoRoute)
	}
	if res.ambiguous(item) {
		t.AddUnfinished(item.Name, rate)
		return t, nil
	}
	if res.active[item] {
		return nil, fmt.Errorf("produce(%q): %w", item.Name, ErrCycle)
	}
	res.active[item] = true
	defer delete(res.active, item)

	r := item.Recipes[0]
	crafts, err := rate.Div(r.Gives(item, res.spec))
	if err != nil {
		return nil, fmt.Errorf("produce(%q): %w", item.Name, err)
	}
	t.Add(r.Name, crafts)
	if res.ignore[r.Name] {
		return t, nil
	}
	for _, ing := range r.AllIngredients(res.spec) {
		sub, err := res.produce(ing.Item, crafts.Mul(ing.Amount))
		if err != nil {
			return nil, err
		}
		t.Combine(sub, false)
	}

	return t, nil
}
