package solve

import (
	"sort"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

// Requirement is one node of the requirement tree: an item demanded at a
// rate and the requirements its recipe pulls in.
type Requirement struct {
	Item         *recipe.Item // nil for the root of a resolution
	Rate         rational.Rational
	Dependencies []*Requirement
}

// Totals accumulates the outcome of a resolution.
type Totals struct {
	// Requirements is the tree of expanded items.
	Requirements *Requirement

	// Topo lists recipe names in the order they were last added; a recipe
	// added again moves to the end.
	Topo []string

	// Unfinished maps item names to rates not yet produced by any recipe.
	Unfinished map[string]rational.Rational

	// Waste maps item names to surplus rates.
	Waste map[string]rational.Rational

	// Errors maps solve group ids to the failure of that group.
	Errors map[int]error

	rates map[string]rational.Rational
}

// NewTotals returns empty Totals whose requirement root is item at rate.
// item may be nil.
func NewTotals(rate rational.Rational, item *recipe.Item) *Totals {
	return &Totals{
		Requirements: &Requirement{Item: item, Rate: rate},
		Unfinished:   make(map[string]rational.Rational),
		Waste:        make(map[string]rational.Rational),
		Errors:       make(map[int]error),
		rates:        make(map[string]rational.Rational),
	}
}

// Add adds rate to recipe name.
func (t *Totals) Add(name string, rate rational.Rational) {
	t.Topo = append(t.Topo, name)
	t.rates[name] = t.rates[name].Add(rate)
}

// AddUnfinished adds rate to the unfinished item name.
func (t *Totals) AddUnfinished(name string, rate rational.Rational) {
	t.Unfinished[name] = t.Unfinished[name].Add(rate)
}

// AddWaste adds rate to the waste of item name.
func (t *Totals) AddWaste(name string, rate rational.Rational) {
	t.Waste[name] = t.Waste[name].Add(rate)
}

// Combine merges other into t. With suppress set the requirement tree of
// other is not attached.
func (t *Totals) Combine(other *Totals, suppress bool) {
	if !suppress && other.Requirements != nil && other.Requirements.Item != nil {
		t.Requirements.Dependencies = append(t.Requirements.Dependencies, other.Requirements)
	}

	topo := make([]string, 0, len(t.Topo)+len(other.Topo))
	for _, name := range t.Topo {
		if _, ok := other.rates[name]; !ok {
			topo = append(topo, name)
		}
	}
	topo = append(topo, other.Topo...)

	for _, name := range sortedKeys(other.rates) {
		t.rates[name] = t.rates[name].Add(other.rates[name])
	}
	for _, name := range sortedKeys(other.Unfinished) {
		t.AddUnfinished(name, other.Unfinished[name])
	}
	for _, name := range sortedKeys(other.Waste) {
		t.AddWaste(name, other.Waste[name])
	}
	for id, err := range other.Errors {
		t.Errors[id] = err
	}
	t.Topo = topo
}

// Get returns the rate of recipe name and whether it was added at all.
func (t *Totals) Get(name string) (rational.Rational, bool) {
	r, ok := t.rates[name]

	return r, ok
}

// GetWaste returns the waste rate of item name, zero if none.
func (t *Totals) GetWaste(name string) rational.Rational {
	return t.Waste[name]
}

// Recipes returns the names of every recipe with a rate, sorted.
func (t *Totals) Recipes() []string {
	return sortedKeys(t.rates)
}

func sortedKeys(m map[string]rational.Rational) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
