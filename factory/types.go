package factory

import (
	"errors"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

// Energy source kinds.
const (
	Electric = ""         // machines powered from the grid
	Chemical = "chemical" // burner machines that consume the preferred fuel
)

var (
	// ErrInvalidDef is returned for a machine definition with an empty name,
	// no categories, a non-positive speed or negative module slots.
	ErrInvalidDef = errors.New("factory: invalid machine definition")

	// ErrNoFactory is returned when no machine handles the recipe's category.
	ErrNoFactory = errors.New("factory: no machine for recipe")

	// ErrZeroTime is returned when a rate is requested for a recipe that
	// takes no time.
	ErrZeroTime = errors.New("factory: recipe has zero crafting time")

	// ErrTooManyModules is returned when more modules are assigned than the
	// machine has slots.
	ErrTooManyModules = errors.New("factory: more modules than slots")
)

// Def describes a machine type.
type Def struct {
	Name        string
	Categories  []string          // recipe categories the machine crafts
	Speed       rational.Rational // crafting speed
	ModuleSlots int
	EnergyUsage rational.Rational // watts while working
	Fuel        string            // Electric or Chemical
	Mining      bool              // mining productivity applies
}

// Module is a machine (or beacon) module.
type Module struct {
	Name         string
	Productivity rational.Rational
	Speed        rational.Rational
	Power        rational.Rational

	// Limit, when non-empty, lists the only recipes the module may be used in.
	Limit map[string]bool
}

// CanUse reports whether the module may be inserted into a machine running r.
func (m *Module) CanUse(r *recipe.Recipe) bool {
	return len(m.Limit) == 0 || m.Limit[r.Name]
}

// Fuel is the preferred fuel for burner machines.
type Fuel struct {
	Item  *recipe.Item
	Value rational.Rational // joules per item
}
