package factory

import (
	"fmt"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

var (
	minPowerEffect = rational.MustNew(1, 5)
	drainDivisor   = rational.FromInt(30)
)

// Option configures a Spec.
type Option func(*Spec)

// WithMiningProductivity sets the research bonus added to the productivity of
// mining machines.
func WithMiningProductivity(bonus rational.Rational) Option {
	return func(s *Spec) { s.miningProd = bonus }
}

// WithPreferredFuel sets the fuel burner machines consume.
func WithPreferredFuel(item *recipe.Item, value rational.Rational) Option {
	return func(s *Spec) {
		if item != nil && value.Sign() > 0 {
			s.fuel = &Fuel{Item: item, Value: value}
		}
	}
}

// WithLegacy selects the legacy productivity model.
func WithLegacy(legacy bool) Option {
	return func(s *Spec) { s.legacy = legacy }
}

// WithDefaultModule fills every free module slot with m where m may be used.
func WithDefaultModule(m *Module) Option {
	return func(s *Spec) { s.defaultModule = m }
}

// WithBeacon sets the beacon module and the number of beacons affecting every machine.
func WithBeacon(m *Module, count rational.Rational) Option {
	return func(s *Spec) {
		s.beacon = m
		s.beaconCount = count
	}
}

// Spec implements recipe.FactorySpec for a set of machine definitions.
// For each category the machine registered last wins, so data files list
// machines from worst to best.
type Spec struct {
	byCategory    map[string]*Def
	modules       map[string][]*Module // recipe name -> explicit modules
	defaultModule *Module
	beacon        *Module
	beaconCount   rational.Rational
	miningProd    rational.Rational
	fuel          *Fuel
	legacy        bool
}

var _ recipe.FactorySpec = (*Spec)(nil)

// New validates the machine definitions and returns a Spec.
func New(defs []Def, opts ...Option) (*Spec, error) {
	s := &Spec{
		byCategory: make(map[string]*Def),
		modules:    make(map[string][]*Module),
	}
	for i := range defs {
		d := defs[i]
		if d.Name == "" || len(d.Categories) == 0 || d.Speed.Sign() <= 0 || d.ModuleSlots < 0 {
			return nil, fmt.Errorf("New: machine %d (%q): %w", i, d.Name, ErrInvalidDef)
		}
		for _, c := range d.Categories {
			s.byCategory[c] = &d
		}
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Machine returns the definition that runs r, or ErrNoFactory.
func (s *Spec) Machine(r *recipe.Recipe) (*Def, error) {
	if r.Category == "" {
		return nil, fmt.Errorf("Machine(%q): resource recipe: %w", r.Name, ErrNoFactory)
	}
	d, ok := s.byCategory[r.Category]
	if !ok {
		return nil, fmt.Errorf("Machine(%q): category %q: %w", r.Name, r.Category, ErrNoFactory)
	}

	return d, nil
}

// SetModules assigns explicit modules to the machine running r. Empty slots
// are filled with the default module. Modules r may not use are rejected
// silently, matching how the default module is applied.
func (s *Spec) SetModules(r *recipe.Recipe, modules ...*Module) error {
	d, err := s.Machine(r)
	if err != nil {
		return fmt.Errorf("SetModules: %w", err)
	}
	if len(modules) > d.ModuleSlots {
		return fmt.Errorf("SetModules(%q): %d modules for %d slots: %w", r.Name, len(modules), d.ModuleSlots, ErrTooManyModules)
	}
	kept := make([]*Module, 0, len(modules))
	for _, m := range modules {
		if m != nil && m.CanUse(r) {
			kept = append(kept, m)
		}
	}
	s.modules[r.Name] = kept

	return nil
}

// Modules returns the modules in the machine running r: explicit ones first,
// then the default module in every remaining slot.
func (s *Spec) Modules(r *recipe.Recipe) []*Module {
	d, err := s.Machine(r)
	if err != nil {
		return nil
	}
	out := append([]*Module(nil), s.modules[r.Name]...)
	if s.defaultModule != nil && s.defaultModule.CanUse(r) {
		for len(out) < d.ModuleSlots {
			out = append(out, s.defaultModule)
		}
	}

	return out
}

// ProdEffect returns the productivity multiplier for r.
func (s *Spec) ProdEffect(r *recipe.Recipe) rational.Rational {
	d, err := s.Machine(r)
	if err != nil {
		return rational.One
	}
	prod := rational.One
	for _, m := range s.Modules(r) {
		prod = prod.Add(m.Productivity)
	}
	if d.Mining {
		prod = prod.Add(s.miningProd)
	}

	return prod
}

// SpeedEffect returns the speed multiplier for r. Beacons only affect
// machines with module slots.
func (s *Spec) SpeedEffect(r *recipe.Recipe) rational.Rational {
	d, err := s.Machine(r)
	if err != nil {
		return rational.One
	}
	speed := rational.One
	for _, m := range s.Modules(r) {
		speed = speed.Add(m.Speed)
	}
	if d.ModuleSlots > 0 && s.beacon != nil {
		speed = speed.Add(s.beacon.Speed.Mul(s.beaconCount).Mul(rational.Half))
	}

	return speed
}

// PowerEffect returns the energy multiplier for r, never below 1/5.
func (s *Spec) PowerEffect(r *recipe.Recipe) rational.Rational {
	d, err := s.Machine(r)
	if err != nil {
		return rational.One
	}
	power := rational.One
	for _, m := range s.Modules(r) {
		power = power.Add(m.Power)
	}
	if d.ModuleSlots > 0 && s.beacon != nil {
		power = power.Add(s.beacon.Power.Mul(s.beaconCount).Mul(rational.Half))
	}

	return rational.Max(power, minPowerEffect)
}

// Legacy reports whether the legacy productivity model is selected.
func (s *Spec) Legacy() bool { return s.legacy }

// RecipeRate returns crafts per second for one machine running r.
func (s *Spec) RecipeRate(r *recipe.Recipe) (rational.Rational, error) {
	d, err := s.Machine(r)
	if err != nil {
		return rational.Zero, fmt.Errorf("RecipeRate: %w", err)
	}
	perCraft, err := r.Time.Reciprocal()
	if err != nil {
		return rational.Zero, fmt.Errorf("RecipeRate(%q): %w", r.Name, ErrZeroTime)
	}

	return perCraft.Mul(d.Speed).Mul(s.SpeedEffect(r)), nil
}

// FactoryCount returns how many machines are needed to run r at rate crafts
// per second.
func (s *Spec) FactoryCount(r *recipe.Recipe, rate rational.Rational) (rational.Rational, error) {
	perMachine, err := s.RecipeRate(r)
	if err != nil {
		return rational.Zero, fmt.Errorf("FactoryCount: %w", err)
	}
	count, _ := rate.Div(perMachine) // perMachine > 0

	return count, nil
}

// PowerUsage returns the energy source and the power drawn by count machines
// running r. Electric machines also draw an idle drain of 1/30 of their usage
// for the unused fraction of the last machine, and are scaled by PowerEffect.
func (s *Spec) PowerUsage(r *recipe.Recipe, count rational.Rational) (string, rational.Rational, error) {
	d, err := s.Machine(r)
	if err != nil {
		return "", rational.Zero, fmt.Errorf("PowerUsage: %w", err)
	}
	if d.Fuel != Electric {
		return d.Fuel, d.EnergyUsage.Mul(count), nil
	}
	drain, _ := d.EnergyUsage.Div(drainDivisor)
	power := d.EnergyUsage.Mul(count)
	if _, frac, _ := count.DivMod(rational.One); !frac.IsZero() {
		power = power.Add(rational.One.Sub(frac).Mul(drain))
	}

	return "electric", power.Mul(s.PowerEffect(r)), nil
}

// FuelIngredient returns the preferred fuel a burner machine consumes per
// craft of r: (energy usage / RecipeRate) / fuel value. It is empty for
// electric machines, recipes without a machine or when no fuel is configured.
func (s *Spec) FuelIngredient(r *recipe.Recipe) []recipe.Ingredient {
	d, err := s.Machine(r)
	if err != nil || d.Fuel != Chemical || s.fuel == nil {
		return nil
	}
	rate, err := s.RecipeRate(r)
	if err != nil {
		return nil
	}
	perCraft, _ := d.EnergyUsage.Div(rate) // rate > 0
	amount, _ := perCraft.Div(s.fuel.Value)
	if amount.IsZero() {
		return nil
	}

	return []recipe.Ingredient{{Item: s.fuel.Item, Amount: amount}}
}
