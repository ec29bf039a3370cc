package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prodrate/factory"
	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

// Energy source names accepted in the factories list.
const (
	FuelElectric = "electric"
	FuelChemical = "chemical"
)

type fileDef struct {
	Items     []string     `yaml:"items" validate:"dive,required"`
	Recipes   []recipeDef  `yaml:"recipes" validate:"required,min=1,dive"`
	Factories []machineDef `yaml:"factories" validate:"dive"`
	Modules   []moduleDef  `yaml:"modules" validate:"dive"`
	Fuels     []fuelDef    `yaml:"fuels" validate:"dive"`
}

type recipeDef struct {
	Name        string        `yaml:"name" validate:"required"`
	Category    string        `yaml:"category"`
	Time        Amount        `yaml:"time"`
	Ingredients []quantityDef `yaml:"ingredients" validate:"dive"`
	Products    []quantityDef `yaml:"products" validate:"required,min=1,dive"`
}

type machineDef struct {
	Name        string   `yaml:"name" validate:"required"`
	Categories  []string `yaml:"categories" validate:"required,min=1,dive,required"`
	Speed       Amount   `yaml:"speed"`
	ModuleSlots int      `yaml:"module_slots" validate:"min=0"`
	EnergyUsage Amount   `yaml:"energy_usage"`
	Fuel        string   `yaml:"fuel" validate:"omitempty,oneof=electric chemical"`
	Mining      bool     `yaml:"mining"`
}

type moduleDef struct {
	Name         string   `yaml:"name" validate:"required"`
	Productivity Amount   `yaml:"productivity"`
	Speed        Amount   `yaml:"speed"`
	Power        Amount   `yaml:"power"`
	Limit        []string `yaml:"limit" validate:"dive,required"`
}

type fuelDef struct {
	Item  string `yaml:"item" validate:"required"`
	Value Amount `yaml:"value"`
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	resourceRecipes bool
}

// WithResourceRecipes controls whether Load gives every item without a
// producer a resource recipe. Enabled by default.
func WithResourceRecipes(enabled bool) Option {
	return func(o *loadOptions) { o.resourceRecipes = enabled }
}

// Dataset is a loaded data file.
type Dataset struct {
	Graph     *recipe.Graph
	Factories []factory.Def

	modules map[string]*factory.Module
	fuels   map[string]rational.Rational
}

// Load decodes and validates a data file and builds its recipe graph.
//
// Errors:
//   - ErrDecode for malformed YAML, unknown keys or bad amounts.
//   - ErrInvalid for validation failures, non-positive fuel values and
//     duplicate module or fuel names.
//   - recipe errors from Graph.AddRecipe, wrapped.
func Load(r io.Reader, opts ...Option) (*Dataset, error) {
	o := loadOptions{resourceRecipes: true}
	for _, opt := range opts {
		opt(&o)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f fileDef
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: empty input: %w", ErrDecode)
		}
		return nil, fmt.Errorf("Load: %v: %w", err, ErrDecode)
	}
	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("Load: %s: %w", describe(err), ErrInvalid)
	}

	d := &Dataset{
		Graph:   recipe.NewGraph(),
		modules: make(map[string]*factory.Module, len(f.Modules)),
		fuels:   make(map[string]rational.Rational, len(f.Fuels)),
	}
	if err := d.build(&f, o); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return d, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Dataset, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	d, err := Load(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w", path, err)
	}

	return d, nil
}

func (d *Dataset) build(f *fileDef, o loadOptions) error {
	for _, name := range f.Items {
		if _, err := d.Graph.AddItem(name); err != nil {
			return err
		}
	}
	for _, rd := range f.Recipes {
		if _, err := d.Graph.AddRecipe(rd.Name, rd.Category, rd.Time.Rational,
			quantities(rd.Ingredients), quantities(rd.Products)); err != nil {
			return err
		}
	}
	for _, fd := range f.Fuels {
		if _, dup := d.fuels[fd.Item]; dup {
			return fmt.Errorf("fuel %q defined twice: %w", fd.Item, ErrInvalid)
		}
		if fd.Value.Sign() <= 0 {
			return fmt.Errorf("fuel %q value %s: %w", fd.Item, fd.Value, ErrInvalid)
		}
		if _, err := d.Graph.AddItem(fd.Item); err != nil {
			return err
		}
		d.fuels[fd.Item] = fd.Value.Rational
	}

	if o.resourceRecipes {
		if _, err := d.Graph.AddResourceRecipes(); err != nil {
			return err
		}
	}

	for _, md := range f.Factories {
		def := factory.Def{
			Name:        md.Name,
			Categories:  md.Categories,
			Speed:       md.Speed.Rational,
			ModuleSlots: md.ModuleSlots,
			EnergyUsage: md.EnergyUsage.Rational,
			Mining:      md.Mining,
		}
		if md.Fuel == FuelChemical {
			def.Fuel = factory.Chemical
		}
		d.Factories = append(d.Factories, def)
	}

	for _, md := range f.Modules {
		if _, dup := d.modules[md.Name]; dup {
			return fmt.Errorf("module %q defined twice: %w", md.Name, ErrInvalid)
		}
		m := &factory.Module{
			Name:         md.Name,
			Productivity: md.Productivity.Rational,
			Speed:        md.Speed.Rational,
			Power:        md.Power.Rational,
		}
		if len(md.Limit) > 0 {
			m.Limit = make(map[string]bool, len(md.Limit))
			for _, name := range md.Limit {
				m.Limit[name] = true
			}
		}
		d.modules[md.Name] = m
	}

	return nil
}

func quantities(defs []quantityDef) []recipe.Quantity {
	out := make([]recipe.Quantity, 0, len(defs))
	for _, q := range defs {
		out = append(out, recipe.Q(q.Item, q.value()))
	}

	return out
}

func describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
	}

	return strings.Join(parts, "; ")
}

// Module returns the module called name.
func (d *Dataset) Module(name string) (*factory.Module, error) {
	m, ok := d.modules[name]
	if !ok {
		return nil, fmt.Errorf("Module(%q): %w", name, ErrUnknownModule)
	}

	return m, nil
}

// Modules returns the module names, sorted.
func (d *Dataset) Modules() []string {
	return sortedNames(d.modules)
}

// Fuel returns the item and energy value of the fuel called name.
func (d *Dataset) Fuel(name string) (*recipe.Item, rational.Rational, error) {
	v, ok := d.fuels[name]
	if !ok {
		return nil, rational.Zero, fmt.Errorf("Fuel(%q): %w", name, ErrUnknownFuel)
	}
	it, err := d.Graph.Item(name)
	if err != nil {
		return nil, rational.Zero, fmt.Errorf("Fuel(%q): %w", name, err)
	}

	return it, v, nil
}

// Fuels returns the fuel names, sorted.
func (d *Dataset) Fuels() []string {
	return sortedNames(d.fuels)
}

// FactorySpec builds a factory.Spec from the file's machines.
func (d *Dataset) FactorySpec(opts ...factory.Option) (*factory.Spec, error) {
	return factory.New(d.Factories, opts...)
}

func sortedNames[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
