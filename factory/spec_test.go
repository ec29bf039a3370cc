package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/factory"
	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

func q(p, d int64) rational.Rational { return rational.MustNew(p, d) }

func n(v int64) rational.Rational { return rational.FromInt(v) }

type fixture struct {
	g                        *recipe.Graph
	gear, plate, ore, coal   *recipe.Recipe
	coalItem                 *recipe.Item
	assembler, furnace, dril factory.Def
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{g: recipe.NewGraph()}
	var err error
	f.gear, err = f.g.AddRecipe("gear", "crafting", q(1, 2),
		[]recipe.Quantity{recipe.Q("plate", n(2))}, []recipe.Quantity{recipe.Q("gear", n(1))})
	require.NoError(t, err)
	f.plate, err = f.g.AddRecipe("plate", "smelting", q(16, 5),
		[]recipe.Quantity{recipe.Q("ore", n(1))}, []recipe.Quantity{recipe.Q("plate", n(1))})
	require.NoError(t, err)
	f.ore, err = f.g.AddRecipe("ore", "mining", n(1), nil, []recipe.Quantity{recipe.Q("ore", n(1))})
	require.NoError(t, err)
	added, err := f.g.AddResourceRecipes()
	require.NoError(t, err)
	require.Empty(t, added)
	f.coalItem, err = f.g.AddItem("coal")
	require.NoError(t, err)
	f.coal, err = f.g.AddRecipe("coal", "", rational.Zero, nil, []recipe.Quantity{recipe.Q("coal", n(1))})
	require.NoError(t, err)

	f.assembler = factory.Def{Name: "assembler", Categories: []string{"crafting"}, Speed: q(3, 4), ModuleSlots: 4, EnergyUsage: n(150000)}
	f.furnace = factory.Def{Name: "stone-furnace", Categories: []string{"smelting"}, Speed: n(1), EnergyUsage: n(90000), Fuel: factory.Chemical}
	f.dril = factory.Def{Name: "drill", Categories: []string{"mining"}, Speed: q(1, 2), ModuleSlots: 3, EnergyUsage: n(90000), Mining: true}

	return f
}

func (f *fixture) defs() []factory.Def { return []factory.Def{f.assembler, f.furnace, f.dril} }

var (
	prodModule  = &factory.Module{Name: "prod", Productivity: q(1, 10), Speed: q(-3, 20), Power: q(4, 5)}
	speedModule = &factory.Module{Name: "speed", Speed: q(1, 2), Power: q(7, 10)}
	effModule   = &factory.Module{Name: "eff", Power: q(-3, 10)}
)

func TestNewRejectsInvalidDefs(t *testing.T) {
	_, err := factory.New([]factory.Def{{Name: "x", Categories: []string{"c"}}}) // zero speed
	require.ErrorIs(t, err, factory.ErrInvalidDef)

	_, err = factory.New([]factory.Def{{Name: "x", Speed: n(1)}}) // no categories
	require.ErrorIs(t, err, factory.ErrInvalidDef)
}

func TestNoMachine(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(nil)
	require.NoError(t, err)

	_, err = s.Machine(f.gear)
	require.ErrorIs(t, err, factory.ErrNoFactory)
	_, err = s.RecipeRate(f.coal) // resource recipe
	require.ErrorIs(t, err, factory.ErrNoFactory)
	assert.True(t, s.ProdEffect(f.gear).Equal(rational.One))
	assert.Nil(t, s.FuelIngredient(f.gear))
}

func TestRecipeRateAndCount(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs())
	require.NoError(t, err)

	rate, err := s.RecipeRate(f.gear)
	require.NoError(t, err)
	assert.Equal(t, "3/2", rate.String()) // 1 / (1/2) * 3/4

	count, err := s.FactoryCount(f.gear, n(3))
	require.NoError(t, err)
	assert.Equal(t, "2", count.String())
}

func TestModuleEffects(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs())
	require.NoError(t, err)
	require.NoError(t, s.SetModules(f.gear, prodModule, prodModule))

	assert.Equal(t, "6/5", s.ProdEffect(f.gear).String())
	assert.Equal(t, "7/10", s.SpeedEffect(f.gear).String())
	assert.Equal(t, "13/5", s.PowerEffect(f.gear).String())

	rate, err := s.RecipeRate(f.gear)
	require.NoError(t, err)
	assert.Equal(t, "21/20", rate.String())

	count, err := s.FactoryCount(f.gear, n(3))
	require.NoError(t, err)
	assert.Equal(t, "20/7", count.String())

	err = s.SetModules(f.gear, prodModule, prodModule, prodModule, prodModule, prodModule)
	require.ErrorIs(t, err, factory.ErrTooManyModules)
}

func TestModuleLimit(t *testing.T) {
	f := newFixture(t)
	limited := &factory.Module{Name: "prod-limited", Productivity: q(1, 10), Limit: map[string]bool{"plate": true}}
	s, err := factory.New(f.defs(), factory.WithDefaultModule(limited))
	require.NoError(t, err)

	assert.Empty(t, s.Modules(f.gear)) // not allowed in gear
	assert.True(t, s.ProdEffect(f.gear).Equal(rational.One))
}

func TestDefaultModuleAndBeacon(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs(),
		factory.WithDefaultModule(speedModule),
		factory.WithBeacon(speedModule, n(2)),
	)
	require.NoError(t, err)

	assert.Len(t, s.Modules(f.gear), 4)
	// 1 + 4 * 1/2 + 1/2 * 2 * 1/2
	assert.Equal(t, "7/2", s.SpeedEffect(f.gear).String())
	// The furnace has no slots: no modules, no beacon.
	assert.Equal(t, "1", s.SpeedEffect(f.plate).String())
}

func TestPowerEffectFloor(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs())
	require.NoError(t, err)
	require.NoError(t, s.SetModules(f.gear, effModule, effModule, effModule, effModule))

	assert.Equal(t, "1/5", s.PowerEffect(f.gear).String())
}

func TestMiningProductivity(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs(), factory.WithMiningProductivity(q(1, 10)))
	require.NoError(t, err)

	assert.Equal(t, "11/10", s.ProdEffect(f.ore).String())
	assert.Equal(t, "1", s.ProdEffect(f.gear).String()) // not a mining machine
	oreItem, _ := f.g.Item("ore")
	assert.Equal(t, "11/10", f.ore.Gives(oreItem, s).String())
}

func TestFuelIngredient(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs(), factory.WithPreferredFuel(f.coalItem, n(4000000)))
	require.NoError(t, err)

	fuel := s.FuelIngredient(f.plate)
	require.Len(t, fuel, 1)
	assert.Equal(t, f.coalItem, fuel[0].Item)
	assert.Equal(t, "9/125", fuel[0].Amount.String()) // 90 kW * 3.2 s / 4 MJ

	assert.Nil(t, s.FuelIngredient(f.gear)) // electric

	noFuel, err := factory.New(f.defs())
	require.NoError(t, err)
	assert.Nil(t, noFuel.FuelIngredient(f.plate))
}

func TestPowerUsage(t *testing.T) {
	f := newFixture(t)
	s, err := factory.New(f.defs())
	require.NoError(t, err)

	kind, power, err := s.PowerUsage(f.gear, q(5, 2))
	require.NoError(t, err)
	assert.Equal(t, "electric", kind)
	assert.Equal(t, "377500", power.String()) // 2.5 * 150 kW + 1/2 idle * 5 kW drain

	kind, power, err = s.PowerUsage(f.plate, n(2))
	require.NoError(t, err)
	assert.Equal(t, factory.Chemical, kind)
	assert.Equal(t, "180000", power.String())
}

func TestLegacyFlag(t *testing.T) {
	s, err := factory.New(nil, factory.WithLegacy(true))
	require.NoError(t, err)
	assert.True(t, s.Legacy())
}
