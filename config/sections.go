package config

import (
	"github.com/katalvlaran/prodrate/rational"
)

// DataConfig locates the recipe dataset.
type DataConfig struct {
	// Path of the YAML dataset.
	Path string `mapstructure:"path"`

	// ResourceRecipes adds a resource recipe for every item nothing produces.
	ResourceRecipes bool `mapstructure:"resource_recipes"`
}

// SolverConfig tunes resolution.
type SolverConfig struct {
	// Priority lists resource recipes from most to least expensive.
	Priority []string `mapstructure:"priority" validate:"dive,required"`

	MaxPivots int  `mapstructure:"max_pivots" validate:"min=0"`
	Legacy    bool `mapstructure:"legacy"`

	// Digits after the decimal point in printed rates.
	Digits int `mapstructure:"digits" validate:"min=0,max=30"`
}

// FactoryConfig holds machine-wide bonuses.
type FactoryConfig struct {
	MiningProductivity string `mapstructure:"mining_productivity" validate:"omitempty,rational"`

	// PreferredFuel names a fuel from the dataset burner machines consume.
	PreferredFuel string `mapstructure:"preferred_fuel"`

	DefaultModule string `mapstructure:"default_module"`
	BeaconModule  string `mapstructure:"beacon_module"`
	BeaconCount   string `mapstructure:"beacon_count" validate:"omitempty,rational"`
}

// MiningBonus parses MiningProductivity; empty is zero.
func (f FactoryConfig) MiningBonus() (rational.Rational, error) {
	return parseOptional(f.MiningProductivity)
}

// Beacons parses BeaconCount; empty is zero.
func (f FactoryConfig) Beacons() (rational.Rational, error) {
	return parseOptional(f.BeaconCount)
}

func parseOptional(s string) (rational.Rational, error) {
	if s == "" {
		return rational.Zero, nil
	}

	return rational.Parse(s)
}

// LoggingConfig selects the logrus level, formatter and destination.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Output is stdout, stderr or a file path.
	Output string `mapstructure:"output" validate:"required"`
}

// MetricsConfig controls the Prometheus endpoint of the watch command.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Path      string `mapstructure:"path" validate:"omitempty,startswith=/"`
	Namespace string `mapstructure:"namespace"`
}
