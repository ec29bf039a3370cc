// Package config loads prodrate settings from a YAML file, a .env file and
// PRODRATE_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable: PRODRATE_SOLVER_DIGITS
// overrides solver.digits.
const EnvPrefix = "PRODRATE"

// Config is the root configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Factory FactoryConfig `mapstructure:"factory"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// keys lists every setting so AutomaticEnv can fill fields absent from the file.
var keys = []string{
	"data.path",
	"data.resource_recipes",
	"solver.priority",
	"solver.max_pivots",
	"solver.legacy",
	"solver.digits",
	"factory.mining_productivity",
	"factory.preferred_fuel",
	"factory.default_module",
	"factory.beacon_module",
	"factory.beacon_count",
	"logging.level",
	"logging.format",
	"logging.output",
	"metrics.enabled",
	"metrics.address",
	"metrics.path",
	"metrics.namespace",
}

// Load reads configuration from path (or prodrate.yaml in the working
// directory and ./configs when path is empty), overlays the environment,
// fills defaults and validates the result. A missing default file is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("prodrate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}
	v.SetDefault("data.resource_recipes", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration holding only defaults.
func Default() *Config {
	cfg := &Config{Data: DataConfig{ResourceRecipes: true}}
	SetDefaults(cfg)

	return cfg
}
