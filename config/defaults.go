package config

// Default values.
const (
	DefaultDigits        = 3
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogOutput     = "stderr"
	DefaultMetricsAddr   = "localhost:9464"
	DefaultMetricsPath   = "/metrics"
	DefaultMetricsPrefix = "prodrate"
)

// SetDefaults fills unset fields. Booleans are left alone.
func SetDefaults(cfg *Config) {
	if cfg.Solver.Digits == 0 {
		cfg.Solver.Digits = DefaultDigits
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLogOutput
	}

	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = DefaultMetricsAddr
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsPrefix
	}
}
