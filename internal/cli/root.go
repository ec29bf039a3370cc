// Package cli implements the prodrate command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodrate/config"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	dataPath   string
	verbose    bool

	cfg       *config.Config
	log       *logrus.Logger
	closeLogs func() error
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "prodrate",
		Short: "Exact production rates for recipe graphs",
		Long: `prodrate resolves target item rates into exact recipe rates over a
recipe data file, solving loops and by-product chains with rational
linear programming.

Examples:
  prodrate solve --data recipes.yaml --target iron-gear=5/2
  prodrate solve --target heavy-oil=10 --disable advanced-oil-processing
  prodrate groups --data recipes.yaml
  prodrate watch --target rocket-fuel=1`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLogs != nil {
				return a.closeLogs()
			}
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file (default: prodrate.yaml in . or ./configs)")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "",
		"Recipe data file, overrides data.path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Log at debug level")

	root.AddCommand(newSolveCommand(a))
	root.AddCommand(newGroupsCommand(a))
	root.AddCommand(newWatchCommand(a))

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Data.Path = a.dataPath
	}
	if cfg.Data.Path == "" {
		return fmt.Errorf("no recipe data: set --data or data.path")
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	log, closeLogs, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLogs = cfg, log, closeLogs

	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a logrus logger from cfg. The returned func closes a log
// file when Output names one.
func newLogger(cfg config.LoggingConfig) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	noop := func() error { return nil }
	var out io.Writer
	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		log.SetOutput(f)
		return log, f.Close, nil
	}
	log.SetOutput(out)

	return log, noop, nil
}
