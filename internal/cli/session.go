package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prodrate/config"
	"github.com/katalvlaran/prodrate/dataset"
	"github.com/katalvlaran/prodrate/factory"
	"github.com/katalvlaran/prodrate/solve"
)

// session holds one loaded data file and the solver prepared for it.
type session struct {
	cfg  *config.Config
	opts []solve.Option
	rec  solve.Recorder

	data   *dataset.Dataset
	spec   *factory.Spec
	solver *solve.Solver
}

func openSession(cfg *config.Config, log logrus.FieldLogger, rec solve.Recorder) (*session, error) {
	s := &session{cfg: cfg, rec: rec}
	s.opts = append(s.opts, solve.WithLogger(log), solve.WithMaxPivots(cfg.Solver.MaxPivots))
	if len(cfg.Solver.Priority) > 0 {
		s.opts = append(s.opts, solve.WithPriority(cfg.Solver.Priority...))
	}
	if rec != nil {
		s.opts = append(s.opts, solve.WithRecorder(rec))
	}
	if err := s.reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// totalsObserver is implemented by recorders that export resolution results.
type totalsObserver interface {
	ObserveTotals(t *solve.Totals)
}

// reload reads the data file again and rebuilds the decomposition. The
// previous state is kept when anything fails.
func (s *session) reload() error {
	data, err := dataset.LoadFile(s.cfg.Data.Path, dataset.WithResourceRecipes(s.cfg.Data.ResourceRecipes))
	if err != nil {
		return err
	}
	spec, err := buildSpec(data, s.cfg)
	if err != nil {
		return err
	}
	solver := solve.NewSolver(data.Graph, s.opts...)
	if err := solver.FindSubgraphs(spec); err != nil {
		return err
	}
	if s.solver != nil {
		solver.AddDisabledRecipes(toSet(s.solver.Disabled()))
	}
	s.data, s.spec, s.solver = data, spec, solver

	return nil
}

// buildSpec applies the factory section of cfg to the dataset's machines.
func buildSpec(data *dataset.Dataset, cfg *config.Config) (*factory.Spec, error) {
	opts := []factory.Option{factory.WithLegacy(cfg.Solver.Legacy)}

	bonus, err := cfg.Factory.MiningBonus()
	if err != nil {
		return nil, fmt.Errorf("factory.mining_productivity: %w", err)
	}
	opts = append(opts, factory.WithMiningProductivity(bonus))

	if name := cfg.Factory.PreferredFuel; name != "" {
		item, value, err := data.Fuel(name)
		if err != nil {
			return nil, fmt.Errorf("factory.preferred_fuel: %w", err)
		}
		opts = append(opts, factory.WithPreferredFuel(item, value))
	}
	if name := cfg.Factory.DefaultModule; name != "" {
		m, err := data.Module(name)
		if err != nil {
			return nil, fmt.Errorf("factory.default_module: %w", err)
		}
		opts = append(opts, factory.WithDefaultModule(m))
	}
	if name := cfg.Factory.BeaconModule; name != "" {
		m, err := data.Module(name)
		if err != nil {
			return nil, fmt.Errorf("factory.beacon_module: %w", err)
		}
		count, err := cfg.Factory.Beacons()
		if err != nil {
			return nil, fmt.Errorf("factory.beacon_count: %w", err)
		}
		opts = append(opts, factory.WithBeacon(m, count))
	}

	return data.FactorySpec(opts...)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}

	return set
}
