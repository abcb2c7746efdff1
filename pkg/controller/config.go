package controller

import (
	stderrors "errors"
	"time"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jrcoleman/quoridor-mcts/pkg/mcts"
)

// Config holds the controller's fixed-at-construction parameters
// (spec.md §4.3). There is no runtime reconfiguration: a Controller is
// built once from a validated Config and never re-validated.
type Config struct {
	C                 float64
	Seed              int64
	MinSimulations    int
	MaxSimulations    int
	SimIncrement      int
	UseRollout        bool
	EvalChildren      bool
	UsePUCT           bool
	UseProbs          bool
	DecideUsingVisits bool
	WatchdogTimeout   time.Duration
	Logger            *logrus.Logger
}

// Option configures a Config, matching the teacher's chainable
// Limits.Set*(...) *Limits style (pkg/mcts/limits.go) adapted to the
// idiomatic functional-options form.
type Option func(*Config)

func WithExplorationConstant(c float64) Option {
	return func(cfg *Config) { cfg.C = c }
}

func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

func WithMinSimulations(n int) Option {
	return func(cfg *Config) { cfg.MinSimulations = n }
}

func WithMaxSimulations(n int) Option {
	return func(cfg *Config) { cfg.MaxSimulations = n }
}

func WithSimIncrement(n int) Option {
	return func(cfg *Config) { cfg.SimIncrement = n }
}

func WithRollout(use bool) Option {
	return func(cfg *Config) { cfg.UseRollout = use }
}

func WithEvalChildren(use bool) Option {
	return func(cfg *Config) { cfg.EvalChildren = use }
}

func WithPUCT(use bool) Option {
	return func(cfg *Config) { cfg.UsePUCT = use }
}

func WithProbs(use bool) Option {
	return func(cfg *Config) { cfg.UseProbs = use }
}

func WithDecideUsingVisits(use bool) Option {
	return func(cfg *Config) { cfg.DecideUsingVisits = use }
}

func WithWatchdogTimeout(d time.Duration) Option {
	return func(cfg *Config) { cfg.WatchdogTimeout = d }
}

func WithLogger(l *logrus.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// DefaultConfig returns a Config with sensible defaults, then applies
// opts on top.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		C:                 0.158,
		Seed:              1,
		MinSimulations:    100,
		MaxSimulations:    10000,
		SimIncrement:      8,
		UseRollout:        true,
		DecideUsingVisits: true,
		WatchdogTimeout:   defaultWatchdogTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg Config) bestChildPolicy() mcts.BestChildPolicy {
	if cfg.DecideUsingVisits {
		return mcts.ByVisits
	}
	return mcts.ByValue
}

// Validate accumulates every configuration violation via
// go-multierror's accumulate-then-return pattern, rather than failing
// on the first bad field, then wraps the result as ErrConfiguration so
// callers can errors.Is against a single sentinel.
func (cfg Config) Validate() error {
	var result *multierror.Error

	if cfg.SimIncrement < 1 {
		result = multierror.Append(result, stderrors.New("sim_increment must be >= 1"))
	}
	if cfg.MinSimulations < 0 {
		result = multierror.Append(result, stderrors.New("min_simulations must be >= 0"))
	}
	if cfg.MaxSimulations < cfg.MinSimulations {
		result = multierror.Append(result, stderrors.New("max_simulations must be >= min_simulations"))
	}
	if cfg.C < 0 {
		result = multierror.Append(result, stderrors.New("exploration constant must be >= 0"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return pkgerrors.Wrap(ErrConfiguration, err.Error())
	}
	return nil
}
