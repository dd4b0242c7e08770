package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/strategy"
)

// SimulateCmd runs a single simulation from flags, or a set of simulations
// from an HCL run-configuration file.
type SimulateCmd struct {
	Strategy string  `default:"threshold" help:"Strategy to play: threshold, chart"`
	Stake    float64 `default:"10" help:"Flat bet size"`
	Hands    int     `default:"10000" help:"Number of hands to simulate"`
	Decks    int     `default:"1" help:"Number of decks in the shoe"`
	Bankroll float64 `default:"10000" help:"Starting bankroll"`
	Seed     *int64  `help:"Deterministic RNG seed (optional)"`
	Config   string  `help:"HCL run configuration file" type:"path"`
	Debug    bool    `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	if c.Config != "" {
		return runConfigFile(c.Config, logger)
	}

	strat, err := strategy.New(c.Strategy, c.Stake)
	if err != nil {
		return err
	}
	rng, seed := resolveSeed(c.Seed, logger)

	logger.Info("starting simulation",
		"strategy", strat.Name(),
		"hands", c.Hands,
		"decks", c.Decks,
		"bankroll", c.Bankroll)

	result, err := simulator.New(simulator.Config{
		Strategy: strat,
		Hands:    c.Hands,
		Decks:    c.Decks,
		Bankroll: c.Bankroll,
		Seed:     seed,
		RNG:      rng,
		Logger:   logger,
	}).Run()
	if err != nil {
		return err
	}

	renderResult(os.Stdout, result)
	return nil
}

// runConfigFile executes every simulation block in the file, batching
// through RunTrials when a block asks for more than one trial.
func runConfigFile(path string, logger *log.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	for _, sim := range cfg.Simulations {
		strat, err := strategy.New(sim.Strategy, sim.Stake)
		if err != nil {
			return fmt.Errorf("simulation %q: %w", sim.Name, err)
		}

		var seedFlag *int64
		if sim.Seed != 0 {
			seedFlag = &sim.Seed
		}
		rng, seed := resolveSeed(seedFlag, logger)

		runCfg := simulator.Config{
			Strategy: strat,
			Hands:    sim.Hands,
			Decks:    sim.Decks,
			Bankroll: sim.Bankroll,
			Seed:     seed,
			RNG:      rng,
			Logger:   logger,
		}

		logger.Info("starting simulation",
			"name", sim.Name,
			"strategy", strat.Name(),
			"hands", sim.Hands,
			"trials", sim.Trials)

		if sim.Trials > 1 {
			stats, err := simulator.RunTrials(simulator.TrialsConfig{
				Config: runCfg,
				Trials: sim.Trials,
			})
			if err != nil {
				return fmt.Errorf("simulation %q: %w", sim.Name, err)
			}
			renderStatistics(os.Stdout, sim.Name, stats)
			continue
		}

		result, err := simulator.New(runCfg).Run()
		if err != nil {
			return fmt.Errorf("simulation %q: %w", sim.Name, err)
		}
		renderResult(os.Stdout, result)
	}
	return nil
}

// resolveSeed picks the RNG for a run: the explicit seed when given, a wall
// clock seed otherwise. The chosen seed is always logged for replay.
func resolveSeed(flag *int64, logger *log.Logger) (*rand.Rand, int64) {
	if flag != nil {
		logger.Info("using deterministic seed", "seed", *flag)
		return randutil.New(*flag), *flag
	}
	rng, seed := randutil.NewFromTime()
	logger.Info("using random seed", "seed", seed)
	return rng, seed
}
