package main

import (
	"os"

	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/strategy"
)

// TrialsCmd runs independent simulation trials concurrently and reports
// aggregate statistics over per-trial profit.
type TrialsCmd struct {
	Strategy    string  `default:"threshold" help:"Strategy to play: threshold, chart"`
	Stake       float64 `default:"10" help:"Flat bet size"`
	Hands       int     `default:"10000" help:"Number of hands per trial"`
	Decks       int     `default:"1" help:"Number of decks in the shoe"`
	Bankroll    float64 `default:"10000" help:"Starting bankroll per trial"`
	Trials      int     `default:"8" help:"Number of independent trials"`
	Parallelism int     `default:"0" help:"Max concurrent trials (0 for unbounded)"`
	Seed        *int64  `help:"Base RNG seed; trial i uses seed+i (optional)"`
	Debug       bool    `help:"Enable debug logging"`
}

func (c *TrialsCmd) Run() error {
	logger := setupLogger(c.Debug)

	strat, err := strategy.New(c.Strategy, c.Stake)
	if err != nil {
		return err
	}
	_, seed := resolveSeed(c.Seed, logger)

	logger.Info("starting trials",
		"strategy", strat.Name(),
		"trials", c.Trials,
		"hands", c.Hands,
		"decks", c.Decks)

	stats, err := simulator.RunTrials(simulator.TrialsConfig{
		Config: simulator.Config{
			Strategy: strat,
			Hands:    c.Hands,
			Decks:    c.Decks,
			Bankroll: c.Bankroll,
			Seed:     seed,
			Logger:   logger,
		},
		Trials:      c.Trials,
		Parallelism: c.Parallelism,
	})
	if err != nil {
		return err
	}

	renderStatistics(os.Stdout, strat.Name(), stats)
	return nil
}
