package simulator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/statistics"
)

// TrialsConfig configures a batch of independent simulation runs. Each
// trial owns its own shoe and bankroll, so trials run concurrently without
// any shared state. Trial i shuffles with seed Seed+i for reproducibility.
type TrialsConfig struct {
	Config
	Trials      int
	Parallelism int // Max concurrent trials; 0 means unbounded
}

// RunTrials executes the batch and aggregates per-trial results. Results
// are folded in trial order, so the returned statistics are identical for
// identical seeds regardless of scheduling.
func RunTrials(cfg TrialsConfig) (*statistics.Statistics, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", cfg.Trials)
	}

	results := make([]Result, cfg.Trials)

	var g errgroup.Group
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for i := 0; i < cfg.Trials; i++ {
		g.Go(func() error {
			trialCfg := cfg.Config
			trialCfg.Seed = cfg.Seed + int64(i)
			trialCfg.RNG = randutil.New(trialCfg.Seed)

			result, err := New(trialCfg).Run()
			if err != nil {
				return fmt.Errorf("trial %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(statistics.TrialResult{
			Profit:      r.Profit,
			ROI:         r.ROI,
			Wins:        r.Wins,
			Losses:      r.Losses,
			Pushes:      r.Pushes,
			HandsPlayed: r.HandsPlayed,
			Bankrupt:    r.Bankrupt,
			Seed:        r.Seed,
		})
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}
