// Package simulator runs repeated blackjack hands against a persistent shoe,
// tracking bankroll evolution to estimate the expected value of a strategy.
package simulator

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultDecks    = 1
	DefaultBankroll = 10000.0
)

// Config holds configuration for a simulation run.
type Config struct {
	Strategy strategy.Strategy
	Hands    int
	Decks    int
	Bankroll float64

	// Seed drives shoe shuffling. An explicit RNG takes precedence when
	// set; otherwise one is derived from Seed.
	Seed int64
	RNG  *rand.Rand

	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the summary of one simulation run. WinRate divides by the
// requested hand count even when bankruptcy truncates the run, matching the
// house ledger convention; HandsPlayed exposes the truncation.
type Result struct {
	Strategy         string
	HandsRequested   int
	HandsPlayed      int
	Wins             int
	Losses           int
	Pushes           int
	StartingBankroll float64
	FinalBankroll    float64
	Profit           float64
	ROI              float64 // Percent of starting bankroll
	WinRate          float64 // Percent of requested hands won
	Bankrupt         bool
	Seed             int64
	Duration         time.Duration
}

// Simulator runs blackjack simulations.
type Simulator struct {
	config Config
}

// New creates a simulator, applying defaults for unset config fields.
func New(config Config) *Simulator {
	if config.Decks == 0 {
		config.Decks = DefaultDecks
	}
	if config.Bankroll == 0 {
		config.Bankroll = DefaultBankroll
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.RNG == nil {
		config.RNG = randutil.New(config.Seed)
	}
	return &Simulator{config: config}
}

// Run executes the simulation: one shoe shared across all hands, bankroll
// folded forward round by round, stopping early if the bankroll is
// exhausted. A strategy that violates the betting contract aborts the run.
func (s *Simulator) Run() (Result, error) {
	cfg := s.config
	if cfg.Strategy == nil {
		return Result{}, fmt.Errorf("no strategy configured")
	}

	start := cfg.Clock.Now()
	shoe := deck.NewShoe(cfg.Decks, cfg.RNG)
	bankroll := cfg.Bankroll

	var wins, losses, pushes, played int
	bankrupt := false

	for hand := 0; hand < cfg.Hands; hand++ {
		if bankroll <= 0 {
			bankrupt = true
			cfg.Logger.Info("bankroll exhausted, stopping early", "hands_played", played)
			break
		}

		var payoff float64
		var err error
		bankroll, payoff, err = game.PlayHand(shoe, cfg.Strategy, bankroll)
		if err != nil {
			return Result{}, fmt.Errorf("hand %d: %w", hand+1, err)
		}
		played++

		switch {
		case payoff > 0:
			wins++
		case payoff < 0:
			losses++
		default:
			pushes++
		}

		cfg.Logger.Debug("hand settled",
			"hand", hand+1,
			"payoff", payoff,
			"bankroll", bankroll)
	}

	profit := bankroll - cfg.Bankroll
	result := Result{
		Strategy:         cfg.Strategy.Name(),
		HandsRequested:   cfg.Hands,
		HandsPlayed:      played,
		Wins:             wins,
		Losses:           losses,
		Pushes:           pushes,
		StartingBankroll: cfg.Bankroll,
		FinalBankroll:    bankroll,
		Profit:           profit,
		ROI:              profit / cfg.Bankroll * 100,
		Bankrupt:         bankrupt,
		Seed:             cfg.Seed,
		Duration:         cfg.Clock.Since(start),
	}
	if cfg.Hands > 0 {
		result.WinRate = float64(wins) / float64(cfg.Hands) * 100
	}
	return result, nil
}
