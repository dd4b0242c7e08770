// Package strategy defines the player decision policy consulted by the game
// engine, and the built-in policies selectable by name.
package strategy

import "fmt"

// Strategy decides how much a player wagers and whether to take another
// card. Implementations see only what a real player would: their own total,
// whether it is soft, and the dealer's single face-up card value.
// Implementations may keep internal state but must honour the contract that
// Bet returns a positive amount no larger than the bankroll.
type Strategy interface {
	// Bet returns the wager for the next hand given the current bankroll.
	Bet(bankroll float64) float64

	// ShouldHit reports whether the player should take another card.
	ShouldHit(playerTotal int, soft bool, dealerUpcard int) bool

	// Name identifies the strategy in logs and results.
	Name() string
}

// DefaultStake is the flat wager used by the built-in strategies.
const DefaultStake = 10.0

// New resolves a strategy by name. Known names are "threshold" and "chart".
func New(name string, stake float64) (Strategy, error) {
	switch name {
	case "threshold":
		return NewThreshold(stake), nil
	case "chart":
		return NewChart(stake), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
