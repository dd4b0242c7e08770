package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/strategy"
)

// ErrInvalidBet indicates a strategy proposed a non-positive bet or a bet
// exceeding the current bankroll. This is a contract violation by the
// strategy, not a recoverable table condition: the round aborts before any
// cards are dealt.
var ErrInvalidBet = errors.New("invalid bet")

// dealerStand is the total at which the dealer stops drawing. The dealer
// stands on any 17, soft or hard.
const dealerStand = 17

// blackjackPayout is the fixed 3:2 premium for a natural.
const blackjackPayout = 1.5

// Round runs one blackjack hand against the house: deal, player turn,
// dealer turn, settlement. Cards come from a shoe owned by the caller and
// shared across rounds.
type Round struct {
	shoe   *deck.Shoe
	player Hand
	dealer Hand
}

// NewRound creates a round drawing from the given shoe.
func NewRound(shoe *deck.Shoe) *Round {
	return &Round{shoe: shoe}
}

// PlayerHand returns the player's hand.
func (r *Round) PlayerHand() *Hand { return &r.player }

// DealerHand returns the dealer's hand.
func (r *Round) DealerHand() *Hand { return &r.dealer }

// Deal draws the opening two cards for each side, interleaved
// player-dealer-player-dealer as at a real table. The order changes nothing
// probabilistically but pins the draw sequence for a seeded shoe.
func (r *Round) Deal() {
	r.player.Add(r.shoe.Draw())
	r.dealer.Add(r.shoe.Draw())
	r.player.Add(r.shoe.Draw())
	r.dealer.Add(r.shoe.Draw())
}

// PlayerTurn runs the player's hit/stand loop against the strategy and
// reports whether the player is still in the hand (false means bust).
// Termination is guaranteed: every hit strictly increases the total.
func (r *Round) PlayerTurn(s strategy.Strategy) bool {
	upcard := r.dealer.Cards()[0].Value()
	for {
		total, soft := r.player.Value()
		if !s.ShouldHit(total, soft, upcard) {
			return true
		}
		r.player.Add(r.shoe.Draw())
		if r.player.IsBust() {
			return false
		}
	}
}

// DealerTurn draws for the dealer until the total reaches 17. The dealer's
// play is a fixed house rule, never a strategy.
func (r *Round) DealerTurn() {
	for {
		total, _ := r.dealer.Value()
		if total >= dealerStand {
			return
		}
		r.dealer.Add(r.shoe.Draw())
	}
}

// Settle computes the payoff relative to the bet. The checks are ordered;
// the first match wins and the set is exhaustive over bust, blackjack, and
// total comparison.
func (r *Round) Settle(bet float64) float64 {
	playerTotal, _ := r.player.Value()
	dealerTotal, _ := r.dealer.Value()

	switch {
	case playerTotal > Blackjack:
		return -bet
	case r.player.IsBlackjack() && !r.dealer.IsBlackjack():
		return bet * blackjackPayout
	case r.dealer.IsBlackjack() && !r.player.IsBlackjack():
		return -bet
	case r.player.IsBlackjack() && r.dealer.IsBlackjack():
		return 0
	case dealerTotal > Blackjack:
		return bet
	case playerTotal > dealerTotal:
		return bet
	case playerTotal < dealerTotal:
		return -bet
	default:
		return 0
	}
}

// PlayHand plays one complete round: validates the strategy's bet, deals,
// runs both turns (the dealer only plays if the player did not bust), and
// settles. It returns the updated bankroll and the round's payoff.
func PlayHand(shoe *deck.Shoe, s strategy.Strategy, bankroll float64) (newBankroll, payoff float64, err error) {
	bet := s.Bet(bankroll)
	if bet <= 0 || bet > bankroll {
		return bankroll, 0, fmt.Errorf("%w: %.2f against bankroll %.2f", ErrInvalidBet, bet, bankroll)
	}

	round := NewRound(shoe)
	round.Deal()

	if round.PlayerTurn(s) {
		round.DealerTurn()
	}

	payoff = round.Settle(bet)
	return bankroll - bet + payoff, payoff, nil
}
