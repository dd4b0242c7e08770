package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// Blackjack is the target total.
const Blackjack = 21

// Hand is the ordered set of cards held by one participant for the duration
// of a single round.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Value returns the best total for the hand and whether it is soft. Every
// Ace starts at 11; while the total busts and a reducible Ace remains, one
// Ace is reinterpreted as 1. The hand is soft iff an Ace still counts as 11
// after reduction.
func (h *Hand) Value() (total int, soft bool) {
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == deck.Ace {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21.
func (h *Hand) IsBlackjack() bool {
	if len(h.cards) != 2 {
		return false
	}
	total, _ := h.Value()
	return total == Blackjack
}

// IsBust reports whether the hand's best total exceeds 21.
func (h *Hand) IsBust() bool {
	total, _ := h.Value()
	return total > Blackjack
}

// String renders the hand for logs (e.g. "A♠ K♦ (21)").
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	total, _ := h.Value()
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), total)
}
