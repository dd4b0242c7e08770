package game

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func handOf(ranks ...deck.Rank) *Hand {
	h := &Hand{}
	for _, r := range ranks {
		h.Add(deck.NewCard(deck.Spades, r))
	}
	return h
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name      string
		ranks     []deck.Rank
		wantTotal int
		wantSoft  bool
	}{
		{"no aces", []deck.Rank{deck.Ten, deck.Seven}, 17, false},
		{"ace counts as 11", []deck.Rank{deck.Ace, deck.Six}, 17, true},
		{"ace reduces to avoid bust", []deck.Rank{deck.Ace, deck.Six, deck.Nine}, 16, false},
		{"two aces only one soft", []deck.Rank{deck.Ace, deck.Ace}, 12, true},
		{"two aces with face", []deck.Rank{deck.Ace, deck.Ace, deck.King}, 12, false},
		{"three card 21 soft", []deck.Rank{deck.Ace, deck.Five, deck.Five}, 21, true},
		{"hard bust", []deck.Rank{deck.King, deck.Queen, deck.Five}, 25, false},
		{"ace saves then busts anyway", []deck.Rank{deck.Ace, deck.King, deck.Queen, deck.Five}, 26, false},
		{"natural", []deck.Rank{deck.Ace, deck.King}, 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, soft := handOf(tt.ranks...).Value()
			if total != tt.wantTotal || soft != tt.wantSoft {
				t.Errorf("Value() = (%d, %v), want (%d, %v)", total, soft, tt.wantTotal, tt.wantSoft)
			}
		})
	}
}

func TestHandValueNeverLeavesReducibleBust(t *testing.T) {
	// Whatever the hand, a total over 21 means every ace is already hard.
	hands := []*Hand{
		handOf(deck.Ace, deck.Ace, deck.Ace, deck.King, deck.Queen),
		handOf(deck.Ace, deck.Nine, deck.Nine, deck.Nine),
		handOf(deck.King, deck.Queen, deck.Jack),
	}
	for _, h := range hands {
		total, soft := h.Value()
		if total > Blackjack && soft {
			t.Errorf("hand %s reports bust total %d while still soft", h, total)
		}
	}
}

func TestIsBlackjack(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		want  bool
	}{
		{"ace king", []deck.Rank{deck.Ace, deck.King}, true},
		{"ace queen", []deck.Rank{deck.Ace, deck.Queen}, true},
		{"ace ace nine is 21 but three cards", []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, false},
		{"two card 20", []deck.Rank{deck.King, deck.Queen}, false},
		{"seven seven seven", []deck.Rank{deck.Seven, deck.Seven, deck.Seven}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.ranks...).IsBlackjack(); got != tt.want {
				t.Errorf("IsBlackjack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBust(t *testing.T) {
	if handOf(deck.Ten, deck.Seven).IsBust() {
		t.Error("17 reported as bust")
	}
	if !handOf(deck.King, deck.Queen, deck.Five).IsBust() {
		t.Error("25 not reported as bust")
	}
	if handOf(deck.Ace, deck.King, deck.Queen).IsBust() {
		t.Error("soft hand should reduce instead of busting")
	}
}
