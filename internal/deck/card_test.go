package deck

import (
	"testing"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want int
	}{
		{"two", NewCard(Spades, Two), 2},
		{"nine", NewCard(Hearts, Nine), 9},
		{"ten", NewCard(Diamonds, Ten), 10},
		{"jack", NewCard(Clubs, Jack), 10},
		{"queen", NewCard(Spades, Queen), 10},
		{"king", NewCard(Hearts, King), 10},
		{"ace", NewCard(Diamonds, Ace), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	c := NewCard(Spades, Ace)
	if c.String() != "A♠" {
		t.Errorf("String() = %q, want %q", c.String(), "A♠")
	}
	c = NewCard(Hearts, Ten)
	if c.String() != "T♥" {
		t.Errorf("String() = %q, want %q", c.String(), "T♥")
	}
}
