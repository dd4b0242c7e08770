package deck

import (
	rand "math/rand/v2"
)

// reshuffleThreshold is the low-water mark for the shoe. When fewer cards
// than this remain before a draw, the shoe is rebuilt and reshuffled. This
// models a continuous-shuffle machine: the penetration is so shallow that
// card counting carries no information.
const reshuffleThreshold = 10

// CardsPerDeck is the number of cards in one standard deck.
const CardsPerDeck = 52

// Shoe is the drawable pool of cards for one or more 52-card decks,
// reshuffled whenever it runs low. It requires an explicit RNG so that
// simulations can be seeded deterministically.
type Shoe struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// NewShoe creates a shuffled shoe holding numDecks decks, drawing
// randomness from rng.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:    make([]Card, 0, numDecks*CardsPerDeck),
		numDecks: numDecks,
		rng:      rng,
	}
	s.Reset()
	return s
}

// Reset rebuilds the full card population and shuffles it.
func (s *Shoe) Reset() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the next card. If fewer than the reshuffle
// threshold remain before the draw, the shoe is reset first, so Draw never
// fails on an empty shoe.
func (s *Shoe) Draw() Card {
	if len(s.cards) < reshuffleThreshold {
		s.Reset()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Remaining returns the number of cards left before the next reshuffle.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Size returns the full population of the shoe after a reset.
func (s *Shoe) Size() int {
	return s.numDecks * CardsPerDeck
}
