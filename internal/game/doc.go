// Package game implements blackjack hand valuation and the single-round
// engine: dealing, the player and dealer turn loops, and settlement under a
// fixed house-rule set (dealer stands on any 17, blackjack pays 3:2, no
// split, double, surrender, or insurance).
package game
