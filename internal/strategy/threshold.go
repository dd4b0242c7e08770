package strategy

// Threshold is a fixed-threshold policy: flat betting, hit while soft
// totals are below 18 or hard totals below 17. It mirrors the dealer's
// stand-on-17 rule applied to the player, which makes it simple and
// deterministic but deliberately not optimal.
type Threshold struct {
	stake float64
}

// NewThreshold creates a threshold strategy with the given flat stake.
func NewThreshold(stake float64) *Threshold {
	return &Threshold{stake: stake}
}

// Bet wagers the flat stake, capped by whatever bankroll remains.
func (t *Threshold) Bet(bankroll float64) float64 {
	return min(t.stake, bankroll)
}

// ShouldHit hits while soft total < 18 or hard total < 17.
func (t *Threshold) ShouldHit(playerTotal int, soft bool, dealerUpcard int) bool {
	if soft {
		return playerTotal < 18
	}
	return playerTotal < 17
}

// Name implements Strategy.
func (t *Threshold) Name() string { return "threshold" }
