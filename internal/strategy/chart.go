package strategy

// Chart is a table-driven hit/stand policy following the basic-strategy
// chart restricted to hit and stand (the engine offers no split, double, or
// surrender). Betting is flat, same as Threshold.
type Chart struct {
	stake float64
}

// NewChart creates a chart strategy with the given flat stake.
func NewChart(stake float64) *Chart {
	return &Chart{stake: stake}
}

// Bet wagers the flat stake, capped by whatever bankroll remains.
func (c *Chart) Bet(bankroll float64) float64 {
	return min(c.stake, bankroll)
}

// ShouldHit consults the hit/stand chart. Upcard values run 2-11, with 11
// standing in for the dealer's Ace.
func (c *Chart) ShouldHit(playerTotal int, soft bool, dealerUpcard int) bool {
	if soft {
		switch {
		case playerTotal <= 17:
			return true
		case playerTotal == 18:
			// Soft 18 stands only against weak upcards.
			return dealerUpcard >= 9
		default:
			return false
		}
	}

	switch {
	case playerTotal <= 11:
		return true
	case playerTotal == 12:
		// Stand on 12 only against a dealer 4-6 bust card.
		return dealerUpcard < 4 || dealerUpcard > 6
	case playerTotal <= 16:
		// Stand against 2-6, hit against 7 through Ace.
		return dealerUpcard >= 7
	default:
		return false
	}
}

// Name implements Strategy.
func (c *Chart) Name() string { return "chart" }
