// Package statistics aggregates results across independent simulation
// trials and derives summary measures for the batch.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TrialResult is the outcome of one independent simulation run, as folded
// into the batch statistics.
type TrialResult struct {
	Profit      float64 // Final bankroll minus starting bankroll
	ROI         float64 // Profit as a percentage of the starting bankroll
	Wins        int
	Losses      int
	Pushes      int
	HandsPlayed int   // Hands actually completed (may be short on bankruptcy)
	Bankrupt    bool  // Did the trial stop early on a zero bankroll?
	Seed        int64 // RNG seed for the trial (for replay)
}

// Statistics accumulates per-trial profit figures and outcome counts.
type Statistics struct {
	Trials     int
	SumProfit  float64
	SumProfit2 float64   // Sum of squares for variance calculation
	Values     []float64 // All per-trial profits for median/percentiles

	Wins         int
	Losses       int
	Pushes       int
	HandsPlayed  int
	Bankruptcies int
}

// Add incorporates a trial result into the statistics.
func (s *Statistics) Add(r TrialResult) {
	s.Trials++
	s.SumProfit += r.Profit
	s.SumProfit2 += r.Profit * r.Profit
	s.Values = append(s.Values, r.Profit)

	s.Wins += r.Wins
	s.Losses += r.Losses
	s.Pushes += r.Pushes
	s.HandsPlayed += r.HandsPlayed
	if r.Bankrupt {
		s.Bankruptcies++
	}
}

// Mean returns the arithmetic mean profit per trial.
func (s *Statistics) Mean() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.SumProfit / float64(s.Trials)
}

// Variance returns the sample variance of trial profits.
func (s *Statistics) Variance() float64 {
	if s.Trials < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumProfit2 - float64(s.Trials)*mean*mean) / float64(s.Trials-1)
}

// StdDev returns the sample standard deviation of trial profits.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean profit.
func (s *Statistics) StdError() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Trials))
}

// ConfidenceInterval95 returns the 95% confidence interval for mean profit.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median trial profit.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the trial profit at the given percentile (0.0 to 1.0),
// linearly interpolated between adjacent values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// BankruptcyRate returns the fraction of trials that went bust, 0.0 to 1.0.
func (s *Statistics) BankruptcyRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Bankruptcies) / float64(s.Trials)
}

// Validate checks the internal consistency of the accumulated data.
func (s *Statistics) Validate() error {
	if s.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d", s.Trials)
	}
	if len(s.Values) != s.Trials {
		return fmt.Errorf("values length (%d) does not match trial count (%d)", len(s.Values), s.Trials)
	}
	if s.Wins+s.Losses+s.Pushes != s.HandsPlayed {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not sum to hands played (%d)",
			s.Wins, s.Losses, s.Pushes, s.HandsPlayed)
	}
	if s.Bankruptcies > s.Trials {
		return fmt.Errorf("bankruptcies (%d) exceed trials (%d)", s.Bankruptcies, s.Trials)
	}
	return nil
}
