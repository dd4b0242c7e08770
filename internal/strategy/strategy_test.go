package strategy

import (
	"testing"
)

func TestThresholdBet(t *testing.T) {
	s := NewThreshold(DefaultStake)

	if got := s.Bet(10000); got != 10 {
		t.Errorf("Bet(10000) = %f, want 10", got)
	}
	// A short bankroll caps the bet rather than overbetting.
	if got := s.Bet(4.5); got != 4.5 {
		t.Errorf("Bet(4.5) = %f, want 4.5", got)
	}
}

func TestThresholdShouldHit(t *testing.T) {
	s := NewThreshold(DefaultStake)

	tests := []struct {
		name   string
		total  int
		soft   bool
		upcard int
		want   bool
	}{
		{"hard 16 hits", 16, false, 10, true},
		{"hard 17 stands", 17, false, 6, false},
		{"hard 21 stands", 21, false, 10, false},
		{"soft 17 hits", 17, true, 6, true},
		{"soft 18 stands", 18, true, 10, false},
		{"low total hits", 8, false, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ShouldHit(tt.total, tt.soft, tt.upcard); got != tt.want {
				t.Errorf("ShouldHit(%d, %v, %d) = %v, want %v", tt.total, tt.soft, tt.upcard, got, tt.want)
			}
		})
	}
}

func TestChartShouldHit(t *testing.T) {
	s := NewChart(DefaultStake)

	tests := []struct {
		name   string
		total  int
		soft   bool
		upcard int
		want   bool
	}{
		{"hard 11 always hits", 11, false, 6, true},
		{"hard 12 vs 4 stands", 12, false, 4, false},
		{"hard 12 vs 2 hits", 12, false, 2, true},
		{"hard 12 vs 7 hits", 12, false, 7, true},
		{"hard 14 vs 5 stands", 14, false, 5, false},
		{"hard 16 vs 10 hits", 16, false, 10, true},
		{"hard 17 stands", 17, false, 11, false},
		{"soft 17 hits", 17, true, 2, true},
		{"soft 18 vs 6 stands", 18, true, 6, false},
		{"soft 18 vs 9 hits", 18, true, 9, true},
		{"soft 18 vs ace hits", 18, true, 11, true},
		{"soft 19 stands", 19, true, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ShouldHit(tt.total, tt.soft, tt.upcard); got != tt.want {
				t.Errorf("ShouldHit(%d, %v, %d) = %v, want %v", tt.total, tt.soft, tt.upcard, got, tt.want)
			}
		})
	}
}

func TestNewResolvesByName(t *testing.T) {
	for _, name := range []string{"threshold", "chart"} {
		s, err := New(name, DefaultStake)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, s.Name())
		}
	}

	if _, err := New("martingale", DefaultStake); err == nil {
		t.Error("New with unknown name should return an error")
	}
}
