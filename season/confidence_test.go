package season

import (
	"math"
	"testing"
)

func TestConfidenceFromDeltaE(t *testing.T) {
	tests := []struct {
		d, want float64
	}{
		{0, 100},
		{1, 100},
		{1.5, 95},
		{2, 95},
		{3, 90},
		{5, 90},
		{7.5, 80},
		{10, 70},
		{15, 60},
		{20, 50},
		{35, 40},
		{50, 30},
		{80, 30},
	}

	for _, tt := range tests {
		if got := ConfidenceFromDeltaE(tt.d); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ConfidenceFromDeltaE(%g) = %g, want %g", tt.d, got, tt.want)
		}
	}
}

func TestConfidenceFromDeltaE_NonIncreasing(t *testing.T) {
	prev := ConfidenceFromDeltaE(0)
	for d := 0.01; d <= 60; d += 0.01 {
		c := ConfidenceFromDeltaE(d)
		if c > prev {
			t.Fatalf("confidence rose from %g to %g at d=%g", prev, c, d)
		}
		if c < 30 || c > 100 {
			t.Fatalf("confidence %g out of range at d=%g", c, d)
		}
		prev = c
	}
}
