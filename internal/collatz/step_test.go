package collatz

import (
	"math"
	"testing"
)

func TestStep(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{1, 4},
		{2, 1},
		{3, 10},
		{6, 3},
		{7, 22},
		{16, 8},
		{27, 82},
	}

	for _, tt := range tests {
		if got := Step(tt.in); got != tt.want {
			t.Errorf("Step(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCheckedStep_Overflow(t *testing.T) {
	// maxTriple is even, so its odd neighbours straddle the limit
	if _, ok := checkedStep(maxTriple - 1); !ok {
		t.Errorf("checkedStep(%d) reported overflow", maxTriple-1)
	}
	if _, ok := checkedStep(maxTriple + 1); ok {
		t.Errorf("checkedStep(%d) should overflow", maxTriple+1)
	}
	if got, ok := checkedStep(math.MaxInt64 - 1); !ok || got != (math.MaxInt64-1)/2 {
		t.Errorf("even values never overflow, got %d %v", got, ok)
	}
}
