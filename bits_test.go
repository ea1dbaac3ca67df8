package timewheel

import "testing"

func TestOrder(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{7, 2},
		{8, 3},
		{1 << 63, 63},
		{^uint64(0), 63},
	}
	for _, tt := range tests {
		if got := order(tt.x); got != tt.want {
			t.Errorf("order(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
