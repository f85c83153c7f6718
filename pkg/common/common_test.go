package common

import (
	"math"
	"testing"
)

func TestRadians(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {180, math.Pi}, {-90, -math.Pi / 2}, {390, 13 * math.Pi / 6},
	}
	for _, tt := range tests {
		if got := Radians(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Radians(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {360, 0}, {390, 30}, {-90, 270}, {-720, 0}, {359.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); got != tt.want {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
