package main

import (
	"math"
	"testing"
)

func TestValidDPI(t *testing.T) {
	tests := []struct {
		name string
		dpi  float64
		want bool
	}{
		{"default", 300, true},
		{"fractional", 0.5, true},
		{"zero", 0, false},
		{"negative", -72, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validDPI(tt.dpi); got != tt.want {
				t.Errorf("validDPI(%v) = %v, want %v", tt.dpi, got, tt.want)
			}
		})
	}
}
