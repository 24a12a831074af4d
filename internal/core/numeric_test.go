package core

import (
	"math"
	"testing"
)

func TestIsFinitePositive(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "positive", x: 2400, want: true},
		{name: "tiny", x: math.SmallestNonzeroFloat64, want: true},
		{name: "zero", x: 0, want: false},
		{name: "negative", x: -4, want: false},
		{name: "nan", x: math.NaN(), want: false},
		{name: "+inf", x: math.Inf(1), want: false},
		{name: "-inf", x: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinitePositive(tt.x); got != tt.want {
				t.Fatalf("IsFinitePositive(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLinearToDB(t *testing.T) {
	tests := []struct {
		name   string
		linear float64
		want   float64
	}{
		{name: "unity", linear: 1, want: 0},
		{name: "ten", linear: 10, want: 20},
		{name: "tenth", linear: 0.1, want: -20},
		{name: "hundredth", linear: 0.01, want: -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToDB(tt.linear); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("LinearToDB(%v) = %v, want %v", tt.linear, got, tt.want)
			}
		})
	}

	// Unity gain must map to 0 dB exactly in every build.
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
	if got := LinearToDB(1 / math.Sqrt2); math.Abs(got+3.0102999566398) > 1e-12 {
		t.Fatalf("LinearToDB(1/√2) = %v, want -3.0103", got)
	}
	if got := LinearToDB(0.5); math.Abs(got+6.0205999132796) > 1e-12 {
		t.Fatalf("LinearToDB(0.5) = %v, want -6.0206", got)
	}
}
