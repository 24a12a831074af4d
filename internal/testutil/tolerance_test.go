package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	data := []float64{-40, -20, -3, -0.5, 0}
	RequireFinite(t, data)
	RequireAscending(t, data)
	RequireMaxStep(t, data, 20)
}

func TestImpulse(t *testing.T) {
	x := Impulse(4)
	if len(x) != 4 || x[0] != 1 || x[1] != 0 || x[3] != 0 {
		t.Fatalf("Impulse(4) = %v", x)
	}
	if got := Impulse(0); len(got) != 0 {
		t.Fatalf("Impulse(0) = %v, want empty", got)
	}
}
