package curve

import (
	"errors"
	"math"
	"testing"
)

func TestLinearEvaluate(t *testing.T) {
	l := NewLinear(0, 1, 1, 0)
	for _, tc := range []struct {
		x, want float64
	}{
		{x: 0, want: 1},
		{x: 0.4, want: 0.6},
		{x: 1, want: 0},
		{x: -0.5, want: 1}, // flat extrapolation below
		{x: 2.5, want: 0},  // flat extrapolation above
	} {
		if got := l.Evaluate(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Evaluate(%v): got %v want %v", tc.x, got, tc.want)
		}
	}
}

func TestFuncAndConstant(t *testing.T) {
	f := Func(func(x float64) float64 { return x * x })
	if got := f.Evaluate(3); got != 9 {
		t.Fatalf("Func: got %v want 9", got)
	}
	if got := Constant(0.25).Evaluate(123); got != 0.25 {
		t.Fatalf("Constant: got %v want 0.25", got)
	}
}

func TestNewPiecewiseValidation(t *testing.T) {
	if _, err := NewPiecewise(InterpolationLinear, Point{X: 0, Y: 1}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("one point: got err %v", err)
	}
	if _, err := NewPiecewise(InterpolationLinear, Point{X: 0, Y: 1}, Point{X: 0, Y: 0}); !errors.Is(err, ErrUnorderedPoints) {
		t.Fatalf("duplicate x: got err %v", err)
	}
}

func TestPiecewiseLinear(t *testing.T) {
	p, err := NewPiecewise(InterpolationLinear,
		Point{X: 0, Y: 1},
		Point{X: 0.5, Y: 0.8},
		Point{X: 1, Y: 0},
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		x, want float64
	}{
		{x: 0, want: 1},
		{x: 0.25, want: 0.9},
		{x: 0.5, want: 0.8},
		{x: 0.75, want: 0.4},
		{x: 1, want: 0},
		{x: 9, want: 0},
		{x: -1, want: 1},
	} {
		if got := p.Evaluate(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Evaluate(%v): got %v want %v", tc.x, got, tc.want)
		}
	}
}

func TestPiecewiseCubicHitsBreakpoints(t *testing.T) {
	p, err := NewPiecewise(InterpolationCubic,
		Point{X: 0, Y: 1},
		Point{X: 0.3, Y: 0.7},
		Point{X: 0.7, Y: 0.2},
		Point{X: 1, Y: 0},
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range []Point{{X: 0, Y: 1}, {X: 0.3, Y: 0.7}, {X: 0.7, Y: 0.2}, {X: 1, Y: 0}} {
		if got := p.Evaluate(pt.X); math.Abs(got-pt.Y) > 1e-12 {
			t.Fatalf("Evaluate(%v): got %v want %v", pt.X, got, pt.Y)
		}
	}
}

func TestPiecewiseCubicIdentityOnLinearRamp(t *testing.T) {
	// Hermite interpolation reproduces a straight line exactly.
	p, err := NewPiecewise(InterpolationCubic,
		Point{X: 0, Y: 0},
		Point{X: 1, Y: 1},
		Point{X: 2, Y: 2},
		Point{X: 3, Y: 3},
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{1.0, 1.25, 1.5, 1.75, 2.0} {
		if got := p.Evaluate(x); math.Abs(got-x) > 1e-12 {
			t.Fatalf("Evaluate(%v): got %v", x, got)
		}
	}
}
