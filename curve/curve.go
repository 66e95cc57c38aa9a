package curve

// Curve maps a position to a value. Implementations must be pure: no state,
// no side effects, defined for every finite x.
type Curve interface {
	Evaluate(x float64) float64
}

// Func adapts a plain function into a Curve.
type Func func(x float64) float64

// Evaluate calls f.
func (f Func) Evaluate(x float64) float64 { return f(x) }

// Constant is a curve returning the same value everywhere.
type Constant float64

// Evaluate returns the constant value.
func (c Constant) Evaluate(float64) float64 { return float64(c) }

// Linear is a single linear segment from (X0, Y0) to (X1, Y1) with flat
// extrapolation outside [X0, X1].
type Linear struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewLinear creates a linear segment curve. X0 must be less than X1.
func NewLinear(x0, y0, x1, y1 float64) Linear {
	return Linear{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Evaluate returns the linear interpolation of x within the segment.
func (l Linear) Evaluate(x float64) float64 {
	if x <= l.X0 {
		return l.Y0
	}
	if x >= l.X1 {
		return l.Y1
	}
	frac := (x - l.X0) / (l.X1 - l.X0)
	return l.Y0 + frac*(l.Y1-l.Y0)
}
