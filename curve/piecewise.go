package curve

import (
	"errors"
	"sort"
)

var (
	ErrTooFewPoints    = errors.New("curve: piecewise curve needs at least two points")
	ErrUnorderedPoints = errors.New("curve: piecewise points must have strictly increasing x")
)

// Interpolation selects how a Piecewise curve blends between breakpoints.
type Interpolation int

const (
	// InterpolationLinear joins breakpoints with straight segments.
	InterpolationLinear Interpolation = iota
	// InterpolationCubic joins breakpoints with 4-point Hermite segments,
	// reusing each segment's neighbors for tangents. Smooth, but may
	// overshoot between points; callers wanting guaranteed monotonic
	// falloff should use InterpolationLinear.
	InterpolationCubic
)

// Point is one breakpoint of a piecewise curve.
type Point struct {
	X, Y float64
}

// Piecewise is a breakpoint curve with selectable interpolation and flat
// extrapolation outside the breakpoint range.
type Piecewise struct {
	points []Point
	mode   Interpolation
}

// NewPiecewise creates a piecewise curve from at least two breakpoints with
// strictly increasing x.
func NewPiecewise(mode Interpolation, points ...Point) (*Piecewise, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			return nil, ErrUnorderedPoints
		}
	}
	return &Piecewise{points: pts, mode: mode}, nil
}

// Evaluate returns the interpolated value at x.
func (p *Piecewise) Evaluate(x float64) float64 {
	pts := p.points
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := len(pts) - 1
	if x >= pts[last].X {
		return pts[last].Y
	}

	// Index of the segment start: largest i with pts[i].X <= x.
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X > x }) - 1
	p0, p1 := pts[i], pts[i+1]
	frac := (x - p0.X) / (p1.X - p0.X)

	if p.mode == InterpolationLinear {
		return p0.Y + frac*(p1.Y-p0.Y)
	}

	ym1 := pts[clampIndex(i-1, last)].Y
	y2 := pts[clampIndex(i+2, last)].Y
	return hermite4(frac, ym1, p0.Y, p1.Y, y2)
}

func clampIndex(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}

// hermite4 computes cubic 4-point interpolation from y0 to y1 at t in [0,1],
// using neighbor values ym1 and y2 for the tangents.
func hermite4(t, ym1, y0, y1, y2 float64) float64 {
	c0 := y0
	c1 := 0.5 * (y1 - ym1)
	c2 := ym1 - 2.5*y0 + 2*y1 - 0.5*y2
	c3 := 0.5*(y2-ym1) + 1.5*(y0-y1)
	return ((c3*t+c2)*t+c1)*t + c0
}
