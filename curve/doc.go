// Package curve provides evaluation-only falloff curves.
//
// A [Curve] maps a normalized position (typically distance / maximum range)
// to a multiplier. Curves are supplied fully shaped by the caller — an
// editor, a config loader, or a literal in code — and this package only
// evaluates them. Monotonicity is a caller convention and is not enforced.
//
// Outside their defined domain all concrete curves extrapolate flat,
// holding the edge value.
package curve
