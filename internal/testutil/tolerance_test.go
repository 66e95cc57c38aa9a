package testutil

import "testing"

func TestRequireNearlyEqualWithinTolerance(t *testing.T) {
	RequireNearlyEqual(t, 1.0000001, 1.0, 1e-6)
}

func TestRequireSliceNearlyEqualWithinTolerance(t *testing.T) {
	RequireSliceNearlyEqual(t,
		[]float64{1, 2, 3.0000001},
		[]float64{1, 2, 3},
		1e-6,
	)
}

func TestRequireFiniteAcceptsFiniteData(t *testing.T) {
	RequireFinite(t, []float64{0, -1e300, 1e-300})
}
