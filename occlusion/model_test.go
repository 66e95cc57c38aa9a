package occlusion

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spatial/curve"
	"github.com/cwbudde/algo-spatial/internal/testutil"
)

func TestFalloffNormalizesByMaxRange(t *testing.T) {
	c := curve.NewLinear(0, 1, 1, 0)
	testutil.RequireNearlyEqual(t, Falloff(10, 25, c), 0.6, 1e-12)
	testutil.RequireNearlyEqual(t, Falloff(0, 25, c), 1.0, 1e-12)
	// Beyond maxRange the curve's flat extrapolation applies.
	testutil.RequireNearlyEqual(t, Falloff(40, 25, c), 0.0, 1e-12)
}

func TestDampenFreePass(t *testing.T) {
	// One hit means an unobstructed path: no dampening beyond falloff.
	for _, threshold := range []float64{0.01, 0.1, 0.5, 1.0} {
		if got := Dampen(1, threshold); got != 1 {
			t.Fatalf("Dampen(1, %v): got %v want 1", threshold, got)
		}
	}
}

func TestDampenBoostOnEmptyHitSet(t *testing.T) {
	for _, threshold := range []float64{0.1, 0.25, 1.0} {
		want := 1 / threshold
		testutil.RequireNearlyEqual(t, Dampen(0, threshold), want, 1e-12)
	}
}

func TestDampenNonIncreasingInCount(t *testing.T) {
	for _, threshold := range []float64{0.05, 0.1, 0.9} {
		prev := Dampen(1, threshold)
		for count := 2; count <= 10; count++ {
			cur := Dampen(count, threshold)
			if cur > prev {
				t.Fatalf("Dampen(%d, %v)=%v > Dampen(%d)=%v", count, threshold, cur, count-1, prev)
			}
			prev = cur
		}
	}
}

func TestDampenDecayPerExtraHit(t *testing.T) {
	testutil.RequireNearlyEqual(t, Dampen(3, 0.1), 0.01, 1e-12)
	testutil.RequireNearlyEqual(t, Dampen(5, 0.5), 0.0625, 1e-12)
}

func TestReverbLevelDryWhenUnobstructed(t *testing.T) {
	for _, threshold := range []float64{0.01, 0.1, 1.0} {
		if got := ReverbLevel(1, threshold); got != ReverbLevelMin {
			t.Fatalf("ReverbLevel(1, %v): got %v want %v", threshold, got, ReverbLevelMin)
		}
	}
}

func TestReverbLevelSaturatesWet(t *testing.T) {
	// As the count grows the rescaled intensity clamps at the wet ceiling.
	if got := ReverbLevel(1000, 0.5); got != ReverbLevelMax {
		t.Fatalf("ReverbLevel(1000, 0.5): got %v want %v", got, ReverbLevelMax)
	}
	prev := ReverbLevel(1, 0.3)
	for count := 2; count <= 40; count++ {
		cur := ReverbLevel(count, 0.3)
		if cur < prev {
			t.Fatalf("ReverbLevel(%d) decreased: %v -> %v", count, prev, cur)
		}
		prev = cur
	}
	if math.Abs(prev-ReverbLevelMax) > 1e-9 {
		t.Fatalf("ReverbLevel did not saturate: %v", prev)
	}
}

func TestReverbLevelClampsBoostBelowFloor(t *testing.T) {
	// An empty hit set drives the pre-clamp level far below the floor.
	if got := ReverbLevel(0, 0.1); got != ReverbLevelMin {
		t.Fatalf("ReverbLevel(0, 0.1): got %v want %v", got, ReverbLevelMin)
	}
}

func TestReverbLevelIntermediate(t *testing.T) {
	// count=2, threshold=0.1: intensity 0.9 -> 0.9*12000 - 10000 = 800.
	testutil.RequireNearlyEqual(t, ReverbLevel(2, 0.1), 800, 1e-9)
}
