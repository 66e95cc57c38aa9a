package occlusion

import (
	"math"

	"github.com/cwbudde/algo-spatial/curve"
)

const (
	// Reverb level range in millibels, matching the target mixer's
	// reverb parameter: -10000 is fully dry, 2000 fully wet.
	ReverbLevelMin = -10000.0
	ReverbLevelMax = 2000.0

	// Rescale factor from occlusion intensity [0,1] onto the millibel
	// range before clamping.
	reverbIntensityScale = 12000.0
)

// Falloff evaluates the distance attenuation: the curve applied at
// distance/maxRange. The quotient is not clamped; distances beyond maxRange
// rely on the curve's own edge behavior (flat extrapolation for the curves
// in package curve). maxRange must be positive — configuration validation
// guarantees this for estimator-driven calls.
func Falloff(distance, maxRange float64, c curve.Curve) float64 {
	return c.Evaluate(distance / maxRange)
}

// Dampen returns the obstruction dampening multiplier threshold^(count-1)
// for threshold in (0,1].
//
// The exponent offset is deliberate: the first recorded hit is free
// (Dampen(1, t) == 1), each further hit multiplies by threshold, and an
// empty hit set boosts by 1/threshold. Default thresholds are tuned against
// this convention; do not "fix" the offset.
func Dampen(count int, threshold float64) float64 {
	return math.Pow(threshold, float64(count-1))
}

// ReverbLevel maps an obstruction count to a reverb send level in
// millibels: intensity 1-threshold^(count-1) rescaled by 12000 onto a
// -10000 origin and clamped to [ReverbLevelMin, ReverbLevelMax]. One hit
// (unobstructed path) is fully dry; the level saturates toward
// ReverbLevelMax as the count grows.
func ReverbLevel(count int, threshold float64) float64 {
	intensity := 1 - math.Pow(threshold, float64(count-1))
	level := intensity*reverbIntensityScale + ReverbLevelMin
	if level < ReverbLevelMin {
		return ReverbLevelMin
	}
	if level > ReverbLevelMax {
		return ReverbLevelMax
	}
	return level
}
