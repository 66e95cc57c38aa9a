package occlusion

// Smooth linearly interpolates from current toward target by rate*dt.
//
// The factor is intentionally not clamped: rate*dt == 1 lands exactly on
// target, rate*dt == 0 holds current, and rate*dt > 1 overshoots past the
// target for one frame. Hosts running with large or irregular tick times
// should size their smoothing rate accordingly rather than expect clamping
// here.
func Smooth(current, target, rate, dt float64) float64 {
	return current + (target-current)*rate*dt
}

// Smoother holds one persistently smoothed scalar.
//
// The first Advance applies the target at full weight so startup reaches
// its operating point immediately instead of fading in from zero.
type Smoother struct {
	value  float64
	primed bool
}

// Advance moves the stored value toward target by rate*dt and returns it.
func (s *Smoother) Advance(target, rate, dt float64) float64 {
	if !s.primed {
		s.primed = true
		s.value = target
		return s.value
	}
	s.value = Smooth(s.value, target, rate, dt)
	return s.value
}

// Value returns the current smoothed value without advancing it.
func (s *Smoother) Value() float64 { return s.value }

// Reset pins the smoother to v; the next Advance interpolates from v
// instead of jumping.
func (s *Smoother) Reset(v float64) {
	s.value = v
	s.primed = true
}
