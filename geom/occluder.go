package geom

import "math"

// Hit records one intersection along a segment query.
// Distance is measured from the segment origin; Point is the entry point on
// the occluder surface.
type Hit struct {
	Distance float64
	Point    Vec3
}

// Occluder is a shape that can report its first intersection with a segment.
// The segment runs from origin along the unit vector dir for maxDist units.
// ok is false when the segment misses the shape entirely.
type Occluder interface {
	IntersectSegment(origin, dir Vec3, maxDist float64) (hit Hit, ok bool)
}

// Sphere is a spherical occluder.
type Sphere struct {
	Center Vec3
	Radius float64
}

// IntersectSegment reports the nearest intersection of the segment with the
// sphere surface. A segment starting inside the sphere hits the exit point.
func (s Sphere) IntersectSegment(origin, dir Vec3, maxDist float64) (Hit, bool) {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDist {
		return Hit{}, false
	}
	return Hit{Distance: t, Point: origin.Add(dir.Scale(t))}, true
}

// Box is an axis-aligned box occluder. Min must be component-wise <= Max.
type Box struct {
	Min, Max Vec3
}

// IntersectSegment reports the nearest intersection of the segment with the
// box using the slab method. A segment starting inside the box reports a hit
// at distance zero.
func (b Box) IntersectSegment(origin, dir Vec3, maxDist float64) (Hit, bool) {
	tMin, tMax := 0.0, maxDist
	ok := clipSlab(origin.X, dir.X, b.Min.X, b.Max.X, &tMin, &tMax) &&
		clipSlab(origin.Y, dir.Y, b.Min.Y, b.Max.Y, &tMin, &tMax) &&
		clipSlab(origin.Z, dir.Z, b.Min.Z, b.Max.Z, &tMin, &tMax)
	if !ok {
		return Hit{}, false
	}
	return Hit{Distance: tMin, Point: origin.Add(dir.Scale(tMin))}, true
}

// clipSlab narrows [tMin, tMax] to the slab lo..hi on one axis.
func clipSlab(o, d, lo, hi float64, tMin, tMax *float64) bool {
	if d == 0 {
		return o >= lo && o <= hi
	}
	t0 := (lo - o) / d
	t1 := (hi - o) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tMin {
		*tMin = t0
	}
	if t1 < *tMax {
		*tMax = t1
	}
	return *tMin <= *tMax
}
