package geom

import "sort"

// World is an ordered collection of occluders answering finite segment
// queries. It is the reference implementation of the occlusion core's
// geometry-query collaborator; hosts with their own spatial index satisfy
// the same contract instead.
//
// World performs a linear scan per query. That is adequate for scene sizes
// where per-frame occlusion estimation makes sense; it deliberately carries
// no acceleration structure.
type World struct {
	occluders []Occluder
}

// NewWorld creates a world containing the given occluders.
func NewWorld(occluders ...Occluder) *World {
	return &World{occluders: occluders}
}

// Add appends an occluder to the world.
func (w *World) Add(o Occluder) {
	w.occluders = append(w.occluders, o)
}

// SegmentHits returns every occluder intersection on the segment from origin
// to target, truncated at maxDistance and ordered by distance from origin.
// The query is a finite segment: intersections beyond min(maxDistance,
// |target-origin|) are never reported. A degenerate segment (origin equals
// target) yields no hits.
func (w *World) SegmentHits(origin, target Vec3, maxDistance float64) []Hit {
	delta := target.Sub(origin)
	length := delta.Length()
	if length == 0 || maxDistance <= 0 {
		return nil
	}
	if length < maxDistance {
		maxDistance = length
	}
	dir := delta.Scale(1 / length)

	var hits []Hit
	for _, o := range w.occluders {
		if h, ok := o.IntersectSegment(origin, dir, maxDistance); ok {
			hits = append(hits, h)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
