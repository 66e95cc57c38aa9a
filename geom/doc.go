// Package geom provides the small amount of 3D geometry the occlusion
// pipeline consumes: a value-type vector, segment/shape intersection, and a
// deterministic occluder collection implementing the segment-query contract.
//
// The package is intentionally not a physics engine. It exists so that the
// occlusion core has a host-independent collaborator for tests, benchmarks
// and the demo binary; production hosts supply their own query instead.
package geom
