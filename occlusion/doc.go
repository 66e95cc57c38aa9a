// Package occlusion estimates per-frame audio occlusion parameters.
//
// Given an emitter position, a listener position and a geometry query, an
// [Estimator] turns the instantaneous scene state into a smoothed volume
// and reverb level each frame: distance falloff along a configured curve,
// multiplicative dampening per obstruction, and exponential-style blending
// of the outputs so parameter changes never pop.
//
// The package is frame-synchronous and single-threaded: the host calls
// [Estimator.Update] once per tick with the elapsed time, and the estimator
// pushes the results into the injected sinks. All collaborators — geometry,
// listener position, output sinks — are interfaces, so the core runs
// deterministically without any engine present.
//
// The dampening formula threshold^(count-1) and the reverb rescale onto
// [-10000, 2000] millibels are calibrated values: an unobstructed path
// (one recorded hit, typically the listener's own body) passes for free,
// and an empty hit set yields a volume boost of 1/threshold. Both are
// load-bearing conventions; see [Dampen].
package occlusion
