// Command occdemo runs a scripted occlusion scenario and prints the
// per-frame parameter trace.
//
// The listener walks a straight line past an emitter at the origin. A wall
// sits between the two for part of the walk, so the trace shows the
// obstruction count rising, the volume dampening in response, and the
// smoother easing both outputs between the regimes.
//
// Usage:
//
//	occdemo [flags]
//
// Examples:
//
//	occdemo
//	occdemo -frames 120 -dt 0.032
//	occdemo -range 40 -dampen 0.3 -rate 8
//	occdemo -no-wall
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spatial/curve"
	"github.com/cwbudde/algo-spatial/geom"
	"github.com/cwbudde/algo-spatial/occlusion"
)

type traceSink struct {
	volume float64
}

func (s *traceSink) SetVolume(v float64) { s.volume = v }

type traceReverb struct {
	level float64
}

func (s *traceReverb) SetReverbLevel(level float64, _ string) { s.level = level }

func main() {
	var (
		frames   = flag.Int("frames", 90, "number of simulated frames")
		dt       = flag.Float64("dt", 0.016, "seconds per frame")
		maxRange = flag.Float64("range", 25, "maximum audible range")
		dampen   = flag.Float64("dampen", 0.1, "per-obstruction volume decay factor (0,1]")
		reverb   = flag.Float64("reverb", 0.1, "per-obstruction reverb intensity factor (0,1]")
		rate     = flag.Float64("rate", 4, "parameter smoothing rate")
		speed    = flag.Float64("speed", 20, "listener speed in units per second")
		noWall   = flag.Bool("no-wall", false, "remove the wall from the scene")
	)
	flag.Parse()

	world := geom.NewWorld()
	if !*noWall {
		// A wall north of the emitter, covering the first half of the walk.
		world.Add(geom.Box{
			Min: geom.Vec3{X: -30, Y: 2, Z: -5},
			Max: geom.Vec3{X: 0, Y: 3, Z: 5},
		})
	}

	// The listener walks along y=6 from west to east; its own body is in
	// the world so a clear path still records one hit.
	pos := geom.Vec3{X: -20, Y: 6}
	body := geom.Sphere{Center: pos, Radius: 0.5}
	world.Add(&body)
	listener := occlusion.PositionFunc(func() geom.Vec3 { return pos })

	sink := &traceSink{}
	reverbSink := &traceReverb{}
	est, err := occlusion.New(world, listener, sink,
		occlusion.WithMaxRange(*maxRange),
		occlusion.WithFalloff(curve.NewLinear(0, 1, 1, 0)),
		occlusion.WithDampenThreshold(*dampen),
		occlusion.WithReverbThreshold(*reverb),
		occlusion.WithSmoothingRate(*rate),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "occdemo:", err)
		os.Exit(1)
	}
	est.AttachReverbSink(reverbSink)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "frame\tx\tdist\thits\tvolume\treverb\t")
	for frame := 0; frame < *frames; frame++ {
		est.Update(*dt)
		fmt.Fprintf(w, "%d\t%.1f\t%.2f\t%d\t%.4f\t%.0f\t\n",
			frame, pos.X, est.Distance(), est.HitCount(), est.Volume(), est.ReverbLevel())

		pos.X += *speed * *dt
		body.Center = pos
	}
	w.Flush()
}
