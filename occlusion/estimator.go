package occlusion

import (
	"errors"

	"github.com/cwbudde/algo-spatial/geom"
)

// ReverbPresetUser is the preset identifier passed to reverb sinks; the
// estimator always drives user-mode reverb parameters.
const ReverbPresetUser = "user"

var (
	ErrNilQuery    = errors.New("occlusion: geometry query must not be nil")
	ErrNilListener = errors.New("occlusion: listener position source must not be nil")
	ErrNilSink     = errors.New("occlusion: volume sink must not be nil")
)

// GeometryQuery answers finite segment queries against scene geometry.
// The estimator only inspects the number of hits; identities are ignored.
// geom.World satisfies this interface.
type GeometryQuery interface {
	SegmentHits(origin, target geom.Vec3, maxDistance float64) []geom.Hit
}

// PositionSource provides the listener position each frame. It is owned
// externally and read-only to this package.
type PositionSource interface {
	Position() geom.Vec3
}

// PositionFunc adapts a function into a PositionSource.
type PositionFunc func() geom.Vec3

// Position calls f.
func (f PositionFunc) Position() geom.Vec3 { return f() }

// VolumeSink receives the smoothed volume once per frame.
type VolumeSink interface {
	SetVolume(volume float64)
}

// ReverbSink receives the smoothed reverb level in millibels once per
// frame. preset is always ReverbPresetUser.
type ReverbSink interface {
	SetReverbLevel(level float64, preset string)
}

// Estimator computes occlusion parameters for one emitter.
//
// It is frame-synchronous and not safe for concurrent use; the host update
// loop is expected to be the only caller. The only state persisted across
// frames is the pair of smoothed output parameters.
type Estimator struct {
	cfg      Config
	query    GeometryQuery
	listener PositionSource
	sink     VolumeSink
	reverb   ReverbSink

	volume      Smoother
	reverbLevel Smoother

	// Last computed frame facts, exposed for debug rendering.
	direction geom.Vec3
	distance  float64
	hitCount  int
}

// New creates an estimator for one emitter. query, listener and sink are
// required collaborators; a missing one fails here rather than producing a
// silently mute emitter. The reverb path is attached separately with
// AttachReverbSink and is optional.
func New(query GeometryQuery, listener PositionSource, sink VolumeSink, opts ...Option) (*Estimator, error) {
	if query == nil {
		return nil, ErrNilQuery
	}
	if listener == nil {
		return nil, ErrNilListener
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{
		cfg:      cfg,
		query:    query,
		listener: listener,
		sink:     sink,
	}, nil
}

// AttachReverbSink connects the optional reverb output. Passing nil detaches
// it again; without a sink the reverb path is skipped entirely.
func (e *Estimator) AttachReverbSink(sink ReverbSink) {
	e.reverb = sink
}

// Update runs one estimation frame: distance, segment query, falloff,
// dampening, smoothing, sink writes. dt is the elapsed time since the
// previous frame in the host's time unit; the very first frame applies its
// targets at full weight regardless of dt.
func (e *Estimator) Update(dt float64) {
	listenerPos := e.listener.Position()
	delta := listenerPos.Sub(e.cfg.Position)
	e.distance = delta.Length()
	if e.distance > 0 {
		e.direction = delta.Scale(1 / e.distance)
	} else {
		// Coincident positions have no direction.
		e.direction = geom.Vec3{}
	}

	hits := e.query.SegmentHits(e.cfg.Position, listenerPos, e.distance)
	e.hitCount = len(hits)

	falloff := Falloff(e.distance, e.cfg.MaxRange, e.cfg.Falloff)
	targetVolume := Dampen(e.hitCount, e.cfg.DampenThreshold) * falloff
	e.sink.SetVolume(e.volume.Advance(targetVolume, e.cfg.SmoothingRate, dt))

	if e.reverb == nil {
		return
	}
	targetLevel := ReverbLevel(e.hitCount, e.cfg.ReverbThreshold)
	e.reverb.SetReverbLevel(e.reverbLevel.Advance(targetLevel, e.cfg.SmoothingRate, dt), ReverbPresetUser)
}

// SetPosition moves the emitter. Takes effect on the next Update.
func (e *Estimator) SetPosition(p geom.Vec3) {
	e.cfg.Position = p
}

// Position returns the emitter position.
func (e *Estimator) Position() geom.Vec3 { return e.cfg.Position }

// Configure applies live edits to the emitter parameters. The resulting
// configuration is re-validated; on error the previous configuration is
// kept.
func (e *Estimator) Configure(opts ...Option) error {
	cfg := e.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

// Volume returns the current smoothed volume.
func (e *Estimator) Volume() float64 { return e.volume.Value() }

// ReverbLevel returns the current smoothed reverb level in millibels.
// Meaningful only while a reverb sink is attached.
func (e *Estimator) ReverbLevel() float64 { return e.reverbLevel.Value() }

// Direction returns the unit vector from emitter to listener as of the last
// Update, or the zero vector when the two coincide. Debug/visualization
// hook.
func (e *Estimator) Direction() geom.Vec3 { return e.direction }

// Distance returns the emitter-listener distance as of the last Update.
func (e *Estimator) Distance() float64 { return e.distance }

// HitCount returns the obstruction count as of the last Update.
func (e *Estimator) HitCount() int { return e.hitCount }

// Range returns the configured maximum range. Debug/visualization hook.
func (e *Estimator) Range() float64 { return e.cfg.MaxRange }
