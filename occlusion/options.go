package occlusion

import (
	"errors"

	"github.com/cwbudde/algo-spatial/curve"
	"github.com/cwbudde/algo-spatial/geom"
)

const (
	defaultMaxRange        = 50.0
	defaultDampenThreshold = 0.1
	defaultReverbThreshold = 0.1
	defaultSmoothingRate   = 4.0
)

var (
	ErrInvalidMaxRange        = errors.New("occlusion: maximum range must be positive")
	ErrInvalidSmoothingRate   = errors.New("occlusion: smoothing rate must be positive")
	ErrInvalidDampenThreshold = errors.New("occlusion: dampen threshold must be in (0, 1]")
	ErrInvalidReverbThreshold = errors.New("occlusion: reverb threshold must be in (0, 1]")
	ErrNilFalloffCurve        = errors.New("occlusion: falloff curve must not be nil")
)

// Config holds the per-emitter estimation parameters.
type Config struct {
	// Position of the emitter in world space. Editable live via
	// Estimator.SetPosition.
	Position geom.Vec3

	// MaxRange normalizes distance before falloff evaluation. Must be
	// positive; a zero or negative range would divide by zero mid-frame.
	MaxRange float64

	// Falloff maps normalized distance to a volume multiplier.
	Falloff curve.Curve

	// DampenThreshold is the per-obstruction decay factor in (0, 1].
	DampenThreshold float64

	// ReverbThreshold is the per-obstruction reverb intensity factor in
	// (0, 1]. Only used when a reverb sink is attached.
	ReverbThreshold float64

	// SmoothingRate scales deltaTime into the interpolation factor applied
	// to the output parameters each frame. Must be positive.
	SmoothingRate float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the tuned default parameters.
func DefaultConfig() Config {
	return Config{
		MaxRange:        defaultMaxRange,
		Falloff:         curve.NewLinear(0, 1, 1, 0),
		DampenThreshold: defaultDampenThreshold,
		ReverbThreshold: defaultReverbThreshold,
		SmoothingRate:   defaultSmoothingRate,
	}
}

// WithPosition sets the emitter position.
func WithPosition(p geom.Vec3) Option {
	return func(cfg *Config) { cfg.Position = p }
}

// WithMaxRange sets the maximum audible range.
func WithMaxRange(r float64) Option {
	return func(cfg *Config) { cfg.MaxRange = r }
}

// WithFalloff sets the falloff curve.
func WithFalloff(c curve.Curve) Option {
	return func(cfg *Config) { cfg.Falloff = c }
}

// WithDampenThreshold sets the per-obstruction volume decay factor.
func WithDampenThreshold(t float64) Option {
	return func(cfg *Config) { cfg.DampenThreshold = t }
}

// WithReverbThreshold sets the per-obstruction reverb intensity factor.
func WithReverbThreshold(t float64) Option {
	return func(cfg *Config) { cfg.ReverbThreshold = t }
}

// WithSmoothingRate sets the parameter smoothing rate.
func WithSmoothingRate(r float64) Option {
	return func(cfg *Config) { cfg.SmoothingRate = r }
}

// Validate checks the configuration invariants that must hold before any
// frame runs. Violations are configuration-time errors, never discovered
// mid-frame.
func (cfg Config) Validate() error {
	if cfg.MaxRange <= 0 {
		return ErrInvalidMaxRange
	}
	if cfg.Falloff == nil {
		return ErrNilFalloffCurve
	}
	if cfg.DampenThreshold <= 0 || cfg.DampenThreshold > 1 {
		return ErrInvalidDampenThreshold
	}
	if cfg.ReverbThreshold <= 0 || cfg.ReverbThreshold > 1 {
		return ErrInvalidReverbThreshold
	}
	if cfg.SmoothingRate <= 0 {
		return ErrInvalidSmoothingRate
	}
	return nil
}
