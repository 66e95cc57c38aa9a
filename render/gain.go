package render

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

var ErrLengthMismatch = errors.New("render: buffer length mismatch")

// GainStage scales sample blocks by the most recently written volume.
// It implements the occlusion volume-sink contract.
type GainStage struct {
	gain float64
	peak float64
}

// NewGainStage creates a gain stage at unity gain.
func NewGainStage() *GainStage {
	return &GainStage{gain: 1}
}

// SetVolume stores the gain applied to subsequent blocks. The value is used
// as-is; the estimator's boost convention can push it above 1.
func (g *GainStage) SetVolume(volume float64) {
	g.gain = volume
}

// Gain returns the current gain.
func (g *GainStage) Gain() float64 { return g.gain }

// Process writes src scaled by the current gain into dst and updates the
// output peak. dst and src must have equal length.
func (g *GainStage) Process(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	vecmath.ScaleBlock(dst, src, g.gain)
	g.trackPeak(dst)
	return nil
}

// ProcessInPlace scales buf by the current gain and updates the output peak.
func (g *GainStage) ProcessInPlace(buf []float64) {
	vecmath.ScaleBlockInPlace(buf, g.gain)
	g.trackPeak(buf)
}

// Peak returns the maximum absolute output sample since the last ResetPeak.
func (g *GainStage) Peak() float64 { return g.peak }

// ResetPeak clears the peak meter.
func (g *GainStage) ResetPeak() { g.peak = 0 }

func (g *GainStage) trackPeak(buf []float64) {
	if p := vecmath.MaxAbs(buf); p > g.peak {
		g.peak = p
	}
}
