package render

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const defaultSendBlockSize = 256

// ReverbSend renders the wet path of an occluded emitter: the dry signal is
// convolved with an impulse response and mixed back in at the gain implied
// by the current reverb level. It implements the occlusion reverb-sink
// contract.
//
// Levels are millibels: 0 is unity wet gain, each -2000 is one decade down,
// and the estimator's dry floor of -10000 mutes the wet path entirely.
type ReverbSend struct {
	conv    *convolver
	level   float64
	wet     float64
	scratch []float64
}

// NewReverbSend creates a send around the given impulse response. blockSize
// bounds the per-call FFT segmentation; 0 selects a default.
func NewReverbSend(impulse []float64, blockSize int) (*ReverbSend, error) {
	if blockSize == 0 {
		blockSize = defaultSendBlockSize
	}
	conv, err := newConvolver(impulse, blockSize)
	if err != nil {
		return nil, err
	}
	return &ReverbSend{
		conv:    conv,
		level:   -10000,
		scratch: make([]float64, blockSize),
	}, nil
}

// SetReverbLevel stores the wet level in millibels. The preset identifier is
// accepted for sink-contract compatibility; only user-mode levels are
// meaningful here.
func (r *ReverbSend) SetReverbLevel(level float64, _ string) {
	r.level = level
	if level <= -10000 {
		r.wet = 0
		return
	}
	r.wet = math.Pow(10, level/2000)
}

// Level returns the current level in millibels.
func (r *ReverbSend) Level() float64 { return r.level }

// WetGain returns the linear gain applied to the wet path.
func (r *ReverbSend) WetGain() float64 { return r.wet }

// ProcessInPlace adds the wet path to buf. The convolver state always
// advances at unit gain, so level changes take effect immediately without
// re-exciting the stored tail.
func (r *ReverbSend) ProcessInPlace(buf []float64) error {
	for start := 0; start < len(buf); start += r.conv.blockSize {
		end := start + r.conv.blockSize
		if end > len(buf) {
			end = len(buf)
		}
		block := buf[start:end]
		wetBlock := r.scratch[:len(block)]
		if err := r.conv.processBlock(wetBlock, block); err != nil {
			return err
		}
		if r.wet == 0 {
			continue
		}
		vecmath.ScaleBlockInPlace(wetBlock, r.wet)
		for i, v := range wetBlock {
			block[i] += v
		}
	}
	return nil
}

// Reset clears the convolution tail.
func (r *ReverbSend) Reset() {
	r.conv.reset()
}
