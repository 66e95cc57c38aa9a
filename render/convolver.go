package render

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	ErrEmptyImpulse     = errors.New("render: empty impulse response")
	ErrInvalidBlockSize = errors.New("render: block size must be positive")
)

// convolver is a streaming FFT convolver: each block is convolved with the
// fixed kernel in the frequency domain and the tail beyond the block edge
// is carried into the next call (overlap-add).
type convolver struct {
	plan      *algofft.Plan[complex128]
	kernelFFT []complex128

	fftSize   int
	blockSize int
	kernelLen int

	freq []complex128
	tail []float64
}

func newConvolver(kernel []float64, blockSize int) (*convolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyImpulse
	}
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	kernelLen := len(kernel)
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("render: failed to create FFT plan: %w", err)
	}

	c := &convolver{
		plan:      plan,
		kernelFFT: make([]complex128, fftSize),
		fftSize:   fftSize,
		blockSize: blockSize,
		kernelLen: kernelLen,
		freq:      make([]complex128, fftSize),
		tail:      make([]float64, kernelLen-1),
	}

	for i, v := range kernel {
		c.kernelFFT[i] = complex(v, 0)
	}
	if err := plan.Forward(c.kernelFFT, c.kernelFFT); err != nil {
		return nil, fmt.Errorf("render: failed to compute kernel FFT: %w", err)
	}
	return c, nil
}

// processBlock convolves src (length <= blockSize) and writes len(src)
// output samples to dst; the convolution tail is held back for the next
// call.
func (c *convolver) processBlock(dst, src []float64) error {
	n := len(src)
	if len(dst) != n {
		return ErrLengthMismatch
	}
	if n == 0 {
		return nil
	}

	for i := range c.freq {
		c.freq[i] = 0
	}
	for i, v := range src {
		c.freq[i] = complex(v, 0)
	}
	if err := c.plan.Forward(c.freq, c.freq); err != nil {
		return fmt.Errorf("render: forward FFT failed: %w", err)
	}
	for i := range c.freq {
		c.freq[i] *= c.kernelFFT[i]
	}
	if err := c.plan.Inverse(c.freq, c.freq); err != nil {
		return fmt.Errorf("render: inverse FFT failed: %w", err)
	}

	for i := 0; i < n; i++ {
		out := real(c.freq[i])
		if i < len(c.tail) {
			out += c.tail[i]
		}
		dst[i] = out
	}

	// Slide the unconsumed tail forward and fold in the new one.
	for i := 0; i < len(c.tail); i++ {
		if i+n < len(c.tail) {
			c.tail[i] = c.tail[i+n]
		} else {
			c.tail[i] = 0
		}
	}
	for i := 0; i < c.kernelLen-1; i++ {
		c.tail[i] += real(c.freq[n+i])
	}
	return nil
}

func (c *convolver) reset() {
	for i := range c.tail {
		c.tail[i] = 0
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
