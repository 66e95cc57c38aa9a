// Package render applies estimated occlusion parameters to sample buffers.
//
// [GainStage] is a volume sink that scales blocks by the current smoothed
// volume; [ReverbSend] is a reverb sink that renders a wet path by FFT
// convolution with a user-supplied impulse response, mixed in at the linear
// gain corresponding to the current millibel level.
//
// Both types follow the frame/buffer split of the estimator: the per-frame
// setter writes only a scalar, the audio thread side consumes it per block.
// Neither type is safe for concurrent use; hosts running estimation and
// rendering on different threads must bridge the parameter writes
// themselves.
package render
