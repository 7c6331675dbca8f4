package dsp

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

const (
	windowSize = 2048 // Size of each FFT window
)

// HannWindow returns the periodic Hann window of length n, the variant used
// for spectral analysis.
func HannWindow(n int) []float64 {
	window := make([]float64, n)
	for i := range window {
		window[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return window
}

// reflectIndex mirrors i into [0, n) without repeating the edge sample.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// centerPad surrounds the signal with pad reflected samples on each side so
// that frame t is centred on sample t*hop.
func centerPad(sample []float64, pad int) []float64 {
	padded := make([]float64, len(sample)+2*pad)
	for i := range padded {
		padded[i] = sample[reflectIndex(i-pad, len(sample))]
	}
	return padded
}

// FrameCount is the number of centred STFT frames for a signal of length n.
func FrameCount(n, hop int) int {
	return 1 + n/hop
}

// STFT returns the power spectrogram |X|^2 of the centred, Hann windowed
// signal. Rows are the windowSize/2+1 frequency bins, columns are frames.
// The result always has exactly frames columns: missing frames stay zero and
// surplus frames are dropped.
func STFT(sample []float64, hop, frames int) *mat.Dense {
	bins := windowSize/2 + 1
	spectrogram := mat.NewDense(bins, frames, nil)
	if len(sample) == 0 {
		return spectrogram
	}

	window := HannWindow(windowSize)
	padded := centerPad(sample, windowSize/2)

	frame := make([]float64, windowSize)
	n := min(frames, FrameCount(len(sample), hop))
	for t := 0; t < n; t++ {
		start := t * hop
		for i := range frame {
			frame[i] = padded[start+i] * window[i]
		}

		fftResult := fft.FFTReal(frame)

		for k := 0; k < bins; k++ {
			magnitude := cmplx.Abs(fftResult[k])
			spectrogram.Set(k, t, magnitude*magnitude)
		}
	}
	return spectrogram
}
