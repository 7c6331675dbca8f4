package dsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Slaney mel scale: linear below 1 kHz, logarithmic above.
const (
	melMinHz     = 0.0
	melHzPerMel  = 200.0 / 3
	melMinLogHz  = 1000.0
	melMinLogMel = (melMinLogHz - melMinHz) / melHzPerMel
)

var melLogStep = math.Log(6.4) / 27.0

func HzToMel(hz float64) float64 {
	if hz >= melMinLogHz {
		return melMinLogMel + math.Log(hz/melMinLogHz)/melLogStep
	}
	return (hz - melMinHz) / melHzPerMel
}

func MelToHz(mel float64) float64 {
	if mel >= melMinLogMel {
		return melMinLogHz * math.Exp(melLogStep*(mel-melMinLogMel))
	}
	return melMinHz + melHzPerMel*mel
}

// MelFilterBank builds nMels triangular filters over the nFFT/2+1 bins of an
// FFT at sampleRate, spanning 0 Hz to Nyquist. Each filter is scaled by
// 2/(upper-lower) so that all filters carry roughly equal energy.
func MelFilterBank(sampleRate, nFFT, nMels int) *mat.Dense {
	bins := nFFT/2 + 1
	fb := mat.NewDense(nMels, bins, nil)

	fftFreqs := make([]float64, bins)
	for k := range fftFreqs {
		fftFreqs[k] = float64(k) * float64(sampleRate) / float64(nFFT)
	}

	minMel := HzToMel(0)
	maxMel := HzToMel(float64(sampleRate) / 2)
	melFreqs := make([]float64, nMels+2)
	for i := range melFreqs {
		mel := minMel + (maxMel-minMel)*float64(i)/float64(nMels+1)
		melFreqs[i] = MelToHz(mel)
	}

	for m := 0; m < nMels; m++ {
		lower, center, upper := melFreqs[m], melFreqs[m+1], melFreqs[m+2]
		enorm := 2.0 / (upper - lower)
		for k, f := range fftFreqs {
			rising := (f - lower) / (center - lower)
			falling := (upper - f) / (upper - center)
			w := math.Max(0, math.Min(rising, falling))
			if w > 0 {
				fb.Set(m, k, w*enorm)
			}
		}
	}
	return fb
}

// MelSpectrogram projects a power spectrogram onto the mel filterbank.
func MelSpectrogram(sample []float64, sampleRate, hop, frames, nMels int) *mat.Dense {
	power := STFT(sample, hop, frames)
	fb := MelFilterBank(sampleRate, windowSize, nMels)

	var mel mat.Dense
	mel.Mul(fb, power)
	return &mel
}
