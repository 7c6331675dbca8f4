package dsp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultTimeBins      = 128
	DefaultFrequencyBins = 256

	amin          = 1e-10 // Floor applied before taking the log
	topDB         = 80.0  // Dynamic range kept below the peak
	silenceDB     = -10.0 // Bins quieter than this are zeroed
	rescaleOffset = 5.0
)

var ErrDegenerateInput = errors.New("degenerate input")

// PowerToDB converts a power spectrogram to decibels relative to ref, in
// place, and clips everything more than topDB below the loudest bin.
func PowerToDB(spec *mat.Dense, ref float64) {
	refDB := 10 * math.Log10(math.Max(amin, ref))
	spec.Apply(func(_, _ int, v float64) float64 {
		return 10*math.Log10(math.Max(amin, v)) - refDB
	}, spec)

	floor := mat.Max(spec) - topDB
	spec.Apply(func(_, _ int, v float64) float64 {
		return math.Max(v, floor)
	}, spec)
}

// LogMelSpectrogram turns a waveform into a frequencyBins x timeBins
// log-mel-spectrogram with values in [-1, 1]. The hop between frames is
// sampleRate/timeBins; the frame count is then fixed at exactly timeBins.
func LogMelSpectrogram(sample []float64, sampleRate, timeBins, frequencyBins int) (*mat.Dense, error) {
	if timeBins <= 0 || frequencyBins <= 0 {
		return nil, fmt.Errorf("invalid spectrogram size %dx%d", frequencyBins, timeBins)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if len(sample) == 0 {
		return nil, fmt.Errorf("empty signal: %w", ErrDegenerateInput)
	}

	hop := sampleRate / timeBins
	if hop < 1 {
		hop = 1
	}
	spec := MelSpectrogram(sample, sampleRate, hop, timeBins, frequencyBins)

	// Fix maximum at 1
	peak := mat.Max(spec)
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("spectrogram peak is %v: %w", peak, ErrDegenerateInput)
	}
	spec.Apply(func(_, _ int, v float64) float64 { return v / peak }, spec)

	PowerToDB(spec, 1.0)

	spec.Apply(func(_, _ int, v float64) float64 {
		if v < silenceDB {
			v = 0
		}
		return (v + rescaleOffset) / rescaleOffset
	}, spec)

	return spec, nil
}
