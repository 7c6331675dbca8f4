package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"alamode/config"
	"alamode/dsp"
	"alamode/generator"
	"alamode/npy"
	"alamode/types"
	"alamode/utils"
	"alamode/wav"
)

// Generate writes req.Num variations of the requested sound into
// req.Output. Samples are produced one after another; a failure stops the
// run and leaves the files already written in place.
func Generate(req *config.Request, rng *rand.Rand) ([]types.Sample, error) {
	if err := utils.MkDir(req.Output); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	samples := make([]types.Sample, 0, req.Num)
	for i := 0; i < req.Num; i++ {
		signal, err := generator.Generate(rng, req.Sound, req.SamplingRate, req.Duration, req.Amplitude)
		if err != nil {
			return samples, err
		}
		if len(signal) == 0 {
			utils.Log.Warn("%s sample %d is empty (sampling rate %d, duration %g)", req.Sound, i, req.SamplingRate, req.Duration)
		}

		filename := filepath.Join(req.Output, utils.SampleName(req.Sound.String(), i))
		sample := types.Sample{Index: i, WavPath: filename + ".wav"}

		if err := wav.WriteWav(sample.WavPath, signal, req.SamplingRate); err != nil {
			return samples, fmt.Errorf("writing wav %s: %w", sample.WavPath, err)
		}
		utils.Log.Debug("wrote %s (%d samples)", sample.WavPath, len(signal))

		if req.Logmel {
			spectrogram, err := dsp.LogMelSpectrogram(signal, req.SamplingRate, req.TimeBins, req.FrequencyBins)
			if err != nil {
				return samples, fmt.Errorf("spectrogram for %s: %w", sample.WavPath, err)
			}
			sample.SpectrogramPath = filename + ".npy"
			if err := npy.Save(sample.SpectrogramPath, spectrogram); err != nil {
				return samples, fmt.Errorf("writing spectrogram %s: %w", sample.SpectrogramPath, err)
			}
			utils.Log.Debug("wrote %s", sample.SpectrogramPath)
		}

		samples = append(samples, sample)
	}
	return samples, nil
}
