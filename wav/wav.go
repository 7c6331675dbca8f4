package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"alamode/types"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const (
	bitDepth    = 32
	floatFormat = 3 // WAVE_FORMAT_IEEE_FLOAT
)

// WriteWav stores samples as a mono 32-bit IEEE float file. Values are kept
// as generated, including those outside [-1, 1].
func WriteWav(filename string, samples []float64, sampleRate int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	encoder := gowav.NewEncoder(file, sampleRate, bitDepth, 1, floatFormat)
	if len(samples) == 0 {
		// WriteFrame emits the headers lazily, an empty file still needs them
		empty := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		}
		if err := encoder.Write(empty); err != nil {
			return fmt.Errorf("failed to write header: %v", err)
		}
	}
	for _, s := range samples {
		if err := encoder.WriteFrame(float32(s)); err != nil {
			return fmt.Errorf("failed to write samples: %v", err)
		}
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav header: %v", err)
	}
	return file.Close()
}

func ReadWavInfo(filename string) (*types.WavInfo, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := gowav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, errors.New("invalid WAV header format")
	}
	if decoder.NumChans != 1 {
		return nil, errors.New("unsupported channel count (expect mono)")
	}
	if decoder.WavAudioFormat != floatFormat || decoder.BitDepth != bitDepth {
		return nil, errors.New("unsupported sample format (expect 32-bit float)")
	}

	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("failed to find sample data: %v", err)
	}
	buf := &audio.Float32Buffer{
		Format:         decoder.Format(),
		Data:           make([]float32, decoder.PCMSize/4),
		SourceBitDepth: bitDepth,
	}
	if err := binary.Read(decoder.PCMChunk, binary.LittleEndian, buf.Data); err != nil {
		return nil, fmt.Errorf("failed to read samples: %v", err)
	}
	samples := buf.AsFloatBuffer().Data

	info := &types.WavInfo{
		Channels:       1,
		SampleRate:     int(decoder.SampleRate),
		BitDepth:       int(decoder.BitDepth),
		ChannelSamples: samples,
		Duration:       float64(len(samples)) / float64(decoder.SampleRate),
	}
	return info, nil
}
