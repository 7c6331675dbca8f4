package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	minFrequency = 20.0 // Lowest tone frequency in Hz
	clickWidth   = 4    // Samples set to amplitude around the click location
)

var ErrUnsupportedVariant = errors.New("unsupported sound type")

type SoundType int

const (
	Sine SoundType = iota
	Square
	WhiteNoise
	Click
)

var soundNames = map[SoundType]string{
	Sine:       "sine",
	Square:     "square",
	WhiteNoise: "white_noise",
	Click:      "click",
}

func (s SoundType) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SoundType(%d)", int(s))
}

// ParseSoundType maps a CLI tag onto its generator.
func ParseSoundType(name string) (SoundType, error) {
	for s, n := range soundNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("selected sound %q is not implemented: %w", name, ErrUnsupportedVariant)
}

// Generate produces one waveform of the requested sound. All randomness is
// drawn from rng, so equal seeds and call order give equal output.
func Generate(rng *rand.Rand, sound SoundType, samplingRate int, duration, amplitude float64) ([]float64, error) {
	switch sound {
	case Sine:
		return sine(rng, samplingRate, duration, amplitude), nil
	case Square:
		return square(rng, samplingRate, duration, amplitude), nil
	case WhiteNoise:
		return whiteNoise(rng, samplingRate, duration), nil
	case Click:
		return click(rng, samplingRate, duration, amplitude), nil
	default:
		return nil, fmt.Errorf("selected sound %v is not implemented: %w", sound, ErrUnsupportedVariant)
	}
}

// Timepoints returns sampleCount evenly spaced points over [0, duration],
// both ends included.
func Timepoints(samplingRate int, duration float64) []float64 {
	n := sampleCount(samplingRate, duration)
	if n <= 0 {
		return []float64{}
	}
	t := make([]float64, n)
	if n == 1 {
		return t
	}
	step := duration / float64(n-1)
	for i := range t {
		t[i] = float64(i) * step
	}
	t[n-1] = duration
	return t
}

func sampleCount(samplingRate int, duration float64) int {
	return int(float64(samplingRate) * duration)
}

func toneFrequency(rng *rand.Rand, samplingRate int) float64 {
	u := distuv.Uniform{Min: minFrequency, Max: float64(samplingRate) / 2, Src: rng}
	return u.Rand()
}

func sine(rng *rand.Rand, samplingRate int, duration, amplitude float64) []float64 {
	t := Timepoints(samplingRate, duration)
	f := toneFrequency(rng, samplingRate)
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = amplitude * math.Sin(2*math.Pi*f*ti)
	}
	return x
}

func square(rng *rand.Rand, samplingRate int, duration, amplitude float64) []float64 {
	t := Timepoints(samplingRate, duration)
	f := toneFrequency(rng, samplingRate)
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = amplitude * squareWave(2*math.Pi*f*ti)
	}
	return x
}

// squareWave has period 2π and a 50% duty cycle: +1 on the first half of
// each period, -1 on the second.
func squareWave(phase float64) float64 {
	p := math.Mod(phase, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	if p < math.Pi {
		return 1
	}
	return -1
}

func whiteNoise(rng *rand.Rand, samplingRate int, duration float64) []float64 {
	n := sampleCount(samplingRate, duration)
	if n <= 0 {
		return []float64{}
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	x := make([]float64, n)
	for i := range x {
		x[i] = dist.Rand()
	}
	return x
}

func click(rng *rand.Rand, samplingRate int, duration, amplitude float64) []float64 {
	n := sampleCount(samplingRate, duration)
	if n <= 0 {
		return []float64{}
	}
	x := make([]float64, n)
	// location is drawn from [2, n-3); shorter buffers cannot fit the pulse
	span := n - 5
	if span <= 0 {
		return x
	}
	location := 2 + rng.IntN(span)
	for i := location - clickWidth/2; i < location+clickWidth/2; i++ {
		x[i] = amplitude
	}
	return x
}
