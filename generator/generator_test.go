package generator

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestParseSoundType(t *testing.T) {
	for _, name := range []string{"sine", "square", "white_noise", "click"} {
		s, err := ParseSoundType(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	for _, name := range []string{"chirp", "", "Sine", "white noise"} {
		_, err := ParseSoundType(name)
		require.ErrorIs(t, err, ErrUnsupportedVariant)
		assert.Contains(t, err.Error(), name)
	}
}

func TestGenerateUnknownType(t *testing.T) {
	x, err := Generate(newRand(1), SoundType(42), 16000, 1.0, 1.0)
	require.ErrorIs(t, err, ErrUnsupportedVariant)
	assert.Nil(t, x)
}

func TestGenerateLength(t *testing.T) {
	cases := []struct {
		rate     int
		duration float64
		want     int
	}{
		{16000, 1.0, 16000},
		{16000, 0.5, 8000},
		{22050, 0.1, 2205},
		{8000, 2.0, 16000},
	}
	for _, sound := range []SoundType{Sine, Square, WhiteNoise, Click} {
		for _, c := range cases {
			x, err := Generate(newRand(7), sound, c.rate, c.duration, 1.0)
			require.NoError(t, err)
			assert.Lenf(t, x, c.want, "%v rate=%d duration=%v", sound, c.rate, c.duration)
		}
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	for _, sound := range []SoundType{Sine, Square, WhiteNoise, Click} {
		x, err := Generate(newRand(3), sound, 16000, 0, 1.0)
		require.NoError(t, err)
		assert.Empty(t, x)

		x, err = Generate(newRand(3), sound, 16000, -1, 1.0)
		require.NoError(t, err)
		assert.Empty(t, x)
	}

	x, err := Generate(newRand(3), Click, 5, 1.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, x)
}

func TestTimepoints(t *testing.T) {
	tp := Timepoints(4, 1.0)
	require.Len(t, tp, 4)
	assert.InDelta(t, 0.0, tp[0], 1e-12)
	assert.InDelta(t, 1.0/3, tp[1], 1e-12)
	assert.InDelta(t, 2.0/3, tp[2], 1e-12)
	assert.Equal(t, 1.0, tp[3])

	assert.Equal(t, []float64{0}, Timepoints(1, 1.0))
	assert.Empty(t, Timepoints(0, 1.0))

	tp = Timepoints(16000, 1.0)
	require.Len(t, tp, 16000)
	for i := 1; i < len(tp); i++ {
		assert.Greater(t, tp[i], tp[i-1])
	}
}

func TestTonesBoundedByAmplitude(t *testing.T) {
	rng := newRand(11)
	for _, amplitude := range []float64{1.0, 0.25, 3.5} {
		for _, sound := range []SoundType{Sine, Square} {
			x, err := Generate(rng, sound, 16000, 0.25, amplitude)
			require.NoError(t, err)
			for i, v := range x {
				if math.Abs(v) > amplitude+1e-9 {
					t.Fatalf("%v sample %d = %v exceeds amplitude %v", sound, i, v, amplitude)
				}
			}
		}
	}
}

func TestSquareTakesOnlyTwoLevels(t *testing.T) {
	x, err := Generate(newRand(5), Square, 16000, 0.5, 0.8)
	require.NoError(t, err)
	var high, low int
	for _, v := range x {
		switch v {
		case 0.8:
			high++
		case -0.8:
			low++
		default:
			t.Fatalf("unexpected square sample %v", v)
		}
	}
	assert.Positive(t, high)
	assert.Positive(t, low)
}

func TestSquareWaveDutyCycle(t *testing.T) {
	assert.Equal(t, 1.0, squareWave(0))
	assert.Equal(t, 1.0, squareWave(math.Pi-1e-9))
	assert.Equal(t, -1.0, squareWave(math.Pi))
	assert.Equal(t, -1.0, squareWave(2*math.Pi-1e-9))
	assert.Equal(t, 1.0, squareWave(2*math.Pi))
	assert.Equal(t, -1.0, squareWave(-0.5))
}

func TestClickShape(t *testing.T) {
	rng := newRand(99)
	const n = 16000
	const amplitude = 0.7
	for trial := 0; trial < 200; trial++ {
		x, err := Generate(rng, Click, n, 1.0, amplitude)
		require.NoError(t, err)
		require.Len(t, x, n)

		start, runs, width := -1, 0, 0
		for i, v := range x {
			switch v {
			case amplitude:
				if i == 0 || x[i-1] != amplitude {
					runs++
					start = i
				}
				width++
			case 0:
			default:
				t.Fatalf("unexpected click sample %v at %d", v, i)
			}
		}
		require.Equal(t, 1, runs)
		require.Equal(t, 4, width)
		// the pulse is centred on a location drawn from [2, n-3), so the
		// run itself starts in [0, n-6]
		centre := start + clickWidth/2
		assert.GreaterOrEqual(t, centre, 2)
		assert.LessOrEqual(t, centre, n-4)
		assert.GreaterOrEqual(t, start, 0)
		assert.LessOrEqual(t, start, n-6)
	}
}

func TestClickReachesBothEnds(t *testing.T) {
	// with n = 7 the centre can only be 2 or 3
	rng := newRand(1)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		x, err := Generate(rng, Click, 7, 1.0, 1.0)
		require.NoError(t, err)
		for j, v := range x {
			if v == 1.0 {
				seen[j+2] = true
				break
			}
		}
	}
	assert.Equal(t, map[int]bool{2: true, 3: true}, seen)
}

func TestWhiteNoiseStatistics(t *testing.T) {
	x, err := Generate(newRand(2024), WhiteNoise, 16000, 10.0, 1.0)
	require.NoError(t, err)
	require.Len(t, x, 160000)

	mean, variance := stat.MeanVariance(x, nil)
	assert.InDelta(t, 0.0, mean, 0.02)
	assert.InDelta(t, 1.0, variance, 0.02)
}

func TestToneFrequencyRange(t *testing.T) {
	rng := newRand(8)
	for i := 0; i < 1000; i++ {
		f := toneFrequency(rng, 16000)
		assert.GreaterOrEqual(t, f, 20.0)
		assert.Less(t, f, 8000.0)
	}
}

func TestGenerateReproducible(t *testing.T) {
	for _, sound := range []SoundType{Sine, Square, WhiteNoise, Click} {
		a, err := Generate(newRand(42), sound, 8000, 0.5, 1.0)
		require.NoError(t, err)
		b, err := Generate(newRand(42), sound, 8000, 0.5, 1.0)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
