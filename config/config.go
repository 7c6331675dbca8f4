package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"alamode/dsp"
	"alamode/generator"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ALAMODE"

var ErrUsage = errors.New("usage: alamode <sine|square|white_noise|click> [flags]")

// Request is one generation run, fixed once parsed.
type Request struct {
	Sound         generator.SoundType
	SamplingRate  int
	Duration      float64
	Amplitude     float64
	Num           int
	Logmel        bool
	Output        string
	Seed          uint64
	TimeBins      int
	FrequencyBins int
	Verbose       bool
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("alamode", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Float64P("duration", "d", 1.0, "The length in seconds of generated audio")
	fs.StringP("logmel", "l", "false", "Whether to also generate the log-melspectrograms")
	fs.IntP("num", "n", 1, "The number of samples to generate")
	fs.StringP("output", "o", ".", "The directory to place output")
	fs.IntP("sampling_rate", "r", 16000, "The audio sampling rate")
	fs.Float64P("amplitude", "a", 1.0, "Peak amplitude of tones and clicks")
	fs.Uint64P("seed", "s", 0, "Random seed, 0 seeds from the clock")
	fs.Int("time-bins", dsp.DefaultTimeBins, "Spectrogram time frames")
	fs.Int("frequency-bins", dsp.DefaultFrequencyBins, "Spectrogram mel bins")
	fs.StringP("config", "c", "", "Optional config file (yaml, toml or json)")
	fs.BoolP("verbose", "v", false, "Log every written file")
	return fs
}

// Parse reads the request from args, ALAMODE_* environment variables and an
// optional config file, in that order of precedence.
func Parse(args []string) (*Request, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if fs.NArg() != 1 {
		return nil, ErrUsage
	}
	sound, err := generator.ParseSoundType(fs.Arg(0))
	if err != nil {
		return nil, err
	}

	req := &Request{
		Sound:         sound,
		SamplingRate:  v.GetInt("sampling_rate"),
		Duration:      v.GetFloat64("duration"),
		Amplitude:     v.GetFloat64("amplitude"),
		Num:           v.GetInt("num"),
		Logmel:        parseBool(v.GetString("logmel")),
		Output:        v.GetString("output"),
		Seed:          v.GetUint64("seed"),
		TimeBins:      v.GetInt("time-bins"),
		FrequencyBins: v.GetInt("frequency-bins"),
		Verbose:       v.GetBool("verbose"),
	}
	return req, nil
}

// parseBool accepts "true" in any case; everything else is false.
func parseBool(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == "true"
}

func Usage() string {
	return ErrUsage.Error() + "\n" + newFlagSet().FlagUsages()
}
