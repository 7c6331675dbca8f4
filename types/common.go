package types

type WavInfo struct {
	Channels       int
	SampleRate     int
	BitDepth       int
	ChannelSamples []float64
	Duration       float64
}

// Sample records the files written for one dataset index.
type Sample struct {
	Index           int
	WavPath         string
	SpectrogramPath string
}
