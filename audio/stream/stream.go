// Package stream provides pull based sample streams: decoders for wav, ogg
// vorbis and mp3 data as well as wrappers applying looping, gain and panning.
package stream

import (
	"time"
)

type Sample interface {
	int16 | float32
}

type Config struct {
	SampleRate int
	Channels   int

	// Number of samples per channel. Zero if unknown or infinite.
	ChannelSampleCount int
}

func (c Config) SampleCount() int {
	return c.ChannelSampleCount * c.Channels
}

func (c Config) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(c.ChannelSampleCount) * time.Second / time.Duration(c.SampleRate)
}

// FramesOf returns the number of frames, samples per channel, that
// make up the given duration.
func (c Config) FramesOf(d time.Duration) int {
	return int(d.Seconds() * float64(c.SampleRate))
}

// Stream is a source of interleaved samples.
type Stream[S Sample] interface {
	Read(samples []S) (int, error)

	// Seek seeks the stream to a specific sample index, or by a sample offset
	Seek(offset int64, whence int) (int64, error)

	Config() Config
}
