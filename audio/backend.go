package audio

import (
	"time"

	"github.com/oliverbestmann/infinite/audio/stream"
)

// Tween describes how a value changes over time. The zero Tween applies a change immediately.
type Tween struct {
	Duration time.Duration
}

// TweenOf creates a linear tween over the given duration.
func TweenOf(duration time.Duration) Tween {
	return Tween{Duration: duration}
}

type PlaybackState uint8

const (
	PlaybackPlaying PlaybackState = iota
	PlaybackStopping
	PlaybackStopped
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackPlaying:
		return "Playing"
	case PlaybackStopping:
		return "Stopping"
	case PlaybackStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

type PlaybackSettings struct {
	Volume float64

	// Stereo panning in [-1, 1]
	Panning float64

	// Loop the sound over its whole duration
	Loop bool
}

// SoundData is a fully decoded sound. Copying is cheap, all copies share
// the same sample buffer.
type SoundData struct {
	Path    string
	Config  stream.Config
	Samples []float32
}

func (s SoundData) Duration() time.Duration {
	return s.Config.Duration()
}

// Playback is a handle to a sound that is currently playing.
type Playback interface {
	// SetVolume tweens the volume of the playback to the given value.
	SetVolume(volume float64, tween Tween)

	// Stop fades the playback to silence and stops it afterwards.
	Stop(tween Tween)

	State() PlaybackState
}

// Backend decodes and plays sounds on an output device.
type Backend interface {
	Load(path string) (SoundData, error)
	Play(data SoundData, settings PlaybackSettings) (Playback, error)
}

// A cleaner is a Backend that releases resources of stopped playbacks
// when Cleanup is called.
type cleaner interface {
	Cleanup()
}
