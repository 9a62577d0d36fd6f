package audio

import (
	"log/slog"
	"time"
)

type MusicState uint8

const (
	MusicEmpty MusicState = iota
	MusicPlaying
)

func (s MusicState) String() string {
	if s == MusicPlaying {
		return "Playing"
	}

	return "Empty"
}

// MusicPlayer plays a single looping music track at a time.
type MusicPlayer struct {
	current Playback
	track   string
	volume  float64
}

func NewMusicPlayer(volume float64) *MusicPlayer {
	return &MusicPlayer{volume: volume}
}

// Play starts a new track, fading it in over the given duration. A track
// that is currently playing is faded out over the same duration.
func (m *MusicPlayer) Play(backend Backend, path string, fadeIn time.Duration) error {
	m.Stop(fadeIn)
	return m.start(backend, path, fadeIn)
}

// Stop fades out the current track. The player is empty afterwards.
func (m *MusicPlayer) Stop(fadeOut time.Duration) {
	if m.current != nil {
		m.current.Stop(TweenOf(fadeOut))
	}

	m.current = nil
	m.track = ""
}

// Crossfade fades out the current track while fading in the new one, both over
// the given duration.
func (m *MusicPlayer) Crossfade(backend Backend, path string, duration time.Duration) error {
	if m.current != nil {
		m.current.Stop(TweenOf(duration))
	}

	m.current = nil
	m.track = ""

	return m.start(backend, path, duration)
}

func (m *MusicPlayer) start(backend Backend, path string, fadeIn time.Duration) error {
	data, err := backend.Load(path)
	if err != nil {
		return loadFailed(path, err)
	}

	// start silent and loop over the whole track
	playback, err := backend.Play(data, PlaybackSettings{Volume: 0, Loop: true})
	if err != nil {
		return playbackFailed(err)
	}

	playback.SetVolume(m.volume, TweenOf(fadeIn))

	slog.Debug("Playing music",
		slog.String("path", path),
		slog.Duration("fadeIn", fadeIn),
	)

	m.current = playback
	m.track = path

	return nil
}

// SetVolume sets the target volume and applies it to the current track immediately.
func (m *MusicPlayer) SetVolume(volume float64) {
	m.volume = volume

	if m.current != nil {
		m.current.SetVolume(volume, Tween{})
	}
}

func (m *MusicPlayer) Volume() float64 {
	return m.volume
}

func (m *MusicPlayer) State() MusicState {
	if m.current == nil {
		return MusicEmpty
	}

	return MusicPlaying
}

// Track returns the path of the current track, or an empty string if the player is empty.
func (m *MusicPlayer) Track() string {
	return m.track
}
