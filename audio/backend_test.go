package audio

import (
	"errors"
	"fmt"
)

type fakePlayback struct {
	path     string
	settings PlaybackSettings

	volume float64
	tweens []Tween
	state  PlaybackState
}

func (p *fakePlayback) SetVolume(volume float64, tween Tween) {
	p.volume = volume
	p.tweens = append(p.tweens, tween)
}

func (p *fakePlayback) Stop(tween Tween) {
	p.tweens = append(p.tweens, tween)
	p.state = PlaybackStopping

	if tween.Duration == 0 {
		p.state = PlaybackStopped
	}
}

func (p *fakePlayback) State() PlaybackState {
	return p.state
}

// finish simulates the end of a fade out or the end of a one shot sound
func (p *fakePlayback) finish() {
	p.state = PlaybackStopped
}

type fakeBackend struct {
	sounds map[string]SoundData

	loads     []string
	playbacks []*fakePlayback

	playErr error

	cleanups int
}

func newFakeBackend(paths ...string) *fakeBackend {
	backend := &fakeBackend{sounds: map[string]SoundData{}}

	for _, path := range paths {
		backend.sounds[path] = SoundData{Path: path, Samples: []float32{0, 0}}
	}

	return backend
}

func (b *fakeBackend) Load(path string) (SoundData, error) {
	b.loads = append(b.loads, path)

	data, ok := b.sounds[path]
	if !ok {
		return SoundData{}, fmt.Errorf("open %q: %w", path, errors.New("no such file"))
	}

	return data, nil
}

func (b *fakeBackend) Play(data SoundData, settings PlaybackSettings) (Playback, error) {
	if b.playErr != nil {
		return nil, b.playErr
	}

	playback := &fakePlayback{
		path:     data.Path,
		settings: settings,
		volume:   settings.Volume,
	}

	b.playbacks = append(b.playbacks, playback)

	return playback, nil
}

func (b *fakeBackend) Cleanup() {
	b.cleanups++
}

func (b *fakeBackend) last() *fakePlayback {
	return b.playbacks[len(b.playbacks)-1]
}
