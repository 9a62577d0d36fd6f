package audio

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/oliverbestmann/infinite/gm"
)

// SfxPlayer plays sound effects. Decoded sounds are cached by path for the
// lifetime of the player.
type SfxPlayer struct {
	cache  map[string]SoundData
	active []Playback
	volume float64
}

func NewSfxPlayer(volume float64) *SfxPlayer {
	return &SfxPlayer{
		cache:  map[string]SoundData{},
		volume: volume,
	}
}

// Play plays a one shot sound effect.
func (s *SfxPlayer) Play(backend Backend, path string) error {
	return s.play(backend, path, PlaybackSettings{Volume: s.volume})
}

// PlayAt plays a one shot sound effect positioned relative to the listener.
func (s *SfxPlayer) PlayAt(backend Backend, path string, listener Listener, position gm.Vec3) error {
	spatial := ComputeSpatial(listener, position)

	return s.play(backend, path, PlaybackSettings{
		Volume:  s.volume * spatial.Volume,
		Panning: spatial.Pan,
	})
}

func (s *SfxPlayer) play(backend Backend, path string, settings PlaybackSettings) error {
	data, err := s.loadOrCache(backend, path)
	if err != nil {
		return err
	}

	playback, err := backend.Play(data, settings)
	if err != nil {
		return playbackFailed(err)
	}

	s.active = append(s.active, playback)

	return nil
}

// PlayLooping plays a sound effect in a loop. The caller is responsible to stop
// the playback via StopLooping. Looping playbacks are not tracked by the player.
func (s *SfxPlayer) PlayLooping(backend Backend, path string) (Playback, error) {
	data, err := s.loadOrCache(backend, path)
	if err != nil {
		return nil, err
	}

	playback, err := backend.Play(data, PlaybackSettings{Volume: s.volume, Loop: true})
	if err != nil {
		return nil, playbackFailed(err)
	}

	return playback, nil
}

// SetVolume sets the volume for sound effects played after this call.
func (s *SfxPlayer) SetVolume(volume float64) {
	s.volume = volume
}

func (s *SfxPlayer) Volume() float64 {
	return s.volume
}

// Cleanup forgets all one shot playbacks that have stopped.
func (s *SfxPlayer) Cleanup() {
	s.active = slices.DeleteFunc(s.active, func(playback Playback) bool {
		return playback.State() == PlaybackStopped
	})
}

// ActiveCount returns the number of tracked one shot playbacks.
func (s *SfxPlayer) ActiveCount() int {
	return len(s.active)
}

// CachedCount returns the number of decoded sounds in the cache.
func (s *SfxPlayer) CachedCount() int {
	return len(s.cache)
}

func (s *SfxPlayer) loadOrCache(backend Backend, path string) (SoundData, error) {
	key := filepath.Clean(path)

	if data, ok := s.cache[key]; ok {
		return data, nil
	}

	data, err := backend.Load(path)
	if err != nil {
		return SoundData{}, loadFailed(path, err)
	}

	s.cache[key] = data

	return data, nil
}

// StopLooping fades out a looping playback.
func StopLooping(playback Playback, fadeOut time.Duration) {
	if playback != nil {
		playback.Stop(TweenOf(fadeOut))
	}
}
