package audio

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/infinite/ecs"
	"github.com/oliverbestmann/infinite/gm"
)

// Engine is the entry point to the audio system. It owns the backend, the music
// and sfx players and the listener. An Engine is not safe for concurrent use.
type Engine struct {
	backend  Backend
	music    *MusicPlayer
	sfx      *SfxPlayer
	config   Config
	listener Listener
}

// New initializes the audio device and creates a new engine.
func New(config Config) (*Engine, error) {
	backend, err := NewEbitenBackend()
	if err != nil {
		return nil, initFailed(err)
	}

	return NewWithBackend(backend, config), nil
}

func NewDefault() (*Engine, error) {
	return New(DefaultConfig())
}

// NewWithBackend creates a new engine playing sounds on the given backend.
func NewWithBackend(backend Backend, config Config) *Engine {
	slog.Info("Audio engine initialized",
		slog.Float64("musicVolume", config.EffectiveMusicVolume()),
		slog.Float64("sfxVolume", config.EffectiveSfxVolume()),
	)

	return &Engine{
		backend:  backend,
		music:    NewMusicPlayer(config.EffectiveMusicVolume()),
		sfx:      NewSfxPlayer(config.EffectiveSfxVolume()),
		config:   config,
		listener: DefaultListener(),
	}
}

// UpdateVolumes applies a new configuration. The music volume changes immediately,
// the sfx volume applies to sound effects played afterwards.
func (e *Engine) UpdateVolumes(config Config) {
	e.music.SetVolume(config.EffectiveMusicVolume())
	e.sfx.SetVolume(config.EffectiveSfxVolume())
	e.config = config
}

// PlayMusic plays a looping music track, fading it in.
func (e *Engine) PlayMusic(path string, fadeIn time.Duration) error {
	return e.music.Play(e.backend, path, fadeIn)
}

func (e *Engine) StopMusic(fadeOut time.Duration) {
	e.music.Stop(fadeOut)
}

func (e *Engine) CrossfadeMusic(path string, duration time.Duration) error {
	return e.music.Crossfade(e.backend, path, duration)
}

func (e *Engine) PlaySfx(path string) error {
	return e.sfx.Play(e.backend, path)
}

// PlaySfxAt plays a sound effect at a position in the world, relative to the current listener.
func (e *Engine) PlaySfxAt(path string, position gm.Vec3) error {
	return e.sfx.PlayAt(e.backend, path, e.listener, position)
}

func (e *Engine) PlayLooping(path string) (Playback, error) {
	return e.sfx.PlayLooping(e.backend, path)
}

func (e *Engine) StopLooping(playback Playback, fadeOut time.Duration) {
	StopLooping(playback, fadeOut)
}

func (e *Engine) SetListener(position, forward, up gm.Vec3) {
	e.listener = Listener{
		Position: position,
		Forward:  forward,
		Up:       up,
	}
}

func (e *Engine) Listener() Listener {
	return e.listener
}

// Update must be called once per frame to clean up finished sounds.
func (e *Engine) Update() {
	e.sfx.Cleanup()

	if backend, ok := e.backend.(cleaner); ok {
		backend.Cleanup()
	}
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Music() *MusicPlayer {
	return e.music
}

func (e *Engine) Sfx() *SfxPlayer {
	return e.sfx
}

// UpdateSystem updates the *Engine resource of the world, if any.
func UpdateSystem(w *ecs.World) {
	engine, ok := ecs.Resource[*Engine](w)
	if !ok || engine == nil {
		return
	}

	engine.Update()
}
