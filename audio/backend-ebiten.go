package audio

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/oliverbestmann/infinite/audio/stream"
)

const SampleRate = 48_000

// EbitenBackend plays sounds using the ebiten audio context. The context mixes
// all players on its own goroutine.
type EbitenBackend struct {
	context *eaudio.Context

	mu   sync.Mutex
	live []*ebitenPlayback
}

// NewEbitenBackend initializes the audio device. There can be only one audio context
// per process, an already existing context is reused.
func NewEbitenBackend() (backend *EbitenBackend, err error) {
	if ctx := eaudio.CurrentContext(); ctx != nil {
		if ctx.SampleRate() != SampleRate {
			return nil, fmt.Errorf("existing audio context uses sample rate %d", ctx.SampleRate())
		}

		return &EbitenBackend{context: ctx}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create audio context: %v", r)
		}
	}()

	ctx := eaudio.NewContext(SampleRate)

	return &EbitenBackend{context: ctx}, nil
}

// Load reads and fully decodes a wav, ogg vorbis or mp3 file.
func (b *EbitenBackend) Load(path string) (SoundData, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return SoundData{}, fmt.Errorf("read audio file: %w", err)
	}

	config, samples, err := stream.Decode(buf)
	if err != nil {
		return SoundData{}, err
	}

	config, samples = stream.Resample(config, samples, SampleRate)

	slog.Debug("Decoded audio file",
		slog.String("path", path),
		slog.Int("sampleCount", len(samples)),
		slog.Duration("duration", config.Duration()),
	)

	return SoundData{Path: path, Config: config, Samples: samples}, nil
}

func (b *EbitenBackend) Play(data SoundData, settings PlaybackSettings) (Playback, error) {
	var source stream.Stream[float32] = stream.FromSamples(data.Config, data.Samples)

	if settings.Loop {
		source = stream.Loop(source)
	}

	panner := stream.NewPanner(source, settings.Panning)
	fader := stream.NewFader(panner, settings.Volume)

	player, err := b.context.NewPlayerF32(stream.ToReadSeeker[float32](fader))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player.Play()

	playback := &ebitenPlayback{
		player: player,
		fader:  fader,
		panner: panner,
	}

	b.mu.Lock()
	b.live = append(b.live, playback)
	b.mu.Unlock()

	return playback, nil
}

// Cleanup closes the players of all playbacks that have stopped, including
// playbacks nobody holds a reference to anymore.
func (b *EbitenBackend) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.live = slices.DeleteFunc(b.live, func(playback *ebitenPlayback) bool {
		return playback.State() == PlaybackStopped
	})
}

// audioPlayer is the part of an ebiten audio player used by a playback.
type audioPlayer interface {
	IsPlaying() bool
	Close() error
}

type ebitenPlayback struct {
	player audioPlayer
	fader  *stream.Fader
	panner *stream.Panner

	closeOnce sync.Once
}

func (p *ebitenPlayback) SetVolume(volume float64, tween Tween) {
	p.fader.FadeTo(volume, tween.Duration)
}

// SetPanning changes the stereo panning of the playback.
func (p *ebitenPlayback) SetPanning(pan float64) {
	p.panner.SetPan(pan)
}

func (p *ebitenPlayback) Stop(tween Tween) {
	p.fader.FadeOut(tween.Duration)
}

func (p *ebitenPlayback) State() PlaybackState {
	if p.fader.Stopped() || !p.player.IsPlaying() {
		p.close()
		return PlaybackStopped
	}

	if p.fader.FadingOut() {
		return PlaybackStopping
	}

	return PlaybackPlaying
}

func (p *ebitenPlayback) close() {
	p.closeOnce.Do(func() {
		_ = p.player.Close()
	})
}
