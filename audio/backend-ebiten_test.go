package audio

import (
	"testing"
	"time"

	"github.com/oliverbestmann/infinite/audio/stream"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	playing bool
	closed  int
}

func (p *fakePlayer) IsPlaying() bool {
	return p.playing
}

func (p *fakePlayer) Close() error {
	p.closed++
	p.playing = false
	return nil
}

func newTestPlayback() (*ebitenPlayback, *fakePlayer) {
	config := stream.Config{SampleRate: SampleRate, Channels: 2}
	source := stream.FromSamples(config, make([]float32, 64))

	panner := stream.NewPanner(source, 0)
	fader := stream.NewFader(panner, 1)

	player := &fakePlayer{playing: true}

	return &ebitenPlayback{player: player, fader: fader, panner: panner}, player
}

func TestEbitenBackend_Cleanup(t *testing.T) {
	t.Run("closes dropped playbacks", func(t *testing.T) {
		stopped, stoppedPlayer := newTestPlayback()
		playing, playingPlayer := newTestPlayback()

		backend := &EbitenBackend{live: []*ebitenPlayback{stopped, playing}}

		// nobody polls the state of the stopped playback afterwards
		stopped.Stop(Tween{})

		backend.Cleanup()

		require.Equal(t, 1, stoppedPlayer.closed)
		require.Zero(t, playingPlayer.closed)
		require.Equal(t, []*ebitenPlayback{playing}, backend.live)
	})

	t.Run("closes finished players once", func(t *testing.T) {
		playback, player := newTestPlayback()
		backend := &EbitenBackend{live: []*ebitenPlayback{playback}}

		player.playing = false

		backend.Cleanup()
		backend.Cleanup()

		require.Equal(t, PlaybackStopped, playback.State())
		require.Equal(t, 1, player.closed)
		require.Empty(t, backend.live)
	})

	t.Run("fading out", func(t *testing.T) {
		playback, player := newTestPlayback()
		backend := &EbitenBackend{live: []*ebitenPlayback{playback}}

		playback.Stop(TweenOf(time.Second))
		require.Equal(t, PlaybackStopping, playback.State())

		backend.Cleanup()
		require.Zero(t, player.closed)
		require.Len(t, backend.live, 1)
	})
}
