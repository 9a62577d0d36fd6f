package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGameTime(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		gameTime := NewGameTime(DefaultTimeConfig())
		gameTime.Update(16 * time.Millisecond)

		require.Equal(t, 16*time.Millisecond, gameTime.Delta)
		require.Equal(t, uint64(1), gameTime.FrameCount)
		require.InDelta(t, 0.016, gameTime.DeltaSecs, 1e-9)
	})

	t.Run("pause", func(t *testing.T) {
		gameTime := NewGameTime(DefaultTimeConfig())
		gameTime.Pause()
		gameTime.Update(16 * time.Millisecond)

		require.Zero(t, gameTime.Delta)
		require.Zero(t, gameTime.Elapsed)
		require.Equal(t, 16*time.Millisecond, gameTime.UnscaledDelta)
		require.Equal(t, uint64(1), gameTime.FrameCount)

		gameTime.TogglePause()
		require.False(t, gameTime.Paused)
	})

	t.Run("clamps delta", func(t *testing.T) {
		gameTime := NewGameTime(DefaultTimeConfig())
		gameTime.Update(5 * time.Second)

		require.Equal(t, 250*time.Millisecond, gameTime.Delta)
	})

	t.Run("time scale", func(t *testing.T) {
		gameTime := NewGameTime(DefaultTimeConfig())
		gameTime.SetTimeScale(2)
		gameTime.Update(10 * time.Millisecond)
		require.Equal(t, 20*time.Millisecond, gameTime.Delta)

		gameTime.SetTimeScale(-1)
		require.Zero(t, gameTime.Config.TimeScale)
	})

	t.Run("fixed steps", func(t *testing.T) {
		gameTime := NewGameTime(TimeConfig{
			TimeScale:     1,
			FixedTimestep: 10 * time.Millisecond,
			MaxDelta:      time.Second,
		})

		gameTime.Update(35 * time.Millisecond)
		require.Equal(t, 3, gameTime.FixedSteps())
		require.Equal(t, 0, gameTime.FixedSteps())
		require.InDelta(t, 0.5, gameTime.FixedInterpolation(), 1e-9)
	})
}

func TestUpdateGameTimeSystem(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start

	w := NewWorld()
	InsertResource(w, NewGameTime(DefaultTimeConfig()))

	system := UpdateGameTimeSystem(func() time.Time { return now })

	system.Run(w)
	gameTime, _ := Resource[GameTime](w)
	require.Equal(t, uint64(0), gameTime.FrameCount)

	now = start.Add(20 * time.Millisecond)
	system.Run(w)

	gameTime, _ = Resource[GameTime](w)
	require.Equal(t, uint64(1), gameTime.FrameCount)
	require.Equal(t, 20*time.Millisecond, gameTime.Elapsed)
}
