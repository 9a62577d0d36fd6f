package ecs

import (
	"time"
)

// TimeConfig configures the progression of GameTime.
type TimeConfig struct {
	// How much game time passes per unit of real time.
	TimeScale float64

	// Interval of fixed step updates, defaults to 1/60s.
	FixedTimestep time.Duration

	// Raw frame deltas are clamped to this value to prevent a spiral of death
	// after a long stall.
	MaxDelta time.Duration
}

func DefaultTimeConfig() TimeConfig {
	return TimeConfig{
		TimeScale:     1,
		FixedTimestep: time.Second / 60,
		MaxDelta:      250 * time.Millisecond,
	}
}

// GameTime tracks the progression of game time. It is usually held as a resource
// in the World and updated once per frame by UpdateGameTimeSystem.
type GameTime struct {
	Config TimeConfig

	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	// Delta before applying the time scale. Still progresses while paused.
	UnscaledDelta time.Duration

	FrameCount uint64
	Paused     bool

	fixedAccumulator time.Duration
}

func NewGameTime(config TimeConfig) GameTime {
	return GameTime{Config: config}
}

// Update progresses the game time by the raw delta of the previous frame.
func (t *GameTime) Update(raw time.Duration) {
	raw = max(0, raw)
	if t.Config.MaxDelta > 0 {
		raw = min(raw, t.Config.MaxDelta)
	}

	t.UnscaledDelta = raw
	t.FrameCount += 1

	if t.Paused {
		t.Delta = 0
		t.DeltaSecs = 0
		return
	}

	t.Delta = time.Duration(float64(raw) * t.Config.TimeScale)
	t.DeltaSecs = t.Delta.Seconds()
	t.Elapsed += t.Delta
	t.fixedAccumulator += t.Delta
}

// FixedSteps drains the fixed step accumulator and returns the number of fixed
// steps that should run in this frame.
func (t *GameTime) FixedSteps() int {
	if t.Config.FixedTimestep <= 0 {
		return 0
	}

	var steps int
	for t.fixedAccumulator >= t.Config.FixedTimestep {
		t.fixedAccumulator -= t.Config.FixedTimestep
		steps += 1
	}

	return steps
}

// FixedInterpolation returns the fraction of a fixed step that has accumulated
// but not yet been consumed, for interpolating between two fixed steps.
func (t *GameTime) FixedInterpolation() float64 {
	if t.Config.FixedTimestep <= 0 {
		return 0
	}

	return float64(t.fixedAccumulator) / float64(t.Config.FixedTimestep)
}

func (t *GameTime) Pause() {
	t.Paused = true
}

func (t *GameTime) Resume() {
	t.Paused = false
}

func (t *GameTime) TogglePause() {
	t.Paused = !t.Paused
}

// SetTimeScale sets the time scale. Negative values are clamped to zero.
func (t *GameTime) SetTimeScale(scale float64) {
	t.Config.TimeScale = max(0, scale)
}

// UpdateGameTimeSystem returns a system that updates the GameTime resource
// using the wall clock. The first run only records the current time.
func UpdateGameTimeSystem(now func() time.Time) SystemFunc {
	var lastTime time.Time

	return func(w *World) {
		gameTime, ok := ResourceMut[GameTime](w)
		if !ok {
			return
		}

		current := now()

		if lastTime.IsZero() {
			lastTime = current
			return
		}

		gameTime.Update(current.Sub(lastTime))
		lastTime = current
	}
}
