package ecs

import (
	"math"
	"time"
)

type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts game time towards a duration, either once or repeatedly.
// Tick it with GameTime.Delta to follow pause and time scale.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode

	finished       bool
	finishedInTick uint32
}

func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick advances the timer by the given delta.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.finishedInTick = 0

	if t.finished || t.duration <= 0 {
		return t
	}

	t.elapsed += delta

	if t.elapsed < t.duration {
		return t
	}

	switch t.mode {
	case TimerOnce:
		t.elapsed = t.duration
		t.finished = true
		t.finishedInTick = 1

	case TimerRepeating:
		t.finishedInTick = uint32(min(math.MaxUint32, t.elapsed/t.duration))
		t.elapsed = t.elapsed % t.duration
	}

	return t
}

// Finished returns true once a TimerOnce has reached its duration.
// A repeating timer never finishes.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished returns true if the timer reached its duration during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.finishedInTick > 0
}

// TimesFinishedThisTick returns how often a repeating timer elapsed during the last Tick.
func (t *Timer) TimesFinishedThisTick() int {
	return int(t.finishedInTick)
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fraction returns the progress towards the duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.finishedInTick = 0
}
