package ecs

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats collects system run durations. Insert it as a resource into a
// World to have Schedule.RunAll record the timings of each system.
type TimingStats struct {
	BySystem    map[string]Timings
	SystemOrder []string
}

func NewTimingStats() TimingStats {
	return TimingStats{
		BySystem: map[string]Timings{},
	}
}

// MeasureSystem starts measuring a system run. Call Stop on the returned
// stopwatch once the system has finished.
func (t *TimingStats) MeasureSystem(name string) TimingStopwatch {
	if t.BySystem == nil {
		t.BySystem = map[string]Timings{}
	}

	if _, ok := t.BySystem[name]; !ok {
		t.SystemOrder = append(t.SystemOrder, name)
	}

	startTime := time.Now()

	return TimingStopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			t.BySystem[name] = t.BySystem[name].Add(duration)
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
