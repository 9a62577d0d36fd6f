package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	order *[]int
	value int
}

func (r recorder) Run(*World) {
	*r.order = append(*r.order, r.value)
}

func TestSchedule(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		schedule := NewSchedule()
		require.True(t, schedule.IsEmpty())
		require.Equal(t, 0, schedule.Len())

		// running an empty schedule is a no-op
		schedule.RunAll(NewWorld())
	})

	t.Run("insertion order", func(t *testing.T) {
		var order []int

		schedule := NewSchedule()
		schedule.AddSystems(
			func(*World) { order = append(order, 1) },
			SystemFunc(func(*World) { order = append(order, 2) }),
		)
		schedule.AddSystems(recorder{order: &order, value: 3})

		require.Equal(t, 3, schedule.Len())
		require.False(t, schedule.IsEmpty())

		schedule.RunAll(NewWorld())
		require.Equal(t, []int{1, 2, 3}, order)

		schedule.RunAll(NewWorld())
		require.Equal(t, []int{1, 2, 3, 1, 2, 3}, order)
	})

	t.Run("systems share the world", func(t *testing.T) {
		type Counter struct{ Value int }

		w := NewWorld()
		InsertResource(w, Counter{})

		increment := func(w *World) {
			counter, _ := ResourceMut[Counter](w)
			counter.Value += 1
		}

		double := func(w *World) {
			counter, _ := ResourceMut[Counter](w)
			counter.Value *= 2
		}

		schedule := NewSchedule()
		schedule.AddSystems(increment, double)
		schedule.RunAll(w)

		counter, _ := Resource[Counter](w)
		require.Equal(t, 2, counter.Value)
	})

	t.Run("invalid system panics", func(t *testing.T) {
		require.Panics(t, func() {
			NewSchedule().AddSystems(func() {})
		})
	})

	t.Run("timing stats", func(t *testing.T) {
		w := NewWorld()
		InsertResource(w, NewTimingStats())

		schedule := NewSchedule()
		schedule.AddSystems(recorder{order: new([]int), value: 1})
		schedule.RunAll(w)
		schedule.RunAll(w)

		stats, _ := Resource[TimingStats](w)
		require.Equal(t, []string{"ecs.recorder"}, stats.SystemOrder)
		require.Equal(t, 2, stats.BySystem["ecs.recorder"].Count)
		require.Equal(t, schedule.SystemNames(), stats.SystemOrder)
	})
}

func TestTimings(t *testing.T) {
	var timings Timings
	timings = timings.Add(10)
	timings = timings.Add(30)
	timings = timings.Add(20)

	require.Equal(t, 3, timings.Count)
	require.EqualValues(t, 10, timings.Min)
	require.EqualValues(t, 30, timings.Max)
	require.EqualValues(t, 20, timings.Latest)
}
