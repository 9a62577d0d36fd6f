package ecs

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// System is a unit of logic that runs against a World.
type System interface {
	Run(w *World)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World)

func (fn SystemFunc) Run(w *World) {
	fn(w)
}

// AnySystem is either a System or a func(*World).
type AnySystem any

type scheduledSystem struct {
	Name   string
	System System
}

// Schedule is an ordered list of systems. Systems run sequentially in the
// order they were added. There is no removal or reordering.
type Schedule struct {
	systems []scheduledSystem
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddSystems appends the given systems in order.
// It panics if a value is neither a System nor a func(*World).
func (s *Schedule) AddSystems(first AnySystem, more ...AnySystem) {
	for _, system := range append([]AnySystem{first}, more...) {
		s.systems = append(s.systems, asScheduledSystem(system))
	}
}

// RunAll runs every system exactly once, in insertion order.
func (s *Schedule) RunAll(w *World) {
	for _, system := range s.systems {
		if timings, ok := ResourceMut[TimingStats](w); ok {
			stopwatch := timings.MeasureSystem(system.Name)
			system.System.Run(w)
			stopwatch.Stop()
			continue
		}

		system.System.Run(w)
	}
}

// Len returns the number of systems in the schedule.
func (s *Schedule) Len() int {
	return len(s.systems)
}

func (s *Schedule) IsEmpty() bool {
	return len(s.systems) == 0
}

// SystemNames returns the names of all systems in execution order.
func (s *Schedule) SystemNames() []string {
	names := make([]string, 0, len(s.systems))
	for _, system := range s.systems {
		names = append(names, system.Name)
	}

	return names
}

func asScheduledSystem(system AnySystem) scheduledSystem {
	switch system := system.(type) {
	case SystemFunc:
		return scheduledSystem{Name: funcName(system), System: system}

	case func(*World):
		return scheduledSystem{Name: funcName(system), System: SystemFunc(system)}

	case System:
		return scheduledSystem{Name: typeName(system), System: system}

	default:
		panic(fmt.Sprintf("not a system: %T", system))
	}
}

func funcName(fn any) string {
	ptr := reflect.ValueOf(fn).Pointer()

	if info := runtime.FuncForPC(ptr); info != nil {
		name := info.Name()

		// strip the import path, keep package and function name
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}

		return name
	}

	return fmt.Sprintf("func@%x", ptr)
}

func typeName(value any) string {
	return strings.TrimPrefix(reflect.TypeOf(value).String(), "*")
}
