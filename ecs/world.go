package ecs

import (
	"log/slog"
	"reflect"
)

// World owns all entities, their components and the global resources.
// A World is not safe for concurrent use.
type World struct {
	entities   EntityAllocator
	resources  Resources
	components map[reflect.Type]componentStorage
}

func NewWorld() *World {
	return &World{
		components: map[reflect.Type]componentStorage{},
	}
}

func (w *World) resourceMap() *Resources {
	return &w.resources
}

// Resources gives access to the untyped resource map of this world.
func (w *World) Resources() *Resources {
	return &w.resources
}

// Spawn allocates a new entity without any components.
func (w *World) Spawn() Entity {
	entity := w.entities.Allocate()
	slog.Debug("Spawned entity", slog.Any("entity", entity))
	return entity
}

// Despawn removes the entity and all of its components. It returns false if
// the entity was not alive.
func (w *World) Despawn(entity Entity) bool {
	if !w.entities.IsAlive(entity) {
		return false
	}

	for _, storage := range w.components {
		storage.remove(entity.Index)
	}

	return w.entities.Deallocate(entity)
}

func (w *World) IsAlive(entity Entity) bool {
	return w.entities.IsAlive(entity)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}
