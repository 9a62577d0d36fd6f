package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// componentStorage is the type erased view of a ComponentStorage.
type componentStorage interface {
	remove(index uint32) bool
	has(index uint32) bool
}

const noDenseIndex = ^uint32(0)

// ComponentStorage is a sparse set holding the components of one type, keyed by
// entity slot index. Insert, remove and lookup are O(1), iteration is dense.
type ComponentStorage[T any] struct {
	// maps an entity index to the position in dense, noDenseIndex if absent
	sparse []uint32

	dense    []T
	entities []Entity
}

// Insert inserts or replaces the component of the given entity.
func (s *ComponentStorage[T]) Insert(entity Entity, value T) {
	idx := int(entity.Index)

	for len(s.sparse) <= idx {
		s.sparse = append(s.sparse, noDenseIndex)
	}

	if denseIdx := s.sparse[idx]; denseIdx != noDenseIndex {
		s.dense[denseIdx] = value
		s.entities[denseIdx] = entity
		return
	}

	s.sparse[idx] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, entity)
}

// Get returns a pointer to the component stored for the given slot index.
// The pointer is valid until the next Insert or Remove on this storage.
func (s *ComponentStorage[T]) Get(index uint32) (*T, bool) {
	if int(index) >= len(s.sparse) {
		return nil, false
	}

	denseIdx := s.sparse[index]
	if denseIdx == noDenseIndex {
		return nil, false
	}

	return &s.dense[denseIdx], true
}

// Remove removes the component of the given slot index by swapping the last
// component into its place.
func (s *ComponentStorage[T]) Remove(index uint32) bool {
	if int(index) >= len(s.sparse) {
		return false
	}

	denseIdx := s.sparse[index]
	if denseIdx == noDenseIndex {
		return false
	}

	s.sparse[index] = noDenseIndex

	last := uint32(len(s.dense) - 1)
	if denseIdx != last {
		s.dense[denseIdx] = s.dense[last]
		s.entities[denseIdx] = s.entities[last]
		s.sparse[s.entities[denseIdx].Index] = denseIdx
	}

	var tZero T
	s.dense[last] = tZero

	s.dense = s.dense[:last]
	s.entities = s.entities[:last]

	return true
}

func (s *ComponentStorage[T]) Has(index uint32) bool {
	_, ok := s.Get(index)
	return ok
}

func (s *ComponentStorage[T]) Len() int {
	return len(s.dense)
}

// Items iterates over all stored components in dense order.
func (s *ComponentStorage[T]) Items() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for idx := range s.dense {
			if !yield(s.entities[idx], &s.dense[idx]) {
				return
			}
		}
	}
}

func (s *ComponentStorage[T]) remove(index uint32) bool {
	return s.Remove(index)
}

func (s *ComponentStorage[T]) has(index uint32) bool {
	return s.Has(index)
}

func storageOf[T any](w *World) (*ComponentStorage[T], bool) {
	storage, ok := w.components[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	return storage.(*ComponentStorage[T]), true
}

func storageOrInitOf[T any](w *World) *ComponentStorage[T] {
	if storage, ok := storageOf[T](w); ok {
		return storage
	}

	storage := &ComponentStorage[T]{}
	w.components[reflect.TypeFor[T]()] = storage

	return storage
}

// InsertComponent inserts or replaces the component of type T on the given entity.
// It panics if the entity is not alive.
func InsertComponent[T any](w *World, entity Entity, component T) {
	if !w.IsAlive(entity) {
		panic(fmt.Sprintf("can not insert component %s on dead entity %s", reflect.TypeFor[T](), entity))
	}

	storageOrInitOf[T](w).Insert(entity, component)
}

// Component returns a pointer to the component of type T of the given entity.
func Component[T any](w *World, entity Entity) (*T, bool) {
	if !w.IsAlive(entity) {
		return nil, false
	}

	storage, ok := storageOf[T](w)
	if !ok {
		return nil, false
	}

	return storage.Get(entity.Index)
}

// RemoveComponent removes the component of type T from the given entity.
// It returns true if the component was present.
func RemoveComponent[T any](w *World, entity Entity) bool {
	if !w.IsAlive(entity) {
		return false
	}

	storage, ok := storageOf[T](w)
	if !ok {
		return false
	}

	return storage.Remove(entity.Index)
}

func HasComponent[T any](w *World, entity Entity) bool {
	_, ok := Component[T](w, entity)
	return ok
}

// EachComponent iterates over all live entities having a component of type T.
// The world must not be modified during iteration.
func EachComponent[T any](w *World) iter.Seq2[Entity, *T] {
	storage, ok := storageOf[T](w)
	if !ok {
		return func(yield func(Entity, *T) bool) {}
	}

	return storage.Items()
}
