package ecs

import (
	"log/slog"
	"strconv"
)

// Entity identifies a slot in the EntityAllocator together with the generation
// of that slot at the time the entity was allocated. Two entities are equal
// iff both their index and generation are equal.
type Entity struct {
	Index      uint32
	Generation uint32
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.Index), 10) + "v" + strconv.FormatUint(uint64(e.Generation), 10)
}

func (e Entity) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// EntityAllocator allocates and recycles entity slots with generational tracking.
// Freed slots are reused in LIFO order. The zero value is ready to use.
type EntityAllocator struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	len         int
}

// Allocate returns a new live entity, reusing the most recently freed slot if there is one.
func (a *EntityAllocator) Allocate() Entity {
	a.len += 1

	if n := len(a.freeList); n > 0 {
		index := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]

		a.alive[index] = true
		return Entity{Index: index, Generation: a.generations[index]}
	}

	index := uint32(len(a.generations))
	a.generations = append(a.generations, 0)
	a.alive = append(a.alive, true)

	return Entity{Index: index, Generation: 0}
}

// Deallocate frees the slot of the given entity. It returns false and does not
// change any state if the entity is not alive.
func (a *EntityAllocator) Deallocate(entity Entity) bool {
	if !a.IsAlive(entity) {
		return false
	}

	idx := entity.Index
	a.alive[idx] = false
	a.generations[idx] += 1
	a.freeList = append(a.freeList, idx)
	a.len -= 1

	return true
}

// IsAlive checks if the entity was allocated and not yet deallocated.
func (a *EntityAllocator) IsAlive(entity Entity) bool {
	idx := int(entity.Index)
	return idx < len(a.alive) && a.alive[idx] && a.generations[idx] == entity.Generation
}

// Len returns the number of live entities.
func (a *EntityAllocator) Len() int {
	return a.len
}

func (a *EntityAllocator) IsEmpty() bool {
	return a.len == 0
}

// Slots returns the number of slots ever created, live or free.
func (a *EntityAllocator) Slots() int {
	return len(a.generations)
}
