// Package ecs contains the foundation of the entity component system: a
// generational entity allocator, a type keyed resource map, a sequential
// system schedule and the World tying them together.
//
// Entities are plain handles. A handle of a despawned entity stays queryable
// and is reported as not alive, even after its slot was reused.
package ecs
