package ecs

import (
	"reflect"
)

type AnyPtr = any

// Resources is a type keyed map of singleton values. Each type maps to at most one value.
// The map owns its values and hands out pointers to them. A pointer obtained via
// ResourceMut stays valid until the resource is replaced or removed, after which
// it refers to the old, detached value.
//
// Resources is not safe for concurrent use.
type Resources struct {
	values map[reflect.Type]reflect.Value
}

// ResourceHolder is implemented by *Resources and *World.
type ResourceHolder interface {
	resourceMap() *Resources
}

func (r *Resources) resourceMap() *Resources {
	return r
}

// Insert inserts a value keyed by its dynamic type, replacing any previous value of that type.
// Prefer InsertResource when the static type is known.
func (r *Resources) Insert(value any) {
	if value == nil {
		panic("can not insert nil resource")
	}

	r.insert(reflect.TypeOf(value), reflect.ValueOf(value))
}

func (r *Resources) insert(ty reflect.Type, value reflect.Value) {
	if r.values == nil {
		r.values = map[reflect.Type]reflect.Value{}
	}

	// always allocate fresh memory, a replaced value is dropped
	ptr := reflect.New(ty)
	ptr.Elem().Set(value)

	r.values[ty] = ptr
}

// Get returns a pointer to the resource of the given type.
func (r *Resources) Get(ty reflect.Type) (AnyPtr, bool) {
	ptr, ok := r.values[ty]
	if !ok {
		return nil, false
	}

	return ptr.Interface(), true
}

// Remove removes the resource of the given type. It returns true if the resource existed.
func (r *Resources) Remove(ty reflect.Type) bool {
	_, ok := r.values[ty]
	delete(r.values, ty)
	return ok
}

func (r *Resources) Contains(ty reflect.Type) bool {
	_, ok := r.values[ty]
	return ok
}

// Len returns the number of resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// InsertResource inserts a resource of type T, replacing any previous value of type T.
func InsertResource[T any](h ResourceHolder, value T) {
	h.resourceMap().insert(reflect.TypeFor[T](), reflect.ValueOf(&value).Elem())
}

// Resource returns a copy of the resource of type T.
func Resource[T any](h ResourceHolder) (T, bool) {
	ptr, ok := ResourceMut[T](h)
	if !ok {
		var tZero T
		return tZero, false
	}

	return *ptr, true
}

// ResourceMut returns a pointer to the resource of type T that can be used to
// update the resource in place.
func ResourceMut[T any](h ResourceHolder) (*T, bool) {
	value, ok := h.resourceMap().Get(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}

	return value.(*T), true
}

// RemoveResource removes the resource of type T and returns its value.
func RemoveResource[T any](h ResourceHolder) (T, bool) {
	value, ok := Resource[T](h)
	if ok {
		h.resourceMap().Remove(reflect.TypeFor[T]())
	}

	return value, ok
}

func HasResource[T any](h ResourceHolder) bool {
	return h.resourceMap().Contains(reflect.TypeFor[T]())
}
