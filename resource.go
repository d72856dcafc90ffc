package depot

import "reflect"

// resourceMap stores world-global singletons keyed by their Go type.
// Resources hold data that belongs to the world but to no particular
// entity, such as frame timing or input state.
type resourceMap struct {
	values map[reflect.Type]any
}

func newResourceMap() resourceMap {
	return resourceMap{values: make(map[reflect.Type]any)}
}

// SetResource stores value as the world's singleton for type T,
// replacing any previous value.
func SetResource[T any](w *World, value T) {
	w.resources.values[reflect.TypeFor[T]()] = &value
}

// Resource returns a pointer to the world's singleton for type T, or
// false if none is set. Mutations through the pointer are visible to
// later calls.
func Resource[T any](w *World) (*T, bool) {
	stored, ok := w.resources.values[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	ptr, ok := stored.(*T)
	if !ok {
		return nil, false
	}
	return ptr, true
}

// RemoveResource deletes the singleton for type T, reporting whether one
// existed.
func RemoveResource[T any](w *World) bool {
	key := reflect.TypeFor[T]()
	if _, ok := w.resources.values[key]; !ok {
		return false
	}
	delete(w.resources.values, key)
	return true
}
