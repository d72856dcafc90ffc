package depot

import "fmt"

// registry owns at most one column per component type, stored behind the
// type-erased anyColumn interface. Columns are created empty on first
// use and live for the lifetime of the world.
type registry struct {
	columns map[ComponentID]anyColumn
}

func newRegistry() registry {
	return registry{columns: make(map[ComponentID]anyColumn)}
}

// ensureColumn returns the typed column for ct, creating it on first use.
// The downcast from the erased handle is checked: a mismatch is reported
// as TypeMismatchError, never dereferenced blindly.
func ensureColumn[T any](w *World, ct ComponentType[T]) (*Column[T], error) {
	handle, ok := w.registry.columns[ct.id]
	if !ok {
		col := ct.newColumn().(*Column[T])
		w.registry.columns[ct.id] = col
		return col, nil
	}
	col, ok := handle.(*Column[T])
	if !ok {
		return nil, TypeMismatchError{Component: ct.name, Got: fmt.Sprintf("%T", handle)}
	}
	return col, nil
}

// lookupColumn is ensureColumn without the create: a missing column means
// no entity ever held this component in this world.
func lookupColumn[T any](w *World, ct ComponentType[T]) (*Column[T], bool, error) {
	handle, ok := w.registry.columns[ct.id]
	if !ok {
		return nil, false, nil
	}
	col, ok := handle.(*Column[T])
	if !ok {
		return nil, false, TypeMismatchError{Component: ct.name, Got: fmt.Sprintf("%T", handle)}
	}
	return col, true, nil
}
