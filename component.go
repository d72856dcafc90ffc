package depot

import (
	"fmt"
	"reflect"
	"sync"
)

// ComponentID is the small integer identity of a registered component
// type. IDs double as bit positions in access masks.
type ComponentID uint32

// maxComponentTypes bounds registration so every ComponentID fits a
// single mask word.
const maxComponentTypes = 32

var componentTypes = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]ComponentID
	names  []string
	next   ComponentID
}{byType: make(map[reflect.Type]ComponentID, maxComponentTypes)}

// ComponentType is the typed handle for one registered component type T.
// It carries the attach/detach/get operations for T and participates in
// Access construction through the Component interface. Handles are
// values; copies are interchangeable.
type ComponentType[T any] struct {
	id   ComponentID
	name string
}

// FactoryNewComponent registers T (idempotently) and returns its handle.
// It panics if the number of distinct component types would exceed
// maxComponentTypes; registering more types is a programming error, not
// a runtime condition.
func FactoryNewComponent[T any]() ComponentType[T] {
	var zero T
	typ := reflect.TypeOf(zero)

	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()

	if id, ok := componentTypes.byType[typ]; ok {
		return ComponentType[T]{id: id, name: componentTypes.names[id]}
	}
	if int(componentTypes.next) >= maxComponentTypes {
		panic(fmt.Sprintf("cannot register component %s: maximum of %d component types reached", typ, maxComponentTypes))
	}
	id := componentTypes.next
	componentTypes.byType[typ] = id
	componentTypes.names = append(componentTypes.names, typ.String())
	componentTypes.next++
	return ComponentType[T]{id: id, name: typ.String()}
}

// ResetComponentTypes clears the global component type registry. Only for
// tests and programs that rebuild all worlds from scratch: handles and
// worlds created before the reset must not be used afterwards.
func ResetComponentTypes() {
	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()
	componentTypes.byType = make(map[reflect.Type]ComponentID, maxComponentTypes)
	componentTypes.names = nil
	componentTypes.next = 0
}

// ID returns the component's registry identity.
func (c ComponentType[T]) ID() ComponentID { return c.id }

// TypeName returns the Go type name of T, for diagnostics.
func (c ComponentType[T]) TypeName() string { return c.name }

func (c ComponentType[T]) newColumn() anyColumn {
	return newColumn[T](c.id)
}
