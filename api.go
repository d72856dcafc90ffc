package depot

// Component is the type-erased handle to a registered component type.
// Concrete handles are produced by FactoryNewComponent and carry typed
// accessors; this interface is what Access builders and the registry
// operate on.
type Component interface {
	ID() ComponentID
	TypeName() string

	// newColumn builds an empty column of the handle's concrete type.
	// Unexported so only handles minted by this package qualify.
	newColumn() anyColumn
}

// anyColumn is the narrow interface every column satisfies regardless of
// its element type. It is everything the world and the query engine need
// without knowing the concrete T; typed access goes through a checked
// downcast to *Column[T].
type anyColumn interface {
	componentID() ComponentID
	containsEntity(index uint32) bool
	removeEntity(index uint32) bool
	length() int
	entityAt(slot int) uint32
}

// System pairs a unit of logic with the access set it declares. Run
// receives the world and typically executes one query built from Access.
type System struct {
	Name   string
	Access *Access
	Run    func(*World) error
}
