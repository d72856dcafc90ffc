/*
Package depot provides a sparse-set Entity-Component-System (ECS) store for games and simulations.

Depot keeps each component type in its own densely packed column, indexed by a sparse
entity map, so iteration over one component type touches contiguous memory. Entity
handles carry a generation counter: despawning an entity invalidates every copy of its
handle, and a recycled index can never be confused with the entity that used to live
there.

Access to columns is tracked at runtime. A query declares which component types it
reads and which it writes; executing the query takes a shared or exclusive borrow on
each declared column and releases them all when iteration finishes, no matter how it
finishes. Overlapping a write with any other access to the same type is reported as a
borrow conflict, never a silent race.

Core Concepts:

  - Entity: a lightweight generational handle identifying one object.
  - ComponentType: a registered component type, used to attach data and build queries.
  - Access: a declaration of required (read/write) and excluded component types.
  - Query: an executable filter yielding every live entity matching an Access.

Basic Usage:

	// Create a world
	world := depot.Factory.NewWorld()

	// Define components
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	// Create entities
	e := world.Spawn()
	position.Attach(world, e, Position{X: 1})
	velocity.Attach(world, e, Velocity{X: 2})

	// Query entities and process them
	access := depot.Factory.NewAccess().Writes(position).Reads(velocity)
	err := world.Query(access).ForEach(func(cur *depot.Cursor) error {
		pos := position.GetFromCursor(cur)
		vel := velocity.GetFromCursor(cur)
		pos.X += vel.X
		pos.Y += vel.Y
		return nil
	})

Depot is single-threaded by default; Compatible reports whether two access sets could
safely run on separate goroutines, should a caller want to schedule them that way.
*/
package depot
