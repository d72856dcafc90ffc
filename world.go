package depot

// World owns the entity allocator, the component registry, and the
// borrow tracker. It is the only entry point for entity and component
// lifecycle; nothing else holds a reference to its columns. A World is
// not safe for unsynchronized use from multiple goroutines; use
// Compatible to decide what may run concurrently and synchronize
// externally.
type World struct {
	allocator entityAllocator
	registry  registry
	borrows   borrowTable
	ops       opQueue
	resources resourceMap
	flushing  bool
}

func newWorld() *World {
	w := &World{
		registry:  newRegistry(),
		ops:       newOpQueue(),
		resources: newResourceMap(),
	}
	w.borrows.onIdle = w.flushOps
	return w
}

// Spawn creates a new entity with no components attached. The returned
// handle is distinct from every currently-alive handle. Spawning touches
// no column, so it is always allowed, even during iteration.
func (w *World) Spawn() Entity {
	return w.allocator.allocate()
}

// SpawnN creates n entities at once.
func (w *World) SpawnN(n int) []Entity {
	entities := make([]Entity, n)
	for i := range entities {
		entities[i] = w.allocator.allocate()
	}
	return entities
}

// Despawn kills the entity and removes its entry from every column, so a
// recycled index never inherits stale component data. The cleanup is
// all-or-nothing: an invalid handle or an active borrow fails before any
// column is touched. Use EnqueueDespawn inside iteration.
func (w *World) Despawn(e Entity) error {
	if !w.allocator.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	if !w.borrows.idle() {
		// Despawn mutates every column, so any outstanding borrow aliases it.
		return BorrowConflictError{Requested: Write}
	}
	for _, col := range w.registry.columns {
		col.removeEntity(e.index)
	}
	if err := w.allocator.deallocate(e); err != nil {
		return err
	}
	if hook := Config.onDespawn; hook != nil {
		hook(e)
	}
	return nil
}

// EnqueueDespawn despawns immediately when no borrows are active and
// otherwise defers the despawn until the last borrow is released.
// Deferred despawns of the same entity coalesce, and a deferred despawn
// cancels the entity's pending component operations.
func (w *World) EnqueueDespawn(e Entity) error {
	if w.borrows.idle() {
		return w.Despawn(e)
	}
	if !w.allocator.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	w.ops.enqueueDespawn(e)
	return nil
}

// Alive reports whether the handle refers to a live entity. Pure check.
func (w *World) Alive(e Entity) bool {
	return w.allocator.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.allocator.live
}

// flushOps runs when the borrow table goes idle.
func (w *World) flushOps() {
	if w.flushing {
		return
	}
	w.flushing = true
	defer func() { w.flushing = false }()
	if err := w.ops.flush(w); err != nil {
		// Queued operations were validated when enqueued; a failure here
		// means the world's bookkeeping is broken.
		panic(err)
	}
}
