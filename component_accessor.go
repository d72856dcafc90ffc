package depot

// Typed component operations. Each mutating call validates the entity
// handle first, then takes a transient borrow on the component's column
// for its duration, so direct mutation while a query holds the column is
// rejected instead of racing it.

// Attach stores value on the entity, returning the previous value and
// whether one was replaced. A dead or stale handle is InvalidEntityError;
// an active conflicting borrow is BorrowConflictError.
func (c ComponentType[T]) Attach(w *World, e Entity, value T) (T, bool, error) {
	var zero T
	if !w.allocator.isAlive(e) {
		return zero, false, InvalidEntityError{Entity: e}
	}
	release, err := w.borrows.acquire([]accessEntry{{id: c.id, mode: Write, name: c.name}})
	if err != nil {
		return zero, false, err
	}
	defer release()
	col, err := ensureColumn(w, c)
	if err != nil {
		return zero, false, err
	}
	prev, replaced := col.insert(e.index, value)
	return prev, replaced, nil
}

// Detach removes the entity's value, returning it. Detaching a component
// the entity does not have is not an error: the column is untouched and
// ok is false.
func (c ComponentType[T]) Detach(w *World, e Entity) (T, bool, error) {
	var zero T
	if !w.allocator.isAlive(e) {
		return zero, false, InvalidEntityError{Entity: e}
	}
	release, err := w.borrows.acquire([]accessEntry{{id: c.id, mode: Write, name: c.name}})
	if err != nil {
		return zero, false, err
	}
	defer release()
	col, exists, err := lookupColumn(w, c)
	if err != nil || !exists {
		return zero, false, err
	}
	removed, ok := col.remove(e.index)
	return removed, ok, nil
}

// Get returns a copy of the entity's value under a transient shared
// borrow. ok is false when the entity is alive but has no value of this
// type.
func (c ComponentType[T]) Get(w *World, e Entity) (T, bool, error) {
	var zero T
	if !w.allocator.isAlive(e) {
		return zero, false, InvalidEntityError{Entity: e}
	}
	release, err := w.borrows.acquire([]accessEntry{{id: c.id, mode: Read, name: c.name}})
	if err != nil {
		return zero, false, err
	}
	defer release()
	col, exists, err := lookupColumn(w, c)
	if err != nil || !exists {
		return zero, false, err
	}
	ptr, ok := col.get(e.index)
	if !ok {
		return zero, false, nil
	}
	return *ptr, true, nil
}

// Update runs fn on the entity's value in place under a transient
// exclusive borrow. ok reports whether the entity had a value.
func (c ComponentType[T]) Update(w *World, e Entity, fn func(*T)) (bool, error) {
	if !w.allocator.isAlive(e) {
		return false, InvalidEntityError{Entity: e}
	}
	release, err := w.borrows.acquire([]accessEntry{{id: c.id, mode: Write, name: c.name}})
	if err != nil {
		return false, err
	}
	defer release()
	col, exists, err := lookupColumn(w, c)
	if err != nil || !exists {
		return false, err
	}
	ptr, ok := col.get(e.index)
	if !ok {
		return false, nil
	}
	fn(ptr)
	return true, nil
}

// Has reports whether the entity currently holds this component. Pure
// membership check, no borrow taken.
func (c ComponentType[T]) Has(w *World, e Entity) bool {
	if !w.allocator.isAlive(e) {
		return false
	}
	col, ok := w.registry.columns[c.id]
	return ok && col.containsEntity(e.index)
}

// Count returns the column's occupied slot count.
func (c ComponentType[T]) Count(w *World) int {
	col, ok := w.registry.columns[c.id]
	if !ok {
		return 0
	}
	return col.length()
}

// GetFromCursor returns a pointer to the component value of the entity at
// the cursor position. It returns nil if the cursor's access set does not
// declare this type (the borrow the pointer relies on was never taken) or
// the entity lacks the value. The pointer must not be retained past the
// cursor's lifetime.
func (c ComponentType[T]) GetFromCursor(cur *Cursor) *T {
	if cur == nil || cur.closed || !cur.access.declares(c.id) {
		return nil
	}
	handle, ok := cur.world.registry.columns[c.id]
	if !ok {
		return nil
	}
	col, ok := handle.(*Column[T])
	if !ok {
		return nil
	}
	ptr, ok := col.get(cur.current.index)
	if !ok {
		return nil
	}
	return ptr
}

// EnqueueAttach attaches immediately when no borrows are active and
// otherwise defers until the last borrow releases. The deferred attach is
// skipped if the entity dies first.
func (c ComponentType[T]) EnqueueAttach(w *World, e Entity, value T) error {
	if w.borrows.idle() {
		_, _, err := c.Attach(w, e, value)
		return err
	}
	if !w.allocator.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	w.ops.enqueueComponentOp(opAttach, e, c.id, func(w *World) error {
		_, _, err := c.Attach(w, e, value)
		return err
	})
	return nil
}

// EnqueueDetach is the deferred counterpart of Detach.
func (c ComponentType[T]) EnqueueDetach(w *World, e Entity) error {
	if w.borrows.idle() {
		_, _, err := c.Detach(w, e)
		return err
	}
	if !w.allocator.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	w.ops.enqueueComponentOp(opDetach, e, c.id, func(w *World) error {
		_, _, err := c.Detach(w, e)
		return err
	})
	return nil
}
