package depot

import "iter"

// Cursor is one execution of a Query: a finite, consumed-once walk over
// the matching entities. It holds the query's borrow tokens from
// creation until Close, which Next calls automatically on exhaustion.
// Abandoning a cursor early requires Close (ForEach and Entities do this
// for the caller).
//
// Iteration is driven by the required column with the fewest occupied
// slots; every other required column is a membership test and every
// excluded column an absence test. Order is the driver's dense order,
// which callers must not rely on beyond "each match exactly once".
type Cursor struct {
	world    *World
	access   *Access
	driver   anyColumn
	others   []anyColumn
	excluded []anyColumn
	release  func()
	slot     int
	current  Entity
	closed   bool
}

// Cursor compiles the query and acquires its borrows. The error is a
// BorrowConflictError when any declared access aliases an active
// conflicting borrow; on error no tokens remain held.
func (q *Query) Cursor() (*Cursor, error) {
	release, err := q.world.borrows.acquire(q.access.entries)
	if err != nil {
		return nil, err
	}
	c := &Cursor{world: q.world, access: q.access, release: release}
	c.compile()
	return c, nil
}

// compile resolves columns and picks the iteration driver. A required
// column that was never populated, or an access that both requires and
// excludes a type, yields an empty cursor; borrows stay held until Close
// so empty executions release exactly like non-empty ones.
func (c *Cursor) compile() {
	if len(c.access.entries) == 0 || c.access.contradictory() {
		return
	}
	required := make([]anyColumn, 0, len(c.access.entries))
	for _, entry := range c.access.entries {
		col, ok := c.world.registry.columns[entry.id]
		if !ok {
			return
		}
		required = append(required, col)
	}
	driverAt := 0
	for i, col := range required {
		if col.length() < required[driverAt].length() {
			driverAt = i
		}
	}
	c.driver = required[driverAt]
	c.others = append(required[:driverAt:driverAt], required[driverAt+1:]...)
	for _, id := range c.access.excludes {
		if col, ok := c.world.registry.columns[id]; ok {
			c.excluded = append(c.excluded, col)
		}
	}
}

// Next advances to the next matching entity, closing the cursor and
// returning false when none remain.
func (c *Cursor) Next() bool {
	if c.closed || c.driver == nil {
		c.Close()
		return false
	}
	for c.slot < c.driver.length() {
		index := c.driver.entityAt(c.slot)
		c.slot++
		if c.matches(index) {
			c.current = Entity{index: index, generation: c.world.allocator.generationAt(index)}
			return true
		}
	}
	c.Close()
	return false
}

func (c *Cursor) matches(index uint32) bool {
	for _, col := range c.others {
		if !col.containsEntity(index) {
			return false
		}
	}
	for _, col := range c.excluded {
		if col.containsEntity(index) {
			return false
		}
	}
	return true
}

// Entity returns the entity at the cursor position. Valid after a true
// Next.
func (c *Cursor) Entity() Entity { return c.current }

// Close releases the cursor's borrow tokens. Safe to call more than
// once; after Close the cursor yields nothing.
func (c *Cursor) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.release()
}

// Entities adapts the cursor to a range-over sequence. Borrows are
// released when the sequence finishes or the caller breaks out of the
// loop.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		defer c.Close()
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}
