package depot

// Column is the sparse-set storage for all values of one component type.
// Values live in a dense slice; sparse maps an entity index to its slot
// in dense, and entities maps the slot back to its owning entity index so
// a swap-removal can patch the sparse entry of the displaced value.
//
// Invariant: len(dense) == len(entities), and for every occupied slot s,
// sparse[entities[s]] == s.
type Column[T any] struct {
	id       ComponentID
	dense    []T
	entities []uint32
	sparse   []int32
}

const absent int32 = -1

func newColumn[T any](id ComponentID) *Column[T] {
	c := &Column[T]{id: id}
	if n := Config.initialColumnCapacity; n > 0 {
		c.dense = make([]T, 0, n)
		c.entities = make([]uint32, 0, n)
	}
	return c
}

// insert stores value for the entity index, overwriting in place when the
// entity already has a value. It returns the previous value and whether
// one was replaced.
func (c *Column[T]) insert(index uint32, value T) (T, bool) {
	c.ensureSparse(index)
	if slot := c.sparse[index]; slot != absent {
		prev := c.dense[slot]
		c.dense[slot] = value
		return prev, true
	}
	c.sparse[index] = int32(len(c.dense))
	c.dense = append(c.dense, value)
	c.entities = append(c.entities, index)
	var zero T
	return zero, false
}

// remove deletes the entity's value by swapping the last dense slot into
// the vacated one and truncating. O(1); dense order is not preserved.
func (c *Column[T]) remove(index uint32) (T, bool) {
	var zero T
	if int(index) >= len(c.sparse) {
		return zero, false
	}
	slot := c.sparse[index]
	if slot == absent {
		return zero, false
	}
	removed := c.dense[slot]
	last := int32(len(c.dense) - 1)
	if slot != last {
		c.dense[slot] = c.dense[last]
		moved := c.entities[last]
		c.entities[slot] = moved
		c.sparse[moved] = slot
	}
	c.dense[last] = zero // drop the duplicate so T's referents are collectable
	c.dense = c.dense[:last]
	c.entities = c.entities[:last]
	c.sparse[index] = absent
	return removed, true
}

// get returns a pointer into the dense slice. The pointer is valid only
// until the next structural change to the column.
func (c *Column[T]) get(index uint32) (*T, bool) {
	if int(index) >= len(c.sparse) {
		return nil, false
	}
	slot := c.sparse[index]
	if slot == absent {
		return nil, false
	}
	return &c.dense[slot], true
}

func (c *Column[T]) contains(index uint32) bool {
	return int(index) < len(c.sparse) && c.sparse[index] != absent
}

func (c *Column[T]) ensureSparse(index uint32) {
	for int(index) >= len(c.sparse) {
		c.sparse = append(c.sparse, absent)
	}
}

// anyColumn implementation.

func (c *Column[T]) componentID() ComponentID { return c.id }

func (c *Column[T]) containsEntity(index uint32) bool { return c.contains(index) }

func (c *Column[T]) removeEntity(index uint32) bool {
	_, ok := c.remove(index)
	return ok
}

func (c *Column[T]) length() int { return len(c.dense) }

func (c *Column[T]) entityAt(slot int) uint32 { return c.entities[slot] }
