package depot

import (
	"github.com/TheBitDrifter/mask"
)

// Access declares the component types a query (or system) touches: which
// it reads, which it writes, and which must be absent. Building an Access
// never fails and takes no borrows; conflicts surface when the access is
// actually executed.
type Access struct {
	entries     []accessEntry
	excludes    []ComponentID
	accessMask  mask.Mask
	writeMask   mask.Mask
	excludeMask mask.Mask
}

// Reads declares shared access to the given component types.
func (a *Access) Reads(components ...Component) *Access {
	for _, c := range components {
		a.add(c, Read)
	}
	return a
}

// Writes declares exclusive access to the given component types. Write
// wins when a type is declared both ways.
func (a *Access) Writes(components ...Component) *Access {
	for _, c := range components {
		a.add(c, Write)
	}
	return a
}

// Without excludes entities that have any of the given component types.
func (a *Access) Without(components ...Component) *Access {
	for _, c := range components {
		id := c.ID()
		if a.excluded(id) {
			continue
		}
		a.excludes = append(a.excludes, id)
		a.excludeMask.Mark(uint32(id))
	}
	return a
}

func (a *Access) add(c Component, mode AccessMode) {
	id := c.ID()
	for i, entry := range a.entries {
		if entry.id != id {
			continue
		}
		if mode == Write && entry.mode == Read {
			a.entries[i].mode = Write
			a.writeMask.Mark(uint32(id))
		}
		return
	}
	a.entries = append(a.entries, accessEntry{id: id, mode: mode, name: c.TypeName()})
	a.accessMask.Mark(uint32(id))
	if mode == Write {
		a.writeMask.Mark(uint32(id))
	}
}

func (a *Access) excluded(id ComponentID) bool {
	var bit mask.Mask
	bit.Mark(uint32(id))
	return a.excludeMask.ContainsAny(bit)
}

// declares reports whether id is in the required (read or write) set.
func (a *Access) declares(id ComponentID) bool {
	var bit mask.Mask
	bit.Mark(uint32(id))
	return a.accessMask.ContainsAny(bit)
}

// contradictory reports whether a required type is also excluded; such an
// access matches nothing.
func (a *Access) contradictory() bool {
	return a.accessMask.ContainsAny(a.excludeMask)
}

// Compatible reports whether two access sets could execute concurrently:
// neither may write a type the other reads or writes. It is a pure
// function of the declarations, independent of any world state, intended
// for ahead-of-time scheduling decisions rather than discovery at borrow
// time. Exclusions never conflict.
func Compatible(a, b *Access) bool {
	return !a.writeMask.ContainsAny(b.accessMask) && !b.writeMask.ContainsAny(a.accessMask)
}
