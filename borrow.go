package depot

// AccessMode says whether an access set reads or writes a component type.
type AccessMode uint8

const (
	Read AccessMode = iota
	Write
)

func (m AccessMode) String() string {
	if m == Write {
		return "write"
	}
	return "read"
}

// borrowState tracks outstanding access to one column: any number of
// shared borrows, or exactly one exclusive borrow, never both.
type borrowState struct {
	shared    int
	exclusive bool
}

func (s borrowState) allows(mode AccessMode) bool {
	if s.exclusive {
		return false
	}
	return mode == Read || s.shared == 0
}

// borrowTable is a world's runtime borrow tracker. Acquisition is
// all-or-nothing and synchronous: a conflict is an immediate error, not a
// wait. When the last token is released the onIdle hook runs, which is
// where the world flushes operations deferred during iteration.
type borrowTable struct {
	states      [maxComponentTypes]borrowState
	outstanding int
	onIdle      func()
}

type accessEntry struct {
	id   ComponentID
	mode AccessMode
	name string
}

// acquire takes one token per entry. On conflict, tokens taken so far are
// rolled back and a BorrowConflictError for the offending entry is
// returned. The returned release function is idempotent.
func (b *borrowTable) acquire(entries []accessEntry) (func(), error) {
	// Snapshot so release puts back exactly the tokens taken here, even
	// if the caller's Access is mutated while they are held.
	entries = append([]accessEntry(nil), entries...)
	for i, entry := range entries {
		if !b.states[entry.id].allows(entry.mode) {
			for _, taken := range entries[:i] {
				b.put(taken)
			}
			return nil, BorrowConflictError{Component: entry.name, Requested: entry.mode}
		}
		b.take(entry)
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i := len(entries) - 1; i >= 0; i-- {
			b.put(entries[i])
		}
		if b.outstanding == 0 && b.onIdle != nil {
			b.onIdle()
		}
	}, nil
}

func (b *borrowTable) take(entry accessEntry) {
	if entry.mode == Write {
		b.states[entry.id].exclusive = true
	} else {
		b.states[entry.id].shared++
	}
	b.outstanding++
}

func (b *borrowTable) put(entry accessEntry) {
	if entry.mode == Write {
		b.states[entry.id].exclusive = false
	} else {
		b.states[entry.id].shared--
	}
	b.outstanding--
}

// idle reports whether no borrow tokens are outstanding.
func (b *borrowTable) idle() bool { return b.outstanding == 0 }
