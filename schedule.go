package depot

import "fmt"

// Schedule is an ordered collection of named systems. Execution is
// sequential: each system runs to completion before the next begins.
// Batches exposes which registered systems could run concurrently based
// purely on their declared access sets; the schedule itself never spawns
// goroutines.
type Schedule struct {
	systems     []System
	nameIndices map[string]int
	maxCapacity int
}

func newSchedule(capacity int) *Schedule {
	return &Schedule{
		nameIndices: make(map[string]int),
		maxCapacity: capacity,
	}
}

// Register appends a system and returns its position. Names must be
// unique; registration past the schedule's capacity fails.
func (s *Schedule) Register(sys System) (int, error) {
	if _, exists := s.nameIndices[sys.Name]; exists {
		return -1, fmt.Errorf("system %q already registered", sys.Name)
	}
	if len(s.systems) >= s.maxCapacity {
		return -1, fmt.Errorf("schedule at maximum capacity (%d)", s.maxCapacity)
	}
	idx := len(s.systems)
	s.nameIndices[sys.Name] = idx
	s.systems = append(s.systems, sys)
	return idx, nil
}

// IndexOf returns the position of a registered system by name.
func (s *Schedule) IndexOf(name string) (int, bool) {
	idx, ok := s.nameIndices[name]
	return idx, ok
}

// SystemAt returns the system at position idx.
func (s *Schedule) SystemAt(idx int) *System {
	return &s.systems[idx]
}

// Run executes every system in registration order against w, stopping at
// the first error.
func (s *Schedule) Run(w *World) error {
	for i := range s.systems {
		if err := s.systems[i].Run(w); err != nil {
			return fmt.Errorf("system %q: %w", s.systems[i].Name, err)
		}
	}
	return nil
}

// Batches partitions the systems, preserving registration order, into
// groups whose members are pairwise Compatible. Each group could run its
// members on separate threads without any borrow conflict. The
// partition is computed greedily from the declared access sets alone.
func (s *Schedule) Batches() [][]string {
	var batches [][]string
	var accesses [][]*Access
	for i := range s.systems {
		sys := &s.systems[i]
		placed := false
		for b := range batches {
			if compatibleWithAll(sys.Access, accesses[b]) {
				batches[b] = append(batches[b], sys.Name)
				accesses[b] = append(accesses[b], sys.Access)
				placed = true
				break
			}
		}
		if !placed {
			batches = append(batches, []string{sys.Name})
			accesses = append(accesses, []*Access{sys.Access})
		}
	}
	return batches
}

func compatibleWithAll(a *Access, others []*Access) bool {
	for _, other := range others {
		if !Compatible(a, other) {
			return false
		}
	}
	return true
}
