package depot

type operationType int

const (
	opAttach operationType = iota
	opDetach
	opDespawn
	opCancelled operationType = -1
)

type operation struct {
	typ       operationType
	entity    Entity
	component ComponentID
	apply     func(*World) error
}

type opModKey struct {
	entity    Entity
	component ComponentID
}

// opQueue holds structural operations deferred while borrows were
// active. Component operations coalesce per (entity, component) —
// last write wins — and a pending despawn cancels the entity's pending
// component operations.
type opQueue struct {
	componentOps   []operation
	despawnOps     []operation
	pendingDespawn map[Entity]struct{}
	pendingMods    map[opModKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDespawn: make(map[Entity]struct{}),
		pendingMods:    make(map[opModKey]int),
	}
}

func (q *opQueue) enqueueDespawn(e Entity) {
	if _, exists := q.pendingDespawn[e]; exists {
		return
	}
	q.pendingDespawn[e] = struct{}{}
	for key, idx := range q.pendingMods {
		if key.entity == e {
			q.componentOps[idx].typ = opCancelled
			delete(q.pendingMods, key)
		}
	}
	q.despawnOps = append(q.despawnOps, operation{typ: opDespawn, entity: e})
}

func (q *opQueue) enqueueComponentOp(typ operationType, e Entity, id ComponentID, apply func(*World) error) {
	if _, doomed := q.pendingDespawn[e]; doomed {
		return
	}
	key := opModKey{entity: e, component: id}
	if idx, exists := q.pendingMods[key]; exists {
		q.componentOps[idx].typ = typ
		q.componentOps[idx].apply = apply
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:       typ,
		entity:    e,
		component: id,
		apply:     apply,
	})
}

// flush applies component operations first, then despawns. Operations on
// entities that died since enqueueing are skipped: the intent they
// captured is stale, not wrong.
func (q *opQueue) flush(w *World) error {
	if len(q.componentOps) == 0 && len(q.despawnOps) == 0 {
		return nil
	}

	for _, op := range q.componentOps {
		if op.typ == opCancelled || !w.Alive(op.entity) {
			continue
		}
		if err := op.apply(w); err != nil {
			return err
		}
	}

	for _, op := range q.despawnOps {
		if !w.Alive(op.entity) {
			continue
		}
		if err := w.Despawn(op.entity); err != nil {
			return err
		}
	}

	q.componentOps = q.componentOps[:0]
	q.despawnOps = q.despawnOps[:0]
	clear(q.pendingDespawn)
	clear(q.pendingMods)
	return nil
}
