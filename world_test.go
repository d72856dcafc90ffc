package depot

import (
	"errors"
	"testing"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Value int
}

type Frozen struct{}

// TestWorldSpawnDespawn tests handle lifecycle through the world.
func TestWorldSpawnDespawn(t *testing.T) {
	w := Factory.NewWorld()

	entities := w.SpawnN(3)
	if w.Len() != 3 {
		t.Fatalf("Len = %d, want 3", w.Len())
	}
	for _, e := range entities {
		if !w.Alive(e) {
			t.Fatalf("spawned entity %+v not alive", e)
		}
	}

	if err := w.Despawn(entities[1]); err != nil {
		t.Fatalf("despawn: %v", err)
	}
	if w.Alive(entities[1]) {
		t.Error("despawned entity still alive")
	}
	if w.Len() != 2 {
		t.Errorf("Len = %d after despawn, want 2", w.Len())
	}

	var invalid InvalidEntityError
	if err := w.Despawn(entities[1]); !errors.As(err, &invalid) {
		t.Errorf("second despawn error = %v, want InvalidEntityError", err)
	}
}

// TestWorldAttachDetach tests component lifecycle, including the strict
// treatment of dead handles.
func TestWorldAttachDetach(t *testing.T) {
	position := FactoryNewComponent[Position]()
	w := Factory.NewWorld()
	e := w.Spawn()

	if _, replaced, err := position.Attach(w, e, Position{X: 1, Y: 2}); err != nil || replaced {
		t.Fatalf("attach = (replaced %v, %v), want (false, nil)", replaced, err)
	}
	prev, replaced, err := position.Attach(w, e, Position{X: 3, Y: 4})
	if err != nil || !replaced || prev.X != 1 {
		t.Fatalf("re-attach = (%+v, %v, %v), want ({1 2}, true, nil)", prev, replaced, err)
	}

	got, ok, err := position.Get(w, e)
	if err != nil || !ok || got.X != 3 {
		t.Fatalf("get = (%+v, %v, %v), want ({3 4}, true, nil)", got, ok, err)
	}

	removed, ok, err := position.Detach(w, e)
	if err != nil || !ok || removed.X != 3 {
		t.Fatalf("detach = (%+v, %v, %v), want ({3 4}, true, nil)", removed, ok, err)
	}

	// Idempotence of absence: no value, no mutation, no error.
	if _, ok, err := position.Detach(w, e); ok || err != nil {
		t.Errorf("detach of absent = (ok %v, %v), want (false, nil)", ok, err)
	}
	if position.Count(w) != 0 {
		t.Errorf("column count %d after detaches, want 0", position.Count(w))
	}

	w.Despawn(e)
	var invalid InvalidEntityError
	if _, _, err := position.Attach(w, e, Position{}); !errors.As(err, &invalid) {
		t.Errorf("attach to dead entity error = %v, want InvalidEntityError", err)
	}
	if _, _, err := position.Detach(w, e); !errors.As(err, &invalid) {
		t.Errorf("detach from dead entity error = %v, want InvalidEntityError", err)
	}
	if _, _, err := position.Get(w, e); !errors.As(err, &invalid) {
		t.Errorf("get from dead entity error = %v, want InvalidEntityError", err)
	}
}

// TestWorldDespawnClearsColumns tests that a recycled index does not
// inherit the previous occupant's components.
func TestWorldDespawnClearsColumns(t *testing.T) {
	position := FactoryNewComponent[Position]()
	health := FactoryNewComponent[Health]()
	w := Factory.NewWorld()

	e := w.Spawn()
	position.Attach(w, e, Position{X: 7})
	health.Attach(w, e, Health{Value: 10})

	if err := w.Despawn(e); err != nil {
		t.Fatalf("despawn: %v", err)
	}
	if position.Count(w) != 0 || health.Count(w) != 0 {
		t.Fatalf("columns not cleared: position %d, health %d", position.Count(w), health.Count(w))
	}

	recycled := w.Spawn()
	if recycled.Index() != e.Index() {
		t.Fatalf("expected index reuse, got %d want %d", recycled.Index(), e.Index())
	}
	if position.Has(w, recycled) || health.Has(w, recycled) {
		t.Error("recycled entity inherited stale component data")
	}
}

// TestWorldUpdate tests in-place mutation under a transient exclusive
// borrow.
func TestWorldUpdate(t *testing.T) {
	health := FactoryNewComponent[Health]()
	w := Factory.NewWorld()
	e := w.Spawn()
	health.Attach(w, e, Health{Value: 5})

	ok, err := health.Update(w, e, func(h *Health) { h.Value += 3 })
	if err != nil || !ok {
		t.Fatalf("update = (%v, %v), want (true, nil)", ok, err)
	}
	got, _, _ := health.Get(w, e)
	if got.Value != 8 {
		t.Errorf("value after update %d, want 8", got.Value)
	}

	other := w.Spawn()
	ok, err = health.Update(w, other, func(*Health) { t.Error("fn ran for absent component") })
	if err != nil || ok {
		t.Errorf("update of absent = (%v, %v), want (false, nil)", ok, err)
	}
}

// TestWorldDespawnHook tests the configured despawn callback.
func TestWorldDespawnHook(t *testing.T) {
	var despawned []Entity
	Config.SetDespawnHook(func(e Entity) { despawned = append(despawned, e) })
	defer Config.SetDespawnHook(nil)

	w := Factory.NewWorld()
	e := w.Spawn()
	if err := w.Despawn(e); err != nil {
		t.Fatalf("despawn: %v", err)
	}
	if len(despawned) != 1 || despawned[0] != e {
		t.Errorf("hook saw %v, want [%+v]", despawned, e)
	}
}

// TestResources tests the world-global singleton store.
func TestResources(t *testing.T) {
	type deltaTime struct{ Seconds float64 }
	type input struct{ EscDown bool }

	w := Factory.NewWorld()
	SetResource(w, deltaTime{Seconds: 0.01})

	dt, ok := Resource[deltaTime](w)
	if !ok || dt.Seconds != 0.01 {
		t.Fatalf("resource = (%+v, %v), want ({0.01}, true)", dt, ok)
	}

	dt.Seconds = 0.02
	dt, _ = Resource[deltaTime](w)
	if dt.Seconds != 0.02 {
		t.Errorf("mutation through pointer not visible, got %v", dt.Seconds)
	}

	SetResource(w, input{EscDown: true})
	in, ok := Resource[input](w)
	if !ok || !in.EscDown {
		t.Errorf("second resource = (%+v, %v), want ({true}, true)", in, ok)
	}

	if !RemoveResource[deltaTime](w) {
		t.Error("remove of present resource reported false")
	}
	if _, ok := Resource[deltaTime](w); ok {
		t.Error("resource present after removal")
	}
	if RemoveResource[deltaTime](w) {
		t.Error("remove of absent resource reported true")
	}
}
