package depot

import "testing"

type colValue struct {
	N int
}

// TestColumnInsert tests insert and overwrite behavior.
func TestColumnInsert(t *testing.T) {
	col := newColumn[colValue](0)

	prev, replaced := col.insert(3, colValue{N: 1})
	if replaced {
		t.Errorf("first insert replaced %+v", prev)
	}
	if col.length() != 1 {
		t.Errorf("length %d, want 1", col.length())
	}

	prev, replaced = col.insert(3, colValue{N: 2})
	if !replaced || prev.N != 1 {
		t.Errorf("overwrite returned (%+v, %v), want ({1}, true)", prev, replaced)
	}
	if col.length() != 1 {
		t.Errorf("length after overwrite %d, want 1", col.length())
	}

	got, ok := col.get(3)
	if !ok || got.N != 2 {
		t.Errorf("get = (%+v, %v), want ({2}, true)", got, ok)
	}
}

// TestColumnSwapRemoval tests that a compacting removal keeps every other
// entity retrievable and patches the displaced entity's sparse entry.
func TestColumnSwapRemoval(t *testing.T) {
	tests := []struct {
		name    string
		insert  []uint32
		remove  uint32
		removed bool
	}{
		{"remove first inserted", []uint32{0, 1, 2, 3}, 0, true},
		{"remove middle", []uint32{0, 1, 2, 3}, 2, true},
		{"remove last inserted", []uint32{0, 1, 2, 3}, 3, true},
		{"remove absent", []uint32{0, 1, 2, 3}, 9, false},
		{"remove sole entry", []uint32{5}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := newColumn[colValue](0)
			for _, idx := range tt.insert {
				col.insert(idx, colValue{N: int(idx) * 10})
			}

			value, ok := col.remove(tt.remove)
			if ok != tt.removed {
				t.Fatalf("remove(%d) ok = %v, want %v", tt.remove, ok, tt.removed)
			}
			wantLen := len(tt.insert)
			if tt.removed {
				wantLen--
				if value.N != int(tt.remove)*10 {
					t.Errorf("removed value %+v, want {%d}", value, tt.remove*10)
				}
			}
			if col.length() != wantLen {
				t.Errorf("length %d, want %d", col.length(), wantLen)
			}

			for _, idx := range tt.insert {
				got, ok := col.get(idx)
				if idx == tt.remove && tt.removed {
					if ok {
						t.Errorf("removed entity %d still retrievable", idx)
					}
					continue
				}
				if !ok || got.N != int(idx)*10 {
					t.Errorf("get(%d) = (%+v, %v), want ({%d}, true)", idx, got, ok, idx*10)
				}
			}

			// Back-pointer consistency after the swap.
			for slot := 0; slot < col.length(); slot++ {
				owner := col.entityAt(slot)
				if col.sparse[owner] != int32(slot) {
					t.Errorf("sparse[%d] = %d, want %d", owner, col.sparse[owner], slot)
				}
			}
		})
	}
}

// TestColumnRemoveAbsentLeavesState tests the no-mutation guarantee for
// removals of absent entities.
func TestColumnRemoveAbsentLeavesState(t *testing.T) {
	col := newColumn[colValue](0)
	col.insert(1, colValue{N: 10})
	col.insert(2, colValue{N: 20})

	if _, ok := col.remove(7); ok {
		t.Fatal("removing absent entity reported success")
	}
	if col.length() != 2 {
		t.Errorf("length %d after absent removal, want 2", col.length())
	}
	if got, _ := col.get(1); got.N != 10 {
		t.Errorf("entity 1 value %+v, want {10}", got)
	}
}
