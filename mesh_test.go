package sculpt

import "testing"

// =============================================================================
// Node Tests
// =============================================================================

func TestNode_Accessors(t *testing.T) {
	n := NewNode(7, []int{3, 1, 4})

	if n.ID() != 7 {
		t.Errorf("ID() = %d, want 7", n.ID())
	}
	elems := n.Elems()
	if len(elems) != 3 || elems[0] != 3 || elems[1] != 1 || elems[2] != 4 {
		t.Errorf("Elems() = %v, want [3 1 4]", elems)
	}
}

// =============================================================================
// Partition Tests
// =============================================================================

func TestChunkNodes(t *testing.T) {
	nodes := chunkNodes(sequence(7), 3)

	if len(nodes) != 3 {
		t.Fatalf("chunkNodes produced %d nodes, want 3", len(nodes))
	}
	wantSizes := []int{3, 3, 1}
	next := 0
	for i, n := range nodes {
		if n.ID() != i {
			t.Errorf("node %d ID = %d, want %d", i, n.ID(), i)
		}
		if len(n.Elems()) != wantSizes[i] {
			t.Errorf("node %d has %d elems, want %d", i, len(n.Elems()), wantSizes[i])
		}
		for _, e := range n.Elems() {
			if e != next {
				t.Errorf("node %d elem = %d, want %d", i, e, next)
			}
			next++
		}
	}
}

func TestChunkNodes_DefaultSize(t *testing.T) {
	nodes := chunkNodes(sequence(100), 0)

	if len(nodes) != 2 {
		t.Fatalf("chunkNodes produced %d nodes, want 2 (default size %d)", len(nodes), defaultNodeSize)
	}
	if len(nodes[0].Elems()) != defaultNodeSize {
		t.Errorf("node 0 has %d elems, want %d", len(nodes[0].Elems()), defaultNodeSize)
	}
}

func TestChunkNodes_Empty(t *testing.T) {
	if nodes := chunkNodes(nil, 4); len(nodes) != 0 {
		t.Errorf("chunkNodes(nil) = %v, want empty", nodes)
	}
}

// =============================================================================
// Dirty Tracking Tests
// =============================================================================

func TestDirtyTracker(t *testing.T) {
	var d dirtyTracker

	d.mark(5)
	d.mark(1)
	d.mark(5) // duplicate

	got := d.take()
	if len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("take() = %v, want [1 5] (sorted, deduplicated)", got)
	}

	// take clears the record.
	if got := d.take(); len(got) != 0 {
		t.Errorf("second take() = %v, want empty", got)
	}
}
