package sculpt

import (
	"slices"
	"sync"

	"cogentcore.org/core/math32"
)

// defaultNodeSize is the partition size DefaultNodes uses when the caller
// passes a non-positive limit.
const defaultNodeSize = 64

// Node is an opaque handle to a disjoint subset of a mesh's vertices,
// grouped for parallel processing. Nodes are normally produced by an
// external acceleration structure; the meshes in this package also offer
// DefaultNodes as a simple stand-in partitioner.
//
// The element meaning depends on the representation: vertex indices for
// FacedMesh, grid indices for GridMesh, and vertex handles for DynTopoMesh.
//
// Invariant: a node's vertex set is disjoint from all sibling nodes'
// vertex sets, which makes per-node parallel writes race-free.
type Node struct {
	id    int
	elems []int
}

// NewNode creates a node with the given ID and elements. IDs identify
// nodes in dirty-node reports and should be unique within one node list.
func NewNode(id int, elems []int) Node {
	return Node{id: id, elems: elems}
}

// ID returns the node's identifier.
func (n Node) ID() int { return n.id }

// Elems returns the node's elements. The slice is owned by the node;
// callers must not modify it.
func (n Node) Elems() []int { return n.elems }

// Mesh is the capability interface shared by the three storage
// representations. All buffer arguments are sized to NodeVertCount(n) by
// the caller and fully overwritten; a mismatched size is a programming
// defect and panics on slice bounds.
type Mesh interface {
	// NodeVertCount returns the number of unique vertices in the node.
	NodeVertCount(n Node) int

	// OrigData fills positions and normals with the pre-stroke snapshot of
	// the node's vertices. The snapshot stays stable for the whole brush
	// application even as live positions change.
	OrigData(n Node, positions, normals []math32.Vector3)

	// Positions fills positions with the current (live) vertex positions.
	Positions(n Node, positions []math32.Vector3)

	// Normals fills normals with the current vertex normals.
	Normals(n Node, normals []math32.Vector3)

	// FillHideMaskFactors initializes the factor buffer from visibility
	// and mask: hidden vertices get 0, the rest get 1-mask.
	FillHideMaskFactors(n Node, factors []float32)

	// ApplyTranslations adds the translations to the live positions.
	ApplyTranslations(n Node, translations []math32.Vector3)

	// MarkDirty records the node for downstream normal and bounds
	// recomputation.
	MarkDirty(n Node)

	// DirtyNodes returns the node IDs marked since the last call, in
	// ascending order, and clears the record.
	DirtyNodes() []int
}

// dirtyTracker collects dirty node IDs. Marking normally happens in the
// sequential merge phase after parallel dispatch; the mutex keeps
// independent dispatchers sharing one mesh safe too.
type dirtyTracker struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

func (d *dirtyTracker) mark(id int) {
	d.mu.Lock()
	if d.ids == nil {
		d.ids = make(map[int]struct{})
	}
	d.ids[id] = struct{}{}
	d.mu.Unlock()
}

func (d *dirtyTracker) take() []int {
	d.mu.Lock()
	ids := make([]int, 0, len(d.ids))
	for id := range d.ids {
		ids = append(ids, id)
	}
	clear(d.ids)
	d.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// chunkNodes partitions elems into consecutive nodes of at most maxPerNode
// elements, assigning sequential IDs.
func chunkNodes(elems []int, maxPerNode int) []Node {
	if maxPerNode <= 0 {
		maxPerNode = defaultNodeSize
	}
	nodes := make([]Node, 0, (len(elems)+maxPerNode-1)/maxPerNode)
	for start := 0; start < len(elems); start += maxPerNode {
		end := min(start+maxPerNode, len(elems))
		nodes = append(nodes, NewNode(len(nodes), slices.Clone(elems[start:end])))
	}
	return nodes
}

// sequence returns [0, 1, ..., n-1].
func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
