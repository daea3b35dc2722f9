package sculpt

import (
	"slices"
	"sync"

	"cogentcore.org/core/math32"
)

// dynTopoVert is one vertex of a DynTopoMesh.
type dynTopoVert struct {
	position  math32.Vector3
	normal    math32.Vector3
	mask      float32
	hidden    bool
	neighbors []int
}

// origState is a vertex's pre-stroke position and normal, logged on first
// mutation within a stroke.
type origState struct {
	position math32.Vector3
	normal   math32.Vector3
}

// DynTopoMesh is an unordered, mutable vertex set keyed by integer
// handles, for dynamic-topology sculpting where vertices appear and
// disappear mid-session.
//
// Original (pre-stroke) state is kept in a log filled lazily: the first
// commit that touches a vertex within a stroke records its state at that
// moment. OrigData reads the log entry when present and the live state
// otherwise, so distance and normal computations stay stable across the
// applications of one stroke.
type DynTopoMesh struct {
	verts map[int]*dynTopoVert
	order []int
	next  int

	// logMu guards log: unlike per-vertex state, the log map is shared
	// across nodes and is touched from parallel commits.
	logMu sync.Mutex
	log   map[int]origState

	dirty dirtyTracker
}

// NewDynTopoMesh creates an empty dynamic-topology mesh.
func NewDynTopoMesh() *DynTopoMesh {
	return &DynTopoMesh{
		verts: make(map[int]*dynTopoVert),
		log:   make(map[int]origState),
	}
}

// AddVert adds a vertex and returns its handle.
func (m *DynTopoMesh) AddVert(position, normal math32.Vector3) int {
	h := m.next
	m.next++
	m.verts[h] = &dynTopoVert{position: position, normal: normal}
	m.order = append(m.order, h)
	return h
}

// RemoveVert removes the vertex with handle h, detaching it from its
// neighbors. Removing an unknown handle is a no-op.
func (m *DynTopoMesh) RemoveVert(h int) {
	v, ok := m.verts[h]
	if !ok {
		return
	}
	for _, nb := range v.neighbors {
		if other, ok := m.verts[nb]; ok {
			if i := slices.Index(other.neighbors, h); i >= 0 {
				other.neighbors = slices.Delete(other.neighbors, i, i+1)
			}
		}
	}
	delete(m.verts, h)
	delete(m.log, h)
	if i := slices.Index(m.order, h); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

// Connect links vertices a and b as mutual neighbors. Unknown handles and
// duplicate links are ignored.
func (m *DynTopoMesh) Connect(a, b int) {
	va, okA := m.verts[a]
	vb, okB := m.verts[b]
	if !okA || !okB || a == b {
		return
	}
	if !slices.Contains(va.neighbors, b) {
		va.neighbors = append(va.neighbors, b)
	}
	if !slices.Contains(vb.neighbors, a) {
		vb.neighbors = append(vb.neighbors, a)
	}
}

// VertCount returns the number of vertices.
func (m *DynTopoMesh) VertCount() int { return len(m.verts) }

// Handles returns the vertex handles in insertion order.
func (m *DynTopoMesh) Handles() []int { return slices.Clone(m.order) }

// Position returns the live position of the vertex with handle h.
func (m *DynTopoMesh) Position(h int) (math32.Vector3, bool) {
	v, ok := m.verts[h]
	if !ok {
		return math32.Vector3{}, false
	}
	return v.position, true
}

// SetMask sets the paint mask of the vertex with handle h.
func (m *DynTopoMesh) SetMask(h int, mask float32) {
	if v, ok := m.verts[h]; ok {
		v.mask = mask
	}
}

// SetHidden sets the visibility of the vertex with handle h.
func (m *DynTopoMesh) SetHidden(h int, hidden bool) {
	if v, ok := m.verts[h]; ok {
		v.hidden = hidden
	}
}

// BeginStroke clears the original-state log. Call it when a stroke starts,
// before the first brush application.
func (m *DynTopoMesh) BeginStroke() {
	m.logMu.Lock()
	clear(m.log)
	m.logMu.Unlock()
}

// DefaultNodes partitions all vertices, in insertion order, into nodes of
// at most maxPerNode handles each. It is a stand-in for an external
// acceleration structure.
func (m *DynTopoMesh) DefaultNodes(maxPerNode int) []Node {
	return chunkNodes(m.order, maxPerNode)
}

// NodeVertCount implements Mesh.
func (m *DynTopoMesh) NodeVertCount(n Node) int { return len(n.elems) }

// OrigData implements Mesh: logged pre-stroke state when present, live
// state otherwise.
func (m *DynTopoMesh) OrigData(n Node, positions, normals []math32.Vector3) {
	m.logMu.Lock()
	defer m.logMu.Unlock()
	for k, h := range n.elems {
		if e, ok := m.log[h]; ok {
			positions[k] = e.position
			normals[k] = e.normal
			continue
		}
		if v, ok := m.verts[h]; ok {
			positions[k] = v.position
			normals[k] = v.normal
		}
	}
}

// Positions implements Mesh.
func (m *DynTopoMesh) Positions(n Node, positions []math32.Vector3) {
	for k, h := range n.elems {
		if v, ok := m.verts[h]; ok {
			positions[k] = v.position
		}
	}
}

// Normals implements Mesh.
func (m *DynTopoMesh) Normals(n Node, normals []math32.Vector3) {
	for k, h := range n.elems {
		if v, ok := m.verts[h]; ok {
			normals[k] = v.normal
		}
	}
}

// FillHideMaskFactors implements Mesh.
func (m *DynTopoMesh) FillHideMaskFactors(n Node, factors []float32) {
	for k, h := range n.elems {
		v, ok := m.verts[h]
		if !ok || v.hidden {
			factors[k] = 0
			continue
		}
		factors[k] = 1 - v.mask
	}
}

// ApplyTranslations implements Mesh. The first touch of a vertex within a
// stroke records its pre-move state in the original-state log.
func (m *DynTopoMesh) ApplyTranslations(n Node, translations []math32.Vector3) {
	m.logMu.Lock()
	for k, h := range n.elems {
		v, ok := m.verts[h]
		if !ok {
			continue
		}
		if _, logged := m.log[h]; !logged {
			m.log[h] = origState{position: v.position, normal: v.normal}
		}
		v.position = v.position.Add(translations[k])
	}
	m.logMu.Unlock()
}

// MarkDirty implements Mesh.
func (m *DynTopoMesh) MarkDirty(n Node) { m.dirty.mark(n.id) }

// DirtyNodes implements Mesh.
func (m *DynTopoMesh) DirtyNodes() []int { return m.dirty.take() }

// neighborAveragePositions fills out with the average live position of
// each vertex's neighbors. A vertex without neighbors keeps its own
// position.
func (m *DynTopoMesh) neighborAveragePositions(n Node, out []math32.Vector3) {
	for k, h := range n.elems {
		v, ok := m.verts[h]
		if !ok {
			continue
		}
		if len(v.neighbors) == 0 {
			out[k] = v.position
			continue
		}
		var sum math32.Vector3
		count := 0
		for _, nb := range v.neighbors {
			if other, ok := m.verts[nb]; ok {
				sum = sum.Add(other.position)
				count++
			}
		}
		if count == 0 {
			out[k] = v.position
			continue
		}
		out[k] = sum.DivScalar(float32(count))
	}
}
