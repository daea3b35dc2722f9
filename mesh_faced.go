package sculpt

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// FacedMesh stores vertices in flat arrays with explicit face
// connectivity. It is the representation for ordinary polygon meshes.
//
// The pre-stroke snapshot is taken by BeginStroke (and once at
// construction); OrigData reads stay stable for a whole brush application
// even as ApplyTranslations mutates the live positions.
type FacedMesh struct {
	positions     []math32.Vector3
	normals       []math32.Vector3
	origPositions []math32.Vector3
	origNormals   []math32.Vector3
	hidden        []bool
	mask          []float32
	neighbors     [][]int

	dirty dirtyTracker
}

// NewFacedMesh creates a faced mesh from vertex positions, vertex normals,
// and faces given as vertex index loops (triangles, quads, or n-gons).
// Vertex adjacency for smoothing is derived from the face loops.
func NewFacedMesh(positions, normals []math32.Vector3, faces [][]int) (*FacedMesh, error) {
	if len(normals) != len(positions) {
		return nil, errors.New("sculpt: positions and normals length mismatch")
	}
	m := &FacedMesh{
		positions: slices.Clone(positions),
		normals:   slices.Clone(normals),
		hidden:    make([]bool, len(positions)),
		mask:      make([]float32, len(positions)),
		neighbors: make([][]int, len(positions)),
	}
	for _, face := range faces {
		for i, v := range face {
			if v < 0 || v >= len(positions) {
				return nil, fmt.Errorf("sculpt: face vertex %d out of range", v)
			}
			next := face[(i+1)%len(face)]
			m.addNeighbor(v, next)
			m.addNeighbor(next, v)
		}
	}
	m.BeginStroke()
	return m, nil
}

func (m *FacedMesh) addNeighbor(v, other int) {
	if v == other || slices.Contains(m.neighbors[v], other) {
		return
	}
	m.neighbors[v] = append(m.neighbors[v], other)
}

// VertCount returns the number of vertices.
func (m *FacedMesh) VertCount() int { return len(m.positions) }

// Position returns the live position of vertex i.
func (m *FacedMesh) Position(i int) math32.Vector3 { return m.positions[i] }

// SetMask sets the paint mask of vertex i. 0 is unmasked, 1 fully masked.
func (m *FacedMesh) SetMask(i int, mask float32) { m.mask[i] = mask }

// SetHidden sets the visibility of vertex i.
func (m *FacedMesh) SetHidden(i int, hidden bool) { m.hidden[i] = hidden }

// BeginStroke snapshots the current positions and normals as the
// pre-stroke originals. Call it when a stroke starts, before the first
// brush application.
func (m *FacedMesh) BeginStroke() {
	m.origPositions = slices.Clone(m.positions)
	m.origNormals = slices.Clone(m.normals)
}

// DefaultNodes partitions all vertices into nodes of at most maxPerNode
// vertices each (defaultNodeSize if maxPerNode is not positive). It is a
// stand-in for an external acceleration structure; callers with a spatial
// index should build nodes from it instead.
func (m *FacedMesh) DefaultNodes(maxPerNode int) []Node {
	return chunkNodes(sequence(len(m.positions)), maxPerNode)
}

// NodeVertCount implements Mesh.
func (m *FacedMesh) NodeVertCount(n Node) int { return len(n.elems) }

// OrigData implements Mesh.
func (m *FacedMesh) OrigData(n Node, positions, normals []math32.Vector3) {
	for k, v := range n.elems {
		positions[k] = m.origPositions[v]
		normals[k] = m.origNormals[v]
	}
}

// Positions implements Mesh.
func (m *FacedMesh) Positions(n Node, positions []math32.Vector3) {
	for k, v := range n.elems {
		positions[k] = m.positions[v]
	}
}

// Normals implements Mesh.
func (m *FacedMesh) Normals(n Node, normals []math32.Vector3) {
	for k, v := range n.elems {
		normals[k] = m.normals[v]
	}
}

// FillHideMaskFactors implements Mesh.
func (m *FacedMesh) FillHideMaskFactors(n Node, factors []float32) {
	for k, v := range n.elems {
		if m.hidden[v] {
			factors[k] = 0
			continue
		}
		factors[k] = 1 - m.mask[v]
	}
}

// ApplyTranslations implements Mesh: translations are added to the live
// positions. The pre-stroke snapshot is unaffected.
func (m *FacedMesh) ApplyTranslations(n Node, translations []math32.Vector3) {
	for k, v := range n.elems {
		m.positions[v] = m.positions[v].Add(translations[k])
	}
}

// MarkDirty implements Mesh.
func (m *FacedMesh) MarkDirty(n Node) { m.dirty.mark(n.id) }

// DirtyNodes implements Mesh.
func (m *FacedMesh) DirtyNodes() []int { return m.dirty.take() }

// neighborAveragePositions fills out with the average live position of
// each node vertex's neighbors. A vertex without neighbors (loose vertex)
// keeps its own position.
func (m *FacedMesh) neighborAveragePositions(n Node, out []math32.Vector3) {
	for k, v := range n.elems {
		nbrs := m.neighbors[v]
		if len(nbrs) == 0 {
			out[k] = m.positions[v]
			continue
		}
		var sum math32.Vector3
		for _, nb := range nbrs {
			sum = sum.Add(m.positions[nb])
		}
		out[k] = sum.DivScalar(float32(len(nbrs)))
	}
}
