package sculpt

import (
	"errors"
	"slices"

	"cogentcore.org/core/math32"
)

// GridMesh stores subdivision control-grid samples. Every grid carries the
// same fixed number of samples, side*side, stored contiguously; the vertex
// at (x, y) of grid g lives at flat index g*side*side + y*side + x.
//
// Node elements are grid indices, so a node with k grids covers k*side*side
// vertices.
type GridMesh struct {
	side          int
	positions     []math32.Vector3
	normals       []math32.Vector3
	origPositions []math32.Vector3
	origNormals   []math32.Vector3
	hidden        []bool
	mask          []float32

	dirty dirtyTracker
}

// NewGridMesh creates a grid mesh with the given samples per grid side.
// The flat positions and normals arrays must hold a whole number of grids.
func NewGridMesh(side int, positions, normals []math32.Vector3) (*GridMesh, error) {
	if side < 2 {
		return nil, errors.New("sculpt: grid side must be at least 2")
	}
	area := side * side
	if len(positions) == 0 || len(positions)%area != 0 {
		return nil, errors.New("sculpt: positions must hold a whole number of grids")
	}
	if len(normals) != len(positions) {
		return nil, errors.New("sculpt: positions and normals length mismatch")
	}
	m := &GridMesh{
		side:      side,
		positions: slices.Clone(positions),
		normals:   slices.Clone(normals),
		hidden:    make([]bool, len(positions)),
		mask:      make([]float32, len(positions)),
	}
	m.BeginStroke()
	return m, nil
}

// Side returns the number of samples per grid side.
func (m *GridMesh) Side() int { return m.side }

// GridArea returns the number of samples per grid.
func (m *GridMesh) GridArea() int { return m.side * m.side }

// GridCount returns the number of grids.
func (m *GridMesh) GridCount() int { return len(m.positions) / m.GridArea() }

// VertIndex returns the flat index of sample (x, y) in grid g.
func (m *GridMesh) VertIndex(g, x, y int) int {
	return g*m.GridArea() + y*m.side + x
}

// Position returns the live position at flat index i.
func (m *GridMesh) Position(i int) math32.Vector3 { return m.positions[i] }

// SetMask sets the paint mask at flat index i.
func (m *GridMesh) SetMask(i int, mask float32) { m.mask[i] = mask }

// SetHidden sets the visibility at flat index i.
func (m *GridMesh) SetHidden(i int, hidden bool) { m.hidden[i] = hidden }

// BeginStroke snapshots the current positions and normals as the
// pre-stroke originals.
func (m *GridMesh) BeginStroke() {
	m.origPositions = slices.Clone(m.positions)
	m.origNormals = slices.Clone(m.normals)
}

// DefaultNodes partitions all grids into nodes of at most maxPerNode grids
// each. It is a stand-in for an external acceleration structure.
func (m *GridMesh) DefaultNodes(maxPerNode int) []Node {
	return chunkNodes(sequence(m.GridCount()), maxPerNode)
}

// NodeVertCount implements Mesh.
func (m *GridMesh) NodeVertCount(n Node) int { return len(n.elems) * m.GridArea() }

// OrigData implements Mesh.
func (m *GridMesh) OrigData(n Node, positions, normals []math32.Vector3) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for j := 0; j < area; j++ {
			positions[idx] = m.origPositions[base+j]
			normals[idx] = m.origNormals[base+j]
			idx++
		}
	}
}

// Positions implements Mesh.
func (m *GridMesh) Positions(n Node, positions []math32.Vector3) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for j := 0; j < area; j++ {
			positions[idx] = m.positions[base+j]
			idx++
		}
	}
}

// Normals implements Mesh.
func (m *GridMesh) Normals(n Node, normals []math32.Vector3) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for j := 0; j < area; j++ {
			normals[idx] = m.normals[base+j]
			idx++
		}
	}
}

// FillHideMaskFactors implements Mesh.
func (m *GridMesh) FillHideMaskFactors(n Node, factors []float32) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for j := 0; j < area; j++ {
			if m.hidden[base+j] {
				factors[idx] = 0
			} else {
				factors[idx] = 1 - m.mask[base+j]
			}
			idx++
		}
	}
}

// ApplyTranslations implements Mesh: translations are added to the live
// grid sample positions.
func (m *GridMesh) ApplyTranslations(n Node, translations []math32.Vector3) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for j := 0; j < area; j++ {
			m.positions[base+j] = m.positions[base+j].Add(translations[idx])
			idx++
		}
	}
}

// MarkDirty implements Mesh.
func (m *GridMesh) MarkDirty(n Node) { m.dirty.mark(n.id) }

// DirtyNodes implements Mesh.
func (m *GridMesh) DirtyNodes() []int { return m.dirty.take() }

// neighborAveragePositions fills out with the average live position of
// each sample's in-grid 4-neighborhood. Border samples average their
// available neighbors.
func (m *GridMesh) neighborAveragePositions(n Node, out []math32.Vector3) {
	area := m.GridArea()
	idx := 0
	for _, g := range n.elems {
		base := g * area
		for y := 0; y < m.side; y++ {
			for x := 0; x < m.side; x++ {
				var sum math32.Vector3
				count := 0
				if x > 0 {
					sum = sum.Add(m.positions[base+y*m.side+x-1])
					count++
				}
				if x < m.side-1 {
					sum = sum.Add(m.positions[base+y*m.side+x+1])
					count++
				}
				if y > 0 {
					sum = sum.Add(m.positions[base+(y-1)*m.side+x])
					count++
				}
				if y < m.side-1 {
					sum = sum.Add(m.positions[base+(y+1)*m.side+x])
					count++
				}
				out[idx] = sum.DivScalar(float32(count))
				idx++
			}
		}
	}
}
