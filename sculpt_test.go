package sculpt

import (
	"testing"

	"cogentcore.org/core/math32"
)

// Shared test helpers.

const testEps = 1e-5

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= testEps
}

func vecAlmostEqual(a, b math32.Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

// upNormals returns n copies of the +Z unit normal.
func upNormals(n int) []math32.Vector3 {
	normals := make([]math32.Vector3, n)
	for i := range normals {
		normals[i] = math32.Vec3(0, 0, 1)
	}
	return normals
}

// unitSquare returns the four corners of the unit square in the XY plane.
func unitSquare() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, 1, 0),
	}
}

// newSquareFacedMesh builds a one-quad faced mesh over the unit square.
func newSquareFacedMesh(t *testing.T) *FacedMesh {
	t.Helper()
	m, err := NewFacedMesh(unitSquare(), upNormals(4), [][]int{{0, 1, 3, 2}})
	if err != nil {
		t.Fatalf("NewFacedMesh() error: %v", err)
	}
	return m
}

// newSquareGridMesh builds a one-grid (2x2) grid mesh over the unit square.
func newSquareGridMesh(t *testing.T) *GridMesh {
	t.Helper()
	m, err := NewGridMesh(2, unitSquare(), upNormals(4))
	if err != nil {
		t.Fatalf("NewGridMesh() error: %v", err)
	}
	return m
}

// newChainDynTopoMesh builds a three-vertex chain 0-1-2 on the X axis with
// the middle vertex at the given position.
func newChainDynTopoMesh(middle math32.Vector3) (*DynTopoMesh, [3]int) {
	m := NewDynTopoMesh()
	up := math32.Vec3(0, 0, 1)
	a := m.AddVert(math32.Vec3(0, 0, 0), up)
	b := m.AddVert(middle, up)
	c := m.AddVert(math32.Vec3(2, 0, 0), up)
	m.Connect(a, b)
	m.Connect(b, c)
	return m, [3]int{a, b, c}
}
