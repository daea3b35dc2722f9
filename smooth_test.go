package sculpt

import (
	"testing"

	"cogentcore.org/core/math32"
)

// =============================================================================
// Iteration Strength Tests
// =============================================================================

func TestIterationStrengths(t *testing.T) {
	tests := []struct {
		strength float32
		want     []float32
	}{
		{0, []float32{0}},
		{0.25, []float32{1, 0}},
		{0.5, []float32{1, 1, 0}},
		{0.625, []float32{1, 1, 0.5}},
		{1, []float32{1, 1, 1, 1, 0}},
		{-3, []float32{0}},  // clamped
		{2, []float32{1, 1, 1, 1, 0}}, // clamped
	}
	for _, tt := range tests {
		got := iterationStrengths(tt.strength)
		if len(got) != len(tt.want) {
			t.Errorf("iterationStrengths(%v) = %v, want %v", tt.strength, got, tt.want)
			continue
		}
		for i := range tt.want {
			if !almostEqual(got[i], tt.want[i]) {
				t.Errorf("iterationStrengths(%v)[%d] = %v, want %v", tt.strength, i, got[i], tt.want[i])
			}
		}
	}
}

// smoothCache returns a wide flat-curve stroke cache with the given
// strength, centered at location.
func smoothCache(strength float32, location math32.Vector3) *StrokeCache {
	return &StrokeCache{
		Strength:   strength,
		Radius:     100,
		Location:   location,
		ViewNormal: math32.Vec3(0, 0, 1),
	}
}

// =============================================================================
// Relaxation Tests
// =============================================================================

func TestSmoothBrush_FacedRelaxesBump(t *testing.T) {
	// Chain 0-1-2 with the middle vertex bumped up. Ends masked, one full
	// iteration: the middle lands exactly on its neighbor average.
	positions := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(2, 0, 0),
	}
	m, err := NewFacedMesh(positions, upNormals(3), [][]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("NewFacedMesh() error: %v", err)
	}
	m.SetMask(0, 1)
	m.SetMask(2, 1)

	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	b := &Brush{CurvePreset: CurveConstant}
	d.SmoothBrush(m, b, smoothCache(0.25, math32.Vec3(1, 1, 0)), m.DefaultNodes(0))

	want := math32.Vec3(1, 0, 0) // average of the two ends
	if !vecAlmostEqual(m.Position(1), want) {
		t.Errorf("Position(1) = %v, want %v", m.Position(1), want)
	}
	if m.Position(0) != positions[0] || m.Position(2) != positions[2] {
		t.Error("masked end vertices must not move")
	}
}

func TestSmoothBrush_FacedCrossNodeAdjacency(t *testing.T) {
	// The bumped vertex and its neighbors sit in different nodes. Within
	// one iteration averaging reads positions from before any commit, so
	// the result matches the single-node case exactly.
	positions := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(2, 0, 0),
	}
	m, err := NewFacedMesh(positions, upNormals(3), [][]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("NewFacedMesh() error: %v", err)
	}
	m.SetMask(0, 1)
	m.SetMask(2, 1)

	d := NewDispatcher(WithWorkers(4))
	defer d.Close()

	nodes := m.DefaultNodes(1) // one vertex per node
	if len(nodes) != 3 {
		t.Fatalf("DefaultNodes(1) produced %d nodes, want 3", len(nodes))
	}
	d.SmoothBrush(m, &Brush{CurvePreset: CurveConstant}, smoothCache(0.25, math32.Vec3(1, 1, 0)), nodes)

	if !vecAlmostEqual(m.Position(1), math32.Vec3(1, 0, 0)) {
		t.Errorf("Position(1) = %v, want (1 0 0)", m.Position(1))
	}
}

func TestSmoothBrush_GridsContractTowardCenter(t *testing.T) {
	// On one 2x2 grid every sample's neighbor average is the opposite
	// corner pair's midpoint; one full iteration moves all four samples to
	// the grid center.
	m := newSquareGridMesh(t)
	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	b := &Brush{CurvePreset: CurveConstant}
	d.SmoothBrush(m, b, smoothCache(0.25, math32.Vec3(0.5, 0.5, 0)), m.DefaultNodes(0))

	center := math32.Vec3(0.5, 0.5, 0)
	for i := range 4 {
		if !vecAlmostEqual(m.Position(i), center) {
			t.Errorf("Position(%d) = %v, want %v", i, m.Position(i), center)
		}
	}
}

func TestSmoothBrush_DynTopoRelaxesBump(t *testing.T) {
	m, h := newChainDynTopoMesh(math32.Vec3(1, 1, 0))
	m.SetMask(h[0], 1)
	m.SetMask(h[2], 1)

	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	b := &Brush{CurvePreset: CurveConstant}
	d.SmoothBrush(m, b, smoothCache(0.25, math32.Vec3(1, 1, 0)), m.DefaultNodes(0))

	if p, _ := m.Position(h[1]); !vecAlmostEqual(p, math32.Vec3(1, 0, 0)) {
		t.Errorf("Position = %v, want (1 0 0)", p)
	}
}

func TestSmoothBrush_ZeroStrengthNoMovement(t *testing.T) {
	m := newSquareGridMesh(t)
	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	d.SmoothBrush(m, &Brush{CurvePreset: CurveConstant}, smoothCache(0, math32.Vec3(0.5, 0.5, 0)), m.DefaultNodes(0))

	before := unitSquare()
	for i := range before {
		if m.Position(i) != before[i] {
			t.Errorf("Position(%d) = %v, want unchanged %v", i, m.Position(i), before[i])
		}
	}
}

func TestSmoothBrush_FractionalStrength(t *testing.T) {
	// Strength 0.125 yields a single half-strength iteration: the bumped
	// vertex moves exactly halfway toward its neighbor average.
	positions := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(2, 0, 0),
	}
	m, err := NewFacedMesh(positions, upNormals(3), [][]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("NewFacedMesh() error: %v", err)
	}
	m.SetMask(0, 1)
	m.SetMask(2, 1)

	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	b := &Brush{CurvePreset: CurveConstant}
	d.SmoothBrush(m, b, smoothCache(0.125, math32.Vec3(1, 1, 0)), m.DefaultNodes(0))

	if !vecAlmostEqual(m.Position(1), math32.Vec3(1, 0.5, 0)) {
		t.Errorf("Position(1) = %v, want (1 0.5 0)", m.Position(1))
	}
}

func TestSmoothBrush_GridsRespectLock(t *testing.T) {
	m := newSquareGridMesh(t)
	d := NewDispatcher(WithWorkers(1))
	defer d.Close()

	c := smoothCache(0.25, math32.Vec3(0.5, 0.5, 0))
	c.LockAxes = AxisX | AxisY | AxisZ
	d.SmoothBrush(m, &Brush{CurvePreset: CurveConstant}, c, m.DefaultNodes(0))

	before := unitSquare()
	for i := range before {
		if m.Position(i) != before[i] {
			t.Errorf("Position(%d) = %v, want locked in place", i, m.Position(i))
		}
	}
}
