package sculpt

import (
	"testing"

	"cogentcore.org/core/math32"
)

// =============================================================================
// ClipPlane Tests
// =============================================================================

func TestClipPlane_Excludes(t *testing.T) {
	pl := ClipPlane{Normal: math32.Vec3(0, 1, 0), Offset: -1} // keep y >= 1

	if pl.Excludes(math32.Vec3(0, 2, 0)) {
		t.Error("y=2 should be kept")
	}
	if pl.Excludes(math32.Vec3(0, 1, 0)) {
		t.Error("y=1 lies on the plane and should be kept")
	}
	if !pl.Excludes(math32.Vec3(0, 0.5, 0)) {
		t.Error("y=0.5 should be excluded")
	}
}

// =============================================================================
// StrokeCache Tests
// =============================================================================

func TestStrokeCache_Mirrored(t *testing.T) {
	c := &StrokeCache{
		Strength:     0.7,
		Radius:       3,
		Location:     math32.Vec3(1, 2, 3),
		GrabDelta:    math32.Vec3(1, 0, 0),
		SculptNormal: math32.Vec3(0, 0, 1),
		ViewNormal:   math32.Vec3(0, 1, 0),
	}

	m := c.Mirrored(AxisX | AxisY)

	if m.Location != math32.Vec3(-1, -2, 3) {
		t.Errorf("Location = %v, want (-1 -2 3)", m.Location)
	}
	if m.GrabDelta != math32.Vec3(-1, 0, 0) {
		t.Errorf("GrabDelta = %v, want (-1 0 0)", m.GrabDelta)
	}
	if m.SculptNormal != math32.Vec3(0, 0, 1) {
		t.Errorf("SculptNormal = %v, want (0 0 1)", m.SculptNormal)
	}
	if m.ViewNormal != math32.Vec3(0, -1, 0) {
		t.Errorf("ViewNormal = %v, want (0 -1 0)", m.ViewNormal)
	}

	// Scalar state carries over; the source cache is untouched.
	if m.Strength != 0.7 || m.Radius != 3 {
		t.Errorf("scalars = (%v, %v), want (0.7, 3)", m.Strength, m.Radius)
	}
	if c.Location != math32.Vec3(1, 2, 3) {
		t.Errorf("source Location = %v, want unchanged", c.Location)
	}
}

func TestStrokeCache_MirroredIdentity(t *testing.T) {
	c := &StrokeCache{Location: math32.Vec3(1, 2, 3)}
	m := c.Mirrored(0)
	if m.Location != c.Location {
		t.Errorf("identity pass Location = %v, want %v", m.Location, c.Location)
	}
}
