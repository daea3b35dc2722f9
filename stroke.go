package sculpt

import "cogentcore.org/core/math32"

// ClipPlane is a half-space bound on brush influence. Vertices on the
// negative side of the plane receive factor 0.
type ClipPlane struct {
	// Normal points toward the kept half-space.
	Normal math32.Vector3

	// Offset is the plane's signed distance term: a point p is kept when
	// dot(Normal, p) + Offset >= 0.
	Offset float32
}

// Excludes returns true if p lies outside the kept half-space.
func (pl ClipPlane) Excludes(p math32.Vector3) bool {
	return pl.Normal.Dot(p)+pl.Offset < 0
}

// StrokeCache holds the per-stroke state of the active sculpting session.
// It is created at stroke begin, destroyed at stroke end, and read-only
// for the duration of a single brush application: every pipeline stage
// receives it explicitly rather than reaching through session globals.
type StrokeCache struct {
	// Strength is the overall brush strength scaling the stroke-constant
	// offset (see ThumbOffset, DrawOffset) or, for the smooth brush, the
	// iteration budget.
	Strength float32

	// Radius is the brush radius in object space. Vertices whose falloff
	// distance exceeds it receive factor 0.
	Radius float32

	// Hardness shifts the falloff domain toward the brush edge. 0 leaves
	// the curve untouched; values approaching 1 hold full strength across
	// nearly the whole radius. See ApplyHardness.
	Hardness float32

	// Location is the brush focal point for this symmetry pass.
	Location math32.Vector3

	// ViewNormal is the unit vector toward the viewer, used by the
	// front-face filter and the projected falloff shape.
	ViewNormal math32.Vector3

	// GrabDelta is the symmetry-adjusted drag vector accumulated since the
	// last stroke step.
	GrabDelta math32.Vector3

	// SculptNormal is the symmetry-adjusted sculpt plane normal.
	SculptNormal math32.Vector3

	// ClipPlanes bound the influence region; vertices excluded by any
	// plane receive factor 0 (see FilterRegionClip).
	ClipPlanes []ClipPlane

	// Mirror names the axes with mirror symmetry enabled; drivers expand
	// it with SymmetryPasses.
	Mirror AxisFlags

	// ClipAxes names the mirror planes translations may not cross;
	// components landing within ClipTolerance of a plane are snapped onto
	// it (Grids and DynTopo commits only).
	ClipAxes AxisFlags

	// ClipTolerance is the per-axis snap distance for ClipAxes.
	ClipTolerance math32.Vector3

	// LockAxes names axes along which vertices may not move at all
	// (Grids and DynTopo commits only).
	LockAxes AxisFlags

	// Automask, when non-nil, multiplies a per-vertex generated mask into
	// the factors (cavity, topology, color based - supplied externally).
	Automask Automasker
}

// Mirrored returns a copy of the cache for one symmetry pass: the location,
// grab delta, and sculpt/view normals have the pass's axes negated.
// Slices and the automasker are shared; both are read-only during dispatch.
func (c *StrokeCache) Mirrored(pass AxisFlags) StrokeCache {
	out := *c
	out.Location = MirrorVector(c.Location, pass)
	out.GrabDelta = MirrorVector(c.GrabDelta, pass)
	out.SculptNormal = MirrorVector(c.SculptNormal, pass)
	out.ViewNormal = MirrorVector(c.ViewNormal, pass)
	return out
}
