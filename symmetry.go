package sculpt

import "cogentcore.org/core/math32"

// AxisFlags is a bitmask of the X, Y, and Z axes, used for mirror symmetry
// passes, per-axis translation locks, and mirror-plane clipping.
type AxisFlags uint8

const (
	AxisX AxisFlags = 1 << iota
	AxisY
	AxisZ
)

// Has returns true if all axes in a are set in f.
func (f AxisFlags) Has(a AxisFlags) bool { return f&a == a }

// String returns the set axes as a subset of "XYZ", or "-" when empty.
func (f AxisFlags) String() string {
	if f == 0 {
		return "-"
	}
	s := ""
	if f.Has(AxisX) {
		s += "X"
	}
	if f.Has(AxisY) {
		s += "Y"
	}
	if f.Has(AxisZ) {
		s += "Z"
	}
	return s
}

// MirrorVector returns v with the components named by pass negated.
func MirrorVector(v math32.Vector3, pass AxisFlags) math32.Vector3 {
	if pass.Has(AxisX) {
		v.X = -v.X
	}
	if pass.Has(AxisY) {
		v.Y = -v.Y
	}
	if pass.Has(AxisZ) {
		v.Z = -v.Z
	}
	return v
}

// SymmetryPasses enumerates the mirror combinations for the enabled axes,
// starting with the identity pass. A stroke driver runs one brush
// application per pass, with the stroke cache mirrored accordingly (see
// StrokeCache.Mirrored).
func SymmetryPasses(enabled AxisFlags) []AxisFlags {
	passes := make([]AxisFlags, 0, 8)
	for bits := AxisFlags(0); bits < 8; bits++ {
		if bits&^enabled == 0 {
			passes = append(passes, bits)
		}
	}
	return passes
}

// ClipAndLockTranslations applies the cache's mirror clipping and axis
// locks to a translation buffer, in place. Locked axes have their
// translation component zeroed. Clipped axes have the component snapped
// onto the mirror plane when the translated position would land within the
// clip tolerance of it.
//
// positions must hold the same vertices' current positions; both buffers
// have one entry per node vertex.
func ClipAndLockTranslations(c *StrokeCache, positions, translations []math32.Vector3) {
	for axis := 0; axis < 3; axis++ {
		flag := AxisFlags(1) << axis
		lock := c.LockAxes.Has(flag)
		clip := c.ClipAxes.Has(flag)
		if !lock && !clip {
			continue
		}
		dim := math32.Dims(axis)
		if lock {
			for i := range translations {
				translations[i].SetDim(dim, 0)
			}
			continue
		}
		tol := c.ClipTolerance.Dim(dim)
		for i := range translations {
			pos := positions[i].Dim(dim)
			if abs32(pos+translations[i].Dim(dim)) <= tol {
				translations[i].SetDim(dim, -pos)
			}
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
