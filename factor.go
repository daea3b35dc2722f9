package sculpt

import "cogentcore.org/core/math32"

// The factor pipeline composes independent filters, each multiplying into
// the running per-vertex weight. Ordering matters: later stages rely on
// earlier stages having already zeroed excluded vertices and skip them.

// FilterRegionClip zeroes the factor of vertices excluded by any of the
// cache's clip planes. A cache without clip planes keeps every vertex.
func FilterRegionClip(c *StrokeCache, positions []math32.Vector3, factors []float32) {
	if len(c.ClipPlanes) == 0 {
		return
	}
	for i, p := range positions {
		if factors[i] == 0 {
			continue
		}
		for _, pl := range c.ClipPlanes {
			if pl.Excludes(p) {
				factors[i] = 0
				break
			}
		}
	}
}

// CalcFrontFace scales factors by how much each vertex faces the viewer:
// factor *= max(0, dot(view, normal)). Back-facing vertices drop to 0.
func CalcFrontFace(view math32.Vector3, normals []math32.Vector3, factors []float32) {
	for i, n := range normals {
		if factors[i] == 0 {
			continue
		}
		d := view.Dot(n)
		if d < 0 {
			d = 0
		}
		factors[i] *= d
	}
}

// FilterDistancesWithRadius zeroes the factor of vertices whose distance
// exceeds the brush radius. The distances themselves are left untouched.
func FilterDistancesWithRadius(radius float32, distances, factors []float32) {
	for i, d := range distances {
		if d > radius {
			factors[i] = 0
		}
	}
}

// ApplyHardness remaps distances toward the brush edge, in place.
// Distances within hardness*radius collapse to 0 (full falloff strength);
// the remainder stretches back out to radius. A hardness of 0 leaves the
// distances untouched; a hardness of 1 or more collapses everything.
func ApplyHardness(radius, hardness float32, distances []float32) {
	if hardness <= 0 || radius <= 0 {
		return
	}
	if hardness >= 1 {
		for i := range distances {
			distances[i] = 0
		}
		return
	}
	for i, d := range distances {
		p := d / radius
		if p < hardness {
			distances[i] = 0
			continue
		}
		distances[i] = radius * (p - hardness) / (1 - hardness)
	}
}

// ApplyFalloffCurve multiplies the brush falloff curve, evaluated on each
// vertex's distance, into the factors.
func ApplyFalloffCurve(b *Brush, radius float32, distances, factors []float32) {
	for i, f := range factors {
		if f == 0 {
			continue
		}
		factors[i] = f * b.CurveStrength(distances[i], radius)
	}
}

// ScaleFactors multiplies every factor by s.
func ScaleFactors(factors []float32, s float32) {
	for i := range factors {
		factors[i] *= s
	}
}
