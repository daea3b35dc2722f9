package sculpt

import "cogentcore.org/core/math32"

// CalcDistances computes the distance from the brush focal point to each
// position under the given falloff shape, filling distances (one entry per
// position).
//
// FalloffSphere measures straight Euclidean distance to location.
// FalloffProjected measures the distance to the brush axis through
// location along view, so the brush influences a tube instead of a sphere;
// a zero view vector degrades to the spherical measure.
//
// Distances are computed for every vertex, including those already
// excluded by earlier filters; the radius filter runs afterward (see
// FilterDistancesWithRadius).
func CalcDistances(location, view math32.Vector3, shape FalloffShape, positions []math32.Vector3, distances []float32) {
	if shape == FalloffProjected {
		if l := view.Length(); l > 0 {
			axis := view.DivScalar(l)
			for i, p := range positions {
				delta := p.Sub(location)
				distances[i] = delta.Sub(axis.MulScalar(delta.Dot(axis))).Length()
			}
			return
		}
	}
	for i, p := range positions {
		distances[i] = p.Sub(location).Length()
	}
}
