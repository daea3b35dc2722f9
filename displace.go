package sculpt

import "cogentcore.org/core/math32"

// ThumbOffset returns the thumb brush's stroke-constant offset: the grab
// delta projected onto the plane perpendicular to the sculpt normal,
// scaled by the stroke strength. It is computed once per application, not
// per vertex.
func ThumbOffset(c *StrokeCache) math32.Vector3 {
	n := c.SculptNormal
	return n.Cross(c.GrabDelta).Cross(n).MulScalar(c.Strength)
}

// DrawOffset returns the draw brush's stroke-constant offset: along the
// sculpt normal, scaled by radius and strength.
func DrawOffset(c *StrokeCache) math32.Vector3 {
	return c.SculptNormal.MulScalar(c.Radius * c.Strength)
}

// TranslationsFromOffset fills translations with offset scaled by each
// vertex's factor. This is a pure per-vertex multiply with no cross-vertex
// dependency; a factor of exactly 0 yields the exact zero vector.
func TranslationsFromOffset(offset math32.Vector3, factors []float32, translations []math32.Vector3) {
	for i, f := range factors {
		translations[i] = offset.MulScalar(f)
	}
}

// TranslationsFromNewPositions fills translations with the move from each
// vertex's current position toward its target position, scaled by the
// vertex's factor.
func TranslationsFromNewPositions(newPositions, positions []math32.Vector3, factors []float32, translations []math32.Vector3) {
	for i := range translations {
		translations[i] = newPositions[i].Sub(positions[i]).MulScalar(factors[i])
	}
}
