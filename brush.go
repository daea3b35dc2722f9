package sculpt

// Brush holds the brush parameters that stay immutable for the duration of
// one stroke application. The zero value is a usable default: spherical
// falloff, smooth curve, no front-face weighting, no texture.
//
// Per-stroke state (strength, radius, hardness, the grab delta) lives on
// the StrokeCache instead; the same Brush is typically shared across many
// strokes.
type Brush struct {
	// FalloffShape selects spherical or projected distance measurement.
	FalloffShape FalloffShape

	// CurvePreset selects the radial falloff curve.
	CurvePreset CurvePreset

	// CustomCurve is evaluated when CurvePreset is CurveCustom. It receives
	// the closeness p in [0, 1] (1 at the brush center, 0 at the radius
	// edge) and returns a weight. A nil CustomCurve falls back to
	// CurveSmooth.
	CustomCurve func(p float32) float32

	// FrontFace scales influence by how much a vertex faces the viewer,
	// removing influence from back-facing geometry.
	FrontFace bool

	// Texture, when non-nil, multiplies a sampled factor into the vertex
	// weights (see CalcTextureFactors).
	Texture Texture
}

// CurveStrength returns the falloff weight for a vertex at the given
// distance from the brush focal point. Distances at or beyond radius yield
// 0; a non-positive radius yields 0 everywhere.
func (b *Brush) CurveStrength(distance, radius float32) float32 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	p := 1 - distance/radius
	if b.CurvePreset == CurveCustom {
		if b.CustomCurve != nil {
			return b.CustomCurve(p)
		}
		return CurveSmooth.Value(p)
	}
	return b.CurvePreset.Value(p)
}
