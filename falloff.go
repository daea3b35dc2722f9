package sculpt

import "github.com/chewxy/math32"

// FalloffShape selects how the distance from the brush focal point to a
// vertex is measured.
type FalloffShape int

const (
	// FalloffSphere measures the Euclidean distance to the brush location.
	// The brush influences a sphere around its focal point.
	FalloffSphere FalloffShape = iota

	// FalloffProjected measures the distance to the brush axis: the
	// component of the offset perpendicular to the view normal. The brush
	// influences a tube along the view direction.
	FalloffProjected
)

// String returns the falloff shape name.
func (s FalloffShape) String() string {
	switch s {
	case FalloffSphere:
		return "Sphere"
	case FalloffProjected:
		return "Projected"
	default:
		return "Unknown"
	}
}

// CurvePreset selects the falloff curve mapping closeness to the brush
// center to a weight in [0, 1].
type CurvePreset int

const (
	// CurveSmooth is the default smoothstep falloff.
	CurveSmooth CurvePreset = iota

	// CurveSmoother is a flatter smootherstep falloff with zero second
	// derivative at both ends.
	CurveSmoother

	// CurveSphere follows a quarter-circle arc: full strength near the
	// center, dropping steeply at the edge.
	CurveSphere

	// CurveRoot is the square root of the closeness.
	CurveRoot

	// CurveSharp concentrates influence near the center.
	CurveSharp

	// CurveLinear falls off linearly with distance.
	CurveLinear

	// CurvePow4 is a very sharp fourth-power falloff.
	CurvePow4

	// CurveInvSquare is an inverted-parabola falloff.
	CurveInvSquare

	// CurveConstant applies full strength across the whole radius.
	CurveConstant

	// CurveCustom evaluates Brush.CustomCurve.
	CurveCustom
)

// String returns the curve preset name.
func (c CurvePreset) String() string {
	switch c {
	case CurveSmooth:
		return "Smooth"
	case CurveSmoother:
		return "Smoother"
	case CurveSphere:
		return "Sphere"
	case CurveRoot:
		return "Root"
	case CurveSharp:
		return "Sharp"
	case CurveLinear:
		return "Linear"
	case CurvePow4:
		return "Pow4"
	case CurveInvSquare:
		return "InvSquare"
	case CurveConstant:
		return "Constant"
	case CurveCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Value evaluates the preset at closeness p, where p is 1 at the brush
// center and 0 at the radius edge. p outside [0, 1] is clamped.
func (c CurvePreset) Value(p float32) float32 {
	if p <= 0 {
		if c == CurveConstant {
			return 1
		}
		return 0
	}
	if p > 1 {
		p = 1
	}
	switch c {
	case CurveSmooth:
		return 3*p*p - 2*p*p*p
	case CurveSmoother:
		return p * p * p * (p*(p*6-15) + 10)
	case CurveSphere:
		return math32.Sqrt(2*p - p*p)
	case CurveRoot:
		return math32.Sqrt(p)
	case CurveSharp:
		return p * p
	case CurveLinear:
		return p
	case CurvePow4:
		return p * p * p * p
	case CurveInvSquare:
		return p * (2 - p)
	case CurveConstant:
		return 1
	default:
		return p
	}
}
