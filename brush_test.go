package sculpt

import "testing"

// =============================================================================
// CurveStrength Tests
// =============================================================================

func TestBrush_CurveStrength(t *testing.T) {
	b := &Brush{CurvePreset: CurveLinear}

	// Closeness p = 1 - distance/radius.
	if got := b.CurveStrength(0, 10); !almostEqual(got, 1) {
		t.Errorf("CurveStrength(0, 10) = %v, want 1", got)
	}
	if got := b.CurveStrength(5, 10); !almostEqual(got, 0.5) {
		t.Errorf("CurveStrength(5, 10) = %v, want 0.5", got)
	}
}

func TestBrush_CurveStrengthAtRadius(t *testing.T) {
	b := &Brush{CurvePreset: CurveConstant}

	// At or beyond the radius the weight is 0 regardless of curve.
	if got := b.CurveStrength(10, 10); got != 0 {
		t.Errorf("CurveStrength(10, 10) = %v, want 0", got)
	}
	if got := b.CurveStrength(11, 10); got != 0 {
		t.Errorf("CurveStrength(11, 10) = %v, want 0", got)
	}
	if got := b.CurveStrength(9.99, 10); got != 1 {
		t.Errorf("CurveStrength(9.99, 10) = %v, want 1 (Constant inside radius)", got)
	}
}

func TestBrush_CurveStrengthInvalidRadius(t *testing.T) {
	b := &Brush{CurvePreset: CurveConstant}

	if got := b.CurveStrength(0, 0); got != 0 {
		t.Errorf("CurveStrength(0, 0) = %v, want 0", got)
	}
	if got := b.CurveStrength(0, -1); got != 0 {
		t.Errorf("CurveStrength(0, -1) = %v, want 0", got)
	}
}

func TestBrush_CustomCurve(t *testing.T) {
	b := &Brush{
		CurvePreset: CurveCustom,
		CustomCurve: func(p float32) float32 { return p * 0.5 },
	}
	if got := b.CurveStrength(0, 10); !almostEqual(got, 0.5) {
		t.Errorf("CurveStrength(0, 10) = %v, want 0.5 (custom curve)", got)
	}
}

func TestBrush_CustomCurveNilFallsBack(t *testing.T) {
	b := &Brush{CurvePreset: CurveCustom}

	// Nil custom curve behaves like the smooth preset.
	want := CurveSmooth.Value(0.5)
	if got := b.CurveStrength(5, 10); !almostEqual(got, want) {
		t.Errorf("CurveStrength(5, 10) = %v, want %v (smooth fallback)", got, want)
	}
}

func TestBrush_ZeroValueUsable(t *testing.T) {
	var b Brush
	if b.FalloffShape != FalloffSphere {
		t.Errorf("zero Brush falloff = %v, want FalloffSphere", b.FalloffShape)
	}
	if b.CurvePreset != CurveSmooth {
		t.Errorf("zero Brush curve = %v, want CurveSmooth", b.CurvePreset)
	}
	if got := b.CurveStrength(0, 1); !almostEqual(got, 1) {
		t.Errorf("zero Brush CurveStrength(0, 1) = %v, want 1", got)
	}
}
