package sculpt

import (
	"image"

	"cogentcore.org/core/math32"
	"golang.org/x/image/draw"
)

// Texture produces a per-vertex factor multiplier sampled at pre-stroke
// vertex positions.
type Texture interface {
	// FactorAt returns the texture factor at position p.
	FactorAt(p math32.Vector3) float32
}

// TextureFunc adapts a plain function to the Texture interface.
type TextureFunc func(p math32.Vector3) float32

// FactorAt implements Texture.
func (f TextureFunc) FactorAt(p math32.Vector3) float32 { return f(p) }

// CalcTextureFactors multiplies the texture's factor into factors,
// skipping vertices already excluded by earlier filters.
func CalcTextureFactors(t Texture, positions []math32.Vector3, factors []float32) {
	for i, p := range positions {
		if factors[i] == 0 {
			continue
		}
		factors[i] *= t.FactorAt(p)
	}
}

// maxTextureDim bounds the working resolution of an ImageTexture.
const maxTextureDim = 512

// ImageTexture samples a grayscale factor grid built from an image, mapped
// onto geometry with a planar projection. A position projects to texture
// space as
//
//	u = dot(p, UAxis)*Scale.X + Offset.X
//	v = dot(p, VAxis)*Scale.Y + Offset.Y
//
// and the grid is sampled bilinearly. With Repeat the coordinates wrap;
// otherwise they clamp to the border.
type ImageTexture struct {
	grid   []float32
	width  int
	height int

	// UAxis and VAxis project a 3D position into texture space.
	UAxis math32.Vector3
	VAxis math32.Vector3

	// Scale and Offset transform the projected (u, v) coordinates.
	Scale  math32.Vector2
	Offset math32.Vector2

	// Repeat wraps coordinates outside [0, 1); when false they clamp.
	Repeat bool
}

// NewImageTexture builds the factor grid from the luminance of img.
// Images larger than maxTextureDim on a side are resampled down with a
// Catmull-Rom kernel; smaller images are used at native resolution.
// The default mapping projects onto the XY plane with unit scale and
// repeat enabled.
func NewImageTexture(img image.Image) *ImageTexture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	t := &ImageTexture{
		UAxis:  math32.Vec3(1, 0, 0),
		VAxis:  math32.Vec3(0, 1, 0),
		Scale:  math32.Vec2(1, 1),
		Repeat: true,
	}

	if w <= 0 || h <= 0 {
		t.grid = []float32{1}
		t.width, t.height = 1, 1
		return t
	}

	if w > maxTextureDim || h > maxTextureDim {
		scale := float32(maxTextureDim) / float32(max(w, h))
		w = max(1, int(float32(w)*scale))
		h = max(1, int(float32(h)*scale))
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
		b = dst.Bounds()
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		rgba = dst
		b = dst.Bounds()
	}

	t.grid = make([]float32, w*h)
	t.width, t.height = w, h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rgba.RGBAAt(b.Min.X+x, b.Min.Y+y)
			lum := 0.2126*float32(c.R) + 0.7152*float32(c.G) + 0.0722*float32(c.B)
			t.grid[y*w+x] = lum / 255
		}
	}
	return t
}

// FactorAt implements Texture with a bilinear sample of the factor grid.
func (t *ImageTexture) FactorAt(p math32.Vector3) float32 {
	u := p.Dot(t.UAxis)*t.Scale.X + t.Offset.X
	v := p.Dot(t.VAxis)*t.Scale.Y + t.Offset.Y

	if t.Repeat {
		u -= floor32(u)
		v -= floor32(v)
	} else {
		u = clamp01(u)
		v = clamp01(v)
	}

	fx := u * float32(t.width-1)
	fy := v * float32(t.height-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, t.width-1)
	y1 := min(y0+1, t.height-1)
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	top := t.grid[y0*t.width+x0]*(1-dx) + t.grid[y0*t.width+x1]*dx
	bot := t.grid[y1*t.width+x0]*(1-dx) + t.grid[y1*t.width+x1]*dx
	return top*(1-dy) + bot*dy
}

func floor32(x float32) float32 {
	f := float32(int(x))
	if f > x {
		f--
	}
	return f
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
