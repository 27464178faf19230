package particle

import "github.com/go-gl/mathgl/mgl32"

// Curve is a cubic Bézier over RGBA used to tint a particle across its life.
type Curve struct {
	P0, P1, P2, P3 mgl32.Vec4
}

var white = mgl32.Vec4{1, 1, 1, 1}

func (c Curve) IsZero() bool {
	return c == Curve{}
}

// At evaluates the curve with de Casteljau's construction. The zero curve
// yields opaque white.
func (c Curve) At(t float32) mgl32.Vec4 {
	if c.IsZero() {
		return white
	}
	p01 := lerp4(c.P0, c.P1, t)
	p12 := lerp4(c.P1, c.P2, t)
	p23 := lerp4(c.P2, c.P3, t)

	p012 := lerp4(p01, p12, t)
	p123 := lerp4(p12, p23, t)

	return lerp4(p012, p123, t)
}

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
