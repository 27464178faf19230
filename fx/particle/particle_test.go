package particle

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestParticle_ModelOrder(t *testing.T) {
	p := Particle{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{0, 0, math.Pi / 2},
		Size:     2,
	}

	// Scale first, then rotate about Z, then translate.
	got := p.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{1, 4, 3}, 1e-5), "got %v", got)
}

func TestParticle_LifeRegimes(t *testing.T) {
	p := Particle{Life: 1.5}
	assert.False(t, p.Alive())
	assert.False(t, p.Dead())
	assert.Equal(t, float32(0), p.Elapsed())

	p.Life = 0.25
	assert.True(t, p.Alive())
	assert.Equal(t, float32(0.75), p.Elapsed())

	p.Life = 0
	assert.True(t, p.Dead())
	assert.False(t, p.Alive())
}

func TestCurve_At(t *testing.T) {
	var zero Curve
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, zero.At(0.3))

	c := Curve{
		P0: mgl32.Vec4{0, 0, 0, 1},
		P1: mgl32.Vec4{1, 0, 0, 1},
		P2: mgl32.Vec4{1, 0, 0, 1},
		P3: mgl32.Vec4{1, 1, 0, 0},
	}
	assert.Equal(t, c.P0, c.At(0))
	assert.Equal(t, c.P3, c.At(1))

	mid := c.At(0.5)
	assert.InDelta(t, 0.875, mid.X(), 1e-6)
	assert.InDelta(t, 0.125, mid.Y(), 1e-6)
}

func TestProperties_Validate(t *testing.T) {
	assert.NoError(t, testProps().Validate())

	bad := testProps()
	bad.Duration = 0
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidProperties))

	bad = testProps()
	bad.Duration = float32(math.NaN())
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProperties)

	bad = testProps()
	bad.FinalSize = float32(math.Inf(1))
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProperties)
}
