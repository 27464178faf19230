// Package camera casts picking rays from an orbiting camera and culls
// against its view frustum.
package camera

import (
	"math"

	"github.com/gekko3d/fountain/fx/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera looks at Target from a point on a sphere of radius Distance.
// Phi is the elevation, Theta the azimuth around +Y.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Phi      float32
	Theta    float32

	FovY float32 // radians
	Near float32
	Far  float32
}

func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance: 50,
		Phi:      0.6,
		Theta:    0,
		FovY:     math.Pi / 3,
		Near:     0.1,
		Far:      1000,
	}
}

func (c *OrbitCamera) GetPosition() mgl32.Vec3 {
	r := float64(c.Distance)
	phi, theta := float64(c.Phi), float64(c.Theta)
	return c.Target.Add(mgl32.Vec3{
		float32(r * math.Cos(phi) * math.Sin(theta)),
		float32(r * math.Sin(phi)),
		float32(r * math.Cos(phi) * math.Cos(theta)),
	})
}

func (c *OrbitCamera) GetForward() mgl32.Vec3 {
	return c.Target.Sub(c.GetPosition()).Normalize()
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.GetPosition(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// CenterRay goes from the camera through its target.
func (c *OrbitCamera) CenterRay() collision.Ray {
	pos := c.GetPosition()
	return collision.Ray{Origin: pos, Direction: c.Target.Sub(pos)}
}

// ScreenRay casts a ray through the window coordinate (x, y), with y growing
// downward as window systems report it.
func (c *OrbitCamera) ScreenRay(x, y float64, width, height int) (collision.Ray, error) {
	view := c.GetViewMatrix()
	proj := c.GetProjectionMatrix(float32(width) / float32(height))

	winX := float32(x)
	winY := float32(height) - float32(y)

	near, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return collision.Ray{}, err
	}
	far, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return collision.Ray{}, err
	}

	return collision.Ray{Origin: near, Direction: far.Sub(near).Normalize()}, nil
}

// Frustum holds six normalized planes (Ax + By + Cz + D = 0) in the order
// Left, Right, Bottom, Top, Near, Far.
type Frustum [6]mgl32.Vec4

// ExtractFrustum extracts the frustum planes from a view-projection matrix.
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	var planes Frustum

	for i := 0; i < 3; i++ {
		// Row 3 + Row i, Row 3 - Row i (OpenGL-style -1..1 clip space)
		planes[2*i] = mgl32.Vec4{
			vp.At(3, 0) + vp.At(i, 0),
			vp.At(3, 1) + vp.At(i, 1),
			vp.At(3, 2) + vp.At(i, 2),
			vp.At(3, 3) + vp.At(i, 3),
		}
		planes[2*i+1] = mgl32.Vec4{
			vp.At(3, 0) - vp.At(i, 0),
			vp.At(3, 1) - vp.At(i, 1),
			vp.At(3, 2) - vp.At(i, 2),
			vp.At(3, 3) - vp.At(i, 3),
		}
	}

	for i := range planes {
		length := planes[i].Vec3().Len()
		if length > 0 {
			planes[i] = planes[i].Mul(1.0 / length)
		}
	}
	return planes
}

// ContainsSphere reports whether the sphere is at least partly inside.
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f {
		if p.Vec3().Dot(center)+p.W() < -radius {
			return false
		}
	}
	return true
}
