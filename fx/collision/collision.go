// Package collision holds the stateless geometric tests used to turn picking
// rays into world positions.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon below which a ray is treated as parallel to a plane.
const Epsilon = 1e-5

// Cube is an axis-aligned box given by its lowest and highest corners.
type Cube struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (c Cube) Center() mgl32.Vec3 {
	return c.Min.Add(c.Max).Mul(0.5)
}

// Plane is given by any point on it and its normal.
type Plane struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

type Sphere struct {
	Position mgl32.Vec3
	Radius   float32
}

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At evaluates Origin + t*Direction.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit intersects the ray with the plane and reports whether the hit is usable:
// the ray must not be parallel and the plane must not be behind the origin.
func (r Ray) Hit(plane Plane) (mgl32.Vec3, bool) {
	t := RayPlane(plane, r)
	if math.IsInf(float64(t), 0) || math.IsNaN(float64(t)) || t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}

// CubesOverlap reports whether two boxes overlap on all three axes. Touching
// faces count as overlap.
func CubesOverlap(a, b Cube) bool {
	return (a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X()) &&
		(a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y()) &&
		(a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z())
}

// CubePlaneOverlap approximates the box by its bounding sphere: the box
// overlaps when the centre is within one half-diagonal of the plane.
func CubePlaneOverlap(cube Cube, plane Plane) bool {
	center := cube.Center()
	distance := plane.Normal.Dot(center.Sub(plane.Position))
	if distance == 0 {
		return true
	}

	halfDiagonal := cube.Max.Sub(center).Len()
	return float32(math.Abs(float64(distance))) <= halfDiagonal
}

// SphereContains reports whether point lies inside or on the sphere.
func SphereContains(sphere Sphere, point mgl32.Vec3) bool {
	return sphere.Position.Sub(point).Len() <= sphere.Radius
}

// RayPlane returns the ray parameter at which the ray crosses the plane.
//   - positive: the plane is in front of the ray
//   - negative: the plane is behind the ray origin
//   - -Inf: the ray is parallel to the plane
func RayPlane(plane Plane, ray Ray) float32 {
	dot := plane.Normal.Dot(ray.Direction)
	if float32(math.Abs(float64(dot))) < Epsilon {
		return float32(math.Inf(-1))
	}

	d := plane.Normal.Dot(plane.Position)
	return (d - plane.Normal.Dot(ray.Origin)) / dot
}
