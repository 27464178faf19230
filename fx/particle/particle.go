package particle

import "github.com/go-gl/mathgl/mgl32"

// Particle is one simulated entity. It is copied by value into and out of the
// scheduler and the ring.
//
// Life encodes two regimes:
//   - Life > 1: not born yet, Life-1 seconds of delay remain
//   - 0 < Life <= 1: alive, Life is the remaining fraction of the lifetime
//   - Life <= 0: dead, the slot may be reused
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Rotation mgl32.Vec3

	StartSize float32
	Size      float32
	// SizeRate is the size change over one full lifetime.
	SizeRate float32

	Life  float32
	Props Properties
}

// New builds a particle that is alive immediately with its full lifetime.
func New(props Properties, origin, velocity mgl32.Vec3, startSize float32) Particle {
	return Particle{
		Position:  origin,
		Velocity:  velocity,
		StartSize: startSize,
		Size:      startSize,
		SizeRate:  props.FinalSize - startSize,
		Life:      1,
		Props:     props,
	}
}

func (p *Particle) Alive() bool {
	return p.Life > 0 && p.Life <= 1
}

func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Elapsed returns the consumed fraction of the lifetime in [0,1].
func (p *Particle) Elapsed() float32 {
	e := 1 - p.Life
	if e < 0 {
		return 0
	}
	if e > 1 {
		return 1
	}
	return e
}

// Model builds translate * rotX * rotY * rotZ * scale.
func (p *Particle) Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	rx := mgl32.HomogRotate3DX(p.Rotation.X())
	ry := mgl32.HomogRotate3DY(p.Rotation.Y())
	rz := mgl32.HomogRotate3DZ(p.Rotation.Z())
	scale := mgl32.Scale3D(p.Size, p.Size, p.Size)

	return translate.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(scale)
}

// Tint evaluates the template's colour curve at the current elapsed fraction.
func (p *Particle) Tint() mgl32.Vec4 {
	return p.Props.Tint.At(p.Elapsed())
}
