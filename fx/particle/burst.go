package particle

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Burst describes a firework: a shell of directions around an origin, each
// seeding a trail of shrinking particles released one after another.
type Burst struct {
	Sides  int // steps around the first angle
	VSides int // steps per half turn of the second angle

	Speed float32
	// Pull scales the acceleration back toward the origin.
	Pull float32
	// Lift is added to the upward speed and removed from the upward
	// acceleration.
	Lift  float32
	Scale float32

	Jitter     float32 // velocity noise, +/-
	SpinJitter float32 // rotation rate noise, +/-

	Duration       float32
	DurationJitter float32

	Trail     int
	TrailStep float64 // seconds between trail particles
}

func DefaultBurst() Burst {
	return Burst{
		Sides:          5,
		VSides:         5,
		Speed:          1,
		Pull:           0.05,
		Lift:           1,
		Scale:          20,
		Jitter:         0.02,
		SpinJitter:     0.2,
		Duration:       6,
		DurationJitter: 0.5,
		Trail:          20,
		TrailStep:      1.0 / 20.0,
	}
}

// Directions returns the unit vectors of the shell, in emission order.
func (b Burst) Directions() []mgl32.Vec3 {
	if b.Sides <= 0 || b.VSides <= 0 {
		return nil
	}
	var dirs []mgl32.Vec3
	step := math.Pi / float64(b.VSides)
	for s := 0; s < b.Sides; s++ {
		i := 2 * math.Pi * float64(s) / float64(b.Sides)
		for k := 0; ; k++ {
			j := -math.Pi/2 + float64(k)*step
			if j >= 2*math.Pi {
				break
			}
			dirs = append(dirs, mgl32.Vec3{
				float32(math.Cos(i) * math.Sin(j)),
				float32(math.Sin(i)),
				float32(math.Cos(i) * math.Cos(j)),
			})
		}
	}
	return dirs
}

// Emit releases the burst from origin into e and returns how many particles
// were queued. Each direction gets its own acceleration and duration, so the
// emitter template is swapped per direction and restored afterwards.
func (b Burst) Emit(e *Emitter, origin mgl32.Vec3, rng *rand.Rand) int {
	base := e.Properties()
	defer e.SetProperties(base)

	noise := func(amount float32) float32 {
		return (rng.Float32()*2 - 1) * amount
	}

	n := 0
	for _, dir := range b.Directions() {
		vel := dir.Mul(b.Speed)
		acc := dir.Mul(-b.Speed * b.Pull)
		vel[1] += b.Lift
		acc[1] -= b.Lift
		vel = vel.Mul(b.Scale)
		acc = acc.Mul(b.Scale)

		vel = vel.Add(mgl32.Vec3{noise(b.Jitter), noise(b.Jitter), noise(b.Jitter)})

		props := base
		props.Acceleration = acc
		props.RotationRate = base.RotationRate.Add(mgl32.Vec3{noise(b.SpinJitter), noise(b.SpinJitter), noise(b.SpinJitter)})
		props.Duration = b.Duration + noise(b.DurationJitter)
		props.FinalSize = 0
		e.SetProperties(props)

		for k := 0; k < b.Trail; k++ {
			size := float32(b.Trail-k) / float32(b.Trail)
			e.EmitAfter(origin, vel, size, float64(k)*b.TrailStep)
			n++
		}
	}
	return n
}
