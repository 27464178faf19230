package particle

// Integrate advances every slot in range by dt seconds and retires dead slots
// that sit at head. dt is trusted as given; NaN or Inf propagate into the
// particles.
//
// The order of the steps is fixed: velocity takes a half step of acceleration
// before position moves with the new velocity.
func Integrate(r *Ring, dt float32) {
	r.Live(func(i int, p *Particle) bool {
		step := dt
		if p.Life > 1 {
			p.Life -= dt
			if p.Life >= 1 {
				return true
			}
			// Born during this frame: only the overshoot counts as lived.
			step = 1 - p.Life
			p.Life = 1
		}

		if p.Life > 0 {
			integrateOne(p, step)
		}

		if p.Life <= 0 && i == r.Head() {
			r.AdvanceHeadIf(func(p *Particle) bool { return p.Dead() })
		}
		return true
	})
}

func integrateOne(p *Particle, dt float32) {
	props := &p.Props
	fraction := dt / props.Duration

	p.Velocity = p.Velocity.Add(props.Acceleration.Mul(0.5 * dt))
	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	p.Rotation = p.Rotation.Add(props.RotationRate.Mul(fraction))
	p.Size += fraction * p.SizeRate

	p.Life -= fraction
}
