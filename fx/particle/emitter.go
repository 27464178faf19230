package particle

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Emitter owns one template, one ring, one scheduler and a simulation clock.
// It is driven from a single goroutine once per frame and does no locking.
type Emitter struct {
	ID uuid.UUID

	props Properties
	ring  *Ring
	sched *Scheduler
	clock float64

	evicted uint64
}

type Stats struct {
	Capacity int
	InRange  int
	Live     int
	Pending  int
	Evicted  uint64
	Clock    float64
}

func NewEmitter(capacity int, props Properties) *Emitter {
	return &Emitter{
		ID:    uuid.New(),
		props: props,
		ring:  NewRing(capacity),
		sched: NewScheduler(),
	}
}

func (e *Emitter) Properties() Properties {
	return e.props
}

// SetProperties swaps the template wholesale. Particles already live or
// scheduled keep the copy they were spawned with.
func (e *Emitter) SetProperties(props Properties) {
	e.props = props
}

// Clock returns the accumulated simulation time in seconds.
func (e *Emitter) Clock() float64 {
	return e.clock
}

// Emit spawns a particle that is alive immediately.
func (e *Emitter) Emit(origin, velocity mgl32.Vec3, startSize float32) {
	e.insert(New(e.props, origin, velocity, startSize))
}

// EmitAfter spawns a particle that becomes live delay seconds of simulation
// time from now.
func (e *Emitter) EmitAfter(origin, velocity mgl32.Vec3, startSize float32, delay float64) {
	e.sched.Schedule(New(e.props, origin, velocity, startSize), e.clock, delay)
}

func (e *Emitter) insert(p Particle) {
	if e.ring.Insert(p) {
		e.evicted++
	}
}

// Update advances the clock, moves every due particle into the ring and
// integrates the ring.
func (e *Emitter) Update(dt float32) {
	e.clock += float64(dt)
	e.sched.DrainDue(e.clock, e.insert)
	Integrate(e.ring, dt)
}

// Live calls fn for every alive particle in insertion order. Dead slots still
// in range are skipped. fn gets a copy; the ring is only written by Update.
func (e *Emitter) Live(fn func(p Particle) bool) {
	e.ring.Live(func(_ int, p *Particle) bool {
		if !p.Alive() {
			return true
		}
		return fn(*p)
	})
}

// Snapshot copies the alive particles into dst and returns it.
func (e *Emitter) Snapshot(dst []Particle) []Particle {
	e.Live(func(p Particle) bool {
		dst = append(dst, p)
		return true
	})
	return dst
}

func (e *Emitter) Stats() Stats {
	live := 0
	e.Live(func(Particle) bool {
		live++
		return true
	})
	return Stats{
		Capacity: e.ring.Cap(),
		InRange:  e.ring.Len(),
		Live:     live,
		Pending:  e.sched.Len(),
		Evicted:  e.evicted,
		Clock:    e.clock,
	}
}
