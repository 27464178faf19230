package particle

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProps() Properties {
	return Properties{
		InitialSize: 1,
		FinalSize:   0,
		Duration:    10,
		Payload:     "cube",
	}
}

func liveTags(e *Emitter) []float32 {
	var out []float32
	e.Live(func(p Particle) bool {
		out = append(out, p.StartSize)
		return true
	})
	return out
}

func TestEmitter_EmitIsLiveImmediately(t *testing.T) {
	e := NewEmitter(8, testProps())
	e.Emit(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, 1)

	ps := e.Snapshot(nil)
	require.Len(t, ps, 1)
	assert.Equal(t, float32(1), ps[0].Life)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, ps[0].Position)
	assert.Equal(t, AssetId("cube"), ps[0].Props.Payload)
}

func TestEmitter_FIFOEviction(t *testing.T) {
	e := NewEmitter(3, testProps())
	for i := 1; i <= 5; i++ {
		e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, float32(i))
	}

	assert.Equal(t, []float32{3, 4, 5}, liveTags(e))
	st := e.Stats()
	assert.Equal(t, 3, st.Live)
	assert.Equal(t, uint64(2), st.Evicted)
}

func TestEmitter_ScheduledOrder(t *testing.T) {
	e := NewEmitter(16, testProps())
	delays := []float64{0.4, 0.1, 0.3, 0.2}
	for _, d := range delays {
		e.EmitAfter(mgl32.Vec3{}, mgl32.Vec3{}, float32(d), d)
	}
	assert.Empty(t, liveTags(e))
	assert.Equal(t, 4, e.Stats().Pending)

	e.Update(1)

	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, liveTags(e))
	assert.Zero(t, e.Stats().Pending)
}

func TestEmitter_DueTime(t *testing.T) {
	e := NewEmitter(4, testProps())
	e.Update(0.25)
	e.EmitAfter(mgl32.Vec3{}, mgl32.Vec3{}, 1, 0.5) // due at 0.75

	e.Update(0.25)
	assert.Empty(t, liveTags(e), "clock 0.5 < due")
	e.Update(0.125)
	assert.Empty(t, liveTags(e), "clock 0.625 < due")

	e.Update(0.125)
	assert.Equal(t, 0.75, e.Clock())
	assert.Len(t, liveTags(e), 1, "clock reached due")
}

func TestEmitter_LifetimeEnds(t *testing.T) {
	props := testProps()
	props.Duration = 1
	e := NewEmitter(4, props)
	e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, 1)

	for i := 0; i < 7; i++ {
		e.Update(0.125)
		require.Len(t, liveTags(e), 1, "frame %d", i)
	}
	e.Update(0.125)
	assert.Empty(t, liveTags(e))
	assert.Zero(t, e.Stats().InRange, "dead particle at head is retired")

	for i := 0; i < 20; i++ {
		e.Update(0.125)
		assert.Empty(t, liveTags(e))
	}
}

func TestEmitter_DeadBehindHeadStaysInRange(t *testing.T) {
	e := NewEmitter(4, testProps())
	e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, 1)

	short := testProps()
	short.Duration = 1
	e.SetProperties(short)
	e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, 2)

	e.Update(0.5)
	e.Update(0.5)

	st := e.Stats()
	assert.Equal(t, 2, st.InRange)
	assert.Equal(t, 1, st.Live)
	assert.Equal(t, []float32{1}, liveTags(e))
}

func TestEmitter_Kinematics(t *testing.T) {
	props := testProps()
	props.Duration = 2
	props.Acceleration = mgl32.Vec3{0, -10, 0}
	props.RotationRate = mgl32.Vec3{1, 2, 3}
	e := NewEmitter(1, props)
	e.Emit(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 1)

	e.Update(0.5)
	p := e.Snapshot(nil)[0]
	assert.Equal(t, mgl32.Vec3{1, -2.5, 0}, p.Velocity)
	assert.Equal(t, mgl32.Vec3{0.5, -1.25, 0}, p.Position)
	assert.Equal(t, mgl32.Vec3{0.25, 0.5, 0.75}, p.Rotation)
	assert.Equal(t, float32(0.75), p.Size)
	assert.Equal(t, float32(0.75), p.Life)

	e.Update(0.5)
	p = e.Snapshot(nil)[0]
	assert.Equal(t, mgl32.Vec3{1, -5, 0}, p.Velocity)
	assert.Equal(t, mgl32.Vec3{1, -3.75, 0}, p.Position)
}

func TestEmitter_DeadRunAtHeadClearsInOneUpdate(t *testing.T) {
	e := NewEmitter(8, testProps())
	emitWith := func(duration, tag float32) {
		props := testProps()
		props.Duration = duration
		e.SetProperties(props)
		e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, tag)
	}
	emitWith(2, 1)
	emitWith(1, 2)
	emitWith(1, 3)
	emitWith(10, 4)

	for i := 0; i < 3; i++ {
		e.Update(0.5)
	}
	st := e.Stats()
	assert.Equal(t, 4, st.InRange, "dead particles wait behind the head")
	assert.Equal(t, 2, st.Live)

	e.Update(0.5)
	st = e.Stats()
	assert.Equal(t, 1, st.InRange)
	assert.Equal(t, []float32{4}, liveTags(e))
}

func TestEmitter_LiveHandsOutCopies(t *testing.T) {
	e := NewEmitter(2, testProps())
	e.Emit(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, 1)

	e.Live(func(p Particle) bool {
		p.Position = mgl32.Vec3{9, 9, 9}
		p.Life = 0
		return true
	})

	live := e.Snapshot(nil)
	require.Len(t, live, 1)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, live[0].Position)
	assert.Equal(t, float32(1), live[0].Life)
}

func TestEmitter_SpawnCopiesProperties(t *testing.T) {
	e := NewEmitter(2, testProps())
	e.Emit(mgl32.Vec3{}, mgl32.Vec3{}, 1)
	e.EmitAfter(mgl32.Vec3{}, mgl32.Vec3{}, 2, 0)

	changed := testProps()
	changed.Acceleration = mgl32.Vec3{0, -10, 0}
	e.SetProperties(changed)

	e.Update(0.5)
	e.Live(func(p Particle) bool {
		assert.Equal(t, mgl32.Vec3{}, p.Velocity)
		return true
	})
	assert.Len(t, liveTags(e), 2)
}

func TestEmitter_Deterministic(t *testing.T) {
	run := func() []Particle {
		props := testProps()
		props.Acceleration = mgl32.Vec3{0.3, -9.8, 0.1}
		props.RotationRate = mgl32.Vec3{10, 10, 1}
		props.Duration = 4
		e := NewEmitter(64, props)

		rng := rand.New(rand.NewSource(7))
		dts := []float32{0.016, 0.033, 0.017, 0.1, 0.008, 0.05}
		for frame := 0; frame < 60; frame++ {
			v := mgl32.Vec3{rng.Float32(), rng.Float32() * 5, rng.Float32()}
			e.Emit(mgl32.Vec3{0, 1, 0}, v, 0.5)
			e.EmitAfter(mgl32.Vec3{0, 2, 0}, v, 0.25, float64(rng.Float32()))
			e.Update(dts[frame%len(dts)])
		}
		return e.Snapshot(nil)
	}

	a := run()
	b := run()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestIntegrate_PreBornParticle(t *testing.T) {
	r := NewRing(2)
	props := testProps()
	props.Duration = 1
	p := New(props, mgl32.Vec3{}, mgl32.Vec3{4, 0, 0}, 1)
	p.Life = 1.5
	r.Insert(p)

	Integrate(r, 0.25)
	r.Live(func(_ int, p *Particle) bool {
		assert.Equal(t, float32(1.25), p.Life)
		assert.False(t, p.Alive())
		assert.Equal(t, mgl32.Vec3{}, p.Position)
		return true
	})

	Integrate(r, 0.5)
	r.Live(func(_ int, p *Particle) bool {
		assert.Equal(t, float32(0.75), p.Life)
		assert.Equal(t, mgl32.Vec3{1, 0, 0}, p.Position)
		return true
	})
}

func TestEmitter_Burst(t *testing.T) {
	props := testProps()
	props.RotationRate = mgl32.Vec3{10, 10, 1}
	e := NewEmitter(2000, props)
	b := DefaultBurst()

	n := b.Emit(e, mgl32.Vec3{0, 30, 0}, rand.New(rand.NewSource(1)))

	dirs := len(b.Directions())
	assert.Equal(t, 65, dirs)
	assert.Equal(t, dirs*b.Trail, n)
	assert.Equal(t, n, e.Stats().Pending)
	assert.Equal(t, props, e.Properties(), "template restored after the burst")

	e.Update(0.01)
	assert.Equal(t, dirs, e.Stats().Live, "first particle of every trail has no delay")
	e.Live(func(p Particle) bool {
		assert.Equal(t, float32(1), p.StartSize)
		assert.Equal(t, float32(-1), p.SizeRate)
		assert.InDelta(t, 6, p.Props.Duration, 0.5)
		return true
	})
}
