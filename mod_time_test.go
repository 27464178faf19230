package fountain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by the next step on every call.
type fakeClock struct {
	now   time.Time
	steps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	if len(c.steps) > 0 {
		c.now = c.now.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.now
}

func TestTimeModule_WallClock(t *testing.T) {
	clock := &fakeClock{
		now: time.Unix(1000, 0),
		// The first step is consumed by Install.
		steps: []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond},
	}
	app := NewAppBuilder().
		UseModule(TimeModule{Now: clock.Now}).
		Build()

	app.Step()
	tm, ok := Resource[Time](app)
	require.True(t, ok)
	assert.Equal(t, 16*time.Millisecond, tm.Dt)
	assert.Equal(t, uint64(1), tm.Frame)
	assert.InDelta(t, 0.016, tm.DeltaSeconds(), 1e-6)

	app.Step()
	assert.Equal(t, 20*time.Millisecond, tm.Dt)
	assert.Equal(t, 36*time.Millisecond, tm.Elapsed)
	assert.Equal(t, uint64(2), tm.Frame)
}

func TestTimeModule_ClampsStalls(t *testing.T) {
	clock := &fakeClock{
		now:   time.Unix(1000, 0),
		steps: []time.Duration{0, 3 * time.Second, -time.Second},
	}
	app := NewAppBuilder().
		UseModule(TimeModule{Now: clock.Now, MaxDt: 100 * time.Millisecond}).
		Build()
	tm, _ := Resource[Time](app)

	app.Step()
	assert.Equal(t, 100*time.Millisecond, tm.Dt)

	// The wall clock went backwards.
	app.Step()
	assert.Equal(t, time.Duration(0), tm.Dt)
}

func TestTimeModule_FixedDt(t *testing.T) {
	clock := &fakeClock{
		now:   time.Unix(1000, 0),
		steps: []time.Duration{0, time.Second, time.Millisecond},
	}
	app := NewAppBuilder().
		UseModule(TimeModule{Now: clock.Now, FixedDt: 10 * time.Millisecond}).
		Build()
	tm, _ := Resource[Time](app)

	app.Step()
	app.Step()
	assert.Equal(t, 10*time.Millisecond, tm.Dt)
	assert.Equal(t, 20*time.Millisecond, tm.Elapsed)
}

func TestClampDt(t *testing.T) {
	assert.Equal(t, time.Duration(0), clampDt(-time.Millisecond, 0))
	assert.Equal(t, time.Hour, clampDt(time.Hour, 0))
	assert.Equal(t, time.Second, clampDt(time.Hour, time.Second))
	assert.Equal(t, time.Millisecond, clampDt(time.Millisecond, time.Second))
}
