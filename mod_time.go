package fountain

import (
	"time"
)

type Time struct {
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration
	Frame   uint64
}

// DeltaSeconds returns Dt in seconds, the unit the simulation runs in.
func (t *Time) DeltaSeconds() float32 {
	return float32(t.Dt.Seconds())
}

// TimeModule measures the frame delta. The particle core trusts whatever dt
// it is given, so the delta is clamped here: never negative, never above
// MaxDt. With FixedDt set the wall clock is ignored.
type TimeModule struct {
	MaxDt   time.Duration
	FixedDt time.Duration
	// Now replaces time.Now, mostly for tests.
	Now func() time.Time
}

type timeSource struct {
	now     func() time.Time
	maxDt   time.Duration
	fixedDt time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	cmd.AddResources(
		&Time{Time: now()},
		&timeSource{now: now, maxDt: mod.MaxDt, fixedDt: mod.FixedDt},
	)
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time, src *timeSource) {
	now := src.now()

	dt := now.Sub(timeResource.Time)
	if src.fixedDt > 0 {
		dt = src.fixedDt
	}
	dt = clampDt(dt, src.maxDt)

	timeResource.Dt = dt
	timeResource.Time = now
	timeResource.Elapsed += dt
	timeResource.Frame++
}

func clampDt(dt, max time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
