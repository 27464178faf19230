package fountain

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fountain/fx/collision"
	"github.com/gekko3d/fountain/fx/particle"
)

// Picking turns clicks into spawns: a left click drops one particle where the
// picking ray meets the ground, a right click fires a burst above that point.
type Picking struct {
	Ground      collision.Plane
	Emitter     string
	Burst       particle.Burst
	BurstOffset mgl32.Vec3
	// Velocity given to single particles dropped by a left click.
	Velocity mgl32.Vec3

	rng *rand.Rand

	Hits   int
	Misses int
}

type PickingModule struct {
	Ground      collision.Plane
	Emitter     string
	Burst       particle.Burst
	BurstOffset mgl32.Vec3
	Velocity    mgl32.Vec3
	Seed        int64
}

func (m PickingModule) Install(app *App, cmd *Commands) {
	ground := m.Ground
	if ground.Normal == (mgl32.Vec3{}) {
		ground.Normal = mgl32.Vec3{0, 1, 0}
	}
	cmd.AddResources(&Picking{
		Ground:      ground,
		Emitter:     m.Emitter,
		Burst:       m.Burst,
		BurstOffset: m.BurstOffset,
		Velocity:    m.Velocity,
		rng:         rand.New(rand.NewSource(m.Seed)),
	})
	app.UseSystem(
		System(PickingSystem).
			InStage(PreUpdate),
	)
}

// PickingSystem resolves every queued click against the ground plane. Misses
// (parallel ray, plane behind the camera) are logged and dropped.
func PickingSystem(input *Input, view *View, picking *Picking, emitters *Emitters, log Logger) {
	clicks := input.Drain()
	if len(clicks) == 0 {
		return
	}

	em, ok := emitters.Get(picking.Emitter)
	if !ok {
		log.Warnf("picking: emitter %q not found, dropping %d clicks", picking.Emitter, len(clicks))
		return
	}

	for _, c := range clicks {
		ray, err := view.Camera.ScreenRay(c.X, c.Y, view.Width, view.Height)
		if err != nil {
			log.Warnf("picking: cannot cast ray at (%.0f, %.0f): %v", c.X, c.Y, err)
			picking.Misses++
			continue
		}
		hit, ok := ray.Hit(picking.Ground)
		if !ok {
			log.Debugf("picking: %s click at (%.0f, %.0f) missed the ground", c.Button, c.X, c.Y)
			picking.Misses++
			continue
		}
		picking.Hits++

		switch c.Button {
		case MouseButtonLeft:
			em.Emit(hit, picking.Velocity, em.Properties().InitialSize)
			log.Debugf("picking: spawned at %v", hit)
		case MouseButtonRight:
			n := picking.Burst.Emit(em, hit.Add(picking.BurstOffset), picking.rng)
			log.Debugf("picking: burst of %d at %v", n, hit)
		}
	}
}
