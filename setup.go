package fountain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fountain/fx/camera"
	"github.com/gekko3d/fountain/fx/collision"
	"github.com/gekko3d/fountain/fx/particle"
	"github.com/gekko3d/fountain/internal/config"
)

// EmittersFromConfig builds every configured emitter. presets may be nil when
// all emitters carry inline properties.
func EmittersFromConfig(cfg *config.Config, presets *config.PresetTable) (*Emitters, error) {
	emitters := NewEmitters()
	for _, ec := range cfg.Emitters {
		props, err := presets.Resolve(ec)
		if err != nil {
			return nil, err
		}
		if err := emitters.Add(ec.Name, particle.NewEmitter(ec.Capacity, props)); err != nil {
			return nil, err
		}
	}
	if cfg.Picking.Emitter != "" {
		if _, ok := emitters.Get(cfg.Picking.Emitter); !ok {
			return nil, fmt.Errorf("picking emitter %q is not configured", cfg.Picking.Emitter)
		}
	}
	return emitters, nil
}

func BurstFromConfig(b config.BurstConfig) particle.Burst {
	return particle.Burst{
		Sides:          b.Sides,
		VSides:         b.VSides,
		Speed:          b.Speed,
		Pull:           b.Pull,
		Lift:           b.Lift,
		Scale:          b.Scale,
		Jitter:         b.Jitter,
		SpinJitter:     b.SpinJitter,
		Duration:       b.Duration,
		DurationJitter: b.DurationJitter,
		Trail:          b.Trail,
		TrailStep:      b.TrailStep,
	}
}

func CameraFromConfig(v config.ViewConfig) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.Target = mgl32.Vec3(v.Target)
	cam.Distance = v.Distance
	cam.Phi = v.Phi
	cam.Theta = v.Theta
	if v.FovY > 0 {
		cam.FovY = mgl32.DegToRad(v.FovY)
	}
	return cam
}

// ModulesFromConfig returns the simulation modules in install order. Logging
// is left to the caller.
func ModulesFromConfig(cfg *config.Config, emitters *Emitters) []Module {
	return []Module{
		TimeModule{MaxDt: cfg.Frame.MaxDt, FixedDt: cfg.Frame.FixedDt},
		ViewModule{
			Camera: CameraFromConfig(cfg.View),
			Width:  cfg.View.Width,
			Height: cfg.View.Height,
			Cull:   cfg.View.Cull,
		},
		InputModule{},
		ParticlesModule{Emitters: emitters},
		PickingModule{
			Ground: collision.Plane{
				Position: mgl32.Vec3(cfg.Picking.GroundPoint),
				Normal:   mgl32.Vec3(cfg.Picking.GroundUp),
			},
			Emitter:     cfg.Picking.Emitter,
			Burst:       BurstFromConfig(cfg.Picking.Burst),
			BurstOffset: mgl32.Vec3(cfg.Picking.BurstOffset),
			Seed:        cfg.Picking.Seed,
		},
		StatsModule{Every: cfg.Stats.Every},
	}
}
