package fountain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fountain/fx/particle"
)

// Emitters owns every emitter of the app, by name. Systems get it injected
// instead of reaching for globals.
type Emitters struct {
	byName map[string]*particle.Emitter
	order  []string
}

func NewEmitters() *Emitters {
	return &Emitters{byName: make(map[string]*particle.Emitter)}
}

func (e *Emitters) Add(name string, em *particle.Emitter) error {
	if _, ok := e.byName[name]; ok {
		return fmt.Errorf("emitter %q already registered", name)
	}
	e.byName[name] = em
	e.order = append(e.order, name)
	return nil
}

func (e *Emitters) Get(name string) (*particle.Emitter, bool) {
	em, ok := e.byName[name]
	return em, ok
}

// Each visits emitters in registration order.
func (e *Emitters) Each(fn func(name string, em *particle.Emitter)) {
	for _, name := range e.order {
		fn(name, e.byName[name])
	}
}

func (e *Emitters) Len() int {
	return len(e.order)
}

// Instance is what the renderer needs to draw one particle.
type Instance struct {
	Emitter  string
	Model    mgl32.Mat4
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Size     float32
	Tint     mgl32.Vec4
	Payload  particle.AssetId
}

// DrawList is rebuilt every frame in PreRender.
type DrawList struct {
	Instances []Instance
	Culled    int
}

func (d *DrawList) Reset() {
	d.Instances = d.Instances[:0]
	d.Culled = 0
}

type ParticlesModule struct {
	Emitters *Emitters
}

func (m ParticlesModule) Install(app *App, cmd *Commands) {
	emitters := m.Emitters
	if emitters == nil {
		emitters = NewEmitters()
	}
	cmd.AddResources(emitters, &DrawList{})

	app.UseSystem(
		System(ParticleUpdateSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(ParticleDrawSystem).
			InStage(PreRender),
	)
}

func ParticleUpdateSystem(t *Time, emitters *Emitters) {
	dt := t.DeltaSeconds()
	emitters.Each(func(_ string, em *particle.Emitter) {
		em.Update(dt)
	})
}

// ParticleDrawSystem packs every alive particle into the draw list, skipping
// particles outside the view when culling is on.
func ParticleDrawSystem(emitters *Emitters, list *DrawList, view *View) {
	list.Reset()

	var frustum *viewFrustum
	if view.Cull {
		frustum = view.frustum()
	}

	emitters.Each(func(name string, em *particle.Emitter) {
		em.Live(func(p particle.Particle) bool {
			if frustum != nil && !frustum.contains(p.Position, p.Size) {
				list.Culled++
				return true
			}
			list.Instances = append(list.Instances, Instance{
				Emitter:  name,
				Model:    p.Model(),
				Position: p.Position,
				Rotation: p.Rotation,
				Size:     p.Size,
				Tint:     p.Tint(),
				Payload:  p.Props.Payload,
			})
			return true
		})
	})
}
