package fountain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fountain/fx/camera"
)

// View is the camera and viewport shared by picking and drawing.
type View struct {
	Camera *camera.OrbitCamera
	Width  int
	Height int
	Cull   bool
}

func (v *View) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

func (v *View) ViewProjection() mgl32.Mat4 {
	return v.Camera.GetProjectionMatrix(v.Aspect()).Mul4(v.Camera.GetViewMatrix())
}

type viewFrustum struct {
	planes camera.Frustum
}

func (v *View) frustum() *viewFrustum {
	return &viewFrustum{planes: camera.ExtractFrustum(v.ViewProjection())}
}

func (f *viewFrustum) contains(center mgl32.Vec3, size float32) bool {
	// A unit cube scaled by size fits in a sphere of radius size*sqrt(3)/2.
	return f.planes.ContainsSphere(center, size*0.8660254)
}

type ViewModule struct {
	Camera *camera.OrbitCamera
	Width  int
	Height int
	Cull   bool
}

func (m ViewModule) Install(app *App, cmd *Commands) {
	cam := m.Camera
	if cam == nil {
		cam = camera.NewOrbitCamera()
	}
	w, h := m.Width, m.Height
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}
	cmd.AddResources(&View{Camera: cam, Width: w, Height: h, Cull: m.Cull})
}
