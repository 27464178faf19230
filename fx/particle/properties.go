package particle

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// AssetId is an opaque handle to whatever the renderer draws for a particle.
// The simulation never looks inside it.
type AssetId string

func NewAssetId() AssetId {
	return AssetId(uuid.NewString())
}

var ErrInvalidProperties = errors.New("invalid particle properties")

// Properties is the template shared by every particle an emitter spawns.
// Particles copy it at spawn time, so swapping an emitter's Properties only
// affects particles spawned afterwards.
type Properties struct {
	Acceleration mgl32.Vec3
	// RotationRate is radians per full lifetime around X, Y and Z.
	RotationRate mgl32.Vec3
	InitialSize  float32
	FinalSize    float32
	// Duration is the lifetime in seconds. Must be > 0.
	Duration float32
	Payload  AssetId
	Tint     Curve
}

// Validate is meant for construction time (config, presets). Emitters never
// call it while simulating.
func (p Properties) Validate() error {
	if !(p.Duration > 0) || math.IsInf(float64(p.Duration), 0) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidProperties, p.Duration)
	}
	for _, v := range []float32{p.InitialSize, p.FinalSize} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: size must be finite, got %v", ErrInvalidProperties, v)
		}
	}
	return nil
}
