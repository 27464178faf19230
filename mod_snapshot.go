package fountain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/fountain/fx/particle"
)

type InstanceData struct {
	Emitter  string           `json:"emitter"`
	Position mgl32.Vec3       `json:"position"`
	Rotation mgl32.Vec3       `json:"rotation"`
	Size     float32          `json:"size"`
	Tint     mgl32.Vec4       `json:"tint"`
	Payload  particle.AssetId `json:"payload"`
}

type FrameData struct {
	Frame     uint64         `json:"frame"`
	Culled    int            `json:"culled"`
	Instances []InstanceData `json:"instances"`
}

// SaveFrame writes the draw list as JSON so an out-of-process renderer (or a
// test) can replay it.
func SaveFrame(list *DrawList, frame uint64, filename string) error {
	data := FrameData{
		Frame:     frame,
		Culled:    list.Culled,
		Instances: make([]InstanceData, 0, len(list.Instances)),
	}
	for _, in := range list.Instances {
		data.Instances = append(data.Instances, InstanceData{
			Emitter:  in.Emitter,
			Position: in.Position,
			Rotation: in.Rotation,
			Size:     in.Size,
			Tint:     in.Tint,
			Payload:  in.Payload,
		})
	}

	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}

	return os.WriteFile(filename, bytes, 0644)
}

func LoadFrame(filename string) (*FrameData, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var data FrameData
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal frame %s: %w", filename, err)
	}
	return &data, nil
}
