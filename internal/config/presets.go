package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/fountain/fx/particle"
)

// PropertiesConfig is the file form of particle.Properties. It is shared by
// the TOML config (inline properties) and the YAML preset table.
type PropertiesConfig struct {
	Name         string       `toml:"name" yaml:"name"`
	Acceleration [3]float32   `toml:"acceleration" yaml:"acceleration"`
	RotationRate [3]float32   `toml:"rotation_rate" yaml:"rotation_rate"`
	InitialSize  float32      `toml:"initial_size" yaml:"initial_size"`
	FinalSize    float32      `toml:"final_size" yaml:"final_size"`
	Duration     float32      `toml:"duration" yaml:"duration"`
	Payload      string       `toml:"payload" yaml:"payload"`
	Tint         [][4]float32 `toml:"tint" yaml:"tint"` // empty or 4 RGBA control points
}

// Properties converts and validates. A missing payload gets a fresh id on
// every call; presets get theirs once, when the table is built.
func (p PropertiesConfig) Properties() (particle.Properties, error) {
	props := particle.Properties{
		Acceleration: mgl32.Vec3(p.Acceleration),
		RotationRate: mgl32.Vec3(p.RotationRate),
		InitialSize:  p.InitialSize,
		FinalSize:    p.FinalSize,
		Duration:     p.Duration,
		Payload:      particle.AssetId(p.Payload),
	}
	if props.Payload == "" {
		props.Payload = particle.NewAssetId()
	}

	switch len(p.Tint) {
	case 0:
	case 4:
		props.Tint = particle.Curve{
			P0: mgl32.Vec4(p.Tint[0]),
			P1: mgl32.Vec4(p.Tint[1]),
			P2: mgl32.Vec4(p.Tint[2]),
			P3: mgl32.Vec4(p.Tint[3]),
		}
	default:
		return particle.Properties{}, fmt.Errorf("%w: tint needs 4 control points, got %d", particle.ErrInvalidProperties, len(p.Tint))
	}

	if err := props.Validate(); err != nil {
		return particle.Properties{}, err
	}
	return props, nil
}

// PresetTable indexes emission presets by name.
type PresetTable struct {
	byName map[string]PropertiesConfig
}

func NewPresetTable(presets ...PropertiesConfig) (*PresetTable, error) {
	t := &PresetTable{byName: make(map[string]PropertiesConfig, len(presets))}
	for _, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if _, dup := t.byName[p.Name]; dup {
			return nil, fmt.Errorf("preset %q defined twice", p.Name)
		}
		if p.Payload == "" {
			// One id per preset, shared by every emitter that resolves it.
			p.Payload = string(particle.NewAssetId())
		}
		if _, err := p.Properties(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		t.byName[p.Name] = p
	}
	return t, nil
}

// Get returns the preset, or false if it is not in the table.
func (t *PresetTable) Get(name string) (PropertiesConfig, bool) {
	p, ok := t.byName[name]
	return p, ok
}

func (t *PresetTable) Names() []string {
	names := make([]string, 0, len(t.byName))
	for n := range t.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (t *PresetTable) Count() int {
	return len(t.byName)
}

// Resolve picks the properties for an emitter: inline properties win over
// the named preset.
func (t *PresetTable) Resolve(e EmitterConfig) (particle.Properties, error) {
	if e.Properties != nil {
		return e.Properties.Properties()
	}
	if t == nil {
		return particle.Properties{}, fmt.Errorf("emitter %q: preset %q requested but no presets loaded", e.Name, e.Preset)
	}
	p, ok := t.Get(e.Preset)
	if !ok {
		return particle.Properties{}, fmt.Errorf("emitter %q: unknown preset %q", e.Name, e.Preset)
	}
	return p.Properties()
}

// --- YAML loading ---

type presetFile struct {
	Presets []PropertiesConfig `yaml:"presets"`
}

// LoadPresets loads emission presets from YAML.
func LoadPresets(path string) (*PresetTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	return ParsePresets(raw, path)
}

func ParsePresets(raw []byte, name string) (*PresetTable, error) {
	var f presetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", name, err)
	}
	t, err := NewPresetTable(f.Presets...)
	if err != nil {
		return nil, fmt.Errorf("presets %s: %w", name, err)
	}
	return t, nil
}
