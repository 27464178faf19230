package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Frame    FrameConfig     `toml:"frame"`
	Logging  LoggingConfig   `toml:"logging"`
	View     ViewConfig      `toml:"view"`
	Picking  PickingConfig   `toml:"picking"`
	Stats    StatsConfig     `toml:"stats"`
	Emitters []EmitterConfig `toml:"emitter"`
}

type FrameConfig struct {
	MaxDt   time.Duration `toml:"max_dt"`   // stalled frames are clamped to this
	FixedDt time.Duration `toml:"fixed_dt"` // 0 = wall clock
	Frames  uint64        `toml:"frames"`   // 0 = run until stopped
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ViewConfig struct {
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
	Distance float32    `toml:"distance"`
	Phi      float32    `toml:"phi"`
	Theta    float32    `toml:"theta"`
	FovY     float32    `toml:"fov_y"` // degrees
	Target   [3]float32 `toml:"target"`
	Cull     bool       `toml:"cull"`
}

type PickingConfig struct {
	Emitter     string      `toml:"emitter"`
	GroundPoint [3]float32  `toml:"ground_point"`
	GroundUp    [3]float32  `toml:"ground_up"`
	BurstOffset [3]float32  `toml:"burst_offset"`
	Seed        int64       `toml:"seed"`
	Burst       BurstConfig `toml:"burst"`
}

type BurstConfig struct {
	Sides          int     `toml:"sides"`
	VSides         int     `toml:"vsides"`
	Speed          float32 `toml:"speed"`
	Pull           float32 `toml:"pull"`
	Lift           float32 `toml:"lift"`
	Scale          float32 `toml:"scale"`
	Jitter         float32 `toml:"jitter"`
	SpinJitter     float32 `toml:"spin_jitter"`
	Duration       float32 `toml:"duration"`
	DurationJitter float32 `toml:"duration_jitter"`
	Trail          int     `toml:"trail"`
	TrailStep      float64 `toml:"trail_step"`
}

type StatsConfig struct {
	Every uint64 `toml:"every"` // frames between stats lines, 0 = off
}

type EmitterConfig struct {
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
	// Preset names an entry of the preset table. Inline properties override
	// it when both are given.
	Preset     string            `toml:"preset"`
	Properties *PropertiesConfig `toml:"properties"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML over the defaults. name is only used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Emitters))
	for i, e := range c.Emitters {
		if e.Name == "" {
			return fmt.Errorf("emitter #%d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("emitter %q defined twice", e.Name)
		}
		seen[e.Name] = true
		if e.Capacity <= 0 {
			return fmt.Errorf("emitter %q: capacity must be positive, got %d", e.Name, e.Capacity)
		}
		if e.Preset == "" && e.Properties == nil {
			return fmt.Errorf("emitter %q: needs a preset or properties", e.Name)
		}
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("view size must be positive, got %dx%d", c.View.Width, c.View.Height)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Frame: FrameConfig{
			MaxDt:   100 * time.Millisecond,
			FixedDt: 0,
			Frames:  0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		View: ViewConfig{
			Width:    1280,
			Height:   720,
			Distance: 60,
			Phi:      0.6,
			Theta:    0,
			FovY:     60,
		},
		Picking: PickingConfig{
			Emitter:     "sparks",
			GroundUp:    [3]float32{0, 1, 0},
			BurstOffset: [3]float32{0, 30, 0},
			Seed:        1,
			Burst: BurstConfig{
				Sides:          5,
				VSides:         5,
				Speed:          1,
				Pull:           0.05,
				Lift:           1,
				Scale:          20,
				Jitter:         0.02,
				SpinJitter:     0.2,
				Duration:       6,
				DurationJitter: 0.5,
				Trail:          20,
				TrailStep:      1.0 / 20.0,
			},
		},
		Stats: StatsConfig{
			Every: 60,
		},
	}
}
