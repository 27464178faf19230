// fountain runs the particle simulation headless: it scripts clicks into the
// input queue, steps the frames and reports what a renderer would draw.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/fountain"
	"github.com/gekko3d/fountain/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	presetsPath := flag.String("presets", "", "YAML emitter presets")
	frames := flag.Uint64("frames", 0, "frames to run, overrides the config")
	debug := flag.Bool("debug", false, "enable debug logging")
	dump := flag.String("dump", "", "write the last frame's draw list as JSON")
	clickEvery := flag.Uint64("click-every", 30, "frames between scripted clicks, 0 = none")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *frames > 0 {
		cfg.Frame.Frames = *frames
	}
	if cfg.Frame.Frames == 0 {
		// Headless runs need an end.
		cfg.Frame.Frames = 600
	}
	if cfg.Frame.FixedDt == 0 {
		cfg.Frame.FixedDt = time.Second / 60
	}

	var presets *config.PresetTable
	if *presetsPath != "" {
		presets, err = config.LoadPresets(*presetsPath)
		if err != nil {
			return err
		}
	}

	emitters, err := fountain.EmittersFromConfig(cfg, presets)
	if err != nil {
		return err
	}

	app := fountain.NewAppBuilder().
		WithFrameLimit(cfg.Frame.Frames).
		UseModule(fountain.LoggingModule{Prefix: "fountain", Debug: *debug, Config: &cfg.Logging}).
		UseModule(fountain.ModulesFromConfig(cfg, emitters)...).
		UseModule(scriptModule{every: *clickEvery}).
		Build()

	log := app.Logger()
	if presets != nil {
		log.Infof("loaded %d presets: %v", presets.Count(), presets.Names())
	}
	log.Infof("%d emitters, %d frames at %v", emitters.Len(), cfg.Frame.Frames, cfg.Frame.FixedDt)

	app.Run()

	if list, ok := fountain.Resource[fountain.DrawList](app); ok {
		log.Infof("last frame: %d instances, %d culled", len(list.Instances), list.Culled)
		if *dump != "" {
			if err := fountain.SaveFrame(list, app.Frame(), *dump); err != nil {
				return fmt.Errorf("dump frame: %w", err)
			}
			log.Infof("draw list written to %s", *dump)
		}
	}
	if picking, ok := fountain.Resource[fountain.Picking](app); ok {
		log.Infof("picking: %d hits, %d misses", picking.Hits, picking.Misses)
	}

	if z, ok := log.(*fountain.ZapLogger); ok {
		_ = z.Sync()
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Defaults()
	cfg.Emitters = []config.EmitterConfig{{
		Name:     "sparks",
		Capacity: 10000,
		Properties: &config.PropertiesConfig{
			Acceleration: [3]float32{0, -9.8, 0},
			RotationRate: [3]float32{10, 10, 1},
			InitialSize:  1,
			FinalSize:    0,
			Duration:     4,
			Payload:      "cube_faces",
		},
	}}
	return cfg, nil
}
