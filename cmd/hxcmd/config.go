package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config holds the serve command's settings. Flags override file values.
type Config struct {
	Listen    string  `yaml:"listen"`
	Frames    string  `yaml:"frames"`
	FPS       float64 `yaml:"fps"`
	StaticDir string  `yaml:"static_dir"`
}

func defaultConfig() Config {
	return Config{
		Listen: ":8000",
		Frames: "frames",
	}
}

// loadConfig reads the --config file if given and applies flag overrides.
func loadConfig(cmd *cli.Command) (Config, error) {
	cfg := defaultConfig()

	if path := cmd.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if cmd.IsSet("listen") {
		cfg.Listen = cmd.String("listen")
	}
	if cmd.IsSet("frames") {
		cfg.Frames = cmd.String("frames")
	}
	if cmd.IsSet("fps") {
		cfg.FPS = cmd.Float("fps")
	}
	if cmd.IsSet("static") {
		cfg.StaticDir = cmd.String("static")
	}
	return cfg, nil
}
