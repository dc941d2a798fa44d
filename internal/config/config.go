package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/layout"
	"gopkg.in/yaml.v3"
)

// Config is everything about the game which is not a tree parameter.
type Config struct {
	Canvas  Canvas          `yaml:"canvas"`
	Padding layout.Padding  `yaml:"padding"`
	Sliders []controls.Spec `yaml:"sliders"`
}

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is a hex colour such as "#ffffff".
	Background string `yaml:"background"`

	// Margin is the space between the tree's root and the bottom edge.
	Margin float64 `yaml:"margin"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:      1200,
			Height:     720,
			Background: "#ffffff",
			Margin:     40,
		},
		Padding: layout.DefaultPadding(),
		Sliders: controls.Defaults(),
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must have positive size, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if len(c.Sliders) == 0 {
		return errors.New("no sliders configured")
	}

	seen := make(map[string]bool, len(c.Sliders))
	for _, s := range c.Sliders {
		if s.Name == "" {
			return fmt.Errorf("slider %q has no name", s.Label)
		}
		if seen[s.Name] {
			return fmt.Errorf("slider %q configured twice", s.Name)
		}
		seen[s.Name] = true

		if s.Resolution < 0 {
			return fmt.Errorf("slider %q has negative resolution %v", s.Name, s.Resolution)
		}
	}

	return nil
}
