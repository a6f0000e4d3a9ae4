// Package config holds the viewer configuration. Values come from an
// optional YAML file; a missing file just means defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the ecs layer all entities and renderers use.
const Default = ecs.LayerID(0)

// ViewerConfig configures the fusemapview host.
type ViewerConfig struct {
	// Map is the Sprite Fusion JSON export to load.
	Map string `yaml:"map"`
	// Tileset is an optional spritesheet PNG; without one, tiles render
	// as flat colored quads.
	Tileset string `yaml:"tileset"`
	// TileSize overrides the map's own tile size when positive.
	TileSize int `yaml:"tile_size"`

	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	PanSpeed float64 `yaml:"pan_speed"`
}

func DefaultViewer() ViewerConfig {
	return ViewerConfig{
		Map:      "map.json",
		Width:    1280,
		Height:   720,
		PanSpeed: 8,
	}
}

// LoadViewer reads path over the defaults. Only the window and pan settings
// fall back when left zero; an explicitly empty map path is kept so the
// caller can report it.
func LoadViewer(path string) (ViewerConfig, error) {
	conf := DefaultViewer()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("config: parse %s: %w", path, err)
	}
	defaults := DefaultViewer()
	if conf.Width <= 0 {
		conf.Width = defaults.Width
	}
	if conf.Height <= 0 {
		conf.Height = defaults.Height
	}
	if conf.PanSpeed <= 0 {
		conf.PanSpeed = defaults.PanSpeed
	}
	return conf, nil
}
