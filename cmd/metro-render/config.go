package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/metromap/pkg/metro"
)

// Config holds render settings that can live in a YAML file.
// Command line flags override file values.
type Config struct {
	Width      int      `yaml:"width" validate:"gt=0"`
	Height     int      `yaml:"height" validate:"gt=0"`
	Font       string   `yaml:"font"`
	FontSize   float64  `yaml:"font_size" validate:"gt=0"`
	Background string   `yaml:"background" validate:"omitempty,hexcolor"`
	Selection  string   `yaml:"selection" validate:"omitempty,hexcolor"`
	Filter     []string `yaml:"filter" validate:"dive,oneof=all transport lines transfers stations names"`
}

// defaultConfig returns the settings used without a config file.
func defaultConfig() Config {
	return Config{
		Width:    1024,
		Height:   768,
		FontSize: 10,
		Filter:   []string{"all"},
	}
}

// loadConfig reads and validates a config file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// parseFilter converts filter names to an element type mask.
func parseFilter(names []string) (metro.ElementType, error) {
	var mask metro.ElementType
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "all":
			mask |= metro.All
		case "transport":
			mask |= metro.OnlyTransport
		case "lines":
			mask |= metro.TypeLine
		case "transfers":
			mask |= metro.TypeTransfer | metro.TypeTransferBackground
		case "stations":
			mask |= metro.TypeStation
		case "names":
			mask |= metro.TypeStationName
		default:
			return 0, fmt.Errorf("unknown filter %q", name)
		}
	}
	return mask, nil
}

// parseViewport parses "x,y,width,height" in map coordinates.
func parseViewport(value string) (metro.RectF, error) {
	var x, y, w, h float64
	if _, err := fmt.Sscanf(value, "%g,%g,%g,%g", &x, &y, &w, &h); err != nil {
		return metro.RectF{}, fmt.Errorf("viewport %q: want x,y,width,height", value)
	}
	if w <= 0 || h <= 0 {
		return metro.RectF{}, fmt.Errorf("viewport %q: width and height must be positive", value)
	}
	return metro.RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}, nil
}
