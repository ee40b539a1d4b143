// Package config supplies tool defaults, optionally overlaid from a YAML
// file so recurring jobs don't repeat the same flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI's optional flags.
type Config struct {
	Padding   string  `yaml:"padding"`
	BgColor   string  `yaml:"bg_color"`
	TextColor string  `yaml:"text_color"`
	Font      string  `yaml:"font"`
	FontSize  float64 `yaml:"font_size"`
	Align     string  `yaml:"align"`
	VAlign    string  `yaml:"valign"`
	WrapWidth string  `yaml:"wrap_width"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Padding:   "200",
		BgColor:   "black",
		TextColor: "white",
		Font:      "arial",
		FontSize:  16,
		Align:     "left",
		VAlign:    "top",
		WrapWidth: "90%",
	}
}

// Load reads a YAML file and overlays it onto the defaults: fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
