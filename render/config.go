package render

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Render settings. Every field is optional in YAML, and fields left out take
// their value from DefaultConfig. Zero sizes and empty colors are also replaced
// by the defaults, but a zero padding is kept.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Padding     int     `yaml:"padding"`
	Scale       float64 `yaml:"scale"` // pixels per world unit; fit to the image when zero
	PointRadius float64 `yaml:"point_radius"`
	LineWidth   float64 `yaml:"line_width"`
	Background  string  `yaml:"background"`
	PointColor  string  `yaml:"point_color"`
	LineColor   string  `yaml:"line_color"`
	LabelColor  string  `yaml:"label_color"`
	Labels      bool    `yaml:"labels"`
}

var DefaultConfig = Config{
	Width:       800,
	Height:      600,
	Padding:     40,
	PointRadius: 3,
	LineWidth:   1,
	Background:  "#000000",
	PointColor:  "#ffffff",
	LineColor:   "#00ffff",
	LabelColor:  "#ffff00",
}

func (c Config) withDefaults() Config {
	d := DefaultConfig
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Padding < 0 || 2*c.Padding >= c.Width || 2*c.Padding >= c.Height {
		c.Padding = 0
	}
	if c.PointRadius <= 0 {
		c.PointRadius = d.PointRadius
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	if c.Background == "" {
		c.Background = d.Background
	}
	if c.PointColor == "" {
		c.PointColor = d.PointColor
	}
	if c.LineColor == "" {
		c.LineColor = d.LineColor
	}
	if c.LabelColor == "" {
		c.LabelColor = d.LabelColor
	}
	return c
}

func ReadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding render config")
	}
	return config.withDefaults(), nil
}

func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening render config")
	}
	defer f.Close()
	return ReadConfig(f)
}
