package bramble

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	ClearColor Color  `yaml:"clear_color"`
	ShowFPS    bool   `yaml:"show_fps"`
	Debug      bool   `yaml:"debug"`
	TPS        int    `yaml:"tps"` // 0 keeps Ebitengine's default
}

const (
	defaultTitle  = "bramble"
	defaultWidth  = 800
	defaultHeight = 600
)

// DefaultRunConfig returns an 800x600 resizable window titled "bramble"
// cleared to white.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      defaultTitle,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Resizable:  true,
		ClearColor: ColorWhite,
	}
}

// withDefaults fills zero title and size fields.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// LoadRunConfig decodes YAML on top of DefaultRunConfig. Keys left out keep
// their default.
//
//	title: demo
//	width: 1024
//	clear_color: "#202028ff"
func LoadRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("bramble: run config: %w", err)
	}
	return cfg, nil
}

// UnmarshalYAML accepts the style color grammar ("#rrggbbaa",
// "(r, g, b, a)") or a 0xRRGGBBAA integer. Unlike ColorOf, malformed
// input is an error.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: want a scalar", n.Line, ErrColorFormat)
	}
	if n.ShortTag() == "!!int" {
		var v uint32
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = ColorFromUint32(v)
		return nil
	}
	parsed, err := ParseColor(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as "#rrggbbaa".
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
