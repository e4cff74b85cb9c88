// Package config holds the runtime configuration of gocad: defaults, the YAML
// config file, validation and hot reload.
package config

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gocad/pkg/sketch"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	Window  Window  `yaml:"window"`
	Grid    int     `yaml:"grid"`
	Palette Palette `yaml:"palette"`
	Keys    Keys    `yaml:"keys"`
	HUD     bool    `yaml:"hud"`
}

// Window holds the viewport settings. The viewport size is fixed for a session.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Palette holds the frame colors as hex strings in the file
type Palette struct {
	Background Color `yaml:"background"`
	Grid       Color `yaml:"grid"`
	Axis       Color `yaml:"axis"`
	Cursor     Color `yaml:"cursor"`
	Stroke     Color `yaml:"stroke"`
	Node       Color `yaml:"node"`
}

// Default returns the built-in configuration
func Default() Config {
	pal := sketch.DefaultPalette()
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "gocad",
			FPS:    60,
		},
		Grid: sketch.DefaultGridSize,
		Palette: Palette{
			Background: Color(pal.Background),
			Grid:       Color(pal.Grid),
			Axis:       Color(pal.Axis),
			Cursor:     Color(pal.Cursor),
			Stroke:     Color(pal.Stroke),
			Node:       Color(pal.Node),
		},
		Keys: DefaultKeys(),
	}
}

// Validate checks every field and normalizes key names
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.Window.FPS)
	}
	if c.Grid <= 0 {
		return fmt.Errorf("%w: grid %d must be positive", ErrInvalid, c.Grid)
	}
	if c.Grid > c.Window.Width || c.Grid > c.Window.Height {
		return fmt.Errorf("%w: grid %d does not fit the window", ErrInvalid, c.Grid)
	}
	if err := c.Keys.normalize(); err != nil {
		return err
	}
	return nil
}

// SketchPalette converts the palette for the editor
func (p Palette) SketchPalette() sketch.Palette {
	return sketch.Palette{
		Background: p.Background.RGBA(),
		Grid:       p.Grid.RGBA(),
		Axis:       p.Axis.RGBA(),
		Cursor:     p.Cursor.RGBA(),
		Stroke:     p.Stroke.RGBA(),
		Node:       p.Node.RGBA(),
	}
}
