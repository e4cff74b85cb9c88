package config

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gocad/pkg/sketch"
)

// Keys binds editor actions to keys. A key is a single letter or digit.
type Keys struct {
	Line   string `yaml:"line"`
	Circle string `yaml:"circle"`
	Rect   string `yaml:"rect"`
	Curve  string `yaml:"curve"`
	Delete string `yaml:"delete"`
	HUD    string `yaml:"hud"`
}

// DefaultKeys returns L, C, R, B for the shapes, D for delete and H for the HUD
func DefaultKeys() Keys {
	return Keys{
		Line:   "L",
		Circle: "C",
		Rect:   "R",
		Curve:  "B",
		Delete: "D",
		HUD:    "H",
	}
}

// Begin returns the key that starts a shape of the given kind
func (k Keys) Begin(kind sketch.Kind) string {
	switch kind {
	case sketch.KindLine:
		return k.Line
	case sketch.KindCircle:
		return k.Circle
	case sketch.KindRect:
		return k.Rect
	case sketch.KindCurve:
		return k.Curve
	default:
		return ""
	}
}

// normalize upper-cases every key and rejects invalid or duplicate bindings
func (k *Keys) normalize() error {
	fields := []struct {
		name string
		key  *string
	}{
		{"line", &k.Line},
		{"circle", &k.Circle},
		{"rect", &k.Rect},
		{"curve", &k.Curve},
		{"delete", &k.Delete},
		{"hud", &k.HUD},
	}

	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		key := strings.ToUpper(strings.TrimSpace(*f.key))
		if len(key) != 1 || !isKeyChar(key[0]) {
			return fmt.Errorf("%w: key %q for %s must be a single letter or digit", ErrInvalid, *f.key, f.name)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: key %s is bound to both %s and %s", ErrInvalid, key, other, f.name)
		}
		seen[key] = f.name
		*f.key = key
	}
	return nil
}

func isKeyChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
