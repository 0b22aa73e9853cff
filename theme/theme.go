// Package theme loads connector styling from YAML documents. The file
// format uses friendly units: hex color strings and head spread in
// degrees. Style converts a theme into the renderer's native
// quiver.Style.
package theme

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/quiver"
)

// Theme is the YAML-facing styling document. Fields absent from a
// loaded file keep their Default values, so construct themes with
// Default, Parse, or Load rather than as zero values.
type Theme struct {
	Width        float64   `yaml:"width"`
	HoverWidth   float64   `yaml:"hover_width"`
	Color        string    `yaml:"color"`
	CornerRadius float64   `yaml:"corner_radius"`
	HeadLength   float64   `yaml:"head_length"`
	HeadSpread   float64   `yaml:"head_spread"` // degrees
	HeadMode     string    `yaml:"head_mode"`   // composite | integrated
	Cap          string    `yaml:"cap"`         // butt | round | square
	Join         string    `yaml:"join"`        // miter | round | bevel
	Dash         []float64 `yaml:"dash"`
	DashOffset   float64   `yaml:"dash_offset"`
}

// Default returns the theme matching quiver.DefaultStyle.
func Default() Theme {
	return Theme{
		Width:        2,
		HoverWidth:   4,
		Color:        "#000000",
		CornerRadius: 40,
		HeadLength:   10,
		HeadSpread:   30,
		HeadMode:     "composite",
		Cap:          "butt",
		Join:         "round",
	}
}

// Parse decodes YAML data over the default theme. Absent fields keep
// their defaults; unknown fields are ignored. Enum fields with values
// the renderer cannot map are an error.
func Parse(data []byte) (Theme, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parse theme: %w", err)
	}
	if _, err := t.Style(); err != nil {
		return Default(), fmt.Errorf("parse theme: %w", err)
	}
	return t, nil
}

// Load reads and parses a theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Default(), fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Save writes the theme as YAML, creating parent directories as
// needed.
func (t Theme) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Style maps the theme onto a renderer style. Spread converts from
// degrees to radians and the color string parses as hex.
func (t Theme) Style() (quiver.Style, error) {
	mode, err := parseHeadMode(t.HeadMode)
	if err != nil {
		return quiver.Style{}, err
	}
	lineCap, err := parseCap(t.Cap)
	if err != nil {
		return quiver.Style{}, err
	}
	lineJoin, err := parseJoin(t.Join)
	if err != nil {
		return quiver.Style{}, err
	}

	s := quiver.Style{
		Width:        t.Width,
		HoverWidth:   t.HoverWidth,
		Color:        quiver.Hex(t.Color),
		CornerRadius: t.CornerRadius,
		HeadLength:   t.HeadLength,
		HeadSpread:   t.HeadSpread * math.Pi / 180,
		Mode:         mode,
		Cap:          lineCap,
		Join:         lineJoin,
		DashOffset:   t.DashOffset,
	}
	if len(t.Dash) > 0 {
		s.Dash = append([]float64(nil), t.Dash...)
	}
	return s, nil
}

func parseHeadMode(s string) (quiver.HeadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "composite":
		return quiver.HeadComposite, nil
	case "integrated":
		return quiver.HeadIntegrated, nil
	default:
		return 0, fmt.Errorf("unknown head mode %q", s)
	}
}

func parseCap(s string) (quiver.LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "butt":
		return quiver.LineCapButt, nil
	case "round":
		return quiver.LineCapRound, nil
	case "square":
		return quiver.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown line cap %q", s)
	}
}

func parseJoin(s string) (quiver.LineJoin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "round":
		return quiver.LineJoinRound, nil
	case "miter":
		return quiver.LineJoinMiter, nil
	case "bevel":
		return quiver.LineJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown line join %q", s)
	}
}
