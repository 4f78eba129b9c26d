// Package style loads the declarative stylesheet that colours the pinout.
package style

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"know-your-pins/internal/pinout"
	"know-your-pins/pkg/colorutil"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultStylesheet []byte

// Color is a stylesheet colour written as a hex string.
type Color struct {
	color.NRGBA
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := colorutil.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.NRGBA = parsed
	return nil
}

// Stylesheet holds every colour the UI draws with.
type Stylesheet struct {
	Primary         Color                     `yaml:"primary"`
	Selection       Color                     `yaml:"selection"`       // Border of the selected pin
	HighlightBorder Color                     `yaml:"highlightBorder"` // Border of category-highlighted pins
	Title           Color                     `yaml:"title"`
	TypeTag         Color                     `yaml:"typeTag"`
	Note            Color                     `yaml:"note"`
	HoverAlpha      uint8                     `yaml:"hoverAlpha"`
	DimAlpha        uint8                     `yaml:"dimAlpha"` // Opacity of pins hidden by a filter
	TagPalette      []Color                   `yaml:"tagPalette"`
	Categories      map[pinout.Category]Color `yaml:"categories"`
}

// defaultHoverAlpha applies when a stylesheet omits hoverAlpha.
const defaultHoverAlpha = 80

// Load parses a stylesheet and checks that every legend category has a colour.
func Load(r io.Reader) (*Stylesheet, error) {
	s := Stylesheet{HoverAlpha: defaultHoverAlpha}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode stylesheet: %w", err)
	}
	if len(s.TagPalette) == 0 {
		return nil, errors.New("stylesheet: tagPalette is empty")
	}
	for _, cat := range pinout.AllCategories() {
		if _, ok := s.Categories[cat]; !ok {
			return nil, fmt.Errorf("stylesheet: no colour for category %q", cat)
		}
	}
	return &s, nil
}

// LoadFile reads a stylesheet from disk.
func LoadFile(path string) (*Stylesheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the stylesheet compiled into the binary.
func Default() *Stylesheet {
	s, err := Load(bytes.NewReader(defaultStylesheet))
	if err != nil {
		panic(fmt.Sprintf("embedded stylesheet: %v", err))
	}
	return s
}

// Resolve loads the stylesheet at path, or the default when path is empty.
// A missing file falls back to the default with a warning, matching how a
// missing theme file never stops the application.
func Resolve(path string, warn func(format string, args ...interface{})) (*Stylesheet, error) {
	if path == "" {
		return Default(), nil
	}
	s, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		warn("Warning: could not find stylesheet at %s, using built-in styles", path)
		return Default(), nil
	}
	return s, err
}

// CategoryColor returns the legend colour for a category.
func (s *Stylesheet) CategoryColor(cat pinout.Category) color.NRGBA {
	if c, ok := s.Categories[cat]; ok {
		return c.NRGBA
	}
	return s.Categories[pinout.CategoryOther].NRGBA
}

// HoverColor returns the translucent fill used when a pin is hovered or highlighted.
func (s *Stylesheet) HoverColor(cat pinout.Category) color.NRGBA {
	return colorutil.WithAlpha(s.CategoryColor(cat), s.HoverAlpha)
}

// TagColor returns the palette colour for the i-th function tag.
func (s *Stylesheet) TagColor(i int) color.NRGBA {
	return s.TagPalette[i%len(s.TagPalette)].NRGBA
}
