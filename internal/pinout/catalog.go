package pinout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"know-your-pins/pkg/geometry"

	"gopkg.in/yaml.v3"
)

//go:embed esp32_devkit_v1.yaml
var devkitDefinition []byte

// ErrPinNotFound is returned when a lookup uses an id outside the catalog.
var ErrPinNotFound = errors.New("pin not found")

// definitionFile is the on-disk layout of a catalog definition table.
type definitionFile struct {
	Board   string        `yaml:"board"`
	Title   string        `yaml:"title"`
	ViewBox geometry.Size `yaml:"viewBox"`
	Pins    []Pin         `yaml:"pins"`
}

// Catalog holds every pin of a board in definition order.
// It is built once and never mutated afterwards.
type Catalog struct {
	board   string
	title   string
	viewBox geometry.Size
	pins    []Pin

	// Quick lookup maps (populated on load)
	byID       map[string]int
	byCategory map[Category][]int
}

// Load parses and validates a YAML definition table.
func Load(r io.Reader) (*Catalog, error) {
	var def definitionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decode pin definitions: %w", err)
	}

	c := &Catalog{
		board:      def.Board,
		title:      def.Title,
		viewBox:    def.ViewBox,
		pins:       def.Pins,
		byID:       make(map[string]int, len(def.Pins)),
		byCategory: make(map[Category][]int),
	}
	if err := c.buildIndex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the catalog for the ESP32 DevKit V1 38 pin board.
// The table is compiled into the binary, so a failure here is a programming error.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(devkitDefinition))
	if err != nil {
		panic(fmt.Sprintf("embedded pin table: %v", err))
	}
	return c
}

// buildIndex fills the lookup maps and enforces the catalog invariants.
func (c *Catalog) buildIndex() error {
	if len(c.pins) == 0 {
		return errors.New("pin definitions: no pins")
	}
	bounds := geometry.NewRect(0, 0, c.viewBox.Width, c.viewBox.Height)
	for i, p := range c.pins {
		if p.ID == "" {
			return fmt.Errorf("pin definitions: entry %d has no id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return fmt.Errorf("pin definitions: duplicate id %q", p.ID)
		}
		if len(p.Categories) == 0 {
			return fmt.Errorf("pin definitions: %s has no category", p.ID)
		}
		if p.Direction == DirectionInputOnly && p.HasCategory(CategoryInputOutput) {
			return fmt.Errorf("pin definitions: %s is input only but tagged %s", p.ID, CategoryInputOutput)
		}
		if !bounds.Contains(p.Position) {
			return fmt.Errorf("pin definitions: %s at (%.0f, %.0f) lies outside the %.0fx%.0f board",
				p.ID, p.Position.X, p.Position.Y, c.viewBox.Width, c.viewBox.Height)
		}
		if p.Label == "" {
			c.pins[i].Label = p.ID
		}
		c.byID[p.ID] = i
		for _, cat := range p.Categories {
			c.byCategory[cat] = append(c.byCategory[cat], i)
		}
	}
	return nil
}

// Board returns the board name.
func (c *Catalog) Board() string {
	return c.board
}

// Title returns the heading shown above the diagram.
func (c *Catalog) Title() string {
	return c.title
}

// ViewBox returns the size of the coordinate space pin positions are given in.
func (c *Catalog) ViewBox() geometry.Size {
	return c.viewBox
}

// Len returns the number of pins.
func (c *Catalog) Len() int {
	return len(c.pins)
}

// Lookup returns the pin with the given id.
func (c *Catalog) Lookup(id string) (Pin, error) {
	i, ok := c.byID[id]
	if !ok {
		return Pin{}, fmt.Errorf("%w: %q", ErrPinNotFound, id)
	}
	return c.pins[i].clone(), nil
}

// All returns every pin in catalog order.
func (c *Catalog) All() []Pin {
	out := make([]Pin, len(c.pins))
	for i, p := range c.pins {
		out[i] = p.clone()
	}
	return out
}

// FilterByCategory returns the pins tagged with cat in catalog order.
func (c *Catalog) FilterByCategory(cat Category) []Pin {
	idx := c.byCategory[cat]
	out := make([]Pin, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.pins[i].clone())
	}
	return out
}

// Categories returns the categories that have at least one pin, in legend order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(legendOrder))
	for _, cat := range legendOrder {
		if len(c.byCategory[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// Usable returns the GPIOs that are safe to wire up, in catalog order.
// Internal flash pins are never included.
func (c *Catalog) Usable() []Pin {
	return c.filter(Pin.IsUsable)
}

// OutputCapable returns the pins that can drive an output, in catalog order.
// Input-only pins are never included.
func (c *Catalog) OutputCapable() []Pin {
	return c.filter(func(p Pin) bool { return p.IsUsable() && p.IsOutputCapable() })
}

func (c *Catalog) filter(keep func(Pin) bool) []Pin {
	var out []Pin
	for _, p := range c.pins {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
