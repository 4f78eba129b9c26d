// Package pinout provides the ESP32 DevKit pin catalog and category filtering.
package pinout

import (
	"fmt"
	"slices"
	"strings"

	"know-your-pins/pkg/geometry"

	"gopkg.in/yaml.v3"
)

// Direction describes what a pin can electrically do.
type Direction int

const (
	DirectionInputOutput Direction = iota
	DirectionInputOnly
	DirectionPower
	DirectionInternal
)

// String returns the human-readable name shown in the detail panel.
func (d Direction) String() string {
	switch d {
	case DirectionInputOutput:
		return "Input/Output"
	case DirectionInputOnly:
		return "Input only"
	case DirectionPower:
		return "Power"
	case DirectionInternal:
		return "Internal (do not use)"
	default:
		return "Unknown"
	}
}

// Key returns the identifier used in definition files.
func (d Direction) Key() string {
	switch d {
	case DirectionInputOutput:
		return "input-output"
	case DirectionInputOnly:
		return "input-only"
	case DirectionPower:
		return "power"
	case DirectionInternal:
		return "internal"
	default:
		return ""
	}
}

// ParseDirection converts a definition-file key into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "input-output":
		return DirectionInputOutput, nil
	case "input-only":
		return DirectionInputOnly, nil
	case "power":
		return DirectionPower, nil
	case "internal":
		return DirectionInternal, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// Side is the header row a pin sits on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Side) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	switch str {
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	default:
		return fmt.Errorf("line %d: unknown side %q", value.Line, str)
	}
	return nil
}

// Pin is the immutable description of one physical header pin.
type Pin struct {
	ID         string           `yaml:"id"`
	Label      string           `yaml:"label"`
	Silkscreen string           `yaml:"silkscreen"` // Text printed next to the pad
	Side       Side             `yaml:"side"`
	Position   geometry.Point2D `yaml:"position"` // Pad centre in board asset coordinates
	Functions  []string         `yaml:"functions"`
	Direction  Direction        `yaml:"direction"`
	BootNote   string           `yaml:"bootNote"`
	Categories []Category       `yaml:"categories"`
}

// HasCategory reports whether the pin is tagged with c.
func (p Pin) HasCategory(c Category) bool {
	return slices.Contains(p.Categories, c)
}

// IsGPIO reports whether the pin is a general purpose IO of the chip.
func (p Pin) IsGPIO() bool {
	return strings.HasPrefix(p.ID, "GPIO")
}

// IsInternal reports whether the pin is wired to on-package flash.
func (p Pin) IsInternal() bool {
	return p.Direction == DirectionInternal
}

// IsUsable reports whether the pin is a GPIO that projects may connect to.
func (p Pin) IsUsable() bool {
	if !p.IsGPIO() {
		return false
	}
	return p.Direction == DirectionInputOutput || p.Direction == DirectionInputOnly
}

// IsOutputCapable reports whether the pin can drive an output.
func (p Pin) IsOutputCapable() bool {
	return p.Direction == DirectionInputOutput
}

// clone returns a copy that shares no slices with p.
func (p Pin) clone() Pin {
	p.Functions = slices.Clone(p.Functions)
	p.Categories = slices.Clone(p.Categories)
	return p
}
