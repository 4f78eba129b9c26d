package pinout

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Category is a tag used for legend colouring and filtering.
type Category string

const (
	CategoryI2C         Category = "i2c"
	CategoryADC         Category = "adc"
	CategorySPI         Category = "spi"
	CategoryPWM         Category = "pwm"
	CategoryPower       Category = "power"
	CategoryInputOnly   Category = "input-only"
	CategoryInputOutput Category = "input-output"
	CategoryOther       Category = "other"
)

// legendOrder is the order categories appear in the legend. A pin's primary
// category (the one its hotspot is tinted with) is the first match in this order.
var legendOrder = []Category{
	CategoryI2C,
	CategoryADC,
	CategorySPI,
	CategoryPWM,
	CategoryPower,
	CategoryInputOnly,
	CategoryInputOutput,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryI2C:         "I2C Pins",
	CategoryADC:         "ADC Pins",
	CategorySPI:         "SPI Pins",
	CategoryPWM:         "PWM Pins",
	CategoryPower:       "Power Pins",
	CategoryInputOnly:   "Input Only Pins",
	CategoryInputOutput: "In/Out Pins",
	CategoryOther:       "Other",
}

// AllCategories returns every known category in legend order.
func AllCategories() []Category {
	return slices.Clone(legendOrder)
}

// Label returns the legend label for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	cat := Category(s)
	if !cat.Valid() {
		return fmt.Errorf("line %d: unknown category %q", value.Line, s)
	}
	*c = cat
	return nil
}

// PrimaryCategory returns the category a pin is coloured by.
func PrimaryCategory(p Pin) Category {
	for _, c := range legendOrder {
		if p.HasCategory(c) {
			return c
		}
	}
	return CategoryOther
}

// CategorySet is a set of active category toggles.
type CategorySet map[Category]struct{}

// NewCategorySet creates a set holding cats.
func NewCategorySet(cats ...Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Intersects reports whether any of cats is in the set.
func (s CategorySet) Intersects(cats []Category) bool {
	for _, c := range cats {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Sorted returns the members in legend order.
func (s CategorySet) Sorted() []Category {
	out := make([]Category, 0, len(s))
	for _, c := range legendOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// PinSet is a set of pin ids.
type PinSet map[string]struct{}

// Has reports whether id is in the set.
func (s PinSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
