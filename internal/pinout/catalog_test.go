package pinout

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 38, c.Len())
	assert.Equal(t, "ESP32 DevKit V1", c.Board())
	assert.Equal(t, 300.0, c.ViewBox().Width)
	assert.Equal(t, 611.0, c.ViewBox().Height)
}

func TestLookupReturnsSameID(t *testing.T) {
	c := Default()
	for _, p := range c.All() {
		got, err := c.Lookup(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestLookupUnknownID(t *testing.T) {
	c := Default()
	for _, id := range []string{"", "GPIO20", "gpio21", "GPIO21 ", "GND"} {
		_, err := c.Lookup(id)
		assert.True(t, errors.Is(err, ErrPinNotFound), "id %q", id)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Default()
	p, err := c.Lookup("GPIO21")
	require.NoError(t, err)
	p.Functions[0] = "changed"
	p.Categories[0] = CategoryOther

	again, err := c.Lookup("GPIO21")
	require.NoError(t, err)
	assert.Equal(t, "I2C-SDA", again.Functions[0])
	assert.Equal(t, CategoryI2C, again.Categories[0])
}

func TestEveryPinHasCategory(t *testing.T) {
	for _, p := range Default().All() {
		assert.NotEmpty(t, p.Categories, p.ID)
	}
}

func TestInternalPinsNotUsable(t *testing.T) {
	c := Default()
	usable := NewPinSetFrom(c.Usable())
	internal := 0
	for _, p := range c.All() {
		if p.Direction == DirectionInternal {
			internal++
			assert.False(t, usable.Has(p.ID), p.ID)
		}
	}
	assert.Equal(t, 6, internal)
	assert.True(t, usable.Has("GPIO34"))
	assert.False(t, usable.Has("3V3"))
	assert.False(t, usable.Has("EN"))
}

func TestInputOnlyPinsNotOutputCapable(t *testing.T) {
	c := Default()
	out := NewPinSetFrom(c.OutputCapable())
	for _, p := range c.All() {
		if p.Direction == DirectionInputOnly {
			assert.False(t, out.Has(p.ID), p.ID)
		}
		if p.Direction == DirectionInternal {
			assert.False(t, out.Has(p.ID), p.ID)
		}
	}
	assert.True(t, out.Has("GPIO21"))
}

func TestVisiblePins(t *testing.T) {
	c := Default()

	all := c.VisiblePins(NewCategorySet())
	assert.Len(t, all, c.Len())

	i2c := c.VisiblePins(NewCategorySet(CategoryI2C))
	assert.Equal(t, PinSet{"GPIO21": {}, "GPIO22": {}}, i2c)

	both := c.VisiblePins(NewCategorySet(CategoryI2C, CategoryPower))
	assert.Len(t, both, 7)
	assert.True(t, both.Has("VIN"))
}

func TestEnableIsOtherOnly(t *testing.T) {
	en, err := Default().Lookup("EN")
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryOther}, en.Categories)
	assert.Equal(t, DirectionInputOnly, en.Direction)
	assert.False(t, en.IsOutputCapable())
}

func TestFilterByCategoryKeepsCatalogOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"GPIO21", "GPIO22"}, IDs(c.FilterByCategory(CategoryI2C)))
	assert.Equal(t, []string{"GPIO34", "GPIO35", "GPIO36", "GPIO39"}, IDs(c.FilterByCategory(CategoryInputOnly)))
	assert.Empty(t, c.FilterByCategory(Category("uart")))
}

func TestBootNotes(t *testing.T) {
	c := Default()

	gpio0, err := c.Lookup("GPIO0")
	require.NoError(t, err)
	assert.Contains(t, gpio0.BootNote, "HIGH during boot")

	gpio6, err := c.Lookup("GPIO6")
	require.NoError(t, err)
	assert.True(t, gpio6.IsInternal())
	assert.Equal(t, "Internal (do not use)", gpio6.Direction.String())
	assert.Contains(t, gpio6.BootNote, "Do not use")
}

func TestPrimaryCategory(t *testing.T) {
	c := Default()
	cases := map[string]Category{
		"GPIO21": CategoryI2C,
		"GPIO32": CategoryADC,
		"GPIO18": CategorySPI,
		"GPIO16": CategoryPWM,
		"GND1":   CategoryPower,
		"GPIO6":  CategoryOther,
	}
	for id, want := range cases {
		p, err := c.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, want, PrimaryCategory(p), id)
	}
}

func TestCategoriesInLegendOrder(t *testing.T) {
	assert.Equal(t, AllCategories(), Default().Categories())
}

func TestLoadRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"duplicate id": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: left, position: {x: 1, y: 1}, direction: power, categories: [power]}
  - {id: A, side: left, position: {x: 2, y: 2}, direction: power, categories: [power]}
`,
		"no category": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: left, position: {x: 1, y: 1}, direction: power}
`,
		"unknown category": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: left, position: {x: 1, y: 1}, direction: power, categories: [uart]}
`,
		"unknown direction": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: left, position: {x: 1, y: 1}, direction: output, categories: [power]}
`,
		"outside board": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: left, position: {x: 11, y: 1}, direction: power, categories: [power]}
`,
		"unknown field": `
viewBox: {width: 10, height: 10}
pins:
  - {id: A, colour: red, side: left, position: {x: 1, y: 1}, direction: power, categories: [power]}
`,
		"empty": `viewBox: {width: 10, height: 10}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaultsLabelToID(t *testing.T) {
	c, err := Load(strings.NewReader(`
viewBox: {width: 10, height: 10}
pins:
  - {id: A, side: right, position: {x: 1, y: 1}, direction: input-only, categories: [input-only]}
`))
	require.NoError(t, err)
	p, err := c.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Label)
	assert.Equal(t, SideRight, p.Side)
	assert.Equal(t, DirectionInputOnly, p.Direction)
}
