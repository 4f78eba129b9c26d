package panels

import (
	"testing"

	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*pinout.Catalog, *style.Stylesheet) {
	t.Helper()
	test.NewApp()
	t.Cleanup(func() { test.NewApp() })
	return pinout.Default(), style.Default()
}

func TestDetailPlaceholder(t *testing.T) {
	_, styles := setup(t)
	p := NewDetailPanel(styles, nil)

	assert.Equal(t, modePlaceholder, p.mode)
	require.Len(t, p.box.Objects, 1)
	label, ok := p.box.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, Placeholder, label.Text)
}

func TestDetailShowsPin(t *testing.T) {
	cat, styles := setup(t)
	p := NewDetailPanel(styles, nil)

	pin, err := cat.Lookup("GPIO0")
	require.NoError(t, err)
	p.ShowPin(pin)

	assert.Equal(t, modePin, p.mode)
	assert.Equal(t, pin.Label, p.Heading())

	var tags []string
	var note string
	for _, o := range p.box.Objects {
		switch w := o.(type) {
		case *fyne.Container:
			for _, c := range w.Objects {
				if tag, ok := c.(*Tag); ok {
					tags = append(tags, tag.Text)
				}
			}
		case *widget.RichText:
			note = w.String()
		}
	}
	assert.Contains(t, tags, "Input/Output")
	for _, fn := range pin.Functions {
		assert.Contains(t, tags, fn)
	}
	assert.Contains(t, note, "Note: ")
	assert.Contains(t, note, pin.BootNote)
}

func TestDetailPinWithoutNote(t *testing.T) {
	cat, styles := setup(t)
	p := NewDetailPanel(styles, nil)

	pin, err := cat.Lookup("GPIO21")
	require.NoError(t, err)
	require.Empty(t, pin.BootNote)
	p.ShowPin(pin)

	for _, o := range p.box.Objects {
		_, isNote := o.(*widget.RichText)
		assert.False(t, isNote)
	}
}

func TestDetailShowsCategory(t *testing.T) {
	cat, styles := setup(t)
	var tapped []string
	p := NewDetailPanel(styles, func(id string) { tapped = append(tapped, id) })

	pins := cat.FilterByCategory(pinout.CategoryI2C)
	p.ShowCategory(pinout.CategoryI2C, pins)

	assert.Equal(t, modeCategory, p.mode)
	assert.Equal(t, "I2C Pins (2 pins)", p.Heading())
	require.Len(t, p.pinButtons, 2)

	test.Tap(p.pinButtons[1])
	assert.Equal(t, []string{pins[1].ID}, tapped)

	p.ShowPlaceholder()
	assert.Empty(t, p.Heading())
	assert.Nil(t, p.pinButtons)
}

func TestLegendRows(t *testing.T) {
	cat, styles := setup(t)
	l := NewLegendPanel(styles, cat.Categories())

	require.Len(t, l.rows, len(pinout.AllCategories()))
	row := l.rows[pinout.CategoryPower]
	assert.Equal(t, "Power Pins", row.show.Text)
	assert.Equal(t, styles.CategoryColor(pinout.CategoryPower), row.swatch.FillColor)
}

func TestLegendCallbacks(t *testing.T) {
	cat, styles := setup(t)
	l := NewLegendPanel(styles, cat.Categories())

	var shown []pinout.Category
	type toggle struct {
		cat pinout.Category
		on  bool
	}
	var toggles []toggle
	cleared := 0
	l.OnShowCategory(func(c pinout.Category) { shown = append(shown, c) })
	l.OnFilterChanged(func(c pinout.Category, on bool) { toggles = append(toggles, toggle{c, on}) })
	l.OnClearFilters(func() { cleared++ })

	test.Tap(l.rows[pinout.CategoryADC].show)
	assert.Equal(t, []pinout.Category{pinout.CategoryADC}, shown)

	test.Tap(l.rows[pinout.CategorySPI].filter)
	assert.Equal(t, []toggle{{pinout.CategorySPI, true}}, toggles)

	assert.True(t, l.clear.Disabled())
	l.SetFilters(pinout.NewCategorySet(pinout.CategorySPI))
	assert.False(t, l.clear.Disabled())
	test.Tap(l.clear)
	assert.Equal(t, 1, cleared)
}

func TestLegendSyncDoesNotEcho(t *testing.T) {
	cat, styles := setup(t)
	l := NewLegendPanel(styles, cat.Categories())

	calls := 0
	l.OnFilterChanged(func(pinout.Category, bool) { calls++ })

	l.SetFilters(pinout.NewCategorySet(pinout.CategoryI2C, pinout.CategoryPWM))
	assert.True(t, l.rows[pinout.CategoryI2C].filter.Checked)
	assert.True(t, l.rows[pinout.CategoryPWM].filter.Checked)
	assert.False(t, l.rows[pinout.CategoryADC].filter.Checked)

	l.SetFilters(pinout.NewCategorySet())
	assert.False(t, l.rows[pinout.CategoryI2C].filter.Checked)
	assert.True(t, l.clear.Disabled())
	assert.Zero(t, calls)
}

func TestTagMinSizeFitsText(t *testing.T) {
	setup(t)
	short := NewTag("PWM", style.Default().TypeTag.NRGBA)
	long := NewTag("ADC2-CH0 Touch", style.Default().TypeTag.NRGBA)
	assert.Greater(t, long.MinSize().Width, short.MinSize().Width)
}
