package mainwindow

import (
	"testing"

	"know-your-pins/internal/app"
	"know-your-pins/internal/assets"
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) *MainWindow {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(func() { test.NewApp() })

	board, err := assets.DevKitBoard()
	require.NoError(t, err)
	mw := New(a, app.NewState(pinout.Default()), board, style.Default())
	t.Cleanup(mw.Close)
	return mw
}

func TestInitialState(t *testing.T) {
	mw := newTestWindow(t)

	assert.Equal(t, "ESP32 DevKit V1 - 38 Pin Pinout Reference", mw.Title())
	assert.True(t, mw.backBtn.Disabled())
	assert.True(t, mw.forwardBtn.Disabled())
	assert.True(t, mw.backItem.Disabled)
	assert.Empty(t, mw.detail.Heading())
}

func TestPinClickShowsDetail(t *testing.T) {
	mw := newTestWindow(t)

	pw, ok := mw.diagram.Pin("GPIO21")
	require.True(t, ok)
	test.Tap(pw)

	assert.Equal(t, "GPIO21", mw.detail.Heading())
	assert.True(t, pw.Selected())
	assert.Equal(t, "GPIO21: Input/Output", mw.statusBar.Text)
	// A single entry has nothing to go back to.
	assert.True(t, mw.backBtn.Disabled())

	mw.diagram.TapPin("GPIO22")
	assert.False(t, pw.Selected())
	assert.False(t, mw.backBtn.Disabled())
	assert.False(t, mw.backItem.Disabled)
}

func TestBackAndForwardButtons(t *testing.T) {
	mw := newTestWindow(t)

	mw.diagram.TapPin("GPIO21")
	mw.diagram.TapPin("GPIO22")

	test.Tap(mw.backBtn)
	assert.Equal(t, "GPIO21", mw.detail.Heading())
	assert.True(t, mw.backBtn.Disabled())
	assert.False(t, mw.forwardBtn.Disabled())

	test.Tap(mw.forwardBtn)
	assert.Equal(t, "GPIO22", mw.detail.Heading())
	assert.True(t, mw.forwardBtn.Disabled())
}

func TestGoMenuNavigates(t *testing.T) {
	mw := newTestWindow(t)

	assert.Equal(t, backShortcut, mw.backItem.Shortcut)
	assert.Equal(t, forwardShortcut, mw.forwardItem.Shortcut)
	assert.NotEqual(t, backShortcut.ShortcutName(), forwardShortcut.ShortcutName())

	mw.diagram.TapPin("GPIO21")
	mw.diagram.TapPin("GPIO22")

	mw.backItem.Action()
	assert.Equal(t, "GPIO21", mw.detail.Heading())
	mw.forwardItem.Action()
	assert.Equal(t, "GPIO22", mw.detail.Heading())
}

func TestCategoryViewHighlightsPins(t *testing.T) {
	mw := newTestWindow(t)

	mw.diagram.TapPin("GPIO4")
	require.NoError(t, mw.state.ShowCategory(pinout.CategoryI2C))

	assert.Equal(t, "I2C Pins (2 pins)", mw.detail.Heading())
	sda, _ := mw.diagram.Pin("GPIO21")
	scl, _ := mw.diagram.Pin("GPIO22")
	gpio4, _ := mw.diagram.Pin("GPIO4")
	assert.True(t, sda.Highlighted())
	assert.True(t, scl.Highlighted())
	assert.False(t, gpio4.Selected())

	// Clicking the board away from a pin drops the markers.
	test.Tap(mw.diagram)
	assert.False(t, sda.Highlighted())
	assert.Equal(t, "I2C Pins (2 pins)", mw.detail.Heading())

	test.Tap(mw.backBtn)
	assert.Equal(t, "GPIO4", mw.detail.Heading())
}

func TestFiltersDimDiagram(t *testing.T) {
	mw := newTestWindow(t)

	mw.state.SetFilter(pinout.CategoryPower, true)
	vin, _ := mw.diagram.Pin("VIN")
	gpio4, _ := mw.diagram.Pin("GPIO4")
	assert.False(t, vin.Dimmed())
	assert.True(t, gpio4.Dimmed())
	assert.Equal(t, "5 of 38 pins shown", mw.statusBar.Text)

	mw.state.ClearFilters()
	assert.False(t, gpio4.Dimmed())
}

func TestUnknownPinLeavesView(t *testing.T) {
	mw := newTestWindow(t)

	mw.diagram.TapPin("GPIO21")
	mw.onPinTapped("GPIO99")
	assert.Equal(t, "GPIO21", mw.detail.Heading())
	assert.Contains(t, mw.statusBar.Text, "pin not found")
}
