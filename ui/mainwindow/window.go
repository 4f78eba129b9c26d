// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"know-your-pins/internal/app"
	"know-your-pins/internal/assets"
	"know-your-pins/internal/layout"
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"
	"know-your-pins/internal/version"
	"know-your-pins/ui/diagram"
	"know-your-pins/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	backLabel    = "◄ Back"
	forwardLabel = "Forward ►"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	state  *app.State
	styles *style.Stylesheet

	diagram   *diagram.BoardDiagram
	detail    *panels.DetailPanel
	legend    *panels.LegendPanel
	statusBar *widget.Label

	backBtn    *widget.Button
	forwardBtn *widget.Button

	// Menu items that follow the history state
	backItem    *fyne.MenuItem
	forwardItem *fyne.MenuItem
	mainMenu    *fyne.MainMenu
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, board *assets.Board, styles *style.Stylesheet) *MainWindow {
	win := fyneApp.NewWindow(state.Catalog.Title())

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		styles: styles,
	}

	mw.setupUI(board)
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.updateNav(app.NavState{})

	mw.Resize(fyne.NewSize(layout.WindowWidth, layout.WindowHeight))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI(board *assets.Board) {
	mw.diagram = diagram.NewBoardDiagram(mw.state.Catalog, board, mw.styles)
	mw.diagram.OnPinTapped(mw.onPinTapped)
	mw.diagram.OnBackgroundTapped(mw.state.ClearHighlights)

	mw.detail = panels.NewDetailPanel(mw.styles, mw.onPinTapped)

	mw.legend = panels.NewLegendPanel(mw.styles, mw.state.Catalog.Categories())
	mw.legend.OnShowCategory(func(cat pinout.Category) {
		_ = mw.state.ShowCategory(cat)
	})
	mw.legend.OnFilterChanged(mw.state.SetFilter)
	mw.legend.OnClearFilters(mw.state.ClearFilters)

	mw.statusBar = widget.NewLabel("Ready")

	title := canvas.NewText(mw.state.Catalog.Title(), mw.styles.Title.NRGBA)
	title.TextSize = theme.TextHeadingSize()
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	mw.backBtn = widget.NewButton(backLabel, mw.onBack)
	mw.forwardBtn = widget.NewButton(forwardLabel, mw.onForward)
	header := container.NewBorder(nil, nil, container.NewHBox(mw.backBtn, mw.forwardBtn), nil, title)

	detailBox := container.NewGridWrap(fyne.NewSize(layout.InfoBoxWidth, layout.InfoBoxHeight), mw.detail.Container())
	legendBox := container.NewGridWrap(fyne.NewSize(layout.LegendWidth, layout.LegendHeight), mw.legend.Container())

	body := container.NewBorder(
		nil,                            // top
		nil,                            // bottom
		container.NewCenter(detailBox), // left
		container.NewCenter(legendBox), // right
		mw.diagram,                     // center
	)

	content := container.NewBorder(
		container.NewPadded(header),       // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		body,                              // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.backItem = fyne.NewMenuItem("Back", mw.onBack)
	mw.backItem.Shortcut = backShortcut
	mw.forwardItem = fyne.NewMenuItem("Forward", mw.onForward)
	mw.forwardItem.Shortcut = forwardShortcut
	goMenu := fyne.NewMenu("Go", mw.backItem, mw.forwardItem)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Clear Filters", mw.state.ClearFilters),
		fyne.NewMenuItem("Clear Highlights", mw.state.ClearHighlights),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, goMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mw.mainMenu)
}

var (
	backShortcut    = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	forwardShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
)

// setupShortcuts binds the history keys on the window canvas.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().AddShortcut(backShortcut, func(fyne.Shortcut) { mw.onBack() })
	mw.Canvas().AddShortcut(forwardShortcut, func(fyne.Shortcut) { mw.onForward() })
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventPinSelected, func(data interface{}) {
		pin, ok := data.(pinout.Pin)
		if !ok {
			return
		}
		mw.detail.ShowPin(pin)
		mw.diagram.SetSelected(pin.ID)
		mw.updateStatus(fmt.Sprintf("%s: %s", pin.Label, pin.Direction))
	})

	mw.state.On(app.EventCategoryShown, func(data interface{}) {
		view, ok := data.(app.CategoryView)
		if !ok {
			return
		}
		mw.detail.ShowCategory(view.Category, view.Pins)
		mw.diagram.SetSelected("")
		mw.diagram.SetHighlighted(pinout.NewPinSetFrom(view.Pins))
		mw.updateStatus(fmt.Sprintf("Showing %s (%d pins)", view.Category.Label(), len(view.Pins)))
	})

	mw.state.On(app.EventHighlightCleared, func(data interface{}) {
		mw.diagram.SetHighlighted(nil)
	})

	mw.state.On(app.EventHistoryChanged, func(data interface{}) {
		if nav, ok := data.(app.NavState); ok {
			mw.updateNav(nav)
		}
	})

	mw.state.On(app.EventFiltersChanged, func(data interface{}) {
		visible, ok := data.(pinout.PinSet)
		if !ok {
			return
		}
		mw.diagram.SetVisible(visible)
		mw.legend.SetFilters(mw.state.ActiveFilters())
		mw.updateStatus(fmt.Sprintf("%d of %d pins shown", len(visible), mw.state.Catalog.Len()))
	})
}

// updateNav enables the back and forward controls to match history.
func (mw *MainWindow) updateNav(nav app.NavState) {
	setEnabled(mw.backBtn, nav.CanGoBack)
	setEnabled(mw.forwardBtn, nav.CanGoForward)
	mw.backItem.Disabled = !nav.CanGoBack
	mw.forwardItem.Disabled = !nav.CanGoForward
	mw.mainMenu.Refresh()
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// Action handlers

func (mw *MainWindow) onPinTapped(id string) {
	if err := mw.state.SelectPin(id); err != nil {
		mw.updateStatus(err.Error())
	}
}

func (mw *MainWindow) onBack() {
	mw.state.GoBack()
}

func (mw *MainWindow) onForward() {
	mw.state.GoForward()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Know Your Pins",
		fmt.Sprintf("Know Your Pins v%s\n\n"+
			"Interactive pinout reference for the %s.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, mw.state.Catalog.Board(), version.BuildTime, version.GitCommit),
		mw.Window)
}
