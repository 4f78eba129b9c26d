package panels

import (
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 16

// LegendPanel maps categories to colours. Each row can list the category's
// pins or toggle it as a diagram filter.
type LegendPanel struct {
	styles *style.Stylesheet

	content *fyne.Container
	rows    map[pinout.Category]*legendRow
	clear   *widget.Button

	// Set while checks are updated from state, so callbacks don't echo back
	syncing bool

	onShowCategory  func(cat pinout.Category)
	onFilterChanged func(cat pinout.Category, on bool)
	onClearFilters  func()
}

type legendRow struct {
	swatch *canvas.Rectangle
	show   *widget.Button
	filter *widget.Check
}

// NewLegendPanel creates a row for every category in legend order.
func NewLegendPanel(styles *style.Stylesheet, categories []pinout.Category) *LegendPanel {
	l := &LegendPanel{
		styles: styles,
		rows:   make(map[pinout.Category]*legendRow, len(categories)),
	}

	title := canvas.NewText("Pin Categories", styles.Title.NRGBA)
	title.TextStyle = fyne.TextStyle{Bold: true}
	objects := []fyne.CanvasObject{title, widget.NewSeparator()}

	for _, cat := range categories {
		row := &legendRow{}

		row.swatch = canvas.NewRectangle(styles.CategoryColor(cat))
		row.swatch.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
		row.swatch.CornerRadius = 3

		row.show = widget.NewButton(cat.Label(), func() {
			if l.onShowCategory != nil {
				l.onShowCategory(cat)
			}
		})
		row.show.Alignment = widget.ButtonAlignLeading
		row.show.Importance = widget.LowImportance

		row.filter = widget.NewCheck("", func(on bool) {
			if l.syncing || l.onFilterChanged == nil {
				return
			}
			l.onFilterChanged(cat, on)
		})

		l.rows[cat] = row
		objects = append(objects, container.NewBorder(nil, nil,
			container.NewCenter(row.swatch), row.filter, row.show))
	}

	l.clear = widget.NewButton("Clear Filters", func() {
		if l.onClearFilters != nil {
			l.onClearFilters()
		}
	})
	l.clear.Disable()
	objects = append(objects, widget.NewSeparator(), l.clear)

	l.content = container.NewVBox(objects...)
	return l
}

// Container returns the panel's root object.
func (l *LegendPanel) Container() fyne.CanvasObject {
	return l.content
}

// OnShowCategory sets the handler for a category's show button.
func (l *LegendPanel) OnShowCategory(f func(cat pinout.Category)) {
	l.onShowCategory = f
}

// OnFilterChanged sets the handler for a category's filter toggle.
func (l *LegendPanel) OnFilterChanged(f func(cat pinout.Category, on bool)) {
	l.onFilterChanged = f
}

// OnClearFilters sets the handler for the clear button.
func (l *LegendPanel) OnClearFilters(f func()) {
	l.onClearFilters = f
}

// SetFilters updates the toggles to match active without firing callbacks.
func (l *LegendPanel) SetFilters(active pinout.CategorySet) {
	l.syncing = true
	defer func() { l.syncing = false }()

	for cat, row := range l.rows {
		row.filter.SetChecked(active.Has(cat))
	}
	if len(active) == 0 {
		l.clear.Disable()
	} else {
		l.clear.Enable()
	}
}
