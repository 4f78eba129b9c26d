// Package diagram draws the board illustration with a clickable widget over every pin.
package diagram

import (
	"log"

	"know-your-pins/internal/assets"
	"know-your-pins/internal/layout"
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"
	"know-your-pins/pkg/geometry"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Distance from a pad centre to its silkscreen text, in board units.
const silkscreenInset = 13

// BoardDiagram shows the board illustration with pin widgets laid over it.
type BoardDiagram struct {
	widget.BaseWidget

	board  *assets.Board
	styles *style.Stylesheet

	image  *canvas.Image
	pins   []*PinWidget // Catalog order
	byID   map[string]*PinWidget
	labels []*canvas.Text

	// Click handlers keyed by pin id
	dispatch map[string]func()

	transform geometry.AffineTransform

	// Callbacks
	onPinTapped        func(id string)
	onBackgroundTapped func()
}

var _ fyne.Tappable = (*BoardDiagram)(nil)

// NewBoardDiagram creates the diagram for every pin of the catalog.
func NewBoardDiagram(catalog *pinout.Catalog, board *assets.Board, styles *style.Stylesheet) *BoardDiagram {
	d := &BoardDiagram{
		board:     board,
		styles:    styles,
		byID:      make(map[string]*PinWidget, catalog.Len()),
		dispatch:  make(map[string]func(), catalog.Len()),
		transform: geometry.Identity(),
	}

	d.image = canvas.NewImageFromResource(board.Resource)
	d.image.FillMode = canvas.ImageFillContain

	for _, pin := range catalog.All() {
		id := pin.ID
		d.dispatch[id] = func() {
			if d.onPinTapped != nil {
				d.onPinTapped(id)
			}
		}
		pw := NewPinWidget(pin, styles, d.dispatch[id])
		d.pins = append(d.pins, pw)
		d.byID[id] = pw

		if pin.Silkscreen != "" {
			text := canvas.NewText(pin.Silkscreen, styles.Title.NRGBA)
			text.TextStyle = fyne.TextStyle{Bold: true}
			if pin.Side == pinout.SideRight {
				text.Alignment = fyne.TextAlignTrailing
			}
			d.labels = append(d.labels, text)
		} else {
			d.labels = append(d.labels, nil)
		}
	}

	d.ExtendBaseWidget(d)
	return d
}

// OnPinTapped sets the handler run when a pin is clicked.
func (d *BoardDiagram) OnPinTapped(f func(id string)) {
	d.onPinTapped = f
}

// OnBackgroundTapped sets the handler run when the board is clicked away from any pin.
func (d *BoardDiagram) OnBackgroundTapped(f func()) {
	d.onBackgroundTapped = f
}

// Tapped implements fyne.Tappable for clicks that miss every pin.
func (d *BoardDiagram) Tapped(*fyne.PointEvent) {
	if d.onBackgroundTapped != nil {
		d.onBackgroundTapped()
	}
}

// TapPin runs the click handler registered for id.
func (d *BoardDiagram) TapPin(id string) bool {
	f, ok := d.dispatch[id]
	if !ok {
		log.Printf("diagram: no widget for pin %q", id)
		return false
	}
	f()
	return true
}

// Pin returns the widget drawn over the pin with the given id.
func (d *BoardDiagram) Pin(id string) (*PinWidget, bool) {
	pw, ok := d.byID[id]
	return pw, ok
}

// SetSelected marks id as the selected pin and clears every other selection.
// An empty id clears the selection.
func (d *BoardDiagram) SetSelected(id string) {
	for _, pw := range d.pins {
		pw.SetSelected(pw.Pin.ID == id)
	}
}

// SetHighlighted draws category markers on the given pins only.
func (d *BoardDiagram) SetHighlighted(ids pinout.PinSet) {
	for _, pw := range d.pins {
		pw.SetHighlighted(ids.Has(pw.Pin.ID))
	}
}

// SetVisible dims every pin not in ids.
func (d *BoardDiagram) SetVisible(ids pinout.PinSet) {
	for _, pw := range d.pins {
		pw.SetDimmed(!ids.Has(pw.Pin.ID))
	}
}

// Transform returns the current board-to-widget transform.
func (d *BoardDiagram) Transform() geometry.AffineTransform {
	return d.transform
}

// MinSize is the board drawn at its default width.
func (d *BoardDiagram) MinSize() fyne.Size {
	s := layout.ImageSize(d.board.ViewBox)
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// CreateRenderer implements fyne.Widget.
func (d *BoardDiagram) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{d.image}
	for _, t := range d.labels {
		if t != nil {
			objects = append(objects, t)
		}
	}
	for _, pw := range d.pins {
		objects = append(objects, pw)
	}
	return &boardRenderer{d: d, objects: objects}
}

type boardRenderer struct {
	d       *BoardDiagram
	objects []fyne.CanvasObject
}

// Layout fits the board into size and places every pin over its pad.
func (r *boardRenderer) Layout(size fyne.Size) {
	d := r.d
	area := layout.ContainRect(geometry.NewSize(float64(size.Width), float64(size.Height)), d.board.ViewBox)
	d.image.Move(fyne.NewPos(float32(area.X), float32(area.Y)))
	d.image.Resize(fyne.NewSize(float32(area.Width), float32(area.Height)))

	tr, err := layout.FitViewBox(d.board.ViewBox, area)
	if err != nil {
		log.Printf("diagram: %v", err)
		return
	}
	d.transform = tr

	scale := float32(tr.ScaleX())
	pinSize := fyne.NewSize(layout.PinButtonWidth*scale, layout.PinButtonHeight*scale)
	for i, pw := range d.pins {
		c := tr.Apply(pw.Pin.Position)
		pw.Resize(pinSize)
		pw.Move(fyne.NewPos(float32(c.X)-pinSize.Width/2, float32(c.Y)-pinSize.Height/2))

		if text := d.labels[i]; text != nil {
			text.TextSize = 9 * scale
			ts := text.MinSize()
			text.Resize(ts)
			y := float32(c.Y) - ts.Height/2
			if pw.Pin.Side == pinout.SideRight {
				text.Move(fyne.NewPos(float32(c.X)-silkscreenInset*scale-ts.Width, y))
			} else {
				text.Move(fyne.NewPos(float32(c.X)+silkscreenInset*scale, y))
			}
		}
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	return r.d.MinSize()
}

func (r *boardRenderer) Refresh() {
	r.Layout(r.d.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}
