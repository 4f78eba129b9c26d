package diagram

import (
	"image/color"

	"know-your-pins/internal/layout"
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"
	"know-your-pins/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	arrowLeft   = "►"
	arrowRight  = "◄"
	borderWidth = 2
)

// PinWidget is a transparent clickable area laid over one header pad.
type PinWidget struct {
	widget.BaseWidget

	Pin pinout.Pin

	styles *style.Stylesheet
	onTap  func()

	hovered     bool
	selected    bool
	highlighted bool // Member of the category shown in the detail panel
	dimmed      bool // Hidden by the legend filters
}

var (
	_ fyne.Tappable     = (*PinWidget)(nil)
	_ desktop.Hoverable = (*PinWidget)(nil)
)

// NewPinWidget creates the clickable area for a pin.
func NewPinWidget(pin pinout.Pin, styles *style.Stylesheet, onTap func()) *PinWidget {
	w := &PinWidget{Pin: pin, styles: styles, onTap: onTap}
	w.ExtendBaseWidget(w)
	return w
}

// Tapped implements fyne.Tappable.
func (w *PinWidget) Tapped(*fyne.PointEvent) {
	if w.onTap != nil {
		w.onTap()
	}
}

// MouseIn implements desktop.Hoverable.
func (w *PinWidget) MouseIn(*desktop.MouseEvent) {
	w.hovered = true
	w.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (w *PinWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (w *PinWidget) MouseOut() {
	w.hovered = false
	w.Refresh()
}

// Cursor shows a pointer over pins.
func (w *PinWidget) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// SetSelected marks the pin as the one shown in the detail panel.
func (w *PinWidget) SetSelected(on bool) {
	if w.selected == on {
		return
	}
	w.selected = on
	w.Refresh()
}

// SetHighlighted draws the category marker arrow next to the pin.
func (w *PinWidget) SetHighlighted(on bool) {
	if w.highlighted == on {
		return
	}
	w.highlighted = on
	w.Refresh()
}

// SetDimmed fades the pin out when the legend filters hide it.
func (w *PinWidget) SetDimmed(on bool) {
	if w.dimmed == on {
		return
	}
	w.dimmed = on
	w.Refresh()
}

// Selected reports whether the pin is selected.
func (w *PinWidget) Selected() bool { return w.selected }

// Highlighted reports whether the pin carries a category marker.
func (w *PinWidget) Highlighted() bool { return w.highlighted }

// Dimmed reports whether the pin is filtered out.
func (w *PinWidget) Dimmed() bool { return w.dimmed }

// Hovered reports whether the pointer is over the pin.
func (w *PinWidget) Hovered() bool { return w.hovered }

func (w *PinWidget) fillColor() color.Color {
	switch {
	case w.dimmed:
		return colorutil.WithAlpha(colorutil.White, 0xFF-w.styles.DimAlpha)
	case w.hovered || w.highlighted:
		return w.styles.HoverColor(pinout.PrimaryCategory(w.Pin))
	default:
		return colorutil.Transparent
	}
}

func (w *PinWidget) strokeColor() color.Color {
	switch {
	case w.selected:
		return w.styles.Selection.NRGBA
	case w.highlighted:
		return w.styles.HighlightBorder.NRGBA
	default:
		return colorutil.Transparent
	}
}

func (w *PinWidget) arrowText() string {
	if !w.highlighted {
		return ""
	}
	if w.Pin.Side == pinout.SideRight {
		return arrowRight
	}
	return arrowLeft
}

// CreateRenderer implements fyne.Widget.
func (w *PinWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &pinRenderer{
		w:     w,
		rect:  canvas.NewRectangle(colorutil.Transparent),
		arrow: canvas.NewText("", w.styles.HighlightBorder.NRGBA),
	}
	r.arrow.TextStyle = fyne.TextStyle{Bold: true}
	r.Refresh()
	return r
}

type pinRenderer struct {
	w     *PinWidget
	rect  *canvas.Rectangle
	arrow *canvas.Text
}

// Layout places the arrow outside the pad, pointing at it from the board edge.
func (r *pinRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
	r.rect.CornerRadius = size.Height / 4

	r.arrow.TextSize = size.Height * 0.8
	arrowSize := r.arrow.MinSize()
	r.arrow.Resize(arrowSize)
	y := (size.Height - arrowSize.Height) / 2
	if r.w.Pin.Side == pinout.SideRight {
		r.arrow.Move(fyne.NewPos(size.Width+2, y))
	} else {
		r.arrow.Move(fyne.NewPos(-arrowSize.Width-2, y))
	}
}

func (r *pinRenderer) MinSize() fyne.Size {
	return fyne.NewSize(layout.PinButtonWidth, layout.PinButtonHeight)
}

func (r *pinRenderer) Refresh() {
	r.rect.FillColor = r.w.fillColor()
	r.rect.StrokeColor = r.w.strokeColor()
	r.rect.StrokeWidth = 0
	if r.w.selected || r.w.highlighted {
		r.rect.StrokeWidth = borderWidth
	}
	r.arrow.Text = r.w.arrowText()
	r.arrow.Color = r.w.styles.HighlightBorder.NRGBA
	r.Layout(r.w.Size())
	r.rect.Refresh()
	r.arrow.Refresh()
}

func (r *pinRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect, r.arrow}
}

func (r *pinRenderer) Destroy() {}
