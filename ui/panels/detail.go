// Package panels provides the detail and legend panels beside the board diagram.
package panels

import (
	"fmt"

	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Placeholder is shown before anything has been selected.
const Placeholder = "Click on a pin to view information..."

type detailMode int

const (
	modePlaceholder detailMode = iota
	modePin
	modeCategory
)

// DetailPanel shows either one pin or the member list of a category.
type DetailPanel struct {
	styles *style.Stylesheet

	box    *fyne.Container
	scroll *container.Scroll

	mode    detailMode
	heading string

	// Buttons of the category view, one per member pin
	pinButtons []*widget.Button

	onPinTapped func(id string)
}

// NewDetailPanel creates the panel. onPinTapped runs when a pin in a
// category list is clicked.
func NewDetailPanel(styles *style.Stylesheet, onPinTapped func(id string)) *DetailPanel {
	p := &DetailPanel{
		styles:      styles,
		box:         container.NewVBox(),
		onPinTapped: onPinTapped,
	}
	p.scroll = container.NewVScroll(p.box)
	p.ShowPlaceholder()
	return p
}

// Container returns the panel's root object.
func (p *DetailPanel) Container() fyne.CanvasObject {
	return p.scroll
}

// Heading returns the heading currently displayed.
func (p *DetailPanel) Heading() string {
	return p.heading
}

// ShowPlaceholder resets the panel to its initial prompt.
func (p *DetailPanel) ShowPlaceholder() {
	p.mode = modePlaceholder
	p.heading = ""
	p.pinButtons = nil
	hint := widget.NewLabel(Placeholder)
	hint.Wrapping = fyne.TextWrapWord
	p.set(hint)
}

// ShowPin renders the label, type, functions and boot note of a pin.
func (p *DetailPanel) ShowPin(pin pinout.Pin) {
	p.mode = modePin
	p.heading = pin.Label
	p.pinButtons = nil

	objects := []fyne.CanvasObject{
		p.title(pin.Label),
		widget.NewSeparator(),
		container.NewHBox(boldLabel("Type:"), NewTag(pin.Direction.String(), p.styles.TypeTag.NRGBA)),
	}

	if len(pin.Functions) > 0 {
		tags := make([]fyne.CanvasObject, len(pin.Functions))
		for i, fn := range pin.Functions {
			tags[i] = NewTag(fn, p.styles.TagColor(i))
		}
		objects = append(objects, boldLabel("Functions:"), container.NewGridWithColumns(2, tags...))
	}

	if pin.BootNote != "" {
		warn := widget.RichTextStyle{
			ColorName: theme.ColorNameWarning,
			TextStyle: fyne.TextStyle{Bold: true},
		}
		note := widget.NewRichText(&widget.TextSegment{Text: "⚠ Note: " + pin.BootNote, Style: warn})
		note.Wrapping = fyne.TextWrapWord
		objects = append(objects, widget.NewSeparator(), note)
	}

	p.set(objects...)
}

// ShowCategory lists the pins of a category as buttons.
func (p *DetailPanel) ShowCategory(cat pinout.Category, pins []pinout.Pin) {
	p.mode = modeCategory
	p.heading = fmt.Sprintf("%s (%d pins)", cat.Label(), len(pins))
	p.pinButtons = make([]*widget.Button, len(pins))

	objects := []fyne.CanvasObject{
		p.title(p.heading),
		widget.NewSeparator(),
		boldLabel("Pins in this category:"),
	}
	for i, pin := range pins {
		id := pin.ID
		btn := widget.NewButton(pin.Label, func() {
			if p.onPinTapped != nil {
				p.onPinTapped(id)
			}
		})
		p.pinButtons[i] = btn
		objects = append(objects, btn)
	}
	p.set(objects...)
}

func (p *DetailPanel) set(objects ...fyne.CanvasObject) {
	p.box.Objects = objects
	p.box.Refresh()
	p.scroll.ScrollToTop()
}

func (p *DetailPanel) title(text string) fyne.CanvasObject {
	t := canvas.NewText(text, p.styles.Title.NRGBA)
	t.TextSize = theme.TextHeadingSize()
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
