package panels

import (
	"image/color"

	"know-your-pins/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Tag is a pill-shaped coloured label.
type Tag struct {
	widget.BaseWidget

	Text  string
	Color color.NRGBA
}

// NewTag creates a tag with white text on the given colour.
func NewTag(text string, c color.NRGBA) *Tag {
	t := &Tag{Text: text, Color: c}
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget.
func (t *Tag) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(t.Color)
	text := canvas.NewText(t.Text, colorutil.White)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter
	return &tagRenderer{tag: t, bg: bg, text: text}
}

type tagRenderer struct {
	tag  *Tag
	bg   *canvas.Rectangle
	text *canvas.Text
}

func (r *tagRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.CornerRadius = size.Height / 2
	ts := r.text.MinSize()
	r.text.Resize(fyne.NewSize(size.Width, ts.Height))
	r.text.Move(fyne.NewPos(0, (size.Height-ts.Height)/2))
}

func (r *tagRenderer) MinSize() fyne.Size {
	pad := theme.InnerPadding()
	ts := r.text.MinSize()
	return fyne.NewSize(ts.Width+pad*2, ts.Height+pad/2)
}

func (r *tagRenderer) Refresh() {
	r.bg.FillColor = r.tag.Color
	r.text.Text = r.tag.Text
	r.bg.Refresh()
	r.text.Refresh()
}

func (r *tagRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *tagRenderer) Destroy() {}
