package app

import (
	"image/color"

	"know-your-pins/internal/style"
	"know-your-pins/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PinoutTheme provides the application theme, coloured from the stylesheet.
type PinoutTheme struct {
	Styles *style.Stylesheet
}

var _ fyne.Theme = (*PinoutTheme)(nil)

// NewPinoutTheme creates a theme for the given stylesheet.
func NewPinoutTheme(styles *style.Stylesheet) *PinoutTheme {
	return &PinoutTheme{Styles: styles}
}

func (t *PinoutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.Styles.Primary.NRGBA
	case theme.ColorNameFocus:
		return colorutil.WithAlpha(t.Styles.Primary.NRGBA, 0x80)
	case theme.ColorNameHover:
		return colorutil.WithAlpha(t.Styles.Primary.NRGBA, 0x30)
	case theme.ColorNameWarning:
		return t.Styles.Note.NRGBA
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *PinoutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PinoutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PinoutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	default:
		return theme.DefaultTheme().Size(name)
	}
}
