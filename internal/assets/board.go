// Package assets provides the board illustration and the application icon.
package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"know-your-pins/pkg/geometry"

	"fyne.io/fyne/v2"
	"github.com/srwiley/oksvg"
)

//go:embed esp32_38_pinout.svg
var devkitBoard []byte

// BoardName is the resource name of the embedded board illustration.
const BoardName = "esp32_38_pinout.svg"

// Board is a parsed board illustration.
type Board struct {
	Resource fyne.Resource
	ViewBox  geometry.Size
}

// LoadBoard parses an SVG board illustration and reads its coordinate space.
func LoadBoard(name string, data []byte) (*Board, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse board %s: %w", name, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("board %s: %w", name, errNoViewBox)
	}
	return &Board{
		Resource: fyne.NewStaticResource(name, data),
		ViewBox:  geometry.NewSize(icon.ViewBox.W, icon.ViewBox.H),
	}, nil
}

var errNoViewBox = errors.New("missing or empty viewBox")

// DevKitBoard returns the embedded ESP32 DevKit V1 illustration.
func DevKitBoard() (*Board, error) {
	return LoadBoard(BoardName, devkitBoard)
}

// CheckAligned reports an error if pin positions given in the space
// viewBox cannot be drawn on this board.
func (b *Board) CheckAligned(viewBox geometry.Size) error {
	if b.ViewBox != viewBox {
		return fmt.Errorf("pin positions use a %.0fx%.0f space but the board is %.0fx%.0f",
			viewBox.Width, viewBox.Height, b.ViewBox.Width, b.ViewBox.Height)
	}
	return nil
}
