package assets

import (
	"bytes"
	"image/png"
	"testing"

	"know-your-pins/internal/pinout"
	"know-your-pins/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevKitBoardMatchesCatalog(t *testing.T) {
	b, err := DevKitBoard()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewSize(300, 611), b.ViewBox)
	assert.Equal(t, BoardName, b.Resource.Name())
	assert.NoError(t, b.CheckAligned(pinout.Default().ViewBox()))
}

func TestLoadBoardRejects(t *testing.T) {
	_, err := LoadBoard("broken.svg", []byte("<svg"))
	assert.Error(t, err)

	_, err = LoadBoard("flat.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`))
	assert.Error(t, err)
}

func TestCheckAligned(t *testing.T) {
	b := &Board{ViewBox: geometry.NewSize(300, 611)}
	assert.NoError(t, b.CheckAligned(geometry.NewSize(300, 611)))
	assert.Error(t, b.CheckAligned(geometry.NewSize(320, 611)))
}

func TestChipIcon(t *testing.T) {
	img := ChipIcon(64)
	assert.Equal(t, 64, img.Bounds().Dx())

	// Corner is transparent, body centre is filled.
	assert.Zero(t, img.NRGBAAt(1, 1).A)
	centre := img.NRGBAAt(30, 46)
	assert.Equal(t, chipBody, centre)

	// A leg on the left side.
	assert.Equal(t, chipPin, img.NRGBAAt(10, 18))
}

func TestIconResource(t *testing.T) {
	res, err := IconResource(128)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(res.Content()))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
