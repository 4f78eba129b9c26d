package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"fyne.io/fyne/v2"
	"golang.org/x/image/vector"
)

// Icon colours, drawn on a 64 unit grid.
var (
	chipBody  = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	chipNotch = color.NRGBA{R: 0xEC, G: 0xF0, B: 0xF1, A: 0xFF}
	chipPin   = color.NRGBA{R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF}
	chipTrace = color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
)

// ChipIcon renders a microchip icon of size x size pixels.
func ChipIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	u := float32(size) / 64

	fill := func(c color.NRGBA, path func(z *vector.Rasterizer)) {
		z := vector.NewRasterizer(size, size)
		path(z)
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	// Body with rounded corners
	fill(chipBody, func(z *vector.Rasterizer) {
		roundedRect(z, 12*u, 12*u, 40*u, 40*u, 4*u)
	})

	// Orientation notch, top-left
	fill(chipNotch, func(z *vector.Rasterizer) {
		circle(z, 19*u, 19*u, 4*u)
	})

	// Six legs per side
	fill(chipPin, func(z *vector.Rasterizer) {
		for i := 0; i < 6; i++ {
			y := float32(16+i*7) * u
			rect(z, 8*u, y, 4*u, 5*u)
			rect(z, 52*u, y, 4*u, 5*u)
		}
	})

	// Decorative traces
	fill(chipTrace, func(z *vector.Rasterizer) {
		for _, y := range []float32{25, 32, 39} {
			rect(z, 20*u, y*u, 24*u, float32(math.Max(1, float64(u))))
		}
	})

	return img
}

// IconResource returns the application icon as a PNG resource.
func IconResource(size int) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, ChipIcon(size)); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return fyne.NewStaticResource(fmt.Sprintf("know-your-pins-%d.png", size), buf.Bytes()), nil
}

func rect(z *vector.Rasterizer, x, y, w, h float32) {
	z.MoveTo(x, y)
	z.LineTo(x+w, y)
	z.LineTo(x+w, y+h)
	z.LineTo(x, y+h)
	z.ClosePath()
}

func roundedRect(z *vector.Rasterizer, x, y, w, h, r float32) {
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.QuadTo(x+w, y, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.QuadTo(x+w, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.QuadTo(x, y+h, x, y+h-r)
	z.LineTo(x, y+r)
	z.QuadTo(x, y, x+r, y)
	z.ClosePath()
}

// circle approximates a circle with four cubic Béziers.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522847
	c := k * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	z.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	z.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	z.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	z.ClosePath()
}
