// Package layout holds window dimensions and maps board coordinates to the screen.
package layout

import (
	"fmt"

	"know-your-pins/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Window and panel dimensions in device-independent pixels.
const (
	WindowWidth  = 1500
	WindowHeight = 800

	ImageWidth = 300

	PinButtonWidth  = 36
	PinButtonHeight = 20

	InfoBoxWidth  = 280
	InfoBoxHeight = 450

	LegendWidth  = 200
	LegendHeight = 350

	TitleHeight = 60
)

// ImageSize returns the size the board is drawn at when the window is at its
// default size.
func ImageSize(viewBox geometry.Size) geometry.Size {
	return geometry.NewSize(ImageWidth, ImageWidth*viewBox.Aspect())
}

// ContainRect returns the largest rectangle with the aspect ratio of content
// that fits inside area, centred.
func ContainRect(area geometry.Size, content geometry.Size) geometry.Rect {
	if area.Width <= 0 || area.Height <= 0 || content.Width <= 0 || content.Height <= 0 {
		return geometry.Rect{}
	}
	scale := area.Width / content.Width
	if s := area.Height / content.Height; s < scale {
		scale = s
	}
	w, h := content.Width*scale, content.Height*scale
	return geometry.NewRect((area.Width-w)/2, (area.Height-h)/2, w, h)
}

// FitViewBox computes the transform that maps viewBox coordinates onto target.
func FitViewBox(viewBox geometry.Size, target geometry.Rect) (geometry.AffineTransform, error) {
	src := geometry.NewRect(0, 0, viewBox.Width, viewBox.Height).Corners()
	return fitAffine(src, target.Corners())
}

// fitAffine solves for the affine transform taking src onto dst in the
// least-squares sense.
func fitAffine(src, dst []geometry.Point2D) (geometry.AffineTransform, error) {
	n := len(src)
	if n < 3 || len(dst) != n {
		return geometry.AffineTransform{}, fmt.Errorf("need at least 3 point pairs, got %d/%d", len(src), len(dst))
	}

	A := mat.NewDense(n*2, 6, nil)
	B := mat.NewVecDense(n*2, nil)
	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y

		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, dst[i].X)

		A.Set(i*2+1, 3, x)
		A.Set(i*2+1, 4, y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, dst[i].Y)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geometry.AffineTransform{}, fmt.Errorf("fit transform: %w", err)
	}

	return geometry.AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}
