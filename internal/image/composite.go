package image

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/bsmietanka/interactive-map/pkg/geometry"
)

// BlendMode specifies how an overlay color is combined with the map.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	// BlendMultiply darkens the paper and keeps the ink readable.
	BlendMultiply
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// FitWithin returns img scaled down to fit a maxW x maxH box with its aspect
// ratio kept, and the scale factor applied. Images already inside the box
// are returned as-is with factor 1.
func FitWithin(img image.Image, maxW, maxH int) (image.Image, float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || maxW <= 0 || maxH <= 0 {
		return img, 1
	}
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img, 1
	}

	size, factor := geometry.NewSize(float64(b.Dx()), float64(b.Dy())).
		FitWithin(geometry.NewSize(float64(maxW), float64(maxH)))
	w := int(math.Round(size.Width))
	h := int(math.Round(size.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, factor
}

// ScaleInto draws src stretched over all of dst. fast selects a cheaper
// interpolator for interactive redraws.
func ScaleInto(dst *image.RGBA, src image.Image, fast bool) {
	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if fast {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// BlendPixel combines col with the pixel of dst at (x, y). Out-of-bounds
// coordinates are ignored.
func BlendPixel(dst *image.RGBA, x, y int, col color.RGBA, mode BlendMode, opacity float64) {
	if !(image.Point{X: x, Y: y}).In(dst.Bounds()) {
		return
	}
	i := dst.PixOffset(x, y)
	px := dst.Pix[i : i+4 : i+4]

	alpha := clamp(float64(col.A)/255*opacity, 0, 1)
	src := [3]float64{float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255}

	for c := 0; c < 3; c++ {
		d := float64(px[c]) / 255
		var s float64
		switch mode {
		case BlendMultiply:
			s = src[c] * d
		default:
			s = src[c]
		}
		px[c] = uint8(clamp(s*alpha+d*(1-alpha), 0, 1)*255 + 0.5)
	}
	px[3] = uint8(clamp(alpha+float64(px[3])/255*(1-alpha), 0, 1)*255 + 0.5)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
