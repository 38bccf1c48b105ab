package canvas

import (
	"image"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"

	mapimage "github.com/bsmietanka/interactive-map/internal/image"
	"github.com/bsmietanka/interactive-map/pkg/colorutil"
)

// Rasters larger than this many pixels are scaled with the nearest
// neighbour filter while zooming.
const fastScalePixels = 4_000_000

// draw is the raster drawing function. w and h are physical pixels.
func (mc *MapCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(output, output.Bounds(), image.NewUniform(colorutil.Paper), image.Point{}, draw.Src)

	scene := mc.scene
	if scene == nil || w == 0 || h == 0 || scene.Width == 0 {
		return output
	}

	mapimage.ScaleInto(output, scene.Display, w*h > fastScalePixels)
	scene.DrawOverlay(output, float64(w)/float64(scene.Width), mc.overlay())
	return output
}

func clampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < minZoom {
		return minZoom
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}

// fitZoom returns the zoom that fits a w x h display copy into view with a
// small margin.
func fitZoom(w, h int, view fyne.Size) (float64, bool) {
	if w <= 0 || h <= 0 || view.Width <= 0 || view.Height <= 0 {
		return 0, false
	}
	zoom := math.Min(float64(view.Width)/float64(w), float64(view.Height)/float64(h))
	return zoom * 0.95, true
}

// contentToDisplay converts a position on the zoomed content to pixels of
// the display copy, which is w x h.
func contentToDisplay(pos fyne.Position, content fyne.Size, w, h int) (x, y float64) {
	if content.Width <= 0 || content.Height <= 0 {
		return -1, -1
	}
	x = float64(pos.X) * float64(w) / float64(content.Width)
	y = float64(pos.Y) * float64(h) / float64(content.Height)
	return x, y
}

// clampOffset keeps a scroll offset inside the scrollable range.
func clampOffset(off fyne.Position, content, view fyne.Size) fyne.Position {
	maxX := content.Width - view.Width
	maxY := content.Height - view.Height
	off.X = float32(math.Max(0, math.Min(float64(off.X), float64(maxX))))
	off.Y = float32(math.Max(0, math.Min(float64(off.Y), float64(maxY))))
	return off
}
