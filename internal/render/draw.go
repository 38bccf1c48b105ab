package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mapimage "github.com/bsmietanka/interactive-map/internal/image"
	"github.com/bsmietanka/interactive-map/pkg/colorutil"
	"github.com/bsmietanka/interactive-map/pkg/geometry"
)

// Overlay selects what DrawOverlay paints over the map.
type Overlay struct {
	// Outlines strokes every region and labels it with its plot number.
	Outlines bool
	// Selected and Hovered are table rows to tint, -1 for none.
	Selected int
	Hovered  int
}

// NoOverlay draws nothing.
var NoOverlay = Overlay{Selected: -1, Hovered: -1}

// DrawOverlay paints o onto dst, which shows the scene's original image
// scaled by factor.
func (s *Scene) DrawOverlay(dst *image.RGBA, factor float64, o Overlay) {
	if o.Outlines {
		for i := range s.Regions {
			r := &s.Regions[i]
			if r.Polygon.IsDegenerate() {
				continue
			}
			poly := scalePolygon(r.Polygon, factor)
			StrokePolygon(dst, poly, colorutil.Outline, 1)
		}
		for i := range s.Regions {
			r := &s.Regions[i]
			if r.Polygon.IsDegenerate() || r.Key == "" {
				continue
			}
			c := geometry.Centroid(scalePolygon(r.Polygon, factor))
			DrawLabel(dst, r.Key, int(c.X), int(c.Y), colorutil.Black, colorutil.White)
		}
	}

	if r, ok := s.Region(o.Hovered); ok && o.Hovered != o.Selected {
		poly := scalePolygon(r.Polygon, factor)
		FillPolygon(dst, poly, colorutil.Hover, mapimage.BlendMultiply, 0.35)
	}
	if r, ok := s.Region(o.Selected); ok {
		poly := scalePolygon(r.Polygon, factor)
		FillPolygon(dst, poly, colorutil.Selection, mapimage.BlendMultiply, 0.6)
		StrokePolygon(dst, poly, colorutil.Selection, 3)
	}
}

// FillPolygon tints the interior of poly using a scanline fill.
func FillPolygon(dst *image.RGBA, poly geometry.Polygon, col color.RGBA, mode mapimage.BlendMode, opacity float64) {
	if poly.IsDegenerate() {
		return
	}
	bounds := dst.Bounds()
	box := poly.Bounds()

	minY := int(math.Max(math.Floor(box.Y), float64(bounds.Min.Y)))
	maxY := int(math.Min(math.Ceil(box.Y+box.Height), float64(bounds.Max.Y-1)))

	xs := make([]float64, 0, 8)
	n := len(poly)
	for y := minY; y <= maxY; y++ {
		// sample at the pixel center
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			p1, p2 := poly[i], poly[(i+1)%n]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x1 := int(math.Ceil(xs[i] - 0.5))
			x2 := int(math.Floor(xs[i+1] - 0.5))
			for x := x1; x <= x2; x++ {
				mapimage.BlendPixel(dst, x, y, col, mode, opacity)
			}
		}
	}
}

// StrokePolygon draws the closed outline of poly.
func StrokePolygon(dst *image.RGBA, poly geometry.Polygon, col color.RGBA, thickness int) {
	n := len(poly)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1, p2 := poly[i], poly[(i+1)%n]
		drawLine(dst, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col, thickness)
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(dst *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := dst.Bounds()

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				p := image.Point{X: x1 + s, Y: y1 + t}
				if p.In(bounds) {
					dst.SetRGBA(p.X, p.Y, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawLabel writes text centered on (cx, cy) with a one pixel halo so it
// stays readable on the dark parts of the scan.
func DrawLabel(dst *image.RGBA, text string, cx, cy int, ink, halo color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	x := cx - width/2
	y := cy - height/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{Dst: dst, Face: face}
	d.Src = image.NewUniform(halo)
	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		d.Dot = fixed.P(x+off[0], y+off[1])
		d.DrawString(text)
	}
	d.Src = image.NewUniform(ink)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
