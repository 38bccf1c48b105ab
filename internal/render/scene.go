package render

import (
	"image"

	"github.com/bsmietanka/interactive-map/internal/dataset"
	mapimage "github.com/bsmietanka/interactive-map/internal/image"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/pkg/geometry"
)

// Default display box of the map.
const (
	DefaultDisplayWidth  = 1800
	DefaultDisplayHeight = 1000
)

// Options controls BuildScene.
type Options struct {
	// DisplayWidth and DisplayHeight bound the display copy of the image.
	DisplayWidth  int
	DisplayHeight int
}

// Region is the invisible hover area of one table row.
type Region struct {
	Row int
	Key string
	ID  string
	// Polygon is in original image pixels.
	Polygon geometry.Polygon
	Bounds  geometry.Rect
	// Tooltip is the formatted hover text; empty when the row has nothing
	// to show. The base image has none.
	Tooltip string
}

// Scene is the rendered map: the base image, its display copy and the hover
// regions in table order.
type Scene struct {
	Image   image.Image
	Display image.Image
	// Scale converts original pixels to display pixels.
	Scale   float64
	Width   int
	Height  int
	Regions []Region
}

// BuildScene projects every row of table onto img. Rows with fewer than
// three points still get a region; it just never matches a hit test.
func BuildScene(img image.Image, table *dataset.Table, opts Options, lggr logger.Logger) *Scene {
	b := img.Bounds()
	display, scale := mapimage.FitWithin(img, opts.DisplayWidth, opts.DisplayHeight)

	s := &Scene{
		Image:   img,
		Display: display,
		Scale:   scale,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Regions: make([]Region, table.Len()),
	}

	columns := table.Columns()
	degenerate := 0
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		poly := Project(row.Points, float64(s.Width), float64(s.Height))
		if poly.IsDegenerate() {
			degenerate++
		}
		s.Regions[i] = Region{
			Row:     i,
			Key:     row.Key,
			ID:      row.ID,
			Polygon: poly,
			Bounds:  poly.Bounds(),
			Tooltip: FormatTooltip(TooltipFields(columns, row.Cells)),
		}
	}

	lggr.Debugw("Scene built",
		"width", s.Width, "height", s.Height,
		"scale", scale,
		"regions", len(s.Regions),
		"degenerate", degenerate,
	)
	return s
}

// RegionAt returns the region whose filled interior contains the point
// (x, y) in original image pixels. Later regions are drawn on top and win
// where regions overlap.
func (s *Scene) RegionAt(x, y float64) (*Region, bool) {
	p := geometry.Point2D{X: x, Y: y}
	for i := len(s.Regions) - 1; i >= 0; i-- {
		r := &s.Regions[i]
		if r.Polygon.IsDegenerate() || !r.Bounds.Contains(p) {
			continue
		}
		if r.Polygon.Contains(p) {
			return r, true
		}
	}
	return nil, false
}

// RegionAtDisplay is RegionAt for a point in display-copy pixels.
func (s *Scene) RegionAtDisplay(x, y float64) (*Region, bool) {
	if s.Scale <= 0 {
		return nil, false
	}
	return s.RegionAt(x/s.Scale, y/s.Scale)
}

// Region returns the region of table row i.
func (s *Scene) Region(row int) (*Region, bool) {
	if row < 0 || row >= len(s.Regions) {
		return nil, false
	}
	return &s.Regions[row], true
}

// DisplayPolygon returns r's polygon in display pixels multiplied by zoom.
func (s *Scene) DisplayPolygon(r *Region, zoom float64) geometry.Polygon {
	return scalePolygon(r.Polygon, s.Scale*zoom)
}
