// Package render turns the unified table and the map scan into a scene: the
// image to display and one hover region per plot.
package render

import "github.com/bsmietanka/interactive-map/pkg/geometry"

// Project converts percentage coordinates (0-100 of the image size) into
// pixel coordinates of a w x h image.
func Project(points geometry.Polygon, w, h float64) geometry.Polygon {
	out := make(geometry.Polygon, len(points))
	for i, p := range points {
		out[i] = geometry.Point2D{
			X: (p.X / 100) * w,
			Y: (p.Y / 100) * h,
		}
	}
	return out
}

// scalePolygon multiplies every vertex of poly by factor.
func scalePolygon(poly geometry.Polygon, factor float64) geometry.Polygon {
	out := make(geometry.Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Scale(factor)
	}
	return out
}
