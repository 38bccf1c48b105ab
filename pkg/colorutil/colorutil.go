// Package colorutil holds the palette used to draw on top of the map.
package colorutil

import "image/color"

// Common overlay colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Paper fills the canvas around the map.
	Paper = color.RGBA{R: 245, G: 236, B: 214, A: 255}

	// Outline is the stroke of plot boundaries, a sepia close to the ink
	// of the scan.
	Outline = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	// Selection tints the plot chosen in the table.
	Selection = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	// Hover tints the plot under the pointer.
	Hover = color.RGBA{R: 70, G: 130, B: 220, A: 255}
)

// WithAlpha returns c with its alpha replaced by a.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
