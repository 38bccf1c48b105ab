package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() Polygon {
	return Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

func TestPointInPolygon(t *testing.T) {
	t.Parallel()

	poly := square()
	assert.True(t, poly.Contains(Point2D{X: 5, Y: 5}))
	assert.False(t, poly.Contains(Point2D{X: 15, Y: 5}))
	assert.False(t, poly.Contains(Point2D{X: -1, Y: -1}))

	// Concave "L" shape: the notch is outside.
	l := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10}}
	assert.True(t, l.Contains(Point2D{X: 2, Y: 8}))
	assert.False(t, l.Contains(Point2D{X: 8, Y: 8}))
}

func TestDegeneratePolygon(t *testing.T) {
	t.Parallel()

	var empty Polygon
	line := Polygon{{X: 0, Y: 0}, {X: 10, Y: 10}}

	assert.True(t, empty.IsDegenerate())
	assert.True(t, line.IsDegenerate())
	assert.False(t, line.Contains(Point2D{X: 5, Y: 5}))
	assert.Equal(t, Rect{}, empty.Bounds())
}

func TestBoundsAndCentroid(t *testing.T) {
	t.Parallel()

	poly := square()
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 10}, poly.Bounds())
	assert.Equal(t, Point2D{X: 5, Y: 5}, Centroid(poly))
}

func TestFitWithin(t *testing.T) {
	t.Parallel()

	got, factor := NewSize(3600, 1000).FitWithin(NewSize(1800, 1000))
	assert.Equal(t, NewSize(1800, 500), got)
	assert.InDelta(t, 0.5, factor, 1e-12)

	got, factor = NewSize(0, 10).FitWithin(NewSize(1800, 1000))
	assert.Equal(t, NewSize(0, 10), got)
	assert.Equal(t, 1.0, factor)
}
