package geometry

// Polygon is a closed contour. The last vertex connects back to the first;
// callers never repeat the first point at the end.
type Polygon []Point2D

// IsDegenerate reports whether the polygon has no interior to speak of
// (fewer than three vertices).
func (poly Polygon) IsDegenerate() bool {
	return len(poly) < 3
}

// Bounds returns the bounding box of the polygon.
func (poly Polygon) Bounds() Rect {
	return BoundingBox(poly)
}

// Contains tests whether p lies in the filled interior using the even-odd rule.
func (poly Polygon) Contains(p Point2D) bool {
	return PointInPolygon(p, poly)
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
// Polygons with fewer than three vertices contain nothing.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Ray from p going right crosses edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}
