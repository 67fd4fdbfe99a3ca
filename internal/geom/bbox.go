package geom

import "github.com/chewxy/math32"

// Range is a closed interval on one axis.
type Range struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// BoundingBox is an axis-aligned box stored as ((min_x, max_x), (min_y, max_y)).
type BoundingBox struct {
	X Range `json:"x"`
	Y Range `json:"y"`
}

// Box returns the box spanning [minX, maxX] x [minY, maxY].
func Box(minX, maxX, minY, maxY float32) BoundingBox {
	return BoundingBox{X: Range{Min: minX, Max: maxX}, Y: Range{Min: minY, Max: maxY}}
}

// Compute returns the smallest box containing every vertex.
// An empty vertex set yields the zero box rather than an inverted infinite one.
func Compute(vertices []Vertex) BoundingBox {
	if len(vertices) == 0 {
		return BoundingBox{}
	}

	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, v := range vertices {
		minX = math32.Min(minX, v.X)
		maxX = math32.Max(maxX, v.X)
		minY = math32.Min(minY, v.Y)
		maxY = math32.Max(maxY, v.Y)
	}

	return Box(minX, maxX, minY, maxY)
}

// FromCorners builds a box from two opposite corners given in any order,
// e.g. the start and end of a drag rectangle.
func FromCorners(a, b Vertex) BoundingBox {
	return Box(
		math32.Min(a.X, b.X), math32.Max(a.X, b.X),
		math32.Min(a.Y, b.Y), math32.Max(a.Y, b.Y),
	)
}

// IsZero reports whether b is the degenerate zero box.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// ContainsPoint reports whether p lies inside b grown by padding on all sides.
// Bounds are inclusive.
func (b BoundingBox) ContainsPoint(p Vertex, padding float32) bool {
	return p.X >= b.X.Min-padding &&
		p.X <= b.X.Max+padding &&
		p.Y >= b.Y.Min-padding &&
		p.Y <= b.Y.Max+padding
}

// Intersects reports whether the two boxes overlap, touching edges included.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.X.Min <= other.X.Max &&
		other.X.Min <= b.X.Max &&
		b.Y.Min <= other.Y.Max &&
		other.Y.Min <= b.Y.Max
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return Box(
		math32.Min(b.X.Min, other.X.Min), math32.Max(b.X.Max, other.X.Max),
		math32.Min(b.Y.Min, other.Y.Min), math32.Max(b.Y.Max, other.Y.Max),
	)
}

// Offset shifts all four bounds by d.
func (b BoundingBox) Offset(d Vertex) BoundingBox {
	return Box(b.X.Min+d.X, b.X.Max+d.X, b.Y.Min+d.Y, b.Y.Max+d.Y)
}

// Scale applies (v - anchor) * factor + anchor to both corners and re-sorts
// each axis, so negative factors (flips) still yield min <= max.
func (b BoundingBox) Scale(factor, anchor Vertex) BoundingBox {
	lo := V(b.X.Min, b.Y.Min).ScaleAbout(factor, anchor)
	hi := V(b.X.Max, b.Y.Max).ScaleAbout(factor, anchor)
	return FromCorners(lo, hi)
}

// Corners returns the four corners, counter-clockwise from (min_x, min_y).
func (b BoundingBox) Corners() [4]Vertex {
	return [4]Vertex{
		{X: b.X.Min, Y: b.Y.Min},
		{X: b.X.Max, Y: b.Y.Min},
		{X: b.X.Max, Y: b.Y.Max},
		{X: b.X.Min, Y: b.Y.Max},
	}
}

// Size returns the width and height of the box.
func (b BoundingBox) Size() (float32, float32) {
	return b.X.Max - b.X.Min, b.Y.Max - b.Y.Min
}

// Center returns the center point of the box.
func (b BoundingBox) Center() Vertex {
	return V((b.X.Min+b.X.Max)/2, (b.Y.Min+b.Y.Max)/2)
}
