package geom

import "math"

// Rect is an axis-aligned rectangle given by its corners. MinX/MinY is
// always less than or equal to MaxX/MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a rectangle from two arbitrary corner points, normalizing
// the order so Min <= Max on both axes.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// BBox accumulates rectangles into a single union. Its zero value is the
// empty accumulator. Once a rectangle has been added, BBox never becomes
// empty again: Add with an empty accumulator is the identity, and Add of
// a non-empty Rect always grows (or leaves unchanged) the running union.
type BBox struct {
	rect Rect
	set  bool
}

// Empty returns an empty BBox.
func Empty() BBox {
	return BBox{}
}

// Add folds r into the accumulator.
func (b BBox) Add(r Rect) BBox {
	if !b.set {
		return BBox{rect: r, set: true}
	}
	return BBox{rect: b.rect.Union(r), set: true}
}

// AddBBox folds another accumulator into b.
func (b BBox) AddBBox(o BBox) BBox {
	if !o.set {
		return b
	}
	return b.Add(o.rect)
}

// Rect returns the accumulated rectangle and whether anything was added.
func (b BBox) Rect() (Rect, bool) {
	return b.rect, b.set
}

// IsEmpty reports whether nothing has been added yet.
func (b BBox) IsEmpty() bool {
	return !b.set
}
