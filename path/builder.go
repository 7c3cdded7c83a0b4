package path

import "github.com/inkwell-doc/pagerender/geom"

// Builder accumulates path-construction operators (m, l, c, v, y, h, re)
// into an Outline. It mirrors the way the interpreter's current-path state
// is built up operator by operator before a painting operator consumes it.
type Builder struct {
	subpaths []SubPath
	cur      *SubPath
	pos      geom.Point
	start    geom.Point
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	b.pos = geom.Point{X: x, Y: y}
	b.start = b.pos
	b.subpaths = append(b.subpaths, SubPath{Start: b.pos})
	b.cur = &b.subpaths[len(b.subpaths)-1]
}

// LineTo appends a straight segment to (x, y), starting an implicit
// subpath at the origin if nothing has moved yet.
func (b *Builder) LineTo(x, y float64) {
	b.ensureCurrent()
	end := geom.Point{X: x, Y: y}
	b.cur.Segments = append(b.cur.Segments, Segment{Kind: SegLine, End: end})
	b.pos = end
}

// CubicTo appends a cubic BĂ©zier segment with the given control points.
func (b *Builder) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	b.ensureCurrent()
	seg := Segment{
		Kind:  SegCubic,
		Ctrl1: geom.Point{X: x1, Y: y1},
		Ctrl2: geom.Point{X: x2, Y: y2},
		End:   geom.Point{X: x3, Y: y3},
	}
	b.cur.Segments = append(b.cur.Segments, seg)
	b.pos = seg.End
}

// Close closes the current subpath back to its start point (operator h).
func (b *Builder) Close() {
	if b.cur == nil {
		return
	}
	b.cur.Closed = true
	b.pos = b.start
}

// Rect appends a closed rectangular subpath (operator re), traversed
// counter-clockwise starting at its lower-left corner, per the PDF spec.
func (b *Builder) Rect(x, y, w, h float64) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
}

// CurrentPoint returns the builder's current point, used by operators such
// as v and y that implicitly reuse it as a control point.
func (b *Builder) CurrentPoint() (float64, float64) {
	return b.pos.X, b.pos.Y
}

// IsEmpty reports whether nothing has been built yet.
func (b *Builder) IsEmpty() bool {
	return len(b.subpaths) == 0
}

// Take returns the accumulated Outline and resets the builder, mirroring
// how the interpreter clears the current path after every painting
// operator (S, f, B, n, ...).
func (b *Builder) Take() Outline {
	out := Outline{SubPaths: b.subpaths}
	b.subpaths = nil
	b.cur = nil
	return out
}

func (b *Builder) ensureCurrent() {
	if b.cur == nil {
		b.MoveTo(b.pos.X, b.pos.Y)
	}
}
