// Package path implements the outline accumulator the interpreter builds
// drawable geometry into: an ordered sequence of subpaths made of line and
// cubic-BĂ©zier segments, closed or open, that affine transforms and bounding
// boxes can be computed over.
package path

import "github.com/inkwell-doc/pagerender/geom"

// SegmentKind distinguishes the two segment shapes a subpath can contain.
type SegmentKind int

const (
	// SegLine is a straight line to End.
	SegLine SegmentKind = iota
	// SegCubic is a cubic BĂ©zier to End with the two given control points.
	SegCubic
)

// Segment is one piece of a subpath.
type Segment struct {
	Kind  SegmentKind
	Ctrl1 geom.Point // unused for SegLine
	Ctrl2 geom.Point // unused for SegLine
	End   geom.Point
}

// SubPath is one contiguous run of segments starting at Start.
type SubPath struct {
	Start    geom.Point
	Segments []Segment
	Closed   bool
}

// Outline is an ordered sequence of subpaths, the unit of geometry the
// interpreter passes to the scene once a painting operator consumes it.
type Outline struct {
	SubPaths []SubPath
}

// IsEmpty reports whether the outline has no subpaths with a segment in
// them (a bare MoveTo with nothing following produces no visible geometry).
func (o Outline) IsEmpty() bool {
	for _, sp := range o.SubPaths {
		if len(sp.Segments) > 0 {
			return false
		}
	}
	return true
}

// Transformed returns a new Outline with every point mapped through m,
// leaving the receiver untouched.
func (o Outline) Transformed(m geom.Matrix) Outline {
	out := Outline{SubPaths: make([]SubPath, len(o.SubPaths))}
	for i, sp := range o.SubPaths {
		nsp := SubPath{
			Start:    sp.Start.Transform(m),
			Segments: make([]Segment, len(sp.Segments)),
			Closed:   sp.Closed,
		}
		for j, seg := range sp.Segments {
			nseg := Segment{Kind: seg.Kind, End: seg.End.Transform(m)}
			if seg.Kind == SegCubic {
				nseg.Ctrl1 = seg.Ctrl1.Transform(m)
				nseg.Ctrl2 = seg.Ctrl2.Transform(m)
			}
			nsp.Segments[j] = nseg
		}
		out.SubPaths[i] = nsp
	}
	return out
}

// BBox returns the bounding box accumulator for the outline. Cubic segments
// are bounded by their convex hull (start, both control points, end) rather
// than their tight analytic extrema — a standard, cheap over-approximation
// used for clip/spatial-index purposes, not for rendering fidelity.
func (o Outline) BBox() geom.BBox {
	bb := geom.Empty()
	for _, sp := range o.SubPaths {
		minX, maxX := sp.Start.X, sp.Start.X
		minY, maxY := sp.Start.Y, sp.Start.Y
		grow := func(p geom.Point) {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		for _, seg := range sp.Segments {
			if seg.Kind == SegCubic {
				grow(seg.Ctrl1)
				grow(seg.Ctrl2)
			}
			grow(seg.End)
		}
		if len(sp.Segments) == 0 {
			continue
		}
		bb = bb.Add(geom.NewRect(minX, minY, maxX, maxY))
	}
	return bb
}
