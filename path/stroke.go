package path

import (
	"math"

	"github.com/inkwell-doc/pagerender/geom"
)

// StrokeStyle carries the parameters the interpreter derives for a stroke
// operator: effective device-space width, miter limit, and the geometric
// constants a pure offsetting routine needs. Cap is always butt; interior
// joins are offset along the averaged normal (see StrokeToFill).
type StrokeStyle struct {
	Width      float64
	MiterLimit float64
}

const flattenSteps = 16

// flattenSubpath reduces a subpath's line/cubic segments to a polyline,
// subdividing cubics with a fixed step count. This is the same strategy a
// rasterizer uses before offsetting or scan-converting a curve: exactness
// isn't needed, a close enough polygonal approximation is.
func flattenSubpath(sp SubPath) []Pt {
	pts := []Pt{{sp.Start.X, sp.Start.Y}}
	cur := pts[0]
	for _, seg := range sp.Segments {
		switch seg.Kind {
		case SegLine:
			cur = Pt{seg.End.X, seg.End.Y}
			pts = append(pts, cur)
		case SegCubic:
			p0 := cur
			p1 := Pt{seg.Ctrl1.X, seg.Ctrl1.Y}
			p2 := Pt{seg.Ctrl2.X, seg.Ctrl2.Y}
			p3 := Pt{seg.End.X, seg.End.Y}
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / float64(flattenSteps)
				pts = append(pts, cubicAt(p0, p1, p2, p3, t))
			}
			cur = p3
		}
	}
	if sp.Closed && (pts[0] != pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return dedupe(pts)
}

// Pt is a plain 2D point used internally by the flattening/offsetting math,
// kept distinct from geom.Point so this file has no import-cycle exposure.
type Pt struct{ X, Y float64 }

func cubicAt(p0, p1, p2, p3 Pt, t float64) Pt {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Pt{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func dedupe(pts []Pt) []Pt {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// StrokeToFill converts the outline into a new, fillable Outline by
// offsetting each flattened subpath by half the stroke width on either
// side, with butt caps on open subpaths. An interior vertex is offset by
// half the width along the averaged normal of its two adjoining segments;
// style.MiterLimit is not consulted and no bevel is produced. This is the
// pure geometric routine the stroke style derivation delegates to.
func (o Outline) StrokeToFill(style StrokeStyle) Outline {
	half := style.Width / 2
	if half <= 0 {
		half = 0.5
	}
	result := Outline{}
	for _, sp := range o.SubPaths {
		poly := flattenSubpath(sp)
		if len(poly) < 2 {
			continue
		}
		closed := sp.Closed
		left, right := offsetPolyline(poly, half, closed)
		result.SubPaths = append(result.SubPaths, polygonSubpath(left, right, closed))
	}
	return result
}

// offsetPolyline returns the left- and right-hand offset polylines for a
// polyline, joining consecutive segment offsets at a vertex placed along
// the averaged normal of the two segments.
func offsetPolyline(poly []Pt, half float64, closed bool) ([]Pt, []Pt) {
	n := len(poly)
	segN := n - 1
	normals := make([]Pt, segN)
	for i := 0; i < segN; i++ {
		dx := poly[i+1].X - poly[i].X
		dy := poly[i+1].Y - poly[i].Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			l = 1
		}
		normals[i] = Pt{-dy / l, dx / l}
	}
	left := make([]Pt, n)
	right := make([]Pt, n)
	for i := 0; i < n; i++ {
		var nrm Pt
		switch {
		case i == 0:
			nrm = normals[0]
		case i == segN:
			nrm = normals[segN-1]
		default:
			nrm = averageNormal(normals[i-1], normals[i])
		}
		left[i] = Pt{poly[i].X + nrm.X*half, poly[i].Y + nrm.Y*half}
		right[i] = Pt{poly[i].X - nrm.X*half, poly[i].Y - nrm.Y*half}
	}
	_ = closed
	return left, right
}

func geomPt(p Pt) geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

func averageNormal(a, b Pt) Pt {
	sx, sy := a.X+b.X, a.Y+b.Y
	l := math.Hypot(sx, sy)
	if l < 1e-9 {
		return a
	}
	return Pt{sx / l, sy / l}
}

// polygonSubpath stitches a left offset, the reversed right offset, and
// (for open subpaths) butt-capped end segments into one closed fillable
// subpath.
func polygonSubpath(left, right []Pt, closed bool) SubPath {
	pts := make([]Pt, 0, len(left)+len(right))
	pts = append(pts, left...)
	for i := len(right) - 1; i >= 0; i-- {
		pts = append(pts, right[i])
	}
	sp := SubPath{Start: geomPt(pts[0]), Closed: true}
	for _, p := range pts[1:] {
		sp.Segments = append(sp.Segments, Segment{Kind: SegLine, End: geomPt(p)})
	}
	sp.Segments = append(sp.Segments, Segment{Kind: SegLine, End: sp.Start})
	_ = closed
	return sp
}
