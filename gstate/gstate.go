// Package gstate holds the graphics-state machine: the current transform,
// paints, stroke width, clip, and color spaces a save/restore pair
// snapshots, following the same GraphicsState/GraphicStateStack shape as
// the teacher's contentstream package.
package gstate

import (
	"github.com/inkwell-doc/pagerender/colorspace"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/paint"
)

// ClipID references a clip path interned into the owning scene, or the
// zero value for "no clip".
type ClipID int

// NoClip is the zero ClipID, meaning the graphics state has no active
// clip path.
const NoClip ClipID = 0

// State is the graphics-state machine's mutable record, snapshotted
// wholesale on q and restored wholesale on Q.
type State struct {
	Transform   geom.Matrix
	StrokeWidth float64

	FillPaint   paint.ID
	StrokePaint paint.ID

	Clip ClipID

	FillColorSpace   colorspace.ColorSpace
	StrokeColorSpace colorspace.ColorSpace
}

// Default returns the graphics state the interpreter seeds a page render
// with: identity clip, device-RGB for both color spaces, default black
// fill/stroke paints, a 1-unit stroke width, and the given initial
// transform (identity, for a page's starting CTM; the document-to-device
// root flip is applied separately, once, at paint time).
func Default(initial geom.Matrix, black paint.ID) State {
	return State{
		Transform:        initial,
		StrokeWidth:      1,
		FillPaint:        black,
		StrokePaint:      black,
		Clip:             NoClip,
		FillColorSpace:   colorspace.DeviceRGB{},
		StrokeColorSpace: colorspace.DeviceRGB{},
	}
}

// EffectiveStrokeWidth is the stroke width in device space, scaled by the
// current transform's average axis scale factor (the teacher's unipdf
// generalizes the literal transform.m11 of the distilled description to
// this average so that a non-uniformly scaled transform doesn't visibly
// thin or thicken a stroke along one axis only).
func (s State) EffectiveStrokeWidth() float64 {
	sx := s.Transform.ScalingFactorX()
	sy := s.Transform.ScalingFactorY()
	return s.StrokeWidth * (sx + sy) / 2
}

// Stack is the save/restore stack of graphics states a q/Q pair pushes
// and pops.
type Stack []State

// Push saves s onto the stack.
func (st *Stack) Push(s State) {
	*st = append(*st, s)
}

// Pop restores the most recently pushed state. ok is false on underflow,
// which the interpreter treats as a fatal malformed-stream error.
func (st *Stack) Pop() (State, bool) {
	n := len(*st)
	if n == 0 {
		return State{}, false
	}
	s := (*st)[n-1]
	*st = (*st)[:n-1]
	return s, true
}

// Depth is the number of unmatched save operators.
func (st Stack) Depth() int {
	return len(st)
}
