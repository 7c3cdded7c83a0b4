// Package textstate implements the text-object state machine that sits
// alongside the graphics state during interpretation: the two text
// matrices, the typographic parameters, the current font entry, and the
// glyph-resolution algorithm that a text-showing operator drives.
//
// It is grounded on the teacher's render/internal/context/text_state.go,
// generalized away from that file's direct-to-canvas drawing coupling:
// here Show returns the glyphs it resolved, transformed into device
// space, so the caller (the interpreter's draw dispatcher) decides how to
// paint them and how to fold their rects into the spatial index.
package textstate

import (
	"fmt"

	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/path"
)

// Mode is the text render mode set by Tr. Only 0 through 5 are valid.
// Fills and Strokes report the passes each mode names; the interpreter
// draws no ink for Invisible or for the clip variants 4 and 5 (the
// minimal core has no clip-path emission).
type Mode int

const (
	ModeFill Mode = iota
	ModeStroke
	ModeFillStroke
	ModeInvisible
	ModeFillClip
	ModeStrokeClip
)

// Paints reports whether mode names a fill or stroke pass, i.e. every
// mode except Invisible, which exists purely to anchor a spatial-index
// entry (e.g. an OCR text layer laid over a scanned image).
func (m Mode) Paints() bool {
	return m != ModeInvisible
}

// Fills reports whether mode includes a fill pass.
func (m Mode) Fills() bool {
	return m == ModeFill || m == ModeFillStroke || m == ModeFillClip
}

// Strokes reports whether mode includes a stroke pass.
func (m Mode) Strokes() bool {
	return m == ModeStroke || m == ModeFillStroke || m == ModeStrokeClip
}

// State is the text state in effect inside one text object. Zero value is
// not valid; use Default.
type State struct {
	TextMatrix, LineMatrix geom.Matrix

	CharSpace  float64
	WordSpace  float64
	HorizScale float64 // scalar, i.e. Tz/100
	Leading    float64
	Rise       float64

	Font     *font.Entry
	FontSize float64
	Mode     Mode
}

// Default returns the text state a BT operator establishes, and the state
// an interpreter starts from before the first BT: identity matrices, 100%
// horizontal scale, fill mode, everything else zeroed.
func Default() State {
	id := geom.Identity()
	return State{
		TextMatrix: id,
		LineMatrix: id,
		HorizScale: 1,
		Mode:       ModeFill,
	}
}

// ProcBT resets both matrices to identity. Other parameters (spacing,
// leading, font, mode) are graphics-state-like and survive BT/ET.
func (s *State) ProcBT() {
	id := geom.Identity()
	s.TextMatrix = id
	s.LineMatrix = id
}

// ProcTm sets both matrices from the cm-style operand order a b c d e f.
func (s *State) ProcTm(a, b, c, d, e, f float64) {
	m := geom.NewMatrix(a, b, c, d, e, f)
	s.TextMatrix = m
	s.LineMatrix = m
}

// ProcTd advances the line matrix by translate(tx, ty) and resets the
// text matrix to match it.
func (s *State) ProcTd(tx, ty float64) {
	s.LineMatrix.Concat(geom.Translation(tx, ty))
	s.TextMatrix = s.LineMatrix
}

// ProcTD is Td plus setting leading to -ty.
func (s *State) ProcTD(tx, ty float64) {
	s.Leading = -ty
	s.ProcTd(tx, ty)
}

// ProcTStar moves to the start of the next line.
func (s *State) ProcTStar() {
	s.ProcTd(0, -s.Leading*s.FontSize)
}

// ProcTc, ProcTw, ProcTz, ProcTL, ProcTs set the scalar typographic
// parameters. ProcTz takes the operand as a percentage and stores the
// scalar (percent/100).
func (s *State) ProcTc(c float64)       { s.CharSpace = c }
func (s *State) ProcTw(w float64)       { s.WordSpace = w }
func (s *State) ProcTz(percent float64) { s.HorizScale = percent / 100 }
func (s *State) ProcTL(l float64)       { s.Leading = l }
func (s *State) ProcTs(r float64)       { s.Rise = r }

// ProcTr sets the render mode. m outside 0..5 is returned as an error
// (the interpreter turns it into a fatal InvalidTextModeError); the state
// is left unchanged.
func (s *State) ProcTr(m int) error {
	if m < 0 || m > 5 {
		return fmt.Errorf("textstate: invalid render mode %d", m)
	}
	s.Mode = Mode(m)
	return nil
}

// ProcTf sets the current font entry and size. entry is nil when the name
// did not resolve in the page resources or the font cache; text shown
// with a nil font is silently elided by Show.
func (s *State) ProcTf(entry *font.Entry, size float64) {
	s.Font = entry
	s.FontSize = size
}

// AdvanceForNumber applies a TJ array numeric adjustment: advance the
// text matrix by -0.001 * n * font_size * horiz_scale along X.
func (s *State) AdvanceForNumber(n float64) {
	dx := -0.001 * n * s.FontSize * s.HorizScale
	s.TextMatrix.Concat(geom.Translation(dx, 0))
}

// ShownGlyph is one resolved, device-space-transformed glyph produced by
// a text-showing operator.
type ShownGlyph struct {
	Outline path.Outline
	Rect    geom.Rect
	HasRect bool
}

// Show implements spec.md §4.1 "glyph resolution inside text showing" for
// one shown byte string: decode codes, resolve each to a glyph, transform
// it into device space, advance the text matrix, and return every glyph
// that produced visible geometry (codes with no outline, or no current
// font, are silently skipped; a code with no gid mapping is resolved as
// glyph id 0, and nothing is logged for it).
//
// root and gs are root_transform and the current graphics-state transform;
// Show composes them with TextMatrix, Tfs, and the font's own FontMatrix so
// that a glyph point passes through FontMatrix, Tfs, TextMatrix, gs, and
// root, in that order.
func (s *State) Show(data []byte, root, gs geom.Matrix) []ShownGlyph {
	if s.Font == nil || s.Font.Font == nil {
		return nil
	}
	codes := s.Font.DecodeCodes(data)
	tfsA := s.HorizScale * s.FontSize
	tfs := geom.NewMatrix(tfsA, 0, 0, s.FontSize, 0, s.Rise)
	fontMatrix := s.Font.Font.FontMatrix()
	emScale := fontMatrix.ScalingFactorX()

	var shown []ShownGlyph
	for _, code := range codes {
		gid, ok := s.Font.GID(code)
		if !ok {
			gid = 0
		}
		spacing := s.CharSpace
		if code == 0x20 {
			spacing = s.WordSpace
		}
		dx := spacing * tfsA

		if glyph, found := s.Font.Font.Glyph(gid); found && !glyph.Outline.IsEmpty() {
			fm := root
			fm.Concat(gs)
			fm.Concat(s.TextMatrix)
			fm.Concat(tfs)
			fm.Concat(fontMatrix)
			outline := glyph.Outline.Transformed(fm)
			sg := ShownGlyph{Outline: outline}
			if r, ok := outline.BBox().Rect(); ok {
				sg.Rect, sg.HasRect = r, true
			}
			shown = append(shown, sg)
			dx += tfsA * emScale * glyph.AdvanceX
		}
		s.TextMatrix.Concat(geom.Translation(dx, 0))
	}
	return shown
}
