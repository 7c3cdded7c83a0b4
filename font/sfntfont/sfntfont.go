// Package sfntfont adapts golang.org/x/image/font/sfnt into the font.Font
// interface. It backs substitute system fonts located by font/sysfont —
// plain TrueType files with no PDF-specific CID structure, for which
// golang.org/x/image's general-purpose sfnt reader is a better fit than
// unitype's PDF-embedding-oriented API.
package sfntfont

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/path"
)

const ppem = 1000 // pixels-per-em used as the fixed rendering scale; FontMatrix undoes it

// Font wraps a parsed *sfnt.Font.
type Font struct {
	raw        *sfnt.Font
	buf        sfnt.Buffer
	unitsPerEm float64
}

// Parse decodes a raw TrueType/OpenType font file.
func Parse(data []byte) (font.Font, error) {
	raw, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sfntfont: parse: %w", err)
	}
	f := &Font{raw: raw, unitsPerEm: 1000}
	if upm, err := raw.UnitsPerEm(); err == nil {
		f.unitsPerEm = float64(upm)
	}
	return f, nil
}

func (f *Font) FontMatrix() geom.Matrix {
	s := 1.0 / ppem
	return geom.NewMatrix(s, 0, 0, s, 0, 0)
}

func (f *Font) Glyph(gid font.GlyphID) (font.Glyph, bool) {
	segs, err := f.raw.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), fixedInt(ppem), nil)
	if err != nil {
		return font.Glyph{}, false
	}
	b := path.NewBuilder()
	for _, seg := range segs {
		p0 := seg.Args[0]
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(f26(p0.X), f26(p0.Y))
		case sfnt.SegmentOpLineTo:
			b.LineTo(f26(p0.X), f26(p0.Y))
		case sfnt.SegmentOpQuadTo:
			p1 := seg.Args[1]
			// Elevate the quadratic control point to the equivalent cubic,
			// since path.Outline only stores line/cubic segments.
			qx, qy := f26(p0.X), f26(p0.Y)
			endX, endY := f26(p1.X), f26(p1.Y)
			sx, sy := b.CurrentPoint()
			b.CubicTo(sx+2*(qx-sx)/3, sy+2*(qy-sy)/3, endX+2*(qx-endX)/3, endY+2*(qy-endY)/3, endX, endY)
		case sfnt.SegmentOpCubeTo:
			p1, p2 := seg.Args[1], seg.Args[2]
			b.CubicTo(f26(p0.X), f26(p0.Y), f26(p1.X), f26(p1.Y), f26(p2.X), f26(p2.Y))
		}
	}
	b.Close()

	adv, err := f.raw.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), fixedInt(ppem), 0)
	var advX float64
	if err == nil {
		advX = f26(adv)
	}
	return font.Glyph{Outline: b.Take(), AdvanceX: advX}, true
}

func (f *Font) GIDForCodepoint(cp rune) (font.GlyphID, bool) {
	gid, err := f.raw.GlyphIndex(&f.buf, cp)
	if err != nil || gid == 0 {
		return 0, false
	}
	return font.GlyphID(gid), true
}

// GIDForName has no equivalent in golang.org/x/image/font/sfnt's public
// API (it exposes no post-table name lookup); substitute system fonts
// are always resolved via codepoint, never via Differences names, so
// this always reports absent.
func (f *Font) GIDForName(string) (font.GlyphID, bool) {
	return 0, false
}

func (f *Font) Encoding() string {
	return "sfnt"
}
