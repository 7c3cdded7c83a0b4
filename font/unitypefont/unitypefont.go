// Package unitypefont adapts github.com/unidoc/unitype — the teacher's
// own embedded TrueType/OpenType introspection library (used for font
// subsetting in model/font_composite.go) — into the font.Font interface,
// as the interpreter's primary source of glyph outlines, advances, and
// cmap/post-table lookups.
package unitypefont

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unitype"

	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/path"
)

// unitsPerEm is unitype's default when a font's head table is unreadable;
// 1000 matches the historical PostScript convention the teacher's own
// font code falls back to.
const unitsPerEm = 1000

// Font wraps a parsed *unitype.Font.
type Font struct {
	raw        *unitype.Font
	unitsPerEm float64
}

// Parse decodes data (a raw sfnt/TrueType/OpenType font program, already
// extracted from a font resource's embedded stream) via unitype.
func Parse(data []byte) (font.Font, error) {
	fnt, err := unitype.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unitypefont: parse: %w", err)
	}
	upm := float64(unitsPerEm)
	if head, err := fnt.GetHeadTable(); err == nil && head != nil && head.UnitsPerEm > 0 {
		upm = float64(head.UnitsPerEm)
	}
	return &Font{raw: fnt, unitsPerEm: upm}, nil
}

// FontMatrix maps font-design-unit space (unitsPerEm square) down to the
// unit text space glyph outlines are composed into.
func (f *Font) FontMatrix() geom.Matrix {
	s := 1 / f.unitsPerEm
	return geom.NewMatrix(s, 0, 0, s, 0, 0)
}

// Glyph returns gid's outline (converted from unitype's contour/segment
// representation into a path.Outline) and advance width.
func (f *Font) Glyph(gid font.GlyphID) (font.Glyph, bool) {
	outline, err := f.raw.GetGlyphOutline(unitype.GlyphIndex(gid))
	if err != nil {
		return font.Glyph{}, false
	}
	b := path.NewBuilder()
	for _, contour := range outline.Segments {
		for i, seg := range contour {
			switch {
			case i == 0:
				b.MoveTo(seg.X, seg.Y)
			case seg.Kind == unitype.SegmentKindLine:
				b.LineTo(seg.X, seg.Y)
			default:
				b.CubicTo(seg.Cx1, seg.Cy1, seg.Cx2, seg.Cy2, seg.X, seg.Y)
			}
		}
		b.Close()
	}
	adv, err := f.raw.GetGlyphAdvance(unitype.GlyphIndex(gid))
	if err != nil {
		adv = 0
	}
	return font.Glyph{Outline: b.Take(), AdvanceX: float64(adv)}, true
}

// GIDForCodepoint resolves cp through the font's cmap subtable.
func (f *Font) GIDForCodepoint(cp rune) (font.GlyphID, bool) {
	gid, ok := f.raw.GIDForRune(cp)
	if !ok {
		return 0, false
	}
	return font.GlyphID(gid), true
}

// GIDForName resolves name through the font's post table.
func (f *Font) GIDForName(name string) (font.GlyphID, bool) {
	gid, ok := f.raw.GIDForName(name)
	if !ok {
		return 0, false
	}
	return font.GlyphID(gid), true
}

// Encoding reports the font's nominal platform encoding, informational.
func (f *Font) Encoding() string {
	return "unitype"
}
