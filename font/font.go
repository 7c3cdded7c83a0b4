// Package font builds and caches font entries: the glyph-lookup table the
// text subsystem draws through, constructed from a document's font
// resource per the algorithm in spec.md §4.3.
package font

import (
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/path"
)

// GlyphID is a font-internal glyph index (what TrueType/OpenType calls a
// GID), distinct from a character code.
type GlyphID uint16

// Glyph is one resolved glyph: its outline in font-design units and its
// horizontal/vertical advance, also in font-design units.
type Glyph struct {
	Outline  path.Outline
	AdvanceX float64
	AdvanceY float64
}

// Font is the opaque glyph source a font backend (font/unitypefont,
// font/sfntfont) provides. The interpreter's text subsystem never touches
// a backend directly — only through this interface, matching spec.md §6's
// "Consumed (from the font backend)" contract.
type Font interface {
	// FontMatrix maps font-design-unit space (the space Glyph outlines and
	// advances are expressed in) into text space.
	FontMatrix() geom.Matrix
	// Glyph returns the outline and advance for gid, and false if the font
	// has no such glyph.
	Glyph(gid GlyphID) (Glyph, bool)
	// GIDForCodepoint resolves a Unicode codepoint to a glyph id via the
	// font's own cmap, used when building a named-encoding code-to-gid map.
	GIDForCodepoint(cp rune) (GlyphID, bool)
	// GIDForName resolves a PostScript glyph name (e.g. "Adieresis") to a
	// glyph id via the font's post table, used to apply a Differences
	// array override.
	GIDForName(name string) (GlyphID, bool)
	// Encoding names the font's own built-in encoding, informational only.
	Encoding() string
}
