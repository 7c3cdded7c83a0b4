package interp

import (
	"fmt"

	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/internal/common"
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/path"
)

// fakePage is a minimal page.Page test double: a fixed media box, a fixed
// resource dictionary, and a literal operator list.
type fakePage struct {
	left, top, right, bottom float64
	resources                page.Resources
	ops                      []page.Operation
}

func (p fakePage) MediaBox() (left, top, right, bottom float64) {
	return p.left, p.top, p.right, p.bottom
}
func (p fakePage) Resources() page.Resources    { return p.resources }
func (p fakePage) Operations() []page.Operation { return p.ops }

// fakeResources is a page.Resources test double backed by plain maps.
type fakeResources struct {
	fonts       map[page.Name]page.FontResource
	extGStates  map[page.Name]page.ExtGState
	colorSpaces map[page.Name]page.ColorSpaceDef
	xobjects    map[page.Name]page.XObject
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		fonts:       map[page.Name]page.FontResource{},
		extGStates:  map[page.Name]page.ExtGState{},
		colorSpaces: map[page.Name]page.ColorSpaceDef{},
		xobjects:    map[page.Name]page.XObject{},
	}
}

func (r *fakeResources) Font(name page.Name) (page.FontResource, bool) {
	f, ok := r.fonts[name]
	return f, ok
}
func (r *fakeResources) ExtGState(name page.Name) (page.ExtGState, bool) {
	g, ok := r.extGStates[name]
	return g, ok
}
func (r *fakeResources) ColorSpace(name page.Name) (page.ColorSpaceDef, bool) {
	c, ok := r.colorSpaces[name]
	return c, ok
}
func (r *fakeResources) XObject(name page.Name) (page.XObject, bool) {
	x, ok := r.xobjects[name]
	return x, ok
}
func (r *fakeResources) Fonts() map[page.Name]page.FontResource {
	return r.fonts
}

// fakeFontResource is a page.FontResource test double with a non-empty
// embedded payload and no named encoding, so font.Build falls into its
// identity-codepoint code-map path.
type fakeFontResource struct {
	name     page.Name
	embedded []byte
}

func (f fakeFontResource) Name() page.Name         { return f.name }
func (f fakeFontResource) IsCID() bool             { return false }
func (f fakeFontResource) Encoding() page.Encoding { return page.Encoding{} }
func (f fakeFontResource) CIDToGIDMap() []uint16   { return nil }
func (f fakeFontResource) StandardFont() string    { return "" }
func (f fakeFontResource) EmbeddedData() []byte    { return f.embedded }

// fakeFont is a font.Font test double: every glyph id has the same small
// square outline and a fixed em-unit advance, and codepoints map to a
// glyph id equal to themselves so 'A' (65) and 'B' (66) resolve
// predictably.
type fakeFont struct {
	advance float64
}

func (f fakeFont) FontMatrix() geom.Matrix { return geom.Identity() }

func (f fakeFont) Glyph(gid font.GlyphID) (font.Glyph, bool) {
	b := path.NewBuilder()
	b.Rect(0, 0, 1, 1)
	return font.Glyph{Outline: b.Take(), AdvanceX: f.advance}, true
}

func (f fakeFont) GIDForCodepoint(cp rune) (font.GlyphID, bool) {
	return font.GlyphID(cp), true
}

func (f fakeFont) GIDForName(string) (font.GlyphID, bool) {
	return 0, false
}

func (f fakeFont) Encoding() string { return "" }

func parseFakeFont(data []byte) (font.Font, error) {
	return fakeFont{advance: 0.2}, nil
}

func parseFailingFont(data []byte) (font.Font, error) {
	return nil, fmt.Errorf("fake parse failure")
}

// op is a terse test constructor for a content-stream operation.
func op(operator string, operands ...page.Operand) page.Operation {
	return page.Operation{Operator: operator, Operands: operands}
}

// captureLogger is a common.Logger test double recording every call's
// level and formatted message, for assertions that a recoverable failure
// was logged rather than silently dropped.
type captureLogger struct {
	warnings []string
	debugs   []string
}

func (l *captureLogger) Error(format string, args ...interface{}) {}
func (l *captureLogger) Warning(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *captureLogger) Info(format string, args ...interface{}) {}
func (l *captureLogger) Debug(format string, args ...interface{}) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}
func (l *captureLogger) IsLogLevel(common.LogLevel) bool { return true }
