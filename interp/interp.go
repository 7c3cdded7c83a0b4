// Package interp is the content-stream interpreter: the operator
// dispatcher that drives the path builder, graphics state, text state,
// and font cache to turn a page's operator stream into a scene and a
// spatial index.
//
// It is grounded on the teacher's render/renderer.go
// (renderPage/renderContentStream's big operator switch, the font
// lookup-then-substitute cascade in the "Tf" case) and
// contentstream/processor.go (the AddHandler dispatch shape, generalized
// here to a plain switch per spec.md §9's "a string map is simpler and
// the source's choice"), plus original_source/render/src/lib.rs's
// Cache::load_font for the font pre-pass and its PDF_FONTS side effect.
package interp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkwell-doc/pagerender/colorspace"
	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/font/sysfont"
	"github.com/inkwell-doc/pagerender/function"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/gstate"
	"github.com/inkwell-doc/pagerender/internal/common"
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/paint"
	gopath "github.com/inkwell-doc/pagerender/path"
	"github.com/inkwell-doc/pagerender/scene"
	"github.com/inkwell-doc/pagerender/textstate"
)

// MalformedOperandError is returned when an operator's operands cannot be
// extracted as the types it expects. Fatal for the page per spec.md §7.
type MalformedOperandError struct {
	Operator string
	Detail   string
}

func (e *MalformedOperandError) Error() string {
	return fmt.Sprintf("interp: malformed operand for %q: %s", e.Operator, e.Detail)
}

// MissingResourceError is returned when a named color space, extended
// graphics state, or XObject resource is absent from the page resources.
// An unresolved font name is not an error: Tf logs it and clears the font.
type MissingResourceError struct {
	Kind string
	Name page.Name
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("interp: missing %s resource %q", e.Kind, e.Name)
}

// InvalidTextModeError is returned by Tr for an out-of-range render mode.
type InvalidTextModeError struct {
	Mode int
}

func (e *InvalidTextModeError) Error() string {
	return fmt.Sprintf("interp: invalid text render mode %d", e.Mode)
}

// StackUnderflowError is returned when Q is applied with no matching q.
type StackUnderflowError struct{}

func (e *StackUnderflowError) Error() string {
	return "interp: graphics state stack underflow on restore"
}

// FontParser parses raw font program bytes into a font.Font. The
// interpreter is agnostic to the concrete backend (font/unitypefont for
// embedded CID fonts, font/sfntfont for plain substitute TrueType files).
type FontParser func(data []byte) (font.Font, error)

// Renderer holds the state that persists across pages: the font cache and
// the two font parsers used for embedded vs. substitute font programs.
// Matches spec.md §5's "font cache is owned by the renderer and lives
// across pages".
type Renderer struct {
	Fonts           *font.Locking
	ParseEmbedded   FontParser
	ParseSubstitute FontParser
	Finder          *sysfont.Finder
	Logger          common.Logger
}

// NewRenderer builds a Renderer with an empty font cache, defaulting its
// logger to the package-level common.Log (a DummyLogger until a host
// application calls common.SetLogger), matching the teacher's own
// package-level logger convention.
func NewRenderer(parseEmbedded, parseSubstitute FontParser) *Renderer {
	return &Renderer{
		Fonts:           font.NewLocking(font.NewCache()),
		ParseEmbedded:   parseEmbedded,
		ParseSubstitute: parseSubstitute,
		Finder:          sysfont.NewFinder(),
		Logger:          common.Log,
	}
}

// Options configures one page render: an operator budget, an optional
// font cache to use instead of the Renderer's own (letting a caller pool
// one cache across several Renderer values, or isolate one page from the
// Renderer's shared cache), and a logger for recoverable per-page
// failures. The zero Options is "no limit, Renderer's own cache and
// logger".
type Options struct {
	OpLimit int
	Fonts   *font.Locking
	Logger  common.Logger
}

// pageState is the mutable state local to one RenderPageN invocation
// (spec.md §5: "path builder, graphics state, text state, and save stack
// are all local to one render_page invocation").
type pageState struct {
	r         *Renderer
	scene     *scene.Scene
	items     *scene.ItemMap
	resources page.Resources
	root      geom.Matrix
	fonts     *font.Locking
	logger    common.Logger

	gs      gstate.State
	gsStack gstate.Stack
	text    textstate.State
	builder *gopath.Builder

	inTextObject bool
	remaining    int // operators left to consume, <0 means unlimited
}

// RenderPage renders a page with no operator limit, the Renderer's own
// font cache, and the Renderer's logger.
func (r *Renderer) RenderPage(pg page.Page) (*scene.Scene, *scene.ItemMap, error) {
	return r.RenderPageWithOptions(pg, Options{})
}

// RenderPageN renders up to opLimit operators from a page's content
// stream (0 means unlimited), per spec.md §6's public contract.
func (r *Renderer) RenderPageN(pg page.Page, opLimit int) (*scene.Scene, *scene.ItemMap, error) {
	return r.RenderPageWithOptions(pg, Options{OpLimit: opLimit})
}

// RenderPageWithOptions renders pg under opts, falling back to the
// Renderer's own font cache and logger when opts leaves them nil.
func (r *Renderer) RenderPageWithOptions(pg page.Page, opts Options) (*scene.Scene, *scene.ItemMap, error) {
	fonts := opts.Fonts
	if fonts == nil {
		fonts = r.Fonts
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	if logger == nil {
		logger = common.DummyLogger{}
	}

	sc := scene.New()
	items := scene.NewItemMap()

	black := sc.PushPaint(paint.NewSolid(paint.Black))
	white := sc.PushPaint(paint.NewSolid(paint.White))

	left, top, right, bottom := pg.MediaBox()
	root := rootTransform(left, top)

	pushBackground(sc, root, left, top, right, bottom, white)

	resources := pg.Resources()
	r.loadPageFonts(resources, fonts, logger)

	ps := &pageState{
		r:         r,
		scene:     sc,
		items:     items,
		resources: resources,
		root:      root,
		fonts:     fonts,
		logger:    logger,
		// The graphics-state CTM starts at identity: root is the fixed
		// document-to-device flip applied once, separately, at paint and
		// glyph-show time (see opPaint/show), not folded into the CTM a
		// cm operator accumulates onto.
		gs:        gstate.Default(geom.Identity(), black),
		text:      textstate.Default(),
		builder:   gopath.NewBuilder(),
		remaining: opts.OpLimit,
	}
	if opts.OpLimit <= 0 {
		ps.remaining = -1
	}

	if err := ps.run(pg.Operations()); err != nil {
		return sc, items, err
	}
	return sc, items, nil
}

// run consumes operations, honoring the operator limit and recursing into
// form XObjects (which share the remaining-operator budget).
func (ps *pageState) run(ops []page.Operation) error {
	for _, op := range ops {
		if ps.remaining == 0 {
			return nil
		}
		if ps.remaining > 0 {
			ps.remaining--
		}
		if err := ps.dispatch(op); err != nil {
			return err
		}
	}
	return nil
}

func (ps *pageState) dispatch(op page.Operation) error {
	switch op.Operator {
	case "q", "Q", "cm", "w", "gs":
		return ps.opGraphicsState(op)
	case "m", "l", "c", "v", "h", "re":
		return ps.opPathBuild(op)
	case "S", "s", "f", "F", "f*", "B", "B*", "b", "b*", "n":
		return ps.opPaint(op)
	case "W", "W*":
		return ps.opClip(op)
	case "rg", "RG", "k", "K", "g", "G", "cs", "CS", "sc", "scn", "SC", "SCN":
		return ps.opColor(op)
	case "Do":
		return ps.opDo(op)
	case "BT":
		ps.inTextObject = true
		ps.text.ProcBT()
		return nil
	case "ET":
		ps.inTextObject = false
		return nil
	case "Tc", "Tw", "Tz", "TL", "Ts", "Tr", "Tf", "Td", "TD", "Tm", "T*":
		return ps.opTextState(op)
	case "Tj", "'", "\"", "TJ":
		return ps.opShowText(op)
	case "BMC", "BDC", "EMC":
		return nil
	case "J", "j", "M", "d":
		// Unhandled no-ops in the minimal core: line cap, join, miter
		// limit, and dash pattern never affect geometry (stroking is
		// always butt-cap/miter per spec.md §4.2).
		return nil
	default:
		return nil
	}
}

// rootTransform maps document user space (origin at media-box lower-left,
// Y up) to device space (origin at upper-left, Y down), the same
// coordinate flip the teacher applies with Translate(0, height)+Scale(1,-1)
// before interpreting a page's content stream.
func rootTransform(left, top float64) geom.Matrix {
	return geom.NewMatrix(1, 0, 0, -1, -left, top)
}

// pushBackground draws the media-box-sized white rectangle every page
// starts with, matching the teacher's white-background Push/Fill/Pop.
func pushBackground(sc *scene.Scene, root geom.Matrix, left, top, right, bottom float64, white paint.ID) {
	b := gopath.NewBuilder()
	b.Rect(left, bottom, right-left, top-bottom)
	outline := b.Take().Transformed(root)
	sc.Draw(outline, scene.Style{Mode: scene.DrawFill, FillRule: scene.FillNonZero, FillPaint: white}, gstate.NoClip)
}

// loadPageFonts is the font-cache pre-pass: every font resource reachable
// from the page's resources is built once, up front, before the
// interpretation loop runs, matching spec.md §5's mutate-outside-the-loop
// rule. Failures are recoverable: spec.md §7's "missing font data with no
// standard fallback" — the cache simply has no entry for that name, and
// Tf-driven lookups against it clear the current text font. Every skip is
// logged at Warning so a caller can tell a font silently failed to build
// instead of mysteriously missing from the rendered page.
func (r *Renderer) loadPageFonts(resources page.Resources, fonts *font.Locking, logger common.Logger) {
	for name, res := range resources.Fonts() {
		key := string(name)
		if _, ok := fonts.Get(key); ok {
			continue
		}
		entry, err := r.loadFont(res, logger)
		if err != nil {
			logger.Warning("interp: skipping font resource %q: %s", key, err)
			continue
		}
		fonts.Put(key, entry)
	}
}

// loadFont builds one font entry, preferring embedded font program bytes
// and falling back to a system-substitute font file, per
// original_source's Cache::load_font priority order (embedded data, then
// a standard-font substitute, then "no font data" which the pre-pass
// treats as a skip).
func (r *Renderer) loadFont(res page.FontResource, logger common.Logger) (*font.Entry, error) {
	if data := res.EmbeddedData(); len(data) > 0 {
		writeFontDebugCopy(string(res.Name()), data, logger)
		return font.Build(res, r.ParseEmbedded)
	}

	candidates := append([]string{res.StandardFont()}, sysfont.StandardSubstitutes...)
	for _, name := range candidates {
		if name == "" {
			continue
		}
		path, ok := r.Finder.Match(name)
		if !ok {
			continue
		}
		data, err := sysfont.Load(path)
		if err != nil {
			logger.Debug("interp: system font substitute %q failed to load: %s", name, err)
			continue
		}
		return font.Build(substituteResource{res, data}, r.ParseSubstitute)
	}
	return nil, fmt.Errorf("interp: no embedded or substitute font data for %q", res.Name())
}

// substituteResource overrides EmbeddedData with a loaded system-font
// file's bytes while keeping the document's own encoding/CID metadata,
// so font.Build's construction algorithm runs unchanged against a
// substitute font program.
type substituteResource struct {
	page.FontResource
	data []byte
}

func (s substituteResource) EmbeddedData() []byte { return s.data }

// writeFontDebugCopy implements the PDF_FONTS environment hatch: when
// set, every embedded font's raw bytes are written there under its name.
// Per spec.md §9 this is a debugging aid, not core behavior; a write
// failure is logged at Debug and otherwise ignored rather than
// panicking the render.
func writeFontDebugCopy(name string, data []byte, logger common.Logger) {
	dir := os.Getenv("PDF_FONTS")
	if dir == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		logger.Debug("interp: PDF_FONTS debug copy for %q failed: %s", name, err)
	}
}

// resolveColorSpace turns a document-described color space definition
// into a concrete colorspace.ColorSpace, recursively resolving a
// Separation's alternate or an Indexed space's base.
func resolveColorSpace(def page.ColorSpaceDef) (colorspace.ColorSpace, error) {
	switch def.Kind {
	case page.CSDeviceGray:
		return colorspace.DeviceGray{}, nil
	case page.CSDeviceRGB, page.CSICCBased:
		return colorspace.DeviceRGB{}, nil
	case page.CSDeviceCMYK:
		return colorspace.DeviceCMYK{}, nil
	case page.CSSeparation:
		if def.Alternate == nil {
			return nil, fmt.Errorf("interp: separation color space missing alternate")
		}
		alt, err := resolveColorSpace(*def.Alternate)
		if err != nil {
			return nil, err
		}
		fn, err := function.Parse(def.TintTransform, def.TintDomain, alt.NumComponents())
		if err != nil {
			return nil, fmt.Errorf("interp: separation tint transform: %w", err)
		}
		return colorspace.Separation{Transform: fn, Alternate: alt}, nil
	case page.CSIndexed:
		if def.Base == nil {
			return nil, fmt.Errorf("interp: indexed color space missing base")
		}
		var base colorspace.Base
		switch def.Base.Kind {
		case page.CSDeviceGray:
			base = colorspace.BaseDeviceGray
		case page.CSDeviceCMYK:
			base = colorspace.BaseDeviceCMYK
		default:
			base = colorspace.BaseDeviceRGB
		}
		return colorspace.Indexed{Base: base, LUT: def.Lookup}, nil
	default:
		return colorspace.DeviceRGB{}, nil
	}
}
