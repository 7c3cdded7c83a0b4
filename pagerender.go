// Package pagerender turns a page's decoded content stream into a scene
// (an ordered list of filled/stroked paths) and a spatial index from
// device-space rectangles to the text-showing operators that produced
// them.
//
// It is the public facade over the interp package, wiring the two
// concrete font backends (font/unitypefont for embedded font programs,
// font/sfntfont for system-substitute TrueType files) the way the
// teacher's top-level library wires its own model/render packages
// together for a caller that just wants to render a page.
package pagerender

import (
	"github.com/inkwell-doc/pagerender/font/sfntfont"
	"github.com/inkwell-doc/pagerender/font/unitypefont"
	"github.com/inkwell-doc/pagerender/internal/common"
	"github.com/inkwell-doc/pagerender/interp"
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/scene"
)

// SetLogger installs logger as the package-wide default. A Cache takes
// the default in effect when NewCache runs, so it reaches Caches created
// after this call that don't set their own Options.Logger per call,
// mirroring the teacher's package-level common.Log/SetLogger convention.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}

// Cache is a renderer whose font cache persists across pages, matching
// spec.md §5's "font cache is owned by the renderer and lives across
// pages". It is safe for concurrent use across goroutines each rendering
// a different page, since the font cache is the only state shared
// between renders and it is guarded by its own lock.
type Cache struct {
	r *interp.Renderer
}

// NewCache returns a Cache with an empty font cache, wired to the
// embedded-CID-font backend (font/unitypefont) and the system-substitute
// backend (font/sfntfont).
func NewCache() *Cache {
	return &Cache{r: interp.NewRenderer(unitypefont.Parse, sfntfont.Parse)}
}

// RenderPage renders pg with no operator limit.
func (c *Cache) RenderPage(pg page.Page) (*scene.Scene, *scene.ItemMap, error) {
	return c.r.RenderPage(pg)
}

// RenderPageN renders up to opLimit operators from pg's content stream (0
// means unlimited), the harness entry point spec.md §6 describes for
// bounding runaway or malicious content streams.
func (c *Cache) RenderPageN(pg page.Page, opLimit int) (*scene.Scene, *scene.ItemMap, error) {
	return c.r.RenderPageN(pg, opLimit)
}

// RenderPageWithOptions renders pg under opts (operator budget, a font
// cache to use instead of this Cache's own, and a per-call logger),
// exposing interp.Options to callers that need more than an operator
// limit.
func (c *Cache) RenderPageWithOptions(pg page.Page, opts interp.Options) (*scene.Scene, *scene.ItemMap, error) {
	return c.r.RenderPageWithOptions(pg, opts)
}
