// Package paint defines the interned, immutable color/pattern values a
// scene's paths are drawn with: either a solid RGBA color or an image
// pattern under its own affine transform.
package paint

import "github.com/inkwell-doc/pagerender/geom"

// RGBA is a device color, alpha always 255 in the minimal core (no
// transparency group support).
type RGBA struct {
	R, G, B, A uint8
}

// Black and White are the two paints the interpreter seeds the graphics
// state and page background with before any content-stream operator runs.
var (
	Black = RGBA{0, 0, 0, 255}
	White = RGBA{255, 255, 255, 255}
)

// Image is the pixel source backing a pattern paint: packed RGBA8 rows,
// width*height*4 bytes, top-to-bottom.
type Image struct {
	Width, Height int
	Pix           []byte
}

// At returns the pixel at (x, y), clamping to the image edges so pattern
// sampling never needs its own bounds-checking branch.
func (im *Image) At(x, y int) RGBA {
	if im == nil || im.Width == 0 || im.Height == 0 {
		return RGBA{}
	}
	if x < 0 {
		x = 0
	}
	if x >= im.Width {
		x = im.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= im.Height {
		y = im.Height - 1
	}
	i := (y*im.Width + x) * 4
	return RGBA{im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3]}
}

// Kind distinguishes the two shapes a Paint can take.
type Kind int

const (
	KindSolid Kind = iota
	KindPattern
)

// Paint is either a solid color or an image pattern mapped into the
// scene's device space by Transform. It is immutable once interned into a Scene.
type Paint struct {
	Kind      Kind
	Solid     RGBA
	Pattern   *Image
	Transform geom.Matrix
}

// NewSolid returns a solid-color paint.
func NewSolid(c RGBA) Paint {
	return Paint{Kind: KindSolid, Solid: c}
}

// NewPattern returns an image-pattern paint, sampled through transform
// (pattern space to the scene's device space).
func NewPattern(img *Image, transform geom.Matrix) Paint {
	return Paint{Kind: KindPattern, Pattern: img, Transform: transform}
}

// ID is the stable handle a Scene hands back for an interned Paint.
type ID int
