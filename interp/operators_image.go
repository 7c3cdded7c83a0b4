package interp

import (
	"fmt"

	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/paint"
	gopath "github.com/inkwell-doc/pagerender/path"
	"github.com/inkwell-doc/pagerender/scene"
)

// opDo handles the Do operator: draw a named image XObject, or recurse
// into a named form XObject's own operator stream. Grounded on
// renderer.go's "Do" case, which does the same ToGoImage/DrawImageAnchored
// for images and a matrix-then-recurse for forms.
func (ps *pageState) opDo(op page.Operation) error {
	if len(op.Operands) != 1 {
		return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
	}
	name, err := page.NameOf(op.Operands[0])
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	xobj, ok := ps.resources.XObject(name)
	if !ok {
		return &MissingResourceError{Kind: "XObject", Name: name}
	}
	if xobj.IsImage() {
		return ps.drawImage(xobj)
	}
	return ps.runForm(xobj)
}

// drawImage decodes an image XObject's packed samples into an RGBA
// pattern and fills the unit square with it, mapped through the current
// transform the same way the teacher scales a 1x1-unit-square image draw
// up to the CTM, per spec.md §4's image-drawing rules: 1 byte/pixel is
// gray, 3 is RGB, 4 is RGBA, anything else is a fatal malformed-stream
// error (spec.md §7).
func (ps *pageState) drawImage(xobj page.XObject) error {
	w, h := xobj.Width(), xobj.Height()
	data := xobj.Data()
	if w <= 0 || h <= 0 {
		return nil
	}

	px, err := decodeImagePixels(data, w, h)
	if err != nil {
		return err
	}

	// Pattern space is the image's own pixel grid (row 0 at the top, as
	// Pix is packed). scaleFlip maps a pixel coordinate into the unit
	// square the drawn outline occupies — scaling by 1/w, 1/h and
	// flipping Y, since pixel row 0 is the unit square's top (v=1), not
	// its bottom — then the CTM and the root transform carry that
	// unit-square point into device space, the same composition the drawn
	// outline goes through, as the original composes its image draw's
	// scale-and-flip with the current transform.
	scaleFlip := geom.NewMatrix(1/float64(w), 0, 0, -1/float64(h), 0, 1)
	patternTransform := ps.root.Mult(ps.gs.Transform.Mult(scaleFlip))
	id := ps.scene.PushPaint(paint.NewPattern(&paint.Image{Width: w, Height: h, Pix: px}, patternTransform))

	b := gopath.NewBuilder()
	b.Rect(0, 0, 1, 1)
	outline := b.Take().Transformed(ps.gs.Transform).Transformed(ps.root)
	style := scene.Style{Mode: scene.DrawFill, FillRule: scene.FillNonZero, FillPaint: id}
	ps.scene.Draw(outline, style, ps.gs.Clip)
	return nil
}

// decodeImagePixels expands packed image samples to RGBA8, matching
// spec.md's 1/3/4 bytes-per-pixel decoding: gray replicated across
// channels, RGB given full alpha, RGBA taken as-is.
func decodeImagePixels(data []byte, w, h int) ([]byte, error) {
	n := w * h
	if n == 0 {
		return nil, nil
	}
	bpp := len(data) / n
	switch bpp {
	case 1:
		out := make([]byte, n*4)
		for i := 0; i < n; i++ {
			g := data[i]
			out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = g, g, g, 255
		}
		return out, nil
	case 3:
		out := make([]byte, n*4)
		for i := 0; i < n; i++ {
			out[i*4] = data[i*3]
			out[i*4+1] = data[i*3+1]
			out[i*4+2] = data[i*3+2]
			out[i*4+3] = 255
		}
		return out, nil
	case 4:
		out := make([]byte, n*4)
		copy(out, data[:n*4])
		return out, nil
	default:
		return nil, fmt.Errorf("interp: image data with unsupported bytes-per-pixel %d", bpp)
	}
}

// runForm recurses into a form XObject's own operator stream, pushing the
// form matrix onto the current transform and swapping in its resource
// dictionary (keeping the current one when the form has none) for the
// duration of the recursive run, then restoring both
// (grounded on renderer.go's Form-XObject case, which does the matrix
// concat and resource substitution around a nested renderContentStream
// call).
func (ps *pageState) runForm(xobj page.XObject) error {
	a, b, c, d, e, f := xobj.FormMatrix()

	savedGS := ps.gs
	savedResources := ps.resources

	ps.gs.Transform.Concat(newMatrix([]float64{a, b, c, d, e, f}))
	if res := xobj.FormResources(); res != nil {
		ps.resources = res
	}

	err := ps.run(xobj.FormOperations())

	ps.gs = savedGS
	ps.resources = savedResources
	return err
}
