package interp

import (
	"github.com/inkwell-doc/pagerender/colorspace"
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/paint"
)

// opColor handles every color-setting operator, grounded on renderer.go's
// rg/RG/k/K/g/G/cs/CS/sc/scn/SC/SCN cases. rg/RG/k/K/g/G bypass the
// current color space and resolve directly through the matching device
// space, matching the teacher's direct model.PdfColorDeviceRGB/CMYK/Gray
// construction; cs/CS select a resource color space; sc/scn/SC/SCN
// resolve operands through whichever color space is currently selected.
func (ps *pageState) opColor(op page.Operation) error {
	switch op.Operator {
	case "rg", "RG":
		return ps.setDirectColor(op, colorspace.DeviceRGB{})
	case "k", "K":
		return ps.setDirectColor(op, colorspace.DeviceCMYK{})
	case "g", "G":
		return ps.setDirectColor(op, colorspace.DeviceGray{})
	case "cs", "CS":
		return ps.selectColorSpace(op)
	case "sc", "scn", "SC", "SCN":
		return ps.setCurrentSpaceColor(op)
	}
	return nil
}

func (ps *pageState) setDirectColor(op page.Operation, cs colorspace.ColorSpace) error {
	fv, err := floats(op, cs.NumComponents())
	if err != nil {
		return err
	}
	rgba, err := cs.Resolve(fv)
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	id := ps.scene.PushPaint(paint.NewSolid(rgba))
	if isUpper(op.Operator) {
		ps.gs.StrokePaint = id
		ps.gs.StrokeColorSpace = cs
	} else {
		ps.gs.FillPaint = id
		ps.gs.FillColorSpace = cs
	}
	return nil
}

func (ps *pageState) selectColorSpace(op page.Operation) error {
	if len(op.Operands) != 1 {
		return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
	}
	name, err := page.NameOf(op.Operands[0])
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	def, ok := ps.resources.ColorSpace(name)
	if !ok {
		return &MissingResourceError{Kind: "ColorSpace", Name: name}
	}
	cs, err := resolveColorSpace(def)
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	if op.Operator == "CS" {
		ps.gs.StrokeColorSpace = cs
	} else {
		ps.gs.FillColorSpace = cs
	}
	return nil
}

func (ps *pageState) setCurrentSpaceColor(op page.Operation) error {
	cs := ps.gs.FillColorSpace
	if isUpper(op.Operator) {
		cs = ps.gs.StrokeColorSpace
	}
	// scn/SCN may carry a trailing pattern name operand (not supported in
	// the minimal core); only the leading numeric operands are used.
	numeric := op.Operands
	if n := len(numeric); n > 0 {
		if _, isName := numeric[n-1].(page.Name); isName {
			numeric = numeric[:n-1]
		}
	}
	fv, err := page.Floats(numeric)
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	rgba, err := cs.Resolve(fv)
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	id := ps.scene.PushPaint(paint.NewSolid(rgba))
	if isUpper(op.Operator) {
		ps.gs.StrokePaint = id
	} else {
		ps.gs.FillPaint = id
	}
	return nil
}

// isUpper reports whether operator is the stroke-color variant: every
// color operator pair in the minimal core is either fully lowercase
// (fill) or fully uppercase (stroke).
func isUpper(operator string) bool {
	for _, c := range operator {
		if c >= 'a' && c <= 'z' {
			return false
		}
	}
	return true
}
