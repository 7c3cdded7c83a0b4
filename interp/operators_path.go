package interp

import (
	"github.com/inkwell-doc/pagerender/page"
	gopath "github.com/inkwell-doc/pagerender/path"
	"github.com/inkwell-doc/pagerender/scene"
)

// opGraphicsState handles q, Q, cm, w, and gs, grounded on renderer.go's
// corresponding cases (ctx.Push/Pop, ctx.SetMatrix(ctx.Matrix().Mult(m)),
// the scaled line-width assignment, and the ExtGState dictionary lookup).
func (ps *pageState) opGraphicsState(op page.Operation) error {
	switch op.Operator {
	case "q":
		ps.gsStack.Push(ps.gs)
		return nil
	case "Q":
		s, ok := ps.gsStack.Pop()
		if !ok {
			return &StackUnderflowError{}
		}
		ps.gs = s
		return nil
	case "cm":
		fv, err := floats6(op)
		if err != nil {
			return err
		}
		m := newMatrix(fv)
		ps.gs.Transform.Concat(m)
		return nil
	case "w":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.gs.StrokeWidth = fv[0]
		return nil
	case "gs":
		if len(op.Operands) != 1 {
			return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
		}
		name, err := page.NameOf(op.Operands[0])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		eg, ok := ps.resources.ExtGState(name)
		if !ok {
			return &MissingResourceError{Kind: "ExtGState", Name: name}
		}
		if eg.LineWidth != nil {
			ps.gs.StrokeWidth = *eg.LineWidth
		}
		if eg.HasFont {
			entry, ok := ps.fonts.Get(string(eg.Font))
			if !ok {
				ps.logger.Warning("interp: ExtGState %q references unbuilt font %q", name, eg.Font)
				ps.text.ProcTf(nil, eg.FontSize)
			} else {
				ps.text.ProcTf(entry, eg.FontSize)
			}
		}
		return nil
	}
	return nil
}

// opPathBuild handles m, l, c, v, h, re, appending to the current path
// builder in user space (the builder is transformed to device space at
// paint time, grounded on ctx.MoveTo/LineTo/CubicTo/ClosePath/
// DrawRectangle).
func (ps *pageState) opPathBuild(op page.Operation) error {
	switch op.Operator {
	case "m":
		fv, err := floats(op, 2)
		if err != nil {
			return err
		}
		ps.builder.MoveTo(fv[0], fv[1])
	case "l":
		fv, err := floats(op, 2)
		if err != nil {
			return err
		}
		ps.builder.LineTo(fv[0], fv[1])
	case "c":
		fv, err := floats(op, 6)
		if err != nil {
			return err
		}
		ps.builder.CubicTo(fv[0], fv[1], fv[2], fv[3], fv[4], fv[5])
	case "v":
		fv, err := floats(op, 4)
		if err != nil {
			return err
		}
		curX, curY := ps.builder.CurrentPoint()
		ps.builder.CubicTo(curX, curY, fv[0], fv[1], fv[2], fv[3])
	case "h":
		ps.builder.Close()
	case "re":
		fv, err := floats(op, 4)
		if err != nil {
			return err
		}
		ps.builder.Rect(fv[0], fv[1], fv[2], fv[3])
	}
	return nil
}

// opPaint handles the painting operators (S, s, f, F, f*, B, B*, b, b*, n),
// which consume the current path built so far and clear it, grounded on
// renderer.go's fill/stroke/fill-then-stroke cases and the teacher's
// ClosePath-then-NewSubPath idiom for the close variants.
func (ps *pageState) opPaint(op page.Operation) error {
	switch op.Operator {
	case "s", "b", "b*":
		ps.builder.Close()
	}

	outline := ps.builder.Take().Transformed(ps.gs.Transform).Transformed(ps.root)
	fillRule := scene.FillNonZero
	if op.Operator == "f*" || op.Operator == "B*" || op.Operator == "b*" {
		fillRule = scene.FillEvenOdd
	}

	style := scene.Style{
		FillRule:    fillRule,
		FillPaint:   ps.gs.FillPaint,
		StrokePaint: ps.gs.StrokePaint,
		Stroke:      ps.strokeStyle(),
	}
	switch op.Operator {
	case "n":
		style.Mode = scene.DrawNone
	case "S", "s":
		style.Mode = scene.DrawStroke
	case "f", "F", "f*":
		style.Mode = scene.DrawFill
	case "B", "B*", "b", "b*":
		style.Mode = scene.DrawFillThenStroke
	}
	if !outline.IsEmpty() {
		ps.scene.Draw(outline, style, ps.gs.Clip)
	}
	return nil
}

// strokeStyle derives the device-space stroke width and miter limit per
// spec.md §4.2: effective_width = stroke_width * average axis scale,
// miter-limit set equal to effective_width.
func (ps *pageState) strokeStyle() gopath.StrokeStyle {
	w := ps.gs.EffectiveStrokeWidth()
	return gopath.StrokeStyle{Width: w, MiterLimit: w}
}

// opClip handles W/W*: it interns the path built so far into the scene's
// clip table, in device space under the indicated fill rule, grounded on
// ctx.ClipPreserve(). The minimal core has no clip-mask rasterization, so
// the clip id only identifies the bounding geometry; it persists in the
// graphics state until a restore pops it (spec.md §8 scenario 6).
func (ps *pageState) opClip(op page.Operation) error {
	fillRule := scene.FillNonZero
	if op.Operator == "W*" {
		fillRule = scene.FillEvenOdd
	}
	outline := ps.builder.Take().Transformed(ps.gs.Transform).Transformed(ps.root)
	ps.gs.Clip = ps.scene.PushClipPath(outline, fillRule)
	return nil
}
