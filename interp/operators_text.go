package interp

import (
	"github.com/inkwell-doc/pagerender/page"
	"github.com/inkwell-doc/pagerender/scene"
	"github.com/inkwell-doc/pagerender/textstate"
)

// opTextState handles the text-state scalar and matrix operators, grounded
// on renderer.go's Tc/Tw/Tz/TL/Ts/Td/TD/T*/Tm/Tf cases.
func (ps *pageState) opTextState(op page.Operation) error {
	switch op.Operator {
	case "Tc":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.text.ProcTc(fv[0])
	case "Tw":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.text.ProcTw(fv[0])
	case "Tz":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.text.ProcTz(fv[0])
	case "TL":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.text.ProcTL(fv[0])
	case "Ts":
		fv, err := floats(op, 1)
		if err != nil {
			return err
		}
		ps.text.ProcTs(fv[0])
	case "Tr":
		iv, err := intOperand(op)
		if err != nil {
			return err
		}
		if err := ps.text.ProcTr(iv); err != nil {
			return &InvalidTextModeError{Mode: iv}
		}
	case "Td":
		fv, err := floats(op, 2)
		if err != nil {
			return err
		}
		ps.text.ProcTd(fv[0], fv[1])
	case "TD":
		fv, err := floats(op, 2)
		if err != nil {
			return err
		}
		ps.text.ProcTD(fv[0], fv[1])
	case "T*":
		ps.text.ProcTStar()
	case "Tm":
		fv, err := floats6(op)
		if err != nil {
			return err
		}
		ps.text.ProcTm(fv[0], fv[1], fv[2], fv[3], fv[4], fv[5])
	case "Tf":
		return ps.opTf(op)
	}
	return nil
}

func (ps *pageState) opTf(op page.Operation) error {
	if len(op.Operands) != 2 {
		return &MalformedOperandError{Operator: op.Operator, Detail: "expected 2 operands"}
	}
	name, err := page.NameOf(op.Operands[0])
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	size, err := page.Float(op.Operands[1])
	if err != nil {
		return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}

	if _, ok := ps.resources.Font(name); !ok {
		ps.logger.Warning("interp: Tf references undeclared font resource %q", name)
		ps.text.ProcTf(nil, size)
		return nil
	}
	entry, ok := ps.fonts.Get(string(name))
	if !ok {
		ps.logger.Warning("interp: font resource %q has no built cache entry", name)
		ps.text.ProcTf(nil, size)
		return nil
	}
	ps.text.ProcTf(entry, size)
	return nil
}

func intOperand(op page.Operation) (int, error) {
	if len(op.Operands) != 1 {
		return 0, &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
	}
	v, err := page.Int(op.Operands[0])
	if err != nil {
		return 0, &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	return v, nil
}

// opShowText handles Tj, ', ", and TJ, grounded on renderer.go's cases,
// which all bottom out in textState.ProcTj/Translate. Here they bottom
// out in textstate.State.Show/AdvanceForNumber, with the resolved glyphs
// pushed into the scene and their rects folded into the spatial index
// under the operator's own label (spec.md §4.4).
func (ps *pageState) opShowText(op page.Operation) error {
	switch op.Operator {
	case "Tj":
		if len(op.Operands) != 1 {
			return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
		}
		data, err := page.StringBytes(op.Operands[0])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		ps.show(data, op.Operator)
	case "'":
		if len(op.Operands) != 1 {
			return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
		}
		data, err := page.StringBytes(op.Operands[0])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		ps.text.ProcTStar()
		ps.show(data, op.Operator)
	case "\"":
		if len(op.Operands) != 3 {
			return &MalformedOperandError{Operator: op.Operator, Detail: "expected 3 operands"}
		}
		aw, err := page.Float(op.Operands[0])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		ac, err := page.Float(op.Operands[1])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		data, err := page.StringBytes(op.Operands[2])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		ps.text.ProcTw(aw)
		ps.text.ProcTc(ac)
		ps.text.ProcTStar()
		ps.show(data, op.Operator)
	case "TJ":
		if len(op.Operands) != 1 {
			return &MalformedOperandError{Operator: op.Operator, Detail: "expected 1 operand"}
		}
		arr, err := page.ArrayOf(op.Operands[0])
		if err != nil {
			return &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
		}
		for _, el := range arr {
			switch v := el.(type) {
			case []byte:
				ps.show(v, op.Operator)
			case float64, int:
				n, _ := page.Float(v)
				ps.text.AdvanceForNumber(n)
			}
		}
	}
	return nil
}

// show resolves and draws one byte string's glyphs, recording each
// glyph's device rect into the spatial index under label.
func (ps *pageState) show(data []byte, label string) {
	shown := ps.text.Show(data, ps.root, ps.gs.Transform)
	style := ps.textStyle()
	for _, g := range shown {
		if style.Mode != scene.DrawNone {
			ps.scene.Draw(g.Outline, style, ps.gs.Clip)
		}
		if g.HasRect {
			ps.items.Push(g.Rect, label)
		}
	}
}

// textStyle derives the scene draw style from the current text render
// mode, grounded on renderer.go's GraphicsState.get_text_style: fill
// mode fills with winding, stroke mode strokes, fill-then-stroke draws
// both, and invisible and both clip modes (4 and 5) produce no ink (clip
// emission is out of scope for the minimal core, per spec.md §4.1).
func (ps *pageState) textStyle() scene.Style {
	style := scene.Style{
		FillRule:    scene.FillNonZero,
		FillPaint:   ps.gs.FillPaint,
		StrokePaint: ps.gs.StrokePaint,
		Stroke:      ps.strokeStyle(),
	}
	switch ps.text.Mode {
	case textstate.ModeFill:
		style.Mode = scene.DrawFill
	case textstate.ModeStroke:
		style.Mode = scene.DrawStroke
	case textstate.ModeFillStroke:
		style.Mode = scene.DrawFillThenStroke
	default:
		style.Mode = scene.DrawNone
	}
	return style
}
