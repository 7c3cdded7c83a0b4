package interp

import (
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/page"
)

// floats extracts exactly n numeric operands from op, returning a
// MalformedOperandError (fatal per spec.md §7) on a count or type
// mismatch.
func floats(op page.Operation, n int) ([]float64, error) {
	if len(op.Operands) != n {
		return nil, &MalformedOperandError{Operator: op.Operator, Detail: "wrong operand count"}
	}
	fv, err := page.Floats(op.Operands)
	if err != nil {
		return nil, &MalformedOperandError{Operator: op.Operator, Detail: err.Error()}
	}
	return fv, nil
}

// floats6 is the common case for cm/Tm: six numeric operands.
func floats6(op page.Operation) ([]float64, error) {
	return floats(op, 6)
}

// newMatrix builds a geom.Matrix from a 6-element a b c d e f slice.
func newMatrix(fv []float64) geom.Matrix {
	return geom.NewMatrix(fv[0], fv[1], fv[2], fv[3], fv[4], fv[5])
}
