// Package page declares the external collaborator surface the interpreter
// consumes: the document parser's page/resources/operator types. The
// interpreter package depends only on these interfaces, never on a
// concrete document model — mirroring how the teacher's render package
// depends on model.PdfPage/PdfPageResources rather than parsing PDF files
// itself.
package page

import "fmt"

// Name is a PDF name operand, e.g. /DeviceRGB, without its leading slash.
type Name string

// Operand is one operator argument as already tokenized by the content
// stream lexer: a float64, a Name, a []byte (string), or an []Operand
// (array). Dictionaries never appear as content-stream operands in the
// minimal core (inline images are out of scope).
type Operand interface{}

// Operation is one decoded content-stream instruction.
type Operation struct {
	Operator string
	Operands []Operand
}

// Float extracts a numeric operand.
func Float(op Operand) (float64, error) {
	switch v := op.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("page: operand %v (%T) is not a number", op, op)
}

// Floats extracts a slice of operands as float64, in order.
func Floats(ops []Operand) ([]float64, error) {
	out := make([]float64, len(ops))
	for i, op := range ops {
		v, err := Float(op)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Int extracts an integer operand (truncating a float operand).
func Int(op Operand) (int, error) {
	f, err := Float(op)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// NameOf extracts a name operand.
func NameOf(op Operand) (Name, error) {
	n, ok := op.(Name)
	if !ok {
		return "", fmt.Errorf("page: operand %v (%T) is not a name", op, op)
	}
	return n, nil
}

// StringBytes extracts a string operand's raw bytes.
func StringBytes(op Operand) ([]byte, error) {
	b, ok := op.([]byte)
	if !ok {
		return nil, fmt.Errorf("page: operand %v (%T) is not a string", op, op)
	}
	return b, nil
}

// ArrayOf extracts an array operand (used by TJ).
func ArrayOf(op Operand) ([]Operand, error) {
	a, ok := op.([]Operand)
	if !ok {
		return nil, fmt.Errorf("page: operand %v (%T) is not an array", op, op)
	}
	return a, nil
}
