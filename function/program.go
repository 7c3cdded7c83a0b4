package function

import "fmt"

// Program is a parsed PostScript calculator function body: a flat sequence
// of pushable literals (numbers, booleans), nested procedures (for if /
// ifelse), and operand names. Unlike the teacher's ps package, numbers are
// not split into separate integer/real object types — Type 4 functions
// only ever consume and produce real numbers, so this evaluator collapses
// both cases onto float64 and recovers integer semantics (bitshift, and,
// or, xor, mod, idiv) at the point those operators truncate their operand.
type Program []interface{}

// procedure marks a nested { ... } block kept on the stack until an if/
// ifelse operator consumes it.
type procedure Program

func newProgram() *Program {
	p := Program{}
	return &p
}

func (p *Program) append(v interface{}) {
	*p = append(*p, v)
}

func (p *Program) String() string {
	s := "{ "
	for _, v := range *p {
		s += fmt.Sprintf("%v ", v)
	}
	return s + "}"
}
