package function

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// Parser is a minimal recursive-descent reader for the brace-delimited
// PostScript calculator language PDF Type 4 functions are written in.
type Parser struct {
	r *bufio.Reader
}

// NewParser returns a Parser reading the given program source, including
// its enclosing braces (e.g. "{ dup 0 lt { neg } if }").
func NewParser(src []byte) *Parser {
	return &Parser{r: bufio.NewReader(bytes.NewReader(src))}
}

// Parse reads the whole program.
func (p *Parser) Parse() (*Program, error) {
	p.skipSpace()
	b, err := p.r.Peek(1)
	if err != nil {
		return nil, err
	}
	if b[0] != '{' {
		return nil, errors.New("function: program must start with '{'")
	}
	return p.parseBlock()
}

func (p *Parser) parseBlock() (*Program, error) {
	if _, err := p.r.ReadByte(); err != nil { // consume '{'
		return nil, err
	}
	prog := newProgram()
	for {
		p.skipSpace()
		b, err := p.r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil, errors.New("function: unterminated block")
			}
			return nil, err
		}
		switch {
		case b[0] == '}':
			p.r.ReadByte()
			return prog, nil
		case b[0] == '{':
			inner, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			prog.append(procedure(*inner))
		case isNumberStart(b[0]):
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			prog.append(n)
		default:
			tok, err := p.parseToken()
			if err != nil {
				return nil, err
			}
			switch tok {
			case "true":
				prog.append(true)
			case "false":
				prog.append(false)
			default:
				prog.append(operand(tok))
			}
		}
	}
}

func (p *Parser) skipSpace() {
	for {
		b, err := p.r.Peek(1)
		if err != nil {
			return
		}
		if isSpace(b[0]) {
			p.r.ReadByte()
			continue
		}
		return
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == 0
}

func isDelimiter(b byte) bool {
	return b == '{' || b == '}'
}

func isNumberStart(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.'
}

func (p *Parser) parseNumber() (float64, error) {
	var buf []byte
	for {
		b, err := p.r.Peek(1)
		if err != nil {
			break
		}
		if isSpace(b[0]) || isDelimiter(b[0]) {
			break
		}
		c, _ := p.r.ReadByte()
		buf = append(buf, c)
	}
	return strconv.ParseFloat(string(buf), 64)
}

func (p *Parser) parseToken() (string, error) {
	var buf []byte
	for {
		b, err := p.r.Peek(1)
		if err != nil {
			break
		}
		if isSpace(b[0]) || isDelimiter(b[0]) {
			break
		}
		c, _ := p.r.ReadByte()
		buf = append(buf, c)
	}
	if len(buf) == 0 {
		return "", errors.New("function: empty token")
	}
	return string(buf), nil
}
