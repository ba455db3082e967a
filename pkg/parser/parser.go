package parser

import (
	"asa/pkg/ast"
)

type Parser struct {
	src      string   // source text
	furthest int      // offset of the furthest failed match
	expected []string // what would have matched at furthest
	cause    error    // specific failure at furthest, if any
}

// NewParser creates a new parser instance
func NewParser(src string) *Parser {
	return &Parser{
		src:      src,
		furthest: -1,
	}
}

// Parse parses the whole source as a program. On success it also returns the
// input the grammar did not consume.
func (p *Parser) Parse() (*ast.Program, string, error) {
	p.furthest, p.expected, p.cause = -1, nil, nil

	prog, out, ok := p.program(input{src: p.src})
	if !ok {
		return nil, p.src, p.errorAt(0, ErrSyntax)
	}

	return prog, out.rest(), nil
}

// Parse parses src and returns the program together with any unconsumed input
func Parse(src string) (*ast.Program, string, error) {
	return NewParser(src).Parse()
}

// ParseProgram parses src and fails unless the whole input is consumed
func ParseProgram(src string) (*ast.Program, error) {
	p := NewParser(src)

	prog, rest, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if rest != "" {
		return nil, p.errorAt(len(src)-len(rest), ErrTrailingInput)
	}

	return prog, nil
}

// fail records that expected did not match at in
func (p *Parser) fail(in input, expected string) {
	p.failWith(in, expected, nil)
}

// failWith records a failure with a specific cause
func (p *Parser) failWith(in input, expected string, cause error) {
	switch {
	case in.off > p.furthest:
		p.furthest = in.off
		p.expected = []string{expected}
		p.cause = cause
	case in.off == p.furthest:
		for _, e := range p.expected {
			if e == expected {
				return
			}
		}
		p.expected = append(p.expected, expected)
		if p.cause == nil {
			p.cause = cause
		}
	}
}

// errorAt builds the error for a parse that stopped at offset. The furthest
// recorded failure is reported when it lies beyond offset since that is
// where the input actually went wrong.
func (p *Parser) errorAt(offset int, sentinel error) *Error {
	err := &Error{
		Pos:       positionAt(p.src, offset),
		Remaining: p.src[offset:],
		Err:       sentinel,
	}

	if p.furthest >= offset {
		err.Pos = positionAt(p.src, p.furthest)
		err.Expected = p.expected
		err.Remaining = p.src[p.furthest:]
		if p.cause != nil {
			err.Err = p.cause
		}
	}

	return err
}
