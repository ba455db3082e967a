package parser

import (
	"regexp"
	"strconv"
	"strings"

	"asa/pkg/ast"
)

type terminalRegex struct {
	Pattern  *regexp.Regexp
	Expected string // description used in diagnostics
}

var (
	identifierRegex = terminalRegex{regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*`), "identifier"}
	digitsRegex     = terminalRegex{regexp.MustCompile(`^[0-9]+`), "number"}
	stringBodyRegex = terminalRegex{regexp.MustCompile(`^[a-zA-Z0-9 ]*`), "string characters"}
)

// Operators in match order; two-character operators come first.
var (
	additiveOps       = []string{string(ast.OpAdd), string(ast.OpSub)}
	multiplicativeOps = []string{string(ast.OpMul), string(ast.OpDiv)}
	exponentOps       = []string{string(ast.OpPow)}
	comparisonOps     = []string{
		string(ast.OpEq), string(ast.OpNe), string(ast.OpLe),
		string(ast.OpGe), string(ast.OpLt), string(ast.OpGt),
	}
)

// tag matches the literal s
func (p *Parser) tag(s string) parseFunc[string] {
	return func(in input) (string, input, bool) {
		if strings.HasPrefix(in.rest(), s) {
			return s, in.advance(len(s)), true
		}
		p.fail(in, strconv.Quote(s))
		return "", in, false
	}
}

// oneOf matches the first of the given literals
func (p *Parser) oneOf(literals []string) parseFunc[string] {
	alternatives := make([]parseFunc[string], len(literals))
	for i, l := range literals {
		alternatives[i] = p.tag(l)
	}
	return alt(alternatives...)
}

// keyword matches word when it is not immediately followed by another
// identifier character
func (p *Parser) keyword(word string) parseFunc[string] {
	return func(in input) (string, input, bool) {
		rest := in.rest()
		if !strings.HasPrefix(rest, word) || (len(rest) > len(word) && isAlphanumeric(rest[len(word)])) {
			p.fail(in, strconv.Quote(word))
			return "", in, false
		}
		return word, in.advance(len(word)), true
	}
}

// space1 matches at least one space or tab
func (p *Parser) space1(in input) (string, input, bool) {
	out := in.skip(" \t")
	if out.off == in.off {
		p.fail(in, "space")
		return "", in, false
	}
	return in.src[in.off:out.off], out, true
}

// match matches a regex terminal at the cursor. Patterns that can match the
// empty string always succeed.
func (p *Parser) match(t terminalRegex) parseFunc[string] {
	return func(in input) (string, input, bool) {
		loc := t.Pattern.FindStringIndex(in.rest())
		if loc == nil {
			p.fail(in, t.Expected)
			return "", in, false
		}
		return in.rest()[:loc[1]], in.advance(loc[1]), true
	}
}

// Check if a byte is an ASCII letter or digit
func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
