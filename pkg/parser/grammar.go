package parser

import (
	"strconv"

	"asa/pkg/ast"
)

// program := many1( function_definition | statement | expression )
func (p *Parser) program(in input) (*ast.Program, input, bool) {
	items, out, ok := many1(alt(p.functionDefinition, p.statement, p.expression))(in.blanks())
	if !ok {
		return nil, in, false
	}

	return &ast.Program{Body: items}, out.blanks(), true
}

// function_definition := "fn" identifier "(" arguments? ")" "{" statement+ "}"
func (p *Parser) functionDefinition(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("fn")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}

	name, in, ok := p.identifier(in)
	if !ok {
		return nil, start, false
	}

	if _, in, ok = p.tag("(")(in.spaces()); !ok {
		return nil, start, false
	}
	params, in, _ := optional(p.arguments)(in.spaces())
	if _, in, ok = p.tag(")")(in.spaces()); !ok {
		return nil, start, false
	}

	if _, in, ok = p.tag("{")(in.spaces()); !ok {
		return nil, start, false
	}
	body, in, ok := many1(p.statement)(in.blanks())
	if !ok {
		return nil, start, false
	}
	if _, in, ok = p.tag("}")(in.blanks()); !ok {
		return nil, start, false
	}

	def := &ast.FunctionDefine{Name: name.(*ast.Identifier), Body: body}
	if len(params) > 0 {
		def.Params = &ast.FunctionArguments{Args: params}
	}

	return def, in.blanks(), true
}

// arguments := expression ( "," expression )*
func (p *Parser) arguments(in input) ([]ast.Node, input, bool) {
	first, out, ok := p.expression(in)
	if !ok {
		return nil, in, false
	}

	rest, out, _ := many0(p.otherArgument)(out)
	return append([]ast.Node{first}, rest...), out, true
}

func (p *Parser) otherArgument(in input) (ast.Node, input, bool) {
	_, out, ok := p.tag(",")(in.spaces())
	if !ok {
		return nil, in, false
	}

	arg, out, ok := p.expression(out.spaces())
	if !ok {
		return nil, in, false
	}
	return arg, out, true
}

// statement := (variable_define | function_return | else_if_statement | else_statement | if_statement) ";"
func (p *Parser) statement(in input) (ast.Node, input, bool) {
	body, out, ok := alt(
		p.variableDefine,
		p.functionReturn,
		p.elseIfStatement,
		p.elseStatement,
		p.ifStatement,
	)(in.blanks())
	if !ok {
		return nil, in, false
	}

	if _, out, ok = p.tag(";")(out); !ok {
		return nil, in, false
	}

	return &ast.Statement{Body: body}, out.blanks(), true
}

// variable_define := "let" identifier "=" expression
func (p *Parser) variableDefine(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("let")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}

	name, in, ok := p.identifier(in)
	if !ok {
		return nil, start, false
	}
	if _, in, ok = p.tag("=")(in.spaces()); !ok {
		return nil, start, false
	}

	value, in, ok := p.expression(in.spaces())
	if !ok {
		return nil, start, false
	}

	return &ast.VariableDefine{Name: name.(*ast.Identifier), Value: value}, in, true
}

// function_return := "return" (function_call | expression | identifier)
func (p *Parser) functionReturn(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("return")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}

	value, in, ok := alt(p.functionCall, p.expression, p.identifier)(in)
	if !ok {
		return nil, start, false
	}

	return &ast.FunctionReturn{Value: value}, in, true
}

// if_statement := "if" comparison "{" statement* "}"
func (p *Parser) ifStatement(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("if")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}

	cond, body, in, ok := p.guardedBlock(in)
	if !ok {
		return nil, start, false
	}

	return &ast.IfStatement{Cond: cond, Body: body}, in, true
}

// else_if_statement := "else" "if" comparison "{" statement* "}"
func (p *Parser) elseIfStatement(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("else")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.keyword("if")(in); !ok {
		return nil, start, false
	}
	if _, in, ok = p.space1(in); !ok {
		return nil, start, false
	}

	cond, body, in, ok := p.guardedBlock(in)
	if !ok {
		return nil, start, false
	}

	return &ast.ElseIfStatement{Cond: cond, Body: body}, in, true
}

// else_statement := "else" "{" statement* "}"
func (p *Parser) elseStatement(in input) (ast.Node, input, bool) {
	start := in
	var ok bool

	if _, in, ok = p.keyword("else")(in); !ok {
		return nil, start, false
	}

	body, in, ok := p.block(in.skip(" \t"))
	if !ok {
		return nil, start, false
	}

	return &ast.ElseStatement{Body: body}, in, true
}

// guardedBlock parses `comparison "{" statement* "}"`
func (p *Parser) guardedBlock(in input) (ast.Node, []ast.Node, input, bool) {
	cond, out, ok := p.comparison(in)
	if !ok {
		return nil, nil, in, false
	}

	body, out, ok := p.block(out.skip(" \t"))
	if !ok {
		return nil, nil, in, false
	}
	return cond, body, out, true
}

// block parses `"{" statement* "}"`
func (p *Parser) block(in input) ([]ast.Node, input, bool) {
	_, out, ok := p.tag("{")(in)
	if !ok {
		return nil, in, false
	}

	body, out, _ := many0(p.statement)(out.blanks())
	if _, out, ok = p.tag("}")(out.blanks()); !ok {
		return nil, in, false
	}
	return body, out, true
}

// expression := boolean | comparison | math_expression | function_call | number | string | identifier
func (p *Parser) expression(in input) (ast.Node, input, bool) {
	value, out, ok := alt(
		p.boolean,
		p.comparison,
		p.mathExpression,
		p.functionCall,
		p.number,
		p.string,
		p.identifier,
	)(in)
	if !ok {
		return nil, in, false
	}

	return &ast.Expression{Value: value}, out, true
}

// comparison := value op value
func (p *Parser) comparison(in input) (ast.Node, input, bool) {
	lhs, out, ok := p.value(in)
	if !ok {
		return nil, in, false
	}

	op, out, ok := p.oneOf(comparisonOps)(out.spaces())
	if !ok {
		return nil, in, false
	}

	rhs, out, ok := p.value(out.spaces())
	if !ok {
		return nil, in, false
	}

	return &ast.ComparisonExpression{Op: ast.CompareOp(op), LHS: lhs, RHS: rhs}, out, true
}

// value := boolean | number | identifier, with trailing spaces and tabs consumed
func (p *Parser) value(in input) (ast.Node, input, bool) {
	v, out, ok := alt(p.boolean, p.number, p.identifier)(in)
	if !ok {
		return nil, in, false
	}
	return v, out.skip(" \t"), true
}

// math_expression is the bottom rung of the precedence ladder
func (p *Parser) mathExpression(in input) (ast.Node, input, bool) {
	return p.additive(in)
}

// additive := multiplicative (("+" | "-") multiplicative)*
func (p *Parser) additive(in input) (ast.Node, input, bool) {
	return p.foldLeft(p.multiplicative, additiveOps)(in)
}

// multiplicative := exponent (("*" | "/") exponent)*
func (p *Parser) multiplicative(in input) (ast.Node, input, bool) {
	return p.foldLeft(p.exponent, multiplicativeOps)(in)
}

// exponent := atom ("^" atom)*, folded to the left like every other level
func (p *Parser) exponent(in input) (ast.Node, input, bool) {
	return p.foldLeft(p.atom, exponentOps)(in)
}

// atom := function_call | number | identifier | "(" additive ")"
func (p *Parser) atom(in input) (ast.Node, input, bool) {
	return alt(p.functionCall, p.number, p.identifier, p.parenthetical)(in)
}

func (p *Parser) parenthetical(in input) (ast.Node, input, bool) {
	_, out, ok := p.tag("(")(in.spaces())
	if !ok {
		return nil, in, false
	}

	inner, out, ok := p.additive(out.spaces())
	if !ok {
		return nil, in, false
	}

	if _, out, ok = p.tag(")")(out.spaces()); !ok {
		return nil, in, false
	}
	return inner, out.spaces(), true
}

type infix struct {
	op      ast.MathOp
	operand ast.Node
}

// foldLeft parses one operand followed by any number of (operator, operand)
// pairs and folds them into left-nested MathExpressions.
func (p *Parser) foldLeft(operand parseFunc[ast.Node], ops []string) parseFunc[ast.Node] {
	pair := func(in input) (infix, input, bool) {
		op, out, ok := p.oneOf(ops)(in.spaces())
		if !ok {
			return infix{}, in, false
		}

		rhs, out, ok := operand(out.spaces())
		if !ok {
			return infix{}, in, false
		}
		return infix{op: ast.MathOp(op), operand: rhs}, out, true
	}

	return func(in input) (ast.Node, input, bool) {
		head, out, ok := operand(in)
		if !ok {
			return nil, in, false
		}

		tail, out, _ := many0(pair)(out)
		for _, t := range tail {
			head = &ast.MathExpression{Op: t.op, LHS: head, RHS: t.operand}
		}
		return head, out, true
	}
}

// function_call := identifier "(" arguments? ")"
func (p *Parser) functionCall(in input) (ast.Node, input, bool) {
	name, out, ok := p.match(identifierRegex)(in)
	if !ok {
		return nil, in, false
	}

	if _, out, ok = p.tag("(")(out); !ok {
		return nil, in, false
	}
	args, out, _ := optional(p.arguments)(out.spaces())
	if _, out, ok = p.tag(")")(out.spaces()); !ok {
		return nil, in, false
	}

	return &ast.FunctionCall{Name: name, Args: args}, out, true
}

// identifier := letter alphanumeric*
func (p *Parser) identifier(in input) (ast.Node, input, bool) {
	return mapTo(p.match(identifierRegex), func(name string) ast.Node {
		return &ast.Identifier{Name: name}
	})(in)
}

// number := digit+, within the signed 32-bit range
func (p *Parser) number(in input) (ast.Node, input, bool) {
	digits, out, ok := p.match(digitsRegex)(in)
	if !ok {
		return nil, in, false
	}

	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		p.failWith(in, "32-bit integer", ErrNumberRange)
		return nil, in, false
	}

	return &ast.Number{Value: int32(n)}, out, true
}

// boolean := "true" | "false"
func (p *Parser) boolean(in input) (ast.Node, input, bool) {
	word, out, ok := alt(p.keyword("true"), p.keyword("false"))(in)
	if !ok {
		return nil, in, false
	}
	return &ast.Bool{Value: word == "true"}, out, true
}

// string := '"' (alphanumeric | space)* '"'
func (p *Parser) string(in input) (ast.Node, input, bool) {
	_, out, ok := p.tag(`"`)(in)
	if !ok {
		return nil, in, false
	}

	body, out, _ := p.match(stringBodyRegex)(out)
	if _, out, ok = p.tag(`"`)(out); !ok {
		return nil, in, false
	}

	return &ast.String{Value: body}, out, true
}
