package interpreter

import (
	"fmt"

	"asa/pkg/ast"
)

// Eval evaluates a single node. Program and FunctionDefine only update the
// function table and yield Bool(true).
func (i *Interpreter) Eval(node ast.Node) (Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.evalProgram(n)
	case *ast.FunctionDefine:
		return i.evalFunctionDefine(n)
	case *ast.FunctionCall:
		return i.evalFunctionCall(n)
	case *ast.FunctionReturn:
		if n.Value == nil {
			return Value{}, fmt.Errorf("%w: empty return", ErrMalformedNode)
		}
		return i.Eval(n.Value)
	case *ast.Statement:
		return i.evalStatement(n)
	case *ast.VariableDefine:
		return i.evalVariableDefine(n)
	case *ast.Identifier:
		return i.lookup(n.Name)
	case *ast.Expression:
		return i.evalExpression(n)
	case *ast.MathExpression:
		return i.evalMath(n)
	case *ast.ComparisonExpression:
		return i.evalComparison(n)
	case *ast.Number:
		return NewNumber(n.Value), nil
	case *ast.String:
		return NewString(n.Value), nil
	case *ast.Bool:
		return NewBool(n.Value), nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil node", ErrMalformedNode)
	default:
		// conditionals are parsed but have no evaluation rule
		return Value{}, fmt.Errorf("%w: %s", ErrUnhandledNode, node.Kind())
	}
}

func (i *Interpreter) evalProgram(n *ast.Program) (Value, error) {
	for _, child := range n.Body {
		switch c := child.(type) {
		case *ast.FunctionDefine:
			if _, err := i.evalFunctionDefine(c); err != nil {
				return Value{}, err
			}
		case *ast.Expression:
			i.define(MainFunction, nil, []ast.Node{&ast.FunctionReturn{Value: c}})
		case *ast.Statement:
			i.define(MainFunction, nil, []ast.Node{c})
		}
	}

	return NewBool(true), nil
}

func (i *Interpreter) evalFunctionDefine(n *ast.FunctionDefine) (Value, error) {
	if n.Name == nil {
		return Value{}, fmt.Errorf("%w: function definition without a name", ErrMalformedNode)
	}

	i.define(n.Name.Name, n.Params, n.Body)
	return NewBool(true), nil
}

func (i *Interpreter) evalFunctionCall(n *ast.FunctionCall) (Value, error) {
	fn, ok := i.functions[n.Name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUndefinedFunction, n.Name)
	}

	actuals := n.Args
	if len(actuals) > 0 {
		if args, ok := actuals[0].(*ast.FunctionArguments); ok {
			actuals = args.Args
		}
	}

	// arguments are evaluated in the caller's frame, before the callee's is pushed
	frame := newFrame(n.Name)
	if fn.params != nil {
		for ix, formal := range fn.params.Args {
			name, err := paramName(formal)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", n.Name, err)
			}
			if ix >= len(actuals) {
				return Value{}, fmt.Errorf("%w: %s expects %s at position %d", ErrMissingArgument, n.Name, name, ix)
			}

			v, err := i.Eval(actuals[ix])
			if err != nil {
				return Value{}, err
			}
			frame.Set(name, v)
		}
	}

	if len(fn.body) == 0 {
		return Value{}, fmt.Errorf("%w: %s has an empty body", ErrMalformedNode, n.Name)
	}

	if err := i.pushFrame(frame); err != nil {
		return Value{}, fmt.Errorf("%w: calling %s", err, n.Name)
	}
	defer i.popFrame()

	var result Value
	for _, stmt := range fn.body {
		v, err := i.Eval(stmt)
		if err != nil {
			return Value{}, err
		}
		result = v
	}

	return result, nil
}

// paramName extracts the identifier of a formal parameter
func paramName(formal ast.Node) (string, error) {
	switch f := formal.(type) {
	case *ast.Identifier:
		return f.Name, nil
	case *ast.Expression:
		if id, ok := f.Value.(*ast.Identifier); ok {
			return id.Name, nil
		}
	}

	return "", fmt.Errorf("%w: parameter must be an identifier", ErrMalformedNode)
}

func (i *Interpreter) evalStatement(n *ast.Statement) (Value, error) {
	switch n.Body.(type) {
	case *ast.VariableDefine, *ast.FunctionReturn:
		return i.Eval(n.Body)
	case nil:
		return Value{}, fmt.Errorf("%w: empty statement", ErrUnknownStatement)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownStatement, n.Body.Kind())
	}
}

func (i *Interpreter) evalVariableDefine(n *ast.VariableDefine) (Value, error) {
	if n.Name == nil || n.Value == nil {
		return Value{}, fmt.Errorf("%w: incomplete variable definition", ErrMalformedNode)
	}

	v, err := i.Eval(n.Value)
	if err != nil {
		return Value{}, err
	}

	f := i.currentFrame()
	if f == nil {
		return Value{}, fmt.Errorf("%w: cannot define %s outside a function", ErrNoFrame, n.Name.Name)
	}

	f.Set(n.Name.Name, v)
	return v, nil
}

// lookup resolves a variable in the innermost frame only
func (i *Interpreter) lookup(name string) (Value, error) {
	f := i.currentFrame()
	if f == nil {
		return Value{}, fmt.Errorf("%w: %s referenced outside a function", ErrNoFrame, name)
	}

	v, ok := f.Get(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}
	return v, nil
}

func (i *Interpreter) evalExpression(n *ast.Expression) (Value, error) {
	switch n.Value.(type) {
	case *ast.ComparisonExpression, *ast.MathExpression, *ast.Number, *ast.FunctionCall,
		*ast.String, *ast.Bool, *ast.Identifier:
		return i.Eval(n.Value)
	case nil:
		return Value{}, fmt.Errorf("%w: empty expression", ErrUnknownExpression)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownExpression, n.Value.Kind())
	}
}

func (i *Interpreter) evalMath(n *ast.MathExpression) (Value, error) {
	lhs, rhs, err := i.evalOperands(n.LHS, n.RHS)
	if err != nil {
		return Value{}, err
	}

	if lhs.Kind != KindNumber || rhs.Kind != KindNumber {
		return Value{}, fmt.Errorf("%w: %s %s %s", ErrNonNumericOperands, lhs.Kind, n.Op, rhs.Kind)
	}

	a, b := lhs.Num, rhs.Num
	switch n.Op {
	case ast.OpAdd:
		return NewNumber(a + b), nil
	case ast.OpSub:
		return NewNumber(a - b), nil
	case ast.OpMul:
		return NewNumber(a * b), nil
	case ast.OpDiv:
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}
		return NewNumber(a / b), nil
	case ast.OpPow:
		if b < 0 {
			return Value{}, fmt.Errorf("%w: %d", ErrNegativeExponent, b)
		}
		return NewNumber(pow(a, b)), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUndefinedOperator, n.Op)
	}
}

// pow computes base^exp by squaring; int32 wrapping gives the same result
// as multiplying base exp times.
func pow(base, exp int32) int32 {
	result := int32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (i *Interpreter) evalComparison(n *ast.ComparisonExpression) (Value, error) {
	lhs, rhs, err := i.evalOperands(n.LHS, n.RHS)
	if err != nil {
		return Value{}, err
	}

	switch {
	case lhs.Kind == KindNumber && rhs.Kind == KindNumber:
		a, b := lhs.Num, rhs.Num
		switch n.Op {
		case ast.OpEq:
			return NewBool(a == b), nil
		case ast.OpNe:
			return NewBool(a != b), nil
		case ast.OpLe:
			return NewBool(a <= b), nil
		case ast.OpGe:
			return NewBool(a >= b), nil
		case ast.OpLt:
			return NewBool(a < b), nil
		case ast.OpGt:
			return NewBool(a > b), nil
		default:
			return Value{}, fmt.Errorf("%w: %q", ErrUndefinedOperator, n.Op)
		}

	case lhs.Kind == KindBool && rhs.Kind == KindBool:
		switch n.Op {
		case ast.OpEq:
			return NewBool(lhs.Bool == rhs.Bool), nil
		case ast.OpNe:
			return NewBool(lhs.Bool != rhs.Bool), nil
		default:
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidBoolComparison, n.Op)
		}

	default:
		return Value{}, fmt.Errorf("%w: %s %s %s", ErrInvalidComparison, lhs.Kind, n.Op, rhs.Kind)
	}
}

// evalOperands evaluates both sides of a binary node, left first
func (i *Interpreter) evalOperands(lhsNode, rhsNode ast.Node) (Value, Value, error) {
	if lhsNode == nil || rhsNode == nil {
		return Value{}, Value{}, fmt.Errorf("%w: binary expression needs two operands", ErrMalformedNode)
	}

	lhs, err := i.Eval(lhsNode)
	if err != nil {
		return Value{}, Value{}, err
	}

	rhs, err := i.Eval(rhsNode)
	if err != nil {
		return Value{}, Value{}, err
	}

	return lhs, rhs, nil
}
