package interpreter_test

import (
	"errors"
	"math"
	"testing"

	"asa/pkg/ast"
	"asa/pkg/interpreter"
	"asa/pkg/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func run(t *testing.T, src string) (interpreter.Value, error) {
	t.Helper()
	return interpreter.Execute(mustParse(t, src))
}

func mustRun(t *testing.T, src string) interpreter.Value {
	t.Helper()
	v, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error for %q: %v", src, err)
	}
	return v
}

func num(n int32) *ast.Number { return &ast.Number{Value: n} }

func TestArithmetic(t *testing.T) {
	pairs := [][2]int32{{7, 2}, {-7, 2}, {100, -3}, {0, 5}, {math.MaxInt32, 1}}
	ops := []struct {
		op ast.MathOp
		fn func(a, b int32) int32
	}{
		{ast.OpAdd, func(a, b int32) int32 { return a + b }},
		{ast.OpSub, func(a, b int32) int32 { return a - b }},
		{ast.OpMul, func(a, b int32) int32 { return a * b }},
		{ast.OpDiv, func(a, b int32) int32 { return a / b }},
	}

	it := interpreter.NewInterpreter()
	for _, p := range pairs {
		for _, o := range ops {
			expr := &ast.MathExpression{Op: o.op, LHS: num(p[0]), RHS: num(p[1])}
			got, err := it.Eval(expr)
			if err != nil {
				t.Errorf("%d %s %d: unexpected error %v", p[0], o.op, p[1], err)
				continue
			}
			if want := interpreter.NewNumber(o.fn(p[0], p[1])); got != want {
				t.Errorf("%d %s %d: expected %#v, got %#v", p[0], o.op, p[1], want, got)
			}
		}
	}
}

func TestExponent(t *testing.T) {
	tests := []struct {
		base, exp int32
		expected  int32
	}{
		{2, 4, 16},
		{2, 0, 1},
		{0, 0, 1},
		{-3, 3, -27},
		{10, 9, 1000000000},
		{2, 31, math.MinInt32},
	}

	it := interpreter.NewInterpreter()
	for _, test := range tests {
		got, err := it.Eval(&ast.MathExpression{Op: ast.OpPow, LHS: num(test.base), RHS: num(test.exp)})
		if err != nil {
			t.Errorf("%d ^ %d: unexpected error %v", test.base, test.exp, err)
			continue
		}
		if got.Num != test.expected {
			t.Errorf("%d ^ %d: expected %d, got %d", test.base, test.exp, test.expected, got.Num)
		}
	}

	var iterated int32 = 1
	for i := 0; i < 21; i++ {
		iterated *= 3
	}
	got, err := it.Eval(&ast.MathExpression{Op: ast.OpPow, LHS: num(3), RHS: num(21)})
	if err != nil || got.Num != iterated {
		t.Errorf("3 ^ 21: expected %d from repeated multiplication, got %d (err %v)", iterated, got.Num, err)
	}

	_, err = it.Eval(&ast.MathExpression{Op: ast.OpPow, LHS: num(2), RHS: num(-1)})
	if !errors.Is(err, interpreter.ErrNegativeExponent) {
		t.Errorf("expected ErrNegativeExponent, got %v", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "7 / 0")
	if !errors.Is(err, interpreter.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestLeftAssociativeFolding(t *testing.T) {
	tests := []struct {
		src      string
		expected int32
	}{
		{"10 + 2*6", 22},
		{"((10+2)*6)/4", 18},
		{"10 - 4 - 3", 3},
		{"64 / 4 / 2", 8},
		{"2 ^ 3 ^ 2", 64},
		{"2 * 3 ^ 2", 18},
		{"1 + 2 * 3 - 4 / 2", 5},
	}

	for _, test := range tests {
		got := mustRun(t, test.src)
		if got != interpreter.NewNumber(test.expected) {
			t.Errorf("%q: expected %d, got %#v", test.src, test.expected, got)
		}
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		src      string
		expected bool
	}{
		{"2 < 3", true},
		{"2 >= 3", false},
		{"3 >= 3", true},
		{"4 == 4", true},
		{"4 != 4", false},
		{"5 > 1", true},
		{"5 <= 1", false},
	}

	for _, test := range tests {
		got := mustRun(t, test.src)
		if got != interpreter.NewBool(test.expected) {
			t.Errorf("%q: expected %v, got %#v", test.src, test.expected, got)
		}
	}

	it := interpreter.NewInterpreter()
	boolCmp := func(op ast.CompareOp) (interpreter.Value, error) {
		return it.Eval(&ast.ComparisonExpression{Op: op, LHS: &ast.Bool{Value: true}, RHS: &ast.Bool{Value: false}})
	}
	if v, err := boolCmp(ast.OpNe); err != nil || !v.Bool {
		t.Errorf("true != false: expected true, got %#v (err %v)", v, err)
	}
	if v, err := boolCmp(ast.OpEq); err != nil || v.Bool {
		t.Errorf("true == false: expected false, got %#v (err %v)", v, err)
	}
	if _, err := boolCmp(ast.OpGe); !errors.Is(err, interpreter.ErrInvalidBoolComparison) {
		t.Errorf("true >= false: expected ErrInvalidBoolComparison, got %v", err)
	}

	mixed := []ast.Node{&ast.Bool{Value: true}, &ast.String{Value: "a"}}
	for _, rhs := range mixed {
		_, err := it.Eval(&ast.ComparisonExpression{Op: ast.OpEq, LHS: num(1), RHS: rhs})
		if !errors.Is(err, interpreter.ErrInvalidComparison) {
			t.Errorf("1 == %s: expected ErrInvalidComparison, got %v", rhs.Kind(), err)
		}
	}
	_, err := it.Eval(&ast.ComparisonExpression{Op: ast.OpEq, LHS: &ast.String{Value: "a"}, RHS: &ast.String{Value: "a"}})
	if !errors.Is(err, interpreter.ErrInvalidComparison) {
		t.Errorf("string comparison: expected ErrInvalidComparison, got %v", err)
	}
}

func TestFrameIsolation(t *testing.T) {
	src := `fn main() { let x = 1; return foo(); }
fn foo() { let y = 2; return bar(); }
fn bar() { return x; }`

	_, err := run(t, src)
	if !errors.Is(err, interpreter.ErrUndefinedVariable) {
		t.Fatalf("callee must not see caller variables, got %v", err)
	}

	src = `fn main() { let r = foo(); return y; }
fn foo() { let y = 2; return y; }`
	_, err = run(t, src)
	if !errors.Is(err, interpreter.ErrUndefinedVariable) {
		t.Fatalf("caller must not see callee variables, got %v", err)
	}
}

func TestArgumentsEvaluatedInCallerFrame(t *testing.T) {
	src := `fn main() { let a = 4; return double(a + 1); }
fn double(a) { return a * 2; }`

	if got := mustRun(t, src); got != interpreter.NewNumber(10) {
		t.Errorf("expected Number(10), got %#v", got)
	}
}

func TestRecursiveCallsGetFreshFrames(t *testing.T) {
	src := `fn main() { return outer(1); }
fn outer(n) { let v = inner(n + 1); return n + v; }
fn inner(n) { let v = n * 10; return v; }`

	if got := mustRun(t, src); got != interpreter.NewNumber(21) {
		t.Errorf("expected Number(21), got %#v", got)
	}
}

func TestStackUnwoundAfterFailure(t *testing.T) {
	it := interpreter.NewInterpreter()
	prog := mustParse(t, `fn main() { return foo(); } fn foo() { let x = 1; return x / 0; }`)

	if _, err := it.Execute(prog); !errors.Is(err, interpreter.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if it.Depth() != 0 {
		t.Fatalf("expected empty frame stack after failure, got depth %d", it.Depth())
	}

	limited := interpreter.NewInterpreter(interpreter.WithMaxDepth(8))
	if _, err := limited.Execute(mustParse(t, "fn main(){return main();}")); !errors.Is(err, interpreter.ErrMaxDepthExceeded) {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", err)
	}
	if limited.Depth() != 0 {
		t.Fatalf("expected empty frame stack after overflow, got depth %d", limited.Depth())
	}
}

func TestExecuteIsIdempotent(t *testing.T) {
	prog := mustParse(t, "fn main(){return foo(1,2,3);} fn foo(a,b,c){return a+b+c;}")

	it := interpreter.NewInterpreter()
	for n := 0; n < 3; n++ {
		got, err := it.Execute(prog)
		if err != nil || got != interpreter.NewNumber(6) {
			t.Fatalf("run %d: expected Number(6), got %#v (err %v)", n, got, err)
		}
		fresh, err := interpreter.Execute(prog)
		if err != nil || fresh != got {
			t.Fatalf("run %d: fresh interpreter disagrees: %#v (err %v)", n, fresh, err)
		}
	}
}

func TestProgramRegistration(t *testing.T) {
	it := interpreter.NewInterpreter()
	prog := mustParse(t, "fn foo(){return 1;} fn foo(){return 2;} foo()")

	v, err := it.Eval(prog)
	if err != nil || v != interpreter.NewBool(true) {
		t.Fatalf("expected success marker, got %#v (err %v)", v, err)
	}
	if !it.Defined("foo") || !it.Defined(interpreter.MainFunction) {
		t.Fatalf("expected foo and main to be defined")
	}

	got, err := it.Execute(prog)
	if err != nil || got != interpreter.NewNumber(2) {
		t.Fatalf("last definition should win, got %#v (err %v)", got, err)
	}

	it.Reset()
	if it.Defined("foo") {
		t.Errorf("Reset should clear the function table")
	}
}

func TestTopLevelStatementBecomesMain(t *testing.T) {
	it := interpreter.NewInterpreter()
	prog := mustParse(t, `fn main() { return 1; } let answer = 42;`)

	got, err := it.Execute(prog)
	if err != nil || got != interpreter.NewNumber(42) {
		t.Fatalf("top-level statement should replace main, got %#v (err %v)", got, err)
	}
}

func TestStructuralErrors(t *testing.T) {
	it := interpreter.NewInterpreter()

	tests := []struct {
		name     string
		node     ast.Node
		expected error
	}{
		{"if statement", &ast.IfStatement{Cond: &ast.Bool{Value: true}}, interpreter.ErrUnhandledNode},
		{"else statement", &ast.ElseStatement{}, interpreter.ErrUnhandledNode},
		{"else if statement", &ast.ElseIfStatement{Cond: &ast.Bool{Value: true}}, interpreter.ErrUnhandledNode},
		{"bare arguments", &ast.FunctionArguments{}, interpreter.ErrUnhandledNode},
		{"statement of expression", &ast.Statement{Body: &ast.Expression{Value: num(1)}}, interpreter.ErrUnknownStatement},
		{"expression of statement", &ast.Expression{Value: &ast.Statement{}}, interpreter.ErrUnknownExpression},
		{"unknown operator", &ast.MathExpression{Op: "%", LHS: num(1), RHS: num(2)}, interpreter.ErrUndefinedOperator},
		{"unknown comparison", &ast.ComparisonExpression{Op: "<>", LHS: num(1), RHS: num(2)}, interpreter.ErrUndefinedOperator},
		{"half a math expression", &ast.MathExpression{Op: ast.OpAdd, LHS: num(1)}, interpreter.ErrMalformedNode},
		{"identifier without frame", &ast.Identifier{Name: "x"}, interpreter.ErrNoFrame},
		{"let without frame", &ast.VariableDefine{Name: &ast.Identifier{Name: "x"}, Value: num(1)}, interpreter.ErrNoFrame},
		{"nil node", nil, interpreter.ErrMalformedNode},
	}

	for _, test := range tests {
		if _, err := it.Eval(test.node); !errors.Is(err, test.expected) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, err)
		}
	}
}

func TestMalformedParameters(t *testing.T) {
	it := interpreter.NewInterpreter()
	def := &ast.FunctionDefine{
		Name:   &ast.Identifier{Name: "f"},
		Params: &ast.FunctionArguments{Args: []ast.Node{num(1)}},
		Body:   []ast.Node{&ast.FunctionReturn{Value: num(0)}},
	}
	if _, err := it.Eval(def); err != nil {
		t.Fatalf("define: %v", err)
	}

	_, err := it.Eval(&ast.FunctionCall{Name: "f", Args: []ast.Node{num(1)}})
	if !errors.Is(err, interpreter.ErrMalformedNode) {
		t.Fatalf("expected ErrMalformedNode, got %v", err)
	}
}

func TestUndefinedFunctionSkipsArguments(t *testing.T) {
	it := interpreter.NewInterpreter()
	call := &ast.FunctionCall{Name: "nope", Args: []ast.Node{&ast.Identifier{Name: "unbound"}}}

	if _, err := it.Eval(call); !errors.Is(err, interpreter.ErrUndefinedFunction) {
		t.Fatalf("expected ErrUndefinedFunction before argument evaluation, got %v", err)
	}
}

func TestReset(t *testing.T) {
	it := interpreter.NewInterpreter()
	if _, err := it.Execute(mustParse(t, "fn helper(){return 1;} fn main(){return helper();}")); err != nil {
		t.Fatal(err)
	}

	it.Reset()
	if it.Defined("helper") || it.Defined(interpreter.MainFunction) {
		t.Fatalf("expected an empty function table after Reset")
	}
	if it.Depth() != 0 {
		t.Fatalf("expected no frames after Reset, got %d", it.Depth())
	}

	_, err := it.Execute(mustParse(t, "fn main(){return helper();}"))
	if !errors.Is(err, interpreter.ErrUndefinedFunction) {
		t.Errorf("expected helper to be gone, got %v", err)
	}
}
