package ast

import "fmt"

type Kind int

const (
	KindProgram Kind = iota
	KindFunctionDefine
	KindFunctionArguments
	KindFunctionCall
	KindFunctionReturn
	KindStatement
	KindExpression
	KindVariableDefine
	KindMathExpression
	KindComparisonExpression
	KindIdentifier
	KindNumber
	KindString
	KindBool
	KindIfStatement
	KindElseStatement
	KindElseIfStatement
)

var kindNames = map[Kind]string{
	KindProgram:              "Program",
	KindFunctionDefine:       "FunctionDefine",
	KindFunctionArguments:    "FunctionArguments",
	KindFunctionCall:         "FunctionCall",
	KindFunctionReturn:       "FunctionReturn",
	KindStatement:            "Statement",
	KindExpression:           "Expression",
	KindVariableDefine:       "VariableDefine",
	KindMathExpression:       "MathExpression",
	KindComparisonExpression: "ComparisonExpression",
	KindIdentifier:           "Identifier",
	KindNumber:               "Number",
	KindString:               "String",
	KindBool:                 "Bool",
	KindIfStatement:          "IfStatement",
	KindElseStatement:        "ElseStatement",
	KindElseIfStatement:      "ElseIfStatement",
}

// String returns the variant name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Node is implemented only by the node types of this package.
type Node interface {
	Kind() Kind
	Children() []Node
	node()
}

// MathOp is the operator tag of a MathExpression.
type MathOp string

const (
	OpAdd MathOp = "+"
	OpSub MathOp = "-"
	OpMul MathOp = "*"
	OpDiv MathOp = "/"
	OpPow MathOp = "^"
)

// CompareOp is the operator tag of a ComparisonExpression.
type CompareOp string

const (
	OpEq CompareOp = "=="
	OpNe CompareOp = "!="
	OpLe CompareOp = "<="
	OpGe CompareOp = ">="
	OpLt CompareOp = "<"
	OpGt CompareOp = ">"
)

type (
	// Program is the root of every parse.
	Program struct {
		Body []Node // function definitions, statements and expressions in source order
	}

	// FunctionDefine binds Name to Body. Params is nil for a nullary function.
	FunctionDefine struct {
		Name   *Identifier
		Params *FunctionArguments
		Body   []Node
	}

	// FunctionArguments lists formal parameters or actual arguments.
	FunctionArguments struct {
		Args []Node
	}

	FunctionCall struct {
		Name string
		Args []Node
	}

	FunctionReturn struct {
		Value Node
	}

	Statement struct {
		Body Node
	}

	Expression struct {
		Value Node
	}

	VariableDefine struct {
		Name  *Identifier
		Value Node
	}

	MathExpression struct {
		Op  MathOp
		LHS Node
		RHS Node
	}

	ComparisonExpression struct {
		Op  CompareOp
		LHS Node
		RHS Node
	}

	Identifier struct {
		Name string
	}

	Number struct {
		Value int32
	}

	String struct {
		Value string
	}

	Bool struct {
		Value bool
	}

	IfStatement struct {
		Cond Node
		Body []Node
	}

	ElseStatement struct {
		Body []Node
	}

	ElseIfStatement struct {
		Cond Node
		Body []Node
	}
)

func (*Program) Kind() Kind              { return KindProgram }
func (*FunctionDefine) Kind() Kind       { return KindFunctionDefine }
func (*FunctionArguments) Kind() Kind    { return KindFunctionArguments }
func (*FunctionCall) Kind() Kind         { return KindFunctionCall }
func (*FunctionReturn) Kind() Kind       { return KindFunctionReturn }
func (*Statement) Kind() Kind            { return KindStatement }
func (*Expression) Kind() Kind           { return KindExpression }
func (*VariableDefine) Kind() Kind       { return KindVariableDefine }
func (*MathExpression) Kind() Kind       { return KindMathExpression }
func (*ComparisonExpression) Kind() Kind { return KindComparisonExpression }
func (*Identifier) Kind() Kind           { return KindIdentifier }
func (*Number) Kind() Kind               { return KindNumber }
func (*String) Kind() Kind               { return KindString }
func (*Bool) Kind() Kind                 { return KindBool }
func (*IfStatement) Kind() Kind          { return KindIfStatement }
func (*ElseStatement) Kind() Kind        { return KindElseStatement }
func (*ElseIfStatement) Kind() Kind      { return KindElseIfStatement }

func (*Program) node()              {}
func (*FunctionDefine) node()       {}
func (*FunctionArguments) node()    {}
func (*FunctionCall) node()         {}
func (*FunctionReturn) node()       {}
func (*Statement) node()            {}
func (*Expression) node()           {}
func (*VariableDefine) node()       {}
func (*MathExpression) node()       {}
func (*ComparisonExpression) node() {}
func (*Identifier) node()           {}
func (*Number) node()               {}
func (*String) node()               {}
func (*Bool) node()                 {}
func (*IfStatement) node()          {}
func (*ElseStatement) node()        {}
func (*ElseIfStatement) node()      {}

func (n *Program) Children() []Node { return n.Body }

// Children returns the name, the parameter list (if any) and the body, in that order.
func (n *FunctionDefine) Children() []Node {
	children := make([]Node, 0, len(n.Body)+2)
	if n.Name != nil {
		children = append(children, n.Name)
	}
	if n.Params != nil {
		children = append(children, n.Params)
	}
	return append(children, n.Body...)
}

func (n *FunctionArguments) Children() []Node { return n.Args }
func (n *FunctionCall) Children() []Node      { return n.Args }
func (n *FunctionReturn) Children() []Node    { return nonNil(n.Value) }
func (n *Statement) Children() []Node         { return nonNil(n.Body) }
func (n *Expression) Children() []Node        { return nonNil(n.Value) }

func (n *VariableDefine) Children() []Node {
	if n.Name == nil {
		return nonNil(n.Value)
	}
	return append([]Node{n.Name}, nonNil(n.Value)...)
}

func (n *MathExpression) Children() []Node       { return nonNil(n.LHS, n.RHS) }
func (n *ComparisonExpression) Children() []Node { return nonNil(n.LHS, n.RHS) }
func (*Identifier) Children() []Node             { return nil }
func (*Number) Children() []Node                 { return nil }
func (*String) Children() []Node                 { return nil }
func (*Bool) Children() []Node                   { return nil }
func (n *IfStatement) Children() []Node          { return append(nonNil(n.Cond), n.Body...) }
func (n *ElseStatement) Children() []Node        { return n.Body }
func (n *ElseIfStatement) Children() []Node      { return append(nonNil(n.Cond), n.Body...) }

func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first in source order. Returning
// false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, child := range n.Children() {
		Walk(child, fn)
	}
}
