package interpreter

import (
	"io"

	"asa/pkg/ast"
	"asa/pkg/stack"

	"github.com/charmbracelet/log"
)

// MainFunction is the function invoked by Execute.
const MainFunction = "main"

// DefaultMaxDepth bounds nested function calls unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 10000

// function is a function table entry
type function struct {
	params *ast.FunctionArguments // formal parameters, nil when nullary
	body   []ast.Node             // statements evaluated in order
}

// Interpreter evaluates AST nodes against a function table and a frame stack
type Interpreter struct {
	functions map[string]function // function name -> definition
	stack     *stack.Stack[*Frame] // call stack (frames), innermost on top

	maxDepth int         // maximum nested calls (0 = unlimited)
	logger   *log.Logger // debug tracing of calls
}

type Option func(*Interpreter)

// WithMaxDepth sets the maximum number of nested calls before returning ErrMaxDepthExceeded
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithLogger sets the logger used for call tracing
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{
		functions: make(map[string]function),
		stack:     stack.NewStack[*Frame](),
		maxDepth:  DefaultMaxDepth,
	}

	for _, o := range opts {
		o(it)
	}

	if it.logger == nil {
		it.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return it
}

// Execute runs prog on a fresh interpreter and returns the result of main
func Execute(prog *ast.Program, opts ...Option) (Value, error) {
	return NewInterpreter(opts...).Execute(prog)
}

// Execute registers the functions of prog, synthesizing main from a
// top-level expression or statement, then calls main with no arguments.
func (i *Interpreter) Execute(prog *ast.Program) (Value, error) {
	if prog == nil {
		return Value{}, ErrMalformedNode
	}

	if _, err := i.Eval(prog); err != nil {
		return Value{}, err
	}

	return i.Eval(&ast.FunctionCall{Name: MainFunction})
}

// Reset clears the function table and the call stack
func (i *Interpreter) Reset() {
	i.functions = make(map[string]function)
	i.stack.Clear()
}

// Defined reports whether a function with the given name is registered
func (i *Interpreter) Defined(name string) bool {
	_, ok := i.functions[name]
	return ok
}

// Depth returns the number of active frames
func (i *Interpreter) Depth() int {
	return i.stack.Size()
}

// define registers a function, replacing any earlier one with the same name
func (i *Interpreter) define(name string, params *ast.FunctionArguments, body []ast.Node) {
	i.functions[name] = function{params: params, body: body}
	i.logger.Debug("define", "fn", name, "statements", len(body))
}

// currentFrame returns the current call frame, or nil if none
func (i *Interpreter) currentFrame() *Frame {
	f, ok := i.stack.Peek()
	if !ok {
		return nil
	}
	return f
}

// pushFrame pushes a call frame, enforcing the depth limit
func (i *Interpreter) pushFrame(f *Frame) error {
	if i.maxDepth > 0 && i.stack.Size() >= i.maxDepth {
		return ErrMaxDepthExceeded
	}

	i.stack.Push(f)
	i.logger.Debug("enter", "fn", f.FuncName, "depth", i.stack.Size(), "args", len(f.Vars))
	return nil
}

// popFrame pops the current call frame
func (i *Interpreter) popFrame() {
	if f, ok := i.stack.Pop(); ok {
		i.logger.Debug("leave", "fn", f.FuncName, "depth", i.stack.Size())
	}
}
