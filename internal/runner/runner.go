package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"asa/pkg/ast"
	"asa/pkg/color"
	"asa/pkg/interpreter"
	"asa/pkg/parser"

	"github.com/alecthomas/repr"
	"github.com/charmbracelet/log"
)

// DemoProgram runs when neither a file nor an expression is given.
const DemoProgram = `fn foo(a,b,c) {
  let x = a + 1;
  let y = bar(c - b);
  return x * y;
}

fn bar(a) {
  return a * 3;
}

fn main() {
  return foo(1,2,3);
}`

type Runner struct {
	Verbose    bool      // Enable verbose output
	NoColor    bool      // Disable colored output
	DumpTree   bool      // Print the parsed tree before running
	MaxDepth   int       // Maximum nested calls (0 = unlimited)
	SourceFile string    // Path to the source file
	Source     string    // Inline source, used when SourceFile is empty
	Out        io.Writer // Destination for results, stdout when nil
}

// load returns the program text selected by the options
func (r *Runner) load() (string, error) {
	if r.SourceFile != "" {
		log.Info("Reading file", "file", r.SourceFile)
		input, err := os.ReadFile(r.SourceFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", r.SourceFile, err)
		}
		return string(input), nil
	}

	if r.Source != "" {
		return r.Source, nil
	}

	log.Debug("No input given, running the demo program")
	return DemoProgram, nil
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// parse reads and parses the source, printing diagnostics on failure
func (r *Runner) parse() (*ast.Program, string, error) {
	if r.NoColor {
		color.EnableColor(false)
	}

	src, err := r.load()
	if err != nil {
		return nil, "", err
	}

	prog, err := parser.ParseProgram(src)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			fmt.Fprintln(r.out(), color.BrightRedText("=== Syntax Error ==="))
			fmt.Fprintln(r.out(), perr.Pretty(src))
		}
		return nil, src, fmt.Errorf("parsing failed: %w", err)
	}

	log.Debug("Parsed program", "items", len(prog.Body))
	return prog, src, nil
}

// Parse parses the source and prints the resulting tree
func (r *Runner) Parse() error {
	prog, _, err := r.parse()
	if err != nil {
		return err
	}

	r.dump(prog)
	return nil
}

// Run parses and executes the source, printing the value of main
func (r *Runner) Run() error {
	prog, _, err := r.parse()
	if err != nil {
		return err
	}

	if r.DumpTree {
		r.dump(prog)
	}

	it := interpreter.NewInterpreter(
		interpreter.WithMaxDepth(r.MaxDepth),
		interpreter.WithLogger(log.Default()),
	)

	value, err := it.Execute(prog)
	if err != nil {
		fmt.Fprintln(r.out(), color.RuntimeError(err.Error()))
		return fmt.Errorf("execution failed: %w", err)
	}

	if r.Verbose {
		fmt.Fprintln(r.out(), color.GreenText("\n=== Result ==="))
	}
	fmt.Fprintln(r.out(), color.Result(value.Kind.String(), value.String()))
	return nil
}

// dump prints the tree with repr
func (r *Runner) dump(prog *ast.Program) {
	if r.Verbose {
		fmt.Fprintln(r.out(), color.GreenText("=== Parse Tree ==="))
	}

	printer := repr.New(r.out(), repr.Indent("  "), repr.OmitEmpty(true))
	printer.Println(prog)
}
