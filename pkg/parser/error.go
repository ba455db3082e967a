package parser

import (
	"errors"
	"fmt"
	"strings"

	"asa/pkg/color"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrTrailingInput = errors.New("unconsumed input after program")
	ErrNumberRange   = errors.New("number out of 32-bit range")
)

// Error is a parse failure at a position in the source.
type Error struct {
	Pos       Position // where the failure was detected
	Expected  []string // terminals that would have matched at Pos
	Remaining string   // unconsumed input starting at Pos
	Err       error    // ErrSyntax, ErrTrailingInput or ErrNumberRange
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v at %s", e.Err, e.Pos)

	if len(e.Expected) == 1 {
		fmt.Fprintf(&b, ": expected %s", e.Expected[0])
	} else if len(e.Expected) > 1 {
		fmt.Fprintf(&b, ": expected one of %s", strings.Join(e.Expected, ", "))
	}

	fmt.Fprintf(&b, ", found %s", e.found())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pretty renders the error with the offending source line and a caret
func (e *Error) Pretty(src string) string {
	lines := strings.Split(src, "\n")
	context := ""
	if e.Pos.Line-1 < len(lines) {
		context = lines[e.Pos.Line-1] + "\n" + strings.Repeat(" ", e.Pos.Column-1) + "^"
	}

	msg := e.Err.Error()
	if len(e.Expected) > 0 {
		msg += ", expected " + strings.Join(e.Expected, " or ")
	}

	return color.ErrorWithPosition(e.Pos.Line, e.Pos.Column, msg, context)
}

// found describes the input at the failure point
func (e *Error) found() string {
	if e.Remaining == "" {
		return "end of input"
	}

	rest := e.Remaining
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > 20 {
		rest = rest[:20] + "..."
	}
	return fmt.Sprintf("%q", rest)
}
