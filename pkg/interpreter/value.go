package interpreter

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindNumber
	KindString
	KindBool
)

// String returns the variant name of the kind
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Value is the result of evaluating a node. It is immutable and comparable
// with ==, which is equality within a variant.
type Value struct {
	Kind ValueKind
	Num  int32
	Str  string
	Bool bool
}

// String renders the value as a string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatInt(int64(v.Num), 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	default:
		return "<nil>"
	}
}

// GoString renders the value with its variant, e.g. Number(5).
func (v Value) GoString() string {
	if v.Kind == KindString {
		return fmt.Sprintf("String(%q)", v.Str)
	}
	return fmt.Sprintf("%s(%s)", v.Kind, v)
}

// Equal reports whether v and o are the same variant holding the same value.
func (v Value) Equal(o Value) bool {
	return v == o
}

// NewNumber creates a new Number value.
func NewNumber(n int32) Value {
	return Value{Kind: KindNumber, Num: n}
}

// NewString creates a new String value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NewBool creates a new Bool value.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}
