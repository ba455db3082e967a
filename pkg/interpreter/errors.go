package interpreter

import "errors"

var (
	ErrUndefinedFunction     = errors.New("undefined function")
	ErrUndefinedVariable     = errors.New("undefined variable")
	ErrUnknownStatement      = errors.New("unknown statement")
	ErrUnknownExpression     = errors.New("unknown expression")
	ErrUnhandledNode         = errors.New("unhandled node")
	ErrUndefinedOperator     = errors.New("undefined operator")
	ErrNonNumericOperands    = errors.New("cannot do math on non-numeric operands")
	ErrInvalidComparison     = errors.New("invalid comparison operands")
	ErrInvalidBoolComparison = errors.New("invalid comparison for booleans")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrNegativeExponent      = errors.New("negative exponent")
	ErrMissingArgument       = errors.New("missing argument")
	ErrMalformedNode         = errors.New("malformed node")
	ErrNoFrame               = errors.New("no active frame")
	ErrMaxDepthExceeded      = errors.New("maximum call depth exceeded")
)
