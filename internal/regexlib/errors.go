package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when an operand string cannot be split into
	// an operator and its operands.
	ErrMalformed = errors.New("malformed expression")
	// ErrUnbalanced is returned for a ')' without '(' or a '(' never closed.
	ErrUnbalanced = errors.New("unbalanced parentheses")
)

// CompileError describes why a pattern was rejected. Expr is the operand
// string that failed, when the failure happened past the rewrite stage.
type CompileError struct {
	Pattern string
	Expr    string
	Err     error
}

func (e *CompileError) Error() string {
	if e.Expr != "" {
		return fmt.Sprintf("regexlib: %v %q in pattern %q", e.Err, e.Expr, e.Pattern)
	}
	return fmt.Sprintf("regexlib: %v in pattern %q", e.Err, e.Pattern)
}

func (e *CompileError) Unwrap() error { return e.Err }
