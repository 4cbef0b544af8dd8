package logic

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalanced   = errors.New("unbalanced parentheses")
	ErrUnknownToken = errors.New("unknown token")
	ErrIncomplete   = errors.New("incomplete expression")
	ErrIllegalRune  = errors.New("illegal character")
	ErrConfig       = errors.New("invalid token configuration")
)

// ParseError reports why an expression could not be turned into a tree.
// Err is one of the sentinel errors above, possibly wrapped with detail.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(expr string, sentinel error, format string, args ...any) *ParseError {
	return &ParseError{Expr: expr, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}
