package parse

import (
	"errors"
	"fmt"

	"github.com/confindent/go-confindent/token"
)

var (
	ErrParse = errors.New("parse error")

	// ErrMixedIndentation reports a tab and a space in one
	// indentation chain.
	ErrMixedIndentation = fmt.Errorf("%w: mixed indentation", ErrParse)

	// ErrInvalidIndentation reports an indentation count that neither
	// matches an open level nor opens exactly one deeper level.
	ErrInvalidIndentation = fmt.Errorf("%w: invalid indentation", ErrParse)

	// ErrEmptyKey reports a non-blank line that yields no key text.
	ErrEmptyKey = fmt.Errorf("%w: empty key", ErrParse)
)

// Error wraps one of the sentinels above with the position at which
// the parse stopped. Match with errors.Is or dig the position out
// with errors.As.
type Error struct {
	Pos *token.Pos
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errAt(err error, pos *token.Pos) error {
	return &Error{Pos: pos, Err: err}
}
