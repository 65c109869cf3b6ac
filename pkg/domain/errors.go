package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every configuration or validation error.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState is returned when an operation is not allowed in the
// current lifecycle state of a node.
var ErrInvalidState = errors.New("invalid state")

// Error carries a human readable message and the sentinel kind it belongs to.
// errors.Is(err, ErrInvalidArgument) matches any Error of that kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// InvalidArgument builds an Error of kind ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// InvalidState builds an Error of kind ErrInvalidState.
func InvalidState(format string, args ...any) error {
	return &Error{Kind: ErrInvalidState, Msg: fmt.Sprintf(format, args...)}
}
