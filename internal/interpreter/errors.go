package interpreter

import (
	"errors"
	"fmt"
)

// Kinds of command failure. A CommandError unwraps to exactly one of them.
var (
	ErrSyntax            = errors.New("syntax error")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrCollision         = errors.New("collision")
	ErrNestingTooDeep    = errors.New("nesting too deep")
)

// ErrInvalidBoard is returned by board setup when a layout breaks a board invariant.
var ErrInvalidBoard = errors.New("invalid board")

// CommandError is a failed command. Message is what the console shows.
type CommandError struct {
	Kind    error
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func usageError(command string) *CommandError {
	return newError(ErrSyntax, "Uso incorreto do comando %s", command)
}
