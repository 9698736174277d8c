package interp

import "errors"

var (
	ErrUndefinedReference = errors.New("reference error")
	ErrAlreadyDeclared    = errors.New("already declared")
	ErrNotAFunction       = errors.New("not a function")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrUnsupported        = errors.New("not supported yet")
	ErrIncompleteInput    = errors.New("command is incomplete. Did you forget a ')'?")
	ErrInternal           = errors.New("internal error")
)
