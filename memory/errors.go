package memory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize             = errors.New("invalid size")
	ErrOutOfMemory             = errors.New("out of memory")
	ErrInvalidPointer          = errors.New("invalid pointer")
	ErrInvalidAllocationMethod = errors.New("invalid allocation method")
)

// Error carries a user-facing message and matches its Kind with errors.Is.
type Error struct {
	Kind    error
	Message string
	// Detail is an optional sentence appended to Message
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + " " + e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func SizeZeroError() error {
	return &Error{
		Kind:    ErrInvalidSize,
		Message: "Size cannot be zero.",
	}
}

func SizeNegativeError() error {
	return &Error{
		Kind:    ErrInvalidSize,
		Message: "Size cannot be negative.",
	}
}

func MemorySizeError(detail string) error {
	return &Error{
		Kind:    ErrInvalidSize,
		Message: "Memory size must be at least 1.",
		Detail:  detail,
	}
}

// OutOfMemoryError reports a request of size cells, given in the caller's notation.
func OutOfMemoryError(size string, strategy Strategy) error {
	return &Error{
		Kind:    ErrOutOfMemory,
		Message: "Out of memory.",
		Detail:  fmt.Sprintf("No %s chunk holds %s cells.", strategy, size),
	}
}

// PointerOutOfBoundsError reports a pointer given in the caller's notation.
func PointerOutOfBoundsError(pointer string) error {
	return &Error{
		Kind:    ErrInvalidPointer,
		Message: "Memory pointer is out of bounds.",
		Detail:  "Got " + pointer + ".",
	}
}

func PointerNotChunkStartError(pointer int) error {
	return &Error{
		Kind:    ErrInvalidPointer,
		Message: "Memory pointer does not point to the start of an allocated chunk.",
		Detail:  fmt.Sprintf("Got %d.", pointer),
	}
}
