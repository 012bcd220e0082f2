// Package errs holds the error values shared by the bounded containers.
// Callers compare against them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidCapacity is returned when a container is created with a
	// capacity that is zero or negative.
	ErrInvalidCapacity = errors.New("invalid capacity")

	ErrQueueFull  = errors.New("queue is full")
	ErrQueueEmpty = errors.New("queue is empty")

	ErrStackFull  = errors.New("stack is full")
	ErrStackEmpty = errors.New("stack is empty")

	ErrListFull = errors.New("list is full")

	// ErrDuplicate is returned when a key is already present where the
	// operation requires uniqueness.
	ErrDuplicate = errors.New("duplicate key")

	// ErrNotFound is returned when a key to be removed is absent.
	ErrNotFound = errors.New("key not found")

	// ErrClosed is returned by any operation on a container after Close.
	ErrClosed = errors.New("container is closed")
)

// IsCapacity reports whether err means a container ran out of room.
func IsCapacity(err error) bool {
	return errors.Is(err, ErrQueueFull) || errors.Is(err, ErrStackFull) || errors.Is(err, ErrListFull)
}

// IsRejection reports whether err is one of the ordinary, non-fatal outcomes
// of a container operation: full, empty, duplicate or not found.
func IsRejection(err error) bool {
	return IsCapacity(err) ||
		errors.Is(err, ErrQueueEmpty) ||
		errors.Is(err, ErrStackEmpty) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNotFound)
}
