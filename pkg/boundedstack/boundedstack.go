package boundedstack

import (
	"fmt"

	"github.com/i5heu/boundedkit/internal/slot"
	"github.com/i5heu/boundedkit/pkg/errs"
)

var (
	ErrFull   = errs.ErrStackFull
	ErrEmpty  = errs.ErrStackEmpty
	ErrClosed = errs.ErrClosed
)

// Stack is a fixed-capacity LIFO of int keys. The live keys are buf[0..top].
type Stack struct {
	buf    []int
	top    slot.Index
	closed bool
}

// New creates a Stack that holds at most capacity keys.
func New(capacity int) (*Stack, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("boundedstack: capacity %d: %w", capacity, errs.ErrInvalidCapacity)
	}
	return &Stack{buf: make([]int, capacity)}, nil
}

// Peek returns the top key without removing it.
func (s *Stack) Peek() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	top, ok := s.top.Get()
	if !ok {
		return 0, ErrEmpty
	}
	return s.buf[top], nil
}

func (s *Stack) IsEmpty() bool {
	return !s.top.IsSet()
}

func (s *Stack) IsFull() bool {
	top, ok := s.top.Get()
	return ok && top == len(s.buf)-1
}

// Len returns the number of live keys.
func (s *Stack) Len() int {
	top, ok := s.top.Get()
	if !ok {
		return 0
	}
	return top + 1
}

// Cap returns the fixed capacity. A closed stack has capacity 0.
func (s *Stack) Cap() int {
	return len(s.buf)
}

// LoadFactor returns occupancy divided by capacity, in [0, 1].
func (s *Stack) LoadFactor() float64 {
	if len(s.buf) == 0 {
		return 0
	}
	return float64(s.Len()) / float64(len(s.buf))
}

// Push places key on top and returns its index.
func (s *Stack) Push(key int) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.IsFull() {
		return 0, ErrFull
	}
	next := s.top.Next(len(s.buf))
	s.buf[next] = key
	s.top = slot.At(next)
	return next, nil
}

// Pop removes and returns the top key.
func (s *Stack) Pop() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	top, ok := s.top.Get()
	if !ok {
		return 0, ErrEmpty
	}
	key := s.buf[top]
	if top == 0 {
		s.top = slot.None()
	} else {
		s.top = slot.At(top - 1)
	}
	return key, nil
}

// Values returns a copy of the live keys from bottom to top.
func (s *Stack) Values() []int {
	out := make([]int, s.Len())
	copy(out, s.buf)
	return out
}

// Close releases the backing buffer. Every later Push, Pop, Peek or Close
// returns ErrClosed.
func (s *Stack) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.buf = nil
	s.top = slot.None()
	return nil
}
