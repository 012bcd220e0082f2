package boundedqueue

import (
	"fmt"

	"github.com/i5heu/boundedkit/internal/slot"
	"github.com/i5heu/boundedkit/pkg/errs"
)

var (
	ErrFull   = errs.ErrQueueFull
	ErrEmpty  = errs.ErrQueueEmpty
	ErrClosed = errs.ErrClosed
)

// End selects which end of the queue Peek looks at.
type End int

const (
	Front End = iota
	Back
)

// Queue is a fixed-capacity circular FIFO of int keys.
//
// Emptiness is tracked by head being absent rather than by sacrificing a
// slot, so all len(buf) slots can hold live keys. When non-empty, the live
// keys run from head to tail inclusive, wrapping at len(buf).
type Queue struct {
	buf    []int
	head   slot.Index
	tail   slot.Index
	closed bool
}

// New creates a Queue that holds at most capacity keys.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("boundedqueue: capacity %d: %w", capacity, errs.ErrInvalidCapacity)
	}
	return &Queue{buf: make([]int, capacity)}, nil
}

// Peek returns the key at the requested end, or false if the queue is empty.
func (q *Queue) Peek(end End) (int, bool) {
	idx := q.head
	if end == Back {
		idx = q.tail
	}
	pos, ok := idx.Get()
	if !ok {
		return 0, false
	}
	return q.buf[pos], true
}

// Enqueue writes key after the current tail and returns the index it landed on.
func (q *Queue) Enqueue(key int) (int, error) {
	if q.closed {
		return 0, ErrClosed
	}
	candidate := q.tail.Next(len(q.buf))
	if head, ok := q.head.Get(); ok && candidate == head {
		return 0, ErrFull
	}
	q.buf[candidate] = key
	q.tail = slot.At(candidate)
	// first key after empty
	if !q.head.IsSet() {
		q.head = slot.At(candidate)
	}
	return candidate, nil
}

// Dequeue removes and returns the oldest key.
func (q *Queue) Dequeue() (int, error) {
	if q.closed {
		return 0, ErrClosed
	}
	head, ok := q.head.Get()
	if !ok {
		return 0, ErrEmpty
	}
	key := q.buf[head]
	if tail, _ := q.tail.Get(); head == tail {
		q.head, q.tail = slot.None(), slot.None()
	} else {
		q.head = slot.At((head + 1) % len(q.buf))
	}
	return key, nil
}

// IsEmpty reports whether the queue holds no keys.
func (q *Queue) IsEmpty() bool {
	return !q.head.IsSet()
}

// IsFull reports whether the next Enqueue would fail with ErrFull.
func (q *Queue) IsFull() bool {
	head, ok := q.head.Get()
	if !ok {
		return false
	}
	return q.tail.Next(len(q.buf)) == head
}

// FreeSlots returns how many more keys can be enqueued before the queue is
// full. It is derived from head and tail alone.
func (q *Queue) FreeSlots() int {
	head, ok := q.head.Get()
	if !ok {
		return len(q.buf)
	}
	tail, _ := q.tail.Get()
	if tail >= head {
		return len(q.buf) - (tail - head + 1)
	}
	return head - tail - 1
}

// UsedSlots returns how many keys are currently queued.
func (q *Queue) UsedSlots() int {
	return len(q.buf) - q.FreeSlots()
}

// Cap returns the fixed capacity. A closed queue has capacity 0.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// Values returns a copy of the queued keys from front to back.
func (q *Queue) Values() []int {
	n := q.UsedSlots()
	out := make([]int, 0, n)
	head, _ := q.head.Get()
	for i := 0; i < n; i++ {
		out = append(out, q.buf[(head+i)%len(q.buf)])
	}
	return out
}

// Close releases the backing buffer. Every later Enqueue, Dequeue or Close
// returns ErrClosed.
func (q *Queue) Close() error {
	if q.closed {
		return ErrClosed
	}
	q.closed = true
	q.buf = nil
	q.head, q.tail = slot.None(), slot.None()
	return nil
}
