// Package linearlist implements a fixed-capacity, array-backed list of int
// keys with unsorted (linear search) and sorted (binary search) access.
//
// Live keys always occupy buf[0:count]. The sorted operations assume that
// range is in non-decreasing order; mixing InsertRepeated or Insert with
// the sorted operations on one list voids that assumption.
package linearlist

import (
	"fmt"

	"github.com/i5heu/boundedkit/pkg/errs"
)

var (
	ErrFull      = errs.ErrListFull
	ErrDuplicate = errs.ErrDuplicate
	ErrNotFound  = errs.ErrNotFound
	ErrClosed    = errs.ErrClosed
)

// List is a fixed-capacity linear list.
type List struct {
	buf    []int
	count  int
	closed bool
}

// New creates a List that holds at most capacity keys.
func New(capacity int) (*List, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("linearlist: capacity %d: %w", capacity, errs.ErrInvalidCapacity)
	}
	return &List{buf: make([]int, capacity)}, nil
}

// Len returns the number of live keys.
func (l *List) Len() int { return l.count }

// Cap returns the fixed capacity. A closed list has capacity 0.
func (l *List) Cap() int { return len(l.buf) }

func (l *List) IsEmpty() bool { return l.count == 0 }

func (l *List) IsFull() bool { return len(l.buf) > 0 && l.count == len(l.buf) }

// At returns the key at index i, or false if i is outside [0, Len()).
func (l *List) At(i int) (int, bool) {
	if i < 0 || i >= l.count {
		return 0, false
	}
	return l.buf[i], true
}

// Values returns a copy of the live keys.
func (l *List) Values() []int {
	out := make([]int, l.count)
	copy(out, l.buf[:l.count])
	return out
}

// IsSorted reports whether the live keys are in non-decreasing order.
func (l *List) IsSorted() bool {
	for i := 1; i < l.count; i++ {
		if l.buf[i-1] > l.buf[i] {
			return false
		}
	}
	return true
}

// Search scans for the first occurrence of key.
func (l *List) Search(key int) (int, bool) {
	for i, v := range l.buf[:l.count] {
		if v == key {
			return i, true
		}
	}
	return 0, false
}

// Insert appends key unless it is already present.
func (l *List) Insert(key int) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	if _, found := l.Search(key); found {
		return 0, ErrDuplicate
	}
	return l.append(key)
}

// InsertRepeated appends key without checking for duplicates.
func (l *List) InsertRepeated(key int) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	return l.append(key)
}

func (l *List) append(key int) (int, error) {
	if l.count == len(l.buf) {
		return 0, ErrFull
	}
	pos := l.count
	l.buf[pos] = key
	l.count++
	return pos, nil
}

// Remove deletes the first occurrence of key, keeping the order of the rest.
func (l *List) Remove(key int) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	pos, found := l.Search(key)
	if !found {
		return 0, ErrNotFound
	}
	return l.removeAt(pos), nil
}

// BinarySearch finds key in a sorted list by bisection.
func (l *List) BinarySearch(key int) (int, bool) {
	lo, hi := 0, l.count-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case key == l.buf[mid]:
			return mid, true
		case key < l.buf[mid]:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return 0, false
}

// InsertionPoint returns the index of key in a sorted list, or the index it
// would have to be inserted at to keep the list sorted. The result is in
// [0, Len()].
func (l *List) InsertionPoint(key int) int {
	lo, hi := 0, l.count-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case key == l.buf[mid]:
			return mid
		case key < l.buf[mid]:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return lo
}

// InsertSorted inserts key at its ordered position and returns that index.
func (l *List) InsertSorted(key int) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	if l.count == len(l.buf) {
		return 0, ErrFull
	}
	pos := l.InsertionPoint(key)
	if pos < l.count && l.buf[pos] == key {
		return 0, ErrDuplicate
	}
	l.shiftRight(pos)
	l.buf[pos] = key
	l.count++
	return pos, nil
}

// RemoveSorted deletes key from a sorted list.
func (l *List) RemoveSorted(key int) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	if l.count == 0 {
		return 0, ErrNotFound
	}
	pos := l.InsertionPoint(key)
	// pos == count means key is larger than every element
	if pos >= l.count || l.buf[pos] != key {
		return 0, ErrNotFound
	}
	return l.removeAt(pos), nil
}

func (l *List) removeAt(pos int) int {
	key := l.buf[pos]
	l.shiftLeft(pos)
	l.count--
	return key
}

// shiftRight moves buf[pos:count] one slot right, opening a hole at pos.
// The caller guarantees count < len(buf).
func (l *List) shiftRight(pos int) {
	copy(l.buf[pos+1:l.count+1], l.buf[pos:l.count])
}

// shiftLeft moves buf[pos+1:count] one slot left, overwriting pos.
func (l *List) shiftLeft(pos int) {
	copy(l.buf[pos:l.count-1], l.buf[pos+1:l.count])
}

// Close releases the backing buffer. Every later mutation or Close returns
// ErrClosed.
func (l *List) Close() error {
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.buf = nil
	l.count = 0
	return nil
}
