// Package slot provides an optional buffer index.
package slot

// Index is a position in a fixed buffer that may be absent. The zero value is
// absent, so an unset Index never aliases position 0.
type Index struct {
	pos int
	ok  bool
}

// None returns an absent index.
func None() Index { return Index{} }

// At returns an index set to pos.
func At(pos int) Index { return Index{pos: pos, ok: true} }

// Get returns the position and whether it is set.
func (i Index) Get() (int, bool) { return i.pos, i.ok }

// IsSet reports whether the index holds a position.
func (i Index) IsSet() bool { return i.ok }

// Next returns the position after i in a ring of length n. An absent index
// is treated as sitting just before position 0, so its successor is 0.
func (i Index) Next(n int) int {
	if !i.ok {
		return 0
	}
	return (i.pos + 1) % n
}
