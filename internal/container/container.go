package container

// QueueValidationInterface is a *type constraint* that ensures any type Q has
// these methods. We never store Q in a runtime interface—
// we only use it at compile time to ensure matching signatures.
type QueueValidationInterface interface {
	// Enqueue adds a key at the back and returns the buffer index it was
	// written to. It fails instead of blocking when the queue is full.
	Enqueue(key int) (int, error)

	// Dequeue removes and returns the oldest key.
	Dequeue() (int, error)

	// FreeSlots returns how many more keys can be enqueued before the queue is full.
	FreeSlots() int

	// UsedSlots returns how many keys are currently queued.
	UsedSlots() int

	IsEmpty() bool
	IsFull() bool
	Values() []int
	Close() error
}

// StackValidationInterface constrains the LIFO containers.
type StackValidationInterface interface {
	// Push places a key on top and returns the new top index.
	Push(key int) (int, error)

	// Pop removes and returns the top key.
	Pop() (int, error)

	Peek() (int, error)
	Len() int
	LoadFactor() float64
	IsEmpty() bool
	IsFull() bool
	Values() []int
	Close() error
}

// ListValidationInterface constrains the unsorted linear list operations.
type ListValidationInterface interface {
	Search(key int) (int, bool)
	Insert(key int) (int, error)
	InsertRepeated(key int) (int, error)
	Remove(key int) (int, error)
	Len() int
	Values() []int
	Close() error
}

// SortedListValidationInterface constrains the sorted linear list operations.
type SortedListValidationInterface interface {
	BinarySearch(key int) (int, bool)
	InsertionPoint(key int) int
	InsertSorted(key int) (int, error)
	RemoveSorted(key int) (int, error)
	Len() int
	Values() []int
	Close() error
}
