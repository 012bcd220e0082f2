package main

import (
	"github.com/i5heu/boundedkit/internal/container"
	"github.com/i5heu/boundedkit/internal/testbench"
)

// valuer exposes a container's live keys to the tests.
type valuer interface {
	Values() []int
}

// queueTarget feeds inserts to Enqueue and removals to Dequeue.
type queueTarget[Q container.QueueValidationInterface] struct{ q Q }

func (t queueTarget[Q]) Insert(key int) error {
	_, err := t.q.Enqueue(key)
	return err
}

func (t queueTarget[Q]) Remove(int) error {
	_, err := t.q.Dequeue()
	return err
}

func (t queueTarget[Q]) Len() int      { return t.q.UsedSlots() }
func (t queueTarget[Q]) Values() []int { return t.q.Values() }
func (t queueTarget[Q]) Close() error  { return t.q.Close() }

// stackTarget feeds inserts to Push and removals to Pop.
type stackTarget[S container.StackValidationInterface] struct{ s S }

func (t stackTarget[S]) Insert(key int) error {
	_, err := t.s.Push(key)
	return err
}

func (t stackTarget[S]) Remove(int) error {
	_, err := t.s.Pop()
	return err
}

func (t stackTarget[S]) Len() int      { return t.s.Len() }
func (t stackTarget[S]) Values() []int { return t.s.Values() }
func (t stackTarget[S]) Close() error  { return t.s.Close() }

// listTarget uses the unsorted list operations. With repeated set, inserts
// skip the duplicate check.
type listTarget[L container.ListValidationInterface] struct {
	l        L
	repeated bool
}

func (t listTarget[L]) Insert(key int) error {
	var err error
	if t.repeated {
		_, err = t.l.InsertRepeated(key)
	} else {
		_, err = t.l.Insert(key)
	}
	return err
}

func (t listTarget[L]) Remove(key int) error {
	_, err := t.l.Remove(key)
	return err
}

func (t listTarget[L]) Len() int      { return t.l.Len() }
func (t listTarget[L]) Values() []int { return t.l.Values() }
func (t listTarget[L]) Close() error  { return t.l.Close() }

// sortedTarget uses the binary-search list operations.
type sortedTarget[L container.SortedListValidationInterface] struct{ l L }

func (t sortedTarget[L]) Insert(key int) error {
	_, err := t.l.InsertSorted(key)
	return err
}

func (t sortedTarget[L]) Remove(key int) error {
	_, err := t.l.RemoveSorted(key)
	return err
}

func (t sortedTarget[L]) Len() int      { return t.l.Len() }
func (t sortedTarget[L]) Values() []int { return t.l.Values() }
func (t sortedTarget[L]) Close() error  { return t.l.Close() }

var (
	_ testbench.Target = queueTarget[container.QueueValidationInterface]{}
	_ testbench.Target = stackTarget[container.StackValidationInterface]{}
	_ testbench.Target = listTarget[container.ListValidationInterface]{}
	_ testbench.Target = sortedTarget[container.SortedListValidationInterface]{}
)
