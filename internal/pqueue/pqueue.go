// Package pqueue implements a size-ordered min-priority-queue used by
// the bitmap aggregation scheduler to combine many bitmaps smallest
// first.
package pqueue

import "container/heap"

// Sized is anything whose relative priority is its size in bytes.
type Sized interface {
	SizeInBytes() int32
}

// item wraps a Sized value for use with container/heap.
type item struct {
	value Sized
	index int // maintained by heap.Interface, needed by Fix/update
}

// Queue is a min-heap of Sized values, ordered ascending by
// SizeInBytes. Ties are broken arbitrarily.
type Queue struct {
	items []*item
}

var _ heap.Interface = (*Queue)(nil)

// New returns a queue already containing values, in heap order.
func New(values []Sized) *Queue {
	q := &Queue{items: make([]*item, len(values))}
	for i, v := range values {
		q.items[i] = &item{value: v, index: i}
	}
	heap.Init(q)
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue) Len() int { return len(q.items) }

// Less reports whether element i should sort before element j.
func (q *Queue) Less(i, j int) bool {
	return q.items[i].value.SizeInBytes() < q.items[j].value.SizeInBytes()
}

// Swap swaps elements i and j.
func (q *Queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index, q.items[j].index = i, j
}

// Push adds x (a Sized value) to the queue.
func (q *Queue) Push(x any) {
	v, _ := x.(Sized)
	q.items = append(q.items, &item{value: v, index: len(q.items)})
}

// Pop removes and returns the largest-index heap slot; used by
// container/heap internally. Callers should use PopMin instead.
func (q *Queue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	q.items = old[:n-1]
	return it.value
}

// PopMin removes and returns the smallest element.
func (q *Queue) PopMin() Sized {
	return heap.Pop(q).(Sized)
}

// PushValue adds value to the queue, restoring heap order.
func (q *Queue) PushValue(value Sized) {
	heap.Push(q, value)
}
