// Package heap implements an array-backed binary min-heap whose backing store
// grows and shrinks with its contents.
//
// Capacity doubles when an insert finds the array full, and halves when the
// number of items drops below a quarter of the capacity, never going below
// the initial capacity.  Both Insert and ExtractMin are amortized O(log n).
//
package heap

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the initial capacity used by New.
const DefaultCapacity = 16

var (
	// ErrInvalidArgument is returned when a Heap is constructed with a
	// capacity hint smaller than 1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyStructure is returned by Peek and ExtractMin on an empty Heap.
	ErrEmptyStructure = errors.New("empty structure")
)

// Lesser is implemented by items with a total order.
type Lesser[T any] interface {
	Less(other T) bool
}

// Heap is a binary min-heap over items of type T.
//
// Items are stored 1-indexed: items[1] is the root, and the children of
// items[i] are items[2i] and items[2i+1].  items[0] is unused.  The logical
// capacity is len(items)-1.
//
// Equal items are ordered by whatever position the sift operations leave them
// in, which is deterministic for a fixed sequence of operations.
//
type Heap[T Lesser[T]] struct {
	items []T
	size  int
	floor int
}

// New returns an empty Heap with DefaultCapacity.
func New[T Lesser[T]]() *Heap[T] {
	h, _ := NewWithCapacity[T](DefaultCapacity)
	return h
}

// NewWithCapacity returns an empty Heap with room for hint items.  The hint
// also becomes the floor below which the Heap never shrinks.
func NewWithCapacity[T Lesser[T]](hint int) (*Heap[T], error) {
	if hint < 1 {
		return nil, fmt.Errorf("heap capacity hint %d < 1: %w", hint, ErrInvalidArgument)
	}
	return &Heap[T]{
		items: make([]T, hint+1),
		floor: hint,
	}, nil
}

// Len returns the number of items in the Heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// IsEmpty reports whether the Heap holds no items.
func (h *Heap[T]) IsEmpty() bool {
	return h.size == 0
}

// Cap returns the current capacity of the backing array.
func (h *Heap[T]) Cap() int {
	return len(h.items) - 1
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, fmt.Errorf("peek: %w", ErrEmptyStructure)
	}
	return h.items[1], nil
}

// Insert adds x to the Heap.
func (h *Heap[T]) Insert(x T) {
	if h.size == h.Cap() {
		h.resize(2 * h.Cap())
	}
	h.size++
	h.items[h.size] = x
	h.siftUp(h.size)
}

// ExtractMin removes and returns the minimum item.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, fmt.Errorf("extract min: %w", ErrEmptyStructure)
	}

	var zero T
	x := h.items[1]
	h.swap(1, h.size)
	h.items[h.size] = zero
	h.size--
	h.siftDown(1)

	if capacity := h.Cap(); h.size < capacity/4 && capacity > h.floor {
		newCapacity := capacity / 2
		if newCapacity < h.floor {
			newCapacity = h.floor
		}
		h.resize(newCapacity)
	}
	return x, nil
}

func (h *Heap[T]) resize(capacity int) {
	items := make([]T, capacity+1)
	copy(items, h.items[:h.size+1])
	h.items = items
}

func (h *Heap[T]) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if !h.items[i].Less(h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		child := 2 * i
		if child > h.size {
			break
		}
		if right := child + 1; right <= h.size && h.items[right].Less(h.items[child]) {
			child = right
		}
		if !h.items[child].Less(h.items[i]) {
			break
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}
