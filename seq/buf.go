// Package seq provides growable contiguous sequences with a doubling growth
// policy, and a text buffer built on the same policy.
package seq

const minCap = 16

// Buf is a growable contiguous sequence of T. The zero value is empty and
// ready to use.
//
// Growing relocates the elements: slices obtained from Slice and pointers
// obtained from Ptr before a Push are invalid after it.
type Buf[T any] struct {
	data []T
}

// Of returns a Buf holding a copy of vs.
func Of[T any](vs ...T) Buf[T] {
	var b Buf[T]
	b.Fit(len(vs))
	b.data = append(b.data, vs...)
	return b
}

func growCap(oldCap, need int) int {
	return max(minCap, 1+2*oldCap, need)
}

// Fit makes sure the buffer can hold n elements without further growth.
func (b *Buf[T]) Fit(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]T, len(b.data), growCap(cap(b.data), n))
	copy(grown, b.data)
	b.data = grown
}

// Push appends v.
func (b *Buf[T]) Push(v T) {
	b.Fit(len(b.data) + 1)
	b.data = append(b.data, v)
}

// Len reports the number of elements.
func (b *Buf[T]) Len() int { return len(b.data) }

// Cap reports the number of elements the buffer can hold before growing.
func (b *Buf[T]) Cap() int { return cap(b.data) }

// At returns the i-th element.
func (b *Buf[T]) At(i int) T { return b.data[i] }

// Ptr returns a pointer to the i-th element, valid until the next growth.
func (b *Buf[T]) Ptr(i int) *T { return &b.data[i] }

// Last returns the final element. It panics on an empty buffer.
func (b *Buf[T]) Last() T { return b.data[len(b.data)-1] }

// Slice returns a view of the elements, valid until the next growth.
func (b *Buf[T]) Slice() []T { return b.data }

// Truncate drops every element from index n on. It is used to pop a frame
// of a scratch buffer shared by nested callers.
func (b *Buf[T]) Truncate(n int) {
	clear(b.data[n:])
	b.data = b.data[:n]
}

// Clear sets the length to zero and keeps the storage.
func (b *Buf[T]) Clear() {
	clear(b.data)
	b.data = b.data[:0]
}

// Free releases the storage and leaves the buffer empty.
func (b *Buf[T]) Free() {
	b.data = nil
}
