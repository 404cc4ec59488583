package arena

// Slab is a typed bump allocator that hands out pointers into pre-allocated
// chunks of T. When a chunk fills up a new one is allocated at 1.5x the
// previous size; old chunks are never moved, so returned pointers stay valid.
//
// Unlike Arena, a Slab may hold pointer-bearing values: chunks are ordinary
// Go slices and remain visible to the garbage collector.
type Slab[T any] struct {
	chunk []T
	index int
	total int
}

// NewSlab returns a slab whose first chunk holds startLen elements.
func NewSlab[T any](startLen int) *Slab[T] {
	s := &Slab[T]{}
	s.Init(startLen)
	return s
}

// Init prepares a zero Slab in place.
func (s *Slab[T]) Init(startLen int) {
	s.chunk = make([]T, max(startLen, 2))
	s.index = 0
}

// New returns a pointer to a zeroed T.
func (s *Slab[T]) New() *T {
	if s.chunk == nil {
		s.Init(16)
	}
	n := &s.chunk[s.index]
	s.total++
	if s.index++; s.index == len(s.chunk) {
		s.resize()
	}
	return n
}

//go:noinline
func (s *Slab[T]) resize() {
	s.chunk = make([]T, len(s.chunk)+len(s.chunk)>>1) // 1.5x growth, integer math
	s.index = 0
}

// MakeSlice allocates n contiguous zeroed elements. If the current chunk
// doesn't have enough room, a new chunk is allocated that is large enough.
func (s *Slab[T]) MakeSlice(n int) []T {
	if n == 0 {
		return nil
	}
	if s.chunk == nil {
		s.Init(16)
	}
	if s.index+n > len(s.chunk) {
		s.growForSlice(n)
	}
	out := s.chunk[s.index : s.index+n : s.index+n]
	s.index += n
	s.total += n
	if s.index == len(s.chunk) {
		s.resize()
	}
	return out
}

// growForSlice allocates a new chunk large enough to hold at least minElems
// contiguous elements.
//
//go:noinline
func (s *Slab[T]) growForSlice(minElems int) {
	s.chunk = make([]T, max(len(s.chunk)+len(s.chunk)>>1, minElems))
	s.index = 0
}

// Copy moves src into an exactly-sized slab slice. Empty input yields nil.
func (s *Slab[T]) Copy(src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := s.MakeSlice(len(src))
	copy(dst, src)
	return dst
}

// Len reports how many elements have been handed out.
func (s *Slab[T]) Len() int {
	return s.total
}
