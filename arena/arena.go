package arena

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

const (
	// Alignment is the alignment of every allocation start.
	Alignment = 8
	// MinBlockSize is the smallest block the arena requests.
	MinBlockSize = 1 << 20
)

// Arena is a bump allocator over large byte blocks. Memory handed out is
// never moved or reused; it is only dropped as a whole by Free.
//
// The zero value is ready to use. An Arena is not safe for concurrent use.
type Arena struct {
	block  []byte // current block, len == bump cursor
	blocks [][]byte
	used   int
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

func alignUp[T constraints.Unsigned](n, a T) T {
	return (n + a - 1) &^ (a - 1)
}

// Alloc returns size zeroed bytes whose first byte is aligned to Alignment.
func (a *Arena) Alloc(size int) []byte {
	n, err := safecast.Convert[uint](size)
	if err != nil {
		panic(fmt.Errorf("arena: invalid allocation size %d: %w", size, err))
	}
	start := alignUp(uint(len(a.block)), Alignment)
	if start+n > uint(cap(a.block)) {
		a.grow(n)
		start = 0
	}
	end := int(start + n)
	a.block = a.block[:end]
	a.used += int(n)
	// Full slice expression so appends by callers can't spill into the next allocation.
	return a.block[start:end:end]
}

// Dup copies src into a fresh allocation. Empty input yields nil so callers
// with optional lists can skip allocating.
func (a *Arena) Dup(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := a.Alloc(len(src))
	copy(dst, src)
	return dst
}

//go:noinline
func (a *Arena) grow(minSize uint) {
	size := max(uint(MinBlockSize), alignUp(minSize, Alignment))
	a.block = make([]byte, 0, size)
	a.blocks = append(a.blocks, a.block)
}

// Free drops every block. Slices returned earlier stay readable for as long
// as the caller holds them, but the arena no longer references them.
func (a *Arena) Free() {
	clear(a.blocks)
	a.blocks = nil
	a.block = nil
	a.used = 0
}

// Blocks reports how many blocks have been allocated since the last Free.
func (a *Arena) Blocks() int {
	return len(a.blocks)
}

// Used reports the number of bytes handed out, excluding alignment padding.
func (a *Arena) Used() int {
	return a.used
}
