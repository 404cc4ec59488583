package arena

import (
	"bytes"
	"testing"
)

func TestAllocZeroedAndAligned(t *testing.T) {
	a := New()
	for _, size := range []int{1, 3, 8, 13, 64, 1000} {
		b := a.Alloc(size)
		if len(b) != size {
			t.Fatalf("Alloc(%d) len = %d", size, len(b))
		}
		for i, c := range b {
			if c != 0 {
				t.Fatalf("Alloc(%d)[%d] = %d; want 0", size, i, c)
			}
		}
		b[0] = 0xff
	}
	if a.Blocks() != 1 {
		t.Errorf("Blocks() = %d; want 1", a.Blocks())
	}
	if got, want := a.Used(), 1+3+8+13+64+1000; got != want {
		t.Errorf("Used() = %d; want %d", got, want)
	}
}

func TestAllocOffsetsAligned(t *testing.T) {
	a := New()
	a.Alloc(3)
	if len(a.block) != 3 {
		t.Fatalf("cursor = %d; want 3", len(a.block))
	}
	a.Alloc(1)
	if len(a.block) != Alignment+1 {
		t.Errorf("cursor = %d; want %d", len(a.block), Alignment+1)
	}
}

func TestAllocStableAcrossGrowth(t *testing.T) {
	a := New()
	first := a.Alloc(16)
	copy(first, "stable-contents!")

	// Force several new blocks, including one larger than MinBlockSize.
	a.Alloc(MinBlockSize - 8)
	big := a.Alloc(MinBlockSize * 2)
	if len(big) != MinBlockSize*2 {
		t.Fatalf("big alloc len = %d", len(big))
	}
	if a.Blocks() < 3 {
		t.Errorf("Blocks() = %d; want >= 3", a.Blocks())
	}
	if string(first) != "stable-contents!" {
		t.Errorf("first allocation changed: %q", first)
	}
}

func TestAllocDoesNotOverlap(t *testing.T) {
	a := New()
	x := a.Alloc(4)
	y := a.Alloc(4)
	x = append(x, 'z')
	_ = x
	if y[0] != 0 {
		t.Errorf("append on earlier allocation leaked into the next one")
	}
}

func TestAllocNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Alloc(-1) did not panic")
		}
	}()
	New().Alloc(-1)
}

func TestDup(t *testing.T) {
	var a Arena
	if got := a.Dup(nil); got != nil {
		t.Errorf("Dup(nil) = %v; want nil", got)
	}
	if got := a.Dup([]byte{}); got != nil {
		t.Errorf("Dup(empty) = %v; want nil", got)
	}

	src := []byte("hello")
	got := a.Dup(src)
	if !bytes.Equal(got, src) {
		t.Fatalf("Dup = %q; want %q", got, src)
	}
	src[0] = 'j'
	if got[0] != 'h' {
		t.Errorf("Dup aliases its source")
	}
}

func TestFree(t *testing.T) {
	a := New()
	a.Alloc(10)
	a.Alloc(MinBlockSize)
	a.Free()
	if a.Blocks() != 0 || a.Used() != 0 {
		t.Errorf("after Free: Blocks=%d Used=%d", a.Blocks(), a.Used())
	}
	if b := a.Alloc(5); len(b) != 5 || a.Blocks() != 1 {
		t.Errorf("arena unusable after Free")
	}
}

func TestSlabPointersStable(t *testing.T) {
	s := NewSlab[int](4)
	var ptrs []*int
	for i := 0; i < 100; i++ {
		p := s.New()
		*p = i
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("ptrs[%d] = %d", i, *p)
		}
	}
	if s.Len() != 100 {
		t.Errorf("Len() = %d; want 100", s.Len())
	}
}

func TestSlabCopy(t *testing.T) {
	var s Slab[string]
	if s.Copy(nil) != nil {
		t.Errorf("Copy(nil) != nil")
	}
	src := []string{"a", "b", "c"}
	got := s.Copy(src)
	if len(got) != 3 || cap(got) != 3 {
		t.Fatalf("Copy len/cap = %d/%d; want 3/3", len(got), cap(got))
	}
	src[0] = "z"
	if got[0] != "a" {
		t.Errorf("Copy aliases its source")
	}

	// A slice larger than the current chunk gets its own chunk.
	big := s.MakeSlice(1000)
	if len(big) != 1000 {
		t.Errorf("MakeSlice(1000) len = %d", len(big))
	}
	if got[1] != "b" {
		t.Errorf("earlier slice clobbered")
	}
}
