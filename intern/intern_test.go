package intern

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"
)

func TestInternIdempotent(t *testing.T) {
	in := New(nil)

	a := []byte("hello")
	if got := in.Intern(a).String(); got != "hello" {
		t.Fatalf("Intern(hello) = %q", got)
	}
	if in.Intern(a) != in.Intern(a) {
		t.Errorf("repeated Intern returned different names")
	}
	if in.InternString(in.Intern(a).String()) != in.Intern(a) {
		t.Errorf("re-interning an interned string changed identity")
	}

	b := []byte("hello")
	if in.Intern(a) != in.Intern(b) {
		t.Errorf("equal contents from distinct buffers interned differently")
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d; want 1", in.Len())
	}
}

func TestInternNearMisses(t *testing.T) {
	in := New(nil)
	hello := in.InternString("hello")
	for _, s := range []string{"hello!", "hell", "Hello", "", "hellp"} {
		if in.InternString(s) == hello {
			t.Errorf("Intern(%q) == Intern(hello)", s)
		}
	}
	if in.InternString("") != in.InternString("") {
		t.Errorf("empty string not canonical")
	}
}

func TestInternTerminated(t *testing.T) {
	in := New(nil)
	n := in.InternString("abc")
	z := n.Terminated()
	if len(z) != 4 || z[3] != 0 || string(z[:3]) != "abc" {
		t.Errorf("Terminated() = %q", z)
	}
	var zero Name
	if !zero.IsZero() || zero.Addr() != 0 || zero.String() != "" {
		t.Errorf("zero Name misbehaves")
	}
	if n.IsZero() || n.Addr() == 0 {
		t.Errorf("interned Name reports zero")
	}
}

// Distinct contents forced into one bucket must stay distinct.
func TestInternChainsCollisions(t *testing.T) {
	in := New(nil)
	x := in.InternString("x")
	key := bucketKey([]byte("x"))

	// Splice a fake colliding entry in front of x's chain.
	y := in.InternString("y")
	if err := in.index.Put(key, &entry{next: x.e, buf: y.e.buf, str: "y"}); err != nil {
		t.Fatal(err)
	}
	if got := in.InternString("x"); got != x {
		t.Errorf("chain walk failed to find x behind a colliding entry")
	}
}

func TestInternMany(t *testing.T) {
	in := New(nil)
	names := make(map[string]Name)
	for i := 0; i < 5000; i++ {
		s := fmt.Sprintf("id_%d", i)
		names[s] = in.InternString(s)
	}
	for s, n := range names {
		if in.InternString(s) != n {
			t.Fatalf("Intern(%q) not stable", s)
		}
		if n.String() != s {
			t.Fatalf("Intern(%q).String() = %q", s, n.String())
		}
	}
	if in.Len() != len(names) {
		t.Errorf("Len() = %d; want %d", in.Len(), len(names))
	}
}

func TestMapUnderLoad(t *testing.T) {
	var m Map[uint64, uint64]
	const n = 1024
	for i := uint64(1); i <= n; i++ {
		if err := m.Put(i, i+1); err != nil {
			t.Fatal(err)
		}
	}
	for i := uint64(1); i <= n; i++ {
		if err := m.Put(i, i*10); err != nil {
			t.Fatal(err)
		}
	}
	for i := uint64(1); i <= n; i++ {
		got, ok := m.Get(i)
		if !ok || got != i*10 {
			t.Fatalf("Get(%d) = %d, %v; want %d", i, got, ok, i*10)
		}
	}
	if _, ok := m.Get(n + 1); ok {
		t.Errorf("Get of absent key succeeded")
	}
	if m.Len() != n {
		t.Errorf("Len() = %d; want %d", m.Len(), n)
	}
	if 2*m.Len() > m.Cap() {
		t.Errorf("load factor exceeded: %d/%d", m.Len(), m.Cap())
	}
	if c := m.Cap(); c&(c-1) != 0 {
		t.Errorf("Cap() = %d; not a power of two", c)
	}
}

func TestMapRejectsZero(t *testing.T) {
	var m Map[uintptr, int]
	if err := m.Put(0, 1); !errors.Is(err, ErrZeroKey) {
		t.Errorf("Put(0, 1) = %v; want ErrZeroKey", err)
	}
	if err := m.Put(1, 0); !errors.Is(err, ErrZeroValue) {
		t.Errorf("Put(1, 0) = %v; want ErrZeroValue", err)
	}
	if _, ok := m.Get(0); ok {
		t.Errorf("Get(0) succeeded")
	}
	if m.Len() != 0 {
		t.Errorf("rejected Put changed Len")
	}
}

func TestHashBytesDistinguishes(t *testing.T) {
	if HashBytes([]byte("hello")) == HashBytes([]byte("hell")) {
		t.Errorf("HashBytes collides on a prefix")
	}
	if HashBytes(nil) != HashBytes([]byte{}) {
		t.Errorf("HashBytes(nil) != HashBytes(empty)")
	}
	if HashU64(1) == HashU64(2) {
		t.Errorf("HashU64 collides on adjacent keys")
	}
}

func TestHashPtr(t *testing.T) {
	a, b := new(int), new(int)
	if HashPtr(unsafe.Pointer(a)) != HashPtr(unsafe.Pointer(a)) {
		t.Errorf("HashPtr is not stable")
	}
	if HashPtr(unsafe.Pointer(a)) == HashPtr(unsafe.Pointer(b)) {
		t.Errorf("HashPtr collides on distinct allocations")
	}
	if HashPtr(nil) != HashU64(0) {
		t.Errorf("HashPtr(nil) = %#x; want HashU64(0)", HashPtr(nil))
	}
}
