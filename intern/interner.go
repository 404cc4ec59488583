// Package intern provides an open-addressing hash map and a string interner
// built on it. Interned strings are canonical: two Names are == exactly when
// their contents are equal, so downstream code never compares bytes.
package intern

import (
	"unsafe"

	"github.com/t14raptor/go-jack/arena"
)

type entry struct {
	next *entry
	buf  []byte // contents plus a trailing NUL, arena-owned
	str  string // aliases buf without the NUL
}

// Name is a handle to a canonical interned string. The zero Name is not
// interned and has empty contents.
type Name struct {
	e *entry
}

func (n Name) String() string {
	if n.e == nil {
		return ""
	}
	return n.e.str
}

func (n Name) Len() int {
	if n.e == nil {
		return 0
	}
	return len(n.e.str)
}

func (n Name) IsZero() bool { return n.e == nil }

// Terminated returns the stored bytes including the trailing NUL. The result
// must not be modified.
func (n Name) Terminated() []byte {
	if n.e == nil {
		return nil
	}
	return n.e.buf
}

// Addr returns the identity of the canonical allocation. It is stable for the
// life of the interner and zero only for the zero Name.
func (n Name) Addr() uintptr {
	return uintptr(unsafe.Pointer(n.e))
}

// Interner maps byte contents to canonical Names. Storage for the strings
// comes from an arena; the map is keyed by the content hash and each slot
// heads a chain of entries sharing that hash.
//
// An Interner is not safe for concurrent use.
type Interner struct {
	arena   *arena.Arena
	entries arena.Slab[entry]
	index   Map[uint64, *entry]
	count   int
}

// New returns an interner allocating from a. A nil arena gets a private one.
func New(a *arena.Arena) *Interner {
	if a == nil {
		a = arena.New()
	}
	in := &Interner{arena: a}
	in.entries.Init(256)
	return in
}

func bucketKey(b []byte) uint64 {
	if h := HashBytes(b); h != 0 {
		return h
	}
	return 1
}

// Intern returns the canonical Name for b, copying b into the arena on a miss.
func (in *Interner) Intern(b []byte) Name {
	key := bucketKey(b)
	head, _ := in.index.Get(key)
	for e := head; e != nil; e = e.next {
		if len(e.str) == len(b) && e.str == string(b) {
			return Name{e}
		}
	}

	buf := in.arena.Alloc(len(b) + 1)
	copy(buf, b)
	e := in.entries.New()
	*e = entry{
		next: head,
		buf:  buf,
		str:  unsafe.String(&buf[0], len(b)),
	}
	if err := in.index.Put(key, e); err != nil {
		panic(err) // key and value are both non-zero by construction
	}
	in.count++
	return Name{e}
}

// InternString is Intern for a string.
func (in *Interner) InternString(s string) Name {
	return in.Intern(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Len reports the number of distinct strings interned.
func (in *Interner) Len() int {
	return in.count
}
