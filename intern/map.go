package intern

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrZeroKey   = errors.New("intern: zero key")
	ErrZeroValue = errors.New("intern: zero value")
)

const minMapCap = 16

type slot[K constraints.Unsigned, V comparable] struct {
	key K
	val V
}

// Map is an open-addressing hash map with linear probing over a power-of-two
// table. The zero key marks an empty slot, so neither keys nor values may be
// zero; callers with a real zero key must bias it to a non-zero sentinel.
//
// The load factor never exceeds one half.
type Map[K constraints.Unsigned, V comparable] struct {
	slots []slot[K, V]
	len   int
}

// Len reports the number of live entries.
func (m *Map[K, V]) Len() int { return m.len }

// Cap reports the table size.
func (m *Map[K, V]) Cap() int { return len(m.slots) }

func (m *Map[K, V]) mask() uint64 {
	return uint64(len(m.slots) - 1)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m.len == 0 || key == 0 {
		return zero, false
	}
	for i := HashU64(uint64(key)) & m.mask(); ; i = (i + 1) & m.mask() {
		s := &m.slots[i]
		if s.key == key {
			return s.val, true
		}
		if s.key == 0 {
			return zero, false
		}
	}
}

// Put stores val under key, replacing any previous value.
func (m *Map[K, V]) Put(key K, val V) error {
	var zero V
	switch {
	case key == 0:
		return ErrZeroKey
	case val == zero:
		return ErrZeroValue
	}
	if 2*(m.len+1) > len(m.slots) {
		m.grow(max(minMapCap, 2*len(m.slots)))
	}
	m.put(key, val)
	return nil
}

func (m *Map[K, V]) put(key K, val V) {
	for i := HashU64(uint64(key)) & m.mask(); ; i = (i + 1) & m.mask() {
		s := &m.slots[i]
		if s.key == 0 {
			s.key, s.val = key, val
			m.len++
			return
		}
		if s.key == key {
			s.val = val
			return
		}
	}
}

//go:noinline
func (m *Map[K, V]) grow(newCap int) {
	old := m.slots
	m.slots = make([]slot[K, V], newCap)
	m.len = 0
	for _, s := range old {
		if s.key != 0 {
			m.put(s.key, s.val)
		}
	}
}
