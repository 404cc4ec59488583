package intern

import "unsafe"

// HashU64 mixes an integer key.
func HashU64(x uint64) uint64 {
	x *= 0xff51afd7ed558ccd
	x ^= x >> 32
	return x
}

// HashPtr hashes a pointer by address.
func HashPtr(p unsafe.Pointer) uint64 {
	return HashU64(uint64(uintptr(p)))
}

// HashBytes is an FNV-1a variant with an extra xor-shift fold per byte.
func HashBytes(b []byte) uint64 {
	x := uint64(0xcbf29ce484222325)
	for _, c := range b {
		x ^= uint64(c)
		x *= 0x100000001b3
		x ^= x >> 32
	}
	return x
}
