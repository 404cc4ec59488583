package seq

import (
	"fmt"
	"io"
)

// Text is a growable byte buffer for formatted output. It grows with the
// same policy as Buf and formats directly into its spare capacity.
type Text struct {
	data []byte
}

var _ io.Writer = (*Text)(nil)

// counter is an io.Writer that only measures.
type counter int

func (c *counter) Write(p []byte) (int, error) {
	*c += counter(len(p))
	return len(p), nil
}

func (t *Text) fit(extra int) {
	need := len(t.data) + extra
	if need <= cap(t.data) {
		return
	}
	grown := make([]byte, len(t.data), growCap(cap(t.data), need))
	copy(grown, t.data)
	t.data = grown
}

// Appendf formats according to format and appends the result.
func (t *Text) Appendf(format string, args ...any) {
	var n counter
	fmt.Fprintf(&n, format, args...)
	t.fit(int(n))
	t.data = fmt.Appendf(t.data, format, args...)
}

// WriteString appends s.
func (t *Text) WriteString(s string) {
	t.fit(len(s))
	t.data = append(t.data, s...)
}

// WriteByte appends c.
func (t *Text) WriteByte(c byte) error {
	t.fit(1)
	t.data = append(t.data, c)
	return nil
}

// Write appends p. It never fails.
func (t *Text) Write(p []byte) (int, error) {
	t.fit(len(p))
	t.data = append(t.data, p...)
	return len(p), nil
}

// Truncate discards all but the first n bytes.
func (t *Text) Truncate(n int) {
	t.data = t.data[:n]
}

// Len reports the number of bytes written.
func (t *Text) Len() int { return len(t.data) }

// Cap reports the current capacity.
func (t *Text) Cap() int { return cap(t.data) }

// Bytes returns the contents, valid until the next write.
func (t *Text) Bytes() []byte { return t.data }

// String returns a copy of the contents.
func (t *Text) String() string { return string(t.data) }

// Reset empties the buffer and keeps the storage.
func (t *Text) Reset() { t.data = t.data[:0] }

// Free releases the storage.
func (t *Text) Free() { t.data = nil }
