package driver

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw source bytes to UTF-8 text. A UTF-8 byte order mark
// is dropped and UTF-16 input with a byte order mark is converted; anything
// else is taken as UTF-8 unchanged.
func Decode(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
