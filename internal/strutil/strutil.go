// Package strutil provides best-effort text decoding for debug output. It is
// never on the core parse/traversal path: id0 keys and values are opaque bytes
// there. It only backs idb.DumpValue, which a caller can use to eyeball a value
// that looks like a UTF-16LE name string.
package strutil

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16LE attempts to decode b as UTF-16LE. It reports ok=false if b has
// an odd length or decoding fails, rather than returning garbage.
func DecodeUTF16LE(b []byte) (string, bool) {
	if len(b) == 0 || len(b)%2 != 0 {
		return "", false
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", false
	}
	return string(out), true
}
