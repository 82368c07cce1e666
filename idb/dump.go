package idb

import (
	"encoding/hex"
	"fmt"

	"github.com/laenix/idbgo/internal/strutil"
)

// DumpValue renders an id0 entry value for debugging: hex bytes, plus a
// best-effort UTF-16LE decoding when the bytes look like a name or string
// record. id0 values are opaque to the core parser — this exists only to
// make ad-hoc inspection (REPL-style debugging) readable.
func DumpValue(raw []byte) string {
	if s, ok := strutil.DecodeUTF16LE(raw); ok {
		return fmt.Sprintf("%s (%s)", hex.EncodeToString(raw), s)
	}
	return hex.EncodeToString(raw)
}
