package id0

import (
	"sync"

	"go.uber.org/zap"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
	"github.com/laenix/idbgo/internal/logz"
)

// entryPointerSize is the on-disk size of one entry pointer, branch or leaf:
// three uint16/uint32 fields, 6 bytes either way.
const entryPointerSize = 6

const pageHeaderSize = 6

// Entry is one key/value pair out of a page, or — on a branch page — a
// key/child-page/value triple. Branch and leaf entries share this one type
// (Design Note 9.2): a tag plus a common Key()/Value() projection, rather
// than a Go interface per Python's duck-typed entry classes.
type Entry struct {
	branch    bool
	key       []byte
	value     []byte
	childPage uint32
}

// Key returns the entry's full (front-decompressed, for leaf entries) key.
func (e Entry) Key() []byte { return e.key }

// Value returns the entry's value bytes.
func (e Entry) Value() []byte { return e.value }

// IsBranch reports whether this entry carries a child page pointer.
func (e Entry) IsBranch() bool { return e.branch }

// ChildPage returns the page number of the subtree holding keys strictly
// greater than Key() and less than the next entry's key (or greater than
// Key() with no upper bound, for the last entry), for a branch entry. It is
// zero for leaf entries.
func (e Entry) ChildPage() uint32 { return e.childPage }

// Page is one node of the B-tree: either a leaf (Ppointer == 0) holding
// key/value entries directly, or a branch holding key/child-page/value
// triples plus a leading child pointer (Ppointer) for keys less than every
// entry's key.
type Page struct {
	Ppointer   uint32
	EntryCount uint16
	contents   []byte

	once    sync.Once
	decoded []Entry
	decErr  error
}

// parsePage decodes a page's fixed header from a page_size-sized buffer. The
// entry pointers and bodies are decoded lazily, once, on first access — see
// entries().
func parsePage(buf []byte) (*Page, error) {
	ppointer, err := binutil.U32(buf, 0)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading page ppointer")
	}
	entryCount, err := binutil.U16(buf, 4)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading page entry_count")
	}
	return &Page{
		Ppointer:   ppointer,
		EntryCount: entryCount,
		contents:   buf,
	}, nil
}

// IsLeaf reports whether this page has no child pages.
func (p *Page) IsLeaf() bool { return p.Ppointer == 0 }

// entries decodes and caches this page's entry list. The decode runs exactly
// once regardless of how many goroutines call entries() concurrently; the
// resulting slice is never mutated afterward, so concurrent readers are safe
// without further locking.
func (p *Page) entries() ([]Entry, error) {
	p.once.Do(func() {
		p.decoded, p.decErr = p.decodeEntries()
		if p.decErr != nil {
			logz.L().Debug("id0: page entries failed to decode", zap.Error(p.decErr))
		}
	})
	return p.decoded, p.decErr
}

func (p *Page) decodeEntries() ([]Entry, error) {
	out := make([]Entry, 0, p.EntryCount)
	var prevKey []byte

	for i := uint16(0); i < p.EntryCount; i++ {
		ptrOff := pageHeaderSize + int(i)*entryPointerSize

		if p.IsLeaf() {
			commonPrefix, err := binutil.U16(p.contents, ptrOff)
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d pointer", i)
			}
			bodyOff, err := binutil.U16(p.contents, ptrOff+4)
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d offset", i)
			}

			suffixLen, err := binutil.U16(p.contents, int(bodyOff))
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d suffix length", i)
			}
			suffix, err := binutil.Bytes(p.contents, int(bodyOff)+2, int(suffixLen))
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d suffix", i)
			}
			valueLenOff := int(bodyOff) + 2 + int(suffixLen)
			valueLen, err := binutil.U16(p.contents, valueLenOff)
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d value length", i)
			}
			value, err := binutil.Bytes(p.contents, valueLenOff+2, int(valueLen))
			if err != nil {
				return nil, errs.Wrap(errs.Corrupt, err, "id0: reading leaf entry %d value", i)
			}

			if int(commonPrefix) > len(prevKey) {
				return nil, errs.New(errs.Corrupt, "id0: leaf entry %d common_prefix exceeds previous key", i)
			}
			key := make([]byte, 0, int(commonPrefix)+len(suffix))
			key = append(key, prevKey[:commonPrefix]...)
			key = append(key, suffix...)

			out = append(out, Entry{key: key, value: value})
			prevKey = key
			continue
		}

		childPage, err := binutil.U32(p.contents, ptrOff)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d child page", i)
		}
		bodyOff, err := binutil.U16(p.contents, ptrOff+4)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d offset", i)
		}

		keyLen, err := binutil.U16(p.contents, int(bodyOff))
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d key length", i)
		}
		key, err := binutil.Bytes(p.contents, int(bodyOff)+2, int(keyLen))
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d key", i)
		}
		valueLenOff := int(bodyOff) + 2 + int(keyLen)
		valueLen, err := binutil.U16(p.contents, valueLenOff)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d value length", i)
		}
		value, err := binutil.Bytes(p.contents, valueLenOff+2, int(valueLen))
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id0: reading branch entry %d value", i)
		}

		out = append(out, Entry{branch: true, key: key, value: value, childPage: childPage})
		prevKey = key
	}

	return out, nil
}

// Entries returns this page's decoded entries in ascending key order.
func (p *Page) Entries() ([]Entry, error) {
	return p.entries()
}

// Entry returns the i'th entry.
func (p *Page) Entry(i int) (Entry, error) {
	entries, err := p.entries()
	if err != nil {
		return Entry{}, err
	}
	if i < 0 || i >= len(entries) {
		return Entry{}, errs.New(errs.OutOfRange, "id0: entry index %d out of range (0..%d)", i, len(entries))
	}
	return entries[i], nil
}

// Validate decodes the page's entries (if not already cached) and checks
// that keys are strictly ascending.
func (p *Page) Validate() error {
	entries, err := p.entries()
	if err != nil {
		return err
	}
	for i := 1; i < len(entries); i++ {
		if compareKeys(entries[i-1].key, entries[i].key) >= 0 {
			return errs.New(errs.Corrupt, "id0: page entries are not strictly ascending at index %d", i)
		}
	}
	return nil
}

// compareKeys compares two keys as unsigned byte strings, per the format's
// lexicographic ordering.
func compareKeys(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
