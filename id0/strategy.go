package id0

import "github.com/laenix/idbgo/errs"

// strategy selects how Index.Find interprets its key argument. It is an
// unexported enum dispatched in one function body (find, below) rather than
// an interface hierarchy: there are exactly two strategies, neither carries
// state, and a switch keeps the B-tree descent logic in one place instead of
// split across two implementations that must stay in lockstep (Design Note
// 9.3).
type strategy int

const (
	exactMatch strategy = iota
	prefixMatch
)

// find walks down from page, descending the subtree that could hold key,
// until it lands on the entry Find should report: an exact key match for
// exactMatch, or the first entry (in ascending order) whose key carries key
// as a prefix for prefixMatch.
//
// The descent rule is the same for both strategies: keys inside a B-tree are
// totally ordered, so the set of keys sharing a given prefix is a contiguous
// range starting at the first key >= prefix. Walking to that lower bound and
// then checking HasPrefix locally is enough; there is no need to track a
// separate "next leaf" pointer while descending.
func find(idx *Index, page *Page, path []*Page, key []byte, s strategy) (*Cursor, error) {
	entries, err := page.Entries()
	if err != nil {
		return nil, err
	}

	if page.IsLeaf() {
		for i, e := range entries {
			cmp := compareKeys(e.Key(), key)
			if cmp == 0 {
				return newCursor(idx, path, i), nil
			}
			if cmp > 0 {
				if s == prefixMatch && hasPrefix(e.Key(), key) {
					return newCursor(idx, path, i), nil
				}
				break
			}
		}
		if s == exactMatch {
			return nil, errs.New(errs.NotFound, "id0: key not found")
		}
		return nil, errs.New(errs.NotFound, "id0: no key with the given prefix")
	}

	// Ppointer is the leftmost child, covering keys less than every entry.
	// Each entry's ChildPage covers the range strictly after that entry's key
	// up to (exclusive of) the next entry's key, so nextPage tracks "the
	// child that covers the key if it turns out to be less than the entry
	// we're currently looking at" as the scan advances.
	nextPage := page.Ppointer
	for i, e := range entries {
		cmp := compareKeys(e.Key(), key)
		if cmp == 0 {
			return newCursor(idx, path, i), nil
		}
		if s == prefixMatch && hasPrefix(e.Key(), key) {
			// A smaller prefix match, if any, lives strictly before this
			// entry's key: descend the child that precedes it.
			break
		}
		if cmp > 0 {
			break
		}
		nextPage = e.ChildPage()
	}
	child, err := idx.GetPage(nextPage)
	if err != nil {
		return nil, err
	}
	return find(idx, child, append(path, child), key, s)
}

// hasPrefix reports whether key begins with prefix.
func hasPrefix(key, prefix []byte) bool {
	if len(prefix) > len(key) {
		return false
	}
	for i := range prefix {
		if key[i] != prefix[i] {
			return false
		}
	}
	return true
}
