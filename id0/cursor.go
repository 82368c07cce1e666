package id0

import "github.com/laenix/idbgo/errs"

// Cursor tracks a position in the B-tree as an explicit descent path from
// the root to the page holding the current entry, rather than parent
// pointers on Page: pages are shared, cached, and read by concurrent
// cursors, so a page has no single "parent" to point back to (Design Note
// 9.1). Next/Prev instead pop path entries and re-search from a remembered
// key when the current page is exhausted.
//
// A Cursor's state after a Next or Prev call that returns an error is
// undefined; callers must obtain a fresh cursor via Index.Find rather than
// reuse it.
type Cursor struct {
	idx        *Index
	path       []*Page
	entryIndex int
}

func newCursor(idx *Index, path []*Page, entryIndex int) *Cursor {
	p := make([]*Page, len(path))
	copy(p, path)
	return &Cursor{idx: idx, path: p, entryIndex: entryIndex}
}

func (c *Cursor) current() (*Page, Entry, error) {
	page := c.path[len(c.path)-1]
	e, err := page.Entry(c.entryIndex)
	if err != nil {
		return nil, Entry{}, err
	}
	return page, e, nil
}

// Key returns the key of the entry the cursor is positioned on.
func (c *Cursor) Key() ([]byte, error) {
	_, e, err := c.current()
	if err != nil {
		return nil, err
	}
	return e.Key(), nil
}

// Value returns the value of the entry the cursor is positioned on.
func (c *Cursor) Value() ([]byte, error) {
	_, e, err := c.current()
	if err != nil {
		return nil, err
	}
	return e.Value(), nil
}

// Path returns the descent path from the root to the cursor's current page.
func (c *Cursor) Path() []*Page {
	out := make([]*Page, len(c.path))
	copy(out, c.path)
	return out
}

// Next advances the cursor to the entry with the next greater key.
func (c *Cursor) Next() error {
	page := c.path[len(c.path)-1]
	entries, err := page.Entries()
	if err != nil {
		return err
	}

	if page.IsLeaf() {
		if c.entryIndex+1 < len(entries) {
			c.entryIndex++
			return nil
		}
		return c.ascendNext()
	}

	childPage := entries[c.entryIndex].ChildPage()
	child, err := c.idx.GetPage(childPage)
	if err != nil {
		return err
	}
	c.path = append(c.path, child)
	return c.descendLeftmost()
}

// Prev moves the cursor to the entry with the next smaller key.
func (c *Cursor) Prev() error {
	page := c.path[len(c.path)-1]
	entries, err := page.Entries()
	if err != nil {
		return err
	}

	if page.IsLeaf() {
		if c.entryIndex > 0 {
			c.entryIndex--
			return nil
		}
		return c.ascendPrev()
	}

	var childPage uint32
	if c.entryIndex == 0 {
		childPage = page.Ppointer
	} else {
		childPage = entries[c.entryIndex-1].ChildPage()
	}
	child, err := c.idx.GetPage(childPage)
	if err != nil {
		return err
	}
	c.path = append(c.path, child)
	return c.descendRightmost()
}

// ascendNext pops exhausted pages off the path, looking for an ancestor
// entry with the next key greater than the one the cursor started on.
func (c *Cursor) ascendNext() error {
	startKey, err := c.Key()
	if err != nil {
		return err
	}
	for len(c.path) > 1 {
		c.path = c.path[:len(c.path)-1]
		page := c.path[len(c.path)-1]
		entries, err := page.Entries()
		if err != nil {
			return err
		}
		if i := firstGreater(entries, startKey); i < len(entries) {
			c.entryIndex = i
			return nil
		}
	}
	return errs.New(errs.OutOfRange, "id0: no entry after the current position")
}

// ascendPrev is the mirror of ascendNext for Prev.
func (c *Cursor) ascendPrev() error {
	startKey, err := c.Key()
	if err != nil {
		return err
	}
	for len(c.path) > 1 {
		c.path = c.path[:len(c.path)-1]
		page := c.path[len(c.path)-1]
		entries, err := page.Entries()
		if err != nil {
			return err
		}
		if i := lastLess(entries, startKey); i >= 0 {
			c.entryIndex = i
			return nil
		}
	}
	return errs.New(errs.OutOfRange, "id0: no entry before the current position")
}

// descendLeftmost walks from the path's current (branch) tail down to the
// leftmost leaf, positioning the cursor at its first entry.
func (c *Cursor) descendLeftmost() error {
	for {
		page := c.path[len(c.path)-1]
		entries, err := page.Entries()
		if err != nil {
			return err
		}
		if page.IsLeaf() {
			if len(entries) == 0 {
				return errs.New(errs.Corrupt, "id0: empty leaf page")
			}
			c.entryIndex = 0
			return nil
		}
		if len(entries) == 0 {
			return errs.New(errs.Corrupt, "id0: empty branch page")
		}
		child, err := c.idx.GetPage(page.Ppointer)
		if err != nil {
			return err
		}
		c.path = append(c.path, child)
	}
}

// descendRightmost walks from the path's current (branch) tail down to the
// rightmost leaf, positioning the cursor at its last entry.
func (c *Cursor) descendRightmost() error {
	for {
		page := c.path[len(c.path)-1]
		entries, err := page.Entries()
		if err != nil {
			return err
		}
		if page.IsLeaf() {
			if len(entries) == 0 {
				return errs.New(errs.Corrupt, "id0: empty leaf page")
			}
			c.entryIndex = len(entries) - 1
			return nil
		}
		if len(entries) == 0 {
			return errs.New(errs.Corrupt, "id0: empty branch page")
		}
		child, err := c.idx.GetPage(entries[len(entries)-1].ChildPage())
		if err != nil {
			return err
		}
		c.path = append(c.path, child)
	}
}

// firstGreater returns the index of the first entry with a key greater than
// key, or len(entries) if none.
func firstGreater(entries []Entry, key []byte) int {
	for i, e := range entries {
		if compareKeys(e.Key(), key) > 0 {
			return i
		}
	}
	return len(entries)
}

// lastLess returns the index of the last entry with a key less than key, or
// -1 if none.
func lastLess(entries []Entry, key []byte) int {
	last := -1
	for i, e := range entries {
		if compareKeys(e.Key(), key) >= 0 {
			break
		}
		last = i
	}
	return last
}
