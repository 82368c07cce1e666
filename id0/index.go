// Package id0 decodes the B-tree index section: a paged, front-compressed
// key/value store addressed by page number, with page 0 reserved for the
// index header.
package id0

import (
	"go.uber.org/zap"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
	"github.com/laenix/idbgo/internal/logz"
)

const indexSignature = "B-tree v2"

const (
	offNextFreeOffset = 0
	offPageSize       = 4
	offRootPage       = 6
	offRecordCount    = 10
	offPageCount      = 14
	offUnknownByte    = 18
	offSignature      = 19
	headerSize        = offSignature + len(indexSignature)
)

// Index is a decoded id0 section: the header plus lazily-fetched pages.
type Index struct {
	NextFreeOffset uint32
	PageSize       uint16
	RootPage       uint32
	RecordCount    uint32
	PageCount      uint32

	buf []byte
}

// Parse decodes an id0 section payload.
func Parse(buf []byte) (*Index, error) {
	nextFreeOffset, err := binutil.U32(buf, offNextFreeOffset)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading next_free_offset")
	}
	pageSize, err := binutil.U16(buf, offPageSize)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading page_size")
	}
	rootPage, err := binutil.U32(buf, offRootPage)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading root_page")
	}
	recordCount, err := binutil.U32(buf, offRecordCount)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading record_count")
	}
	pageCount, err := binutil.U32(buf, offPageCount)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading page_count")
	}
	sig, err := binutil.Bytes(buf, offSignature, len(indexSignature))
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading signature")
	}
	if string(sig) != indexSignature {
		return nil, errs.New(errs.BadSignature, "id0: bad signature %q", sig)
	}
	if pageSize == 0 {
		return nil, errs.New(errs.Corrupt, "id0: page_size is zero")
	}

	return &Index{
		NextFreeOffset: nextFreeOffset,
		PageSize:       pageSize,
		RootPage:       rootPage,
		RecordCount:    recordCount,
		PageCount:      pageCount,
		buf:            buf,
	}, nil
}

// Validate re-checks the index signature, then walks every page and
// validates its decoded entries (Page.Validate: strictly ascending keys).
func (idx *Index) Validate() error {
	sig, err := binutil.Bytes(idx.buf, offSignature, len(indexSignature))
	if err != nil {
		return errs.Wrap(errs.Corrupt, err, "id0: reading signature")
	}
	if string(sig) != indexSignature {
		return errs.New(errs.BadSignature, "id0: bad signature %q", sig)
	}
	for n := uint32(1); n < idx.PageCount; n++ {
		page, err := idx.GetPage(n)
		if err != nil {
			return err
		}
		if err := page.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetPage fetches and decodes page n. Page 0 is reserved for the header and
// is never a valid page number here.
func (idx *Index) GetPage(n uint32) (*Page, error) {
	if n < 1 {
		logz.L().Debug("id0: request for reserved or invalid page", zap.Uint32("page", n))
		return nil, errs.New(errs.OutOfRange, "id0: page %d is reserved", n)
	}
	if n >= idx.PageCount {
		return nil, errs.New(errs.OutOfRange, "id0: page %d out of range (page_count=%d)", n, idx.PageCount)
	}
	off := int(n) * int(idx.PageSize)
	buf, err := binutil.Bytes(idx.buf, off, int(idx.PageSize))
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id0: reading page %d", n)
	}
	return parsePage(buf)
}

// Root returns the root page of the tree.
func (idx *Index) Root() (*Page, error) {
	return idx.GetPage(idx.RootPage)
}

// Find looks up a key using the given strategy (exact match, or leftmost
// match among keys sharing key as a prefix).
func (idx *Index) Find(key []byte, s strategy) (*Cursor, error) {
	root, err := idx.Root()
	if err != nil {
		return nil, err
	}
	return find(idx, root, []*Page{root}, key, s)
}

// FindExact looks up the entry whose key equals key exactly.
func (idx *Index) FindExact(key []byte) (*Cursor, error) {
	return idx.Find(key, exactMatch)
}

// FindPrefix looks up the first entry (in ascending key order) whose key
// carries the given prefix.
func (idx *Index) FindPrefix(prefix []byte) (*Cursor, error) {
	return idx.Find(prefix, prefixMatch)
}
