package idb

import (
	"os"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/flags"
	"github.com/laenix/idbgo/id0"
	"github.com/laenix/idbgo/id1"
	"github.com/laenix/idbgo/nam"
	"github.com/laenix/idbgo/til"
)

// Options configures how a database buffer is parsed. The format does not
// self-describe its address width, so callers supply it; 4 is the common
// case and is the default when Options is the zero value.
type Options struct {
	// WordSize is the address width in bytes: 4 or 8. Zero defaults to 4.
	WordSize int
	// StrictValidate re-checks every section's structural invariants after
	// parsing, beyond what Parse already enforces while decoding.
	StrictValidate bool
}

func (o Options) wordSize() int {
	if o.WordSize == 0 {
		return 4
	}
	return o.WordSize
}

// File is a fully parsed database: the container header plus each section's
// typed decoder.
type File struct {
	Header *FileHeader
	ID0    *id0.Index
	ID1    *id1.Map
	Nam    *nam.Index
	Til    *til.Section
	Seg    []byte
	ID2    []byte
}

// Parse decodes buf, a complete in-memory copy of a database file. It is the
// module's core entry point: everything else in this package is built on
// top of an already-mapped byte buffer, never on an *os.File.
func Parse(buf []byte, opts Options) (*File, error) {
	wordSize := opts.wordSize()
	if wordSize != 4 && wordSize != 8 {
		return nil, errs.New(errs.Corrupt, "idb: unsupported word size %d", wordSize)
	}

	header, err := parseFileHeader(buf)
	if err != nil {
		return nil, err
	}

	f := &File{Header: header}

	id0Sec, err := readSection(buf, header.Offsets[slotID0])
	if err != nil {
		return nil, err
	}
	if id0Sec != nil {
		f.ID0, err = id0.Parse(id0Sec.payload)
		if err != nil {
			return nil, err
		}
	}

	id1Sec, err := readSection(buf, header.Offsets[slotID1])
	if err != nil {
		return nil, err
	}
	if id1Sec != nil {
		f.ID1, err = id1.Parse(id1Sec.payload, wordSize)
		if err != nil {
			return nil, err
		}
	}

	namSec, err := readSection(buf, header.Offsets[slotNAM])
	if err != nil {
		return nil, err
	}
	if namSec != nil {
		f.Nam, err = nam.Parse(namSec.payload, wordSize)
		if err != nil {
			return nil, err
		}
	}

	tilSec, err := readSection(buf, header.Offsets[slotTIL])
	if err != nil {
		return nil, err
	}
	if tilSec != nil {
		f.Til, err = til.Parse(tilSec.payload)
		if err != nil {
			return nil, err
		}
	}

	segSec, err := readSection(buf, header.Offsets[slotSEG])
	if err != nil {
		return nil, err
	}
	if segSec != nil {
		f.Seg = segSec.payload
	}

	id2Sec, err := readSection(buf, header.Offsets[slotID2])
	if err != nil {
		return nil, err
	}
	if id2Sec != nil {
		f.ID2 = id2Sec.payload
	}

	if opts.StrictValidate {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Open reads path from disk and parses it. This is the only place in the
// module that touches the filesystem; everything else operates on an
// already-mapped buffer.
func Open(path string, opts Options) (*File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading %s", path)
	}
	return Parse(buf, opts)
}

func (f *File) validate() error {
	if f.ID0 != nil {
		if err := f.ID0.Validate(); err != nil {
			return err
		}
	}
	if f.ID1 != nil {
		if err := f.ID1.Validate(); err != nil {
			return err
		}
	}
	if f.Nam != nil {
		if err := f.Nam.Validate(); err != nil {
			return err
		}
	}
	if f.Til != nil {
		if err := f.Til.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) requireID1() (*id1.Map, error) {
	if f.ID1 == nil {
		return nil, errs.New(errs.NotFound, "idb: no id1 section present")
	}
	return f.ID1, nil
}

// SegStart returns the start address of the segment containing ea.
func (f *File) SegStart(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	seg, err := m.GetSegment(ea)
	if err != nil {
		return 0, err
	}
	return seg.Bounds.Start, nil
}

// SegEnd returns the end address (exclusive) of the segment containing ea.
func (f *File) SegEnd(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	seg, err := m.GetSegment(ea)
	if err != nil {
		return 0, err
	}
	return seg.Bounds.End, nil
}

// FirstSeg returns the start address of the first segment.
func (f *File) FirstSeg() (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	if len(m.Segments) == 0 {
		return 0, errs.New(errs.NotFound, "idb: no segments present")
	}
	return m.Segments[0].Bounds.Start, nil
}

// NextSeg returns the start address of the segment following the one
// containing ea.
func (f *File) NextSeg(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	seg, err := m.GetNextSegment(ea)
	if err != nil {
		return 0, err
	}
	return seg.Bounds.Start, nil
}

// GetFlags returns the flag word for ea.
func (f *File) GetFlags(ea uint64) (flags.Word, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	return m.GetFlags(ea)
}

// Head returns the address of the instruction or data item containing ea.
func (f *File) Head(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	return m.Head(ea)
}

// NextHead returns the address of the next item after the one containing ea.
func (f *File) NextHead(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	return m.NextHead(ea)
}

// PrevHead returns the address of the item preceding the one containing ea.
func (f *File) PrevHead(ea uint64) (uint64, error) {
	m, err := f.requireID1()
	if err != nil {
		return 0, err
	}
	return m.PrevHead(ea)
}

// GetManyBytes returns size bytes of defined values starting at ea.
func (f *File) GetManyBytes(ea, size uint64) ([]byte, error) {
	m, err := f.requireID1()
	if err != nil {
		return nil, err
	}
	return m.GetManyBytes(ea, size)
}
