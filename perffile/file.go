// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Logger receives diagnostic messages about non-fatal problems
// encountered while iterating over a File's records, such as a
// malformed trailing record. A File with no Logger set silently stops
// iterating instead.
type Logger interface {
	Printf(format string, args ...interface{})
}

// File is a parsed perf.data profile.
//
// A File is not safe for concurrent use by multiple goroutines, but
// independently constructed Records iterators over the same File may
// be used concurrently.
type File struct {
	Meta FileMeta

	r      io.ReaderAt
	closer io.Closer
	logger Logger

	hdr fileHeader

	attrs    []EventAttr
	idToAttr map[uint64]*EventAttr
}

// attrIDUnknown is a sentinel ID that is never stored in idToAttr;
// looking it up makes attrByID fall back to attrs[0], which is the
// attribute of every sample in a file with a single attribute.
const attrIDUnknown = ^uint64(0)

// New parses a perf.data profile read from r.
func New(r io.ReaderAt) (*File, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	f := &File{r: r, hdr: hdr, idToAttr: map[uint64]*EventAttr{}}

	if err := f.readAttrs(); err != nil {
		return nil, err
	}
	if err := f.readFeatures(); err != nil {
		return nil, err
	}
	return f, nil
}

// Open opens the named perf.data file and parses it.
func Open(name string) (*File, error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	f, err := New(fh)
	if err != nil {
		fh.Close()
		return nil, err
	}
	f.closer = fh
	return f, nil
}

// SetLogger installs a diagnostic sink for non-fatal errors
// encountered while iterating over f's records.
func (f *File) SetLogger(l Logger) {
	f.logger = l
}

// Close releases resources associated with f, if it was opened with
// Open. It is a no-op if f was constructed with New.
func (f *File) Close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}

// Attrs returns the event attributes recorded in this file, one per
// distinct event the profiler was configured to record.
func (f *File) Attrs() []EventAttr {
	return f.attrs
}

func (f *File) readAttrs() error {
	if f.hdr.AttrSize == 0 {
		return errors.Wrap(errInconsistentSizes, "attr_size is 0")
	}
	nAttrs := f.hdr.Attrs.Size / f.hdr.AttrSize
	if nAttrs == 0 {
		return errors.New("perf.data file has no event attributes")
	}
	if nAttrs > 1<<16 {
		return errors.Wrap(errInconsistentSizes, "implausible attribute count")
	}

	buf, err := f.hdr.Attrs.data(f.r)
	if err != nil {
		return err
	}

	type attrIDs struct {
		attr *EventAttr
		ids  fileSection
	}
	var fileAttrs []attrIDs

	// Each entry in the attrs section is a perf_file_attr: a
	// variable-length perf_event_attr (whose own leading size
	// field gives its ABI-versioned length) followed by a fixed
	// 16-byte ids fileSection pointing at that event's sample/
	// record IDs elsewhere in the file. hdr.AttrSize is the
	// stride of the whole entry, not just the embedded attr.
	c := newCursor(buf, binary.LittleEndian)
	for i := uint64(0); i < nAttrs; i++ {
		entry := c.take(int(f.hdr.AttrSize), "event attribute entry")
		if c.Err() != nil {
			return c.Err()
		}

		innerSize := attrABISizeV0
		if len(entry) >= 8 {
			innerSize = int(binary.LittleEndian.Uint32(entry[4:8]))
			if innerSize == 0 {
				innerSize = attrABISizeV0
			}
		}
		if innerSize > len(entry)-16 {
			return errors.Wrap(errInconsistentSizes, "event attribute larger than its entry")
		}

		attr, err := readEventAttr(entry[:innerSize], binary.LittleEndian)
		if err != nil {
			return err
		}
		ic := newCursor(entry[innerSize:], binary.LittleEndian)
		idsOff, idsSize := ic.U64(), ic.U64()
		if ic.Err() != nil {
			return ic.Err()
		}

		f.attrs = append(f.attrs, attr)
		fileAttrs = append(fileAttrs, attrIDs{&f.attrs[len(f.attrs)-1], fileSection{idsOff, idsSize}})
	}

	for _, fa := range fileAttrs {
		if fa.ids.Size == 0 {
			continue
		}
		idBuf, err := fa.ids.data(f.r)
		if err != nil {
			return err
		}
		ic := newCursor(idBuf, binary.LittleEndian)
		n := int(fa.ids.Size / 8)
		for _, id := range ic.U64s(n) {
			f.idToAttr[id] = fa.attr
		}
	}
	return nil
}

// attrByID returns the event attribute for the given sample/record
// ID, falling back to the file's first attribute when the ID isn't
// known — the common case for files with a single event, which don't
// bother setting PERF_SAMPLE_ID at all since there's nothing to
// disambiguate.
func (f *File) attrByID(id uint64) *EventAttr {
	if a, ok := f.idToAttr[id]; ok {
		return a
	}
	if len(f.attrs) > 0 {
		return &f.attrs[0]
	}
	return nil
}

func (f *File) readFeatures() error {
	off := f.hdr.Data.Offset + f.hdr.Data.Size
	for bit := feature(0); bit < numFeatureBits; bit++ {
		if !f.hdr.hasFeature(bit) {
			continue
		}
		buf := make([]byte, 16)
		if _, err := f.r.ReadAt(buf, int64(off)); err != nil {
			return errors.Wrap(&TruncatedError{Op: "feature section table"}, err.Error())
		}
		c := newCursor(buf, binary.LittleEndian)
		sec := fileSection{Offset: c.U64(), Size: c.U64()}
		off += 16

		if err := f.Meta.parse(bit, sec, f.r); err != nil {
			return errors.Wrapf(err, "parsing feature section %d", bit)
		}
	}
	return nil
}
