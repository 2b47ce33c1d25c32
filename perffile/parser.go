// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// RecordsOrder controls the order in which Records.Next yields
// records.
type RecordsOrder int

const (
	// RecordsFileOrder yields records in the order they appear in
	// the file, streaming directly off disk.
	RecordsFileOrder RecordsOrder = iota

	// RecordsTimeOrder yields records in timestamp order. This
	// requires a first pass over the file to collect timestamps
	// and does not stream.
	RecordsTimeOrder
)

// Records iterates over the event records of a File.
type Records struct {
	f    *File
	err  error
	done bool

	sr     *io.SectionReader
	buf    []byte
	offset int64 // offset of Record within the data section

	// order, if non-nil, gives the file-order indices to visit,
	// used for RecordsTimeOrder.
	order []int
	pos   int

	Record Record
}

// Records returns an iterator over f's event records.
func (f *File) Records(order RecordsOrder) *Records {
	rs := &Records{
		f:  f,
		sr: io.NewSectionReader(f.r, int64(f.hdr.Data.Offset), int64(f.hdr.Data.Size)),
	}
	if order == RecordsTimeOrder {
		if err := rs.buildTimeOrder(); err != nil {
			rs.err = err
			rs.done = true
		}
	}
	return rs
}

// buildTimeOrder does a first pass over the file in file order,
// recording each record's (offset, timestamp), then sorts by
// timestamp. Records whose attr carries no timestamp sort first, in
// file order, which matches how they'd appear relative to timestamped
// records recorded around the same time.
func (rs *Records) buildTimeOrder() error {
	type posTime struct {
		pos int
		ts  uint64
	}
	var entries []posTime

	scan := &Records{f: rs.f, sr: io.NewSectionReader(rs.f.r, int64(rs.f.hdr.Data.Offset), int64(rs.f.hdr.Data.Size))}
	i := 0
	for scan.Next() {
		ts := uint64(0)
		if c := scan.Record.Common(); c != nil {
			ts = c.Time
		}
		entries = append(entries, posTime{i, ts})
		i++
	}
	if err := scan.Err(); err != nil {
		return err
	}

	sort.SliceStable(entries, func(a, b int) bool { return entries[a].ts < entries[b].ts })
	order := make([]int, len(entries))
	for i, e := range entries {
		order[i] = e.pos
	}
	rs.order = order
	return nil
}

// Next advances the iterator and reports whether a record is
// available in Records.Record. It returns false at end of stream or
// on error; call Err to distinguish the two.
func (rs *Records) Next() bool {
	if rs.done {
		return false
	}
	if rs.order != nil {
		return rs.nextOrdered()
	}
	return rs.nextFileOrder()
}

func (rs *Records) nextOrdered() bool {
	// A time-ordered iterator re-reads file-order records one at
	// a time and reorders by re-seeking; this keeps memory
	// proportional to the file rather than buffering every
	// decoded record.
	if rs.pos >= len(rs.order) {
		rs.done = true
		return false
	}
	target := rs.order[rs.pos]
	rs.pos++

	fresh := &Records{f: rs.f, sr: io.NewSectionReader(rs.f.r, int64(rs.f.hdr.Data.Offset), int64(rs.f.hdr.Data.Size))}
	for i := 0; i <= target; i++ {
		if !fresh.nextFileOrder() {
			if err := fresh.Err(); err != nil {
				rs.err = err
			}
			rs.done = true
			return false
		}
	}
	rs.Record = fresh.Record
	return true
}

func (rs *Records) nextFileOrder() bool {
	var hdrBuf [8]byte
	off, err := rs.sr.Seek(0, io.SeekCurrent)
	if err != nil {
		rs.fail(err)
		return false
	}
	if _, err := io.ReadFull(rs.sr, hdrBuf[:]); err != nil {
		if err == io.EOF {
			rs.done = true
			return false
		}
		rs.fail(&TruncatedError{Op: "record header"})
		return false
	}
	hc := newCursor(hdrBuf[:], binary.LittleEndian)
	var hdr recordHeader
	hdr.Type = RecordType(hc.U32())
	hdr.Misc = recordMisc(hc.U16())
	hdr.Size = hc.U16()

	if hdr.Size < 8 {
		rs.fail(errors.Wrap(errInconsistentSizes, "record size smaller than its own header"))
		return false
	}
	body := make([]byte, hdr.Size-8)
	if _, err := io.ReadFull(rs.sr, body); err != nil {
		rs.fail(&TruncatedError{Op: "record body"})
		return false
	}

	rec, err := rs.f.parseRecord(off, hdr, body)
	if err != nil {
		if rs.f.logger != nil {
			rs.f.logger.Printf("perffile: stopping at malformed record at offset %d: %v", off, err)
		}
		rs.done = true
		return false
	}
	rs.Record = rec
	return true
}

func (rs *Records) fail(err error) {
	rs.err = err
	rs.done = true
}

// Err returns the first error encountered, if any. It should be
// checked after Next returns false.
func (rs *Records) Err() error {
	return rs.err
}

// parseRecord dispatches on hdr.Type and decodes body into a concrete
// Record.
func (f *File) parseRecord(offset int64, hdr recordHeader, body []byte) (Record, error) {
	if hdr.Type == RecordTypeSample {
		return f.parseSampleRecord(offset, hdr, body)
	}
	if hdr.Type == RecordTypeFinishedRound {
		return &RecordFinishedRound{common: RecordCommon{Offset: offset}}, nil
	}

	c := newCursor(body, binary.LittleEndian)
	common := RecordCommon{Offset: offset}

	var rec Record
	switch hdr.Type {
	case RecordTypeMmap, RecordTypeMmap2:
		rec = f.parseMmap(c, hdr.Type == RecordTypeMmap2, hdr.Misc)
	case RecordTypeLost:
		rec = &RecordLost{ID: c.U64(), Lost: c.U64()}
	case RecordTypeRead:
		r := &RecordRead{}
		r.PID, r.TID = c.U32(), c.U32()
		defaultAttr := f.attrByID(attrIDUnknown)
		rf := ReadFormat(0)
		if defaultAttr != nil {
			rf = defaultAttr.ReadFormat
		}
		r.Read = parseReadFormat(c, rf)
		rec = r
	case RecordTypeComm:
		r := &RecordComm{Exec: hdr.Misc&recordMiscCommExec != 0}
		r.PID, r.TID = c.U32(), c.U32()
		r.Comm = c.CString()
		rec = r
	case RecordTypeExit:
		r := &RecordExit{}
		r.PID, r.PPID = c.U32(), c.U32()
		r.TID, r.PTID = c.U32(), c.U32()
		r.Time = c.U64()
		rec = r
	case RecordTypeFork:
		r := &RecordFork{}
		r.PID, r.PPID = c.U32(), c.U32()
		r.TID, r.PTID = c.U32(), c.U32()
		r.Time = c.U64()
		rec = r
	case RecordTypeThrottle, RecordTypeUnthrottle:
		r := &RecordThrottle{Unthrottle: hdr.Type == RecordTypeUnthrottle}
		r.Time, r.ID, r.StreamID = c.U64(), c.U64(), c.U64()
		rec = r
	case RecordTypeBuildID:
		r := &RecordBuildID{}
		r.CPUMode = hdr.Misc.cpuMode()
		r.PID = c.I32()
		buildID := make([]byte, 24) // 20-byte ID, padded to 24
		c.Bytes(buildID)
		r.BuildID = BuildID(buildID[:20])
		// The filename fills the rest of the record; its length
		// is derived from the record's own size, since it isn't
		// separately length-prefixed: hdr.Size - header(8) -
		// pid(4) - build id(24) leaves the filename, which is
		// trimmed at its first NUL if it has one.
		name := c.Raw(c.Len())
		if i := indexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		r.Filename = string(name)
		rec = r
	default:
		if f.logger != nil {
			f.logger.Printf("perffile: %v", &UnknownRecordTypeError{Code: hdr.Type})
		}
		rec = &recordUnknown{typ: hdr.Type, data: append([]byte(nil), body...)}
	}

	if c.Err() != nil {
		return nil, c.Err()
	}

	defaultAttr := f.attrByID(attrIDUnknown)
	if defaultAttr != nil && defaultAttr.Flags&EventFlagSampleIDAll != 0 && hdr.Type != RecordTypeBuildID && hdr.Type != RecordTypeFinishedRound {
		trailer, err := f.parseSampleIDTrailer(c, defaultAttr)
		if err != nil {
			return nil, err
		}
		common.PID, common.TID = trailer.PID, trailer.TID
		common.Time = trailer.Time
		common.ID, common.StreamID = trailer.ID, trailer.StreamID
		common.CPU, common.CPURes = trailer.CPU, trailer.CPURes
		common.Attr = f.attrByID(trailer.ID)
	}

	*rec.Common() = common
	return rec, nil
}

func (f *File) parseMmap(c *cursor, v2 bool, misc recordMisc) *RecordMmap {
	recType := RecordTypeMmap
	if v2 {
		recType = RecordTypeMmap2
	}
	r := &RecordMmap{recType: recType, ExecMmap: misc&recordMiscMmapData == 0, HasFileID: v2}
	r.PID, r.TID = c.U32(), c.U32()
	r.Addr, r.Len, r.PgOff = c.U64(), c.U64(), c.U64()
	if v2 {
		r.Major, r.Minor = c.U32(), c.U32()
		r.Ino, r.InoGeneration = c.U64(), c.U64()
		r.Prot, r.Flags = c.U32(), c.U32()
	}
	r.Filename = c.CString()
	return r
}

type sampleIDTrailer struct {
	PID, TID     uint32
	Time         uint64
	ID, StreamID uint64
	CPU, CPURes  uint32
}

// parseSampleIDTrailer decodes the optional sample_id struct attached
// to the end of every non-Sample record when the event's attr sets
// PERF_SAMPLE_ID_ALL. Field order is fixed by the kernel ABI and, for
// this trailer (unlike the Sample record body), Identifier comes
// last rather than first.
func (f *File) parseSampleIDTrailer(c *cursor, attr *EventAttr) (sampleIDTrailer, error) {
	var t sampleIDTrailer
	st := attr.SampleType
	if st.hasTID() {
		t.PID, t.TID = c.U32(), c.U32()
	}
	if st.hasTime() {
		t.Time = c.U64()
	}
	if st.hasID() {
		t.ID = c.U64()
	}
	if st.hasStreamID() {
		t.StreamID = c.U64()
	}
	if st.hasCPU() {
		t.CPU, t.CPURes = c.U32(), c.U32()
	}
	if st.hasIdentifier() {
		t.ID = c.U64()
	}
	return t, c.Err()
}

func (f *File) parseSampleRecord(offset int64, hdr recordHeader, body []byte) (Record, error) {
	attr := f.attrByID(attrIDUnknown)
	c := newCursor(body, binary.LittleEndian)

	if attr == nil {
		// Without an attribute we can't know the sample's shape.
		return nil, errors.New("sample record with no known event attribute")
	}
	// If the file has multiple attrs, the real attr ID is folded
	// into the body (Identifier or ID, whichever the format
	// carries first); re-read it to pick the right attr before
	// parsing the rest of the body against its SampleType.
	if len(f.attrs) > 1 {
		if id, ok := f.peekSampleID(body, attr.SampleType); ok {
			if a := f.attrByID(id); a != nil {
				attr = a
			}
		}
	}

	r := parseSample(c, attr)
	if c.Err() != nil {
		return nil, c.Err()
	}
	r.common = RecordCommon{
		Offset: offset, Attr: attr,
		PID: r.PID, TID: r.TID, Time: r.Time,
		ID: r.ID, StreamID: r.StreamID, CPU: r.CPU, CPURes: r.CPURes,
	}
	return r, nil
}

// peekSampleID reads just enough of a sample body to recover its
// event ID, without fully decoding it, so multi-attr files can
// dispatch each sample to the right attribute before parsing the
// rest of its fields.
func (f *File) peekSampleID(body []byte, st SampleFormat) (uint64, bool) {
	if !st.hasIdentifier() && !st.hasID() {
		return 0, false
	}
	c := newCursor(body, binary.LittleEndian)
	if st.hasIdentifier() {
		return c.U64(), c.Err() == nil
	}
	// ID is not first in the body; walk the fixed prefix fields
	// that precede it to find its offset.
	if st.hasIP() {
		c.U64()
	}
	if st.hasTID() {
		c.U64()
	}
	if st.hasTime() {
		c.U64()
	}
	if st.hasAddr() {
		c.U64()
	}
	return c.U64(), c.Err() == nil
}
