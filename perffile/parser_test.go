// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func mmapRecordBody(pid, tid uint32, addr, length, pgoff uint64, filename string) []byte {
	var buf bytes.Buffer
	w := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	w(pid)
	w(tid)
	w(addr)
	w(length)
	w(pgoff)
	buf.WriteString(filename)
	buf.WriteByte(0)
	return buf.Bytes()
}

func TestFileSingleMmapRecord(t *testing.T) {
	attr := EventAttr{Type: EventTypeSoftware, Config: uint64(EventSoftwareCPUClock), SamplePeriod: 1}
	rec := recordBytes(RecordTypeMmap, 0, mmapRecordBody(100, 100, 0x400000, 0x1000, 0, "/bin/true"))

	tf := testFile{attr: testAttrV4(attr), records: [][]byte{rec}}
	buf := tf.build()

	f, err := New(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rs := f.Records(RecordsFileOrder)
	if !rs.Next() {
		t.Fatalf("Next() = false, err = %v", rs.Err())
	}
	m, ok := rs.Record.(*RecordMmap)
	if !ok {
		t.Fatalf("Record type = %T, want *RecordMmap", rs.Record)
	}
	if m.PID != 100 || m.TID != 100 || m.Addr != 0x400000 || m.Len != 0x1000 || m.Filename != "/bin/true" {
		t.Errorf("got %+v", m)
	}
	if m.Type() != RecordTypeMmap {
		t.Errorf("Type() = %v, want RecordTypeMmap", m.Type())
	}
	if rs.Next() {
		t.Fatal("expected only one record")
	}
	if rs.Err() != nil {
		t.Fatalf("Err() = %v", rs.Err())
	}
}

func TestFileMmap2Record(t *testing.T) {
	attr := EventAttr{Type: EventTypeSoftware, Config: uint64(EventSoftwareCPUClock), SamplePeriod: 1}

	var buf bytes.Buffer
	w := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	w(uint32(1)) // pid
	w(uint32(1)) // tid
	w(uint64(0x7f0000000000))
	w(uint64(0x2000))
	w(uint64(0))
	w(uint32(8))  // major
	w(uint32(1))  // minor
	w(uint64(42)) // ino
	w(uint64(0))  // ino generation
	w(uint32(5))  // prot
	w(uint32(2))  // flags
	buf.WriteString("/lib/libc.so")
	buf.WriteByte(0)

	rec := recordBytes(RecordTypeMmap2, 0, buf.Bytes())
	tf := testFile{attr: testAttrV4(attr), records: [][]byte{rec}}
	f, err := New(bytes.NewReader(tf.build()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rs := f.Records(RecordsFileOrder)
	if !rs.Next() {
		t.Fatalf("Next() = false, err = %v", rs.Err())
	}
	m := rs.Record.(*RecordMmap)
	if !m.HasFileID || m.Ino != 42 || m.Major != 8 {
		t.Errorf("got %+v", m)
	}
	if m.Type() != RecordTypeMmap2 {
		t.Errorf("Type() = %v, want RecordTypeMmap2", m.Type())
	}
}

func TestFileBuildIDRecord(t *testing.T) {
	attr := EventAttr{Type: EventTypeSoftware, Config: uint64(EventSoftwareCPUClock), SamplePeriod: 1}

	var buf bytes.Buffer
	w := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	w(uint32(100)) // pid
	id := make([]byte, 24)
	for i := 0; i < 20; i++ {
		id[i] = byte(i + 1)
	}
	buf.Write(id) // last 4 bytes stay zero padding
	buf.WriteString("/bin/true")
	buf.WriteByte(0)

	rec := recordBytes(RecordTypeBuildID, 0, buf.Bytes())
	tf := testFile{attr: testAttrV4(attr), records: [][]byte{rec}}
	f, err := New(bytes.NewReader(tf.build()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rs := f.Records(RecordsFileOrder)
	if !rs.Next() {
		t.Fatalf("Next() = false, err = %v", rs.Err())
	}
	b, ok := rs.Record.(*RecordBuildID)
	if !ok {
		t.Fatalf("Record type = %T, want *RecordBuildID", rs.Record)
	}
	if b.Filename != "/bin/true" {
		t.Errorf("Filename = %q, want %q", b.Filename, "/bin/true")
	}
	if len(b.BuildID) != 20 {
		t.Fatalf("len(BuildID) = %d, want 20", len(b.BuildID))
	}
	for i := 0; i < 20; i++ {
		if b.BuildID[i] != byte(i+1) {
			t.Fatalf("BuildID[%d] = %#x, want %#x", i, b.BuildID[i], i+1)
		}
	}
}

func TestFileFeatureSections(t *testing.T) {
	attr := EventAttr{Type: EventTypeSoftware, Config: uint64(EventSoftwareCPUClock), SamplePeriod: 1}

	hostnameBuf := func(s string) []byte {
		var b bytes.Buffer
		binary.Write(&b, binary.LittleEndian, uint32(len(s)+1))
		b.WriteString(s)
		b.WriteByte(0)
		return b.Bytes()
	}

	tf := testFile{
		attr: testAttrV4(attr),
		features: map[feature][]byte{
			featureHostname: hostnameBuf("testhost"),
			featureArch:     hostnameBuf("x86_64"),
		},
	}
	f, err := New(bytes.NewReader(tf.build()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Meta.Hostname != "testhost" {
		t.Errorf("Hostname = %q, want %q", f.Meta.Hostname, "testhost")
	}
	if f.Meta.Arch != "x86_64" {
		t.Errorf("Arch = %q, want %q", f.Meta.Arch, "x86_64")
	}
}

func TestFileSampleRecord(t *testing.T) {
	attr := EventAttr{
		Type:       EventTypeHardware,
		Config:     uint64(EventHardwareCPUCycles),
		SampleType: SampleFormatIP | SampleFormatTID,
	}

	var body bytes.Buffer
	w := func(v interface{}) { binary.Write(&body, binary.LittleEndian, v) }
	w(uint64(0x1000))
	w(uint32(5))
	w(uint32(5))
	rec := recordBytes(RecordTypeSample, 0, body.Bytes())

	tf := testFile{attr: testAttrV4(attr), records: [][]byte{rec}}
	f, err := New(bytes.NewReader(tf.build()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rs := f.Records(RecordsFileOrder)
	if !rs.Next() {
		t.Fatalf("Next() = false, err = %v", rs.Err())
	}
	s, ok := rs.Record.(*RecordSample)
	if !ok {
		t.Fatalf("Record type = %T, want *RecordSample", rs.Record)
	}
	if s.IP != 0x1000 || s.PID != 5 || s.TID != 5 {
		t.Errorf("got %+v", s)
	}
}
