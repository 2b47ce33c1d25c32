// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// fixedHeaderSize is the on-disk size of fileHeader: 104 bytes through
// Features, plus the 32-byte (29 reserved + 3 alignment) padded tail.
const fixedHeaderSize = 136

func minimalHeaderBytes(dataSize uint64) []byte {
	var buf bytes.Buffer
	w := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	buf.WriteString(perfMagic)
	w(uint64(fixedHeaderSize)) // size
	w(uint64(fixedHeaderSize)) // attr_size
	w(uint64(fixedHeaderSize)) // attrs.offset
	w(uint64(0))               // attrs.size
	w(uint64(200))             // data.offset
	w(dataSize)                // data.size
	w(uint64(0))               // event_types.offset
	w(uint64(0))               // event_types.size
	for i := 0; i < 4; i++ {
		w(uint64(0)) // features
	}
	buf.Write(make([]byte, 32)) // reserved
	return buf.Bytes()
}

func TestReadHeaderMinimal(t *testing.T) {
	buf := minimalHeaderBytes(16)
	r := bytes.NewReader(buf)
	hdr, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if string(hdr.Magic[:]) != perfMagic {
		t.Errorf("Magic = %q, want %q", hdr.Magic, perfMagic)
	}
	if hdr.Data.Offset != 200 || hdr.Data.Size != 16 {
		t.Errorf("Data = %+v, want {200 16}", hdr.Data)
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := minimalHeaderBytes(16)
	copy(buf[:8], "NOTPERF!")
	_, err := readHeader(bytes.NewReader(buf))
	if err != errBadMagic {
		t.Fatalf("readHeader error = %v, want errBadMagic", err)
	}
}

func TestReadHeaderBigEndianRejected(t *testing.T) {
	buf := minimalHeaderBytes(16)
	copy(buf[:8], "2ELIFREP")
	if _, err := readHeader(bytes.NewReader(buf)); err == nil {
		t.Fatal("expected an error for a big-endian file")
	}
}

func TestReadHeaderEmptyDataSection(t *testing.T) {
	buf := minimalHeaderBytes(0)
	_, err := readHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("readHeader error = %v (%T), want nil for an empty data section", err, err)
	}
}

func TestReadHeaderShortFile(t *testing.T) {
	buf := minimalHeaderBytes(16)
	_, err := readHeader(bytes.NewReader(buf[:50]))
	if err == nil {
		t.Fatal("expected an error reading a truncated header")
	}
}

func TestFeatureOrder(t *testing.T) {
	// The canonical feature bit order must match the kernel's
	// HEADER_* enum exactly: tracing_data is the first feature
	// bit (1), group_desc the last (17).
	want := []feature{
		featureTracingData, featureBuildID, featureHostname, featureOSRelease,
		featureVersion, featureArch, featureNrCPUs, featureCPUDesc, featureCPUID,
		featureTotalMem, featureCmdline, featureEventDesc, featureCPUTopology,
		featureNUMATopology, featureBranchStack, featurePMUMappings, featureGroupDesc,
	}
	for i, f := range want {
		if int(f) != i+1 {
			t.Errorf("feature %d (index %d) has bit position %d, want %d", f, i, f, i+1)
		}
	}
	if numFeatureBits != 18 {
		t.Errorf("numFeatureBits = %d, want 18", numFeatureBits)
	}
}
