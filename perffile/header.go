// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const perfMagic = "PERFILE2"

// fileSection describes a range of bytes in the perf.data file.
type fileSection struct {
	Offset uint64
	Size   uint64
}

func (s fileSection) data(r io.ReaderAt) ([]byte, error) {
	buf := make([]byte, s.Size)
	if _, err := r.ReadAt(buf, int64(s.Offset)); err != nil {
		return nil, errors.Wrap(err, "reading section")
	}
	return buf, nil
}

// feature identifies an optional metadata section. The numeric value
// is the section's bit position in fileHeader.Features, which is also
// the order sections appear in the feature section table when
// present.
type feature int

const (
	featureReserved feature = iota // bit 0, unused
	featureTracingData
	featureBuildID
	featureHostname
	featureOSRelease
	featureVersion
	featureArch
	featureNrCPUs
	featureCPUDesc
	featureCPUID
	featureTotalMem
	featureCmdline
	featureEventDesc
	featureCPUTopology
	featureNUMATopology
	featureBranchStack
	featurePMUMappings
	featureGroupDesc
	numFeatureBits
)

// fileHeader is the fixed-size prefix of a perf.data file. The header
// proper is 104 bytes (through Features); 29 reserved bytes follow,
// padded out to a 32-byte, 8-byte-aligned block, for a 136-byte fixed
// prefix overall.
type fileHeader struct {
	Magic      [8]byte
	Size       uint64
	AttrSize   uint64
	Attrs      fileSection
	Data       fileSection
	EventTypes fileSection // deprecated, unused since perf ABI v1
	Features   [4]uint64
	Reserved   [32]byte
}

func (h *fileHeader) hasFeature(f feature) bool {
	return h.Features[f/64]&(1<<(uint(f)%64)) != 0
}

// readHeader reads and validates the fixed portion of a perf.data
// file header from the start of r.
func readHeader(r io.ReaderAt) (fileHeader, error) {
	var hdr fileHeader
	buf := make([]byte, binary.Size(&hdr))
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, int64(len(buf))), buf); err != nil {
		return hdr, &TruncatedError{Op: "file header"}
	}
	c := newCursor(buf, binary.LittleEndian)
	c.Bytes(hdr.Magic[:])
	hdr.Size = c.U64()
	hdr.AttrSize = c.U64()
	hdr.Attrs.Offset, hdr.Attrs.Size = c.U64(), c.U64()
	hdr.Data.Offset, hdr.Data.Size = c.U64(), c.U64()
	hdr.EventTypes.Offset, hdr.EventTypes.Size = c.U64(), c.U64()
	for i := range hdr.Features {
		hdr.Features[i] = c.U64()
	}
	c.Bytes(hdr.Reserved[:])
	if c.Err() != nil {
		return hdr, c.Err()
	}

	switch string(hdr.Magic[:]) {
	case perfMagic:
		// Little-endian, the only byte order this package supports.
	case "2ELIFREP":
		return hdr, errors.New("big-endian perf.data files are not supported")
	case "PERFFILE":
		return hdr, errors.New("perf.data format version 1 is not supported")
	default:
		return hdr, errBadMagic
	}
	// hdr.Size is the header's own declared length; it only needs to
	// cover the fixed prefix we just read; a file's size/offset
	// fields don't depend on it, and some writers pad the header
	// beyond 136 bytes for alignment.
	if int(hdr.Size) < len(buf) {
		return hdr, errors.Wrap(errInconsistentSizes, "header size")
	}
	return hdr, nil
}

var errBadMagic = errors.New("not a perf.data file (bad magic)")
var errInconsistentSizes = errors.New("inconsistent size fields")
