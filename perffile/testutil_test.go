// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"bytes"
	"encoding/binary"
)

// testAttrV4 encodes a through SampleRegsIntr (104 bytes, ABI v4) —
// the fields every test needs, without the later aux_watermark /
// sample_max_stack extension.
func testAttrV4(a EventAttr) []byte {
	var buf bytes.Buffer
	w := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }

	w(uint32(a.Type))
	w(uint32(104)) // size
	w(a.Config)
	if a.Flags&EventFlagFreq != 0 {
		w(a.SampleFreq)
	} else {
		w(a.SamplePeriod)
	}
	w(uint64(a.SampleType))
	w(uint64(a.ReadFormat))
	w(uint64(a.Flags))
	if a.Flags&EventFlagWakeupWatermark != 0 {
		w(a.WakeupWatermark)
	} else {
		w(a.WakeupEvents)
	}
	w(a.BPType)
	w(a.Config1)
	w(a.Config2)
	w(uint64(a.BranchSampleType))
	w(a.SampleRegsUser)
	w(a.SampleStackUser)
	w(a.ClockID)
	w(a.SampleRegsIntr)
	return buf.Bytes()
}

// testFile assembles a minimal but complete perf.data byte image from
// one event attribute, its sample IDs, a sequence of already-encoded
// record bodies (each including its own 8-byte record header), and an
// optional set of feature section payloads.
type testFile struct {
	attr     []byte
	ids      []uint64
	records  [][]byte
	features map[feature][]byte
}

func (tf testFile) build() []byte {
	var out bytes.Buffer
	w := func(v interface{}) { binary.Write(&out, binary.LittleEndian, v) }

	const headerSize = fixedHeaderSize
	attrSize := uint64(len(tf.attr))

	idsBytes := make([]byte, 8*len(tf.ids))
	for i, id := range tf.ids {
		binary.LittleEndian.PutUint64(idsBytes[i*8:], id)
	}

	var data bytes.Buffer
	for _, r := range tf.records {
		data.Write(r)
	}

	attrsOff := uint64(headerSize)
	attrsSize := attrSize + 16 // attr block + (ids offset, ids size)
	idsOff := attrsOff + attrSize + 16
	dataOff := idsOff + uint64(len(idsBytes))
	dataSize := uint64(data.Len())

	// Canonical feature order.
	order := []feature{
		featureTracingData, featureBuildID, featureHostname, featureOSRelease,
		featureVersion, featureArch, featureNrCPUs, featureCPUDesc, featureCPUID,
		featureTotalMem, featureCmdline, featureEventDesc, featureCPUTopology,
		featureNUMATopology, featureBranchStack, featurePMUMappings, featureGroupDesc,
	}
	var featureWords [4]uint64
	var present []feature
	for _, f := range order {
		if _, ok := tf.features[f]; ok {
			featureWords[f/64] |= 1 << (uint(f) % 64)
			present = append(present, f)
		}
	}

	sectionTableOff := dataOff + dataSize
	sectionTableSize := uint64(len(present)) * 16
	payloadOff := sectionTableOff + sectionTableSize

	// Header.
	out.WriteString(perfMagic)
	w(uint64(headerSize))
	w(attrsSize) // attr_size is the stride of one (attr + ids section) entry
	w(attrsOff)
	w(attrsSize)
	w(dataOff)
	w(dataSize)
	w(uint64(0)) // event_types offset, deprecated
	w(uint64(0)) // event_types size, deprecated
	for _, fw := range featureWords {
		w(fw)
	}
	out.Write(make([]byte, 32)) // reserved

	// Attr section: attr block, then (ids offset, ids size).
	out.Write(tf.attr)
	w(idsOff)
	w(uint64(len(idsBytes)))

	// IDs.
	out.Write(idsBytes)

	// Data section.
	out.Write(data.Bytes())

	// Feature section table.
	off := payloadOff
	for _, f := range present {
		payload := tf.features[f]
		w(off)
		w(uint64(len(payload)))
		off += uint64(len(payload))
	}

	// Feature payloads.
	for _, f := range present {
		out.Write(tf.features[f])
	}

	return out.Bytes()
}

// recordBytes encodes a full record (8-byte header + body).
func recordBytes(typ RecordType, misc recordMisc, body []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(typ))
	binary.Write(&buf, binary.LittleEndian, uint16(misc))
	binary.Write(&buf, binary.LittleEndian, uint16(8+len(body)))
	buf.Write(body)
	return buf.Bytes()
}
