// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// EventAttr describes how one kind of event was configured when it
// was recorded: what to count, what to sample, and which optional
// record fields that sampling turns on. It is a flattened, ABI
// version-independent view of the kernel's perf_event_attr.
type EventAttr struct {
	Type EventType

	// Config, Config1, and Config2 give the type-specific
	// identity of the event. For breakpoint events, Config1 and
	// Config2 are the watched address and length instead; use
	// Event to get a typed view regardless.
	Config  uint64
	Config1 uint64
	Config2 uint64

	// SamplePeriod is the sampling period, and SampleFreq the
	// sampling frequency; exactly one of these is meaningful,
	// selected by Flags&EventFlagFreq.
	SamplePeriod uint64
	SampleFreq   uint64

	SampleType SampleFormat
	ReadFormat ReadFormat
	Flags      EventFlags

	// WakeupEvents and WakeupWatermark are alternatives selected
	// by Flags&EventFlagWakeupWatermark.
	WakeupEvents    uint32
	WakeupWatermark uint32

	BPType uint32

	BranchSampleType BranchSampleType
	SampleRegsUser   uint64
	SampleStackUser  uint32
	ClockID          int32
	SampleRegsIntr   uint64
	AuxWatermark     uint32
	SampleMaxStack   uint16
}

// Event returns a typed view of the kind of event this attribute
// configures.
func (a *EventAttr) Event() Event {
	g := EventGeneric{Type: a.Type, ID: a.Config, Config: []uint64{a.Config1, a.Config2}}
	if a.Type == EventTypeBreakpoint {
		g.ID = uint64(a.BPType)
	}
	return g.Decode()
}

func (a *EventAttr) hasIdentifier() bool { return a.SampleType&SampleFormatIdentifier != 0 }

// sampleIDFields reports which fields of the sample_id trailer of a
// non-Sample record this attr's SampleType selects.
//
// The trailer itself is a subset of the Sample record fields
// (PID/TID, Time, ID, StreamID, CPU, Identifier) gated by the same
// SampleType bits, always in this fixed order regardless of which
// bits are set.
func (a *EventAttr) sampleIDFields() (pidTid, time, id, streamID, cpu, identifier bool) {
	st := a.SampleType
	return st&SampleFormatTID != 0, st&SampleFormatTime != 0, st&SampleFormatID != 0,
		st&SampleFormatStreamID != 0, st&SampleFormatCPU != 0, st&SampleFormatIdentifier != 0
}

// attrABISizeV0 is the size of the original perf_event_attr, which
// ends with config1; every later field was added by a later ABI
// version.
const attrABISizeV0 = 64

// readEventAttr reads one event attribute block. buf holds exactly
// the bytes the file says this block occupies (attr.size in the perf
// ABI); the block is read field-by-field in on-disk order and
// truncated to whichever of EventAttr's fields fit in len(buf) bytes,
// which is how a decoder copes with both older and newer kernel ABI
// versions than it was written against.
func readEventAttr(buf []byte, order binary.ByteOrder) (EventAttr, error) {
	var a EventAttr
	if len(buf) < attrABISizeV0 {
		return a, errors.Wrap(&TruncatedError{Op: "event attribute"}, "attribute block shorter than ABI v0")
	}
	c := newCursor(buf, order)

	a.Type = EventType(c.U32())
	size := c.U32() // on-disk attr.size; informational, the caller already sliced buf to it
	_ = size
	a.Config = c.U64()

	periodOrFreq := c.U64()
	a.SampleType = SampleFormat(c.U64())
	a.ReadFormat = ReadFormat(c.U64())
	a.Flags = EventFlags(c.U64())

	if a.Flags&EventFlagFreq != 0 {
		a.SampleFreq = periodOrFreq
	} else {
		a.SamplePeriod = periodOrFreq
	}

	wakeup := c.U32()
	a.BPType = c.U32()
	if a.Flags&EventFlagWakeupWatermark != 0 {
		a.WakeupWatermark = wakeup
	} else {
		a.WakeupEvents = wakeup
	}

	a.Config1 = c.U64()
	a.Config2 = c.U64()

	// Fields below this point were added in later ABI versions;
	// stop decoding (leaving zero values) once the buffer runs
	// out, rather than erroring, since a short-but-valid older
	// attribute block is not truncated, just smaller.
	if c.Len() <= 0 {
		return a, nil
	}
	a.BranchSampleType = BranchSampleType(c.U64())
	if c.Len() <= 0 {
		return a, nil
	}
	a.SampleRegsUser = c.U64()
	if c.Len() <= 0 {
		return a, nil
	}
	a.SampleStackUser = c.U32()
	a.ClockID = c.I32()
	if c.Len() <= 0 {
		return a, nil
	}
	a.SampleRegsIntr = c.U64()
	if c.Len() <= 0 {
		return a, nil
	}
	a.AuxWatermark = c.U32()
	a.SampleMaxStack = c.U16()
	// Remaining reserved padding, if any, is ignored.

	return a, nil
}
