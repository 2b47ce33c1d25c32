// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"testing"
)

func TestReadEventAttrV4(t *testing.T) {
	want := EventAttr{
		Type:         EventTypeHardware,
		Config:       uint64(EventHardwareCPUCycles),
		SamplePeriod: 1000,
		SampleType:   SampleFormatIP | SampleFormatTID | SampleFormatTime,
		ReadFormat:   ReadFormatID,
		Flags:        EventFlagDisabled | EventFlagExcludeKernel,
		WakeupEvents: 1,
	}
	buf := testAttrV4(want)
	if len(buf) != 104 {
		t.Fatalf("testAttrV4 produced %d bytes, want 104", len(buf))
	}

	got, err := readEventAttr(buf, binary.LittleEndian)
	if err != nil {
		t.Fatalf("readEventAttr: %v", err)
	}
	if got.Type != want.Type || got.Config != want.Config {
		t.Errorf("Type/Config = %v/%d, want %v/%d", got.Type, got.Config, want.Type, want.Config)
	}
	if got.SamplePeriod != want.SamplePeriod {
		t.Errorf("SamplePeriod = %d, want %d", got.SamplePeriod, want.SamplePeriod)
	}
	if got.SampleType != want.SampleType {
		t.Errorf("SampleType = %v, want %v", got.SampleType, want.SampleType)
	}
	if got.WakeupEvents != want.WakeupEvents {
		t.Errorf("WakeupEvents = %d, want %d", got.WakeupEvents, want.WakeupEvents)
	}
}

func TestReadEventAttrV0Short(t *testing.T) {
	// ABI v0 predates BranchSampleType and everything after it;
	// a 64-byte block should decode the fields it has and leave
	// the rest zero, not error.
	a := EventAttr{Type: EventTypeSoftware, Config: uint64(EventSoftwareCPUClock), SamplePeriod: 1}
	full := testAttrV4(a)
	v0 := full[:attrABISizeV0]

	got, err := readEventAttr(v0, binary.LittleEndian)
	if err != nil {
		t.Fatalf("readEventAttr: %v", err)
	}
	if got.Type != a.Type || got.Config != a.Config {
		t.Errorf("Type/Config = %v/%d, want %v/%d", got.Type, got.Config, a.Type, a.Config)
	}
	if got.BranchSampleType != 0 || got.SampleRegsUser != 0 {
		t.Errorf("expected zero-valued v4+ fields, got BranchSampleType=%v SampleRegsUser=%v",
			got.BranchSampleType, got.SampleRegsUser)
	}
}

func TestReadEventAttrTruncated(t *testing.T) {
	_, err := readEventAttr(make([]byte, 10), binary.LittleEndian)
	if err == nil {
		t.Fatal("expected an error for a too-short attribute block")
	}
}

func TestEventAttrEventBreakpoint(t *testing.T) {
	a := EventAttr{Type: EventTypeBreakpoint, BPType: uint32(BreakpointOpRW), Config1: 0x1000, Config2: 8}
	ev, ok := a.Event().(EventBreakpoint)
	if !ok {
		t.Fatalf("Event() = %T, want EventBreakpoint", a.Event())
	}
	if ev.Op != BreakpointOpRW || ev.Addr != 0x1000 || ev.Len != 8 {
		t.Errorf("Event() = %+v, want {RW 0x1000 8}", ev)
	}
}

func TestEventPrecision(t *testing.T) {
	flags := EventFlags(2) << 15
	if got := EventPrecision(flags); got != EventPrecisionUnbiasedRequest {
		t.Errorf("EventPrecision(%#x) = %v, want EventPrecisionUnbiasedRequest", flags, got)
	}
}
