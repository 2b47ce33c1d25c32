// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

//go:generate go run ../cmd/bitstringer/main.go -type=SampleFormat -strip=SampleFormat
//go:generate go run ../cmd/bitstringer/main.go -type=ReadFormat -strip=ReadFormat
//go:generate go run ../cmd/bitstringer/main.go -type=EventFlags -strip=EventFlag
//go:generate go run ../cmd/bitstringer/main.go -type=BranchSampleType -strip=BranchSampleType

// SampleFormat is a bitmask of perf_event_attr.sample_type,
// specifying which optional fields are present in Sample records
// produced by an event.
//
// This corresponds to the perf_event_sample_format enum from
// include/uapi/linux/perf_event.h
type SampleFormat uint64

const (
	SampleFormatIP SampleFormat = 1 << iota
	SampleFormatTID
	SampleFormatTime
	SampleFormatAddr
	SampleFormatRead
	SampleFormatCallchain
	SampleFormatID
	SampleFormatCPU
	SampleFormatPeriod
	SampleFormatStreamID
	SampleFormatRaw
	SampleFormatBranchStack
	SampleFormatRegsUser
	SampleFormatStackUser
	SampleFormatWeight
	SampleFormatDataSrc
	SampleFormatIdentifier
	SampleFormatTransaction
	SampleFormatRegsIntr
	SampleFormatPhysAddr
	SampleFormatAux
	SampleFormatCGroup
	SampleFormatDataPageSize
	SampleFormatCodePageSize
	SampleFormatWeightStruct
)

func (f SampleFormat) hasIP() bool          { return f&SampleFormatIP != 0 }
func (f SampleFormat) hasTID() bool         { return f&SampleFormatTID != 0 }
func (f SampleFormat) hasTime() bool        { return f&SampleFormatTime != 0 }
func (f SampleFormat) hasAddr() bool        { return f&SampleFormatAddr != 0 }
func (f SampleFormat) hasRead() bool        { return f&SampleFormatRead != 0 }
func (f SampleFormat) hasCallchain() bool   { return f&SampleFormatCallchain != 0 }
func (f SampleFormat) hasID() bool          { return f&SampleFormatID != 0 }
func (f SampleFormat) hasCPU() bool         { return f&SampleFormatCPU != 0 }
func (f SampleFormat) hasPeriod() bool      { return f&SampleFormatPeriod != 0 }
func (f SampleFormat) hasStreamID() bool    { return f&SampleFormatStreamID != 0 }
func (f SampleFormat) hasRaw() bool         { return f&SampleFormatRaw != 0 }
func (f SampleFormat) hasBranchStack() bool { return f&SampleFormatBranchStack != 0 }
func (f SampleFormat) hasRegsUser() bool    { return f&SampleFormatRegsUser != 0 }
func (f SampleFormat) hasStackUser() bool   { return f&SampleFormatStackUser != 0 }
func (f SampleFormat) hasWeight() bool      { return f&SampleFormatWeight != 0 }
func (f SampleFormat) hasDataSrc() bool     { return f&SampleFormatDataSrc != 0 }
func (f SampleFormat) hasIdentifier() bool  { return f&SampleFormatIdentifier != 0 }
func (f SampleFormat) hasTransaction() bool { return f&SampleFormatTransaction != 0 }
func (f SampleFormat) hasRegsIntr() bool    { return f&SampleFormatRegsIntr != 0 }

// ReadFormat is a bitmask of perf_event_attr.read_format, specifying
// the shape of the read-format sub-record attached to Sample records
// whose SampleFormat includes SampleFormatRead.
//
// This corresponds to the perf_event_read_format enum from
// include/uapi/linux/perf_event.h
type ReadFormat uint64

const (
	ReadFormatTotalTimeEnabled ReadFormat = 1 << iota
	ReadFormatTotalTimeRunning
	ReadFormatID
	ReadFormatGroup
)

// EventFlags is a bitmask of the single-bit settings in
// perf_event_attr (called "flags" here; the kernel leaves this field
// anonymous).
type EventFlags uint64

const (
	EventFlagDisabled EventFlags = 1 << iota
	EventFlagInherit
	EventFlagPinned
	EventFlagExclusive
	EventFlagExcludeUser
	EventFlagExcludeKernel
	EventFlagExcludeHv
	EventFlagExcludeIdle
	EventFlagMmap
	EventFlagComm
	EventFlagFreq
	EventFlagInheritStat
	EventFlagEnableOnExec
	EventFlagTask
	EventFlagWakeupWatermark
	// EventFlagPreciseIPMask isolates the 2-bit precise_ip
	// subfield at bits 15-16; use EventPrecision(flags) to
	// extract it rather than testing this mask directly.
	EventFlagPreciseIPMask EventFlags = 0x3 << 15

	EventFlagMmapData EventFlags = 1 << (iota + 1) // bit 17
	EventFlagSampleIDAll
	EventFlagExcludeHost
	EventFlagExcludeGuest
	EventFlagExcludeCallchainKernel
	EventFlagExcludeCallchainUser
	EventFlagMmap2
	EventFlagCommExec
	EventFlagUseClockID
	EventFlagContextSwitch
	EventFlagWriteBackward
	EventFlagNamespaces
)

// EventPrecision extracts the precise_ip subfield from flags.
func EventPrecision(flags EventFlags) EventPrecisionLevel {
	return EventPrecisionLevel((flags & EventFlagPreciseIPMask) >> 15)
}

// EventPrecisionLevel describes how accurately the instruction
// pointer in a sample reflects the instruction that triggered it.
//
// This corresponds to the precise_ip field of perf_event_attr.
type EventPrecisionLevel uint8

const (
	// EventPrecisionArbitrary means there is skid; the IP may
	// not be the triggering instruction.
	EventPrecisionArbitrary EventPrecisionLevel = iota
	// EventPrecisionUnbiasedConstant means there is constant skid.
	EventPrecisionUnbiasedConstant
	// EventPrecisionUnbiasedRequest requests no skid.
	EventPrecisionUnbiasedRequest
	// EventPrecisionUnbiasedRequireZero requires no skid; the
	// kernel will reject the event if it can't provide this.
	EventPrecisionUnbiasedRequireZero
)

// BranchSampleType is a bitmask of perf_event_attr.branch_sample_type,
// specifying which branches should be captured in a BranchStack
// sample sub-record and which of their attributes to record.
//
// This corresponds to the perf_branch_sample_type enum from
// include/uapi/linux/perf_event.h
type BranchSampleType uint64

const (
	BranchSampleTypeUser BranchSampleType = 1 << iota
	BranchSampleTypeKernel
	BranchSampleTypeHV
	BranchSampleTypeAny
	BranchSampleTypeAnyCall
	BranchSampleTypeAnyReturn
	BranchSampleTypeIndCall
	BranchSampleTypeAbortTx
	BranchSampleTypeInTx
	BranchSampleTypeNoTx
	BranchSampleTypeCond
	BranchSampleTypeCallStack
	BranchSampleTypeIndJump
	BranchSampleTypeCall
	BranchSampleTypeNoFlags
	BranchSampleTypeNoCycles
	BranchSampleTypeSave
	BranchSampleTypeHwIndex
	BranchSampleTypePrivSave
)

// CPUMode identifies the privilege level the CPU was executing at
// when an event was recorded. It is extracted from the low 3 bits of
// a record's Misc field.
type CPUMode uint8

const (
	CPUModeUnknown CPUMode = iota
	CPUModeKernel
	CPUModeUser
	CPUModeHypervisor
	CPUModeGuestKernel
	CPUModeGuestUser
)

//go:generate stringer -type=CPUMode

const recordMiscCPUModeMask = 0x7
