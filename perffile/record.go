// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

//go:generate stringer -type=RecordType

// RecordType identifies the kind of an event record.
//
// This corresponds to the perf_event_type enum from
// include/uapi/linux/perf_event.h
type RecordType uint32

const (
	RecordTypeMmap RecordType = iota + 1
	RecordTypeLost
	RecordTypeComm
	RecordTypeExit
	RecordTypeThrottle
	RecordTypeUnthrottle
	RecordTypeFork
	RecordTypeRead
	RecordTypeSample
	RecordTypeMmap2
	RecordTypeAux
	RecordTypeItraceStart
	RecordTypeLostSamples
	RecordTypeSwitch
	RecordTypeSwitchCPUWide
	RecordTypeNamespaces
	RecordTypeKsymbol
	RecordTypeBPFEvent
	RecordTypeCGroup
	RecordTypeTextPoke
	RecordTypeAuxOutputHardwareID

	// RecordTypeBuildID and RecordTypeFinishedRound are
	// synthesized metadata records perf tools emit into the
	// record stream itself, rather than kernel ABI record types.
	RecordTypeBuildID         RecordType = 67
	RecordTypeFinishedRound   RecordType = 68
	recordTypeUserStart       RecordType = 64
)

// recordMisc is the flags field of a record header. Its low 3 bits
// are the CPU mode; the remaining bits are type-specific.
type recordMisc uint16

const (
	recordMiscMmapData    recordMisc = 1 << 13
	recordMiscCommExec    recordMisc = 1 << 13
	recordMiscSwitchOut   recordMisc = 1 << 13
	recordMiscExactIP     recordMisc = 1 << 14
	recordMiscExtReserved recordMisc = 1 << 15
)

func (m recordMisc) cpuMode() CPUMode { return CPUMode(m & recordMiscCPUModeMask) }

// recordHeader is the fixed 8-byte prefix of every record.
type recordHeader struct {
	Type RecordType
	Misc recordMisc
	Size uint16
}

// Record is implemented by every concrete record type (RecordMmap,
// RecordSample, and so on).
type Record interface {
	// Type returns this record's kind.
	Type() RecordType
	// Common returns fields shared across record types, gathered
	// either from the record's own body (Sample records) or from
	// its sample_id trailer (every other record type, when the
	// originating event's attr requested one).
	Common() *RecordCommon
}

// RecordCommon holds fields that are either part of every record's
// body (for Sample records) or part of the optional sample_id
// trailer attached to every other record type. Fields the record's
// event attr didn't request are zero.
type RecordCommon struct {
	// Offset is the byte offset of this record within the
	// perf.data file's data section.
	Offset int64

	// Attr is the event attribute that produced this record, or
	// nil if it could not be determined.
	Attr *EventAttr

	PID, TID       uint32
	Time           uint64
	ID, StreamID   uint64
	CPU, CPURes    uint32
}

type recordUnknown struct {
	common RecordCommon
	typ    RecordType
	data   []byte
}

func (r *recordUnknown) Type() RecordType    { return r.typ }
func (r *recordUnknown) Common() *RecordCommon { return &r.common }

// RecordMmap reports a memory mapping made by a profiled process.
type RecordMmap struct {
	common RecordCommon
	recType RecordType

	ExecMmap bool // Misc&recordMiscMmapData == 0, i.e. this is an executable mapping

	PID, TID uint32
	Addr     uint64
	Len      uint64
	PgOff    uint64
	Filename string

	// HasFileID reports whether Major, Minor, Ino, InoGeneration,
	// Prot, and Flags below are populated; they are only present
	// on Mmap2 records.
	HasFileID bool

	Major, Minor  uint32
	Ino           uint64
	InoGeneration uint64
	Prot, Flags   uint32
}

func (r *RecordMmap) Type() RecordType      { return r.recType }
func (r *RecordMmap) Common() *RecordCommon { return &r.common }

// RecordRead reports a counter's current value, emitted when an
// event's attr has EventFlagInherit set but SampleFormatRead unset
// (read values ride along on the next sample otherwise).
type RecordRead struct {
	common RecordCommon

	PID, TID uint32
	Read     ReadValue
}

func (r *RecordRead) Type() RecordType      { return RecordTypeRead }
func (r *RecordRead) Common() *RecordCommon { return &r.common }

// RecordLost indicates the kernel dropped records because its ring
// buffer filled up.
type RecordLost struct {
	common RecordCommon

	ID   uint64
	Lost uint64
}

func (r *RecordLost) Type() RecordType      { return RecordTypeLost }
func (r *RecordLost) Common() *RecordCommon { return &r.common }

// RecordComm reports a process changing its name (via exec or
// prctl(PR_SET_NAME)).
type RecordComm struct {
	common RecordCommon

	Exec     bool
	PID, TID uint32
	Comm     string
}

func (r *RecordComm) Type() RecordType      { return RecordTypeComm }
func (r *RecordComm) Common() *RecordCommon { return &r.common }

// RecordExit reports a profiled process or thread exiting.
type RecordExit struct {
	common RecordCommon

	PID, PPID uint32
	TID, PTID uint32
	Time      uint64
}

func (r *RecordExit) Type() RecordType      { return RecordTypeExit }
func (r *RecordExit) Common() *RecordCommon { return &r.common }

// RecordFork reports a new thread or process being created.
type RecordFork struct {
	common RecordCommon

	PID, PPID uint32
	TID, PTID uint32
	Time      uint64
}

func (r *RecordFork) Type() RecordType      { return RecordTypeFork }
func (r *RecordFork) Common() *RecordCommon { return &r.common }

// RecordThrottle and RecordUnthrottle report the kernel throttling or
// unthrottling sampling because it was consuming too much CPU.
type RecordThrottle struct {
	common RecordCommon

	Unthrottle bool
	Time       uint64
	ID         uint64
	StreamID   uint64
}

func (r *RecordThrottle) Type() RecordType {
	if r.Unthrottle {
		return RecordTypeUnthrottle
	}
	return RecordTypeThrottle
}
func (r *RecordThrottle) Common() *RecordCommon { return &r.common }

// RecordBuildID maps a build ID to the binary it came from, as
// synthesized by perf tools rather than the kernel.
type RecordBuildID struct {
	common RecordCommon

	CPUMode  CPUMode
	PID      int32
	BuildID  BuildID
	Filename string
}

func (r *RecordBuildID) Type() RecordType      { return RecordTypeBuildID }
func (r *RecordBuildID) Common() *RecordCommon { return &r.common }

// RecordFinishedRound is a synthetic marker perf record emits between
// batches of records to establish a total time ordering: every record
// before a FinishedRound is guaranteed to have an earlier timestamp
// than every record after it.
type RecordFinishedRound struct {
	common RecordCommon
}

func (r *RecordFinishedRound) Type() RecordType      { return RecordTypeFinishedRound }
func (r *RecordFinishedRound) Common() *RecordCommon { return &r.common }

// BPFEventType distinguishes the sub-kind of a RecordTypeBPFEvent
// record.
type BPFEventType uint16

const (
	BPFEventTypeProgLoad BPFEventType = 1 << iota
	BPFEventTypeProgUnload
)
