// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

// RecordSample is a performance sample: a snapshot taken either
// periodically (time- or period-based sampling) or on every
// occurrence of a counted event. Which fields are populated is
// entirely driven by the originating event's SampleType. Fields the
// SampleType does not select hold their zero value; the record itself
// does not mark which fields were present, so a caller that needs to
// know checks the SampleType of Common().Attr.
type RecordSample struct {
	common RecordCommon

	IP           uint64
	PID, TID     uint32
	Time         uint64
	Addr         uint64
	ID           uint64
	StreamID     uint64
	CPU, CPURes  uint32
	Period       uint64

	// Read is the read-format sub-record, present when SampleType
	// has SampleFormatRead set.
	Read ReadValue

	// Callchain is the sequence of instruction pointers captured
	// for this sample (innermost frame first), interspersed with
	// the kernel's PERF_CONTEXT_* marker values where the
	// execution context changes.
	Callchain []uint64

	// Raw is event-specific binary data (for tracepoints, this is
	// the trace event's serialized fields).
	Raw []byte

	// Branches is the captured branch stack, most recent first.
	Branches []BranchRecord

	// RegsUserABI and RegsUser describe the user-space register
	// snapshot, if any; RegsUser is indexed by the position of
	// each set bit in the attribute's SampleRegsUser mask, low to
	// high.
	RegsUserABI SampleRegsABI
	RegsUser    []uint64

	// StackUser is a copy of (up to) SampleStackUser bytes of the
	// user stack, and StackUserDynSize is the portion of it that
	// was actually in use, in bytes. StackUserDynSize is only
	// meaningful (and only decoded) when len(StackUser) > 0: an
	// attribute that requests user stack capture but samples a
	// thread with an empty user stack emits no dyn_size field at
	// all.
	StackUser        []byte
	StackUserDynSize uint64

	Weight        uint64
	WeightVar     uint32
	WeightIns     uint32
	DataSrc       DataSrc
	Transaction   Transaction
	AbortCode     uint32

	RegsIntrABI SampleRegsABI
	RegsIntr    []uint64

	PhysAddr     uint64
	CGroup       uint64
	DataPageSize uint64
	CodePageSize uint64
}

func (r *RecordSample) Type() RecordType      { return RecordTypeSample }
func (r *RecordSample) Common() *RecordCommon { return &r.common }

// SampleRegsABI identifies the width of the registers captured in a
// RegsUser or RegsIntr register list.
type SampleRegsABI uint64

const (
	SampleRegsABINone SampleRegsABI = iota
	SampleRegsABI32
	SampleRegsABI64
)

// ReadValue is the decoded read-format sub-record attached to a
// Sample record whose SampleType includes SampleFormatRead. Exactly
// one of Single or Group is meaningful, selected by
// EventAttr.ReadFormat&ReadFormatGroup.
type ReadValue struct {
	Single Count
	Group  []Count
}

// Count is one counter value from a read-format sub-record.
type Count struct {
	Value       uint64
	TimeEnabled uint64 // present iff ReadFormatTotalTimeEnabled
	TimeRunning uint64 // present iff ReadFormatTotalTimeRunning
	ID          uint64 // present iff ReadFormatID
}

// BranchRecord is one entry of a captured branch stack.
type BranchRecord struct {
	From, To uint64
	Flags    BranchFlags
}

// BranchFlags decodes the packed flags word of a BranchRecord.
type BranchFlags struct {
	Mispredicted bool
	Predicted    bool
	InTx         bool
	Abort        bool
	Cycles       uint16
	Type         BranchType
}

// BranchType classifies the kind of branch a BranchRecord describes,
// when the originating attr requested BranchSampleTypeSave.
type BranchType uint8

const (
	BranchTypeUnknown BranchType = iota
	BranchTypeCond
	BranchTypeUncond
	BranchTypeIndirect
	BranchTypeCall
	BranchTypeIndirectCall
	BranchTypeReturn
	BranchTypeSyscall
	BranchTypeSysret
	BranchTypeCondCall
	BranchTypeCondReturn
)

func decodeBranchFlags(x uint64) BranchFlags {
	return BranchFlags{
		Mispredicted: x&0x1 != 0,
		Predicted:    x&0x2 != 0,
		InTx:         x&0x4 != 0,
		Abort:        x&0x8 != 0,
		Cycles:       uint16((x >> 4) & 0xffff),
		Type:         BranchType((x >> 20) & 0xf),
	}
}

// Transaction decodes the transactional-memory state a sample was
// taken in.
//
// This corresponds to the PERF_TXN_* bits from
// include/uapi/linux/perf_event.h
type Transaction uint32

const (
	TransactionElision Transaction = 1 << iota
	TransactionTransaction
	TransactionSync
	TransactionAsync
	TransactionRetry
	TransactionConflict
	TransactionCapacityWrite
	TransactionCapacityRead
)

// parseSample decodes a Sample record body. attr carries the gating
// bits (the event's SampleType) plus the bit-derived lengths
// (popcount of SampleRegsUser/SampleRegsIntr) needed to know how many
// register values to read.
func parseSample(c *cursor, attr *EventAttr) *RecordSample {
	r := &RecordSample{}
	st := attr.SampleType

	if st.hasIdentifier() {
		c.U64() // Identifier duplicates ID below; perf puts it first so
		// consumers that don't know the record's attr can still
		// find the attr ID without decoding the rest of the record.
	}
	if st.hasIP() {
		r.IP = c.U64()
	}
	if st.hasTID() {
		r.PID = c.U32()
		r.TID = c.U32()
	}
	if st.hasTime() {
		r.Time = c.U64()
	}
	if st.hasAddr() {
		r.Addr = c.U64()
	}
	if st.hasID() {
		r.ID = c.U64()
	}
	if st.hasStreamID() {
		r.StreamID = c.U64()
	}
	if st.hasCPU() {
		r.CPU = c.U32()
		r.CPURes = c.U32()
	}
	if st.hasPeriod() {
		r.Period = c.U64()
	}
	if st.hasRead() {
		r.Read = parseReadFormat(c, attr.ReadFormat)
	}
	if st.hasCallchain() {
		nr := c.U64()
		r.Callchain = c.U64s(int(nr))
	}
	if st.hasRaw() {
		size := c.U32()
		r.Raw = c.Raw(int(size))
	}
	if st.hasBranchStack() {
		nr := c.U64()
		r.Branches = make([]BranchRecord, 0, nr)
		for i := uint64(0); i < nr; i++ {
			from, to, flags := c.U64(), c.U64(), c.U64()
			r.Branches = append(r.Branches, BranchRecord{From: from, To: to, Flags: decodeBranchFlags(flags)})
		}
	}
	if st.hasRegsUser() {
		r.RegsUserABI = SampleRegsABI(c.U64())
		if r.RegsUserABI != SampleRegsABINone {
			r.RegsUser = c.U64s(popcount64(attr.SampleRegsUser))
		}
	}
	if st.hasStackUser() {
		size := c.U32()
		r.StackUser = c.Raw(int(size))
		if size > 0 {
			r.StackUserDynSize = c.U64()
		}
	}
	if st.hasWeight() {
		if st&SampleFormatWeightStruct != 0 {
			r.Weight = uint64(c.U32())
			r.WeightVar = c.U32()
			r.WeightIns = 0
		} else {
			r.Weight = c.U64()
		}
	}
	if st.hasDataSrc() {
		r.DataSrc = decodeDataSrc(c.U64())
	}
	if st.hasTransaction() {
		x := c.U64()
		r.Transaction = Transaction(x & 0xffffffff)
		r.AbortCode = uint32(x >> 32)
	}
	if st.hasRegsIntr() {
		r.RegsIntrABI = SampleRegsABI(c.U64())
		if r.RegsIntrABI != SampleRegsABINone {
			r.RegsIntr = c.U64s(popcount64(attr.SampleRegsIntr))
		}
	}
	if st&SampleFormatPhysAddr != 0 {
		r.PhysAddr = c.U64()
	}
	if st&SampleFormatCGroup != 0 {
		r.CGroup = c.U64()
	}
	if st&SampleFormatDataPageSize != 0 {
		r.DataPageSize = c.U64()
	}
	if st&SampleFormatCodePageSize != 0 {
		r.CodePageSize = c.U64()
	}

	return r
}

// parseReadFormat decodes the read-format sub-record. Its shape
// depends on ReadFormatGroup: ungrouped is a single counter's value
// (with optional enabled/running times and ID); grouped is a count of
// member counters, shared enabled/running times, then one
// (value, optional ID) pair per member.
func parseReadFormat(c *cursor, rf ReadFormat) ReadValue {
	var rv ReadValue
	if rf&ReadFormatGroup == 0 {
		rv.Single.Value = c.U64()
		rv.Single.TimeEnabled = c.U64If(rf&ReadFormatTotalTimeEnabled != 0)
		rv.Single.TimeRunning = c.U64If(rf&ReadFormatTotalTimeRunning != 0)
		rv.Single.ID = c.U64If(rf&ReadFormatID != 0)
		return rv
	}

	nr := c.U64()
	timeEnabled := c.U64If(rf&ReadFormatTotalTimeEnabled != 0)
	timeRunning := c.U64If(rf&ReadFormatTotalTimeRunning != 0)
	rv.Group = make([]Count, 0, nr)
	for i := uint64(0); i < nr; i++ {
		cnt := Count{TimeEnabled: timeEnabled, TimeRunning: timeRunning}
		cnt.Value = c.U64()
		cnt.ID = c.U64If(rf&ReadFormatID != 0)
		rv.Group = append(rv.Group, cnt)
	}
	return rv
}
