// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// FileMeta holds the optional metadata sections a perf.data file may
// carry. Every field is the zero value if the corresponding feature
// flag was not set in the file header.
type FileMeta struct {
	// BuildIDs is the list of build IDs for processes and
	// libraries in this profile, or nil if unknown. Note that in
	// "live mode" (e.g., a file written by perf inject), it's
	// possible for build IDs to be introduced in the sample
	// stream itself.
	BuildIDs []BuildIDInfo

	// Hostname is the hostname of the machine that recorded this
	// profile, or "" if unknown.
	Hostname string

	// OSRelease is the OS release of the machine that recorded
	// this profile such as "3.13.0-62", or "" if unknown.
	OSRelease string

	// Version is the perf version that recorded this profile such
	// as "3.13.11", or "" if unknown.
	Version string

	// Arch is the host architecture of the machine that recorded
	// this profile such as "x86_64", or "" if unknown.
	Arch string

	// CPUsOnline and CPUsAvail are the number of online and
	// available CPUs of the machine that recorded this profile,
	// or 0, 0 if unknown.
	CPUsOnline, CPUsAvail int

	// CPUDesc describes the CPU of the machine that recorded this
	// profile such as "Intel(R) Core(TM) i7-4600U CPU @ 2.10GHz",
	// or "" if unknown.
	CPUDesc string

	// CPUID describes the CPU type of the machine that recorded
	// this profile, or "" if unknown. The exact format of this
	// varies between architectures. On x86 architectures, it is a
	// comma-separated list of vendor, family, model, and
	// stepping, such as "GenuineIntel,6,69,1".
	CPUID string

	// TotalMem is the total memory in bytes of the machine that
	// recorded this profile, or 0 if unknown.
	TotalMem int64

	// CmdLine is the list of command line arguments perf was
	// invoked with, or nil if unknown.
	CmdLine []string

	// EventDescs names each event attribute in the file's
	// attribute table and lists the sample/record IDs that belong
	// to it, or nil if unknown.
	EventDescs []EventDesc

	// CoreGroups and ThreadGroups describe the CPU topology of
	// the machine that recorded this profile. Each CPUSet in
	// CoreGroups is a set of CPUs in the same package, and each
	// CPUSet in ThreadGroups is a set of hardware threads in the
	// same core. These will be nil if unknown.
	CoreGroups, ThreadGroups []CPUSet

	// NUMANodes is the set of NUMA nodes in the NUMA topology of
	// the machine that recorded this profile, or nil if unknown.
	NUMANodes []NUMANode

	// BranchStack reports whether branch stack sampling was
	// available when this profile was recorded.
	BranchStack bool

	// PMUMappings is a map from numerical PMUTypeID to name for
	// event classes supported by the machine that recorded this
	// profile, or nil if unknown.
	PMUMappings map[PMUTypeID]string

	// Groups is the descriptions of each perf event group in this
	// profile, or nil if unknown.
	Groups []GroupDesc
}

// PMUTypeID is the kernel's numeric identifier for a class of PMU
// events, corresponding to perf_event_attr.type for PMU-specific
// event types.
type PMUTypeID uint32

// A BuildIDInfo records the mapping between a single build ID and the
// path of an executable with that build ID.
type BuildIDInfo struct {
	CPUMode  CPUMode
	PID      int // Usually -1; for VM kernels
	BuildID  BuildID
	Filename string
}

// BuildID is a binary identifier assigned to a compiled executable or
// library, used to match up samples with the binary that produced
// them.
type BuildID []byte

func (b BuildID) String() string {
	return fmt.Sprintf("%x", []byte(b))
}

// A NUMANode represents a single hardware NUMA node.
type NUMANode struct {
	// Node is the system identifier of this NUMA node.
	Node int

	// MemTotal and MemFree are the total and free number of bytes
	// of memory in this NUMA node.
	MemTotal, MemFree int64

	// CPUs is the set of CPUs in this NUMA node.
	CPUs CPUSet
}

// NUMANodeForCPU returns the NUMA node that cpu belongs to, according
// to the file's NUMA topology feature section. It returns false if the
// file has no NUMA topology or no node claims cpu.
func (m *FileMeta) NUMANodeForCPU(cpu int) (NUMANode, bool) {
	for _, node := range m.NUMANodes {
		if node.CPUs.Contains(cpu) {
			return node, true
		}
	}
	return NUMANode{}, false
}

// A GroupDesc describes a group of PMU events that are scheduled
// together.
type GroupDesc struct {
	Name       string
	Leader     int
	NumMembers int
}

// An EventDesc names one of the file's event attributes and lists the
// sample/record IDs that identify samples belonging to it.
type EventDesc struct {
	Attr  EventAttr
	Name  string
	IDs   []uint64
}

var featureParsers = map[feature]func(*FileMeta, *cursor) error{
	featureBuildID:      (*FileMeta).parseBuildID,
	featureHostname:     stringFeature("Hostname"),
	featureOSRelease:    stringFeature("OSRelease"),
	featureVersion:      stringFeature("Version"),
	featureArch:         stringFeature("Arch"),
	featureNrCPUs:       (*FileMeta).parseNrCPUs,
	featureCPUDesc:      stringFeature("CPUDesc"),
	featureCPUID:        stringFeature("CPUID"),
	featureTotalMem:     (*FileMeta).parseTotalMem,
	featureCmdline:      (*FileMeta).parseCmdLine,
	featureEventDesc:    (*FileMeta).parseEventDesc,
	featureCPUTopology:  (*FileMeta).parseCPUTopology,
	featureNUMATopology: (*FileMeta).parseNUMATopology,
	featureBranchStack:  (*FileMeta).parseBranchStack,
	featurePMUMappings:  (*FileMeta).parsePMUMappings,
	featureGroupDesc:    (*FileMeta).parseGroupDesc,
	// featureTracingData carries an embedded ftrace metadata blob
	// with its own, much larger format (see tools/perf's
	// read_tracing_data). Its parser accepts the section without
	// decoding it, and FileMeta records nothing about it, not even
	// that it was present.
	featureTracingData: (*FileMeta).parseTracingDataPresence,
}

func (m *FileMeta) parse(f feature, sec fileSection, r io.ReaderAt) error {
	parser := featureParsers[f]
	if parser == nil {
		return nil
	}

	data, err := sec.data(r)
	if err != nil {
		return err
	}
	c := newCursor(data, binary.LittleEndian)

	if err := parser(m, c); err != nil {
		return err
	}
	return c.Err()
}

func stringFeature(name string) func(*FileMeta, *cursor) error {
	return func(m *FileMeta, c *cursor) error {
		c.U32() // length is redundant; the string is also NUL-terminated
		str := c.CString()
		reflect.ValueOf(m).Elem().FieldByName(name).SetString(str)
		return nil
	}
}

func (m *FileMeta) parseBuildID(c *cursor) error {
	m.BuildIDs = []BuildIDInfo{}
	for c.Len() > 0 && c.Err() == nil {
		start := c.Len()
		var bid BuildIDInfo
		_ = c.U32() // embedded recordHeader.Type, unused
		bid.CPUMode = CPUMode(c.U16() & uint16(recordMiscCPUModeMask))
		size := c.U16()
		bid.PID = int(c.I32())
		buildID := make([]byte, 24) // 20-byte build ID, padded to 24
		c.Bytes(buildID)
		bid.BuildID = BuildID(append([]byte(nil), buildID[:20]...))
		bid.Filename = c.CString()
		m.BuildIDs = append(m.BuildIDs, bid)
		consumed := start - c.Len()
		if skip := int(size) - consumed; skip > 0 {
			c.Skip(skip)
		}
	}
	return nil
}

func (m *FileMeta) parseNrCPUs(c *cursor) error {
	m.CPUsOnline, m.CPUsAvail = int(c.U32()), int(c.U32())
	return nil
}

func (m *FileMeta) parseTotalMem(c *cursor) error {
	m.TotalMem = int64(c.U64()) * 1024
	return nil
}

func (m *FileMeta) parseCmdLine(c *cursor) error {
	m.CmdLine = c.StringList()
	return nil
}

// parseEventDesc decodes the event_desc feature section: a count,
// the size of each embedded attribute block, then that many entries,
// each an attribute block, a uint32 ID count, the length-prefixed
// event name, and that many uint64 sample IDs.
func (m *FileMeta) parseEventDesc(c *cursor) error {
	count := c.U32()
	attrSize := c.U32()
	m.EventDescs = make([]EventDesc, 0, count)
	for i := uint32(0); i < count && c.Err() == nil; i++ {
		attrBuf := c.take(int(attrSize), "event_desc attribute")
		if attrBuf == nil {
			break
		}
		attr, err := readEventAttr(attrBuf, binary.LittleEndian)
		if err != nil {
			return err
		}
		nr := c.U32()
		name := c.LenString()
		ids := c.U64s(int(nr))
		m.EventDescs = append(m.EventDescs, EventDesc{Attr: attr, Name: name, IDs: ids})
	}
	return nil
}

func (m *FileMeta) parseCPUTopology(c *cursor) error {
	var err error
	cores, threads := c.StringList(), c.StringList()
	m.CoreGroups = make([]CPUSet, len(cores))
	for i, str := range cores {
		m.CoreGroups[i], err = parseCPUSet(str)
		if err != nil {
			return err
		}
	}
	m.ThreadGroups = make([]CPUSet, len(threads))
	for i, str := range threads {
		m.ThreadGroups[i], err = parseCPUSet(str)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *FileMeta) parseNUMATopology(c *cursor) error {
	var err error
	count := c.U32()
	m.NUMANodes = []NUMANode{}
	for i := uint32(0); i < count; i++ {
		node := NUMANode{
			Node:     int(c.U32()),
			MemTotal: int64(c.U64()) * 1024,
			MemFree:  int64(c.U64()) * 1024,
		}
		node.CPUs, err = parseCPUSet(c.LenString())
		if err != nil {
			return err
		}
		m.NUMANodes = append(m.NUMANodes, node)
	}
	return nil
}

func (m *FileMeta) parseBranchStack(c *cursor) error {
	// The branch_stack feature section carries no payload; its
	// mere presence in the file header means the kernel that
	// recorded this profile supports LBR-style branch sampling.
	m.BranchStack = true
	return nil
}

func (m *FileMeta) parseTracingDataPresence(c *cursor) error {
	return nil
}

func (m *FileMeta) parsePMUMappings(c *cursor) error {
	count := c.U32()
	m.PMUMappings = map[PMUTypeID]string{}
	for i := uint32(0); i < count; i++ {
		m.PMUMappings[PMUTypeID(c.U32())] = c.LenString()
	}
	return nil
}

func (m *FileMeta) parseGroupDesc(c *cursor) error {
	count := c.U32()
	m.Groups = []GroupDesc{}
	for i := uint32(0); i < count; i++ {
		m.Groups = append(m.Groups, GroupDesc{
			Name:       c.LenString(),
			Leader:     int(c.U32()),
			NumMembers: int(c.U32()),
		})
	}
	return nil
}
