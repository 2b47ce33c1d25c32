// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfcounter

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/go-perfdata/perfdata/perffile"
)

// Builder accumulates options for a performance counter, then opens
// it with Open.
//
// A Builder from NewBuilder counts the given event for the calling thread on
// whatever CPU it happens to run on, excluding neither kernel nor
// hypervisor time.
type Builder struct {
	event perffile.Event

	pid, cpu int

	excludeKernel bool
	excludeHv     bool
	excludeIdle   bool
	excludeUser   bool
	inherit       bool
	pinned        bool

	samplePeriod uint64
	sampleFreq   uint64
	useFreq      bool

	wakeupEvents    uint32
	wakeupWatermark uint32
	useWatermark    bool

	enableMmap bool
	enableComm bool
}

// NewBuilder returns a Builder that will count or sample the given
// event.
func NewBuilder(event perffile.Event) *Builder {
	return &Builder{event: event, pid: 0, cpu: -1}
}

// ForPID restricts counting to the given process or thread ID. The
// default, set by NewBuilder, is the calling thread (pid 0).
func (b *Builder) ForPID(pid int) *Builder {
	b.pid = pid
	return b
}

// ForAllPIDs counts across every process on the target CPU. OnCPU
// must be used to pick a specific CPU when this is set.
func (b *Builder) ForAllPIDs() *Builder {
	b.pid = -1
	return b
}

// OnCPU restricts counting to the given CPU. The default, set by
// NewBuilder, is whatever CPU the target thread runs on (-1).
func (b *Builder) OnCPU(cpu int) *Builder {
	b.cpu = cpu
	return b
}

// ExcludeKernel excludes time spent in the kernel from the count.
func (b *Builder) ExcludeKernel() *Builder {
	b.excludeKernel = true
	return b
}

// ExcludeHv excludes time spent in the hypervisor from the count.
func (b *Builder) ExcludeHv() *Builder {
	b.excludeHv = true
	return b
}

// ExcludeIdle excludes time spent in the idle task from the count.
func (b *Builder) ExcludeIdle() *Builder {
	b.excludeIdle = true
	return b
}

// ExcludeUser excludes time spent in user space from the count.
func (b *Builder) ExcludeUser() *Builder {
	b.excludeUser = true
	return b
}

// Inherit extends counting to child tasks created after the counter
// is opened.
func (b *Builder) Inherit() *Builder {
	b.inherit = true
	return b
}

// Pinned requests the counter never be multiplexed off the PMU; if
// the kernel cannot guarantee this, opening the counter fails.
func (b *Builder) Pinned() *Builder {
	b.pinned = true
	return b
}

// SamplePeriod requests a sampling interrupt every n occurrences of
// the event. It is mutually exclusive with SampleFreq.
func (b *Builder) SamplePeriod(n uint64) *Builder {
	b.samplePeriod = n
	b.useFreq = false
	return b
}

// SampleFreq requests the kernel adjust the sampling period
// dynamically to sample at approximately hz samples per second. It is
// mutually exclusive with SamplePeriod.
func (b *Builder) SampleFreq(hz uint64) *Builder {
	b.sampleFreq = hz
	b.useFreq = true
	return b
}

// WakeupEvents requests a wakeup (e.g. for a signal or poll) every n
// samples.
func (b *Builder) WakeupEvents(n uint32) *Builder {
	b.wakeupEvents = n
	b.useWatermark = false
	return b
}

// WakeupWatermark requests a wakeup once n bytes accumulate in the
// counter's mmap'd ring buffer.
func (b *Builder) WakeupWatermark(n uint32) *Builder {
	b.wakeupWatermark = n
	b.useWatermark = true
	return b
}

// EnableMmap additionally records mmap/munmap events alongside the
// counted event.
func (b *Builder) EnableMmap() *Builder {
	b.enableMmap = true
	return b
}

// EnableComm additionally records exec/comm-change events alongside
// the counted event.
func (b *Builder) EnableComm() *Builder {
	b.enableComm = true
	return b
}

// Open opens the counter described by b.
func (b *Builder) Open() (*Counter, error) {
	var attr unix.PerfEventAttr
	attr.Size = uint32(unsafe.Sizeof(attr))

	g := b.event.Generic()
	attr.Type = uint32(g.Type)
	attr.Config = g.ID
	if g.Type == perffile.EventTypeBreakpoint {
		attr.Bp_type = uint32(g.ID)
	}
	if len(g.Config) > 0 {
		attr.Ext1 = g.Config[0]
	}
	if len(g.Config) > 1 {
		attr.Ext2 = g.Config[1]
	}

	if b.useFreq {
		attr.Sample = b.sampleFreq
		attr.Bits |= unix.PerfBitFreq
	} else {
		attr.Sample = b.samplePeriod
	}

	attr.Read_format = unix.PERF_FORMAT_TOTAL_TIME_ENABLED | unix.PERF_FORMAT_TOTAL_TIME_RUNNING
	attr.Bits |= unix.PerfBitDisabled
	if b.excludeKernel {
		attr.Bits |= unix.PerfBitExcludeKernel
	}
	if b.excludeHv {
		attr.Bits |= unix.PerfBitExcludeHv
	}
	if b.excludeIdle {
		attr.Bits |= unix.PerfBitExcludeIdle
	}
	if b.excludeUser {
		attr.Bits |= unix.PerfBitExcludeUser
	}
	if b.inherit {
		attr.Bits |= unix.PerfBitInherit
	}
	if b.pinned {
		attr.Bits |= unix.PerfBitPinned
	}
	if b.enableMmap {
		attr.Bits |= unix.PerfBitMmap
	}
	if b.enableComm {
		attr.Bits |= unix.PerfBitComm
	}

	if b.useWatermark {
		attr.Wakeup = b.wakeupWatermark
		attr.Bits |= unix.PerfBitWatermark
	} else {
		attr.Wakeup = b.wakeupEvents
	}

	fd, err := unix.PerfEventOpen(&attr, b.pid, b.cpu, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		return nil, errors.Wrapf(err, "perf_event_open(type=%d, config=%#x)", attr.Type, attr.Config)
	}
	return newCounter(fd), nil
}
