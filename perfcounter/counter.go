// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfcounter

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Counter is a live performance counter opened by Builder.Open.
//
// A Counter wraps a single perf_event_open file descriptor. It is not
// safe for concurrent use.
type Counter struct {
	f *os.File
}

func newCounter(fd int) *Counter {
	return &Counter{f: os.NewFile(uintptr(fd), "<perf-event>")}
}

// Reset zeros the counter's accumulated value without changing whether
// it is enabled.
func (c *Counter) Reset() error {
	if _, err := unix.IoctlGetInt(int(c.f.Fd()), unix.PERF_EVENT_IOC_RESET); err != nil {
		return errors.Wrap(err, "resetting perf counter")
	}
	return nil
}

// Enable starts the counter counting. Counters are opened disabled, so
// Enable must be called before the first Read that should observe
// nonzero time running.
func (c *Counter) Enable() error {
	if _, err := unix.IoctlGetInt(int(c.f.Fd()), unix.PERF_EVENT_IOC_ENABLE); err != nil {
		return errors.Wrap(err, "enabling perf counter")
	}
	return nil
}

// Disable stops the counter counting. The accumulated value is
// retained and Read still returns it.
func (c *Counter) Disable() error {
	if _, err := unix.IoctlGetInt(int(c.f.Fd()), unix.PERF_EVENT_IOC_DISABLE); err != nil {
		return errors.Wrap(err, "disabling perf counter")
	}
	return nil
}

// Count is a single reading from a Counter. Value is the raw event
// count; TimeEnabled and TimeRunning report how long the counter was
// enabled and actually scheduled onto the PMU, respectively — when the
// PMU is oversubscribed the kernel multiplexes counters and the two
// diverge, at which point Scaled should be used instead of Value.
type Count struct {
	Value       uint64
	TimeEnabled uint64
	TimeRunning uint64
}

// Scaled extrapolates Value to what it would have been had the
// counter run for the entirety of TimeEnabled, correcting for PMU
// multiplexing. If the counter was never scheduled, it returns 0.
func (c Count) Scaled() uint64 {
	if c.TimeRunning == 0 {
		return 0
	}
	if c.TimeEnabled == c.TimeRunning {
		return c.Value
	}
	return uint64(float64(c.Value) * (float64(c.TimeEnabled) / float64(c.TimeRunning)))
}

// Read reads the counter's current value. The Counter's read_format
// was fixed at open time to include TotalTimeEnabled and
// TotalTimeRunning, so every Read reports all three fields.
func (c *Counter) Read() (Count, error) {
	var rec [3 * 8]byte
	if _, err := c.f.Read(rec[:]); err != nil {
		return Count{}, errors.Wrap(err, "reading perf counter")
	}
	return Count{
		Value:       binary.NativeEndian.Uint64(rec[0:]),
		TimeEnabled: binary.NativeEndian.Uint64(rec[8:]),
		TimeRunning: binary.NativeEndian.Uint64(rec[16:]),
	}, nil
}

// Close releases the counter's file descriptor.
func (c *Counter) Close() error {
	return c.f.Close()
}
