// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfcounter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-perfdata/perfdata/perffile"
)

func TestCountScaled(t *testing.T) {
	c := Count{Value: 1000, TimeEnabled: 100, TimeRunning: 100}
	assert.Equal(t, uint64(1000), c.Scaled())

	c = Count{Value: 1000, TimeEnabled: 200, TimeRunning: 100}
	assert.Equal(t, uint64(2000), c.Scaled())

	c = Count{Value: 1000, TimeEnabled: 200, TimeRunning: 0}
	assert.Equal(t, uint64(0), c.Scaled())
}

func TestBuilderDefaults(t *testing.T) {
	b := NewBuilder(perffile.EventHardware(perffile.EventHardwareCPUCycles))
	assert.Equal(t, 0, b.pid)
	assert.Equal(t, -1, b.cpu)
	assert.False(t, b.excludeKernel)
	assert.False(t, b.inherit)
}

func TestBuilderForAllPIDsOnCPU(t *testing.T) {
	b := NewBuilder(perffile.EventSoftware(perffile.EventSoftwareTaskClock)).ForAllPIDs().OnCPU(3)
	assert.Equal(t, -1, b.pid)
	assert.Equal(t, 3, b.cpu)
}

func TestBuilderOptionChaining(t *testing.T) {
	b := NewBuilder(perffile.EventHardware(perffile.EventHardwareInstructions)).
		ForPID(1234).
		ExcludeKernel().
		ExcludeHv().
		Inherit().
		Pinned().
		SamplePeriod(1000).
		WakeupEvents(10).
		EnableMmap().
		EnableComm()

	assert.Equal(t, 1234, b.pid)
	assert.True(t, b.excludeKernel)
	assert.True(t, b.excludeHv)
	assert.True(t, b.inherit)
	assert.True(t, b.pinned)
	assert.Equal(t, uint64(1000), b.samplePeriod)
	assert.False(t, b.useFreq)
	assert.Equal(t, uint32(10), b.wakeupEvents)
	assert.False(t, b.useWatermark)
	assert.True(t, b.enableMmap)
	assert.True(t, b.enableComm)
}

func TestBuilderSampleFreqOverridesPeriod(t *testing.T) {
	b := NewBuilder(perffile.EventHardware(perffile.EventHardwareCPUCycles)).
		SamplePeriod(1000).
		SampleFreq(99)
	assert.True(t, b.useFreq)
	assert.Equal(t, uint64(99), b.sampleFreq)

	b.SamplePeriod(500)
	assert.False(t, b.useFreq)
	assert.Equal(t, uint64(500), b.samplePeriod)
}

func TestBuilderWakeupWatermarkOverridesEvents(t *testing.T) {
	b := NewBuilder(perffile.EventHardware(perffile.EventHardwareCPUCycles)).
		WakeupEvents(5).
		WakeupWatermark(4096)
	assert.True(t, b.useWatermark)
	assert.Equal(t, uint32(4096), b.wakeupWatermark)

	b.WakeupEvents(7)
	assert.False(t, b.useWatermark)
	assert.Equal(t, uint32(7), b.wakeupEvents)
}
