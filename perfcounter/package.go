// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfcounter opens and controls Linux performance counters
// via perf_event_open.
//
// Build a counter with Builder, Open it to get a live Counter, then
// Enable/Disable/Read it as needed. Counters are a thin wrapper
// around the kernel's own counting and multiplexing; this package
// does no batching or software aggregation of its own.
package perfcounter // import "github.com/go-perfdata/perfdata/perfcounter"
