// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perffile decodes Linux perf.data profiles.
//
// Decoding a perf.data file starts with a call to New or Open. A
// perf.data file consists of a sequence of event records, retrieved
// with File.Records, plus a set of optional metadata sections that New
// decodes into the File.Meta field (BuildIDs, Hostname, CPUsOnline,
// and so on). A FileMeta field whose section the file does not carry
// holds its zero value; there are no per-section (value, ok)
// accessors, and a section that fails to decode makes New return an
// error.
package perffile // import "github.com/go-perfdata/perfdata/perffile"
