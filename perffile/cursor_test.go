// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import (
	"encoding/binary"
	"testing"
)

func TestCursorBasics(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 0xaa, 0xbb}
	c := newCursor(buf, binary.LittleEndian)
	if got := c.U8(); got != 1 {
		t.Fatalf("U8() = %d, want 1", got)
	}
	if got := c.U16(); got != 0x0302 {
		t.Fatalf("U16() = %#x, want 0x0302", got)
	}
	if got := c.U32(); got != 0x07060504 {
		t.Fatalf("U32() = %#x, want 0x07060504", got)
	}
	if got := c.U16(); got != 0xaa08 {
		t.Fatalf("U16() = %#x, want 0xaa08", got)
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
}

func TestCursorSticky(t *testing.T) {
	c := newCursor([]byte{1, 2, 3}, binary.LittleEndian)
	if got := c.U64(); got != 0 {
		t.Fatalf("U64() on short buffer = %d, want 0", got)
	}
	if c.Err() == nil {
		t.Fatal("expected an error after reading past the end")
	}
	// Further reads are no-ops, not panics.
	if got := c.U32(); got != 0 {
		t.Fatalf("U32() after failure = %d, want 0", got)
	}
	if _, ok := c.Err().(*TruncatedError); !ok {
		t.Fatalf("Err() = %T, want *TruncatedError", c.Err())
	}
}

func TestCursorConditional(t *testing.T) {
	c := newCursor([]byte{1, 0, 0, 0}, binary.LittleEndian)
	if got := c.U32If(false); got != 0 {
		t.Fatalf("U32If(false) = %d, want 0 and no bytes consumed", got)
	}
	if got := c.U32If(true); got != 1 {
		t.Fatalf("U32If(true) = %d, want 1", got)
	}
}

func TestCursorCString(t *testing.T) {
	c := newCursor([]byte("hello\x00world"), binary.LittleEndian)
	if got := c.CString(); got != "hello" {
		t.Fatalf("CString() = %q, want %q", got, "hello")
	}
	if c.Len() != len("world") {
		t.Fatalf("Len() after CString() = %d, want %d", c.Len(), len("world"))
	}
}

func TestCursorLenString(t *testing.T) {
	buf := []byte{8, 0, 0, 0, 'h', 'i', 0, 0, 0, 0, 0, 0}
	c := newCursor(buf, binary.LittleEndian)
	if got := c.LenString(); got != "hi" {
		t.Fatalf("LenString() = %q, want %q", got, "hi")
	}
}
