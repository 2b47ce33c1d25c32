// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perffile

import "testing"

func TestCPUSetContains(t *testing.T) {
	set, err := parseCPUSet("0-3,8,10-11")
	if err != nil {
		t.Fatalf("parseCPUSet: %v", err)
	}
	for _, cpu := range []int{0, 1, 2, 3, 8, 10, 11} {
		if !set.Contains(cpu) {
			t.Errorf("Contains(%d) = false, want true", cpu)
		}
	}
	for _, cpu := range []int{4, 7, 9, 12} {
		if set.Contains(cpu) {
			t.Errorf("Contains(%d) = true, want false", cpu)
		}
	}
}

func TestNUMANodeForCPU(t *testing.T) {
	m := &FileMeta{
		NUMANodes: []NUMANode{
			{Node: 0, CPUs: CPUSet{0, 1, 2, 3}},
			{Node: 1, CPUs: CPUSet{4, 5, 6, 7}},
		},
	}
	node, ok := m.NUMANodeForCPU(5)
	if !ok || node.Node != 1 {
		t.Fatalf("NUMANodeForCPU(5) = %+v, %v, want node 1", node, ok)
	}
	if _, ok := m.NUMANodeForCPU(99); ok {
		t.Fatalf("NUMANodeForCPU(99) = ok, want not found")
	}
}
