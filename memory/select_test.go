// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"testing"

	"github.com/gogpu/vkdevice/vk"
)

// testProps models a common discrete GPU memory layout: device-local,
// host-visible+coherent, host-visible+cached, and one vendor type with
// an unknown flag.
func testProps() *vk.PhysicalDeviceMemoryProperties {
	props := &vk.PhysicalDeviceMemoryProperties{MemoryTypeCount: 4, MemoryHeapCount: 2}
	props.MemoryTypes[0] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0}
	props.MemoryTypes[1] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1}
	props.MemoryTypes[2] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit, HeapIndex: 1}
	props.MemoryTypes[3] = vk.MemoryType{PropertyFlags: 1 << 16, HeapIndex: 0} // vendor-specific
	return props
}

func TestSelectDeviceLocal(t *testing.T) {
	s := newTypeSelector(testProps())

	index, ok := s.selectType(Request{Usage: UsageFastDeviceAccess, TypeBits: 0xF})
	if !ok || index != 0 {
		t.Fatalf("selectType(fast) = (%d, %v), want (0, true)", index, ok)
	}
}

func TestSelectUploadPrefersCoherent(t *testing.T) {
	s := newTypeSelector(testProps())

	index, ok := s.selectType(Request{Usage: UsageHostAccess | UsageUpload, TypeBits: 0xF})
	if !ok || index != 1 {
		t.Fatalf("selectType(upload) = (%d, %v), want (1, true)", index, ok)
	}
}

func TestSelectDownloadPrefersCached(t *testing.T) {
	s := newTypeSelector(testProps())

	index, ok := s.selectType(Request{Usage: UsageHostAccess | UsageDownload, TypeBits: 0xF})
	if !ok || index != 2 {
		t.Fatalf("selectType(download) = (%d, %v), want (2, true)", index, ok)
	}
}

func TestSelectRespectsTypeBits(t *testing.T) {
	s := newTypeSelector(testProps())

	// Only type 2 allowed by the resource.
	index, ok := s.selectType(Request{Usage: UsageHostAccess, TypeBits: 1 << 2})
	if !ok || index != 2 {
		t.Fatalf("selectType(masked) = (%d, %v), want (2, true)", index, ok)
	}
}

func TestSelectExcludesUnknownTypes(t *testing.T) {
	s := newTypeSelector(testProps())

	// Only the vendor-specific type allowed: the selector refuses it.
	if _, ok := s.selectType(Request{Usage: UsageFastDeviceAccess, TypeBits: 1 << 3}); ok {
		t.Fatal("selector accepted a memory type with unknown flags")
	}
}

func TestHostVisibility(t *testing.T) {
	s := newTypeSelector(testProps())

	if s.isHostVisible(0) {
		t.Error("device-local type reported host visible")
	}
	if !s.isHostVisible(1) || !s.isHostCoherent(1) {
		t.Error("coherent upload type misreported")
	}
	if !s.isHostVisible(2) || s.isHostCoherent(2) {
		t.Error("cached readback type misreported")
	}
	if s.isHostVisible(99) {
		t.Error("out-of-range type reported host visible")
	}
}
