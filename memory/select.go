// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import "github.com/gogpu/vkdevice/vk"

// UsageFlags declares how an allocation will be accessed; they steer
// memory-type selection.
type UsageFlags uint32

const (
	// UsageFastDeviceAccess prefers DEVICE_LOCAL memory.
	UsageFastDeviceAccess UsageFlags = 1 << iota

	// UsageHostAccess requires HOST_VISIBLE memory.
	UsageHostAccess

	// UsageUpload prefers HOST_COHERENT for CPU->GPU writes.
	UsageUpload

	// UsageDownload prefers HOST_CACHED for GPU->CPU readback.
	UsageDownload

	// UsageTransient prefers LAZILY_ALLOCATED when available.
	UsageTransient
)

// Request describes one allocation.
type Request struct {
	Size      uint64
	Alignment uint64 // power of 2; 0 or 1 for none
	Usage     UsageFlags

	// TypeBits is VkMemoryRequirements.memoryTypeBits.
	TypeBits uint32
}

// knownMemoryFlags are the property flags the selector understands.
// Memory types carrying vendor-specific flags are excluded.
const knownMemoryFlags = vk.MemoryPropertyDeviceLocalBit |
	vk.MemoryPropertyHostVisibleBit |
	vk.MemoryPropertyHostCoherentBit |
	vk.MemoryPropertyHostCachedBit |
	vk.MemoryPropertyLazilyAllocatedBit

// typeSelector picks memory types from the physical device table.
type typeSelector struct {
	types      []vk.MemoryType
	validTypes uint32
}

func newTypeSelector(props *vk.PhysicalDeviceMemoryProperties) *typeSelector {
	types := make([]vk.MemoryType, props.MemoryTypeCount)
	copy(types, props.MemoryTypes[:props.MemoryTypeCount])

	var valid uint32
	for i, mt := range types {
		if mt.PropertyFlags & ^knownMemoryFlags == 0 {
			valid |= 1 << i
		}
	}
	return &typeSelector{types: types, validTypes: valid}
}

// selectType finds the best memory type: first with required+preferred
// flags, falling back to required only.
func (s *typeSelector) selectType(req Request) (uint32, bool) {
	required, preferred := usageToFlags(req.Usage)

	if idx, ok := s.find(req.TypeBits, required|preferred); ok {
		return idx, true
	}
	return s.find(req.TypeBits, required)
}

func (s *typeSelector) find(typeBits uint32, flags vk.MemoryPropertyFlags) (uint32, bool) {
	for i, mt := range s.types {
		mask := uint32(1) << i
		if typeBits&mask == 0 || s.validTypes&mask == 0 {
			continue
		}
		if mt.PropertyFlags&flags == flags {
			return uint32(i), true
		}
	}
	return 0, false
}

func (s *typeSelector) isHostVisible(typeIndex uint32) bool {
	if int(typeIndex) >= len(s.types) {
		return false
	}
	return s.types[typeIndex].PropertyFlags&vk.MemoryPropertyHostVisibleBit != 0
}

func (s *typeSelector) isHostCoherent(typeIndex uint32) bool {
	if int(typeIndex) >= len(s.types) {
		return false
	}
	return s.types[typeIndex].PropertyFlags&vk.MemoryPropertyHostCoherentBit != 0
}

func usageToFlags(usage UsageFlags) (required, preferred vk.MemoryPropertyFlags) {
	if usage&(UsageHostAccess|UsageUpload|UsageDownload) != 0 {
		required |= vk.MemoryPropertyHostVisibleBit
		if usage&UsageUpload != 0 {
			preferred |= vk.MemoryPropertyHostCoherentBit
		}
		if usage&UsageDownload != 0 {
			preferred |= vk.MemoryPropertyHostCachedBit
		}
	} else if usage&UsageFastDeviceAccess != 0 {
		preferred |= vk.MemoryPropertyDeviceLocalBit
	}
	if usage&UsageTransient != 0 {
		preferred |= vk.MemoryPropertyLazilyAllocatedBit
	}
	return required, preferred
}
