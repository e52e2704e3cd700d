// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"unsafe"

	"github.com/gogpu/vkdevice/memory"
	"github.com/gogpu/vkdevice/vk"
)

// dynamicAliasUsage is the usage subset that virtualizes a Dynamic
// buffer into the device-wide dynamic buffer.
const dynamicAliasUsage = vk.BufferUsageVertexBufferBit |
	vk.BufferUsageIndexBufferBit |
	vk.BufferUsageUniformBufferBit

// CreateBuffer creates a buffer and returns its handle, InvalidBuffer on
// pool exhaustion. Zero sizes are bumped to 1.
func (d *Device) CreateBuffer(desc BufferDescriptor) BufferHandle {
	index := d.buffers.Obtain()
	if index == InvalidIndex {
		return InvalidBuffer
	}
	handle := BufferHandle(index)

	size := desc.Size
	if size == 0 {
		size = 1
	}

	buffer := d.buffers.Access(index)
	buffer.Handle = handle
	buffer.Name = desc.Name
	buffer.Size = size
	buffer.TypeFlags = desc.TypeFlags
	buffer.Usage = desc.Usage
	buffer.ParentBuffer = InvalidBuffer
	buffer.GlobalOffset = 0

	// Dynamic vertex/index/uniform buffers alias the dynamic buffer and
	// own no memory; their offset is assigned by each MapBuffer.
	if desc.Usage == ResourceUsageDynamic && desc.TypeFlags&dynamicAliasUsage != 0 {
		buffer.ParentBuffer = d.dynamicBuffer
		return handle
	}

	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(size),
		Usage:       desc.TypeFlags | vk.BufferUsageTransferDstBit | vk.BufferUsageTransferSrcBit,
		SharingMode: vk.SharingModeExclusive,
	}
	vkCheck(d.cmds.CreateBuffer(d.device, &createInfo, nil, &buffer.VkBuffer), "vkCreateBuffer")

	var reqs vk.MemoryRequirements
	d.cmds.GetBufferMemoryRequirements(d.device, buffer.VkBuffer, &reqs)

	var usage memory.UsageFlags
	switch desc.Usage {
	case ResourceUsageImmutable:
		usage = memory.UsageFastDeviceAccess
	case ResourceUsageReadback:
		usage = memory.UsageHostAccess | memory.UsageDownload
	default: // Dynamic (non-aliasing), Stream, Staging
		usage = memory.UsageHostAccess | memory.UsageUpload
	}

	alloc, err := d.allocator.Alloc(memory.Request{
		Size:      uint64(reqs.Size),
		Alignment: uint64(reqs.Alignment),
		Usage:     usage,
		TypeBits:  reqs.MemoryTypeBits,
	})
	if err != nil {
		panic(err)
	}
	buffer.Allocation = alloc
	vkCheck(d.cmds.BindBufferMemory(d.device, buffer.VkBuffer, alloc.Memory, alloc.Offset), "vkBindBufferMemory")

	d.setResourceName(vk.ObjectTypeBuffer, uint64(buffer.VkBuffer), desc.Name)

	if len(desc.Data) > 0 && usage&memory.UsageHostAccess != 0 {
		ptr, err := d.allocator.Map(alloc)
		if err != nil {
			panic(err)
		}
		dst := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), len(desc.Data))
		copy(dst, desc.Data)
		d.allocator.Unmap(alloc)
	}

	Logger().Debug("buffer created", "name", desc.Name, "size", size, "usage", desc.Usage)
	return handle
}

// DestroyBuffer queues the buffer for deferred destruction.
func (d *Device) DestroyBuffer(handle BufferHandle) {
	if uint32(handle) >= d.buffers.Capacity() {
		Logger().Warn("destroy of invalid buffer", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindBuffer,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyBufferInstant(index uint32) {
	buffer := d.buffers.Access(index)
	// Buffers aliasing the dynamic buffer never destroy native memory.
	if buffer.ParentBuffer == InvalidBuffer && buffer.VkBuffer != 0 {
		d.cmds.DestroyBuffer(d.device, buffer.VkBuffer, nil)
		if buffer.Allocation != nil {
			_ = d.allocator.Free(buffer.Allocation)
		}
	}
	buffer.VkBuffer = 0
	buffer.Allocation = nil
	d.buffers.Release(index)
}

// AccessBuffer returns the record of a live buffer.
func (d *Device) AccessBuffer(handle BufferHandle) *Buffer {
	return d.buffers.Access(uint32(handle))
}

// QueryBuffer returns the creation description of a live buffer.
func (d *Device) QueryBuffer(handle BufferHandle) (BufferDescriptor, bool) {
	buffer := d.buffers.Access(uint32(handle))
	if buffer == nil {
		return BufferDescriptor{}, false
	}
	return BufferDescriptor{
		Name:      buffer.Name,
		Size:      buffer.Size,
		TypeFlags: buffer.TypeFlags,
		Usage:     buffer.Usage,
	}, true
}

// MapBuffer maps a buffer range for writing. For buffers aliasing the
// dynamic buffer it bump-allocates from the current frame's window,
// records the offset in the record, and returns the window slice: the
// same handle can be rebound every frame at a new offset.
func (d *Device) MapBuffer(params MapBufferParameters) []byte {
	buffer := d.buffers.Access(uint32(params.Buffer))
	if buffer == nil {
		return nil
	}

	size := uint64(params.Size)
	if size == 0 {
		size = buffer.Size - uint64(params.Offset)
	}

	if buffer.ParentBuffer == d.dynamicBuffer && buffer.ParentBuffer != InvalidBuffer {
		offset, ptr := d.dynamicAllocate(size)
		buffer.GlobalOffset = uint32(offset)
		return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
	}

	if buffer.Allocation == nil {
		return nil
	}
	ptr, err := d.allocator.Map(buffer.Allocation)
	if err != nil {
		Logger().Warn("map of non-mappable buffer", "name", buffer.Name)
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr+uintptr(params.Offset))), size)
}

// UnmapBuffer unmaps a buffer. A no-op on buffers that alias the dynamic
// buffer - their window stays persistently mapped.
func (d *Device) UnmapBuffer(params MapBufferParameters) {
	buffer := d.buffers.Access(uint32(params.Buffer))
	if buffer == nil {
		return
	}
	if buffer.ParentBuffer == d.dynamicBuffer && buffer.ParentBuffer != InvalidBuffer {
		return
	}
	if buffer.Allocation != nil {
		d.allocator.Unmap(buffer.Allocation)
	}
}

// DynamicAllocate bump-allocates transient memory from the current
// frame's dynamic window and returns the global offset plus the mapped
// slice.
func (d *Device) DynamicAllocate(size uint64) (uint32, []byte) {
	offset, ptr := d.dynamicAllocate(size)
	return uint32(offset), unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
}

// dynamicAllocate rounds the size to the uniform-buffer-offset alignment
// and advances the frame cursor.
func (d *Device) dynamicAllocate(size uint64) (uint64, uintptr) {
	offset := d.dynamicAllocated
	aligned := alignUp(size, d.uboAlignment)
	d.dynamicAllocated += aligned
	if d.dynamicAllocated > uint64(d.currentFrame+1)*dynamicPerFrameSize {
		Logger().Warn("dynamic buffer window overflow",
			"frame", d.currentFrame, "allocated", d.dynamicAllocated)
	}
	return offset, d.dynamicMapped + uintptr(offset)
}

func alignUp(value, alignment uint64) uint64 {
	mask := alignment - 1
	return (value + mask) & ^mask
}
