// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import "github.com/gogpu/vkdevice/vk"

const (
	// primariesPerPool and secondariesPerPool size the per-pool command
	// buffer rings.
	primariesPerPool   = 3
	secondariesPerPool = 2
)

// commandPoolEntry is one (frame, thread) command pool with its rings
// and used-this-frame cursors.
type commandPoolEntry struct {
	pool vk.CommandPool

	primaries      [primariesPerPool]*CommandBuffer
	usedPrimaries  uint32
	secondaries    [secondariesPerPool]*CommandBuffer
	usedSecondaries uint32
}

// commandBufferManager owns threads x MaxFrames command pools on the
// main queue family plus one compute pool per frame.
type commandBufferManager struct {
	device  *Device
	threads int

	pools []commandPoolEntry

	computePools   [MaxFrames]vk.CommandPool
	computeBuffers [MaxFrames]*CommandBuffer
	computeUsed    [MaxFrames]bool
}

// poolIndex is the addressing discipline: frame * threads + thread.
func (m *commandBufferManager) poolIndex(frame uint32, thread int) int {
	return int(frame)*m.threads + thread
}

func newCommandBufferManager(d *Device, threads int) *commandBufferManager {
	m := &commandBufferManager{
		device:  d,
		threads: threads,
		pools:   make([]commandPoolEntry, threads*MaxFrames),
	}

	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: d.mainQueueFamily,
	}
	for i := range m.pools {
		entry := &m.pools[i]
		vkCheck(d.cmds.CreateCommandPool(d.device, &poolInfo, nil, &entry.pool), "vkCreateCommandPool")

		frame := uint32(i / threads)
		thread := i % threads

		var handles [primariesPerPool]vk.CommandBuffer
		allocInfo := vk.CommandBufferAllocateInfo{
			SType:              vk.StructureTypeCommandBufferAllocateInfo,
			CommandPool:        entry.pool,
			Level:              vk.CommandBufferLevelPrimary,
			CommandBufferCount: primariesPerPool,
		}
		vkCheck(d.cmds.AllocateCommandBuffers(d.device, &allocInfo, &handles[0]), "vkAllocateCommandBuffers")
		for j := range entry.primaries {
			entry.primaries[j] = &CommandBuffer{
				device:      d,
				vkHandle:    handles[j],
				threadIndex: thread,
				frameIndex:  frame,
			}
		}

		var secondaryHandles [secondariesPerPool]vk.CommandBuffer
		allocInfo.Level = vk.CommandBufferLevelSecondary
		allocInfo.CommandBufferCount = secondariesPerPool
		vkCheck(d.cmds.AllocateCommandBuffers(d.device, &allocInfo, &secondaryHandles[0]), "vkAllocateCommandBuffers")
		for j := range entry.secondaries {
			entry.secondaries[j] = &CommandBuffer{
				device:      d,
				vkHandle:    secondaryHandles[j],
				threadIndex: thread,
				frameIndex:  frame,
				secondary:   true,
			}
		}
	}

	computePoolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: d.computeQueueFamily,
	}
	for frame := range m.computePools {
		vkCheck(d.cmds.CreateCommandPool(d.device, &computePoolInfo, nil, &m.computePools[frame]), "vkCreateCommandPool")

		var handle vk.CommandBuffer
		allocInfo := vk.CommandBufferAllocateInfo{
			SType:              vk.StructureTypeCommandBufferAllocateInfo,
			CommandPool:        m.computePools[frame],
			Level:              vk.CommandBufferLevelPrimary,
			CommandBufferCount: 1,
		}
		vkCheck(d.cmds.AllocateCommandBuffers(d.device, &allocInfo, &handle), "vkAllocateCommandBuffers")
		m.computeBuffers[frame] = &CommandBuffer{
			device:     d,
			vkHandle:   handle,
			frameIndex: uint32(frame),
			compute:    true,
		}
	}
	return m
}

// resetPools resets every pool of a frame and zeroes the used cursors.
func (m *commandBufferManager) resetPools(frame uint32) {
	d := m.device
	for thread := 0; thread < m.threads; thread++ {
		entry := &m.pools[m.poolIndex(frame, thread)]
		vkCheck(d.cmds.ResetCommandPool(d.device, entry.pool, 0), "vkResetCommandPool")
		entry.usedPrimaries = 0
		entry.usedSecondaries = 0
	}
	vkCheck(d.cmds.ResetCommandPool(d.device, m.computePools[frame], 0), "vkResetCommandPool")
	m.computeUsed[frame] = false
}

// getCommandBuffer returns the next unused primary of the (frame,
// thread) pool. Exceeding the ring is a programming error.
func (m *commandBufferManager) getCommandBuffer(thread int, frame uint32, begin bool) *CommandBuffer {
	entry := &m.pools[m.poolIndex(frame, thread)]
	if entry.usedPrimaries >= primariesPerPool {
		panic("vkdevice: command buffer ring exhausted for this frame")
	}
	cb := entry.primaries[entry.usedPrimaries]
	entry.usedPrimaries++

	if begin {
		cb.begin()
	}
	return cb
}

// getSecondaryCommandBuffer returns the next unused secondary.
func (m *commandBufferManager) getSecondaryCommandBuffer(thread int, frame uint32) *CommandBuffer {
	entry := &m.pools[m.poolIndex(frame, thread)]
	if entry.usedSecondaries >= secondariesPerPool {
		panic("vkdevice: secondary command buffer ring exhausted for this frame")
	}
	cb := entry.secondaries[entry.usedSecondaries]
	entry.usedSecondaries++
	return cb
}

// getComputeCommandBuffer returns the frame's compute command buffer.
func (m *commandBufferManager) getComputeCommandBuffer(frame uint32, begin bool) *CommandBuffer {
	if m.computeUsed[frame] {
		panic("vkdevice: compute command buffer already taken this frame")
	}
	m.computeUsed[frame] = true
	cb := m.computeBuffers[frame]
	if begin {
		beginInfo := vk.CommandBufferBeginInfo{
			SType: vk.StructureTypeCommandBufferBeginInfo,
			Flags: vk.CommandBufferUsageOneTimeSubmitBit,
		}
		vkCheck(m.device.cmds.BeginCommandBuffer(cb.vkHandle, &beginInfo), "vkBeginCommandBuffer")
		cb.recording = true
	}
	return cb
}

func (m *commandBufferManager) shutdown() {
	d := m.device
	for i := range m.pools {
		d.cmds.DestroyCommandPool(d.device, m.pools[i].pool, nil)
	}
	for frame := range m.computePools {
		d.cmds.DestroyCommandPool(d.device, m.computePools[frame], nil)
	}
}
