// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/vkdevice/vk"
)

// Config configures the allocator.
type Config struct {
	// BlockSize is the size of the VkDeviceMemory blocks backing the
	// pools. Must be a power of 2. Default: 64MB.
	BlockSize uint64

	// MinAllocationSize is the suballocation granularity. Must be a
	// power of 2. Default: 256 bytes.
	MinAllocationSize uint64

	// DedicatedThreshold is the size at which allocations get their own
	// VkDeviceMemory. Default: 32MB.
	DedicatedThreshold uint64

	// MaxBlocksPerType limits pool blocks per memory type. Default: 8.
	MaxBlocksPerType int
}

// DefaultConfig returns the default allocator configuration.
func DefaultConfig() Config {
	return Config{
		BlockSize:          64 << 20,
		MinAllocationSize:  256,
		DedicatedThreshold: 32 << 20,
		MaxBlocksPerType:   8,
	}
}

// Allocation is one region of device memory handed to a resource.
type Allocation struct {
	Memory vk.DeviceMemory
	Offset uint64
	Size   uint64

	typeIndex uint32
	dedicated bool
	buddy     BuddyBlock
	mapped    uintptr
}

// MappedPtr returns the host address of a mapped allocation, 0 if unmapped.
func (a *Allocation) MappedPtr() uintptr { return a.mapped }

var (
	// ErrNoSuitableMemoryType indicates no memory type matches the request.
	ErrNoSuitableMemoryType = errors.New("memory: no suitable memory type")

	// ErrAllocationFailed indicates vkAllocateMemory failed.
	ErrAllocationFailed = errors.New("memory: device allocation failed")

	// ErrInvalidAllocation indicates a free or map of an unknown allocation.
	ErrInvalidAllocation = errors.New("memory: invalid allocation")

	// ErrNotMappable indicates a map of non-host-visible memory.
	ErrNotMappable = errors.New("memory: allocation is not host visible")
)

// pool holds the VkDeviceMemory blocks of one memory type.
type pool struct {
	typeIndex uint32
	blocks    []*poolBlock
}

type poolBlock struct {
	memory vk.DeviceMemory
	buddy  *BuddyAllocator
}

// Allocator suballocates Vulkan device memory.
type Allocator struct {
	mu sync.Mutex

	device   vk.Device
	cmds     *vk.Commands
	config   Config
	selector *typeSelector
	pools    []*pool

	dedicated map[vk.DeviceMemory]*Allocation

	liveBytes uint64
	liveCount uint64
}

// NewAllocator creates an allocator over the given device.
func NewAllocator(device vk.Device, cmds *vk.Commands, props *vk.PhysicalDeviceMemoryProperties, config Config) (*Allocator, error) {
	if !isPowerOfTwo(config.BlockSize) || !isPowerOfTwo(config.MinAllocationSize) {
		return nil, ErrInvalidConfig
	}
	if config.MinAllocationSize > config.BlockSize {
		return nil, ErrInvalidConfig
	}

	selector := newTypeSelector(props)
	pools := make([]*pool, props.MemoryTypeCount)
	for i := range pools {
		pools[i] = &pool{typeIndex: uint32(i)}
	}

	return &Allocator{
		device:    device,
		cmds:      cmds,
		config:    config,
		selector:  selector,
		pools:     pools,
		dedicated: make(map[vk.DeviceMemory]*Allocation),
	}, nil
}

// Alloc allocates device memory for the request. Host-accessible
// allocations are always dedicated so that they can be persistently
// mapped without aliasing another suballocation's mapping.
func (a *Allocator) Alloc(req Request) (*Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	typeIndex, ok := a.selector.selectType(req)
	if !ok {
		return nil, ErrNoSuitableMemoryType
	}

	alignment := req.Alignment
	if alignment < a.config.MinAllocationSize {
		alignment = a.config.MinAllocationSize
	}
	size := req.Size
	if size%alignment != 0 {
		size = (size/alignment + 1) * alignment
	}

	hostAccess := req.Usage&(UsageHostAccess|UsageUpload|UsageDownload) != 0
	if size >= a.config.DedicatedThreshold || hostAccess {
		return a.allocDedicated(size, typeIndex)
	}
	return a.allocPooled(size, typeIndex)
}

func (a *Allocator) allocDedicated(size uint64, typeIndex uint32) (*Allocation, error) {
	mem, err := a.vulkanAllocate(size, typeIndex)
	if err != nil {
		return nil, err
	}

	alloc := &Allocation{
		Memory:    mem,
		Offset:    0,
		Size:      size,
		typeIndex: typeIndex,
		dedicated: true,
	}
	a.dedicated[mem] = alloc
	a.liveBytes += size
	a.liveCount++
	return alloc, nil
}

func (a *Allocator) allocPooled(size uint64, typeIndex uint32) (*Allocation, error) {
	p := a.pools[typeIndex]

	for _, block := range p.blocks {
		if bb, err := block.buddy.Alloc(size); err == nil {
			a.liveBytes += bb.Size
			a.liveCount++
			return &Allocation{
				Memory:    block.memory,
				Offset:    bb.Offset,
				Size:      bb.Size,
				typeIndex: typeIndex,
				buddy:     bb,
			}, nil
		}
	}

	if len(p.blocks) >= a.config.MaxBlocksPerType {
		return a.allocDedicated(size, typeIndex)
	}

	mem, err := a.vulkanAllocate(a.config.BlockSize, typeIndex)
	if err != nil {
		return nil, err
	}
	buddy, err := NewBuddyAllocator(a.config.BlockSize, a.config.MinAllocationSize)
	if err != nil {
		a.cmds.FreeMemory(a.device, mem, nil)
		return nil, err
	}
	p.blocks = append(p.blocks, &poolBlock{memory: mem, buddy: buddy})

	bb, err := buddy.Alloc(size)
	if err != nil {
		return nil, err
	}
	a.liveBytes += bb.Size
	a.liveCount++
	return &Allocation{
		Memory:    mem,
		Offset:    bb.Offset,
		Size:      bb.Size,
		typeIndex: typeIndex,
		buddy:     bb,
	}, nil
}

// Free releases an allocation.
func (a *Allocator) Free(alloc *Allocation) error {
	if alloc == nil {
		return ErrInvalidAllocation
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if alloc.dedicated {
		if _, ok := a.dedicated[alloc.Memory]; !ok {
			return ErrInvalidAllocation
		}
		if alloc.mapped != 0 {
			a.cmds.UnmapMemory(a.device, alloc.Memory)
			alloc.mapped = 0
		}
		a.cmds.FreeMemory(a.device, alloc.Memory, nil)
		delete(a.dedicated, alloc.Memory)
		a.liveBytes -= alloc.Size
		a.liveCount--
		return nil
	}

	p := a.pools[alloc.typeIndex]
	for _, block := range p.blocks {
		if block.memory != alloc.Memory {
			continue
		}
		if err := block.buddy.Free(alloc.buddy); err != nil {
			return err
		}
		a.liveBytes -= alloc.buddy.Size
		a.liveCount--
		return nil
	}
	return ErrInvalidAllocation
}

// Map maps a dedicated host-visible allocation and returns the host
// address. The mapping persists until Unmap or Free.
func (a *Allocator) Map(alloc *Allocation) (uintptr, error) {
	if alloc == nil || !alloc.dedicated {
		return 0, ErrInvalidAllocation
	}
	if !a.selector.isHostVisible(alloc.typeIndex) {
		return 0, ErrNotMappable
	}
	if alloc.mapped != 0 {
		return alloc.mapped, nil
	}

	var data uintptr
	result := a.cmds.MapMemory(a.device, alloc.Memory, 0, uint64(vk.WholeSize), 0, &data)
	if result != vk.Success {
		return 0, fmt.Errorf("memory: vkMapMemory failed: %d", result)
	}
	alloc.mapped = data
	return data, nil
}

// Unmap unmaps a previously mapped allocation. Non-coherent memory is
// flushed first.
func (a *Allocator) Unmap(alloc *Allocation) {
	if alloc == nil || alloc.mapped == 0 {
		return
	}
	if !a.selector.isHostCoherent(alloc.typeIndex) {
		r := vk.MappedMemoryRange{
			SType:  vk.StructureTypeMappedMemoryRange,
			Memory: alloc.Memory,
			Size:   vk.DeviceSize(vk.WholeSize),
		}
		_ = a.cmds.FlushMappedMemoryRanges(a.device, 1, &r)
	}
	a.cmds.UnmapMemory(a.device, alloc.Memory)
	alloc.mapped = 0
}

// LiveBytes returns the bytes currently held by live allocations.
func (a *Allocator) LiveBytes() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.liveBytes
}

// LiveCount returns the number of live allocations.
func (a *Allocator) LiveCount() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.liveCount
}

// Destroy frees every block and dedicated allocation. Call after the
// device is idle and before destroying it.
func (a *Allocator) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for mem, alloc := range a.dedicated {
		if alloc.mapped != 0 {
			a.cmds.UnmapMemory(a.device, mem)
		}
		a.cmds.FreeMemory(a.device, mem, nil)
	}
	a.dedicated = make(map[vk.DeviceMemory]*Allocation)

	for _, p := range a.pools {
		for _, block := range p.blocks {
			a.cmds.FreeMemory(a.device, block.memory, nil)
		}
		p.blocks = nil
	}
	a.liveBytes = 0
	a.liveCount = 0
}

func (a *Allocator) vulkanAllocate(size uint64, typeIndex uint32) (vk.DeviceMemory, error) {
	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(size),
		MemoryTypeIndex: typeIndex,
	}
	var mem vk.DeviceMemory
	result := a.cmds.AllocateMemory(a.device, &info, nil, &mem)
	if result != vk.Success {
		return 0, fmt.Errorf("%w: vkAllocateMemory returned %d", ErrAllocationFailed, result)
	}
	return mem, nil
}
