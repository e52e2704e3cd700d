// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

// InvalidIndex is the sentinel pool index: no resource.
const InvalidIndex = uint32(0xFFFFFFFF)

// Handles are 32-bit indices into per-kind pools. They are not
// generational: a handle refers to a live object only between its create
// call and its destroy call.
type (
	BufferHandle              uint32
	TextureHandle             uint32
	SamplerHandle             uint32
	ShaderStateHandle         uint32
	DescriptorSetLayoutHandle uint32
	DescriptorSetHandle       uint32
	PipelineHandle            uint32
	RenderPassHandle          uint32
	FramebufferHandle         uint32
)

// Typed sentinels for each handle kind.
const (
	InvalidBuffer              = BufferHandle(InvalidIndex)
	InvalidTexture             = TextureHandle(InvalidIndex)
	InvalidSampler             = SamplerHandle(InvalidIndex)
	InvalidShaderState         = ShaderStateHandle(InvalidIndex)
	InvalidDescriptorSetLayout = DescriptorSetLayoutHandle(InvalidIndex)
	InvalidDescriptorSet       = DescriptorSetHandle(InvalidIndex)
	InvalidPipeline            = PipelineHandle(InvalidIndex)
	InvalidRenderPass          = RenderPassHandle(InvalidIndex)
	InvalidFramebuffer         = FramebufferHandle(InvalidIndex)
)

// Valid reports whether the handle is not the sentinel.
func (h BufferHandle) Valid() bool              { return h != InvalidBuffer }
func (h TextureHandle) Valid() bool             { return h != InvalidTexture }
func (h SamplerHandle) Valid() bool             { return h != InvalidSampler }
func (h ShaderStateHandle) Valid() bool         { return h != InvalidShaderState }
func (h DescriptorSetLayoutHandle) Valid() bool { return h != InvalidDescriptorSetLayout }
func (h DescriptorSetHandle) Valid() bool       { return h != InvalidDescriptorSet }
func (h PipelineHandle) Valid() bool            { return h != InvalidPipeline }
func (h RenderPassHandle) Valid() bool          { return h != InvalidRenderPass }
func (h FramebufferHandle) Valid() bool         { return h != InvalidFramebuffer }

// Pool is a fixed-capacity slab keyed by 32-bit index with a LIFO free
// list. Slots are never relocated, so pointers returned by Access stay
// stable for the pool's lifetime. The pool does not interpret resource
// contents; destruction of native objects is the owning factory's job.
//
// Pools are single-producer structures: creation and destruction happen
// on the main thread only.
type Pool[T any] struct {
	name    string
	items   []T
	free    []uint32
	used    uint32
}

// NewPool creates a pool with the given fixed capacity.
func NewPool[T any](name string, capacity uint32) *Pool[T] {
	p := &Pool[T]{
		name:  name,
		items: make([]T, capacity),
		free:  make([]uint32, capacity),
	}
	// LIFO free list: index 0 is obtained first.
	for i := uint32(0); i < capacity; i++ {
		p.free[i] = capacity - 1 - i
	}
	return p
}

// Obtain returns a fresh index, or InvalidIndex when the pool is
// exhausted. The slot is zeroed.
func (p *Pool[T]) Obtain() uint32 {
	n := len(p.free)
	if n == 0 {
		Logger().Error("pool exhausted", "pool", p.name, "capacity", len(p.items))
		return InvalidIndex
	}
	index := p.free[n-1]
	p.free = p.free[:n-1]
	p.used++

	var zero T
	p.items[index] = zero
	return index
}

// Release returns an index to the free list. An out-of-bounds index is
// the result of freeing a handle that was never valid: it is logged and
// ignored.
func (p *Pool[T]) Release(index uint32) {
	if index >= uint32(len(p.items)) {
		Logger().Warn("release of invalid pool index", "pool", p.name, "index", index)
		return
	}
	p.free = append(p.free, index)
	p.used--
}

// Access returns the slot for an index. The pointer is stable for the
// pool's lifetime. Out-of-bounds access returns nil.
func (p *Pool[T]) Access(index uint32) *T {
	if index >= uint32(len(p.items)) {
		return nil
	}
	return &p.items[index]
}

// Used returns the number of live slots.
func (p *Pool[T]) Used() uint32 { return p.used }

// Capacity returns the fixed capacity.
func (p *Pool[T]) Capacity() uint32 { return uint32(len(p.items)) }
