// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"github.com/gogpu/vkdevice/memory"
	"github.com/gogpu/vkdevice/spirv"
	"github.com/gogpu/vkdevice/vk"
)

// Capacities of the device layer. Tunable at compile time; several are
// mirrored in shaders (the bindless bindings in particular).
const (
	// MaxFrames is the pipeline depth: how many frames the host records
	// ahead of the GPU.
	MaxFrames = 3

	// MaxSwapchainImages bounds the per-image arrays of the swapchain.
	MaxSwapchainImages = 3

	// BindlessResourceCount is the element count of each bindless array.
	BindlessResourceCount = 1024

	// BindlessTextureBinding is the combined-image-sampler array binding
	// inside the bindless set; storage images live one binding above.
	BindlessTextureBinding = 10
	BindlessImageBinding   = BindlessTextureBinding + 1

	// MaxDescriptorsPerSet bounds both layout bindings and set resources.
	MaxDescriptorsPerSet = 16

	// MaxImageOutputs is the color-attachment cap of a render pass.
	MaxImageOutputs = 8

	// MaxShaderStages bounds the stages of one shader state.
	MaxShaderStages = 5

	// MaxDescriptorSetLayouts bounds the set layouts of one pipeline.
	MaxDescriptorSetLayouts = 8

	// MaxVertexStreams and MaxVertexAttributes bound the vertex layout.
	MaxVertexStreams    = 16
	MaxVertexAttributes = 16

	// DescriptorSetsPoolSize is the set capacity of the global pool;
	// GlobalPoolElements the per-type descriptor capacity.
	DescriptorSetsPoolSize = 4096
	GlobalPoolElements     = 128
)

// Buffer is the record of one buffer resource.
type Buffer struct {
	Handle BufferHandle
	Name   string

	VkBuffer   vk.Buffer
	Allocation *memory.Allocation

	Size      uint64
	TypeFlags vk.BufferUsageFlags
	Usage     ResourceUsageType

	// GlobalOffset is the current offset into the parent dynamic buffer
	// for virtualized dynamic buffers; rewritten by every MapBuffer.
	GlobalOffset uint32

	// ParentBuffer is the dynamic buffer handle when this buffer aliases
	// it. Aliasing buffers own no native memory.
	ParentBuffer BufferHandle
}

// Texture is the record of one image resource plus its default view.
type Texture struct {
	Handle TextureHandle
	Name   string

	VkImage     vk.Image
	VkImageView vk.ImageView
	VkFormat    vk.Format
	Allocation  *memory.Allocation

	Width       uint16
	Height      uint16
	Depth       uint16
	MipLevels   uint32
	ArrayLayers uint32

	Type  TextureType
	Flags TextureFlags
	State ResourceState

	// ParentTexture is set on views; the image is owned by the parent.
	ParentTexture TextureHandle

	// Sampler optionally overrides the default sampler in bindless and
	// combined-image-sampler writes.
	Sampler SamplerHandle
}

// Sampler is the record of one sampler.
type Sampler struct {
	Handle SamplerHandle
	Name   string

	VkSampler vk.Sampler

	MinFilter vk.Filter
	MagFilter vk.Filter
	MipFilter vk.SamplerMipmapMode

	AddressModeU vk.SamplerAddressMode
	AddressModeV vk.SamplerAddressMode
	AddressModeW vk.SamplerAddressMode

	ReductionMode vk.SamplerReductionModeEXT
	UseReduction  bool
}

// ShaderState is the record of one compiled shader program: up to
// MaxShaderStages modules plus the reflection result, which is owned by
// the record and freed with it.
type ShaderState struct {
	Handle ShaderStateHandle
	Name   string

	Modules      [MaxShaderStages]vk.ShaderModule
	Stages       [MaxShaderStages]vk.ShaderStageFlags
	ActiveStages int

	IsCompute bool
	Parse     *spirv.ParseResult
}

// DescriptorBinding is one binding of a descriptor-set layout.
type DescriptorBinding struct {
	Type  vk.DescriptorType
	Index uint16
	Count uint16
	Name  string
}

// DescriptorSetLayout is the record of one set layout.
type DescriptorSetLayout struct {
	Handle DescriptorSetLayoutHandle

	VkLayout vk.DescriptorSetLayout

	Bindings   []DescriptorBinding
	VkBindings []vk.DescriptorSetLayoutBinding

	// indexToBinding maps a binding index to its position in Bindings.
	indexToBinding map[uint16]int

	SetIndex uint32
	Bindless bool
	Dynamic  bool
}

// BindingData returns the binding with the given index, nil if absent.
func (l *DescriptorSetLayout) BindingData(index uint16) *DescriptorBinding {
	i, ok := l.indexToBinding[index]
	if !ok {
		return nil
	}
	return &l.Bindings[i]
}

// DescriptorSet is the record of one allocated set. The resource arrays
// are captured at creation so the set can be rewritten in place by
// UpdateDescriptorSet.
type DescriptorSet struct {
	Handle DescriptorSetHandle

	VkSet vk.DescriptorSet

	// Parallel arrays: resource handle, sampler override, binding point.
	Resources []uint32
	Samplers  []SamplerHandle
	Bindings  []uint16

	Layout       *DescriptorSetLayout
	LayoutHandle DescriptorSetLayoutHandle
}

// Pipeline is the record of one graphics or compute pipeline.
type Pipeline struct {
	Handle PipelineHandle

	VkPipeline vk.Pipeline
	VkLayout   vk.PipelineLayout

	BindPoint vk.PipelineBindPoint

	ShaderState ShaderStateHandle

	// Set layouts in set-index order. The entry at index 0 is the shared
	// bindless layout when bindless is supported; it is borrowed and not
	// destroyed with the pipeline.
	DescriptorSetLayoutHandles [MaxDescriptorSetLayouts]DescriptorSetLayoutHandle
	NumActiveLayouts           int
	BindlessBorrowed           bool

	GraphicsPipeline bool
}

// RenderPassOutput is the hashable description of a render pass: formats,
// final layouts and load operations. Equal outputs share one native pass.
type RenderPassOutput struct {
	ColorFormats      [MaxImageOutputs]vk.Format
	ColorFinalLayouts [MaxImageOutputs]vk.ImageLayout
	ColorOperations   [MaxImageOutputs]RenderPassOperation
	NumColorFormats   uint32

	DepthStencilFormat      vk.Format
	DepthStencilFinalLayout vk.ImageLayout
	DepthOperation          RenderPassOperation
	StencilOperation        RenderPassOperation
}

// Color appends one color attachment and returns the output for chaining.
func (o *RenderPassOutput) Color(format vk.Format, layout vk.ImageLayout, op RenderPassOperation) *RenderPassOutput {
	o.ColorFormats[o.NumColorFormats] = format
	o.ColorFinalLayouts[o.NumColorFormats] = layout
	o.ColorOperations[o.NumColorFormats] = op
	o.NumColorFormats++
	return o
}

// Depth sets the depth-stencil attachment.
func (o *RenderPassOutput) Depth(format vk.Format, layout vk.ImageLayout) *RenderPassOutput {
	o.DepthStencilFormat = format
	o.DepthStencilFinalLayout = layout
	return o
}

// SetDepthStencilOperations sets the depth and stencil load operations.
func (o *RenderPassOutput) SetDepthStencilOperations(depth, stencil RenderPassOperation) *RenderPassOutput {
	o.DepthOperation = depth
	o.StencilOperation = stencil
	return o
}

// RenderPass is the record of one render pass. VkRenderPass is null when
// dynamic rendering is in use; the fingerprint still identifies the pass
// for pipeline compatibility.
type RenderPass struct {
	Handle RenderPassHandle
	Name   string

	VkRenderPass vk.RenderPass

	Output RenderPassOutput
}

// Framebuffer is the record of one framebuffer. VkFramebuffer is null
// under dynamic rendering; the attachments still drive BindPass.
type Framebuffer struct {
	Handle FramebufferHandle
	Name   string

	VkFramebuffer vk.Framebuffer

	RenderPass RenderPassHandle

	Width  uint16
	Height uint16

	ScaleX float32
	ScaleY float32

	ColorAttachments       [MaxImageOutputs]TextureHandle
	NumColorAttachments    uint32
	DepthStencilAttachment TextureHandle

	// Resize marks framebuffers recreated with the swapchain extent.
	Resize bool
}

// === Creation descriptors ===

// SourceLanguage selects how a shader stage's payload is interpreted.
type SourceLanguage uint32

const (
	// SourceSpirv is a precompiled SPIR-V binary.
	SourceSpirv SourceLanguage = iota

	// SourceGlsl is GLSL source compiled through glslangValidator from
	// VULKAN_SDK.
	SourceGlsl

	// SourceWgsl is WGSL source compiled in-process with naga.
	SourceWgsl
)

// BufferDescriptor describes a buffer creation.
type BufferDescriptor struct {
	Name string

	Size      uint64
	TypeFlags vk.BufferUsageFlags
	Usage     ResourceUsageType

	// Data is copied into the buffer at creation when the memory is host
	// visible. Device-local initial data goes through UploadBufferData.
	Data []byte
}

// TextureDescriptor describes a texture creation.
type TextureDescriptor struct {
	Name string

	Width       uint16
	Height      uint16
	Depth       uint16
	MipLevels   uint32
	ArrayLayers uint32

	Format vk.Format
	Type   TextureType
	Flags  TextureFlags

	// Sampler optionally binds a sampler consulted by descriptor writes.
	Sampler SamplerHandle
}

// TextureViewDescriptor describes a view onto an existing texture.
type TextureViewDescriptor struct {
	Name string

	Parent TextureHandle

	Type TextureType

	BaseMipLevel   uint32
	MipLevelCount  uint32
	BaseArrayLayer uint32
	ArrayLayerCount uint32
}

// SamplerDescriptor describes a sampler creation.
type SamplerDescriptor struct {
	Name string

	MinFilter vk.Filter
	MagFilter vk.Filter
	MipFilter vk.SamplerMipmapMode

	AddressModeU vk.SamplerAddressMode
	AddressModeV vk.SamplerAddressMode
	AddressModeW vk.SamplerAddressMode

	ReductionMode vk.SamplerReductionModeEXT
	UseReduction  bool
}

// ShaderStageDescriptor is one stage of a shader-state creation.
type ShaderStageDescriptor struct {
	Stage    vk.ShaderStageFlags
	Language SourceLanguage

	// Code is the SPIR-V payload for SourceSpirv.
	Code []byte

	// Source is GLSL or WGSL text for the other languages.
	Source string
}

// ShaderStateDescriptor describes a shader-state creation.
type ShaderStateDescriptor struct {
	Name string

	Stages []ShaderStageDescriptor

	// Optimize runs spirv-opt over glslang output when available.
	Optimize bool
}

// DescriptorSetLayoutDescriptor describes a set-layout creation.
type DescriptorSetLayoutDescriptor struct {
	Name string

	Bindings []DescriptorBinding
	SetIndex uint32

	Bindless bool
	Dynamic  bool
}

// DescriptorSetResource binds one resource slot of a set creation.
type DescriptorSetResource struct {
	// Binding is the shader binding index.
	Binding uint16

	// Resource is the raw handle index: a BufferHandle for buffer-typed
	// bindings, a TextureHandle for image-typed bindings.
	Resource uint32

	// Sampler optionally overrides the sampler for combined image
	// samplers.
	Sampler SamplerHandle
}

// DescriptorSetDescriptor describes a set creation.
type DescriptorSetDescriptor struct {
	Name string

	Layout    DescriptorSetLayoutHandle
	Resources []DescriptorSetResource
}

// VertexStream is one vertex-buffer binding of the vertex layout.
type VertexStream struct {
	Binding   uint16
	Stride    uint16
	InputRate vk.VertexInputRate
}

// VertexAttribute is one attribute of the vertex layout.
type VertexAttribute struct {
	Location uint16
	Binding  uint16
	Offset   uint32
	Format   vk.Format
}

// VertexInputDescriptor is the pipeline vertex layout.
type VertexInputDescriptor struct {
	Streams    []VertexStream
	Attributes []VertexAttribute
}

// BlendStateDescriptor is the blend state of one color output. When any
// blend state is specified on a pipeline, one must be specified per
// color output.
type BlendStateDescriptor struct {
	SourceColor      vk.BlendFactor
	DestinationColor vk.BlendFactor
	ColorOperation   vk.BlendOp

	SourceAlpha      vk.BlendFactor
	DestinationAlpha vk.BlendFactor
	AlphaOperation   vk.BlendOp

	BlendEnabled  bool
	SeparateBlend bool

	WriteMask vk.ColorComponentFlags
}

// DepthStencilDescriptor is the pipeline depth-stencil state.
type DepthStencilDescriptor struct {
	DepthEnable      bool
	DepthWriteEnable bool
	DepthComparison  vk.CompareOp

	StencilEnable bool
	Front         vk.StencilOpState
	Back          vk.StencilOpState
}

// RasterizationDescriptor is the pipeline rasterization state.
type RasterizationDescriptor struct {
	CullMode vk.CullModeFlags
	Front    vk.FrontFace
	Fill     vk.PolygonMode
}

// PipelineDescriptor describes a pipeline creation. The shader state is
// created as part of the pipeline and owned by it.
type PipelineDescriptor struct {
	Name string

	Shaders ShaderStateDescriptor

	VertexInput   VertexInputDescriptor
	BlendStates   []BlendStateDescriptor
	DepthStencil  DepthStencilDescriptor
	Rasterization RasterizationDescriptor
	Topology      vk.PrimitiveTopology

	RenderPass RenderPassOutput
}

// RenderPassDescriptor describes a render-pass creation.
type RenderPassDescriptor struct {
	Name   string
	Output RenderPassOutput
}

// FramebufferDescriptor describes a framebuffer creation.
type FramebufferDescriptor struct {
	Name string

	RenderPass RenderPassHandle

	ColorAttachments       []TextureHandle
	DepthStencilAttachment TextureHandle

	Width  uint16
	Height uint16

	ScaleX float32
	ScaleY float32

	// Resize recreates the framebuffer at swapchain scale on resize.
	Resize bool
}

// TextureBarrier is one image entry of an execution barrier.
type TextureBarrier struct {
	Texture TextureHandle
}

// BufferBarrier is one buffer entry of an execution barrier.
type BufferBarrier struct {
	Buffer BufferHandle
}

// ExecutionBarrier describes a pipeline barrier between two stage roles
// with up to eight image and eight buffer entries.
type ExecutionBarrier struct {
	SourceStage      BarrierStage
	DestinationStage BarrierStage

	ImageBarriers  []TextureBarrier
	BufferBarriers []BufferBarrier

	// NewState is the resource state every image entry transitions to.
	NewState ResourceState
}

// MapBufferParameters selects the range of a MapBuffer call. A zero Size
// maps from Offset to the end of the buffer.
type MapBufferParameters struct {
	Buffer BufferHandle
	Offset uint32
	Size   uint32
}

// resourceUpdate is one deferred deletion entry. CurrentFrame is the
// frame at which the entry was queued; the drain executes it when the
// frame counter comes back around, i.e. after the full frame lag.
type resourceUpdate struct {
	kind         resourceKind
	handle       uint32
	currentFrame uint32

	// deleting distinguishes destroy entries from create entries in the
	// bindless update queue.
	deleting bool

	// nativeSet carries the raw set for resourceKindNativeDescriptorSet.
	nativeSet vk.DescriptorSet
}

// descriptorSetUpdate is one queued UpdateDescriptorSet, applied at the
// start of the next frame.
type descriptorSetUpdate struct {
	descriptorSet DescriptorSetHandle
	frameIssued   uint32
}
