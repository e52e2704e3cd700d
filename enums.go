// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

// ResourceState is the coarse lifecycle tag of a texture or buffer that
// drives access-mask and layout derivation in the barrier path.
type ResourceState uint32

const (
	ResourceStateUndefined               ResourceState = 0
	ResourceStateVertexAndConstantBuffer ResourceState = 0x1
	ResourceStateIndexBuffer             ResourceState = 0x2
	ResourceStateRenderTarget            ResourceState = 0x4
	ResourceStateUnorderedAccess         ResourceState = 0x8
	ResourceStateDepthWrite              ResourceState = 0x10
	ResourceStateDepthRead               ResourceState = 0x20
	ResourceStateNonPixelShaderResource  ResourceState = 0x40
	ResourceStatePixelShaderResource     ResourceState = 0x80
	ResourceStateIndirectArgument        ResourceState = 0x100
	ResourceStateCopyDest                ResourceState = 0x200
	ResourceStateCopySource              ResourceState = 0x400
	ResourceStatePresent                 ResourceState = 0x800

	ResourceStateShaderResource = ResourceStateNonPixelShaderResource | ResourceStatePixelShaderResource
)

// ResourceUsageType classifies how a buffer's memory is owned and
// updated.
type ResourceUsageType uint32

const (
	// ResourceUsageImmutable is device-local memory written once.
	ResourceUsageImmutable ResourceUsageType = iota

	// ResourceUsageDynamic is per-frame transient data. Vertex, index and
	// uniform buffers of this class alias the device-wide dynamic buffer
	// and own no memory of their own.
	ResourceUsageDynamic

	// ResourceUsageStream is data rewritten every frame into its own
	// host-visible memory.
	ResourceUsageStream

	// ResourceUsageStaging is host-visible upload memory.
	ResourceUsageStaging

	// ResourceUsageReadback is host-cached download memory.
	ResourceUsageReadback
)

// TextureType selects the image and default-view dimensionality.
type TextureType uint32

const (
	TextureType1D TextureType = iota
	TextureType2D
	TextureType3D
	TextureType1DArray
	TextureType2DArray
	TextureTypeCubeArray
)

// TextureFlags mark special texture roles.
type TextureFlags uint32

const (
	TextureFlagDefault TextureFlags = 0

	// TextureFlagRenderTarget adds the attachment usage bit matching the
	// format's aspect.
	TextureFlagRenderTarget TextureFlags = 1 << iota

	// TextureFlagCompute adds storage usage and a second bindless write
	// at the storage-image binding.
	TextureFlagCompute

	// TextureFlagSparse creates the image with sparse binding flags.
	TextureFlagSparse
)

// RenderPassOperation selects the load operation of an attachment.
type RenderPassOperation uint32

const (
	RenderPassOperationDontCare RenderPassOperation = iota
	RenderPassOperationLoad
	RenderPassOperationClear
)

// PresentMode requests a swapchain presentation engine mode. Unsupported
// modes fall back to VSync (FIFO), which every driver provides.
type PresentMode uint32

const (
	// PresentModeImmediate presents without vertical sync.
	PresentModeImmediate PresentMode = iota

	// PresentModeVSync is FIFO presentation.
	PresentModeVSync

	// PresentModeVSyncFast is mailbox presentation: vsynced, latest frame
	// wins.
	PresentModeVSyncFast

	// PresentModeVSyncRelaxed tears only when a frame is late.
	PresentModeVSyncRelaxed
)

// BarrierStage is the pipeline-stage role of one side of an execution
// barrier.
type BarrierStage uint32

const (
	BarrierStageDrawIndirect BarrierStage = iota
	BarrierStageVertexInput
	BarrierStageVertexShader
	BarrierStageFragmentShader
	BarrierStageRenderTarget
	BarrierStageComputeShader
	BarrierStageTransfer
)

// resourceKind tags deletion-queue entries.
type resourceKind uint32

const (
	resourceKindBuffer resourceKind = iota
	resourceKindTexture
	resourceKindSampler
	resourceKindShaderState
	resourceKindDescriptorSetLayout
	resourceKindDescriptorSet
	resourceKindPipeline
	resourceKindRenderPass
	resourceKindFramebuffer

	// resourceKindNativeDescriptorSet destroys a raw VkDescriptorSet that
	// was replaced by an update; the public handle stays live.
	resourceKindNativeDescriptorSet
)
