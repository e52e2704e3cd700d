// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Conversions from device-layer enums to Vulkan, plus the resource-state
// tables that the barrier algorithm derives access masks and layouts from.

package vkdevice

import (
	"unsafe"

	"github.com/gogpu/vkdevice/vk"
)

// uintptrOf chains an extension struct through a PNext field. Callers
// must keep the pointee alive across the native call.
func uintptrOf[T any](p *T) uintptr { return uintptr(unsafe.Pointer(p)) }

// hasDepth reports whether the format carries a depth aspect.
func hasDepth(format vk.Format) bool {
	switch format {
	case vk.FormatD16Unorm, vk.FormatD32Sfloat, vk.FormatD24UnormS8Uint, vk.FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// hasStencil reports whether the format carries a stencil aspect.
func hasStencil(format vk.Format) bool {
	switch format {
	case vk.FormatS8Uint, vk.FormatD24UnormS8Uint, vk.FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// hasDepthOrStencil reports whether the format is a depth/stencil format.
func hasDepthOrStencil(format vk.Format) bool {
	return hasDepth(format) || hasStencil(format)
}

// aspectMask returns the image aspect for a format.
func aspectMask(format vk.Format) vk.ImageAspectFlags {
	if hasDepth(format) {
		if hasStencil(format) {
			return vk.ImageAspectDepthBit | vk.ImageAspectStencilBit
		}
		return vk.ImageAspectDepthBit
	}
	if hasStencil(format) {
		return vk.ImageAspectStencilBit
	}
	return vk.ImageAspectColorBit
}

// toVkImageType maps the texture type to the image dimensionality.
func toVkImageType(t TextureType) vk.ImageType {
	switch t {
	case TextureType1D, TextureType1DArray:
		return vk.ImageType1d
	case TextureType3D:
		return vk.ImageType3d
	default:
		return vk.ImageType2d
	}
}

// toVkImageViewType maps the texture type to the default view type.
func toVkImageViewType(t TextureType) vk.ImageViewType {
	switch t {
	case TextureType1D:
		return vk.ImageViewType1d
	case TextureType3D:
		return vk.ImageViewType3d
	case TextureType1DArray:
		return vk.ImageViewType1dArray
	case TextureType2DArray:
		return vk.ImageViewType2dArray
	case TextureTypeCubeArray:
		return vk.ImageViewTypeCubeArray
	default:
		return vk.ImageViewType2d
	}
}

// toVkLoadOp maps a render pass operation to the attachment load op.
func toVkLoadOp(op RenderPassOperation) vk.AttachmentLoadOp {
	switch op {
	case RenderPassOperationLoad:
		return vk.AttachmentLoadOpLoad
	case RenderPassOperationClear:
		return vk.AttachmentLoadOpClear
	default:
		return vk.AttachmentLoadOpDontCare
	}
}

// toVkPresentMode maps the requested mode; callers fall back to FIFO
// when the surface does not support it.
func toVkPresentMode(mode PresentMode) vk.PresentModeKHR {
	switch mode {
	case PresentModeImmediate:
		return vk.PresentModeImmediateKhr
	case PresentModeVSyncFast:
		return vk.PresentModeMailboxKhr
	case PresentModeVSyncRelaxed:
		return vk.PresentModeFifoRelaxedKhr
	default:
		return vk.PresentModeFifoKhr
	}
}

// toVkAccessFlags derives the access mask of a resource state.
func toVkAccessFlags(state ResourceState) vk.AccessFlags {
	var flags vk.AccessFlags
	if state&ResourceStateCopySource != 0 {
		flags |= vk.AccessTransferReadBit
	}
	if state&ResourceStateCopyDest != 0 {
		flags |= vk.AccessTransferWriteBit
	}
	if state&ResourceStateVertexAndConstantBuffer != 0 {
		flags |= vk.AccessUniformReadBit | vk.AccessVertexAttributeReadBit
	}
	if state&ResourceStateIndexBuffer != 0 {
		flags |= vk.AccessIndexReadBit
	}
	if state&ResourceStateUnorderedAccess != 0 {
		flags |= vk.AccessShaderReadBit | vk.AccessShaderWriteBit
	}
	if state&ResourceStateIndirectArgument != 0 {
		flags |= vk.AccessIndirectCommandReadBit
	}
	if state&ResourceStateRenderTarget != 0 {
		flags |= vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit
	}
	if state&ResourceStateDepthWrite != 0 {
		flags |= vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit
	}
	if state&ResourceStateDepthRead != 0 {
		flags |= vk.AccessDepthStencilAttachmentReadBit
	}
	if state&ResourceStateShaderResource != 0 {
		flags |= vk.AccessShaderReadBit
	}
	if state&ResourceStatePresent != 0 {
		flags |= vk.AccessMemoryReadBit
	}
	return flags
}

// toVkImageLayout derives the image layout of a resource state.
func toVkImageLayout(state ResourceState) vk.ImageLayout {
	switch {
	case state&ResourceStateCopySource != 0:
		return vk.ImageLayoutTransferSrcOptimal
	case state&ResourceStateCopyDest != 0:
		return vk.ImageLayoutTransferDstOptimal
	case state&ResourceStateRenderTarget != 0:
		return vk.ImageLayoutColorAttachmentOptimal
	case state&ResourceStateDepthWrite != 0:
		return vk.ImageLayoutDepthStencilAttachmentOptimal
	case state&ResourceStateDepthRead != 0:
		return vk.ImageLayoutDepthStencilReadOnlyOptimal
	case state&ResourceStateUnorderedAccess != 0:
		return vk.ImageLayoutGeneral
	case state&ResourceStateShaderResource != 0:
		return vk.ImageLayoutShaderReadOnlyOptimal
	case state&ResourceStatePresent != 0:
		return vk.ImageLayoutPresentSrcKhr
	default:
		return vk.ImageLayoutUndefined
	}
}

// toVkPipelineStage maps a barrier stage role to pipeline stage bits.
func toVkPipelineStage(stage BarrierStage) vk.PipelineStageFlags {
	switch stage {
	case BarrierStageDrawIndirect:
		return vk.PipelineStageDrawIndirectBit
	case BarrierStageVertexInput:
		return vk.PipelineStageVertexInputBit
	case BarrierStageVertexShader:
		return vk.PipelineStageVertexShaderBit
	case BarrierStageFragmentShader:
		return vk.PipelineStageFragmentShaderBit
	case BarrierStageRenderTarget:
		return vk.PipelineStageColorAttachmentOutputBit
	case BarrierStageComputeShader:
		return vk.PipelineStageComputeShaderBit
	case BarrierStageTransfer:
		return vk.PipelineStageTransferBit
	default:
		return vk.PipelineStageAllCommandsBit
	}
}

// stateForStage derives the resource state a texture holds when accessed
// at the given barrier stage role.
func stateForStage(stage BarrierStage, depthStencil bool) ResourceState {
	switch stage {
	case BarrierStageRenderTarget:
		if depthStencil {
			return ResourceStateDepthWrite
		}
		return ResourceStateRenderTarget
	case BarrierStageComputeShader:
		return ResourceStateUnorderedAccess
	case BarrierStageTransfer:
		return ResourceStateCopyDest
	case BarrierStageDrawIndirect:
		return ResourceStateIndirectArgument
	case BarrierStageVertexInput:
		return ResourceStateVertexAndConstantBuffer
	default:
		if depthStencil {
			return ResourceStateDepthRead
		}
		return ResourceStateShaderResource
	}
}

// stageFromState is the reverse table used by uploads and copies: the
// pipeline stages that must complete before a texture leaves state.
func stageFromState(state ResourceState, depthStencil bool) vk.PipelineStageFlags {
	switch {
	case state == ResourceStateUndefined:
		return vk.PipelineStageTopOfPipeBit
	case state&(ResourceStateCopyDest|ResourceStateCopySource) != 0:
		return vk.PipelineStageTransferBit
	case state&ResourceStateRenderTarget != 0:
		return vk.PipelineStageColorAttachmentOutputBit
	case state&(ResourceStateDepthWrite|ResourceStateDepthRead) != 0:
		return vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit
	case state&ResourceStateUnorderedAccess != 0:
		return vk.PipelineStageComputeShaderBit
	case state&ResourceStateShaderResource != 0:
		if depthStencil {
			return vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit
		}
		return vk.PipelineStageFragmentShaderBit
	case state&ResourceStatePresent != 0:
		return vk.PipelineStageBottomOfPipeBit
	default:
		return vk.PipelineStageAllCommandsBit
	}
}

// blockSize returns the byte size of one texel for the formats the
// upload helpers support.
func blockSize(format vk.Format) uint32 {
	switch format {
	case vk.FormatR8Unorm:
		return 1
	case vk.FormatR8G8Unorm:
		return 2
	case vk.FormatR8G8B8Unorm, vk.FormatR8G8B8Srgb, vk.FormatB8G8R8Unorm, vk.FormatB8G8R8Srgb:
		return 3
	case vk.FormatR8G8B8A8Unorm, vk.FormatR8G8B8A8Srgb, vk.FormatB8G8R8A8Unorm, vk.FormatB8G8R8A8Srgb,
		vk.FormatR32Sfloat, vk.FormatR32Uint, vk.FormatD32Sfloat, vk.FormatD24UnormS8Uint:
		return 4
	case vk.FormatR16G16B16A16Sfloat, vk.FormatR32G32Sfloat:
		return 8
	case vk.FormatR32G32B32Sfloat:
		return 12
	case vk.FormatR32G32B32A32Sfloat:
		return 16
	default:
		return 4
	}
}
