// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// CallInterface signatures shared across Vulkan entry points. Vulkan has
// hundreds of functions but only a few dozen unique signatures; each
// template below is reused by every function with that shape. Handles are
// passed as u64 (dispatchable handles are pointers, non-dispatchable are
// 64-bit integers - both are 8 bytes on every supported target).

package vk

import (
	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	// === VkResult-returning signatures ===

	sigResultPtrPtrPtr           types.CallInterface // vkCreateInstance
	sigResultHandle              types.CallInterface // vkDeviceWaitIdle, vkEndCommandBuffer
	sigResultHandlePtr           types.CallInterface // vkBeginCommandBuffer, vkQueuePresentKHR
	sigResultHandlePtrPtr        types.CallInterface // vkAllocateCommandBuffers, vkAllocateDescriptorSets
	sigResultHandlePtrPtrPtr     types.CallInterface // vkCreateBuffer, vkCreateDevice, vkCreate*
	sigResultHandleHandle        types.CallInterface // vkGetFenceStatus
	sigResultHandleHandlePtr     types.CallInterface // vkGetPhysicalDeviceSurfaceCapabilitiesKHR
	sigResultHandleHandlePtrPtr  types.CallInterface // vkGetSwapchainImagesKHR, vkGetPipelineCacheData
	sigResultHandleHandleU32     types.CallInterface // vkResetCommandPool, vkResetDescriptorPool
	sigResultHandleHandleU32Ptr  types.CallInterface // vkFreeDescriptorSets
	sigResultHandleHandleU64     types.CallInterface // (unused spare kept for symmetry)
	sigResultHandle3U64          types.CallInterface // vkBindBufferMemory, vkBindImageMemory
	sigResultHandleU32Ptr        types.CallInterface // vkResetFences, vkFlushMappedMemoryRanges
	sigResultHandleU32PtrHandle  types.CallInterface // vkQueueSubmit
	sigResultHandleU32HandlePtr  types.CallInterface // vkGetPhysicalDeviceSurfaceSupportKHR
	sigResultHandlePtrU64        types.CallInterface // vkWaitSemaphores
	sigResultWaitForFences       types.CallInterface // vkWaitForFences
	sigResultMapMemory           types.CallInterface // vkMapMemory
	sigResultAcquireNextImage    types.CallInterface // vkAcquireNextImageKHR
	sigResultCreatePipelines     types.CallInterface // vkCreateGraphicsPipelines, vkCreateComputePipelines
	sigResultQueryPoolResults    types.CallInterface // vkGetQueryPoolResults
	sigResultEnumerateDeviceExts types.CallInterface // vkEnumerateDeviceExtensionProperties

	// === void-returning signatures ===

	sigVoidHandle             types.CallInterface // vkCmdEndRenderPass, vkCmdEndRenderingKHR
	sigVoidHandlePtr          types.CallInterface // vkDestroyInstance, vkGetPhysicalDeviceProperties
	sigVoidHandlePtrPtr       types.CallInterface // vkGetPhysicalDeviceQueueFamilyProperties
	sigVoidHandlePtrU32       types.CallInterface // vkCmdBeginRenderPass
	sigVoidHandleHandle       types.CallInterface // vkUnmapMemory
	sigVoidHandleHandlePtr    types.CallInterface // vkDestroyBuffer, vkDestroy*
	sigVoidHandleHandleU32    types.CallInterface // vkCmdEndQuery
	sigVoidHandleHandleU32U32 types.CallInterface // vkCmdBeginQuery, vkCmdResetQueryPool
	sigVoidHandleHandleU32Ptr types.CallInterface // vkFreeCommandBuffers
	sigVoidHandleHandleU64    types.CallInterface // vkCmdDispatchIndirect
	sigVoidHandleHandleU64U32 types.CallInterface // vkCmdBindIndexBuffer
	sigVoidHandleHandleU64U32U32 types.CallInterface // vkCmdDrawIndirect, vkCmdDrawIndexedIndirect
	sigVoidHandleU32Handle    types.CallInterface // vkCmdBindPipeline
	sigVoidHandleU32HandleU32 types.CallInterface // vkCmdWriteTimestamp
	sigVoidHandleU32Ptr       types.CallInterface // vkCmdExecuteCommands
	sigVoidHandleU32U32Ptr    types.CallInterface // vkCmdSetViewport, vkCmdSetScissor, vkGetDeviceQueue
	sigVoidHandleU32U32PtrPtr types.CallInterface // vkCmdBindVertexBuffers
	sigVoidHandleU32x3        types.CallInterface // vkCmdDispatch
	sigVoidHandleU32x4        types.CallInterface // vkCmdDraw
	sigVoidHandleU32x3I32U32  types.CallInterface // vkCmdDrawIndexed
	sigVoidUpdateDescriptorSets types.CallInterface // vkUpdateDescriptorSets
	sigVoidBindDescriptorSets types.CallInterface // vkCmdBindDescriptorSets
	sigVoidPipelineBarrier    types.CallInterface // vkCmdPipelineBarrier
	sigVoidCopyBuffer         types.CallInterface // vkCmdCopyBuffer
	sigVoidCopyBufferToImage  types.CallInterface // vkCmdCopyBufferToImage
	sigVoidCopyImage          types.CallInterface // vkCmdCopyImage
	sigVoidBlitImage          types.CallInterface // vkCmdBlitImage
	sigVoidPushConstants      types.CallInterface // vkCmdPushConstants
)

// initSignatures prepares every CallInterface template. Called once from
// Init after the library loads.
func initSignatures() error {
	ptr := types.PointerTypeDescriptor
	u32 := types.UInt32TypeDescriptor
	u64 := types.UInt64TypeDescriptor
	i32 := types.SInt32TypeDescriptor
	voidRet := types.VoidTypeDescriptor
	resultRet := types.SInt32TypeDescriptor // VkResult is int32

	sigs := []struct {
		cif  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}{
		{&sigResultPtrPtrPtr, resultRet, []*types.TypeDescriptor{ptr, ptr, ptr}},
		{&sigResultHandle, resultRet, []*types.TypeDescriptor{u64}},
		{&sigResultHandlePtr, resultRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigResultHandlePtrPtr, resultRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigResultHandlePtrPtrPtr, resultRet, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&sigResultHandleHandle, resultRet, []*types.TypeDescriptor{u64, u64}},
		{&sigResultHandleHandlePtr, resultRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigResultHandleHandlePtrPtr, resultRet, []*types.TypeDescriptor{u64, u64, ptr, ptr}},
		{&sigResultHandleHandleU32, resultRet, []*types.TypeDescriptor{u64, u64, u32}},
		{&sigResultHandleHandleU32Ptr, resultRet, []*types.TypeDescriptor{u64, u64, u32, ptr}},
		{&sigResultHandleHandleU64, resultRet, []*types.TypeDescriptor{u64, u64, u64}},
		{&sigResultHandle3U64, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64}},
		{&sigResultHandleU32Ptr, resultRet, []*types.TypeDescriptor{u64, u32, ptr}},
		{&sigResultHandleU32PtrHandle, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u64}},
		{&sigResultHandleU32HandlePtr, resultRet, []*types.TypeDescriptor{u64, u32, u64, ptr}},
		{&sigResultHandlePtrU64, resultRet, []*types.TypeDescriptor{u64, ptr, u64}},
		{&sigResultWaitForFences, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u32, u64}},
		{&sigResultMapMemory, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u32, ptr}},
		{&sigResultAcquireNextImage, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u64, ptr}},
		{&sigResultCreatePipelines, resultRet, []*types.TypeDescriptor{u64, u64, u32, ptr, ptr, ptr}},
		{&sigResultQueryPoolResults, resultRet, []*types.TypeDescriptor{u64, u64, u32, u32, u64, ptr, u64, u32}},
		{&sigResultEnumerateDeviceExts, resultRet, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},

		{&sigVoidHandle, voidRet, []*types.TypeDescriptor{u64}},
		{&sigVoidHandlePtr, voidRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigVoidHandlePtrPtr, voidRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigVoidHandlePtrU32, voidRet, []*types.TypeDescriptor{u64, ptr, u32}},
		{&sigVoidHandleHandle, voidRet, []*types.TypeDescriptor{u64, u64}},
		{&sigVoidHandleHandlePtr, voidRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigVoidHandleHandleU32, voidRet, []*types.TypeDescriptor{u64, u64, u32}},
		{&sigVoidHandleHandleU32U32, voidRet, []*types.TypeDescriptor{u64, u64, u32, u32}},
		{&sigVoidHandleHandleU32Ptr, voidRet, []*types.TypeDescriptor{u64, u64, u32, ptr}},
		{&sigVoidHandleHandleU64, voidRet, []*types.TypeDescriptor{u64, u64, u64}},
		{&sigVoidHandleHandleU64U32, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32}},
		{&sigVoidHandleHandleU64U32U32, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, u32}},
		{&sigVoidHandleU32Handle, voidRet, []*types.TypeDescriptor{u64, u32, u64}},
		{&sigVoidHandleU32HandleU32, voidRet, []*types.TypeDescriptor{u64, u32, u64, u32}},
		{&sigVoidHandleU32Ptr, voidRet, []*types.TypeDescriptor{u64, u32, ptr}},
		{&sigVoidHandleU32U32Ptr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr}},
		{&sigVoidHandleU32U32PtrPtr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr, ptr}},
		{&sigVoidHandleU32x3, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32}},
		{&sigVoidHandleU32x4, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32}},
		{&sigVoidHandleU32x3I32U32, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, i32, u32}},
		{&sigVoidUpdateDescriptorSets, voidRet, []*types.TypeDescriptor{u64, u32, ptr, u32, ptr}},
		{&sigVoidBindDescriptorSets, voidRet, []*types.TypeDescriptor{u64, u32, u64, u32, u32, ptr, u32, ptr}},
		{&sigVoidPipelineBarrier, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32, ptr, u32, ptr, u32, ptr}},
		{&sigVoidCopyBuffer, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, ptr}},
		{&sigVoidCopyBufferToImage, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, u32, ptr}},
		{&sigVoidCopyImage, voidRet, []*types.TypeDescriptor{u64, u64, u32, u64, u32, u32, ptr}},
		{&sigVoidBlitImage, voidRet, []*types.TypeDescriptor{u64, u64, u32, u64, u32, u32, ptr, u32}},
		{&sigVoidPushConstants, voidRet, []*types.TypeDescriptor{u64, u64, u32, u32, u32, ptr}},
	}

	for i := range sigs {
		if err := ffi.PrepareCallInterface(sigs[i].cif, types.DefaultCall, sigs[i].ret, sigs[i].args); err != nil {
			return err
		}
	}
	return nil
}
