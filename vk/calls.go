// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Typed wrappers over the Commands dispatch table. Every wrapper builds the
// goffi argument array (pointers to where values are stored) on the stack
// and dispatches through a shared signature template. Wrappers for entry
// points that may be absent return ErrorExtensionNotPresent / no-op.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

func callResult(cif *types.CallInterface, fn unsafe.Pointer, args ...unsafe.Pointer) Result {
	if fn == nil {
		return ErrorExtensionNotPresent
	}
	var ret int32
	_ = ffi.CallFunction(cif, fn, unsafe.Pointer(&ret), args)
	return Result(ret)
}

func callVoid(cif *types.CallInterface, fn unsafe.Pointer, args ...unsafe.Pointer) {
	if fn == nil {
		return
	}
	_ = ffi.CallFunction(cif, fn, nil, args)
}

// === Instance ===

func (c *Commands) CreateInstance(info *InstanceCreateInfo, allocator *AllocationCallbacks, instance *Instance) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pInst := unsafe.Pointer(instance)
	return callResult(&sigResultPtrPtrPtr, c.createInstance,
		unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pInst))
}

func (c *Commands) DestroyInstance(instance Instance, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandlePtr, c.destroyInstance,
		unsafe.Pointer(&instance), unsafe.Pointer(&pAlloc))
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	pCount := unsafe.Pointer(count)
	pDevices := unsafe.Pointer(devices)
	return callResult(&sigResultHandlePtrPtr, c.enumeratePhysicalDevices,
		unsafe.Pointer(&instance), unsafe.Pointer(&pCount), unsafe.Pointer(&pDevices))
}

func (c *Commands) GetPhysicalDeviceProperties(physical PhysicalDevice, props *PhysicalDeviceProperties) {
	pProps := unsafe.Pointer(props)
	callVoid(&sigVoidHandlePtr, c.getPhysicalDeviceProperties,
		unsafe.Pointer(&physical), unsafe.Pointer(&pProps))
}

func (c *Commands) GetPhysicalDeviceFeatures2(physical PhysicalDevice, features *PhysicalDeviceFeatures2) {
	pFeatures := unsafe.Pointer(features)
	callVoid(&sigVoidHandlePtr, c.getPhysicalDeviceFeatures2,
		unsafe.Pointer(&physical), unsafe.Pointer(&pFeatures))
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(physical PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	pProps := unsafe.Pointer(props)
	callVoid(&sigVoidHandlePtr, c.getPhysicalDeviceMemoryProperties,
		unsafe.Pointer(&physical), unsafe.Pointer(&pProps))
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(physical PhysicalDevice, count *uint32, props *QueueFamilyProperties) {
	pCount := unsafe.Pointer(count)
	pProps := unsafe.Pointer(props)
	callVoid(&sigVoidHandlePtrPtr, c.getPhysicalDeviceQueueFamilyProperties,
		unsafe.Pointer(&physical), unsafe.Pointer(&pCount), unsafe.Pointer(&pProps))
}

func (c *Commands) EnumerateDeviceExtensionProperties(physical PhysicalDevice, count *uint32, props *ExtensionProperties) Result {
	var pLayer unsafe.Pointer // pLayerName is always nil
	pCount := unsafe.Pointer(count)
	pProps := unsafe.Pointer(props)
	return callResult(&sigResultEnumerateDeviceExts, c.enumerateDeviceExtensionProperties,
		unsafe.Pointer(&physical), unsafe.Pointer(&pLayer), unsafe.Pointer(&pCount), unsafe.Pointer(&pProps))
}

func (c *Commands) CreateDevice(physical PhysicalDevice, info *DeviceCreateInfo, allocator *AllocationCallbacks, device *Device) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pDevice := unsafe.Pointer(device)
	return callResult(&sigResultHandlePtrPtrPtr, c.createDevice,
		unsafe.Pointer(&physical), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pDevice))
}

// === Surface ===

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(physical PhysicalDevice, surface SurfaceKHR, caps *SurfaceCapabilitiesKHR) Result {
	pCaps := unsafe.Pointer(caps)
	return callResult(&sigResultHandleHandlePtr, c.getPhysicalDeviceSurfaceCapabilities,
		unsafe.Pointer(&physical), unsafe.Pointer(&surface), unsafe.Pointer(&pCaps))
}

func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR(physical PhysicalDevice, surface SurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result {
	pCount := unsafe.Pointer(count)
	pFormats := unsafe.Pointer(formats)
	return callResult(&sigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfaceFormats,
		unsafe.Pointer(&physical), unsafe.Pointer(&surface), unsafe.Pointer(&pCount), unsafe.Pointer(&pFormats))
}

func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(physical PhysicalDevice, surface SurfaceKHR, count *uint32, modes *PresentModeKHR) Result {
	pCount := unsafe.Pointer(count)
	pModes := unsafe.Pointer(modes)
	return callResult(&sigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfacePresentModes,
		unsafe.Pointer(&physical), unsafe.Pointer(&surface), unsafe.Pointer(&pCount), unsafe.Pointer(&pModes))
}

func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(physical PhysicalDevice, family uint32, surface SurfaceKHR, supported *Bool32) Result {
	pSupported := unsafe.Pointer(supported)
	return callResult(&sigResultHandleU32HandlePtr, c.getPhysicalDeviceSurfaceSupport,
		unsafe.Pointer(&physical), unsafe.Pointer(&family), unsafe.Pointer(&surface), unsafe.Pointer(&pSupported))
}

func (c *Commands) CreateXlibSurfaceKHR(instance Instance, info *XlibSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSurface := unsafe.Pointer(surface)
	return callResult(&sigResultHandlePtrPtrPtr, c.createXlibSurface,
		unsafe.Pointer(&instance), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSurface))
}

func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, info *WaylandSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSurface := unsafe.Pointer(surface)
	return callResult(&sigResultHandlePtrPtrPtr, c.createWaylandSurface,
		unsafe.Pointer(&instance), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSurface))
}

func (c *Commands) CreateWin32SurfaceKHR(instance Instance, info *Win32SurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSurface := unsafe.Pointer(surface)
	return callResult(&sigResultHandlePtrPtrPtr, c.createWin32Surface,
		unsafe.Pointer(&instance), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSurface))
}

func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroySurface,
		unsafe.Pointer(&instance), unsafe.Pointer(&surface), unsafe.Pointer(&pAlloc))
}

// === Debug utils ===

func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, info *DebugUtilsMessengerCreateInfoEXT, allocator *AllocationCallbacks, messenger *DebugUtilsMessengerEXT) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pMessenger := unsafe.Pointer(messenger)
	return callResult(&sigResultHandlePtrPtrPtr, c.createDebugUtilsMessenger,
		unsafe.Pointer(&instance), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pMessenger))
}

func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyDebugUtilsMessenger,
		unsafe.Pointer(&instance), unsafe.Pointer(&messenger), unsafe.Pointer(&pAlloc))
}

func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, info *DebugUtilsObjectNameInfoEXT) Result {
	pInfo := unsafe.Pointer(info)
	return callResult(&sigResultHandlePtr, c.setDebugUtilsObjectName,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo))
}

func (c *Commands) CmdBeginDebugUtilsLabelEXT(cb CommandBuffer, label *DebugUtilsLabelEXT) {
	pLabel := unsafe.Pointer(label)
	callVoid(&sigVoidHandlePtr, c.cmdBeginDebugUtilsLabel,
		unsafe.Pointer(&cb), unsafe.Pointer(&pLabel))
}

func (c *Commands) CmdEndDebugUtilsLabelEXT(cb CommandBuffer) {
	callVoid(&sigVoidHandle, c.cmdEndDebugUtilsLabel, unsafe.Pointer(&cb))
}

// === Device / queue ===

func (c *Commands) DestroyDevice(device Device, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandlePtr, c.destroyDevice,
		unsafe.Pointer(&device), unsafe.Pointer(&pAlloc))
}

func (c *Commands) GetDeviceQueue(device Device, family, index uint32, queue *Queue) {
	pQueue := unsafe.Pointer(queue)
	callVoid(&sigVoidHandleU32U32Ptr, c.getDeviceQueue,
		unsafe.Pointer(&device), unsafe.Pointer(&family), unsafe.Pointer(&index), unsafe.Pointer(&pQueue))
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	return callResult(&sigResultHandle, c.deviceWaitIdle, unsafe.Pointer(&device))
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	return callResult(&sigResultHandle, c.queueWaitIdle, unsafe.Pointer(&queue))
}

func (c *Commands) QueueSubmit(queue Queue, count uint32, submits *SubmitInfo, fence Fence) Result {
	pSubmits := unsafe.Pointer(submits)
	return callResult(&sigResultHandleU32PtrHandle, c.queueSubmit,
		unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&pSubmits), unsafe.Pointer(&fence))
}

func (c *Commands) QueuePresentKHR(queue Queue, info *PresentInfoKHR) Result {
	pInfo := unsafe.Pointer(info)
	return callResult(&sigResultHandlePtr, c.queuePresent,
		unsafe.Pointer(&queue), unsafe.Pointer(&pInfo))
}

// === Swapchain ===

func (c *Commands) CreateSwapchainKHR(device Device, info *SwapchainCreateInfoKHR, allocator *AllocationCallbacks, swapchain *SwapchainKHR) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSwapchain := unsafe.Pointer(swapchain)
	return callResult(&sigResultHandlePtrPtrPtr, c.createSwapchain,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSwapchain))
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroySwapchain,
		unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pAlloc))
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, images *Image) Result {
	pCount := unsafe.Pointer(count)
	pImages := unsafe.Pointer(images)
	return callResult(&sigResultHandleHandlePtrPtr, c.getSwapchainImages,
		unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pCount), unsafe.Pointer(&pImages))
}

func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, index *uint32) Result {
	pIndex := unsafe.Pointer(index)
	return callResult(&sigResultAcquireNextImage, c.acquireNextImage,
		unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&timeout),
		unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&pIndex))
}

// === Memory ===

func (c *Commands) AllocateMemory(device Device, info *MemoryAllocateInfo, allocator *AllocationCallbacks, memory *DeviceMemory) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pMemory := unsafe.Pointer(memory)
	return callResult(&sigResultHandlePtrPtrPtr, c.allocateMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pMemory))
}

func (c *Commands) FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.freeMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&pAlloc))
}

func (c *Commands) MapMemory(device Device, memory DeviceMemory, offset, size uint64, flags uint32, data *uintptr) Result {
	pData := unsafe.Pointer(data)
	return callResult(&sigResultMapMemory, c.mapMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&offset),
		unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&pData))
}

func (c *Commands) UnmapMemory(device Device, memory DeviceMemory) {
	callVoid(&sigVoidHandleHandle, c.unmapMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&memory))
}

func (c *Commands) FlushMappedMemoryRanges(device Device, count uint32, ranges *MappedMemoryRange) Result {
	pRanges := unsafe.Pointer(ranges)
	return callResult(&sigResultHandleU32Ptr, c.flushMappedMemoryRanges,
		unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pRanges))
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buffer Buffer, reqs *MemoryRequirements) {
	pReqs := unsafe.Pointer(reqs)
	callVoid(&sigVoidHandleHandlePtr, c.getBufferMemoryRequirements,
		unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&pReqs))
}

func (c *Commands) GetImageMemoryRequirements(device Device, image Image, reqs *MemoryRequirements) {
	pReqs := unsafe.Pointer(reqs)
	callVoid(&sigVoidHandleHandlePtr, c.getImageMemoryRequirements,
		unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&pReqs))
}

func (c *Commands) BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset uint64) Result {
	return callResult(&sigResultHandle3U64, c.bindBufferMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&memory), unsafe.Pointer(&offset))
}

func (c *Commands) BindImageMemory(device Device, image Image, memory DeviceMemory, offset uint64) Result {
	return callResult(&sigResultHandle3U64, c.bindImageMemory,
		unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&memory), unsafe.Pointer(&offset))
}

// === Resources ===

func (c *Commands) CreateBuffer(device Device, info *BufferCreateInfo, allocator *AllocationCallbacks, buffer *Buffer) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pBuffer := unsafe.Pointer(buffer)
	return callResult(&sigResultHandlePtrPtrPtr, c.createBuffer,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pBuffer))
}

func (c *Commands) DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyBuffer,
		unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateImage(device Device, info *ImageCreateInfo, allocator *AllocationCallbacks, image *Image) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pImage := unsafe.Pointer(image)
	return callResult(&sigResultHandlePtrPtrPtr, c.createImage,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pImage))
}

func (c *Commands) DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyImage,
		unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateImageView(device Device, info *ImageViewCreateInfo, allocator *AllocationCallbacks, view *ImageView) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pView := unsafe.Pointer(view)
	return callResult(&sigResultHandlePtrPtrPtr, c.createImageView,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pView))
}

func (c *Commands) DestroyImageView(device Device, view ImageView, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyImageView,
		unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateSampler(device Device, info *SamplerCreateInfo, allocator *AllocationCallbacks, sampler *Sampler) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSampler := unsafe.Pointer(sampler)
	return callResult(&sigResultHandlePtrPtrPtr, c.createSampler,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSampler))
}

func (c *Commands) DestroySampler(device Device, sampler Sampler, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroySampler,
		unsafe.Pointer(&device), unsafe.Pointer(&sampler), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateShaderModule(device Device, info *ShaderModuleCreateInfo, allocator *AllocationCallbacks, module *ShaderModule) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pModule := unsafe.Pointer(module)
	return callResult(&sigResultHandlePtrPtrPtr, c.createShaderModule,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pModule))
}

func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyShaderModule,
		unsafe.Pointer(&device), unsafe.Pointer(&module), unsafe.Pointer(&pAlloc))
}

// === Descriptors ===

func (c *Commands) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks, layout *DescriptorSetLayout) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pLayout := unsafe.Pointer(layout)
	return callResult(&sigResultHandlePtrPtrPtr, c.createDescriptorSetLayout,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pLayout))
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyDescriptorSetLayout,
		unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, allocator *AllocationCallbacks, pool *DescriptorPool) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pPool := unsafe.Pointer(pool)
	return callResult(&sigResultHandlePtrPtrPtr, c.createDescriptorPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pPool))
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyDescriptorPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAlloc))
}

func (c *Commands) ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result {
	return callResult(&sigResultHandleHandleU32, c.resetDescriptorPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags))
}

func (c *Commands) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	pInfo := unsafe.Pointer(info)
	pSets := unsafe.Pointer(sets)
	return callResult(&sigResultHandlePtrPtr, c.allocateDescriptorSets,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pSets))
}

func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	pSets := unsafe.Pointer(sets)
	return callResult(&sigResultHandleHandleU32Ptr, c.freeDescriptorSets,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&pSets))
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	pWrites := unsafe.Pointer(writes)
	pCopies := unsafe.Pointer(copies)
	callVoid(&sigVoidUpdateDescriptorSets, c.updateDescriptorSets,
		unsafe.Pointer(&device), unsafe.Pointer(&writeCount), unsafe.Pointer(&pWrites),
		unsafe.Pointer(&copyCount), unsafe.Pointer(&pCopies))
}

// === Pipelines ===

func (c *Commands) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, allocator *AllocationCallbacks, layout *PipelineLayout) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pLayout := unsafe.Pointer(layout)
	return callResult(&sigResultHandlePtrPtrPtr, c.createPipelineLayout,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pLayout))
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyPipelineLayout,
		unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, infos *GraphicsPipelineCreateInfo, allocator *AllocationCallbacks, pipelines *Pipeline) Result {
	pInfos := unsafe.Pointer(infos)
	pAlloc := unsafe.Pointer(allocator)
	pPipelines := unsafe.Pointer(pipelines)
	return callResult(&sigResultCreatePipelines, c.createGraphicsPipelines,
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&pInfos), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pPipelines))
}

func (c *Commands) CreateComputePipelines(device Device, cache PipelineCache, count uint32, infos *ComputePipelineCreateInfo, allocator *AllocationCallbacks, pipelines *Pipeline) Result {
	pInfos := unsafe.Pointer(infos)
	pAlloc := unsafe.Pointer(allocator)
	pPipelines := unsafe.Pointer(pipelines)
	return callResult(&sigResultCreatePipelines, c.createComputePipelines,
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&pInfos), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pPipelines))
}

func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyPipeline,
		unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreatePipelineCache(device Device, info *PipelineCacheCreateInfo, allocator *AllocationCallbacks, cache *PipelineCache) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pCache := unsafe.Pointer(cache)
	return callResult(&sigResultHandlePtrPtrPtr, c.createPipelineCache,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pCache))
}

func (c *Commands) DestroyPipelineCache(device Device, cache PipelineCache, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyPipelineCache,
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&pAlloc))
}

func (c *Commands) GetPipelineCacheData(device Device, cache PipelineCache, size *uintptr, data unsafe.Pointer) Result {
	pSize := unsafe.Pointer(size)
	return callResult(&sigResultHandleHandlePtrPtr, c.getPipelineCacheData,
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&pSize), unsafe.Pointer(&data))
}

// === Render passes / framebuffers ===

func (c *Commands) CreateRenderPass(device Device, info *RenderPassCreateInfo, allocator *AllocationCallbacks, renderPass *RenderPass) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pRenderPass := unsafe.Pointer(renderPass)
	return callResult(&sigResultHandlePtrPtrPtr, c.createRenderPass,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pRenderPass))
}

func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyRenderPass,
		unsafe.Pointer(&device), unsafe.Pointer(&renderPass), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateFramebuffer(device Device, info *FramebufferCreateInfo, allocator *AllocationCallbacks, framebuffer *Framebuffer) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pFramebuffer := unsafe.Pointer(framebuffer)
	return callResult(&sigResultHandlePtrPtrPtr, c.createFramebuffer,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pFramebuffer))
}

func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyFramebuffer,
		unsafe.Pointer(&device), unsafe.Pointer(&framebuffer), unsafe.Pointer(&pAlloc))
}

// === Command pools / buffers ===

func (c *Commands) CreateCommandPool(device Device, info *CommandPoolCreateInfo, allocator *AllocationCallbacks, pool *CommandPool) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pPool := unsafe.Pointer(pool)
	return callResult(&sigResultHandlePtrPtrPtr, c.createCommandPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pPool))
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyCommandPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAlloc))
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags CommandPoolResetFlags) Result {
	return callResult(&sigResultHandleHandleU32, c.resetCommandPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags))
}

func (c *Commands) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, buffers *CommandBuffer) Result {
	pInfo := unsafe.Pointer(info)
	pBuffers := unsafe.Pointer(buffers)
	return callResult(&sigResultHandlePtrPtr, c.allocateCommandBuffers,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pBuffers))
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, buffers *CommandBuffer) {
	pBuffers := unsafe.Pointer(buffers)
	callVoid(&sigVoidHandleHandleU32Ptr, c.freeCommandBuffers,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&pBuffers))
}

func (c *Commands) BeginCommandBuffer(cb CommandBuffer, info *CommandBufferBeginInfo) Result {
	pInfo := unsafe.Pointer(info)
	return callResult(&sigResultHandlePtr, c.beginCommandBuffer,
		unsafe.Pointer(&cb), unsafe.Pointer(&pInfo))
}

func (c *Commands) EndCommandBuffer(cb CommandBuffer) Result {
	return callResult(&sigResultHandle, c.endCommandBuffer, unsafe.Pointer(&cb))
}

// === Synchronization ===

func (c *Commands) CreateSemaphore(device Device, info *SemaphoreCreateInfo, allocator *AllocationCallbacks, semaphore *Semaphore) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pSemaphore := unsafe.Pointer(semaphore)
	return callResult(&sigResultHandlePtrPtrPtr, c.createSemaphore,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pSemaphore))
}

func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroySemaphore,
		unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&pAlloc))
}

func (c *Commands) CreateFence(device Device, info *FenceCreateInfo, allocator *AllocationCallbacks, fence *Fence) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pFence := unsafe.Pointer(fence)
	return callResult(&sigResultHandlePtrPtrPtr, c.createFence,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pFence))
}

func (c *Commands) DestroyFence(device Device, fence Fence, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyFence,
		unsafe.Pointer(&device), unsafe.Pointer(&fence), unsafe.Pointer(&pAlloc))
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	pFences := unsafe.Pointer(fences)
	return callResult(&sigResultWaitForFences, c.waitForFences,
		unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pFences),
		unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout))
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	pFences := unsafe.Pointer(fences)
	return callResult(&sigResultHandleU32Ptr, c.resetFences,
		unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pFences))
}

func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	return callResult(&sigResultHandleHandle, c.getFenceStatus,
		unsafe.Pointer(&device), unsafe.Pointer(&fence))
}

func (c *Commands) WaitSemaphores(device Device, info *SemaphoreWaitInfoKHR, timeout uint64) Result {
	pInfo := unsafe.Pointer(info)
	return callResult(&sigResultHandlePtrU64, c.waitSemaphores,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&timeout))
}

func (c *Commands) GetSemaphoreCounterValue(device Device, semaphore Semaphore, value *uint64) Result {
	pValue := unsafe.Pointer(value)
	return callResult(&sigResultHandleHandlePtr, c.getSemaphoreCounterValue,
		unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&pValue))
}

// === Queries ===

func (c *Commands) CreateQueryPool(device Device, info *QueryPoolCreateInfo, allocator *AllocationCallbacks, pool *QueryPool) Result {
	pInfo := unsafe.Pointer(info)
	pAlloc := unsafe.Pointer(allocator)
	pPool := unsafe.Pointer(pool)
	return callResult(&sigResultHandlePtrPtrPtr, c.createQueryPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pInfo), unsafe.Pointer(&pAlloc), unsafe.Pointer(&pPool))
}

func (c *Commands) DestroyQueryPool(device Device, pool QueryPool, allocator *AllocationCallbacks) {
	pAlloc := unsafe.Pointer(allocator)
	callVoid(&sigVoidHandleHandlePtr, c.destroyQueryPool,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAlloc))
}

func (c *Commands) GetQueryPoolResults(device Device, pool QueryPool, firstQuery, queryCount uint32, dataSize uint64, data unsafe.Pointer, stride uint64, flags QueryResultFlags) Result {
	return callResult(&sigResultQueryPoolResults, c.getQueryPoolResults,
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&firstQuery),
		unsafe.Pointer(&queryCount), unsafe.Pointer(&dataSize), unsafe.Pointer(&data),
		unsafe.Pointer(&stride), unsafe.Pointer(&flags))
}

// === Command recording ===

func (c *Commands) CmdBeginRenderPass(cb CommandBuffer, info *RenderPassBeginInfo, contents SubpassContents) {
	pInfo := unsafe.Pointer(info)
	callVoid(&sigVoidHandlePtrU32, c.cmdBeginRenderPass,
		unsafe.Pointer(&cb), unsafe.Pointer(&pInfo), unsafe.Pointer(&contents))
}

func (c *Commands) CmdEndRenderPass(cb CommandBuffer) {
	callVoid(&sigVoidHandle, c.cmdEndRenderPass, unsafe.Pointer(&cb))
}

func (c *Commands) CmdBeginRendering(cb CommandBuffer, info *RenderingInfoKHR) {
	pInfo := unsafe.Pointer(info)
	callVoid(&sigVoidHandlePtr, c.cmdBeginRendering,
		unsafe.Pointer(&cb), unsafe.Pointer(&pInfo))
}

func (c *Commands) CmdEndRendering(cb CommandBuffer) {
	callVoid(&sigVoidHandle, c.cmdEndRendering, unsafe.Pointer(&cb))
}

func (c *Commands) CmdBindPipeline(cb CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	callVoid(&sigVoidHandleU32Handle, c.cmdBindPipeline,
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline))
}

func (c *Commands) CmdBindVertexBuffers(cb CommandBuffer, firstBinding, bindingCount uint32, buffers *Buffer, offsets *DeviceSize) {
	pBuffers := unsafe.Pointer(buffers)
	pOffsets := unsafe.Pointer(offsets)
	callVoid(&sigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers,
		unsafe.Pointer(&cb), unsafe.Pointer(&firstBinding), unsafe.Pointer(&bindingCount),
		unsafe.Pointer(&pBuffers), unsafe.Pointer(&pOffsets))
}

func (c *Commands) CmdBindIndexBuffer(cb CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType) {
	callVoid(&sigVoidHandleHandleU64U32, c.cmdBindIndexBuffer,
		unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&indexType))
}

func (c *Commands) CmdBindDescriptorSets(cb CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet, setCount uint32, sets *DescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32) {
	pSets := unsafe.Pointer(sets)
	pOffsets := unsafe.Pointer(dynamicOffsets)
	callVoid(&sigVoidBindDescriptorSets, c.cmdBindDescriptorSets,
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&setCount), unsafe.Pointer(&pSets),
		unsafe.Pointer(&dynamicOffsetCount), unsafe.Pointer(&pOffsets))
}

func (c *Commands) CmdSetViewport(cb CommandBuffer, first, count uint32, viewports *Viewport) {
	pViewports := unsafe.Pointer(viewports)
	callVoid(&sigVoidHandleU32U32Ptr, c.cmdSetViewport,
		unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&pViewports))
}

func (c *Commands) CmdSetScissor(cb CommandBuffer, first, count uint32, scissors *Rect2D) {
	pScissors := unsafe.Pointer(scissors)
	callVoid(&sigVoidHandleU32U32Ptr, c.cmdSetScissor,
		unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&pScissors))
}

func (c *Commands) CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	callVoid(&sigVoidHandleU32x4, c.cmdDraw,
		unsafe.Pointer(&cb), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance))
}

func (c *Commands) CmdDrawIndexed(cb CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	callVoid(&sigVoidHandleU32x3I32U32, c.cmdDrawIndexed,
		unsafe.Pointer(&cb), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance))
}

func (c *Commands) CmdDrawIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	callVoid(&sigVoidHandleHandleU64U32U32, c.cmdDrawIndirect,
		unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset),
		unsafe.Pointer(&drawCount), unsafe.Pointer(&stride))
}

func (c *Commands) CmdDrawIndexedIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	callVoid(&sigVoidHandleHandleU64U32U32, c.cmdDrawIndexedIndirect,
		unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset),
		unsafe.Pointer(&drawCount), unsafe.Pointer(&stride))
}

func (c *Commands) CmdDispatch(cb CommandBuffer, x, y, z uint32) {
	callVoid(&sigVoidHandleU32x3, c.cmdDispatch,
		unsafe.Pointer(&cb), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

func (c *Commands) CmdDispatchIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize) {
	callVoid(&sigVoidHandleHandleU64, c.cmdDispatchIndirect,
		unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset))
}

func (c *Commands) CmdPipelineBarrier(cb CommandBuffer, srcStageMask, dstStageMask PipelineStageFlags, dependencyFlags DependencyFlags,
	memoryBarrierCount uint32, memoryBarriers *MemoryBarrier,
	bufferBarrierCount uint32, bufferBarriers *BufferMemoryBarrier,
	imageBarrierCount uint32, imageBarriers *ImageMemoryBarrier) {
	pMemory := unsafe.Pointer(memoryBarriers)
	pBuffer := unsafe.Pointer(bufferBarriers)
	pImage := unsafe.Pointer(imageBarriers)
	callVoid(&sigVoidPipelineBarrier, c.cmdPipelineBarrier,
		unsafe.Pointer(&cb), unsafe.Pointer(&srcStageMask), unsafe.Pointer(&dstStageMask),
		unsafe.Pointer(&dependencyFlags),
		unsafe.Pointer(&memoryBarrierCount), unsafe.Pointer(&pMemory),
		unsafe.Pointer(&bufferBarrierCount), unsafe.Pointer(&pBuffer),
		unsafe.Pointer(&imageBarrierCount), unsafe.Pointer(&pImage))
}

func (c *Commands) CmdCopyBuffer(cb CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	pRegions := unsafe.Pointer(regions)
	callVoid(&sigVoidCopyBuffer, c.cmdCopyBuffer,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst),
		unsafe.Pointer(&regionCount), unsafe.Pointer(&pRegions))
}

func (c *Commands) CmdCopyBufferToImage(cb CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy) {
	pRegions := unsafe.Pointer(regions)
	callVoid(&sigVoidCopyBufferToImage, c.cmdCopyBufferToImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&pRegions))
}

func (c *Commands) CmdCopyImage(cb CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy) {
	pRegions := unsafe.Pointer(regions)
	callVoid(&sigVoidCopyImage, c.cmdCopyImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount), unsafe.Pointer(&pRegions))
}

func (c *Commands) CmdBlitImage(cb CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageBlit, filter Filter) {
	pRegions := unsafe.Pointer(regions)
	callVoid(&sigVoidBlitImage, c.cmdBlitImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount), unsafe.Pointer(&pRegions), unsafe.Pointer(&filter))
}

func (c *Commands) CmdWriteTimestamp(cb CommandBuffer, stage PipelineStageFlags, pool QueryPool, query uint32) {
	callVoid(&sigVoidHandleU32HandleU32, c.cmdWriteTimestamp,
		unsafe.Pointer(&cb), unsafe.Pointer(&stage), unsafe.Pointer(&pool), unsafe.Pointer(&query))
}

func (c *Commands) CmdBeginQuery(cb CommandBuffer, pool QueryPool, query, flags uint32) {
	callVoid(&sigVoidHandleHandleU32U32, c.cmdBeginQuery,
		unsafe.Pointer(&cb), unsafe.Pointer(&pool), unsafe.Pointer(&query), unsafe.Pointer(&flags))
}

func (c *Commands) CmdEndQuery(cb CommandBuffer, pool QueryPool, query uint32) {
	callVoid(&sigVoidHandleHandleU32, c.cmdEndQuery,
		unsafe.Pointer(&cb), unsafe.Pointer(&pool), unsafe.Pointer(&query))
}

func (c *Commands) CmdResetQueryPool(cb CommandBuffer, pool QueryPool, firstQuery, queryCount uint32) {
	callVoid(&sigVoidHandleHandleU32U32, c.cmdResetQueryPool,
		unsafe.Pointer(&cb), unsafe.Pointer(&pool), unsafe.Pointer(&firstQuery), unsafe.Pointer(&queryCount))
}

func (c *Commands) CmdExecuteCommands(cb CommandBuffer, count uint32, buffers *CommandBuffer) {
	pBuffers := unsafe.Pointer(buffers)
	callVoid(&sigVoidHandleU32Ptr, c.cmdExecuteCommands,
		unsafe.Pointer(&cb), unsafe.Pointer(&count), unsafe.Pointer(&pBuffers))
}

func (c *Commands) CmdPushConstants(cb CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset, size uint32, data unsafe.Pointer) {
	callVoid(&sigVoidPushConstants, c.cmdPushConstants,
		unsafe.Pointer(&cb), unsafe.Pointer(&layout), unsafe.Pointer(&stages),
		unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&data))
}
