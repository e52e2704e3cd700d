// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"
)

// Commands is the loaded Vulkan dispatch table.
//
// Function pointers are resolved in three stages:
//
//  1. LoadGlobal - functions callable without an instance (vkCreateInstance,
//     vkEnumerateInstance*).
//  2. LoadInstance(instance) - instance-level functions, surface creation
//     and debug utils. Also calls SetDeviceProcAddr(instance) for drivers
//     that do not resolve vkGetDeviceProcAddr with a null instance.
//  3. LoadDevice(device) - everything dispatched on the device or its
//     children. Extension entry points resolve to nil when the extension is
//     absent; the Has* accessors report availability.
type Commands struct {
	// Global.
	createInstance                       unsafe.Pointer
	enumerateInstanceExtensionProperties unsafe.Pointer
	enumerateInstanceLayerProperties     unsafe.Pointer

	// Instance level.
	destroyInstance                        unsafe.Pointer
	enumeratePhysicalDevices               unsafe.Pointer
	getPhysicalDeviceProperties            unsafe.Pointer
	getPhysicalDeviceFeatures2             unsafe.Pointer
	getPhysicalDeviceMemoryProperties      unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties unsafe.Pointer
	enumerateDeviceExtensionProperties     unsafe.Pointer
	createDevice                           unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilities   unsafe.Pointer
	getPhysicalDeviceSurfaceFormats        unsafe.Pointer
	getPhysicalDeviceSurfacePresentModes   unsafe.Pointer
	getPhysicalDeviceSurfaceSupport        unsafe.Pointer
	createXlibSurface                      unsafe.Pointer
	createWaylandSurface                   unsafe.Pointer
	createWin32Surface                     unsafe.Pointer
	destroySurface                         unsafe.Pointer
	createDebugUtilsMessenger              unsafe.Pointer
	destroyDebugUtilsMessenger             unsafe.Pointer
	setDebugUtilsObjectName                unsafe.Pointer
	cmdBeginDebugUtilsLabel                unsafe.Pointer
	cmdEndDebugUtilsLabel                  unsafe.Pointer

	// Device level.
	destroyDevice               unsafe.Pointer
	getDeviceQueue              unsafe.Pointer
	deviceWaitIdle              unsafe.Pointer
	queueWaitIdle               unsafe.Pointer
	queueSubmit                 unsafe.Pointer
	queuePresent                unsafe.Pointer
	createSwapchain             unsafe.Pointer
	destroySwapchain            unsafe.Pointer
	getSwapchainImages          unsafe.Pointer
	acquireNextImage            unsafe.Pointer
	allocateMemory              unsafe.Pointer
	freeMemory                  unsafe.Pointer
	mapMemory                   unsafe.Pointer
	unmapMemory                 unsafe.Pointer
	flushMappedMemoryRanges     unsafe.Pointer
	getBufferMemoryRequirements unsafe.Pointer
	getImageMemoryRequirements  unsafe.Pointer
	bindBufferMemory            unsafe.Pointer
	bindImageMemory             unsafe.Pointer
	createBuffer                unsafe.Pointer
	destroyBuffer               unsafe.Pointer
	createImage                 unsafe.Pointer
	destroyImage                unsafe.Pointer
	createImageView             unsafe.Pointer
	destroyImageView            unsafe.Pointer
	createSampler               unsafe.Pointer
	destroySampler              unsafe.Pointer
	createShaderModule          unsafe.Pointer
	destroyShaderModule         unsafe.Pointer
	createDescriptorSetLayout   unsafe.Pointer
	destroyDescriptorSetLayout  unsafe.Pointer
	createDescriptorPool        unsafe.Pointer
	destroyDescriptorPool       unsafe.Pointer
	resetDescriptorPool         unsafe.Pointer
	allocateDescriptorSets      unsafe.Pointer
	freeDescriptorSets          unsafe.Pointer
	updateDescriptorSets        unsafe.Pointer
	createPipelineLayout        unsafe.Pointer
	destroyPipelineLayout       unsafe.Pointer
	createGraphicsPipelines     unsafe.Pointer
	createComputePipelines      unsafe.Pointer
	destroyPipeline             unsafe.Pointer
	createPipelineCache         unsafe.Pointer
	destroyPipelineCache        unsafe.Pointer
	getPipelineCacheData        unsafe.Pointer
	createRenderPass            unsafe.Pointer
	destroyRenderPass           unsafe.Pointer
	createFramebuffer           unsafe.Pointer
	destroyFramebuffer          unsafe.Pointer
	createCommandPool           unsafe.Pointer
	destroyCommandPool          unsafe.Pointer
	resetCommandPool            unsafe.Pointer
	allocateCommandBuffers      unsafe.Pointer
	freeCommandBuffers          unsafe.Pointer
	beginCommandBuffer          unsafe.Pointer
	endCommandBuffer            unsafe.Pointer
	createSemaphore             unsafe.Pointer
	destroySemaphore            unsafe.Pointer
	createFence                 unsafe.Pointer
	destroyFence                unsafe.Pointer
	waitForFences               unsafe.Pointer
	resetFences                 unsafe.Pointer
	getFenceStatus              unsafe.Pointer
	waitSemaphores              unsafe.Pointer
	getSemaphoreCounterValue    unsafe.Pointer
	createQueryPool             unsafe.Pointer
	destroyQueryPool            unsafe.Pointer
	getQueryPoolResults         unsafe.Pointer

	// Command recording.
	cmdBeginRenderPass     unsafe.Pointer
	cmdEndRenderPass       unsafe.Pointer
	cmdBeginRendering      unsafe.Pointer
	cmdEndRendering        unsafe.Pointer
	cmdBindPipeline        unsafe.Pointer
	cmdBindVertexBuffers   unsafe.Pointer
	cmdBindIndexBuffer     unsafe.Pointer
	cmdBindDescriptorSets  unsafe.Pointer
	cmdSetViewport         unsafe.Pointer
	cmdSetScissor          unsafe.Pointer
	cmdDraw                unsafe.Pointer
	cmdDrawIndexed         unsafe.Pointer
	cmdDrawIndirect        unsafe.Pointer
	cmdDrawIndexedIndirect unsafe.Pointer
	cmdDispatch            unsafe.Pointer
	cmdDispatchIndirect    unsafe.Pointer
	cmdPipelineBarrier     unsafe.Pointer
	cmdCopyBuffer          unsafe.Pointer
	cmdCopyBufferToImage   unsafe.Pointer
	cmdCopyImage           unsafe.Pointer
	cmdBlitImage           unsafe.Pointer
	cmdWriteTimestamp      unsafe.Pointer
	cmdBeginQuery          unsafe.Pointer
	cmdEndQuery            unsafe.Pointer
	cmdResetQueryPool      unsafe.Pointer
	cmdExecuteCommands     unsafe.Pointer
	cmdPushConstants       unsafe.Pointer
}

// NewCommands returns an empty dispatch table. Function pointers must be
// loaded via LoadGlobal/LoadInstance/LoadDevice before use.
func NewCommands() *Commands {
	return &Commands{}
}

// LoadGlobal loads the pre-instance function pointers.
func (c *Commands) LoadGlobal() error {
	c.createInstance = GetInstanceProcAddr(0, "vkCreateInstance")
	if c.createInstance == nil {
		return fmt.Errorf("failed to load vkCreateInstance")
	}
	c.enumerateInstanceExtensionProperties = GetInstanceProcAddr(0, "vkEnumerateInstanceExtensionProperties")
	c.enumerateInstanceLayerProperties = GetInstanceProcAddr(0, "vkEnumerateInstanceLayerProperties")
	return nil
}

// LoadInstance loads instance-level function pointers. Must be called after
// vkCreateInstance succeeds.
func (c *Commands) LoadInstance(instance Instance) error {
	if instance == 0 {
		return fmt.Errorf("invalid instance handle")
	}
	SetDeviceProcAddr(instance)

	load := func(name string) unsafe.Pointer { return GetInstanceProcAddr(instance, name) }

	c.destroyInstance = load("vkDestroyInstance")
	c.enumeratePhysicalDevices = load("vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceProperties = load("vkGetPhysicalDeviceProperties")
	c.getPhysicalDeviceFeatures2 = load("vkGetPhysicalDeviceFeatures2")
	if c.getPhysicalDeviceFeatures2 == nil {
		c.getPhysicalDeviceFeatures2 = load("vkGetPhysicalDeviceFeatures2KHR")
	}
	c.getPhysicalDeviceMemoryProperties = load("vkGetPhysicalDeviceMemoryProperties")
	c.getPhysicalDeviceQueueFamilyProperties = load("vkGetPhysicalDeviceQueueFamilyProperties")
	c.enumerateDeviceExtensionProperties = load("vkEnumerateDeviceExtensionProperties")
	c.createDevice = load("vkCreateDevice")
	c.getPhysicalDeviceSurfaceCapabilities = load("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	c.getPhysicalDeviceSurfaceFormats = load("vkGetPhysicalDeviceSurfaceFormatsKHR")
	c.getPhysicalDeviceSurfacePresentModes = load("vkGetPhysicalDeviceSurfacePresentModesKHR")
	c.getPhysicalDeviceSurfaceSupport = load("vkGetPhysicalDeviceSurfaceSupportKHR")
	c.createXlibSurface = load("vkCreateXlibSurfaceKHR")
	c.createWaylandSurface = load("vkCreateWaylandSurfaceKHR")
	c.createWin32Surface = load("vkCreateWin32SurfaceKHR")
	c.destroySurface = load("vkDestroySurfaceKHR")
	c.createDebugUtilsMessenger = load("vkCreateDebugUtilsMessengerEXT")
	c.destroyDebugUtilsMessenger = load("vkDestroyDebugUtilsMessengerEXT")
	c.setDebugUtilsObjectName = load("vkSetDebugUtilsObjectNameEXT")
	c.cmdBeginDebugUtilsLabel = load("vkCmdBeginDebugUtilsLabelEXT")
	c.cmdEndDebugUtilsLabel = load("vkCmdEndDebugUtilsLabelEXT")

	if c.enumeratePhysicalDevices == nil || c.createDevice == nil {
		return fmt.Errorf("failed to load instance-level Vulkan functions")
	}
	return nil
}

// LoadDevice loads device-level function pointers. Must be called after
// vkCreateDevice succeeds. Extension entry points resolve to nil when the
// extension is not enabled; KHR entry points promoted to core fall back to
// their unsuffixed names.
func (c *Commands) LoadDevice(device Device) error {
	if device == 0 {
		return fmt.Errorf("invalid device handle")
	}

	load := func(name string) unsafe.Pointer { return GetDeviceProcAddr(device, name) }
	loadKhr := func(khr, core string) unsafe.Pointer {
		if p := load(khr); p != nil {
			return p
		}
		return load(core)
	}

	c.destroyDevice = load("vkDestroyDevice")
	c.getDeviceQueue = load("vkGetDeviceQueue")
	c.deviceWaitIdle = load("vkDeviceWaitIdle")
	c.queueWaitIdle = load("vkQueueWaitIdle")
	c.queueSubmit = load("vkQueueSubmit")
	c.queuePresent = load("vkQueuePresentKHR")
	c.createSwapchain = load("vkCreateSwapchainKHR")
	c.destroySwapchain = load("vkDestroySwapchainKHR")
	c.getSwapchainImages = load("vkGetSwapchainImagesKHR")
	c.acquireNextImage = load("vkAcquireNextImageKHR")
	c.allocateMemory = load("vkAllocateMemory")
	c.freeMemory = load("vkFreeMemory")
	c.mapMemory = load("vkMapMemory")
	c.unmapMemory = load("vkUnmapMemory")
	c.flushMappedMemoryRanges = load("vkFlushMappedMemoryRanges")
	c.getBufferMemoryRequirements = load("vkGetBufferMemoryRequirements")
	c.getImageMemoryRequirements = load("vkGetImageMemoryRequirements")
	c.bindBufferMemory = load("vkBindBufferMemory")
	c.bindImageMemory = load("vkBindImageMemory")
	c.createBuffer = load("vkCreateBuffer")
	c.destroyBuffer = load("vkDestroyBuffer")
	c.createImage = load("vkCreateImage")
	c.destroyImage = load("vkDestroyImage")
	c.createImageView = load("vkCreateImageView")
	c.destroyImageView = load("vkDestroyImageView")
	c.createSampler = load("vkCreateSampler")
	c.destroySampler = load("vkDestroySampler")
	c.createShaderModule = load("vkCreateShaderModule")
	c.destroyShaderModule = load("vkDestroyShaderModule")
	c.createDescriptorSetLayout = load("vkCreateDescriptorSetLayout")
	c.destroyDescriptorSetLayout = load("vkDestroyDescriptorSetLayout")
	c.createDescriptorPool = load("vkCreateDescriptorPool")
	c.destroyDescriptorPool = load("vkDestroyDescriptorPool")
	c.resetDescriptorPool = load("vkResetDescriptorPool")
	c.allocateDescriptorSets = load("vkAllocateDescriptorSets")
	c.freeDescriptorSets = load("vkFreeDescriptorSets")
	c.updateDescriptorSets = load("vkUpdateDescriptorSets")
	c.createPipelineLayout = load("vkCreatePipelineLayout")
	c.destroyPipelineLayout = load("vkDestroyPipelineLayout")
	c.createGraphicsPipelines = load("vkCreateGraphicsPipelines")
	c.createComputePipelines = load("vkCreateComputePipelines")
	c.destroyPipeline = load("vkDestroyPipeline")
	c.createPipelineCache = load("vkCreatePipelineCache")
	c.destroyPipelineCache = load("vkDestroyPipelineCache")
	c.getPipelineCacheData = load("vkGetPipelineCacheData")
	c.createRenderPass = load("vkCreateRenderPass")
	c.destroyRenderPass = load("vkDestroyRenderPass")
	c.createFramebuffer = load("vkCreateFramebuffer")
	c.destroyFramebuffer = load("vkDestroyFramebuffer")
	c.createCommandPool = load("vkCreateCommandPool")
	c.destroyCommandPool = load("vkDestroyCommandPool")
	c.resetCommandPool = load("vkResetCommandPool")
	c.allocateCommandBuffers = load("vkAllocateCommandBuffers")
	c.freeCommandBuffers = load("vkFreeCommandBuffers")
	c.beginCommandBuffer = load("vkBeginCommandBuffer")
	c.endCommandBuffer = load("vkEndCommandBuffer")
	c.createSemaphore = load("vkCreateSemaphore")
	c.destroySemaphore = load("vkDestroySemaphore")
	c.createFence = load("vkCreateFence")
	c.destroyFence = load("vkDestroyFence")
	c.waitForFences = load("vkWaitForFences")
	c.resetFences = load("vkResetFences")
	c.getFenceStatus = load("vkGetFenceStatus")
	c.waitSemaphores = loadKhr("vkWaitSemaphoresKHR", "vkWaitSemaphores")
	c.getSemaphoreCounterValue = loadKhr("vkGetSemaphoreCounterValueKHR", "vkGetSemaphoreCounterValue")
	c.createQueryPool = load("vkCreateQueryPool")
	c.destroyQueryPool = load("vkDestroyQueryPool")
	c.getQueryPoolResults = load("vkGetQueryPoolResults")

	c.cmdBeginRenderPass = load("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = load("vkCmdEndRenderPass")
	c.cmdBeginRendering = loadKhr("vkCmdBeginRenderingKHR", "vkCmdBeginRendering")
	c.cmdEndRendering = loadKhr("vkCmdEndRenderingKHR", "vkCmdEndRendering")
	c.cmdBindPipeline = load("vkCmdBindPipeline")
	c.cmdBindVertexBuffers = load("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = load("vkCmdBindIndexBuffer")
	c.cmdBindDescriptorSets = load("vkCmdBindDescriptorSets")
	c.cmdSetViewport = load("vkCmdSetViewport")
	c.cmdSetScissor = load("vkCmdSetScissor")
	c.cmdDraw = load("vkCmdDraw")
	c.cmdDrawIndexed = load("vkCmdDrawIndexed")
	c.cmdDrawIndirect = load("vkCmdDrawIndirect")
	c.cmdDrawIndexedIndirect = load("vkCmdDrawIndexedIndirect")
	c.cmdDispatch = load("vkCmdDispatch")
	c.cmdDispatchIndirect = load("vkCmdDispatchIndirect")
	c.cmdPipelineBarrier = load("vkCmdPipelineBarrier")
	c.cmdCopyBuffer = load("vkCmdCopyBuffer")
	c.cmdCopyBufferToImage = load("vkCmdCopyBufferToImage")
	c.cmdCopyImage = load("vkCmdCopyImage")
	c.cmdBlitImage = load("vkCmdBlitImage")
	c.cmdWriteTimestamp = load("vkCmdWriteTimestamp")
	c.cmdBeginQuery = load("vkCmdBeginQuery")
	c.cmdEndQuery = load("vkCmdEndQuery")
	c.cmdResetQueryPool = load("vkCmdResetQueryPool")
	c.cmdExecuteCommands = load("vkCmdExecuteCommands")
	c.cmdPushConstants = load("vkCmdPushConstants")

	if c.queueSubmit == nil || c.beginCommandBuffer == nil {
		return fmt.Errorf("failed to load device-level Vulkan functions")
	}
	return nil
}

// Extension availability, reported from loaded function pointers.

// HasDebugUtils reports whether VK_EXT_debug_utils entry points resolved.
func (c *Commands) HasDebugUtils() bool { return c.setDebugUtilsObjectName != nil }

// HasDynamicRendering reports whether vkCmdBeginRendering resolved.
func (c *Commands) HasDynamicRendering() bool { return c.cmdBeginRendering != nil }

// HasTimelineSemaphores reports whether vkWaitSemaphores resolved.
func (c *Commands) HasTimelineSemaphores() bool { return c.waitSemaphores != nil }

// HasXlibSurface reports whether vkCreateXlibSurfaceKHR resolved.
func (c *Commands) HasXlibSurface() bool { return c.createXlibSurface != nil }

// HasWaylandSurface reports whether vkCreateWaylandSurfaceKHR resolved.
func (c *Commands) HasWaylandSurface() bool { return c.createWaylandSurface != nil }

// HasWin32Surface reports whether vkCreateWin32SurfaceKHR resolved.
func (c *Commands) HasWin32Surface() bool { return c.createWin32Surface != nil }
