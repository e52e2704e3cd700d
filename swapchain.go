// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"os"
	"runtime"

	"github.com/gogpu/vkdevice/vk"
)

// surfaceFormatPreference is tried in order against the surface's
// supported formats; element 0 of the supported list is the fallback.
var surfaceFormatPreference = [4]vk.Format{
	vk.FormatB8G8R8A8Unorm,
	vk.FormatR8G8B8A8Unorm,
	vk.FormatB8G8R8Unorm,
	vk.FormatR8G8B8Unorm,
}

// createSurface creates the native window surface. On Linux, Wayland is
// used when the session and driver both offer it, X11 otherwise.
func (d *Device) createSurface() error {
	switch runtime.GOOS {
	case "windows":
		info := vk.Win32SurfaceCreateInfoKHR{
			SType:     vk.StructureTypeWin32SurfaceCreateInfoKhr,
			Hinstance: d.display,
			Hwnd:      d.window,
		}
		result := d.cmds.CreateWin32SurfaceKHR(d.instance, &info, nil, &d.surface)
		if result != vk.Success {
			return &vkError{code: result, op: "vkCreateWin32SurfaceKHR"}
		}
		return nil

	default:
		if d.cmds.HasWaylandSurface() && os.Getenv("WAYLAND_DISPLAY") != "" {
			info := vk.WaylandSurfaceCreateInfoKHR{
				SType:   vk.StructureTypeWaylandSurfaceCreateInfoKhr,
				Display: d.display,
				Surface: d.window,
			}
			result := d.cmds.CreateWaylandSurfaceKHR(d.instance, &info, nil, &d.surface)
			if result != vk.Success {
				return &vkError{code: result, op: "vkCreateWaylandSurfaceKHR"}
			}
			return nil
		}
		if d.cmds.HasXlibSurface() {
			info := vk.XlibSurfaceCreateInfoKHR{
				SType:  vk.StructureTypeXlibSurfaceCreateInfoKhr,
				Dpy:    d.display,
				Window: d.window,
			}
			result := d.cmds.CreateXlibSurfaceKHR(d.instance, &info, nil, &d.surface)
			if result != vk.Success {
				return &vkError{code: result, op: "vkCreateXlibSurfaceKHR"}
			}
			return nil
		}
		return ErrNoDevice
	}
}

// createSwapchain selects format and present mode, creates the
// swapchain, wraps every image in a texture + depth + framebuffer, and
// transitions the images to the present layout.
func (d *Device) createSwapchain() error {
	var caps vk.SurfaceCapabilitiesKHR
	result := d.cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(d.physical, d.surface, &caps)
	if result != vk.Success {
		return &vkError{code: result, op: "vkGetPhysicalDeviceSurfaceCapabilitiesKHR"}
	}

	extent := caps.CurrentExtent
	if extent.Width == 0xFFFFFFFF {
		extent.Width = uint32(d.swapchainWidth)
		extent.Height = uint32(d.swapchainHeight)
	}
	d.swapchainWidth = uint16(extent.Width)
	d.swapchainHeight = uint16(extent.Height)

	d.selectSurfaceFormat()
	d.selectPresentMode()

	imageCount := uint32(MaxSwapchainImages)
	if imageCount < caps.MinImageCount {
		imageCount = caps.MinImageCount
	}
	if caps.MaxImageCount > 0 && imageCount > caps.MaxImageCount {
		imageCount = caps.MaxImageCount
	}

	preTransform := caps.CurrentTransform
	if caps.SupportedTransforms&vk.SurfaceTransformIdentityBitKhr != 0 {
		preTransform = vk.SurfaceTransformIdentityBitKhr
	}

	createInfo := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKhr,
		Surface:          d.surface,
		MinImageCount:    imageCount,
		ImageFormat:      d.surfaceFormat.Format,
		ImageColorSpace:  d.surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachmentBit | vk.ImageUsageTransferDstBit,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     preTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBitKhr,
		PresentMode:      d.presentMode,
		Clipped:          vk.True,
	}
	result = d.cmds.CreateSwapchainKHR(d.device, &createInfo, nil, &d.swapchain)
	if result != vk.Success {
		return &vkError{code: result, op: "vkCreateSwapchainKHR"}
	}

	var count uint32
	vkCheck(d.cmds.GetSwapchainImagesKHR(d.device, d.swapchain, &count, nil), "vkGetSwapchainImagesKHR")
	if count > MaxSwapchainImages {
		count = MaxSwapchainImages
	}
	images := make([]vk.Image, count)
	vkCheck(d.cmds.GetSwapchainImagesKHR(d.device, d.swapchain, &count, &images[0]), "vkGetSwapchainImagesKHR")
	d.swapchainImageCount = count

	// The public swapchain render pass handle survives resize; its
	// fingerprint-keyed native pass does not change.
	if d.swapchainOutput.NumColorFormats == 0 {
		output := RenderPassOutput{}
		output.Color(d.surfaceFormat.Format, vk.ImageLayoutPresentSrcKhr, RenderPassOperationClear)
		output.Depth(vk.FormatD32Sfloat, vk.ImageLayoutDepthStencilAttachmentOptimal)
		output.SetDepthStencilOperations(RenderPassOperationClear, RenderPassOperationClear)
		d.swapchainOutput = output
		d.swapchainRenderPass = d.CreateRenderPass(RenderPassDescriptor{
			Name:   "swapchain_pass",
			Output: output,
		})
	}

	for i := uint32(0); i < count; i++ {
		colorHandle := d.wrapSwapchainImage(images[i])

		depthHandle := d.CreateTexture(TextureDescriptor{
			Name:        "swapchain_depth",
			Width:       d.swapchainWidth,
			Height:      d.swapchainHeight,
			Depth:       1,
			MipLevels:   1,
			ArrayLayers: 1,
			Format:      vk.FormatD32Sfloat,
			Type:        TextureType2D,
			Flags:       TextureFlagRenderTarget,
		})

		d.swapchainFramebuffers[i] = d.CreateFramebuffer(FramebufferDescriptor{
			Name:                   "swapchain_framebuffer",
			RenderPass:             d.swapchainRenderPass,
			ColorAttachments:       []TextureHandle{colorHandle},
			DepthStencilAttachment: depthHandle,
			Width:                  d.swapchainWidth,
			Height:                 d.swapchainHeight,
			ScaleX:                 1,
			ScaleY:                 1,
			Resize:                 true,
		})
	}

	d.transitionSwapchainImages(images[:count])
	return nil
}

// wrapSwapchainImage creates a texture record over a swapchain image.
// The image is owned by the swapchain, so the record carries no
// allocation and skips the bindless arrays.
func (d *Device) wrapSwapchainImage(image vk.Image) TextureHandle {
	poolIndex := d.textures.Obtain()
	if poolIndex == InvalidIndex {
		panic(ErrPoolExhausted)
	}
	handle := TextureHandle(poolIndex)

	texture := d.textures.Access(poolIndex)
	texture.Handle = handle
	texture.Name = "swapchain_image"
	texture.Width = d.swapchainWidth
	texture.Height = d.swapchainHeight
	texture.Depth = 1
	texture.MipLevels = 1
	texture.ArrayLayers = 1
	texture.VkImage = image
	texture.VkFormat = d.surfaceFormat.Format
	texture.Type = TextureType2D
	texture.Flags = TextureFlagRenderTarget
	texture.State = ResourceStateUndefined
	texture.ParentTexture = InvalidTexture
	texture.Sampler = InvalidSampler
	texture.Allocation = nil

	texture.VkImageView = d.createImageView(texture, vk.ImageViewType2d, 0, 1, 0, 1)
	return handle
}

// transitionSwapchainImages moves every image from undefined to the
// present layout with a transient one-shot command buffer, waiting the
// queue idle afterwards. This runs before any frame is in flight.
func (d *Device) transitionSwapchainImages(images []vk.Image) {
	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateTransientBit,
		QueueFamilyIndex: d.mainQueueFamily,
	}
	var pool vk.CommandPool
	vkCheck(d.cmds.CreateCommandPool(d.device, &poolInfo, nil, &pool), "vkCreateCommandPool")
	defer d.cmds.DestroyCommandPool(d.device, pool, nil)

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	var cb vk.CommandBuffer
	vkCheck(d.cmds.AllocateCommandBuffers(d.device, &allocInfo, &cb), "vkAllocateCommandBuffers")

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	vkCheck(d.cmds.BeginCommandBuffer(cb, &beginInfo), "vkBeginCommandBuffer")

	barriers := make([]vk.ImageMemoryBarrier, len(images))
	for i, image := range images {
		barriers[i] = vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			DstAccessMask:       vk.AccessMemoryReadBit,
			OldLayout:           vk.ImageLayoutUndefined,
			NewLayout:           vk.ImageLayoutPresentSrcKhr,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               image,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: vk.ImageAspectColorBit,
				LevelCount: 1,
				LayerCount: 1,
			},
		}
	}
	d.cmds.CmdPipelineBarrier(cb, vk.PipelineStageTopOfPipeBit, vk.PipelineStageBottomOfPipeBit, 0,
		0, nil, 0, nil, uint32(len(barriers)), &barriers[0])
	vkCheck(d.cmds.EndCommandBuffer(cb), "vkEndCommandBuffer")

	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    &cb,
	}
	vkCheck(d.cmds.QueueSubmit(d.queue, 1, &submit, 0), "vkQueueSubmit")
	vkCheck(d.cmds.QueueWaitIdle(d.queue), "vkQueueWaitIdle")
	runtime.KeepAlive(barriers)

	for i := range d.swapchainFramebuffers[:len(images)] {
		fb := d.framebuffers.Access(uint32(d.swapchainFramebuffers[i]))
		color := d.textures.Access(uint32(fb.ColorAttachments[0]))
		color.State = ResourceStatePresent
	}
}

func (d *Device) selectSurfaceFormat() {
	var count uint32
	vkCheck(d.cmds.GetPhysicalDeviceSurfaceFormatsKHR(d.physical, d.surface, &count, nil), "vkGetPhysicalDeviceSurfaceFormatsKHR")
	formats := make([]vk.SurfaceFormatKHR, count)
	vkCheck(d.cmds.GetPhysicalDeviceSurfaceFormatsKHR(d.physical, d.surface, &count, &formats[0]), "vkGetPhysicalDeviceSurfaceFormatsKHR")

	for _, preferred := range surfaceFormatPreference {
		for _, available := range formats[:count] {
			if available.Format == preferred && available.ColorSpace == vk.ColorSpaceSrgbNonlinearKhr {
				d.surfaceFormat = available
				return
			}
		}
	}
	d.surfaceFormat = formats[0]
}

func (d *Device) selectPresentMode() {
	var count uint32
	vkCheck(d.cmds.GetPhysicalDeviceSurfacePresentModesKHR(d.physical, d.surface, &count, nil), "vkGetPhysicalDeviceSurfacePresentModesKHR")
	modes := make([]vk.PresentModeKHR, count)
	vkCheck(d.cmds.GetPhysicalDeviceSurfacePresentModesKHR(d.physical, d.surface, &count, &modes[0]), "vkGetPhysicalDeviceSurfacePresentModesKHR")

	requested := toVkPresentMode(d.requestedPresentMode)
	d.presentMode = vk.PresentModeFifoKhr
	for _, mode := range modes[:count] {
		if mode == requested {
			d.presentMode = requested
			break
		}
	}
}

// destroySwapchainResources destroys the per-image framebuffers and
// their textures immediately. Callers ensure the device is idle.
func (d *Device) destroySwapchainResources() {
	for i := uint32(0); i < d.swapchainImageCount; i++ {
		handle := d.swapchainFramebuffers[i]
		fb := d.framebuffers.Access(uint32(handle))
		if fb == nil || fb.VkFramebuffer == 0 && fb.NumColorAttachments == 0 {
			continue
		}
		for j := uint32(0); j < fb.NumColorAttachments; j++ {
			d.scrubBindlessUpdates(fb.ColorAttachments[j])
			d.destroyTextureInstant(uint32(fb.ColorAttachments[j]))
		}
		if fb.DepthStencilAttachment.Valid() {
			d.scrubBindlessUpdates(fb.DepthStencilAttachment)
			d.destroyTextureInstant(uint32(fb.DepthStencilAttachment))
		}
		d.destroyFramebufferInstant(uint32(handle))
		d.swapchainFramebuffers[i] = InvalidFramebuffer
	}
	d.swapchainImageCount = 0
}

// scrubBindlessUpdates drops pending bindless entries of a texture that
// is being destroyed instantly.
func (d *Device) scrubBindlessUpdates(handle TextureHandle) {
	n := 0
	for _, update := range d.bindlessUpdates {
		if update.handle != uint32(handle) {
			d.bindlessUpdates[n] = update
			n++
		}
	}
	d.bindlessUpdates = d.bindlessUpdates[:n]
}

// Resize requests a swapchain resize at the next frame boundary. Zero
// sizes are ignored.
func (d *Device) Resize(width, height uint16) {
	if width == 0 || height == 0 {
		return
	}
	if width == d.swapchainWidth && height == d.swapchainHeight {
		return
	}
	d.swapchainWidth = width
	d.swapchainHeight = height
	d.resized = true
}

// ResizeSwapchain drains the device and rebuilds surface, swapchain and
// the per-image resources. The swapchain render pass handle survives.
func (d *Device) ResizeSwapchain() {
	vkCheck(d.cmds.DeviceWaitIdle(d.device), "vkDeviceWaitIdle")

	if d.swapchainWidth == 0 || d.swapchainHeight == 0 {
		return
	}

	d.destroySwapchainResources()
	if d.swapchain != 0 {
		d.cmds.DestroySwapchainKHR(d.device, d.swapchain, nil)
		d.swapchain = 0
	}
	if d.surface != 0 {
		d.cmds.DestroySurfaceKHR(d.instance, d.surface, nil)
		d.surface = 0
	}

	if err := d.createSurface(); err != nil {
		panic(err)
	}
	if err := d.createSwapchain(); err != nil {
		panic(err)
	}
	d.resized = false

	vkCheck(d.cmds.DeviceWaitIdle(d.device), "vkDeviceWaitIdle")
}
