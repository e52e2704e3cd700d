// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/vkdevice/vk"
)

// Fingerprint hashes the output description bytewise (FNV-1a). Equal
// fingerprints share one native render pass through the device cache.
func (o *RenderPassOutput) Fingerprint() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(o)), unsafe.Sizeof(*o))
	hash := uint64(offset64)
	for _, b := range bytes {
		hash ^= uint64(b)
		hash *= prime64
	}
	return hash
}

// getRenderPass returns the cached native pass for an output, creating
// it on a miss. Under dynamic rendering no native pass exists.
func (d *Device) getRenderPass(output RenderPassOutput, name string) vk.RenderPass {
	if d.dynamicRenderingSupported {
		return 0
	}

	fingerprint := output.Fingerprint()
	if pass, ok := d.renderPassCache[fingerprint]; ok {
		return pass
	}

	pass := d.vulkanCreateRenderPass(output, name)
	d.renderPassCache[fingerprint] = pass
	return pass
}

func (d *Device) vulkanCreateRenderPass(output RenderPassOutput, name string) vk.RenderPass {
	var attachments [MaxImageOutputs + 1]vk.AttachmentDescription
	var colorRefs [MaxImageOutputs]vk.AttachmentReference
	count := uint32(0)

	for i := uint32(0); i < output.NumColorFormats; i++ {
		loadOp := toVkLoadOp(output.ColorOperations[i])
		initialLayout := vk.ImageLayoutUndefined
		if loadOp == vk.AttachmentLoadOpLoad {
			initialLayout = output.ColorFinalLayouts[i]
		}
		attachments[count] = vk.AttachmentDescription{
			Format:         output.ColorFormats[i],
			Samples:        vk.SampleCount1Bit,
			LoadOp:         loadOp,
			StoreOp:        vk.AttachmentStoreOpStore,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  initialLayout,
			FinalLayout:    output.ColorFinalLayouts[i],
		}
		colorRefs[i] = vk.AttachmentReference{
			Attachment: count,
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}
		count++
	}

	var depthRef *vk.AttachmentReference
	if output.DepthStencilFormat != vk.FormatUndefined {
		depthLoadOp := toVkLoadOp(output.DepthOperation)
		initialLayout := vk.ImageLayoutUndefined
		if depthLoadOp == vk.AttachmentLoadOpLoad {
			initialLayout = vk.ImageLayoutDepthStencilAttachmentOptimal
		}
		attachments[count] = vk.AttachmentDescription{
			Format:         output.DepthStencilFormat,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         depthLoadOp,
			StoreOp:        vk.AttachmentStoreOpStore,
			StencilLoadOp:  toVkLoadOp(output.StencilOperation),
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  initialLayout,
			FinalLayout:    output.DepthStencilFinalLayout,
		}
		depthRef = &vk.AttachmentReference{
			Attachment: count,
			Layout:     vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
		count++
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:       vk.PipelineBindPointGraphics,
		ColorAttachmentCount:    output.NumColorFormats,
		PDepthStencilAttachment: depthRef,
	}
	if output.NumColorFormats > 0 {
		subpass.PColorAttachments = &colorRefs[0]
	}

	createInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: count,
		SubpassCount:    1,
		PSubpasses:      &subpass,
	}
	if count > 0 {
		createInfo.PAttachments = &attachments[0]
	}

	var pass vk.RenderPass
	vkCheck(d.cmds.CreateRenderPass(d.device, &createInfo, nil, &pass), "vkCreateRenderPass")
	runtime.KeepAlive(&attachments)
	runtime.KeepAlive(&colorRefs)
	runtime.KeepAlive(depthRef)
	runtime.KeepAlive(&subpass)

	d.setResourceName(vk.ObjectTypeRenderPass, uint64(pass), name)
	return pass
}

// CreateRenderPass creates a render pass record. The native pass is
// owned by the fingerprint cache and shared between equal outputs.
func (d *Device) CreateRenderPass(desc RenderPassDescriptor) RenderPassHandle {
	index := d.renderPasses.Obtain()
	if index == InvalidIndex {
		return InvalidRenderPass
	}
	handle := RenderPassHandle(index)

	pass := d.renderPasses.Access(index)
	pass.Handle = handle
	pass.Name = desc.Name
	pass.Output = desc.Output
	pass.VkRenderPass = d.getRenderPass(desc.Output, desc.Name)
	return handle
}

// DestroyRenderPass queues the render pass for deferred destruction.
// The native pass stays in the cache until shutdown.
func (d *Device) DestroyRenderPass(handle RenderPassHandle) {
	if uint32(handle) >= d.renderPasses.Capacity() {
		Logger().Warn("destroy of invalid render pass", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindRenderPass,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyRenderPassInstant(index uint32) {
	// Cached native passes are shared; only the record is released.
	d.renderPasses.Release(index)
}

// AccessRenderPass returns the record of a live render pass.
func (d *Device) AccessRenderPass(handle RenderPassHandle) *RenderPass {
	return d.renderPasses.Access(uint32(handle))
}

// CreateFramebuffer creates a framebuffer over the given attachments.
// The recorded extent is the scaled render-pass extent.
func (d *Device) CreateFramebuffer(desc FramebufferDescriptor) FramebufferHandle {
	index := d.framebuffers.Obtain()
	if index == InvalidIndex {
		return InvalidFramebuffer
	}
	handle := FramebufferHandle(index)

	fb := d.framebuffers.Access(index)
	fb.Handle = handle
	fb.Name = desc.Name
	fb.RenderPass = desc.RenderPass
	fb.Width = desc.Width
	fb.Height = desc.Height
	fb.ScaleX = desc.ScaleX
	fb.ScaleY = desc.ScaleY
	if fb.ScaleX == 0 {
		fb.ScaleX = 1
	}
	if fb.ScaleY == 0 {
		fb.ScaleY = 1
	}
	fb.Resize = desc.Resize
	fb.NumColorAttachments = uint32(len(desc.ColorAttachments))
	for i, h := range desc.ColorAttachments {
		fb.ColorAttachments[i] = h
	}
	// A zero-valued descriptor field means no depth attachment. Texture
	// slot 0 holds the device dummy texture, never a depth target.
	fb.DepthStencilAttachment = desc.DepthStencilAttachment
	if desc.DepthStencilAttachment == 0 {
		fb.DepthStencilAttachment = InvalidTexture
	}

	if d.dynamicRenderingSupported {
		return handle
	}

	var views [MaxImageOutputs + 1]vk.ImageView
	count := uint32(0)
	for i := uint32(0); i < fb.NumColorAttachments; i++ {
		texture := d.textures.Access(uint32(fb.ColorAttachments[i]))
		views[count] = texture.VkImageView
		count++
	}
	if fb.DepthStencilAttachment.Valid() {
		texture := d.textures.Access(uint32(fb.DepthStencilAttachment))
		views[count] = texture.VkImageView
		count++
	}

	pass := d.renderPasses.Access(uint32(desc.RenderPass))
	createInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      pass.VkRenderPass,
		AttachmentCount: count,
		PAttachments:    &views[0],
		Width:           uint32(fb.Width),
		Height:          uint32(fb.Height),
		Layers:          1,
	}
	vkCheck(d.cmds.CreateFramebuffer(d.device, &createInfo, nil, &fb.VkFramebuffer), "vkCreateFramebuffer")
	runtime.KeepAlive(&views)

	d.setResourceName(vk.ObjectTypeFramebuffer, uint64(fb.VkFramebuffer), desc.Name)
	return handle
}

// DestroyFramebuffer queues the framebuffer for deferred destruction.
// Attachments are not destroyed with it.
func (d *Device) DestroyFramebuffer(handle FramebufferHandle) {
	if uint32(handle) >= d.framebuffers.Capacity() {
		Logger().Warn("destroy of invalid framebuffer", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindFramebuffer,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyFramebufferInstant(index uint32) {
	fb := d.framebuffers.Access(index)
	if fb.VkFramebuffer != 0 {
		d.cmds.DestroyFramebuffer(d.device, fb.VkFramebuffer, nil)
		fb.VkFramebuffer = 0
	}
	d.framebuffers.Release(index)
}

// AccessFramebuffer returns the record of a live framebuffer.
func (d *Device) AccessFramebuffer(handle FramebufferHandle) *Framebuffer {
	return d.framebuffers.Access(uint32(handle))
}
