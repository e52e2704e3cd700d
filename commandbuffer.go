// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"runtime"

	"github.com/gogpu/vkdevice/vk"
)

// CommandBuffer records commands for one frame on one thread. Obtain it
// from the device via GetCommandBuffer; each thread must only record
// into buffers obtained with its own thread index.
type CommandBuffer struct {
	device   *Device
	vkHandle vk.CommandBuffer

	threadIndex int
	frameIndex  uint32
	secondary   bool
	compute     bool

	recording        bool
	passOpen         bool
	statsQueryOpen   bool
	currentPass      RenderPassHandle
	currentFB        FramebufferHandle
	currentPipeline  *Pipeline

	// Clear values consulted by BindPass: slot 0 color, slot 1 depth.
	clears [2]vk.ClearValue
}

// begin opens recording: per-frame query reset plus the frame's
// pipeline-statistics query.
func (c *CommandBuffer) begin() {
	d := c.device
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	vkCheck(d.cmds.BeginCommandBuffer(c.vkHandle, &beginInfo), "vkBeginCommandBuffer")
	c.recording = true

	pools := d.timeQueries.pool(c.frameIndex, c.threadIndex)
	d.cmds.CmdResetQueryPool(c.vkHandle, pools.timestamps, 0, uint32(d.timeQueriesPerFrame)*2)
	d.cmds.CmdResetQueryPool(c.vkHandle, pools.statistics, 0, 1)
	d.cmds.CmdBeginQuery(c.vkHandle, pools.statistics, 0, 0)
	c.statsQueryOpen = true
}

// end closes any open pass and query and finishes recording.
func (c *CommandBuffer) end() {
	d := c.device
	if c.passOpen {
		c.endCurrentPass()
	}
	if c.statsQueryOpen {
		pools := d.timeQueries.pool(c.frameIndex, c.threadIndex)
		d.cmds.CmdEndQuery(c.vkHandle, pools.statistics, 0)
		c.statsQueryOpen = false
	}
	vkCheck(d.cmds.EndCommandBuffer(c.vkHandle), "vkEndCommandBuffer")
	c.recording = false
	c.currentPipeline = nil
}

func (c *CommandBuffer) endCurrentPass() {
	d := c.device
	if d.dynamicRenderingSupported {
		d.cmds.CmdEndRendering(c.vkHandle)
	} else {
		d.cmds.CmdEndRenderPass(c.vkHandle)
	}
	c.passOpen = false
}

// Clear stashes the color clear value consulted by the next BindPass.
func (c *CommandBuffer) Clear(r, g, b, a float32, attachmentIndex int) {
	c.clears[0] = vk.ClearColor(r, g, b, a)
	_ = attachmentIndex
}

// ClearDepthStencil stashes the depth/stencil clear value.
func (c *CommandBuffer) ClearDepthStencil(depth float32, stencil uint32) {
	c.clears[1] = vk.ClearDepthStencil(depth, stencil)
}

// BindPass begins a render pass over a framebuffer, ending any pass that
// is already open. Under dynamic rendering the attachment info is built
// from the framebuffer; otherwise the classical pass begins. No layout
// transitions happen here - Barrier calls must have put the attachments
// into their attachment states beforehand.
func (c *CommandBuffer) BindPass(pass RenderPassHandle, framebuffer FramebufferHandle, useSecondary bool) {
	d := c.device
	if c.passOpen {
		c.endCurrentPass()
	}
	c.currentPass = pass
	c.currentFB = framebuffer

	renderPass := d.renderPasses.Access(uint32(pass))
	fb := d.framebuffers.Access(uint32(framebuffer))

	if d.dynamicRenderingSupported {
		var colorInfos [MaxImageOutputs]vk.RenderingAttachmentInfoKHR
		for i := uint32(0); i < fb.NumColorAttachments; i++ {
			texture := d.textures.Access(uint32(fb.ColorAttachments[i]))
			colorInfos[i] = vk.RenderingAttachmentInfoKHR{
				SType:       vk.StructureTypeRenderingAttachmentInfoKhr,
				ImageView:   texture.VkImageView,
				ImageLayout: vk.ImageLayoutColorAttachmentOptimal,
				LoadOp:      toVkLoadOp(renderPass.Output.ColorOperations[i]),
				StoreOp:     vk.AttachmentStoreOpStore,
				ClearValue:  c.clears[0],
			}
		}

		renderingInfo := vk.RenderingInfoKHR{
			SType: vk.StructureTypeRenderingInfoKhr,
			RenderArea: vk.Rect2D{
				Extent: vk.Extent2D{Width: uint32(fb.Width), Height: uint32(fb.Height)},
			},
			LayerCount:           1,
			ColorAttachmentCount: fb.NumColorAttachments,
		}
		if fb.NumColorAttachments > 0 {
			renderingInfo.PColorAttachments = &colorInfos[0]
		}

		var depthInfo vk.RenderingAttachmentInfoKHR
		if fb.DepthStencilAttachment.Valid() {
			texture := d.textures.Access(uint32(fb.DepthStencilAttachment))
			depthInfo = vk.RenderingAttachmentInfoKHR{
				SType:       vk.StructureTypeRenderingAttachmentInfoKhr,
				ImageView:   texture.VkImageView,
				ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
				LoadOp:      toVkLoadOp(renderPass.Output.DepthOperation),
				StoreOp:     vk.AttachmentStoreOpStore,
				ClearValue:  c.clears[1],
			}
			renderingInfo.PDepthAttachment = &depthInfo
		}

		d.cmds.CmdBeginRendering(c.vkHandle, &renderingInfo)
		runtime.KeepAlive(&colorInfos)
		runtime.KeepAlive(&depthInfo)
	} else {
		clearCount := fb.NumColorAttachments
		if fb.DepthStencilAttachment.Valid() {
			clearCount = fb.NumColorAttachments + 1
		}
		var clearValues [MaxImageOutputs + 1]vk.ClearValue
		for i := uint32(0); i < fb.NumColorAttachments; i++ {
			clearValues[i] = c.clears[0]
		}
		if fb.DepthStencilAttachment.Valid() {
			clearValues[fb.NumColorAttachments] = c.clears[1]
		}

		beginInfo := vk.RenderPassBeginInfo{
			SType:       vk.StructureTypeRenderPassBeginInfo,
			RenderPass:  renderPass.VkRenderPass,
			Framebuffer: fb.VkFramebuffer,
			RenderArea: vk.Rect2D{
				Extent: vk.Extent2D{Width: uint32(fb.Width), Height: uint32(fb.Height)},
			},
			ClearValueCount: clearCount,
			PClearValues:    &clearValues[0],
		}
		contents := vk.SubpassContentsInline
		if useSecondary {
			contents = vk.SubpassContentsSecondaryCommandBuffers
		}
		d.cmds.CmdBeginRenderPass(c.vkHandle, &beginInfo, contents)
		runtime.KeepAlive(&clearValues)
	}
	c.passOpen = true
}

// BindPipeline binds a pipeline and records it for descriptor binding.
func (c *CommandBuffer) BindPipeline(handle PipelineHandle) {
	pipeline := c.device.pipelines.Access(uint32(handle))
	c.device.cmds.CmdBindPipeline(c.vkHandle, pipeline.BindPoint, pipeline.VkPipeline)
	c.currentPipeline = pipeline
}

// BindVertexBuffer binds one vertex buffer. Buffers aliasing the dynamic
// buffer substitute their parent and use the mapped global offset.
func (c *CommandBuffer) BindVertexBuffer(handle BufferHandle, binding uint32, offset uint64) {
	d := c.device
	buffer := d.buffers.Access(uint32(handle))

	vkBuffer := buffer.VkBuffer
	if buffer.ParentBuffer != InvalidBuffer {
		parent := d.buffers.Access(uint32(buffer.ParentBuffer))
		vkBuffer = parent.VkBuffer
		offset = uint64(buffer.GlobalOffset)
	}

	offsets := [1]vk.DeviceSize{vk.DeviceSize(offset)}
	buffers := [1]vk.Buffer{vkBuffer}
	d.cmds.CmdBindVertexBuffers(c.vkHandle, binding, 1, &buffers[0], &offsets[0])
}

// BindIndexBuffer binds the index buffer, with the same dynamic-buffer
// substitution as BindVertexBuffer.
func (c *CommandBuffer) BindIndexBuffer(handle BufferHandle, offset uint64, indexType vk.IndexType) {
	d := c.device
	buffer := d.buffers.Access(uint32(handle))

	vkBuffer := buffer.VkBuffer
	if buffer.ParentBuffer != InvalidBuffer {
		parent := d.buffers.Access(uint32(buffer.ParentBuffer))
		vkBuffer = parent.VkBuffer
		offset = uint64(buffer.GlobalOffset)
	}
	d.cmds.CmdBindIndexBuffer(c.vkHandle, vkBuffer, vk.DeviceSize(offset), indexType)
}

// BindDescriptorSet binds the given sets. Uniform-buffer bindings are
// dynamic: their offset is the owning buffer's current global offset.
// With bindless supported, the global bindless set is always bound at
// set 0 and the provided sets start at set 1.
func (c *CommandBuffer) BindDescriptorSet(handles ...DescriptorSetHandle) {
	d := c.device
	if c.currentPipeline == nil {
		Logger().Warn("descriptor bind without a bound pipeline")
		return
	}

	var sets [MaxDescriptorSetLayouts]vk.DescriptorSet
	var offsets [MaxDescriptorsPerSet]uint32
	numSets := 0
	numOffsets := 0

	for _, handle := range handles {
		set := d.descriptorSets.Access(uint32(handle))
		sets[numSets] = set.VkSet
		numSets++

		// Gather dynamic offsets in binding order.
		for i := range set.Resources {
			binding := set.Layout.BindingData(set.Bindings[i])
			if binding == nil || binding.Type != vk.DescriptorTypeUniformBuffer &&
				binding.Type != vk.DescriptorTypeUniformBufferDynamic {
				continue
			}
			buffer := d.buffers.Access(set.Resources[i])
			offsets[numOffsets] = buffer.GlobalOffset
			numOffsets++
		}
	}

	firstSet := uint32(0)
	if d.bindlessSupported {
		bindless := [1]vk.DescriptorSet{d.bindlessSet}
		d.cmds.CmdBindDescriptorSets(c.vkHandle, c.currentPipeline.BindPoint,
			c.currentPipeline.VkLayout, 0, 1, &bindless[0], 0, nil)
		firstSet = 1
	}

	if numSets > 0 {
		var offsetPtr *uint32
		if numOffsets > 0 {
			offsetPtr = &offsets[0]
		}
		d.cmds.CmdBindDescriptorSets(c.vkHandle, c.currentPipeline.BindPoint,
			c.currentPipeline.VkLayout, firstSet, uint32(numSets), &sets[0],
			uint32(numOffsets), offsetPtr)
	}
}

// SetViewport sets the viewport, defaulting to the bound framebuffer's
// extent (or the swapchain extent with no pass open). Height is negated
// so the API keeps a top-left origin.
func (c *CommandBuffer) SetViewport(viewport *vk.Viewport) {
	d := c.device
	var vp vk.Viewport
	if viewport != nil {
		vp = *viewport
	} else {
		width, height := d.swapchainWidth, d.swapchainHeight
		if c.currentFB.Valid() {
			if fb := d.framebuffers.Access(uint32(c.currentFB)); fb != nil {
				width, height = fb.Width, fb.Height
			}
		}
		vp = vk.Viewport{
			X:        0,
			Y:        float32(height),
			Width:    float32(width),
			Height:   -float32(height),
			MinDepth: 0,
			MaxDepth: 1,
		}
	}
	d.cmds.CmdSetViewport(c.vkHandle, 0, 1, &vp)
}

// SetScissor sets the scissor, defaulting like SetViewport.
func (c *CommandBuffer) SetScissor(rect *vk.Rect2D) {
	d := c.device
	var scissor vk.Rect2D
	if rect != nil {
		scissor = *rect
	} else {
		width, height := d.swapchainWidth, d.swapchainHeight
		if c.currentFB.Valid() {
			if fb := d.framebuffers.Access(uint32(c.currentFB)); fb != nil {
				width, height = fb.Width, fb.Height
			}
		}
		scissor = vk.Rect2D{Extent: vk.Extent2D{Width: uint32(width), Height: uint32(height)}}
	}
	d.cmds.CmdSetScissor(c.vkHandle, 0, 1, &scissor)
}

// Draw records a non-indexed draw.
func (c *CommandBuffer) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	c.device.cmds.CmdDraw(c.vkHandle, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed records an indexed draw.
func (c *CommandBuffer) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	c.device.cmds.CmdDrawIndexed(c.vkHandle, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// DrawIndirect records an indirect draw from a buffer.
func (c *CommandBuffer) DrawIndirect(buffer BufferHandle, offset uint64, drawCount, stride uint32) {
	b := c.device.buffers.Access(uint32(buffer))
	c.device.cmds.CmdDrawIndirect(c.vkHandle, b.VkBuffer, vk.DeviceSize(offset), drawCount, stride)
}

// DrawIndexedIndirect records an indirect indexed draw.
func (c *CommandBuffer) DrawIndexedIndirect(buffer BufferHandle, offset uint64, drawCount, stride uint32) {
	b := c.device.buffers.Access(uint32(buffer))
	c.device.cmds.CmdDrawIndexedIndirect(c.vkHandle, b.VkBuffer, vk.DeviceSize(offset), drawCount, stride)
}

// Dispatch records a compute dispatch.
func (c *CommandBuffer) Dispatch(x, y, z uint32) {
	c.device.cmds.CmdDispatch(c.vkHandle, x, y, z)
}

// DispatchIndirect records an indirect compute dispatch.
func (c *CommandBuffer) DispatchIndirect(buffer BufferHandle, offset uint64) {
	b := c.device.buffers.Access(uint32(buffer))
	c.device.cmds.CmdDispatchIndirect(c.vkHandle, b.VkBuffer, vk.DeviceSize(offset))
}

// ExecuteCommands replays recorded secondary command buffers.
func (c *CommandBuffer) ExecuteCommands(secondaries ...*CommandBuffer) {
	if len(secondaries) == 0 {
		return
	}
	handles := make([]vk.CommandBuffer, len(secondaries))
	for i, s := range secondaries {
		handles[i] = s.vkHandle
	}
	c.device.cmds.CmdExecuteCommands(c.vkHandle, uint32(len(handles)), &handles[0])
	runtime.KeepAlive(handles)
}

// Barrier records one pipeline barrier from the execution-barrier
// description. Image states are derived from the destination stage role
// (or taken from NewState when set); the texture records are updated to
// the new state. Depth-stencil images add the early and late fragment
// test stages to both masks.
func (c *CommandBuffer) Barrier(barrier ExecutionBarrier) {
	d := c.device

	srcStages := toVkPipelineStage(barrier.SourceStage)
	dstStages := toVkPipelineStage(barrier.DestinationStage)

	var imageBarriers [8]vk.ImageMemoryBarrier
	numImages := 0
	hasDepthStencil := false

	for _, entry := range barrier.ImageBarriers {
		if numImages == len(imageBarriers) {
			break
		}
		texture := d.textures.Access(uint32(entry.Texture))
		if texture == nil {
			continue
		}
		depthStencil := hasDepthOrStencil(texture.VkFormat)
		hasDepthStencil = hasDepthStencil || depthStencil

		oldState := texture.State
		newState := barrier.NewState
		if newState == ResourceStateUndefined {
			newState = stateForStage(barrier.DestinationStage, depthStencil)
		}

		imageBarriers[numImages] = vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       toVkAccessFlags(oldState),
			DstAccessMask:       toVkAccessFlags(newState),
			OldLayout:           toVkImageLayout(oldState),
			NewLayout:           toVkImageLayout(newState),
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               texture.VkImage,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: aspectMask(texture.VkFormat),
				LevelCount: vk.RemainingMipLevels,
				LayerCount: vk.RemainingArrayLayers,
			},
		}
		numImages++
		texture.State = newState
	}

	var bufferBarriers [8]vk.BufferMemoryBarrier
	numBuffers := 0
	for _, entry := range barrier.BufferBarriers {
		if numBuffers == len(bufferBarriers) {
			break
		}
		buffer := d.buffers.Access(uint32(entry.Buffer))
		if buffer == nil {
			continue
		}
		target := buffer
		if buffer.ParentBuffer != InvalidBuffer {
			target = d.buffers.Access(uint32(buffer.ParentBuffer))
		}
		bufferBarriers[numBuffers] = vk.BufferMemoryBarrier{
			SType:               vk.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       toVkAccessFlags(stateForStage(barrier.SourceStage, false)),
			DstAccessMask:       toVkAccessFlags(stateForStage(barrier.DestinationStage, false)),
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Buffer:              target.VkBuffer,
			Size:                vk.DeviceSize(vk.WholeSize),
		}
		numBuffers++
	}

	if hasDepthStencil {
		fragmentTests := vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit
		srcStages |= fragmentTests
		dstStages |= fragmentTests
	}

	var imagePtr *vk.ImageMemoryBarrier
	if numImages > 0 {
		imagePtr = &imageBarriers[0]
	}
	var bufferPtr *vk.BufferMemoryBarrier
	if numBuffers > 0 {
		bufferPtr = &bufferBarriers[0]
	}

	d.cmds.CmdPipelineBarrier(c.vkHandle, srcStages, dstStages, 0,
		0, nil, uint32(numBuffers), bufferPtr, uint32(numImages), imagePtr)
	runtime.KeepAlive(&imageBarriers)
	runtime.KeepAlive(&bufferBarriers)
}

// UploadTextureData copies texel data from a caller-supplied staging
// buffer into the texture. When the texture has more than one mip the
// chain is generated with a blit cascade. The destination ends in the
// shader-resource state, with the transfer-to-graphics queue ownership
// transfer made explicit when the families differ.
func (c *CommandBuffer) UploadTextureData(handle TextureHandle, data []byte, staging BufferHandle, stagingOffset uint64) {
	d := c.device
	texture := d.textures.Access(uint32(handle))
	stagingBuffer := d.buffers.Access(uint32(staging))

	// Stage the texels.
	mapped := d.MapBuffer(MapBufferParameters{Buffer: staging, Offset: uint32(stagingOffset)})
	copy(mapped, data)
	d.UnmapBuffer(MapBufferParameters{Buffer: staging})

	region := vk.BufferImageCopy{
		BufferOffset: vk.DeviceSize(stagingOffset),
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask: vk.ImageAspectColorBit,
			LayerCount: 1,
		},
		ImageExtent: vk.Extent3D{
			Width:  uint32(texture.Width),
			Height: uint32(texture.Height),
			Depth:  uint32(texture.Depth),
		},
	}

	c.transitionImage(texture, ResourceStateUndefined, ResourceStateCopyDest, 0, texture.MipLevels)
	d.cmds.CmdCopyBufferToImage(c.vkHandle, stagingBuffer.VkBuffer, texture.VkImage,
		vk.ImageLayoutTransferDstOptimal, 1, &region)

	if texture.MipLevels > 1 {
		c.generateMipChain(texture)
	}

	c.releaseToGraphics(texture)
	texture.State = ResourceStateShaderResource
}

// UploadBufferData copies data from a caller-supplied staging buffer
// into the target buffer and makes it visible to vertex input.
func (c *CommandBuffer) UploadBufferData(handle BufferHandle, data []byte, staging BufferHandle, stagingOffset uint64) {
	d := c.device
	buffer := d.buffers.Access(uint32(handle))
	stagingBuffer := d.buffers.Access(uint32(staging))

	mapped := d.MapBuffer(MapBufferParameters{Buffer: staging, Offset: uint32(stagingOffset)})
	copy(mapped, data)
	d.UnmapBuffer(MapBufferParameters{Buffer: staging})

	region := vk.BufferCopy{
		SrcOffset: vk.DeviceSize(stagingOffset),
		Size:      vk.DeviceSize(len(data)),
	}
	d.cmds.CmdCopyBuffer(c.vkHandle, stagingBuffer.VkBuffer, buffer.VkBuffer, 1, &region)

	barrier := vk.BufferMemoryBarrier{
		SType:               vk.StructureTypeBufferMemoryBarrier,
		SrcAccessMask:       vk.AccessTransferWriteBit,
		DstAccessMask:       vk.AccessVertexAttributeReadBit | vk.AccessUniformReadBit | vk.AccessIndexReadBit,
		SrcQueueFamilyIndex: d.transferQueueFamily,
		DstQueueFamilyIndex: d.mainQueueFamily,
		Buffer:              buffer.VkBuffer,
		Size:                vk.DeviceSize(vk.WholeSize),
	}
	if d.transferQueueFamily == d.mainQueueFamily {
		barrier.SrcQueueFamilyIndex = vk.QueueFamilyIgnored
		barrier.DstQueueFamilyIndex = vk.QueueFamilyIgnored
	}
	d.cmds.CmdPipelineBarrier(c.vkHandle,
		vk.PipelineStageTransferBit, vk.PipelineStageVertexInputBit, 0,
		0, nil, 1, &barrier, 0, nil)
	runtime.KeepAlive(&barrier)
}

// CopyTexture copies the full source image into the destination,
// generating lower mips with blits when the destination has a chain, and
// leaves the destination in finalState.
func (c *CommandBuffer) CopyTexture(src, dst TextureHandle, finalState ResourceState) {
	d := c.device
	source := d.textures.Access(uint32(src))
	dest := d.textures.Access(uint32(dst))

	c.transitionImage(source, source.State, ResourceStateCopySource, 0, source.MipLevels)
	c.transitionImage(dest, dest.State, ResourceStateCopyDest, 0, dest.MipLevels)

	region := vk.ImageCopy{
		SrcSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		DstSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		Extent: vk.Extent3D{
			Width:  uint32(source.Width),
			Height: uint32(source.Height),
			Depth:  uint32(source.Depth),
		},
	}
	d.cmds.CmdCopyImage(c.vkHandle, source.VkImage, vk.ImageLayoutTransferSrcOptimal,
		dest.VkImage, vk.ImageLayoutTransferDstOptimal, 1, &region)

	if dest.MipLevels > 1 {
		c.generateMipChain(dest)
	}

	c.transitionImage(source, ResourceStateCopySource, source.State, 0, source.MipLevels)
	c.transitionImage(dest, ResourceStateCopyDest, finalState, 0, dest.MipLevels)
	dest.State = finalState
}

// generateMipChain blits each level from the one above. On entry every
// level is in the copy-dest state; on exit every level is copy-dest
// again so that one final transition covers the whole chain.
func (c *CommandBuffer) generateMipChain(texture *Texture) {
	d := c.device
	width := int32(texture.Width)
	height := int32(texture.Height)

	for mip := uint32(1); mip < texture.MipLevels; mip++ {
		c.transitionMip(texture, mip-1, ResourceStateCopyDest, ResourceStateCopySource)

		nextWidth := max(width/2, 1)
		nextHeight := max(height/2, 1)

		blit := vk.ImageBlit{
			SrcSubresource: vk.ImageSubresourceLayers{
				AspectMask: vk.ImageAspectColorBit,
				MipLevel:   mip - 1,
				LayerCount: 1,
			},
			SrcOffsets: [2]vk.Offset3D{{}, {X: width, Y: height, Z: 1}},
			DstSubresource: vk.ImageSubresourceLayers{
				AspectMask: vk.ImageAspectColorBit,
				MipLevel:   mip,
				LayerCount: 1,
			},
			DstOffsets: [2]vk.Offset3D{{}, {X: nextWidth, Y: nextHeight, Z: 1}},
		}
		d.cmds.CmdBlitImage(c.vkHandle,
			texture.VkImage, vk.ImageLayoutTransferSrcOptimal,
			texture.VkImage, vk.ImageLayoutTransferDstOptimal,
			1, &blit, vk.FilterLinear)

		c.transitionMip(texture, mip-1, ResourceStateCopySource, ResourceStateCopyDest)

		width, height = nextWidth, nextHeight
	}
}

// transitionImage records a layout transition over a mip range.
func (c *CommandBuffer) transitionImage(texture *Texture, from, to ResourceState, baseMip, mipCount uint32) {
	if from == to {
		return
	}
	d := c.device
	depthStencil := hasDepthOrStencil(texture.VkFormat)
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       toVkAccessFlags(from),
		DstAccessMask:       toVkAccessFlags(to),
		OldLayout:           toVkImageLayout(from),
		NewLayout:           toVkImageLayout(to),
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               texture.VkImage,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:   aspectMask(texture.VkFormat),
			BaseMipLevel: baseMip,
			LevelCount:   mipCount,
			LayerCount:   vk.RemainingArrayLayers,
		},
	}
	d.cmds.CmdPipelineBarrier(c.vkHandle,
		stageFromState(from, depthStencil), stageFromState(to, depthStencil), 0,
		0, nil, 0, nil, 1, &barrier)
	runtime.KeepAlive(&barrier)
}

func (c *CommandBuffer) transitionMip(texture *Texture, mip uint32, from, to ResourceState) {
	d := c.device
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       toVkAccessFlags(from),
		DstAccessMask:       toVkAccessFlags(to),
		OldLayout:           toVkImageLayout(from),
		NewLayout:           toVkImageLayout(to),
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               texture.VkImage,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:   vk.ImageAspectColorBit,
			BaseMipLevel: mip,
			LevelCount:   1,
			LayerCount:   vk.RemainingArrayLayers,
		},
	}
	d.cmds.CmdPipelineBarrier(c.vkHandle,
		vk.PipelineStageTransferBit, vk.PipelineStageTransferBit, 0,
		0, nil, 0, nil, 1, &barrier)
	runtime.KeepAlive(&barrier)
}

// releaseToGraphics transitions a freshly uploaded texture to the
// shader-resource state, releasing queue ownership from the transfer
// family when it differs from the main family.
func (c *CommandBuffer) releaseToGraphics(texture *Texture) {
	d := c.device
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       vk.AccessTransferWriteBit,
		DstAccessMask:       vk.AccessShaderReadBit,
		OldLayout:           vk.ImageLayoutTransferDstOptimal,
		NewLayout:           vk.ImageLayoutShaderReadOnlyOptimal,
		SrcQueueFamilyIndex: d.transferQueueFamily,
		DstQueueFamilyIndex: d.mainQueueFamily,
		Image:               texture.VkImage,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectColorBit,
			LevelCount: vk.RemainingMipLevels,
			LayerCount: vk.RemainingArrayLayers,
		},
	}
	if d.transferQueueFamily == d.mainQueueFamily {
		barrier.SrcQueueFamilyIndex = vk.QueueFamilyIgnored
		barrier.DstQueueFamilyIndex = vk.QueueFamilyIgnored
	}
	d.cmds.CmdPipelineBarrier(c.vkHandle,
		vk.PipelineStageTransferBit, vk.PipelineStageFragmentShaderBit, 0,
		0, nil, 0, nil, 1, &barrier)
	runtime.KeepAlive(&barrier)
}

// PushMarker opens a labeled GPU timing scope: a time query plus, when
// debug utils is present, a debug label.
func (c *CommandBuffer) PushMarker(name string) {
	d := c.device
	tree := d.timeQueries.tree(c.frameIndex, c.threadIndex)
	query := tree.push(name)
	if query != nil {
		pools := d.timeQueries.pool(c.frameIndex, c.threadIndex)
		d.cmds.CmdWriteTimestamp(c.vkHandle, vk.PipelineStageBottomOfPipeBit,
			pools.timestamps, query.StartIndex)
	}

	if d.debugUtilsSupported {
		nameBytes := vk.CString(name)
		label := vk.DebugUtilsLabelEXT{
			SType:      vk.StructureTypeDebugUtilsLabelExt,
			PLabelName: vk.CStringPtr(nameBytes),
		}
		d.cmds.CmdBeginDebugUtilsLabelEXT(c.vkHandle, &label)
		runtime.KeepAlive(nameBytes)
	}
}

// PopMarker closes the innermost marker scope.
func (c *CommandBuffer) PopMarker() {
	d := c.device
	tree := d.timeQueries.tree(c.frameIndex, c.threadIndex)
	query := tree.pop()
	if query != nil {
		pools := d.timeQueries.pool(c.frameIndex, c.threadIndex)
		d.cmds.CmdWriteTimestamp(c.vkHandle, vk.PipelineStageBottomOfPipeBit,
			pools.timestamps, query.EndIndex)
	}

	if d.debugUtilsSupported {
		d.cmds.CmdEndDebugUtilsLabelEXT(c.vkHandle)
	}
}
