// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"runtime"

	"github.com/gogpu/vkdevice/vk"
)

// GetCommandBuffer returns the next primary command buffer of the
// calling thread for the current frame. Each thread must pass its own
// index; pools are disjoint per (frame, thread).
func (d *Device) GetCommandBuffer(thread int, begin bool) *CommandBuffer {
	return d.commandManager.getCommandBuffer(thread, d.currentFrame, begin)
}

// GetSecondaryCommandBuffer returns the next secondary command buffer of
// the calling thread for the current frame.
func (d *Device) GetSecondaryCommandBuffer(thread int) *CommandBuffer {
	return d.commandManager.getSecondaryCommandBuffer(thread, d.currentFrame)
}

// GetComputeCommandBuffer returns the frame's async-compute command
// buffer, begun and ready for recording.
func (d *Device) GetComputeCommandBuffer() *CommandBuffer {
	return d.commandManager.getComputeCommandBuffer(d.currentFrame, true)
}

// QueueCommandBuffer enqueues a recorded command buffer for the next
// Present's graphics submission. Buffers execute in queue order.
func (d *Device) QueueCommandBuffer(cb *CommandBuffer) {
	d.queuedCommandBuffers = append(d.queuedCommandBuffers, cb)
}

// SubmitImmediate ends a recorded command buffer, submits it on the main
// queue and waits the queue idle. Upload helpers use this path before
// any regular frame is in flight.
func (d *Device) SubmitImmediate(cb *CommandBuffer) {
	cb.end()
	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    &cb.vkHandle,
	}
	vkCheck(d.cmds.QueueSubmit(d.queue, 1, &submit, 0), "vkQueueSubmit")
	vkCheck(d.cmds.QueueWaitIdle(d.queue), "vkQueueWaitIdle")
	runtime.KeepAlive(&submit)
}

// GPUTimings returns the timings resolved by the last Present.
func (d *Device) GPUTimings() []TimeQuery {
	return d.resolvedTimings
}

// NewFrame starts a frame: waits until the oldest in-flight frame has
// retired, resets that frame's pools, rolls the dynamic buffer window,
// applies queued descriptor-set updates and resets the query trees.
func (d *Device) NewFrame() {
	// Wait for the GPU to leave the frame that last used this slot.
	if d.timelineSemaphores {
		if d.absoluteFrame >= MaxFrames {
			graphicsValue := d.absoluteFrame - (MaxFrames - 1)

			var semaphores [2]vk.Semaphore
			var values [2]uint64
			count := uint32(1)
			semaphores[0] = d.graphicsTimeline
			values[0] = graphicsValue
			if d.hasAsyncWork {
				semaphores[1] = d.computeTimeline
				values[1] = d.lastComputeValue
				count = 2
			}

			waitInfo := vk.SemaphoreWaitInfoKHR{
				SType:          vk.StructureTypeSemaphoreWaitInfoKhr,
				SemaphoreCount: count,
				PSemaphores:    &semaphores[0],
				PValues:        &values[0],
			}
			vkCheck(d.cmds.WaitSemaphores(d.device, &waitInfo, ^uint64(0)), "vkWaitSemaphores")
			runtime.KeepAlive(&semaphores)
			runtime.KeepAlive(&values)
		}
	} else {
		var fences [2]vk.Fence
		count := uint32(1)
		fences[0] = d.renderFences[d.currentFrame]
		if d.hasAsyncWork {
			fences[1] = d.computeFence
			count = 2
		}
		vkCheck(d.cmds.WaitForFences(d.device, count, &fences[0], vk.True, ^uint64(0)), "vkWaitForFences")
		vkCheck(d.cmds.ResetFences(d.device, count, &fences[0]), "vkResetFences")
		runtime.KeepAlive(&fences)
	}

	d.commandManager.resetPools(d.currentFrame)

	// Roll the dynamic buffer: record the high watermark of the previous
	// window, then rewind the cursor to this frame's window.
	usedSize := d.dynamicAllocated - uint64(d.previousFrame)*dynamicPerFrameSize
	d.dynamicMaxUsed = max(d.dynamicMaxUsed, usedSize)
	d.dynamicAllocated = uint64(d.currentFrame) * dynamicPerFrameSize

	d.applyDescriptorSetUpdates()

	d.timeQueries.resetTrees(d.currentFrame)
}

// Present submits the frame: acquires the swapchain image, drains the
// bindless update queue, submits the queued graphics work and optional
// async compute, queues the present, resolves the previous frame's
// queries, advances the frame counters and drains expired deletions.
func (d *Device) Present(asyncCompute *CommandBuffer) {
	// Acquire. Out-of-date surfaces skip the present entirely: resize,
	// advance the counters and bail.
	result := d.cmds.AcquireNextImageKHR(d.device, d.swapchain, ^uint64(0), d.imageAcquired, 0, &d.swapchainImageIndex)
	if result == vk.ErrorOutOfDateKhr {
		d.ResizeSwapchain()
		d.queuedCommandBuffers = d.queuedCommandBuffers[:0]
		d.advanceFrameCounters()
		return
	}
	if result != vk.Success && result != vk.SuboptimalKhr {
		vkCheck(result, "vkAcquireNextImageKHR")
	}
	suboptimal := result == vk.SuboptimalKhr

	// Close every queued command buffer.
	enqueued := make([]vk.CommandBuffer, 0, len(d.queuedCommandBuffers))
	for _, cb := range d.queuedCommandBuffers {
		cb.end()
		enqueued = append(enqueued, cb.vkHandle)
	}

	deletedTextures := d.drainBindlessUpdates()

	d.submitGraphics(enqueued)

	if asyncCompute != nil {
		d.submitAsyncCompute(asyncCompute)
	}

	// Queue the present.
	presentInfo := vk.PresentInfoKHR{
		SType:              vk.StructureTypePresentInfoKhr,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    &d.renderComplete[d.currentFrame],
		SwapchainCount:     1,
		PSwapchains:        &d.swapchain,
		PImageIndices:      &d.swapchainImageIndex,
	}
	presentResult := d.cmds.QueuePresentKHR(d.queue, &presentInfo)
	runtime.KeepAlive(&presentInfo)

	// Resolve the previous frame's timings and statistics.
	if d.absoluteFrame > 0 {
		d.resolvedTimings = d.timeQueries.resolve(d, d.previousFrame)
	}

	d.queuedCommandBuffers = d.queuedCommandBuffers[:0]

	if presentResult == vk.ErrorOutOfDateKhr || presentResult == vk.SuboptimalKhr || suboptimal || d.resized {
		d.ResizeSwapchain()
	} else if presentResult != vk.Success {
		vkCheck(presentResult, "vkQueuePresentKHR")
	}

	d.advanceFrameCounters()
	d.drainDeletionQueue()

	// Destroyed bindless textures join the queue only now, tagged with
	// the post-advance frame: their native objects outlive the slot
	// rewrite by one extra full frame-lag window.
	for _, handle := range deletedTextures {
		d.deletionQueue = append(d.deletionQueue, resourceUpdate{
			kind:         resourceKindTexture,
			handle:       handle,
			currentFrame: d.currentFrame,
		})
	}
}

func (d *Device) advanceFrameCounters() {
	d.previousFrame = d.currentFrame
	d.currentFrame = (d.currentFrame + 1) % MaxFrames
	d.absoluteFrame++
}

// submitGraphics submits the frame's command buffers on the main queue.
func (d *Device) submitGraphics(buffers []vk.CommandBuffer) {
	var waitSemaphores [3]vk.Semaphore
	var waitStages [3]vk.PipelineStageFlags
	var waitValues [3]uint64
	waitCount := uint32(1)

	waitSemaphores[0] = d.imageAcquired
	waitStages[0] = vk.PipelineStageColorAttachmentOutputBit
	waitValues[0] = 0

	if d.hasAsyncWork {
		waitSemaphores[waitCount] = d.computeTimeline
		waitStages[waitCount] = vk.PipelineStageVertexInputBit
		waitValues[waitCount] = d.lastComputeValue
		waitCount++
	}

	var signalSemaphores [2]vk.Semaphore
	var signalValues [2]uint64
	signalCount := uint32(1)
	signalSemaphores[0] = d.renderComplete[d.currentFrame]
	signalValues[0] = 0

	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount: waitCount,
		PWaitSemaphores:    &waitSemaphores[0],
		PWaitDstStageMask:  &waitStages[0],
	}
	if len(buffers) > 0 {
		submit.CommandBufferCount = uint32(len(buffers))
		submit.PCommandBuffers = &buffers[0]
	}

	fence := vk.Fence(0)
	var timelineInfo vk.TimelineSemaphoreSubmitInfoKHR
	if d.timelineSemaphores {
		if d.absoluteFrame >= MaxFrames {
			waitSemaphores[waitCount] = d.graphicsTimeline
			waitStages[waitCount] = vk.PipelineStageTopOfPipeBit
			waitValues[waitCount] = d.absoluteFrame - (MaxFrames - 1)
			waitCount++
			submit.WaitSemaphoreCount = waitCount
		}

		signalSemaphores[signalCount] = d.graphicsTimeline
		signalValues[signalCount] = d.absoluteFrame + 1
		signalCount++

		timelineInfo = vk.TimelineSemaphoreSubmitInfoKHR{
			SType:                     vk.StructureTypeTimelineSemaphoreSubmitInfoKhr,
			WaitSemaphoreValueCount:   waitCount,
			PWaitSemaphoreValues:      &waitValues[0],
			SignalSemaphoreValueCount: signalCount,
			PSignalSemaphoreValues:    &signalValues[0],
		}
		submit.PNext = uintptrOf(&timelineInfo)
	} else {
		fence = d.renderFences[d.currentFrame]
	}

	submit.SignalSemaphoreCount = signalCount
	submit.PSignalSemaphores = &signalSemaphores[0]

	vkCheck(d.cmds.QueueSubmit(d.queue, 1, &submit, fence), "vkQueueSubmit")
	runtime.KeepAlive(&waitSemaphores)
	runtime.KeepAlive(&waitStages)
	runtime.KeepAlive(&waitValues)
	runtime.KeepAlive(&signalSemaphores)
	runtime.KeepAlive(&signalValues)
	runtime.KeepAlive(&timelineInfo)
	runtime.KeepAlive(buffers)
}

// submitAsyncCompute submits the compute command buffer on the compute
// queue. Each submit waits on the previous compute value and signals the
// next, so a later graphics submit observing lastComputeValue waits for
// exactly this submit.
func (d *Device) submitAsyncCompute(cb *CommandBuffer) {
	vkCheck(d.cmds.EndCommandBuffer(cb.vkHandle), "vkEndCommandBuffer")
	cb.recording = false

	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    &cb.vkHandle,
	}

	fence := vk.Fence(0)
	var timelineInfo vk.TimelineSemaphoreSubmitInfoKHR
	var waitStage vk.PipelineStageFlags
	waitValue := d.lastComputeValue
	signalValue := d.lastComputeValue + 1

	if d.timelineSemaphores {
		submit.SignalSemaphoreCount = 1
		submit.PSignalSemaphores = &d.computeTimeline

		timelineInfo = vk.TimelineSemaphoreSubmitInfoKHR{
			SType:                     vk.StructureTypeTimelineSemaphoreSubmitInfoKhr,
			SignalSemaphoreValueCount: 1,
			PSignalSemaphoreValues:    &signalValue,
		}
		if d.hasAsyncWork {
			waitStage = vk.PipelineStageComputeShaderBit
			submit.WaitSemaphoreCount = 1
			submit.PWaitSemaphores = &d.computeTimeline
			submit.PWaitDstStageMask = &waitStage
			timelineInfo.WaitSemaphoreValueCount = 1
			timelineInfo.PWaitSemaphoreValues = &waitValue
		}
		submit.PNext = uintptrOf(&timelineInfo)
	} else {
		fence = d.computeFence
	}

	vkCheck(d.cmds.QueueSubmit(d.computeQueue, 1, &submit, fence), "vkQueueSubmit")
	runtime.KeepAlive(&timelineInfo)
	runtime.KeepAlive(&waitStage)

	d.lastComputeValue = signalValue
	d.hasAsyncWork = true
}

// drainBindlessUpdates applies the queued texture create/destroy entries
// to the bindless arrays with one descriptor update. Destroyed textures'
// slots are rewritten to the dummy texture; the returned handles are
// queued for deletion by the caller after the frame counters advance.
func (d *Device) drainBindlessUpdates() []uint32 {
	if !d.bindlessSupported || len(d.bindlessUpdates) == 0 {
		return nil
	}

	dummy := d.textures.Access(uint32(d.dummyTexture))

	var deleted []uint32
	writes := make([]vk.WriteDescriptorSet, 0, len(d.bindlessUpdates)*2)
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(d.bindlessUpdates)*2)

	appendWrite := func(binding uint32, slot uint32, info vk.DescriptorImageInfo, descType vk.DescriptorType) {
		imageInfos = append(imageInfos, info)
		writes = append(writes, vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          d.bindlessSet,
			DstBinding:      binding,
			DstArrayElement: slot,
			DescriptorCount: 1,
			DescriptorType:  descType,
			PImageInfo:      &imageInfos[len(imageInfos)-1],
		})
	}

	for _, update := range d.bindlessUpdates {
		texture := d.textures.Access(update.handle)
		if texture == nil {
			continue
		}

		target := texture
		if update.deleting {
			target = dummy
		}

		appendWrite(BindlessTextureBinding, update.handle, vk.DescriptorImageInfo{
			Sampler:     d.samplerForTexture(InvalidSampler, target),
			ImageView:   target.VkImageView,
			ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
		}, vk.DescriptorTypeCombinedImageSampler)

		if texture.Flags&TextureFlagCompute != 0 {
			appendWrite(BindlessImageBinding, update.handle, vk.DescriptorImageInfo{
				ImageView:   target.VkImageView,
				ImageLayout: vk.ImageLayoutGeneral,
			}, vk.DescriptorTypeStorageImage)
		}

		if update.deleting {
			deleted = append(deleted, update.handle)
		}
	}
	d.bindlessUpdates = d.bindlessUpdates[:0]

	if len(writes) > 0 {
		d.cmds.UpdateDescriptorSets(d.device, uint32(len(writes)), &writes[0], 0, nil)
	}
	runtime.KeepAlive(imageInfos)
	runtime.KeepAlive(writes)
	return deleted
}

// drainDeletionQueue executes every entry whose frame lag has elapsed:
// the counters have come back around to the entry's tag, so the frame
// that could last reference the resource has been waited on.
func (d *Device) drainDeletionQueue() {
	for i := 0; i < len(d.deletionQueue); {
		entry := &d.deletionQueue[i]
		if entry.currentFrame != d.currentFrame {
			i++
			continue
		}
		d.executeDeletion(entry)

		last := len(d.deletionQueue) - 1
		d.deletionQueue[i] = d.deletionQueue[last]
		d.deletionQueue = d.deletionQueue[:last]
	}
}

func (d *Device) executeDeletion(entry *resourceUpdate) {
	switch entry.kind {
	case resourceKindBuffer:
		d.destroyBufferInstant(entry.handle)
	case resourceKindTexture:
		d.destroyTextureInstant(entry.handle)
	case resourceKindSampler:
		d.destroySamplerInstant(entry.handle)
	case resourceKindShaderState:
		d.destroyShaderStateInstant(entry.handle)
	case resourceKindDescriptorSetLayout:
		d.destroyDescriptorSetLayoutInstant(entry.handle)
	case resourceKindDescriptorSet:
		d.destroyDescriptorSetInstant(entry.handle)
	case resourceKindPipeline:
		d.destroyPipelineInstant(entry.handle)
	case resourceKindRenderPass:
		d.destroyRenderPassInstant(entry.handle)
	case resourceKindFramebuffer:
		d.destroyFramebufferInstant(entry.handle)
	case resourceKindNativeDescriptorSet:
		if entry.nativeSet != 0 {
			_ = d.cmds.FreeDescriptorSets(d.device, d.descriptorPool, 1, &entry.nativeSet)
			entry.nativeSet = 0
		}
	}
}
