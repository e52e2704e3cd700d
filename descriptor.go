// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"runtime"

	"github.com/gogpu/vkdevice/vk"
)

// isImageBinding reports whether a binding lives in the bindless arrays
// when bindless is supported.
func isImageBinding(t vk.DescriptorType) bool {
	return t == vk.DescriptorTypeCombinedImageSampler || t == vk.DescriptorTypeStorageImage
}

// CreateDescriptorSetLayout creates a set layout. When bindless is
// supported and the layout targets set 0 without being the bindless
// layout itself, image-typed bindings are skipped: they live in the
// shared bindless layout instead. Uniform buffers are always translated
// to their dynamic variant so the dynamic-buffer offset discipline
// applies.
func (d *Device) CreateDescriptorSetLayout(desc DescriptorSetLayoutDescriptor) DescriptorSetLayoutHandle {
	if len(desc.Bindings) > MaxDescriptorsPerSet {
		panic("vkdevice: descriptor set layout exceeds per-set binding limit")
	}

	index := d.descriptorSetLayouts.Obtain()
	if index == InvalidIndex {
		return InvalidDescriptorSetLayout
	}
	handle := DescriptorSetLayoutHandle(index)

	layout := d.descriptorSetLayouts.Access(index)
	layout.Handle = handle
	layout.SetIndex = desc.SetIndex
	layout.Bindless = desc.Bindless
	layout.Dynamic = desc.Dynamic
	layout.Bindings = nil
	layout.VkBindings = nil
	layout.indexToBinding = make(map[uint16]int, len(desc.Bindings))

	skipImages := d.bindlessSupported && !desc.Bindless && desc.SetIndex == 0

	for _, binding := range desc.Bindings {
		if skipImages && isImageBinding(binding.Type) {
			continue
		}

		vkType := binding.Type
		if vkType == vk.DescriptorTypeUniformBuffer {
			vkType = vk.DescriptorTypeUniformBufferDynamic
		}

		layout.indexToBinding[binding.Index] = len(layout.Bindings)
		layout.Bindings = append(layout.Bindings, binding)
		layout.VkBindings = append(layout.VkBindings, vk.DescriptorSetLayoutBinding{
			Binding:         uint32(binding.Index),
			DescriptorType:  vkType,
			DescriptorCount: uint32(binding.Count),
			StageFlags:      vk.ShaderStageAll,
		})
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(layout.VkBindings)),
	}
	if len(layout.VkBindings) > 0 {
		createInfo.PBindings = &layout.VkBindings[0]
	}

	var bindingFlags []vk.DescriptorBindingFlagsEXT
	var flagsInfo vk.DescriptorSetLayoutBindingFlagsCreateInfoEXT
	if desc.Bindless {
		createInfo.Flags = vk.DescriptorSetLayoutCreateUpdateAfterBindPoolBitExt
		bindingFlags = make([]vk.DescriptorBindingFlagsEXT, len(layout.VkBindings))
		for i := range bindingFlags {
			bindingFlags[i] = vk.DescriptorBindingPartiallyBoundBitExt | vk.DescriptorBindingUpdateAfterBindBitExt
		}
		flagsInfo = vk.DescriptorSetLayoutBindingFlagsCreateInfoEXT{
			SType:        vk.StructureTypeDescriptorSetLayoutBindingFlagsCreateInfoExt,
			BindingCount: uint32(len(bindingFlags)),
		}
		if len(bindingFlags) > 0 {
			flagsInfo.PBindingFlags = &bindingFlags[0]
		}
		createInfo.PNext = uintptrOf(&flagsInfo)
	}

	vkCheck(d.cmds.CreateDescriptorSetLayout(d.device, &createInfo, nil, &layout.VkLayout), "vkCreateDescriptorSetLayout")
	runtime.KeepAlive(layout.VkBindings)
	runtime.KeepAlive(bindingFlags)
	runtime.KeepAlive(&flagsInfo)

	d.setResourceName(vk.ObjectTypeDescriptorSetLayout, uint64(layout.VkLayout), desc.Name)
	return handle
}

// DestroyDescriptorSetLayout queues the layout for deferred destruction.
func (d *Device) DestroyDescriptorSetLayout(handle DescriptorSetLayoutHandle) {
	if uint32(handle) >= d.descriptorSetLayouts.Capacity() {
		Logger().Warn("destroy of invalid descriptor set layout", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindDescriptorSetLayout,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyDescriptorSetLayoutInstant(index uint32) {
	layout := d.descriptorSetLayouts.Access(index)
	if layout.VkLayout != 0 {
		d.cmds.DestroyDescriptorSetLayout(d.device, layout.VkLayout, nil)
		layout.VkLayout = 0
	}
	d.descriptorSetLayouts.Release(index)
}

// AccessDescriptorSetLayout returns the record of a live layout.
func (d *Device) AccessDescriptorSetLayout(handle DescriptorSetLayoutHandle) *DescriptorSetLayout {
	return d.descriptorSetLayouts.Access(uint32(handle))
}

// CreateDescriptorSet allocates a set from the global pool and writes
// every resource of the creation record into it.
func (d *Device) CreateDescriptorSet(desc DescriptorSetDescriptor) DescriptorSetHandle {
	if len(desc.Resources) > MaxDescriptorsPerSet {
		panic("vkdevice: descriptor set exceeds per-set resource limit")
	}

	layout := d.descriptorSetLayouts.Access(uint32(desc.Layout))
	if layout == nil {
		return InvalidDescriptorSet
	}

	index := d.descriptorSets.Obtain()
	if index == InvalidIndex {
		return InvalidDescriptorSet
	}
	handle := DescriptorSetHandle(index)

	set := d.descriptorSets.Access(index)
	set.Handle = handle
	set.Layout = layout
	set.LayoutHandle = desc.Layout
	set.Resources = make([]uint32, len(desc.Resources))
	set.Samplers = make([]SamplerHandle, len(desc.Resources))
	set.Bindings = make([]uint16, len(desc.Resources))
	for i, r := range desc.Resources {
		set.Resources[i] = r.Resource
		set.Samplers[i] = r.Sampler
		if r.Sampler == 0 {
			set.Samplers[i] = InvalidSampler
		}
		set.Bindings[i] = r.Binding
	}

	set.VkSet = d.allocateNativeSet(layout)
	d.writeDescriptorSet(set)

	d.setResourceName(vk.ObjectTypeDescriptorSet, uint64(set.VkSet), desc.Name)
	return handle
}

func (d *Device) allocateNativeSet(layout *DescriptorSetLayout) vk.DescriptorSet {
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     d.descriptorPool,
		DescriptorSetCount: 1,
		PSetLayouts:        &layout.VkLayout,
	}
	var set vk.DescriptorSet
	vkCheck(d.cmds.AllocateDescriptorSets(d.device, &allocInfo, &set), "vkAllocateDescriptorSets")
	return set
}

// writeDescriptorSet fills and submits the write-descriptor array for
// every resource captured by the set.
func (d *Device) writeDescriptorSet(set *DescriptorSet) {
	writes := make([]vk.WriteDescriptorSet, 0, len(set.Resources))
	bufferInfos := make([]vk.DescriptorBufferInfo, len(set.Resources))
	imageInfos := make([]vk.DescriptorImageInfo, len(set.Resources))

	skipImages := d.bindlessSupported && !set.Layout.Bindless && set.Layout.SetIndex == 0

	for i := range set.Resources {
		binding := set.Layout.BindingData(set.Bindings[i])
		if binding == nil {
			continue
		}
		if skipImages && isImageBinding(binding.Type) {
			continue
		}

		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set.VkSet,
			DstBinding:      uint32(binding.Index),
			DescriptorCount: 1,
			DescriptorType:  binding.Type,
		}

		switch binding.Type {
		case vk.DescriptorTypeUniformBuffer, vk.DescriptorTypeUniformBufferDynamic:
			buffer := d.buffers.Access(set.Resources[i])
			// Dynamic-aliasing buffers bind their parent; the per-frame
			// offset arrives at bind time as a dynamic offset.
			target := buffer
			if buffer.ParentBuffer != InvalidBuffer {
				target = d.buffers.Access(uint32(buffer.ParentBuffer))
			}
			bufferInfos[i] = vk.DescriptorBufferInfo{
				Buffer: target.VkBuffer,
				Offset: 0,
				Range:  vk.DeviceSize(buffer.Size),
			}
			write.DescriptorType = vk.DescriptorTypeUniformBufferDynamic
			write.PBufferInfo = &bufferInfos[i]

		case vk.DescriptorTypeStorageBuffer, vk.DescriptorTypeStorageBufferDynamic:
			buffer := d.buffers.Access(set.Resources[i])
			bufferInfos[i] = vk.DescriptorBufferInfo{
				Buffer: buffer.VkBuffer,
				Offset: 0,
				Range:  vk.DeviceSize(buffer.Size),
			}
			write.PBufferInfo = &bufferInfos[i]

		case vk.DescriptorTypeCombinedImageSampler:
			texture := d.textures.Access(set.Resources[i])
			imageInfos[i] = vk.DescriptorImageInfo{
				Sampler:     d.samplerForTexture(set.Samplers[i], texture),
				ImageView:   texture.VkImageView,
				ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
			}
			write.PImageInfo = &imageInfos[i]

		case vk.DescriptorTypeStorageImage:
			texture := d.textures.Access(set.Resources[i])
			imageInfos[i] = vk.DescriptorImageInfo{
				ImageView:   texture.VkImageView,
				ImageLayout: vk.ImageLayoutGeneral,
			}
			write.PImageInfo = &imageInfos[i]

		case vk.DescriptorTypeSampledImage:
			texture := d.textures.Access(set.Resources[i])
			imageInfos[i] = vk.DescriptorImageInfo{
				ImageView:   texture.VkImageView,
				ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
			}
			write.PImageInfo = &imageInfos[i]

		case vk.DescriptorTypeSampler:
			sampler := d.samplers.Access(set.Resources[i])
			imageInfos[i] = vk.DescriptorImageInfo{Sampler: sampler.VkSampler}
			write.PImageInfo = &imageInfos[i]

		default:
			continue
		}

		writes = append(writes, write)
	}

	if len(writes) > 0 {
		d.cmds.UpdateDescriptorSets(d.device, uint32(len(writes)), &writes[0], 0, nil)
	}
	runtime.KeepAlive(bufferInfos)
	runtime.KeepAlive(imageInfos)
	runtime.KeepAlive(writes)
}

// samplerForTexture resolves the sampler precedence for combined image
// samplers: per-slot override, texture's cached sampler, default.
func (d *Device) samplerForTexture(override SamplerHandle, texture *Texture) vk.Sampler {
	if override.Valid() {
		if s := d.samplers.Access(uint32(override)); s != nil && s.VkSampler != 0 {
			return s.VkSampler
		}
	}
	if texture.Sampler.Valid() {
		if s := d.samplers.Access(uint32(texture.Sampler)); s != nil && s.VkSampler != 0 {
			return s.VkSampler
		}
	}
	return d.samplers.Access(uint32(d.defaultSampler)).VkSampler
}

// UpdateDescriptorSet queues a rewrite of the set's captured resources.
// The rewrite happens at the start of the next frame: a new native set
// is allocated and the old one is queued for deferred destruction, since
// in-flight frames may still reference it.
func (d *Device) UpdateDescriptorSet(handle DescriptorSetHandle) {
	if uint32(handle) >= d.descriptorSets.Capacity() {
		Logger().Warn("update of invalid descriptor set", "handle", uint32(handle))
		return
	}
	d.descriptorSetUpdates = append(d.descriptorSetUpdates, descriptorSetUpdate{
		descriptorSet: handle,
		frameIssued:   d.currentFrame,
	})
}

// applyDescriptorSetUpdates drains the update queue at frame start.
func (d *Device) applyDescriptorSetUpdates() {
	for _, update := range d.descriptorSetUpdates {
		set := d.descriptorSets.Access(uint32(update.descriptorSet))
		if set == nil || set.VkSet == 0 {
			continue
		}

		old := set.VkSet
		set.VkSet = d.allocateNativeSet(set.Layout)
		d.writeDescriptorSet(set)

		d.deletionQueue = append(d.deletionQueue, resourceUpdate{
			kind:         resourceKindNativeDescriptorSet,
			handle:       InvalidIndex,
			currentFrame: d.currentFrame,
			nativeSet:    old,
		})
	}
	d.descriptorSetUpdates = d.descriptorSetUpdates[:0]
}

// DestroyDescriptorSet queues the set for deferred destruction.
func (d *Device) DestroyDescriptorSet(handle DescriptorSetHandle) {
	if uint32(handle) >= d.descriptorSets.Capacity() {
		Logger().Warn("destroy of invalid descriptor set", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindDescriptorSet,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyDescriptorSetInstant(index uint32) {
	set := d.descriptorSets.Access(index)
	if set.VkSet != 0 {
		_ = d.cmds.FreeDescriptorSets(d.device, d.descriptorPool, 1, &set.VkSet)
		set.VkSet = 0
	}
	set.Resources = nil
	set.Samplers = nil
	set.Bindings = nil
	d.descriptorSets.Release(index)
}

// AccessDescriptorSet returns the record of a live set.
func (d *Device) AccessDescriptorSet(handle DescriptorSetHandle) *DescriptorSet {
	return d.descriptorSets.Access(uint32(handle))
}
