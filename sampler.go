// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"runtime"

	"github.com/gogpu/vkdevice/vk"
)

// CreateSampler creates a sampler and returns its handle.
func (d *Device) CreateSampler(desc SamplerDescriptor) SamplerHandle {
	index := d.samplers.Obtain()
	if index == InvalidIndex {
		return InvalidSampler
	}
	handle := SamplerHandle(index)

	sampler := d.samplers.Access(index)
	sampler.Handle = handle
	sampler.Name = desc.Name
	sampler.MinFilter = desc.MinFilter
	sampler.MagFilter = desc.MagFilter
	sampler.MipFilter = desc.MipFilter
	sampler.AddressModeU = desc.AddressModeU
	sampler.AddressModeV = desc.AddressModeV
	sampler.AddressModeW = desc.AddressModeW
	sampler.ReductionMode = desc.ReductionMode
	sampler.UseReduction = desc.UseReduction

	createInfo := vk.SamplerCreateInfo{
		SType:        vk.StructureTypeSamplerCreateInfo,
		MagFilter:    desc.MagFilter,
		MinFilter:    desc.MinFilter,
		MipmapMode:   desc.MipFilter,
		AddressModeU: desc.AddressModeU,
		AddressModeV: desc.AddressModeV,
		AddressModeW: desc.AddressModeW,
		MaxLod:       16,
	}

	var reduction vk.SamplerReductionModeCreateInfoEXT
	if desc.UseReduction {
		reduction = vk.SamplerReductionModeCreateInfoEXT{
			SType:         vk.StructureTypeSamplerReductionModeCreateInfoExt,
			ReductionMode: desc.ReductionMode,
		}
		createInfo.PNext = uintptrOf(&reduction)
	}

	vkCheck(d.cmds.CreateSampler(d.device, &createInfo, nil, &sampler.VkSampler), "vkCreateSampler")
	runtime.KeepAlive(&reduction)

	d.setResourceName(vk.ObjectTypeSampler, uint64(sampler.VkSampler), desc.Name)
	return handle
}

// DestroySampler queues the sampler for deferred destruction.
func (d *Device) DestroySampler(handle SamplerHandle) {
	if uint32(handle) >= d.samplers.Capacity() {
		Logger().Warn("destroy of invalid sampler", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindSampler,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroySamplerInstant(index uint32) {
	sampler := d.samplers.Access(index)
	if sampler.VkSampler != 0 {
		d.cmds.DestroySampler(d.device, sampler.VkSampler, nil)
		sampler.VkSampler = 0
	}
	d.samplers.Release(index)
}

// AccessSampler returns the record of a live sampler.
func (d *Device) AccessSampler(handle SamplerHandle) *Sampler {
	return d.samplers.Access(uint32(handle))
}

// QuerySampler returns the creation description of a live sampler.
func (d *Device) QuerySampler(handle SamplerHandle) (SamplerDescriptor, bool) {
	sampler := d.samplers.Access(uint32(handle))
	if sampler == nil {
		return SamplerDescriptor{}, false
	}
	return SamplerDescriptor{
		Name:          sampler.Name,
		MinFilter:     sampler.MinFilter,
		MagFilter:     sampler.MagFilter,
		MipFilter:     sampler.MipFilter,
		AddressModeU:  sampler.AddressModeU,
		AddressModeV:  sampler.AddressModeV,
		AddressModeW:  sampler.AddressModeW,
		ReductionMode: sampler.ReductionMode,
		UseReduction:  sampler.UseReduction,
	}, true
}
