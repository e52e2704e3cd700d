// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"github.com/gogpu/vkdevice/memory"
	"github.com/gogpu/vkdevice/vk"
)

// CreateTexture creates an image, its default view and its memory, and
// queues the bindless slot write for the next frame boundary.
func (d *Device) CreateTexture(desc TextureDescriptor) TextureHandle {
	index := d.textures.Obtain()
	if index == InvalidIndex {
		return InvalidTexture
	}
	handle := TextureHandle(index)

	texture := d.textures.Access(index)
	d.populateTexture(texture, handle, desc)

	usage := vk.ImageUsageSampledBit | vk.ImageUsageTransferDstBit | vk.ImageUsageTransferSrcBit
	if desc.Flags&TextureFlagCompute != 0 {
		usage |= vk.ImageUsageStorageBit
	}
	if desc.Flags&TextureFlagRenderTarget != 0 {
		if hasDepthOrStencil(desc.Format) {
			usage |= vk.ImageUsageDepthStencilAttachmentBit
		} else {
			usage |= vk.ImageUsageColorAttachmentBit
		}
	}

	var createFlags vk.ImageCreateFlags
	if desc.Flags&TextureFlagSparse != 0 {
		createFlags |= vk.ImageCreateSparseBindingBit | vk.ImageCreateSparseResidencyBit
	}

	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		Flags:     createFlags,
		ImageType: toVkImageType(desc.Type),
		Format:    desc.Format,
		Extent: vk.Extent3D{
			Width:  uint32(texture.Width),
			Height: uint32(texture.Height),
			Depth:  uint32(texture.Depth),
		},
		MipLevels:     texture.MipLevels,
		ArrayLayers:   texture.ArrayLayers,
		Samples:       vk.SampleCount1Bit,
		Tiling:        vk.ImageTilingOptimal,
		Usage:         usage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}
	vkCheck(d.cmds.CreateImage(d.device, &createInfo, nil, &texture.VkImage), "vkCreateImage")

	var reqs vk.MemoryRequirements
	d.cmds.GetImageMemoryRequirements(d.device, texture.VkImage, &reqs)

	alloc, err := d.allocator.Alloc(memory.Request{
		Size:      uint64(reqs.Size),
		Alignment: uint64(reqs.Alignment),
		Usage:     memory.UsageFastDeviceAccess,
		TypeBits:  reqs.MemoryTypeBits,
	})
	if err != nil {
		panic(err)
	}
	texture.Allocation = alloc
	vkCheck(d.cmds.BindImageMemory(d.device, texture.VkImage, alloc.Memory, alloc.Offset), "vkBindImageMemory")

	texture.VkImageView = d.createImageView(texture, toVkImageViewType(desc.Type), 0, texture.MipLevels, 0, texture.ArrayLayers)

	d.setResourceName(vk.ObjectTypeImage, uint64(texture.VkImage), desc.Name)

	d.queueBindlessCreate(handle)

	Logger().Debug("texture created", "name", desc.Name,
		"width", desc.Width, "height", desc.Height, "format", desc.Format)
	return handle
}

// CreateTextureView creates a view sharing the parent's image. The view
// owns only its VkImageView; destruction of the image stays with the
// parent.
func (d *Device) CreateTextureView(desc TextureViewDescriptor) TextureHandle {
	parent := d.textures.Access(uint32(desc.Parent))
	if parent == nil {
		return InvalidTexture
	}

	index := d.textures.Obtain()
	if index == InvalidIndex {
		return InvalidTexture
	}
	handle := TextureHandle(index)

	texture := d.textures.Access(index)
	*texture = *parent
	texture.Handle = handle
	texture.Name = desc.Name
	texture.ParentTexture = desc.Parent
	texture.Allocation = nil
	texture.Type = desc.Type

	mipCount := desc.MipLevelCount
	if mipCount == 0 {
		mipCount = parent.MipLevels - desc.BaseMipLevel
	}
	layerCount := desc.ArrayLayerCount
	if layerCount == 0 {
		layerCount = parent.ArrayLayers - desc.BaseArrayLayer
	}

	texture.VkImageView = d.createImageView(texture, toVkImageViewType(desc.Type),
		desc.BaseMipLevel, mipCount, desc.BaseArrayLayer, layerCount)

	d.queueBindlessCreate(handle)
	return handle
}

func (d *Device) populateTexture(texture *Texture, handle TextureHandle, desc TextureDescriptor) {
	texture.Handle = handle
	texture.Name = desc.Name
	texture.Width = max(desc.Width, 1)
	texture.Height = max(desc.Height, 1)
	texture.Depth = max(desc.Depth, 1)
	texture.MipLevels = max(desc.MipLevels, 1)
	texture.ArrayLayers = max(desc.ArrayLayers, 1)
	texture.VkFormat = desc.Format
	texture.Type = desc.Type
	texture.Flags = desc.Flags
	texture.State = ResourceStateUndefined
	texture.ParentTexture = InvalidTexture
	// A zero-valued descriptor means no sampler override. Slot 0 is the
	// device default sampler, which is the fallback anyway.
	texture.Sampler = desc.Sampler
	if desc.Sampler == 0 {
		texture.Sampler = InvalidSampler
	}
}

func (d *Device) createImageView(texture *Texture, viewType vk.ImageViewType, baseMip, mipCount, baseLayer, layerCount uint32) vk.ImageView {
	viewInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    texture.VkImage,
		ViewType: viewType,
		Format:   texture.VkFormat,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspectMask(texture.VkFormat),
			BaseMipLevel:   baseMip,
			LevelCount:     mipCount,
			BaseArrayLayer: baseLayer,
			LayerCount:     layerCount,
		},
	}
	var view vk.ImageView
	vkCheck(d.cmds.CreateImageView(d.device, &viewInfo, nil, &view), "vkCreateImageView")
	return view
}

// queueBindlessCreate schedules the texture's slot write into the
// bindless arrays at the next frame boundary.
func (d *Device) queueBindlessCreate(handle TextureHandle) {
	if !d.bindlessSupported || uint32(handle) >= BindlessResourceCount {
		return
	}
	d.bindlessUpdates = append(d.bindlessUpdates, resourceUpdate{
		kind:         resourceKindTexture,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

// DestroyTexture queues the texture for destruction. With bindless
// enabled the slot is first rewritten to the dummy texture; the native
// objects are freed one frame after that write has retired, so the total
// lag is one frame longer than for other resources.
func (d *Device) DestroyTexture(handle TextureHandle) {
	if uint32(handle) >= d.textures.Capacity() {
		Logger().Warn("destroy of invalid texture", "handle", uint32(handle))
		return
	}
	if d.bindlessSupported && uint32(handle) < BindlessResourceCount {
		d.bindlessUpdates = append(d.bindlessUpdates, resourceUpdate{
			kind:         resourceKindTexture,
			handle:       uint32(handle),
			currentFrame: d.currentFrame,
			deleting:     true,
		})
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindTexture,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyTextureInstant(index uint32) {
	texture := d.textures.Access(index)
	if texture.VkImageView != 0 {
		d.cmds.DestroyImageView(d.device, texture.VkImageView, nil)
		texture.VkImageView = 0
	}
	// Views and swapchain wrappers do not own the image.
	if texture.ParentTexture == InvalidTexture && texture.Allocation != nil {
		d.cmds.DestroyImage(d.device, texture.VkImage, nil)
		_ = d.allocator.Free(texture.Allocation)
	}
	texture.VkImage = 0
	texture.Allocation = nil
	d.textures.Release(index)
}

// AccessTexture returns the record of a live texture.
func (d *Device) AccessTexture(handle TextureHandle) *Texture {
	return d.textures.Access(uint32(handle))
}

// QueryTexture returns the creation description of a live texture.
func (d *Device) QueryTexture(handle TextureHandle) (TextureDescriptor, bool) {
	texture := d.textures.Access(uint32(handle))
	if texture == nil {
		return TextureDescriptor{}, false
	}
	return TextureDescriptor{
		Name:        texture.Name,
		Width:       texture.Width,
		Height:      texture.Height,
		Depth:       texture.Depth,
		MipLevels:   texture.MipLevels,
		ArrayLayers: texture.ArrayLayers,
		Format:      texture.VkFormat,
		Type:        texture.Type,
		Flags:       texture.Flags,
		Sampler:     texture.Sampler,
	}, true
}
