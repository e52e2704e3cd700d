// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"os"
	"runtime"
	"unsafe"

	"github.com/gogpu/vkdevice/vk"
)

// shaderEntryPoint is the entry point name of every stage.
var shaderEntryPoint = vk.CString("main")

// loadPipelineCache reads a cache file and validates its header against
// the running device. A mismatching or corrupt file is ignored and will
// be regenerated.
func (d *Device) loadPipelineCache(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	headerSize := int(unsafe.Sizeof(vk.PipelineCacheHeader{}))
	if len(data) < headerSize {
		Logger().Warn("pipeline cache file too small, ignoring", "path", path)
		return nil, false
	}

	header := (*vk.PipelineCacheHeader)(unsafe.Pointer(unsafe.SliceData(data)))
	if header.HeaderVersion != vk.PipelineCacheHeaderVersionOne ||
		header.VendorID != d.properties.VendorID ||
		header.DeviceID != d.properties.DeviceID ||
		header.PipelineCacheUUID != d.properties.PipelineCacheUUID {
		Logger().Warn("pipeline cache device mismatch, ignoring", "path", path)
		return nil, false
	}
	return data, true
}

// CreatePipeline builds a graphics or compute pipeline from the creation
// record. When cachePath is non-empty the driver cache blob is seeded
// from it (if valid for this device) or written back to it after the
// build.
func (d *Device) CreatePipeline(desc PipelineDescriptor, cachePath string) PipelineHandle {
	index := d.pipelines.Obtain()
	if index == InvalidIndex {
		return InvalidPipeline
	}
	handle := PipelineHandle(index)

	var pipelineCache vk.PipelineCache
	cacheHit := false
	if cachePath != "" {
		cacheInfo := vk.PipelineCacheCreateInfo{SType: vk.StructureTypePipelineCacheCreateInfo}
		var blob []byte
		if blob, cacheHit = d.loadPipelineCache(cachePath); cacheHit {
			cacheInfo.InitialDataSize = uintptr(len(blob))
			cacheInfo.PInitialData = uintptr(unsafe.Pointer(unsafe.SliceData(blob)))
		}
		vkCheck(d.cmds.CreatePipelineCache(d.device, &cacheInfo, nil, &pipelineCache), "vkCreatePipelineCache")
		runtime.KeepAlive(blob)
	}

	shaderHandle := d.CreateShaderState(desc.Shaders)
	if !shaderHandle.Valid() {
		if pipelineCache != 0 {
			d.cmds.DestroyPipelineCache(d.device, pipelineCache, nil)
		}
		d.pipelines.Release(index)
		return InvalidPipeline
	}
	shader := d.shaders.Access(uint32(shaderHandle))

	pipeline := d.pipelines.Access(index)
	pipeline.Handle = handle
	pipeline.ShaderState = shaderHandle
	pipeline.NumActiveLayouts = 0
	pipeline.BindlessBorrowed = false

	// One layout per set index 0..N-1 as reported by reflection. Set 0 is
	// always the shared bindless layout when bindless is supported
	// (borrowed, never destroyed with the pipeline); every other set
	// gets a fresh layout owned by the pipeline.
	numSets := 0
	for _, set := range shader.Parse.Sets {
		if int(set.Index) >= MaxDescriptorSetLayouts {
			continue
		}
		if int(set.Index)+1 > numSets {
			numSets = int(set.Index) + 1
		}
	}
	if numSets == 0 && d.bindlessSupported {
		// Pipelines with no reflected sets still bind the bindless set.
		numSets = 1
	}

	var vkLayouts [MaxDescriptorSetLayouts]vk.DescriptorSetLayout
	for s := 0; s < numSets; s++ {
		var layoutHandle DescriptorSetLayoutHandle
		if s == 0 && d.bindlessSupported {
			layoutHandle = d.bindlessLayout
			pipeline.BindlessBorrowed = true
		} else {
			var bindings []DescriptorBinding
			for _, set := range shader.Parse.Sets {
				if int(set.Index) != s {
					continue
				}
				for _, b := range set.Bindings {
					bindings = append(bindings, DescriptorBinding{
						Type:  b.Type,
						Index: uint16(b.Index),
						Count: uint16(max(b.Count, 1)),
						Name:  b.Name,
					})
				}
			}
			layoutHandle = d.CreateDescriptorSetLayout(DescriptorSetLayoutDescriptor{
				Name:     desc.Name,
				Bindings: bindings,
				SetIndex: uint32(s),
			})
		}
		pipeline.DescriptorSetLayoutHandles[s] = layoutHandle
		vkLayouts[s] = d.descriptorSetLayouts.Access(uint32(layoutHandle)).VkLayout
	}
	pipeline.NumActiveLayouts = numSets

	layoutInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: uint32(numSets),
	}
	if numSets > 0 {
		layoutInfo.PSetLayouts = &vkLayouts[0]
	}
	vkCheck(d.cmds.CreatePipelineLayout(d.device, &layoutInfo, nil, &pipeline.VkLayout), "vkCreatePipelineLayout")
	runtime.KeepAlive(&vkLayouts)

	if shader.IsCompute {
		d.buildComputePipeline(pipeline, shader, pipelineCache)
	} else {
		d.buildGraphicsPipeline(pipeline, shader, desc, pipelineCache)
	}

	if pipelineCache != 0 {
		if !cacheHit {
			d.dumpPipelineCache(pipelineCache, cachePath)
		}
		d.cmds.DestroyPipelineCache(d.device, pipelineCache, nil)
	}

	d.setResourceName(vk.ObjectTypePipeline, uint64(pipeline.VkPipeline), desc.Name)
	return handle
}

func (d *Device) dumpPipelineCache(cache vk.PipelineCache, path string) {
	var size uintptr
	if d.cmds.GetPipelineCacheData(d.device, cache, &size, nil) != vk.Success || size == 0 {
		return
	}
	blob := make([]byte, size)
	if d.cmds.GetPipelineCacheData(d.device, cache, &size, unsafe.Pointer(&blob[0])) != vk.Success {
		return
	}
	if err := os.WriteFile(path, blob[:size], 0o644); err != nil {
		Logger().Warn("failed to write pipeline cache", "path", path, "err", err)
	}
}

func (d *Device) buildComputePipeline(pipeline *Pipeline, shader *ShaderState, cache vk.PipelineCache) {
	createInfo := vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageComputeBit,
			Module: shader.Modules[0],
			PName:  vk.CStringPtr(shaderEntryPoint),
		},
		Layout:            pipeline.VkLayout,
		BasePipelineIndex: -1,
	}
	vkCheck(d.cmds.CreateComputePipelines(d.device, cache, 1, &createInfo, nil, &pipeline.VkPipeline), "vkCreateComputePipelines")
	pipeline.BindPoint = vk.PipelineBindPointCompute
	pipeline.GraphicsPipeline = false
}

func (d *Device) buildGraphicsPipeline(pipeline *Pipeline, shader *ShaderState, desc PipelineDescriptor, cache vk.PipelineCache) {
	var stages [MaxShaderStages]vk.PipelineShaderStageCreateInfo
	for i := 0; i < shader.ActiveStages; i++ {
		stages[i] = vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  shader.Stages[i],
			Module: shader.Modules[i],
			PName:  vk.CStringPtr(shaderEntryPoint),
		}
	}

	// Vertex layout.
	var bindings [MaxVertexStreams]vk.VertexInputBindingDescription
	var attributes [MaxVertexAttributes]vk.VertexInputAttributeDescription
	for i, s := range desc.VertexInput.Streams {
		bindings[i] = vk.VertexInputBindingDescription{
			Binding:   uint32(s.Binding),
			Stride:    uint32(s.Stride),
			InputRate: s.InputRate,
		}
	}
	for i, a := range desc.VertexInput.Attributes {
		attributes[i] = vk.VertexInputAttributeDescription{
			Location: uint32(a.Location),
			Binding:  uint32(a.Binding),
			Format:   a.Format,
			Offset:   a.Offset,
		}
	}
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(desc.VertexInput.Streams)),
		VertexAttributeDescriptionCount: uint32(len(desc.VertexInput.Attributes)),
	}
	if len(desc.VertexInput.Streams) > 0 {
		vertexInput.PVertexBindingDescriptions = &bindings[0]
	}
	if len(desc.VertexInput.Attributes) > 0 {
		vertexInput.PVertexAttributeDescriptions = &attributes[0]
	}

	topology := desc.Topology
	if topology == 0 {
		topology = vk.PrimitiveTopologyTriangleList
	}
	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: topology,
	}

	// Blend state: when any is specified, one per color output.
	numOutputs := desc.RenderPass.NumColorFormats
	if len(desc.BlendStates) > 0 && uint32(len(desc.BlendStates)) != numOutputs {
		panic("vkdevice: blend state count must match color output count")
	}
	var blendAttachments [MaxImageOutputs]vk.PipelineColorBlendAttachmentState
	for i := uint32(0); i < numOutputs; i++ {
		blendAttachments[i] = vk.PipelineColorBlendAttachmentState{
			ColorWriteMask: vk.ColorComponentAll,
		}
		if i < uint32(len(desc.BlendStates)) {
			b := desc.BlendStates[i]
			mask := b.WriteMask
			if mask == 0 {
				mask = vk.ColorComponentAll
			}
			state := vk.PipelineColorBlendAttachmentState{
				SrcColorBlendFactor: b.SourceColor,
				DstColorBlendFactor: b.DestinationColor,
				ColorBlendOp:        b.ColorOperation,
				SrcAlphaBlendFactor: b.SourceColor,
				DstAlphaBlendFactor: b.DestinationColor,
				AlphaBlendOp:        b.ColorOperation,
				ColorWriteMask:      mask,
			}
			if b.BlendEnabled {
				state.BlendEnable = vk.True
			}
			if b.SeparateBlend {
				state.SrcAlphaBlendFactor = b.SourceAlpha
				state.DstAlphaBlendFactor = b.DestinationAlpha
				state.AlphaBlendOp = b.AlphaOperation
			}
			blendAttachments[i] = state
		}
	}
	colorBlend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		AttachmentCount: numOutputs,
	}
	if numOutputs > 0 {
		colorBlend.PAttachments = &blendAttachments[0]
	}

	depthStencil := vk.PipelineDepthStencilStateCreateInfo{
		SType:          vk.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthCompareOp: desc.DepthStencil.DepthComparison,
		Front:          desc.DepthStencil.Front,
		Back:           desc.DepthStencil.Back,
	}
	if desc.DepthStencil.DepthEnable {
		depthStencil.DepthTestEnable = vk.True
	}
	if desc.DepthStencil.DepthWriteEnable {
		depthStencil.DepthWriteEnable = vk.True
	}
	if desc.DepthStencil.StencilEnable {
		depthStencil.StencilTestEnable = vk.True
	}

	rasterization := vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: desc.Rasterization.Fill,
		CullMode:    desc.Rasterization.CullMode,
		FrontFace:   desc.Rasterization.Front,
		LineWidth:   1,
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
	}

	// Viewport and scissor are always dynamic.
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}
	dynamicStates := [2]vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor}
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: 2,
		PDynamicStates:    &dynamicStates[0],
	}

	createInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(shader.ActiveStages),
		PStages:             &stages[0],
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterization,
		PMultisampleState:   &multisample,
		PDepthStencilState:  &depthStencil,
		PColorBlendState:    &colorBlend,
		PDynamicState:       &dynamicState,
		Layout:              pipeline.VkLayout,
		BasePipelineIndex:   -1,
	}

	// Under dynamic rendering the pipeline carries its attachment
	// formats instead of a render-pass handle.
	var renderingInfo vk.PipelineRenderingCreateInfoKHR
	if d.dynamicRenderingSupported {
		renderingInfo = vk.PipelineRenderingCreateInfoKHR{
			SType:                   vk.StructureTypePipelineRenderingCreateInfoKhr,
			ColorAttachmentCount:    numOutputs,
			DepthAttachmentFormat:   desc.RenderPass.DepthStencilFormat,
			StencilAttachmentFormat: vk.FormatUndefined,
		}
		if numOutputs > 0 {
			renderingInfo.PColorAttachmentFormats = &desc.RenderPass.ColorFormats[0]
		}
		createInfo.PNext = uintptrOf(&renderingInfo)
	} else {
		createInfo.RenderPass = d.getRenderPass(desc.RenderPass, desc.Name)
	}

	vkCheck(d.cmds.CreateGraphicsPipelines(d.device, cache, 1, &createInfo, nil, &pipeline.VkPipeline), "vkCreateGraphicsPipelines")
	runtime.KeepAlive(&stages)
	runtime.KeepAlive(&bindings)
	runtime.KeepAlive(&attributes)
	runtime.KeepAlive(&blendAttachments)
	runtime.KeepAlive(&dynamicStates)
	runtime.KeepAlive(&renderingInfo)
	runtime.KeepAlive(&desc)

	pipeline.BindPoint = vk.PipelineBindPointGraphics
	pipeline.GraphicsPipeline = true
}

// DestroyPipeline queues the pipeline for deferred destruction together
// with its owned shader state and layouts.
func (d *Device) DestroyPipeline(handle PipelineHandle) {
	if uint32(handle) >= d.pipelines.Capacity() {
		Logger().Warn("destroy of invalid pipeline", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindPipeline,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})

	// Owned set layouts ride the queue separately so their lag matches.
	pipeline := d.pipelines.Access(uint32(handle))
	for i := 0; i < pipeline.NumActiveLayouts; i++ {
		layoutHandle := pipeline.DescriptorSetLayoutHandles[i]
		if layoutHandle == d.bindlessLayout && pipeline.BindlessBorrowed {
			continue
		}
		d.DestroyDescriptorSetLayout(layoutHandle)
	}
	d.DestroyShaderState(pipeline.ShaderState)
}

func (d *Device) destroyPipelineInstant(index uint32) {
	pipeline := d.pipelines.Access(index)
	if pipeline.VkPipeline != 0 {
		d.cmds.DestroyPipeline(d.device, pipeline.VkPipeline, nil)
		pipeline.VkPipeline = 0
	}
	if pipeline.VkLayout != 0 {
		d.cmds.DestroyPipelineLayout(d.device, pipeline.VkLayout, nil)
		pipeline.VkLayout = 0
	}
	d.pipelines.Release(index)
}

// AccessPipeline returns the record of a live pipeline.
func (d *Device) AccessPipeline(handle PipelineHandle) *Pipeline {
	return d.pipelines.Access(uint32(handle))
}
