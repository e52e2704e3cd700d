// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Extension structures: VK_KHR_timeline_semaphore, VK_KHR_dynamic_rendering,
// VK_KHR_synchronization2, VK_EXT_descriptor_indexing, VK_EXT_debug_utils,
// VK_EXT_sampler_filter_minmax, VK_EXT_validation_features and
// VK_NV_mesh_shader. The feature and create-info structures are chained
// through PNext (ValidationFeaturesEXT into instance creation, the rest into
// the create or submit info they extend); the debug-utils
// structures are passed directly to their entry points.

package vk

// Extension name constants, null-terminator excluded.
const (
	KhrSwapchainExtensionName          = "VK_KHR_swapchain"
	KhrSurfaceExtensionName            = "VK_KHR_surface"
	KhrDynamicRenderingExtensionName   = "VK_KHR_dynamic_rendering"
	KhrTimelineSemaphoreExtensionName  = "VK_KHR_timeline_semaphore"
	KhrSynchronization2ExtensionName   = "VK_KHR_synchronization2"
	ExtDescriptorIndexingExtensionName = "VK_EXT_descriptor_indexing"
	ExtDebugUtilsExtensionName         = "VK_EXT_debug_utils"
	ExtSamplerFilterMinmaxExtensionName = "VK_EXT_sampler_filter_minmax"
	NvMeshShaderExtensionName          = "VK_NV_mesh_shader"
	KhrValidationLayerName             = "VK_LAYER_KHRONOS_validation"
)

// VK_KHR_timeline_semaphore

type PhysicalDeviceTimelineSemaphoreFeaturesKHR struct {
	SType             StructureType
	PNext             uintptr
	TimelineSemaphore Bool32
}

type SemaphoreTypeCreateInfoKHR struct {
	SType         StructureType
	PNext         uintptr
	SemaphoreType SemaphoreTypeKHR
	InitialValue  uint64
}

type TimelineSemaphoreSubmitInfoKHR struct {
	SType                     StructureType
	PNext                     uintptr
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    *uint64
}

type SemaphoreWaitInfoKHR struct {
	SType          StructureType
	PNext          uintptr
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

// VK_KHR_dynamic_rendering

type PhysicalDeviceDynamicRenderingFeaturesKHR struct {
	SType            StructureType
	PNext            uintptr
	DynamicRendering Bool32
}

type RenderingAttachmentInfoKHR struct {
	SType              StructureType
	PNext              uintptr
	ImageView          ImageView
	ImageLayout        ImageLayout
	ResolveMode        uint32
	ResolveImageView   ImageView
	ResolveImageLayout ImageLayout
	LoadOp             AttachmentLoadOp
	StoreOp            AttachmentStoreOp
	ClearValue         ClearValue
}

type RenderingInfoKHR struct {
	SType                StructureType
	PNext                uintptr
	Flags                uint32
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    *RenderingAttachmentInfoKHR
	PDepthAttachment     *RenderingAttachmentInfoKHR
	PStencilAttachment   *RenderingAttachmentInfoKHR
}

type PipelineRenderingCreateInfoKHR struct {
	SType                   StructureType
	PNext                   uintptr
	ViewMask                uint32
	ColorAttachmentCount    uint32
	PColorAttachmentFormats *Format
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
}

type CommandBufferInheritanceRenderingInfoKHR struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   uint32
	ViewMask                uint32
	ColorAttachmentCount    uint32
	PColorAttachmentFormats *Format
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
	RasterizationSamples    SampleCountFlagBits
}

// VK_KHR_synchronization2

type PhysicalDeviceSynchronization2FeaturesKHR struct {
	SType            StructureType
	PNext            uintptr
	Synchronization2 Bool32
}

// VK_EXT_descriptor_indexing

type PhysicalDeviceDescriptorIndexingFeaturesEXT struct {
	SType                                              StructureType
	PNext                                              uintptr
	ShaderInputAttachmentArrayDynamicIndexing          Bool32
	ShaderUniformTexelBufferArrayDynamicIndexing       Bool32
	ShaderStorageTexelBufferArrayDynamicIndexing       Bool32
	ShaderUniformBufferArrayNonUniformIndexing         Bool32
	ShaderSampledImageArrayNonUniformIndexing          Bool32
	ShaderStorageBufferArrayNonUniformIndexing         Bool32
	ShaderStorageImageArrayNonUniformIndexing          Bool32
	ShaderInputAttachmentArrayNonUniformIndexing       Bool32
	ShaderUniformTexelBufferArrayNonUniformIndexing    Bool32
	ShaderStorageTexelBufferArrayNonUniformIndexing    Bool32
	DescriptorBindingUniformBufferUpdateAfterBind      Bool32
	DescriptorBindingSampledImageUpdateAfterBind       Bool32
	DescriptorBindingStorageImageUpdateAfterBind       Bool32
	DescriptorBindingStorageBufferUpdateAfterBind      Bool32
	DescriptorBindingUniformTexelBufferUpdateAfterBind Bool32
	DescriptorBindingStorageTexelBufferUpdateAfterBind Bool32
	DescriptorBindingUpdateUnusedWhilePending          Bool32
	DescriptorBindingPartiallyBound                    Bool32
	DescriptorBindingVariableDescriptorCount           Bool32
	RuntimeDescriptorArray                             Bool32
}

type DescriptorSetLayoutBindingFlagsCreateInfoEXT struct {
	SType         StructureType
	PNext         uintptr
	BindingCount  uint32
	PBindingFlags *DescriptorBindingFlagsEXT
}

// VK_EXT_sampler_filter_minmax

type SamplerReductionModeCreateInfoEXT struct {
	SType         StructureType
	PNext         uintptr
	ReductionMode SamplerReductionModeEXT
}

// VK_NV_mesh_shader

type PhysicalDeviceMeshShaderFeaturesNV struct {
	SType      StructureType
	PNext      uintptr
	TaskShader Bool32
	MeshShader Bool32
}

// VK_EXT_validation_features

type ValidationFeaturesEXT struct {
	SType                          StructureType
	PNext                          uintptr
	EnabledValidationFeatureCount  uint32
	PEnabledValidationFeatures     *ValidationFeatureEnableEXT
	DisabledValidationFeatureCount uint32
	PDisabledValidationFeatures    uintptr
}

// VK_EXT_debug_utils

type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        uintptr
	ObjectType   ObjectType
	ObjectHandle uint64
	PObjectName  uintptr // const char*
}

type DebugUtilsLabelEXT struct {
	SType      StructureType
	PNext      uintptr
	PLabelName uintptr // const char*
	Color      [4]float32
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	PUserData       uintptr
}
