// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Result is VkResult.
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorFormatNotSupported   Result = -11
	ErrorFragmentedPool       Result = -12
	ErrorOutOfPoolMemory      Result = -1000069000
	ErrorSurfaceLostKhr       Result = -1000000000
	SuboptimalKhr             Result = 1000001003
	ErrorOutOfDateKhr         Result = -1000001004
)

// Bool32 is VkBool32.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Sentinels.
const (
	AttachmentUnused     = 0xFFFFFFFF
	QueueFamilyIgnored   = 0xFFFFFFFF
	SubpassExternal      = 0xFFFFFFFF
	RemainingMipLevels   = 0xFFFFFFFF
	RemainingArrayLayers = 0xFFFFFFFF
	WholeSize            = ^uint64(0)
)

// MakeVersion packs a Vulkan version number.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// StructureType is VkStructureType.
type StructureType uint32

const (
	StructureTypeApplicationInfo                      StructureType = 0
	StructureTypeInstanceCreateInfo                   StructureType = 1
	StructureTypeDeviceQueueCreateInfo                StructureType = 2
	StructureTypeDeviceCreateInfo                     StructureType = 3
	StructureTypeSubmitInfo                           StructureType = 4
	StructureTypeMemoryAllocateInfo                   StructureType = 5
	StructureTypeMappedMemoryRange                    StructureType = 6
	StructureTypeFenceCreateInfo                      StructureType = 8
	StructureTypeSemaphoreCreateInfo                  StructureType = 9
	StructureTypeQueryPoolCreateInfo                  StructureType = 11
	StructureTypeBufferCreateInfo                     StructureType = 12
	StructureTypeImageCreateInfo                      StructureType = 14
	StructureTypeImageViewCreateInfo                  StructureType = 15
	StructureTypeShaderModuleCreateInfo               StructureType = 16
	StructureTypePipelineCacheCreateInfo              StructureType = 17
	StructureTypePipelineShaderStageCreateInfo        StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo   StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 20
	StructureTypePipelineViewportStateCreateInfo      StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo   StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo  StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo    StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo       StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo           StructureType = 28
	StructureTypeComputePipelineCreateInfo            StructureType = 29
	StructureTypePipelineLayoutCreateInfo             StructureType = 30
	StructureTypeSamplerCreateInfo                    StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo        StructureType = 32
	StructureTypeDescriptorPoolCreateInfo             StructureType = 33
	StructureTypeDescriptorSetAllocateInfo            StructureType = 34
	StructureTypeWriteDescriptorSet                   StructureType = 35
	StructureTypeCopyDescriptorSet                    StructureType = 36
	StructureTypeFramebufferCreateInfo                StructureType = 37
	StructureTypeRenderPassCreateInfo                 StructureType = 38
	StructureTypeCommandPoolCreateInfo                StructureType = 39
	StructureTypeCommandBufferAllocateInfo            StructureType = 40
	StructureTypeCommandBufferInheritanceInfo         StructureType = 41
	StructureTypeCommandBufferBeginInfo               StructureType = 42
	StructureTypeRenderPassBeginInfo                  StructureType = 43
	StructureTypeBufferMemoryBarrier                  StructureType = 44
	StructureTypeImageMemoryBarrier                   StructureType = 45
	StructureTypeMemoryBarrier                        StructureType = 46

	StructureTypePhysicalDeviceFeatures2 StructureType = 1000059000

	StructureTypeSwapchainCreateInfoKhr StructureType = 1000001000
	StructureTypePresentInfoKhr         StructureType = 1000001001

	StructureTypeXlibSurfaceCreateInfoKhr    StructureType = 1000004000
	StructureTypeWaylandSurfaceCreateInfoKhr StructureType = 1000006000
	StructureTypeWin32SurfaceCreateInfoKhr   StructureType = 1000009000

	StructureTypeDebugUtilsObjectNameInfoExt  StructureType = 1000128000
	StructureTypeDebugUtilsLabelExt           StructureType = 1000128002
	StructureTypeDebugUtilsMessengerCreateInfoExt StructureType = 1000128004

	StructureTypeSamplerReductionModeCreateInfoExt StructureType = 1000130001

	StructureTypeDescriptorSetLayoutBindingFlagsCreateInfoExt        StructureType = 1000161000
	StructureTypePhysicalDeviceDescriptorIndexingFeaturesExt         StructureType = 1000161001
	StructureTypeDescriptorSetVariableDescriptorCountAllocateInfoExt StructureType = 1000161003

	StructureTypePhysicalDeviceMeshShaderFeaturesNv StructureType = 1000202000

	StructureTypePhysicalDeviceTimelineSemaphoreFeaturesKhr StructureType = 1000207000
	StructureTypeSemaphoreTypeCreateInfoKhr                 StructureType = 1000207002
	StructureTypeTimelineSemaphoreSubmitInfoKhr             StructureType = 1000207003
	StructureTypeSemaphoreWaitInfoKhr                       StructureType = 1000207004

	StructureTypeValidationFeaturesExt StructureType = 1000247000

	StructureTypeRenderingInfoKhr                        StructureType = 1000044000
	StructureTypeRenderingAttachmentInfoKhr              StructureType = 1000044001
	StructureTypePipelineRenderingCreateInfoKhr          StructureType = 1000044002
	StructureTypePhysicalDeviceDynamicRenderingFeaturesKhr StructureType = 1000044003
	StructureTypeCommandBufferInheritanceRenderingInfoKhr  StructureType = 1000044004

	StructureTypePhysicalDeviceSynchronization2FeaturesKhr StructureType = 1000314007
)

// Format is VkFormat.
type Format uint32

const (
	FormatUndefined          Format = 0
	FormatR8Unorm            Format = 9
	FormatR8G8Unorm          Format = 16
	FormatR8G8B8Unorm        Format = 23
	FormatR8G8B8Srgb         Format = 29
	FormatB8G8R8Unorm        Format = 30
	FormatB8G8R8Srgb         Format = 36
	FormatR8G8B8A8Unorm      Format = 37
	FormatR8G8B8A8Srgb       Format = 43
	FormatB8G8R8A8Unorm      Format = 44
	FormatB8G8R8A8Srgb       Format = 50
	FormatR16G16B16A16Sfloat Format = 97
	FormatR32Uint            Format = 98
	FormatR32Sfloat          Format = 100
	FormatR32G32Sfloat       Format = 103
	FormatR32G32B32Sfloat    Format = 106
	FormatR32G32B32A32Sfloat Format = 109
	FormatD16Unorm           Format = 124
	FormatD32Sfloat          Format = 126
	FormatS8Uint             Format = 127
	FormatD24UnormS8Uint     Format = 129
	FormatD32SfloatS8Uint    Format = 130
)

// ColorSpaceKHR is VkColorSpaceKHR.
type ColorSpaceKHR uint32

const ColorSpaceSrgbNonlinearKhr ColorSpaceKHR = 0

// PresentModeKHR is VkPresentModeKHR.
type PresentModeKHR uint32

const (
	PresentModeImmediateKhr   PresentModeKHR = 0
	PresentModeMailboxKhr     PresentModeKHR = 1
	PresentModeFifoKhr        PresentModeKHR = 2
	PresentModeFifoRelaxedKhr PresentModeKHR = 3
)

// ImageLayout is VkImageLayout.
type ImageLayout uint32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrcKhr                 ImageLayout = 1000001002
)

// AccessFlags is VkAccessFlags.
type AccessFlags uint32

const (
	AccessIndirectCommandReadBit         AccessFlags = 0x00000001
	AccessIndexReadBit                   AccessFlags = 0x00000002
	AccessVertexAttributeReadBit         AccessFlags = 0x00000004
	AccessUniformReadBit                 AccessFlags = 0x00000008
	AccessInputAttachmentReadBit         AccessFlags = 0x00000010
	AccessShaderReadBit                  AccessFlags = 0x00000020
	AccessShaderWriteBit                 AccessFlags = 0x00000040
	AccessColorAttachmentReadBit         AccessFlags = 0x00000080
	AccessColorAttachmentWriteBit        AccessFlags = 0x00000100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x00000200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x00000400
	AccessTransferReadBit                AccessFlags = 0x00000800
	AccessTransferWriteBit               AccessFlags = 0x00001000
	AccessHostReadBit                    AccessFlags = 0x00002000
	AccessHostWriteBit                   AccessFlags = 0x00004000
	AccessMemoryReadBit                  AccessFlags = 0x00008000
	AccessMemoryWriteBit                 AccessFlags = 0x00010000
)

// PipelineStageFlags is VkPipelineStageFlags.
type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit             PipelineStageFlags = 0x00000001
	PipelineStageDrawIndirectBit          PipelineStageFlags = 0x00000002
	PipelineStageVertexInputBit           PipelineStageFlags = 0x00000004
	PipelineStageVertexShaderBit          PipelineStageFlags = 0x00000008
	PipelineStageFragmentShaderBit        PipelineStageFlags = 0x00000080
	PipelineStageEarlyFragmentTestsBit    PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTestsBit     PipelineStageFlags = 0x00000200
	PipelineStageColorAttachmentOutputBit PipelineStageFlags = 0x00000400
	PipelineStageComputeShaderBit         PipelineStageFlags = 0x00000800
	PipelineStageTransferBit              PipelineStageFlags = 0x00001000
	PipelineStageBottomOfPipeBit          PipelineStageFlags = 0x00002000
	PipelineStageHostBit                  PipelineStageFlags = 0x00004000
	PipelineStageAllGraphicsBit           PipelineStageFlags = 0x00008000
	PipelineStageAllCommandsBit           PipelineStageFlags = 0x00010000
)

// DependencyFlags is VkDependencyFlags.
type DependencyFlags uint32

const DependencyByRegionBit DependencyFlags = 0x00000001

// BufferUsageFlags is VkBufferUsageFlags.
type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit        BufferUsageFlags = 0x00000001
	BufferUsageTransferDstBit        BufferUsageFlags = 0x00000002
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x00000004
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x00000008
	BufferUsageUniformBufferBit      BufferUsageFlags = 0x00000010
	BufferUsageStorageBufferBit      BufferUsageFlags = 0x00000020
	BufferUsageIndexBufferBit        BufferUsageFlags = 0x00000040
	BufferUsageVertexBufferBit       BufferUsageFlags = 0x00000080
	BufferUsageIndirectBufferBit     BufferUsageFlags = 0x00000100
)

// ImageUsageFlags is VkImageUsageFlags.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x00000001
	ImageUsageTransferDstBit            ImageUsageFlags = 0x00000002
	ImageUsageSampledBit                ImageUsageFlags = 0x00000004
	ImageUsageStorageBit                ImageUsageFlags = 0x00000008
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x00000020
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 0x00000040
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x00000080
)

// ImageCreateFlags is VkImageCreateFlags.
type ImageCreateFlags uint32

const (
	ImageCreateSparseBindingBit   ImageCreateFlags = 0x00000001
	ImageCreateSparseResidencyBit ImageCreateFlags = 0x00000002
	ImageCreateMutableFormatBit   ImageCreateFlags = 0x00000008
	ImageCreateCubeCompatibleBit  ImageCreateFlags = 0x00000010
)

// ImageAspectFlags is VkImageAspectFlags.
type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 0x00000001
	ImageAspectDepthBit   ImageAspectFlags = 0x00000002
	ImageAspectStencilBit ImageAspectFlags = 0x00000004
)

// ImageType is VkImageType.
type ImageType uint32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

// ImageViewType is VkImageViewType.
type ImageViewType uint32

const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

// ImageTiling is VkImageTiling.
type ImageTiling uint32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

// SharingMode is VkSharingMode.
type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// SampleCountFlagBits is VkSampleCountFlagBits.
type SampleCountFlagBits uint32

const SampleCount1Bit SampleCountFlagBits = 0x00000001

// ComponentSwizzle is VkComponentSwizzle.
type ComponentSwizzle uint32

const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

// Filter is VkFilter.
type Filter uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// SamplerMipmapMode is VkSamplerMipmapMode.
type SamplerMipmapMode uint32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

// SamplerAddressMode is VkSamplerAddressMode.
type SamplerAddressMode uint32

const (
	SamplerAddressModeRepeat            SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat    SamplerAddressMode = 1
	SamplerAddressModeClampToEdge       SamplerAddressMode = 2
	SamplerAddressModeClampToBorder     SamplerAddressMode = 3
	SamplerAddressModeMirrorClampToEdge SamplerAddressMode = 4
)

// SamplerReductionModeEXT is VkSamplerReductionModeEXT.
type SamplerReductionModeEXT uint32

const (
	SamplerReductionModeWeightedAverageExt SamplerReductionModeEXT = 0
	SamplerReductionModeMinExt             SamplerReductionModeEXT = 1
	SamplerReductionModeMaxExt             SamplerReductionModeEXT = 2
)

// BorderColor is VkBorderColor.
type BorderColor uint32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorIntOpaqueWhite        BorderColor = 5
)

// CompareOp is VkCompareOp.
type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// StencilOp is VkStencilOp.
type StencilOp uint32

const (
	StencilOpKeep           StencilOp = 0
	StencilOpZero           StencilOp = 1
	StencilOpReplace        StencilOp = 2
	StencilOpIncrementClamp StencilOp = 3
	StencilOpDecrementClamp StencilOp = 4
	StencilOpInvert         StencilOp = 5
	StencilOpIncrementWrap  StencilOp = 6
	StencilOpDecrementWrap  StencilOp = 7
)

// PrimitiveTopology is VkPrimitiveTopology.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan   PrimitiveTopology = 5
)

// PolygonMode is VkPolygonMode.
type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

// CullModeFlags is VkCullModeFlags.
type CullModeFlags uint32

const (
	CullModeNone         CullModeFlags = 0
	CullModeFrontBit     CullModeFlags = 1
	CullModeBackBit      CullModeFlags = 2
	CullModeFrontAndBack CullModeFlags = 3
)

// FrontFace is VkFrontFace.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// BlendFactor is VkBlendFactor.
type BlendFactor uint32

const (
	BlendFactorZero             BlendFactor = 0
	BlendFactorOne              BlendFactor = 1
	BlendFactorSrcColor         BlendFactor = 2
	BlendFactorOneMinusSrcColor BlendFactor = 3
	BlendFactorDstColor         BlendFactor = 4
	BlendFactorOneMinusDstColor BlendFactor = 5
	BlendFactorSrcAlpha         BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
	BlendFactorDstAlpha         BlendFactor = 8
	BlendFactorOneMinusDstAlpha BlendFactor = 9
)

// BlendOp is VkBlendOp.
type BlendOp uint32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

// ColorComponentFlags is VkColorComponentFlags.
type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 0x00000001
	ColorComponentGBit ColorComponentFlags = 0x00000002
	ColorComponentBBit ColorComponentFlags = 0x00000004
	ColorComponentABit ColorComponentFlags = 0x00000008

	ColorComponentAll = ColorComponentRBit | ColorComponentGBit | ColorComponentBBit | ColorComponentABit
)

// DynamicState is VkDynamicState.
type DynamicState uint32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

// VertexInputRate is VkVertexInputRate.
type VertexInputRate uint32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

// IndexType is VkIndexType.
type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

// AttachmentLoadOp is VkAttachmentLoadOp.
type AttachmentLoadOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

// AttachmentStoreOp is VkAttachmentStoreOp.
type AttachmentStoreOp uint32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

// PipelineBindPoint is VkPipelineBindPoint.
type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

// CommandBufferLevel is VkCommandBufferLevel.
type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// CommandBufferUsageFlags is VkCommandBufferUsageFlags.
type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 0x00000001
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 0x00000002
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 0x00000004
)

// CommandPoolCreateFlags is VkCommandPoolCreateFlags.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x00000001
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x00000002
)

// CommandPoolResetFlags is VkCommandPoolResetFlags.
type CommandPoolResetFlags uint32

const CommandPoolResetReleaseResourcesBit CommandPoolResetFlags = 0x00000001

// SubpassContents is VkSubpassContents.
type SubpassContents uint32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

// QueryType is VkQueryType.
type QueryType uint32

const (
	QueryTypeOcclusion          QueryType = 0
	QueryTypePipelineStatistics QueryType = 1
	QueryTypeTimestamp          QueryType = 2
)

// QueryPipelineStatisticFlags is VkQueryPipelineStatisticFlags.
type QueryPipelineStatisticFlags uint32

const (
	QueryPipelineStatisticInputAssemblyVerticesBit            QueryPipelineStatisticFlags = 0x00000001
	QueryPipelineStatisticInputAssemblyPrimitivesBit          QueryPipelineStatisticFlags = 0x00000002
	QueryPipelineStatisticVertexShaderInvocationsBit          QueryPipelineStatisticFlags = 0x00000004
	QueryPipelineStatisticClippingInvocationsBit              QueryPipelineStatisticFlags = 0x00000020
	QueryPipelineStatisticClippingPrimitivesBit               QueryPipelineStatisticFlags = 0x00000040
	QueryPipelineStatisticFragmentShaderInvocationsBit        QueryPipelineStatisticFlags = 0x00000080
	QueryPipelineStatisticComputeShaderInvocationsBit         QueryPipelineStatisticFlags = 0x00000400
)

// QueryResultFlags is VkQueryResultFlags.
type QueryResultFlags uint32

const (
	QueryResult64Bit             QueryResultFlags = 0x00000001
	QueryResultWaitBit           QueryResultFlags = 0x00000002
	QueryResultWithAvailability  QueryResultFlags = 0x00000004
	QueryResultPartialBit        QueryResultFlags = 0x00000008
)

// DescriptorType is VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

// DescriptorPoolCreateFlags is VkDescriptorPoolCreateFlags.
type DescriptorPoolCreateFlags uint32

const (
	DescriptorPoolCreateFreeDescriptorSetBit  DescriptorPoolCreateFlags = 0x00000001
	DescriptorPoolCreateUpdateAfterBindBitExt DescriptorPoolCreateFlags = 0x00000002
)

// DescriptorSetLayoutCreateFlags is VkDescriptorSetLayoutCreateFlags.
type DescriptorSetLayoutCreateFlags uint32

const DescriptorSetLayoutCreateUpdateAfterBindPoolBitExt DescriptorSetLayoutCreateFlags = 0x00000002

// DescriptorBindingFlagsEXT is VkDescriptorBindingFlagsEXT.
type DescriptorBindingFlagsEXT uint32

const (
	DescriptorBindingUpdateAfterBindBitExt          DescriptorBindingFlagsEXT = 0x00000001
	DescriptorBindingUpdateUnusedWhilePendingBitExt DescriptorBindingFlagsEXT = 0x00000002
	DescriptorBindingPartiallyBoundBitExt           DescriptorBindingFlagsEXT = 0x00000004
	DescriptorBindingVariableDescriptorCountBitExt  DescriptorBindingFlagsEXT = 0x00000008
)

// ShaderStageFlags is VkShaderStageFlags.
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit                 ShaderStageFlags = 0x00000001
	ShaderStageTessellationControlBit    ShaderStageFlags = 0x00000002
	ShaderStageTessellationEvaluationBit ShaderStageFlags = 0x00000004
	ShaderStageGeometryBit               ShaderStageFlags = 0x00000008
	ShaderStageFragmentBit               ShaderStageFlags = 0x00000010
	ShaderStageComputeBit                ShaderStageFlags = 0x00000020
	ShaderStageAllGraphics               ShaderStageFlags = 0x0000001F
	ShaderStageTaskBitNv                 ShaderStageFlags = 0x00000040
	ShaderStageMeshBitNv                 ShaderStageFlags = 0x00000080
	ShaderStageAll                       ShaderStageFlags = 0x7FFFFFFF
)

// FenceCreateFlags is VkFenceCreateFlags.
type FenceCreateFlags uint32

const FenceCreateSignaledBit FenceCreateFlags = 0x00000001

// SemaphoreTypeKHR is VkSemaphoreTypeKHR.
type SemaphoreTypeKHR uint32

const (
	SemaphoreTypeBinaryKhr   SemaphoreTypeKHR = 0
	SemaphoreTypeTimelineKhr SemaphoreTypeKHR = 1
)

// MemoryPropertyFlags is VkMemoryPropertyFlags.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x00000001
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x00000002
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x00000004
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x00000010
)

// MemoryHeapFlags is VkMemoryHeapFlags.
type MemoryHeapFlags uint32

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x00000001

// QueueFlags is VkQueueFlags.
type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 0x00000001
	QueueComputeBit       QueueFlags = 0x00000002
	QueueTransferBit      QueueFlags = 0x00000004
	QueueSparseBindingBit QueueFlags = 0x00000008
)

// SurfaceTransformFlagsKHR is VkSurfaceTransformFlagsKHR.
type SurfaceTransformFlagsKHR uint32

const SurfaceTransformIdentityBitKhr SurfaceTransformFlagsKHR = 0x00000001

// CompositeAlphaFlagsKHR is VkCompositeAlphaFlagsKHR.
type CompositeAlphaFlagsKHR uint32

const CompositeAlphaOpaqueBitKhr CompositeAlphaFlagsKHR = 0x00000001

// PhysicalDeviceType is VkPhysicalDeviceType.
type PhysicalDeviceType uint32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

// ObjectType is VkObjectType.
type ObjectType uint32

const (
	ObjectTypeQueue               ObjectType = 4
	ObjectTypeCommandBuffer       ObjectType = 6
	ObjectTypeBuffer              ObjectType = 9
	ObjectTypeImage               ObjectType = 10
	ObjectTypeQueryPool           ObjectType = 12
	ObjectTypeImageView           ObjectType = 14
	ObjectTypeShaderModule        ObjectType = 15
	ObjectTypeRenderPass          ObjectType = 18
	ObjectTypePipeline            ObjectType = 19
	ObjectTypeDescriptorSetLayout ObjectType = 20
	ObjectTypeSampler             ObjectType = 21
	ObjectTypeDescriptorSet       ObjectType = 23
	ObjectTypeFramebuffer         ObjectType = 24
)

// DebugUtilsMessageSeverityFlagsEXT is VkDebugUtilsMessageSeverityFlagsEXT.
type DebugUtilsMessageSeverityFlagsEXT uint32

const (
	DebugUtilsMessageSeverityVerboseBitExt DebugUtilsMessageSeverityFlagsEXT = 0x00000001
	DebugUtilsMessageSeverityInfoBitExt    DebugUtilsMessageSeverityFlagsEXT = 0x00000010
	DebugUtilsMessageSeverityWarningBitExt DebugUtilsMessageSeverityFlagsEXT = 0x00000100
	DebugUtilsMessageSeverityErrorBitExt   DebugUtilsMessageSeverityFlagsEXT = 0x00001000
)

// DebugUtilsMessageTypeFlagsEXT is VkDebugUtilsMessageTypeFlagsEXT.
type DebugUtilsMessageTypeFlagsEXT uint32

const (
	DebugUtilsMessageTypeGeneralBitExt     DebugUtilsMessageTypeFlagsEXT = 0x00000001
	DebugUtilsMessageTypeValidationBitExt  DebugUtilsMessageTypeFlagsEXT = 0x00000002
	DebugUtilsMessageTypePerformanceBitExt DebugUtilsMessageTypeFlagsEXT = 0x00000004
)

// ValidationFeatureEnableEXT is VkValidationFeatureEnableEXT.
type ValidationFeatureEnableEXT uint32

const ValidationFeatureEnableSynchronizationValidationExt ValidationFeatureEnableEXT = 4

// PipelineCacheHeaderVersion is VkPipelineCacheHeaderVersion.
type PipelineCacheHeaderVersion uint32

const PipelineCacheHeaderVersionOne PipelineCacheHeaderVersion = 1
