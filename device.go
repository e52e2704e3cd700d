// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gogpu/vkdevice/memory"
	"github.com/gogpu/vkdevice/vk"
)

// dynamicPerFrameSize is the per-frame window of the dynamic buffer.
const dynamicPerFrameSize = 10 * 1024 * 1024

// DeviceDescriptor configures device creation.
type DeviceDescriptor struct {
	// Window and Display are the opaque native surface handles: HWND and
	// HINSTANCE on Windows, X11 Window and Display* (or wl_surface* and
	// wl_display*) on Linux.
	Window  uintptr
	Display uintptr

	// Width and Height are the initial surface size.
	Width  uint16
	Height uint16

	// NumThreads is the number of parallel recording threads; one command
	// pool per (frame, thread) pair is allocated.
	NumThreads int

	// GpuTimeQueriesPerFrame is the per-thread timestamp capacity.
	GpuTimeQueriesPerFrame uint16

	// ForceDisableDynamicRendering ignores VK_KHR_dynamic_rendering even
	// when the driver offers it.
	ForceDisableDynamicRendering bool

	// Debug options.
	EnableValidation     bool
	EnableDebugUtils     bool
	EnableSyncValidation bool

	PresentMode PresentMode
}

// Device owns the Vulkan device and the lifetime of every GPU resource.
//
// The device is not internally synchronized. Command recording is
// thread-disjoint through per-(frame, thread) pools; everything else -
// creation, destruction, submission, swapchain housekeeping - is main
// thread only.
type Device struct {
	instance vk.Instance
	physical vk.PhysicalDevice
	device   vk.Device
	cmds     *vk.Commands

	properties vk.PhysicalDeviceProperties

	queue               vk.Queue
	mainQueueFamily     uint32
	computeQueue        vk.Queue
	computeQueueFamily  uint32
	transferQueue       vk.Queue
	transferQueueFamily uint32

	allocator *memory.Allocator

	// Handle pools.
	buffers              *Pool[Buffer]
	textures             *Pool[Texture]
	samplers             *Pool[Sampler]
	shaders              *Pool[ShaderState]
	descriptorSetLayouts *Pool[DescriptorSetLayout]
	descriptorSets       *Pool[DescriptorSet]
	pipelines            *Pool[Pipeline]
	renderPasses         *Pool[RenderPass]
	framebuffers         *Pool[Framebuffer]

	// Optional feature paths.
	bindlessSupported         bool
	timelineSemaphores        bool
	dynamicRenderingSupported bool
	synchronization2Supported bool
	meshShadersSupported      bool
	debugUtilsSupported       bool

	// Swapchain.
	surface               vk.SurfaceKHR
	swapchain             vk.SwapchainKHR
	surfaceFormat         vk.SurfaceFormatKHR
	presentMode           vk.PresentModeKHR
	requestedPresentMode  PresentMode
	swapchainWidth        uint16
	swapchainHeight       uint16
	swapchainImageCount   uint32
	swapchainImageIndex   uint32
	swapchainFramebuffers [MaxSwapchainImages]FramebufferHandle
	swapchainRenderPass   RenderPassHandle
	swapchainOutput       RenderPassOutput
	resized               bool

	window  uintptr
	display uintptr

	// Frame scheduling.
	currentFrame  uint32
	previousFrame uint32
	absoluteFrame uint64

	imageAcquired    vk.Semaphore
	renderComplete   [MaxSwapchainImages]vk.Semaphore
	graphicsTimeline vk.Semaphore
	computeTimeline  vk.Semaphore
	renderFences     [MaxFrames]vk.Fence
	computeFence     vk.Fence
	lastComputeValue uint64
	hasAsyncWork     bool

	// Dynamic per-frame allocator.
	dynamicBuffer    BufferHandle
	dynamicMapped    uintptr
	dynamicAllocated uint64
	dynamicMaxUsed   uint64

	// Deferred work queues. Single producer: the main thread.
	deletionQueue        []resourceUpdate
	bindlessUpdates      []resourceUpdate
	descriptorSetUpdates []descriptorSetUpdate

	queuedCommandBuffers []*CommandBuffer

	// Render pass cache: fingerprint to native pass.
	renderPassCache map[uint64]vk.RenderPass

	// Descriptor pools.
	descriptorPool vk.DescriptorPool
	bindlessPool   vk.DescriptorPool
	bindlessLayout DescriptorSetLayoutHandle
	bindlessSet    vk.DescriptorSet

	commandManager *commandBufferManager
	timeQueries    *timeQueryManager
	pipelineStats  PipelineStatistics

	resolvedTimings []TimeQuery

	debugMessenger vk.DebugUtilsMessengerEXT

	numThreads          int
	timeQueriesPerFrame uint16

	uboAlignment uint64

	defaultSampler SamplerHandle
	dummyTexture   TextureHandle
}

// New creates the device: instance, physical device selection, logical
// device with every supported optional feature, allocator, pools,
// bindless set, dynamic buffer, swapchain and per-frame infrastructure.
func New(desc DeviceDescriptor) (*Device, error) {
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}

	d := &Device{
		window:               desc.Window,
		display:              desc.Display,
		swapchainWidth:       desc.Width,
		swapchainHeight:      desc.Height,
		numThreads:           max(desc.NumThreads, 1),
		timeQueriesPerFrame:  desc.GpuTimeQueriesPerFrame,
		requestedPresentMode: desc.PresentMode,
		renderPassCache:      make(map[uint64]vk.RenderPass),
		cmds:                 vk.NewCommands(),
	}
	if d.timeQueriesPerFrame == 0 {
		d.timeQueriesPerFrame = 32
	}

	if err := d.createInstance(desc); err != nil {
		return nil, err
	}
	if err := d.selectPhysicalDevice(); err != nil {
		return nil, err
	}
	if err := d.createSurface(); err != nil {
		return nil, err
	}
	if err := d.createLogicalDevice(desc); err != nil {
		return nil, err
	}

	var memProps vk.PhysicalDeviceMemoryProperties
	d.cmds.GetPhysicalDeviceMemoryProperties(d.physical, &memProps)
	allocator, err := memory.NewAllocator(d.device, d.cmds, &memProps, memory.DefaultConfig())
	if err != nil {
		return nil, err
	}
	d.allocator = allocator

	d.createPools()
	d.createDescriptorPools()
	d.initFrameSync()

	d.commandManager = newCommandBufferManager(d, d.numThreads)
	d.timeQueries = newTimeQueryManager(d, d.numThreads, d.timeQueriesPerFrame)

	d.createDynamicBuffer()
	d.createDefaultResources()

	if err := d.createSwapchain(); err != nil {
		return nil, err
	}

	Logger().Info("device created",
		"gpu", d.properties.Name(),
		"bindless", d.bindlessSupported,
		"timeline", d.timelineSemaphores,
		"dynamicRendering", d.dynamicRenderingSupported)
	return d, nil
}

func (d *Device) createInstance(desc DeviceDescriptor) error {
	if err := d.cmds.LoadGlobal(); err != nil {
		return err
	}

	appName := vk.CString("vkdevice")
	engineName := vk.CString("gogpu")

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   vk.CStringPtr(appName),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        vk.CStringPtr(engineName),
		EngineVersion:      vk.MakeVersion(0, 1, 0),
		ApiVersion:         vk.MakeVersion(1, 1, 0),
	}

	extensions := []string{vk.KhrSurfaceExtensionName + "\x00"}
	switch runtime.GOOS {
	case "windows":
		extensions = append(extensions, "VK_KHR_win32_surface\x00")
	case "linux":
		extensions = append(extensions, "VK_KHR_xlib_surface\x00", "VK_KHR_wayland_surface\x00")
	case "darwin":
		extensions = append(extensions, "VK_EXT_metal_surface\x00")
	}

	var layers []string
	if desc.EnableValidation {
		layers = append(layers, vk.KhrValidationLayerName+"\x00")
	}
	if desc.EnableDebugUtils || desc.EnableValidation {
		extensions = append(extensions, vk.ExtDebugUtilsExtensionName+"\x00")
	}

	extensionPtrs := make([]uintptr, len(extensions))
	for i, ext := range extensions {
		extensionPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	}
	layerPtrs := make([]uintptr, len(layers))
	for i, layer := range layers {
		layerPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(layer)))
	}

	createInfo := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:      &appInfo,
		EnabledExtensionCount: uint32(len(extensions)),
		EnabledLayerCount:     uint32(len(layers)),
	}
	if len(extensionPtrs) > 0 {
		createInfo.PpEnabledExtensionNames = uintptr(unsafe.Pointer(&extensionPtrs[0]))
	}
	if len(layerPtrs) > 0 {
		createInfo.PpEnabledLayerNames = uintptr(unsafe.Pointer(&layerPtrs[0]))
	}

	// Synchronization validation is a validation-layer feature toggle.
	var validationFeatures vk.ValidationFeaturesEXT
	enables := []vk.ValidationFeatureEnableEXT{vk.ValidationFeatureEnableSynchronizationValidationExt}
	if desc.EnableValidation && desc.EnableSyncValidation {
		validationFeatures = vk.ValidationFeaturesEXT{
			SType:                         vk.StructureTypeValidationFeaturesExt,
			EnabledValidationFeatureCount: uint32(len(enables)),
			PEnabledValidationFeatures:    &enables[0],
		}
		createInfo.PNext = uintptr(unsafe.Pointer(&validationFeatures))
	}

	result := d.cmds.CreateInstance(&createInfo, nil, &d.instance)
	if result != vk.Success {
		return &vkError{code: result, op: "vkCreateInstance"}
	}

	runtime.KeepAlive(appName)
	runtime.KeepAlive(engineName)
	runtime.KeepAlive(extensions)
	runtime.KeepAlive(layers)
	runtime.KeepAlive(extensionPtrs)
	runtime.KeepAlive(layerPtrs)
	runtime.KeepAlive(&validationFeatures)
	runtime.KeepAlive(enables)

	if err := d.cmds.LoadInstance(d.instance); err != nil {
		return err
	}

	if (desc.EnableDebugUtils || desc.EnableValidation) && d.cmds.HasDebugUtils() {
		d.debugUtilsSupported = true
	}
	return nil
}

func (d *Device) selectPhysicalDevice() error {
	var count uint32
	result := d.cmds.EnumeratePhysicalDevices(d.instance, &count, nil)
	if result != vk.Success || count == 0 {
		return ErrNoDevice
	}

	physicals := make([]vk.PhysicalDevice, count)
	result = d.cmds.EnumeratePhysicalDevices(d.instance, &count, &physicals[0])
	if result != vk.Success && result != vk.Incomplete {
		return ErrNoDevice
	}

	// Prefer the first discrete GPU, then the first integrated one.
	var discrete, integrated vk.PhysicalDevice
	var discreteProps, integratedProps vk.PhysicalDeviceProperties
	for _, p := range physicals[:count] {
		var props vk.PhysicalDeviceProperties
		d.cmds.GetPhysicalDeviceProperties(p, &props)
		switch props.DeviceType {
		case vk.PhysicalDeviceTypeDiscreteGpu:
			if discrete == 0 {
				discrete, discreteProps = p, props
			}
		case vk.PhysicalDeviceTypeIntegratedGpu:
			if integrated == 0 {
				integrated, integratedProps = p, props
			}
		}
	}

	switch {
	case discrete != 0:
		d.physical, d.properties = discrete, discreteProps
	case integrated != 0:
		d.physical, d.properties = integrated, integratedProps
	default:
		d.physical = physicals[0]
		d.cmds.GetPhysicalDeviceProperties(d.physical, &d.properties)
	}

	d.uboAlignment = uint64(d.properties.Limits.MinUniformBufferOffsetAlignment)
	if d.uboAlignment == 0 {
		d.uboAlignment = 256
	}
	return nil
}

func (d *Device) createLogicalDevice(desc DeviceDescriptor) error {
	// Device extension discovery.
	var extCount uint32
	_ = d.cmds.EnumerateDeviceExtensionProperties(d.physical, &extCount, nil)
	available := map[string]bool{}
	if extCount > 0 {
		props := make([]vk.ExtensionProperties, extCount)
		_ = d.cmds.EnumerateDeviceExtensionProperties(d.physical, &extCount, &props[0])
		for i := range props[:extCount] {
			available[props[i].Name()] = true
		}
	}

	extensions := []string{vk.KhrSwapchainExtensionName + "\x00"}
	addIf := func(name string) bool {
		if available[name] {
			extensions = append(extensions, name+"\x00")
			return true
		}
		return false
	}

	dynamicRendering := addIf(vk.KhrDynamicRenderingExtensionName) && !desc.ForceDisableDynamicRendering
	timeline := addIf(vk.KhrTimelineSemaphoreExtensionName)
	sync2 := addIf(vk.KhrSynchronization2ExtensionName)
	d.meshShadersSupported = addIf(vk.NvMeshShaderExtensionName)
	indexing := addIf(vk.ExtDescriptorIndexingExtensionName)
	addIf(vk.ExtSamplerFilterMinmaxExtensionName)

	// Feature query: chain every candidate feature struct and read back
	// what the driver actually supports.
	indexingFeatures := vk.PhysicalDeviceDescriptorIndexingFeaturesEXT{
		SType: vk.StructureTypePhysicalDeviceDescriptorIndexingFeaturesExt,
	}
	timelineFeatures := vk.PhysicalDeviceTimelineSemaphoreFeaturesKHR{
		SType: vk.StructureTypePhysicalDeviceTimelineSemaphoreFeaturesKhr,
		PNext: uintptr(unsafe.Pointer(&indexingFeatures)),
	}
	dynamicFeatures := vk.PhysicalDeviceDynamicRenderingFeaturesKHR{
		SType: vk.StructureTypePhysicalDeviceDynamicRenderingFeaturesKhr,
		PNext: uintptr(unsafe.Pointer(&timelineFeatures)),
	}
	sync2Features := vk.PhysicalDeviceSynchronization2FeaturesKHR{
		SType: vk.StructureTypePhysicalDeviceSynchronization2FeaturesKhr,
		PNext: uintptr(unsafe.Pointer(&dynamicFeatures)),
	}
	features2 := vk.PhysicalDeviceFeatures2{
		SType: vk.StructureTypePhysicalDeviceFeatures2,
		PNext: uintptr(unsafe.Pointer(&sync2Features)),
	}
	d.cmds.GetPhysicalDeviceFeatures2(d.physical, &features2)

	d.bindlessSupported = indexing &&
		indexingFeatures.DescriptorBindingPartiallyBound == vk.True &&
		indexingFeatures.RuntimeDescriptorArray == vk.True
	d.timelineSemaphores = timeline && timelineFeatures.TimelineSemaphore == vk.True
	d.dynamicRenderingSupported = dynamicRendering && dynamicFeatures.DynamicRendering == vk.True
	d.synchronization2Supported = sync2 && sync2Features.Synchronization2 == vk.True

	// Queue family selection: the main family needs graphics+compute; a
	// compute-only family backs async compute and a transfer-only family
	// backs uploads, both falling back to the main family.
	var familyCount uint32
	d.cmds.GetPhysicalDeviceQueueFamilyProperties(d.physical, &familyCount, nil)
	families := make([]vk.QueueFamilyProperties, familyCount)
	d.cmds.GetPhysicalDeviceQueueFamilyProperties(d.physical, &familyCount, &families[0])

	d.mainQueueFamily, d.computeQueueFamily, d.transferQueueFamily = InvalidIndex, InvalidIndex, InvalidIndex
	var computeQueueIndex uint32
	for i, f := range families[:familyCount] {
		if f.QueueCount == 0 {
			continue
		}
		graphics := f.QueueFlags&vk.QueueGraphicsBit != 0
		compute := f.QueueFlags&vk.QueueComputeBit != 0
		transfer := f.QueueFlags&vk.QueueTransferBit != 0
		switch {
		case graphics && compute && d.mainQueueFamily == InvalidIndex:
			d.mainQueueFamily = uint32(i)
			// A second queue of the main family serves async compute on
			// single-family hardware.
			if f.QueueCount > 1 && d.computeQueueFamily == InvalidIndex {
				d.computeQueueFamily = uint32(i)
				computeQueueIndex = 1
			}
		case compute && !graphics && d.computeQueueFamily != uint32(i):
			d.computeQueueFamily = uint32(i)
			computeQueueIndex = 0
		case transfer && !graphics && !compute && d.transferQueueFamily == InvalidIndex:
			d.transferQueueFamily = uint32(i)
		}
	}
	if d.mainQueueFamily == InvalidIndex {
		return ErrNoDevice
	}
	if d.computeQueueFamily == InvalidIndex {
		d.computeQueueFamily = d.mainQueueFamily
	}
	if d.transferQueueFamily == InvalidIndex {
		d.transferQueueFamily = d.mainQueueFamily
	}

	priorities := []float32{1, 1}
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: d.mainQueueFamily,
		QueueCount:       1,
		PQueuePriorities: &priorities[0],
	}}
	if d.computeQueueFamily == d.mainQueueFamily && computeQueueIndex == 1 {
		queueInfos[0].QueueCount = 2
	} else if d.computeQueueFamily != d.mainQueueFamily {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: d.computeQueueFamily,
			QueueCount:       1,
			PQueuePriorities: &priorities[0],
		})
	}
	if d.transferQueueFamily != d.mainQueueFamily && d.transferQueueFamily != d.computeQueueFamily {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: d.transferQueueFamily,
			QueueCount:       1,
			PQueuePriorities: &priorities[0],
		})
	}

	extensionPtrs := make([]uintptr, len(extensions))
	for i, ext := range extensions {
		extensionPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	}

	// Re-chain only the feature structs that came back supported.
	features2.PNext = 0
	if d.bindlessSupported {
		indexingFeatures.PNext = features2.PNext
		features2.PNext = uintptr(unsafe.Pointer(&indexingFeatures))
	}
	if d.timelineSemaphores {
		timelineFeatures.PNext = features2.PNext
		features2.PNext = uintptr(unsafe.Pointer(&timelineFeatures))
	}
	if d.dynamicRenderingSupported {
		dynamicFeatures.PNext = features2.PNext
		features2.PNext = uintptr(unsafe.Pointer(&dynamicFeatures))
	}
	if d.synchronization2Supported {
		sync2Features.PNext = features2.PNext
		features2.PNext = uintptr(unsafe.Pointer(&sync2Features))
	}

	createInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   uintptr(unsafe.Pointer(&features2)),
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       &queueInfos[0],
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: uintptr(unsafe.Pointer(&extensionPtrs[0])),
	}

	result := d.cmds.CreateDevice(d.physical, &createInfo, nil, &d.device)
	if result != vk.Success {
		return &vkError{code: result, op: "vkCreateDevice"}
	}

	runtime.KeepAlive(extensions)
	runtime.KeepAlive(extensionPtrs)
	runtime.KeepAlive(priorities)
	runtime.KeepAlive(queueInfos)
	runtime.KeepAlive(&features2)
	runtime.KeepAlive(&indexingFeatures)
	runtime.KeepAlive(&timelineFeatures)
	runtime.KeepAlive(&dynamicFeatures)
	runtime.KeepAlive(&sync2Features)

	if err := d.cmds.LoadDevice(d.device); err != nil {
		return err
	}
	if !d.cmds.HasDynamicRendering() {
		d.dynamicRenderingSupported = false
	}
	if !d.cmds.HasTimelineSemaphores() {
		d.timelineSemaphores = false
	}

	d.cmds.GetDeviceQueue(d.device, d.mainQueueFamily, 0, &d.queue)
	d.cmds.GetDeviceQueue(d.device, d.computeQueueFamily, computeQueueIndex, &d.computeQueue)
	d.cmds.GetDeviceQueue(d.device, d.transferQueueFamily, 0, &d.transferQueue)
	return nil
}

func (d *Device) createPools() {
	d.buffers = NewPool[Buffer]("buffers", 4096)
	d.textures = NewPool[Texture]("textures", 512)
	d.samplers = NewPool[Sampler]("samplers", 32)
	d.shaders = NewPool[ShaderState]("shaders", 128)
	d.descriptorSetLayouts = NewPool[DescriptorSetLayout]("descriptor_set_layouts", 128)
	d.descriptorSets = NewPool[DescriptorSet]("descriptor_sets", 4096)
	d.pipelines = NewPool[Pipeline]("pipelines", 128)
	d.renderPasses = NewPool[RenderPass]("render_passes", 256)
	d.framebuffers = NewPool[Framebuffer]("framebuffers", 256)
}

func (d *Device) createDescriptorPools() {
	poolSizes := []vk.DescriptorPoolSize{
		{Type: vk.DescriptorTypeSampler, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeCombinedImageSampler, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeSampledImage, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeStorageImage, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeUniformTexelBuffer, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeStorageTexelBuffer, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeStorageBuffer, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeUniformBufferDynamic, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeStorageBufferDynamic, DescriptorCount: GlobalPoolElements},
		{Type: vk.DescriptorTypeInputAttachment, DescriptorCount: GlobalPoolElements},
	}
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateFreeDescriptorSetBit,
		MaxSets:       DescriptorSetsPoolSize,
		PoolSizeCount: uint32(len(poolSizes)),
		PPoolSizes:    &poolSizes[0],
	}
	vkCheck(d.cmds.CreateDescriptorPool(d.device, &poolInfo, nil, &d.descriptorPool), "vkCreateDescriptorPool")
	runtime.KeepAlive(poolSizes)

	if !d.bindlessSupported {
		d.bindlessLayout = InvalidDescriptorSetLayout
		return
	}

	bindlessSizes := []vk.DescriptorPoolSize{
		{Type: vk.DescriptorTypeCombinedImageSampler, DescriptorCount: BindlessResourceCount},
		{Type: vk.DescriptorTypeStorageImage, DescriptorCount: BindlessResourceCount},
	}
	bindlessInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateUpdateAfterBindBitExt,
		MaxSets:       BindlessResourceCount * uint32(len(bindlessSizes)),
		PoolSizeCount: uint32(len(bindlessSizes)),
		PPoolSizes:    &bindlessSizes[0],
	}
	vkCheck(d.cmds.CreateDescriptorPool(d.device, &bindlessInfo, nil, &d.bindlessPool), "vkCreateDescriptorPool")
	runtime.KeepAlive(bindlessSizes)

	d.bindlessLayout = d.CreateDescriptorSetLayout(DescriptorSetLayoutDescriptor{
		Name: "bindless_layout",
		Bindings: []DescriptorBinding{
			{Type: vk.DescriptorTypeCombinedImageSampler, Index: BindlessTextureBinding, Count: BindlessResourceCount, Name: "bindless_textures"},
			{Type: vk.DescriptorTypeStorageImage, Index: BindlessImageBinding, Count: BindlessResourceCount, Name: "bindless_images"},
		},
		SetIndex: 0,
		Bindless: true,
	})

	layout := d.descriptorSetLayouts.Access(uint32(d.bindlessLayout))
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     d.bindlessPool,
		DescriptorSetCount: 1,
		PSetLayouts:        &layout.VkLayout,
	}
	vkCheck(d.cmds.AllocateDescriptorSets(d.device, &allocInfo, &d.bindlessSet), "vkAllocateDescriptorSets")
}

func (d *Device) initFrameSync() {
	semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	vkCheck(d.cmds.CreateSemaphore(d.device, &semInfo, nil, &d.imageAcquired), "vkCreateSemaphore")
	for i := range d.renderComplete {
		vkCheck(d.cmds.CreateSemaphore(d.device, &semInfo, nil, &d.renderComplete[i]), "vkCreateSemaphore")
	}

	if d.timelineSemaphores {
		typeInfo := vk.SemaphoreTypeCreateInfoKHR{
			SType:         vk.StructureTypeSemaphoreTypeCreateInfoKhr,
			SemaphoreType: vk.SemaphoreTypeTimelineKhr,
		}
		timelineInfo := vk.SemaphoreCreateInfo{
			SType: vk.StructureTypeSemaphoreCreateInfo,
			PNext: uintptr(unsafe.Pointer(&typeInfo)),
		}
		vkCheck(d.cmds.CreateSemaphore(d.device, &timelineInfo, nil, &d.graphicsTimeline), "vkCreateSemaphore")
		vkCheck(d.cmds.CreateSemaphore(d.device, &timelineInfo, nil, &d.computeTimeline), "vkCreateSemaphore")
		runtime.KeepAlive(&typeInfo)
		return
	}

	fenceInfo := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: vk.FenceCreateSignaledBit,
	}
	for i := range d.renderFences {
		vkCheck(d.cmds.CreateFence(d.device, &fenceInfo, nil, &d.renderFences[i]), "vkCreateFence")
	}
	vkCheck(d.cmds.CreateFence(d.device, &fenceInfo, nil, &d.computeFence), "vkCreateFence")
}

func (d *Device) createDynamicBuffer() {
	d.dynamicBuffer = d.CreateBuffer(BufferDescriptor{
		Name:      "dynamic_persistent_buffer",
		Size:      dynamicPerFrameSize * MaxFrames,
		TypeFlags: vk.BufferUsageVertexBufferBit | vk.BufferUsageIndexBufferBit | vk.BufferUsageUniformBufferBit,
		Usage:     ResourceUsageStream,
	})

	buffer := d.buffers.Access(uint32(d.dynamicBuffer))
	ptr, err := d.allocator.Map(buffer.Allocation)
	if err != nil {
		panic(err)
	}
	d.dynamicMapped = ptr
	d.dynamicAllocated = 0
}

func (d *Device) createDefaultResources() {
	d.defaultSampler = d.CreateSampler(SamplerDescriptor{
		Name:         "sampler_default",
		MinFilter:    vk.FilterLinear,
		MagFilter:    vk.FilterLinear,
		MipFilter:    vk.SamplerMipmapModeLinear,
		AddressModeU: vk.SamplerAddressModeRepeat,
		AddressModeV: vk.SamplerAddressModeRepeat,
		AddressModeW: vk.SamplerAddressModeRepeat,
	})

	// Destroyed bindless slots are rewritten to this texture so that the
	// partially bound arrays never reference freed images.
	d.dummyTexture = d.CreateTexture(TextureDescriptor{
		Name:        "texture_dummy",
		Width:       1,
		Height:      1,
		Depth:       1,
		MipLevels:   1,
		ArrayLayers: 1,
		Format:      vk.FormatR8G8B8A8Unorm,
		Type:        TextureType2D,
	})
}

// setResourceName labels a native object when debug utils is available.
func (d *Device) setResourceName(objectType vk.ObjectType, handle uint64, name string) {
	if !d.debugUtilsSupported || handle == 0 || name == "" {
		return
	}
	nameBytes := vk.CString(name)
	info := vk.DebugUtilsObjectNameInfoEXT{
		SType:        vk.StructureTypeDebugUtilsObjectNameInfoExt,
		ObjectType:   objectType,
		ObjectHandle: handle,
		PObjectName:  vk.CStringPtr(nameBytes),
	}
	_ = d.cmds.SetDebugUtilsObjectNameEXT(d.device, &info)
	runtime.KeepAlive(nameBytes)
}

// BindlessSupported reports whether the global bindless set is active.
func (d *Device) BindlessSupported() bool { return d.bindlessSupported }

// DynamicRendering reports whether render passes use dynamic rendering.
func (d *Device) DynamicRendering() bool { return d.dynamicRenderingSupported }

// CurrentFrame returns the frame index modulo MaxFrames.
func (d *Device) CurrentFrame() uint32 { return d.currentFrame }

// AbsoluteFrame returns the monotonically increasing frame counter.
func (d *Device) AbsoluteFrame() uint64 { return d.absoluteFrame }

// SwapchainExtent returns the current swapchain size.
func (d *Device) SwapchainExtent() (uint16, uint16) {
	return d.swapchainWidth, d.swapchainHeight
}

// SwapchainRenderPass returns the handle of the swapchain render pass.
// The handle survives resize.
func (d *Device) SwapchainRenderPass() RenderPassHandle { return d.swapchainRenderPass }

// SwapchainFramebuffer returns the framebuffer of the acquired image.
func (d *Device) SwapchainFramebuffer() FramebufferHandle {
	return d.swapchainFramebuffers[d.swapchainImageIndex]
}

// PipelineStatisticsValues returns the accumulated pipeline statistics.
func (d *Device) PipelineStatisticsValues() PipelineStatistics { return d.pipelineStats }

// Shutdown waits for the device to go idle and destroys everything the
// device still owns, draining the deferred queues first.
func (d *Device) Shutdown() {
	d.cmds.DeviceWaitIdle(d.device)

	drain := func() {
		// Queued bindless destroys become plain deletions: there is no
		// frame left that could observe the slots.
		for i := range d.bindlessUpdates {
			if d.bindlessUpdates[i].deleting {
				d.deletionQueue = append(d.deletionQueue, resourceUpdate{
					kind:   resourceKindTexture,
					handle: d.bindlessUpdates[i].handle,
				})
			}
		}
		d.bindlessUpdates = d.bindlessUpdates[:0]
		for i := range d.deletionQueue {
			d.executeDeletion(&d.deletionQueue[i])
		}
		d.deletionQueue = d.deletionQueue[:0]
	}

	// Flush pending deferred deletions regardless of frame tags.
	drain()

	d.commandManager.shutdown()
	d.timeQueries.shutdown(d)

	d.DestroyTexture(d.dummyTexture)
	d.DestroySampler(d.defaultSampler)
	if buffer := d.buffers.Access(uint32(d.dynamicBuffer)); buffer != nil && buffer.Allocation != nil {
		d.allocator.Unmap(buffer.Allocation)
	}
	d.DestroyBuffer(d.dynamicBuffer)
	drain()

	d.destroySwapchainResources()
	drain()
	if d.swapchain != 0 {
		d.cmds.DestroySwapchainKHR(d.device, d.swapchain, nil)
		d.swapchain = 0
	}
	if d.surface != 0 {
		d.cmds.DestroySurfaceKHR(d.instance, d.surface, nil)
		d.surface = 0
	}

	for _, pass := range d.renderPassCache {
		d.cmds.DestroyRenderPass(d.device, pass, nil)
	}
	d.renderPassCache = nil

	d.cmds.DestroySemaphore(d.device, d.imageAcquired, nil)
	for i := range d.renderComplete {
		d.cmds.DestroySemaphore(d.device, d.renderComplete[i], nil)
	}
	if d.timelineSemaphores {
		d.cmds.DestroySemaphore(d.device, d.graphicsTimeline, nil)
		d.cmds.DestroySemaphore(d.device, d.computeTimeline, nil)
	} else {
		for i := range d.renderFences {
			d.cmds.DestroyFence(d.device, d.renderFences[i], nil)
		}
		d.cmds.DestroyFence(d.device, d.computeFence, nil)
	}

	if d.bindlessSupported {
		d.DestroyDescriptorSetLayout(d.bindlessLayout)
		drain()
		d.cmds.DestroyDescriptorPool(d.device, d.bindlessPool, nil)
	}
	d.cmds.DestroyDescriptorPool(d.device, d.descriptorPool, nil)

	d.allocator.Destroy()

	if d.debugMessenger != 0 {
		d.cmds.DestroyDebugUtilsMessengerEXT(d.instance, d.debugMessenger, nil)
	}
	d.cmds.DestroyDevice(d.device, nil)
	d.cmds.DestroyInstance(d.instance, nil)
	Logger().Info("device destroyed")
}
