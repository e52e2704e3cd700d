// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"errors"
	"fmt"

	"github.com/gogpu/vkdevice/vk"
)

// Errors surfaced by device creation and the frame loop. Runtime Vulkan
// failures past initialization are not part of this list: the device does
// not recover from losing the GPU, so those abort through vkCheck.
var (
	// ErrNotLoaded indicates the Vulkan loader library is not present.
	ErrNotLoaded = errors.New("vkdevice: vulkan library not available")

	// ErrNoDevice indicates no physical device fits the requirements.
	ErrNoDevice = errors.New("vkdevice: no suitable physical device")

	// ErrSurfaceOutdated indicates the swapchain no longer matches the
	// surface and must be recreated. Handled internally by Present;
	// exposed for callers driving acquire manually.
	ErrSurfaceOutdated = errors.New("vkdevice: surface outdated")

	// ErrPoolExhausted indicates a resource pool is out of slots. Create
	// calls surface this as an invalid handle rather than an error.
	ErrPoolExhausted = errors.New("vkdevice: resource pool exhausted")

	// ErrShaderCompilation indicates a stage failed to compile. The
	// offending source is dumped to the log with line numbers.
	ErrShaderCompilation = errors.New("vkdevice: shader compilation failed")
)

// vkError is a native Vulkan failure.
type vkError struct {
	code vk.Result
	op   string
}

func (e *vkError) Error() string {
	return fmt.Sprintf("vkdevice: %s failed: %s", e.op, resultString(e.code))
}

// vkCheck aborts on any non-success result. The device layer treats
// native failures as unrecoverable: the error is logged and the process
// panics (spec: device loss is not survivable at this layer).
func vkCheck(result vk.Result, op string) {
	if result == vk.Success {
		return
	}
	err := &vkError{code: result, op: op}
	Logger().Error("vulkan call failed", "op", op, "result", resultString(result))
	panic(err)
}

func resultString(r vk.Result) string {
	switch r {
	case vk.Success:
		return "VK_SUCCESS"
	case vk.NotReady:
		return "VK_NOT_READY"
	case vk.Timeout:
		return "VK_TIMEOUT"
	case vk.ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case vk.ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case vk.ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case vk.ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case vk.ErrorMemoryMapFailed:
		return "VK_ERROR_MEMORY_MAP_FAILED"
	case vk.ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case vk.ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case vk.ErrorFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case vk.ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case vk.ErrorFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case vk.ErrorFragmentedPool:
		return "VK_ERROR_FRAGMENTED_POOL"
	case vk.ErrorOutOfPoolMemory:
		return "VK_ERROR_OUT_OF_POOL_MEMORY"
	case vk.ErrorSurfaceLostKhr:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case vk.SuboptimalKhr:
		return "VK_SUBOPTIMAL_KHR"
	case vk.ErrorOutOfDateKhr:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	default:
		return fmt.Sprintf("VK_RESULT(%d)", int32(r))
	}
}
