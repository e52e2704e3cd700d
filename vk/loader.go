// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	vulkanLib             unsafe.Pointer
	procGetInstanceAddr   unsafe.Pointer
	procGetDeviceAddr     unsafe.Pointer
	cifGetInstanceAddr    types.CallInterface
	cifGetDeviceAddr      types.CallInterface

	initOnce sync.Once
	errInit  error
)

// vulkanLibraryName returns the platform-specific Vulkan library name.
func vulkanLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib" // MoltenVK
	default: // linux, freebsd, etc.
		return "libvulkan.so.1"
	}
}

// Init loads the Vulkan library and prepares the shared call signatures.
// Safe to call multiple times - only the first call does actual work.
func Init() error {
	initOnce.Do(func() {
		errInit = doInit()
	})
	return errInit
}

func doInit() error {
	var err error

	vulkanLib, err = ffi.LoadLibrary(vulkanLibraryName())
	if err != nil {
		return fmt.Errorf("failed to load Vulkan library %s: %w", vulkanLibraryName(), err)
	}

	procGetInstanceAddr, err = ffi.GetSymbol(vulkanLib, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("vkGetInstanceProcAddr not found: %w", err)
	}

	// PFN_vkVoidFunction vkGetInstanceProcAddr(VkInstance instance, const char* pName)
	err = ffi.PrepareCallInterface(&cifGetInstanceAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{
			types.UInt64TypeDescriptor,  // VkInstance (handle, can be 0)
			types.PointerTypeDescriptor, // const char* pName
		})
	if err != nil {
		return fmt.Errorf("failed to prepare GetInstanceProcAddr interface: %w", err)
	}

	// PFN_vkVoidFunction vkGetDeviceProcAddr(VkDevice device, const char* pName)
	err = ffi.PrepareCallInterface(&cifGetDeviceAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{
			types.UInt64TypeDescriptor,
			types.PointerTypeDescriptor,
		})
	if err != nil {
		return fmt.Errorf("failed to prepare GetDeviceProcAddr interface: %w", err)
	}

	if err := initSignatures(); err != nil {
		return fmt.Errorf("failed to initialize signatures: %w", err)
	}

	return nil
}

// GetInstanceProcAddr returns the function pointer for a Vulkan instance
// function. Pass instance=0 for global functions (vkCreateInstance,
// vkEnumerateInstance*).
func GetInstanceProcAddr(instance Instance, name string) unsafe.Pointer {
	if procGetInstanceAddr == nil {
		return nil
	}

	cname := make([]byte, len(name)+1)
	copy(cname, name)

	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&namePtr), // pointer TO the pointer
	}

	_ = ffi.CallFunction(&cifGetInstanceAddr, procGetInstanceAddr, unsafe.Pointer(&result), args[:])
	runtime.KeepAlive(cname)
	return result
}

// SetDeviceProcAddr resolves vkGetDeviceProcAddr through a live instance.
// Some drivers (e.g. Intel) do not resolve it with instance=0, so this must
// be called once after vkCreateInstance.
func SetDeviceProcAddr(instance Instance) {
	if procGetDeviceAddr == nil {
		procGetDeviceAddr = GetInstanceProcAddr(instance, "vkGetDeviceProcAddr")
	}
}

// GetDeviceProcAddr returns the function pointer for a Vulkan device function.
func GetDeviceProcAddr(device Device, name string) unsafe.Pointer {
	if procGetDeviceAddr == nil {
		procGetDeviceAddr = GetInstanceProcAddr(0, "vkGetDeviceProcAddr")
		if procGetDeviceAddr == nil {
			return nil
		}
	}

	cname := make([]byte, len(name)+1)
	copy(cname, name)

	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&namePtr),
	}

	_ = ffi.CallFunction(&cifGetDeviceAddr, procGetDeviceAddr, unsafe.Pointer(&result), args[:])
	runtime.KeepAlive(cname)
	return result
}

// Close releases the Vulkan library.
func Close() error {
	if vulkanLib != nil {
		err := ffi.FreeLibrary(vulkanLib)
		vulkanLib = nil
		procGetInstanceAddr = nil
		procGetDeviceAddr = nil
		return err
	}
	return nil
}
