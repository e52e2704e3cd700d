// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package memory implements the GPU memory allocator backing vkdevice
// resources.
//
// Device memory is requested from Vulkan in large blocks, one set of
// blocks per memory type, and suballocated with a buddy allocator.
// Allocations at or above the dedicated threshold bypass the pools and
// receive their own VkDeviceMemory. Host-visible allocations can be
// persistently mapped through the allocator.
//
// The allocator is safe for concurrent use; the vkdevice layer calls it
// from the main thread only.
package memory
