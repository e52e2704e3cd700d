// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides pure Go Vulkan bindings using goffi for FFI calls.
//
// The package covers the subset of Vulkan 1.1 plus the KHR swapchain,
// timeline-semaphore, dynamic-rendering and synchronization2 extensions,
// and the EXT debug-utils and descriptor-indexing extensions that the
// vkdevice layer drives. Handles are integer types, structs mirror the C
// ABI on 64-bit targets, and every entry point is dispatched through a
// Commands table loaded with vkGetInstanceProcAddr/vkGetDeviceProcAddr.
//
// # goffi Calling Convention
//
// goffi expects args[] to contain pointers to WHERE argument values are
// stored, NOT the values themselves. This applies to ALL argument types,
// including pointers:
//
//	var value uint64 = 42
//	args[i] = unsafe.Pointer(&value)  // pointer to value storage
//
//	ptr := unsafe.Pointer(&data[0])   // this IS the pointer value
//	args[i] = unsafe.Pointer(&ptr)    // pointer TO the pointer
//
// The typed methods on Commands encapsulate this convention; callers never
// build argument arrays themselves.
package vk
