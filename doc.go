// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vkdevice is a Vulkan GPU device layer: it owns the graphics
// device and the lifetime of every GPU-visible resource, records command
// buffers, drives the swapchain acquire/present loop and synchronizes
// work across the graphics, compute and transfer queues behind a
// handle-based API.
//
// Resources are identified by 32-bit pooled handles. A handle is valid
// between its Create call and its Destroy call; destruction is deferred
// until no in-flight frame can reference the resource. Textures
// additionally live in a bindless descriptor array indexed by their
// handle, updated in one batch at each frame boundary.
//
// The frame loop is
//
//	device.NewFrame()
//	cb := device.GetCommandBuffer(thread, true)
//	// record...
//	device.QueueCommandBuffer(cb)
//	device.Present(nil)
//
// NewFrame blocks until the oldest in-flight frame has retired, so at
// most MaxFrames frames are recorded ahead of the GPU.
//
// The device itself is not internally synchronized: resource creation,
// destruction and the frame loop belong to one main thread, while
// command recording may fan out across threads through per-(frame,
// thread) command pools.
package vkdevice
