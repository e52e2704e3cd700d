// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package main

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// platformWindow wraps a GLFW window without a client API context; the
// device layer creates the Vulkan surface from the native X11 handles.
type platformWindow struct {
	window *glfw.Window
	width  int
	height int
}

func openWindow(width, height int, title string) (*platformWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &platformWindow{window: window, width: width, height: height}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, newWidth, newHeight int) {
		w.width, w.height = newWidth, newHeight
	})
	return w, nil
}

// Handles returns the X11 display and window for surface creation.
func (w *platformWindow) Handles() (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.window.GetX11Window())
}

// Poll pumps events; it reports false once the window should close.
func (w *platformWindow) Poll() bool {
	glfw.PollEvents()
	return !w.window.ShouldClose()
}

// Size returns the current framebuffer size.
func (w *platformWindow) Size() (int, int) {
	return w.width, w.height
}

// Close destroys the window and terminates GLFW.
func (w *platformWindow) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
