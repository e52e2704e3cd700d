// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

const (
	wsOverlappedWindow = 0x00CF0000
	wsVisible          = 0x10000000
	swShow             = 5
	wmClose            = 0x0010
	wmDestroy          = 0x0002
	pmRemove           = 0x0001
)

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	PtX     int32
	PtY     int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

// platformWindow is a bare Win32 window driven by a PeekMessage pump.
type platformWindow struct {
	hwnd      uintptr
	hinstance uintptr
	closing   *bool
}

var windowClosing bool

func wndProc(hwnd uintptr, message uint32, wparam, lparam uintptr) uintptr {
	switch message {
	case wmClose, wmDestroy:
		windowClosing = true
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(message), wparam, lparam)
	return ret
}

func openWindow(width, height int, title string) (*platformWindow, error) {
	hinstance, _, _ := procGetModuleHandleW.Call(0)

	className, err := windows.UTF16PtrFromString("vkdeviceCube")
	if err != nil {
		return nil, err
	}
	windowTitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, err
	}

	class := wndClassExW{
		Size:      uint32(unsafe.Sizeof(wndClassExW{})),
		WndProc:   windows.NewCallback(wndProc),
		Instance:  hinstance,
		ClassName: className,
	}
	if atom, _, _ := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&class))); atom == 0 {
		return nil, fmt.Errorf("RegisterClassExW failed")
	}

	hwnd, _, _ := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowTitle)),
		wsOverlappedWindow|wsVisible,
		100, 100, uintptr(width), uintptr(height),
		0, 0, hinstance, 0)
	if hwnd == 0 {
		return nil, fmt.Errorf("CreateWindowExW failed")
	}
	procShowWindow.Call(hwnd, swShow)

	return &platformWindow{
		hwnd:      hwnd,
		hinstance: hinstance,
		closing:   &windowClosing,
	}, nil
}

// Handles returns the HINSTANCE and HWND for surface creation.
func (w *platformWindow) Handles() (display, window uintptr) {
	return w.hinstance, w.hwnd
}

// Poll drains the message queue; it reports false once the window closed.
func (w *platformWindow) Poll() bool {
	var m msg
	for {
		ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if ret == 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
	return !*w.closing
}

// Size returns the client-area size.
func (w *platformWindow) Size() (int, int) {
	var r rect
	procGetClientRect.Call(w.hwnd, uintptr(unsafe.Pointer(&r)))
	return int(r.Right - r.Left), int(r.Bottom - r.Top)
}

// Close destroys the window.
func (w *platformWindow) Close() {
	procDestroyWindow.Call(w.hwnd)
}
