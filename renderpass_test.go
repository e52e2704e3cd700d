// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"testing"

	"github.com/gogpu/vkdevice/vk"
)

func TestRenderPassOutputFingerprint(t *testing.T) {
	base := func() RenderPassOutput {
		var o RenderPassOutput
		o.Color(vk.FormatB8G8R8A8Unorm, vk.ImageLayoutPresentSrcKhr, RenderPassOperationClear)
		o.Depth(vk.FormatD32Sfloat, vk.ImageLayoutDepthStencilAttachmentOptimal)
		o.SetDepthStencilOperations(RenderPassOperationClear, RenderPassOperationDontCare)
		return o
	}

	a := base()
	b := base()
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("identical outputs produced different fingerprints")
	}

	tests := []struct {
		name   string
		mutate func(*RenderPassOutput)
	}{
		{"color format", func(o *RenderPassOutput) { o.ColorFormats[0] = vk.FormatR8G8B8A8Unorm }},
		{"final layout", func(o *RenderPassOutput) { o.ColorFinalLayouts[0] = vk.ImageLayoutColorAttachmentOptimal }},
		{"load op", func(o *RenderPassOutput) { o.ColorOperations[0] = RenderPassOperationLoad }},
		{"depth format", func(o *RenderPassOutput) { o.DepthStencilFormat = vk.FormatD24UnormS8Uint }},
		{"depth op", func(o *RenderPassOutput) { o.DepthOperation = RenderPassOperationLoad }},
		{"stencil op", func(o *RenderPassOutput) { o.StencilOperation = RenderPassOperationClear }},
		{"extra target", func(o *RenderPassOutput) {
			o.Color(vk.FormatR16G16B16A16Sfloat, vk.ImageLayoutColorAttachmentOptimal, RenderPassOperationClear)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := base()
			tt.mutate(&mutated)
			if mutated.Fingerprint() == a.Fingerprint() {
				t.Errorf("mutation %q did not change the fingerprint", tt.name)
			}
		})
	}
}

func TestRenderPassOutputBuilder(t *testing.T) {
	var o RenderPassOutput
	o.Color(vk.FormatB8G8R8A8Unorm, vk.ImageLayoutPresentSrcKhr, RenderPassOperationClear)
	o.Color(vk.FormatR16G16B16A16Sfloat, vk.ImageLayoutColorAttachmentOptimal, RenderPassOperationLoad)

	if o.NumColorFormats != 2 {
		t.Fatalf("NumColorFormats = %d, want 2", o.NumColorFormats)
	}
	if o.ColorFormats[1] != vk.FormatR16G16B16A16Sfloat {
		t.Errorf("ColorFormats[1] = %d", o.ColorFormats[1])
	}
	if o.ColorOperations[1] != RenderPassOperationLoad {
		t.Errorf("ColorOperations[1] = %d", o.ColorOperations[1])
	}
}
