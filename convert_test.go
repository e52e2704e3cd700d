// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"testing"

	"github.com/gogpu/vkdevice/vk"
)

func TestFormatAspects(t *testing.T) {
	tests := []struct {
		format  vk.Format
		depth   bool
		stencil bool
		aspect  vk.ImageAspectFlags
	}{
		{vk.FormatR8G8B8A8Unorm, false, false, vk.ImageAspectColorBit},
		{vk.FormatD32Sfloat, true, false, vk.ImageAspectDepthBit},
		{vk.FormatD24UnormS8Uint, true, true, vk.ImageAspectDepthBit | vk.ImageAspectStencilBit},
		{vk.FormatS8Uint, false, true, vk.ImageAspectStencilBit},
	}
	for _, tt := range tests {
		if got := hasDepth(tt.format); got != tt.depth {
			t.Errorf("hasDepth(%d) = %v, want %v", tt.format, got, tt.depth)
		}
		if got := hasStencil(tt.format); got != tt.stencil {
			t.Errorf("hasStencil(%d) = %v, want %v", tt.format, got, tt.stencil)
		}
		if got := aspectMask(tt.format); got != tt.aspect {
			t.Errorf("aspectMask(%d) = %#x, want %#x", tt.format, got, tt.aspect)
		}
	}
}

func TestResourceStateLayouts(t *testing.T) {
	tests := []struct {
		state  ResourceState
		layout vk.ImageLayout
	}{
		{ResourceStateUndefined, vk.ImageLayoutUndefined},
		{ResourceStateCopyDest, vk.ImageLayoutTransferDstOptimal},
		{ResourceStateCopySource, vk.ImageLayoutTransferSrcOptimal},
		{ResourceStateRenderTarget, vk.ImageLayoutColorAttachmentOptimal},
		{ResourceStateDepthWrite, vk.ImageLayoutDepthStencilAttachmentOptimal},
		{ResourceStateDepthRead, vk.ImageLayoutDepthStencilReadOnlyOptimal},
		{ResourceStateUnorderedAccess, vk.ImageLayoutGeneral},
		{ResourceStateShaderResource, vk.ImageLayoutShaderReadOnlyOptimal},
		{ResourceStatePresent, vk.ImageLayoutPresentSrcKhr},
	}
	for _, tt := range tests {
		if got := toVkImageLayout(tt.state); got != tt.layout {
			t.Errorf("toVkImageLayout(%#x) = %d, want %d", tt.state, got, tt.layout)
		}
	}
}

func TestResourceStateAccessFlags(t *testing.T) {
	tests := []struct {
		state  ResourceState
		access vk.AccessFlags
	}{
		{ResourceStateCopyDest, vk.AccessTransferWriteBit},
		{ResourceStateCopySource, vk.AccessTransferReadBit},
		{ResourceStateRenderTarget, vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit},
		{ResourceStateDepthWrite, vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit},
		{ResourceStateShaderResource, vk.AccessShaderReadBit},
		{ResourceStateUnorderedAccess, vk.AccessShaderReadBit | vk.AccessShaderWriteBit},
		{ResourceStateIndexBuffer, vk.AccessIndexReadBit},
	}
	for _, tt := range tests {
		if got := toVkAccessFlags(tt.state); got != tt.access {
			t.Errorf("toVkAccessFlags(%#x) = %#x, want %#x", tt.state, got, tt.access)
		}
	}
}

func TestStateForStage(t *testing.T) {
	tests := []struct {
		stage        BarrierStage
		depthStencil bool
		want         ResourceState
	}{
		{BarrierStageRenderTarget, false, ResourceStateRenderTarget},
		{BarrierStageRenderTarget, true, ResourceStateDepthWrite},
		{BarrierStageComputeShader, false, ResourceStateUnorderedAccess},
		{BarrierStageTransfer, false, ResourceStateCopyDest},
		{BarrierStageFragmentShader, false, ResourceStateShaderResource},
		{BarrierStageFragmentShader, true, ResourceStateDepthRead},
		{BarrierStageDrawIndirect, false, ResourceStateIndirectArgument},
		{BarrierStageVertexInput, false, ResourceStateVertexAndConstantBuffer},
	}
	for _, tt := range tests {
		if got := stateForStage(tt.stage, tt.depthStencil); got != tt.want {
			t.Errorf("stateForStage(%d, %v) = %#x, want %#x", tt.stage, tt.depthStencil, got, tt.want)
		}
	}
}

func TestBarrierStageToVk(t *testing.T) {
	tests := []struct {
		stage BarrierStage
		want  vk.PipelineStageFlags
	}{
		{BarrierStageDrawIndirect, vk.PipelineStageDrawIndirectBit},
		{BarrierStageVertexInput, vk.PipelineStageVertexInputBit},
		{BarrierStageVertexShader, vk.PipelineStageVertexShaderBit},
		{BarrierStageFragmentShader, vk.PipelineStageFragmentShaderBit},
		{BarrierStageRenderTarget, vk.PipelineStageColorAttachmentOutputBit},
		{BarrierStageComputeShader, vk.PipelineStageComputeShaderBit},
		{BarrierStageTransfer, vk.PipelineStageTransferBit},
	}
	for _, tt := range tests {
		if got := toVkPipelineStage(tt.stage); got != tt.want {
			t.Errorf("toVkPipelineStage(%d) = %#x, want %#x", tt.stage, got, tt.want)
		}
	}
}

func TestPresentModeMapping(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want vk.PresentModeKHR
	}{
		{PresentModeImmediate, vk.PresentModeImmediateKhr},
		{PresentModeVSync, vk.PresentModeFifoKhr},
		{PresentModeVSyncFast, vk.PresentModeMailboxKhr},
		{PresentModeVSyncRelaxed, vk.PresentModeFifoRelaxedKhr},
	}
	for _, tt := range tests {
		if got := toVkPresentMode(tt.mode); got != tt.want {
			t.Errorf("toVkPresentMode(%d) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		value, alignment, want uint64
	}{
		{0, 256, 0},
		{1, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{64, 16, 64},
		{65, 16, 80},
	}
	for _, tt := range tests {
		if got := alignUp(tt.value, tt.alignment); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.value, tt.alignment, got, tt.want)
		}
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		format vk.Format
		want   uint32
	}{
		{vk.FormatR8Unorm, 1},
		{vk.FormatR8G8B8A8Unorm, 4},
		{vk.FormatR16G16B16A16Sfloat, 8},
		{vk.FormatR32G32B32A32Sfloat, 16},
	}
	for _, tt := range tests {
		if got := blockSize(tt.format); got != tt.want {
			t.Errorf("blockSize(%d) = %d, want %d", tt.format, got, tt.want)
		}
	}
}
