// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux || windows

// Command cube drives the device layer end to end: it opens a native
// window, creates the device, uploads a generated texture, and renders a
// spinning cube with a per-frame dynamic uniform buffer.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gogpu/vkdevice"
	"github.com/gogpu/vkdevice/vk"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	// The window system requires the main OS thread.
	runtime.LockOSThread()
}

func main() {
	vkdevice.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cube:", err)
		os.Exit(1)
	}
}

const shaderWGSL = `
struct Scene {
    mvp: mat4x4<f32>,
};
@group(1) @binding(0) var<uniform> scene: Scene;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_main(@location(0) pos: vec3<f32>, @location(1) color: vec3<f32>) -> VertexOut {
    var out: VertexOut;
    out.position = scene.mvp * vec4<f32>(pos, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

// cubeVertices interleaves position and color, one face color each.
var cubeVertices = buildCubeVertices()

var cubeIndices = []uint16{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	8, 9, 10, 10, 11, 8,
	12, 13, 14, 14, 15, 12,
	16, 17, 18, 18, 19, 16,
	20, 21, 22, 22, 23, 20,
}

func run() error {
	win, err := openWindow(windowWidth, windowHeight, "vkdevice cube")
	if err != nil {
		return err
	}
	defer win.Close()

	display, surface := win.Handles()
	device, err := vkdevice.New(vkdevice.DeviceDescriptor{
		Window:           surface,
		Display:          display,
		Width:            windowWidth,
		Height:           windowHeight,
		NumThreads:       1,
		EnableDebugUtils: true,
		PresentMode:      vkdevice.PresentModeVSync,
	})
	if err != nil {
		return err
	}
	defer device.Shutdown()

	// Static geometry.
	vertexBuffer := device.CreateBuffer(vkdevice.BufferDescriptor{
		Name:      "cube_vertices",
		Size:      uint64(len(cubeVertices) * 4),
		TypeFlags: vk.BufferUsageVertexBufferBit,
		Usage:     vkdevice.ResourceUsageStream,
		Data:      floatBytes(cubeVertices),
	})
	indexBuffer := device.CreateBuffer(vkdevice.BufferDescriptor{
		Name:      "cube_indices",
		Size:      uint64(len(cubeIndices) * 2),
		TypeFlags: vk.BufferUsageIndexBufferBit,
		Usage:     vkdevice.ResourceUsageStream,
		Data:      uint16Bytes(cubeIndices),
	})
	defer device.DestroyBuffer(vertexBuffer)
	defer device.DestroyBuffer(indexBuffer)

	// A generated checker texture, staged through the upload path. The
	// pattern is built at 2x2 and scaled up on the CPU.
	texture, staging := uploadCheckerTexture(device)
	defer device.DestroyTexture(texture)
	defer device.DestroyBuffer(staging)

	// Per-frame uniform data lives in the dynamic buffer.
	uniformBuffer := device.CreateBuffer(vkdevice.BufferDescriptor{
		Name:      "scene_uniforms",
		Size:      64,
		TypeFlags: vk.BufferUsageUniformBufferBit,
		Usage:     vkdevice.ResourceUsageDynamic,
	})
	defer device.DestroyBuffer(uniformBuffer)

	pipeline := device.CreatePipeline(vkdevice.PipelineDescriptor{
		Name: "cube_pipeline",
		Shaders: vkdevice.ShaderStateDescriptor{
			Name: "cube_shaders",
			Stages: []vkdevice.ShaderStageDescriptor{
				{Stage: vk.ShaderStageVertexBit, Language: vkdevice.SourceWgsl, Source: shaderWGSL},
				{Stage: vk.ShaderStageFragmentBit, Language: vkdevice.SourceWgsl, Source: shaderWGSL},
			},
		},
		VertexInput: vkdevice.VertexInputDescriptor{
			Streams: []vkdevice.VertexStream{
				{Binding: 0, Stride: 24, InputRate: vk.VertexInputRateVertex},
			},
			Attributes: []vkdevice.VertexAttribute{
				{Location: 0, Binding: 0, Offset: 0, Format: vk.FormatR32G32B32Sfloat},
				{Location: 1, Binding: 0, Offset: 12, Format: vk.FormatR32G32B32Sfloat},
			},
		},
		DepthStencil: vkdevice.DepthStencilDescriptor{
			DepthEnable:      true,
			DepthWriteEnable: true,
			DepthComparison:  vk.CompareOpLessOrEqual,
		},
		Rasterization: vkdevice.RasterizationDescriptor{
			CullMode: vk.CullModeBackBit,
			Front:    vk.FrontFaceCounterClockwise,
			Fill:     vk.PolygonModeFill,
		},
		Topology:   vk.PrimitiveTopologyTriangleList,
		RenderPass: device.AccessRenderPass(device.SwapchainRenderPass()).Output,
	}, "cube_pipeline.cache")
	if !pipeline.Valid() {
		return fmt.Errorf("pipeline creation failed")
	}
	defer device.DestroyPipeline(pipeline)

	descriptorSet := device.CreateDescriptorSet(vkdevice.DescriptorSetDescriptor{
		Name:   "cube_set",
		Layout: device.AccessPipeline(pipeline).DescriptorSetLayoutHandles[1],
		Resources: []vkdevice.DescriptorSetResource{
			{Binding: 0, Resource: uint32(uniformBuffer)},
		},
	})
	defer device.DestroyDescriptorSet(descriptorSet)

	var angle float32
	for win.Poll() {
		device.NewFrame()

		if w, h := win.Size(); w > 0 && h > 0 {
			device.Resize(uint16(w), uint16(h))
		}

		// Write this frame's matrix into the dynamic window.
		angle += 0.01
		width, height := device.SwapchainExtent()
		mvp := perspective(float32(width)/float32(height)).mul(rotationY(angle)).mul(rotationX(angle * 0.7))
		mapped := device.MapBuffer(vkdevice.MapBufferParameters{Buffer: uniformBuffer})
		copy(mapped, floatBytes(mvp[:]))
		device.UnmapBuffer(vkdevice.MapBufferParameters{Buffer: uniformBuffer})

		cb := device.GetCommandBuffer(0, true)
		cb.PushMarker("cube")
		cb.Clear(0.05, 0.05, 0.1, 1, 0)
		cb.ClearDepthStencil(1, 0)
		cb.BindPass(device.SwapchainRenderPass(), device.SwapchainFramebuffer(), false)
		cb.BindPipeline(pipeline)
		cb.SetViewport(nil)
		cb.SetScissor(nil)
		cb.BindDescriptorSet(descriptorSet)
		cb.BindVertexBuffer(vertexBuffer, 0, 0)
		cb.BindIndexBuffer(indexBuffer, 0, vk.IndexTypeUint16)
		cb.DrawIndexed(uint32(len(cubeIndices)), 1, 0, 0, 0)
		cb.PopMarker()
		device.QueueCommandBuffer(cb)

		device.Present(nil)
	}
	return nil
}

// uploadCheckerTexture builds a red/white checker at 2x2, scales it to
// 256x256 with x/image, and uploads it through a staging buffer.
func uploadCheckerTexture(device *vkdevice.Device) (vkdevice.TextureHandle, vkdevice.BufferHandle) {
	small := image.NewRGBA(image.Rect(0, 0, 2, 2))
	small.Set(0, 0, color.RGBA{R: 255, A: 255})
	small.Set(1, 1, color.RGBA{R: 255, A: 255})
	small.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	small.Set(0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	const size = 256
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), small, small.Bounds(), draw.Src, nil)

	texture := device.CreateTexture(vkdevice.TextureDescriptor{
		Name:      "checker",
		Width:     size,
		Height:    size,
		Depth:     1,
		MipLevels: 1,
		Format:    vk.FormatR8G8B8A8Unorm,
		Type:      vkdevice.TextureType2D,
	})
	staging := device.CreateBuffer(vkdevice.BufferDescriptor{
		Name:      "checker_staging",
		Size:      uint64(len(scaled.Pix)),
		TypeFlags: vk.BufferUsageTransferSrcBit,
		Usage:     vkdevice.ResourceUsageStaging,
	})

	cb := device.GetCommandBuffer(0, true)
	cb.UploadTextureData(texture, scaled.Pix, staging, 0)
	device.SubmitImmediate(cb)
	return texture, staging
}

// mat4 is a column-major 4x4 matrix.
type mat4 [16]float32

func identity() mat4 {
	return mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func (m mat4) mul(other mat4) mat4 {
	var out mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func perspective(aspect float32) mat4 {
	const fov = math.Pi / 3
	const near, far = 0.1, 100.0
	f := float32(1 / math.Tan(fov/2))

	out := identity()
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = near * far / (near - far)
	out[15] = 0

	// Pull the cube in front of the camera.
	translate := identity()
	translate[14] = -4
	return out.mul(translate)
}

func rotationY(angle float32) mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	out := identity()
	out[0], out[2] = c, -s
	out[8], out[10] = s, c
	return out
}

func rotationX(angle float32) mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	out := identity()
	out[5], out[6] = c, s
	out[9], out[10] = -s, c
	return out
}

func floatBytes(values []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*4)
}

func uint16Bytes(values []uint16) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*2)
}

func buildCubeVertices() []float32 {
	faces := [][3]float32{
		{1, 0.2, 0.2}, {0.2, 1, 0.2}, {0.2, 0.2, 1},
		{1, 1, 0.2}, {1, 0.2, 1}, {0.2, 1, 1},
	}
	positions := [][4][3]float32{
		{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // front
		{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // back
		{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // left
		{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // right
		{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // top
		{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // bottom
	}

	var out []float32
	for face, quad := range positions {
		for _, p := range quad {
			out = append(out, p[0], p[1], p[2])
			out = append(out, faces[face][0], faces[face][1], faces[face][2])
		}
	}
	return out
}
