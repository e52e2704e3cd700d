// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/gogpu/naga"

	"github.com/gogpu/vkdevice/spirv"
	"github.com/gogpu/vkdevice/vk"
)

// CreateShaderState compiles up to MaxShaderStages stages, reflects
// their SPIR-V and builds the shader modules. On compilation failure the
// numbered source is dumped to the log and InvalidShaderState returned.
func (d *Device) CreateShaderState(desc ShaderStateDescriptor) ShaderStateHandle {
	if len(desc.Stages) == 0 || len(desc.Stages) > MaxShaderStages {
		Logger().Warn("shader state with invalid stage count", "name", desc.Name, "stages", len(desc.Stages))
		return InvalidShaderState
	}

	index := d.shaders.Obtain()
	if index == InvalidIndex {
		return InvalidShaderState
	}
	handle := ShaderStateHandle(index)

	state := d.shaders.Access(index)
	state.Handle = handle
	state.Name = desc.Name
	state.ActiveStages = 0
	state.IsCompute = false
	state.Parse = &spirv.ParseResult{LocalSize: [3]uint32{1, 1, 1}}

	for _, stage := range desc.Stages {
		code, err := d.compileStage(stage, desc.Name, desc.Optimize)
		if err != nil {
			Logger().Warn("shader stage compilation failed", "name", desc.Name, "err", err)
			dumpShaderSource(stage.Source)
			d.destroyShaderStateInstant(index)
			return InvalidShaderState
		}

		parse, err := spirv.ParseBytes(code)
		if err != nil {
			Logger().Warn("shader reflection failed", "name", desc.Name, "err", err)
			d.destroyShaderStateInstant(index)
			return InvalidShaderState
		}
		state.Parse.Merge(parse)

		moduleInfo := vk.ShaderModuleCreateInfo{
			SType:    vk.StructureTypeShaderModuleCreateInfo,
			CodeSize: uintptr(len(code)),
			PCode:    (*uint32)(unsafe.Pointer(unsafe.SliceData(code))),
		}
		var module vk.ShaderModule
		vkCheck(d.cmds.CreateShaderModule(d.device, &moduleInfo, nil, &module), "vkCreateShaderModule")
		runtime.KeepAlive(code)

		state.Modules[state.ActiveStages] = module
		state.Stages[state.ActiveStages] = stage.Stage
		state.ActiveStages++

		if stage.Stage&vk.ShaderStageComputeBit != 0 {
			state.IsCompute = true
		}
	}

	d.setResourceName(vk.ObjectTypeShaderModule, uint64(state.Modules[0]), desc.Name)
	return handle
}

// compileStage produces the SPIR-V payload of one stage.
func (d *Device) compileStage(stage ShaderStageDescriptor, name string, optimize bool) ([]byte, error) {
	switch stage.Language {
	case SourceSpirv:
		if len(stage.Code) == 0 || len(stage.Code)%4 != 0 {
			return nil, fmt.Errorf("%w: invalid SPIR-V payload", ErrShaderCompilation)
		}
		return stage.Code, nil

	case SourceWgsl:
		code, err := naga.Compile(stage.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShaderCompilation, err)
		}
		return code, nil

	case SourceGlsl:
		return compileGlsl(stage, name, optimize)
	}
	return nil, fmt.Errorf("%w: unknown source language", ErrShaderCompilation)
}

// compileGlsl shells out to glslangValidator (and optionally spirv-opt)
// from VULKAN_SDK.
func compileGlsl(stage ShaderStageDescriptor, name string, optimize bool) ([]byte, error) {
	sdk := os.Getenv("VULKAN_SDK")
	if sdk == "" {
		return nil, fmt.Errorf("%w: VULKAN_SDK not set", ErrShaderCompilation)
	}
	compiler := filepath.Join(sdk, "bin", "glslangValidator")

	dir, err := os.MkdirTemp("", "vkdevice-shader")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "shader"+stageExtension(stage.Stage))
	spvPath := filepath.Join(dir, "shader.spv")
	if err := os.WriteFile(srcPath, []byte(stage.Source), 0o644); err != nil {
		return nil, err
	}

	args := []string{
		srcPath, "-V", "--target-env", "vulkan1.2", "-o", spvPath,
		"-D" + stageDefine(stage.Stage),
	}
	if name != "" {
		args = append(args, "-D"+strings.ToUpper(stageDefine(stage.Stage)+"_"+sanitizeDefine(name)))
	}

	cmd := exec.Command(compiler, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShaderCompilation, strings.TrimSpace(string(out)))
	}

	if optimize {
		optPath := filepath.Join(dir, "shader_opt.spv")
		opt := exec.Command(filepath.Join(sdk, "bin", "spirv-opt"), "-O", spvPath, "-o", optPath)
		if err := opt.Run(); err == nil {
			spvPath = optPath
		} else {
			Logger().Warn("spirv-opt failed, using unoptimized SPIR-V", "shader", name)
		}
	}

	return os.ReadFile(spvPath)
}

func stageExtension(stage vk.ShaderStageFlags) string {
	switch stage {
	case vk.ShaderStageVertexBit:
		return ".vert"
	case vk.ShaderStageFragmentBit:
		return ".frag"
	case vk.ShaderStageComputeBit:
		return ".comp"
	case vk.ShaderStageGeometryBit:
		return ".geom"
	case vk.ShaderStageTessellationControlBit:
		return ".tesc"
	case vk.ShaderStageTessellationEvaluationBit:
		return ".tese"
	}
	return ".glsl"
}

func stageDefine(stage vk.ShaderStageFlags) string {
	switch stage {
	case vk.ShaderStageVertexBit:
		return "VERTEX"
	case vk.ShaderStageFragmentBit:
		return "FRAGMENT"
	case vk.ShaderStageComputeBit:
		return "COMPUTE"
	case vk.ShaderStageGeometryBit:
		return "GEOMETRY"
	case vk.ShaderStageTessellationControlBit:
		return "TESS_CONTROL"
	case vk.ShaderStageTessellationEvaluationBit:
		return "TESS_EVALUATION"
	}
	return "SHADER"
}

func sanitizeDefine(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// dumpShaderSource logs the numbered source lines of a failed stage.
func dumpShaderSource(source string) {
	if source == "" {
		return
	}
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		Logger().Warn(fmt.Sprintf("%4d: %s", i+1, line))
	}
}

// DestroyShaderState queues the shader state for deferred destruction.
func (d *Device) DestroyShaderState(handle ShaderStateHandle) {
	if uint32(handle) >= d.shaders.Capacity() {
		Logger().Warn("destroy of invalid shader state", "handle", uint32(handle))
		return
	}
	d.deletionQueue = append(d.deletionQueue, resourceUpdate{
		kind:         resourceKindShaderState,
		handle:       uint32(handle),
		currentFrame: d.currentFrame,
	})
}

func (d *Device) destroyShaderStateInstant(index uint32) {
	state := d.shaders.Access(index)
	for i := 0; i < state.ActiveStages; i++ {
		if state.Modules[i] != 0 {
			d.cmds.DestroyShaderModule(d.device, state.Modules[i], nil)
			state.Modules[i] = 0
		}
	}
	state.ActiveStages = 0
	state.Parse = nil
	d.shaders.Release(index)
}

// AccessShaderState returns the record of a live shader state.
func (d *Device) AccessShaderState(handle ShaderStateHandle) *ShaderState {
	return d.shaders.Access(uint32(handle))
}
