// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"testing"

	"github.com/gogpu/vkdevice/vk"
)

// word packs an opcode and its operand count into the instruction head.
func word(op, count uint32) uint32 { return count<<16 | op }

// literal encodes a null-terminated string as SPIR-V words.
func literal(s string) []uint32 {
	bytes := append([]byte(s), 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	words := make([]uint32, len(bytes)/4)
	for i := range words {
		words[i] = uint32(bytes[i*4]) | uint32(bytes[i*4+1])<<8 |
			uint32(bytes[i*4+2])<<16 | uint32(bytes[i*4+3])<<24
	}
	return words
}

// fragmentModule builds a minimal module with one uniform block and one
// combined image sampler, both in set 1.
func fragmentModule() []uint32 {
	var w []uint32
	w = append(w, MagicNumber, 0x00010300, 0, 100, 0)

	// OpEntryPoint Fragment %1 "main"
	name := literal("main")
	w = append(w, word(opEntryPoint, uint32(3+len(name))), modelFragment, 1)
	w = append(w, name...)

	// OpName %10 "scene" / OpName %11 "albedo"
	scene := literal("scene")
	w = append(w, word(opName, uint32(2+len(scene))), 10)
	w = append(w, scene...)
	albedo := literal("albedo")
	w = append(w, word(opName, uint32(2+len(albedo))), 11)
	w = append(w, albedo...)

	// Decorations.
	w = append(w, word(opDecorate, 3), 2, decorationBlock)
	w = append(w, word(opDecorate, 4), 10, decorationDescriptorSet, 1)
	w = append(w, word(opDecorate, 4), 10, decorationBinding, 0)
	w = append(w, word(opDecorate, 4), 11, decorationDescriptorSet, 1)
	w = append(w, word(opDecorate, 4), 11, decorationBinding, 1)

	// %2 = OpTypeStruct
	w = append(w, word(opTypeStruct, 2), 2)
	// %3 = OpTypePointer Uniform %2
	w = append(w, word(opTypePointer, 4), 3, classUniform, 2)
	// %10 = OpVariable %3 Uniform
	w = append(w, word(opVariable, 4), 3, 10, classUniform)

	// %4 = OpTypeImage (sampled = 1)
	w = append(w, word(opTypeImage, 9), 4, 0, 1, 0, 0, 0, 1, 0)
	// %5 = OpTypeSampledImage %4
	w = append(w, word(opTypeSampledImage, 3), 5, 4)
	// %6 = OpTypePointer UniformConstant %5
	w = append(w, word(opTypePointer, 4), 6, classUniformConstant, 5)
	// %11 = OpVariable %6 UniformConstant
	w = append(w, word(opVariable, 4), 6, 11, classUniformConstant)

	return w
}

func TestParseFragmentBindings(t *testing.T) {
	result, err := Parse(fragmentModule())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if result.Stages != vk.ShaderStageFragmentBit {
		t.Errorf("Stages = %#x, want fragment", result.Stages)
	}
	if len(result.Sets) != 1 {
		t.Fatalf("Sets = %d, want 1", len(result.Sets))
	}

	set := result.Sets[0]
	if set.Index != 1 {
		t.Errorf("set index = %d, want 1", set.Index)
	}
	if len(set.Bindings) != 2 {
		t.Fatalf("bindings = %d, want 2", len(set.Bindings))
	}

	byIndex := map[uint32]Binding{}
	for _, b := range set.Bindings {
		byIndex[b.Index] = b
	}

	ubo := byIndex[0]
	if ubo.Type != vk.DescriptorTypeUniformBuffer {
		t.Errorf("binding 0 type = %d, want uniform buffer", ubo.Type)
	}
	if ubo.Name != "scene" {
		t.Errorf("binding 0 name = %q, want scene", ubo.Name)
	}

	tex := byIndex[1]
	if tex.Type != vk.DescriptorTypeCombinedImageSampler {
		t.Errorf("binding 1 type = %d, want combined image sampler", tex.Type)
	}
	if tex.Name != "albedo" {
		t.Errorf("binding 1 name = %q, want albedo", tex.Name)
	}
}

func TestParseComputeLocalSize(t *testing.T) {
	var w []uint32
	w = append(w, MagicNumber, 0x00010300, 0, 100, 0)

	name := literal("main")
	w = append(w, word(opEntryPoint, uint32(3+len(name))), modelGLCompute, 1)
	w = append(w, name...)
	w = append(w, word(opExecutionMode, 6), 1, executionModeLocalSize, 8, 4, 1)

	result, err := Parse(w)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !result.IsCompute() {
		t.Error("IsCompute = false for a compute module")
	}
	if result.LocalSize != [3]uint32{8, 4, 1} {
		t.Errorf("LocalSize = %v, want [8 4 1]", result.LocalSize)
	}
}

func TestParseStorageImage(t *testing.T) {
	var w []uint32
	w = append(w, MagicNumber, 0x00010300, 0, 100, 0)

	w = append(w, word(opDecorate, 4), 11, decorationDescriptorSet, 0)
	w = append(w, word(opDecorate, 4), 11, decorationBinding, 3)
	// %4 = OpTypeImage with Sampled = 2 (storage)
	w = append(w, word(opTypeImage, 9), 4, 0, 1, 0, 0, 0, 2, 0)
	w = append(w, word(opTypePointer, 4), 6, classUniformConstant, 4)
	w = append(w, word(opVariable, 4), 6, 11, classUniformConstant)

	result, err := Parse(w)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Sets) != 1 || len(result.Sets[0].Bindings) != 1 {
		t.Fatalf("unexpected reflection: %+v", result.Sets)
	}
	if got := result.Sets[0].Bindings[0].Type; got != vk.DescriptorTypeStorageImage {
		t.Errorf("type = %d, want storage image", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]uint32{1, 2, 3}); err == nil {
		t.Error("short module accepted")
	}
	if _, err := Parse([]uint32{0xDEADBEEF, 0, 0, 0, 0}); err == nil {
		t.Error("wrong magic accepted")
	}
	if _, err := ParseBytes([]byte{1, 2, 3}); err == nil {
		t.Error("unaligned byte module accepted")
	}
}

func TestMergeAccumulatesStages(t *testing.T) {
	vert := &ParseResult{
		Stages:    vk.ShaderStageVertexBit,
		LocalSize: [3]uint32{1, 1, 1},
		Sets: []Set{{Index: 1, Bindings: []Binding{
			{Index: 0, Count: 1, Type: vk.DescriptorTypeUniformBuffer, Name: "scene"},
		}}},
	}
	frag := &ParseResult{
		Stages:    vk.ShaderStageFragmentBit,
		LocalSize: [3]uint32{1, 1, 1},
		Sets: []Set{{Index: 1, Bindings: []Binding{
			{Index: 0, Count: 1, Type: vk.DescriptorTypeUniformBuffer, Name: "scene"},
			{Index: 1, Count: 1, Type: vk.DescriptorTypeCombinedImageSampler, Name: "albedo"},
		}}},
	}

	vert.Merge(frag)

	if vert.Stages != vk.ShaderStageVertexBit|vk.ShaderStageFragmentBit {
		t.Errorf("Stages = %#x", vert.Stages)
	}
	if len(vert.Sets) != 1 {
		t.Fatalf("Sets = %d, want 1 (merged)", len(vert.Sets))
	}
	if len(vert.Sets[0].Bindings) != 2 {
		t.Errorf("bindings = %d, want 2 (deduplicated)", len(vert.Sets[0].Bindings))
	}
}
