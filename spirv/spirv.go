// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spirv reflects SPIR-V binaries into descriptor-set layout
// descriptions. Only the declarations the device layer cares about are
// extracted: resource variables with set/binding decorations, the entry
// point stage, and the compute workgroup size.
package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/vkdevice/vk"
)

// MagicNumber is the SPIR-V module magic.
const MagicNumber = 0x07230203

// Binding is one reflected resource binding.
type Binding struct {
	Index uint32
	Count uint32
	Type  vk.DescriptorType
	Name  string
}

// Set is the reflected content of one descriptor set.
type Set struct {
	Index    uint32
	Bindings []Binding
}

// ParseResult describes the descriptor interface of one or more shader
// stages. Merging the per-stage results accumulates stage flags.
type ParseResult struct {
	Sets      []Set
	Stages    vk.ShaderStageFlags
	LocalSize [3]uint32
}

var (
	// ErrInvalidModule indicates a malformed or truncated binary.
	ErrInvalidModule = errors.New("spirv: invalid module")
)

// SPIR-V opcodes consumed by the reflector.
const (
	opName             = 5
	opEntryPoint       = 15
	opExecutionMode    = 16
	opTypeImage        = 25
	opTypeSampler      = 26
	opTypeSampledImage = 27
	opTypeArray        = 28
	opTypeRuntimeArray = 29
	opTypeStruct       = 30
	opTypePointer      = 32
	opConstant         = 43
	opVariable         = 59
	opDecorate         = 71
)

// Storage classes.
const (
	classUniformConstant = 0
	classUniform         = 2
	classPushConstant    = 9
	classStorageBuffer   = 12
)

// Decorations.
const (
	decorationBlock         = 2
	decorationBufferBlock   = 3
	decorationBinding       = 33
	decorationDescriptorSet = 34
)

// Execution modes.
const executionModeLocalSize = 17

// Execution models.
const (
	modelVertex                 = 0
	modelTessellationControl    = 1
	modelTessellationEvaluation = 2
	modelGeometry               = 3
	modelFragment               = 4
	modelGLCompute              = 5
)

type typeInfo struct {
	op uint32

	// For images: the Sampled operand (1 sampled, 2 storage).
	sampled uint32

	// For pointers and arrays: the pointee/element type id.
	elem uint32

	// For pointers: the storage class. For arrays: the length constant id.
	class  uint32
	length uint32
}

type variable struct {
	typeID uint32
	class  uint32
}

// ParseBytes reflects a binary given as bytes (little endian).
func ParseBytes(code []byte) (*ParseResult, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("%w: byte count not a multiple of 4", ErrInvalidModule)
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return Parse(words)
}

// Parse reflects a SPIR-V module.
func Parse(words []uint32) (*ParseResult, error) {
	if len(words) < 5 || words[0] != MagicNumber {
		return nil, ErrInvalidModule
	}

	types := map[uint32]typeInfo{}
	vars := map[uint32]variable{}
	names := map[uint32]string{}
	constants := map[uint32]uint32{}
	sets := map[uint32]uint32{}
	bindings := map[uint32]uint32{}
	hasSet := map[uint32]bool{}
	hasBinding := map[uint32]bool{}
	blocks := map[uint32]uint32{} // struct type id -> Block/BufferBlock

	result := &ParseResult{LocalSize: [3]uint32{1, 1, 1}}

	i := 5
	for i < len(words) {
		op := words[i] & 0xFFFF
		count := int(words[i] >> 16)
		if count == 0 || i+count > len(words) {
			return nil, ErrInvalidModule
		}
		args := words[i+1 : i+count]

		switch op {
		case opEntryPoint:
			if len(args) >= 1 {
				result.Stages |= stageFromModel(args[0])
			}
		case opExecutionMode:
			if len(args) >= 5 && args[1] == executionModeLocalSize {
				result.LocalSize = [3]uint32{args[2], args[3], args[4]}
			}
		case opName:
			if len(args) >= 2 {
				names[args[0]] = decodeString(args[1:])
			}
		case opConstant:
			if len(args) >= 3 {
				constants[args[1]] = args[2]
			}
		case opTypeImage:
			if len(args) >= 7 {
				types[args[0]] = typeInfo{op: op, sampled: args[6]}
			}
		case opTypeSampler, opTypeStruct:
			if len(args) >= 1 {
				types[args[0]] = typeInfo{op: op}
			}
		case opTypeSampledImage:
			if len(args) >= 2 {
				types[args[0]] = typeInfo{op: op, elem: args[1]}
			}
		case opTypeArray:
			if len(args) >= 3 {
				types[args[0]] = typeInfo{op: op, elem: args[1], length: args[2]}
			}
		case opTypeRuntimeArray:
			if len(args) >= 2 {
				types[args[0]] = typeInfo{op: op, elem: args[1]}
			}
		case opTypePointer:
			if len(args) >= 3 {
				types[args[0]] = typeInfo{op: op, class: args[1], elem: args[2]}
			}
		case opDecorate:
			if len(args) >= 3 {
				switch args[1] {
				case decorationDescriptorSet:
					sets[args[0]] = args[2]
					hasSet[args[0]] = true
				case decorationBinding:
					bindings[args[0]] = args[2]
					hasBinding[args[0]] = true
				}
			}
			if len(args) >= 2 && (args[1] == decorationBlock || args[1] == decorationBufferBlock) {
				blocks[args[0]] = args[1]
			}
		case opVariable:
			if len(args) >= 3 {
				vars[args[1]] = variable{typeID: args[0], class: args[2]}
			}
		}

		i += count
	}

	setMap := map[uint32]*Set{}
	for id, v := range vars {
		if !hasSet[id] || !hasBinding[id] {
			continue
		}

		descType, descCount, ok := resolveBinding(v, types, blocks, constants)
		if !ok {
			continue
		}

		setIndex := sets[id]
		s := setMap[setIndex]
		if s == nil {
			s = &Set{Index: setIndex}
			setMap[setIndex] = s
		}
		s.Bindings = append(s.Bindings, Binding{
			Index: bindings[id],
			Count: descCount,
			Type:  descType,
			Name:  names[id],
		})
	}

	for _, s := range setMap {
		result.Sets = append(result.Sets, *s)
	}
	sortSets(result.Sets)
	return result, nil
}

// resolveBinding walks pointer, array and image types down to a
// descriptor type and array count.
func resolveBinding(v variable, types map[uint32]typeInfo, blocks map[uint32]uint32, constants map[uint32]uint32) (vk.DescriptorType, uint32, bool) {
	t, ok := types[v.typeID]
	if !ok || t.op != opTypePointer {
		return 0, 0, false
	}
	class := t.class

	count := uint32(1)
	elem, ok := types[t.elem]
	elemID := t.elem
	for ok && (elem.op == opTypeArray || elem.op == opTypeRuntimeArray) {
		if elem.op == opTypeArray {
			if n, found := constants[elem.length]; found {
				count = n
			}
		}
		elemID = elem.elem
		elem, ok = types[elemID]
	}
	if !ok {
		return 0, 0, false
	}

	switch class {
	case classUniform:
		if blocks[elemID] == decorationBufferBlock {
			return vk.DescriptorTypeStorageBuffer, count, true
		}
		return vk.DescriptorTypeUniformBuffer, count, true
	case classStorageBuffer:
		return vk.DescriptorTypeStorageBuffer, count, true
	case classUniformConstant:
		switch elem.op {
		case opTypeSampler:
			return vk.DescriptorTypeSampler, count, true
		case opTypeSampledImage:
			return vk.DescriptorTypeCombinedImageSampler, count, true
		case opTypeImage:
			if elem.sampled == 2 {
				return vk.DescriptorTypeStorageImage, count, true
			}
			return vk.DescriptorTypeCombinedImageSampler, count, true
		}
	case classPushConstant:
		// Push constants are not descriptors.
	}
	return 0, 0, false
}

// Merge folds another stage's reflection into r: stage flags accumulate,
// sets union, and bindings present in both keep r's entry.
func (r *ParseResult) Merge(other *ParseResult) {
	if other == nil {
		return
	}
	r.Stages |= other.Stages
	if other.LocalSize != [3]uint32{1, 1, 1} {
		r.LocalSize = other.LocalSize
	}

	for _, os := range other.Sets {
		merged := false
		for i := range r.Sets {
			if r.Sets[i].Index != os.Index {
				continue
			}
			for _, ob := range os.Bindings {
				if findBinding(r.Sets[i].Bindings, ob.Index) < 0 {
					r.Sets[i].Bindings = append(r.Sets[i].Bindings, ob)
				}
			}
			merged = true
			break
		}
		if !merged {
			r.Sets = append(r.Sets, os)
		}
	}
	sortSets(r.Sets)
}

// IsCompute reports whether a compute entry point was reflected.
func (r *ParseResult) IsCompute() bool {
	return r.Stages&vk.ShaderStageComputeBit != 0
}

func findBinding(bindings []Binding, index uint32) int {
	for i := range bindings {
		if bindings[i].Index == index {
			return i
		}
	}
	return -1
}

func sortSets(sets []Set) {
	for i := 1; i < len(sets); i++ {
		for j := i; j > 0 && sets[j-1].Index > sets[j].Index; j-- {
			sets[j-1], sets[j] = sets[j], sets[j-1]
		}
	}
}

func stageFromModel(model uint32) vk.ShaderStageFlags {
	switch model {
	case modelVertex:
		return vk.ShaderStageVertexBit
	case modelTessellationControl:
		return vk.ShaderStageTessellationControlBit
	case modelTessellationEvaluation:
		return vk.ShaderStageTessellationEvaluationBit
	case modelGeometry:
		return vk.ShaderStageGeometryBit
	case modelFragment:
		return vk.ShaderStageFragmentBit
	case modelGLCompute:
		return vk.ShaderStageComputeBit
	}
	return 0
}

// decodeString reads a null-terminated literal string from words.
func decodeString(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf)
			}
			buf = append(buf, b)
		}
	}
	return string(buf)
}
