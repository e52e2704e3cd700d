// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import (
	"unsafe"

	"github.com/gogpu/vkdevice/vk"
)

// pipelineStatsCount is the number of counters in the statistics query.
const pipelineStatsCount = 7

// pipelineStatsFlags enables the standard seven counters.
const pipelineStatsFlags = vk.QueryPipelineStatisticInputAssemblyVerticesBit |
	vk.QueryPipelineStatisticInputAssemblyPrimitivesBit |
	vk.QueryPipelineStatisticVertexShaderInvocationsBit |
	vk.QueryPipelineStatisticClippingInvocationsBit |
	vk.QueryPipelineStatisticClippingPrimitivesBit |
	vk.QueryPipelineStatisticFragmentShaderInvocationsBit |
	vk.QueryPipelineStatisticComputeShaderInvocationsBit

// PipelineStatistics accumulates the seven pipeline counters across
// frames until Reset.
type PipelineStatistics struct {
	InputAssemblyVertices     uint64
	InputAssemblyPrimitives   uint64
	VertexShaderInvocations   uint64
	ClippingInvocations       uint64
	ClippingPrimitives        uint64
	FragmentShaderInvocations uint64
	ComputeShaderInvocations  uint64
}

// Reset zeroes every counter.
func (s *PipelineStatistics) Reset() { *s = PipelineStatistics{} }

func (s *PipelineStatistics) accumulate(values *[pipelineStatsCount]uint64) {
	s.InputAssemblyVertices += values[0]
	s.InputAssemblyPrimitives += values[1]
	s.VertexShaderInvocations += values[2]
	s.ClippingInvocations += values[3]
	s.ClippingPrimitives += values[4]
	s.FragmentShaderInvocations += values[5]
	s.ComputeShaderInvocations += values[6]
}

// TimeQuery is one labeled GPU timing: a start/end timestamp pair plus
// its depth in the push/pop tree.
type TimeQuery struct {
	Name string

	StartIndex uint32
	EndIndex   uint32

	// Depth is the nesting level at push time; siblings share a depth.
	Depth uint16

	// Elapsed is filled during resolution, in milliseconds.
	Elapsed float64

	popped bool
}

// timeQueryTree is the per-(frame, thread) push/pop tree.
type timeQueryTree struct {
	queries   []TimeQuery
	allocated uint32
	depth     uint16
	capacity  uint32
}

func (t *timeQueryTree) reset() {
	t.queries = t.queries[:0]
	t.allocated = 0
	t.depth = 0
}

// push allocates a query pair and descends one level.
func (t *timeQueryTree) push(name string) *TimeQuery {
	if t.allocated >= t.capacity {
		return nil
	}
	index := t.allocated
	t.allocated++
	t.queries = append(t.queries, TimeQuery{
		Name:       name,
		StartIndex: index * 2,
		EndIndex:   index*2 + 1,
		Depth:      t.depth,
	})
	t.depth++
	return &t.queries[len(t.queries)-1]
}

// pop closes the innermost open query and ascends one level.
func (t *timeQueryTree) pop() *TimeQuery {
	if t.depth == 0 {
		return nil
	}
	t.depth--
	for i := len(t.queries) - 1; i >= 0; i-- {
		if t.queries[i].Depth == t.depth && !t.queries[i].popped {
			t.queries[i].popped = true
			return &t.queries[i]
		}
	}
	return nil
}

// balanced reports whether every push was matched by a pop.
func (t *timeQueryTree) balanced() bool { return t.depth == 0 }

// queryPoolSet is the native query state of one (frame, thread) slot.
type queryPoolSet struct {
	timestamps vk.QueryPool
	statistics vk.QueryPool
}

// timeQueryManager owns per-(frame, thread) timestamp pools, one
// pipeline-statistics pool per slot, and the labeled timing trees.
type timeQueryManager struct {
	threads  int
	perFrame uint16

	pools []queryPoolSet
	trees []*timeQueryTree
}

// poolIndex is the single addressing discipline for per-frame-per-thread
// state: frame * threads + thread.
func (m *timeQueryManager) poolIndex(frame uint32, thread int) int {
	return int(frame)*m.threads + thread
}

func newTimeQueryManager(d *Device, threads int, perFrame uint16) *timeQueryManager {
	m := &timeQueryManager{
		threads:  threads,
		perFrame: perFrame,
		pools:    make([]queryPoolSet, threads*MaxFrames),
		trees:    make([]*timeQueryTree, threads*MaxFrames),
	}

	timestampInfo := vk.QueryPoolCreateInfo{
		SType:      vk.StructureTypeQueryPoolCreateInfo,
		QueryType:  vk.QueryTypeTimestamp,
		QueryCount: uint32(perFrame) * 2,
	}
	statsInfo := vk.QueryPoolCreateInfo{
		SType:              vk.StructureTypeQueryPoolCreateInfo,
		QueryType:          vk.QueryTypePipelineStatistics,
		QueryCount:         1,
		PipelineStatistics: pipelineStatsFlags,
	}

	for i := range m.pools {
		vkCheck(d.cmds.CreateQueryPool(d.device, &timestampInfo, nil, &m.pools[i].timestamps), "vkCreateQueryPool")
		vkCheck(d.cmds.CreateQueryPool(d.device, &statsInfo, nil, &m.pools[i].statistics), "vkCreateQueryPool")
		m.trees[i] = &timeQueryTree{capacity: uint32(perFrame)}
	}
	return m
}

// resetTrees clears every tree belonging to a frame.
func (m *timeQueryManager) resetTrees(frame uint32) {
	for thread := 0; thread < m.threads; thread++ {
		m.trees[m.poolIndex(frame, thread)].reset()
	}
}

// tree returns the push/pop tree of a (frame, thread) slot.
func (m *timeQueryManager) tree(frame uint32, thread int) *timeQueryTree {
	return m.trees[m.poolIndex(frame, thread)]
}

// pool returns the native pools of a (frame, thread) slot.
func (m *timeQueryManager) pool(frame uint32, thread int) *queryPoolSet {
	return &m.pools[m.poolIndex(frame, thread)]
}

// resolve reads back the previous frame's timestamps and statistics.
// Unbalanced trees are logged and discarded. Returns the resolved
// queries per thread; Elapsed is in milliseconds.
func (m *timeQueryManager) resolve(d *Device, frame uint32) []TimeQuery {
	period := float64(d.properties.Limits.TimestampPeriod)
	var resolved []TimeQuery

	for thread := 0; thread < m.threads; thread++ {
		index := m.poolIndex(frame, thread)
		tree := m.trees[index]
		if tree.allocated == 0 {
			continue
		}
		if !tree.balanced() {
			Logger().Warn("unbalanced gpu time query tree, discarding",
				"frame", frame, "thread", thread, "depth", tree.depth)
			continue
		}

		count := tree.allocated * 2
		values := make([]uint64, count)
		result := d.cmds.GetQueryPoolResults(d.device, m.pools[index].timestamps,
			0, count,
			uint64(count)*8, unsafe.Pointer(&values[0]), 8,
			vk.QueryResult64Bit|vk.QueryResultWaitBit)
		if result != vk.Success {
			continue
		}

		for i := range tree.queries {
			q := &tree.queries[i]
			start := values[q.StartIndex]
			end := values[q.EndIndex]
			q.Elapsed = float64(end-start) * period / 1e6
			resolved = append(resolved, *q)
		}

		var stats [pipelineStatsCount]uint64
		result = d.cmds.GetQueryPoolResults(d.device, m.pools[index].statistics,
			0, 1,
			pipelineStatsCount*8, unsafe.Pointer(&stats[0]), pipelineStatsCount*8,
			vk.QueryResult64Bit)
		if result == vk.Success {
			d.pipelineStats.accumulate(&stats)
		}
	}
	return resolved
}

func (m *timeQueryManager) shutdown(d *Device) {
	for i := range m.pools {
		if m.pools[i].timestamps != 0 {
			d.cmds.DestroyQueryPool(d.device, m.pools[i].timestamps, nil)
		}
		if m.pools[i].statistics != 0 {
			d.cmds.DestroyQueryPool(d.device, m.pools[i].statistics, nil)
		}
	}
}
