// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkdevice

import "testing"

func TestPoolObtainRelease(t *testing.T) {
	pool := NewPool[Buffer]("test", 4)

	first := pool.Obtain()
	if first == InvalidIndex {
		t.Fatal("Obtain on fresh pool returned InvalidIndex")
	}
	if got := pool.Used(); got != 1 {
		t.Fatalf("Used = %d, want 1", got)
	}

	record := pool.Access(first)
	if record == nil {
		t.Fatal("Access returned nil for live index")
	}
	record.Size = 128

	if got := pool.Access(first).Size; got != 128 {
		t.Fatalf("Access did not return a stable slot: Size = %d, want 128", got)
	}

	pool.Release(first)
	if got := pool.Used(); got != 0 {
		t.Fatalf("Used after release = %d, want 0", got)
	}
}

func TestPoolLIFOReuse(t *testing.T) {
	pool := NewPool[Buffer]("test", 4)

	a := pool.Obtain()
	b := pool.Obtain()
	pool.Release(b)
	pool.Release(a)

	// LIFO free list: the most recently released index comes back first.
	if got := pool.Obtain(); got != a {
		t.Fatalf("Obtain after LIFO release = %d, want %d", got, a)
	}
	if got := pool.Obtain(); got != b {
		t.Fatalf("second Obtain = %d, want %d", got, b)
	}
}

func TestPoolExhaustion(t *testing.T) {
	pool := NewPool[Sampler]("test", 2)
	pool.Obtain()
	pool.Obtain()

	if got := pool.Obtain(); got != InvalidIndex {
		t.Fatalf("Obtain on exhausted pool = %d, want InvalidIndex", got)
	}

	pool.Release(0)
	if got := pool.Obtain(); got == InvalidIndex {
		t.Fatal("Obtain after release still exhausted")
	}
}

func TestPoolInvalidRelease(t *testing.T) {
	pool := NewPool[Texture]("test", 2)
	pool.Obtain()

	// Out-of-bounds release is logged and ignored; the pool stays sane.
	pool.Release(99)
	if got := pool.Used(); got != 1 {
		t.Fatalf("Used after invalid release = %d, want 1", got)
	}
}

func TestPoolObtainZeroesSlot(t *testing.T) {
	pool := NewPool[Buffer]("test", 2)
	index := pool.Obtain()
	pool.Access(index).Size = 64
	pool.Release(index)

	again := pool.Obtain()
	if again != index {
		t.Fatalf("expected recycled index %d, got %d", index, again)
	}
	if got := pool.Access(again).Size; got != 0 {
		t.Fatalf("recycled slot not zeroed: Size = %d", got)
	}
}

func TestHandleSentinels(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"invalid buffer", InvalidBuffer.Valid()},
		{"invalid texture", InvalidTexture.Valid()},
		{"invalid pipeline", InvalidPipeline.Valid()},
	}
	for _, tt := range tests {
		if tt.valid {
			t.Errorf("%s reported valid", tt.name)
		}
	}
	if !BufferHandle(0).Valid() {
		t.Error("handle 0 should be valid")
	}
}
