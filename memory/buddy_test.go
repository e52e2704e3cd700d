// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import "testing"

func TestBuddyConfigValidation(t *testing.T) {
	tests := []struct {
		name               string
		total, minBlock    uint64
		wantErr            bool
	}{
		{"valid", 1 << 20, 256, false},
		{"zero total", 0, 256, true},
		{"non power of two total", 1000, 256, true},
		{"zero min block", 1 << 20, 0, true},
		{"non power of two min block", 1 << 20, 100, true},
		{"min block larger than total", 256, 1024, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuddyAllocator(tt.total, tt.minBlock)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBuddyAllocator(%d, %d) error = %v, wantErr %v",
					tt.total, tt.minBlock, err, tt.wantErr)
			}
		})
	}
}

func TestBuddyAllocRounding(t *testing.T) {
	b, err := NewBuddyAllocator(1<<16, 256)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		request uint64
		want    uint64
	}{
		{1, 256},      // below min block
		{256, 256},    // exact
		{257, 512},    // next power of two
		{1000, 1024},
		{1 << 15, 1 << 15},
	}
	for _, tt := range tests {
		block, err := b.Alloc(tt.request)
		if err != nil {
			t.Fatalf("Alloc(%d): %v", tt.request, err)
		}
		if block.Size != tt.want {
			t.Errorf("Alloc(%d).Size = %d, want %d", tt.request, block.Size, tt.want)
		}
		if err := b.Free(block); err != nil {
			t.Fatalf("Free: %v", err)
		}
	}
}

func TestBuddyMergeRestoresFullBlock(t *testing.T) {
	b, err := NewBuddyAllocator(1<<12, 256)
	if err != nil {
		t.Fatal(err)
	}

	blocks := make([]BuddyBlock, 0, 16)
	for i := 0; i < 16; i++ {
		block, err := b.Alloc(256)
		if err != nil {
			t.Fatalf("Alloc %d: %v", i, err)
		}
		blocks = append(blocks, block)
	}

	// Region exhausted.
	if _, err := b.Alloc(256); err == nil {
		t.Fatal("Alloc on full region succeeded")
	}

	for _, block := range blocks {
		if err := b.Free(block); err != nil {
			t.Fatalf("Free: %v", err)
		}
	}

	// After all frees the buddies merged back to one max-order block.
	if _, err := b.Alloc(1 << 12); err != nil {
		t.Fatalf("full-region alloc after merge: %v", err)
	}
}

func TestBuddyDoubleFree(t *testing.T) {
	b, _ := NewBuddyAllocator(1<<12, 256)
	block, err := b.Alloc(256)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Free(block); err != nil {
		t.Fatal(err)
	}
	if err := b.Free(block); err != ErrDoubleFree {
		t.Errorf("second Free = %v, want ErrDoubleFree", err)
	}
}

func TestBuddyInvalidSizes(t *testing.T) {
	b, _ := NewBuddyAllocator(1<<12, 256)
	if _, err := b.Alloc(0); err != ErrInvalidSize {
		t.Errorf("Alloc(0) = %v, want ErrInvalidSize", err)
	}
	if _, err := b.Alloc(1 << 13); err != ErrInvalidSize {
		t.Errorf("oversized Alloc = %v, want ErrInvalidSize", err)
	}
}

func TestBuddyAccounting(t *testing.T) {
	b, _ := NewBuddyAllocator(1<<12, 256)

	a1, _ := b.Alloc(256)
	a2, _ := b.Alloc(512)
	if got := b.AllocatedSize(); got != 256+512 {
		t.Errorf("AllocatedSize = %d, want 768", got)
	}
	if got := b.AllocationCount(); got != 2 {
		t.Errorf("AllocationCount = %d, want 2", got)
	}

	_ = b.Free(a1)
	_ = b.Free(a2)
	if got := b.AllocatedSize(); got != 0 {
		t.Errorf("AllocatedSize after frees = %d, want 0", got)
	}
}

func TestPowerOfTwoHelpers(t *testing.T) {
	if !isPowerOfTwo(1) || !isPowerOfTwo(1024) || isPowerOfTwo(0) || isPowerOfTwo(100) {
		t.Error("isPowerOfTwo misclassified")
	}
	tests := []struct{ in, want uint64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if log2(1) != 0 || log2(2) != 1 || log2(1024) != 10 {
		t.Error("log2 misclassified")
	}
}
