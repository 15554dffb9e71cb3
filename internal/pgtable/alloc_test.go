package pgtable

import (
	"errors"
	"testing"
)

func TestBumpAllocatorAllocatesDistinctZeroedPages(t *testing.T) {
	mem := make([]byte, 4*PageSize)
	for i := range mem {
		mem[i] = 0xFF
	}
	bus := NewSliceBus(mem, 0)

	alloc, err := NewBumpAllocator(bus, 0, uint64(len(mem)))
	if err != nil {
		t.Fatalf("NewBumpAllocator() error = %v", err)
	}

	seen := map[PA]bool{}
	for i := 0; i < 4; i++ {
		pa, err := alloc.AllocPage()
		if err != nil {
			t.Fatalf("AllocPage() error = %v", err)
		}
		if seen[pa] {
			t.Fatalf("AllocPage() returned duplicate page 0x%x", pa.Addr())
		}
		seen[pa] = true

		pte, err := bus.ReadPTE(pa)
		if err != nil {
			t.Fatalf("ReadPTE() error = %v", err)
		}
		if pte != 0 {
			t.Errorf("freshly allocated page should be zeroed, got PTE 0x%x", uint64(pte))
		}
	}
}

func TestBumpAllocatorExhaustion(t *testing.T) {
	mem := make([]byte, PageSize)
	bus := NewSliceBus(mem, 0)

	alloc, err := NewBumpAllocator(bus, 0, uint64(len(mem)))
	if err != nil {
		t.Fatalf("NewBumpAllocator() error = %v", err)
	}

	if _, err := alloc.AllocPage(); err != nil {
		t.Fatalf("AllocPage() error = %v", err)
	}

	_, err = alloc.AllocPage()
	if err == nil {
		t.Fatal("AllocPage() on exhausted allocator should error")
	}
	if !errors.Is(err, ErrAllocationExhausted) {
		t.Errorf("AllocPage() error = %v, want wrapping ErrAllocationExhausted", err)
	}
}

func TestNewBumpAllocatorRejectsMisalignedBase(t *testing.T) {
	mem := make([]byte, PageSize)
	bus := NewSliceBus(mem, 0)

	if _, err := NewBumpAllocator(bus, PAFromAddr(1), PageSize); err == nil {
		t.Error("NewBumpAllocator() with misaligned base should error")
	}
	if _, err := NewBumpAllocator(bus, 0, PageSize+1); err == nil {
		t.Error("NewBumpAllocator() with misaligned size should error")
	}
}

func TestHostBumpAllocator(t *testing.T) {
	alloc, err := NewHostBumpAllocator(2)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	pa1, err := alloc.AllocPage()
	if err != nil {
		t.Fatalf("AllocPage() error = %v", err)
	}
	pa2, err := alloc.AllocPage()
	if err != nil {
		t.Fatalf("AllocPage() error = %v", err)
	}
	if pa1 == pa2 {
		t.Fatal("AllocPage() returned the same page twice")
	}

	if _, err := alloc.AllocPage(); err == nil {
		t.Fatal("third AllocPage() on a 2-page arena should error")
	}

	if alloc.Bus() == nil {
		t.Fatal("Bus() should not be nil")
	}
}
