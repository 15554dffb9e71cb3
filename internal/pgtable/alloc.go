package pgtable

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrAllocationExhausted is returned when a page allocator cannot satisfy a
// request. It is always wrapped with additional context before being
// returned from a Table operation.
var ErrAllocationExhausted = errors.New("pgtable: page allocation exhausted")

// Allocator yields page-aligned, page-sized, zeroed regions of physical
// memory. AllocPage goes through whatever synchronization the allocator
// provides; AllocPageNoSync skips it and is only safe to call while no other
// CPU (or goroutine) can observe the allocator's state, per Mode's NoSync
// flag.
type Allocator interface {
	AllocPage() (PA, error)
	AllocPageNoSync() (PA, error)
}

// BumpAllocator carves page-aligned pages out of a fixed [base, base+size)
// window of a Bus, advancing a cursor. It never frees, matching the
// "boot-time, can't reclaim" allocators this repo and its pack already use
// (bootMemAllocator in gopher-os's pmm/allocator package). The synchronizing
// variant guards the cursor with a mutex; the non-synchronizing variant does
// not, and must only be used before concurrent access is possible.
type BumpAllocator struct {
	bus Bus

	mu     sync.Mutex
	cursor PA
	limit  PA
}

// NewBumpAllocator creates an allocator that hands out pages from
// [base, base+size) of bus, zeroing each page through bus before returning
// it. base and size must be page-aligned.
func NewBumpAllocator(bus Bus, base PA, size uint64) (*BumpAllocator, error) {
	if base.Addr()%PageSize != 0 {
		return nil, fmt.Errorf("pgtable: allocator base 0x%x is not page-aligned", base.Addr())
	}
	if size%PageSize != 0 {
		return nil, fmt.Errorf("pgtable: allocator size 0x%x is not a multiple of the page size", size)
	}
	return &BumpAllocator{
		bus:    bus,
		cursor: base,
		limit:  base.Add(size),
	}, nil
}

func (a *BumpAllocator) take() (PA, error) {
	if a.cursor.Addr() >= a.limit.Addr() {
		return 0, fmt.Errorf("pgtable: %w: window [0x%x-0x%x) exhausted", ErrAllocationExhausted, a.cursor.Addr(), a.limit.Addr())
	}
	page := a.cursor
	a.cursor = a.cursor.Add(PageSize)
	if err := zeroPage(a.bus, page); err != nil {
		return 0, fmt.Errorf("pgtable: zero page 0x%x: %w", page.Addr(), err)
	}
	return page, nil
}

// AllocPage implements Allocator.
func (a *BumpAllocator) AllocPage() (PA, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.take()
}

// AllocPageNoSync implements Allocator. Caller is responsible for ensuring
// no concurrent access is possible.
func (a *BumpAllocator) AllocPageNoSync() (PA, error) {
	return a.take()
}

func zeroPage(bus Bus, page PA) error {
	for i := 0; i < EntriesPerTable; i++ {
		if err := bus.WritePTE(page.Add(uint64(i*PTESize)), 0); err != nil {
			return err
		}
	}
	return nil
}

var _ Allocator = (*BumpAllocator)(nil)

// HostBumpAllocator is a BumpAllocator that owns its backing store via an
// anonymous mmap, for tables that are not carved out of existing guest
// memory (standalone tests, or a future host-only stage-2 table). Modeled on
// internal/hv/kvm/kvm.go's AllocateMemory, which maps guest RAM the same way.
type HostBumpAllocator struct {
	*BumpAllocator

	mem []byte
	bus *SliceBus
}

// NewHostBumpAllocator mmaps an anonymous region of numPages pages and
// returns an allocator over it.
func NewHostBumpAllocator(numPages int) (*HostBumpAllocator, error) {
	size := numPages * PageSize
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("pgtable: allocate host arena: %w", err)
	}

	bus := NewSliceBus(mem, 0)
	alloc, err := NewBumpAllocator(bus, 0, uint64(size))
	if err != nil {
		unix.Munmap(mem)
		return nil, err
	}

	return &HostBumpAllocator{BumpAllocator: alloc, mem: mem, bus: bus}, nil
}

// Bus returns the Bus backing this allocator's arena.
func (a *HostBumpAllocator) Bus() Bus { return a.bus }

// Close releases the backing mmap.
func (a *HostBumpAllocator) Close() error {
	return unix.Munmap(a.mem)
}
