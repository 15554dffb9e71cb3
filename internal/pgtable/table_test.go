package pgtable

import (
	"errors"
	"strings"
	"testing"
)

func newTestTable(t *testing.T, numPages int) (*Table, *HostBumpAllocator) {
	t.Helper()
	alloc, err := NewHostBumpAllocator(numPages)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	t.Cleanup(func() { alloc.Close() })

	table := NewTable(alloc.Bus(), NewAmd64Backend(), alloc)
	if err := table.Init(0, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return table, alloc
}

// S1: init stage-1 table, map a single page, and confirm only that page is
// mapped.
func TestIdentityMapSinglePage(t *testing.T) {
	table, _ := newTestTable(t, 64)

	begin := VAFromAddr(0x4000_0000)
	end := VAFromAddr(0x4000_1000)

	ok, err := table.IdentityMap(begin, end, ModeR|ModeW|ModeStage1|ModeNoSync)
	if err != nil {
		t.Fatalf("IdentityMap() error = %v", err)
	}
	if !ok {
		t.Fatal("IdentityMap() = false, want true")
	}

	mapped, err := table.IsMapped(begin, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped() error = %v", err)
	}
	if !mapped {
		t.Error("IsMapped(begin) = false, want true")
	}

	mapped, err = table.IsMapped(end, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped() error = %v", err)
	}
	if mapped {
		t.Error("IsMapped(end) = true, want false")
	}
}

// S2: mapping a full 1GiB-aligned range on amd64 (which permits a 1GiB
// block at level 2) produces a single block PTE at the root, rather than a
// tree of finer mappings.
func TestIdentityMapUsesBlockWhenAligned(t *testing.T) {
	table, _ := newTestTable(t, 64)

	begin := VAFromAddr(0)
	end := VAFromAddr(entrySize(2)) // 1 GiB, amd64 PDPT block size

	ok, err := table.IdentityMap(begin, end, ModeR|ModeX|ModeStage1|ModeNoSync)
	if err != nil {
		t.Fatalf("IdentityMap() error = %v", err)
	}
	if !ok {
		t.Fatal("IdentityMap() = false, want true")
	}

	backend := NewAmd64Backend()
	level3PTE, err := table.bus.ReadPTE(table.Root)
	if err != nil {
		t.Fatalf("ReadPTE(root) error = %v", err)
	}
	if !backend.PTEIsTable(level3PTE) {
		t.Fatal("root PML4 entry should be a table PTE")
	}

	pdpt := backend.PTEToTable(level3PTE)
	level2PTE, err := table.bus.ReadPTE(pdpt)
	if err != nil {
		t.Fatalf("ReadPTE(pdpt) error = %v", err)
	}
	if !backend.PTEIsBlock(level2PTE) {
		t.Error("a full 1GiB-aligned range should collapse to a single level-2 block PTE")
	}
}

// S3: map then unmap a 2MiB range; every page in the range must report
// unmapped afterward, and an untouched neighbor must still report mapped.
func TestMapThenUnmap(t *testing.T) {
	table, _ := newTestTable(t, 256)

	neighbor := VAFromAddr(0x7F00_0000)
	if ok, err := table.IdentityMap(neighbor, neighbor.Add(PageSize), ModeR|ModeW|ModeStage1|ModeNoSync); err != nil || !ok {
		t.Fatalf("IdentityMap(neighbor) = %v, %v", ok, err)
	}

	begin := VAFromAddr(0x8000_0000)
	end := begin.Add(entrySize(1)) // 2 MiB

	if ok, err := table.IdentityMap(begin, end, ModeR|ModeW|ModeStage1|ModeNoSync); err != nil || !ok {
		t.Fatalf("IdentityMap(range) = %v, %v", ok, err)
	}

	ok, err := table.Unmap(begin, end, ModeStage1|ModeNoSync)
	if err != nil {
		t.Fatalf("Unmap() error = %v", err)
	}
	if !ok {
		t.Fatal("Unmap() = false, want true")
	}

	for va := begin; va.Addr() < end.Addr(); va = va.Add(PageSize) {
		mapped, err := table.IsMapped(va, ModeStage1)
		if err != nil {
			t.Fatalf("IsMapped(%s) error = %v", va, err)
		}
		if mapped {
			t.Errorf("IsMapped(%s) = true after Unmap, want false", va)
		}
	}

	mapped, err := table.IsMapped(neighbor, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped(neighbor) error = %v", err)
	}
	if !mapped {
		t.Error("IsMapped(neighbor) = false, want true (neighbor was never unmapped)")
	}
}

// failAfterAllocator wraps an Allocator and fails the Nth call onward,
// simulating exhaustion partway through a multi-level-1-region map, per S4.
type failAfterAllocator struct {
	inner  Allocator
	calls  int
	failAt int
}

func (f *failAfterAllocator) AllocPage() (PA, error) {
	f.calls++
	if f.calls >= f.failAt {
		return 0, ErrAllocationExhausted
	}
	return f.inner.AllocPage()
}

func (f *failAfterAllocator) AllocPageNoSync() (PA, error) {
	f.calls++
	if f.calls >= f.failAt {
		return 0, ErrAllocationExhausted
	}
	return f.inner.AllocPageNoSync()
}

// S4: inject an allocation failure partway through a map spanning multiple
// level-1 regions; the call must fail cleanly and every VA in the
// requested range must report the same mapped state it had before the
// call.
func TestIdentityMapAllocationFailureLeavesNoPartialMapping(t *testing.T) {
	hostAlloc, err := NewHostBumpAllocator(256)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer hostAlloc.Close()

	failing := &failAfterAllocator{inner: hostAlloc, failAt: 3}
	table := NewTable(hostAlloc.Bus(), NewAmd64Backend(), failing)
	if err := table.Init(0, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	begin := VAFromAddr(0)
	// Span several level-1 (2MiB) regions with a range too small to
	// collapse to a single block, forcing multiple sub-table allocations.
	end := begin.Add(8 * entrySize(0) * EntriesPerTable)

	before := make([]bool, 0)
	for va := begin; va.Addr() < end.Addr(); va = va.Add(entrySize(1)) {
		mapped, err := table.IsMapped(va, ModeStage1)
		if err != nil {
			t.Fatalf("IsMapped() error = %v", err)
		}
		before = append(before, mapped)
	}

	ok, err := table.IdentityMap(begin, end, ModeR|ModeW|ModeStage1|ModeNoSync)
	if err == nil && ok {
		t.Fatal("IdentityMap() with injected allocation failure unexpectedly succeeded")
	}
	if ok {
		t.Fatal("IdentityMap() = true, want false on allocation failure")
	}
	if !errors.Is(err, ErrAllocationExhausted) {
		t.Errorf("IdentityMap() error = %v, want wrapping ErrAllocationExhausted", err)
	}

	i := 0
	for va := begin; va.Addr() < end.Addr(); va = va.Add(entrySize(1)) {
		mapped, err := table.IsMapped(va, ModeStage1)
		if err != nil {
			t.Fatalf("IsMapped() error = %v", err)
		}
		if mapped != before[i] {
			t.Errorf("IsMapped(%s) = %v after failed map, want unchanged %v", va, mapped, before[i])
		}
		i++
	}
}

// S5: identity_map_page maps exactly the one requested page.
func TestIdentityMapPageMapsOnlyThatPage(t *testing.T) {
	table, _ := newTestTable(t, 64)

	va := VAFromAddr(0x0900_0000)
	ok, err := table.IdentityMapPage(va, ModeR|ModeW|ModeD|ModeStage1|ModeNoSync)
	if err != nil {
		t.Fatalf("IdentityMapPage() error = %v", err)
	}
	if !ok {
		t.Fatal("IdentityMapPage() = false, want true")
	}

	mapped, err := table.IsMapped(va, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped() error = %v", err)
	}
	if !mapped {
		t.Error("IsMapped(page) = false, want true")
	}

	neighbor := va.Add(PageSize)
	mapped, err = table.IsMapped(neighbor, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped(neighbor) error = %v", err)
	}
	if mapped {
		t.Errorf("IsMapped(%s) = true, want false", neighbor)
	}
}

func TestIsMappedOutOfRangeIsFalse(t *testing.T) {
	riscv := NewRiscv64Backend(3) // Sv39: MaxLevel 2, much smaller coverage than amd64
	alloc, err := NewHostBumpAllocator(8)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	table := NewTable(alloc.Bus(), riscv, alloc)
	if err := table.Init(0, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	huge := VAFromAddr(^uint64(0))
	mapped, err := table.IsMapped(huge, ModeStage1)
	if err != nil {
		t.Fatalf("IsMapped() error = %v", err)
	}
	if mapped {
		t.Error("IsMapped() for an address beyond table coverage should be false")
	}
}

func TestDumpListsPresentEntries(t *testing.T) {
	table, _ := newTestTable(t, 64)

	if ok, err := table.IdentityMap(VAFromAddr(0), VAFromAddr(PageSize), ModeR|ModeW|ModeStage1|ModeNoSync); err != nil || !ok {
		t.Fatalf("IdentityMap() = %v, %v", ok, err)
	}

	var buf strings.Builder
	if err := table.Dump(&buf, ModeStage1); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Dump() of a table with a mapped page should produce output")
	}
}

// Idempotence (spec.md §8): identity_map applied twice with the same
// arguments has the same observable effect as applying it once.
func TestIdentityMapIsIdempotent(t *testing.T) {
	table, _ := newTestTable(t, 64)

	begin := VAFromAddr(0x4000_0000)
	end := VAFromAddr(0x4000_3000)
	mode := ModeR | ModeW | ModeStage1 | ModeNoSync

	if ok, err := table.IdentityMap(begin, end, mode); err != nil || !ok {
		t.Fatalf("IdentityMap() first call = %v, %v", ok, err)
	}

	wantMapped := make(map[VA]bool)
	for _, va := range []VA{begin, VAFromAddr(0x4000_1000), VAFromAddr(0x4000_2000), end} {
		mapped, err := table.IsMapped(va, ModeStage1)
		if err != nil {
			t.Fatalf("IsMapped(%v) error = %v", va, err)
		}
		wantMapped[va] = mapped
	}

	var before strings.Builder
	if err := table.Dump(&before, ModeStage1); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if ok, err := table.IdentityMap(begin, end, mode); err != nil || !ok {
		t.Fatalf("IdentityMap() second call = %v, %v", ok, err)
	}

	for va, want := range wantMapped {
		got, err := table.IsMapped(va, ModeStage1)
		if err != nil {
			t.Fatalf("IsMapped(%v) error = %v", va, err)
		}
		if got != want {
			t.Errorf("IsMapped(%v) after second IdentityMap() = %v, want %v (unchanged from first call)", va, got, want)
		}
	}

	var after strings.Builder
	if err := table.Dump(&after, ModeStage1); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if before.String() != after.String() {
		t.Errorf("Dump() changed after a repeated IdentityMap() with identical arguments:\nbefore:\n%s\nafter:\n%s", before.String(), after.String())
	}
}
