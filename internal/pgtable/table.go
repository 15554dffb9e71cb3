package pgtable

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Table is a handle to one page table: a root physical page plus an opaque
// ID the Backend may use for TLB-tag discipline (e.g. a VM/ASID number). A
// Table exclusively owns its root page and, transitively, every sub-table
// reachable from it through a PTE the Backend classifies as a table. A
// Table is created by Init, mutated only through its own methods, and is
// never destroyed by this package (freeing reachable sub-tables is future
// work, same as the original implementation this package is grounded on).
//
// Concurrent operations on different Tables are independent. Concurrent
// operations on the *same* Table are not safe: callers must serialize them
// themselves, exactly as spec'd — this package holds no lock of its own.
type Table struct {
	bus     Bus
	backend Backend
	alloc   Allocator

	Root PA
	ID   uint32
}

// NewTable constructs a Table handle that has not yet been initialized;
// call Init before using it.
func NewTable(bus Bus, backend Backend, alloc Allocator) *Table {
	return &Table{bus: bus, backend: backend, alloc: alloc}
}

func (t *Table) allocPage(mode Mode) (PA, error) {
	if mode&ModeNoSync != 0 {
		return t.alloc.AllocPageNoSync()
	}
	return t.alloc.AllocPage()
}

// Init allocates the root page, fills every slot with the Backend's absent
// encoding, and records id. It fails only on allocation failure.
func (t *Table) Init(id uint32, mode Mode) error {
	root, err := t.allocPage(mode)
	if err != nil {
		slog.Error("pgtable: allocate root table", "error", err)
		return fmt.Errorf("pgtable: init table: %w", err)
	}

	absent := t.backend.AbsentPTE()
	for i := 0; i < EntriesPerTable; i++ {
		if err := t.bus.WritePTE(root.Add(uint64(i*PTESize)), absent); err != nil {
			return fmt.Errorf("pgtable: init table: zero root: %w", err)
		}
	}

	t.Root = root
	t.ID = id
	return nil
}

// populateTable ensures the PTE at pteAddr holds a table PTE, allocating and
// publishing a new sub-table if it does not, and returns the sub-table's
// physical address.
//
// Publication protocol: every slot of the new sub-table is written first,
// then the table PTE is stored. This package has no stronger memory-model
// guarantee than any other Go code — there is no release fence here, only
// sequencing of the Bus writes — so a concurrent reader (a hardware
// page-walker, or another goroutine) must still synchronize externally
// before following the published table PTE; see spec Open Question (c).
//
// populateTable re-reads the slot without any acquire ordering, same as the
// original implementation; this is safe under this package's single-writer
// contract (callers serialize all operations on one Table) but would need
// an explicit acquire fence if that contract were ever relaxed.
func (t *Table) populateTable(pteAddr PA, level int, mode Mode) (PA, error) {
	v, err := t.bus.ReadPTE(pteAddr)
	if err != nil {
		return 0, err
	}

	if t.backend.PTEIsTable(v) {
		return t.backend.PTEToTable(v), nil
	}

	ntable, err := t.allocPage(mode)
	if err != nil {
		slog.Error("pgtable: allocate sub-table", "level", level, "error", err)
		return 0, fmt.Errorf("pgtable: populate table: %w", err)
	}

	var template PTE
	var inc uint64
	if !t.backend.PTEIsBlock(v) {
		template = t.backend.AbsentPTE()
		inc = 0
	} else {
		inc = entrySize(level - 1)
		if level == 1 {
			template = t.backend.BlockToPagePTE(v)
		} else {
			template = v
		}
	}

	for i := 0; i < EntriesPerTable; i++ {
		if err := t.bus.WritePTE(ntable.Add(uint64(i*PTESize)), template); err != nil {
			return 0, fmt.Errorf("pgtable: populate table: init slot %d: %w", i, err)
		}
		template = t.backend.PTEAdvance(template, inc)
	}

	if err := t.bus.WritePTE(pteAddr, t.backend.PAToTablePTE(ntable)); err != nil {
		return 0, fmt.Errorf("pgtable: populate table: publish: %w", err)
	}

	return ntable, nil
}

// freeDisplacedSubtree would retire whatever sub-table a block PTE displaces
// when a mapping is coarsened. Block PTEs never reference a sub-table in
// this package, so the common case is a no-op; the case that matters is a
// table PTE being overwritten by a block (coarsening), which this package
// does not currently produce (map_level only ever refines table->block, not
// the reverse) but would need this if that ever changed.
//
// TODO(pgtable): implement the cross-CPU barrier (ensure no CPU holds a
// cached translation through the displaced sub-tree) and the sub-tree walk
// that frees it, before any caller starts coarsening existing table PTEs
// into blocks.
func (t *Table) freeDisplacedSubtree(displaced PTE, level int, mode Mode) {
	_ = displaced
	_ = level
	_ = mode
}

// leafEncoder supplies the two PTE values mapLevel's leaf/block cases write
// at commit time. IdentityMap and Unmap drive the same traversal and differ
// only in this: identical range-splitting, block-breaking, and failure
// semantics, per spec.md's rationale for reusing the mapper's walk rather
// than writing a separate one for unmap.
type leafEncoder struct {
	page  func(pa PA, attrs uint64) PTE
	block func(pa PA, attrs uint64) PTE
}

// mapLevel is the recursive core of IdentityMap, Unmap, and
// IdentityMapPage: it updates the table at the given physical address,
// level, for the VA range [vaBegin, vaEnd), which tracks a physical range
// that starts at pa 1:1 (identity mapping). commit selects the dry-run vs.
// committing pass; leaf selects what a commit writes at the leaf/block
// case, so the same walk serves both mapping and unmapping.
func (t *Table) mapLevel(vaBegin, vaEnd VA, pa PA, attrs uint64, table PA, level int, commit bool, mode Mode, leaf leafEncoder) (bool, error) {
	idx := index(vaBegin, level)
	pteAddr := table.Add(uint64(idx * PTESize))

	lvlEnd := levelEnd(vaBegin, level)
	begin := vaBegin.Addr()
	end := vaEnd.Addr()
	if end > lvlEnd.Addr() {
		end = lvlEnd.Addr()
	}
	entSize := entrySize(level)

	for begin < end {
		switch {
		case level == 0:
			if commit {
				if err := t.bus.WritePTE(pteAddr, leaf.page(pa, attrs)); err != nil {
					return false, err
				}
			}

		case (end-begin) >= entSize && t.backend.IsBlockAllowed(level) && alignedToEntry(begin, level):
			if commit {
				old, err := t.bus.ReadPTE(pteAddr)
				if err != nil {
					return false, err
				}
				if err := t.bus.WritePTE(pteAddr, leaf.block(pa, attrs)); err != nil {
					return false, err
				}
				t.freeDisplacedSubtree(old, level, mode)
			}

		default:
			sub, err := t.populateTable(pteAddr, level, mode)
			if err != nil {
				return false, err
			}
			ok, err := t.mapLevel(VAFromAddr(begin), vaEnd, pa, attrs, sub, level-1, commit, mode, leaf)
			if err != nil || !ok {
				return false, err
			}
		}

		begin = (begin + entSize) &^ (entSize - 1)
		pa = PA((pa.Addr() + entSize) &^ (entSize - 1))
		pteAddr = pteAddr.Add(PTESize)
	}

	return true, nil
}

func (t *Table) invalidateRange(begin, end VA, mode Mode) {
	if mode&ModeNoInvalidate != 0 {
		return
	}
	if mode&ModeStage1 != 0 {
		t.backend.InvalidateStage1Range(begin, end)
	} else {
		t.backend.InvalidateStage2Range(begin, end)
	}
}

func pageRoundOut(vaBegin, vaEnd VA) (VA, VA) {
	begin := vaBegin.Clear()
	end := vaEnd.Add(PageSize - 1).Clear()
	return begin, end
}

// IdentityMap maps the half-open range [vaBegin, vaEnd), rounded out to page
// boundaries, to the physical range with the same numeric addresses, with
// attributes derived from mode.
//
// It walks the range twice: once with commit=false (a dry run that still
// allocates any sub-tables the walk needs, under the same atomic-publication
// protocol as a committing walk, but never writes a leaf PTE), and, only if
// that succeeds, once more with commit=true. If an allocation fails during
// the dry run, the live table is left with no new leaf mappings — it may
// retain extra, empty sub-tables from the failed attempt, but never a
// half-applied mapping.
func (t *Table) IdentityMap(vaBegin, vaEnd VA, mode Mode) (bool, error) {
	attrs := t.backend.ModeToAttrs(mode & attrMask)
	level := t.backend.MaxLevel(mode)
	begin, end := pageRoundOut(vaBegin, vaEnd)
	pa := PAFromAddr(begin.Addr()).Clear()
	leaf := leafEncoder{page: t.backend.PAToPagePTE, block: t.backend.PAToBlockPTE}

	if ok, err := t.mapLevel(begin, end, pa, attrs, t.Root, level, false, mode, leaf); err != nil || !ok {
		return false, err
	}

	if _, err := t.mapLevel(begin, end, pa, attrs, t.Root, level, true, mode, leaf); err != nil {
		return false, err
	}

	t.invalidateRange(begin, end, mode)
	return true, nil
}

// Unmap updates the table such that [vaBegin, vaEnd) is not mapped to any
// physical address. It drives the same two-phase mapLevel walk as
// IdentityMap, with a leafEncoder that writes the absent encoding at both
// the page and block case instead of a page/block PTE: the range-splitting,
// block-breaking, and failure semantics are identical, only the value
// written at the leaf differs. Sub-tables that become entirely absent are
// not freed (future work).
func (t *Table) Unmap(vaBegin, vaEnd VA, mode Mode) (bool, error) {
	level := t.backend.MaxLevel(mode)
	begin, end := pageRoundOut(vaBegin, vaEnd)
	pa := PAFromAddr(begin.Addr()).Clear()
	absent := func(PA, uint64) PTE { return t.backend.AbsentPTE() }
	leaf := leafEncoder{page: absent, block: absent}

	if ok, err := t.mapLevel(begin, end, pa, 0, t.Root, level, false, mode, leaf); err != nil || !ok {
		return false, err
	}
	if _, err := t.mapLevel(begin, end, pa, 0, t.Root, level, true, mode, leaf); err != nil {
		return false, err
	}

	t.invalidateRange(begin, end, mode)
	return true, nil
}

// IdentityMapPage maps a single page, forcing a table-PTE path down to
// level 1 and writing a single page PTE at level 0. Used for early-boot
// device mappings (e.g. a UART MMIO page) where a whole-range two-phase walk
// is unnecessary. There is no two-phase protection here: an allocation
// failure partway down is reported immediately and the caller must treat the
// page as unmapped.
func (t *Table) IdentityMapPage(va VA, mode Mode) (bool, error) {
	attrs := t.backend.ModeToAttrs(mode & attrMask)
	va = va.Clear()
	pa := PAFromAddr(va.Addr())

	table := t.Root
	for level := t.backend.MaxLevel(mode); level > 0; level-- {
		pteAddr := table.Add(uint64(index(va, level) * PTESize))
		sub, err := t.populateTable(pteAddr, level, mode)
		if err != nil {
			return false, err
		}
		table = sub
	}

	leafAddr := table.Add(uint64(index(va, 0) * PTESize))
	if err := t.bus.WritePTE(leafAddr, t.backend.PAToPagePTE(pa, attrs)); err != nil {
		return false, err
	}
	return true, nil
}

// IsMapped reports whether va is mapped in the table, walking from the top
// level down. A VA beyond a level's coverage, or a PTE that is neither a
// permitted block nor a table, is reported as not mapped rather than as an
// error.
func (t *Table) IsMapped(va VA, mode Mode) (bool, error) {
	va = va.Clear()
	return t.isMappedRecursive(t.Root, va, t.backend.MaxLevel(mode))
}

func (t *Table) isMappedRecursive(table PA, va VA, level int) (bool, error) {
	if va.Addr() >= levelEnd(va, level).Addr() {
		return false, nil
	}

	pteAddr := table.Add(uint64(index(va, level) * PTESize))
	v, err := t.bus.ReadPTE(pteAddr)
	if err != nil {
		return false, err
	}

	if level == 0 {
		return t.backend.PTEIsPresent(v), nil
	}
	if t.backend.IsBlockAllowed(level) && t.backend.PTEIsBlock(v) {
		return true, nil
	}
	if t.backend.PTEIsTable(v) {
		return t.isMappedRecursive(t.backend.PTEToTable(v), va, level-1)
	}
	return false, nil
}

// Dump writes every present PTE in the table to w, indented proportionally
// to depth, for diagnostics. It never mutates the table.
func (t *Table) Dump(w io.Writer, mode Mode) error {
	return t.dumpRecursive(w, t.Root, t.backend.MaxLevel(mode), t.backend.MaxLevel(mode))
}

func (t *Table) dumpRecursive(w io.Writer, table PA, level, maxLevel int) error {
	for i := 0; i < EntriesPerTable; i++ {
		v, err := t.bus.ReadPTE(table.Add(uint64(i * PTESize)))
		if err != nil {
			return err
		}
		if !t.backend.PTEIsPresent(v) {
			continue
		}

		indent := strings.Repeat("  ", maxLevel-level)
		if _, err := fmt.Fprintf(w, "%s%x: %x\n", indent, i, uint64(v)); err != nil {
			return err
		}

		if level == 0 {
			continue
		}
		if t.backend.PTEIsTable(v) {
			if err := t.dumpRecursive(w, t.backend.PTEToTable(v), level-1, maxLevel); err != nil {
				return err
			}
		}
	}
	return nil
}

// Defrag would coalesce runs of identically-attributed page PTEs into block
// PTEs where the backend permits, and free sub-tables whose entries are all
// absent. Coalescing and sub-table reclamation are declared future work
// (same as the original implementation), so this is a documented no-op that
// exists only so callers have a stable entry point to call once that work
// lands.
func (t *Table) Defrag(mode Mode) error {
	return nil
}
