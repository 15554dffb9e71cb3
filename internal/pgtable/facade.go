package pgtable

import (
	"fmt"
	"log/slog"
)

// ImageLayout describes the hypervisor's own loaded image, as known to the
// boot loader: the VA ranges of its text, read-only data, and read-write
// data segments. NewHypervisorTable's Init maps each range with the
// attributes that segment needs (text: R|X; rodata: R; data: R|W) and
// nothing more, so the hypervisor never runs with a writable-and-executable
// mapping of its own code.
type ImageLayout struct {
	TextBegin, TextEnd     VA
	RodataBegin, RodataEnd VA
	DataBegin, DataEnd     VA
}

// HypervisorTable is the stage-1 facade: the one Table that maps the
// hypervisor's own virtual address space, as opposed to a per-VM stage-2
// table mapping guest-physical to host-physical addresses. It forces
// ModeStage1 on every operation so TLB maintenance always targets the
// right address space, and exists mainly so call sites read as intent
// ("map into the hypervisor's own space") rather than as a bare Table with
// a mode flag a caller could forget to set.
type HypervisorTable struct {
	table *Table
}

// NewHypervisorTable constructs a stage-1 facade over the given Bus,
// Backend, and Allocator. Init must be called before use.
func NewHypervisorTable(bus Bus, backend Backend, alloc Allocator) *HypervisorTable {
	return &HypervisorTable{table: NewTable(bus, backend, alloc)}
}

// Init allocates the root table and maps the hypervisor's image segments
// and, if uartBase is non-zero, a single device page for early console
// output. mode's R/W/X/D bits are ignored; only ModeNoSync/ModeNoInvalidate
// are honored, letting early boot (MMU not yet live) build the table
// without synchronization or TLB maintenance.
func (h *HypervisorTable) Init(id uint32, layout ImageLayout, uartBase VA, mode Mode) error {
	steer := mode & (ModeNoSync | ModeNoInvalidate)

	if err := h.table.Init(id, steer); err != nil {
		return fmt.Errorf("pgtable: init hypervisor table: %w", err)
	}

	segments := []struct {
		name        string
		begin, end  VA
		segmentMode Mode
	}{
		{"text", layout.TextBegin, layout.TextEnd, ModeR | ModeX},
		{"rodata", layout.RodataBegin, layout.RodataEnd, ModeR},
		{"data", layout.DataBegin, layout.DataEnd, ModeR | ModeW},
	}

	for _, seg := range segments {
		if seg.begin == seg.end {
			continue
		}
		ok, err := h.table.IdentityMap(seg.begin, seg.end, seg.segmentMode|ModeStage1|steer)
		if err != nil {
			return fmt.Errorf("pgtable: map hypervisor %s segment: %w", seg.name, err)
		}
		if !ok {
			return fmt.Errorf("pgtable: map hypervisor %s segment: allocator exhausted", seg.name)
		}
		slog.Debug("pgtable: mapped hypervisor segment", "segment", seg.name, "begin", seg.begin, "end", seg.end)
	}

	if uartBase != 0 {
		ok, err := h.table.IdentityMapPage(uartBase, ModeR|ModeW|ModeD|ModeStage1|steer)
		if err != nil {
			return fmt.Errorf("pgtable: map uart page: %w", err)
		}
		if !ok {
			return fmt.Errorf("pgtable: map uart page: allocator exhausted")
		}
	}

	return nil
}

// IdentityMap maps [vaBegin, vaEnd) into the hypervisor's own address space.
// ModeStage1 is forced regardless of what the caller passes.
func (h *HypervisorTable) IdentityMap(vaBegin, vaEnd VA, mode Mode) (bool, error) {
	return h.table.IdentityMap(vaBegin, vaEnd, mode|ModeStage1)
}

// Unmap removes [vaBegin, vaEnd) from the hypervisor's own address space.
func (h *HypervisorTable) Unmap(vaBegin, vaEnd VA, mode Mode) (bool, error) {
	return h.table.Unmap(vaBegin, vaEnd, mode|ModeStage1)
}

// Defrag runs table defragmentation (currently a no-op, see Table.Defrag).
func (h *HypervisorTable) Defrag(mode Mode) error {
	return h.table.Defrag(mode | ModeStage1)
}

// IsMapped reports whether va is mapped in the hypervisor's address space.
func (h *HypervisorTable) IsMapped(va VA, mode Mode) (bool, error) {
	return h.table.IsMapped(va, mode|ModeStage1)
}

// UnmapHypervisor tears down the entire image mapping described by layout,
// for the rare case of relocating or retiring a hypervisor's own mapping
// (e.g. before handing a core fully over to a guest with no host side
// remaining). It is the inverse of Init's segment mapping loop.
func (h *HypervisorTable) UnmapHypervisor(layout ImageLayout, mode Mode) error {
	steer := mode & (ModeNoSync | ModeNoInvalidate)

	ranges := [][2]VA{
		{layout.TextBegin, layout.TextEnd},
		{layout.RodataBegin, layout.RodataEnd},
		{layout.DataBegin, layout.DataEnd},
	}
	for _, r := range ranges {
		if r[0] == r[1] {
			continue
		}
		ok, err := h.table.Unmap(r[0], r[1], ModeStage1|steer)
		if err != nil {
			return fmt.Errorf("pgtable: unmap hypervisor range: %w", err)
		}
		if !ok {
			return fmt.Errorf("pgtable: unmap hypervisor range: incomplete")
		}
	}
	return nil
}

// Root returns the physical address of the underlying table's root page,
// for architectures that need it to populate a control register (CR3,
// TTBR0_EL2, satp) at CPU-entry time.
func (h *HypervisorTable) Root() PA { return h.table.Root }
