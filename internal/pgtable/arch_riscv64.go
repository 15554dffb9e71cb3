package pgtable

import "log/slog"

// riscv64 Sv39/Sv48 PTE bits, matching the constants in
// internal/hv/riscv/rv64/mmu.go and the makePTE1G/makePTENonLeaf encodings
// in internal/hv/riscv/rv64/sbi.go.
const (
	riscvPteV uint64 = 1 << 0 // valid
	riscvPteR uint64 = 1 << 1 // readable
	riscvPteW uint64 = 1 << 2 // writable
	riscvPteX uint64 = 1 << 3 // executable
	riscvPteU uint64 = 1 << 4 // user accessible
	riscvPteG uint64 = 1 << 5 // global
	riscvPteA uint64 = 1 << 6 // accessed
	riscvPteD uint64 = 1 << 7 // dirty
)

// Riscv64Backend implements Backend for Sv39 (3 levels) or Sv48 (4 levels)
// paging.
type Riscv64Backend struct {
	// maxLevel is 2 for Sv39, 3 for Sv48.
	maxLevel int
}

// NewRiscv64Backend constructs a riscv64 backend with the given number of
// page-table levels (3 for Sv39, 4 for Sv48).
func NewRiscv64Backend(levels int) *Riscv64Backend {
	return &Riscv64Backend{maxLevel: levels - 1}
}

// MaxLevel implements Backend.
func (b *Riscv64Backend) MaxLevel(mode Mode) int { return b.maxLevel }

// IsBlockAllowed implements Backend: every non-zero level below the root
// supports a superpage (megapage at level 1, gigapage at level 2, and a
// terapage at level 3 under Sv48).
func (b *Riscv64Backend) IsBlockAllowed(level int) bool { return level >= 1 }

// AbsentPTE implements Backend.
func (b *Riscv64Backend) AbsentPTE() PTE { return 0 }

// ModeToAttrs implements Backend. Device mode carries no distinct attribute
// bit in the base Sv39/Sv48 PTE format (uncacheability is a PMA/PBMT
// property of the physical range, not the PTE); D is accepted for interface
// symmetry with the other backends and otherwise ignored here.
func (b *Riscv64Backend) ModeToAttrs(mode Mode) uint64 {
	attrs := riscvPteV | riscvPteU | riscvPteA | riscvPteD | riscvPteG
	if mode&ModeR != 0 {
		attrs |= riscvPteR
	}
	if mode&ModeW != 0 {
		attrs |= riscvPteW
	}
	if mode&ModeX != 0 {
		attrs |= riscvPteX
	}
	return attrs
}

// PTEIsPresent implements Backend.
func (b *Riscv64Backend) PTEIsPresent(pte PTE) bool { return uint64(pte)&riscvPteV != 0 }

// PTEIsBlock implements Backend: valid and at least one of R/X set marks a
// leaf (see mmu.go's walkPageTable: "pte&PteR != 0 || pte&PteX != 0").
func (b *Riscv64Backend) PTEIsBlock(pte PTE) bool {
	v := uint64(pte)
	return v&riscvPteV != 0 && (v&riscvPteR != 0 || v&riscvPteX != 0)
}

// PTEIsTable implements Backend: valid, and neither R nor X set.
func (b *Riscv64Backend) PTEIsTable(pte PTE) bool {
	v := uint64(pte)
	return v&riscvPteV != 0 && v&riscvPteR == 0 && v&riscvPteX == 0
}

// PAToPagePTE implements Backend.
func (b *Riscv64Backend) PAToPagePTE(pa PA, attrs uint64) PTE {
	return PTE((pa.Addr()>>PageBits)<<10 | attrs)
}

// PAToBlockPTE implements Backend.
func (b *Riscv64Backend) PAToBlockPTE(pa PA, attrs uint64) PTE {
	return PTE((pa.Addr()>>PageBits)<<10 | attrs)
}

// PAToTablePTE implements Backend: a non-leaf PTE carries only the valid bit
// plus the PPN of the next table (makePTENonLeaf in sbi.go).
func (b *Riscv64Backend) PAToTablePTE(pa PA) PTE {
	return PTE((pa.Addr()>>PageBits)<<10 | riscvPteV)
}

// BlockToPagePTE implements Backend: block and page PTEs share the same
// shape in Sv39/Sv48 (only the level at which they appear differs), so no
// bits need to change.
func (b *Riscv64Backend) BlockToPagePTE(pte PTE) PTE { return pte }

// PTEToTable implements Backend.
func (b *Riscv64Backend) PTEToTable(pte PTE) PA {
	return PA((uint64(pte) >> 10) << PageBits)
}

// PTEAdvance implements Backend. The physical address is encoded as
// (pa>>PageBits)<<10, so a byte offset must be folded through the same
// shift before being added (a plain add, as amd64/arm64 use, would corrupt
// the PPN field here).
func (b *Riscv64Backend) PTEAdvance(pte PTE, byteOffset uint64) PTE {
	return PTE(uint64(pte) + (byteOffset>>PageBits)<<10)
}

// InvalidateStage1Range implements Backend (sfence.vma in a real walker).
func (b *Riscv64Backend) InvalidateStage1Range(begin, end VA) {
	slog.Debug("pgtable: riscv64 invalidate stage1 range", "begin", begin, "end", end)
}

// InvalidateStage2Range implements Backend (hfence.gvma in a real walker).
func (b *Riscv64Backend) InvalidateStage2Range(begin, end VA) {
	slog.Debug("pgtable: riscv64 invalidate stage2 range", "begin", begin, "end", end)
}

var _ Backend = (*Riscv64Backend)(nil)
