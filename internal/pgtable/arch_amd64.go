package pgtable

import "log/slog"

// amd64 page-table entry bits, matching the constant blocks duplicated in
// internal/hv/kvm/kvm_amd64.go and internal/hv/whp/whp_amd64.go.
const (
	amd64P   uint64 = 1 << 0  // present
	amd64RW  uint64 = 1 << 1  // writable
	amd64US  uint64 = 1 << 2  // user accessible
	amd64PCD uint64 = 1 << 4  // page-level cache disable
	amd64PS  uint64 = 1 << 7  // page size (block at PD/PDPT level)
	amd64NX  uint64 = 1 << 63 // no-execute
)

const amd64PAMask = 0x000F_FFFF_FFFF_F000

// Amd64Backend implements Backend for 4-level (PML4/PDPT/PD/PT) long-mode
// paging, as built by internal/hv/kvm and internal/hv/whp for guest boot.
type Amd64Backend struct{}

// NewAmd64Backend constructs the amd64 architecture backend.
func NewAmd64Backend() *Amd64Backend { return &Amd64Backend{} }

// MaxLevel implements Backend. 4 levels: PML4 (3), PDPT (2), PD (1), PT (0).
func (Amd64Backend) MaxLevel(mode Mode) int { return 3 }

// IsBlockAllowed implements Backend: 1GiB blocks at the PDPT level (2) and
// 2MiB blocks at the PD level (1); the PML4 level (3) has no block form.
func (Amd64Backend) IsBlockAllowed(level int) bool {
	return level == 1 || level == 2
}

// AbsentPTE implements Backend.
func (Amd64Backend) AbsentPTE() PTE { return 0 }

// ModeToAttrs implements Backend.
func (Amd64Backend) ModeToAttrs(mode Mode) uint64 {
	attrs := amd64P | amd64US
	if mode&ModeW != 0 {
		attrs |= amd64RW
	}
	if mode&ModeD != 0 {
		attrs |= amd64PCD
	}
	if mode&ModeX == 0 {
		attrs |= amd64NX
	}
	return attrs
}

// PTEIsPresent implements Backend.
func (Amd64Backend) PTEIsPresent(pte PTE) bool { return uint64(pte)&amd64P != 0 }

// PTEIsBlock implements Backend: present, PS set, and not a PML4 entry (the
// engine never calls this with a level-3 PTE since IsBlockAllowed(3) is
// false, but the PS bit alone still distinguishes block from table here).
func (Amd64Backend) PTEIsBlock(pte PTE) bool {
	return uint64(pte)&amd64P != 0 && uint64(pte)&amd64PS != 0
}

// PTEIsTable implements Backend.
func (Amd64Backend) PTEIsTable(pte PTE) bool {
	return uint64(pte)&amd64P != 0 && uint64(pte)&amd64PS == 0
}

// PAToPagePTE implements Backend.
func (Amd64Backend) PAToPagePTE(pa PA, attrs uint64) PTE {
	return PTE(pa.Addr()&amd64PAMask | attrs)
}

// PAToBlockPTE implements Backend.
func (Amd64Backend) PAToBlockPTE(pa PA, attrs uint64) PTE {
	return PTE(pa.Addr()&amd64PAMask | attrs | amd64PS)
}

// PAToTablePTE implements Backend.
func (Amd64Backend) PAToTablePTE(pa PA) PTE {
	return PTE(pa.Addr()&amd64PAMask | amd64P | amd64RW | amd64US)
}

// BlockToPagePTE implements Backend: a block and a page differ only in the
// PS bit for levels below the PDPT, so clearing it suffices.
func (Amd64Backend) BlockToPagePTE(pte PTE) PTE {
	return PTE(uint64(pte) &^ amd64PS)
}

// PTEToTable implements Backend.
func (Amd64Backend) PTEToTable(pte PTE) PA {
	return PA(uint64(pte) & amd64PAMask)
}

// PTEAdvance implements Backend. The physical address occupies its natural
// byte-address bit positions (bits 12-51), so advancing it is a plain add.
func (Amd64Backend) PTEAdvance(pte PTE, byteOffset uint64) PTE {
	return PTE(uint64(pte) + byteOffset)
}

// InvalidateStage1Range implements Backend. Actual invalidation is a CPU
// primitive (INVLPG/INVPCID) outside this package's scope; logged so callers
// can see it happened during development and testing.
func (Amd64Backend) InvalidateStage1Range(begin, end VA) {
	slog.Debug("pgtable: amd64 invalidate stage1 range", "begin", begin, "end", end)
}

// InvalidateStage2Range implements Backend.
func (Amd64Backend) InvalidateStage2Range(begin, end VA) {
	slog.Debug("pgtable: amd64 invalidate stage2 range", "begin", begin, "end", end)
}

var _ Backend = Amd64Backend{}
