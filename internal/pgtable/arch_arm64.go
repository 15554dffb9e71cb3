package pgtable

import "log/slog"

// VMSAv8-64 (ARMv8-A long-descriptor) bits, adapted from the TTE_* naming in
// _examples/usbarmory-tamago/arm64/mmu.go. That file targets the ARMv7
// short-descriptor, 2-level format; here the same attribute vocabulary
// (valid, block-vs-table, access permissions, execute-never) is re-expressed
// in the 4-level long-descriptor layout this engine's uniform
// absent/block/table model requires.
const (
	arm64Valid uint64 = 1 << 0
	// descriptor type, bit 1: 0 = block (levels 1-2), 1 = table/page.
	arm64TableOrPage uint64 = 1 << 1

	arm64AttrIndexDevice uint64 = 1 << 2 // MAIR index 1 (device-nGnRnE)
	arm64AP1ReadOnly     uint64 = 1 << 7 // AP[2]: 1 = read-only, 0 = read/write
	arm64UXN             uint64 = 1 << 54
	arm64PXN             uint64 = 1 << 53
)

const arm64PAMask = 0x0000_FFFF_FFFF_F000

// Arm64Backend implements Backend for the 4-level (L0-L3), 4KiB-granule
// VMSAv8-64 translation table format.
type Arm64Backend struct{}

// NewArm64Backend constructs the arm64 architecture backend.
func NewArm64Backend() *Arm64Backend { return &Arm64Backend{} }

// MaxLevel implements Backend. 4 levels: L0 (3) down to L3 (0).
func (Arm64Backend) MaxLevel(mode Mode) int { return 3 }

// IsBlockAllowed implements Backend: 1GiB blocks at L1 (level 2) and 2MiB
// blocks at L2 (level 1); L0 (level 3) and L3 (level 0, handled directly by
// the page path) have no block form.
func (Arm64Backend) IsBlockAllowed(level int) bool {
	return level == 1 || level == 2
}

// AbsentPTE implements Backend.
func (Arm64Backend) AbsentPTE() PTE { return 0 }

// ModeToAttrs implements Backend.
func (Arm64Backend) ModeToAttrs(mode Mode) uint64 {
	var attrs uint64
	if mode&ModeW == 0 {
		attrs |= arm64AP1ReadOnly
	}
	if mode&ModeX == 0 {
		attrs |= arm64UXN | arm64PXN
	}
	if mode&ModeD != 0 {
		attrs |= arm64AttrIndexDevice
	}
	return attrs
}

// PTEIsPresent implements Backend.
func (Arm64Backend) PTEIsPresent(pte PTE) bool { return uint64(pte)&arm64Valid != 0 }

// PTEIsBlock implements Backend: valid, descriptor-type bit clear.
func (Arm64Backend) PTEIsBlock(pte PTE) bool {
	v := uint64(pte)
	return v&arm64Valid != 0 && v&arm64TableOrPage == 0
}

// PTEIsTable implements Backend: valid, descriptor-type bit set.
func (Arm64Backend) PTEIsTable(pte PTE) bool {
	v := uint64(pte)
	return v&arm64Valid != 0 && v&arm64TableOrPage != 0
}

// PAToPagePTE implements Backend. At L3 the table/page bit must be set for a
// valid leaf, same encoding as a table descriptor elsewhere in the walk.
func (Arm64Backend) PAToPagePTE(pa PA, attrs uint64) PTE {
	return PTE(pa.Addr()&arm64PAMask | attrs | arm64TableOrPage | arm64Valid)
}

// PAToBlockPTE implements Backend.
func (Arm64Backend) PAToBlockPTE(pa PA, attrs uint64) PTE {
	return PTE(pa.Addr()&arm64PAMask | attrs | arm64Valid)
}

// PAToTablePTE implements Backend.
func (Arm64Backend) PAToTablePTE(pa PA) PTE {
	return PTE(pa.Addr()&arm64PAMask | arm64TableOrPage | arm64Valid)
}

// BlockToPagePTE implements Backend: a block descriptor and its finer-level
// page/table descriptor share every bit except the descriptor-type bit.
func (Arm64Backend) BlockToPagePTE(pte PTE) PTE {
	return PTE(uint64(pte) | arm64TableOrPage)
}

// PTEToTable implements Backend.
func (Arm64Backend) PTEToTable(pte PTE) PA {
	return PA(uint64(pte) & arm64PAMask)
}

// PTEAdvance implements Backend. Like amd64, the physical address occupies
// its natural byte-address bit positions, so advancing it is a plain add.
func (Arm64Backend) PTEAdvance(pte PTE, byteOffset uint64) PTE {
	return PTE(uint64(pte) + byteOffset)
}

// InvalidateStage1Range implements Backend (TLBI VAE1IS in a real walker).
func (Arm64Backend) InvalidateStage1Range(begin, end VA) {
	slog.Debug("pgtable: arm64 invalidate stage1 range", "begin", begin, "end", end)
}

// InvalidateStage2Range implements Backend (TLBI IPAS2E1IS in a real walker).
func (Arm64Backend) InvalidateStage2Range(begin, end VA) {
	slog.Debug("pgtable: arm64 invalidate stage2 range", "begin", begin, "end", end)
}

var _ Backend = Arm64Backend{}
