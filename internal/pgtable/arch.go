package pgtable

// Mode is a bitmask of mapping attributes and engine-steering flags. The
// first four flags are forwarded to the Backend's attribute encoder; the
// remaining three steer engine behavior directly and are never seen by a
// Backend.
type Mode uint32

const (
	// ModeR requests read access.
	ModeR Mode = 1 << iota
	// ModeW requests write access.
	ModeW
	// ModeX requests execute access.
	ModeX
	// ModeD marks the range as device memory (uncached).
	ModeD

	// ModeStage1 selects the hypervisor's own address space rather than a
	// per-VM stage-2 (guest-physical to host-physical) table. It controls
	// which of InvalidateStage1Range/InvalidateStage2Range is called.
	ModeStage1
	// ModeNoSync selects the non-synchronizing allocator and publication
	// path. Only valid while no other CPU can observe the table being
	// built, i.e. earliest boot with the MMU disabled.
	ModeNoSync
	// ModeNoInvalidate suppresses TLB maintenance after a commit, for
	// callers that batch invalidation themselves or operate on a table
	// that is not yet live.
	ModeNoInvalidate
)

// attrMask is the subset of Mode forwarded to Backend.ModeToAttrs.
const attrMask = ModeR | ModeW | ModeX | ModeD

// Backend supplies every architecture-specific operation the engine needs.
// Implementations must be pure and stateless: the engine is the only holder
// of mutable page-table state.
type Backend interface {
	// MaxLevel returns the top level permitted for the given mode (e.g. 3
	// for 4-level amd64/arm64 paging, 2 for riscv64 Sv39).
	MaxLevel(mode Mode) int
	// IsBlockAllowed reports whether a leaf block mapping is permitted at
	// the given non-zero level.
	IsBlockAllowed(level int) bool

	// AbsentPTE returns the encoding of an unmapped slot.
	AbsentPTE() PTE
	// ModeToAttrs translates the R/W/X/D bits of mode into backend-specific
	// attribute bits suitable for PAToPagePTE/PAToBlockPTE.
	ModeToAttrs(mode Mode) uint64

	// PTEIsPresent reports whether pte is anything other than absent.
	PTEIsPresent(pte PTE) bool
	// PTEIsBlock reports whether pte is a leaf block mapping.
	PTEIsBlock(pte PTE) bool
	// PTEIsTable reports whether pte points at a sub-table.
	PTEIsTable(pte PTE) bool

	// PAToPagePTE encodes a level-0 leaf mapping pa with attrs.
	PAToPagePTE(pa PA, attrs uint64) PTE
	// PAToBlockPTE encodes a non-zero-level leaf mapping pa with attrs.
	PAToBlockPTE(pa PA, attrs uint64) PTE
	// PAToTablePTE encodes a non-leaf entry pointing at the sub-table at pa.
	PAToTablePTE(pa PA) PTE

	// BlockToPagePTE re-encodes a block PTE as an equivalent level-0 page
	// PTE, used when a block is split one level finer.
	BlockToPagePTE(pte PTE) PTE
	// PTEToTable returns the physical address of the sub-table pte points
	// at. Only called when PTEIsTable(pte) is true.
	PTEToTable(pte PTE) PA
	// PTEAdvance returns pte with its encoded physical address advanced by
	// byteOffset, attributes unchanged. Used by populateTable to fill a new
	// sub-table with a run of consecutive block/page mappings without
	// re-deriving attrs at every slot. byteOffset is always a multiple of
	// the finer level's entry size.
	PTEAdvance(pte PTE, byteOffset uint64) PTE

	// InvalidateStage1Range discards cached translations for [begin, end)
	// in the hypervisor's own address space.
	InvalidateStage1Range(begin, end VA)
	// InvalidateStage2Range discards cached translations for [begin, end)
	// in a guest-physical address space.
	InvalidateStage2Range(begin, end VA)
}
