package pgtable

import "testing"

func TestArm64BackendRoundTrip(t *testing.T) {
	b := NewArm64Backend()
	attrs := b.ModeToAttrs(ModeR | ModeW)
	pa := PAFromAddr(0x4000_0000)

	block := b.PAToBlockPTE(pa, attrs)
	if !b.PTEIsBlock(block) {
		t.Fatal("block PTE should classify as a block")
	}

	page := b.BlockToPagePTE(block)
	if !b.PTEIsTable(page) {
		t.Fatal("BlockToPagePTE result should classify as table-or-page at the finer level")
	}
}

func TestArm64ReadOnlyAndUXN(t *testing.T) {
	b := NewArm64Backend()

	rw := b.ModeToAttrs(ModeR | ModeW | ModeX)
	if rw&arm64AP1ReadOnly != 0 {
		t.Error("AP1ReadOnly should be clear when ModeW is set")
	}
	if rw&arm64UXN != 0 || rw&arm64PXN != 0 {
		t.Error("UXN/PXN should be clear when ModeX is set")
	}

	ro := b.ModeToAttrs(ModeR)
	if ro&arm64AP1ReadOnly == 0 {
		t.Error("AP1ReadOnly should be set when ModeW is absent")
	}
	if ro&arm64UXN == 0 || ro&arm64PXN == 0 {
		t.Error("UXN/PXN should be set when ModeX is absent")
	}
}

func TestArm64PTEAdvance(t *testing.T) {
	b := NewArm64Backend()
	attrs := b.ModeToAttrs(ModeR)
	pte := b.PAToPagePTE(PAFromAddr(0x1000), attrs)

	advanced := b.PTEAdvance(pte, 2*PageSize)
	if got, want := b.PTEToTable(advanced), PAFromAddr(0x3000); got != want {
		t.Errorf("PTEAdvance() address = %s, want %s", got, want)
	}
}
