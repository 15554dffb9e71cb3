package pgtable

import "testing"

func TestAmd64BackendRoundTrip(t *testing.T) {
	b := NewAmd64Backend()

	attrs := b.ModeToAttrs(ModeR | ModeW | ModeX)
	pa := PAFromAddr(0x1000_0000)

	pte := b.PAToPagePTE(pa, attrs)
	if !b.PTEIsPresent(pte) {
		t.Fatal("page PTE should be present")
	}
	if b.PTEIsBlock(pte) {
		t.Fatal("page PTE should not classify as a block")
	}

	block := b.PAToBlockPTE(pa, attrs)
	if !b.PTEIsBlock(block) {
		t.Fatal("block PTE should classify as a block")
	}

	page := b.BlockToPagePTE(block)
	if b.PTEIsBlock(page) {
		t.Fatal("BlockToPagePTE result should not classify as a block")
	}
}

func TestAmd64BackendNX(t *testing.T) {
	b := NewAmd64Backend()

	rw := b.ModeToAttrs(ModeR | ModeW | ModeX)
	if rw&amd64NX != 0 {
		t.Error("NX should be clear when ModeX is set")
	}

	ro := b.ModeToAttrs(ModeR)
	if ro&amd64NX == 0 {
		t.Error("NX should be set when ModeX is absent")
	}
	if ro&amd64RW != 0 {
		t.Error("RW should be clear when ModeW is absent")
	}
}

func TestAmd64BackendTableRoundTrip(t *testing.T) {
	b := NewAmd64Backend()
	sub := PAFromAddr(0x2000)

	tpte := b.PAToTablePTE(sub)
	if !b.PTEIsTable(tpte) {
		t.Fatal("table PTE should classify as a table")
	}
	if got := b.PTEToTable(tpte); got != sub {
		t.Errorf("PTEToTable() = %s, want %s", got, sub)
	}
}

func TestAmd64PTEAdvance(t *testing.T) {
	b := NewAmd64Backend()
	attrs := b.ModeToAttrs(ModeR | ModeW)
	pte := b.PAToPagePTE(PAFromAddr(0x1000), attrs)

	advanced := b.PTEAdvance(pte, PageSize)
	wantPA := PAFromAddr(0x2000)
	if got := PA(uint64(advanced) & amd64PAMask); got != wantPA {
		t.Errorf("PTEAdvance() PA = %s, want %s", got, wantPA)
	}
}

func TestAmd64MaxLevelAndBlocks(t *testing.T) {
	b := NewAmd64Backend()
	if got := b.MaxLevel(0); got != 3 {
		t.Errorf("MaxLevel() = %d, want 3", got)
	}
	if !b.IsBlockAllowed(1) || !b.IsBlockAllowed(2) {
		t.Error("levels 1 and 2 should allow blocks")
	}
	if b.IsBlockAllowed(3) {
		t.Error("level 3 (PML4) should not allow blocks")
	}
}
