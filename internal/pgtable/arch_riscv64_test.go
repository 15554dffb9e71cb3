package pgtable

import "testing"

func TestRiscv64BackendLevels(t *testing.T) {
	sv39 := NewRiscv64Backend(3)
	if got := sv39.MaxLevel(0); got != 2 {
		t.Errorf("Sv39 MaxLevel() = %d, want 2", got)
	}

	sv48 := NewRiscv64Backend(4)
	if got := sv48.MaxLevel(0); got != 3 {
		t.Errorf("Sv48 MaxLevel() = %d, want 3", got)
	}
}

func TestRiscv64BackendClassification(t *testing.T) {
	b := NewRiscv64Backend(3)
	attrs := b.ModeToAttrs(ModeR | ModeW | ModeX)
	pa := PAFromAddr(0x8000_0000)

	leaf := b.PAToPagePTE(pa, attrs)
	if !b.PTEIsBlock(leaf) {
		t.Fatal("leaf PTE with R/X set should classify as a block/leaf")
	}
	if b.PTEIsTable(leaf) {
		t.Fatal("leaf PTE should not classify as a table")
	}

	table := b.PAToTablePTE(pa)
	if !b.PTEIsTable(table) {
		t.Fatal("non-leaf PTE should classify as a table")
	}
	if b.PTEIsBlock(table) {
		t.Fatal("non-leaf PTE should not classify as a block")
	}
}

func TestRiscv64PTEAdvance(t *testing.T) {
	b := NewRiscv64Backend(3)
	attrs := b.ModeToAttrs(ModeR)
	pte := b.PAToPagePTE(PAFromAddr(0x8000_0000), attrs)

	advanced := b.PTEAdvance(pte, 4*PageSize)
	want := PAFromAddr(0x8000_0000 + 4*PageSize)
	if got := b.PTEToTable(advanced); got != want {
		t.Errorf("PTEAdvance() address = %s, want %s", got, want)
	}
}
