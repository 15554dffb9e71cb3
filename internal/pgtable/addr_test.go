package pgtable

import "testing"

func TestEntrySize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{0, PageSize},
		{1, PageSize * EntriesPerTable},
		{2, PageSize * EntriesPerTable * EntriesPerTable},
	}
	for _, tt := range tests {
		if got := entrySize(tt.level); got != tt.want {
			t.Errorf("entrySize(%d) = 0x%x, want 0x%x", tt.level, got, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	va := VAFromAddr(0x1234_5678_9000)
	for level := 0; level < 4; level++ {
		idx := index(va, level)
		if idx < 0 || idx >= EntriesPerTable {
			t.Errorf("index(%s, %d) = %d, out of range", va, level, idx)
		}
	}

	// Level 0 index is the 9 bits directly above the page offset.
	if got, want := index(VAFromAddr(0x1000), 0), 1; got != want {
		t.Errorf("index(0x1000, 0) = %d, want %d", got, want)
	}
	if got, want := index(VAFromAddr(0x3000), 0), 3; got != want {
		t.Errorf("index(0x3000, 0) = %d, want %d", got, want)
	}
}

func TestLevelEnd(t *testing.T) {
	va := VAFromAddr(0)
	end := levelEnd(va, 0)
	if want := VA(entrySize(0) * EntriesPerTable); end != want {
		t.Errorf("levelEnd(0, 0) = %s, want %s", end, want)
	}
}

func TestAlignedToEntry(t *testing.T) {
	if !alignedToEntry(0, 1) {
		t.Error("0 should be aligned to every level")
	}
	if !alignedToEntry(entrySize(1), 1) {
		t.Errorf("entrySize(1) should be aligned to level 1")
	}
	if alignedToEntry(entrySize(1)+PageSize, 1) {
		t.Errorf("entrySize(1)+PageSize should not be aligned to level 1")
	}
}

func TestVAPAClear(t *testing.T) {
	va := VAFromAddr(0x1234)
	if got, want := va.Clear(), VAFromAddr(0x1000); got != want {
		t.Errorf("VA.Clear() = %s, want %s", got, want)
	}

	pa := PAFromAddr(0xABCDEF)
	if got, want := pa.Clear(), PAFromAddr(0xABC000); got != want {
		t.Errorf("PA.Clear() = %s, want %s", got, want)
	}
}

func TestVAAdd(t *testing.T) {
	va := VAFromAddr(0x1000)
	if got, want := va.Add(0x500), VAFromAddr(0x1500); got != want {
		t.Errorf("VA.Add() = %s, want %s", got, want)
	}
}
