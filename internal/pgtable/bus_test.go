package pgtable

import "testing"

func TestSliceBusReadWrite(t *testing.T) {
	mem := make([]byte, 4*PageSize)
	bus := NewSliceBus(mem, 0)

	if err := bus.WritePTE(PAFromAddr(0x1000), PTE(0xDEADBEEF)); err != nil {
		t.Fatalf("WritePTE() error = %v", err)
	}

	got, err := bus.ReadPTE(PAFromAddr(0x1000))
	if err != nil {
		t.Fatalf("ReadPTE() error = %v", err)
	}
	if got != PTE(0xDEADBEEF) {
		t.Errorf("ReadPTE() = 0x%x, want 0x%x", uint64(got), uint64(0xDEADBEEF))
	}
}

func TestSliceBusOutOfBounds(t *testing.T) {
	mem := make([]byte, PageSize)
	bus := NewSliceBus(mem, 0)

	if _, err := bus.ReadPTE(PAFromAddr(uint64(len(mem)))); err == nil {
		t.Error("ReadPTE() at end of window should error")
	}
	if err := bus.WritePTE(PAFromAddr(uint64(len(mem))), 0); err == nil {
		t.Error("WritePTE() at end of window should error")
	}
}

func TestSliceBusBelowBase(t *testing.T) {
	mem := make([]byte, PageSize)
	bus := NewSliceBus(mem, 0x1000)

	if _, err := bus.ReadPTE(PAFromAddr(0)); err == nil {
		t.Error("ReadPTE() below base should error")
	}
}

func TestSliceBusNonZeroBase(t *testing.T) {
	mem := make([]byte, PageSize)
	bus := NewSliceBus(mem, 0x4000_0000)

	if err := bus.WritePTE(PAFromAddr(0x4000_0000), PTE(7)); err != nil {
		t.Fatalf("WritePTE() error = %v", err)
	}
	got, err := bus.ReadPTE(PAFromAddr(0x4000_0000))
	if err != nil {
		t.Fatalf("ReadPTE() error = %v", err)
	}
	if got != 7 {
		t.Errorf("ReadPTE() = %d, want 7", got)
	}
}
