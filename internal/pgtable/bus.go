package pgtable

import (
	"encoding/binary"
	"fmt"
)

// Bus mediates all memory access the engine performs. It stands in for the
// raw pointer dereferences (`*pte`) the original C implementation uses,
// letting a Table operate over guest memory, host-anonymous memory, or a
// test arena without caring which. Modeled on the Read64/Write64 pair in
// internal/hv/riscv/rv64/bus.go.
type Bus interface {
	ReadPTE(pa PA) (PTE, error)
	WritePTE(pa PA, v PTE) error
}

// SliceBus is a Bus backed by a single contiguous []byte window, addressed
// starting at Base. It is the adapter used both by tests and by the amd64
// KVM/WHP backends, which already hold guest memory as a flat []byte.
type SliceBus struct {
	Base VA
	Mem  []byte
}

// NewSliceBus wraps mem as a Bus whose address 0 is mem[base:].
func NewSliceBus(mem []byte, base uint64) *SliceBus {
	return &SliceBus{Base: VA(base), Mem: mem}
}

func (b *SliceBus) offset(pa PA) (int, error) {
	addr := pa.Addr()
	base := b.Base.Addr()
	if addr < base {
		return 0, fmt.Errorf("pgtable: address 0x%x below bus base 0x%x", addr, base)
	}
	off := addr - base
	if off+PTESize > uint64(len(b.Mem)) {
		return 0, fmt.Errorf("pgtable: address 0x%x out of bounds (window size 0x%x)", addr, len(b.Mem))
	}
	return int(off), nil
}

// ReadPTE implements Bus.
func (b *SliceBus) ReadPTE(pa PA) (PTE, error) {
	off, err := b.offset(pa)
	if err != nil {
		return 0, err
	}
	return PTE(binary.LittleEndian.Uint64(b.Mem[off:])), nil
}

// WritePTE implements Bus.
func (b *SliceBus) WritePTE(pa PA, v PTE) error {
	off, err := b.offset(pa)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.Mem[off:], uint64(v))
	return nil
}

var _ Bus = (*SliceBus)(nil)
