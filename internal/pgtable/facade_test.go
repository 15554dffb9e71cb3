package pgtable

import "testing"

func testLayout() ImageLayout {
	return ImageLayout{
		TextBegin:   VAFromAddr(0x1000_0000),
		TextEnd:     VAFromAddr(0x1000_4000),
		RodataBegin: VAFromAddr(0x1000_4000),
		RodataEnd:   VAFromAddr(0x1000_6000),
		DataBegin:   VAFromAddr(0x1000_6000),
		DataEnd:     VAFromAddr(0x1000_9000),
	}
}

// S6: unmap_hypervisor clears every page of the text/rodata/data segments
// while leaving an unrelated, previously-mapped page untouched.
func TestUnmapHypervisorClearsImageSegments(t *testing.T) {
	alloc, err := NewHostBumpAllocator(128)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	hv := NewHypervisorTable(alloc.Bus(), NewAmd64Backend(), alloc)
	layout := testLayout()

	if err := hv.Init(0, layout, VAFromAddr(0x0900_0000), ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	other := VAFromAddr(0x2000_0000)
	if ok, err := hv.IdentityMap(other, other.Add(PageSize), ModeR|ModeW|ModeNoSync); err != nil || !ok {
		t.Fatalf("IdentityMap(other) = %v, %v", ok, err)
	}

	if err := hv.UnmapHypervisor(layout, ModeNoSync); err != nil {
		t.Fatalf("UnmapHypervisor() error = %v", err)
	}

	for _, r := range [][2]VA{
		{layout.TextBegin, layout.TextEnd},
		{layout.RodataBegin, layout.RodataEnd},
		{layout.DataBegin, layout.DataEnd},
	} {
		for va := r[0]; va.Addr() < r[1].Addr(); va = va.Add(PageSize) {
			mapped, err := hv.IsMapped(va, 0)
			if err != nil {
				t.Fatalf("IsMapped(%s) error = %v", va, err)
			}
			if mapped {
				t.Errorf("IsMapped(%s) = true after UnmapHypervisor, want false", va)
			}
		}
	}

	mapped, err := hv.IsMapped(other, 0)
	if err != nil {
		t.Fatalf("IsMapped(other) error = %v", err)
	}
	if !mapped {
		t.Error("IsMapped(other) = false after UnmapHypervisor, want true (segment was never part of the image)")
	}
}

func TestHypervisorTableInitMapsUartPage(t *testing.T) {
	alloc, err := NewHostBumpAllocator(64)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	hv := NewHypervisorTable(alloc.Bus(), NewAmd64Backend(), alloc)
	layout := testLayout()
	uart := VAFromAddr(0x0900_0000)

	if err := hv.Init(0, layout, uart, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	mapped, err := hv.IsMapped(uart, 0)
	if err != nil {
		t.Fatalf("IsMapped(uart) error = %v", err)
	}
	if !mapped {
		t.Error("IsMapped(uart) = false, want true")
	}
}

func TestHypervisorTableInitSkipsUartWhenZero(t *testing.T) {
	alloc, err := NewHostBumpAllocator(64)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	hv := NewHypervisorTable(alloc.Bus(), NewAmd64Backend(), alloc)
	if err := hv.Init(0, testLayout(), 0, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func TestHypervisorTableRoot(t *testing.T) {
	alloc, err := NewHostBumpAllocator(64)
	if err != nil {
		t.Fatalf("NewHostBumpAllocator() error = %v", err)
	}
	defer alloc.Close()

	hv := NewHypervisorTable(alloc.Bus(), NewAmd64Backend(), alloc)
	if err := hv.Init(0, testLayout(), 0, ModeNoSync); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if hv.Root().Addr()%PageSize != 0 {
		t.Errorf("Root() = %s, want page-aligned", hv.Root())
	}
}
