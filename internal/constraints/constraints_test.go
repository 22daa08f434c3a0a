package constraints

import "testing"

func TestPeersCountAndSelfExclusion(t *testing.T) {
	for i := 0; i < cellCount; i++ {
		ps := Peers(i)
		seen := make(map[int]bool, len(ps))
		for _, p := range ps {
			if p == i {
				t.Fatalf("Peers(%d) contains itself", i)
			}
			if seen[p] {
				t.Fatalf("Peers(%d) contains duplicate %d", i, p)
			}
			seen[p] = true
		}
	}
}

func TestPeersAscending(t *testing.T) {
	ps := Peers(40)
	for i := 1; i < len(ps); i++ {
		if ps[i] <= ps[i-1] {
			t.Fatalf("Peers(40) not ascending at %d: %v", i, ps)
		}
	}
}

func TestPeersShareAUnit(t *testing.T) {
	// Cell 0 is in row 0, column 0, and box 0; every peer must share one.
	got := Peers(0)
	if len(got) != 20 {
		t.Fatalf("Peers(0) has %d entries, want 20", len(got))
	}
	for _, p := range got {
		inRow := p/9 == 0
		inCol := p%9 == 0
		inBox := (p/9)/3 == 0 && (p%9)/3 == 0
		if !inRow && !inCol && !inBox {
			t.Errorf("Peers(0) contains %d, which shares no unit with 0", p)
		}
	}
}

func TestUnitCellsMembership(t *testing.T) {
	row0 := UnitCells(UnitRow + 0)
	for _, c := range row0 {
		if c/9 != 0 {
			t.Errorf("UnitCells(row 0) contains %d, not in row 0", c)
		}
	}

	box4 := UnitCells(UnitBox + 4)
	for _, c := range box4 {
		if box(c) != 4 {
			t.Errorf("UnitCells(box 4) contains %d, box(c) = %d", c, box(c))
		}
	}
}

func TestUnitsOfCell(t *testing.T) {
	units := Units(40) // row 4, col 4, box 4
	want := [3]int{UnitRow + 4, UnitCol + 4, UnitBox + 4}
	if units != want {
		t.Errorf("Units(40) = %v, want %v", units, want)
	}
}
