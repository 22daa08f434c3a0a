package grid

import "testing"

const valid81 = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseRoundTrip(t *testing.T) {
	g, err := Parse(valid81)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := Render(g); got != valid81 {
		t.Errorf("Render(Parse(s)) = %q, want %q", got, valid81)
	}
}

func TestParseLengthMismatch(t *testing.T) {
	_, err := Parse("0000000000")
	var lm *LengthMismatchError
	if err == nil {
		t.Fatal("Parse() error = nil, want LengthMismatchError")
	}
	if e, ok := err.(*LengthMismatchError); !ok {
		t.Fatalf("Parse() error type = %T, want *LengthMismatchError", err)
	} else {
		lm = e
	}
	if lm.Got != 10 {
		t.Errorf("LengthMismatchError.Got = %d, want 10", lm.Got)
	}
	if lm.Kind() != "LengthMismatch" {
		t.Errorf("Kind() = %q, want LengthMismatch", lm.Kind())
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	s := "A" + zerosN(80)
	_, err := Parse(s)
	ic, ok := err.(*InvalidCharacterError)
	if !ok {
		t.Fatalf("Parse() error type = %T, want *InvalidCharacterError", err)
	}
	if ic.Index != 0 || ic.Char != 'A' {
		t.Errorf("InvalidCharacterError = %+v, want {Index:0 Char:'A'}", ic)
	}
}

func TestRowColBox(t *testing.T) {
	cases := []struct {
		i        int
		row, col int
	}{
		{0, 0, 0},
		{8, 0, 8},
		{9, 1, 0},
		{80, 8, 8},
	}
	for _, c := range cases {
		if got := Row(c.i); got != c.row {
			t.Errorf("Row(%d) = %d, want %d", c.i, got, c.row)
		}
		if got := Col(c.i); got != c.col {
			t.Errorf("Col(%d) = %d, want %d", c.i, got, c.col)
		}
		if got := Index(c.row, c.col); got != c.i {
			t.Errorf("Index(%d, %d) = %d, want %d", c.row, c.col, got, c.i)
		}
	}
}

func TestBox(t *testing.T) {
	if Box(0) != 0 {
		t.Errorf("Box(0) = %d, want 0", Box(0))
	}
	if Box(Index(0, 8)) != 2 {
		t.Errorf("Box(row0,col8) = %d, want 2", Box(Index(0, 8)))
	}
	if Box(Index(8, 8)) != 8 {
		t.Errorf("Box(row8,col8) = %d, want 8", Box(Index(8, 8)))
	}
}

func TestIsSolved(t *testing.T) {
	const solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	g, err := Parse(solution)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !IsSolved(g) {
		t.Error("IsSolved() = false for a complete, valid solution")
	}

	empty, _ := Parse(zerosN(CellCount))
	if IsSolved(empty) {
		t.Error("IsSolved() = true for the empty grid")
	}
}

func zerosN(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
