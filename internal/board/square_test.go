package board

import "testing"

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		sq         Square
		index      int
		file, rank int
		name       string
	}{
		{A8, 0, 0, 7, "a8"},
		{H8, 7, 7, 7, "h8"},
		{A7, 8, 0, 6, "a7"},
		{E4, 36, 4, 3, "e4"},
		{A1, 56, 0, 0, "a1"},
		{H1, 63, 7, 0, "h1"},
	}
	for _, tt := range tests {
		if int(tt.sq) != tt.index {
			t.Errorf("%s index = %d, want %d", tt.name, tt.sq, tt.index)
		}
		if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
			t.Errorf("%s file/rank = %d/%d, want %d/%d", tt.name, tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
		}
		if tt.sq.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.sq.String(), tt.name)
		}
		if NewSquare(tt.file, tt.rank) != tt.sq {
			t.Errorf("NewSquare(%d, %d) = %d, want %d", tt.file, tt.rank, NewSquare(tt.file, tt.rank), tt.sq)
		}
		parsed, err := ParseSquare(tt.name)
		if err != nil || parsed != tt.sq {
			t.Errorf("ParseSquare(%q) = %d, %v", tt.name, parsed, err)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44", "E4"} {
		if sq, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) = %s, expected error", s, sq)
		}
	}
}

func TestNoSquare(t *testing.T) {
	if NoSquare.IsValid() {
		t.Error("NoSquare should not be valid")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q, want \"-\"", NoSquare.String())
	}
	if A8.Mirror() != A1 || H1.Mirror() != H8 {
		t.Error("Mirror should flip ranks")
	}
}
