package board

import "testing"

func TestPieceEncoding(t *testing.T) {
	want := []struct {
		piece Piece
		char  string
		glyph string
	}{
		{WhitePawn, "P", "♙"},
		{WhiteKnight, "N", "♘"},
		{WhiteBishop, "B", "♗"},
		{WhiteRook, "R", "♖"},
		{WhiteQueen, "Q", "♕"},
		{WhiteKing, "K", "♔"},
		{BlackPawn, "p", "♟"},
		{BlackKnight, "n", "♞"},
		{BlackBishop, "b", "♝"},
		{BlackRook, "r", "♜"},
		{BlackQueen, "q", "♛"},
		{BlackKing, "k", "♚"},
	}
	for i, tt := range want {
		if int(tt.piece) != i {
			t.Errorf("%s has index %d, want %d", tt.piece.Name(), tt.piece, i)
		}
		if got := AlgebraicChar(tt.piece); got != tt.char {
			t.Errorf("AlgebraicChar(%s) = %q, want %q", tt.piece.Name(), got, tt.char)
		}
		if got := UnicodeChar(tt.piece); got != tt.glyph {
			t.Errorf("UnicodeChar(%s) = %q, want %q", tt.piece.Name(), got, tt.glyph)
		}
		if got := PieceFromChar(tt.char[0]); got != tt.piece {
			t.Errorf("PieceFromChar(%q) = %d, want %d", tt.char, got, tt.piece)
		}
	}
	if PieceFromChar('x') != NoPiece {
		t.Error("PieceFromChar should reject unknown letters")
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%s, %s) decodes as %s %s", pt, c, p.Type(), p.Color())
			}
		}
	}
	if NewPiece(NoPieceType, White) != NoPiece || NewPiece(Pawn, NoColor) != NoPiece {
		t.Error("NewPiece should reject invalid inputs")
	}
	if NoPiece.IsValid() || NoPiece.Type() != NoPieceType || NoPiece.Color() != NoColor {
		t.Error("NoPiece should decode to nothing")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other should flip the color")
	}
}
