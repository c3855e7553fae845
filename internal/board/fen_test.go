package board

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

func TestToFENStart(t *testing.T) {
	if got := NewBoard().ToFEN(); got != StartFEN {
		t.Errorf("ToFEN() = %q, want %q", got, StartFEN)
	}
}

func TestToFEN(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Board
		want  string
	}{
		{
			name:  "Empty",
			setup: NewEmptyBoard,
			want:  "8/8/8/8/8/8/8/8 b - - 0 1",
		},
		{
			name: "AfterMove",
			setup: func() *Board {
				b := NewBoard()
				b.Move(E2, E4)
				return b
			},
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name: "Placements",
			setup: func() *Board {
				b, _ := NewBoardWithPlacements([]Placement{
					{Piece: BlackKing, Square: H8},
					{Piece: WhiteKing, Square: A1},
					{Piece: WhiteRook, Square: A8},
				})
				return b
			},
			want: "R6k/8/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name: "EnPassantAlgebraic",
			setup: func() *Board {
				b := NewBoard()
				b.Move(E2, E4)
				b.enPassant = E3
				return b
			},
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1",
		},
		{
			name: "PartialCastling",
			setup: func() *Board {
				b := NewBoard()
				b.castling = WhiteQueenSideCastle | BlackKingSideCastle
				return b
			},
			want: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Qk - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setup().ToFEN(); got != tt.want {
				t.Errorf("ToFEN() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every rank of the placement field must account for exactly eight squares.
func TestToFENRankWidths(t *testing.T) {
	b := NewBoard()
	moves := [][2]Square{{E2, E4}, {G8, F6}, {D1, H5}, {A7, A3}, {H1, D4}, {B8, C4}}
	for _, m := range moves {
		b.Move(m[0], m[1])

		placement := strings.Fields(b.ToFEN())[0]
		ranks := strings.Split(placement, "/")
		if len(ranks) != 8 {
			t.Fatalf("%q has %d ranks", placement, len(ranks))
		}
		for i, rank := range ranks {
			width := 0
			for _, c := range rank {
				if n, err := strconv.Atoi(string(c)); err == nil {
					width += n
				} else {
					width++
				}
			}
			if width != 8 {
				t.Errorf("rank %d of %q covers %d squares", 8-i, placement, width)
			}
		}
	}
}

func TestParseFEN(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 12 40",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, fen)
		}
	}

	t.Run("OptionalClocks", func(t *testing.T) {
		b, err := ParseFEN("8/8/8/8/8/8/8/K6k w - -")
		if err != nil {
			t.Fatalf("ParseFEN failed: %v", err)
		}
		if b.HalfMoveClock() != 0 || b.FullMoveNumber() != 1 {
			t.Errorf("expected default clocks, got %d/%d", b.HalfMoveClock(), b.FullMoveNumber())
		}
	})
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKB11 w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kqq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - +3 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 +1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0x1 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): expected ErrInvalidFEN, got %v", fen, err)
		}
	}
}

// FEN strings we produce must be readable by other chess libraries.
func TestToFENAcceptedByNotnil(t *testing.T) {
	b := NewBoard()
	b.Move(E2, E4)
	b.Move(B8, C6)
	b.Move(F1, C4)

	fen := b.ToFEN()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil/chess rejected %q: %v", fen, err)
	}
	game := chess.NewGame(opt)
	if got := game.Position().String(); got != fen {
		t.Errorf("notnil/chess re-encoded %q as %q", fen, got)
	}

	if got := game.Position().Board().Piece(chess.C4); got != chess.WhiteBishop {
		t.Errorf("notnil/chess sees %v on c4, want white bishop", got)
	}
}

func TestOccupancyMatchesDragontooth(t *testing.T) {
	b := NewBoard()
	b.Move(D2, D4)
	b.Move(G8, F6)

	dt := dragontoothmg.ParseFen(b.ToFEN())

	var white, black Bitboard
	for p := WhitePawn; p < NoPiece; p++ {
		if p.Color() == White {
			white |= b.Bitboard(p)
		} else {
			black |= b.Bitboard(p)
		}
	}

	if got := white.Mirror(); uint64(got) != dt.White.All {
		t.Errorf("white occupancy %#x, dragontooth %#x", uint64(got), dt.White.All)
	}
	if got := black.Mirror(); uint64(got) != dt.Black.All {
		t.Errorf("black occupancy %#x, dragontooth %#x", uint64(got), dt.Black.All)
	}
	if got := b.Bitboard(WhiteQueen).Mirror(); uint64(got) != dt.White.Queens {
		t.Errorf("white queen %#x, dragontooth %#x", uint64(got), dt.White.Queens)
	}
}
