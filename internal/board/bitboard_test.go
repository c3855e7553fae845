package board

import "testing"

func TestSquareBB(t *testing.T) {
	for sq := A8; sq <= H1; sq++ {
		bb := SquareBB(sq)
		if bb.PopCount() != 1 || bb.LSB() != sq {
			t.Fatalf("SquareBB(%s) = %#x", sq, uint64(bb))
		}
	}
	if SquareBB(A8) != 1 || SquareBB(H1) != 1<<63 {
		t.Error("corner squares map to the wrong bits")
	}
}

func TestRankAndFileMasks(t *testing.T) {
	wantRanks := [8]Bitboard{
		0x00000000000000FF,
		0x000000000000FF00,
		0x0000000000FF0000,
		0x00000000FF000000,
		0x000000FF00000000,
		0x0000FF0000000000,
		0x00FF000000000000,
		0xFF00000000000000,
	}
	if RankMask != wantRanks {
		t.Errorf("RankMask = %x, want %x", RankMask, wantRanks)
	}

	var union Bitboard
	for f, mask := range FileMask {
		if mask.PopCount() != 8 {
			t.Errorf("file %c has %d squares", 'a'+f, mask.PopCount())
		}
		for _, sq := range mask.Squares() {
			if sq.File() != f {
				t.Errorf("file %c contains %s", 'a'+f, sq)
			}
		}
		union |= mask
	}
	if union != Universe {
		t.Error("file masks do not cover the board")
	}
	if FileMask[0] != 0x0101010101010101 || FileMask[7] != 0x8080808080808080 {
		t.Errorf("edge files wrong: %#x %#x", uint64(FileMask[0]), uint64(FileMask[7]))
	}
}

func TestBitboardOps(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(E4).Set(A8)
	if !bb.IsSet(E4) || !bb.IsSet(A8) || bb.IsSet(E5) {
		t.Errorf("unexpected bits: %v", bb.Squares())
	}
	bb = bb.Clear(A8)
	if bb.IsSet(A8) || bb.PopCount() != 1 {
		t.Errorf("Clear failed: %v", bb.Squares())
	}
	if got := bb.PopLSB(); got != E4 || !bb.Empty() {
		t.Errorf("PopLSB = %s, remaining %v", got, bb.Squares())
	}
	if Empty.LSB() != NoSquare {
		t.Error("LSB of empty bitboard should be NoSquare")
	}
	if RankMask[0].Mirror() != RankMask[7] {
		t.Error("Mirror should swap rank 8 and rank 1")
	}
}
