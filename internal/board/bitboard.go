package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A8, Bit 7 = H8, Bit 56 = A1, Bit 63 = H1.
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// RankMask holds one mask per row, top to bottom (index 0 = rank 8).
var RankMask = buildMasks(Square.Row)

// FileMask holds one mask per file, a to h.
var FileMask = buildMasks(Square.File)

// buildMasks unions SquareBB over every square sharing the same key.
func buildMasks(key func(Square) int) [8]Bitboard {
	var masks [8]Bitboard
	for sq := A8; sq <= H1; sq++ {
		masks[key(sq)] |= SquareBB(sq)
	}
	return masks
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Mirror flips the bitboard vertically (rank 8 <-> rank 1).
func (b Bitboard) Mirror() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := A8; sq <= H1; sq++ {
		if sq.File() == 0 {
			sb.WriteByte(byte('1' + sq.Rank()))
			sb.WriteByte(' ')
		}
		if b.IsSet(sq) {
			sb.WriteString("1 ")
		} else {
			sb.WriteString(". ")
		}
		if sq.File() == 7 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
