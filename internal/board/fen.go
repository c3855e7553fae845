package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToFEN returns the FEN representation of the board.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// Piece placement, rank 8 first
	empty := 0
	for sq := A8; sq <= H1; sq++ {
		piece := b.PieceAt(sq)
		if piece == NoPiece {
			empty++
		} else {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if sq.File() == 7 {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if sq != H1 {
				sb.WriteByte('/')
			}
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if b.activeWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())

	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))

	return sb.String()
}

// ParseFEN parses a FEN string and returns a Board.
// The half-move clock and full-move number are optional.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("need 4 to 6 fields, got %d: %w", len(parts), ErrInvalidFEN)
	}

	b := NewEmptyBoard()

	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.activeWhite = true
	case "b":
		b.activeWhite = false
	default:
		return nil, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	if err := parseCastlingRights(b, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("en passant square %q: %w", parts[3], ErrInvalidFEN)
		}
		b.enPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := parseCounter(parts[4])
		if err != nil {
			return nil, fmt.Errorf("half-move clock %q: %w", parts[4], ErrInvalidFEN)
		}
		b.halfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := parseCounter(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("full-move number %q: %w", parts[5], ErrInvalidFEN)
		}
		b.fullMoveNumber = fmn
	}

	return b, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("need 8 ranks, got %d: %w", len(ranks), ErrInvalidFEN)
	}

	for row, rankStr := range ranks {
		file := 0
		lastDigit := false
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d: %w", 8-row, ErrInvalidFEN)
			}

			if c >= '1' && c <= '8' {
				if lastDigit {
					return fmt.Errorf("adjacent digits in rank %d: %w", 8-row, ErrInvalidFEN)
				}
				lastDigit = true
				file += int(c - '0')
				continue
			}
			lastDigit = false

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("piece character %q: %w", c, ErrInvalidFEN)
			}
			b.PlacePiece(piece, Square(row*8+file))
			file++
		}

		if file != 8 {
			return fmt.Errorf("rank %d covers %d squares: %w", 8-row, file, ErrInvalidFEN)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(b *Board, castling string) error {
	if castling == "-" {
		b.castling = NoCastling
		return nil
	}

	for _, c := range castling {
		before := b.castling
		switch c {
		case 'K':
			b.castling |= WhiteKingSideCastle
		case 'Q':
			b.castling |= WhiteQueenSideCastle
		case 'k':
			b.castling |= BlackKingSideCastle
		case 'q':
			b.castling |= BlackQueenSideCastle
		default:
			return fmt.Errorf("castling character %q: %w", c, ErrInvalidFEN)
		}
		if b.castling == before {
			return fmt.Errorf("castling %q repeats %q: %w", castling, c, ErrInvalidFEN)
		}
	}

	return nil
}

// parseCounter reads a FEN clock field: plain decimal digits only.
func parseCounter(field string) (int, error) {
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, fmt.Errorf("counter %q: %w", field, ErrInvalidFEN)
		}
	}
	return strconv.Atoi(field)
}

// DisplayGrid renders the board as eight lines of unicode glyphs, '.' for an
// empty square.
func (b *Board) DisplayGrid() string {
	var sb strings.Builder
	for sq := A8; sq <= H1; sq++ {
		piece := b.PieceAt(sq)
		if piece == NoPiece {
			sb.WriteByte('.')
		} else {
			sb.WriteRune(piece.Glyph())
		}
		if sq.File() == 7 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using the display grid.
func (b *Board) String() string {
	return b.DisplayGrid()
}
