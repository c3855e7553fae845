package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*6, which is also the index of the piece's
// bitboard inside a Board.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NumPieces is the number of distinct piece kinds.
const NumPieces = int(NoPiece)

const algebraicChars = "PNBRQKpnbrqk"

var unicodeGlyphs = [NumPieces]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// IsValid returns true for the twelve real piece kinds.
func (p Piece) IsValid() bool {
	return p < NoPiece
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// Char returns the algebraic letter, uppercase for white and lowercase for black.
func (p Piece) Char() byte {
	if p >= NoPiece {
		return ' '
	}
	return algebraicChars[p]
}

// Glyph returns the unicode chess symbol for the piece.
func (p Piece) Glyph() rune {
	if p >= NoPiece {
		return ' '
	}
	return unicodeGlyphs[p]
}

// String returns the FEN character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// Name returns a human readable name such as "WhiteKnight".
func (p Piece) Name() string {
	if p >= NoPiece {
		return "NoPiece"
	}
	return p.Color().String() + p.Type().String()
}

// AlgebraicChar returns the single-letter notation for a piece.
func AlgebraicChar(p Piece) string {
	return p.String()
}

// UnicodeChar returns the unicode glyph for a piece.
func UnicodeChar(p Piece) string {
	return string(p.Glyph())
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	for i := 0; i < NumPieces; i++ {
		if algebraicChars[i] == c {
			return Piece(i)
		}
	}
	return NoPiece
}
