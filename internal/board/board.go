package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument reports caller misuse such as an unknown piece or an
	// off-board square in a placement list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFEN reports a FEN string that cannot be parsed.
	ErrInvalidFEN = errors.New("invalid FEN")
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Starting bitboards, one per piece kind.
var startingPieces = [NumPieces]Bitboard{
	WhitePawn:   RankMask[6],
	WhiteKnight: SquareBB(B1) | SquareBB(G1),
	WhiteBishop: SquareBB(C1) | SquareBB(F1),
	WhiteRook:   SquareBB(A1) | SquareBB(H1),
	WhiteQueen:  SquareBB(D1),
	WhiteKing:   SquareBB(E1),
	BlackPawn:   RankMask[1],
	BlackKnight: SquareBB(B8) | SquareBB(G8),
	BlackBishop: SquareBB(C8) | SquareBB(F8),
	BlackRook:   SquareBB(A8) | SquareBB(H8),
	BlackQueen:  SquareBB(D8),
	BlackKing:   SquareBB(E8),
}

// Placement puts a piece on a square when building a board.
type Placement struct {
	Piece  Piece
	Square Square
}

// Board is a chess board made of one bitboard per piece kind plus the
// auxiliary game state carried by FEN. A Board is not safe for concurrent use.
//
// Moves relocate pieces unconditionally: there is no legality checking and no
// captures, and the auxiliary fields are never changed by a move.
type Board struct {
	pieces [NumPieces]Bitboard

	activeWhite    bool
	castling       CastlingRights
	enPassant      Square // NoSquare if none
	halfMoveClock  int
	fullMoveNumber int
}

// NewBoard creates a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard creates a board with no pieces.
// Nothing is set in the auxiliary state either, so black is the active color.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewBoardWithPlacements creates an empty board and applies each placement in
// order. Placements on an already occupied square are skipped.
func NewBoardWithPlacements(placements []Placement) (*Board, error) {
	b := NewEmptyBoard()
	for i, pl := range placements {
		if !pl.Piece.IsValid() {
			return nil, fmt.Errorf("placement %d: unknown piece %d: %w", i, pl.Piece, ErrInvalidArgument)
		}
		if !pl.Square.IsValid() {
			return nil, fmt.Errorf("placement %d: square %d out of range: %w", i, pl.Square, ErrInvalidArgument)
		}
		b.PlacePiece(pl.Piece, pl.Square)
	}
	return b, nil
}

// Reset restores the standard starting position with full castling rights.
func (b *Board) Reset() {
	b.pieces = startingPieces
	b.activeWhite = true
	b.castling = AllCastling
	b.enPassant = NoSquare
	b.halfMoveClock = 0
	b.fullMoveNumber = 1
}

// Clear removes every piece and drops all auxiliary flags.
func (b *Board) Clear() {
	*b = Board{
		enPassant:      NoSquare,
		fullMoveNumber: 1,
	}
}

// Occupied returns the union of all piece bitboards.
func (b *Board) Occupied() Bitboard {
	var occ Bitboard
	for _, bb := range b.pieces {
		occ |= bb
	}
	return occ
}

// IsEmpty returns true if no piece occupies the square.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.Occupied().IsSet(sq)
}

// Bitboard returns the occupancy bitboard of a single piece kind.
func (b *Board) Bitboard(p Piece) Bitboard {
	if !p.IsValid() {
		return Empty
	}
	return b.pieces[p]
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
// Kinds are scanned white pawn first, so the lowest kind wins should two
// bitboards ever claim the same square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	for p := WhitePawn; p < NoPiece; p++ {
		if b.pieces[p].IsSet(sq) {
			return p
		}
	}
	return NoPiece
}

// PlacePiece puts a piece on an empty square. It reports whether the board
// changed; an occupied square is silently left alone.
func (b *Board) PlacePiece(p Piece, sq Square) bool {
	if !p.IsValid() || !sq.IsValid() || !b.IsEmpty(sq) {
		return false
	}
	b.pieces[p] = b.pieces[p].Set(sq)
	return true
}

// Move relocates whatever stands on from to the empty square to. Nothing
// happens when from is empty or to is occupied. It reports whether the board
// changed.
func (b *Board) Move(from, to Square) bool {
	piece := b.PieceAt(from)
	if piece == NoPiece {
		return false
	}
	if !b.PlacePiece(piece, to) {
		return false
	}
	b.pieces[piece] = b.pieces[piece].Clear(from)
	return true
}

// IsActiveWhite returns true if white is the active color.
func (b *Board) IsActiveWhite() bool {
	return b.activeWhite
}

// SideToMove returns the active color.
func (b *Board) SideToMove() Color {
	if b.activeWhite {
		return White
	}
	return Black
}

// CastlingRights returns the castling flags.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassant returns the en passant target square, NoSquare if none.
func (b *Board) EnPassant() Square {
	return b.enPassant
}

// HalfMoveClock returns the half-move clock.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the full-move number.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// State is a value snapshot of a Board.
type State struct {
	Pieces         [NumPieces]Bitboard `json:"pieces"`
	ActiveWhite    bool                `json:"active_white"`
	Castling       CastlingRights      `json:"castling"`
	EnPassant      Square              `json:"en_passant"`
	HalfMoveClock  int                 `json:"halfmove_clock"`
	FullMoveNumber int                 `json:"fullmove_number"`
}

// State returns a copy of the board's state. Mutating the result does not
// affect the board.
func (b *Board) State() State {
	return State{
		Pieces:         b.pieces,
		ActiveWhite:    b.activeWhite,
		Castling:       b.castling,
		EnPassant:      b.enPassant,
		HalfMoveClock:  b.halfMoveClock,
		FullMoveNumber: b.fullMoveNumber,
	}
}

// FromState rebuilds a board from a snapshot.
func FromState(s State) (*Board, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		pieces:         s.Pieces,
		activeWhite:    s.ActiveWhite,
		castling:       s.Castling,
		enPassant:      s.EnPassant,
		halfMoveClock:  s.HalfMoveClock,
		fullMoveNumber: s.FullMoveNumber,
	}, nil
}

// Validate checks the single-occupancy invariant and the auxiliary fields.
func (s State) Validate() error {
	var seen Bitboard
	for p, bb := range s.Pieces {
		if seen&bb != 0 {
			return fmt.Errorf("%s overlaps another piece on %v: %w",
				Piece(p).Name(), (seen & bb).Squares(), ErrInvalidArgument)
		}
		seen |= bb
	}
	if s.Castling&^AllCastling != 0 {
		return fmt.Errorf("castling flags %#x: %w", uint8(s.Castling), ErrInvalidArgument)
	}
	if s.EnPassant > NoSquare {
		return fmt.Errorf("en passant square %d: %w", s.EnPassant, ErrInvalidArgument)
	}
	if s.HalfMoveClock < 0 {
		return fmt.Errorf("half-move clock %d: %w", s.HalfMoveClock, ErrInvalidArgument)
	}
	if s.FullMoveNumber < 1 {
		return fmt.Errorf("full-move number %d: %w", s.FullMoveNumber, ErrInvalidArgument)
	}
	return nil
}

// Summary returns the display grid followed by the auxiliary state.
func (b *Board) Summary() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d  ", 8-row)
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(Square(row*8 + file))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.SideToMove())
	fmt.Fprintf(&sb, "Castling: %s\n", b.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", b.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", b.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", b.fullMoveNumber)
	return sb.String()
}
