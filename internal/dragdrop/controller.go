// Package dragdrop turns pointer gestures into board relocations. It knows
// nothing about rendering; front ends map screen coordinates to squares and
// feed them to a Controller.
package dragdrop

import (
	"fmt"

	"github.com/hailam/chessboard/internal/board"
	"github.com/rs/zerolog"
)

// Outcome describes what a drop or move did to the board.
type Outcome int

const (
	// Missed means no drag was active or the piece was dropped off the board.
	Missed Outcome = iota
	// Moved means the piece was relocated.
	Moved
	// Blocked means the target square was occupied.
	Blocked
	// Returned means the piece was dropped back on its origin square.
	Returned
	// NoPiece means the source square was empty.
	NoPiece
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "square occupied"
	case Returned:
		return "returned"
	case NoPiece:
		return "no piece"
	default:
		return "missed"
	}
}

// Store persists board snapshots after every change.
type Store interface {
	SaveState(board.State) error
}

// Controller owns a board and the drag in progress on it.
// It must be used from a single goroutine.
type Controller struct {
	board *board.Board
	store Store
	log   zerolog.Logger

	dragging   bool
	dragSquare board.Square
	dragPiece  board.Piece

	last    Outcome
	dropped bool
	version int
}

// New creates a controller for b. store may be nil.
func New(b *board.Board, store Store, log zerolog.Logger) *Controller {
	return &Controller{
		board:      b,
		store:      store,
		log:        log,
		dragSquare: board.NoSquare,
		dragPiece:  board.NoPiece,
	}
}

// Board returns the controlled board.
func (c *Controller) Board() *board.Board {
	return c.board
}

// PieceAt returns the piece on sq.
func (c *Controller) PieceAt(sq board.Square) board.Piece {
	return c.board.PieceAt(sq)
}

// FEN returns the current FEN string.
func (c *Controller) FEN() string {
	return c.board.ToFEN()
}

// Version increments every time the board changes. Renderers can compare it
// to decide whether cached output is stale.
func (c *Controller) Version() int {
	return c.version
}

// LastOutcome returns the result of the most recent drop or move.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}

// HasDropped reports whether a drop or move has been attempted since the
// controller was created or the position was last reset, cleared or loaded.
// LastOutcome is only meaningful when it is true.
func (c *Controller) HasDropped() bool {
	return c.dropped
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Origin returns the square the current drag started from.
func (c *Controller) Origin() board.Square {
	return c.dragSquare
}

// DraggedPiece returns the piece being dragged, NoPiece if none.
func (c *Controller) DraggedPiece() board.Piece {
	return c.dragPiece
}

// Begin starts dragging the piece on sq. Empty squares cannot be dragged.
func (c *Controller) Begin(sq board.Square) bool {
	piece := c.board.PieceAt(sq)
	if piece == board.NoPiece {
		c.Cancel()
		return false
	}
	c.dragging = true
	c.dragSquare = sq
	c.dragPiece = piece
	return true
}

// Cancel abandons the current drag without touching the board.
func (c *Controller) Cancel() {
	c.dragging = false
	c.dragSquare = board.NoSquare
	c.dragPiece = board.NoPiece
}

// Drop ends the current drag on sq. Pass board.NoSquare for a drop outside
// the board.
func (c *Controller) Drop(sq board.Square) Outcome {
	c.dropped = true
	if !c.dragging {
		c.last = Missed
		return Missed
	}
	from := c.dragSquare
	c.Cancel()

	if !sq.IsValid() {
		c.last = Missed
		return Missed
	}
	if sq == from {
		c.last = Returned
		return Returned
	}
	return c.Move(from, sq)
}

// Move relocates the piece on from to to, outside of any drag.
func (c *Controller) Move(from, to board.Square) Outcome {
	c.dropped = true
	piece := c.board.PieceAt(from)
	switch {
	case piece == board.NoPiece:
		c.last = NoPiece
	case c.board.Move(from, to):
		c.last = Moved
		c.log.Debug().Str("piece", piece.Name()).Str("from", from.String()).Str("to", to.String()).Msg("piece moved")
		c.changed()
	default:
		c.last = Blocked
		c.log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("target occupied")
	}
	return c.last
}

// Place puts a piece on an empty square.
func (c *Controller) Place(p board.Piece, sq board.Square) bool {
	if !c.board.PlacePiece(p, sq) {
		return false
	}
	c.changed()
	return true
}

// Reset restores the starting position.
func (c *Controller) Reset() {
	c.Cancel()
	c.board.Reset()
	c.forgetDrops()
	c.log.Info().Msg("board reset")
	c.changed()
}

// Clear empties the board.
func (c *Controller) Clear() {
	c.Cancel()
	c.board.Clear()
	c.forgetDrops()
	c.log.Info().Msg("board cleared")
	c.changed()
}

// Load replaces the board with the position described by fen.
func (c *Controller) Load(fen string) error {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}
	c.Cancel()
	*c.board = *b
	c.forgetDrops()
	c.log.Info().Str("fen", fen).Msg("position loaded")
	c.changed()
	return nil
}

// forgetDrops clears the drop status for a new position.
func (c *Controller) forgetDrops() {
	c.dropped = false
	c.last = Missed
}

// changed bumps the version and persists the board.
func (c *Controller) changed() {
	c.version++
	if c.store == nil {
		return
	}
	if err := c.store.SaveState(c.board.State()); err != nil {
		c.log.Error().Err(err).Msg("failed to save board")
	}
}
