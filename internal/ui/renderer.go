package ui

import (
	"image/color"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare  color.RGBA
	DarkSquare   color.RGBA
	HoverSquare  color.RGBA
	OriginSquare color.RGBA
	Border       color.RGBA
	Background   color.RGBA
	LightCoord   color.RGBA
	DarkCoord    color.RGBA
}

// DefaultTheme returns the lime and pale yellow board.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:  color.RGBA{255, 251, 220, 255}, // yellow-200 at 30% on white
		DarkSquare:   color.RGBA{147, 191, 86, 255},  // lime-600 at 70% on white
		HoverSquare:  color.RGBA{254, 240, 138, 255}, // yellow-200
		OriginSquare: color.RGBA{254, 240, 138, 140},
		Border:       color.RGBA{63, 98, 18, 255}, // lime-800
		Background:   color.RGBA{38, 40, 45, 255},
		LightCoord:   color.RGBA{101, 163, 13, 255},
		DarkCoord:    color.RGBA{255, 251, 220, 255},
	}
}

// px scales a logical coordinate for HiDPI drawing.
func px(v float64) float32 {
	return float32(v * UIScale)
}

// Renderer draws the board, the pieces and the dragged piece.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	coords     bool
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int, log zerolog.Logger) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize, log),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		coords:     true,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.sprites.SetScale(scale)
}

// SetCoordinates toggles the file and rank labels.
func (r *Renderer) SetCoordinates(on bool) {
	r.coords = on
}

// DrawBoard draws the border and the 64 squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, px(float64(r.boardSize+2*BoardOffset)), px(float64(r.boardSize+2*BoardOffset)), r.theme.Border, false)

	for sq := board.A8; sq <= board.H1; sq++ {
		x, y := r.SquareToScreen(sq)
		vector.DrawFilledRect(screen, px(float64(x)), px(float64(y)), px(float64(r.squareSize)), px(float64(r.squareSize)), r.squareColor(sq), false)
	}

	if r.coords {
		r.drawCoordinates(screen)
	}
}

// isDark reports whether sq is a dark square. a8 is light.
func isDark(sq board.Square) bool {
	return (sq.Row()+sq.File())%2 == 1
}

func (r *Renderer) squareColor(sq board.Square) color.RGBA {
	if isDark(sq) {
		return r.theme.DarkSquare
	}
	return r.theme.LightSquare
}

// drawCoordinates labels files along rank 1 and ranks along the a-file.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	for file := 0; file < 8; file++ {
		sq := board.NewSquare(file, 0)
		x, y := r.SquareToScreen(sq)
		label := sq.String()[:1]
		w, h := MeasureText(label, boldSource, coordFontSize)
		r.drawCoord(screen, sq, label, float64(x+r.squareSize)-w-4, float64(y+r.squareSize)-h-2)
	}
	for rank := 0; rank < 8; rank++ {
		sq := board.NewSquare(0, rank)
		x, y := r.SquareToScreen(sq)
		r.drawCoord(screen, sq, sq.String()[1:], float64(x)+4, float64(y)+2)
	}
}

func (r *Renderer) drawCoord(screen *ebiten.Image, sq board.Square, label string, x, y float64) {
	c := r.theme.LightCoord
	if isDark(sq) {
		c = r.theme.DarkCoord
	}
	drawText(screen, label, boldSource, coordFontSize, x, y, c)
}

// DrawHighlights marks the drag origin and the square under the cursor.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, origin, hover board.Square) {
	if origin.IsValid() {
		r.highlightSquare(screen, origin, r.theme.OriginSquare)
	}
	if hover.IsValid() && hover != origin {
		r.highlightSquare(screen, hover, r.theme.HoverSquare)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, px(float64(x)), px(float64(y)), px(float64(r.squareSize)), px(float64(r.squareSize)), c, false)
}

// DrawPieces draws every piece, skipping the square being dragged from.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, dragFrom board.Square) {
	for sq := board.A8; sq <= board.H1; sq++ {
		if sq == dragFrom {
			continue
		}
		piece := b.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, float64(px(float64(x))), float64(px(float64(y))), 1)
	}
}

// DrawDraggedPiece draws the piece centred on the cursor.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}
	half := r.squareSize / 2
	r.sprites.DrawPieceAt(screen, piece, float64(px(float64(mouseX-half))), float64(px(float64(mouseY-half))), 0.9)
}

// SquareToScreen returns the logical top-left corner of sq. Row 0 (rank 8)
// is at the top.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return BoardOffset + sq.File()*r.squareSize, BoardOffset + sq.Row()*r.squareSize
}

// ScreenToSquare converts logical screen coordinates to a board square, or
// board.NoSquare outside the grid.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	x -= BoardOffset
	y -= BoardOffset
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return board.Square((y/r.squareSize)*8 + x/r.squareSize)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
