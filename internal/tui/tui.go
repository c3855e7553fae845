// Package tui draws the board in a terminal with tcell and moves pieces with
// mouse drag-and-drop.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/rs/zerolog"
)

// Board geometry in terminal cells.
const (
	CellWidth = 3
	OriginX   = 2 // leaves room for rank labels
	OriginY   = 1
)

var (
	lightSquare = tcell.NewRGBColor(238, 238, 210)
	darkSquare  = tcell.NewRGBColor(118, 150, 86)
	hoverSquare = tcell.NewRGBColor(246, 246, 130)
	whiteInk    = tcell.NewRGBColor(255, 255, 255)
	blackInk    = tcell.NewRGBColor(0, 0, 0)

	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// App is the terminal front end.
type App struct {
	screen tcell.Screen
	ctrl   *dragdrop.Controller
	log    zerolog.Logger

	mouseX, mouseY int
	buttonDown     bool
	notice         string
}

// New creates an App drawing on screen. The screen must already be initialised.
func New(screen tcell.Screen, ctrl *dragdrop.Controller, log zerolog.Logger) *App {
	return &App{
		screen: screen,
		ctrl:   ctrl,
		log:    log,
		mouseX: -1,
		mouseY: -1,
	}
}

// Run processes events until the user quits.
func (a *App) Run() error {
	a.screen.EnableMouse()
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
		a.Draw()
	}
}

// HandleEvent applies a single event. It returns false when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.ctrl.Reset()
			a.notice = "board reset"
		case 'c':
			a.ctrl.Clear()
			a.notice = "board cleared"
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	a.mouseX, a.mouseY = ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !a.buttonDown:
		sq := SquareAt(a.mouseX, a.mouseY)
		if sq.IsValid() && a.ctrl.Begin(sq) {
			a.notice = ""
		}
	case !pressed && a.buttonDown:
		if a.ctrl.Dragging() {
			from := a.ctrl.Origin()
			to := SquareAt(a.mouseX, a.mouseY)
			outcome := a.ctrl.Drop(to)
			a.notice = fmt.Sprintf("%s-%s: %s", from, to, outcome)
			a.log.Debug().Str("from", from.String()).Str("to", to.String()).Stringer("outcome", outcome).Msg("drop")
		}
	}
	a.buttonDown = pressed
}

// SquareAt maps a terminal cell to a board square, NoSquare when outside.
func SquareAt(x, y int) board.Square {
	file := (x - OriginX) / CellWidth
	row := y - OriginY
	if x < OriginX || file > 7 || row < 0 || row > 7 {
		return board.NoSquare
	}
	return board.Square(row*8 + file)
}

// Draw renders the board, the labels and the status lines.
func (a *App) Draw() {
	s := a.screen
	s.Clear()

	hover := board.NoSquare
	if a.ctrl.Dragging() {
		hover = SquareAt(a.mouseX, a.mouseY)
	}

	for sq := board.A8; sq <= board.H1; sq++ {
		x := OriginX + sq.File()*CellWidth
		y := OriginY + sq.Row()

		bg := lightSquare
		if (sq.File()+sq.Row())%2 == 1 {
			bg = darkSquare
		}
		if sq == hover {
			bg = hoverSquare
		}

		piece := a.ctrl.PieceAt(sq)
		if a.ctrl.Dragging() && sq == a.ctrl.Origin() {
			piece = board.NoPiece
		}

		style := tcell.StyleDefault.Background(bg).Foreground(inkFor(piece))
		s.SetContent(x, y, ' ', nil, style)
		s.SetContent(x+1, y, glyphFor(piece), nil, style)
		s.SetContent(x+2, y, ' ', nil, style)

		if sq.File() == 0 {
			s.SetContent(0, y, rune('1'+sq.Rank()), nil, labelStyle)
		}
	}
	for file := 0; file < 8; file++ {
		s.SetContent(OriginX+file*CellWidth+1, OriginY+8, rune('a'+file), nil, labelStyle)
	}

	if a.ctrl.Dragging() && a.mouseX >= 0 {
		piece := a.ctrl.DraggedPiece()
		s.SetContent(a.mouseX, a.mouseY, piece.Glyph(), nil, tcell.StyleDefault.Bold(true))
	}

	drawText(s, 0, OriginY+10, statusStyle, a.ctrl.FEN())
	drawText(s, 0, OriginY+11, noticeStyle, a.notice)
	drawText(s, 0, OriginY+12, labelStyle, "drag to move  r reset  c clear  q quit")

	s.Show()
}

// Notice returns the last status message.
func (a *App) Notice() string {
	return a.notice
}

func glyphFor(p board.Piece) rune {
	if p == board.NoPiece {
		return ' '
	}
	// The solid glyphs read better on coloured cells; ink colour tells the sides apart.
	return board.NewPiece(p.Type(), board.Black).Glyph()
}

func inkFor(p board.Piece) tcell.Color {
	if p.Color() == board.White {
		return whiteInk
	}
	return blackInk
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
