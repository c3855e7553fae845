package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/rs/zerolog"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen, *dragdrop.Controller) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(60, 16)

	ctrl := dragdrop.New(board.NewBoard(), nil, zerolog.Nop())
	return New(s, ctrl, zerolog.Nop()), s, ctrl
}

// cellOf returns the terminal cell holding the glyph of sq.
func cellOf(sq board.Square) (int, int) {
	return OriginX + sq.File()*CellWidth + 1, OriginY + sq.Row()
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func lineAt(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestSquareAt(t *testing.T) {
	for sq := board.A8; sq <= board.H1; sq++ {
		x, y := cellOf(sq)
		if got := SquareAt(x, y); got != sq {
			t.Errorf("SquareAt(%d, %d) = %s, want %s", x, y, got, sq)
		}
		if got := SquareAt(x-1, y); got != sq {
			t.Errorf("left edge of %s maps to %s", sq, got)
		}
	}
	for _, p := range [][2]int{{0, 1}, {1, 1}, {OriginX + 8*CellWidth, 1}, {5, 0}, {5, OriginY + 8}} {
		if got := SquareAt(p[0], p[1]); got != board.NoSquare {
			t.Errorf("SquareAt(%d, %d) = %s, want NoSquare", p[0], p[1], got)
		}
	}
}

func TestDraw(t *testing.T) {
	app, s, _ := newTestApp(t)
	app.Draw()

	x, y := cellOf(board.E1)
	if got := runeAt(s, x, y); got != '♚' {
		t.Errorf("e1 shows %q, want king glyph", got)
	}
	x, y = cellOf(board.E4)
	if got := runeAt(s, x, y); got != ' ' {
		t.Errorf("e4 shows %q, want blank", got)
	}
	if got := runeAt(s, 0, OriginY); got != '8' {
		t.Errorf("top rank label = %q, want 8", got)
	}
	if got := lineAt(s, OriginY+10); got != board.StartFEN {
		t.Errorf("status line = %q, want FEN", got)
	}
}

func TestMouseDrag(t *testing.T) {
	app, s, ctrl := newTestApp(t)

	fx, fy := cellOf(board.G1)
	tx, ty := cellOf(board.F3)

	app.HandleEvent(tcell.NewEventMouse(fx, fy, tcell.Button1, tcell.ModNone))
	if !ctrl.Dragging() {
		t.Fatal("press on a piece should start a drag")
	}
	app.HandleEvent(tcell.NewEventMouse(tx, ty, tcell.Button1, tcell.ModNone))
	app.Draw()
	if got := runeAt(s, fx, fy); got != ' ' {
		t.Errorf("origin should look empty while dragging, shows %q", got)
	}

	app.HandleEvent(tcell.NewEventMouse(tx, ty, tcell.ButtonNone, tcell.ModNone))
	if ctrl.Dragging() {
		t.Error("release should end the drag")
	}
	if ctrl.PieceAt(board.F3) != board.WhiteKnight {
		t.Errorf("f3 holds %s, want N", ctrl.PieceAt(board.F3))
	}
	if app.Notice() != "g1-f3: moved" {
		t.Errorf("notice = %q", app.Notice())
	}

	app.Draw()
	if got := lineAt(s, OriginY+10); got != "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 1" {
		t.Errorf("status line = %q", got)
	}
}

func TestMouseDropBlocked(t *testing.T) {
	app, _, ctrl := newTestApp(t)
	before := ctrl.FEN()

	fx, fy := cellOf(board.A1)
	tx, ty := cellOf(board.A7)
	app.HandleEvent(tcell.NewEventMouse(fx, fy, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(tx, ty, tcell.ButtonNone, tcell.ModNone))

	if ctrl.FEN() != before {
		t.Error("blocked drop changed the board")
	}
	if app.Notice() != "a1-a7: square occupied" {
		t.Errorf("notice = %q", app.Notice())
	}
}

func TestKeys(t *testing.T) {
	app, _, ctrl := newTestApp(t)

	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Fatal("c should not quit")
	}
	if ctrl.Board().Occupied() != board.Empty {
		t.Error("c should clear the board")
	}
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if ctrl.FEN() != board.StartFEN {
		t.Error("r should reset the board")
	}
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}
