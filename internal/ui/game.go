package ui

import (
	"time"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	BoardOffset  = 8 // border around the grid
	PanelX       = BoardSize + 2*BoardOffset
	PanelWidth   = 280
	ScreenWidth  = PanelX + PanelWidth
	ScreenHeight = BoardSize + 2*BoardOffset
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used when converting input and drawing.
var UIScale float64 = 1.0

// Game implements ebiten.Game over a drag/drop controller.
type Game struct {
	ctrl    *dragdrop.Controller
	storage *storage.Storage
	prefs   *storage.UserPreferences
	log     zerolog.Logger

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	hover board.Square

	// HiDPI scaling
	scale float64
}

// NewGame creates the window state for ctrl. store may be nil, in which case
// preferences are not persisted.
func NewGame(ctrl *dragdrop.Controller, store *storage.Storage, log zerolog.Logger) *Game {
	loadFonts(log)

	g := &Game{
		ctrl:     ctrl,
		storage:  store,
		log:      log,
		renderer: NewRenderer(BoardSize, SquareSize, log),
		input:    NewInputHandler(),
		hover:    board.NoSquare,
		scale:    1.0,
	}

	g.loadPreferences()
	g.feedback = NewFeedbackManager(NewAudioManager(g.prefs.SoundEnabled))
	g.renderer.SetCoordinates(g.prefs.ShowCoordinates)
	g.panel = NewPanel(g)

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to load preferences")
		g.prefs = storage.DefaultPreferences()
	}
	g.prefs.LastOpened = time.Now()
	g.savePreferences()
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// Update handles input once per tick.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if IsKeyJustPressed(ebiten.KeyEscape) && g.ctrl.Dragging() {
		g.ctrl.Cancel()
	}

	// Buttons only react while no piece is in flight.
	if !g.ctrl.Dragging() && g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	switch {
	case g.ctrl.Dragging():
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case g.panel.AnyButtonHovered():
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case g.hover.IsValid() && g.ctrl.PieceAt(g.hover) != board.NoPiece:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// handleBoardInput starts a drag on press and drops it on release.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	g.hover = g.renderer.ScreenToSquare(mx, my)

	if g.input.IsLeftJustPressed() {
		pressX, pressY := g.input.PressPosition()
		if sq := g.renderer.ScreenToSquare(pressX, pressY); sq.IsValid() {
			g.ctrl.Begin(sq)
		}
	}

	if g.ctrl.Dragging() && g.input.IsLeftJustReleased() {
		from := g.ctrl.Origin()
		outcome := g.ctrl.Drop(g.hover)
		g.log.Debug().
			Str("from", from.String()).
			Str("to", g.hover.String()).
			Stringer("outcome", outcome).
			Msg("drop")

		switch outcome {
		case dragdrop.Moved:
			g.feedback.OnMoved()
		case dragdrop.Blocked:
			g.feedback.OnBlocked(g.hover)
		}
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	origin := board.NoSquare
	if g.ctrl.Dragging() {
		origin = g.ctrl.Origin()
		g.renderer.DrawHighlights(screen, origin, g.hover)
	} else if g.hover.IsValid() {
		g.renderer.DrawHighlights(screen, board.NoSquare, g.hover)
	}

	g.renderer.DrawPieces(screen, g.ctrl.Board(), origin)
	g.feedback.Draw(screen, g.renderer)

	if g.ctrl.Dragging() {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.ctrl.DraggedPiece(), mx, my)
	}

	g.panel.Draw(screen)
}

// Layout returns the game's screen dimensions in device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 2.0 on Retina, 1.0 on standard displays
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// ResetAction restores the starting position.
func (g *Game) ResetAction() {
	g.ctrl.Reset()
	g.feedback.OnReset("Board reset")
}

// ClearAction removes every piece.
func (g *Game) ClearAction() {
	g.ctrl.Clear()
	g.feedback.OnReset("Board cleared")
}

// ToggleSoundAction flips the sound preference.
func (g *Game) ToggleSoundAction() {
	g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
	g.savePreferences()
}

// ToggleCoordinatesAction flips the coordinate labels.
func (g *Game) ToggleCoordinatesAction() {
	g.prefs.ShowCoordinates = !g.prefs.ShowCoordinates
	g.renderer.SetCoordinates(g.prefs.ShowCoordinates)
	g.savePreferences()
}

// Controller returns the drag/drop controller.
func (g *Game) Controller() *dragdrop.Controller {
	return g.ctrl
}

// SoundEnabled reports whether sound effects are on.
func (g *Game) SoundEnabled() bool {
	return g.prefs.SoundEnabled
}

// CoordinatesShown reports whether coordinate labels are drawn.
func (g *Game) CoordinatesShown() bool {
	return g.prefs.ShowCoordinates
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			g.log.Error().Err(err).Msg("failed to close storage")
		}
	}
}
