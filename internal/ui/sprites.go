// Package ui implements the drag-and-drop chessboard window using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      [board.NumPieces]*ebiten.Image
	size        int     // Logical display size
	renderScale float64 // Sprites are rasterised this many times larger than size
	scale       float64 // HiDPI scale applied when drawing
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int, log zerolog.Logger) *SpriteManager {
	sm := &SpriteManager{
		size:        size,
		renderScale: 3.0,
		scale:       1.0,
	}
	sm.loadPieces(log)
	return sm
}

// pieceFile returns the embedded asset path for a piece, e.g. "assets/pieces/wN.svg".
func pieceFile(p board.Piece) string {
	side := 'w'
	if p.Color() == board.Black {
		side = 'b'
	}
	return fmt.Sprintf("assets/pieces/%c%c.svg", side, board.NewPiece(p.Type(), board.White).Char())
}

// loadPieces rasterises every piece from its embedded SVG.
func (sm *SpriteManager) loadPieces(log zerolog.Logger) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for p := board.WhitePawn; p < board.NoPiece; p++ {
		path := pieceFile(p)
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("asset", path).Msg("failed to read piece asset")
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Error().Err(err).Str("asset", path).Msg("failed to parse SVG")
			continue
		}
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[p] = ebiten.NewImageFromImage(rgba)
	}
}

// SetScale sets the HiDPI factor used by DrawPieceAt.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// DrawPieceAt draws a piece with its top-left corner at the given screen pixel.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64, alpha float32) {
	if !p.IsValid() || sm.pieces[p] == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := sm.scale / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sm.pieces[p], op)
}
