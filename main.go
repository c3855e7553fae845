// Chessboard - a drag-and-drop chessboard built with Ebitengine
package main

import (
	"flag"
	"os"

	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/hailam/chessboard/internal/logging"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	dataDir   = flag.String("data", "", "data directory (default $"+storage.DataDirEnv+" or the platform data dir)")
	logLevel  = flag.String("log-level", "", "log level: debug, info, warn, error (default $"+logging.LevelEnv+" or info)")
	noPersist = flag.Bool("no-persist", false, "do not load or save the board")
	fen       = flag.String("fen", "", "start from this position instead of the saved one")
)

func main() {
	flag.Parse()
	log := logging.Stderr(*logLevel)

	var store *storage.Storage
	if !*noPersist {
		var err error
		store, err = storage.OpenDir(*dataDir, log)
		if err != nil {
			log.Warn().Err(err).Msg("storage unavailable, running without persistence")
			store = nil
		}
	}

	// A nil *Storage must not reach the controller as a non-nil Store.
	var persist dragdrop.Store
	if store != nil {
		persist = store
	}
	ctrl := dragdrop.New(store.RestoreBoard(), persist, log)
	if *fen != "" {
		if err := ctrl.Load(*fen); err != nil {
			log.Error().Err(err).Msg("invalid -fen")
			os.Exit(2)
		}
	}

	game := ui.NewGame(ctrl, store, log)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Chessboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		game.Close()
		os.Exit(1)
	}
}
