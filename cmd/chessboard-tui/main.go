package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/hailam/chessboard/internal/logging"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/tui"
)

var (
	dataDir   = flag.String("data", "", "data directory (default $"+storage.DataDirEnv+" or the platform data dir)")
	logLevel  = flag.String("log-level", "", "log level (default $"+logging.LevelEnv+" or info)")
	logFile   = flag.String("log-file", "", "append JSON logs to this file; the terminal is owned by the board")
	noPersist = flag.Bool("no-persist", false, "do not load or save the board")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "chessboard-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, *logLevel, false)

	var store *storage.Storage
	var persist dragdrop.Store
	if !*noPersist {
		var err error
		if store, err = storage.OpenDir(*dataDir, log); err != nil {
			return err
		}
		defer store.Close()
		persist = store
	}
	ctrl := dragdrop.New(store.RestoreBoard(), persist, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return tui.New(screen, ctrl, log).Run()
}
