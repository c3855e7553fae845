package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/hailam/chessboard/internal/logging"
	"github.com/hailam/chessboard/internal/shell"
	"github.com/hailam/chessboard/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dataDir    = flag.String("data", "", "data directory (default $"+storage.DataDirEnv+" or the platform data dir)")
	logLevel   = flag.String("log-level", "", "log level (default $"+logging.LevelEnv+" or info)")
	noPersist  = flag.Bool("no-persist", false, "do not load or save the board")
	session    = flag.String("session", storage.DefaultSession, "name of the saved board to use")
)

func main() {
	flag.Parse()
	log := logging.Stderr(*logLevel)

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	var ctrl *dragdrop.Controller
	var store *storage.Storage
	if *noPersist {
		ctrl = dragdrop.New(board.NewBoard(), nil, log)
	} else {
		var err error
		store, err = storage.OpenDir(*dataDir, log)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open storage")
		}
		defer store.Close()
		store = store.WithSession(*session)
		ctrl = dragdrop.New(store.RestoreBoard(), store, log)
	}

	sh := shell.New(ctrl, os.Stdout, log)
	if store != nil {
		sh.WithSessions(store)
	}
	if err := sh.Run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("reading commands failed")
	}
}
