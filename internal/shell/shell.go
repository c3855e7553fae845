// Package shell implements a line-oriented command interface to a board.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/dragdrop"
	"github.com/rs/zerolog"
)

const helpText = `commands:
  d, display            show the board
  summary               show the board with its game state
  fen                   print the FEN string
  side                  print the active color
  move <from> <to>      relocate a piece (e2 e4 or 52 36)
  place <piece> <sq>    put a piece (PNBRQK/pnbrqk) on an empty square
  reset                 starting position
  clear                 empty board
  load <fen>            replace the board with a FEN position
  sessions              list saved boards
  delete <name>         remove a saved board
  help                  this text
  quit                  exit`

var errNoStorage = errors.New("saved boards are disabled")

// SessionStore lists and removes saved boards.
type SessionStore interface {
	Sessions() ([]string, error)
	DeleteBoard(name string) error
}

// Shell reads commands and applies them to a controller.
type Shell struct {
	ctrl     *dragdrop.Controller
	sessions SessionStore
	out      io.Writer
	log      zerolog.Logger
}

// New creates a shell that writes its responses to out.
func New(ctrl *dragdrop.Controller, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		ctrl: ctrl,
		out:  out,
		log:  log,
	}
}

// WithSessions enables the sessions and delete commands.
func (s *Shell) WithSessions(store SessionStore) *Shell {
	s.sessions = store
	return s
}

// Run processes commands from in until EOF or "quit".
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.Execute(line) {
			return nil
		}
	}

	return scanner.Err()
}

// Execute runs a single command line. It returns false when the shell should stop.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	s.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("command")

	var err error
	switch cmd {
	case "d", "display":
		fmt.Fprint(s.out, s.ctrl.Board().DisplayGrid())
	case "summary":
		fmt.Fprint(s.out, s.ctrl.Board().Summary())
	case "fen":
		fmt.Fprintln(s.out, s.ctrl.FEN())
	case "side":
		fmt.Fprintln(s.out, s.ctrl.Board().SideToMove())
	case "move":
		err = s.handleMove(args)
	case "place":
		err = s.handlePlace(args)
	case "reset":
		s.ctrl.Reset()
		fmt.Fprintln(s.out, s.ctrl.FEN())
	case "clear":
		s.ctrl.Clear()
		fmt.Fprintln(s.out, s.ctrl.FEN())
	case "load":
		err = s.handleLoad(args)
	case "sessions":
		err = s.handleSessions()
	case "delete":
		err = s.handleDelete(args)
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit":
		return false
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return true
}

// handleMove handles "move <from> <to>".
func (s *Shell) handleMove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: move <from> <to>")
	}
	from, err := parseSquare(args[0])
	if err != nil {
		return err
	}
	to, err := parseSquare(args[1])
	if err != nil {
		return err
	}

	outcome := s.ctrl.Move(from, to)
	if outcome != dragdrop.Moved {
		fmt.Fprintf(s.out, "ignored: %s\n", outcome)
		return nil
	}
	fmt.Fprintln(s.out, s.ctrl.FEN())
	return nil
}

// handlePlace handles "place <piece> <square>".
func (s *Shell) handlePlace(args []string) error {
	if len(args) != 2 || len(args[0]) != 1 {
		return fmt.Errorf("usage: place <piece> <square>")
	}
	piece := board.PieceFromChar(args[0][0])
	if piece == board.NoPiece {
		return fmt.Errorf("unknown piece %q", args[0])
	}
	sq, err := parseSquare(args[1])
	if err != nil {
		return err
	}

	if !s.ctrl.Place(piece, sq) {
		fmt.Fprintf(s.out, "ignored: %s is occupied\n", sq)
		return nil
	}
	fmt.Fprintln(s.out, s.ctrl.FEN())
	return nil
}

// handleLoad handles "load <fen>".
func (s *Shell) handleLoad(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: load <fen>")
	}
	if err := s.ctrl.Load(strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.ctrl.FEN())
	return nil
}

// handleSessions handles "sessions".
func (s *Shell) handleSessions() error {
	if s.sessions == nil {
		return errNoStorage
	}
	names, err := s.sessions.Sessions()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, "no saved boards")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

// handleDelete handles "delete <name>".
func (s *Shell) handleDelete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <name>")
	}
	if s.sessions == nil {
		return errNoStorage
	}
	names, err := s.sessions.Sessions()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if !slices.Contains(names, args[0]) {
		return fmt.Errorf("no saved board named %q", args[0])
	}
	if err := s.sessions.DeleteBoard(args[0]); err != nil {
		return fmt.Errorf("delete %q: %w", args[0], err)
	}
	s.log.Info().Str("session", args[0]).Msg("session deleted")
	fmt.Fprintf(s.out, "deleted %s\n", args[0])
	return nil
}

// parseSquare accepts algebraic ("e4") or numeric ("36") squares.
func parseSquare(s string) (board.Square, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 63 {
			return board.NoSquare, fmt.Errorf("square %d out of range", n)
		}
		return board.Square(n), nil
	}
	return board.ParseSquare(strings.ToLower(s))
}
