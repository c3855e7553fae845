package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/chessboard/internal/board"
	"github.com/rs/zerolog"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keySession     = "session/"
)

// DefaultSession is the session name used by the front ends.
const DefaultSession = "default"

// ErrNotFound is returned when no board has been saved under a session name.
var ErrNotFound = errors.New("session not found")

// UserPreferences stores user settings
type UserPreferences struct {
	SoundEnabled    bool      `json:"sound_enabled"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastOpened      time.Time `json:"last_opened"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		SoundEnabled:    true,
		ShowCoordinates: true,
		LastOpened:      time.Now(),
	}
}

// savedSession is the on-disk form of a board session.
type savedSession struct {
	State   board.State `json:"state"`
	FEN     string      `json:"fen"`
	SavedAt time.Time   `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db      *badger.DB
	session string
	log     zerolog.Logger
}

// NewStorage opens the database in the platform data directory.
func NewStorage(log zerolog.Logger) (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir, log)
}

// Open opens (or creates) a database in dir.
func Open(dir string, log zerolog.Logger) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging
	return open(opts, log.With().Str("db", dir).Logger())
}

// OpenDir opens the database in dir, or in the platform data directory when
// dir is empty.
func OpenDir(dir string, log zerolog.Logger) (*Storage, error) {
	if dir == "" {
		return NewStorage(log)
	}
	return Open(dir, log)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory(log zerolog.Logger) (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts, log.With().Str("db", "memory").Logger())
}

func open(opts badger.Options, log zerolog.Logger) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	log.Debug().Msg("storage opened")
	return &Storage{db: db, session: DefaultSession, log: log}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// WithSession returns a view of the storage whose SaveState/LoadState use
// the given session name.
func (s *Storage) WithSession(name string) *Storage {
	ns := *s
	ns.session = name
	return &ns
}

// SaveState stores a board snapshot under the current session name.
func (s *Storage) SaveState(st board.State) error {
	return s.SaveBoard(s.session, st)
}

// LoadState loads the board snapshot stored under the current session name.
func (s *Storage) LoadState() (board.State, error) {
	return s.LoadBoard(s.session)
}

// SaveBoard stores a board snapshot under a session name.
func (s *Storage) SaveBoard(name string, st board.State) error {
	b, err := board.FromState(st)
	if err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}

	data, err := json.Marshal(savedSession{
		State:   st,
		FEN:     b.ToFEN(),
		SavedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySession+name), data)
	})
	if err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}

	s.log.Debug().Str("session", name).Str("fen", b.ToFEN()).Msg("session saved")
	return nil
}

// LoadBoard loads a board snapshot saved under a session name.
func (s *Storage) LoadBoard(name string) (board.State, error) {
	var saved savedSession

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySession + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return board.State{}, fmt.Errorf("load session %q: %w", name, err)
	}

	if err := saved.State.Validate(); err != nil {
		return board.State{}, fmt.Errorf("load session %q: %w", name, err)
	}
	return saved.State, nil
}

// RestoreBoard returns the board saved in the current session, or the
// starting position when nothing usable is stored. A nil Storage always
// yields the starting position.
func (s *Storage) RestoreBoard() *board.Board {
	if s == nil {
		return board.NewBoard()
	}
	st, err := s.LoadState()
	if errors.Is(err, ErrNotFound) {
		return board.NewBoard()
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable session")
		return board.NewBoard()
	}
	b, err := board.FromState(st)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding invalid session")
		return board.NewBoard()
	}
	s.log.Info().Str("session", s.session).Str("fen", b.ToFEN()).Msg("session restored")
	return b
}

// DeleteBoard removes a saved session. Deleting a missing session is not an error.
func (s *Storage) DeleteBoard(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keySession + name))
	})
}

// Sessions lists the names of all saved sessions.
func (s *Storage) Sessions() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keySession)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(keySession):]))
		}
		return nil
	})

	return names, err
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastOpened = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}
