// Package storage provides persistent storage for the board session and user preferences.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessboard"

// DataDirEnv overrides the platform data directory when set.
const DataDirEnv = "CHESSBOARD_DATA_DIR"

// GetDataDir returns the platform-specific data directory for the application.
// - $CHESSBOARD_DATA_DIR if set
// - macOS: ~/Library/Application Support/chessboard/
// - Linux: ~/.local/share/chessboard/
// - Windows: %APPDATA%/chessboard/
func GetDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like: ~/.local/share/
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
