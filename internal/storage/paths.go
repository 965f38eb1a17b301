// Package storage persists named squares and square sets.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscoord"

// DefaultDir returns the directory NewStorage keeps its database in, creating
// it if needed:
//   - macOS: ~/Library/Application Support/chesscoord/squares
//   - Windows: %APPDATA%/chesscoord/squares
//   - elsewhere: $XDG_DATA_HOME/chesscoord/squares or ~/.local/share/chesscoord/squares
func DefaultDir() (string, error) {
	base, err := userDataHome()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, appName, "squares")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	log.Printf("Square store: %s", dir)
	return dir, nil
}

func userDataHome() (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch runtime.GOOS {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}
