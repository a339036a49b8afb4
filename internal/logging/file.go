package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "cavetimer"

// LogFileName is the name of the log file written while the dashboard owns
// the terminal.
const LogFileName = "cavetimer.log"

// GetLogDir returns the directory containing log files.
func GetLogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// GetLogPath returns the path of the log file.
func GetLogPath() string {
	return filepath.Join(GetLogDir(), LogFileName)
}

// OpenFile opens path for appending, creating its directory if needed.
// An empty path opens GetLogPath().
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		path = GetLogPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// InitFile points the global logger at a log file and returns it so the
// caller can close it on exit.
func InitFile(path string, cfg Config) (*os.File, error) {
	file, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Output = file
	Init(cfg)
	return file, nil
}
