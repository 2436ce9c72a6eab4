package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// NewWithFile creates a logger that appends to path instead of stderr.
// Used while a full-screen terminal UI owns stderr. The returned cleanup
// closes the file.
func NewWithFile(cfg Config, path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	cleanup := func() {
		_ = file.Close()
	}
	return NewWithWriter(cfg, file), cleanup, nil
}
