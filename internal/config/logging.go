package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/go-pkgz/lgr"
)

// SetupLogging routes logs to stdout and ~/.lumina/logs/luminad.log. Debug
// enables [DEBUG] lines and caller info. The returned closer owns the file.
func SetupLogging(debug bool) (io.Closer, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	dir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	opts := []log.Option{log.Msec, log.LevelBraces, log.Out(io.MultiWriter(os.Stdout, f))}
	if debug {
		opts = append(opts, log.Debug, log.CallerFile, log.CallerFunc)
	}
	log.Setup(opts...)
	return f, nil
}
