package logs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at debug.log inside logDir.
// An empty logDir leaves logging disabled.
func Initialize(logDir string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.Wrapf(err, "creating log dir %s", logDir)
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrapf(err, "opening log file %s", logPath)
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "studyorg").
		Logger()

	Logger.Info().Str("path", logPath).Msg("logger initialized")
	return nil
}

// Component returns a child logger tagged with the calling component.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return Logger.With().Str("component", name).Logger()
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = zerolog.Nop()
		return err
	}
	return nil
}
