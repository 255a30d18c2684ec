package logger

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Environment variable to configure log file path.
const envLogPath = "TESTIMONIALSTACK_LOG"

// Logs go to a file, never stdout: the MCP server speaks its protocol on
// stdio and must keep it clean.
var (
	log           = zerolog.Nop()
	logFile       *os.File
	isInitialized bool
)

// InitFromEnv initializes the logger using TESTIMONIALSTACK_LOG or a default
// path next to the executable.
func InitFromEnv() error {
	path := os.Getenv(envLogPath)
	if path == "" {
		if exePath, err := os.Executable(); err == nil {
			path = filepath.Join(filepath.Dir(exePath), "testimonialstack.log")
		} else {
			path = "./testimonialstack.log"
		}
	}
	return Init(path)
}

// Init initializes the logger to write to the provided file path.
// It creates parent directories if needed and opens the file in append mode.
func Init(path string) error {
	if isInitialized {
		return nil
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = f
	log = zerolog.New(f).With().Timestamp().Logger()
	isInitialized = true
	return nil
}

// Close closes the underlying log file, if open.
func Close() error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		log = zerolog.Nop()
		isInitialized = false
		return err
	}
	return nil
}

// Debugf logs debug details.
func Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }

// Infof logs informational messages.
func Infof(format string, args ...any) { log.Info().Msgf(format, args...) }

// Warnf logs warnings.
func Warnf(format string, args ...any) { log.Warn().Msgf(format, args...) }

// Errorf logs errors.
func Errorf(format string, args ...any) { log.Error().Msgf(format, args...) }

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
