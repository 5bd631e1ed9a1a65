package config

import (
	"os"
	"strconv"
)

// Logging describes the rotating log file the daemon writes next to
// its stderr output. Zero value disables file logging.
type Logging struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogging() Logging {
	filename := os.Getenv("LOG_FILE")
	if filename == "" {
		return Logging{}
	}
	return Logging{
		Filename:   filename,
		MaxSizeMB:  envInt("LOG_MAX_SIZE_MB", 50),
		MaxBackups: envInt("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: envInt("LOG_MAX_AGE_DAYS", 28),
	}
}

func (l Logging) Enabled() bool { return l.Filename != "" }

func envInt(key string, fallback int) int {
	if s, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}
