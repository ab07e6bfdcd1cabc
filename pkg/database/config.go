package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds database configuration.
type Config struct {
	// Path is the SQLite database file. Parent directories are created on
	// open. ":memory:" opens a throwaway in-memory database.
	Path string

	// BusyTimeout bounds how long a connection waits on a locked database
	// before returning SQLITE_BUSY.
	BusyTimeout time.Duration

	ConnMaxLifetime time.Duration
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("database path is required")
	}
	if c.BusyTimeout < 0 {
		return errors.New("busy timeout must not be negative")
	}
	if c.ConnMaxLifetime < 0 {
		return errors.New("conn max lifetime must not be negative")
	}
	return nil
}

// DSN builds the mattn/go-sqlite3 connection string. WAL keeps readers
// unblocked during writes; foreign keys must be switched on per connection
// for ON DELETE CASCADE to work.
func (c Config) DSN() string {
	timeout := c.BusyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=on",
		c.Path, timeout.Milliseconds())
}

// LoadConfigFromEnv loads database configuration from environment variables.
// PRAXIS_DB_PATH names the database file directly; otherwise the file lives
// under PRAXIS_DATA_DIR (default "data").
func LoadConfigFromEnv() (Config, error) {
	path := os.Getenv("PRAXIS_DB_PATH")
	if path == "" {
		dataDir := getEnvOrDefault("PRAXIS_DATA_DIR", "data")
		path = filepath.Join(dataDir, "praxis.db")
	}

	busyTimeout := 5 * time.Second
	if raw := os.Getenv("PRAXIS_DB_BUSY_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PRAXIS_DB_BUSY_TIMEOUT: %w", err)
		}
		busyTimeout = d
	}

	return Config{
		Path:            path,
		BusyTimeout:     busyTimeout,
		ConnMaxLifetime: 30 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
