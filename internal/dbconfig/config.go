package dbconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds database configuration
type Config struct {
	Path          string
	JournalMode   string
	BusyTimeoutMS int
	Synchronous   string
}

// NewConfigFromEnv creates a new database config from environment variables
func NewConfigFromEnv() *Config {
	return &Config{
		Path:          getEnv("DB_PATH", "fantasy_data.db"),
		JournalMode:   getEnv("DB_JOURNAL_MODE", "WAL"),
		BusyTimeoutMS: getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
		Synchronous:   getEnv("DB_SYNCHRONOUS", "NORMAL"),
	}
}

// DSN returns the SQLite connection string. The pragmas ride along as
// _pragma parameters, which the driver executes on every new connection.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(%s)&_pragma=busy_timeout(%d)&_pragma=synchronous(%s)",
		c.Path, c.JournalMode, c.BusyTimeoutMS, c.Synchronous)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
