package config

import "os"

// Config holds the runtime settings for the server.
type Config struct {
	Addr   string // listen address, e.g. ":8008"
	DBPath string // SQLite database file
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development.
func Load() Config {
	return Config{
		Addr:   ":" + getEnv("PORT", "8008"),
		DBPath: getEnv("TASKBOARD_DB", "taskboard.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
