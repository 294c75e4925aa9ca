// Package config loads application settings from the environment, with
// optional .env file support for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDBPath      = "MATHGENIUS_DB"
	EnvCatalogPath = "MATHGENIUS_CATALOG"
	EnvLogPath     = "MATHGENIUS_LOG"
	EnvStudentID   = "MATHGENIUS_STUDENT"
	EnvSeed        = "MATHGENIUS_SEED"
)

// DefaultStudentID identifies the local student when no id is configured.
// The app is single-student per install; multi-account management lives
// outside this core.
const DefaultStudentID = "local"

// Config holds runtime settings resolved from the environment.
type Config struct {
	DBPath      string
	CatalogPath string
	LogPath     string
	StudentID   string

	// Seed fixes the synthesizer's random generator when non-zero,
	// making phrase selection reproducible.
	Seed int64
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present; its absence is not an
// error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:      os.Getenv(EnvDBPath),
		CatalogPath: os.Getenv(EnvCatalogPath),
		LogPath:     os.Getenv(EnvLogPath),
		StudentID:   os.Getenv(EnvStudentID),
	}
	if cfg.StudentID == "" {
		cfg.StudentID = DefaultStudentID
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}
