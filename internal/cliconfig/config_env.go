package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set in the environment win. A missing file is not an
// error unless required is true.
func LoadDotEnv(path string, required bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// ApplyEnvConfig applies configuration from environment variables (BOWLTRACK_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("store", os.Getenv("BOWLTRACK_STORE"), &cfg.Store)
	s.setString("data-dir", os.Getenv("BOWLTRACK_DATA_DIR"), &cfg.DataDir)
	s.setString("db-path", os.Getenv("BOWLTRACK_DB_PATH"), &cfg.DBPath)
	s.setString("log-level", os.Getenv("BOWLTRACK_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("date-layout", os.Getenv("BOWLTRACK_DATE_LAYOUT"), &cfg.DateLayout)
}
