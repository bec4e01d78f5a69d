package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
)

// DefaultDateLayout is the time layout used to print session dates.
const DefaultDateLayout = "2006/01/02"

// Config holds CLI configuration for bowltrack.
type Config struct {
	// Store selects the session repository: file, sqlite or bolt.
	Store string
	// DataDir holds session files and database files.
	DataDir string
	// DBPath is the sqlite or bolt database file. Derived from DataDir when empty.
	DBPath string

	LogLevel   string
	DateLayout string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Store:      StoreFile,
		DataDir:    defaultDataDir(),
		LogLevel:   zerolog.LevelWarnValue,
		DateLayout: DefaultDateLayout,
	}
}

func defaultDataDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".bowltrack", "data")
	}
	return ".bowltrack"
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreFile, StoreSQLite, StoreBolt:
	default:
		return fmt.Errorf("store must be one of %s, %s, %s (got %q)", StoreFile, StoreSQLite, StoreBolt, c.Store)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data-dir is required")
	}

	if c.DBPath == "" {
		switch c.Store {
		case StoreSQLite:
			c.DBPath = filepath.Join(c.DataDir, "bowltrack.sqlite")
		case StoreBolt:
			c.DBPath = filepath.Join(c.DataDir, "bowltrack.bolt")
		}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	if c.DateLayout == "" {
		c.DateLayout = DefaultDateLayout
	}
	// A layout without a reference year, month or day prints constant text.
	probe := time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC).Format(c.DateLayout)
	if !strings.Contains(probe, "3") || !strings.Contains(probe, "1") {
		return fmt.Errorf("date-layout %q must include a day and a year", c.DateLayout)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
