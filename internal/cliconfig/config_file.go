package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for the TOML config file.
type FileConfig struct {
	Store      string `toml:"store"`
	DataDir    string `toml:"data_dir"`
	DBPath     string `toml:"db_path"`
	LogLevel   string `toml:"log_level"`
	DateLayout string `toml:"date_layout"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.bowltrack/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".bowltrack", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("store", fc.Store, &cfg.Store)
	s.setString("data-dir", fc.DataDir, &cfg.DataDir)
	s.setString("db-path", fc.DBPath, &cfg.DBPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("date-layout", fc.DateLayout, &cfg.DateLayout)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
