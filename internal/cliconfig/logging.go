package cliconfig

import (
	"io"
	"os"

	"github.com/bft-labs/bowltrack/pkg/log"
)

// Logger returns the console logger the CLI writes to, at the configured level.
func Logger(cfg Config) (*log.ZerologAdapter, error) {
	return NewLogger(os.Stderr, cfg.LogLevel)
}

// NewLogger builds a console logger writing to w.
func NewLogger(w io.Writer, level string) (*log.ZerologAdapter, error) {
	return log.NewConsoleLogger(w, level)
}
