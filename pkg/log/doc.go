// Package log provides the logging abstraction used by bowltrack components.
//
// Components log through the Logger interface so that the scoring service
// can run silent under tests and colourful on a terminal.
//
// # Usage
//
// Wrap a zerolog logger:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or build a console logger at a given level:
//
//	logger, err := log.NewConsoleLogger(os.Stderr, "debug")
//
// Use the no-op logger for tests:
//
//	logger := log.NewNoopLogger()
package log
