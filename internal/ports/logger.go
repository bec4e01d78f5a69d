package ports

import "github.com/bft-labs/bowltrack/pkg/log"

// Logger is the structured logger the application writes to.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors, re-exported so the application layer only imports ports.
var (
	String   = log.String
	Int      = log.Int
	Float64  = log.Float64
	Bool     = log.Bool
	Stringer = log.Stringer
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
