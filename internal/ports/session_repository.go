package ports

import (
	"context"

	"github.com/bft-labs/bowltrack/internal/domain"
)

// SessionRepository stores sessions keyed by their date.
type SessionRepository interface {
	// Load returns the session stored for date.
	// Returns domain.ErrSessionNotFound (wrapped) when nothing is stored.
	Load(ctx context.Context, date domain.Date) (*domain.Session, error)

	// Save replaces whatever is stored for the session's date.
	// Implementations must write atomically: a reader sees the old
	// session or the new one, never a mix.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes the session stored for date.
	// Returns domain.ErrSessionNotFound (wrapped) when nothing is stored.
	Delete(ctx context.Context, date domain.Date) error

	// Dates lists the dates with a stored session, oldest first.
	Dates(ctx context.Context) ([]domain.Date, error)

	// Close releases resources held by the repository.
	Close() error
}
