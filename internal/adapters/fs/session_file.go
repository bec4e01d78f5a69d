package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bft-labs/bowltrack/internal/adapters/document"
	"github.com/bft-labs/bowltrack/internal/domain"
)

const sessionFileExt = ".json"

// SessionFileRepository implements ports.SessionRepository with one JSON
// document per session date inside a directory.
type SessionFileRepository struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileRepository creates a repository rooted at dir. The
// directory is created on first Save.
func NewSessionFileRepository(dir string) *SessionFileRepository {
	return &SessionFileRepository{dir: dir}
}

// Dir returns the directory holding the session files.
func (r *SessionFileRepository) Dir() string {
	return r.dir
}

// Path returns the file that stores the session for date.
func (r *SessionFileRepository) Path(date domain.Date) string {
	return filepath.Join(r.dir, date.Key()+sessionFileExt)
}

// Load reads the session stored for date.
func (r *SessionFileRepository) Load(ctx context.Context, date domain.Date) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.Path(date))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
		}
		return nil, err
	}
	return document.Unmarshal(data)
}

// Save persists the session atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *SessionFileRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	data, err := document.Marshal(session)
	if err != nil {
		return err
	}

	path := r.Path(session.Date())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the session file for date.
func (r *SessionFileRepository) Delete(ctx context.Context, date domain.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.Path(date)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
		}
		return err
	}
	return nil
}

// Dates lists the stored session dates, oldest first. Files whose names
// are not dates are skipped.
func (r *SessionFileRepository) Dates(ctx context.Context) ([]domain.Date, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var dates []domain.Date
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, sessionFileExt) {
			continue
		}
		d, err := domain.ParseKey(strings.TrimSuffix(name, sessionFileExt))
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	slices.SortFunc(dates, domain.Date.Compare)
	return dates, nil
}

// Close is a no-op; the repository holds no open handles.
func (r *SessionFileRepository) Close() error {
	return nil
}
