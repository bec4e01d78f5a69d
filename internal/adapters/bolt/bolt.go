// Package bolt provides a bbolt-backed session repository. Each session is
// one JSON document keyed by its date in the "sessions" bucket; keys sort
// chronologically.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bft-labs/bowltrack/internal/adapters/document"
	"github.com/bft-labs/bowltrack/internal/domain"
)

var sessionsBucket = []byte("sessions")

// Storage implements ports.SessionRepository on a bbolt file.
type Storage struct {
	filename string
	db       *bolt.DB
}

// Open opens (creating if needed) the bbolt file at filename.
func Open(filename string) (*Storage, error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := bolt.Open(filename, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Storage{filename: filename, db: db}, nil
}

// Close closes the bbolt file.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Load reads the session stored for date.
func (s *Storage) Load(ctx context.Context, date domain.Date) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(sessionsBucket).Get([]byte(date.Key())); v != nil {
			// v is only valid inside the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
	}
	return document.Unmarshal(data)
}

// Save writes the session document for the session's date.
func (s *Storage) Save(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := document.Marshal(session)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(session.Date().Key()), data)
	})
}

// Delete removes the session document for date.
func (s *Storage) Delete(ctx context.Context, date domain.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		key := []byte(date.Key())
		if b.Get(key) == nil {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
		}
		return b.Delete(key)
	})
}

// Dates lists stored session dates, oldest first.
func (s *Storage) Dates(ctx context.Context) ([]domain.Date, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var dates []domain.Date
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(sessionsBucket).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			d, err := domain.ParseKey(string(k))
			if err != nil {
				return err
			}
			dates = append(dates, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}
