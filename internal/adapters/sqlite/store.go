// Package sqlite provides a SQLite-backed session repository.
//
// Games are stored one row each with the date, the game number and 21 throw
// slots (f1t1, f1t2, ... f10t1, f10t2, f10t3). An unrecorded throw is NULL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/bowltrack/internal/adapters/sqlite/migrations"
	"github.com/bft-labs/bowltrack/internal/domain"

	_ "modernc.org/sqlite"
)

// throwColumns lists the 21 throw slots in frame order.
var throwColumns = func() []string {
	cols := make([]string, 0, 2*domain.FramesPerGame+1)
	for n := 1; n <= domain.FramesPerGame; n++ {
		cols = append(cols, fmt.Sprintf("f%dt1", n), fmt.Sprintf("f%dt2", n))
	}
	return append(cols, fmt.Sprintf("f%dt3", domain.LastFrame))
}()

// Store persists sessions in SQLite and implements ports.SessionRepository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	clean := filepath.Clean(path)
	if dir := filepath.Dir(clean); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := clean + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the session for date with its games in number order.
func (s *Store) Load(ctx context.Context, date domain.Date) (*domain.Session, error) {
	exists, err := s.exists(ctx, s.db, date)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
	}

	query := "SELECT game, " + strings.Join(throwColumns, ", ") + " FROM games WHERE date = ? ORDER BY game"
	rows, err := s.db.QueryContext(ctx, query, date.Key())
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return domain.NewSessionWithGames(date, games), nil
}

// Save replaces the stored session for the session's date in one transaction.
func (s *Store) Save(ctx context.Context, session *domain.Session) error {
	key := session.Date().Key()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO sessions (date) VALUES (?)", key); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM games WHERE date = ?", key); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}

	insert := "INSERT INTO games (date, game, " + strings.Join(throwColumns, ", ") + ") VALUES (?, ?" +
		strings.Repeat(", ?", len(throwColumns)) + ")"
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range session.Games() {
		args := append([]any{key, g.Number()}, throwArgs(g)...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert game %d: %w", g.Number(), err)
		}
	}
	return tx.Commit()
}

// Delete removes the session and its games.
func (s *Store) Delete(ctx context.Context, date domain.Date) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM games WHERE date = ?", date.Key()); err != nil {
		return fmt.Errorf("delete games: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE date = ?", date.Key())
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, date)
	}
	return tx.Commit()
}

// Dates lists stored session dates, oldest first.
func (s *Store) Dates(ctx context.Context) ([]domain.Date, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT date FROM sessions ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var dates []domain.Date
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		d, err := domain.ParseKey(key)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) exists(ctx context.Context, q queryer, date domain.Date) (bool, error) {
	var found int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE date = ?", date.Key()).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query session: %w", err)
	}
	return true, nil
}

// throwArgs flattens a game into its 21 throw slots.
func throwArgs(g domain.Game) []any {
	args := make([]any, 0, len(throwColumns))
	for n, f := range g.Frames() {
		slots := 2
		if n+1 == domain.LastFrame {
			slots = 3
		}
		for i := 1; i <= slots; i++ {
			if pins, ok := f.Throw(i); ok {
				args = append(args, pins)
			} else {
				args = append(args, nil)
			}
		}
	}
	return args
}

func scanGame(rows *sql.Rows) (domain.Game, error) {
	var number int
	slots := make([]sql.NullInt64, len(throwColumns))
	dest := make([]any, 0, len(slots)+1)
	dest = append(dest, &number)
	for i := range slots {
		dest = append(dest, &slots[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return domain.Game{}, fmt.Errorf("scan game: %w", err)
	}

	throws := make([][]int, domain.FramesPerGame)
	for n := 0; n < domain.FramesPerGame; n++ {
		width := 2
		if n+1 == domain.LastFrame {
			width = 3
		}
		var frame []int
		for _, slot := range slots[2*n : 2*n+width] {
			if !slot.Valid {
				break
			}
			frame = append(frame, int(slot.Int64))
		}
		if len(frame) == 1 {
			// A lone first throw is not a recorded frame; FrameFromThrows
			// would otherwise turn a lone 10 into a strike.
			frame = nil
		}
		throws[n] = frame
	}
	return domain.NewGameFromThrows(number, throws)
}
