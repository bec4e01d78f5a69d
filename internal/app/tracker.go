package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/ports"
)

// Tracker is the application service behind every CLI command. It loads a
// session from the repository, applies one change and saves it back.
type Tracker struct {
	repo   ports.SessionRepository
	logger ports.Logger
	clock  domain.Clock

	// mu serializes load-modify-save cycles within this process.
	mu sync.Mutex
}

// NewTracker creates a tracker over repo. A nil clock means the system clock.
func NewTracker(repo ports.SessionRepository, logger ports.Logger, clock domain.Clock) *Tracker {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Tracker{repo: repo, logger: logger, clock: clock}
}

// Today returns the current date on the tracker's clock.
func (t *Tracker) Today() domain.Date {
	return domain.Today(t.clock)
}

// Clock returns the tracker's clock.
func (t *Tracker) Clock() domain.Clock {
	return t.clock
}

// Session returns the session for date. A date with nothing stored yields
// an empty session.
func (t *Tracker) Session(ctx context.Context, date domain.Date) (*domain.Session, error) {
	s, err := t.repo.Load(ctx, date)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSession(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", date, err)
	}
	return s, nil
}

// NextGameNumber returns the number the next game bowled on date will get.
func (t *Tracker) NextGameNumber(ctx context.Context, date domain.Date) (int, error) {
	s, err := t.Session(ctx, date)
	if err != nil {
		return 0, err
	}
	return s.NextNumber(), nil
}

// AddGame stores a finished game as the next game of date's session and
// returns it with its assigned number.
func (t *Tracker) AddGame(ctx context.Context, date domain.Date, game domain.Game) (domain.Game, error) {
	if !game.IsValid() {
		return domain.Game{}, fmt.Errorf("%w: not every frame is legally recorded", domain.ErrInvalidGame)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.Session(ctx, date)
	if err != nil {
		return domain.Game{}, err
	}
	stored := s.AddGame(game)
	if err := t.repo.Save(ctx, s); err != nil {
		return domain.Game{}, fmt.Errorf("save session %s: %w", date, err)
	}

	t.logger.Info("game added",
		ports.Stringer("date", date),
		ports.Int("game", stored.Number()),
		ports.Int("score", stored.Score()),
	)
	return stored, nil
}

// ModifyFrame replaces frame n of a stored game. The game must still be
// valid afterwards.
func (t *Tracker) ModifyFrame(ctx context.Context, date domain.Date, number, n int, frame domain.Frame) (domain.Game, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.repo.Load(ctx, date)
	if err != nil {
		return domain.Game{}, err
	}
	g, err := s.Game(number)
	if err != nil {
		return domain.Game{}, err
	}
	before := g.Score()

	g, err = g.WithFrame(n, frame)
	if err != nil {
		return domain.Game{}, err
	}
	if !g.IsValid() {
		return domain.Game{}, fmt.Errorf("%w: frame %d cannot be %v", domain.ErrInvalidGame, n, frame)
	}
	if err := s.ReplaceGame(g); err != nil {
		return domain.Game{}, err
	}
	if err := t.repo.Save(ctx, s); err != nil {
		return domain.Game{}, fmt.Errorf("save session %s: %w", date, err)
	}

	t.logger.Info("frame modified",
		ports.Stringer("date", date),
		ports.Int("game", number),
		ports.Int("frame", n),
		ports.Int("score_before", before),
		ports.Int("score", g.Score()),
	)
	return g, nil
}

// RemoveGame deletes one game; later games move up a number. Removing the
// last game leaves an empty session stored for the date.
func (t *Tracker) RemoveGame(ctx context.Context, date domain.Date, number int) (domain.Game, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.repo.Load(ctx, date)
	if err != nil {
		return domain.Game{}, err
	}
	removed, err := s.RemoveGame(number)
	if err != nil {
		return domain.Game{}, err
	}
	if err := t.repo.Save(ctx, s); err != nil {
		return domain.Game{}, fmt.Errorf("save session %s: %w", date, err)
	}

	t.logger.Info("game removed",
		ports.Stringer("date", date),
		ports.Int("game", number),
		ports.Int("remaining", s.Len()),
	)
	return removed, nil
}

// DeleteSession removes every game bowled on date.
func (t *Tracker) DeleteSession(ctx context.Context, date domain.Date) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.Delete(ctx, date); err != nil {
		return err
	}
	t.logger.Info("session deleted", ports.Stringer("date", date))
	return nil
}

// Stats returns the roll-up statistics for date.
func (t *Tracker) Stats(ctx context.Context, date domain.Date) (domain.SessionStats, error) {
	s, err := t.Session(ctx, date)
	if err != nil {
		return domain.SessionStats{}, err
	}
	return s.Stats(), nil
}

// Dates lists every date with a stored session, oldest first.
func (t *Tracker) Dates(ctx context.Context) ([]domain.Date, error) {
	dates, err := t.repo.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return dates, nil
}
