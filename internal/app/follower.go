package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/ports"
)

// Follower keeps one date's session current: it publishes the session once
// at start and again after every change reported by the notifier. It backs
// the watch command.
type Follower struct {
	tracker   *Tracker
	notifier  ports.ChangeNotifier
	logger    ports.Logger
	lifecycle *Lifecycle
	date      domain.Date
	publish   func(*domain.Session)
}

// NewFollower creates a follower for date. publish is called from the
// follower's goroutine with each freshly loaded session.
func NewFollower(
	tracker *Tracker,
	notifier ports.ChangeNotifier,
	logger ports.Logger,
	date domain.Date,
	publish func(*domain.Session),
	emitter EventEmitter,
) *Follower {
	return &Follower{
		tracker:   tracker,
		notifier:  notifier,
		logger:    logger,
		lifecycle: NewLifecycle(logger, emitter),
		date:      date,
		publish:   publish,
	}
}

// State returns the follower's lifecycle state.
func (f *Follower) State() State {
	return f.lifecycle.State()
}

// Run follows the session until ctx is canceled or Stop is called.
// It returns nil on a requested stop.
func (f *Follower) Run(ctx context.Context) error {
	if err := f.lifecycle.TransitionTo(StateStarting, "run"); err != nil {
		return err
	}
	f.lifecycle.AddWorker()
	defer f.lifecycle.WorkerDone()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	f.lifecycle.SetCancel(cancel)

	changes, err := f.notifier.Changes(ctx)
	if err != nil {
		_ = f.lifecycle.TransitionTo(StateCrashed, err.Error())
		return fmt.Errorf("watch store: %w", err)
	}

	b := newBackoff(DefaultBackoffInitial, DefaultBackoffMax)
	if err := f.reload(ctx, b); err != nil {
		return f.stop(err)
	}
	if err := f.lifecycle.TransitionTo(StateRunning, "initial session published"); err != nil {
		return f.stop(err)
	}

	for {
		select {
		case <-ctx.Done():
			return f.stop(ctx.Err())
		case _, ok := <-changes:
			if !ok {
				return f.stop(ctx.Err())
			}
			if err := f.reload(ctx, b); err != nil {
				return f.stop(err)
			}
		}
	}
}

// Stop cancels a running follower and waits for it to exit.
func (f *Follower) Stop() error {
	f.lifecycle.Cancel()
	return f.lifecycle.WaitWithTimeout(ShutdownTimeout)
}

// reload loads the session and publishes it, retrying with backoff while
// the store cannot be read.
func (f *Follower) reload(ctx context.Context, b *backoff) error {
	for {
		s, err := f.tracker.Session(ctx, f.date)
		if err == nil {
			b.Reset()
			f.publish(s)
			return nil
		}
		f.logger.Warn("reload failed",
			ports.Stringer("date", f.date),
			ports.Duration("retry_in", b.Current()),
			ports.Err(err),
		)
		if err := b.Wait(ctx); err != nil {
			return err
		}
	}
}

// stop moves the lifecycle to Stopped. Cancellation counts as a clean stop.
func (f *Follower) stop(cause error) error {
	_ = f.lifecycle.TransitionTo(StateStopping, "context done")
	if cause != nil && !errors.Is(cause, context.Canceled) {
		_ = f.lifecycle.TransitionTo(StateCrashed, cause.Error())
		return cause
	}
	_ = f.lifecycle.TransitionTo(StateStopped, "stopped")
	return nil
}
