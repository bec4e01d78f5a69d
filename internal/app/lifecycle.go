package app

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/ports"
)

// ShutdownTimeout bounds how long Follower.Stop waits for the run loop to exit.
const ShutdownTimeout = 30 * time.Second

// State is a follower's position in its run cycle.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

var stateNames = [...]string{"Stopped", "Starting", "Running", "Stopping", "Crashed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// transitions lists the states each state may move to. A follower that
// fails while loading its first session goes from Starting to Stopping.
var transitions = map[State][]State{
	StateStopped:  {StateStarting},
	StateStarting: {StateRunning, StateStopping, StateCrashed},
	StateRunning:  {StateStopping, StateCrashed},
	StateStopping: {StateStopped, StateCrashed},
	StateCrashed:  {StateStarting},
}

// EventEmitter is told about every accepted state change.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// StateLog reports a follower's state changes for one session date.
type StateLog struct {
	logger ports.Logger
	date   domain.Date
}

// NewStateLog returns an EventEmitter writing to logger.
func NewStateLog(logger ports.Logger, date domain.Date) *StateLog {
	return &StateLog{logger: logger, date: date}
}

// OnStateChange logs the change; a crash is logged as an error.
func (s *StateLog) OnStateChange(previous, current State, reason string) {
	fields := []ports.Field{
		ports.Stringer("date", s.date),
		ports.Stringer("from", previous),
		ports.Stringer("to", current),
		ports.String("reason", reason),
	}
	if current == StateCrashed {
		s.logger.Error("follower crashed", fields...)
		return
	}
	s.logger.Info("follower state", fields...)
}

// Lifecycle guards a follower's state and tracks the goroutines it runs.
type Lifecycle struct {
	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	logger  ports.Logger
	emitter EventEmitter
}

// NewLifecycle returns a stopped lifecycle. emitter may be nil.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{state: StateStopped, logger: logger, emitter: emitter}
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// TransitionTo moves to next, or fails with ErrInvalidTransition and leaves
// the state unchanged.
func (l *Lifecycle) TransitionTo(next State, reason string) error {
	l.mu.Lock()
	prev := l.state
	if !slices.Contains(transitions[prev], next) {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, prev, next)
	}
	l.state = next
	l.mu.Unlock()

	l.logger.Debug("state transition",
		ports.Stringer("from", prev),
		ports.Stringer("to", next),
	)
	if l.emitter != nil {
		l.emitter.OnStateChange(prev, next, reason)
	}
	return nil
}

// SetCancel stores the function that Cancel calls.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel asks the running loop to stop. It is a no-op before SetCancel.
func (l *Lifecycle) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (l *Lifecycle) AddWorker()  { l.wg.Add(1) }
func (l *Lifecycle) WorkerDone() { l.wg.Done() }

// WaitWithTimeout waits for every worker to finish, or returns
// ErrShutdownTimeout once timeout has passed.
func (l *Lifecycle) WaitWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		l.logger.Warn("follower did not stop in time", ports.Duration("timeout", timeout))
		return ErrShutdownTimeout
	}
}
