package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonwraymond/vizexec/payload"
	"github.com/jonwraymond/vizexec/remote"
)

// Logger is the interface for logging.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort and must not panic.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config configures a Session.
type Config struct {
	// Client launches visualization jobs.
	// Required.
	Client remote.Client

	// Initial is the starting state.
	// Default: NewState()
	Initial *State

	// Logger is an optional logger for submission events.
	Logger Logger
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Client == nil {
		return fmt.Errorf("%w: missing required fields: Client", ErrConfiguration)
	}
	return nil
}

// Session orchestrates submissions for one user.
//
// Contract:
// - Concurrency: safe for concurrent use; overlapping submissions follow
//   cancel-and-replace.
// - Context: Submit honors cancellation of its own context.
type Session struct {
	client remote.Client
	logger Logger

	mu       sync.Mutex
	current  State
	seq      uint64
	inflight context.CancelFunc
}

// New creates a Session with the given configuration.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial := NewState()
	if cfg.Initial != nil {
		initial = *cfg.Initial
		initial.Busy = false
	}
	return &Session{
		client:  cfg.Client,
		logger:  cfg.Logger,
		current: initial,
	}, nil
}

// Current returns a snapshot of the latest state.
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Busy
}

// Submit sends the code described by st and returns the resulting state.
//
// An invalid language or output mode is returned as an error and nothing is
// sent. Transport and backend failures are not Go errors: they are reported
// in the returned State.Error, and exactly one of State.Visualization and
// State.Error is set on return. If a newer submission starts before this one
// completes, this one is canceled and returns ErrSuperseded along with the
// newer submission's state.
func (s *Session) Submit(ctx context.Context, st State) (State, error) {
	final, err := payload.Build(st.Request())
	if err != nil {
		return st, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.inflight != nil {
		s.inflight()
		s.logWarn("submission replaced", "submission", s.seq)
	}
	s.seq++
	id := s.seq
	s.inflight = cancel
	st = st.Begin()
	st.Submission = id
	s.current = st
	s.mu.Unlock()

	s.logInfo("submission started",
		"submission", id,
		"language", final.Language,
		"output_mode", string(st.OutputMode),
		"code_bytes", len(st.Code))

	start := time.Now()
	viz, launchErr := s.client.Launch(ctx, final)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != id {
		s.logInfo("superseded submission discarded", "submission", id)
		return s.current, ErrSuperseded
	}
	s.inflight = nil

	st.Busy = false
	if launchErr == nil && viz == "" {
		launchErr = remote.ErrMissingVisualization
	}
	if launchErr != nil {
		st.Error = ErrorMessage(launchErr)
		s.logError("submission failed",
			"submission", id,
			"error", launchErr,
			"duration", time.Since(start))
	} else {
		st.Visualization = viz
		s.logInfo("submission completed",
			"submission", id,
			"bytes", len(viz),
			"duration", time.Since(start))
	}
	s.current = st
	return st, nil
}

func (s *Session) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Session) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Session) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
