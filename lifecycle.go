package mfcam

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// mediaSubsystem tracks process-wide media-subsystem state: whether the
// platform pipeline is up, and how many capture sessions currently hold it
// open. Sessions may be opened and closed from independent goroutines, so
// both pieces of state are atomic; the mutex only serializes the actual
// startup/shutdown transitions.
type mediaSubsystem struct {
	backend string

	mu          sync.Mutex
	initialized atomic.Bool
	sessions    atomic.Int64

	startup  func() error
	shutdown func() error
}

func newMediaSubsystem(backend string, startup, shutdown func() error) *mediaSubsystem {
	return &mediaSubsystem{backend: backend, startup: startup, shutdown: shutdown}
}

// subsystem is the single process-wide lifecycle object. The platform
// hooks are supplied by the per-GOOS lifecycle files.
var subsystem = newMediaSubsystem(Backend, platformStartup, platformShutdown)

// initialize brings the platform pipeline up. Idempotent: if already
// initialized it returns nil without touching the platform.
func (s *mediaSubsystem) initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized.Load() {
		return nil
	}
	if err := s.startup(); err != nil {
		return err
	}
	s.initialized.Store(true)
	logger().Debug("media subsystem initialized", zap.String("backend", s.backend))
	return nil
}

// deinitialize tears the platform pipeline down. Idempotent, and safe to
// call even if initialize never ran.
func (s *mediaSubsystem) deinitialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized.Load() {
		return nil
	}
	if err := s.shutdown(); err != nil {
		return err
	}
	s.initialized.Store(false)
	logger().Debug("media subsystem shut down", zap.String("backend", s.backend))
	return nil
}

func (s *mediaSubsystem) ready() bool {
	return s.initialized.Load()
}

// sessionOpened records one successfully constructed capture session.
func (s *mediaSubsystem) sessionOpened() {
	s.sessions.Add(1)
}

// sessionClosed records one torn-down capture session and shuts the
// subsystem down when the last session is gone. Shutdown failures during
// teardown are logged and swallowed; teardown must not block resource
// release.
func (s *mediaSubsystem) sessionClosed() {
	// The count never goes below zero, even if close is called more
	// than once.
	for {
		n := s.sessions.Load()
		if n <= 0 {
			break
		}
		if s.sessions.CompareAndSwap(n, n-1) {
			break
		}
	}

	if s.sessions.Load() == 0 {
		if err := s.deinitialize(); err != nil {
			logger().Warn("media subsystem shutdown failed during session teardown",
				zap.String("backend", s.backend), zap.Error(err))
		}
	}
}

func (s *mediaSubsystem) sessionCount() int64 {
	return s.sessions.Load()
}
