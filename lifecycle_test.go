package mfcam

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeHooks counts startup and shutdown calls and fails on demand.
type fakeHooks struct {
	startups    atomic.Int64
	shutdowns   atomic.Int64
	startupErr  error
	shutdownErr error
}

func (f *fakeHooks) startup() error {
	f.startups.Add(1)
	return f.startupErr
}

func (f *fakeHooks) shutdown() error {
	f.shutdowns.Add(1)
	return f.shutdownErr
}

func newTestSubsystem(h *fakeHooks) *mediaSubsystem {
	return newMediaSubsystem("test", h.startup, h.shutdown)
}

func TestSubsystemInitializeIdempotent(t *testing.T) {
	h := &fakeHooks{}
	s := newTestSubsystem(h)

	for i := 0; i < 3; i++ {
		if err := s.initialize(); err != nil {
			t.Fatalf("initialize call %d: %v", i, err)
		}
	}
	if got := h.startups.Load(); got != 1 {
		t.Fatalf("startup ran %d times, want 1", got)
	}
	if !s.ready() {
		t.Fatal("subsystem should be ready after initialize")
	}
}

func TestSubsystemInitializeErrorRetries(t *testing.T) {
	h := &fakeHooks{startupErr: errors.New("platform down")}
	s := newTestSubsystem(h)

	if err := s.initialize(); err == nil {
		t.Fatal("initialize should fail when startup fails")
	}
	if s.ready() {
		t.Fatal("subsystem must not be ready after failed startup")
	}

	// A later attempt retries the platform instead of caching the failure.
	h.startupErr = nil
	if err := s.initialize(); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if got := h.startups.Load(); got != 2 {
		t.Fatalf("startup ran %d times, want 2", got)
	}
}

func TestSubsystemDeinitializeWithoutInit(t *testing.T) {
	h := &fakeHooks{}
	s := newTestSubsystem(h)

	if err := s.deinitialize(); err != nil {
		t.Fatalf("deinitialize on fresh subsystem: %v", err)
	}
	if got := h.shutdowns.Load(); got != 0 {
		t.Fatalf("shutdown ran %d times on a subsystem that never started", got)
	}
}

func TestSubsystemSessionTeardown(t *testing.T) {
	h := &fakeHooks{}
	s := newTestSubsystem(h)

	if err := s.initialize(); err != nil {
		t.Fatal(err)
	}
	s.sessionOpened()
	s.sessionOpened()

	s.sessionClosed()
	if !s.ready() {
		t.Fatal("subsystem shut down while a session was still open")
	}
	s.sessionClosed()
	if s.ready() {
		t.Fatal("subsystem still up after the last session closed")
	}
	if got := h.shutdowns.Load(); got != 1 {
		t.Fatalf("shutdown ran %d times, want 1", got)
	}
	if got := s.sessionCount(); got != 0 {
		t.Fatalf("session count = %d, want 0", got)
	}
}

func TestSubsystemSessionCountFloor(t *testing.T) {
	h := &fakeHooks{}
	s := newTestSubsystem(h)

	// Extra closes must not drive the count negative.
	s.sessionClosed()
	s.sessionClosed()
	if got := s.sessionCount(); got != 0 {
		t.Fatalf("session count = %d, want 0", got)
	}

	s.sessionOpened()
	if got := s.sessionCount(); got != 1 {
		t.Fatalf("session count = %d, want 1", got)
	}
}

func TestSubsystemShutdownFailureSwallowed(t *testing.T) {
	h := &fakeHooks{shutdownErr: errors.New("busy")}
	s := newTestSubsystem(h)

	if err := s.initialize(); err != nil {
		t.Fatal(err)
	}
	s.sessionOpened()

	// Teardown must not panic or block on a failing shutdown; the
	// subsystem stays marked initialized so a later explicit Shutdown can
	// retry.
	s.sessionClosed()
	if got := s.sessionCount(); got != 0 {
		t.Fatalf("session count = %d, want 0", got)
	}
	if !s.ready() {
		t.Fatal("failed shutdown should leave the subsystem initialized")
	}

	h.shutdownErr = nil
	if err := s.deinitialize(); err != nil {
		t.Fatalf("explicit shutdown retry: %v", err)
	}
	if s.ready() {
		t.Fatal("subsystem still up after successful shutdown")
	}
}

func TestSubsystemConcurrentSessions(t *testing.T) {
	h := &fakeHooks{}
	s := newTestSubsystem(h)
	if err := s.initialize(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.sessionOpened()
			s.sessionClosed()
		}()
	}
	wg.Wait()

	if got := s.sessionCount(); got != 0 {
		t.Fatalf("session count = %d after balanced open/close, want 0", got)
	}
	if got := h.startups.Load(); got != 1 {
		t.Fatalf("startup ran %d times, want 1", got)
	}
}
