package bmfg

import (
	"errors"
	"sync"
	"testing"
)

// recordingListener collects delivered messages for assertions.
type recordingListener struct {
	mu   sync.Mutex
	msgs []Message
}

func (l *recordingListener) EngineMessage(m Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, m)
}

func (l *recordingListener) messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *recordingListener) texts() []string {
	var out []string
	for _, m := range l.messages() {
		out = append(out, m.Text)
	}
	return out
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func TestBootstrapIdempotent(t *testing.T) {
	first := Bootstrap()
	second := Bootstrap()
	if first == "" {
		t.Fatal("Bootstrap returned empty status")
	}
	if first != second {
		t.Errorf("Bootstrap not idempotent: %q != %q", first, second)
	}
}

func TestLifecycle(t *testing.T) {
	e := newTestEngine(t)

	if !e.IsRunning() {
		t.Error("IsRunning() = false after New")
	}

	if err := e.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if e.IsRunning() {
		t.Error("IsRunning() = true after Shutdown")
	}

	if err := e.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestLifecycleOrdering(t *testing.T) {
	t.Run("release before shutdown", func(t *testing.T) {
		e := newTestEngine(t)
		if err := e.Release(); !errors.Is(err, ErrNotShutDown) {
			t.Errorf("Release on running engine = %v, want ErrNotShutDown", err)
		}
		// The rejected release must not have changed anything.
		if !e.IsRunning() {
			t.Error("engine stopped running after rejected Release")
		}
	})

	t.Run("double shutdown", func(t *testing.T) {
		e := newTestEngine(t)
		if err := e.Shutdown(); err != nil {
			t.Fatalf("Shutdown failed: %v", err)
		}
		if err := e.Shutdown(); !errors.Is(err, ErrShutDown) {
			t.Errorf("second Shutdown = %v, want ErrShutDown", err)
		}
	})

	t.Run("double release", func(t *testing.T) {
		e := newTestEngine(t)
		if err := e.Shutdown(); err != nil {
			t.Fatalf("Shutdown failed: %v", err)
		}
		if err := e.Release(); err != nil {
			t.Fatalf("Release failed: %v", err)
		}
		if err := e.Release(); !errors.Is(err, ErrReleased) {
			t.Errorf("second Release = %v, want ErrReleased", err)
		}
	})

	t.Run("operations after shutdown", func(t *testing.T) {
		e := newTestEngine(t)
		if err := e.Shutdown(); err != nil {
			t.Fatalf("Shutdown failed: %v", err)
		}
		if err := e.UpdateFrame(0.016); !errors.Is(err, ErrShutDown) {
			t.Errorf("UpdateFrame = %v, want ErrShutDown", err)
		}
		if err := e.Render(); !errors.Is(err, ErrShutDown) {
			t.Errorf("Render = %v, want ErrShutDown", err)
		}
		if err := e.SetWindowSize(800, 600); !errors.Is(err, ErrShutDown) {
			t.Errorf("SetWindowSize = %v, want ErrShutDown", err)
		}
	})
}

func TestNewWithListenerReceivesInitMessage(t *testing.T) {
	l := &recordingListener{}
	e := newTestEngine(t, WithListener(l))
	defer func() {
		_ = e.Shutdown()
		_ = e.Release()
	}()

	msgs := l.messages()
	if len(msgs) == 0 {
		t.Fatal("listener registered at creation received no init message")
	}
	if msgs[0].Kind != MessageInfo {
		t.Errorf("init message kind = %v, want MessageInfo", msgs[0].Kind)
	}
}

func TestSetListenerLastWriteWins(t *testing.T) {
	a := &recordingListener{}
	b := &recordingListener{}

	e := newTestEngine(t)
	e.SetListener(a)
	e.SetListener(b)

	if err := e.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if got := a.messages(); len(got) != 0 {
		t.Errorf("replaced listener received %d messages, want 0", len(got))
	}
	if got := b.messages(); len(got) == 0 {
		t.Error("active listener received no messages")
	}
}

func TestSetListenerNilClears(t *testing.T) {
	a := &recordingListener{}
	e := newTestEngine(t)
	e.SetListener(a)
	e.SetListener(nil)

	if err := e.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if got := a.messages(); len(got) != 0 {
		t.Errorf("cleared listener received %d messages, want 0", len(got))
	}
}

func TestNewRejectsInvalidWindowSize(t *testing.T) {
	if _, err := New(WithWindowSize(0, 480)); err == nil {
		t.Error("New accepted zero width")
	}
	var sizeErr *WindowSizeError
	_, err := New(WithWindowSize(-1, -1))
	if !errors.As(err, &sizeErr) {
		t.Errorf("New(-1, -1) = %v, want *WindowSizeError", err)
	}
}
