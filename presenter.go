package bmfg

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg"
)

// ErrPresenterClosed is returned by Present after Close.
var ErrPresenterClosed = errors.New("bmfg: presenter is closed")

// Presenter is the surface the engine publishes completed frames to.
//
// The engine calls Present from SwapBuffers with the frame it just
// made current; the presenter owns getting those pixels on screen (or
// keeping them, for headless runs). Present must not retain the pixmap
// beyond the call if the implementation cannot tolerate the engine
// drawing into it two swaps later.
type Presenter interface {
	// Present publishes a completed frame.
	Present(frame *gg.Pixmap) error

	// NativeHandle returns the opaque OS handle of the surface, for
	// host-side window embedding. 0 when there is none.
	NativeHandle() uintptr

	// Close releases the surface. The engine calls it from Shutdown.
	Close() error
}

// PresenterFactory creates a presenter instance.
type PresenterFactory func() (Presenter, error)

var (
	presenterMu      sync.RWMutex
	presenterFactory = map[string]PresenterFactory{}
)

// RegisterPresenter adds a presenter backend under a name, replacing
// any previous registration. Platform integration packages call this
// from init.
func RegisterPresenter(name string, factory PresenterFactory) {
	presenterMu.Lock()
	defer presenterMu.Unlock()
	presenterFactory[name] = factory
}

// NewPresenterByName creates a presenter from a registered backend.
func NewPresenterByName(name string) (Presenter, error) {
	presenterMu.RLock()
	factory, ok := presenterFactory[name]
	presenterMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("bmfg: no presenter registered as %q", name)
	}
	return factory()
}

// Presenters returns the registered backend names, sorted.
func Presenters() []string {
	presenterMu.RLock()
	defer presenterMu.RUnlock()
	names := make([]string, 0, len(presenterFactory))
	for name := range presenterFactory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPresenter("memory", func() (Presenter, error) {
		return NewMemoryPresenter(), nil
	})
}

// MemoryPresenter keeps the last presented frame in memory. It is the
// default presenter and what makes the engine fully testable headless.
//
// MemoryPresenter is safe for concurrent use.
type MemoryPresenter struct {
	mu     sync.Mutex
	frame  *gg.Pixmap
	count  int
	closed bool
}

// NewMemoryPresenter creates an in-memory presenter.
func NewMemoryPresenter() *MemoryPresenter {
	return &MemoryPresenter{}
}

// Present implements Presenter.
func (p *MemoryPresenter) Present(frame *gg.Pixmap) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPresenterClosed
	}
	p.frame = frame
	p.count++
	return nil
}

// NativeHandle implements Presenter. Memory presenters have no OS
// surface.
func (p *MemoryPresenter) NativeHandle() uintptr { return 0 }

// Close implements Presenter.
func (p *MemoryPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame = nil
	p.closed = true
	return nil
}

// LastFrame returns the most recently presented frame, nil before the
// first Present or after Close.
func (p *MemoryPresenter) LastFrame() *gg.Pixmap {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

// PresentCount returns the number of frames presented.
func (p *MemoryPresenter) PresentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}
