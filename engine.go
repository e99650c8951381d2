package bmfg

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/EliasRenko/bmfg/bake"
)

// lifecycle is the engine's position in its state machine. There is no
// uninitialized value: a handle that exists is at least running, and a
// nil *Engine is the "uninitialized" state.
type lifecycle int

const (
	stateRunning lifecycle = iota
	stateShutDown
	stateReleased
)

// Engine is one bitmap font baking engine instance.
//
// Engines are explicit handles: create as many as needed, none share
// state. All methods are safe for concurrent use; operations are
// serialized internally, so the frame loop and font operations may be
// driven from different goroutines.
type Engine struct {
	mu sync.Mutex

	state  lifecycle
	screen State

	// listener lives outside mu so message delivery never holds the
	// engine lock (see Listener).
	listener atomic.Pointer[listenerSlot]

	presenter Presenter
	win       windowState

	clock  float64
	frames uint64

	source   *bake.Source
	fontPath string
	cfg      bake.Config
	bake     *bake.Bake

	// atlasBuf caches the bake's page converted for drawing.
	atlasBuf *gg.ImageBuf

	selected    rune
	hasSelected bool

	back, front *gg.Pixmap

	sampleText string

	// pending queues messages produced under mu; they are delivered
	// after the lock is released (see flush).
	pending []Message
}

// New creates an engine handle in the running state.
//
// A listener registered through WithListener is in place before New
// returns, so no early message can be lost — the equivalent of the
// old init-with-callback entry point.
func New(opts ...Option) (*Engine, error) {
	Bootstrap()

	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateWindowSize(o.width, o.height); err != nil {
		return nil, err
	}

	presenter := o.presenter
	if presenter == nil {
		presenter = NewMemoryPresenter()
	}

	e := &Engine{
		state:     stateRunning,
		screen:    StateAtlas,
		presenter: presenter,
		win: windowState{
			width:      o.width,
			height:     o.height,
			x:          o.x,
			y:          o.y,
			borderless: o.borderless,
		},
		sampleText: o.sampleText,
	}
	e.listener.Store(&listenerSlot{l: o.listener})

	Logger().Info("engine created",
		"width", o.width, "height", o.height, "borderless", o.borderless)
	e.emit(MessageInfo, "engine initialized")
	return e, nil
}

// SetListener replaces the registered listener. The slot holds at most
// one listener; the last write wins. Pass nil to clear it.
//
// SetListener works in every lifecycle state so a host can detach its
// listener during teardown.
func (e *Engine) SetListener(l Listener) {
	e.listener.Store(&listenerSlot{l: l})
}

// IsRunning reports whether the engine accepts operations: true from
// New until Shutdown.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateRunning
}

// Shutdown stops the engine's subsystems: the bake, the frame buffers
// and the presenter are dropped. The handle stays addressable —
// IsRunning reports false — until Release frees it.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	if err := e.requireRunning(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state = stateShutDown
	e.source = nil
	e.bake = nil
	e.atlasBuf = nil
	e.back, e.front = nil, nil
	e.hasSelected = false
	p := e.presenter
	e.mu.Unlock()

	if p != nil {
		if err := p.Close(); err != nil {
			Logger().Warn("presenter close failed", "error", err)
		}
	}

	Logger().Info("engine shut down")
	e.emit(MessageInfo, "engine shut down")
	return nil
}

// Release frees the handle. Only valid after Shutdown; releasing a
// running engine is rejected with ErrNotShutDown instead of being
// undefined.
func (e *Engine) Release() error {
	e.mu.Lock()
	switch e.state {
	case stateRunning:
		e.mu.Unlock()
		return ErrNotShutDown
	case stateReleased:
		e.mu.Unlock()
		return ErrReleased
	}
	e.state = stateReleased
	e.mu.Unlock()

	e.listener.Store(&listenerSlot{})
	Logger().Info("engine released")
	return nil
}

// requireRunning rejects operations outside the running state.
// Callers must hold mu.
func (e *Engine) requireRunning() error {
	switch e.state {
	case stateShutDown:
		return ErrShutDown
	case stateReleased:
		return ErrReleased
	default:
		return nil
	}
}

// emit delivers a message to the registered listener. Must be called
// without mu held; use queue from inside locked sections.
func (e *Engine) emit(kind MessageKind, text string) {
	emit(&e.listener, kind, text)
}

// queue records a message for delivery once mu is released. Callers
// hold mu.
func (e *Engine) queue(kind MessageKind, text string) {
	e.pending = append(e.pending, Message{Kind: kind, Text: text})
}

// takePending removes and returns the queued messages. Callers hold mu.
func (e *Engine) takePending() []Message {
	msgs := e.pending
	e.pending = nil
	return msgs
}

// flush delivers queued messages. Must be called without mu held.
func (e *Engine) flush(msgs []Message) {
	for _, m := range msgs {
		e.emit(m.Kind, m.Text)
	}
}
