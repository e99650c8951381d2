package bmfg

import "sync/atomic"

// MessageKind classifies engine messages.
type MessageKind int

const (
	// MessageInfo reports normal progress: imports, bakes, exports.
	MessageInfo MessageKind = iota

	// MessageWarn reports a degraded but non-fatal condition.
	MessageWarn

	// MessageError reports an operation failure that was also returned
	// as an error to the caller.
	MessageError
)

// String returns the kind name.
func (k MessageKind) String() string {
	switch k {
	case MessageInfo:
		return "info"
	case MessageWarn:
		return "warn"
	case MessageError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one notification pushed from the engine to its listener.
type Message struct {
	Kind MessageKind
	Text string
}

// Listener receives engine messages.
//
// Messages are delivered synchronously on the goroutine that performed
// the triggering engine call, after the engine has released its
// internal locks. Re-entering the engine from a listener is therefore
// deadlock-free, but keep listeners short: they run inside the host's
// call.
type Listener interface {
	EngineMessage(m Message)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Message)

// EngineMessage implements Listener.
func (f ListenerFunc) EngineMessage(m Message) { f(m) }

// MouseButton identifies a mouse button in button events.
type MouseButton int

// Mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseListener is an optional capability of a Listener. A listener
// that implements it receives the full button events forwarded through
// [Engine.OnMouseButton], in addition to regular engine messages.
type MouseListener interface {
	Listener
	MouseDown(x, y float64, button MouseButton)
}

// listenerSlot boxes the registered listener so the slot can live in
// an atomic.Pointer: emission never takes the engine lock, and
// SetListener is last-write-wins by construction.
type listenerSlot struct {
	l Listener
}

// emit delivers a message to the registered listener, if any.
func emit(slot *atomic.Pointer[listenerSlot], kind MessageKind, text string) {
	s := slot.Load()
	if s == nil || s.l == nil {
		return
	}
	s.l.EngineMessage(Message{Kind: kind, Text: text})
}
