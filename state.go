package bmfg

import "fmt"

// State selects the engine's top-level screen.
type State int

const (
	// StateAtlas shows the baked atlas page with its glyph cells.
	// This is the screen an engine starts in.
	StateAtlas State = iota

	// StatePreview shows sample text laid out from the bake.
	StatePreview

	// StateMetrics shows the layout metrics of the selected glyph.
	StateMetrics

	numStates
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAtlas:
		return "atlas"
	case StatePreview:
		return "preview"
	case StateMetrics:
		return "metrics"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// LoadState switches the engine to the given screen. States outside
// the declared constants are rejected with ErrInvalidState.
func (e *Engine) LoadState(s State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}
	if s < 0 || s >= numStates {
		return fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	e.screen = s
	Logger().Debug("state loaded", "state", s.String())
	return nil
}

// CurrentState returns the active screen.
func (e *Engine) CurrentState() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.screen
}
